package telegram

const (
	LogPrefix = "internal.assistant.delivery.telegram"

	maxListedResults = 10

	msgStart = "Hi, I'm Jasper.\n\nAsk me things like:\n- emails from Ana last week\n- find folder budget\n- search inside reports for quarterly revenue\n- summarize emails about the offsite\n\nAnything else, I'll just chat."
	msgHelp  = "Send a request in plain words. I search your mail, your files and your indexed documents, or just chat.\n\n/status shows the document index progress."
	msgBusy  = "Searching..."
	msgFail  = "Something went wrong while handling your request. Please try again."
)
