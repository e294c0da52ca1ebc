package usecase

import "time"

const (
	LogPrefix = "internal.assistant.usecase"

	DefaultChatTimeout        = 60 * time.Second
	DefaultSummaryCacheSize   = 512
	DefaultSummaryConcurrency = 4

	// Per-item summaries.
	summaryInputChars    = 800
	summaryMaxChars      = 150
	summaryFallbackChars = 500
	summaryMinChars      = 10

	// Combined summaries.
	resultContentChars = 1000
	fileContentChars   = 8000

	MsgFoundItems       = "Found %d items."
	MsgNoItems          = "No items found."
	MsgNoContent        = "No content to summarize."
	MsgChatFailed       = "I'm sorry, I'm having trouble thinking right now. (%v)"
	MsgSummaryFailed    = "I performed the search but failed to generate a summary: %v"
	MsgWebSearchOff     = "I need to check the web, but web search is not configured."
	MsgWebSearchFailed  = "I tried to check the web, but the cloud connection failed: %v"
	MsgOnlyFolders      = "I found only folders, which cannot be summarized by content. Please specify a file name."
	MsgOpenIgnored      = "Not an openable item, or no ID"
	MsgFileUnreadable   = "Could not read file content (binary or inaccessible)."
	searchDirectiveName = "google_search"
)

const PromptChatSystem = `You are Jasper, a friendly personal assistant. Answer conversationally and concisely.
If answering needs current information from the internet, reply with only this JSON and nothing else:
{"action": "google_search", "query": "<what to search for>"}`

const PromptSummarySystem = "You are a helpful assistant. Summarize the text in one short sentence."

const promptSummaryItem = "TASK: Summarize the following email text into one very short sentence.\nTEXT: %s\nSUMMARY: "

const promptSummaryResults = `The user asked: '%s'.
Based on the following %d search results, provide a clear, professional summary. Group information logically and maintain chronological order if relevant. IMPORTANT: Do not output any JSON, and do not suggest using google_search or other tools. Just provide the text summary response.

RESULTS:
%s
SUMMARY:`

const promptSummaryFile = `The user is searching for: '%s'.
Please summarize the following content from the file '%s':

FILE CONTENT:
%s

INSTRUCTION: Provide a concise, professional summary of what this file is about. Do not output JSON or trigger external searches.`

var summaryStopSequences = []string{"\n", "TEXT:", "USER:"}
