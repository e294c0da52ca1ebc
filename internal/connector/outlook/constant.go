package outlook

import "time"

const (
	LogPrefix = "internal.connector.outlook"

	Name = "Outlook"

	DefaultBaseURL = "https://graph.microsoft.com/v1.0"
	DefaultLimit   = 5
	DefaultTimeout = 15 * time.Second

	graphScope = "https://graph.microsoft.com/.default"

	MsgOpened = "Opened successfully"

	messageFields = "id,subject,from,receivedDateTime,bodyPreview,hasAttachments,webLink"
)
