package router

import "time"

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// PromptClassifierSystem asks for a single JSON object and nothing else.
const PromptClassifierSystem = `You are Jasper, an intent classifier for a personal search assistant.
Read the user's request and answer with ONE JSON object and nothing else:

{"intent": "mail|files|semantic|chat", "params": {...}}

Intents:
- mail: search e-mail. params: sender, subject, body, provider ("GMAIL" or "OUTLOOK"), date_filter, has_attachment, limit, summarize
- files: find files or folders by name. params: query, limit
- semantic: search inside document contents. params: query, folder, limit, summarize
- chat: anything else (greetings, general knowledge, weather, news). params: {}

Rules:
- Copy names, subjects and phrases exactly as the user wrote them. Never invent values.
- Omit parameters the user did not mention.
- Set summarize to true only when the user asks for a summary or overview.`

// Classifier configuration
const (
	ClassifierTemperature = 0
	DefaultTimeout        = 20 * time.Second
)

// ClassifierStopSequences end generation after the JSON object.
var ClassifierStopSequences = []string{"\nUser:", "User:"}

// Log messages
const (
	MsgLLMCallFailed  = "classifier call failed, falling back to chat"
	MsgTimeout        = "classifier timed out, falling back to chat"
	MsgSanitizeFailed = "unusable classifier output, falling back to chat"
)
