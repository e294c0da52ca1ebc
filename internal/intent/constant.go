package intent

// Rule names, as recorded in a Decision trace.
const (
	RuleContentShield   = "content_shield"
	RuleChatTopic       = "chat_topic"
	RuleFileKeyword     = "file_keyword"
	RuleMailKeyword     = "mail_keyword"
	RuleDefaultSemantic = "default_semantic"
)

// Exclusive groups: at most one rule of a group fires per request.
const (
	groupTopic   = "topic"
	groupKeyword = "keyword"
)

var (
	contentPhrases = []string{"search for content", "find in file", "search inside", "find file containing"}

	chatTopicWords = []string{"weather", "stock", "price", "news", "who is", "what is", "joke", "tell me", "market"}
	// Any of these keeps a chat-looking request with the classifier.
	searchHintWords = []string{"mail", "email", "gmail", "outlook", "sender", "file", "folder"}

	fileWords        = []string{"file", "folder", "path"}
	fileContentWords = []string{"content", "in the", "inside", "about", "contain"}
	fileMailWords    = []string{"mail", "email", "gmail", "outlook", "sender", "subject", "from"}

	mailWords       = []string{"mail", "email", "gmail", "outlook", "from", "subject"}
	strongMailWords = []string{"from", "subject", "gmail", "outlook"}
	weakMailWords   = []string{"mail", "email"}
)
