package resolver

import "regexp"

// Default result limits per intent.
const (
	DefaultMailLimit     = 5
	DefaultFilesLimit    = 10
	DefaultSemanticLimit = 10
)

var (
	summarizeWords = []string{"summarize", "summary", "overview", "briefly", "explain", "sažmi", "pregled"}

	mailKeywords = []string{"gmail", "outlook", "mail", "email"}

	invalidSenders = []string{"search", "find", "get", "show", "fetch", "email", "mail", "gmail", "outlook", "from", "for"}
	// Tokens never accepted when re-deriving a sender.
	senderSkipWords = []string{"gmail", "outlook", "mail", "email", "search", "find", "for", "subject"}
	senderHints     = []string{"from", "for ", "search for "}

	invalidSubjectWords = []string{"search", "find", "get", "show", "fetch", "email", "mail", "gmail", "outlook", "item", "items", "none", "null"}

	noiseWords = []string{"search", "find", "get", "show", "fetch", "email", "mail", "gmail", "outlook", "item", "items", "for", "from", "in", "about"}

	attachmentWords = []string{"with", "has", "attachment", "attached", "file", "files"}

	folderWords       = []string{"folder", "directory"}
	rejectedFolders   = []string{"the", "my"}
	explicitFromWords = []string{"from", "sender"}
)

var (
	subjectSingleQuotedRe = regexp.MustCompile(`(?i)subject\s+'(.+?)'`)
	subjectDoubleQuotedRe = regexp.MustCompile(`(?i)subject\s+"(.+?)"`)
	subjectUnquotedRe     = regexp.MustCompile(`(?i)subject\s+(.+?)(?:\s+(?:last|past|since|before)|$)`)
	subjectPrefixRe       = regexp.MustCompile(`(?i)subject\s+`)

	senderTokenRe = regexp.MustCompile(`(?i)\b(?:from|for)\s+(\S+)`)
	trailingPunct = regexp.MustCompile(`[?.,!:]+$`)
	edgePunctRe   = regexp.MustCompile(`^[?.,!]+|[?.,!]+$`)

	attachmentRe      = regexp.MustCompile(`(?i)(with|has)\s+(an\s+)?attachment|attached|file`)
	attachmentWordsRe = regexp.MustCompile(`(?i)\b(with|has|attachment|attached|file|files)\b`)

	senderPrepositionRe  = regexp.MustCompile(`(?i)^(from|for|search|get)\s+`)
	subjectPrepositionRe = regexp.MustCompile(`(?i)^(about|for|subject)\s+`)

	gmailProviderRe   = regexp.MustCompile(`(?i)\b(gmail|google|personal)\b`)
	outlookProviderRe = regexp.MustCompile(`(?i)\b(outlook|exchange|office|work|company)\b`)

	folderScopedRe = regexp.MustCompile(`(?i)(?:in the|folder)\s+['"]?([\p{L}\p{N}_]+)['"]?\s+folder`)
	folderNamedRe  = regexp.MustCompile(`(?i)folder\s+['"]?([\p{L}\p{N}_]+)['"]?`)
)

// Applied in order; each one sees the previous one's output.
var filesQueryPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^search\s+for\s+`),
	regexp.MustCompile(`(?i)^find\s+files?\s+about\s+`),
	regexp.MustCompile(`(?i)^find\s+files?\s+`),
	regexp.MustCompile(`(?i)^find\s+folders?\s+`),
	regexp.MustCompile(`(?i)^search\s+files?\s+for\s+`),
	regexp.MustCompile(`(?i)^search\s+`),
	regexp.MustCompile(`(?i)^get\s+`),
	regexp.MustCompile(`(?i)^folder\s+`),
	regexp.MustCompile(`(?i)^file\s+`),
}
