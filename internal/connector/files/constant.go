package files

import "time"

const (
	LogPrefix = "internal.connector.files"

	Name = "Files"

	DefaultMaxDepth  = 2
	DefaultTimeout   = 5 * time.Second
	DefaultReadLimit = 10000

	MsgOpened = "Opened successfully"
)

// Extensions whose content is searched and summarized as plain text.
var textExtensions = map[string]bool{
	".txt": true, ".md": true, ".csv": true, ".log": true, ".json": true,
	".xml": true, ".html": true, ".htm": true, ".yaml": true, ".yml": true,
	".ini": true, ".go": true, ".py": true, ".js": true, ".ts": true,
	".sql": true, ".rtf": true,
}

// Name aliases searched together.
var aliases = [][2]string{
	{"project", "projekt"},
}
