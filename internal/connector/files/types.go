package files

import "time"

// Config configures the file-system connector.
type Config struct {
	// Roots are walked in order. Defaults to the home and working directories.
	Roots     []string
	MaxDepth  int
	Timeout   time.Duration
	ReadLimit int
	// Opener opens a path in the desktop's default application.
	Opener func(path string) error
}

type entry struct {
	name    string
	path    string
	isDir   bool
	size    int64
	modTime time.Time
}
