package indexer

const (
	LogPrefix = "internal.indexer"

	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 100
	DefaultBatchSize    = 32
	DefaultVectorSize   = 1024
	DefaultStatusFile   = "index_status.json"

	// Files larger than this are read only up to the limit.
	maxFileBytes = 10 << 20

	scrollPageSize = 256
	distanceCosine = "Cosine"
)

var defaultExtensions = []string{".txt", ".md", ".html", ".htm", ".csv", ".json", ".log"}

// Directories never walked. Hidden directories are skipped as well.
var skipDirs = map[string]bool{
	"AppData":      true,
	"LocalLow":     true,
	"Roaming":      true,
	"node_modules": true,
	"venv":         true,
	"vendor":       true,
	"Pictures":     true,
	"Music":        true,
	"Videos":       true,
	"Saved Games":  true,
	"OneDrive":     true,
}
