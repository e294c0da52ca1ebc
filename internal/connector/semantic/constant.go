package semantic

const (
	LogPrefix = "internal.connector.semantic"

	Name = "Semantic"

	DefaultCollection = "jasper_docs"

	// Chunks fetched per requested file, so deduplication still fills the limit.
	overfetch = 4
)

// Payload keys written by the indexer.
const (
	PayloadSource    = "source"
	PayloadFilename  = "filename"
	PayloadDirectory = "directory"
	PayloadParent    = "parent"
	PayloadText      = "text"
	PayloadChunk     = "chunk"
	PayloadHash      = "hash"
	PayloadModified  = "modified"
)
