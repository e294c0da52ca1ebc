package ollama

import "time"

const (
	// DefaultBaseURL is the local Ollama daemon
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default local model
	DefaultModel = "llama3.2"

	// DefaultTimeout covers cold model loads
	DefaultTimeout = 120 * time.Second
)
