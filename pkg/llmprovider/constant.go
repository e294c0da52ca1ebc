package llmprovider

const (
	LogPrefixGenerate = "pkg.llmprovider.Manager.GenerateContent"
)
