package config

const (
	// DefaultEmbeddingProvider is the only provider currently wired.
	DefaultEmbeddingProvider = "openai"

	// DefaultEmbeddingModel is used when no model is configured.
	DefaultEmbeddingModel = "text-embedding-ada-002"

	// DefaultEmbeddingDimensions is the vector width of DefaultEmbeddingModel.
	DefaultEmbeddingDimensions = 1536

	// DefaultServeListen is the default MCP server listen address.
	DefaultServeListen = ":8082"

	// DataFileName is the store file name inside the data directory.
	DataFileName = "store.json"
)

// NewDefaultConfig returns a fully-populated Config with sane defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Embedding: EmbeddingConfig{
			Provider:   DefaultEmbeddingProvider,
			Model:      DefaultEmbeddingModel,
			Dimensions: DefaultEmbeddingDimensions,
		},
		Serve: ServeConfig{
			Listen: DefaultServeListen,
		},
	}
}
