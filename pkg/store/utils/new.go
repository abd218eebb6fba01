// Package storeutils wires a ready-to-use store engine from the resolved
// data directory: effective config, stored API key, embedding adapter, and
// the store itself.
package storeutils

import (
	"log/slog"
	"path/filepath"

	"github.com/papercomputeco/mem/pkg/config"
	"github.com/papercomputeco/mem/pkg/credentials"
	embeddingutils "github.com/papercomputeco/mem/pkg/embeddings/utils"
	"github.com/papercomputeco/mem/pkg/store"
)

type NewStoreOpts struct {
	// DataDir overrides the data directory. Empty means standard
	// resolution (MEM_DATA_DIR, then ~/.mem).
	DataDir string

	// Logger receives store debug logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewStore builds the store engine bound to the resolved data directory.
// Fails with credentials.ErrNotConfigured when no API key has been stored.
func NewStore(o *NewStoreOpts) (*store.Store, error) {
	cfger, err := config.NewConfiger(o.DataDir)
	if err != nil {
		return nil, err
	}

	cfg, err := cfger.LoadConfig()
	if err != nil {
		return nil, err
	}

	apiKey, err := credentials.NewManager(cfger.DataDir()).Get()
	if err != nil {
		return nil, err
	}

	embedder, err := embeddingutils.NewEmbedder(&embeddingutils.NewEmbedderOpts{
		ProviderType: cfg.Embedding.Provider,
		APIKey:       apiKey,
		Model:        cfg.Embedding.Model,
		Dimensions:   cfg.Embedding.Dimensions,
	})
	if err != nil {
		return nil, err
	}

	return store.New(store.Config{
		Path:       filepath.Join(cfger.DataDir(), config.DataFileName),
		Dimensions: cfg.Embedding.Dimensions,
		Embedder:   embedder,
	}, o.Logger)
}
