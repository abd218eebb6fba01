// Package embeddingutils is the embeddings utility package
package embeddingutils

import (
	"fmt"

	"github.com/papercomputeco/mem/pkg/embeddings"
	"github.com/papercomputeco/mem/pkg/embeddings/openai"
)

type NewEmbedderOpts struct {
	ProviderType string
	APIKey       string
	BaseURL      string
	Model        string
	Dimensions   int
}

func NewEmbedder(o *NewEmbedderOpts) (embeddings.Embedder, error) {
	switch o.ProviderType {
	case "openai":
		return openai.NewEmbedder(openai.Config{
			APIKey:     o.APIKey,
			BaseURL:    o.BaseURL,
			Model:      o.Model,
			Dimensions: o.Dimensions,
		})
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", o.ProviderType)
	}
}
