// Package openai implements pkg/embeddings' Embedder against the OpenAI
// embeddings API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	retry "github.com/sethvargo/go-retry"

	"github.com/papercomputeco/mem/pkg/embeddings"
)

const (
	// DefaultModel is the default embedding model.
	DefaultModel = "text-embedding-ada-002"

	// DefaultDimensions is the vector width produced by DefaultModel.
	DefaultDimensions = 1536
)

// Embedder wraps OpenAI's embedding API.
type Embedder struct {
	client     *openai.Client
	model      string
	dimensions int
}

// Config holds configuration for the OpenAI embedder.
type Config struct {
	// APIKey authenticates against the OpenAI API. Required.
	APIKey string

	// BaseURL overrides the OpenAI API URL. Used by tests to point the
	// client at a local server. Defaults to the public API if empty.
	BaseURL string

	// Model is the embedding model. Defaults to DefaultModel if empty.
	Model string

	// Dimensions is the expected vector width. Responses of any other
	// width are rejected. Defaults to DefaultDimensions if zero.
	Dimensions int
}

// NewEmbedder creates a new embedder using OpenAI's embedding API.
func NewEmbedder(c Config) (*Embedder, error) {
	if c.APIKey == "" {
		return nil, errors.New("API key is required")
	}

	model := c.Model
	if model == "" {
		model = DefaultModel
	}

	dimensions := c.Dimensions
	if dimensions == 0 {
		dimensions = DefaultDimensions
	}

	clientConfig := openai.DefaultConfig(c.APIKey)
	if c.BaseURL != "" {
		clientConfig.BaseURL = c.BaseURL
	}

	return &Embedder{
		client:     openai.NewClientWithConfig(clientConfig),
		model:      model,
		dimensions: dimensions,
	}, nil
}

// Embed converts text into a vector embedding. Transient failures (transport
// errors, 429, 5xx) are retried with bounded backoff; everything else fails
// immediately. The store issues no retries of its own.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	var resp openai.EmbeddingResponse

	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		resp, err = e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Input: []string{text},
			Model: openai.EmbeddingModel(e.model),
		})
		if err == nil {
			return nil
		}
		if retryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", embeddings.ErrProvider, err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: no embeddings returned", embeddings.ErrProvider)
	}

	embedding := resp.Data[0].Embedding
	if len(embedding) != e.dimensions {
		return nil, fmt.Errorf("%w: model %s returned %d dimensions (expected %d)",
			embeddings.ErrDimensionMismatch, e.model, len(embedding), e.dimensions)
	}

	return embedding, nil
}

// Close releases resources held by the embedder.
func (e *Embedder) Close() error {
	return nil
}

// retryable reports whether err is worth retrying: rate limits, server-side
// failures, and transport errors. Client-side API errors (bad key, bad
// request) are not.
func retryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests ||
			apiErr.HTTPStatusCode >= http.StatusInternalServerError
	}
	return true
}

var _ embeddings.Embedder = (*Embedder)(nil)
