// Package store implements the memory store engine: a collection of
// (value, description, embedding) records persisted to a single JSON file,
// queried by raw dot-product similarity against a query description.
//
// Every operation is a complete read-modify-write cycle: the collection is
// loaded from disk, worked on in memory, and (for Insert) rewritten in full.
// There is no cache held across operations and no concurrency control for
// multiple processes sharing one data file.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/papercomputeco/mem/pkg/embeddings"
)

// Config holds configuration for a Store.
type Config struct {
	// Path is the backing data file.
	Path string

	// Dimensions is the embedding width D. Fixed for the lifetime of a
	// data file; rows of any other width are rejected.
	Dimensions int

	// Embedder converts descriptions into vectors at insert and query time.
	Embedder embeddings.Embedder
}

// Store is the memory store engine.
type Store struct {
	file     *File
	embedder embeddings.Embedder
	logger   *slog.Logger
}

// New creates a Store bound to a data file and an embedder.
func New(c Config, logger *slog.Logger) (*Store, error) {
	if c.Path == "" {
		return nil, errors.New("data file path is required")
	}
	if c.Dimensions <= 0 {
		return nil, errors.New("embedding dimensions must be positive")
	}
	if c.Embedder == nil {
		return nil, errors.New("embedder is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		file:     NewFile(c.Path, c.Dimensions),
		embedder: c.Embedder,
		logger:   logger,
	}, nil
}

// Insert embeds description and appends (value, description) plus the new
// embedding row to the collection, then rewrites the data file. The
// embedding is computed before any in-memory mutation so a provider failure
// leaves the file untouched.
func (s *Store) Insert(ctx context.Context, value, description string) error {
	col, err := s.file.Load()
	if err != nil {
		return err
	}

	embedding, err := s.embed(ctx, description)
	if err != nil {
		return err
	}

	col.Memories = append(col.Memories, Memory{
		Value:       value,
		Description: description,
	})
	col.Embeddings = append(col.Embeddings, embedding)

	if err := s.file.Save(col); err != nil {
		return err
	}

	s.logger.Debug("memory inserted",
		"path", s.file.Path(),
		"memories", len(col.Memories),
	)

	return nil
}

// Get returns the single stored memory whose embedding has the highest dot
// product with the query description's embedding, or nil if the store is
// empty. When several rows share the maximum score the first one in storage
// order wins.
func (s *Store) Get(ctx context.Context, description string) (*ScoredMemory, error) {
	col, err := s.file.Load()
	if err != nil {
		return nil, err
	}

	if len(col.Memories) == 0 {
		return nil, nil
	}

	query, err := s.embed(ctx, description)
	if err != nil {
		return nil, err
	}

	best := 0
	bestScore := dot(col.Embeddings[0], query)
	for i := 1; i < len(col.Embeddings); i++ {
		if score := dot(col.Embeddings[i], query); score > bestScore {
			best = i
			bestScore = score
		}
	}

	return &ScoredMemory{
		Value:       col.Memories[best].Value,
		Description: col.Memories[best].Description,
		Score:       bestScore,
	}, nil
}

// List returns up to count stored memories ranked by descending dot product
// with the query description's embedding. Ties keep insertion order, so
// repeated calls over the same file always produce the same ordering.
func (s *Store) List(ctx context.Context, description string, count int) ([]ScoredMemory, error) {
	col, err := s.file.Load()
	if err != nil {
		return nil, err
	}

	if len(col.Memories) == 0 || count <= 0 {
		return []ScoredMemory{}, nil
	}

	query, err := s.embed(ctx, description)
	if err != nil {
		return nil, err
	}

	scored := make([]ScoredMemory, len(col.Memories))
	for i, m := range col.Memories {
		scored[i] = ScoredMemory{
			Value:       m.Value,
			Description: m.Description,
			Score:       dot(col.Embeddings[i], query),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if count < len(scored) {
		scored = scored[:count]
	}

	return scored, nil
}

// Close releases the underlying embedder.
func (s *Store) Close() error {
	return s.embedder.Close()
}

// embed calls the embedder and enforces the configured width. The adapter
// performs the same check against the provider's response; this one also
// covers embedders injected in tests.
func (s *Store) embed(ctx context.Context, description string) ([]float32, error) {
	embedding, err := s.embedder.Embed(ctx, description)
	if err != nil {
		return nil, err
	}

	if len(embedding) != s.file.dimensions {
		return nil, fmt.Errorf("%w: got %d dimensions (expected %d)",
			embeddings.ErrDimensionMismatch, len(embedding), s.file.dimensions)
	}

	return embedding, nil
}

// dot is the raw dot product of two equal-length vectors. No normalization:
// score magnitude depends on the vector norms as produced by the provider.
func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
