package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// File loads and saves a Collection at a single path.
//
// The on-disk format is a JSON object with a "memories" array and an
// "embeddings" matrix. An empty (zero byte) or missing file is a valid
// "no records" state and is detected via Stat without parsing. Save
// replaces the file's entire contents; there is no temp-file rename and no
// locking, so concurrent writers are last-writer-wins.
type File struct {
	path       string
	dimensions int
}

// NewFile creates a File bound to path. dimensions is the expected embedding
// width; loaded rows of any other width are rejected as corrupt.
func NewFile(path string, dimensions int) *File {
	return &File{
		path:       path,
		dimensions: dimensions,
	}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Load reads the collection from disk. A missing or zero-byte file yields an
// empty collection.
func (f *File) Load() (*Collection, error) {
	info, err := os.Stat(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return NewCollection(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	if info.Size() == 0 {
		return NewCollection(), nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}

	col := &Collection{}
	if err := json.Unmarshal(data, col); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrCorrupt, f.path, err)
	}

	if err := f.validate(col); err != nil {
		return nil, err
	}

	return col, nil
}

// Save serializes the full collection and rewrites the file in place.
func (f *File) Save(col *Collection) error {
	if col == nil {
		return errors.New("cannot save nil collection")
	}

	if err := f.validate(col); err != nil {
		return err
	}

	data, err := json.Marshal(col)
	if err != nil {
		return fmt.Errorf("encoding collection: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}

	return nil
}

// validate enforces the shape invariant: one embedding row per memory, every
// row exactly dimensions wide.
func (f *File) validate(col *Collection) error {
	if len(col.Memories) != len(col.Embeddings) {
		return fmt.Errorf("%w: %s holds %d memories but %d embedding rows",
			ErrCorrupt, f.path, len(col.Memories), len(col.Embeddings))
	}

	for i, row := range col.Embeddings {
		if len(row) != f.dimensions {
			return fmt.Errorf("%w: %s embedding row %d has %d dimensions (expected %d)",
				ErrCorrupt, f.path, i, len(row), f.dimensions)
		}
	}

	return nil
}
