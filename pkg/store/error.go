package store

import "errors"

// ErrCorrupt is returned when the backing file is non-empty but its content
// cannot be parsed as a collection, or the parsed content violates the
// records/embeddings shape invariant.
var ErrCorrupt = errors.New("memory store data is corrupt")
