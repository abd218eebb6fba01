package store

// Memory is a stored record: an opaque value to recall later, and the
// description whose embedding is used for semantic retrieval.
type Memory struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Collection is the full persisted state of a store: an ordered sequence of
// memories plus an embedding matrix with one row per memory. Row i is always
// the embedding of Memories[i].Description as produced at insertion time —
// it is never recomputed on read, so a model change leaves older rows as
// they were written.
type Collection struct {
	Memories   []Memory    `json:"memories"`
	Embeddings [][]float32 `json:"embeddings"`
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{
		Memories:   []Memory{},
		Embeddings: [][]float32{},
	}
}

// ScoredMemory is a transient query result: a memory paired with its raw
// dot-product similarity score. Never persisted.
type ScoredMemory struct {
	Value       string  `json:"value"`
	Description string  `json:"description"`
	Score       float32 `json:"score"`
}
