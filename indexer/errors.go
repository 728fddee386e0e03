package indexer

import "errors"

var (
	// ErrProviderRequired indicates that no model provider factory was supplied.
	ErrProviderRequired = errors.New("model provider is required")

	// ErrOutputDirRequired indicates a missing output directory.
	ErrOutputDirRequired = errors.New("output directory is required")

	// ErrBuilderFinalized indicates an append after finalization.
	ErrBuilderFinalized = errors.New("index builder already finalized")

	// ErrEmbeddingDimensionChanged indicates that the embeddings produced in
	// this run do not match the dimensions of the loaded index.
	ErrEmbeddingDimensionChanged = errors.New("embedding dimension differs from existing index")
)
