// Package index implements the in-process vector indices used for frame
// embeddings: an exact flat index for small collections and an inverted-file
// (IVF) index with trained centroids for large ones. Both rank by inner
// product over L2-normalized vectors, so scores are cosine similarities.
//
// Indices keep their raw vectors and external IDs, which makes them fully
// reconstructable: an existing index can be loaded, its vectors extracted,
// and a new index rebuilt with additional rows appended.
package index
