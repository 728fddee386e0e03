// Package badgercache caches frame annotations (captions, semantic
// features, moods and embeddings) in a BadgerDB store keyed by a BLAKE2b
// hash of the frame identity and the producing models. Re-indexing an
// output directory that was wiped, or extending an index with overlapping
// source folders, reuses cached annotations instead of re-running model
// inference.
package badgercache
