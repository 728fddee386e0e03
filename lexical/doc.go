// Package lexical implements the TF-IDF keyword index over frame captions
// and semantic features. Documents are tokenized into unigrams through
// trigrams with English stopwords removed, weighted with sublinear term
// frequency and smoothed inverse document frequency, and L2-normalized so
// scoring reduces to a sparse dot product (cosine similarity).
//
// The index is rebuilt from scratch on every finalize; it does not support
// incremental row appends.
package lexical
