// Package nlp provides the lightweight text analysis used for captions and
// search queries: tokenization, English lemmatization, semantic feature
// extraction and bounded synonym-based query expansion.
//
// Expansion draws from an embedded synonym table rather than a full lexical
// database. The table covers the visual domain vocabulary (people, clothing,
// colors, actions, rooms, styles); words outside it simply pass through
// unexpanded, which keeps expansion cheap and predictable.
package nlp
