// Package storage persists the four coupled index artifacts: the visual
// vector index, the text vector index, the lexical index and the metadata
// store. The four files describe the same rows, so they are always written
// together: each artifact goes to a temporary file first and the live files
// are only replaced after all four writes succeed.
//
// Artifacts are zstd-compressed with a small framing header carrying a
// magic number and format version.
package storage
