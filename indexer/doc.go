// Package indexer turns folders of video files into the persisted index
// artifacts. It scans for videos, samples frames, annotates each frame with
// captions, embeddings, semantic features and moods through a pool of
// workers, and accumulates the results into an incremental index build.
//
// Indexing is append-only: an incremental run loads the existing artifacts,
// skips videos already covered, annotates only the new ones and rewrites
// the artifact set atomically. Frame IDs are assigned in scan order, so two
// runs over the same new videos produce identical indices.
package indexer
