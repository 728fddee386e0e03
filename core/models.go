package core

//go:generate go run ../cmd/musgen

// ID is a unique identifier for an indexed frame.
// IDs are assigned sequentially by the index builder and are never reused;
// the counter persists across indexing runs.
type ID int64

// FrameRecord describes one sampled video frame and its generated annotations.
type FrameRecord struct {
	Id        ID
	VideoPath string  // Absolute, normalized path of the source video
	Timestamp float64 // Seconds into the source video
	Caption   string  // Concatenated multi-prompt description
	// SemanticFeatures holds lemmatized tokens plus bounded synonym
	// expansions derived from the caption.
	SemanticFeatures []string
	Mood             string // Sparse emotion label; empty when not analyzed
}

// Annotation is the full output of the frame annotator for one frame:
// the textual fields of a FrameRecord plus both embedding vectors.
type Annotation struct {
	Caption          string
	SemanticFeatures []string
	Mood             string
	Visual           []float32
	Text             []float32
}

// EmbeddingPair carries the two embedding vectors for one frame, parallel to
// a FrameRecord by ID. Both vectors are L2-normalized before indexing so
// inner product behaves as cosine similarity.
type EmbeddingPair struct {
	Visual []float32
	Text   []float32
}

// VideoAggregate summarizes all indexed frames of one video.
// It is derived from FrameRecords and recomputed on every save.
type VideoAggregate struct {
	VideoPath        string
	Captions         []string
	MoodCounts       map[string]int64
	DominantMood     string
	SemanticFeatures []string // Union of all frame features
}

// SearchResult is one ranked video returned by the query engine.
type SearchResult struct {
	VideoPath  string
	Timestamp  float64 // Timestamp of the representative (max-scoring) frame
	Caption    string  // Caption of the representative frame
	Score      float64
	FrameCount int // Number of frames of this video that matched the query
}

// Weights configures the multi-modal fusion of similarity scores.
type Weights struct {
	Visual  float64
	Text    float64
	Lexical float64
}

// DefaultWeights returns the default fusion weights.
func DefaultWeights() Weights {
	return Weights{Visual: 0.35, Text: 0.35, Lexical: 0.30}
}
