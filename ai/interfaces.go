package ai

import "context"

// ImageEncoder embeds images and text into one shared embedding space.
// Implementations must be thread-safe for concurrent use.
type ImageEncoder interface {
	// EmbedImage generates a vector embedding for an encoded (JPEG/PNG) image.
	// The returned vector is deterministic for fixed model weights and input.
	EmbedImage(ctx context.Context, image []byte) ([]float32, error)

	// EmbedImageText generates a vector embedding for text in the image
	// encoder's own embedding space. This is the text branch used to match
	// queries against visual embeddings, and it also serves as the fallback
	// caption embedder when no dedicated sentence encoder is configured.
	EmbedImageText(ctx context.Context, text string) ([]float32, error)
}

// Captioner generates free-text descriptions for images.
// Implementations must be thread-safe for concurrent use.
type Captioner interface {
	// Caption generates an unconditioned description of the image.
	Caption(ctx context.Context, image []byte) (string, error)

	// Answer generates an answer to a targeted question about the image.
	// Degenerate answers (yes/no/maybe/unknown, question echoes) are the
	// caller's responsibility to filter.
	Answer(ctx context.Context, image []byte, question string) (string, error)
}

// TextEmbedder generates vector embeddings from text.
// Implementations must be thread-safe for concurrent use.
type TextEmbedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch, in the same order as the input texts.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// MoodAnalyzer assigns a sparse emotion label to an image.
// Implementations must be thread-safe for concurrent use.
type MoodAnalyzer interface {
	// AnalyzeMood returns one of MoodLabels, or an empty string when no
	// emotion can be determined.
	AnalyzeMood(ctx context.Context, image []byte) (string, error)
}

// Provider aggregates the model services used by the annotator and the query
// engine. Optional capabilities are decided once at construction time:
// SentenceEmbedder and MoodAnalyzer return nil when the capability is not
// configured, and callers must check for nil rather than probing ad hoc.
type Provider interface {
	// ImageEncoder returns the visual embedding service.
	ImageEncoder() ImageEncoder

	// Captioner returns the image-to-text service.
	Captioner() Captioner

	// SentenceEmbedder returns the dedicated sentence encoder, or nil when
	// none is configured. Callers fall back to the image encoder's text
	// branch so the text embedding dimension stays consistent for the whole
	// provider lifetime.
	SentenceEmbedder() TextEmbedder

	// MoodAnalyzer returns the optional emotion analysis service, or nil.
	MoodAnalyzer() MoodAnalyzer

	// Accelerated reports whether the provider's endpoints are backed by an
	// accelerator. Mood analysis is only performed on accelerated providers.
	Accelerated() bool

	// Close releases resources held by the provider and its services.
	Close() error
}
