package mock

import "context"

// VisualDim is the embedding dimension of the mock image encoder, matching
// the production CLIP-style encoder.
const VisualDim = 512

// MockEncoder is a test double for ai.ImageEncoder.
// It allows custom behavior injection via function fields.
type MockEncoder struct {
	// EmbedImageFunc is called by EmbedImage if set.
	EmbedImageFunc func(ctx context.Context, image []byte) ([]float32, error)

	// EmbedImageTextFunc is called by EmbedImageText if set.
	EmbedImageTextFunc func(ctx context.Context, text string) ([]float32, error)

	callCount int
}

// NewMockEncoder creates a mock encoder with default deterministic behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockEncoder() *MockEncoder {
	return &MockEncoder{}
}

// EmbedImage generates a deterministic embedding from the image bytes.
func (m *MockEncoder) EmbedImage(ctx context.Context, image []byte) ([]float32, error) {
	m.callCount++

	if m.EmbedImageFunc != nil {
		return m.EmbedImageFunc(ctx, image)
	}

	return DeterministicVector(string(image), VisualDim), nil
}

// EmbedImageText generates a deterministic embedding from the text.
// The vector space intentionally overlaps with EmbedImage: an image whose
// bytes equal the text embeds to the same vector, which lets tests construct
// perfect visual matches.
func (m *MockEncoder) EmbedImageText(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EmbedImageTextFunc != nil {
		return m.EmbedImageTextFunc(ctx, text)
	}

	return DeterministicVector(text, VisualDim), nil
}

// CallCount returns the number of times any method was called.
func (m *MockEncoder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockEncoder) Reset() {
	m.callCount = 0
	m.EmbedImageFunc = nil
	m.EmbedImageTextFunc = nil
}
