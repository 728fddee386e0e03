package mock

import (
	"context"
	"fmt"
	"hash/fnv"
)

// MockCaptioner is a test double for ai.Captioner.
// It allows custom behavior injection via function fields.
type MockCaptioner struct {
	// CaptionFunc is called by Caption if set.
	CaptionFunc func(ctx context.Context, image []byte) (string, error)

	// AnswerFunc is called by Answer if set.
	AnswerFunc func(ctx context.Context, image []byte, question string) (string, error)

	callCount int
}

// NewMockCaptioner creates a mock captioner with default deterministic behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockCaptioner() *MockCaptioner {
	return &MockCaptioner{}
}

// Caption returns a deterministic caption derived from the image bytes.
func (m *MockCaptioner) Caption(ctx context.Context, image []byte) (string, error) {
	m.callCount++

	if m.CaptionFunc != nil {
		return m.CaptionFunc(ctx, image)
	}

	h := fnv.New32a()
	h.Write(image)
	return fmt.Sprintf("a scene with object %d", h.Sum32()%1000), nil
}

// Answer returns a degenerate answer by default, so default mock captions
// consist of the unconditioned caption only.
func (m *MockCaptioner) Answer(ctx context.Context, image []byte, question string) (string, error) {
	m.callCount++

	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, image, question)
	}

	return "unknown", nil
}

// CallCount returns the number of times any method was called.
func (m *MockCaptioner) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockCaptioner) Reset() {
	m.callCount = 0
	m.CaptionFunc = nil
	m.AnswerFunc = nil
}
