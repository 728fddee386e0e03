// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mock

import (
	"context"

	"github.com/poiesic/framesift/ai"
)

// MockProvider is a test double for ai.Provider.
// It aggregates mock encoder, captioner and embedder instances.
type MockProvider struct {
	encoder     *MockEncoder
	captioner   *MockCaptioner
	sentence    *MockEmbedder
	mood        *MockMoodAnalyzer
	accelerated bool
}

// MockMoodAnalyzer is a test double for ai.MoodAnalyzer.
type MockMoodAnalyzer struct {
	// AnalyzeMoodFunc is called by AnalyzeMood if set.
	AnalyzeMoodFunc func(ctx context.Context, image []byte) (string, error)

	callCount int
}

// NewMockMoodAnalyzer creates a mock mood analyzer that reports "neutral".
func NewMockMoodAnalyzer() *MockMoodAnalyzer {
	return &MockMoodAnalyzer{}
}

// AnalyzeMood returns "neutral" unless custom behavior is injected.
func (m *MockMoodAnalyzer) AnalyzeMood(ctx context.Context, image []byte) (string, error) {
	m.callCount++

	if m.AnalyzeMoodFunc != nil {
		return m.AnalyzeMoodFunc(ctx, image)
	}

	return "neutral", nil
}

// CallCount returns the number of times AnalyzeMood was called.
func (m *MockMoodAnalyzer) CallCount() int {
	return m.callCount
}

// ProviderOption configures a MockProvider.
type ProviderOption func(*MockProvider)

// WithoutSentenceEmbedder removes the dedicated sentence encoder, so callers
// exercise the image-encoder-text-branch fallback.
func WithoutSentenceEmbedder() ProviderOption {
	return func(p *MockProvider) {
		p.sentence = nil
	}
}

// WithMood adds a mock mood analyzer and marks the provider accelerated.
func WithMood() ProviderOption {
	return func(p *MockProvider) {
		p.mood = NewMockMoodAnalyzer()
		p.accelerated = true
	}
}

// NewMockProvider creates a new mock provider with default mock services:
// encoder, captioner and sentence embedder present, no mood analyzer,
// not accelerated.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use the GetMock* accessors for test assertions.
func NewMockProvider(opts ...ProviderOption) ai.Provider {
	p := &MockProvider{
		encoder:   NewMockEncoder(),
		captioner: NewMockCaptioner(),
		sentence:  NewMockEmbedder(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ImageEncoder returns the mock image encoder.
func (p *MockProvider) ImageEncoder() ai.ImageEncoder {
	return p.encoder
}

// Captioner returns the mock captioner.
func (p *MockProvider) Captioner() ai.Captioner {
	return p.captioner
}

// SentenceEmbedder returns the mock sentence embedder, or nil.
func (p *MockProvider) SentenceEmbedder() ai.TextEmbedder {
	if p.sentence == nil {
		return nil
	}
	return p.sentence
}

// MoodAnalyzer returns the mock mood analyzer, or nil.
func (p *MockProvider) MoodAnalyzer() ai.MoodAnalyzer {
	if p.mood == nil {
		return nil
	}
	return p.mood
}

// Accelerated reports whether the mock is configured as accelerator-backed.
func (p *MockProvider) Accelerated() bool {
	return p.accelerated
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEncoder returns the underlying mock encoder for test assertions.
func (p *MockProvider) GetMockEncoder() *MockEncoder {
	return p.encoder
}

// GetMockCaptioner returns the underlying mock captioner for test assertions.
func (p *MockProvider) GetMockCaptioner() *MockCaptioner {
	return p.captioner
}

// GetMockSentenceEmbedder returns the underlying mock sentence embedder for
// test assertions. May be nil when constructed WithoutSentenceEmbedder.
func (p *MockProvider) GetMockSentenceEmbedder() *MockEmbedder {
	return p.sentence
}
