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


package openai

import (
	"log/slog"

	"github.com/poiesic/framesift/ai"
)

// Provider implements ai.Provider using OpenAI-compatible services.
// The optional sentence encoder and mood analyzer are constructed once,
// here, based on the configuration; absent capabilities stay nil.
type Provider struct {
	config      *ai.Config
	encoder     *Encoder
	captioner   *Captioner
	sentence    *Embedder
	mood        *MoodAnalyzer
	accelerated bool
	logger      *slog.Logger
}

// NewProvider creates a new model provider with OpenAI-compatible services.
// The config is validated and normalized before use.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	encoder, err := newEncoder(config)
	if err != nil {
		return nil, err
	}

	captioner, err := newCaptioner(config)
	if err != nil {
		return nil, err
	}

	p := &Provider{
		config:      config,
		encoder:     encoder,
		captioner:   captioner,
		accelerated: config.Accelerated,
		logger:      slog.Default().With("component", "openai-provider"),
	}

	// Optional capabilities, decided once at startup.
	if config.SentenceModel != "" {
		sentence, err := newEmbedder(config)
		if err != nil {
			// A missing sentence encoder degrades to the image encoder's
			// text branch; it never fails provider construction.
			p.logger.Warn("sentence encoder unavailable, captions will use the image encoder text branch", "err", err)
		} else {
			p.sentence = sentence
		}
	}

	if config.MoodModel != "" && config.Accelerated {
		mood, err := newMoodAnalyzer(config)
		if err != nil {
			p.logger.Warn("mood analyzer unavailable, frames will carry no mood", "err", err)
		} else {
			p.mood = mood
		}
	}

	return p, nil
}

// ImageEncoder returns the visual embedding service.
func (p *Provider) ImageEncoder() ai.ImageEncoder {
	return p.encoder
}

// Captioner returns the image-to-text service.
func (p *Provider) Captioner() ai.Captioner {
	return p.captioner
}

// SentenceEmbedder returns the dedicated sentence encoder, or nil.
func (p *Provider) SentenceEmbedder() ai.TextEmbedder {
	if p.sentence == nil {
		return nil
	}
	return p.sentence
}

// MoodAnalyzer returns the optional emotion analysis service, or nil.
func (p *Provider) MoodAnalyzer() ai.MoodAnalyzer {
	if p.mood == nil {
		return nil
	}
	return p.mood
}

// Accelerated reports whether the endpoints are accelerator-backed.
func (p *Provider) Accelerated() bool {
	return p.accelerated
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
