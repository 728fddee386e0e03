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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for model service providers.
type Config struct {
	// EncoderHost is the base URL for the image/text encoder API.
	// Example: "http://localhost:7997/v1" for a local CLIP-serving endpoint
	EncoderHost string

	// EncoderModel is the image encoder model identifier.
	// Example: "clip-vit-base-patch32"
	EncoderModel string

	// CaptionHost is the base URL for the vision chat-completion API used
	// for captioning and mood analysis.
	CaptionHost string

	// CaptionModel is the image-to-text model identifier.
	// Example: "llava:7b", "blip-image-captioning-base"
	CaptionModel string

	// SentenceHost is the base URL for the optional dedicated sentence
	// encoder. Falls back to EncoderHost when empty and SentenceModel is set.
	SentenceHost string

	// SentenceModel is the optional sentence encoder model identifier.
	// When empty, caption embeddings use the image encoder's text branch.
	// Example: "all-MiniLM-L6-v2"
	SentenceModel string

	// MoodModel is the optional emotion classification model identifier.
	// When empty, mood analysis is disabled. Uses CaptionHost.
	MoodModel string

	// Accelerated reports whether the configured endpoints run on an
	// accelerator. Mood analysis is only enabled on accelerated providers.
	Accelerated bool
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEncoder sets the image encoder host and model.
func WithEncoder(host, model string) ConfigOption {
	return func(c *Config) {
		c.EncoderHost = host
		c.EncoderModel = model
	}
}

// WithCaptioner sets the caption service host and model.
func WithCaptioner(host, model string) ConfigOption {
	return func(c *Config) {
		c.CaptionHost = host
		c.CaptionModel = model
	}
}

// WithSentenceEncoder enables the dedicated sentence encoder.
func WithSentenceEncoder(host, model string) ConfigOption {
	return func(c *Config) {
		c.SentenceHost = host
		c.SentenceModel = model
	}
}

// WithMoodModel enables sparse mood analysis.
func WithMoodModel(model string) ConfigOption {
	return func(c *Config) {
		c.MoodModel = model
	}
}

// WithAccelerated marks the endpoints as accelerator-backed.
func WithAccelerated(accelerated bool) ConfigOption {
	return func(c *Config) {
		c.Accelerated = accelerated
	}
}

// WithHost sets every service host to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EncoderHost = host
		c.CaptionHost = host
		c.SentenceHost = host
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EncoderHost:  defaultHost,
		EncoderModel: "clip-vit-base-patch32",
		CaptionHost:  defaultHost,
		CaptionModel: "llava:7b",
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Secondary returns a copy of the configuration for non-primary workers:
// not accelerated and without mood analysis, so only one worker contends
// for the accelerator-backed optional services.
func (c *Config) Secondary() *Config {
	clone := *c
	clone.Accelerated = false
	clone.MoodModel = ""
	return &clone
}

// Normalize ensures the configuration is in a canonical form. It adds the
// /v1 suffix to hosts if missing, which is required by most OpenAI-compatible
// APIs (Ollama, LocalAI, vLLM, infinity, etc).
func (c *Config) Normalize() {
	c.EncoderHost = normalizeHost(c.EncoderHost)
	c.CaptionHost = normalizeHost(c.CaptionHost)
	c.SentenceHost = normalizeHost(c.SentenceHost)
	if c.SentenceModel != "" && c.SentenceHost == "" {
		c.SentenceHost = c.EncoderHost
	}
}

func normalizeHost(host string) string {
	if host == "" || strings.HasSuffix(host, "/v1") {
		return host
	}
	return strings.TrimSuffix(host, "/") + "/v1"
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EncoderHost == "" {
		return errors.New("ai config: EncoderHost is required")
	}
	if c.EncoderModel == "" {
		return errors.New("ai config: EncoderModel is required")
	}
	if c.CaptionHost == "" {
		return errors.New("ai config: CaptionHost is required")
	}
	if c.CaptionModel == "" {
		return errors.New("ai config: CaptionModel is required")
	}
	if c.MoodModel != "" && !c.Accelerated {
		return errors.New("ai config: MoodModel requires an accelerated provider")
	}
	return nil
}
