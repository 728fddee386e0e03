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
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/framesift/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Captioner implements ai.Captioner using a vision chat model behind an
// OpenAI-compatible API.
type Captioner struct {
	client llms.Model
	logger *slog.Logger
}

// captionInstruction is the prompt for unconditioned captions. Short, so the
// model describes rather than narrates.
const captionInstruction = "Describe this image in one short sentence."

// newCaptioner is an internal constructor that returns the concrete type.
func newCaptioner(config *ai.Config) (*Captioner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.CaptionHost),
		openai.WithToken("none"),
		openai.WithModel(config.CaptionModel),
	)
	if err != nil {
		return nil, err
	}

	return &Captioner{
		client: client,
		logger: slog.Default().With("component", "openai-captioner"),
	}, nil
}

// NewCaptioner creates a new captioner using the provided configuration.
//
// Returns ai.Captioner interface to enforce abstraction.
func NewCaptioner(config *ai.Config) (ai.Captioner, error) {
	return newCaptioner(config)
}

// Caption generates an unconditioned description of the image.
func (c *Captioner) Caption(ctx context.Context, image []byte) (string, error) {
	return c.generate(ctx, image, captionInstruction, 40)
}

// Answer generates an answer to a targeted question about the image.
func (c *Captioner) Answer(ctx context.Context, image []byte, question string) (string, error) {
	return c.generate(ctx, image, question, 25)
}

func (c *Captioner) generate(ctx context.Context, image []byte, prompt string, maxTokens int) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.BinaryPart("image/jpeg", image),
				llms.TextPart(prompt),
			},
		},
	}

	response, err := c.client.GenerateContent(ctx, content,
		llms.WithTemperature(0.0),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		c.logger.Error("caption generation failed", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		return "", fmt.Errorf("caption model returned no choices")
	}

	return strings.TrimSpace(response.Choices[0].Content), nil
}
