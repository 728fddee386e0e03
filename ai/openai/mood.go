package openai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/framesift/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// MoodAnalyzer implements ai.MoodAnalyzer by asking the vision chat model
// for the dominant facial emotion in the frame.
type MoodAnalyzer struct {
	client llms.Model
	prompt string
	logger *slog.Logger
}

// newMoodAnalyzer is an internal constructor that returns the concrete type.
func newMoodAnalyzer(config *ai.Config) (*MoodAnalyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.CaptionHost),
		openai.WithToken("none"),
		openai.WithModel(config.MoodModel),
	)
	if err != nil {
		return nil, err
	}

	prompt := "What is the dominant facial emotion in this image? Answer with exactly one word from: " +
		strings.Join(ai.MoodLabels, ", ") +
		". Answer \"none\" if no face is visible."

	return &MoodAnalyzer{
		client: client,
		prompt: prompt,
		logger: slog.Default().With("component", "openai-mood"),
	}, nil
}

// NewMoodAnalyzer creates a new mood analyzer using the provided configuration.
//
// Returns ai.MoodAnalyzer interface to enforce abstraction.
func NewMoodAnalyzer(config *ai.Config) (ai.MoodAnalyzer, error) {
	return newMoodAnalyzer(config)
}

// AnalyzeMood returns one of ai.MoodLabels, or an empty string when the
// model's answer is not a known label.
func (m *MoodAnalyzer) AnalyzeMood(ctx context.Context, image []byte) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.BinaryPart("image/jpeg", image),
				llms.TextPart(m.prompt),
			},
		},
	}

	response, err := m.client.GenerateContent(ctx, content,
		llms.WithTemperature(0.0),
		llms.WithMaxTokens(5),
	)
	if err != nil {
		return "", err
	}
	if len(response.Choices) < 1 {
		return "", nil
	}

	answer := strings.ToLower(strings.TrimSpace(strings.Trim(response.Choices[0].Content, ".\"' ")))
	for _, label := range ai.MoodLabels {
		if answer == label {
			return label, nil
		}
	}

	m.logger.Debug("mood answer not a known label", "answer", answer)
	return "", nil
}
