package indexer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/framesift/ai"
	"github.com/poiesic/framesift/ai/mock"
	"github.com/poiesic/framesift/media"
	"github.com/poiesic/framesift/nlp"
	"github.com/poiesic/framesift/storage/badgercache"
)

func newTestAnnotator(t *testing.T, provider ai.Provider, cache *badgercache.Cache) *Annotator {
	t.Helper()
	expander, err := nlp.NewExpander()
	require.NoError(t, err)
	return NewAnnotator(provider, expander, cache, "test-models")
}

func TestAnnotateFrame(t *testing.T) {
	ctx := context.Background()
	provider := mock.NewMockProvider()
	annotator := newTestAnnotator(t, provider, nil)

	frame := media.Frame{Timestamp: 1.5, JPEG: []byte("frame-bytes")}
	annotation, err := annotator.Annotate(ctx, "/videos/a.mp4", frame, 0)
	require.NoError(t, err)

	t.Run("caption from captioner", func(t *testing.T) {
		// Default mock answers are degenerate, so only the unconditioned
		// caption survives.
		assert.True(t, strings.HasPrefix(annotation.Caption, "a scene with object"))
		assert.NotContains(t, annotation.Caption, ai.CaptionSeparator)
	})

	t.Run("semantic features extracted", func(t *testing.T) {
		assert.Contains(t, annotation.SemanticFeatures, "scene")
		assert.Contains(t, annotation.SemanticFeatures, "object")
	})

	t.Run("both embeddings populated", func(t *testing.T) {
		assert.Len(t, annotation.Visual, mock.VisualDim)
		assert.Len(t, annotation.Text, mock.SentenceDim)
	})

	t.Run("no mood without analyzer", func(t *testing.T) {
		assert.Empty(t, annotation.Mood)
	})
}

func TestAnnotateCaptionFragments(t *testing.T) {
	ctx := context.Background()
	provider := mock.NewMockProvider()
	captioner := provider.(*mock.MockProvider).GetMockCaptioner()
	captioner.AnswerFunc = func(ctx context.Context, image []byte, question string) (string, error) {
		if strings.Contains(question, "colors") {
			return "red and blue", nil
		}
		return "unknown", nil
	}

	annotator := newTestAnnotator(t, provider, nil)
	annotation, err := annotator.Annotate(ctx, "/videos/a.mp4", media.Frame{JPEG: []byte("img")}, 0)
	require.NoError(t, err)

	parts := strings.Split(annotation.Caption, ai.CaptionSeparator)
	require.Len(t, parts, 2)
	assert.Equal(t, "What colors are prominent in this image: red and blue", parts[1])
}

func TestAnnotatePlaceholderCaption(t *testing.T) {
	ctx := context.Background()
	provider := mock.NewMockProvider()
	captioner := provider.(*mock.MockProvider).GetMockCaptioner()
	captioner.CaptionFunc = func(ctx context.Context, image []byte) (string, error) {
		return "", errors.New("caption model down")
	}
	captioner.AnswerFunc = func(ctx context.Context, image []byte, question string) (string, error) {
		return "no", nil
	}

	annotator := newTestAnnotator(t, provider, nil)
	annotation, err := annotator.Annotate(ctx, "/videos/a.mp4", media.Frame{JPEG: []byte("img")}, 0)
	require.NoError(t, err)
	assert.Equal(t, ai.PlaceholderCaption, annotation.Caption)
}

func TestAnnotateMoodSampling(t *testing.T) {
	ctx := context.Background()
	provider := mock.NewMockProvider(mock.WithMood())
	annotator := newTestAnnotator(t, provider, nil)
	frame := media.Frame{JPEG: []byte("img")}

	t.Run("sampled frame gets mood", func(t *testing.T) {
		annotation, err := annotator.Annotate(ctx, "/videos/a.mp4", frame, 0)
		require.NoError(t, err)
		assert.Equal(t, "neutral", annotation.Mood)
	})

	t.Run("off-cycle frame skipped", func(t *testing.T) {
		annotation, err := annotator.Annotate(ctx, "/videos/a.mp4", frame, 3)
		require.NoError(t, err)
		assert.Empty(t, annotation.Mood)
	})

	t.Run("every fifth frame sampled", func(t *testing.T) {
		annotation, err := annotator.Annotate(ctx, "/videos/a.mp4", frame, 10)
		require.NoError(t, err)
		assert.Equal(t, "neutral", annotation.Mood)
	})
}

func TestAnnotateEncoderFailurePropagates(t *testing.T) {
	ctx := context.Background()
	provider := mock.NewMockProvider()
	encoder := provider.(*mock.MockProvider).GetMockEncoder()
	encoder.EmbedImageFunc = func(ctx context.Context, image []byte) ([]float32, error) {
		return nil, errors.New("encoder down")
	}

	annotator := newTestAnnotator(t, provider, nil)
	_, err := annotator.Annotate(ctx, "/videos/a.mp4", media.Frame{JPEG: []byte("img")}, 0)
	assert.Error(t, err)
}

func TestAnnotateTextFallbackWithoutSentenceEmbedder(t *testing.T) {
	ctx := context.Background()
	provider := mock.NewMockProvider(mock.WithoutSentenceEmbedder())
	annotator := newTestAnnotator(t, provider, nil)

	annotation, err := annotator.Annotate(ctx, "/videos/a.mp4", media.Frame{JPEG: []byte("img")}, 0)
	require.NoError(t, err)
	// Fallback embeds in the image encoder's space.
	assert.Len(t, annotation.Text, mock.VisualDim)
}

func TestAnnotateUsesCache(t *testing.T) {
	ctx := context.Background()
	cache, err := badgercache.Open("", true)
	require.NoError(t, err)
	defer cache.Close()

	provider := mock.NewMockProvider()
	annotator := newTestAnnotator(t, provider, cache)
	frame := media.Frame{Timestamp: 2.0, JPEG: []byte("img")}

	first, err := annotator.Annotate(ctx, "/videos/a.mp4", frame, 0)
	require.NoError(t, err)
	callsAfterFirst := provider.(*mock.MockProvider).GetMockEncoder().CallCount()

	second, err := annotator.Annotate(ctx, "/videos/a.mp4", frame, 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, callsAfterFirst, provider.(*mock.MockProvider).GetMockEncoder().CallCount(),
		"cache hit must not re-run the encoder")
}
