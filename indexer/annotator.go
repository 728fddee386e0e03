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


package indexer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/framesift/ai"
	"github.com/poiesic/framesift/core"
	"github.com/poiesic/framesift/media"
	"github.com/poiesic/framesift/nlp"
	"github.com/poiesic/framesift/storage/badgercache"
)

// moodSampleEvery controls how sparsely mood analysis runs: only every
// n-th frame of a video is analyzed, and only on accelerated providers.
const moodSampleEvery = 5

// Annotator produces a full frame annotation: caption, semantic features,
// both embeddings and an optional mood label.
type Annotator struct {
	provider ai.Provider
	expander *nlp.Expander
	cache    *badgercache.Cache
	modelTag string
	logger   *slog.Logger
}

// NewAnnotator creates an Annotator. The cache may be nil, in which case
// every frame runs full inference. modelTag identifies the model set for
// cache keying.
func NewAnnotator(provider ai.Provider, expander *nlp.Expander, cache *badgercache.Cache, modelTag string) *Annotator {
	return &Annotator{
		provider: provider,
		expander: expander,
		cache:    cache,
		modelTag: modelTag,
		logger:   slog.Default().With("component", "annotator"),
	}
}

// Annotate annotates a single sampled frame. frameNum is the frame's
// ordinal within its video and drives sparse mood sampling.
func (a *Annotator) Annotate(ctx context.Context, videoPath string, frame media.Frame, frameNum int) (*core.Annotation, error) {
	var cacheKey []byte
	if a.cache != nil {
		cacheKey = badgercache.Key(videoPath, frame.Timestamp, a.modelTag)
		cached, found, err := a.cache.Get(cacheKey)
		if err != nil {
			a.logger.Warn("annotation cache read failed", "video", videoPath, "error", err)
		} else if found {
			return cached, nil
		}
	}

	caption := a.buildCaption(ctx, frame.JPEG)

	visual, err := a.provider.ImageEncoder().EmbedImage(ctx, frame.JPEG)
	if err != nil {
		return nil, fmt.Errorf("visual embedding failed: %w", err)
	}

	text, err := a.embedCaption(ctx, caption)
	if err != nil {
		return nil, fmt.Errorf("caption embedding failed: %w", err)
	}

	annotation := &core.Annotation{
		Caption:          caption,
		SemanticFeatures: a.expander.SemanticFeatures(caption),
		Visual:           visual,
		Text:             text,
	}

	if analyzer := a.provider.MoodAnalyzer(); analyzer != nil && a.provider.Accelerated() && frameNum%moodSampleEvery == 0 {
		mood, err := analyzer.AnalyzeMood(ctx, frame.JPEG)
		if err != nil {
			a.logger.Debug("mood analysis failed", "video", videoPath, "timestamp", frame.Timestamp, "error", err)
		} else {
			annotation.Mood = mood
		}
	}

	if a.cache != nil {
		if err := a.cache.Put(cacheKey, annotation); err != nil {
			a.logger.Warn("annotation cache write failed", "video", videoPath, "error", err)
		}
	}
	return annotation, nil
}

// buildCaption combines the unconditioned caption with answers to the
// targeted prompts. Failed or degenerate fragments are dropped; an empty
// result falls back to the placeholder so text embedding always has input.
func (a *Annotator) buildCaption(ctx context.Context, image []byte) string {
	captioner := a.provider.Captioner()
	var fragments []string

	standard, err := captioner.Caption(ctx, image)
	if err != nil {
		a.logger.Debug("caption generation failed", "error", err)
	} else if standard = strings.TrimSpace(standard); len(standard) > 5 {
		fragments = append(fragments, standard)
	}

	for _, question := range ai.CaptionPrompts {
		answer, err := captioner.Answer(ctx, image, question)
		if err != nil {
			continue
		}
		if cleaned := cleanAnswer(answer, question); cleaned != "" {
			stem, _, _ := strings.Cut(question, "?")
			fragments = append(fragments, fmt.Sprintf("%s: %s", stem, cleaned))
		}
	}

	if len(fragments) == 0 {
		return ai.PlaceholderCaption
	}
	return strings.Join(fragments, ai.CaptionSeparator)
}

// cleanAnswer strips question echoes and rejects short or degenerate
// answers. Returns an empty string when the answer is unusable.
func cleanAnswer(answer, question string) string {
	answer = strings.TrimSpace(answer)
	if len(answer) <= 3 {
		return ""
	}
	answer = strings.TrimSpace(strings.ReplaceAll(answer, strings.ToLower(question), ""))
	if answer == "" || ai.DegenerateAnswers[strings.ToLower(answer)] {
		return ""
	}
	return answer
}

// embedCaption uses the dedicated sentence encoder when the provider has
// one, falling back to the image encoder's text branch otherwise.
func (a *Annotator) embedCaption(ctx context.Context, caption string) ([]float32, error) {
	if embedder := a.provider.SentenceEmbedder(); embedder != nil {
		return embedder.EmbedText(ctx, caption)
	}
	return a.provider.ImageEncoder().EmbedImageText(ctx, caption)
}
