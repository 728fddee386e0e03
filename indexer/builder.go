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
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/framesift/core"
	"github.com/poiesic/framesift/index"
	"github.com/poiesic/framesift/lexical"
	"github.com/poiesic/framesift/storage"
)

// BuildState tracks the builder through its lifecycle.
type BuildState int

const (
	StateFresh BuildState = iota
	StateLoadedExisting
	StateAccumulating
	StateFinalizing
	StatePersisted
)

func (s BuildState) String() string {
	switch s {
	case StateFresh:
		return "FRESH"
	case StateLoadedExisting:
		return "LOADED_EXISTING"
	case StateAccumulating:
		return "ACCUMULATING"
	case StateFinalizing:
		return "FINALIZING"
	case StatePersisted:
		return "PERSISTED"
	default:
		return "UNKNOWN"
	}
}

// FrameObservation is one annotated frame before it receives an ID.
type FrameObservation struct {
	Timestamp  float64
	Annotation *core.Annotation
}

// VideoResult is the complete annotation output for one video.
type VideoResult struct {
	VideoPath string // absolute
	Frames    []FrameObservation
}

// Builder accumulates annotated frames and produces the four index
// artifacts. It is not safe for concurrent use; the orchestrator appends
// results from a single goroutine.
type Builder struct {
	set           storage.ArtifactSet
	state         BuildState
	nextID        core.ID
	frames        []core.FrameRecord
	visual        [][]float32
	text          [][]float32
	existingPaths map[string]struct{}
	logger        *slog.Logger
}

// NewBuilder creates a fresh builder writing to outputDir.
func NewBuilder(outputDir string) *Builder {
	return &Builder{
		set:           storage.NewArtifactSet(outputDir),
		state:         StateFresh,
		existingPaths: make(map[string]struct{}),
		logger:        slog.Default().With("component", "index_builder"),
	}
}

// State returns the current lifecycle state.
func (b *Builder) State() BuildState {
	return b.state
}

// LoadExisting loads a prior artifact set for an incremental run. Vectors
// are reconstructed from the vector indices and the ID counter continues
// from the highest existing ID. Any load failure degrades to a fresh
// build with a warning; it never fails the run.
func (b *Builder) LoadExisting() {
	if !b.set.Exists() {
		b.logger.Info("no existing index artifacts, starting fresh", "directory", b.set.Dir)
		return
	}

	artifacts, err := storage.Load(b.set)
	if err != nil {
		b.logger.Warn("failed to load existing index, starting fresh", "error", err)
		b.reset()
		return
	}

	visualIDs, visualVectors := artifacts.VisualIndex.Reconstruct()
	_, textVectors := artifacts.TextIndex.Reconstruct()

	if len(visualVectors) != len(artifacts.Metadata.Frames) || len(textVectors) != len(artifacts.Metadata.Frames) {
		b.logger.Warn("existing index rows misaligned with metadata, starting fresh",
			"metadata_rows", len(artifacts.Metadata.Frames),
			"visual_rows", len(visualVectors),
			"text_rows", len(textVectors))
		b.reset()
		return
	}

	b.frames = artifacts.Metadata.Frames
	b.visual = visualVectors
	b.text = textVectors

	var maxID core.ID = -1
	for _, id := range visualIDs {
		if core.ID(id) > maxID {
			maxID = core.ID(id)
		}
	}
	b.nextID = maxID + 1

	for _, frame := range b.frames {
		b.existingPaths[frame.VideoPath] = struct{}{}
	}

	b.state = StateLoadedExisting
	b.logger.Info("loaded existing index",
		"frames", len(b.frames),
		"videos", len(b.existingPaths),
		"next_id", b.nextID)
}

func (b *Builder) reset() {
	b.frames = nil
	b.visual = nil
	b.text = nil
	b.nextID = 0
	b.existingPaths = make(map[string]struct{})
	b.state = StateFresh
}

// HasVideo reports whether the absolute video path is already indexed.
func (b *Builder) HasVideo(absPath string) bool {
	_, ok := b.existingPaths[absPath]
	return ok
}

// IndexedVideoCount returns the number of videos currently covered.
func (b *Builder) IndexedVideoCount() int {
	return len(b.existingPaths)
}

// Append accumulates one video's annotated frames. IDs are assigned
// sequentially in call order, so callers append results in a fixed,
// input-determined order.
func (b *Builder) Append(result VideoResult) error {
	if b.state == StateFinalizing || b.state == StatePersisted {
		return ErrBuilderFinalized
	}

	for _, obs := range result.Frames {
		b.frames = append(b.frames, core.FrameRecord{
			Id:               b.nextID,
			VideoPath:        result.VideoPath,
			Timestamp:        obs.Timestamp,
			Caption:          obs.Annotation.Caption,
			SemanticFeatures: obs.Annotation.SemanticFeatures,
			Mood:             obs.Annotation.Mood,
		})
		b.visual = append(b.visual, obs.Annotation.Visual)
		b.text = append(b.text, obs.Annotation.Text)
		b.nextID++
	}

	if len(result.Frames) > 0 {
		b.existingPaths[result.VideoPath] = struct{}{}
	}
	b.state = StateAccumulating
	return nil
}

// FrameCount returns the number of accumulated frame rows.
func (b *Builder) FrameCount() int {
	return len(b.frames)
}

// NextID returns the ID the next appended frame will receive.
func (b *Builder) NextID() core.ID {
	return b.nextID
}

// Finalize builds both vector indices and the lexical index over all
// accumulated rows and writes the four artifacts atomically. With no rows
// at all it writes nothing and returns nil.
func (b *Builder) Finalize() error {
	if b.state == StatePersisted {
		return ErrBuilderFinalized
	}
	if len(b.frames) == 0 {
		b.logger.Info("no frames accumulated, nothing to persist")
		return nil
	}
	b.state = StateFinalizing

	if err := b.checkRowAlignment(); err != nil {
		return err
	}

	ids := make([]int64, len(b.frames))
	documents := make([]string, len(b.frames))
	for i, frame := range b.frames {
		ids[i] = int64(frame.Id)
		documents[i] = frame.Caption + " " + strings.Join(frame.SemanticFeatures, " ")
	}

	visualIndex, err := index.Build(ids, b.visual, len(b.visual[0]))
	if err != nil {
		return fmt.Errorf("failed to build visual index: %w", err)
	}
	textIndex, err := index.Build(ids, b.text, len(b.text[0]))
	if err != nil {
		return fmt.Errorf("failed to build text index: %w", err)
	}

	artifacts := &storage.Artifacts{
		VisualIndex: visualIndex,
		TextIndex:   textIndex,
		Lexical:     lexical.Fit(documents),
		Metadata: &storage.Metadata{
			NextID:     b.nextID,
			Frames:     b.frames,
			Aggregates: core.BuildVideoAggregates(b.frames),
		},
	}

	if err := storage.Save(b.set, artifacts); err != nil {
		return err
	}

	b.state = StatePersisted
	b.logger.Info("index finalized",
		"frames", len(b.frames),
		"videos", len(b.existingPaths),
		"next_id", b.nextID)
	return nil
}

// checkRowAlignment verifies that every row has both embeddings and that
// dimensions are uniform. Mixed dimensions mean the run used different
// models than the loaded index.
func (b *Builder) checkRowAlignment() error {
	if len(b.visual) != len(b.frames) || len(b.text) != len(b.frames) {
		return fmt.Errorf("row misalignment: %d frames, %d visual, %d text",
			len(b.frames), len(b.visual), len(b.text))
	}
	visualDim := len(b.visual[0])
	textDim := len(b.text[0])
	for i := range b.visual {
		if len(b.visual[i]) != visualDim || len(b.text[i]) != textDim {
			return fmt.Errorf("%w: row %d has dims %d/%d, expected %d/%d",
				ErrEmbeddingDimensionChanged, i, len(b.visual[i]), len(b.text[i]), visualDim, textDim)
		}
	}
	return nil
}
