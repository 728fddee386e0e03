package indexer

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/framesift/core"
	"github.com/poiesic/framesift/storage"
)

func videoResult(path string, captions ...string) VideoResult {
	result := VideoResult{VideoPath: path}
	for i, caption := range captions {
		result.Frames = append(result.Frames, FrameObservation{
			Timestamp: float64(i) * 0.5,
			Annotation: &core.Annotation{
				Caption:          caption,
				SemanticFeatures: []string{"feature"},
				Visual:           []float32{float32(i) + 1, 0.5, 0.25},
				Text:             []float32{0.1, float32(i) + 1},
			},
		})
	}
	return result
}

func TestBuilderFreshRun(t *testing.T) {
	dir := t.TempDir()
	builder := NewBuilder(dir)
	assert.Equal(t, StateFresh, builder.State())

	require.NoError(t, builder.Append(videoResult("/videos/a.mp4", "first frame", "second frame")))
	require.NoError(t, builder.Append(videoResult("/videos/b.mp4", "third frame")))
	assert.Equal(t, StateAccumulating, builder.State())
	assert.Equal(t, 3, builder.FrameCount())
	assert.Equal(t, core.ID(3), builder.NextID())

	require.NoError(t, builder.Finalize())
	assert.Equal(t, StatePersisted, builder.State())

	artifacts, err := storage.Load(storage.NewArtifactSet(dir))
	require.NoError(t, err)
	assert.Equal(t, core.ID(3), artifacts.Metadata.NextID)
	require.Len(t, artifacts.Metadata.Frames, 3)

	// IDs assigned sequentially in append order.
	for i, frame := range artifacts.Metadata.Frames {
		assert.Equal(t, core.ID(i), frame.Id)
	}
	assert.Equal(t, "/videos/a.mp4", artifacts.Metadata.Frames[0].VideoPath)
	assert.Equal(t, "/videos/b.mp4", artifacts.Metadata.Frames[2].VideoPath)
	assert.Len(t, artifacts.Metadata.Aggregates, 2)
}

func TestBuilderIncrementalRun(t *testing.T) {
	dir := t.TempDir()

	first := NewBuilder(dir)
	require.NoError(t, first.Append(videoResult("/videos/a.mp4", "first frame", "second frame")))
	require.NoError(t, first.Finalize())

	second := NewBuilder(dir)
	second.LoadExisting()
	assert.Equal(t, StateLoadedExisting, second.State())
	assert.Equal(t, core.ID(2), second.NextID())
	assert.True(t, second.HasVideo("/videos/a.mp4"))
	assert.False(t, second.HasVideo("/videos/b.mp4"))
	assert.Equal(t, 1, second.IndexedVideoCount())

	require.NoError(t, second.Append(videoResult("/videos/b.mp4", "third frame")))
	require.NoError(t, second.Finalize())

	artifacts, err := storage.Load(storage.NewArtifactSet(dir))
	require.NoError(t, err)
	require.Len(t, artifacts.Metadata.Frames, 3)
	assert.Equal(t, core.ID(3), artifacts.Metadata.NextID)
	assert.Equal(t, core.ID(2), artifacts.Metadata.Frames[2].Id)
	assert.Equal(t, 3, artifacts.VisualIndex.Len())
	assert.Equal(t, 3, artifacts.Lexical.Len())
}

func TestBuilderDegradesOnCorruptArtifacts(t *testing.T) {
	dir := t.TempDir()

	first := NewBuilder(dir)
	require.NoError(t, first.Append(videoResult("/videos/a.mp4", "first frame")))
	require.NoError(t, first.Finalize())

	set := storage.NewArtifactSet(dir)
	require.NoError(t, os.WriteFile(set.MetadataPath(), []byte("garbage"), 0644))

	second := NewBuilder(dir)
	second.LoadExisting()
	assert.Equal(t, StateFresh, second.State())
	assert.Equal(t, core.ID(0), second.NextID())
	assert.False(t, second.HasVideo("/videos/a.mp4"))
}

func TestBuilderMissingArtifactsStartFresh(t *testing.T) {
	builder := NewBuilder(t.TempDir())
	builder.LoadExisting()
	assert.Equal(t, StateFresh, builder.State())
	assert.Equal(t, core.ID(0), builder.NextID())
}

func TestBuilderAppendAfterFinalize(t *testing.T) {
	builder := NewBuilder(t.TempDir())
	require.NoError(t, builder.Append(videoResult("/videos/a.mp4", "first frame")))
	require.NoError(t, builder.Finalize())

	err := builder.Append(videoResult("/videos/b.mp4", "late frame"))
	assert.ErrorIs(t, err, ErrBuilderFinalized)
}

func TestBuilderFinalizeEmpty(t *testing.T) {
	dir := t.TempDir()
	builder := NewBuilder(dir)
	require.NoError(t, builder.Finalize())

	// Nothing written.
	assert.False(t, storage.NewArtifactSet(dir).Exists())
}

func TestBuilderDimensionMismatch(t *testing.T) {
	builder := NewBuilder(t.TempDir())
	require.NoError(t, builder.Append(videoResult("/videos/a.mp4", "first frame")))

	bad := videoResult("/videos/b.mp4", "second frame")
	bad.Frames[0].Annotation.Text = []float32{1, 2, 3, 4, 5}
	require.NoError(t, builder.Append(bad))

	err := builder.Finalize()
	assert.ErrorIs(t, err, ErrEmbeddingDimensionChanged)
}

func TestBuilderMonotonicIDsAcrossRuns(t *testing.T) {
	dir := t.TempDir()

	first := NewBuilder(dir)
	require.NoError(t, first.Append(videoResult("/videos/a.mp4", "first frame")))
	require.NoError(t, first.Finalize())
	firstNext := first.NextID()

	second := NewBuilder(dir)
	second.LoadExisting()
	require.NoError(t, second.Append(videoResult("/videos/b.mp4", "second frame")))
	require.NoError(t, second.Finalize())

	assert.GreaterOrEqual(t, second.NextID(), firstNext)

	artifacts, err := storage.Load(storage.NewArtifactSet(dir))
	require.NoError(t, err)
	seen := make(map[core.ID]struct{})
	for _, frame := range artifacts.Metadata.Frames {
		_, dup := seen[frame.Id]
		assert.False(t, dup, "duplicate id %d", frame.Id)
		seen[frame.Id] = struct{}{}
	}
}
