package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/framesift/core"
	"github.com/poiesic/framesift/index"
	"github.com/poiesic/framesift/lexical"
)

func buildTestArtifacts(t *testing.T) *Artifacts {
	t.Helper()

	visual := index.NewFlat(4)
	require.NoError(t, visual.Add(
		[]int64{0, 1},
		[][]float32{{1, 0, 0, 0}, {0, 1, 0, 0}},
	))

	text := index.NewFlat(3)
	require.NoError(t, text.Add(
		[]int64{0, 1},
		[][]float32{{1, 0, 0}, {0, 0, 1}},
	))

	frames := []core.FrameRecord{
		{
			Id:               0,
			VideoPath:        "/videos/a.mp4",
			Timestamp:        0.5,
			Caption:          "a woman dancing",
			SemanticFeatures: []string{"woman", "dancing"},
			Mood:             "happiness",
		},
		{
			Id:               1,
			VideoPath:        "/videos/b.mp4",
			Timestamp:        2.0,
			Caption:          "a dog in the park",
			SemanticFeatures: []string{"dog", "park"},
		},
	}

	return &Artifacts{
		VisualIndex: visual,
		TextIndex:   text,
		Lexical:     lexical.Fit([]string{"a woman dancing", "a dog in the park"}),
		Metadata: &Metadata{
			NextID:     2,
			Frames:     frames,
			Aggregates: core.BuildVideoAggregates(frames),
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	set := NewArtifactSet(dir)
	original := buildTestArtifacts(t)

	require.NoError(t, Save(set, original))
	require.True(t, set.Exists())

	loaded, err := Load(set)
	require.NoError(t, err)

	assert.Equal(t, core.ID(2), loaded.Metadata.NextID)
	assert.Equal(t, original.Metadata.Frames, loaded.Metadata.Frames)
	assert.Equal(t, original.Metadata.Aggregates, loaded.Metadata.Aggregates)
	assert.Equal(t, 2, loaded.VisualIndex.Len())
	assert.Equal(t, 2, loaded.TextIndex.Len())
	assert.Equal(t, 2, loaded.Lexical.Len())

	matches, err := loaded.VisualIndex.Search([]float32{1, 0, 0, 0}, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, int64(0), matches[0].ID)
}

func TestLoadMissingArtifacts(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		_, err := Load(NewArtifactSet(t.TempDir()))
		assert.ErrorIs(t, err, ErrIndexNotFound)
	})

	t.Run("partial set counts as absent", func(t *testing.T) {
		dir := t.TempDir()
		set := NewArtifactSet(dir)
		require.NoError(t, Save(set, buildTestArtifacts(t)))

		require.NoError(t, os.Remove(set.LexicalIndexPath()))
		assert.False(t, set.Exists())

		_, err := Load(set)
		assert.ErrorIs(t, err, ErrIndexNotFound)
	})
}

func TestLoadCorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	set := NewArtifactSet(dir)
	require.NoError(t, Save(set, buildTestArtifacts(t)))

	require.NoError(t, os.WriteFile(set.VisualIndexPath(), []byte("not an artifact"), 0644))

	_, err := Load(set)
	assert.ErrorIs(t, err, ErrInvalidArtifact)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	set := NewArtifactSet(dir)
	require.NoError(t, Save(set, buildTestArtifacts(t)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotEqual(t, ".tmp", filepath.Ext(entry.Name()))
	}
	assert.Len(t, entries, 4)
}

func TestSaveOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	set := NewArtifactSet(dir)
	require.NoError(t, Save(set, buildTestArtifacts(t)))

	updated := buildTestArtifacts(t)
	updated.Metadata.NextID = 42
	require.NoError(t, Save(set, updated))

	loaded, err := Load(set)
	require.NoError(t, err)
	assert.Equal(t, core.ID(42), loaded.Metadata.NextID)
}

func TestMetadataRoundTrip(t *testing.T) {
	original := &Metadata{
		NextID: 7,
		Frames: []core.FrameRecord{
			{Id: 3, VideoPath: "/v/x.mp4", Timestamp: 1.25, Caption: "sunset", SemanticFeatures: []string{"sunset"}},
		},
	}

	loaded, err := UnmarshalMetadata(MarshalMetadata(original))
	require.NoError(t, err)
	assert.Equal(t, original.NextID, loaded.NextID)
	assert.Equal(t, original.Frames, loaded.Frames)
	assert.Empty(t, loaded.Aggregates)
}
