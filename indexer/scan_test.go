package indexer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestScanVideos(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.mp4"))
	touch(t, filepath.Join(root, "clips", "b.MOV"))
	touch(t, filepath.Join(root, "clips", "notes.txt"))
	touch(t, filepath.Join(root, "clips", "c.webm"))
	touch(t, filepath.Join(root, "Raw", "d.mp4"))
	touch(t, filepath.Join(root, "clips", "raw", "e.mkv"))

	result, err := ScanVideos(root)
	require.NoError(t, err)

	t.Run("finds videos outside raw directories", func(t *testing.T) {
		require.Len(t, result.Videos, 3)
		assert.Equal(t, filepath.Join(root, "a.mp4"), result.Videos[0])
		assert.Equal(t, filepath.Join(root, "clips", "b.MOV"), result.Videos[1])
		assert.Equal(t, filepath.Join(root, "clips", "c.webm"), result.Videos[2])
	})

	t.Run("paths are absolute and sorted", func(t *testing.T) {
		for _, video := range result.Videos {
			assert.True(t, filepath.IsAbs(video))
		}
		assert.IsIncreasing(t, result.Videos)
	})

	t.Run("raw directories reported not indexed", func(t *testing.T) {
		assert.Equal(t, 2, result.SkippedRaw)
		assert.ElementsMatch(t, []string{"Raw", filepath.Join("clips", "raw")}, result.RawDirs)
	})
}

func TestScanVideosEmptyDir(t *testing.T) {
	result, err := ScanVideos(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, result.Videos)
	assert.Zero(t, result.SkippedRaw)
}

func TestIsVideoFile(t *testing.T) {
	assert.True(t, IsVideoFile("/x/clip.mp4"))
	assert.True(t, IsVideoFile("/x/CLIP.MKV"))
	assert.True(t, IsVideoFile("movie.3gp"))
	assert.False(t, IsVideoFile("/x/readme.md"))
	assert.False(t, IsVideoFile("/x/noext"))
}

func TestDirectoryStats(t *testing.T) {
	root := t.TempDir()
	videos := []string{
		filepath.Join(root, "a.mp4"),
		filepath.Join(root, "clips", "b.mp4"),
		filepath.Join(root, "clips", "c.mp4"),
	}

	stats := DirectoryStats(videos, root)
	require.Len(t, stats, 2)
	assert.Equal(t, DirectoryCount{Dir: ".", Count: 1}, stats[0])
	assert.Equal(t, DirectoryCount{Dir: "clips", Count: 2}, stats[1])
}

func TestTreeStats(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.mp4"))
	touch(t, filepath.Join(root, "clips", "deep", "b.mp4"))

	maxDepth, totalBytes := TreeStats([]string{
		filepath.Join(root, "a.mp4"),
		filepath.Join(root, "clips", "deep", "b.mp4"),
		filepath.Join(root, "missing.mp4"),
	}, root)

	assert.Equal(t, 2, maxDepth)
	assert.Equal(t, int64(2), totalBytes) // touch writes one byte each
}
