package badgercache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/framesift/core"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := Open("", true)
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestKeyDerivation(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := Key("/videos/a.mp4", 1.5, "clip+llava")
		b := Key("/videos/a.mp4", 1.5, "clip+llava")
		assert.Equal(t, a, b)
		assert.Len(t, a, keySize)
	})

	t.Run("frame identity changes the key", func(t *testing.T) {
		base := Key("/videos/a.mp4", 1.5, "clip+llava")
		assert.NotEqual(t, base, Key("/videos/b.mp4", 1.5, "clip+llava"))
		assert.NotEqual(t, base, Key("/videos/a.mp4", 2.0, "clip+llava"))
		assert.NotEqual(t, base, Key("/videos/a.mp4", 1.5, "other-models"))
	})
}

func TestCacheGetPut(t *testing.T) {
	cache := openTestCache(t)

	key := Key("/videos/a.mp4", 0.5, "clip+llava")

	t.Run("miss before put", func(t *testing.T) {
		annotation, found, err := cache.Get(key)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, annotation)
	})

	t.Run("hit after put", func(t *testing.T) {
		stored := &core.Annotation{
			Caption:          "a woman dancing",
			SemanticFeatures: []string{"woman", "dancing"},
			Mood:             "happiness",
			Visual:           []float32{0.1, 0.2, 0.3},
			Text:             []float32{0.4, 0.5},
		}
		require.NoError(t, cache.Put(key, stored))

		loaded, found, err := cache.Get(key)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, stored, loaded)
	})

	t.Run("put overwrites", func(t *testing.T) {
		updated := &core.Annotation{
			Caption:          "updated caption",
			SemanticFeatures: []string{"updated"},
			Visual:           []float32{1},
			Text:             []float32{2},
		}
		require.NoError(t, cache.Put(key, updated))

		loaded, found, err := cache.Get(key)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "updated caption", loaded.Caption)
	})
}
