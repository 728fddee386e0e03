package index

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomVectors(n, dim int, seed int64) ([]int64, [][]float32) {
	rng := rand.New(rand.NewSource(seed))
	ids := make([]int64, n)
	vectors := make([][]float32, n)
	for i := range vectors {
		ids[i] = int64(i)
		vec := make([]float32, dim)
		for j := range vec {
			vec[j] = rng.Float32()*2 - 1
		}
		vectors[i] = vec
	}
	return ids, vectors
}

func TestNormalizeL2(t *testing.T) {
	t.Run("unit length after normalization", func(t *testing.T) {
		v := []float32{3, 4}
		NormalizeL2(v)
		assert.InDelta(t, 0.6, v[0], 1e-6)
		assert.InDelta(t, 0.8, v[1], 1e-6)
	})

	t.Run("zero vector unchanged", func(t *testing.T) {
		v := []float32{0, 0, 0}
		NormalizeL2(v)
		assert.Equal(t, []float32{0, 0, 0}, v)
	})
}

func TestFlatSearch(t *testing.T) {
	t.Run("exact match ranks first", func(t *testing.T) {
		flat := NewFlat(4)
		err := flat.Add(
			[]int64{10, 20, 30},
			[][]float32{
				{1, 0, 0, 0},
				{0, 1, 0, 0},
				{0.9, 0.1, 0, 0},
			},
		)
		require.NoError(t, err)

		matches, err := flat.Search([]float32{1, 0, 0, 0}, 2)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, int64(10), matches[0].ID)
		assert.InDelta(t, 1.0, matches[0].Score, 1e-5)
		assert.Equal(t, int64(30), matches[1].ID)
	})

	t.Run("empty index yields no matches", func(t *testing.T) {
		flat := NewFlat(4)
		matches, err := flat.Search([]float32{1, 0, 0, 0}, 5)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("dimension mismatch rejected", func(t *testing.T) {
		flat := NewFlat(4)
		_, err := flat.Search([]float32{1, 0}, 5)
		assert.ErrorIs(t, err, ErrDimensionMismatch)

		err = flat.Add([]int64{1}, [][]float32{{1, 0}})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("k larger than rows returns all rows", func(t *testing.T) {
		flat := NewFlat(2)
		require.NoError(t, flat.Add([]int64{1, 2}, [][]float32{{1, 0}, {0, 1}}))

		matches, err := flat.Search([]float32{1, 0}, 100)
		require.NoError(t, err)
		assert.Len(t, matches, 2)
	})

	t.Run("non-positive k yields no matches", func(t *testing.T) {
		flat := NewFlat(2)
		require.NoError(t, flat.Add([]int64{1, 2}, [][]float32{{1, 0}, {0, 1}}))

		matches, err := flat.Search([]float32{1, 0}, 0)
		require.NoError(t, err)
		assert.Empty(t, matches)

		matches, err = flat.Search([]float32{1, 0}, -1)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestFlatReconstruct(t *testing.T) {
	flat := NewFlat(2)
	require.NoError(t, flat.Add([]int64{7, 8}, [][]float32{{3, 4}, {0, 2}}))

	ids, vectors := flat.Reconstruct()
	assert.Equal(t, []int64{7, 8}, ids)
	require.Len(t, vectors, 2)
	// Stored rows are normalized.
	assert.InDelta(t, 0.6, vectors[0][0], 1e-6)
	assert.InDelta(t, 0.8, vectors[0][1], 1e-6)
	assert.InDelta(t, 1.0, vectors[1][1], 1e-6)
}

func TestNumListsAndProbes(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		wantLists int
	}{
		{"small collection floors at 256", 5001, 256},
		{"mid collection scales with sqrt", 100000, 474},
		{"huge collection caps at 2048", 5000000, 2048},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nlist := NumLists(tt.n)
			assert.Equal(t, tt.wantLists, nlist)
			assert.GreaterOrEqual(t, NumProbes(nlist), 32)
		})
	}
}

func TestBuildSelectsKind(t *testing.T) {
	t.Run("small collection builds flat", func(t *testing.T) {
		ids, vectors := randomVectors(100, 8, 1)
		idx, err := Build(ids, vectors, 8)
		require.NoError(t, err)
		assert.IsType(t, &Flat{}, idx)
		assert.Equal(t, 100, idx.Len())
	})

	t.Run("large collection builds ivf", func(t *testing.T) {
		ids, vectors := randomVectors(5001, 8, 2)
		idx, err := Build(ids, vectors, 8)
		require.NoError(t, err)
		assert.IsType(t, &IVF{}, idx)
		assert.Equal(t, 5001, idx.Len())
	})
}

func TestIVFSearchFindsPlantedVector(t *testing.T) {
	ids, vectors := randomVectors(6000, 8, 3)
	target := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	vectors[1234] = target

	idx, err := BuildIVF(ids, vectors, 8)
	require.NoError(t, err)

	matches, err := idx.Search(target, 5)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, int64(1234), matches[0].ID)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-5)
}

func TestIndexSerializationRoundTrip(t *testing.T) {
	t.Run("flat round trip preserves search results", func(t *testing.T) {
		ids, vectors := randomVectors(50, 16, 4)
		original, err := Build(ids, vectors, 16)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, WriteIndex(&buf, original))

		loaded, err := ReadIndex(&buf)
		require.NoError(t, err)
		assert.Equal(t, original.Len(), loaded.Len())
		assert.Equal(t, original.Dim(), loaded.Dim())

		query := vectors[17]
		want, err := original.Search(query, 10)
		require.NoError(t, err)
		got, err := loaded.Search(query, 10)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("ivf round trip preserves search results", func(t *testing.T) {
		ids, vectors := randomVectors(5500, 8, 5)
		original, err := BuildIVF(ids, vectors, 8)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, WriteIndex(&buf, original))

		loaded, err := ReadIndex(&buf)
		require.NoError(t, err)

		query := vectors[99]
		want, err := original.Search(query, 10)
		require.NoError(t, err)
		got, err := loaded.Search(query, 10)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("bad magic rejected", func(t *testing.T) {
		_, err := ReadIndex(bytes.NewReader(make([]byte, 64)))
		assert.ErrorIs(t, err, ErrInvalidMagic)
	})
}

func TestReconstructSupportsRebuild(t *testing.T) {
	ids, vectors := randomVectors(200, 8, 6)
	first, err := Build(ids, vectors, 8)
	require.NoError(t, err)

	gotIDs, gotVectors := first.Reconstruct()
	second, err := Build(gotIDs, gotVectors, 8)
	require.NoError(t, err)

	query := vectors[5]
	want, err := first.Search(query, 5)
	require.NoError(t, err)
	got, err := second.Search(query, 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
