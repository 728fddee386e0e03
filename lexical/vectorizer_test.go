package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTerms(t *testing.T) {
	t.Run("generates unigrams through trigrams", func(t *testing.T) {
		terms := extractTerms("red dress dancing")
		assert.ElementsMatch(t, []string{
			"red", "dress", "dancing",
			"red dress", "dress dancing",
			"red dress dancing",
		}, terms)
	})

	t.Run("stopwords removed before ngram generation", func(t *testing.T) {
		terms := extractTerms("woman in the room")
		assert.Contains(t, terms, "woman room")
		assert.NotContains(t, terms, "in")
		assert.NotContains(t, terms, "the")
	})

	t.Run("single characters dropped", func(t *testing.T) {
		terms := extractTerms("a b cd")
		assert.Equal(t, []string{"cd"}, terms)
	})
}

func TestFitAndScores(t *testing.T) {
	documents := []string{
		"a woman dancing in a red dress",
		"a man walking a dog in the park",
		"a woman singing on stage",
		"cars racing on a track",
	}

	idx := Fit(documents)

	t.Run("rows match document count", func(t *testing.T) {
		assert.Equal(t, len(documents), idx.Len())
		assert.Greater(t, idx.VocabularySize(), 0)
	})

	t.Run("matching query scores its document highest", func(t *testing.T) {
		scores := idx.Scores("woman dancing red dress")
		require.Len(t, scores, len(documents))

		best := 0
		for i, s := range scores {
			if s > scores[best] {
				best = i
			}
		}
		assert.Equal(t, 0, best)
		assert.Greater(t, scores[0], float32(0.5))
	})

	t.Run("unrelated query scores near zero", func(t *testing.T) {
		scores := idx.Scores("spaceship launch countdown")
		for i, s := range scores {
			assert.InDelta(t, 0, s, 1e-6, "document %d", i)
		}
	})

	t.Run("self similarity is one", func(t *testing.T) {
		scores := idx.Scores(documents[2])
		assert.InDelta(t, 1.0, scores[2], 1e-5)
	})

	t.Run("scores bounded by one", func(t *testing.T) {
		scores := idx.Scores("woman")
		for _, s := range scores {
			assert.LessOrEqual(t, s, float32(1.0)+1e-6)
			assert.GreaterOrEqual(t, s, float32(0))
		}
	})
}

func TestFitSingleDocument(t *testing.T) {
	// Document-frequency pruning would drop every term with one document;
	// the fallback keeps the vocabulary instead.
	idx := Fit([]string{"a woman dancing"})

	require.Equal(t, 1, idx.Len())
	assert.Greater(t, idx.VocabularySize(), 0)

	scores := idx.Scores("woman dancing")
	assert.Greater(t, scores[0], float32(0))
}

func TestFitEmptyCorpus(t *testing.T) {
	idx := Fit(nil)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Scores("anything"))
}

func TestTransformUnknownTerms(t *testing.T) {
	idx := Fit([]string{"red dress", "blue jeans"})
	vec := idx.Transform("completely unrelated words")
	assert.Empty(t, vec.Indices)
}

func TestSparseDot(t *testing.T) {
	a := SparseVector{Indices: []int32{0, 2, 5}, Values: []float32{1, 2, 3}}
	b := SparseVector{Indices: []int32{2, 5, 9}, Values: []float32{4, 5, 6}}
	assert.InDelta(t, 2*4+3*5, sparseDot(a, b), 1e-6)
	assert.Zero(t, sparseDot(a, SparseVector{}))
}

func TestMarshalRoundTrip(t *testing.T) {
	documents := []string{
		"a woman dancing in a red dress",
		"a man walking a dog",
		"sunset over the ocean",
	}
	original := Fit(documents)

	loaded, err := UnmarshalIndex(original.Marshal())
	require.NoError(t, err)

	assert.Equal(t, original.Len(), loaded.Len())
	assert.Equal(t, original.VocabularySize(), loaded.VocabularySize())

	query := "woman in red"
	assert.Equal(t, original.Scores(query), loaded.Scores(query))
}

func TestUnmarshalCorruptData(t *testing.T) {
	_, err := UnmarshalIndex([]byte{0xff})
	assert.Error(t, err)
}
