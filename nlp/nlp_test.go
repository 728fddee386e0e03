package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Run("lowercases and strips punctuation", func(t *testing.T) {
		tokens := Tokenize("A Woman, dancing! In a red-dress.")
		assert.Equal(t, []string{"a", "woman", "dancing", "in", "a", "red", "dress"}, tokens)
	})

	t.Run("empty input yields no tokens", func(t *testing.T) {
		assert.Empty(t, Tokenize(""))
		assert.Empty(t, Tokenize("  ...  "))
	})

	t.Run("digits and underscores survive", func(t *testing.T) {
		tokens := Tokenize("clip_04 at 12s")
		assert.Equal(t, []string{"clip_04", "at", "12s"}, tokens)
	})
}

func TestOrderedSet(t *testing.T) {
	set := newOrderedSet()
	set.add("b")
	set.add("a")
	set.add("b")
	set.add("c")
	assert.Equal(t, []string{"b", "a", "c"}, set.slice())
}

func TestSynonymsFor(t *testing.T) {
	t.Run("caps senses and lemmas", func(t *testing.T) {
		synonyms := synonymsFor("red")
		assert.Contains(t, synonyms, "crimson")
		assert.Contains(t, synonyms, "scarlet")
		assert.LessOrEqual(t, len(synonyms), maxSensesPerToken*maxLemmasPerSense)
	})

	t.Run("rewrites underscores as spaces", func(t *testing.T) {
		synonyms := synonymsFor("mirror")
		assert.Contains(t, synonyms, "looking glass")
	})

	t.Run("unknown token has no synonyms", func(t *testing.T) {
		assert.Empty(t, synonymsFor("zzzznotaword"))
	})
}

func TestExpanderSemanticFeatures(t *testing.T) {
	expander, err := NewExpander()
	require.NoError(t, err)

	t.Run("keeps meaningful tokens and adds synonyms", func(t *testing.T) {
		features := expander.SemanticFeatures("A woman in a red dress.")

		assert.Contains(t, features, "woman")
		assert.Contains(t, features, "red")
		// "red" is in the domain vocabulary, so its synonyms are added.
		assert.Contains(t, features, "crimson")
		// Short filler words never survive.
		assert.NotContains(t, features, "a")
		assert.NotContains(t, features, "in")
	})

	t.Run("no duplicates", func(t *testing.T) {
		features := expander.SemanticFeatures("red red red dress dress")
		seen := make(map[string]int)
		for _, f := range features {
			seen[f]++
		}
		for f, n := range seen {
			assert.Equal(t, 1, n, "duplicate feature %q", f)
		}
	})

	t.Run("empty caption yields no features", func(t *testing.T) {
		assert.Empty(t, expander.SemanticFeatures(""))
	})
}

func TestExpanderExpandQuery(t *testing.T) {
	expander, err := NewExpander()
	require.NoError(t, err)

	t.Run("original tokens lead the expansion", func(t *testing.T) {
		expanded := expander.ExpandQuery("red car")
		tokens := strings.Fields(expanded)

		require.GreaterOrEqual(t, len(tokens), 2)
		assert.Equal(t, "red", tokens[0])
		assert.Equal(t, "car", tokens[1])
		assert.Contains(t, expanded, "crimson")
		assert.Contains(t, expanded, "automobile")
	})

	t.Run("deterministic for a given query", func(t *testing.T) {
		first := expander.ExpandQuery("woman dancing in a bedroom")
		second := expander.ExpandQuery("woman dancing in a bedroom")
		assert.Equal(t, first, second)
	})

	t.Run("blank query passes through", func(t *testing.T) {
		assert.Equal(t, "", expander.ExpandQuery(""))
		assert.Equal(t, "   ", expander.ExpandQuery("   "))
	})
}
