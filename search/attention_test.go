package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQueryEmbedding_PositionalDecay(t *testing.T) {
	embedding := BuildQueryEmbedding("blue denim jacket", nil)

	require.Len(t, embedding, 3)
	assert.InDelta(t, 1.0, embedding["blue"], 1e-9)
	assert.InDelta(t, 0.5, embedding["denim"], 1e-9)
	assert.InDelta(t, 1.0/3.0, embedding["jacket"], 1e-9)
}

func TestBuildQueryEmbedding_ContextBoost(t *testing.T) {
	embedding := BuildQueryEmbedding("blue jacket", []string{"warm winter jacket"})

	// "jacket" is position 1 (weight 0.5) boosted 1.5x by the prior turn.
	assert.InDelta(t, 0.75, embedding["jacket"], 1e-9)
	// "blue" never appeared in context: plain positional weight.
	assert.InDelta(t, 1.0, embedding["blue"], 1e-9)
}

func TestBuildQueryEmbedding_ContextOnlyTerms(t *testing.T) {
	embedding := BuildQueryEmbedding("red dress", []string{"silk evening gown"})

	assert.InDelta(t, contextOnlyWeight, embedding["silk"], 1e-9)
	assert.InDelta(t, contextOnlyWeight, embedding["gown"], 1e-9)
	// "evening" also arrives at low weight; current-query terms keep
	// their positional weights.
	assert.InDelta(t, 1.0, embedding["red"], 1e-9)
}

func TestBuildQueryEmbedding_WindowLimit(t *testing.T) {
	turns := []string{
		"velvet curtains", // oldest, outside the 5-turn window
		"wool sweater",
		"leather boots",
		"cotton shirt",
		"linen trousers",
		"denim jacket",
	}
	embedding := BuildQueryEmbedding("something new", turns)

	assert.NotContains(t, embedding, "velvet")
	assert.NotContains(t, embedding, "curtains")
	assert.Contains(t, embedding, "wool")
	assert.Contains(t, embedding, "denim")
}

func TestBuildQueryEmbedding_EmptyQuery(t *testing.T) {
	assert.Empty(t, BuildQueryEmbedding("", nil))
}

func TestAttentionScore(t *testing.T) {
	embedding := QueryEmbedding{"blue": 1.0, "jacket": 0.5}

	t.Run("zero overlap scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, AttentionScore(embedding, []string{"silk", "dress"}))
	})

	t.Run("mean over overlapping tokens", func(t *testing.T) {
		score := AttentionScore(embedding, []string{"blue", "denim", "jacket"})
		assert.InDelta(t, 0.75, score, 1e-9)
	})

	t.Run("repeated document tokens counted once", func(t *testing.T) {
		score := AttentionScore(embedding, []string{"jacket", "jacket", "jacket"})
		assert.InDelta(t, 0.5, score, 1e-9)
	})

	t.Run("empty document", func(t *testing.T) {
		assert.Equal(t, 0.0, AttentionScore(embedding, nil))
	})
}
