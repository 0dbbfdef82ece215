package respond

import (
	"testing"

	"github.com/poiesic/shopsense/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResults() []core.RankedProduct {
	return []core.RankedProduct{
		{Product: &core.Product{Name: "Blue Denim Jacket", Price: 79.50, Rating: 4.5, ReviewCount: 20}, Score: 0.9},
		{Product: &core.Product{Name: "Bomber Jacket", Price: 99, Rating: 3.5, ReviewCount: 5}, Score: 0.7},
		{Product: &core.Product{Name: "Rain Shell", Price: 45, ReviewCount: 0}, Score: 0.5},
	}
}

func TestRespondSearch(t *testing.T) {
	responder := NewResponder()

	text, err := responder.Respond(core.Intent{Label: core.IntentSearch, Confidence: 0.6}, "blue jacket", testResults())
	require.NoError(t, err)

	assert.Contains(t, text, "Found 3 products")
	assert.Contains(t, text, `"blue jacket"`)
	assert.Contains(t, text, "Blue Denim Jacket")
	assert.Contains(t, text, "$45")
	assert.Contains(t, text, "$99")
}

func TestRespondRecommend(t *testing.T) {
	responder := NewResponder()

	text, err := responder.Respond(core.Intent{Label: core.IntentRecommend, Confidence: 0.9}, "something warm", testResults())
	require.NoError(t, err)

	assert.Contains(t, text, "I'd suggest Blue Denim Jacket")
	// Average over rated products only: (4.5 + 3.5) / 2
	assert.Contains(t, text, "4.0 stars")
}

func TestRespondPerIntentPhrasing(t *testing.T) {
	responder := NewResponder()
	results := testResults()

	labels := []core.IntentLabel{
		core.IntentSearch, core.IntentRecommend, core.IntentCompare,
		core.IntentQuestion, core.IntentBrowse, core.IntentFilter, core.IntentPurchase,
	}

	seen := make(map[string]bool)
	for _, label := range labels {
		text, err := responder.Respond(core.Intent{Label: label}, "jacket", results)
		require.NoError(t, err)
		require.NotEmpty(t, text)
		seen[text] = true
	}

	assert.Len(t, seen, len(labels), "each intent should phrase its response differently")
}

func TestRespondEmptyResults(t *testing.T) {
	responder := NewResponder()

	text, err := responder.Respond(core.Intent{Label: core.IntentSearch}, "quantum socks", nil)
	require.NoError(t, err)

	assert.Contains(t, text, "No products matched")
	assert.Contains(t, text, `"quantum socks"`)
}

func TestRespondUnknownIntentFallsBack(t *testing.T) {
	responder := NewResponder()

	text, err := responder.Respond(core.Intent{Label: core.IntentLabel("haggle")}, "jacket", testResults())
	require.NoError(t, err)
	assert.Contains(t, text, "Found 3 products")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "25", formatPrice(25))
	assert.Equal(t, "25.50", formatPrice(25.5))
	assert.Equal(t, "0.99", formatPrice(0.99))
}
