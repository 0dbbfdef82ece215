package query

import (
	"testing"

	"github.com/poiesic/shopsense/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Default(t *testing.T) {
	classifier := NewClassifier()

	intents := classifier.Classify("blue denim jacket")
	require.Len(t, intents, 1)
	assert.Equal(t, core.IntentSearch, intents[0].Label)
	assert.Equal(t, 0.5, intents[0].Confidence)
}

func TestClassify_RecommendBeatsQuestion(t *testing.T) {
	classifier := NewClassifier()

	intents := classifier.Classify("what do you recommend for a party")

	labels := make([]core.IntentLabel, 0, len(intents))
	for _, intent := range intents {
		labels = append(labels, intent.Label)
	}
	assert.Contains(t, labels, core.IntentRecommend)
	assert.Contains(t, labels, core.IntentQuestion)

	primary := classifier.Primary("what do you recommend for a party")
	assert.Equal(t, core.IntentRecommend, primary.Label)
	assert.Equal(t, 0.9, primary.Confidence)
}

func TestClassify_ConfidenceTable(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		text       string
		label      core.IntentLabel
		confidence float64
	}{
		{"recommend me a coat", core.IntentRecommend, 0.9},
		{"i want to buy these boots", core.IntentPurchase, 0.85},
		{"compare these two jackets", core.IntentCompare, 0.8},
		{"does this come in red", core.IntentQuestion, 0.7},
		{"jackets under 200", core.IntentFilter, 0.7},
		{"just looking around", core.IntentBrowse, 0.6},
		{"find a warm scarf", core.IntentSearch, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			primary := classifier.Primary(tt.text)
			assert.Equal(t, tt.label, primary.Label)
			assert.Equal(t, tt.confidence, primary.Confidence)
		})
	}
}

func TestClassify_MultiLabel(t *testing.T) {
	classifier := NewClassifier()

	intents := classifier.Classify("find jackets under 200")
	require.GreaterOrEqual(t, len(intents), 2)

	// Descending confidence throughout.
	for i := 0; i < len(intents)-1; i++ {
		assert.GreaterOrEqual(t, intents[i].Confidence, intents[i+1].Confidence)
	}
}

func TestClassify_EqualConfidenceTieBreaksByTableOrder(t *testing.T) {
	classifier := NewClassifier()

	// question (0.7) and filter (0.7) both fire; question precedes filter
	// in the rule table.
	primary := classifier.Primary("what is under 100")
	assert.Equal(t, core.IntentQuestion, primary.Label)
}

func TestClassify_EmptyQuery(t *testing.T) {
	classifier := NewClassifier()

	intents := classifier.Classify("")
	require.Len(t, intents, 1)
	assert.Equal(t, core.IntentSearch, intents[0].Label)
	assert.Equal(t, 0.5, intents[0].Confidence)
}
