package query

import (
	"sort"
	"strings"

	"github.com/poiesic/shopsense/core"
)

// Classifier assigns query intents by running the fixed, ordered rule set
// in tables.go against the lower-cased query. Multiple rules may fire
// (multi-label); confidences are fixed per rule, and the primary intent is
// the highest-confidence match. This is a priority and tie-break system,
// not a statistical classifier.
type Classifier struct{}

// NewClassifier creates a new intent classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns every fired intent ordered by descending confidence,
// ties broken by rule-table order. When no rule fires the result is the
// single default intent {search, 0.5}.
func (c *Classifier) Classify(text string) []core.Intent {
	lowered := strings.ToLower(text)

	var fired []core.Intent
	for _, rule := range intentTable {
		for _, cue := range rule.Cues {
			if strings.Contains(lowered, cue) {
				fired = append(fired, core.Intent{Label: rule.Label, Confidence: rule.Confidence})
				break
			}
		}
	}

	if len(fired) == 0 {
		return []core.Intent{defaultIntent}
	}

	// The table is confidence-ordered already; a stable sort keeps
	// table order for equal confidences.
	sort.SliceStable(fired, func(i, j int) bool {
		return fired[i].Confidence > fired[j].Confidence
	})
	return fired
}

// Primary returns the highest-confidence intent for the query.
func (c *Classifier) Primary(text string) core.Intent {
	return c.Classify(text)[0]
}
