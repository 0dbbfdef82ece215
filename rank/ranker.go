package rank

import (
	"sort"

	"github.com/poiesic/shopsense/core"
)

// Final score weights. Each sub-score is normalized to [0,1] before
// weighting.
const (
	semanticWeight   = 0.4
	behavioralWeight = 0.3
	qualityWeight    = 0.2
	intentWeight     = 0.1
)

// Semantic entity-overlap bonuses, capped at 1.0 in sum.
const (
	categoryMatchBonus = 0.4
	colorMatchBonus    = 0.3
	materialMatchBonus = 0.2
	priceFitBonus      = 0.1
)

// Ranker combines semantic, behavioral, quality, and intent-alignment
// signals into one ranking score per candidate.
type Ranker struct{}

// NewRanker creates a multi-signal ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank re-scores the candidates against the extracted entities and primary
// intent, sorting by final score descending. Equal scores break by
// ascending product ID so orderings are reproducible.
func (r *Ranker) Rank(candidates []core.RankedProduct, entities core.QueryEntities, intent core.Intent) []core.RankedProduct {
	results := make([]core.RankedProduct, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Product == nil {
			continue
		}
		results = append(results, core.RankedProduct{
			Product: candidate.Product,
			Score:   r.Score(candidate.Product, entities, intent),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Product.Id < results[j].Product.Id
	})
	return results
}

// Score computes the weighted final score for one product.
func (r *Ranker) Score(product *core.Product, entities core.QueryEntities, intent core.Intent) float64 {
	return semanticWeight*semanticScore(product, entities) +
		behavioralWeight*behavioralScore(product) +
		qualityWeight*qualityScore(product) +
		intentWeight*intentScore(product, intent)
}

// semanticScore sums fixed entity-overlap bonuses, capped at 1.0.
func semanticScore(product *core.Product, entities core.QueryEntities) float64 {
	var score float64
	if containsAny(entities.Categories, product.Category) {
		score += categoryMatchBonus
	}
	if overlaps(entities.Colors, product.Colors) {
		score += colorMatchBonus
	}
	if overlaps(entities.Materials, product.Materials) {
		score += materialMatchBonus
	}
	if entities.PriceRange != nil && entities.PriceRange.Contains(product.Price) {
		score += priceFitBonus
	}
	if score > 1 {
		score = 1
	}
	return score
}

// behavioralScore blends sales, rating, and review-count signals:
// sales/1000 capped at 0.4, rating/5 scaled to 0.3, reviews/100 capped
// at 0.3.
func behavioralScore(product *core.Product) float64 {
	sales := float64(product.SalesCount) / 1000
	if sales > 0.4 {
		sales = 0.4
	}
	rating := product.Rating / 5 * 0.3
	reviews := float64(product.ReviewCount) / 100
	if reviews > 0.3 {
		reviews = 0.3
	}
	return sales + rating + reviews
}

// qualityScore rewards record completeness: an image, a substantive
// description, positive stock, and at least one review.
func qualityScore(product *core.Product) float64 {
	var score float64
	if product.ImageURL != "" {
		score += 0.3
	}
	if len(product.Description) > 50 {
		score += 0.2
	}
	if product.Stock > 0 {
		score += 0.3
	}
	if product.ReviewCount > 0 {
		score += 0.2
	}
	return score
}

// intentScore aligns the product with the query purpose: purchase intent
// rewards availability, recommend intent rewards rating, everything else
// is neutral.
func intentScore(product *core.Product, intent core.Intent) float64 {
	switch intent.Label {
	case core.IntentPurchase:
		if product.Stock > 0 {
			return 1
		}
		return 0
	case core.IntentRecommend:
		return product.Rating / 5
	default:
		return 0.5
	}
}

func containsAny(values []string, value string) bool {
	if value == "" {
		return false
	}
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
