package rank

import (
	"math"
	"sort"

	"github.com/poiesic/shopsense/core"
)

// Recommendation score weights.
const (
	recCategoryWeight   = 0.4
	recColorWeight      = 0.2
	recPriceFitWeight   = 0.2
	recPopularityWeight = 0.1
	recRatingWeight     = 0.1
)

// PreferenceView is the read side of a session preference profile.
type PreferenceView interface {
	CategoryPreference(category string) float64
	ColorPreference(color string) float64
	PreferredPriceRange() *core.PriceRange
}

// Recommender scores catalog items against a session preference profile.
type Recommender struct{}

// NewRecommender creates a profile-based recommender.
func NewRecommender() *Recommender {
	return &Recommender{}
}

// Recommend scores every product against the profile, keeps positive
// scores, and returns up to limit results sorted descending (ties by
// ascending product ID).
func (r *Recommender) Recommend(products []*core.Product, profile PreferenceView, limit int) []core.RankedProduct {
	if profile == nil {
		return nil
	}

	results := make([]core.RankedProduct, 0, len(products))
	for _, product := range products {
		if product == nil {
			continue
		}
		score := r.Score(product, profile)
		if score > 0 {
			results = append(results, core.RankedProduct{Product: product, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Product.Id < results[j].Product.Id
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Score computes the weighted preference score for one product: category
// and color affinity, fit within the preferred price range, popularity,
// and rating.
func (r *Recommender) Score(product *core.Product, profile PreferenceView) float64 {
	categoryScore := profile.CategoryPreference(product.Category)

	var colorScore float64
	for _, color := range product.Colors {
		if weight := profile.ColorPreference(color); weight > colorScore {
			colorScore = weight
		}
	}

	popularity := float64(product.SalesCount) / 1000
	if popularity > 1 {
		popularity = 1
	}

	return recCategoryWeight*categoryScore +
		recColorWeight*colorScore +
		recPriceFitWeight*priceFit(product.Price, profile.PreferredPriceRange()) +
		recPopularityWeight*popularity +
		recRatingWeight*(product.Rating/5)
}

// priceFit is 1 at the midpoint of the preferred range, decaying linearly
// to 0 at the edges, and 0 outside the range (or when no range exists).
func priceFit(price float64, rng *core.PriceRange) float64 {
	if rng == nil || rng.Min == nil || rng.Max == nil {
		return 0
	}
	if !rng.Contains(price) {
		return 0
	}
	mid := (*rng.Min + *rng.Max) / 2
	half := (*rng.Max - *rng.Min) / 2
	if half == 0 {
		return 1
	}
	return 1 - math.Abs(price-mid)/half
}
