package session

import (
	"github.com/poiesic/shopsense/core"
)

const (
	maxViewHistory   = 20
	maxSearchHistory = 10

	// Derived price preferences are widened by this fraction on both
	// sides to avoid an overly narrow range.
	priceRangeExpansion = 0.2
)

// Profile is the per-session user preference model: bounded interaction
// history plus preference weights re-derived after every tracked view.
type Profile struct {
	viewed        []*core.Product
	searches      []string
	categoryPrefs map[string]float64
	colorPrefs    map[string]float64
	priceRange    *core.PriceRange
}

// NewProfile creates an empty profile for a fresh session.
func NewProfile() *Profile {
	return &Profile{
		categoryPrefs: make(map[string]float64),
		colorPrefs:    make(map[string]float64),
	}
}

// TrackView appends the product to the bounded view history and re-derives
// preference weights. Nil products are ignored.
func (p *Profile) TrackView(product *core.Product) {
	if product == nil {
		return
	}

	p.viewed = append(p.viewed, product)
	if len(p.viewed) > maxViewHistory {
		p.viewed = p.viewed[len(p.viewed)-maxViewHistory:]
	}

	p.rederivePreferences()
}

// TrackSearch appends the query text to the bounded search history.
// Empty queries are ignored.
func (p *Profile) TrackSearch(query string) {
	if query == "" {
		return
	}
	p.searches = append(p.searches, query)
	if len(p.searches) > maxSearchHistory {
		p.searches = p.searches[len(p.searches)-maxSearchHistory:]
	}
}

// rederivePreferences recounts category and color occurrences across the
// current view history and normalizes every weight against the maximum
// observed count, keeping all weights in [0,1] regardless of interaction
// volume. The preferred price range spans the viewed products' prices
// widened by the expansion factor.
func (p *Profile) rederivePreferences() {
	categoryCounts := make(map[string]int)
	colorCounts := make(map[string]int)
	var minPrice, maxPrice float64
	first := true

	for _, product := range p.viewed {
		if product.Category != "" {
			categoryCounts[product.Category]++
		}
		for _, color := range product.Colors {
			colorCounts[color]++
		}
		if first || product.Price < minPrice {
			minPrice = product.Price
		}
		if first || product.Price > maxPrice {
			maxPrice = product.Price
		}
		first = false
	}

	p.categoryPrefs = normalizeCounts(categoryCounts)
	p.colorPrefs = normalizeCounts(colorCounts)

	if len(p.viewed) == 0 {
		p.priceRange = nil
		return
	}
	low := minPrice * (1 - priceRangeExpansion)
	high := maxPrice * (1 + priceRangeExpansion)
	p.priceRange = &core.PriceRange{Min: &low, Max: &high}
}

func normalizeCounts(counts map[string]int) map[string]float64 {
	weights := make(map[string]float64, len(counts))
	var max int
	for _, count := range counts {
		if count > max {
			max = count
		}
	}
	if max == 0 {
		return weights
	}
	for key, count := range counts {
		weights[key] = float64(count) / float64(max)
	}
	return weights
}

// CategoryPreference returns the normalized weight for a category, 0 if
// never viewed.
func (p *Profile) CategoryPreference(category string) float64 {
	return p.categoryPrefs[category]
}

// ColorPreference returns the normalized weight for a color, 0 if never
// viewed.
func (p *Profile) ColorPreference(color string) float64 {
	return p.colorPrefs[color]
}

// CategoryPreferences returns a copy of the normalized category weights.
func (p *Profile) CategoryPreferences() map[string]float64 {
	return copyWeights(p.categoryPrefs)
}

// ColorPreferences returns a copy of the normalized color weights.
func (p *Profile) ColorPreferences() map[string]float64 {
	return copyWeights(p.colorPrefs)
}

func copyWeights(weights map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(weights))
	for key, weight := range weights {
		out[key] = weight
	}
	return out
}

// PreferredPriceRange returns the derived price range, or nil when no
// product has been viewed yet.
func (p *Profile) PreferredPriceRange() *core.PriceRange {
	return p.priceRange
}

// ViewedProducts returns the bounded view history, oldest first.
func (p *Profile) ViewedProducts() []*core.Product {
	return p.viewed
}

// SearchHistory returns the bounded search history, oldest first.
func (p *Profile) SearchHistory() []string {
	return p.searches
}
