package respond

import (
	"fmt"
	"strings"

	"github.com/poiesic/shopsense/core"
	"github.com/tmc/langchaingo/prompts"
)

// resultStats summarizes a result set for template rendering.
type resultStats struct {
	Count     int
	Top       string
	MinPrice  float64
	MaxPrice  float64
	AvgRating float64
}

// Responder renders a natural-language summary for a result set,
// phrased according to the detected intent.
type Responder struct {
	templates map[core.IntentLabel]prompts.PromptTemplate
	empty     prompts.PromptTemplate
}

// NewResponder creates a responder with the built-in templates.
func NewResponder() *Responder {
	vars := []string{"query", "count", "top", "minPrice", "maxPrice", "avgRating"}

	templates := map[core.IntentLabel]prompts.PromptTemplate{
		core.IntentSearch: prompts.NewPromptTemplate(
			"Found {{.count}} products matching \"{{.query}}\". Top match: {{.top}}. Prices range from ${{.minPrice}} to ${{.maxPrice}}.",
			vars),
		core.IntentRecommend: prompts.NewPromptTemplate(
			"Based on what you're looking for, I'd suggest {{.top}}. I found {{.count}} options with an average rating of {{.avgRating}} stars.",
			vars),
		core.IntentCompare: prompts.NewPromptTemplate(
			"Here are {{.count}} products to compare, starting with {{.top}}. Prices range from ${{.minPrice}} to ${{.maxPrice}}, rated {{.avgRating}} stars on average.",
			vars),
		core.IntentQuestion: prompts.NewPromptTemplate(
			"{{.top}} is the closest match to your question about \"{{.query}}\". {{.count}} related products are available.",
			vars),
		core.IntentBrowse: prompts.NewPromptTemplate(
			"Here are {{.count}} products you might like to browse, starting with {{.top}}.",
			vars),
		core.IntentFilter: prompts.NewPromptTemplate(
			"{{.count}} products fit your criteria. Top match: {{.top}}, priced between ${{.minPrice}} and ${{.maxPrice}}.",
			vars),
		core.IntentPurchase: prompts.NewPromptTemplate(
			"{{.top}} is available now. {{.count}} matching products are in the catalog, from ${{.minPrice}} to ${{.maxPrice}}.",
			vars),
	}

	empty := prompts.NewPromptTemplate(
		"No products matched \"{{.query}}\". Try different terms or loosen your filters.",
		[]string{"query"})

	return &Responder{
		templates: templates,
		empty:     empty,
	}
}

// Respond renders the summary for a result set. The intent label picks the
// template; unknown labels fall back to the search phrasing.
func (r *Responder) Respond(intent core.Intent, query string, results []core.RankedProduct) (string, error) {
	if len(results) == 0 {
		return r.empty.Format(map[string]any{"query": query})
	}

	stats := summarize(results)

	template, ok := r.templates[intent.Label]
	if !ok {
		template = r.templates[core.IntentSearch]
	}

	return template.Format(map[string]any{
		"query":     query,
		"count":     stats.Count,
		"top":       stats.Top,
		"minPrice":  formatPrice(stats.MinPrice),
		"maxPrice":  formatPrice(stats.MaxPrice),
		"avgRating": fmt.Sprintf("%.1f", stats.AvgRating),
	})
}

// summarize computes result statistics. Products without reviews are
// excluded from the rating average.
func summarize(results []core.RankedProduct) resultStats {
	stats := resultStats{
		Count: len(results),
		Top:   results[0].Product.Name,
	}

	stats.MinPrice = results[0].Product.Price
	stats.MaxPrice = results[0].Product.Price

	ratingSum := 0.0
	rated := 0
	for _, result := range results {
		price := result.Product.Price
		if price < stats.MinPrice {
			stats.MinPrice = price
		}
		if price > stats.MaxPrice {
			stats.MaxPrice = price
		}
		if result.Product.ReviewCount > 0 {
			ratingSum += result.Product.Rating
			rated++
		}
	}
	if rated > 0 {
		stats.AvgRating = ratingSum / float64(rated)
	}

	return stats
}

// formatPrice trims trailing zeros so whole prices render as "25" and
// fractional ones as "25.50".
func formatPrice(price float64) string {
	formatted := fmt.Sprintf("%.2f", price)
	if strings.HasSuffix(formatted, ".00") {
		return strings.TrimSuffix(formatted, ".00")
	}
	return formatted
}
