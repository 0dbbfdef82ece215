package query

import (
	"strconv"
	"strings"

	"github.com/poiesic/shopsense/core"
)

// Extractor performs rule-based entity extraction over raw query text.
// It is pure and deterministic: the same text always yields the same
// entities, and text with no signal yields empty collections.
type Extractor struct{}

// NewExtractor creates a new entity extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract pulls structured attributes out of the query. Matching is
// case-insensitive; single-word variants match whole words (with naive
// plural folding) and multi-word variants match as substrings.
func (e *Extractor) Extract(text string) core.QueryEntities {
	lowered := strings.ToLower(text)
	tokens := queryWords(lowered)

	entities := core.QueryEntities{}

	for _, entry := range colorTable {
		if matchesAnyVariant(lowered, tokens, entry.Variants) {
			entities.Colors = appendUnique(entities.Colors, entry.Canonical)
		}
	}

	for _, entry := range categoryTable {
		if matchesAnyVariant(lowered, tokens, entry.Variants) {
			entities.Categories = appendUnique(entities.Categories, entry.Canonical)
		}
	}

	for _, material := range materialTable {
		if matchesVariant(lowered, tokens, material) {
			entities.Materials = appendUnique(entities.Materials, material)
		}
	}

	for _, size := range sizeTable {
		if tokens[size] {
			entities.Sizes = appendUnique(entities.Sizes, size)
		}
	}

	for _, entry := range attributeTable {
		for _, keyword := range entry.Keywords {
			if matchesVariant(lowered, tokens, keyword) {
				entities.Attributes = append(entities.Attributes, core.AttributeMatch{
					Type:  entry.Type,
					Value: keyword,
				})
			}
		}
	}

	entities.PriceRange = extractPriceRange(lowered)

	return entities
}

// extractPriceRange tries the ordered price patterns and stops at the
// first match.
func extractPriceRange(lowered string) *core.PriceRange {
	for _, pattern := range pricePatterns {
		match := pattern.Pattern.FindStringSubmatch(lowered)
		if match == nil {
			continue
		}

		switch pattern.Kind {
		case priceMax:
			value, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				continue
			}
			return &core.PriceRange{Max: &value}
		case priceMin:
			value, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				continue
			}
			return &core.PriceRange{Min: &value}
		case priceBetween:
			low, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				continue
			}
			high, err := strconv.ParseFloat(match[2], 64)
			if err != nil {
				continue
			}
			return &core.PriceRange{Min: &low, Max: &high}
		}
	}
	return nil
}

// queryWords splits lowered text into a word set for whole-word matching.
func queryWords(lowered string) map[string]bool {
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '-' && r != '\''
	})
	words := make(map[string]bool, len(fields))
	for _, field := range fields {
		words[field] = true
	}
	return words
}

func matchesAnyVariant(lowered string, tokens map[string]bool, variants []string) bool {
	for _, variant := range variants {
		if matchesVariant(lowered, tokens, variant) {
			return true
		}
	}
	return false
}

func matchesVariant(lowered string, tokens map[string]bool, variant string) bool {
	if strings.ContainsAny(variant, " -") {
		return strings.Contains(lowered, variant)
	}
	if tokens[variant] || tokens[variant+"s"] || tokens[variant+"es"] {
		return true
	}
	return false
}

func appendUnique(values []string, value string) []string {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}
