package query

import (
	"regexp"

	"github.com/poiesic/shopsense/core"
)

// Rule tables are declarative data. Extraction and classification logic
// iterate these structures in order, so table order is part of the
// documented behavior.

// variantEntry maps a canonical term to its lexical variants. Any variant
// match adds the canonical term to the result set.
type variantEntry struct {
	Canonical string
	Variants  []string
}

var colorTable = []variantEntry{
	{"blue", []string{"blue", "navy", "azure", "cobalt", "indigo", "teal"}},
	{"red", []string{"red", "crimson", "scarlet", "maroon", "burgundy"}},
	{"green", []string{"green", "olive", "emerald", "mint"}},
	{"black", []string{"black", "charcoal", "jet black"}},
	{"white", []string{"white", "ivory", "cream", "off-white"}},
	{"yellow", []string{"yellow", "gold", "mustard"}},
	{"pink", []string{"pink", "rose", "blush", "fuchsia"}},
	{"purple", []string{"purple", "violet", "lavender", "plum"}},
	{"brown", []string{"brown", "tan", "beige", "khaki", "camel"}},
	{"gray", []string{"gray", "grey", "silver", "slate"}},
	{"orange", []string{"orange", "coral", "peach", "rust"}},
}

var categoryTable = []variantEntry{
	{"Jackets", []string{"jacket", "blazer", "coat", "parka", "windbreaker", "outerwear"}},
	{"Dresses", []string{"dress", "gown", "frock", "sundress"}},
	{"Shoes", []string{"shoe", "sneaker", "trainer", "boot", "sandal", "heel", "loafer"}},
	{"Shirts", []string{"shirt", "t-shirt", "tshirt", "tee", "blouse", "polo", "top"}},
	{"Pants", []string{"pants", "trousers", "jeans", "chinos", "leggings", "shorts"}},
	{"Sweaters", []string{"sweater", "cardigan", "hoodie", "pullover", "jumper"}},
	{"Skirts", []string{"skirt"}},
	{"Accessories", []string{"scarf", "belt", "hat", "cap", "gloves", "bag", "handbag", "watch"}},
}

// Materials and sizes are direct fixed-vocabulary membership tests.
var materialTable = []string{
	"cotton", "leather", "denim", "silk", "wool", "linen", "polyester",
	"suede", "cashmere", "velvet", "nylon", "satin",
}

var sizeTable = []string{
	"xs", "s", "m", "l", "xl", "xxl",
	"small", "medium", "large",
}

// attributeEntry tags a fixed keyword list with an attribute type.
type attributeEntry struct {
	Type     string
	Keywords []string
}

var attributeTable = []attributeEntry{
	{"style", []string{"casual", "formal", "elegant", "sporty", "vintage", "modern", "classic", "chic", "trendy"}},
	{"occasion", []string{"party", "wedding", "office", "work", "gym", "beach", "travel", "date"}},
	{"season", []string{"summer", "winter", "spring", "fall", "autumn"}},
	{"fit", []string{"slim", "loose", "oversized", "fitted", "relaxed", "tight"}},
}

// Price patterns are tried in order; the first match wins and later
// patterns are not evaluated. This order is documented behavior even when
// a query mixes phrasings.
type pricePatternKind int

const (
	priceMax pricePatternKind = iota
	priceMin
	priceBetween
)

type pricePattern struct {
	Kind    pricePatternKind
	Pattern *regexp.Regexp
}

var pricePatterns = []pricePattern{
	{priceMax, regexp.MustCompile(`(?:under|below|less than|cheaper than|max(?:imum)?)\s*\$?(\d+(?:\.\d+)?)`)},
	{priceMin, regexp.MustCompile(`(?:above|over|more than|min(?:imum)?)\s*\$?(\d+(?:\.\d+)?)`)},
	{priceBetween, regexp.MustCompile(`between\s*\$?(\d+(?:\.\d+)?)\s*(?:and|to|-)\s*\$?(\d+(?:\.\d+)?)`)},
}

// intentRule proposes a (label, confidence) pair when any of its cues
// appear in the lower-cased query. Confidence values are fixed per rule and
// reflect rule specificity; the table below is the authoritative confidence
// table.
type intentRule struct {
	Label      core.IntentLabel
	Confidence float64
	Cues       []string
}

var intentTable = []intentRule{
	{core.IntentRecommend, 0.9, []string{"recommend", "suggest", "what should i", "what do you", "best for", "advice"}},
	{core.IntentPurchase, 0.85, []string{"buy", "purchase", "order", "add to cart", "i'll take"}},
	{core.IntentCompare, 0.8, []string{"compare", "difference between", "versus", " vs ", "better than", "which is better"}},
	{core.IntentQuestion, 0.7, []string{"what", "how", "why", "when", "which", "does", "?"}},
	{core.IntentFilter, 0.7, []string{"under", "below", "above", "over", "between", "cheaper", "less than", "more than", "in stock"}},
	{core.IntentBrowse, 0.6, []string{"show me everything", "browse", "explore", "just looking", "what's new", "new arrivals"}},
	{core.IntentSearch, 0.6, []string{"find", "search", "show", "looking for", "need", "want"}},
}

// defaultIntent is reported when no rule fires.
var defaultIntent = core.Intent{Label: core.IntentSearch, Confidence: 0.5}
