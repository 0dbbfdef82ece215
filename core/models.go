package core

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or supplied by the catalog feed.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Product represents a single catalog item. The engine treats products as
// immutable snapshots supplied by the catalog store; it never mutates them.
type Product struct {
	Id          ID
	Name        string
	Description string
	Category    string
	Subcategory string
	Tags        []string
	Colors      []string
	Materials   []string
	Sizes       []string
	ImageURL    string
	Price       float64
	Stock       int64
	Rating      float64 // Average review rating, 0-5
	ReviewCount int64
	SalesCount  int64
	CreatedAt   time.Time
	InsertedAt  time.Time // When the record was inserted into the store
	UpdatedAt   time.Time // When the record was last updated
}

// ContentID derives the deterministic identifier assigned to products
// ingested without an explicit ID. A name alone is not unique across a
// catalog (the same name can recur in another category or at another price
// point), so the hash covers name, category, and price.
func (p *Product) ContentID() ID {
	return IDFromContent(p.Name + "\x00" + p.Category + "\x00" +
		strconv.FormatFloat(p.Price, 'f', -1, 64))
}

// PriceRange is an open-ended price interval. A nil bound means unbounded
// on that side.
type PriceRange struct {
	Min *float64
	Max *float64
}

// Contains reports whether price falls within the range.
// A nil range contains every price.
func (r *PriceRange) Contains(price float64) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && price < *r.Min {
		return false
	}
	if r.Max != nil && price > *r.Max {
		return false
	}
	return true
}

// AttributeMatch is a typed attribute extracted from a query, such as
// (style, casual) or (season, winter).
type AttributeMatch struct {
	Type  string
	Value string
}

// QueryEntities is the structured extraction result for one query.
// Empty collections are the valid, common case.
type QueryEntities struct {
	Colors     []string
	Categories []string
	Materials  []string
	Sizes      []string
	Attributes []AttributeMatch
	PriceRange *PriceRange
}

// IsEmpty reports whether no entity of any kind was extracted.
func (e QueryEntities) IsEmpty() bool {
	return len(e.Colors) == 0 && len(e.Categories) == 0 &&
		len(e.Materials) == 0 && len(e.Sizes) == 0 &&
		len(e.Attributes) == 0 && e.PriceRange == nil
}

// IntentLabel identifies the purpose of a query.
type IntentLabel string

const (
	IntentSearch    IntentLabel = "search"
	IntentRecommend IntentLabel = "recommend"
	IntentCompare   IntentLabel = "compare"
	IntentQuestion  IntentLabel = "question"
	IntentBrowse    IntentLabel = "browse"
	IntentFilter    IntentLabel = "filter"
	IntentPurchase  IntentLabel = "purchase"
)

// Intent is a classified query purpose with a fixed rule confidence in [0,1].
type Intent struct {
	Label      IntentLabel
	Confidence float64
}

// RankedProduct is a scored catalog item returned from a search or
// recommendation pass.
type RankedProduct struct {
	Product *Product
	Score   float64
}

// IndexState records the provenance of the last search index build.
type IndexState struct {
	CatalogHash  ID    // Content hash over all indexed product IDs
	ProductCount int // Number of products in the indexed snapshot
	TermCount    int // Vocabulary size of the built index
	BuiltAt      time.Time
	UpdatedAt    time.Time
}
