package search

import (
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/poiesic/shopsense/core"
)

// minTermIDF floors the IDF weight. The raw formula ln(N/(df+1)) goes
// negative for terms present in every document; without a positive floor
// those terms vanish from every vector and exact-match queries on small or
// homogeneous catalogs return nothing.
const minTermIDF = 0.01

// Index is an immutable TF-IDF term space built from one catalog snapshot.
// Build a new Index and swap the reference whenever the snapshot changes;
// stale term spaces degrade rankings silently, so rebuilding on catalog
// replacement is a correctness requirement.
type Index struct {
	products  []*core.Product
	byID      map[core.ID]*core.Product
	docTokens map[core.ID][]string
	idf       map[string]float64
	vectors   map[core.ID]TermVector
	hash      core.ID
}

// IndexOption configures an index build.
type IndexOption func(*indexOptions)

type indexOptions struct {
	logger *slog.Logger
}

// WithIndexLogger sets a custom logger for the build.
// Default is slog.Default().
func WithIndexLogger(logger *slog.Logger) IndexOption {
	return func(o *indexOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// DocumentText builds the indexable document for a product by concatenating
// name, description, category, subcategory, tags, colors, and materials.
func DocumentText(p *core.Product) string {
	parts := make([]string, 0, 7+len(p.Tags)+len(p.Colors)+len(p.Materials))
	parts = append(parts, p.Name, p.Description, p.Category, p.Subcategory)
	parts = append(parts, p.Tags...)
	parts = append(parts, p.Colors...)
	parts = append(parts, p.Materials...)
	return strings.Join(parts, " ")
}

// BuildIndex tokenizes every product document and builds the term space.
// Invalid product records are skipped with a warning rather than failing
// the build. A nil snapshot returns ErrIndexUnavailable; an empty one
// builds an empty (but valid) index.
func BuildIndex(products []*core.Product, opts ...IndexOption) (*Index, error) {
	if products == nil {
		return nil, ErrIndexUnavailable
	}

	options := &indexOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	kept := make([]*core.Product, 0, len(products))
	tokens := make(map[core.ID][]string, len(products))
	for _, product := range products {
		if err := core.ValidateProduct(product); err != nil {
			options.logger.Warn("skipping invalid product record", "err", err)
			continue
		}
		kept = append(kept, product)
		tokens[product.Id] = Tokenize(DocumentText(product))
	}

	return BuildIndexFromTokens(kept, tokens, opts...)
}

// BuildIndexFromTokens builds the term space from pre-tokenized documents.
// The indexing pipeline uses this entry point after tokenizing products
// concurrently; products must already be validated and tokens keyed by
// product ID.
func BuildIndexFromTokens(products []*core.Product, tokens map[core.ID][]string, opts ...IndexOption) (*Index, error) {
	if products == nil {
		return nil, ErrIndexUnavailable
	}

	idx := &Index{
		products:  products,
		byID:      make(map[core.ID]*core.Product, len(products)),
		docTokens: tokens,
		idf:       make(map[string]float64),
		vectors:   make(map[core.ID]TermVector, len(products)),
	}

	// Document frequency per vocabulary term.
	df := make(map[string]int)
	for _, product := range products {
		idx.byID[product.Id] = product
		seen := make(map[string]bool)
		for _, term := range tokens[product.Id] {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	// idf(t) = ln(N / (df(t)+1)), floored at minTermIDF so universal terms
	// stay representable instead of dropping out with a negative weight.
	n := float64(len(products))
	for term, count := range df {
		idf := math.Log(n / float64(count+1))
		if idf < minTermIDF {
			idf = minTermIDF
		}
		idx.idf[term] = idf
	}

	for _, product := range products {
		idx.vectors[product.Id] = idx.vectorize(tokens[product.Id])
	}

	idx.hash = SnapshotHash(products)
	return idx, nil
}

// vectorize maps a token sequence to a sparse tf-idf vector. Term frequency
// is the raw in-document count.
func (idx *Index) vectorize(tokens []string) TermVector {
	if len(tokens) == 0 {
		return TermVector{}
	}
	tf := make(map[string]int, len(tokens))
	for _, term := range tokens {
		tf[term]++
	}
	vector := make(TermVector, len(tf))
	for term, count := range tf {
		idf, ok := idx.idf[term]
		if !ok {
			continue // out-of-vocabulary
		}
		vector[term] = float64(count) * idf
	}
	return vector
}

// VectorizeQuery converts query text into a sparse vector over the catalog
// term space, so query and document vectors are comparable. Out-of-vocabulary
// terms are dropped.
func (idx *Index) VectorizeQuery(text string) TermVector {
	return idx.vectorize(Tokenize(text))
}

// Rank computes cosine similarity of every indexed product against the query
// vector, keeps candidates with similarity > 0, and sorts descending. Ties
// break by ascending product ID so orderings are reproducible across runs.
func (idx *Index) Rank(query TermVector) []core.RankedProduct {
	if len(query) == 0 {
		return nil
	}

	results := make([]core.RankedProduct, 0, len(idx.products))
	for _, product := range idx.products {
		similarity := Cosine(query, idx.vectors[product.Id])
		if similarity > 0 {
			results = append(results, core.RankedProduct{Product: product, Score: similarity})
		}
	}

	if len(results) == 0 {
		return nil
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Product.Id < results[j].Product.Id
	})
	return results
}

// Products returns the indexed snapshot in input order.
func (idx *Index) Products() []*core.Product {
	return idx.products
}

// Product returns the indexed product with the given ID, or nil.
func (idx *Index) Product(id core.ID) *core.Product {
	return idx.byID[id]
}

// DocumentTokens returns the token sequence of a product document.
func (idx *Index) DocumentTokens(id core.ID) []string {
	return idx.docTokens[id]
}

// Vector returns the tf-idf vector of a product document.
func (idx *Index) Vector(id core.ID) TermVector {
	return idx.vectors[id]
}

// TermCount returns the vocabulary size.
func (idx *Index) TermCount() int {
	return len(idx.idf)
}

// ProductCount returns the number of indexed products.
func (idx *Index) ProductCount() int {
	return len(idx.products)
}

// CatalogHash returns a content hash identifying the indexed snapshot.
func (idx *Index) CatalogHash() core.ID {
	return idx.hash
}

// SnapshotHash computes a content hash over a set of product IDs. Two
// snapshots with the same products hash identically regardless of order,
// so the hash identifies the catalog state an index was built from.
func SnapshotHash(products []*core.Product) core.ID {
	ids := make([]uint64, len(products))
	for i, product := range products {
		ids[i] = uint64(product.Id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var sb strings.Builder
	for _, id := range ids {
		sb.WriteString(strconv.FormatUint(id, 16))
		sb.WriteByte(':')
	}
	return core.IDFromContent(sb.String())
}
