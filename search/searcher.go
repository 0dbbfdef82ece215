package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/poiesic/shopsense/core"
)

// attentionWeight scales the normalized attention score added on top of
// cosine similarity when combining the two retrieval passes.
const attentionWeight = 0.3

// Searcher ranks a catalog snapshot against free-text queries. It combines
// tf-idf cosine similarity with an attention pass over the query and recent
// conversation turns.
type Searcher struct {
	index  *Index
	logger *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over a built index.
func NewSearcher(index *Index, opts ...Option) (*Searcher, error) {
	if index == nil {
		return nil, ErrIndexRequired
	}

	s := &Searcher{
		index:  index,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Index returns the underlying term-space index.
func (s *Searcher) Index() *Index {
	return s.index
}

// Search returns up to maxHits candidates for the query, ranked by the
// combined retrieval score. recentQueries holds the raw query text of prior
// conversation turns, newest last; pass nil when there is no history.
// An empty query yields an empty result, not an error.
func (s *Searcher) Search(ctx context.Context, query string, recentQueries []string, maxHits int) ([]core.RankedProduct, error) {
	return s.SearchWithMonitor(ctx, query, recentQueries, maxHits, nil)
}

// SearchWithMonitor is Search with observer callbacks at each stage.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, recentQueries []string, maxHits int, monitor SearchMonitor) ([]core.RankedProduct, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	// 1. Cosine similarity over the tf-idf term space.
	queryVector := s.index.VectorizeQuery(query)
	cosineHits := s.index.Rank(queryVector)

	cosineScores := make(map[core.ID]float64, len(cosineHits))
	cosineIds := make([]core.ID, 0, len(cosineHits))
	for _, hit := range cosineHits {
		cosineScores[hit.Product.Id] = hit.Score
		cosineIds = append(cosineIds, hit.Product.Id)
	}
	monitor.AfterSimilaritySearch(cosineIds)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 2. Attention pass: positional weights plus conversational context.
	embedding := BuildQueryEmbedding(query, recentQueries)
	attentionScores := make(map[core.ID]float64)
	var maxAttention float64
	for _, product := range s.index.Products() {
		score := AttentionScore(embedding, s.index.DocumentTokens(product.Id))
		if score > 0 {
			attentionScores[product.Id] = score
			if score > maxAttention {
				maxAttention = score
			}
		}
	}
	attentionIds := make([]core.ID, 0, len(attentionScores))
	for id := range attentionScores {
		attentionIds = append(attentionIds, id)
	}
	monitor.AfterAttentionPass(attentionIds)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 3. Combine: union of both passes, cosine plus a scaled attention
	// bonus. Attention is normalized against the best attention score of
	// this pass so the bonus stays in [0, attentionWeight].
	results := make([]core.RankedProduct, 0, len(cosineScores)+len(attentionScores))
	for _, product := range s.index.Products() {
		cosine, inCosine := cosineScores[product.Id]
		attention, inAttention := attentionScores[product.Id]
		if !inCosine && !inAttention {
			continue
		}

		score := cosine
		if inAttention && maxAttention > 0 {
			score += attentionWeight * (attention / maxAttention)
		}

		switch {
		case inCosine && inAttention:
			monitor.CombinedHit(product)
		case inCosine:
			monitor.SimilarityHit(product)
		default:
			monitor.AttentionHit(product)
		}

		results = append(results, core.RankedProduct{Product: product, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Product.Id < results[j].Product.Id
	})
	if maxHits > 0 && len(results) > maxHits {
		results = results[:maxHits]
	}
	monitor.Finish(results)

	return results, nil
}
