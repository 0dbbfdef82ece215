package search

// Attention weighting constants. These are hand-tuned weighted sums, not a
// trained model.
const (
	contextBoost       = 1.5 // query term also seen in recent conversation turns
	contextOnlyWeight  = 0.3 // term from recent turns absent from the current query
	contextWindowTurns = 5   // how many recent turn queries participate
)

// QueryEmbedding is a token-to-weight map combining positional decay with
// conversational context boosting.
type QueryEmbedding map[string]float64

// BuildQueryEmbedding weights each query token by position (1/(i+1), earlier
// terms matter more), multiplied by a context boost when the token appeared
// in one of the last few conversation turn queries. Tokens that appear only
// in prior turns are added at low weight so recent context can pull in
// otherwise-unmatched candidates.
func BuildQueryEmbedding(query string, recentQueries []string) QueryEmbedding {
	tokens := Tokenize(query)

	if len(recentQueries) > contextWindowTurns {
		recentQueries = recentQueries[len(recentQueries)-contextWindowTurns:]
	}
	contextTerms := make(map[string]bool)
	for _, recent := range recentQueries {
		for _, term := range Tokenize(recent) {
			contextTerms[term] = true
		}
	}

	embedding := make(QueryEmbedding, len(tokens)+len(contextTerms))
	inQuery := make(map[string]bool, len(tokens))
	for i, term := range tokens {
		inQuery[term] = true
		weight := 1.0 / float64(i+1)
		if contextTerms[term] {
			weight *= contextBoost
		}
		if weight > embedding[term] {
			embedding[term] = weight
		}
	}

	for term := range contextTerms {
		if !inQuery[term] {
			embedding[term] = contextOnlyWeight
		}
	}

	return embedding
}

// AttentionScore computes the mean embedding weight over the tokens shared
// between the embedding and the document. Documents with zero overlap score
// 0 and should be excluded from attention rankings.
func AttentionScore(embedding QueryEmbedding, docTokens []string) float64 {
	if len(embedding) == 0 || len(docTokens) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(docTokens))
	var sum float64
	var overlap int
	for _, term := range docTokens {
		if seen[term] {
			continue
		}
		seen[term] = true
		if weight, ok := embedding[term]; ok {
			sum += weight
			overlap++
		}
	}
	if overlap == 0 {
		return 0
	}
	return sum / float64(overlap)
}
