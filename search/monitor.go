package search

import "github.com/poiesic/shopsense/core"

// SearchMonitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps for telemetry.
type SearchMonitor interface {
	Start(query string)
	AfterSimilaritySearch(ids []core.ID)
	AfterAttentionPass(ids []core.ID)
	SimilarityHit(product *core.Product)
	AttentionHit(product *core.Product)
	CombinedHit(product *core.Product)
	Finish(results []core.RankedProduct)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                      {}
func (n *noopMonitor) AfterSimilaritySearch(_ []core.ID)   {}
func (n *noopMonitor) AfterAttentionPass(_ []core.ID)      {}
func (n *noopMonitor) SimilarityHit(_ *core.Product)       {}
func (n *noopMonitor) AttentionHit(_ *core.Product)        {}
func (n *noopMonitor) CombinedHit(_ *core.Product)         {}
func (n *noopMonitor) Finish(_ []core.RankedProduct)       {}
