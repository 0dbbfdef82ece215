package reindex

import (
	"context"
	"log/slog"

	"github.com/poiesic/shopsense/core"
	"github.com/poiesic/shopsense/search"
)

// BatchProcessor validates and tokenizes batches of products for an
// index rebuild.
type BatchProcessor struct {
	logger *slog.Logger
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(logger *slog.Logger) *BatchProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchProcessor{logger: logger}
}

// Process validates a batch of products and tokenizes their documents.
// Invalid products are logged and dropped from the batch. Returns the
// products that passed validation and their token sequences keyed by ID.
func (bp *BatchProcessor) Process(ctx context.Context, products []*core.Product) ([]*core.Product, map[core.ID][]string, error) {
	if len(products) == 0 {
		return nil, nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	kept := make([]*core.Product, 0, len(products))
	tokens := make(map[core.ID][]string, len(products))
	for _, product := range products {
		if err := core.ValidateProduct(product); err != nil {
			bp.logger.Warn("dropping invalid product from rebuild", "id", product.Id, "err", err)
			continue
		}
		kept = append(kept, product)
		tokens[product.Id] = search.Tokenize(search.DocumentText(product))
	}

	return kept, tokens, nil
}
