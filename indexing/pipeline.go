package indexing

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/shopsense/catalog"
	"github.com/poiesic/shopsense/core"
	"github.com/poiesic/shopsense/search"
)

// Pipeline orchestrates catalog ingestion and search index builds.
// It manages concurrent tokenization of product documents.
type Pipeline struct {
	productRepository catalog.ProductRepository
	stateRepository   catalog.StateRepository
	tokenPool         *ants.Pool
	logger            *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent tokenization.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.tokenPool != nil {
			p.tokenPool.Release()
		}

		tokenPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.tokenPool = tokenPool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new indexing pipeline.
func NewPipeline(
	productRepository catalog.ProductRepository,
	stateRepository catalog.StateRepository,
	opts ...Option,
) (*Pipeline, error) {
	if productRepository == nil {
		return nil, ErrProductRepositoryRequired
	}
	if stateRepository == nil {
		return nil, ErrStateRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	tokenPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		productRepository: productRepository,
		stateRepository:   stateRepository,
		tokenPool:         tokenPool,
		logger:            slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest validates products and adds them to the catalog store.
// Invalid products are logged and skipped rather than failing the batch.
// Returns the products that were added, with IDs and timestamps populated.
func (p *Pipeline) Ingest(ctx context.Context, products ...*core.Product) ([]*core.Product, error) {
	kept := make([]*core.Product, 0, len(products))
	for _, product := range products {
		if err := core.ValidateProduct(product); err != nil {
			p.logger.Warn("skipping invalid product", "name", product.Name, "err", err)
			continue
		}
		kept = append(kept, product)
	}

	if len(kept) == 0 {
		return nil, nil
	}

	return p.productRepository.AddProducts(ctx, kept...)
}

// BuildIndex loads the full catalog, tokenizes product documents
// concurrently, and builds the TF-IDF term space. The resulting build
// state is persisted so later runs can detect stale indexes.
func (p *Pipeline) BuildIndex(ctx context.Context) (*search.Index, error) {
	started := time.Now().UTC()

	products, err := p.productRepository.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*core.Product{}
	}

	kept := make([]*core.Product, 0, len(products))
	for _, product := range products {
		if err := core.ValidateProduct(product); err != nil {
			p.logger.Warn("skipping invalid product record", "id", product.Id, "err", err)
			continue
		}
		kept = append(kept, product)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Tokenize documents concurrently. Each worker writes to its own slot,
	// so no locking is needed.
	tokenSlots := make([][]string, len(kept))
	var wg sync.WaitGroup
	for i, product := range kept {
		i, product := i, product
		wg.Add(1)
		if err := p.tokenPool.Submit(func() {
			defer wg.Done()
			tokenSlots[i] = search.Tokenize(search.DocumentText(product))
		}); err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := make(map[core.ID][]string, len(kept))
	for i, product := range kept {
		tokens[product.Id] = tokenSlots[i]
	}

	index, err := search.BuildIndexFromTokens(kept, tokens, search.WithIndexLogger(p.logger))
	if err != nil {
		return nil, err
	}

	state := &core.IndexState{
		CatalogHash:  index.CatalogHash(),
		ProductCount: index.ProductCount(),
		TermCount:    index.TermCount(),
		BuiltAt:      started,
	}
	if err := p.stateRepository.SaveIndexState(ctx, state); err != nil {
		return nil, err
	}

	p.logger.Info("index build complete",
		"products", index.ProductCount(),
		"terms", index.TermCount(),
		"elapsed", time.Since(started))

	return index, nil
}

// Stale reports whether the persisted index state no longer matches the
// current catalog contents. Returns true when no state has been saved.
func (p *Pipeline) Stale(ctx context.Context) (bool, error) {
	state, err := p.stateRepository.LoadIndexState(ctx)
	if err != nil {
		return false, err
	}
	if state == nil {
		return true, nil
	}

	products, err := p.productRepository.GetAllProducts(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]*core.Product, 0, len(products))
	for _, product := range products {
		if core.ValidateProduct(product) == nil {
			kept = append(kept, product)
		}
	}

	return search.SnapshotHash(kept) != state.CatalogHash, nil
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.tokenPool != nil {
		p.tokenPool.Release()
	}
}
