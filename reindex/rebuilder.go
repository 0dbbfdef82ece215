// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reindex

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/shopsense/catalog"
	"github.com/poiesic/shopsense/core"
	"github.com/poiesic/shopsense/search"
)

// Config holds configuration for the rebuild operation.
type Config struct {
	// BatchSize is the number of products to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of products)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for storage operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Rebuilder orchestrates a full search index rebuild over a catalog store.
type Rebuilder struct {
	productRepo catalog.ProductRepository
	stateRepo   catalog.StateRepository
	config      *Config
	progress    io.Writer
	processor   *BatchProcessor
	iterator    *ProductIterator
}

// NewRebuilder creates a new rebuilder.
// progress: where to write progress output (typically os.Stderr)
func NewRebuilder(productRepo catalog.ProductRepository, stateRepo catalog.StateRepository, config *Config, progress io.Writer) *Rebuilder {
	if config == nil {
		config = DefaultConfig()
	}

	return &Rebuilder{
		productRepo: productRepo,
		stateRepo:   stateRepo,
		config:      config,
		progress:    progress,
		processor:   NewBatchProcessor(slog.Default()),
		iterator:    NewProductIterator(productRepo, config.BatchSize),
	}
}

// Run executes the rebuild operation.
// The entire catalog is re-tokenized, a fresh term space is built, and
// the resulting build state is persisted. Progress is reported to the
// configured writer. Returns the rebuilt index.
func (r *Rebuilder) Run(ctx context.Context) (*search.Index, error) {
	started := time.Now().UTC()

	var total int
	err := RetryWithBackoff(ctx, func() error {
		var countErr error
		total, countErr = r.productRepo.CountProducts(ctx)
		return countErr
	}, r.config.MaxRetries, r.config.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	if total == 0 {
		fmt.Fprintf(r.progress, "No products found in catalog (0 products)\n")
		index, err := search.BuildIndexFromTokens([]*core.Product{}, map[core.ID][]string{})
		if err != nil {
			return nil, err
		}
		if err := r.saveState(ctx, index, started); err != nil {
			return nil, err
		}
		return index, nil
	}

	fmt.Fprintf(r.progress, "Starting index rebuild over %d products (batch size: %d)\n",
		total, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	var kept []*core.Product
	tokens := make(map[core.ID][]string, total)
	processed := 0

	err = r.iterator.ForEach(ctx, func(products []*core.Product) error {
		batchKept, batchTokens, err := r.processor.Process(ctx, products)
		if err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		kept = append(kept, batchKept...)
		for id, toks := range batchTokens {
			tokens[id] = toks
		}

		processed += len(products)
		tracker.Update(processed)

		return nil
	})
	if err != nil {
		return nil, err
	}

	tracker.Finish()

	if kept == nil {
		kept = []*core.Product{}
	}

	index, err := search.BuildIndexFromTokens(kept, tokens)
	if err != nil {
		return nil, err
	}

	if err := r.saveState(ctx, index, started); err != nil {
		return nil, err
	}

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Rebuild complete. Indexed %d products, %d terms in %v (%.1f products/sec)\n",
		index.ProductCount(), index.TermCount(), elapsed.Round(time.Second),
		float64(total)/elapsed.Seconds())

	return index, nil
}

func (r *Rebuilder) saveState(ctx context.Context, index *search.Index, builtAt time.Time) error {
	state := &core.IndexState{
		CatalogHash:  index.CatalogHash(),
		ProductCount: index.ProductCount(),
		TermCount:    index.TermCount(),
		BuiltAt:      builtAt,
	}

	err := RetryWithBackoff(ctx, func() error {
		return r.stateRepo.SaveIndexState(ctx, state)
	}, r.config.MaxRetries, r.config.RetryDelay)
	if err != nil {
		return fmt.Errorf("failed to save index state: %w", err)
	}
	return nil
}
