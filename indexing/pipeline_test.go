package indexing

import (
	"context"
	"testing"

	"github.com/poiesic/shopsense/catalog/badger"
	"github.com/poiesic/shopsense/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T, opts ...Option) *Pipeline {
	t.Helper()

	productRepo, stateRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		productRepo.Close()
		backend.Close()
	})

	pipeline, err := NewPipeline(productRepo, stateRepo, opts...)
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)

	return pipeline
}

func testCatalog() []*core.Product {
	return []*core.Product{
		{Name: "Blue Denim Jacket", Description: "Classic denim jacket with brass buttons", Category: "Jackets", Colors: []string{"blue"}, Price: 79},
		{Name: "Red Wool Sweater", Description: "Chunky knit wool sweater", Category: "Sweaters", Colors: []string{"red"}, Price: 59},
		{Name: "Black Leather Boots", Description: "Ankle boots in full grain leather", Category: "Shoes", Colors: []string{"black"}, Price: 129},
	}
}

func TestNewPipelineValidation(t *testing.T) {
	productRepo, stateRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { productRepo.Close(); backend.Close() }()

	t.Run("nil product repository", func(t *testing.T) {
		_, err := NewPipeline(nil, stateRepo)
		assert.ErrorIs(t, err, ErrProductRepositoryRequired)
	})

	t.Run("nil state repository", func(t *testing.T) {
		_, err := NewPipeline(productRepo, nil)
		assert.ErrorIs(t, err, ErrStateRepositoryRequired)
	})
}

func TestIngestSkipsInvalidProducts(t *testing.T) {
	pipeline := newTestPipeline(t)
	ctx := context.Background()

	products := []*core.Product{
		{Name: "Valid Shirt", Category: "Shirts", Price: 25},
		{Name: "", Price: 10},               // missing name
		{Name: "Negative", Price: -5},       // negative price
		{Name: "Bad Rating", Price: 5, Rating: 7}, // rating out of range
	}

	added, err := pipeline.Ingest(ctx, products...)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, "Valid Shirt", added[0].Name)
	assert.NotZero(t, added[0].Id)
}

func TestBuildIndex(t *testing.T) {
	pipeline := newTestPipeline(t, WithPoolSize(2))
	ctx := context.Background()

	added, err := pipeline.Ingest(ctx, testCatalog()...)
	require.NoError(t, err)
	require.Len(t, added, 3)

	index, err := pipeline.BuildIndex(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, index.ProductCount())
	assert.Greater(t, index.TermCount(), 0)

	// Query through the built index to confirm documents were tokenized
	results := index.Rank(index.VectorizeQuery("denim jacket"))
	require.NotEmpty(t, results)
	assert.Equal(t, "Blue Denim Jacket", results[0].Product.Name)
}

func TestBuildIndexPersistsState(t *testing.T) {
	productRepo, stateRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { productRepo.Close(); backend.Close() }()

	pipeline, err := NewPipeline(productRepo, stateRepo)
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()

	_, err = pipeline.Ingest(ctx, testCatalog()...)
	require.NoError(t, err)

	index, err := pipeline.BuildIndex(ctx)
	require.NoError(t, err)

	state, err := stateRepo.LoadIndexState(ctx)
	require.NoError(t, err)
	require.NotNil(t, state)

	assert.Equal(t, index.CatalogHash(), state.CatalogHash)
	assert.Equal(t, 3, state.ProductCount)
	assert.Equal(t, index.TermCount(), state.TermCount)
	assert.False(t, state.BuiltAt.IsZero())
}

func TestBuildIndexEmptyCatalog(t *testing.T) {
	pipeline := newTestPipeline(t)

	index, err := pipeline.BuildIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, index.ProductCount())
}

func TestBuildIndexCancelledContext(t *testing.T) {
	pipeline := newTestPipeline(t)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := pipeline.Ingest(ctx, testCatalog()...)
	require.NoError(t, err)

	cancel()
	_, err = pipeline.BuildIndex(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStale(t *testing.T) {
	pipeline := newTestPipeline(t)
	ctx := context.Background()

	// No state saved yet
	stale, err := pipeline.Stale(ctx)
	require.NoError(t, err)
	assert.True(t, stale)

	_, err = pipeline.Ingest(ctx, testCatalog()...)
	require.NoError(t, err)

	_, err = pipeline.BuildIndex(ctx)
	require.NoError(t, err)

	stale, err = pipeline.Stale(ctx)
	require.NoError(t, err)
	assert.False(t, stale)

	// Adding a product invalidates the persisted state
	_, err = pipeline.Ingest(ctx, &core.Product{Name: "Green Parka", Category: "Jackets", Price: 149})
	require.NoError(t, err)

	stale, err = pipeline.Stale(ctx)
	require.NoError(t, err)
	assert.True(t, stale)
}
