package reindex

import (
	"bytes"
	"context"
	"testing"

	"github.com/poiesic/shopsense/catalog/badger"
	"github.com/poiesic/shopsense/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuilderRun(t *testing.T) {
	productRepo, stateRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { productRepo.Close(); backend.Close() }()

	ctx := context.Background()

	products := []*core.Product{
		{Name: "Striped Cotton Shirt", Description: "Breathable cotton shirt with stripes", Category: "Shirts", Price: 35},
		{Name: "Slim Denim Jeans", Description: "Stretch denim with a slim cut", Category: "Pants", Price: 65},
		{Name: "Hooded Rain Jacket", Description: "Waterproof shell with adjustable hood", Category: "Jackets", Price: 95},
	}
	_, err = productRepo.AddProducts(ctx, products...)
	require.NoError(t, err)

	var out bytes.Buffer
	config := DefaultConfig()
	config.BatchSize = 2
	rebuilder := NewRebuilder(productRepo, stateRepo, config, &out)

	index, err := rebuilder.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, index.ProductCount())
	assert.Greater(t, index.TermCount(), 0)
	assert.Contains(t, out.String(), "Starting index rebuild over 3 products")
	assert.Contains(t, out.String(), "Rebuild complete")

	// Build state is persisted for staleness checks
	state, err := stateRepo.LoadIndexState(ctx)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, index.CatalogHash(), state.CatalogHash)
	assert.Equal(t, 3, state.ProductCount)

	// The rebuilt index answers queries
	results := index.Rank(index.VectorizeQuery("rain jacket"))
	require.NotEmpty(t, results)
	assert.Equal(t, "Hooded Rain Jacket", results[0].Product.Name)
}

func TestRebuilderRunEmptyCatalog(t *testing.T) {
	productRepo, stateRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { productRepo.Close(); backend.Close() }()

	var out bytes.Buffer
	rebuilder := NewRebuilder(productRepo, stateRepo, nil, &out)

	index, err := rebuilder.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, index.ProductCount())
	assert.Contains(t, out.String(), "No products found")

	state, err := stateRepo.LoadIndexState(context.Background())
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, 0, state.ProductCount)
}

func TestRebuilderDropsInvalidProducts(t *testing.T) {
	productRepo, stateRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { productRepo.Close(); backend.Close() }()

	ctx := context.Background()

	// One valid product plus one that fails validation at rebuild time
	_, err = productRepo.AddProducts(ctx,
		&core.Product{Name: "Good Scarf", Category: "Accessories", Price: 20},
		&core.Product{Id: core.ID(7), Name: "Bad Rating", Price: 10, Rating: 9},
	)
	require.NoError(t, err)

	var out bytes.Buffer
	rebuilder := NewRebuilder(productRepo, stateRepo, nil, &out)

	index, err := rebuilder.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, index.ProductCount())
	scarfID := (&core.Product{Name: "Good Scarf", Category: "Accessories", Price: 20}).ContentID()
	assert.NotNil(t, index.Product(scarfID))
}
