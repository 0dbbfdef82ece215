package catalog

import (
	"context"

	"github.com/poiesic/shopsense/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ProductRepository provides operations for managing the product catalog.
type ProductRepository interface {
	Repository
	// AddProducts adds one or more products to storage.
	// For products with ID=0, derives a content-based ID from the product name.
	// Sets InsertedAt and UpdatedAt timestamps.
	// Returns the products with generated IDs and timestamps populated.
	AddProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error)

	// UpdateProducts updates existing products.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any product doesn't exist.
	UpdateProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error)

	// DeleteProducts removes products by their IDs.
	// Also removes associated category index entries.
	// Returns ErrNotFound if any product doesn't exist.
	DeleteProducts(ctx context.Context, ids ...core.ID) error

	// GetProduct retrieves a single product by ID.
	// Returns ErrNotFound if the product doesn't exist.
	GetProduct(ctx context.Context, id core.ID) (*core.Product, error)

	// GetProducts retrieves multiple products by their IDs.
	// Returns only the products that exist (no error for missing products).
	GetProducts(ctx context.Context, ids ...core.ID) ([]*core.Product, error)

	// GetProductsByCategory retrieves products in a category.
	// Category matching is case-insensitive. Results are ordered by ID ascending.
	GetProductsByCategory(ctx context.Context, category string) ([]*core.Product, error)

	// GetAllProducts retrieves the entire catalog.
	// Used by index builds. Ordering is unspecified.
	GetAllProducts(ctx context.Context) ([]*core.Product, error)

	// CountProducts returns the number of products in the catalog.
	CountProducts(ctx context.Context) (int, error)
}

// StateRepository persists the search index build state.
type StateRepository interface {
	// SaveIndexState persists the index state, updating its UpdatedAt timestamp.
	SaveIndexState(ctx context.Context, state *core.IndexState) error

	// LoadIndexState retrieves the persisted index state.
	// Returns nil, nil if no state has been saved.
	LoadIndexState(ctx context.Context) (*core.IndexState, error)
}
