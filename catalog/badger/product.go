package badger

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/shopsense/catalog"
	"github.com/poiesic/shopsense/core"
)

// ProductRepository implements catalog.ProductRepository for BadgerDB.
type ProductRepository struct {
	backend *Backend
}

var _ catalog.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(backend *Backend) *ProductRepository {
	return &ProductRepository{
		backend: backend,
	}
}

// Close is a no-op; the backend owns the database handle.
func (r *ProductRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ProductRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddProducts adds one or more products to storage.
func (r *ProductRepository) AddProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, product := range products {
			// Products carry content-based IDs derived from the name,
			// category, and price, so re-seeding the same catalog is
			// idempotent and same-named products in different categories
			// or price points do not collide.
			if product.Id == 0 {
				product.Id = product.ContentID()
			}

			product.InsertedAt = time.Now().UTC()
			product.UpdatedAt = product.InsertedAt

			key := makeProductKey(product.Id)
			value := catalog.MarshalProduct(product)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			if product.Category != "" {
				catKey := makeCategoryKey(product.Category, product.Id)
				if err := tx.Set(catKey, catalog.MarshalID(product.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return products, err
}

// UpdateProducts updates existing products.
func (r *ProductRepository) UpdateProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, product := range products {
			key := makeProductKey(product.Id)

			// Read old product to detect category changes
			old, err := r.readProduct(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return catalog.ErrNotFound
			}

			// The insertion timestamp belongs to the stored record, not
			// the caller's copy.
			product.InsertedAt = old.InsertedAt
			product.UpdatedAt = time.Now().UTC()

			value := catalog.MarshalProduct(product)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Move the category index entry if the category changed
			if !strings.EqualFold(old.Category, product.Category) {
				if old.Category != "" {
					oldCatKey := makeCategoryKey(old.Category, old.Id)
					if err := tx.Delete(oldCatKey); err != nil {
						return err
					}
				}
				if product.Category != "" {
					newCatKey := makeCategoryKey(product.Category, product.Id)
					if err := tx.Set(newCatKey, catalog.MarshalID(product.Id)); err != nil {
						return err
					}
				}
			}
		}
		return tx.Commit()
	}, true)

	return products, err
}

// DeleteProducts removes products by their IDs.
func (r *ProductRepository) DeleteProducts(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeProductKey(id)

			// Read product to get metadata for index cleanup
			product, err := r.readProduct(tx, key)
			if err != nil {
				return err
			}
			if product == nil {
				return catalog.ErrNotFound
			}

			if product.Category != "" {
				catKey := makeCategoryKey(product.Category, product.Id)
				if err := tx.Delete(catKey); err != nil {
					return err
				}
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetProduct retrieves a single product by ID.
func (r *ProductRepository) GetProduct(ctx context.Context, id core.ID) (*core.Product, error) {
	var result *core.Product
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeProductKey(id)
		var err error
		result, err = r.readProduct(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return catalog.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetProducts retrieves multiple products by their IDs.
func (r *ProductRepository) GetProducts(ctx context.Context, ids ...core.ID) ([]*core.Product, error) {
	var result []*core.Product
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeProductKey(id)
			product, err := r.readProduct(tx, key)
			if err != nil {
				return err
			}
			if product != nil {
				result = append(result, product)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetProductsByCategory retrieves products in a category via the category index.
func (r *ProductRepository) GetProductsByCategory(ctx context.Context, category string) ([]*core.Product, error) {
	var results []*core.Product
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialCategoryKey(category)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(startKey) || slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			// Read the ID from the index
			var productID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				productID, err = catalog.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full product
			productKey := makeProductKey(productID)
			product, err := r.readProduct(tx, productKey)
			if err != nil {
				return err
			}
			if product != nil {
				results = append(results, product)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetAllProducts retrieves the entire catalog.
func (r *ProductRepository) GetAllProducts(ctx context.Context) ([]*core.Product, error) {
	var results []*core.Product
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(productRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var product *core.Product
			err := iter.Item().Value(func(val []byte) error {
				var err error
				product, err = catalog.UnmarshalProduct(val)
				return err
			})
			if err != nil {
				return err
			}
			if product != nil {
				results = append(results, product)
			}
		}
		return nil
	}, false)

	return results, err
}

// CountProducts returns the number of products in the catalog.
func (r *ProductRepository) CountProducts(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(productRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readProduct reads a product from the transaction.
func (r *ProductRepository) readProduct(tx *badger.Txn, key []byte) (*core.Product, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var product *core.Product
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		product, unmarshalErr = catalog.UnmarshalProduct(val)
		return unmarshalErr
	})
	return product, err
}
