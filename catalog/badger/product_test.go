package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/shopsense/catalog"
	"github.com/poiesic/shopsense/core"
)

func TestProductBasics(t *testing.T) {
	productRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { productRepo.Close(); backend.Close() }()

	ctx := context.Background()

	product := &core.Product{
		Name:     "Linen Shirt",
		Category: "Shirts",
		Price:    39.99,
		Stock:    5,
	}

	added, err := productRepo.AddProducts(ctx, product)
	if err != nil {
		t.Fatalf("Failed to add product: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 product, got %d", len(added))
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	want := (&core.Product{Name: "Linen Shirt", Category: "Shirts", Price: 39.99}).ContentID()
	if added[0].Id != want {
		t.Fatal("Expected content-based ID derived from name, category, and price")
	}

	retrieved, err := productRepo.GetProduct(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get product: %v", err)
	}

	if retrieved.Name != "Linen Shirt" {
		t.Fatalf("Expected 'Linen Shirt', got '%s'", retrieved.Name)
	}

	if retrieved.Price != 39.99 {
		t.Fatalf("Expected price 39.99, got %v", retrieved.Price)
	}
}

func TestAddProductsSameNameDistinctIDs(t *testing.T) {
	productRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { productRepo.Close(); backend.Close() }()

	ctx := context.Background()

	// Same name in different categories and price points must not collide
	products := []*core.Product{
		{Name: "Travel Mug", Category: "Homeware", Price: 15},
		{Name: "Travel Mug", Category: "Outdoor", Price: 22},
	}
	added, err := productRepo.AddProducts(ctx, products...)
	if err != nil {
		t.Fatalf("Failed to add products: %v", err)
	}

	if added[0].Id == added[1].Id {
		t.Fatal("Expected distinct IDs for same-named products")
	}

	count, err := productRepo.CountProducts(ctx)
	if err != nil {
		t.Fatalf("Failed to count products: %v", err)
	}
	if count != 2 {
		t.Fatalf("Expected both products stored, got %d", count)
	}
}

func TestGetProductNotFound(t *testing.T) {
	productRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { productRepo.Close(); backend.Close() }()

	_, err = productRepo.GetProduct(context.Background(), core.ID(12345))
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetProductsByCategory(t *testing.T) {
	productRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { productRepo.Close(); backend.Close() }()

	ctx := context.Background()

	products := []*core.Product{
		{Name: "Denim Jacket", Category: "Jackets", Price: 79},
		{Name: "Bomber Jacket", Category: "Jackets", Price: 99},
		{Name: "Chino Pants", Category: "Pants", Price: 49},
	}

	if _, err := productRepo.AddProducts(ctx, products...); err != nil {
		t.Fatalf("Failed to add products: %v", err)
	}

	jackets, err := productRepo.GetProductsByCategory(ctx, "Jackets")
	if err != nil {
		t.Fatalf("Failed to get products by category: %v", err)
	}
	if len(jackets) != 2 {
		t.Fatalf("Expected 2 jackets, got %d", len(jackets))
	}

	// Category lookup is case-insensitive
	jackets, err = productRepo.GetProductsByCategory(ctx, "jackets")
	if err != nil {
		t.Fatalf("Failed to get products by category: %v", err)
	}
	if len(jackets) != 2 {
		t.Fatalf("Expected 2 jackets with lowercase lookup, got %d", len(jackets))
	}
}

func TestUpdateProductCategoryMovesIndex(t *testing.T) {
	productRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { productRepo.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := productRepo.AddProducts(ctx, &core.Product{Name: "Field Vest", Category: "Jackets", Price: 59})
	if err != nil {
		t.Fatalf("Failed to add product: %v", err)
	}

	added[0].Category = "Vests"
	if _, err := productRepo.UpdateProducts(ctx, added[0]); err != nil {
		t.Fatalf("Failed to update product: %v", err)
	}

	jackets, err := productRepo.GetProductsByCategory(ctx, "Jackets")
	if err != nil {
		t.Fatalf("Failed to get jackets: %v", err)
	}
	if len(jackets) != 0 {
		t.Fatalf("Expected 0 jackets after recategorization, got %d", len(jackets))
	}

	vests, err := productRepo.GetProductsByCategory(ctx, "Vests")
	if err != nil {
		t.Fatalf("Failed to get vests: %v", err)
	}
	if len(vests) != 1 {
		t.Fatalf("Expected 1 vest, got %d", len(vests))
	}
}

func TestUpdateProductPreservesInsertedAt(t *testing.T) {
	productRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { productRepo.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := productRepo.AddProducts(ctx, &core.Product{Name: "Corduroy Cap", Category: "Accessories", Price: 18})
	if err != nil {
		t.Fatalf("Failed to add product: %v", err)
	}
	insertedAt := added[0].InsertedAt
	if insertedAt.IsZero() {
		t.Fatal("Expected insertion timestamp to be set")
	}

	// An update from a caller copy with a zero InsertedAt must keep the
	// stored record's insertion timestamp
	update := &core.Product{Id: added[0].Id, Name: "Corduroy Cap", Category: "Accessories", Price: 21}
	if _, err := productRepo.UpdateProducts(ctx, update); err != nil {
		t.Fatalf("Failed to update product: %v", err)
	}

	stored, err := productRepo.GetProduct(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get product: %v", err)
	}
	if !stored.InsertedAt.Equal(insertedAt) {
		t.Fatalf("Expected InsertedAt %v preserved, got %v", insertedAt, stored.InsertedAt)
	}
	if !stored.UpdatedAt.After(insertedAt) && !stored.UpdatedAt.Equal(insertedAt) {
		t.Fatal("Expected UpdatedAt to be refreshed")
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	productRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { productRepo.Close(); backend.Close() }()

	missing := &core.Product{Id: core.ID(999), Name: "Ghost", Price: 1}
	_, err = productRepo.UpdateProducts(context.Background(), missing)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteProducts(t *testing.T) {
	productRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { productRepo.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := productRepo.AddProducts(ctx, &core.Product{Name: "Canvas Tote", Category: "Bags", Price: 25})
	if err != nil {
		t.Fatalf("Failed to add product: %v", err)
	}

	if err := productRepo.DeleteProducts(ctx, added[0].Id); err != nil {
		t.Fatalf("Failed to delete product: %v", err)
	}

	_, err = productRepo.GetProduct(ctx, added[0].Id)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}

	bags, err := productRepo.GetProductsByCategory(ctx, "Bags")
	if err != nil {
		t.Fatalf("Failed to get bags: %v", err)
	}
	if len(bags) != 0 {
		t.Fatalf("Expected category index cleanup, got %d entries", len(bags))
	}
}

func TestGetAllProductsAndCount(t *testing.T) {
	productRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { productRepo.Close(); backend.Close() }()

	ctx := context.Background()

	products := []*core.Product{
		{Name: "Wool Scarf", Category: "Accessories", Price: 19},
		{Name: "Leather Belt", Category: "Accessories", Price: 29},
		{Name: "Rain Boots", Category: "Shoes", Price: 69},
	}
	if _, err := productRepo.AddProducts(ctx, products...); err != nil {
		t.Fatalf("Failed to add products: %v", err)
	}

	all, err := productRepo.GetAllProducts(ctx)
	if err != nil {
		t.Fatalf("Failed to get all products: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 products, got %d", len(all))
	}

	count, err := productRepo.CountProducts(ctx)
	if err != nil {
		t.Fatalf("Failed to count products: %v", err)
	}
	if count != 3 {
		t.Fatalf("Expected count 3, got %d", count)
	}
}

func TestGetProductsSkipsMissing(t *testing.T) {
	productRepo, _, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { productRepo.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := productRepo.AddProducts(ctx, &core.Product{Name: "Straw Hat", Category: "Accessories", Price: 15})
	if err != nil {
		t.Fatalf("Failed to add product: %v", err)
	}

	results, err := productRepo.GetProducts(ctx, added[0].Id, core.ID(424242))
	if err != nil {
		t.Fatalf("Failed to get products: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 product, got %d", len(results))
	}
}
