package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/shopsense/core"
)

func TestIndexStateRoundTrip(t *testing.T) {
	productRepo, stateRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { productRepo.Close(); backend.Close() }()

	ctx := context.Background()

	state := &core.IndexState{
		CatalogHash:  core.IDFromContent("hash"),
		ProductCount: 42,
		TermCount:    512,
		BuiltAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	if err := stateRepo.SaveIndexState(ctx, state); err != nil {
		t.Fatalf("Failed to save index state: %v", err)
	}

	loaded, err := stateRepo.LoadIndexState(ctx)
	if err != nil {
		t.Fatalf("Failed to load index state: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected index state, got nil")
	}

	if loaded.CatalogHash != state.CatalogHash {
		t.Fatalf("Expected catalog hash %d, got %d", state.CatalogHash, loaded.CatalogHash)
	}
	if loaded.ProductCount != 42 {
		t.Fatalf("Expected product count 42, got %d", loaded.ProductCount)
	}
	if loaded.TermCount != 512 {
		t.Fatalf("Expected term count 512, got %d", loaded.TermCount)
	}
	if loaded.UpdatedAt.IsZero() {
		t.Fatal("Expected UpdatedAt to be set on save")
	}
}

func TestLoadIndexStateMissing(t *testing.T) {
	productRepo, stateRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { productRepo.Close(); backend.Close() }()

	state, err := stateRepo.LoadIndexState(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if state != nil {
		t.Fatalf("Expected nil state, got %+v", state)
	}
}
