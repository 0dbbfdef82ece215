package core

import (
	"errors"
	"math"
	"testing"
	"time"
)

func validProduct() *Product {
	return &Product{
		Id:          IDFromContent("classic denim jacket"),
		Name:        "Classic Denim Jacket",
		Description: "A timeless denim jacket with button front closure.",
		Category:    "Jackets",
		Tags:        []string{"denim", "casual"},
		Colors:      []string{"blue"},
		Materials:   []string{"denim"},
		Sizes:       []string{"s", "m", "l"},
		Price:       4999,
		Stock:       12,
		Rating:      4.3,
		ReviewCount: 87,
		SalesCount:  412,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Product)
		wantErr error
	}{
		{
			name:    "valid product",
			mutate:  func(p *Product) {},
			wantErr: nil,
		},
		{
			name:    "empty name",
			mutate:  func(p *Product) { p.Name = "" },
			wantErr: ErrEmptyProductName,
		},
		{
			name:    "negative price",
			mutate:  func(p *Product) { p.Price = -1 },
			wantErr: ErrNegativePrice,
		},
		{
			name:    "NaN price",
			mutate:  func(p *Product) { p.Price = math.NaN() },
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "infinite price",
			mutate:  func(p *Product) { p.Price = math.Inf(1) },
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "negative stock",
			mutate:  func(p *Product) { p.Stock = -5 },
			wantErr: ErrNegativeStock,
		},
		{
			name:    "rating above scale",
			mutate:  func(p *Product) { p.Rating = 5.1 },
			wantErr: ErrRatingOutOfRange,
		},
		{
			name:    "negative rating",
			mutate:  func(p *Product) { p.Rating = -0.5 },
			wantErr: ErrRatingOutOfRange,
		},
		{
			name:    "negative review count",
			mutate:  func(p *Product) { p.ReviewCount = -1 },
			wantErr: ErrNegativeReviewCount,
		},
		{
			name:    "negative sales count",
			mutate:  func(p *Product) { p.SalesCount = -1 },
			wantErr: ErrNegativeSalesCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := validProduct()
			tt.mutate(product)

			err := ValidateProduct(product)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateProduct() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateProduct() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidProduct) {
				t.Errorf("ValidateProduct() error should wrap ErrInvalidProduct, got %v", err)
			}
		})
	}
}

func TestValidateProduct_Nil(t *testing.T) {
	err := ValidateProduct(nil)
	if !errors.Is(err, ErrInvalidProduct) {
		t.Errorf("ValidateProduct(nil) error = %v, want ErrInvalidProduct", err)
	}
}

func TestValidateProduct_ZeroValueFieldsAllowed(t *testing.T) {
	product := &Product{Name: "Bare Minimum Tee"}
	if err := ValidateProduct(product); err != nil {
		t.Errorf("ValidateProduct() should accept zero optional fields, got %v", err)
	}
}
