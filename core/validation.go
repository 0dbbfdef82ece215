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


package core

import (
	"fmt"
	"math"
)

// ValidateProduct validates a Product according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Price must be a finite, non-negative number
//   - Stock, ReviewCount, and SalesCount must not be negative
//   - Rating must be in [0, 5]
//
// NOT validated:
//   - ID (0 is valid; content-based IDs are assigned at ingest time)
//   - Description, tags, colors, materials, sizes (all optional)
//
// Callers ranking a catalog snapshot should skip invalid records and
// continue rather than aborting the whole pass.
func ValidateProduct(product *Product) error {
	if product == nil {
		return fmt.Errorf("%w: product is nil", ErrInvalidProduct)
	}

	if product.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrEmptyProductName)
	}

	if math.IsNaN(product.Price) || math.IsInf(product.Price, 0) {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrInvalidPrice)
	}

	if product.Price < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrNegativePrice)
	}

	if product.Stock < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrNegativeStock)
	}

	if product.Rating < 0 || product.Rating > 5 {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrRatingOutOfRange)
	}

	if product.ReviewCount < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrNegativeReviewCount)
	}

	if product.SalesCount < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrNegativeSalesCount)
	}

	return nil
}
