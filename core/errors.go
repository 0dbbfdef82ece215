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

import "errors"

// Domain validation errors
var (
	// ErrInvalidProduct indicates a Product failed validation.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrEmptyProductName indicates the product Name field is empty.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrNegativePrice indicates a negative product price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidPrice indicates a price that is NaN or infinite.
	ErrInvalidPrice = errors.New("price must be a finite number")

	// ErrNegativeStock indicates a negative stock quantity.
	ErrNegativeStock = errors.New("stock cannot be negative")

	// ErrRatingOutOfRange indicates a rating outside the 0-5 scale.
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")

	// ErrNegativeReviewCount indicates a negative review count.
	ErrNegativeReviewCount = errors.New("review count cannot be negative")

	// ErrNegativeSalesCount indicates a negative sales count.
	ErrNegativeSalesCount = errors.New("sales count cannot be negative")
)
