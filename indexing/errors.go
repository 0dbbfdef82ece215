package indexing

import "errors"

var (
	// ErrProductRepositoryRequired is returned when a product repository is not provided.
	ErrProductRepositoryRequired = errors.New("product repository required")

	// ErrStateRepositoryRequired is returned when a state repository is not provided.
	ErrStateRepositoryRequired = errors.New("state repository required")
)
