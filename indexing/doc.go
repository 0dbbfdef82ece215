// Package indexing provides pipeline orchestration for catalog ingestion
// and search index builds.
//
// The Pipeline type manages the indexing workflow for products, including:
//   - Validating and adding products to the catalog store
//   - Tokenizing product documents concurrently
//   - Building the TF-IDF term space from the tokenized catalog
//   - Persisting the index build state
//
// Tokenization is performed concurrently using a worker pool to maximize
// throughput on large catalogs. Invalid product records are logged and
// skipped rather than failing the build.
package indexing
