// Package reindex provides offline rebuilds of the search index over an
// existing catalog store.
//
// This package supports batch processing of products, progress tracking,
// and retry logic with exponential backoff around storage operations. It
// is intended for command-line maintenance runs; in-process builds go
// through the indexing pipeline instead.
package reindex
