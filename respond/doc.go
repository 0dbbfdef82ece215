// Package respond renders natural-language summaries of search and
// recommendation results.
//
// Responses are produced from prompt templates selected by the detected
// intent. The wording is deterministic: templates are filled with result
// statistics (match count, price range, average rating) rather than
// generated by a model.
package respond
