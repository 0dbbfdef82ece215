package search

import "strings"

// Stop words filtered out during tokenization: articles, conjunctions, and
// common auxiliary verbs.
var stopWords = map[string]bool{
	"the": true, "and": true, "are": true, "was": true, "were": true,
	"been": true, "being": true, "for": true, "not": true, "with": true,
	"you": true, "this": true, "but": true, "from": true, "that": true,
	"have": true, "has": true, "had": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "can": true,
	"may": true, "might": true, "shall": true, "nor": true, "yet": true,
}

// Tokenize splits text into lower-cased alphanumeric terms. Punctuation is
// replaced by whitespace, terms of length <= 2 are dropped, and stop words
// are removed. Input with no usable terms yields nil.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return ' '
		}
	}, text)

	words := strings.Fields(cleaned)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) <= 2 || stopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
