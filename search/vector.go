package search

import "math"

// TermVector is a sparse mapping from term to non-negative weight. Terms
// absent from the map have weight 0; the full vocabulary size is never
// materialized per document.
type TermVector map[string]float64

// Dot computes the dot product over the union of keys present in either
// vector. Iterating the smaller map is sufficient since missing keys
// contribute 0.
func (v TermVector) Dot(other TermVector) float64 {
	a, b := v, other
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for term, weight := range a {
		sum += weight * b[term]
	}
	return sum
}

// Magnitude returns the Euclidean norm of the vector.
func (v TermVector) Magnitude() float64 {
	var sum float64
	for _, weight := range v {
		sum += weight * weight
	}
	return math.Sqrt(sum)
}

// Cosine computes cosine similarity between two sparse vectors. If either
// vector has zero magnitude the similarity is 0, never NaN.
func Cosine(a, b TermVector) float64 {
	magA := a.Magnitude()
	magB := b.Magnitude()
	if magA == 0 || magB == 0 {
		return 0
	}
	return a.Dot(b) / (magA * magB)
}
