// Package search provides the interchangeable string search strategies
// compared by the benchmark harness. Every strategy implements the same
// contract (return the zero-based index of the first occurrence of a
// pattern in a text, or NotFound) and the harness asserts exact agreement
// across all of them as its primary correctness invariant.
package search

// NotFound is the sentinel returned when the pattern does not occur in the
// text.
const NotFound = -1

// Strategy is the interface all search implementations share.
// Implementations are stateless; text and pattern are treated as immutable
// byte sequences and are never modified.
//
// Contract edge cases, identical for every implementation:
//   - empty pattern matches at index 0
//   - pattern longer than text returns NotFound
type Strategy interface {
	// Search returns the index of the first occurrence of pattern in text,
	// or NotFound.
	Search(text, pattern []byte) int

	// Name returns the registry identifier of the strategy.
	Name() string
}
