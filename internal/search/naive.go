package search

// NaiveSearch is the brute-force baseline. It tries every alignment of the
// pattern against the text and compares byte by byte. O(n*m) worst case.
// Every other strategy is validated against its result.
type NaiveSearch struct{}

// Search implements the Strategy interface using exhaustive comparison.
func (s *NaiveSearch) Search(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return 0
	}
	if m > n {
		return NotFound
	}

	for i := 0; i <= n-m; i++ {
		j := 0
		for j < m && text[i+j] == pattern[j] {
			j++
		}
		if j == m {
			return i
		}
	}
	return NotFound
}

// Name implements the Strategy interface.
func (s *NaiveSearch) Name() string { return "naive" }

// FirstByteSearch is the naive algorithm with a first-byte prefilter: inner
// comparison only starts at positions whose byte matches pattern[0]. Same
// worst case as naive, but skips most alignments on typical text.
type FirstByteSearch struct{}

// Search implements the Strategy interface.
func (s *FirstByteSearch) Search(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return 0
	}
	if m > n {
		return NotFound
	}

	first := pattern[0]
	for i := 0; i <= n-m; i++ {
		if text[i] != first {
			continue
		}
		j := 1
		for j < m && text[i+j] == pattern[j] {
			j++
		}
		if j == m {
			return i
		}
	}
	return NotFound
}

// Name implements the Strategy interface.
func (s *FirstByteSearch) Name() string { return "firstbyte" }
