package search

// KMPSearch implements the Knuth-Morris-Pratt algorithm. A failure table
// built from the pattern lets the scan resume after a mismatch without ever
// re-examining a text byte, giving O(n+m) worst case.
type KMPSearch struct{}

// buildFailureTable computes, for each prefix of the pattern, the length of
// the longest proper prefix that is also a suffix.
func buildFailureTable(pattern []byte) []int {
	table := make([]int, len(pattern))
	length := 0
	for i := 1; i < len(pattern); {
		if pattern[i] == pattern[length] {
			length++
			table[i] = length
			i++
		} else if length != 0 {
			length = table[length-1]
		} else {
			table[i] = 0
			i++
		}
	}
	return table
}

// Search implements the Strategy interface.
func (s *KMPSearch) Search(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return 0
	}
	if m > n {
		return NotFound
	}

	table := buildFailureTable(pattern)

	i, j := 0, 0
	for i < n {
		if text[i] == pattern[j] {
			i++
			j++
			if j == m {
				return i - j
			}
		} else if j != 0 {
			j = table[j-1]
		} else {
			i++
		}
	}
	return NotFound
}

// Name implements the Strategy interface.
func (s *KMPSearch) Name() string { return "kmp" }
