package search

// BoyerMooreSearch implements the Boyer-Moore algorithm restricted to the
// bad-character heuristic. The pattern is compared right to left and, on a
// mismatch, the alignment jumps by the distance between the mismatch
// position and the last occurrence of the offending text byte in the
// pattern. Sublinear on typical text, O(n*m) worst case without the good
// suffix rule.
type BoyerMooreSearch struct{}

// buildLastOccurrence maps every byte value to the index of its last
// occurrence in the pattern, or -1 if absent.
func buildLastOccurrence(pattern []byte) [256]int {
	var last [256]int
	for i := range last {
		last[i] = -1
	}
	for i, b := range pattern {
		last[b] = i
	}
	return last
}

// Search implements the Strategy interface.
func (s *BoyerMooreSearch) Search(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return 0
	}
	if m > n {
		return NotFound
	}

	last := buildLastOccurrence(pattern)

	shift := 0
	for shift <= n-m {
		j := m - 1
		for j >= 0 && pattern[j] == text[shift+j] {
			j--
		}
		if j < 0 {
			return shift
		}
		// The shift is clamped to 1 so a bad character occurring to the
		// right of the mismatch cannot move the alignment backwards.
		step := j - last[text[shift+j]]
		if step < 1 {
			step = 1
		}
		shift += step
	}
	return NotFound
}

// Name implements the Strategy interface.
func (s *BoyerMooreSearch) Name() string { return "boyermoore" }
