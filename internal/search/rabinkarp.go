package search

// Rolling hash parameters. The base covers the full byte alphabet; the
// modulus is a small prime, so hash collisions are expected and every hash
// hit is verified byte by byte before being reported.
const (
	rkBase    = 256
	rkModulus = 101
)

// RabinKarpSearch implements the Rabin-Karp algorithm with a polynomial
// rolling hash. The window hash is updated in O(1) per position; candidate
// positions are confirmed with a direct comparison.
type RabinKarpSearch struct{}

// Search implements the Strategy interface.
func (s *RabinKarpSearch) Search(text, pattern []byte) int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return 0
	}
	if m > n {
		return NotFound
	}

	// highOrder is base^(m-1) mod modulus, the weight of the byte leaving
	// the window on each roll.
	highOrder := 1
	for i := 0; i < m-1; i++ {
		highOrder = (highOrder * rkBase) % rkModulus
	}

	patternHash, windowHash := 0, 0
	for i := 0; i < m; i++ {
		patternHash = (rkBase*patternHash + int(pattern[i])) % rkModulus
		windowHash = (rkBase*windowHash + int(text[i])) % rkModulus
	}

	for i := 0; i <= n-m; i++ {
		if patternHash == windowHash {
			j := 0
			for j < m && text[i+j] == pattern[j] {
				j++
			}
			if j == m {
				return i
			}
		}
		if i < n-m {
			windowHash = (rkBase*(windowHash-int(text[i])*highOrder) + int(text[i+m])) % rkModulus
			if windowHash < 0 {
				windowHash += rkModulus
			}
		}
	}
	return NotFound
}

// Name implements the Strategy interface.
func (s *RabinKarpSearch) Name() string { return "rabinkarp" }
