package matrix

// DefaultBlockSize is the cubic tile edge used by BlockedMultiply. The
// value trades L1/L2 residency against loop overhead; it affects only
// performance, never the computed result.
const DefaultBlockSize = 64

// BlockedMultiply partitions the i-j-k iteration space into fixed-size
// cubic tiles so each tile of A, B and the result stays cache-resident
// while it is being combined. Partial sums accumulate into the result
// across k-block passes, which is why the result must start zeroed.
type BlockedMultiply struct {
	// BlockSize overrides DefaultBlockSize when positive. Exposed for
	// benchmark sweeps over tile sizes.
	BlockSize int
}

// Name returns the registry identifier of the strategy.
func (s *BlockedMultiply) Name() string { return "blocked" }

// Multiply computes A·B with cache blocking in i-j-k block order.
func (s *BlockedMultiply) Multiply(a, b *Matrix) (*Matrix, error) {
	result, err := checkOperands("blocked multiply", a, b)
	if err != nil {
		return nil, err
	}

	block := s.BlockSize
	if block <= 0 {
		block = DefaultBlockSize
	}

	// New allocates zeroed storage, which the accumulation below relies on.
	for i := 0; i < a.rows; i += block {
		for j := 0; j < b.cols; j += block {
			for k := 0; k < a.cols; k += block {
				iEnd := min(i+block, a.rows)
				jEnd := min(j+block, b.cols)
				kEnd := min(k+block, a.cols)

				for ii := i; ii < iEnd; ii++ {
					for jj := j; jj < jEnd; jj++ {
						sum := result.data[ii*result.cols+jj]
						for kk := k; kk < kEnd; kk++ {
							sum += a.data[ii*a.cols+kk] * b.data[kk*b.cols+jj]
						}
						result.data[ii*result.cols+jj] = sum
					}
				}
			}
		}
	}
	return result, nil
}
