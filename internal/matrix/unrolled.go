package matrix

// unrolledBlockSize is the tile edge for the unrolled variant. Smaller than
// DefaultBlockSize because the 4-way unrolled inner loop touches four
// result columns per step and a tighter tile keeps them all cache-hot.
const unrolledBlockSize = 32

// UnrolledMultiply combines the blocking of BlockedMultiply with 4-way
// manual unrolling of the innermost accumulation loop. Inside each tile the
// loop order is i-k-j so a single A element is broadcast across a run of
// contiguous B and result elements; a scalar remainder loop covers tile
// widths that are not a multiple of 4.
//
// This is the single portable scalar path. Hardware vector extensions are
// deliberately not used here; see the sysinfo package for what the host
// would offer.
type UnrolledMultiply struct{}

// Name returns the registry identifier of the strategy.
func (s *UnrolledMultiply) Name() string { return "unrolled" }

// Multiply computes A·B with 32-edge tiling and an unrolled inner loop.
func (s *UnrolledMultiply) Multiply(a, b *Matrix) (*Matrix, error) {
	result, err := checkOperands("unrolled multiply", a, b)
	if err != nil {
		return nil, err
	}

	const block = unrolledBlockSize
	for i := 0; i < a.rows; i += block {
		for j := 0; j < b.cols; j += block {
			for k := 0; k < a.cols; k += block {
				iEnd := min(i+block, a.rows)
				jEnd := min(j+block, b.cols)
				kEnd := min(k+block, a.cols)

				for ii := i; ii < iEnd; ii++ {
					resultRow := result.data[ii*result.cols : (ii+1)*result.cols]
					aRow := a.data[ii*a.cols : (ii+1)*a.cols]

					for kk := k; kk < kEnd; kk++ {
						aVal := aRow[kk]
						bRow := b.data[kk*b.cols : (kk+1)*b.cols]

						jj := j
						for ; jj+3 < jEnd; jj += 4 {
							resultRow[jj] += aVal * bRow[jj]
							resultRow[jj+1] += aVal * bRow[jj+1]
							resultRow[jj+2] += aVal * bRow[jj+2]
							resultRow[jj+3] += aVal * bRow[jj+3]
						}
						for ; jj < jEnd; jj++ {
							resultRow[jj] += aVal * bRow[jj]
						}
					}
				}
			}
		}
	}
	return result, nil
}
