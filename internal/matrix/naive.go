package matrix

// NaiveMultiply is the reference triple-loop multiplication in i-j-k order:
// O(r·k·c) multiply-adds with no regard for cache locality. It is the
// correctness baseline every other strategy is measured against.
type NaiveMultiply struct{}

// Name returns the registry identifier of the strategy.
func (s *NaiveMultiply) Name() string { return "naive" }

// Multiply computes A·B with three nested loops.
func (s *NaiveMultiply) Multiply(a, b *Matrix) (*Matrix, error) {
	result, err := checkOperands("naive multiply", a, b)
	if err != nil {
		return nil, err
	}

	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			var sum float64
			for k := 0; k < a.cols; k++ {
				sum += a.data[i*a.cols+k] * b.data[k*b.cols+j]
			}
			result.data[i*result.cols+j] = sum
		}
	}
	return result, nil
}
