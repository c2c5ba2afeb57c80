package matrix

import (
	"fmt"
	"time"
)

// Product computes a×b with the textbook i-j-k triple loop and reports the
// time spent inside the loops. Arithmetic is int32 and wraps on overflow.
//
// The result matrix is allocated before the clock starts, so the reported
// duration covers the loops only.
func Product(a, b *Matrix) (*Matrix, time.Duration, error) {
	if a.n != b.n {
		return nil, 0, fmt.Errorf(
			"product %dx%d by %dx%d: %w",
			a.n, a.n, b.n, b.n, ErrDimensionMismatch,
		)
	}

	n := a.n
	c := &Matrix{n: n, data: make([]int32, n*n)}
	ad, bd, cd := a.data, b.data, c.data

	start := time.Now()

	for i := 0; i < n; i++ {
		row := ad[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			var sum int32
			for k := 0; k < n; k++ {
				sum += row[k] * bd[k*n+j]
			}
			cd[i*n+j] = sum
		}
	}

	elapsed := time.Since(start)

	return c, elapsed, nil
}
