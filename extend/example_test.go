package extend_test

import (
	"fmt"

	"github.com/katalvlaran/seqext/extend"
	"github.com/katalvlaran/seqext/vec"
)

// ExampleNewWholePointEven mirrors a three-sample vector across both ends:
// the boundary samples repeat, then the interior reflects back.
func ExampleNewWholePointEven() {
	v, _ := vec.New([]float64{1, 2, 3})
	s, _ := extend.NewWholePointEven(v)

	for k := -2; k <= 4; k++ {
		x, _ := s.At(k)
		fmt.Printf("%g ", x)
	}
	fmt.Println()
	// Output:
	// 2 1 1 2 3 3 2
}

// ExampleNewPeriodic wraps reads around the backing range in both
// directions.
func ExampleNewPeriodic() {
	v, _ := vec.New([]float64{10, 20, 30})
	p, _ := extend.NewPeriodic(v)

	left, _ := p.At(-1)
	right, _ := p.At(3)
	fmt.Println(left, right)
	// Output:
	// 30 10
}

// ExampleCollect materializes a compact sequence back into a vector-backed
// zero-padded extension over its support.
func ExampleCollect() {
	v, _ := vec.NewAt(2, []float64{7, 8})
	p, _ := extend.NewZeroPadding(v)

	c, _ := extend.Collect[float64](p)
	lo, hi, _ := c.NonZeroRange()
	fmt.Println(lo, hi)
	// Output:
	// 2 3
}
