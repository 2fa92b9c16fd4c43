package extend

import (
	"github.com/katalvlaran/seqext/seq"
	"github.com/katalvlaran/seqext/vec"
)

// Collect materializes a compact sequence: it evaluates s over its
// non-zero range into a fresh vector and wraps the result as a
// ZeroPadding extension (which represents exactly the same bi-infinite
// sequence, now with O(1) reads everywhere).
//
// The returned sequence owns its vector; later mutations of s's backing
// storage do not affect it.
// Returns seq.ErrNotCompact when s has no finite support.
// Complexity: O(hi-lo+1) evaluations of s.At.
func Collect[T vec.Scalar](s seq.Sequence[T]) (*ZeroPadding[T], error) {
	lo, hi, err := s.NonZeroRange()
	if err != nil {
		return nil, err
	}

	v, err := vec.NewZero[T](lo, hi)
	if err != nil {
		return nil, err
	}
	var x T
	for k := lo; k <= hi; k++ {
		if x, err = s.At(k); err != nil {
			return nil, err
		}
		if err = v.Set(k, x); err != nil {
			return nil, err
		}
	}

	return &ZeroPadding[T]{v: v}, nil
}
