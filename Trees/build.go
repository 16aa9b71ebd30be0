package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// InvalidSliceError is the panic value of BuildAVLTree and BuildBSTree when the slice
// isn't sorted in ascending order: Prev is immediately followed by the smaller Next at
// Index.
type InvalidSliceError[T any] struct {
	Index      int
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't sorted: %v followed by %v at index %d", e.Prev, e.Next, e.Index)
}

func checkSorted[T constraints.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			panic(InvalidSliceError[T]{i, s[i-1], s[i]})
		}
	}
}
