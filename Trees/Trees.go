package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree holding values of T. Equal values are all kept, Insert
// always succeeds and Remove takes out one occurrence. Operations on values that
// aren't in the tree are no-ops rather than errors.
// Receivers that has A bool as A second return value indicates whether the first
// return value is defined; on an empty tree Minimum returns (x T, false) and x should
// not be used.
// Methods implemented recursively are noted, otherwise they are iterative.
type Tree[T constraints.Ordered] interface {
	//Insert v to the Tree.
	Insert(v T)
	//Remove one occurrence of v from the Tree.
	Remove(v T)
	//Contains v.
	Contains(v T) bool
	//IsEmpty is true when the tree holds no value.
	IsEmpty() bool
	//Size of the tree, counting duplicates.
	Size() uint
	//Height of the root, a single node has height 0 and an empty tree -1.
	Height() int
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//InOrder calls f on the elements in ascending order, stopping when f returns false.
	//The tree must not be modified during the iteration.
	InOrder(f func(T) bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
	//String draws the tree.
	fmt.Stringer
}

var (
	_ Tree[int]    = (*AVLTree[int])(nil)
	_ Tree[string] = (*BSTree[string])(nil)
)
