package Trees

import "golang.org/x/exp/constraints"

// AVLNode is a node in an AVLTree. A node is owned by its parent (the root by the
// tree), has no pointer back up, and is only ever modified by the tree holding it.
type AVLNode[T constraints.Ordered] struct {
	value       T
	left, right *AVLNode[T]
	height      int // 0 for a leaf
}

func (n *AVLNode[T]) Value() T {
	return n.value
}

func (n *AVLNode[T]) Left() *AVLNode[T] {
	return n.left
}

func (n *AVLNode[T]) Right() *AVLNode[T] {
	return n.right
}

// Height of the subtree rooted at n, a leaf has height 0.
func (n *AVLNode[T]) Height() int {
	return n.height
}

// LeftHeight is the height of the left subtree, or -1 without a left child.
func (n *AVLNode[T]) LeftHeight() int {
	if n.left == nil {
		return -1
	}
	return n.left.height
}

// RightHeight is the height of the right subtree, or -1 without a right child.
func (n *AVLNode[T]) RightHeight() int {
	if n.right == nil {
		return -1
	}
	return n.right.height
}

// BalanceFactor is LeftHeight()-RightHeight(). It is in [-1,1] for every node of a tree
// that isn't in the middle of an operation.
func (n *AVLNode[T]) BalanceFactor() int {
	return n.LeftHeight() - n.RightHeight()
}

func (n *AVLNode[T]) updateHeight() {
	n.height = max(n.LeftHeight(), n.RightHeight()) + 1
}

// min is the leftmost node of the subtree rooted at n.
func (n *AVLNode[T]) min() *AVLNode[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// String draws the subtree rooted at n.
func (n *AVLNode[T]) String() string {
	return diagram[T](n)
}

// BinaryNode is a node in a BSTree.
type BinaryNode[T any] struct {
	value       T
	left, right *BinaryNode[T]
}

func (n *BinaryNode[T]) Value() T {
	return n.value
}

func (n *BinaryNode[T]) Left() *BinaryNode[T] {
	return n.left
}

func (n *BinaryNode[T]) Right() *BinaryNode[T] {
	return n.right
}

func (n *BinaryNode[T]) min() *BinaryNode[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *BinaryNode[T]) String() string {
	return diagram[T](n)
}

// binaryNode is satisfied by the node pointer types of the binary trees here, so
// traversals and drawing are written once. The zero value of N is the absent node.
type binaryNode[T any, N any] interface {
	comparable
	Value() T
	Left() N
	Right() N
}

// inOrder visits the subtree rooted at n left, node, right. It stops and returns false
// as soon as f returns false. Recursive.
func inOrder[T any, N binaryNode[T, N]](n N, f func(T) bool) bool {
	var null N
	if n == null {
		return true
	}
	return inOrder(n.Left(), f) && f(n.Value()) && inOrder(n.Right(), f)
}

// preOrder visits node, left, right. Recursive.
func preOrder[T any, N binaryNode[T, N]](n N, f func(T) bool) bool {
	var null N
	if n == null {
		return true
	}
	return f(n.Value()) && preOrder(n.Left(), f) && preOrder(n.Right(), f)
}

// postOrder visits left, right, node. Recursive.
func postOrder[T any, N binaryNode[T, N]](n N, f func(T) bool) bool {
	var null N
	if n == null {
		return true
	}
	return postOrder(n.Left(), f) && postOrder(n.Right(), f) && f(n.Value())
}

// subtreeHeight computes the height of n by walking it, -1 for the absent node.
// Time: O(n)
func subtreeHeight[T any, N binaryNode[T, N]](n N) int {
	var null N
	if n == null {
		return -1
	}
	return max(subtreeHeight[T](n.Left()), subtreeHeight[T](n.Right())) + 1
}

// sorted reports whether the in-order traversal of n never decreases, along with
// the number of values visited.
func sorted[T constraints.Ordered, N binaryNode[T, N]](n N) (cnt uint, ok bool) {
	var prev T
	ok = inOrder(n, func(v T) bool {
		if cnt > 0 && v < prev {
			return false
		}
		prev = v
		cnt++
		return true
	})
	return
}
