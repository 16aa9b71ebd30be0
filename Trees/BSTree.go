package Trees

import "golang.org/x/exp/constraints"

// BSTree is a plain binary search tree without any rebalancing. It follows the same
// rules as AVLTree: equal values go right on insert and removal replaces a node with
// two children by the minimum of its right subtree. Inserting sorted values makes it
// degenerate into a list of height n-1.
// The zero value is an empty tree.
type BSTree[T constraints.Ordered] struct {
	root *BinaryNode[T]
	size uint
}

func NewBSTree[T constraints.Ordered]() *BSTree[T] {
	return new(BSTree[T])
}

// BuildBSTree builds a tree of minimal height from a slice sorted in ascending order,
// each subtree rooted at the upper middle of its part of the slice. See BuildAVLTree
// for safe.
// Time: O(n)
func BuildBSTree[T constraints.Ordered](sli []T, safe bool) *BSTree[T] {
	if safe {
		checkSorted(sli)
	}
	var build func([]T) *BinaryNode[T]
	build = func(s []T) *BinaryNode[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		return &BinaryNode[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
	}
	return &BSTree[T]{build(sli), uint(len(sli))}
}

func (u *BSTree[T]) Root() *BinaryNode[T] {
	return u.root
}

func (u *BSTree[T]) IsEmpty() bool {
	return u.root == nil
}

func (u *BSTree[T]) Size() uint {
	return u.size
}

// Height of the root, -1 for an empty tree. Recursive.
// Time: O(n)
func (u *BSTree[T]) Height() int {
	return subtreeHeight[T](u.root)
}

func (u *BSTree[T]) Clear() {
	u.root, u.size = nil, 0
}

func (u *BSTree[T]) insert(cur *BinaryNode[T], v T) *BinaryNode[T] {
	if cur == nil {
		return &BinaryNode[T]{value: v}
	}
	if v < cur.value {
		cur.left = u.insert(cur.left, v)
	} else {
		cur.right = u.insert(cur.right, v)
	}
	return cur
}

// Insert v. Recursive.
// Time: O(D)
func (u *BSTree[T]) Insert(v T) {
	u.root = u.insert(u.root, v)
	u.size++
}

func (u *BSTree[T]) remove(cur *BinaryNode[T], v T) (*BinaryNode[T], bool) {
	if cur == nil {
		return nil, false
	}
	removed := true
	if v == cur.value {
		if cur.left == nil {
			return cur.right, true
		}
		if cur.right == nil {
			return cur.left, true
		}
		cur.value = cur.right.min().value
		cur.right, _ = u.remove(cur.right, cur.value)
	} else if v < cur.value {
		cur.left, removed = u.remove(cur.left, v)
	} else {
		cur.right, removed = u.remove(cur.right, v)
	}
	return cur, removed
}

// Remove one occurrence of v. Recursive.
// Time: O(D)
func (u *BSTree[T]) Remove(v T) {
	var removed bool
	if u.root, removed = u.remove(u.root, v); removed {
		u.size--
	}
}

// Contains v.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Contains(v T) bool {
	for cur := u.root; cur != nil; {
		if v == cur.value {
			return true
		} else if v < cur.value {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return false
}

func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.min().value, true
}

func (u *BSTree[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.right != nil {
		cur = cur.right
	}
	return cur.value, true
}

func (u *BSTree[T]) InOrder(f func(T) bool) {
	inOrder(u.root, f)
}

func (u *BSTree[T]) PreOrder(f func(T) bool) {
	preOrder(u.root, f)
}

func (u *BSTree[T]) PostOrder(f func(T) bool) {
	postOrder(u.root, f)
}

func (u *BSTree[T]) Values() []T {
	vs := make([]T, 0, u.size)
	u.InOrder(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Corrupt reports whether the ordering is broken or the tree doesn't hold Size() values.
func (u *BSTree[T]) Corrupt() bool {
	cnt, ok := sorted[T](u.root)
	return !ok || cnt != u.size
}

func (u *BSTree[T]) String() string {
	if u.root == nil {
		return "empty tree"
	}
	return u.root.String()
}
