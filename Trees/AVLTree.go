package Trees

import "golang.org/x/exp/constraints"

// AVLTree is a self-balancing binary search tree. Equal values are all kept: a value
// is inserted to the right of its equals, so after rotations an equal value can be
// found in either subtree of a node, giving left <= node <= right.
// After every Insert and Remove the heights of the two subtrees of any node differ by
// at most one, so the height D of a tree of n values is less than 1.44*log2(n+2).
// Rebalancing is done on the way back up of the recursive calls, each call returning
// the new root of its subtree; nodes have no parent pointers.
// The zero value is an empty tree. A tree is not safe for concurrent use.
type AVLTree[T constraints.Ordered] struct {
	root *AVLNode[T]
	size uint
}

func NewAVLTree[T constraints.Ordered]() *AVLTree[T] {
	return new(AVLTree[T])
}

// BuildAVLTree builds a tree from a slice sorted in ascending order. This is faster
// than repeatedly calling Insert. Equal values are allowed.
// If safe==true, the order is checked first and a violation panics with
// InvalidSliceError. Otherwise an unsorted slice gives a corrupt tree.
// Time: O(n)
func BuildAVLTree[T constraints.Ordered](sli []T, safe bool) *AVLTree[T] {
	if safe {
		checkSorted(sli)
	}
	return &AVLTree[T]{buildAVL(sli), uint(len(sli))}
}

// the two halves around the middle differ in size by at most one, hence in height.
func buildAVL[T constraints.Ordered](s []T) *AVLNode[T] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	n := &AVLNode[T]{value: s[mid], left: buildAVL(s[:mid]), right: buildAVL(s[mid+1:])}
	n.updateHeight()
	return n
}

func (u *AVLTree[T]) Root() *AVLNode[T] {
	return u.root
}

func (u *AVLTree[T]) IsEmpty() bool {
	return u.root == nil
}

// Size is the number of values in the tree, counting every duplicate.
func (u *AVLTree[T]) Size() uint {
	return u.size
}

// Height of the root, -1 for an empty tree.
// Time: O(1)
func (u *AVLTree[T]) Height() int {
	if u.root == nil {
		return -1
	}
	return u.root.height
}

func (u *AVLTree[T]) Clear() {
	u.root, u.size = nil, 0
}

// leftRotate n, whose right child must exist. Returns the new root of the subtree.
// Time: O(1); Space: O(1)
func leftRotate[T constraints.Ordered](n *AVLNode[T]) *AVLNode[T] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n
	n.updateHeight() // pivot's height depends on n's
	pivot.updateHeight()
	return pivot
}

// rightRotate n, whose left child must exist. Returns the new root of the subtree.
// Time: O(1); Space: O(1)
func rightRotate[T constraints.Ordered](n *AVLNode[T]) *AVLNode[T] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n
	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

func leftRightRotate[T constraints.Ordered](n *AVLNode[T]) *AVLNode[T] {
	if n.left == nil {
		return n
	}
	n.left = leftRotate(n.left)
	return rightRotate(n)
}

func rightLeftRotate[T constraints.Ordered](n *AVLNode[T]) *AVLNode[T] {
	if n.right == nil {
		return n
	}
	n.right = rightRotate(n.right)
	return leftRotate(n)
}

// balanced restores the balance of n given that both its subtrees are balanced and
// their heights differ by at most two. Returns the new root of the subtree.
func balanced[T constraints.Ordered](n *AVLNode[T]) *AVLNode[T] {
	switch n.BalanceFactor() {
	case 2:
		if n.left != nil && n.left.BalanceFactor() == -1 {
			return leftRightRotate(n)
		}
		return rightRotate(n)
	case -2:
		if n.right != nil && n.right.BalanceFactor() == 1 {
			return rightLeftRotate(n)
		}
		return leftRotate(n)
	default:
		return n
	}
}

// insert v into the subtree rooted at cur and returns the new root of the subtree.
func (u *AVLTree[T]) insert(cur *AVLNode[T], v T) *AVLNode[T] {
	if cur == nil {
		return &AVLNode[T]{value: v}
	}
	if v < cur.value {
		cur.left = u.insert(cur.left, v)
	} else {
		cur.right = u.insert(cur.right, v)
	}
	cur = balanced(cur)
	cur.updateHeight()
	return cur
}

// Insert v. A value equal to existing ones is added again. Recursive.
// Time: O(D)
func (u *AVLTree[T]) Insert(v T) {
	u.root = u.insert(u.root, v)
	u.size++
}

// remove the first node equal to v met on the search path of the subtree rooted at cur.
// Returns the new root of the subtree and whether a node was removed.
func (u *AVLTree[T]) remove(cur *AVLNode[T], v T) (*AVLNode[T], bool) {
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
	if !removed {
		return cur, false
	}
	cur = balanced(cur)
	cur.updateHeight()
	return cur, true
}

// Remove one occurrence of v, the first one met when searching from the root.
// Nothing happens if v isn't in the tree. Recursive.
// Time: O(D)
func (u *AVLTree[T]) Remove(v T) {
	var removed bool
	if u.root, removed = u.remove(u.root, v); removed {
		u.size--
	}
}

// Contains v.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Contains(v T) bool {
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

// Minimum value, false if the tree is empty.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.min().value, true
}

// Maximum value, false if the tree is empty.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.right != nil {
		cur = cur.right
	}
	return cur.value, true
}

// InOrder calls f on the values in ascending order until f returns false.
// The tree must not be modified by f.
func (u *AVLTree[T]) InOrder(f func(T) bool) {
	inOrder(u.root, f)
}

func (u *AVLTree[T]) PreOrder(f func(T) bool) {
	preOrder(u.root, f)
}

func (u *AVLTree[T]) PostOrder(f func(T) bool) {
	postOrder(u.root, f)
}

// Values in ascending order.
func (u *AVLTree[T]) Values() []T {
	vs := make([]T, 0, u.size)
	u.InOrder(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Corrupt reports whether some node breaks the ordering, has a wrong cached height or
// is out of balance, or the tree doesn't hold Size() values.
// Time: O(n)
func (u *AVLTree[T]) Corrupt() bool {
	if _, ok := checkAVL(u.root); !ok {
		return true
	}
	cnt, ok := sorted[T](u.root)
	return !ok || cnt != u.size
}

// checkAVL the heights and balance of the subtree rooted at n, returning its real height.
func checkAVL[T constraints.Ordered](n *AVLNode[T]) (int, bool) {
	if n == nil {
		return -1, true
	}
	lh, lok := checkAVL(n.left)
	rh, rok := checkAVL(n.right)
	h := max(lh, rh) + 1
	return h, lok && rok && n.height == h && lh-rh <= 1 && rh-lh <= 1
}

// String draws the tree, see AVLNode.String.
func (u *AVLTree[T]) String() string {
	if u.root == nil {
		return "empty tree"
	}
	return u.root.String()
}
