package Trees

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/go-structs/Queues"
)

// TreeNode is a node of a general tree, each node having any number of ordered children.
type TreeNode[T any] struct {
	Value    T
	children []*TreeNode[T]
}

func NewTreeNode[T any](v T) *TreeNode[T] {
	return &TreeNode[T]{Value: v}
}

// Add children after the existing ones.
func (u *TreeNode[T]) Add(children ...*TreeNode[T]) {
	u.children = append(u.children, children...)
}

func (u *TreeNode[T]) Children() []*TreeNode[T] {
	return u.children
}

// ForEachDepthFirst visits u, then the subtree of each child in order. Recursive.
func (u *TreeNode[T]) ForEachDepthFirst(visit func(*TreeNode[T])) {
	visit(u)
	for _, c := range u.children {
		c.ForEachDepthFirst(visit)
	}
}

// ForEachLevelOrder visits the nodes breadth first: u, its children, then their children.
// Space: O(w) for the widest level w.
func (u *TreeNode[T]) ForEachLevelOrder(visit func(*TreeNode[T])) {
	q := Queues.MakeArrayQueue[*TreeNode[T]](uint(len(u.children)) + 1)
	for q.Push(u); !q.Empty(); {
		n, _ := q.Pop()
		visit(n)
		for _, c := range n.children {
			q.Push(c)
		}
	}
}

// ForEachLevel calls visit once per depth with all the nodes at that depth, from left to
// right, starting with level 0 holding only u. nodes is reused between calls.
func (u *TreeNode[T]) ForEachLevel(visit func(level int, nodes []*TreeNode[T])) {
	q := Queues.MakeArrayQueue[*TreeNode[T]](uint(len(u.children)) + 1)
	var nodes []*TreeNode[T]
	q.Push(u)
	for level := 0; !q.Empty(); level++ {
		nodes = nodes[:0]
		for left := q.Size(); left > 0; left-- {
			n, _ := q.Pop()
			nodes = append(nodes, n)
			for _, c := range n.children {
				q.Push(c)
			}
		}
		visit(level, nodes)
	}
}

// Search returns the first node in level order whose Value equals v, nil if none does.
func Search[T comparable](root *TreeNode[T], v T) *TreeNode[T] {
	q := Queues.MakeArrayQueue[*TreeNode[T]](1)
	for q.Push(root); !q.Empty(); {
		n, _ := q.Pop()
		if n.Value == v {
			return n
		}
		for _, c := range n.children {
			q.Push(c)
		}
	}
	return nil
}

// String prints one line per level:
//
//	Level 0: Beverages
//	Level 1: hot, cold
func (u *TreeNode[T]) String() string {
	var b strings.Builder
	u.ForEachLevel(func(level int, nodes []*TreeNode[T]) {
		fmt.Fprintf(&b, "Level %d: ", level)
		for i, n := range nodes {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprint(&b, n.Value)
		}
		b.WriteByte('\n')
	})
	return b.String()
}
