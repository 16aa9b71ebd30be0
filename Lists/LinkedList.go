package Lists

import (
	"fmt"
	"strings"
)

// Node of a LinkedList. Nodes are identified by pointer; a node handed out by a
// list is only valid for that list until it is removed.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// Next node or nil at the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// LinkedList is a singly linked list with a tail pointer. The zero value is an empty list.
type LinkedList[T any] struct {
	head, tail *Node[T]
	sz         int
}

func MakeLinkedList[T any](vs ...T) *LinkedList[T] {
	l := new(LinkedList[T])
	for _, v := range vs {
		l.Append(v)
	}
	return l
}

func (u *LinkedList[T]) IsEmpty() bool {
	return u.head == nil
}

func (u *LinkedList[T]) Len() int {
	return u.sz
}

func (u *LinkedList[T]) Head() *Node[T] {
	return u.head
}

func (u *LinkedList[T]) Tail() *Node[T] {
	return u.tail
}

// Push v to the front.
// Time: O(1)
func (u *LinkedList[T]) Push(v T) {
	u.head = &Node[T]{v, u.head}
	if u.tail == nil {
		u.tail = u.head
	}
	u.sz++
}

// Append v to the back.
// Time: O(1)
func (u *LinkedList[T]) Append(v T) {
	if u.IsEmpty() {
		u.Push(v)
		return
	}
	u.tail.next = &Node[T]{Value: v}
	u.tail = u.tail.next
	u.sz++
}

// NodeAt index i, starting from 0. Returns nil if i is out of range.
// Time: O(i)
func (u *LinkedList[T]) NodeAt(i int) *Node[T] {
	if i < 0 {
		return nil
	}
	cur := u.head
	for ; cur != nil && i > 0; i-- {
		cur = cur.next
	}
	return cur
}

// InsertAfter creates a node holding v right after node and returns it.
// node must belong to u.
// Time: O(1)
func (u *LinkedList[T]) InsertAfter(v T, node *Node[T]) *Node[T] {
	if node == u.tail {
		u.Append(v)
		return u.tail
	}
	node.next = &Node[T]{v, node.next}
	u.sz++
	return node.next
}

// Pop the front value.
// Time: O(1)
func (u *LinkedList[T]) Pop() (T, error) {
	if u.IsEmpty() {
		return *new(T), &EmptyListError{}
	}
	h := u.head
	u.head = h.next
	if u.head == nil {
		u.tail = nil
	}
	h.next = nil
	u.sz--
	return h.Value, nil
}

// RemoveLast value. The list only links forward, so the node before the tail
// has to be found by walking from the head.
// Time: O(n)
func (u *LinkedList[T]) RemoveLast() (T, error) {
	if u.IsEmpty() {
		return *new(T), &EmptyListError{}
	}
	if u.head.next == nil {
		return u.Pop()
	}
	prev := u.head
	for prev.next != u.tail {
		prev = prev.next
	}
	v := u.tail.Value
	prev.next = nil
	u.tail = prev
	u.sz--
	return v, nil
}

// RemoveAfter removes the node following node and returns its value. Returns
// false if node is the tail.
// Time: O(1)
func (u *LinkedList[T]) RemoveAfter(node *Node[T]) (T, bool) {
	rm := node.next
	if rm == nil {
		return *new(T), false
	}
	if rm == u.tail {
		u.tail = node
	}
	node.next = rm.next
	rm.next = nil
	u.sz--
	return rm.Value, true
}

// Range calls f on every value from head to tail until f returns false.
func (u *LinkedList[T]) Range(f func(T) bool) {
	for cur := u.head; cur != nil; cur = cur.next {
		if !f(cur.Value) {
			return
		}
	}
}

func (u *LinkedList[T]) Values() []T {
	vs := make([]T, 0, u.sz)
	u.Range(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

func (u *LinkedList[T]) String() string {
	if u.IsEmpty() {
		return "Empty list"
	}
	var b strings.Builder
	for cur := u.head; cur != nil; cur = cur.next {
		fmt.Fprint(&b, cur.Value)
		if cur.next != nil {
			b.WriteString(" -> ")
		}
	}
	return b.String()
}

type EmptyListError struct {
}

func (e *EmptyListError) Error() string {
	return "List is Empty: cannot remove."
}
