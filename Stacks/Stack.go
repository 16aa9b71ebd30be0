package Stacks

import (
	"fmt"
	"strings"
)

// Stack is a LIFO container backed by a slice. The zero value is an empty stack.
type Stack[T any] struct {
	storage []T
}

// MakeStack returns a stack holding elems, the last element being the top.
func MakeStack[T any](elems ...T) *Stack[T] {
	s := make([]T, len(elems))
	copy(s, elems)
	return &Stack[T]{s}
}

// Push item on top.
// Time: amortized O(1)
func (u *Stack[T]) Push(item T) {
	u.storage = append(u.storage, item)
}

// Pop removes and returns the top item. Popping an empty stack returns *EmptyStackError.
// Time: O(1)
func (u *Stack[T]) Pop() (item T, e error) {
	if u.Empty() {
		return *new(T), &EmptyStackError{}
	}
	last := len(u.storage) - 1
	item = u.storage[last]
	u.storage[last] = *new(T)
	u.storage = u.storage[:last]
	return item, nil
}

// Peek returns the top item without removing it.
func (u *Stack[T]) Peek() (T, bool) {
	if u.Empty() {
		return *new(T), false
	}
	return u.storage[len(u.storage)-1], true
}

func (u *Stack[T]) Empty() bool {
	return len(u.storage) == 0
}

func (u *Stack[T]) Size() uint {
	return uint(len(u.storage))
}

// Clear drops all items but keeps the allocated storage.
func (u *Stack[T]) Clear() {
	clear(u.storage)
	u.storage = u.storage[:0]
}

// String lists the items top first between two divider lines.
func (u *Stack[T]) String() string {
	var b strings.Builder
	b.WriteString("-------------top----------------\n")
	for i := len(u.storage) - 1; i >= 0; i-- {
		fmt.Fprint(&b, u.storage[i])
		if i > 0 {
			b.WriteByte('\n')
		}
	}
	b.WriteString("\n--------------------------------")
	return b.String()
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}
