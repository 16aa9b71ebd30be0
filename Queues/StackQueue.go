package Queues

import "github.com/g-m-twostay/go-structs/Stacks"

// StackQueue is a queue made of two stacks. Items are pushed onto the right stack;
// the left stack holds the front of the queue in reverse and is refilled from the
// right stack only when it runs empty, so every item is moved at most once.
// The zero value is an empty queue.
type StackQueue[T any] struct {
	left, right Stacks.Stack[T]
}

func MakeStackQueue[T any]() *StackQueue[T] {
	return new(StackQueue[T])
}

func (u *StackQueue[T]) Push(item T) {
	u.right.Push(item)
}

// refill moves the right stack onto the left one when the left stack is empty.
func (u *StackQueue[T]) refill() {
	if u.left.Empty() {
		for v, e := u.right.Pop(); e == nil; v, e = u.right.Pop() {
			u.left.Push(v)
		}
	}
}

// Pop the front item.
// Time: amortized O(1)
func (u *StackQueue[T]) Pop() (T, error) {
	u.refill()
	v, e := u.left.Pop()
	if e != nil {
		return v, &EmptyQueueError{}
	}
	return v, nil
}

func (u *StackQueue[T]) Peek() (T, bool) {
	u.refill()
	return u.left.Peek()
}

func (u *StackQueue[T]) Empty() bool {
	return u.left.Empty() && u.right.Empty()
}

func (u *StackQueue[T]) Size() uint {
	return u.left.Size() + u.right.Size()
}
