package Queues

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = *rand.New(rand.NewSource(0))

var (
	_ Queue[int] = MakeArrayQueue[int](0)
	_ Queue[int] = MakeStackQueue[int]()
)

func queues() map[string]func() Queue[int] {
	return map[string]func() Queue[int]{
		"ArrayQueue0": func() Queue[int] { return MakeArrayQueue[int](0) },
		"ArrayQueue8": func() Queue[int] { return MakeArrayQueue[int](8) },
		"StackQueue":  func() Queue[int] { return MakeStackQueue[int]() },
	}
}

func TestQueue_FIFO(t *testing.T) {
	for name, mk := range queues() {
		t.Run(name, func(t *testing.T) {
			q := mk()
			require.True(t, q.Empty())
			for i := 0; i < 100; i++ {
				q.Push(i)
			}
			require.Equal(t, uint(100), q.Size())
			v, ok := q.Peek()
			require.True(t, ok)
			assert.Equal(t, 0, v)
			for i := 0; i < 100; i++ {
				v, err := q.Pop()
				require.NoError(t, err)
				require.Equal(t, i, v)
			}
			assert.True(t, q.Empty())
		})
	}
}

func TestQueue_PopEmpty(t *testing.T) {
	for name, mk := range queues() {
		t.Run(name, func(t *testing.T) {
			q := mk()
			_, err := q.Pop()
			var empty *EmptyQueueError
			require.ErrorAs(t, err, &empty)
			_, ok := q.Peek()
			assert.False(t, ok)
		})
	}
}

// interleaved pushes and pops must agree with gods' arrayqueue at every step,
// this exercises the wrap-around of the ring buffer and the stack refills.
func TestQueue_AgainstArrayQueue(t *testing.T) {
	for name, mk := range queues() {
		t.Run(name, func(t *testing.T) {
			q, o := mk(), arrayqueue.New()
			for _i := 0; _i < 20000; _i++ {
				if rg.Intn(5) < 2 {
					v, err := q.Pop()
					ov, ok := o.Dequeue()
					if ok != (err == nil) {
						t.Fatalf("pop disagreement: err %v, oracle ok %v", err, ok)
					}
					if ok && ov.(int) != v {
						t.Fatalf("popped %d, want %d", v, ov)
					}
				} else {
					v := rg.Int()
					q.Push(v)
					o.Enqueue(v)
				}
				if int(q.Size()) != o.Size() {
					t.Fatalf("queue size is %d, want %d", q.Size(), o.Size())
				}
			}
		})
	}
}

func TestArrayQueue_ShrinkClear(t *testing.T) {
	q := MakeArrayQueue[int](4)
	for i := 0; i < 10; i++ {
		q.Push(i)
	}
	for _i := 0; _i < 7; _i++ {
		q.Pop()
	}
	q.Shrink()
	require.Equal(t, uint(3), q.Size())
	for i := 7; i < 10; i++ {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	q.Shrink()
	q.Push(42)
	q.Push(43)
	q.Clear()
	assert.True(t, q.Empty())
	q.Push(1)
	v, _ := q.Peek()
	assert.Equal(t, 1, v)
}

func BenchmarkArrayQueue(b *testing.B) {
	q := MakeArrayQueue[int](0)
	for i := 0; i < b.N; i++ {
		q.Push(i)
		if i&1 == 1 {
			q.Pop()
		}
	}
}

func BenchmarkStackQueue(b *testing.B) {
	q := MakeStackQueue[int]()
	for i := 0; i < b.N; i++ {
		q.Push(i)
		if i&1 == 1 {
			q.Pop()
		}
	}
}

func BenchmarkGodsArrayQueue(b *testing.B) {
	q := arrayqueue.New()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		if i&1 == 1 {
			q.Dequeue()
		}
	}
}
