package Tries

import (
	"math/rand"
	"testing"

	"github.com/armon/go-radix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rg   = *rand.New(rand.NewSource(0))
	sink int
)

const (
	tWordN   = 3000
	tAlpha   = "abcdé"
	tWordMax = 6
)

// randomWord over a small alphabet, so prefixes are shared often.
func randomWord() string {
	alpha := []rune(tAlpha)
	w := make([]rune, 1+rg.Intn(tWordMax))
	for i := range w {
		w[i] = alpha[rg.Intn(len(alpha))]
	}
	return string(w)
}

func TestTrie_Basics(t *testing.T) {
	trie := NewTrie[int]()
	assert.True(t, trie.IsEmpty())
	assert.True(t, trie.Insert([]int{1, 2, 3}))
	assert.False(t, trie.Insert([]int{1, 2, 3}))
	assert.True(t, trie.Insert([]int{1, 2}))
	assert.Equal(t, uint(2), trie.Count())

	assert.True(t, trie.Contains([]int{1, 2}))
	assert.False(t, trie.Contains([]int{1}))
	assert.False(t, trie.Contains([]int{1, 2, 3, 4}))
	assert.Equal(t, [][]int{{1, 2}, {1, 2, 3}}, trie.Collections())

	assert.True(t, trie.Remove([]int{1, 2}))
	assert.False(t, trie.Remove([]int{1, 2}))
	// the path to 3 survives
	assert.NotNil(t, trie.Root().Child(1).Child(2).Child(3))
	assert.True(t, trie.Remove([]int{1, 2, 3}))
	assert.Nil(t, trie.Root().Child(1))
	assert.True(t, trie.IsEmpty())
}

func TestTrie_EmptySequence(t *testing.T) {
	trie := NewTrie[byte]()
	require.True(t, trie.Insert(nil))
	assert.True(t, trie.Root().IsTerminating())
	assert.True(t, trie.Contains([]byte{}))
	all := trie.Collections()
	require.Len(t, all, 1)
	assert.Empty(t, all[0])
	assert.True(t, trie.Remove(nil))
	assert.Zero(t, trie.Count())
}

func TestTrie_Parents(t *testing.T) {
	trie := NewTrie[rune]()
	trie.Insert([]rune("cut"))
	n := trie.Root().Child('c').Child('u').Child('t')
	require.NotNil(t, n)
	assert.Equal(t, 't', n.Key())
	assert.Same(t, trie.Root(), n.Parent().Parent().Parent())
}

func TestStringTrie_CollectionsStartingWith(t *testing.T) {
	trie := NewStringTrie("car", "card", "care", "cared", "cars", "carbs", "carapace", "cargo")
	assert.Equal(t, []string{"car", "carapace", "carbs", "card", "care", "cared", "cargo", "cars"},
		trie.CollectionsStartingWith("car"))
	assert.Equal(t, []string{"care", "cared"}, trie.CollectionsStartingWith("care"))
	assert.Empty(t, trie.CollectionsStartingWith("cat"))

	trie.Remove("care")
	assert.Equal(t, []string{"cared"}, trie.CollectionsStartingWith("care"))
	trie.Remove("cared")
	assert.Empty(t, trie.CollectionsStartingWith("care"))
	assert.Equal(t, uint(6), trie.Count())
}

// prefix queries checked against armon/go-radix. Runes sort like their utf-8 bytes,
// so both walks are in the same order.
func TestStringTrie_AgainstRadix(t *testing.T) {
	trie := NewStringTrie()
	o := radix.New()
	for _i := 0; _i < tWordN; _i++ {
		w := randomWord()
		if rg.Intn(4) == 0 {
			_, had := o.Delete(w)
			if trie.Remove(w) != had {
				t.Fatalf("remove %q disagrees", w)
			}
		} else {
			_, updated := o.Insert(w, nil)
			if trie.Insert(w) == updated {
				t.Fatalf("insert %q disagrees", w)
			}
		}
	}
	require.Equal(t, o.Len(), int(trie.Count()))
	for _i := 0; _i < 200; _i++ {
		r := []rune(randomWord())
		p := string(r[:min(len(r), 1+rg.Intn(2))])
		var want []string
		o.WalkPrefix(p, func(s string, _ interface{}) bool {
			want = append(want, s)
			return false
		})
		assert.Equal(t, want, trie.CollectionsStartingWith(p), "prefix %q", p)
	}
}

func BenchmarkStringTrie_Insert(b *testing.B) {
	ws := make([]string, 1<<14)
	for i := range ws {
		ws[i] = randomWord()
	}
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		trie := NewStringTrie()
		for _, w := range ws {
			trie.Insert(w)
		}
	}
}

func BenchmarkRadix_Insert(b *testing.B) {
	ws := make([]string, 1<<14)
	for i := range ws {
		ws[i] = randomWord()
	}
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		o := radix.New()
		for _, w := range ws {
			o.Insert(w, nil)
		}
	}
}

func BenchmarkRadix_WalkPrefix(b *testing.B) {
	o := radix.New()
	for _i := 0; _i < 1<<14; _i++ {
		o.Insert(randomWord(), nil)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o.WalkPrefix(tAlpha[i%2:i%2+1], func(string, interface{}) bool {
			sink++
			return false
		})
	}
}

func BenchmarkStringTrie_CollectionsStartingWith(b *testing.B) {
	trie := NewStringTrie()
	for _i := 0; _i < 1<<14; _i++ {
		trie.Insert(randomWord())
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += len(trie.CollectionsStartingWith(tAlpha[i%2 : i%2+1]))
	}
}
