package Tries

import (
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// TrieNode holds one key of a stored sequence. The root has the zero key and no parent.
type TrieNode[K constraints.Ordered] struct {
	key         K
	parent      *TrieNode[K]
	children    map[K]*TrieNode[K]
	terminating bool
}

func newTrieNode[K constraints.Ordered](key K, parent *TrieNode[K]) *TrieNode[K] {
	return &TrieNode[K]{key: key, parent: parent, children: make(map[K]*TrieNode[K])}
}

func (n *TrieNode[K]) Key() K {
	return n.key
}

func (n *TrieNode[K]) Parent() *TrieNode[K] {
	return n.parent
}

// Child with key k, nil if there is none.
func (n *TrieNode[K]) Child(k K) *TrieNode[K] {
	return n.children[k]
}

// IsTerminating reports whether a stored sequence ends at n.
func (n *TrieNode[K]) IsTerminating() bool {
	return n.terminating
}

// sortedKeys of the children, so that walks are in lexicographic order.
func (n *TrieNode[K]) sortedKeys() []K {
	ks := maps.Keys(n.children)
	slices.Sort(ks)
	return ks
}

// Trie stores sequences of keys sharing common prefixes. Each sequence is stored at most once.
type Trie[K constraints.Ordered] struct {
	root  *TrieNode[K]
	count uint
}

func NewTrie[K constraints.Ordered]() *Trie[K] {
	var zero K
	return &Trie[K]{root: newTrieNode(zero, nil)}
}

func (u *Trie[K]) Root() *TrieNode[K] {
	return u.root
}

// Count of stored sequences.
func (u *Trie[K]) Count() uint {
	return u.count
}

func (u *Trie[K]) IsEmpty() bool {
	return u.count == 0
}

// find the node reached by following seq from the root, nil if the path breaks.
func (u *Trie[K]) find(seq []K) *TrieNode[K] {
	cur := u.root
	for _, k := range seq {
		if cur = cur.children[k]; cur == nil {
			return nil
		}
	}
	return cur
}

// Insert seq. Returns false if it was already stored.
// Time: O(len(seq))
func (u *Trie[K]) Insert(seq []K) bool {
	cur := u.root
	for _, k := range seq {
		next := cur.children[k]
		if next == nil {
			next = newTrieNode(k, cur)
			cur.children[k] = next
		}
		cur = next
	}
	if cur.terminating {
		return false
	}
	cur.terminating = true
	u.count++
	return true
}

// Contains reports whether seq itself is stored; being a prefix of a stored sequence is not enough.
// Time: O(len(seq))
func (u *Trie[K]) Contains(seq []K) bool {
	n := u.find(seq)
	return n != nil && n.terminating
}

// Remove seq, pruning the nodes that no longer lead to any stored sequence.
// Returns false if seq was not stored.
// Time: O(len(seq))
func (u *Trie[K]) Remove(seq []K) bool {
	cur := u.find(seq)
	if cur == nil || !cur.terminating {
		return false
	}
	cur.terminating = false
	u.count--
	for cur.parent != nil && len(cur.children) == 0 && !cur.terminating {
		delete(cur.parent.children, cur.key)
		cur = cur.parent
	}
	return true
}

// collect appends every stored sequence below n to out, seq being the path to n.
func collect[K constraints.Ordered](n *TrieNode[K], seq []K, out [][]K) [][]K {
	if n.terminating {
		out = append(out, slices.Clone(seq))
	}
	for _, k := range n.sortedKeys() {
		out = collect(n.children[k], append(seq, k), out)
	}
	return out
}

// CollectionsStartingWith returns the stored sequences having prefix, prefix itself
// included if stored, in lexicographic order.
// Time: O(size of the subtree under prefix)
func (u *Trie[K]) CollectionsStartingWith(prefix []K) [][]K {
	n := u.find(prefix)
	if n == nil {
		return nil
	}
	return collect(n, slices.Clone(prefix), nil)
}

// Collections returns all stored sequences in lexicographic order.
func (u *Trie[K]) Collections() [][]K {
	return u.CollectionsStartingWith(nil)
}
