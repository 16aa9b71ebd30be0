package Tries

// StringTrie is a Trie of runes storing strings.
type StringTrie struct {
	t *Trie[rune]
}

func NewStringTrie(words ...string) *StringTrie {
	s := &StringTrie{NewTrie[rune]()}
	for _, w := range words {
		s.Insert(w)
	}
	return s
}

func (u *StringTrie) Insert(s string) bool {
	return u.t.Insert([]rune(s))
}

func (u *StringTrie) Contains(s string) bool {
	return u.t.Contains([]rune(s))
}

func (u *StringTrie) Remove(s string) bool {
	return u.t.Remove([]rune(s))
}

func (u *StringTrie) Count() uint {
	return u.t.Count()
}

func (u *StringTrie) IsEmpty() bool {
	return u.t.IsEmpty()
}

// CollectionsStartingWith returns the stored strings beginning with prefix, sorted.
func (u *StringTrie) CollectionsStartingWith(prefix string) []string {
	return toStrings(u.t.CollectionsStartingWith([]rune(prefix)))
}

// Collections returns every stored string, sorted.
func (u *StringTrie) Collections() []string {
	return toStrings(u.t.Collections())
}

func toStrings(rs [][]rune) []string {
	if rs == nil {
		return nil
	}
	s := make([]string, len(rs))
	for i, r := range rs {
		s[i] = string(r)
	}
	return s
}
