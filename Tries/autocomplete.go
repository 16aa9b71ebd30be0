package Tries

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Autocompleter suggests stored words for a prefix. Suggestion lists are cached per prefix
// for the configured ttl and dropped whenever the dictionary changes.
// Not safe for concurrent use.
type Autocompleter struct {
	words       *StringTrie
	suggestions *cache.Cache
}

// NewAutocompleter over words. A ttl of cache.NoExpiration keeps suggestions until the next
// change, cleanup is the interval at which expired lists are purged.
func NewAutocompleter(ttl, cleanup time.Duration, words ...string) *Autocompleter {
	return &Autocompleter{
		words:       NewStringTrie(words...),
		suggestions: cache.New(ttl, cleanup),
	}
}

func (u *Autocompleter) Insert(w string) {
	if u.words.Insert(w) {
		u.suggestions.Flush()
	}
}

func (u *Autocompleter) Remove(w string) {
	if u.words.Remove(w) {
		u.suggestions.Flush()
	}
}

func (u *Autocompleter) Count() uint {
	return u.words.Count()
}

// Suggest returns at most limit words starting with prefix, sorted. limit <= 0 means no limit.
// The returned slice must not be modified.
func (u *Autocompleter) Suggest(prefix string, limit int) []string {
	var s []string
	if v, found := u.suggestions.Get(prefix); found {
		s = v.([]string)
	} else {
		s = u.words.CollectionsStartingWith(prefix)
		u.suggestions.SetDefault(prefix, s)
	}
	if limit > 0 && len(s) > limit {
		s = s[:limit:limit]
	}
	return s
}

// Cached is the number of prefixes whose suggestions are cached.
func (u *Autocompleter) Cached() int {
	return u.suggestions.ItemCount()
}
