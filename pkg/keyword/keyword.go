// Package keyword holds the SQL keyword table shared by every dialect.
//
// The enum and its name table are generated from keywords.txt by
// scripts/genkeywords. Names are kept in byte order so that the enum value
// of a keyword is also its index in the sorted table: Keyword to string is an
// array index and string to Keyword is a binary search.
package keyword

import (
	"sort"
	"strings"
)

//go:generate go run ../../scripts/genkeywords -in keywords.txt -out keywords_gen.go

// Keyword identifies a recognised SQL keyword. NoKeyword marks a word that is
// not in the table (or a quoted identifier).
type Keyword uint16

// Count is the number of entries in the table, NoKeyword included.
const Count = len(names)

// String returns the upper-case spelling of the keyword.
func (k Keyword) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return ""
}

// Lookup resolves a word to its keyword, ignoring case.
func Lookup(word string) (Keyword, bool) {
	if word == "" || len(word) > maxLen {
		return NoKeyword, false
	}
	upper := strings.ToUpper(word)
	// names[0] is the empty NoKeyword entry; search the rest.
	i := sort.SearchStrings(names[1:], upper) + 1
	if i < len(names) && names[i] == upper {
		return Keyword(i), true
	}
	return NoKeyword, false
}

// All returns every keyword in table order.
func All() []Keyword {
	out := make([]Keyword, 0, len(names)-1)
	for i := 1; i < len(names); i++ {
		out = append(out, Keyword(i))
	}
	return out
}

var maxLen = func() int {
	n := 0
	for _, s := range names {
		if len(s) > n {
			n = len(s)
		}
	}
	return n
}()

// Set is a fixed-size bitmap of keywords. The zero value is empty and sets
// are values, so a dialect can extend a default set without mutating it.
type Set [(Count + 63) / 64]uint64

// NewSet builds a set from the given keywords.
func NewSet(kws ...Keyword) Set {
	var s Set
	for _, k := range kws {
		s[k/64] |= 1 << (k % 64)
	}
	return s
}

// Contains reports whether k is in the set. NoKeyword is never contained.
func (s Set) Contains(k Keyword) bool {
	if k == NoKeyword {
		return false
	}
	return s[k/64]&(1<<(k%64)) != 0
}

// With returns a copy of s with kws added.
func (s Set) With(kws ...Keyword) Set {
	for _, k := range kws {
		s[k/64] |= 1 << (k % 64)
	}
	return s
}

// Without returns a copy of s with kws removed.
func (s Set) Without(kws ...Keyword) Set {
	for _, k := range kws {
		s[k/64] &^= 1 << (k % 64)
	}
	return s
}

// Keywords lists the members of the set in table order.
func (s Set) Keywords() []Keyword {
	var out []Keyword
	for i := 1; i < Count; i++ {
		if s.Contains(Keyword(i)) {
			out = append(out, Keyword(i))
		}
	}
	return out
}
