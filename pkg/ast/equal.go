package ast

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/zeebo/xxh3"

	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// cmpOpts ignores source positions so that trees parsed from differently
// formatted text compare equal. Nil and empty slices are the same.
var cmpOpts = []cmp.Option{
	cmpopts.IgnoreTypes(token.Span{}, AttachedToken{}),
	cmpopts.EquateEmpty(),
}

// Equal reports whether two trees are structurally equal, ignoring spans
// and attached tokens.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, cmpOpts...)
}

// Diff returns a human-readable report of the differences between two
// trees, or "" when they are Equal.
func Diff(a, b any) string {
	return cmp.Diff(a, b, cmpOpts...)
}

// Hash hashes the canonical rendering of n. Trees that are Equal render
// identically, so they hash identically.
func Hash(n fmt.Stringer) uint64 {
	return xxh3.HashString(n.String())
}
