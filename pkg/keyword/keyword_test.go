package keyword_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlkit/pkg/keyword"
)

func TestLookupCaseInsensitive(t *testing.T) {
	for _, w := range []string{"select", "SELECT", "SeLeCt"} {
		kw, ok := keyword.Lookup(w)
		require.True(t, ok, w)
		assert.Equal(t, keyword.SELECT, kw)
	}

	_, ok := keyword.Lookup("not_a_keyword_at_all")
	assert.False(t, ok)
	_, ok = keyword.Lookup("")
	assert.False(t, ok)
}

func TestTableIsSorted(t *testing.T) {
	all := keyword.All()
	names := make([]string, len(all))
	for i, k := range all {
		names[i] = k.String()
	}
	assert.True(t, sort.StringsAreSorted(names))
	assert.Len(t, all, keyword.Count-1)
}

func TestRoundTripEveryKeyword(t *testing.T) {
	for _, k := range keyword.All() {
		got, ok := keyword.Lookup(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
}

func TestSet(t *testing.T) {
	s := keyword.NewSet(keyword.FROM, keyword.WHERE)
	assert.True(t, s.Contains(keyword.FROM))
	assert.False(t, s.Contains(keyword.SELECT))
	assert.False(t, s.Contains(keyword.NoKeyword))

	s2 := s.With(keyword.SELECT).Without(keyword.FROM)
	assert.True(t, s2.Contains(keyword.SELECT))
	assert.False(t, s2.Contains(keyword.FROM))
	// sets are values
	assert.True(t, s.Contains(keyword.FROM))

	assert.Equal(t, []keyword.Keyword{keyword.FROM, keyword.WHERE}, s.Keywords())
}

func TestDefaultReservations(t *testing.T) {
	assert.True(t, keyword.ReservedForTableAlias.Contains(keyword.JOIN))
	assert.True(t, keyword.ReservedForColumnAlias.Contains(keyword.FROM))
	assert.False(t, keyword.ReservedForColumnAlias.Contains(keyword.JOIN))
	assert.True(t, keyword.ReservedForIdentifier.Contains(keyword.INTERVAL))
}
