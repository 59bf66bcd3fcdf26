package token

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIdempotent(t *testing.T) {
	id1 := Register("%%test-idempotent")
	id2 := Register("%%test-idempotent")

	assert.Equal(t, id1, id2, "same symbol should return same ID")
}

func TestRegisterDifferentSymbols(t *testing.T) {
	id1 := Register("%%test-a")
	id2 := Register("%%test-b")

	assert.NotEqual(t, id1, id2, "different symbols should return different IDs")
}

func TestRegisterConcurrent(t *testing.T) {
	const numGoroutines = 100
	var wg sync.WaitGroup
	ids := make([]TokenType, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ids[idx] = Register("%%test-concurrent")
		}(i)
	}
	wg.Wait()

	for i := 1; i < numGoroutines; i++ {
		require.Equal(t, ids[0], ids[i], "concurrent registration should return same ID")
	}
}

func TestLookupSymbol(t *testing.T) {
	expectedID := Register("%%test-lookup")

	gotID, ok := LookupSymbol("%%test-lookup")
	require.True(t, ok, "registered symbol should be found")
	assert.Equal(t, expectedID, gotID)

	_, ok = LookupSymbol("%%nonexistent")
	assert.False(t, ok, "unregistered symbol should not be found")
}

func TestIsDynamic(t *testing.T) {
	assert.False(t, IsDynamic(WORD))
	assert.False(t, IsDynamic(NDTILDESTAR))
	assert.False(t, IsDynamic(EOF))

	dynamicToken := Register("%%test-dynamic")
	assert.True(t, IsDynamic(dynamicToken))
	assert.True(t, IsOperator(dynamicToken))
	assert.Equal(t, "%%test-dynamic", dynamicToken.String())
}

func TestRegisteredTokens(t *testing.T) {
	id := Register("%%test-registered")

	tokens := RegisteredTokens()
	assert.Equal(t, "%%test-registered", tokens[id])

	tokens[id] = "MODIFIED"
	tokens2 := RegisteredTokens()
	assert.Equal(t, "%%test-registered", tokens2[id], "RegisteredTokens should return a copy")
}

func TestGetDynamicName(t *testing.T) {
	id := Register("%%test-name")

	gotName, ok := getDynamicName(id)
	require.True(t, ok)
	assert.Equal(t, "%%test-name", gotName)

	_, ok = getDynamicName(TokenType(99999))
	assert.False(t, ok)
}
