package token

import "sync"

// Dialect-specific operators that are not part of the builtin set get a
// dynamic TokenType. IDs start after maxBuiltin.
var (
	registryMu     sync.RWMutex
	nextTokenID    = maxBuiltin
	dynamicTokens  = make(map[TokenType]string)
	dynamicSymbols = make(map[string]TokenType)
)

// Register returns the token type for a dialect operator symbol such as
// "**", allocating one on first use. Registering the same symbol twice
// returns the same type, so dialect packages can call it from init().
func Register(symbol string) TokenType {
	registryMu.Lock()
	defer registryMu.Unlock()

	if t, ok := dynamicSymbols[symbol]; ok {
		return t
	}
	nextTokenID++
	t := nextTokenID
	dynamicTokens[t] = symbol
	dynamicSymbols[symbol] = t
	return t
}

// getDynamicName returns the symbol of a dynamic token.
func getDynamicName(t TokenType) (string, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	name, ok := dynamicTokens[t]
	return name, ok
}

// LookupSymbol returns the dynamic token type registered for symbol.
func LookupSymbol(symbol string) (TokenType, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := dynamicSymbols[symbol]
	return t, ok
}

// IsDynamic returns true if the token type is a dynamically registered token.
func IsDynamic(t TokenType) bool {
	return t > maxBuiltin
}

// RegisteredTokens returns a copy of all registered dynamic tokens.
func RegisteredTokens() map[TokenType]string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	result := make(map[TokenType]string, len(dynamicTokens))
	for k, v := range dynamicTokens {
		result[k] = v
	}
	return result
}
