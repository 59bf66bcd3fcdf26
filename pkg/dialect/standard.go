package dialect

import "unicode"

// StandardIdentifierStart accepts letters and underscore.
func StandardIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// StandardIdentifierPart accepts letters, digits and underscore.
func StandardIdentifierPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// DollarIdentifierPart also accepts '$' inside identifiers (PostgreSQL,
// Snowflake, MySQL).
func DollarIdentifierPart(r rune) bool {
	return r == '$' || StandardIdentifierPart(r)
}

// ASCIIIdentifierStart accepts only ASCII letters and underscore.
func ASCIIIdentifierStart(r rune) bool {
	return r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// ASCIIIdentifierPart accepts ASCII letters, digits and underscore.
func ASCIIIdentifierPart(r rune) bool {
	return ASCIIIdentifierStart(r) || r >= '0' && r <= '9'
}

// DoubleQuote uses '"' for every rendered identifier.
func DoubleQuote(string) rune { return '"' }

// Backtick uses '`' for every rendered identifier.
func Backtick(string) rune { return '`' }

// Bracket uses '[' for every rendered identifier.
func Bracket(string) rune { return '[' }
