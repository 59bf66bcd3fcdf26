package redshift

import (
	"unicode"

	"github.com/leapstack-labs/sqlkit/pkg/dialect"
)

func init() {
	dialect.Register(Redshift)
}

// Redshift is the Amazon Redshift dialect. '#' starts temporary table
// names, and [name] quotes an identifier unless the bracket opens a
// SUPER subscript such as a[0].
var Redshift = dialect.New(Config).
	Identifiers(isIdentifierStart, isIdentifierPart).
	DelimitedIdentifiers(isDelimitedIdentifierStart, isProperIdentifierInsideQuotes).
	QuoteStyle(dialect.DoubleQuote).
	Build()

func isIdentifierStart(r rune) bool {
	return r == '#' || dialect.StandardIdentifierStart(r)
}

func isIdentifierPart(r rune) bool {
	return r == '#' || r == '$' || dialect.StandardIdentifierPart(r)
}

func isDelimitedIdentifierStart(r rune) bool {
	return r == '"' || r == '['
}

// isProperIdentifierInsideQuotes reports whether the text after an opening
// '[' reads as a name: it must start like an identifier and close with ']'
// on the same line.
func isProperIdentifierInsideQuotes(rest []rune) bool {
	i := 0
	for i < len(rest) && unicode.IsSpace(rest[i]) && rest[i] != '\n' {
		i++
	}
	if i == len(rest) || !isIdentifierStart(rest[i]) {
		return false
	}
	for ; i < len(rest); i++ {
		switch rest[i] {
		case ']':
			return true
		case '\n', '[', '\'':
			return false
		}
	}
	return false
}
