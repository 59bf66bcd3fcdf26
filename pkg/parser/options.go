package parser

import "github.com/leapstack-labs/sqlkit/pkg/dialect"

// Options tunes a Parser beyond what its dialect fixes.
type Options struct {
	// TrailingCommas accepts a dangling comma before a closing token or
	// clause keyword in comma separated lists.
	TrailingCommas bool
	// Unescape resolves escape sequences in strings and quoted identifiers.
	// When false, literal bodies are kept as written.
	Unescape bool
	// RequireSemicolonStatementDelimiter rejects two statements that are
	// not separated by ';'.
	RequireSemicolonStatementDelimiter bool
}

// DefaultOptions returns the options a new parser for d starts with.
func DefaultOptions(d *dialect.Dialect) Options {
	return Options{
		TrailingCommas:                     d.TrailingCommas,
		Unescape:                           true,
		RequireSemicolonStatementDelimiter: true,
	}
}
