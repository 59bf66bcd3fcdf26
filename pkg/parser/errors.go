package parser

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// LexErrorKind classifies tokenizer failures.
type LexErrorKind int

// Lexical error kinds.
const (
	UnterminatedString LexErrorKind = iota
	UnterminatedComment
	UnterminatedQuotedIdentifier
	InvalidNumber
	InvalidEscape
	InvalidChar
)

var lexErrorText = map[LexErrorKind]string{
	UnterminatedString:           "unterminated string literal",
	UnterminatedComment:          "unterminated comment",
	UnterminatedQuotedIdentifier: "unterminated quoted identifier",
	InvalidNumber:                "invalid number literal",
	InvalidEscape:                "invalid escape sequence",
	InvalidChar:                  "unexpected character",
}

func (k LexErrorKind) String() string {
	return lexErrorText[k]
}

// LexError represents a lexical analysis error.
type LexError struct {
	Kind     LexErrorKind
	Char     rune // offending character for InvalidChar, quote for identifiers
	Location token.Location
	Message  string // optional detail
}

func (e *LexError) Error() string {
	msg := e.Kind.String()
	if e.Kind == InvalidChar || e.Kind == InvalidEscape {
		msg = fmt.Sprintf("%s %q", msg, e.Char)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return fmt.Sprintf("%s at %s", msg, e.Location)
}

// ParseErrorKind classifies parser failures.
type ParseErrorKind int

// Parse error kinds.
const (
	Expected ParseErrorKind = iota
	Unsupported
	RecursionLimitExceeded
	UnmatchedBlock
	TrailingToken
	EmptyInput
	Lex
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	Kind          ParseErrorKind
	Location      token.Location
	Expected      string         // Expected: what the grammar wanted
	Found         string         // Expected, TrailingToken: the token seen
	Feature       string         // Unsupported: the recognised construct
	StartLocation token.Location // UnmatchedBlock: where the block opened

	lex *LexError
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case Unsupported:
		return fmt.Sprintf("unsupported %s at %s", e.Feature, e.Location)
	case RecursionLimitExceeded:
		return fmt.Sprintf("recursion limit exceeded at %s", e.Location)
	case UnmatchedBlock:
		return fmt.Sprintf("expected END, found: %s for block opened at %s at %s", e.Found, e.StartLocation, e.Location)
	case TrailingToken:
		return fmt.Sprintf("expected end of statement, found: %s at %s", e.Found, e.Location)
	case EmptyInput:
		return fmt.Sprintf("expected a statement, found: EOF at %s", e.Location)
	case Lex:
		return e.lex.Error()
	default:
		return fmt.Sprintf("expected %s, found: %s at %s", e.Expected, e.Found, e.Location)
	}
}

// Unwrap exposes the tokenizer error behind a Lex kind error.
func (e *ParseError) Unwrap() error {
	if e.lex == nil {
		return nil
	}
	return e.lex
}

// Is matches the package sentinels by kind.
func (e *ParseError) Is(target error) bool {
	var t *ParseError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrRecursionLimitExceeded = &ParseError{Kind: RecursionLimitExceeded}
	ErrUnsupported            = &ParseError{Kind: Unsupported}
)

func lexParseError(err error) error {
	var le *LexError
	if errors.As(err, &le) {
		return &ParseError{Kind: Lex, Location: le.Location, lex: le}
	}
	return err
}

func describe(tok token.TokenWithSpan) string {
	switch tok.Type {
	case token.EOF:
		return "EOF"
	case token.WORD, token.STRING, token.NUMBER, token.PLACEHOLDER:
		return tok.Token.String()
	default:
		return tok.Type.String()
	}
}
