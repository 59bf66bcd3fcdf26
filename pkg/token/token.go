// Package token defines the lexical vocabulary shared by the tokenizer, the
// parser and dialect hooks.
//
// Builtin token types are constants below maxBuiltin so that the parser can
// switch on them. Dialect-only operators are registered dynamically via
// Register().
package token

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlkit/pkg/keyword"
)

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

//nolint:revive // ALL_CAPS names follow SQL token conventions
const (
	// Special tokens
	EOF TokenType = iota
	WHITESPACE
	COMMENT

	// Literals and names
	WORD        // identifier or keyword, possibly quoted
	NUMBER      // 123, 4.5e6, .5, 10L
	STRING      // any string literal; Token.Style tells which
	PLACEHOLDER // ?, ?1, $1, :name, @name

	// Punctuation
	COMMA     // ,
	SEMICOLON // ;
	DOT       // .
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	LBRACE    // {
	RBRACE    // }
	COLON     // :
	DCOLON    // ::
	ASSIGN    // :=
	RARROW    // =>
	BACKSLASH // \

	// Arithmetic and bitwise
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	DIVINT    // //
	PERCENT   // %
	CARET     // ^
	DPIPE     // ||
	AMPERSAND // &
	PIPE      // |
	TILDE     // ~
	SHARP     // #
	SHL       // <<
	SHR       // >>
	EXCL      // !
	DEXCL     // !!
	AT        // @
	SQRT      // |/
	CBRT      // ||/

	// Comparison
	EQ        // =
	DEQ       // ==
	NE        // <> or !=
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	SPACESHIP // <=>
	NOTLT     // !<
	NOTGT     // !>

	// PostgreSQL JSON, geometric and regex operators
	ARROW         // ->
	LONGARROW     // ->>
	HASHARROW     // #>
	HASHLONGARROW // #>>
	ATARROW       // @>
	ARROWAT       // <@
	HASHMINUS     // #-
	ATQUESTION    // @?
	ATAT          // @@
	ATDASHAT      // @-@
	QUESTIONAND   // ?&
	QUESTIONPIPE  // ?|
	OVERLAP       // &&
	CARETAT       // ^@
	TILDESTAR     // ~*
	NTILDE        // !~
	NTILDESTAR    // !~*
	DTILDE        // ~~
	DTILDESTAR    // ~~*
	NDTILDE       // !~~
	NDTILDESTAR   // !~~*
	CUSTOMOP      // any other operator built from dialect operator characters

	// Sentinel - dynamic tokens start after this
	maxBuiltin TokenType = 999
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := getDynamicName(t); ok {
		return name
	}
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps builtin token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:         "EOF",
	WHITESPACE:  "WHITESPACE",
	COMMENT:     "COMMENT",
	WORD:        "WORD",
	NUMBER:      "NUMBER",
	STRING:      "STRING",
	PLACEHOLDER: "PLACEHOLDER",

	COMMA:     ",",
	SEMICOLON: ";",
	DOT:       ".",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",
	LBRACE:    "{",
	RBRACE:    "}",
	COLON:     ":",
	DCOLON:    "::",
	ASSIGN:    ":=",
	RARROW:    "=>",
	BACKSLASH: `\`,

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	DIVINT:    "//",
	PERCENT:   "%",
	CARET:     "^",
	DPIPE:     "||",
	AMPERSAND: "&",
	PIPE:      "|",
	TILDE:     "~",
	SHARP:     "#",
	SHL:       "<<",
	SHR:       ">>",
	EXCL:      "!",
	DEXCL:     "!!",
	AT:        "@",
	SQRT:      "|/",
	CBRT:      "||/",

	EQ:        "=",
	DEQ:       "==",
	NE:        "<>",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	SPACESHIP: "<=>",
	NOTLT:     "!<",
	NOTGT:     "!>",

	ARROW:         "->",
	LONGARROW:     "->>",
	HASHARROW:     "#>",
	HASHLONGARROW: "#>>",
	ATARROW:       "@>",
	ARROWAT:       "<@",
	HASHMINUS:     "#-",
	ATQUESTION:    "@?",
	ATAT:          "@@",
	ATDASHAT:      "@-@",
	QUESTIONAND:   "?&",
	QUESTIONPIPE:  "?|",
	OVERLAP:       "&&",
	CARETAT:       "^@",
	TILDESTAR:     "~*",
	NTILDE:        "!~",
	NTILDESTAR:    "!~*",
	DTILDE:        "~~",
	DTILDESTAR:    "~~*",
	NDTILDE:       "!~~",
	NDTILDESTAR:   "!~~*",
	CUSTOMOP:      "OPERATOR",
}

// Operators lists every builtin operator and punctuation symbol with its
// token type. The tokenizer resolves them by longest match.
func Operators() map[string]TokenType {
	out := make(map[string]TokenType, len(tokenNames))
	for t, name := range tokenNames {
		if t >= COMMA && t < CUSTOMOP {
			out[name] = t
		}
	}
	out["!="] = NE
	return out
}

// IsOperator returns true if the token type is a punctuation or operator token.
func IsOperator(t TokenType) bool {
	return (t >= COMMA && t <= CUSTOMOP) || IsDynamic(t)
}

// StringStyle records the surface form of a string literal.
type StringStyle int

// String literal styles.
const (
	SingleQuoted       StringStyle = iota // 'abc'
	DoubleQuoted                          // "abc" (dialects where " delimits strings)
	TripleSingleQuoted                    // '''abc'''
	TripleDoubleQuoted                    // """abc"""
	DollarQuoted                          // $tag$abc$tag$
	National                              // N'abc'
	Escaped                               // E'a\nb'
	Unicode                               // U&'d\0061t'
	Hex                                   // X'1F'
	ByteSingle                            // B'0101' (bit string) or b'..' (bytes)
	ByteDouble                            // B"abc"
	TripleByteSingle                      // B'''abc'''
	TripleByteDouble                      // B"""abc"""
	RawSingle                             // R'abc'
	RawDouble                             // R"abc"
	TripleRawSingle                       // R'''abc'''
	TripleRawDouble                       // R"""abc"""
)

// prefix and quote of each style, used for rendering.
var styleForms = map[StringStyle][2]string{
	SingleQuoted:       {"", "'"},
	DoubleQuoted:       {"", `"`},
	TripleSingleQuoted: {"", "'''"},
	TripleDoubleQuoted: {"", `"""`},
	National:           {"N", "'"},
	Escaped:            {"E", "'"},
	Unicode:            {"U&", "'"},
	Hex:                {"X", "'"},
	ByteSingle:         {"B", "'"},
	ByteDouble:         {"B", `"`},
	TripleByteSingle:   {"B", "'''"},
	TripleByteDouble:   {"B", `"""`},
	RawSingle:          {"R", "'"},
	RawDouble:          {"R", `"`},
	TripleRawSingle:    {"R", "'''"},
	TripleRawDouble:    {"R", `"""`},
}

// QuoteString renders a string body in the given style, escaping as needed.
// Dollar-quoted strings need a tag and are rendered with QuoteDollar.
func QuoteString(style StringStyle, body string) string {
	form, ok := styleForms[style]
	if !ok {
		return QuoteDollar("", body)
	}
	prefix, quote := form[0], form[1]
	switch style {
	case SingleQuoted, National, Hex, ByteSingle, Unicode:
		body = strings.ReplaceAll(body, "'", "''")
	case DoubleQuoted, ByteDouble:
		body = strings.ReplaceAll(body, `"`, `""`)
	case Escaped:
		body = escapeCStyle(body)
	}
	return prefix + quote + body + quote
}

// QuoteBackslashString is QuoteString for dialects where a backslash inside
// a string starts an escape: every backslash in body is doubled first.
func QuoteBackslashString(style StringStyle, body string) string {
	if style == Escaped {
		return QuoteString(style, body)
	}
	return QuoteString(style, strings.ReplaceAll(body, `\`, `\\`))
}

// QuoteDollar renders a dollar-quoted body.
func QuoteDollar(tag, body string) string {
	return "$" + tag + "$" + body + "$" + tag + "$"
}

func escapeCStyle(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// QuoteIdent renders an identifier with the given quote character.
// A zero quote renders the value verbatim.
func QuoteIdent(quote rune, value string) string {
	switch quote {
	case 0:
		return value
	case '[':
		return "[" + value + "]"
	default:
		q := string(quote)
		return q + strings.ReplaceAll(value, q, q+q) + q
	}
}

// Token represents a lexical token.
type Token struct {
	Type TokenType

	// Value is the identifier text (unquoted and unescaped), the numeric
	// lexeme including any type suffix, the string body, the placeholder
	// text, or the operator symbol.
	Value string

	Keyword keyword.Keyword // WORD: the keyword for unquoted words
	Quote   rune            // WORD: quote character, 0 when unquoted
	Style   StringStyle     // STRING: surface form
	Tag     string          // STRING: dollar-quote tag
	Long    bool            // NUMBER: trailing L suffix

	// Backslash marks a STRING whose body was unescaped with backslash
	// escapes, so rendering must escape backslashes again.
	Backslash bool
}

// Word builds an unquoted or quoted word token.
func Word(value string, quote rune) Token {
	t := Token{Type: WORD, Value: value, Quote: quote}
	if quote == 0 {
		t.Keyword, _ = keyword.Lookup(value)
	}
	return t
}

// IsKeyword reports whether the token is the unquoted keyword kw.
func (t Token) IsKeyword(kw keyword.Keyword) bool {
	return t.Type == WORD && t.Quote == 0 && t.Keyword == kw
}

// String renders the token back to source form.
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case WORD:
		return QuoteIdent(t.Quote, t.Value)
	case NUMBER:
		return t.Value
	case STRING:
		if t.Style == DollarQuoted {
			return QuoteDollar(t.Tag, t.Value)
		}
		if t.Backslash {
			return QuoteBackslashString(t.Style, t.Value)
		}
		return QuoteString(t.Style, t.Value)
	case PLACEHOLDER, WHITESPACE, COMMENT, CUSTOMOP:
		return t.Value
	default:
		if t.Value != "" {
			return t.Value
		}
		return t.Type.String()
	}
}

// TokenWithSpan pairs a token with its source range.
//
//nolint:revive // mirrors the parser's vocabulary
type TokenWithSpan struct {
	Token
	Span Span
}

// At wraps a token with a span.
func At(t Token, sp Span) TokenWithSpan {
	return TokenWithSpan{Token: t, Span: sp}
}

// EOFToken returns an EOF token with an empty span.
func EOFToken() TokenWithSpan {
	return TokenWithSpan{Token: Token{Type: EOF}}
}
