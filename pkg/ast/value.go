package ast

import (
	"strings"

	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// ValueKind classifies a literal.
type ValueKind int

// Literal kinds.
const (
	NumberValue ValueKind = iota
	StringValue
	BooleanValue
	NullValue
	PlaceholderValue
)

// Value is a literal. Numbers keep their lexeme, strings keep their surface
// style (and dollar-quote tag) so that rendering reproduces the literal.
type Value struct {
	Kind  ValueKind
	Text  string            // number lexeme, string body, placeholder text, TRUE/FALSE
	Long  bool              // number carried an L suffix
	Style token.StringStyle // string literal form
	Tag   string            // dollar-quote tag

	// Backslash is set for strings read in a dialect where backslash
	// escapes; the rendering re-escapes backslashes so the text survives.
	Backslash bool
}

// Number builds a numeric literal.
func Number(text string, long bool) Value {
	return Value{Kind: NumberValue, Text: text, Long: long}
}

// SingleQuotedString builds a 'string' literal.
func SingleQuotedString(s string) Value {
	return Value{Kind: StringValue, Text: s, Style: token.SingleQuoted}
}

// DollarQuotedString builds a $tag$string$tag$ literal.
func DollarQuotedString(tag, s string) Value {
	return Value{Kind: StringValue, Text: s, Style: token.DollarQuoted, Tag: tag}
}

// Boolean builds TRUE or FALSE.
func Boolean(b bool) Value {
	if b {
		return Value{Kind: BooleanValue, Text: "TRUE"}
	}
	return Value{Kind: BooleanValue, Text: "FALSE"}
}

// Null is the NULL literal.
func Null() Value {
	return Value{Kind: NullValue, Text: "NULL"}
}

// Placeholder builds a bind parameter such as ?, $1 or :name.
func Placeholder(text string) Value {
	return Value{Kind: PlaceholderValue, Text: text}
}

// IsString reports whether the value is any kind of string literal.
func (v Value) IsString() bool {
	return v.Kind == StringValue
}

func (v Value) String() string {
	switch v.Kind {
	case NumberValue:
		return v.Text
	case StringValue:
		if v.Style == token.DollarQuoted {
			return token.QuoteDollar(v.Tag, v.Text)
		}
		if v.Backslash {
			return token.QuoteBackslashString(v.Style, v.Text)
		}
		return token.QuoteString(v.Style, v.Text)
	case BooleanValue:
		return strings.ToUpper(v.Text)
	case NullValue:
		return "NULL"
	default:
		return v.Text
	}
}

// ValueWithSpan is a literal used as an expression.
type ValueWithSpan struct {
	Value Value
	Span  token.Span
}

func (*ValueWithSpan) exprNode() {}

func (v *ValueWithSpan) String() string {
	return v.Value.String()
}

// Lit wraps a value as an expression without a span.
func Lit(v Value) *ValueWithSpan {
	return &ValueWithSpan{Value: v}
}

// DateTimeField is a unit used by EXTRACT, INTERVAL and friends. Units are
// kept as written (upper-cased) since the set differs by engine.
type DateTimeField struct {
	Name  string
	Ident *Ident // custom field given as an identifier or string
}

func (f DateTimeField) String() string {
	if f.Ident != nil {
		return f.Ident.String()
	}
	return f.Name
}
