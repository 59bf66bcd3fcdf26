// Package ast defines the syntax tree produced by the parser.
//
// Every node renders back to SQL through String(); that rendering is the
// canonical unparser and re-parses to an equal tree. Spans are stored on
// leaves (Ident, ValueWithSpan, AttachedToken) and computed for inner nodes
// by Span, which unions everything reachable. Equal and Hash ignore spans.
//
// The sum types of the grammar (statements, expressions, set expressions,
// table factors, data types, select items) are sealed interfaces: each
// variant is a struct, usually used through a pointer, carrying an
// unexported marker method.
package ast

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// Node is implemented by every syntax tree node.
type Node interface {
	fmt.Stringer
}

// Statement is one top-level SQL command.
type Statement interface {
	Node
	statementNode()
}

// Expr is a scalar expression.
type Expr interface {
	Node
	exprNode()
}

// SetExpr is the body of a query: a SELECT, VALUES, a set operation, a
// nested query or a DML statement used as a query.
type SetExpr interface {
	Node
	setExprNode()
}

// TableFactor is one relation in a FROM clause.
type TableFactor interface {
	Node
	tableFactorNode()
}

// DataType is a SQL type name.
type DataType interface {
	Node
	dataTypeNode()
}

// SelectItem is one entry of a projection list.
type SelectItem interface {
	Node
	selectItemNode()
}

// AttachedToken keeps a keyword or punctuation token alongside a node so the
// node's span covers it. It never takes part in equality or hashing.
type AttachedToken struct {
	Token token.TokenWithSpan
}

// Attach wraps a token.
func Attach(t token.TokenWithSpan) AttachedToken {
	return AttachedToken{Token: t}
}

// Span returns the span of the attached token.
func (a AttachedToken) Span() token.Span {
	return a.Token.Span
}

// Ident is an identifier, possibly quoted. QuoteStyle is 0 for bare
// identifiers, otherwise one of '"', '`' or '['.
type Ident struct {
	Value      string
	QuoteStyle rune
	Span       token.Span
}

func (Ident) exprNode() {}

// NewIdent builds an unquoted identifier without span.
func NewIdent(value string) Ident {
	return Ident{Value: value}
}

// QuotedIdent builds a quoted identifier without span.
func QuotedIdent(value string, quote rune) Ident {
	return Ident{Value: value, QuoteStyle: quote}
}

func (i Ident) String() string {
	return token.QuoteIdent(i.QuoteStyle, i.Value)
}

// ObjectNamePart is one dot-separated part of a qualified name. A part is
// either an identifier or an identifier constructor such as Snowflake's
// IDENTIFIER('tbl').
type ObjectNamePart struct {
	Ident    Ident
	Function *ObjectNamePartFunction
}

// ObjectNamePartFunction is an identifier-producing function call.
type ObjectNamePartFunction struct {
	Name Ident
	Args []FunctionArg
}

func (p ObjectNamePart) String() string {
	if p.Function != nil {
		return p.Function.Name.String() + "(" + commaSep(p.Function.Args) + ")"
	}
	return p.Ident.String()
}

// ObjectName is a possibly qualified name such as db.schema.table. The
// parser never produces an empty ObjectName.
type ObjectName []ObjectNamePart

// NewObjectName builds a name from plain identifiers.
func NewObjectName(parts ...Ident) ObjectName {
	out := make(ObjectName, len(parts))
	for i, p := range parts {
		out[i] = ObjectNamePart{Ident: p}
	}
	return out
}

func (n ObjectName) String() string {
	return join(n, ".")
}

// Idents returns the identifier parts of the name.
func (n ObjectName) Idents() []Ident {
	out := make([]Ident, 0, len(n))
	for _, p := range n {
		out = append(out, p.Ident)
	}
	return out
}

// Last returns the final part of the name.
func (n ObjectName) Last() Ident {
	if len(n) == 0 {
		return Ident{}
	}
	return n[len(n)-1].Ident
}

// OneOrManyWithParens holds a list that was written either as a single
// bare item or as a parenthesized list.
type OneOrManyWithParens[T fmt.Stringer] struct {
	Items  []T
	Parens bool
}

// One wraps a single unparenthesized item.
func One[T fmt.Stringer](item T) OneOrManyWithParens[T] {
	return OneOrManyWithParens[T]{Items: []T{item}}
}

// Many wraps a parenthesized list.
func Many[T fmt.Stringer](items []T) OneOrManyWithParens[T] {
	return OneOrManyWithParens[T]{Items: items, Parens: true}
}

func (o OneOrManyWithParens[T]) String() string {
	if !o.Parens && len(o.Items) == 1 {
		return o.Items[0].String()
	}
	return "(" + commaSep(o.Items) + ")"
}

// Len returns the number of items.
func (o OneOrManyWithParens[T]) Len() int {
	return len(o.Items)
}

// ---------- rendering helpers ----------

func join[T fmt.Stringer](xs []T, sep string) string {
	var b strings.Builder
	for i, x := range xs {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(x.String())
	}
	return b.String()
}

func commaSep[T fmt.Stringer](xs []T) string {
	return join(xs, ", ")
}

func spaceSep[T fmt.Stringer](xs []T) string {
	return join(xs, " ")
}

// sqlBuilder accumulates space-separated SQL fragments.
type sqlBuilder struct {
	strings.Builder
}

// kw appends fragments separated by single spaces.
func (b *sqlBuilder) kw(parts ...string) {
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
}

// kwIf appends parts when cond holds.
func (b *sqlBuilder) kwIf(cond bool, parts ...string) {
	if cond {
		b.kw(parts...)
	}
}

// node appends a node when it is non-nil.
func (b *sqlBuilder) node(prefix string, n Node) {
	if isNil(n) {
		return
	}
	b.kw(prefix, n.String())
}

func parens(s string) string {
	return "(" + s + ")"
}

func isNil(n any) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	}
	return false
}

func boolStr(b bool, s string) string {
	if b {
		return s
	}
	return ""
}

// quoted renders s as a single-quoted SQL string.
func quoted(s string) string {
	return token.QuoteString(token.SingleQuoted, s)
}
