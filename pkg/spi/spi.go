// Package spi provides Service Provider Interface types for dialect
// hooks to interact with the parser without circular dependencies.
package spi

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// ParserOps exposes parser operations to dialect hooks.
// This interface allows dialect-specific code to drive the parser
// without importing it.
type ParserOps interface {
	// Token access. Peek functions skip nothing: the parser never sees
	// whitespace or comments.
	PeekToken() token.TokenWithSpan
	PeekNthToken(n int) token.TokenWithSpan
	NextToken() token.TokenWithSpan
	PrevToken()

	// Checkpoints for speculative parsing.
	Index() int
	Restore(index int)

	// Keyword and token consumption
	PeekKeyword(kw keyword.Keyword) bool
	ParseKeyword(kw keyword.Keyword) bool
	ParseKeywords(kws ...keyword.Keyword) bool
	ParseOneOfKeywords(kws ...keyword.Keyword) keyword.Keyword
	ExpectKeyword(kw keyword.Keyword) (token.TokenWithSpan, error)
	ExpectKeywords(kws ...keyword.Keyword) error
	ConsumeToken(t token.TokenType) bool
	ExpectToken(t token.TokenType) (token.TokenWithSpan, error)

	// Sub-parsers
	ParseExpr() (ast.Expr, error)
	ParseSubexpr(precedence int) (ast.Expr, error)
	ParseIdentifier() (ast.Ident, error)
	ParseIdentifiers() ([]ast.Ident, error)
	ParseObjectName() (ast.ObjectName, error)
	ParseQuery() (*ast.Query, error)
	ParseDataType() (ast.DataType, error)
	ParseCommaSeparatedExprs() ([]ast.Expr, error)
	ParseStatement() (ast.Statement, error)
	ParseStatementList(terminals ...keyword.Keyword) ([]ast.Statement, error)
	ParseLiteralString() (ast.Value, error)
	ParseOptions() ([]ast.SQLOption, error)

	// Error construction
	Expected(what string, found token.TokenWithSpan) error
	Unsupported(feature string) error
}

// StatementHook lets a dialect own a statement syntax. It runs before the
// core dispatch. Returning handled=false defers to the core parser; the
// parser then rewinds to where the hook started.
type StatementHook func(p ParserOps) (stmt ast.Statement, handled bool, err error)

// PrefixHook parses a dialect-specific expression prefix. The current
// token has not been consumed.
type PrefixHook func(p ParserOps) (expr ast.Expr, handled bool, err error)

// InfixHook parses a dialect-specific infix or postfix operator after left.
// prec is the precedence PrecedenceHook reported for the operator.
type InfixHook func(p ParserOps, left ast.Expr, prec int) (expr ast.Expr, handled bool, err error)

// PrecedenceHook reports the precedence of the next token when the dialect
// wants to override or extend the defaults.
type PrecedenceHook func(p ParserOps) (prec int, ok bool)

// AliasHook decides whether kw may act as an implicit alias at the current
// position.
type AliasHook func(kw keyword.Keyword, p ParserOps) bool

// Precedence constants for operator precedence parsing. Higher binds tighter.
const (
	PrecedenceNone       = 0
	PrecedenceOr         = 5
	PrecedenceXor        = 8
	PrecedenceAnd        = 10
	PrecedenceNot        = 15
	PrecedenceComparison = 20 // =, <>, <, >, <=, >=
	PrecedenceIs         = 25 // IS, BETWEEN, IN, LIKE and friends
	PrecedencePGOther    = 30 // ||, PostgreSQL JSON and regex operators
	PrecedencePipe       = 32 // |
	PrecedenceAmpersand  = 35 // &
	PrecedenceShift      = 40 // <<, >>
	PrecedenceAddition   = 45 // +, -
	PrecedenceMultiply   = 50 // *, /, %, DIV
	PrecedenceCaret      = 55 // ^
	PrecedenceAtTimeZone = 58
	PrecedenceCollate    = 59
	PrecedenceUnary      = 60 // -, +, ~
	PrecedencePostfix    = 70 // ::, [], .field
)
