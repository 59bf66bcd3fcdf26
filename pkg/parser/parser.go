// Package parser provides dialect-aware SQL tokenizing and parsing.
//
// # Usage
//
//	stmts, err := parser.Parse(postgres.Postgres, "SELECT a, b FROM t")
//	if err != nil {
//	    // handle error
//	}
//
// The parser requires a dialect. Use the dialect registry to get one by
// name:
//
//	d, ok := dialect.Get("duckdb")
//	stmts, err := parser.New(d).WithRecursionLimit(200).ParseSQL(sql)
//
// # Grammar Overview
//
// The parser is a recursive descent parser over a token slice, with a
// Pratt engine for expressions:
//
//	statements    → statement {';' statement} [';']
//	statement     → query | insert | update | delete | merge | ddl | utility
//	query         → [WITH cte_list] set_expr [ORDER BY ...] [LIMIT ...]
//	set_expr      → select | VALUES ... | TABLE name | '(' query ')'
//	                {(UNION|EXCEPT|INTERSECT|MINUS) [ALL|DISTINCT] set_expr}
//	select        → SELECT [DISTINCT] items [INTO ...] [FROM tables]
//	                [WHERE expr] [GROUP BY ...] [HAVING expr]
//	                [WINDOW ...] [QUALIFY expr]
//
// Every point where engines disagree is answered by the Dialect: feature
// flags in dialect.Config and hooks that receive spi.ParserOps. See each
// file for detailed grammar rules for that section.
package parser

import (
	"context"
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// DefaultRecursionLimit bounds expression and statement nesting.
const DefaultRecursionLimit = 50

// Parser parses SQL into an AST. A Parser is not safe for concurrent use;
// the Dialect it holds is.
type Parser struct {
	dialect *dialect.Dialect
	tokens  []token.TokenWithSpan
	index   int
	depth   int
	limit   int
	options Options
}

var _ spi.ParserOps = (*Parser)(nil)

// New creates a parser for the given dialect with no input.
func New(d *dialect.Dialect) *Parser {
	return &Parser{
		dialect: d,
		tokens:  []token.TokenWithSpan{token.EOFToken()},
		limit:   DefaultRecursionLimit,
		options: DefaultOptions(d),
	}
}

// Parse parses src with dialect d using the default settings.
func Parse(d *dialect.Dialect, src string) ([]ast.Statement, error) {
	return New(d).ParseSQL(src)
}

// ParseContext is Parse that gives up between statements once ctx is done.
func ParseContext(ctx context.Context, d *dialect.Dialect, src string) ([]ast.Statement, error) {
	return New(d).ParseSQLContext(ctx, src)
}

// Dialect returns the parser's dialect.
func (p *Parser) Dialect() *dialect.Dialect {
	return p.dialect
}

// WithRecursionLimit sets the maximum nesting depth.
func (p *Parser) WithRecursionLimit(n int) *Parser {
	p.limit = n
	return p
}

// WithOptions replaces the parser options.
func (p *Parser) WithOptions(o Options) *Parser {
	p.options = o
	return p
}

// WithTokens resets the parser to read toks. Whitespace and comment tokens
// are dropped and a missing EOF is added.
func (p *Parser) WithTokens(toks []token.TokenWithSpan) *Parser {
	out := make([]token.TokenWithSpan, 0, len(toks)+1)
	for _, t := range toks {
		switch t.Type {
		case token.WHITESPACE, token.COMMENT:
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 || out[len(out)-1].Type != token.EOF {
		eof := token.EOFToken()
		if len(out) > 0 {
			end := out[len(out)-1].Span.End
			eof.Span = token.NewSpan(end, end)
		}
		out = append(out, eof)
	}
	p.tokens = out
	p.index = 0
	p.depth = 0
	return p
}

// TryWithSQL tokenizes src and resets the parser to read it.
func (p *Parser) TryWithSQL(src string) (*Parser, error) {
	toks, err := NewTokenizer(p.dialect, src).WithUnescape(p.options.Unescape).Tokenize()
	if err != nil {
		return nil, lexParseError(err)
	}
	return p.WithTokens(toks), nil
}

// ParseSQL tokenizes and parses src into statements.
func (p *Parser) ParseSQL(src string) ([]ast.Statement, error) {
	if _, err := p.TryWithSQL(src); err != nil {
		return nil, err
	}
	return p.ParseStatements()
}

// ParseSQLContext is ParseSQL that stops between statements once ctx is
// done and returns ctx.Err().
func (p *Parser) ParseSQLContext(ctx context.Context, src string) ([]ast.Statement, error) {
	if _, err := p.TryWithSQL(src); err != nil {
		return nil, err
	}
	return p.parseStatements(ctx)
}

// ParseStatements parses the remaining tokens as a semicolon separated
// statement list. A trailing semicolon is optional.
func (p *Parser) ParseStatements() ([]ast.Statement, error) {
	return p.parseStatements(context.Background())
}

func (p *Parser) parseStatements(ctx context.Context) ([]ast.Statement, error) {
	var stmts []ast.Statement
	expectDelimiter := false
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for p.ConsumeToken(token.SEMICOLON) {
			expectDelimiter = false
		}
		tok := p.PeekToken()
		if tok.Type == token.EOF {
			break
		}
		if expectDelimiter && p.options.RequireSemicolonStatementDelimiter {
			return nil, &ParseError{Kind: TrailingToken, Location: tok.Span.Start, Found: describe(tok)}
		}
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		expectDelimiter = !p.isCatchAfterTry(stmt)
	}
	if len(stmts) == 0 {
		return nil, &ParseError{Kind: EmptyInput, Location: p.PeekToken().Span.Start}
	}
	return stmts, nil
}

// isCatchAfterTry reports whether stmt is a BEGIN TRY block directly
// followed by its BEGIN CATCH, which needs no delimiter in between.
func (p *Parser) isCatchAfterTry(stmt ast.Statement) bool {
	b, ok := stmt.(*ast.BeginEnd)
	return ok && b.Kind == "TRY" && p.PeekKeyword(keyword.BEGIN) && p.PeekNthToken(1).IsKeyword(keyword.CATCH)
}

// ---------- Recursion Guard ----------

// enter records one level of nesting. Callers pair it with leave.
func (p *Parser) enter() error {
	if p.depth >= p.limit {
		return &ParseError{Kind: RecursionLimitExceeded, Location: p.PeekToken().Span.Start}
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// ---------- Token Helpers ----------

// PeekToken returns the next token without consuming it.
func (p *Parser) PeekToken() token.TokenWithSpan {
	return p.PeekNthToken(0)
}

// PeekNthToken returns the token n positions ahead. Past the end it returns
// the EOF token.
func (p *Parser) PeekNthToken(n int) token.TokenWithSpan {
	i := p.index + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// NextToken consumes and returns the next token. It never moves past EOF.
func (p *Parser) NextToken() token.TokenWithSpan {
	tok := p.PeekToken()
	if tok.Type != token.EOF {
		p.index++
	}
	return tok
}

// PrevToken steps back one token.
func (p *Parser) PrevToken() {
	if p.index > 0 {
		p.index--
	}
}

// Index returns a checkpoint for Restore.
func (p *Parser) Index() int {
	return p.index
}

// Restore rewinds to a checkpoint taken with Index.
func (p *Parser) Restore(index int) {
	p.index = index
}

// lastToken returns the most recently consumed token.
func (p *Parser) lastToken() token.TokenWithSpan {
	if p.index == 0 {
		return token.EOFToken()
	}
	return p.tokens[p.index-1]
}

// peekIs reports whether the next token has type t.
func (p *Parser) peekIs(t token.TokenType) bool {
	return p.PeekToken().Type == t
}

// peekNthIs reports whether the token n ahead has type t.
func (p *Parser) peekNthIs(n int, t token.TokenType) bool {
	return p.PeekNthToken(n).Type == t
}

// ---------- Keyword Helpers ----------

// PeekKeyword reports whether the next token is the keyword kw.
func (p *Parser) PeekKeyword(kw keyword.Keyword) bool {
	return p.PeekToken().IsKeyword(kw)
}

// peekKeywords reports whether the next tokens spell kws in order.
func (p *Parser) peekKeywords(kws ...keyword.Keyword) bool {
	for i, kw := range kws {
		if !p.PeekNthToken(i).IsKeyword(kw) {
			return false
		}
	}
	return true
}

// peekOneOf reports whether the next token is any of kws.
func (p *Parser) peekOneOf(kws ...keyword.Keyword) bool {
	tok := p.PeekToken()
	for _, kw := range kws {
		if tok.IsKeyword(kw) {
			return true
		}
	}
	return false
}

// ParseKeyword consumes the keyword kw if it is next.
func (p *Parser) ParseKeyword(kw keyword.Keyword) bool {
	if p.PeekKeyword(kw) {
		p.index++
		return true
	}
	return false
}

// ParseKeywords consumes kws if they all follow in order. On a partial
// match nothing is consumed.
func (p *Parser) ParseKeywords(kws ...keyword.Keyword) bool {
	start := p.index
	for _, kw := range kws {
		if !p.ParseKeyword(kw) {
			p.index = start
			return false
		}
	}
	return true
}

// ParseOneOfKeywords consumes and returns the first of kws that is next,
// or keyword.NoKeyword.
func (p *Parser) ParseOneOfKeywords(kws ...keyword.Keyword) keyword.Keyword {
	tok := p.PeekToken()
	for _, kw := range kws {
		if tok.IsKeyword(kw) {
			p.index++
			return kw
		}
	}
	return keyword.NoKeyword
}

// ExpectKeyword consumes kw or fails.
func (p *Parser) ExpectKeyword(kw keyword.Keyword) (token.TokenWithSpan, error) {
	tok := p.PeekToken()
	if tok.IsKeyword(kw) {
		p.index++
		return tok, nil
	}
	return tok, p.Expected(kw.String(), tok)
}

// ExpectKeywords consumes every keyword of kws in order or fails.
func (p *Parser) ExpectKeywords(kws ...keyword.Keyword) error {
	for _, kw := range kws {
		if _, err := p.ExpectKeyword(kw); err != nil {
			return err
		}
	}
	return nil
}

// expectOneOfKeywords consumes one of kws or fails listing them.
func (p *Parser) expectOneOfKeywords(kws ...keyword.Keyword) (keyword.Keyword, error) {
	if kw := p.ParseOneOfKeywords(kws...); kw != keyword.NoKeyword {
		return kw, nil
	}
	names := make([]string, len(kws))
	for i, kw := range kws {
		names[i] = kw.String()
	}
	return keyword.NoKeyword, p.Expected("one of "+strings.Join(names, " "), p.PeekToken())
}

// ConsumeToken consumes the next token if it has type t.
func (p *Parser) ConsumeToken(t token.TokenType) bool {
	if p.peekIs(t) {
		p.index++
		return true
	}
	return false
}

// ExpectToken consumes a token of type t or fails.
func (p *Parser) ExpectToken(t token.TokenType) (token.TokenWithSpan, error) {
	tok := p.PeekToken()
	if tok.Type == t {
		p.index++
		return tok, nil
	}
	return tok, p.Expected(t.String(), tok)
}

// ---------- Errors ----------

// Expected builds an "expected X, found: Y" error at found.
func (p *Parser) Expected(what string, found token.TokenWithSpan) error {
	return &ParseError{Kind: Expected, Location: found.Span.Start, Expected: what, Found: describe(found)}
}

// Unsupported reports a recognised construct the parser does not build.
func (p *Parser) Unsupported(feature string) error {
	return &ParseError{Kind: Unsupported, Location: p.PeekToken().Span.Start, Feature: feature}
}

// ---------- spi.ParserOps Implementation ----------

// ParseIdentifier parses one identifier. Any word qualifies, keywords
// included.
func (p *Parser) ParseIdentifier() (ast.Ident, error) {
	tok := p.PeekToken()
	if tok.Type != token.WORD {
		return ast.Ident{}, p.Expected("identifier", tok)
	}
	p.index++
	return identFrom(tok), nil
}

// ParseIdentifiers parses a comma separated identifier list.
func (p *Parser) ParseIdentifiers() ([]ast.Ident, error) {
	return parseCommaSeparated(p, p.ParseIdentifier)
}

// ParseObjectName parses a dotted name such as db.schema.table.
func (p *Parser) ParseObjectName() (ast.ObjectName, error) {
	var name ast.ObjectName
	for {
		id, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		part := ast.ObjectNamePart{Ident: id}
		// IDENTIFIER('t') style name functions
		if id.QuoteStyle == 0 && p.peekIs(token.LPAREN) && len(name) == 0 && isNameFunction(id) {
			p.NextToken()
			exprs, err := p.parseOptionalExprList(token.RPAREN)
			if err != nil {
				return nil, err
			}
			args := make([]ast.FunctionArg, len(exprs))
			for i, e := range exprs {
				args[i] = ast.FunctionArg{Value: e}
			}
			part.Function = &ast.ObjectNamePartFunction{Name: id, Args: args}
		}
		name = append(name, part)
		if !p.peekIs(token.DOT) || !p.peekNthIs(1, token.WORD) {
			return name, nil
		}
		p.NextToken()
	}
}

func isNameFunction(id ast.Ident) bool {
	kw, _ := keyword.Lookup(id.Value)
	return kw == keyword.IDENTIFIER
}

// ParseCommaSeparatedExprs parses expr {, expr}.
func (p *Parser) ParseCommaSeparatedExprs() ([]ast.Expr, error) {
	return parseCommaSeparated(p, p.ParseExpr)
}

// ParseStatementList parses statements up to one of terminals or EOF.
// Semicolons between them are optional.
func (p *Parser) ParseStatementList(terminals ...keyword.Keyword) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		for p.ConsumeToken(token.SEMICOLON) {
		}
		if p.peekIs(token.EOF) || p.peekOneOf(terminals...) {
			return stmts, nil
		}
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// ParseLiteralString parses a string literal token.
func (p *Parser) ParseLiteralString() (ast.Value, error) {
	tok := p.PeekToken()
	if tok.Type != token.STRING {
		return ast.Value{}, p.Expected("literal string", tok)
	}
	p.index++
	return stringValue(tok), nil
}

// ParseOptions parses a parenthesised `key = value` list.
func (p *Parser) ParseOptions() ([]ast.SQLOption, error) {
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	if p.ConsumeToken(token.RPAREN) {
		return []ast.SQLOption{}, nil
	}
	opts, err := parseCommaSeparated(p, p.parseSQLOption)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return opts, nil
}

func (p *Parser) parseSQLOption() (ast.SQLOption, error) {
	if tok := p.PeekToken(); tok.Type == token.STRING {
		// Hive TBLPROPERTIES ('k' = 'v')
		p.index++
		key := &ast.ValueWithSpan{Value: stringValue(tok), Span: tok.Span}
		if !p.ConsumeToken(token.EQ) {
			return ast.SQLOption{Key: key}, nil
		}
		val, err := p.ParseExpr()
		if err != nil {
			return ast.SQLOption{}, err
		}
		return ast.SQLOption{Key: key, Value: val}, nil
	}
	first, err := p.ParseIdentifier()
	if err != nil {
		return ast.SQLOption{}, err
	}
	var key ast.Expr = first
	// dotted keys such as delta.appendOnly keep each part's quoting
	if p.peekIs(token.DOT) && p.peekNthIs(1, token.WORD) {
		path := &ast.CompoundIdentifier{Parts: []ast.Ident{first}}
		for p.peekIs(token.DOT) && p.peekNthIs(1, token.WORD) {
			p.NextToken()
			path.Parts = append(path.Parts, identFrom(p.NextToken()))
		}
		key = path
	}
	if !p.ConsumeToken(token.EQ) {
		return ast.SQLOption{Key: key}, nil
	}
	val, err := p.ParseExpr()
	if err != nil {
		return ast.SQLOption{}, err
	}
	return ast.SQLOption{Key: key, Value: val}, nil
}

// ---------- Shared Helpers ----------

// parseCommaSeparated parses item {, item}. With trailing commas enabled a
// dangling comma before a clause keyword or closing token is accepted.
func parseCommaSeparated[T any](p *Parser, item func() (T, error)) ([]T, error) {
	var out []T
	for {
		v, err := item()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		if !p.ConsumeToken(token.COMMA) {
			return out, nil
		}
		if p.options.TrailingCommas && p.isCommaListEnd() {
			return out, nil
		}
	}
}

// isCommaListEnd reports whether the next token closes a list.
func (p *Parser) isCommaListEnd() bool {
	tok := p.PeekToken()
	switch tok.Type {
	case token.RPAREN, token.RBRACKET, token.RBRACE, token.SEMICOLON, token.EOF:
		return true
	case token.WORD:
		return tok.Quote == 0 && p.dialect.ReservedForColumnAlias().Contains(tok.Keyword)
	}
	return false
}

// parseOptionalExprList parses a possibly empty expression list up to and
// including the closing token.
func (p *Parser) parseOptionalExprList(closing token.TokenType) ([]ast.Expr, error) {
	if p.ConsumeToken(closing) {
		return nil, nil
	}
	exprs, err := p.ParseCommaSeparatedExprs()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(closing); err != nil {
		return nil, err
	}
	return exprs, nil
}

// parseParenIdents parses ( ident, ... ).
func (p *Parser) parseParenIdents() ([]ast.Ident, error) {
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	if p.ConsumeToken(token.RPAREN) {
		return nil, nil
	}
	ids, err := p.ParseIdentifiers()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return ids, nil
}

// parseParenExprs parses ( expr, ... ).
func (p *Parser) parseParenExprs() ([]ast.Expr, error) {
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	return p.parseOptionalExprList(token.RPAREN)
}

// parseObjectNames parses name {, name}.
func (p *Parser) parseObjectNames() ([]ast.ObjectName, error) {
	return parseCommaSeparated(p, p.ParseObjectName)
}

// parseIfNotExists consumes IF NOT EXISTS.
func (p *Parser) parseIfNotExists() bool {
	return p.ParseKeywords(keyword.IF, keyword.NOT, keyword.EXISTS)
}

// parseIfExists consumes IF EXISTS.
func (p *Parser) parseIfExists() bool {
	return p.ParseKeywords(keyword.IF, keyword.EXISTS)
}

// parseNumberValue parses an unsigned number literal.
func (p *Parser) parseNumberValue() (ast.Value, error) {
	tok := p.PeekToken()
	if tok.Type != token.NUMBER {
		return ast.Value{}, p.Expected("a number", tok)
	}
	p.index++
	return ast.Number(tok.Value, tok.Long), nil
}

// parseUint parses an unsigned integer literal.
func (p *Parser) parseUint() (uint64, error) {
	tok := p.PeekToken()
	n, ok := parseUintLiteral(tok)
	if !ok {
		return 0, p.Expected("literal int", tok)
	}
	p.index++
	return n, nil
}

func parseUintLiteral(tok token.TokenWithSpan) (uint64, bool) {
	if tok.Type != token.NUMBER || tok.Value == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(strings.ReplaceAll(tok.Value, "_", ""), 10, 64)
	if err != nil {
		// not decimal, or out of range
		return 0, false
	}
	return n, true
}

// parseValue parses any literal value token.
func (p *Parser) parseValue() (ast.Value, error) {
	tok := p.PeekToken()
	switch {
	case tok.Type == token.NUMBER:
		p.index++
		return ast.Number(tok.Value, tok.Long), nil
	case tok.Type == token.STRING:
		p.index++
		return stringValue(tok), nil
	case tok.Type == token.PLACEHOLDER:
		p.index++
		return ast.Placeholder(tok.Value), nil
	case tok.IsKeyword(keyword.TRUE):
		p.index++
		return ast.Boolean(true), nil
	case tok.IsKeyword(keyword.FALSE):
		p.index++
		return ast.Boolean(false), nil
	case tok.IsKeyword(keyword.NULL):
		p.index++
		return ast.Null(), nil
	}
	return ast.Value{}, p.Expected("a value", tok)
}

// parseIdentOrString accepts a name written as an identifier or a string.
func (p *Parser) parseIdentOrString() (ast.Ident, error) {
	tok := p.PeekToken()
	if tok.Type == token.STRING {
		p.index++
		return ast.Ident{Value: tok.Value, QuoteStyle: '\'', Span: tok.Span}, nil
	}
	return p.ParseIdentifier()
}

// parseSpacedWords joins the following bare words up to a stop token, used
// for free-form option lists such as SHOW arguments.
func (p *Parser) parseSpacedWords(stop func(token.TokenWithSpan) bool) []string {
	var words []string
	for {
		tok := p.PeekToken()
		if tok.Type != token.WORD || tok.Quote != 0 || stop(tok) {
			return words
		}
		p.index++
		words = append(words, tok.Value)
	}
}

func identFrom(tok token.TokenWithSpan) ast.Ident {
	return ast.Ident{Value: tok.Value, QuoteStyle: tok.Quote, Span: tok.Span}
}

func stringValue(tok token.TokenWithSpan) ast.Value {
	return ast.Value{Kind: ast.StringValue, Text: tok.Value, Style: tok.Style, Tag: tok.Tag, Backslash: tok.Backslash}
}

func boolPtr(b bool) *bool {
	return &b
}
