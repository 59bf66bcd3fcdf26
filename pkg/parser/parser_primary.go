package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// Primary expression parsing: literals, names, calls and the keyword led
// special forms.
//
// Grammar:
//
//	primary → literal | placeholder | '*' | unary_op primary
//	        | name ['.' '*'] | name '(' args ')' [tail]
//	        | '(' query ')' | '(' expr {',' expr} ')'
//	        | CASE ... END | CAST '(' expr AS type ')' | EXISTS '(' query ')'
//	        | type 'string' | INTERVAL value [field [TO field]]
//	        | ARRAY '[' ... ']' | '[' ... ']' | STRUCT ... | ROW '(' ... ')'
//	        | '{' d|t|ts 'string' '}' | '{' fn call '}' | '{' key ':' value ... '}'

var unaryOperators = map[token.TokenType]ast.UnaryOperator{
	token.MINUS:    ast.UnaryMinus,
	token.PLUS:     ast.UnaryPlus,
	token.TILDE:    ast.UnaryBitwiseNot,
	token.SQRT:     ast.UnarySqrt,
	token.CBRT:     ast.UnaryCbrt,
	token.DEXCL:    ast.UnaryFactorial,
	token.AT:       ast.UnaryAbs,
	token.ATDASHAT: ast.UnaryAtDashAt,
	token.SHARP:    ast.UnaryHash,
	token.EXCL:     ast.UnaryBang,
}

// niladic functions that may be written without parentheses
var niladicFunctions = map[string]bool{
	"CURRENT_DATE":      true,
	"CURRENT_TIME":      true,
	"CURRENT_TIMESTAMP": true,
	"CURRENT_USER":      true,
	"CURRENT_ROLE":      true,
	"CURRENT_CATALOG":   true,
	"CURRENT_SCHEMA":    true,
	"SESSION_USER":      true,
	"LOCALTIME":         true,
	"LOCALTIMESTAMP":    true,
	"SYSDATE":           true,
}

// units accepted after an INTERVAL value
var intervalUnits = map[string]bool{
	"YEAR": true, "YEARS": true, "QUARTER": true, "QUARTERS": true,
	"MONTH": true, "MONTHS": true, "WEEK": true, "WEEKS": true,
	"DAY": true, "DAYS": true, "HOUR": true, "HOURS": true,
	"MINUTE": true, "MINUTES": true, "SECOND": true, "SECONDS": true,
	"MILLISECOND": true, "MILLISECONDS": true, "MICROSECOND": true, "MICROSECONDS": true,
	"NANOSECOND": true, "NANOSECONDS": true, "DECADE": true, "DECADES": true,
	"CENTURY": true, "CENTURIES": true, "MILLENNIUM": true, "MILLENNIA": true,
	"YEAR_MONTH": true, "DAY_HOUR": true, "DAY_MINUTE": true, "DAY_SECOND": true,
	"DAY_MICROSECOND": true, "HOUR_MINUTE": true, "HOUR_SECOND": true,
	"HOUR_MICROSECOND": true, "MINUTE_SECOND": true, "MINUTE_MICROSECOND": true,
	"SECOND_MICROSECOND": true,
}

// parsePrimary parses an expression start without dialect hooks.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.PeekToken()
	if op, ok := unaryOperators[tok.Type]; ok {
		p.index++
		operand, err := p.ParseSubexpr(spi.PrecedenceUnary)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: op, Expr: operand}, nil
	}

	switch tok.Type {
	case token.NUMBER:
		p.index++
		return &ast.ValueWithSpan{Value: ast.Number(tok.Value, tok.Long), Span: tok.Span}, nil
	case token.STRING:
		p.index++
		return &ast.ValueWithSpan{Value: stringValue(tok), Span: tok.Span}, nil
	case token.PLACEHOLDER:
		p.index++
		return &ast.ValueWithSpan{Value: ast.Placeholder(tok.Value), Span: tok.Span}, nil
	case token.COLON:
		// :name bind parameter
		name := p.PeekNthToken(1)
		if name.Type == token.WORD && name.Quote == 0 && name.Span.Start.Offset == tok.Span.End.Offset {
			p.index += 2
			return &ast.ValueWithSpan{Value: ast.Placeholder(":" + name.Value), Span: tok.Span.Union(name.Span)}, nil
		}
	case token.STAR:
		p.index++
		return &ast.Wildcard{Token: ast.Attach(tok)}, nil
	case token.LPAREN:
		return p.parseParenExpr()
	case token.LBRACKET:
		if p.dialect.BracketArrays {
			p.index++
			elems, err := p.parseArrayElems()
			if err != nil {
				return nil, err
			}
			return &ast.Array{Elems: elems}, nil
		}
	case token.LBRACE:
		return p.parseBraceExpr()
	case token.WORD:
		return p.parseWordExpr(tok)
	}
	return nil, p.Expected("an expression", tok)
}

// parseWordExpr handles expressions that start with a word.
func (p *Parser) parseWordExpr(tok token.TokenWithSpan) (ast.Expr, error) {
	if tok.Quote == 0 {
		expr, handled, err := p.parseKeywordExpr(tok)
		if err != nil || handled {
			return expr, err
		}
		next := p.PeekNthToken(1)
		if next.Type == token.STRING {
			if isTypedStringType(tok.Value) {
				return p.parseTypedString()
			}
			// MySQL charset introducer: _utf8mb4'abc'
			if strings.HasPrefix(tok.Value, "_") && p.dialect.HashComments && p.dialect.BackslashEscape {
				p.index += 2
				return &ast.IntroducedString{Introducer: tok.Value, Value: stringValue(next)}, nil
			}
		}
		if niladicFunctions[strings.ToUpper(tok.Value)] && next.Type != token.LPAREN && next.Type != token.DOT {
			p.index++
			return &ast.Function{Name: ast.NewObjectName(identFrom(tok))}, nil
		}
	}
	return p.parseNameExpr()
}

// parseKeywordExpr parses the keyword led special forms. handled is false
// when tok starts an ordinary name or call.
func (p *Parser) parseKeywordExpr(tok token.TokenWithSpan) (ast.Expr, bool, error) {
	d := p.dialect
	call := p.peekNthIs(1, token.LPAREN)
	var (
		expr ast.Expr
		err  error
	)
	switch tok.Keyword {
	case keyword.TRUE, keyword.FALSE:
		p.index++
		return &ast.ValueWithSpan{Value: ast.Boolean(tok.Keyword == keyword.TRUE), Span: tok.Span}, true, nil
	case keyword.NULL:
		p.index++
		return &ast.ValueWithSpan{Value: ast.Null(), Span: tok.Span}, true, nil
	case keyword.NOT:
		expr, err = p.parseNot()
	case keyword.CASE:
		expr, err = p.parseCase()
	case keyword.CAST, keyword.TRY_CAST, keyword.SAFE_CAST:
		if !call {
			return nil, false, nil
		}
		expr, err = p.parseCast()
	case keyword.CONVERT, keyword.TRY_CONVERT:
		if !call {
			return nil, false, nil
		}
		expr, err = p.parseConvert()
	case keyword.EXISTS:
		if !call {
			return nil, false, nil
		}
		p.index++
		expr, err = p.parseExists(false)
	case keyword.EXTRACT:
		if !call {
			return nil, false, nil
		}
		expr, err = p.parseExtract()
	case keyword.CEIL, keyword.FLOOR:
		if !call {
			return nil, false, nil
		}
		expr, err = p.parseCeilFloor()
	case keyword.POSITION:
		if !call {
			return nil, false, nil
		}
		return p.parsePosition()
	case keyword.SUBSTRING, keyword.SUBSTR:
		if !call {
			return nil, false, nil
		}
		expr, err = p.parseSubstring()
	case keyword.TRIM:
		if !call {
			return nil, false, nil
		}
		expr, err = p.parseTrim()
	case keyword.OVERLAY:
		if !call {
			return nil, false, nil
		}
		expr, err = p.parseOverlay()
	case keyword.INTERVAL:
		expr, err = p.parseInterval()
	case keyword.ARRAY:
		return p.parseArrayExpr()
	case keyword.STRUCT:
		if !d.StructLiteral || !(call || p.peekNthIs(1, token.LT)) {
			return nil, false, nil
		}
		expr, err = p.parseStruct()
	case keyword.ROW:
		if !call {
			return nil, false, nil
		}
		p.index += 2
		var exprs []ast.Expr
		if exprs, err = p.parseOptionalExprList(token.RPAREN); err == nil {
			expr = &ast.Tuple{Exprs: exprs, Row: true}
		}
	case keyword.MAP:
		if !p.peekNthIs(1, token.LBRACE) {
			return nil, false, nil
		}
		expr, err = dialect.ParseMapLiteral(p)
	case keyword.PRIOR:
		if !d.ConnectBy {
			return nil, false, nil
		}
		p.index++
		var operand ast.Expr
		if operand, err = p.ParseSubexpr(spi.PrecedenceUnary); err == nil {
			expr = &ast.Prior{Expr: operand}
		}
	case keyword.MATCH:
		if !d.MatchAgainst || !call {
			return nil, false, nil
		}
		expr, err = p.parseMatchAgainst()
	case keyword.LAMBDA:
		if !d.LambdaKeyword {
			return nil, false, nil
		}
		expr, err = p.parseLambdaKeyword()
	case keyword.XMLELEMENT, keyword.XMLFOREST, keyword.XMLPARSE, keyword.XMLSERIALIZE:
		if !call {
			return nil, false, nil
		}
		expr, err = p.parseXMLFunction(tok.Keyword)
	default:
		return nil, false, nil
	}
	if err != nil {
		return nil, true, err
	}
	return expr, true, nil
}

// isReservedWord reports whether kw can never stand for a column.
func (p *Parser) isReservedWord(kw keyword.Keyword) bool {
	if kw == keyword.NoKeyword {
		return false
	}
	d := p.dialect
	return d.IsReservedForIdentifier(kw) ||
		d.ReservedForColumnAlias().Contains(kw) && d.IsReservedForTableFactor(kw)
}

// parseNameExpr parses an identifier, a compound identifier, t.* or a
// function call.
func (p *Parser) parseNameExpr() (ast.Expr, error) {
	first := p.NextToken()
	if first.Quote == 0 && p.isReservedWord(first.Keyword) && !p.peekIs(token.LPAREN) {
		return nil, p.Expected("an expression", first)
	}
	parts := []ast.Ident{identFrom(first)}
	for p.peekIs(token.DOT) {
		next := p.PeekNthToken(1)
		if next.Type == token.STAR {
			p.index += 2
			return &ast.QualifiedWildcard{Name: ast.NewObjectName(parts...), Token: ast.Attach(next)}, nil
		}
		if next.Type != token.WORD {
			break
		}
		p.index += 2
		parts = append(parts, identFrom(next))
	}
	if p.peekIs(token.LPAREN) && !p.isOuterJoinMarker() {
		p.index++
		return p.parseFunction(ast.NewObjectName(parts...))
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return &ast.CompoundIdentifier{Parts: parts}, nil
}

func (p *Parser) isOuterJoinMarker() bool {
	return p.dialect.OuterJoinPlus && p.peekNthIs(1, token.PLUS) && p.peekNthIs(2, token.RPAREN)
}

// parseParenExpr parses a subquery, a nested expression or a tuple.
func (p *Parser) parseParenExpr() (ast.Expr, error) {
	p.index++
	if p.PeekKeyword(keyword.SELECT) || p.PeekKeyword(keyword.WITH) || p.PeekKeyword(keyword.VALUES) {
		return p.parseParenSubquery()
	}
	if p.peekIs(token.LPAREN) && p.isQueryStart() {
		// ((SELECT ...) UNION ...) or ((SELECT ...) + 1)
		start := p.index
		if sub, err := p.parseParenSubquery(); err == nil {
			return sub, nil
		}
		p.index = start
	}
	if p.ConsumeToken(token.RPAREN) {
		return &ast.Tuple{}, nil
	}
	first, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if !p.ConsumeToken(token.COMMA) {
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Nested{Expr: first}, nil
	}
	exprs := []ast.Expr{first}
	if !p.peekIs(token.RPAREN) {
		rest, err := p.ParseCommaSeparatedExprs()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, rest...)
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Tuple{Exprs: exprs}, nil
}

func (p *Parser) parseParenSubquery() (ast.Expr, error) {
	q, err := p.ParseQuery()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Subquery{Query: q}, nil
}

// parseBraceExpr parses ODBC escapes and DuckDB struct literals.
func (p *Parser) parseBraceExpr() (ast.Expr, error) {
	open := p.PeekToken()
	next := p.PeekNthToken(1)
	if next.Type == token.WORD && next.Quote == 0 {
		kinds := map[string]ast.TypeKind{"d": ast.TypeDate, "t": ast.TypeTime, "ts": ast.TypeTimestamp}
		word := strings.ToLower(next.Value)
		if kind, ok := kinds[word]; ok && p.peekNthIs(2, token.STRING) && p.peekNthIs(3, token.RBRACE) {
			lit := p.PeekNthToken(2)
			p.index += 4
			return &ast.TypedString{
				DataType:       &ast.TemporalType{Kind: kind},
				Value:          ast.ValueWithSpan{Value: stringValue(lit), Span: lit.Span},
				UsesOdbcSyntax: true,
			}, nil
		}
		if word == "fn" {
			p.index += 2
			name, err := p.ParseObjectName()
			if err != nil {
				return nil, err
			}
			if _, err := p.ExpectToken(token.LPAREN); err != nil {
				return nil, err
			}
			expr, err := p.parseFunction(name)
			if err != nil {
				return nil, err
			}
			if f, ok := expr.(*ast.Function); ok {
				f.UsesOdbcSyntax = true
			}
			if _, err := p.ExpectToken(token.RBRACE); err != nil {
				return nil, err
			}
			return expr, nil
		}
	}
	if dialect.IsDictionaryStart(p) {
		return dialect.ParseDictionary(p)
	}
	return nil, p.Expected("an expression", open)
}

// ---------- Keyword Forms ----------

func (p *Parser) parseNot() (ast.Expr, error) {
	p.index++
	if p.PeekKeyword(keyword.EXISTS) && p.peekNthIs(1, token.LPAREN) {
		p.index++
		return p.parseExists(true)
	}
	operand, err := p.ParseSubexpr(spi.PrecedenceNot)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOp{Op: ast.UnaryNot, Expr: operand}, nil
}

// parseExists parses (query) after EXISTS.
func (p *Parser) parseExists(negated bool) (ast.Expr, error) {
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	q, err := p.ParseQuery()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Exists{Subquery: q, Negated: negated}, nil
}

func (p *Parser) parseCase() (ast.Expr, error) {
	c := &ast.Case{CaseToken: ast.Attach(p.NextToken())}
	var err error
	if !p.PeekKeyword(keyword.WHEN) {
		if c.Operand, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	for p.ParseKeyword(keyword.WHEN) {
		var when ast.CaseWhen
		if when.Condition, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectKeyword(keyword.THEN); err != nil {
			return nil, err
		}
		if when.Result, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		c.Conditions = append(c.Conditions, when)
	}
	if len(c.Conditions) == 0 {
		return nil, p.Expected("WHEN", p.PeekToken())
	}
	if p.ParseKeyword(keyword.ELSE) {
		if c.ElseResult, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	end, err := p.ExpectKeyword(keyword.END)
	if err != nil {
		return nil, err
	}
	c.EndToken = ast.Attach(end)
	return c, nil
}

func (p *Parser) parseCast() (ast.Expr, error) {
	c := &ast.Cast{}
	switch p.NextToken().Keyword {
	case keyword.TRY_CAST:
		c.Kind = ast.TryCast
	case keyword.SAFE_CAST:
		c.Kind = ast.SafeCast
	}
	p.index++
	var err error
	if c.Expr, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.AS); err != nil {
		return nil, err
	}
	if c.DataType, err = p.ParseDataType(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.FORMAT) {
		if c.Format, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Parser) parseConvert() (ast.Expr, error) {
	c := &ast.Convert{IsTry: p.NextToken().Keyword == keyword.TRY_CONVERT}
	p.index++
	var err error
	if p.dialect.ConvertTypeFirst {
		c.TargetBeforeValue = true
		if c.DataType, err = p.ParseDataType(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.COMMA); err != nil {
			return nil, err
		}
		if c.Expr, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		for p.ConsumeToken(token.COMMA) {
			style, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			c.Styles = append(c.Styles, style)
		}
	} else {
		if c.Expr, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if p.ParseKeyword(keyword.USING) {
			if c.Charset, err = p.ParseObjectName(); err != nil {
				return nil, err
			}
		} else {
			if _, err := p.ExpectToken(token.COMMA); err != nil {
				return nil, err
			}
			if c.DataType, err = p.ParseDataType(); err != nil {
				return nil, err
			}
			if p.ParseKeywords(keyword.CHARACTER, keyword.SET) {
				if c.Charset, err = p.ParseObjectName(); err != nil {
					return nil, err
				}
			}
		}
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return c, nil
}

// parseDateTimeField parses an EXTRACT or CEIL ... TO unit.
func (p *Parser) parseDateTimeField() (ast.DateTimeField, error) {
	tok := p.NextToken()
	switch {
	case tok.Type == token.WORD && tok.Quote == 0:
		f := ast.DateTimeField{Name: strings.ToUpper(tok.Value)}
		// BigQuery WEEK(MONDAY)
		if p.peekIs(token.LPAREN) && p.peekNthIs(1, token.WORD) && p.peekNthIs(2, token.RPAREN) {
			f.Name += "(" + strings.ToUpper(p.PeekNthToken(1).Value) + ")"
			p.index += 3
		}
		return f, nil
	case tok.Type == token.WORD:
		id := identFrom(tok)
		return ast.DateTimeField{Ident: &id}, nil
	case tok.Type == token.STRING:
		id := ast.Ident{Value: tok.Value, QuoteStyle: '\'', Span: tok.Span}
		return ast.DateTimeField{Ident: &id}, nil
	}
	return ast.DateTimeField{}, p.Expected("date/time field", tok)
}

func (p *Parser) parseExtract() (ast.Expr, error) {
	p.index += 2
	field, err := p.parseDateTimeField()
	if err != nil {
		return nil, err
	}
	e := &ast.Extract{Field: field}
	if p.ConsumeToken(token.COMMA) {
		e.Comma = true
	} else if _, err := p.ExpectKeyword(keyword.FROM); err != nil {
		return nil, err
	}
	if e.Expr, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *Parser) parseCeilFloor() (ast.Expr, error) {
	c := &ast.CeilFloor{Floor: p.NextToken().Keyword == keyword.FLOOR}
	p.index++
	var err error
	if c.Expr, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	switch {
	case p.ParseKeyword(keyword.TO):
		field, err := p.parseDateTimeField()
		if err != nil {
			return nil, err
		}
		c.Field = &field
	case p.ConsumeToken(token.COMMA):
		if c.Scale, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return c, nil
}

// parsePosition parses POSITION(a IN b). Without IN the call is left to
// the ordinary function path.
func (p *Parser) parsePosition() (ast.Expr, bool, error) {
	start := p.index
	p.index += 2
	needle, err := p.ParseSubexpr(spi.PrecedenceIs)
	if err != nil || !p.ParseKeyword(keyword.IN) {
		p.index = start
		return nil, false, nil
	}
	haystack, err := p.ParseExpr()
	if err != nil {
		return nil, true, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, true, err
	}
	return &ast.Position{Expr: needle, In: haystack}, true, nil
}

func (p *Parser) parseSubstring() (ast.Expr, error) {
	s := &ast.Substring{Shorthand: p.NextToken().Keyword == keyword.SUBSTR}
	p.index++
	var err error
	if s.Expr, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	if p.ConsumeToken(token.COMMA) {
		s.Special = true
		if s.From, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if p.ConsumeToken(token.COMMA) {
			if s.For, err = p.ParseExpr(); err != nil {
				return nil, err
			}
		}
	} else {
		if p.ParseKeyword(keyword.FROM) {
			if s.From, err = p.ParseExpr(); err != nil {
				return nil, err
			}
		}
		if p.ParseKeyword(keyword.FOR) {
			if s.For, err = p.ParseExpr(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseTrim() (ast.Expr, error) {
	p.index += 2
	t := &ast.Trim{}
	if kw := p.ParseOneOfKeywords(keyword.BOTH, keyword.LEADING, keyword.TRAILING); kw != keyword.NoKeyword {
		t.Where = kw.String()
	}
	var err error
	if t.Where != "" && p.ParseKeyword(keyword.FROM) {
		if t.Expr, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	} else {
		first, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		switch {
		case p.ParseKeyword(keyword.FROM):
			t.What = first
			if t.Expr, err = p.ParseExpr(); err != nil {
				return nil, err
			}
		case t.Where != "":
			return nil, p.Expected("FROM", p.PeekToken())
		default:
			t.Expr = first
			if p.ConsumeToken(token.COMMA) {
				if t.Characters, err = p.ParseCommaSeparatedExprs(); err != nil {
					return nil, err
				}
			}
		}
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Parser) parseOverlay() (ast.Expr, error) {
	p.index += 2
	o := &ast.Overlay{}
	var err error
	if o.Expr, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.PLACING); err != nil {
		return nil, err
	}
	if o.What, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.FROM); err != nil {
		return nil, err
	}
	if o.From, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.FOR) {
		if o.For, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return o, nil
}

// parseInterval parses INTERVAL value [unit [(p)] [TO unit [(p)]]].
func (p *Parser) parseInterval() (ast.Expr, error) {
	p.index++
	iv := &ast.Interval{}
	var err error
	if iv.Value, err = p.parsePrefix(); err != nil {
		return nil, err
	}
	field, ok := p.parseIntervalUnit()
	if !ok {
		return iv, nil
	}
	iv.LeadingField = &field
	if p.peekIs(token.LPAREN) && p.peekNthIs(1, token.NUMBER) {
		p.index++
		prec, err := p.parseUint()
		if err != nil {
			return nil, err
		}
		iv.LeadingPrecision = &prec
		if p.ConsumeToken(token.COMMA) {
			frac, err := p.parseUint()
			if err != nil {
				return nil, err
			}
			iv.FractionalPrec = &frac
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	if p.PeekKeyword(keyword.TO) && intervalUnits[strings.ToUpper(p.PeekNthToken(1).Value)] {
		p.index++
		last, _ := p.parseIntervalUnit()
		iv.LastField = &last
		if last.Name == "SECOND" && p.peekIs(token.LPAREN) {
			p.index++
			frac, err := p.parseUint()
			if err != nil {
				return nil, err
			}
			iv.FractionalPrec = &frac
			if _, err := p.ExpectToken(token.RPAREN); err != nil {
				return nil, err
			}
		}
	}
	return iv, nil
}

func (p *Parser) parseIntervalUnit() (ast.DateTimeField, bool) {
	tok := p.PeekToken()
	if tok.Type != token.WORD || tok.Quote != 0 {
		return ast.DateTimeField{}, false
	}
	name := strings.ToUpper(tok.Value)
	if !intervalUnits[name] {
		return ast.DateTimeField{}, false
	}
	p.index++
	return ast.DateTimeField{Name: name}, true
}

// isTypedStringType reports whether name, followed by a string, makes a
// typed literal such as DATE '2024-01-01'.
func isTypedStringType(name string) bool {
	upper := strings.ToUpper(name)
	if _, ok := temporalTypes[upper]; ok {
		return true
	}
	if _, ok := simpleTypes[upper]; ok {
		return true
	}
	if _, ok := numericTypes[upper]; ok {
		return true
	}
	_, ok := binaryTypes[upper]
	return ok || upper == "CHAR" || upper == "VARCHAR" || upper == "TEXT"
}

func (p *Parser) parseTypedString() (ast.Expr, error) {
	dt, err := p.ParseDataType()
	if err != nil {
		return nil, err
	}
	lit := p.PeekToken()
	if lit.Type != token.STRING {
		return nil, p.Expected("literal string", lit)
	}
	p.index++
	return &ast.TypedString{DataType: dt, Value: ast.ValueWithSpan{Value: stringValue(lit), Span: lit.Span}}, nil
}

// parseArrayExpr parses ARRAY[...] and ARRAY(query). ARRAY(x, y) is left to
// the function path.
func (p *Parser) parseArrayExpr() (ast.Expr, bool, error) {
	switch {
	case p.peekNthIs(1, token.LBRACKET):
		p.index += 2
		elems, err := p.parseArrayElems()
		if err != nil {
			return nil, true, err
		}
		return &ast.Array{Elems: elems, Named: true}, true, nil
	case p.peekNthIs(1, token.LPAREN):
		next := p.PeekNthToken(2)
		if !next.IsKeyword(keyword.SELECT) && !next.IsKeyword(keyword.WITH) {
			return nil, false, nil
		}
		p.index += 2
		q, err := p.ParseQuery()
		if err != nil {
			return nil, true, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, true, err
		}
		return &ast.ArraySubquery{Query: q}, true, nil
	}
	return nil, false, nil
}

// parseArrayElems parses array elements up to and including ']'. Inner
// bracket lists nest.
func (p *Parser) parseArrayElems() ([]ast.Expr, error) {
	var elems []ast.Expr
	for !p.peekIs(token.RBRACKET) {
		var (
			elem ast.Expr
			err  error
		)
		if p.ConsumeToken(token.LBRACKET) {
			var inner []ast.Expr
			if inner, err = p.parseArrayElems(); err == nil {
				elem = &ast.Array{Elems: inner}
			}
		} else {
			elem, err = p.ParseExpr()
		}
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if !p.ConsumeToken(token.COMMA) {
			break
		}
	}
	if _, err := p.ExpectToken(token.RBRACKET); err != nil {
		return nil, err
	}
	return elems, nil
}

// parseStruct parses STRUCT(v [AS name], ...) and STRUCT<fields>(values).
func (p *Parser) parseStruct() (ast.Expr, error) {
	p.index++
	s := &ast.Struct{}
	if p.ConsumeToken(token.LT) {
		fields, err := p.parseStructFields(token.GT)
		if err != nil {
			return nil, err
		}
		s.Fields = fields
	}
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	for !p.peekIs(token.RPAREN) {
		v, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if p.ParseKeyword(keyword.AS) {
			name, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			v = &ast.Named{Expr: v, Name: name}
		}
		s.Values = append(s.Values, v)
		if !p.ConsumeToken(token.COMMA) {
			break
		}
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return s, nil
}

// parseMatchAgainst parses MySQL full text search.
func (p *Parser) parseMatchAgainst() (ast.Expr, error) {
	p.index += 2
	cols, err := p.parseObjectNames()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.AGAINST); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	m := &ast.MatchAgainst{Columns: cols, Value: val}
	switch {
	case p.ParseKeywords(keyword.IN, keyword.NATURAL, keyword.LANGUAGE, keyword.MODE, keyword.WITH, keyword.QUERY, keyword.EXPANSION):
		m.Modifier = "IN NATURAL LANGUAGE MODE WITH QUERY EXPANSION"
	case p.ParseKeywords(keyword.IN, keyword.NATURAL, keyword.LANGUAGE, keyword.MODE):
		m.Modifier = "IN NATURAL LANGUAGE MODE"
	case p.ParseKeywords(keyword.IN, keyword.BOOLEAN, keyword.MODE):
		m.Modifier = "IN BOOLEAN MODE"
	case p.ParseKeywords(keyword.WITH, keyword.QUERY, keyword.EXPANSION):
		m.Modifier = "WITH QUERY EXPANSION"
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return m, nil
}

// parseLambdaKeyword parses LAMBDA x, y: body.
func (p *Parser) parseLambdaKeyword() (ast.Expr, error) {
	p.index++
	params, err := p.ParseIdentifiers()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.COLON); err != nil {
		return nil, err
	}
	body, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Params: ast.Many(params), Body: body, Keyword: true}, nil
}

// tryLambda parses x -> body or (x, y) -> body when the tokens ahead spell
// one.
func (p *Parser) tryLambda() (ast.Expr, bool, error) {
	var params ast.OneOrManyWithParens[ast.Ident]
	switch {
	case p.peekIs(token.WORD) && p.peekNthIs(1, token.ARROW):
		id, _ := p.ParseIdentifier()
		params = ast.One(id)
	case p.peekIs(token.LPAREN):
		n := 1
		for p.peekNthIs(n, token.WORD) {
			n++
			if !p.peekNthIs(n, token.COMMA) {
				break
			}
			n++
		}
		if !p.peekNthIs(n, token.RPAREN) || !p.peekNthIs(n+1, token.ARROW) || n == 1 {
			return nil, false, nil
		}
		p.index++
		ids, err := p.ParseIdentifiers()
		if err != nil {
			return nil, true, err
		}
		p.index++
		params = ast.Many(ids)
	default:
		return nil, false, nil
	}
	p.index++
	body, err := p.ParseExpr()
	if err != nil {
		return nil, true, err
	}
	return &ast.Lambda{Params: params, Body: body}, true, nil
}

// parseXMLFunction parses the SQL/XML constructors.
func (p *Parser) parseXMLFunction(kw keyword.Keyword) (ast.Expr, error) {
	p.index += 2
	var (
		expr ast.Expr
		err  error
	)
	switch kw {
	case keyword.XMLELEMENT:
		expr, err = p.parseXMLElement()
	case keyword.XMLFOREST:
		var items []ast.XMLAttribute
		if items, err = parseCommaSeparated(p, p.parseXMLAttribute); err == nil {
			expr = &ast.XMLForest{Items: items}
		}
	case keyword.XMLPARSE, keyword.XMLSERIALIZE:
		doc, kerr := p.expectOneOfKeywords(keyword.DOCUMENT, keyword.CONTENT)
		if kerr != nil {
			return nil, kerr
		}
		var value ast.Expr
		if value, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if kw == keyword.XMLPARSE {
			expr = &ast.XMLParse{Document: doc == keyword.DOCUMENT, Expr: value}
			break
		}
		if _, err = p.ExpectKeyword(keyword.AS); err != nil {
			return nil, err
		}
		var dt ast.DataType
		if dt, err = p.ParseDataType(); err == nil {
			expr = &ast.XMLSerialize{Document: doc == keyword.DOCUMENT, Expr: value, DataType: dt}
		}
	}
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseXMLElement() (ast.Expr, error) {
	if _, err := p.ExpectKeyword(keyword.NAME); err != nil {
		return nil, err
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	el := &ast.XMLElement{Name: name}
	for p.ConsumeToken(token.COMMA) {
		if p.PeekKeyword(keyword.XMLATTRIBUTES) && p.peekNthIs(1, token.LPAREN) && el.Attributes == nil && el.Content == nil {
			p.index += 2
			if el.Attributes, err = parseCommaSeparated(p, p.parseXMLAttribute); err != nil {
				return nil, err
			}
			if _, err := p.ExpectToken(token.RPAREN); err != nil {
				return nil, err
			}
			continue
		}
		content, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		el.Content = append(el.Content, content)
	}
	return el, nil
}

func (p *Parser) parseXMLAttribute() (ast.XMLAttribute, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return ast.XMLAttribute{}, err
	}
	attr := ast.XMLAttribute{Expr: expr}
	if p.ParseKeyword(keyword.AS) {
		alias, err := p.ParseIdentifier()
		if err != nil {
			return ast.XMLAttribute{}, err
		}
		attr.Alias = &alias
	}
	return attr, nil
}
