package parser

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// Expression precedence parsing using a Pratt parser with dialect-aware
// precedence.
//
// Precedence levels (from spi package, higher binds tighter):
//
//	PrecedenceOr         = 5   OR
//	PrecedenceXor        = 8   XOR
//	PrecedenceAnd        = 10  AND
//	PrecedenceNot        = 15  NOT
//	PrecedenceComparison = 20  =, <>, <, >, <=, >=
//	PrecedenceIs         = 25  IS, IN, BETWEEN, LIKE and friends
//	PrecedencePGOther    = 30  ||, JSON and regex operators
//	PrecedencePipe       = 32  |
//	PrecedenceAmpersand  = 35  &
//	PrecedenceShift      = 40  <<, >>
//	PrecedenceAddition   = 45  +, -
//	PrecedenceMultiply   = 50  *, /, %
//	PrecedenceCaret      = 55  ^
//	PrecedenceAtTimeZone = 58  AT TIME ZONE
//	PrecedenceCollate    = 59  COLLATE
//	PrecedenceUnary      = 60  -, +, ~
//	PrecedencePostfix    = 70  ::, [], .field
//
// The dialect is consulted first at every step: NextPrecedence may claim
// the next token, ParsePrefix and ParseInfix may build the node. Anything a
// dialect declines falls through to the defaults below. Operators of equal
// precedence associate to the left.

// ParseExpr parses a complete expression.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	return p.ParseSubexpr(spi.PrecedenceNone)
}

// ParseSubexpr parses an expression whose operators all bind tighter than
// precedence.
func (p *Parser) ParseSubexpr(precedence int) (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	expr, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		next := p.nextPrecedence()
		if next <= precedence {
			return expr, nil
		}
		if expr, err = p.parseInfix(expr, next); err != nil {
			return nil, err
		}
	}
}

// parsePrefix gives the dialect the first chance at the expression start.
func (p *Parser) parsePrefix() (ast.Expr, error) {
	start := p.index
	expr, handled, err := p.dialect.ParsePrefix(p)
	if err != nil {
		return nil, err
	}
	if handled {
		return expr, nil
	}
	p.index = start
	return p.parsePrimary()
}

// nextPrecedence returns the binding power of the next token as an infix or
// postfix operator, 0 when it cannot continue an expression.
func (p *Parser) nextPrecedence() int {
	if prec, ok := p.dialect.NextPrecedence(p); ok {
		return prec
	}
	return p.defaultPrecedence()
}

func (p *Parser) defaultPrecedence() int {
	tok := p.PeekToken()
	d := p.dialect
	switch tok.Type {
	case token.WORD:
		if tok.Quote != 0 {
			return spi.PrecedenceNone
		}
		switch tok.Keyword {
		case keyword.OR:
			return spi.PrecedenceOr
		case keyword.AND:
			return spi.PrecedenceAnd
		case keyword.NOT:
			if p.isNegatableOperator(p.PeekNthToken(1)) {
				return spi.PrecedenceIs
			}
		case keyword.IS, keyword.IN, keyword.BETWEEN, keyword.LIKE, keyword.SIMILAR,
			keyword.ISNULL, keyword.NOTNULL:
			return spi.PrecedenceIs
		case keyword.ILIKE:
			if d.ILike {
				return spi.PrecedenceIs
			}
		case keyword.RLIKE, keyword.REGEXP:
			if d.RLike {
				return spi.PrecedenceIs
			}
		case keyword.AT:
			if p.PeekNthToken(1).IsKeyword(keyword.TIME) && p.PeekNthToken(2).IsKeyword(keyword.ZONE) {
				return spi.PrecedenceAtTimeZone
			}
		case keyword.COLLATE:
			return spi.PrecedenceCollate
		}
		return spi.PrecedenceNone
	case token.EQ, token.DEQ, token.NE, token.LT, token.GT, token.LE, token.GE,
		token.SPACESHIP, token.NOTLT, token.NOTGT:
		return spi.PrecedenceComparison
	case token.PLUS, token.MINUS:
		return spi.PrecedenceAddition
	case token.STAR, token.SLASH, token.PERCENT, token.DIVINT:
		return spi.PrecedenceMultiply
	case token.PIPE:
		return spi.PrecedencePipe
	case token.AMPERSAND:
		return spi.PrecedenceAmpersand
	case token.SHL, token.SHR:
		return spi.PrecedenceShift
	case token.CARET:
		return spi.PrecedenceCaret
	case token.DPIPE, token.SHARP, token.TILDE, token.CUSTOMOP:
		return spi.PrecedencePGOther
	case token.DCOLON:
		if d.DoubleColonCast {
			return spi.PrecedencePostfix
		}
	case token.LBRACKET:
		return spi.PrecedencePostfix
	case token.DOT:
		if p.peekNthIs(1, token.WORD) {
			return spi.PrecedencePostfix
		}
	case token.LPAREN:
		if d.OuterJoinPlus && p.peekNthIs(1, token.PLUS) && p.peekNthIs(2, token.RPAREN) {
			return spi.PrecedencePostfix
		}
	case token.PLACEHOLDER:
		if tok.Value == "?" && d.IsCustomOperatorPart('?') {
			return spi.PrecedencePGOther
		}
	default:
		if _, ok := pgBinaryOperators[tok.Type]; ok {
			return spi.PrecedencePGOther
		}
	}
	return spi.PrecedenceNone
}

// isNegatableOperator reports whether tok may follow NOT in infix position.
func (p *Parser) isNegatableOperator(tok token.TokenWithSpan) bool {
	switch {
	case tok.IsKeyword(keyword.IN), tok.IsKeyword(keyword.BETWEEN),
		tok.IsKeyword(keyword.LIKE), tok.IsKeyword(keyword.SIMILAR):
		return true
	case tok.IsKeyword(keyword.ILIKE):
		return p.dialect.ILike
	case tok.IsKeyword(keyword.RLIKE), tok.IsKeyword(keyword.REGEXP):
		return p.dialect.RLike
	}
	return false
}

// binaryOperators maps operator tokens onto their AST operator.
var binaryOperators = map[token.TokenType]ast.BinaryOperator{
	token.EQ:        ast.OpEq,
	token.DEQ:       ast.OpDoubleEq,
	token.LT:        ast.OpLt,
	token.GT:        ast.OpGt,
	token.LE:        ast.OpLtEq,
	token.GE:        ast.OpGtEq,
	token.SPACESHIP: ast.OpSpaceship,
	token.NOTLT:     ast.OpNotLt,
	token.NOTGT:     ast.OpNotGt,
	token.PLUS:      ast.OpPlus,
	token.MINUS:     ast.OpMinus,
	token.STAR:      ast.OpMultiply,
	token.SLASH:     ast.OpDivide,
	token.PERCENT:   ast.OpModulo,
	token.DIVINT:    ast.OpDuckIntDiv,
	token.DPIPE:     ast.OpStringConcat,
	token.PIPE:      ast.OpBitwiseOr,
	token.AMPERSAND: ast.OpBitwiseAnd,
	token.CARET:     ast.OpBitwiseXor,
	token.SHL:       ast.OpShiftLeft,
	token.SHR:       ast.OpShiftRight,
	token.SHARP:     ast.OpPGBitwiseXor,
	token.TILDE:     ast.OpRegexMatch,
}

// pgBinaryOperators are the JSON, containment and pattern operators.
var pgBinaryOperators = map[token.TokenType]ast.BinaryOperator{
	token.ARROW:         ast.OpArrow,
	token.LONGARROW:     ast.OpLongArrow,
	token.HASHARROW:     ast.OpHashArrow,
	token.HASHLONGARROW: ast.OpHashLongArrow,
	token.ATARROW:       ast.OpAtArrow,
	token.ARROWAT:       ast.OpArrowAt,
	token.HASHMINUS:     ast.OpHashMinus,
	token.ATQUESTION:    ast.OpAtQuestion,
	token.ATAT:          ast.OpAtAt,
	token.QUESTIONAND:   ast.OpQuestionAnd,
	token.QUESTIONPIPE:  ast.OpQuestionPipe,
	token.OVERLAP:       ast.OpOverlap,
	token.CARETAT:       ast.OpCaretAt,
	token.TILDESTAR:     ast.OpRegexIMatch,
	token.NTILDE:        ast.OpRegexNotMatch,
	token.NTILDESTAR:    ast.OpRegexNotIM,
	token.DTILDE:        ast.OpLikeMatch,
	token.DTILDESTAR:    ast.OpILikeMatch,
	token.NDTILDE:       ast.OpNotLikeMatch,
	token.NDTILDESTAR:   ast.OpNotILikeMatch,
}

func binaryOperator(tok token.TokenWithSpan) (ast.BinaryOperator, bool) {
	if tok.Type == token.NE {
		if tok.Value == "!=" {
			return ast.OpBangNotEq, true
		}
		return ast.OpNotEq, true
	}
	if tok.Type == token.CUSTOMOP {
		return ast.BinaryOperator(tok.Value), true
	}
	if op, ok := binaryOperators[tok.Type]; ok {
		return op, true
	}
	op, ok := pgBinaryOperators[tok.Type]
	return op, ok
}

func isComparison(op ast.BinaryOperator) bool {
	switch op {
	case ast.OpEq, ast.OpDoubleEq, ast.OpNotEq, ast.OpBangNotEq, ast.OpLt, ast.OpGt,
		ast.OpLtEq, ast.OpGtEq, ast.OpSpaceship:
		return true
	}
	return false
}

// parseInfix continues left with the operator at the current token.
func (p *Parser) parseInfix(left ast.Expr, prec int) (ast.Expr, error) {
	start := p.index
	expr, handled, err := p.dialect.ParseInfix(p, left, prec)
	if err != nil {
		return nil, err
	}
	if handled {
		return expr, nil
	}
	p.index = start

	tok := p.NextToken()
	if op, ok := binaryOperator(tok); ok {
		if isComparison(op) && p.peekOneOf(keyword.ANY, keyword.ALL, keyword.SOME) && p.peekNthIs(1, token.LPAREN) {
			return p.parseQuantified(left, op, p.NextToken().Keyword)
		}
		right, err := p.ParseSubexpr(prec)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Left: left, Op: op, Right: right}, nil
	}

	switch tok.Type {
	case token.WORD:
		return p.parseKeywordInfix(left, tok, prec)
	case token.DCOLON:
		dt, err := p.ParseDataType()
		if err != nil {
			return nil, err
		}
		return &ast.Cast{Kind: ast.DoubleColon, Expr: left, DataType: dt}, nil
	case token.LBRACKET:
		sub, err := p.parseSubscript()
		if err != nil {
			return nil, err
		}
		return appendAccess(left, ast.AccessExpr{Subscript: sub}), nil
	case token.DOT:
		field, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return appendAccess(left, ast.AccessExpr{Dot: field}), nil
	case token.LPAREN:
		p.NextToken()
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.OuterJoin{Expr: left}, nil
	case token.PLACEHOLDER:
		right, err := p.ParseSubexpr(prec)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Left: left, Op: ast.OpQuestion, Right: right}, nil
	}
	return nil, p.Expected("an operator", tok)
}

func (p *Parser) parseKeywordInfix(left ast.Expr, tok token.TokenWithSpan, prec int) (ast.Expr, error) {
	switch tok.Keyword {
	case keyword.OR, keyword.AND:
		right, err := p.ParseSubexpr(prec)
		if err != nil {
			return nil, err
		}
		op := ast.OpAnd
		if tok.Keyword == keyword.OR {
			op = ast.OpOr
		}
		return &ast.BinaryOp{Left: left, Op: op, Right: right}, nil
	case keyword.IS:
		return p.parseIs(left)
	case keyword.ISNULL:
		return &ast.Is{Expr: left, Kind: ast.IsNullPostfix}, nil
	case keyword.NOTNULL:
		return &ast.Is{Expr: left, Kind: ast.IsNotNullPostfix}, nil
	case keyword.NOT:
		return p.parseNegatable(left, p.NextToken(), true)
	case keyword.AT:
		if err := p.ExpectKeywords(keyword.TIME, keyword.ZONE); err != nil {
			return nil, err
		}
		tz, err := p.ParseSubexpr(spi.PrecedenceAtTimeZone)
		if err != nil {
			return nil, err
		}
		return &ast.AtTimeZone{Timestamp: left, TimeZone: tz}, nil
	case keyword.COLLATE:
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		return &ast.Collate{Expr: left, Collation: name}, nil
	}
	return p.parseNegatable(left, tok, false)
}

// parseNegatable parses the operators that accept a leading NOT. tok is the
// operator keyword, already consumed.
func (p *Parser) parseNegatable(left ast.Expr, tok token.TokenWithSpan, negated bool) (ast.Expr, error) {
	switch {
	case tok.IsKeyword(keyword.IN):
		return p.parseIn(left, negated)
	case tok.IsKeyword(keyword.BETWEEN):
		return p.parseBetween(left, negated)
	case tok.IsKeyword(keyword.LIKE):
		return p.parseLike(left, ast.LikeLike, negated)
	case tok.IsKeyword(keyword.ILIKE):
		return p.parseLike(left, ast.LikeILike, negated)
	case tok.IsKeyword(keyword.RLIKE):
		return p.parseLike(left, ast.LikeRLike, negated)
	case tok.IsKeyword(keyword.REGEXP):
		return p.parseLike(left, ast.LikeRegexp, negated)
	case tok.IsKeyword(keyword.SIMILAR):
		if _, err := p.ExpectKeyword(keyword.TO); err != nil {
			return nil, err
		}
		return p.parseLike(left, ast.LikeSimilarTo, negated)
	}
	return nil, p.Expected("an operator", tok)
}

// parseIs parses everything after IS.
func (p *Parser) parseIs(left ast.Expr) (ast.Expr, error) {
	is := &ast.Is{Expr: left, Negated: p.ParseKeyword(keyword.NOT)}
	tok := p.NextToken()
	var err error
	switch {
	case tok.IsKeyword(keyword.TRUE):
		is.Kind = ast.IsTrue
	case tok.IsKeyword(keyword.FALSE):
		is.Kind = ast.IsFalse
	case tok.IsKeyword(keyword.NULL):
		is.Kind = ast.IsNull
	case tok.IsKeyword(keyword.UNKNOWN):
		is.Kind = ast.IsUnknown
	case tok.IsKeyword(keyword.DOCUMENT):
		is.Kind = ast.IsDocument
	case tok.IsKeyword(keyword.CONTENT):
		is.Kind = ast.IsContent
	case tok.IsKeyword(keyword.DISTINCT):
		if _, err = p.ExpectKeyword(keyword.FROM); err != nil {
			return nil, err
		}
		is.Kind = ast.IsDistinctFrom
		is.Right, err = p.ParseSubexpr(spi.PrecedenceIs)
	case tok.IsKeyword(keyword.JSON):
		is.Kind = ast.IsJSON
		if kw := p.ParseOneOfKeywords(keyword.VALUE, keyword.ARRAY, keyword.OBJECT, keyword.SCALAR); kw != keyword.NoKeyword {
			is.Form = kw.String()
		}
		switch {
		case p.ParseKeywords(keyword.WITH, keyword.UNIQUE):
			is.Unique = "WITH UNIQUE"
		case p.ParseKeywords(keyword.WITHOUT, keyword.UNIQUE):
			is.Unique = "WITHOUT UNIQUE"
		}
		if is.Unique != "" && p.ParseKeyword(keyword.KEYS) {
			is.Unique += " KEYS"
		}
	case tok.IsKeyword(keyword.NORMALIZED):
		is.Kind = ast.IsNormalized
	case tok.IsKeyword(keyword.NFC), tok.IsKeyword(keyword.NFD), tok.IsKeyword(keyword.NFKC), tok.IsKeyword(keyword.NFKD):
		if _, err = p.ExpectKeyword(keyword.NORMALIZED); err != nil {
			return nil, err
		}
		is.Kind = ast.IsNormalized
		is.Form = tok.Keyword.String()
	case tok.IsKeyword(keyword.LABELED):
		is.Kind = ast.IsLabeled
		is.Right, err = p.ParseSubexpr(spi.PrecedenceIs)
	case tok.IsKeyword(keyword.SOURCE), tok.IsKeyword(keyword.DESTINATION):
		if _, err = p.ExpectKeyword(keyword.OF); err != nil {
			return nil, err
		}
		is.Kind = ast.IsSourceOf
		if tok.IsKeyword(keyword.DESTINATION) {
			is.Kind = ast.IsDestinationOf
		}
		is.Right, err = p.ParseSubexpr(spi.PrecedenceIs)
	case tok.IsKeyword(keyword.SAME):
		if _, err = p.ExpectKeyword(keyword.AS); err != nil {
			return nil, err
		}
		is.Kind = ast.IsSameAs
		is.Right, err = p.ParseSubexpr(spi.PrecedenceIs)
	default:
		return nil, p.Expected("[NOT] NULL | TRUE | FALSE | DISTINCT FROM | UNKNOWN | JSON after IS", tok)
	}
	if err != nil {
		return nil, err
	}
	return is, nil
}

// parseIn parses the right side of [NOT] IN.
func (p *Parser) parseIn(left ast.Expr, negated bool) (ast.Expr, error) {
	if p.ParseKeyword(keyword.UNNEST) {
		if _, err := p.ExpectToken(token.LPAREN); err != nil {
			return nil, err
		}
		arr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.InUnnest{Expr: left, Array: arr, Negated: negated}, nil
	}
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	if p.isQueryStart() {
		q, err := p.ParseQuery()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.InSubquery{Expr: left, Subquery: q, Negated: negated}, nil
	}
	list, err := p.parseOptionalExprList(token.RPAREN)
	if err != nil {
		return nil, err
	}
	return &ast.InList{Expr: left, List: list, Negated: negated}, nil
}

// parseBetween parses low AND high after [NOT] BETWEEN.
func (p *Parser) parseBetween(left ast.Expr, negated bool) (ast.Expr, error) {
	b := &ast.Between{Expr: left, Negated: negated}
	if kw := p.ParseOneOfKeywords(keyword.SYMMETRIC, keyword.ASYMMETRIC); kw != keyword.NoKeyword {
		b.Modifier = kw.String()
	}
	var err error
	if b.Low, err = p.ParseSubexpr(spi.PrecedenceIs); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.AND); err != nil {
		return nil, err
	}
	if b.High, err = p.ParseSubexpr(spi.PrecedenceIs); err != nil {
		return nil, err
	}
	return b, nil
}

// parseLike parses the pattern of a LIKE-family operator, including the
// quantified LIKE ANY (...) form.
func (p *Parser) parseLike(left ast.Expr, kind ast.LikeKind, negated bool) (ast.Expr, error) {
	q := p.ParseOneOfKeywords(keyword.ANY, keyword.ALL, keyword.SOME)
	if q == keyword.NoKeyword {
		return dialect.ParseLikeVariant(p, left, kind, negated)
	}
	list, err := p.parseParenExprs()
	if err != nil {
		return nil, err
	}
	like := &ast.Like{Kind: kind, Negated: negated, Expr: left, Quantifier: q.String(), Pattern: &ast.Tuple{Exprs: list}}
	if p.ParseKeyword(keyword.ESCAPE) {
		if like.Escape, err = p.ParseSubexpr(spi.PrecedenceIs); err != nil {
			return nil, err
		}
	}
	return like, nil
}

// parseQuantified parses the parenthesised operand of op ANY/ALL/SOME.
func (p *Parser) parseQuantified(left ast.Expr, op ast.BinaryOperator, q keyword.Keyword) (ast.Expr, error) {
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	var right ast.Expr
	if p.isQueryStart() {
		query, err := p.ParseQuery()
		if err != nil {
			return nil, err
		}
		right = &ast.Subquery{Query: query}
	} else {
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		right = expr
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Quantified{Left: left, Op: op, Quantifier: q.String(), Right: right}, nil
}

// parseSubscript parses the inside of [...]: an index or a slice
// lo:hi[:stride], any bound optional. The '[' has been consumed.
func (p *Parser) parseSubscript() (*ast.Subscript, error) {
	sub := &ast.Subscript{}
	var lower ast.Expr
	if !p.peekIs(token.COLON) {
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		lower = expr
	}
	if !p.ConsumeToken(token.COLON) {
		if lower == nil {
			return nil, p.Expected("an index", p.PeekToken())
		}
		sub.Index = lower
		if _, err := p.ExpectToken(token.RBRACKET); err != nil {
			return nil, err
		}
		return sub, nil
	}
	sub.Slice = true
	sub.Lower = lower
	var err error
	if !p.peekIs(token.RBRACKET) && !p.peekIs(token.COLON) {
		if sub.Upper, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	if p.ConsumeToken(token.COLON) && !p.peekIs(token.RBRACKET) {
		if sub.Stride, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.ExpectToken(token.RBRACKET); err != nil {
		return nil, err
	}
	return sub, nil
}

// appendAccess extends an access chain, starting one when left is not
// already a chain.
func appendAccess(left ast.Expr, access ast.AccessExpr) ast.Expr {
	if cfa, ok := left.(*ast.CompoundFieldAccess); ok {
		cfa.Chain = append(cfa.Chain, access)
		return cfa
	}
	return &ast.CompoundFieldAccess{Root: left, Chain: []ast.AccessExpr{access}}
}

// isQueryStart reports whether the next token opens a query.
func (p *Parser) isQueryStart() bool {
	tok := p.PeekToken()
	switch {
	case tok.IsKeyword(keyword.SELECT), tok.IsKeyword(keyword.WITH), tok.IsKeyword(keyword.VALUES):
		return true
	case tok.IsKeyword(keyword.FROM):
		return p.dialect.FromFirstSelect
	case tok.Type == token.LPAREN:
		// ((SELECT ...) UNION ...)
		n := 1
		for p.PeekNthToken(n).Type == token.LPAREN {
			n++
		}
		next := p.PeekNthToken(n)
		return next.IsKeyword(keyword.SELECT) || next.IsKeyword(keyword.WITH)
	}
	return false
}
