package parser

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// Function call parsing.
//
// Grammar:
//
//	call    → name args [args] [WITHIN GROUP '(' ORDER BY ... ')']
//	          [FILTER '(' WHERE expr ')'] [IGNORE|RESPECT NULLS] [OVER window]
//	args    → '(' [DISTINCT|ALL] [arg {',' arg}] {clause} ')' | '(' query ')'
//	arg     → [name (=> | := | = | :)] expr | expr VALUE expr | lambda
//	clause  → ORDER BY ... | LIMIT expr | IGNORE NULLS | RESPECT NULLS
//	        | SEPARATOR 'sep' | ON OVERFLOW ... | HAVING MIN|MAX expr
//	        | ABSENT ON NULL | NULL ON NULL

// parseFunction parses a call whose '(' has been consumed.
func (p *Parser) parseFunction(name ast.ObjectName) (ast.Expr, error) {
	f := &ast.Function{Name: name}
	args, err := p.parseFunctionArgs()
	if err != nil {
		return nil, err
	}
	// ClickHouse parametric aggregates: quantile(0.5)(x)
	if p.dialect.ParametricAggregates && p.peekIs(token.LPAREN) {
		p.index++
		f.Parameters = args
		if args, err = p.parseFunctionArgs(); err != nil {
			return nil, err
		}
	}
	f.Args = args

	if p.dialect.WithinGroup && p.peekKeywords(keyword.WITHIN, keyword.GROUP) {
		p.index += 2
		if _, err := p.ExpectToken(token.LPAREN); err != nil {
			return nil, err
		}
		if err := p.ExpectKeywords(keyword.ORDER, keyword.BY); err != nil {
			return nil, err
		}
		if f.WithinGroup, err = parseCommaSeparated(p, p.parseOrderByExpr); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	if p.dialect.FilterDuringAggregation && p.PeekKeyword(keyword.FILTER) && p.peekNthIs(1, token.LPAREN) {
		p.index += 2
		if _, err := p.ExpectKeyword(keyword.WHERE); err != nil {
			return nil, err
		}
		if f.Filter, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	f.NullTreatment = p.parseNullTreatment()
	if p.ParseKeyword(keyword.OVER) {
		if f.Over, err = p.parseWindowType(); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (p *Parser) parseNullTreatment() string {
	switch {
	case p.ParseKeywords(keyword.IGNORE, keyword.NULLS):
		return "IGNORE NULLS"
	case p.ParseKeywords(keyword.RESPECT, keyword.NULLS):
		return "RESPECT NULLS"
	}
	return ""
}

// parseFunctionArgs parses an argument list whose '(' has been consumed,
// through the closing ')'.
func (p *Parser) parseFunctionArgs() (ast.FunctionArguments, error) {
	args := ast.FunctionArguments{Kind: ast.ArgsList}
	if p.ConsumeToken(token.RPAREN) {
		return args, nil
	}
	if p.PeekKeyword(keyword.SELECT) || p.PeekKeyword(keyword.WITH) {
		q, err := p.ParseQuery()
		if err != nil {
			return args, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return args, err
		}
		return ast.FunctionArguments{Kind: ast.ArgsSubquery, Subquery: q}, nil
	}
	if kw := p.ParseOneOfKeywords(keyword.DISTINCT, keyword.ALL); kw != keyword.NoKeyword {
		args.Duplicate = kw.String()
	}
	if !p.peekIs(token.RPAREN) && !p.isArgClauseStart() {
		list, err := parseCommaSeparated(p, p.parseFunctionArg)
		if err != nil {
			return args, err
		}
		args.Args = list
	}
	for {
		clause, ok, err := p.parseArgClause()
		if err != nil {
			return args, err
		}
		if !ok {
			break
		}
		args.Clauses = append(args.Clauses, clause)
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return args, err
	}
	return args, nil
}

func (p *Parser) isArgClauseStart() bool {
	switch {
	case p.peekKeywords(keyword.ORDER, keyword.BY),
		p.peekKeywords(keyword.IGNORE, keyword.NULLS),
		p.peekKeywords(keyword.RESPECT, keyword.NULLS),
		p.peekKeywords(keyword.ABSENT, keyword.ON, keyword.NULL),
		p.peekKeywords(keyword.NULL, keyword.ON, keyword.NULL),
		p.peekKeywords(keyword.ON, keyword.OVERFLOW):
		return true
	case p.PeekKeyword(keyword.LIMIT), p.PeekKeyword(keyword.SEPARATOR):
		return true
	}
	return false
}

// parseArgClause parses one trailing clause inside an argument list.
func (p *Parser) parseArgClause() (ast.FunctionArgumentClause, bool, error) {
	var c ast.FunctionArgumentClause
	var err error
	switch {
	case p.ParseKeywords(keyword.ORDER, keyword.BY):
		c.OrderBy, err = parseCommaSeparated(p, p.parseOrderByExpr)
	case p.ParseKeyword(keyword.LIMIT):
		c.Limit, err = p.ParseExpr()
	case p.peekKeywords(keyword.IGNORE, keyword.NULLS) || p.peekKeywords(keyword.RESPECT, keyword.NULLS):
		c.NullTreatment = p.parseNullTreatment()
	case p.ParseKeyword(keyword.SEPARATOR):
		var sep ast.Value
		if sep, err = p.parseValue(); err == nil {
			c.Separator = &sep
		}
	case p.ParseKeywords(keyword.ON, keyword.OVERFLOW):
		c.OnOverflow, err = p.parseOnOverflow()
	case p.PeekKeyword(keyword.HAVING) && (p.peekNthIs(1, token.WORD)):
		p.index++
		kw, kerr := p.expectOneOfKeywords(keyword.MIN, keyword.MAX)
		if kerr != nil {
			return c, false, kerr
		}
		bound := &ast.HavingBound{Max: kw == keyword.MAX}
		if bound.Expr, err = p.ParseExpr(); err == nil {
			c.Having = bound
		}
	case p.ParseKeywords(keyword.ABSENT, keyword.ON, keyword.NULL):
		c.JSONNull = "ABSENT ON NULL"
	case p.ParseKeywords(keyword.NULL, keyword.ON, keyword.NULL):
		c.JSONNull = "NULL ON NULL"
	default:
		return c, false, nil
	}
	if err != nil {
		return c, false, err
	}
	return c, true, nil
}

// parseOnOverflow parses LISTAGG's ERROR | TRUNCATE ['filler'] WITH[OUT]
// COUNT.
func (p *Parser) parseOnOverflow() (string, error) {
	if p.ParseKeyword(keyword.ERROR) {
		return "ERROR", nil
	}
	if _, err := p.ExpectKeyword(keyword.TRUNCATE); err != nil {
		return "", err
	}
	s := "TRUNCATE"
	if p.peekIs(token.STRING) {
		filler, _ := p.ParseLiteralString()
		s += " " + filler.String()
	}
	switch {
	case p.ParseKeywords(keyword.WITH, keyword.COUNT):
		s += " WITH COUNT"
	case p.ParseKeywords(keyword.WITHOUT, keyword.COUNT):
		s += " WITHOUT COUNT"
	default:
		return "", p.Expected("WITH COUNT or WITHOUT COUNT", p.PeekToken())
	}
	return s, nil
}

// namedArgOperator maps the token after an argument name to its operator,
// as allowed by the dialect.
func (p *Parser) namedArgOperator(tok token.TokenWithSpan) (ast.ArgOperator, bool) {
	d := p.dialect
	switch {
	case tok.Type == token.RARROW && (d.NamedArgsRArrow || d.NamedArgsExprName):
		return ast.ArgRightArrow, true
	case tok.Type == token.ASSIGN && d.NamedArgsAssignment:
		return ast.ArgAssignment, true
	case tok.Type == token.EQ && d.NamedArgsEq:
		return ast.ArgEquals, true
	case tok.Type == token.COLON && d.NamedArgsColon:
		return ast.ArgColon, true
	}
	return "", false
}

func (p *Parser) parseFunctionArg() (ast.FunctionArg, error) {
	d := p.dialect
	if d.Lambdas {
		lambda, ok, err := p.tryLambda()
		if err != nil {
			return ast.FunctionArg{}, err
		}
		if ok {
			return ast.FunctionArg{Value: lambda}, nil
		}
	}
	if tok := p.PeekToken(); tok.Type == token.WORD {
		if op, ok := p.namedArgOperator(p.PeekNthToken(1)); ok {
			p.index += 2
			val, err := p.ParseExpr()
			if err != nil {
				return ast.FunctionArg{}, err
			}
			return ast.FunctionArg{Name: identFrom(tok), Operator: op, Value: val}, nil
		}
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return ast.FunctionArg{}, err
	}
	var op ast.ArgOperator
	switch {
	case d.NamedArgsExprName && p.ConsumeToken(token.RARROW):
		op = ast.ArgRightArrow
	case d.NamedArgsValue && p.ParseKeyword(keyword.VALUE):
		op = ast.ArgValue
	case d.NamedArgsColon && p.ConsumeToken(token.COLON):
		op = ast.ArgColon
	default:
		return ast.FunctionArg{Value: expr}, nil
	}
	val, err := p.ParseExpr()
	if err != nil {
		return ast.FunctionArg{}, err
	}
	return ast.FunctionArg{Name: expr, Operator: op, Value: val}, nil
}
