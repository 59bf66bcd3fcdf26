package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// Query parsing: WITH, set operations, SELECT and the query tail.
//
// Grammar:
//
//	query      → [WITH [RECURSIVE] cte {, cte}] set_expr [ORDER BY ...] [LIMIT ...]
//	             [OFFSET ...] [FETCH ...] {FOR lock} [FOR XML|JSON|BROWSE ...]
//	             [SETTINGS ...] [FORMAT name]
//	set_expr   → set_term {(UNION | EXCEPT | MINUS) [quantifier] set_term}
//	set_term   → operand {INTERSECT [quantifier] operand}
//	operand    → select | VALUES rows | TABLE name | "(" query ")"
//	select     → [FROM tables] SELECT [AS STRUCT|VALUE] [TOP] [DISTINCT ...] items
//	             [INTO ...] [FROM tables] {LATERAL VIEW ...} [PREWHERE expr]
//	             [WHERE expr] [START WITH ... CONNECT BY ...] [GROUP BY ...]
//	             [CLUSTER BY ...] [DISTRIBUTE BY ...] [SORT BY ...] [HAVING expr]
//	             [WINDOW ...] [QUALIFY expr]

// Set operator binding powers. INTERSECT binds tighter than the rest.
const (
	setPrecUnion     = 10
	setPrecIntersect = 20
)

// ParseQuery parses a full query expression.
func (p *Parser) ParseQuery() (*ast.Query, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	q := &ast.Query{}
	var err error
	if p.PeekKeyword(keyword.WITH) {
		if q.With, err = p.parseWith(); err != nil {
			return nil, err
		}
	}
	if q.Body, err = p.parseSetExpr(0); err != nil {
		return nil, err
	}
	if err := p.parseQueryTail(q); err != nil {
		return nil, err
	}
	return q, nil
}

// ---------- WITH ----------

func (p *Parser) parseWith() (*ast.With, error) {
	w := &ast.With{WithToken: ast.Attach(p.NextToken())}
	w.Recursive = p.ParseKeyword(keyword.RECURSIVE)
	ctes, err := parseCommaSeparated(p, p.parseCTE)
	if err != nil {
		return nil, err
	}
	w.CTEs = ctes
	return w, nil
}

func (p *Parser) parseCTE() (*ast.CTE, error) {
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	cte := &ast.CTE{Alias: ast.TableAlias{Name: name}}
	if p.peekIs(token.LPAREN) {
		cols, err := p.parseParenIdents()
		if err != nil {
			return nil, err
		}
		for _, c := range cols {
			cte.Alias.Columns = append(cte.Alias.Columns, ast.TableAliasColumn{Name: c})
		}
	}
	if _, err := p.ExpectKeyword(keyword.AS); err != nil {
		return nil, err
	}
	switch {
	case p.ParseKeyword(keyword.MATERIALIZED):
		cte.Materialized = "MATERIALIZED"
	case p.ParseKeywords(keyword.NOT, keyword.MATERIALIZED):
		cte.Materialized = "NOT MATERIALIZED"
	}
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	if cte.Query, err = p.ParseQuery(); err != nil {
		return nil, err
	}
	closing, err := p.ExpectToken(token.RPAREN)
	if err != nil {
		return nil, err
	}
	cte.ClosingParen = ast.Attach(closing)

	if p.ParseKeyword(keyword.SEARCH) {
		if cte.Search, err = p.parseCTESearch(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.CYCLE) {
		if cte.Cycle, err = p.parseCTECycle(); err != nil {
			return nil, err
		}
	}
	return cte, nil
}

func (p *Parser) parseCTESearch() (*ast.CTESearch, error) {
	kw, err := p.expectOneOfKeywords(keyword.DEPTH, keyword.BREADTH)
	if err != nil {
		return nil, err
	}
	if err := p.ExpectKeywords(keyword.FIRST, keyword.BY); err != nil {
		return nil, err
	}
	s := &ast.CTESearch{Depth: kw == keyword.DEPTH}
	if s.Columns, err = p.ParseIdentifiers(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.SET); err != nil {
		return nil, err
	}
	if s.Set, err = p.ParseIdentifier(); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseCTECycle() (*ast.CTECycle, error) {
	c := &ast.CTECycle{}
	var err error
	if c.Columns, err = p.ParseIdentifiers(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.SET); err != nil {
		return nil, err
	}
	if c.Set, err = p.ParseIdentifier(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.TO) {
		if c.To, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectKeyword(keyword.DEFAULT); err != nil {
			return nil, err
		}
		if c.Default, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.USING) {
		using, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		c.Using = &using
	}
	return c, nil
}

// ---------- Set Operations ----------

func (p *Parser) parseSetExpr(minPrec int) (ast.SetExpr, error) {
	left, err := p.parseSetOperand()
	if err != nil {
		return nil, err
	}
	for {
		op, prec := p.peekSetOperator()
		if prec == 0 || prec <= minPrec {
			return left, nil
		}
		p.index++
		quant := p.parseSetQuantifier()
		right, err := p.parseSetExpr(prec)
		if err != nil {
			return nil, err
		}
		left = &ast.SetOperation{Op: op, Quantifier: quant, Left: left, Right: right}
	}
}

func (p *Parser) peekSetOperator() (ast.SetOperator, int) {
	tok := p.PeekToken()
	if tok.Type != token.WORD || tok.Quote != 0 {
		return "", 0
	}
	switch tok.Keyword {
	case keyword.UNION:
		return ast.Union, setPrecUnion
	case keyword.EXCEPT:
		return ast.Except, setPrecUnion
	case keyword.MINUS:
		if p.dialect.MinusSetOperator {
			return ast.Minus, setPrecUnion
		}
	case keyword.INTERSECT:
		return ast.Intersect, setPrecIntersect
	}
	return "", 0
}

func (p *Parser) parseSetQuantifier() ast.SetQuantifier {
	byName := p.dialect.SetOperatorByName
	switch {
	case p.ParseKeyword(keyword.ALL):
		if byName && p.ParseKeywords(keyword.BY, keyword.NAME) {
			return ast.QuantifierAllByName
		}
		return ast.QuantifierAll
	case p.ParseKeyword(keyword.DISTINCT):
		if byName && p.ParseKeywords(keyword.BY, keyword.NAME) {
			return ast.QuantifierDistinctByName
		}
		return ast.QuantifierDistinct
	case byName && p.ParseKeywords(keyword.BY, keyword.NAME):
		return ast.QuantifierByName
	}
	return ast.QuantifierNone
}

func (p *Parser) parseSetOperand() (ast.SetExpr, error) {
	tok := p.PeekToken()
	switch {
	case tok.IsKeyword(keyword.SELECT):
		return p.ParseSelect()
	case tok.IsKeyword(keyword.FROM) && p.dialect.FromFirstSelect:
		return p.ParseSelect()
	case tok.IsKeyword(keyword.VALUES):
		return p.parseValues()
	case tok.IsKeyword(keyword.TABLE):
		p.index++
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		return &ast.TableBody{Name: name}, nil
	case tok.IsKeyword(keyword.INSERT), tok.IsKeyword(keyword.REPLACE) && p.dialect.ReplaceInto:
		return p.parseInsert()
	case tok.IsKeyword(keyword.UPDATE):
		return p.parseUpdate()
	case tok.IsKeyword(keyword.DELETE):
		return p.parseDelete()
	case tok.IsKeyword(keyword.MERGE):
		return p.parseMerge()
	case tok.Type == token.LPAREN:
		p.index++
		q, err := p.ParseQuery()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
		return q, nil
	}
	return nil, p.Expected("SELECT, VALUES, or a subquery in the query body", tok)
}

// parseValues parses VALUES (..), (..) or MySQL's VALUE / ROW(..) forms.
func (p *Parser) parseValues() (*ast.Values, error) {
	kw, err := p.expectOneOfKeywords(keyword.VALUES, keyword.VALUE)
	if err != nil {
		return nil, err
	}
	v := &ast.Values{ValueKeyword: kw == keyword.VALUE}
	v.ExplicitRow = p.PeekKeyword(keyword.ROW)
	rows, err := parseCommaSeparated(p, func() ([]ast.Expr, error) {
		if v.ExplicitRow {
			if _, err := p.ExpectKeyword(keyword.ROW); err != nil {
				return nil, err
			}
		}
		if _, err := p.ExpectToken(token.LPAREN); err != nil {
			return nil, err
		}
		row, err := p.parseOptionalExprList(token.RPAREN)
		if err != nil {
			return nil, err
		}
		if row == nil {
			row = []ast.Expr{}
		}
		return row, nil
	})
	if err != nil {
		return nil, err
	}
	v.Rows = rows
	return v, nil
}

// ---------- SELECT ----------

// ParseSelect parses one SELECT block without set operations, ORDER BY or
// LIMIT. In from-first dialects the block may start with FROM.
func (p *Parser) ParseSelect() (*ast.Select, error) {
	s := &ast.Select{}
	var err error
	if p.dialect.FromFirstSelect && p.ParseKeyword(keyword.FROM) {
		s.FromFirst = true
		if s.From, err = p.parseFromList(); err != nil {
			return nil, err
		}
		if !p.PeekKeyword(keyword.SELECT) {
			return s, p.parseSelectTail(s)
		}
	}
	tok, err := p.ExpectKeyword(keyword.SELECT)
	if err != nil {
		return nil, err
	}
	s.SelectToken = ast.Attach(tok)
	return p.parseSelectBody(s)
}

// parseSelectBody parses what follows the SELECT keyword.
func (p *Parser) parseSelectBody(s *ast.Select) (*ast.Select, error) {
	var err error

	// BigQuery value tables
	if p.PeekKeyword(keyword.AS) {
		switch next := p.PeekNthToken(1); {
		case next.IsKeyword(keyword.STRUCT):
			p.index += 2
			s.ValueTable = "AS STRUCT"
		case next.IsKeyword(keyword.VALUE):
			p.index += 2
			s.ValueTable = "AS VALUE"
		}
	}
	if p.dialect.Top && p.PeekKeyword(keyword.TOP) {
		if s.Top, err = p.parseTop(); err != nil {
			return nil, err
		}
		s.TopBeforeDist = true
	}
	if s.Distinct, err = p.parseDistinct(); err != nil {
		return nil, err
	}
	if p.dialect.Top && s.Top == nil && p.PeekKeyword(keyword.TOP) {
		if s.Top, err = p.parseTop(); err != nil {
			return nil, err
		}
	}
	if !p.PeekKeyword(keyword.FROM) {
		if s.Projection, err = p.parseProjection(); err != nil {
			return nil, err
		}
	}
	if p.dialect.SelectInto && p.ParseKeyword(keyword.INTO) {
		if s.Into, err = p.parseSelectInto(); err != nil {
			return nil, err
		}
	}
	if !s.FromFirst && p.ParseKeyword(keyword.FROM) {
		if s.From, err = p.parseFromList(); err != nil {
			return nil, err
		}
	}
	return s, p.parseSelectTail(s)
}

func (p *Parser) parseSelectTail(s *ast.Select) error {
	d := p.dialect
	var err error
	for d.LateralView && p.peekKeywords(keyword.LATERAL, keyword.VIEW) {
		p.index += 2
		lv, err := p.parseLateralView()
		if err != nil {
			return err
		}
		s.LateralViews = append(s.LateralViews, lv)
	}
	if d.Prewhere && p.ParseKeyword(keyword.PREWHERE) {
		if s.Prewhere, err = p.ParseExpr(); err != nil {
			return err
		}
	}
	if p.ParseKeyword(keyword.WHERE) {
		if s.Selection, err = p.ParseExpr(); err != nil {
			return err
		}
	}
	if d.ConnectBy && (p.peekKeywords(keyword.START, keyword.WITH) || p.peekKeywords(keyword.CONNECT, keyword.BY)) {
		if s.ConnectBy, err = p.parseConnectBy(); err != nil {
			return err
		}
	}
	if p.ParseKeywords(keyword.GROUP, keyword.BY) {
		if s.GroupBy, err = p.parseGroupBy(); err != nil {
			return err
		}
	}
	if d.ClusterDistributeSortBy {
		if p.ParseKeywords(keyword.CLUSTER, keyword.BY) {
			if s.ClusterBy, err = p.ParseCommaSeparatedExprs(); err != nil {
				return err
			}
		}
		if p.ParseKeywords(keyword.DISTRIBUTE, keyword.BY) {
			if s.DistributeBy, err = p.ParseCommaSeparatedExprs(); err != nil {
				return err
			}
		}
		if p.ParseKeywords(keyword.SORT, keyword.BY) {
			if s.SortBy, err = parseCommaSeparated(p, p.parseOrderByExpr); err != nil {
				return err
			}
		}
	}
	if p.ParseKeyword(keyword.HAVING) {
		if s.Having, err = p.ParseExpr(); err != nil {
			return err
		}
	}
	// WINDOW and QUALIFY may come in either order.
	for range 2 {
		switch {
		case s.NamedWindow == nil && p.ParseKeyword(keyword.WINDOW):
			if s.NamedWindow, err = parseCommaSeparated(p, p.parseNamedWindow); err != nil {
				return err
			}
			s.WindowFirst = s.Qualify == nil
		case d.Qualify && s.Qualify == nil && p.ParseKeyword(keyword.QUALIFY):
			if s.Qualify, err = p.ParseExpr(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Parser) parseDistinct() (*ast.Distinct, error) {
	switch {
	case p.ParseKeyword(keyword.ALL):
		return &ast.Distinct{Kind: ast.DistinctAll}, nil
	case p.ParseKeyword(keyword.DISTINCT):
		if p.dialect.DistinctOn && p.ParseKeyword(keyword.ON) {
			on, err := p.parseParenExprs()
			if err != nil {
				return nil, err
			}
			return &ast.Distinct{Kind: ast.DistinctOn, On: on}, nil
		}
		return &ast.Distinct{Kind: ast.DistinctPlain}, nil
	}
	return nil, nil
}

func (p *Parser) parseTop() (*ast.Top, error) {
	p.index++
	t := &ast.Top{}
	var err error
	if p.ConsumeToken(token.LPAREN) {
		if t.Quantity, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
		t.Parens = true
	} else if t.Quantity, err = p.parsePrefix(); err != nil {
		return nil, err
	}
	t.Percent = p.ParseKeyword(keyword.PERCENT)
	t.WithTies = p.ParseKeywords(keyword.WITH, keyword.TIES)
	return t, nil
}

func (p *Parser) parseSelectInto() (*ast.SelectInto, error) {
	into := &ast.SelectInto{}
	into.Temporary = p.ParseOneOfKeywords(keyword.TEMPORARY, keyword.TEMP) != keyword.NoKeyword
	into.Unlogged = p.ParseKeyword(keyword.UNLOGGED)
	into.Table = p.ParseKeyword(keyword.TABLE)
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	into.Name = name
	return into, nil
}

func (p *Parser) parseLateralView() (ast.LateralView, error) {
	lv := ast.LateralView{Outer: p.ParseKeyword(keyword.OUTER)}
	var err error
	if lv.Expr, err = p.ParseExpr(); err != nil {
		return lv, err
	}
	if lv.Name, err = p.ParseObjectName(); err != nil {
		return lv, err
	}
	if p.ParseKeyword(keyword.AS) {
		if lv.Columns, err = p.ParseIdentifiers(); err != nil {
			return lv, err
		}
	}
	return lv, nil
}

// parseConnectBy parses Oracle hierarchical clauses; START WITH may come
// before or after CONNECT BY.
func (p *Parser) parseConnectBy() (*ast.ConnectBy, error) {
	c := &ast.ConnectBy{}
	var err error
	startWith := func() error {
		if p.ParseKeywords(keyword.START, keyword.WITH) {
			c.StartWith, err = p.ParseExpr()
		}
		return err
	}
	if err := startWith(); err != nil {
		return nil, err
	}
	if err := p.ExpectKeywords(keyword.CONNECT, keyword.BY); err != nil {
		return nil, err
	}
	c.NoCycle = p.ParseKeyword(keyword.NOCYCLE)
	if c.Relationships, err = p.ParseCommaSeparatedExprs(); err != nil {
		return nil, err
	}
	if c.StartWith == nil {
		if err := startWith(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ---------- Projection ----------

func (p *Parser) parseProjection() ([]ast.SelectItem, error) {
	trailing := p.options.TrailingCommas || p.dialect.ProjectionTrailingCommas
	var items []ast.SelectItem
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.ConsumeToken(token.COMMA) {
			return items, nil
		}
		if trailing && p.isCommaListEnd() {
			return items, nil
		}
	}
}

func (p *Parser) parseSelectItem() (ast.SelectItem, error) {
	if star := p.PeekToken(); star.Type == token.STAR {
		p.index++
		w := &ast.SelectWildcard{Token: ast.Attach(star)}
		return w, p.parseWildcardOptions(&w.Options)
	}
	if n := p.qualifiedWildcardLen(); n > 0 {
		w := &ast.SelectWildcard{}
		for i := 0; i < n-1; i += 2 {
			w.Qualifier = append(w.Qualifier, ast.ObjectNamePart{Ident: identFrom(p.NextToken())})
			p.index++
		}
		w.Token = ast.Attach(p.NextToken())
		return w, p.parseWildcardOptions(&w.Options)
	}

	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if p.peekIs(token.DOT) && p.peekNthIs(1, token.STAR) {
		p.index++
		w := &ast.SelectWildcard{Token: ast.Attach(p.NextToken()), QualifierExpr: expr}
		return w, p.parseWildcardOptions(&w.Options)
	}
	alias, err := p.parseColumnAlias()
	if err != nil {
		return nil, err
	}
	if alias != nil {
		return &ast.AliasedExpr{Expr: expr, Alias: *alias}, nil
	}
	return &ast.UnnamedExpr{Expr: expr}, nil
}

// qualifiedWildcardLen returns the token count of a leading `a.b.*`, or 0.
func (p *Parser) qualifiedWildcardLen() int {
	n := 0
	for {
		if p.PeekNthToken(n).Type != token.WORD || !p.peekNthIs(n+1, token.DOT) {
			return 0
		}
		n += 2
		if p.peekNthIs(n, token.STAR) {
			return n + 1
		}
	}
}

func (p *Parser) parseWildcardOptions(o *ast.WildcardOptions) error {
	d := p.dialect
	if d.WildcardIlike && p.ParseKeyword(keyword.ILIKE) {
		v, err := p.ParseLiteralString()
		if err != nil {
			return err
		}
		o.ILike = &v
	}
	if d.WildcardExclude && p.ParseKeyword(keyword.EXCLUDE) {
		if p.peekIs(token.LPAREN) {
			ids, err := p.parseParenIdents()
			if err != nil {
				return err
			}
			ex := ast.Many(ids)
			o.Exclude = &ex
		} else {
			id, err := p.ParseIdentifier()
			if err != nil {
				return err
			}
			ex := ast.One(id)
			o.Exclude = &ex
		}
	}
	if d.WildcardExcept && p.PeekKeyword(keyword.EXCEPT) && p.peekNthIs(1, token.LPAREN) {
		p.index++
		ids, err := p.parseParenIdents()
		if err != nil {
			return err
		}
		o.Except = ids
	}
	if d.WildcardReplace && p.PeekKeyword(keyword.REPLACE) && p.peekNthIs(1, token.LPAREN) {
		p.index += 2
		elems, err := parseCommaSeparated(p, p.parseReplaceElement)
		if err != nil {
			return err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return err
		}
		o.Replace = elems
	}
	if d.WildcardRename && p.ParseKeyword(keyword.RENAME) {
		if p.ConsumeToken(token.LPAREN) {
			items, err := parseCommaSeparated(p, p.parseIdentWithAlias)
			if err != nil {
				return err
			}
			if _, err := p.ExpectToken(token.RPAREN); err != nil {
				return err
			}
			r := ast.Many(items)
			o.Rename = &r
		} else {
			item, err := p.parseIdentWithAlias()
			if err != nil {
				return err
			}
			r := ast.One(item)
			o.Rename = &r
		}
	}
	return nil
}

func (p *Parser) parseReplaceElement() (ast.ReplaceElement, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return ast.ReplaceElement{}, err
	}
	r := ast.ReplaceElement{Expr: expr, AsKw: p.ParseKeyword(keyword.AS)}
	if r.Column, err = p.ParseIdentifier(); err != nil {
		return r, err
	}
	return r, nil
}

func (p *Parser) parseIdentWithAlias() (ast.IdentWithAlias, error) {
	id, err := p.ParseIdentifier()
	if err != nil {
		return ast.IdentWithAlias{}, err
	}
	if _, err := p.ExpectKeyword(keyword.AS); err != nil {
		return ast.IdentWithAlias{}, err
	}
	alias, err := p.ParseIdentifier()
	if err != nil {
		return ast.IdentWithAlias{}, err
	}
	return ast.IdentWithAlias{Ident: id, Alias: alias}, nil
}

// parseColumnAlias parses an optional projection alias. Without AS, only
// words the dialect accepts as implicit aliases qualify.
func (p *Parser) parseColumnAlias() (*ast.Ident, error) {
	if p.ParseKeyword(keyword.AS) {
		id, err := p.parseIdentOrString()
		if err != nil {
			return nil, err
		}
		return &id, nil
	}
	tok := p.PeekToken()
	if tok.Type != token.WORD {
		return nil, nil
	}
	if tok.Quote == 0 && tok.Keyword != keyword.NoKeyword && !p.dialect.IsColumnAlias(tok.Keyword, p) {
		return nil, nil
	}
	p.index++
	id := identFrom(tok)
	return &id, nil
}

// ---------- GROUP BY ----------

func (p *Parser) parseGroupBy() (*ast.GroupByExpr, error) {
	d := p.dialect
	g := &ast.GroupByExpr{}
	if d.GroupByAll && p.PeekKeyword(keyword.ALL) && !p.peekNthIs(1, token.LPAREN) {
		p.index++
		g.All = true
	} else {
		exprs, err := parseCommaSeparated(p, p.parseGroupingElement)
		if err != nil {
			return nil, err
		}
		g.Exprs = exprs
	}
	if d.GroupByWithModifier {
		for p.PeekKeyword(keyword.WITH) {
			next := p.PeekNthToken(1)
			if !next.IsKeyword(keyword.ROLLUP) && !next.IsKeyword(keyword.CUBE) && !next.IsKeyword(keyword.TOTALS) {
				break
			}
			p.index += 2
			g.Modifiers = append(g.Modifiers, next.Keyword.String())
		}
	}
	return g, nil
}

func (p *Parser) parseGroupingElement() (ast.Expr, error) {
	if !p.dialect.GroupByExpr {
		return p.ParseExpr()
	}
	switch {
	case p.peekKeywords(keyword.GROUPING, keyword.SETS):
		p.index += 2
		sets, err := p.parseGroupingSets(true)
		if err != nil {
			return nil, err
		}
		return &ast.GroupingSets{Sets: sets}, nil
	case p.PeekKeyword(keyword.CUBE) && p.peekNthIs(1, token.LPAREN):
		p.index++
		sets, err := p.parseGroupingSets(false)
		if err != nil {
			return nil, err
		}
		return &ast.Cube{Sets: sets}, nil
	case p.PeekKeyword(keyword.ROLLUP) && p.peekNthIs(1, token.LPAREN):
		p.index++
		sets, err := p.parseGroupingSets(false)
		if err != nil {
			return nil, err
		}
		return &ast.Rollup{Sets: sets}, nil
	}
	return p.ParseExpr()
}

// parseGroupingSets parses "(" set {, set} ")". Each set is a
// parenthesized list or a bare expression; GROUPING SETS also allows nested
// grouping constructs.
func (p *Parser) parseGroupingSets(nested bool) ([][]ast.Expr, error) {
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	sets, err := parseCommaSeparated(p, func() ([]ast.Expr, error) {
		if p.ConsumeToken(token.LPAREN) {
			exprs, err := p.parseOptionalExprList(token.RPAREN)
			if exprs == nil && err == nil {
				exprs = []ast.Expr{}
			}
			return exprs, err
		}
		var e ast.Expr
		var err error
		if nested {
			e, err = p.parseGroupingElement()
		} else {
			e, err = p.ParseExpr()
		}
		if err != nil {
			return nil, err
		}
		return []ast.Expr{e}, nil
	})
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return sets, nil
}

// ---------- ORDER BY ----------

func (p *Parser) parseOrderBy() (*ast.OrderBy, error) {
	ob := &ast.OrderBy{}
	if p.dialect.OrderByAll && p.PeekKeyword(keyword.ALL) && !p.peekNthIs(1, token.LPAREN) && !p.peekNthIs(1, token.DOT) {
		p.index++
		ob.All = true
		ob.AllOptions = p.parseOrderByOptions()
	} else {
		exprs, err := parseCommaSeparated(p, p.parseOrderByExpr)
		if err != nil {
			return nil, err
		}
		ob.Exprs = exprs
	}
	if p.dialect.WithFill && p.ParseKeyword(keyword.INTERPOLATE) {
		interp := &ast.Interpolate{Bare: true}
		if p.ConsumeToken(token.LPAREN) {
			interp.Bare = false
			if !p.ConsumeToken(token.RPAREN) {
				items, err := parseCommaSeparated(p, p.parseInterpolateExpr)
				if err != nil {
					return nil, err
				}
				if _, err := p.ExpectToken(token.RPAREN); err != nil {
					return nil, err
				}
				interp.Exprs = items
			}
		}
		ob.Interpolate = interp
	}
	return ob, nil
}

func (p *Parser) parseInterpolateExpr() (ast.InterpolateExpr, error) {
	col, err := p.ParseIdentifier()
	if err != nil {
		return ast.InterpolateExpr{}, err
	}
	ie := ast.InterpolateExpr{Column: col}
	if p.ParseKeyword(keyword.AS) {
		if ie.Expr, err = p.ParseExpr(); err != nil {
			return ie, err
		}
	}
	return ie, nil
}

func (p *Parser) parseOrderByExpr() (ast.OrderByExpr, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return ast.OrderByExpr{}, err
	}
	o := ast.OrderByExpr{Expr: expr, Options: p.parseOrderByOptions()}
	if p.dialect.WithFill && p.ParseKeywords(keyword.WITH, keyword.FILL) {
		fill := &ast.WithFill{}
		if p.ParseKeyword(keyword.FROM) {
			if fill.From, err = p.ParseExpr(); err != nil {
				return o, err
			}
		}
		if p.ParseKeyword(keyword.TO) {
			if fill.To, err = p.ParseExpr(); err != nil {
				return o, err
			}
		}
		if p.ParseKeyword(keyword.STEP) {
			if fill.Step, err = p.ParseExpr(); err != nil {
				return o, err
			}
		}
		o.WithFill = fill
	}
	return o, nil
}

func (p *Parser) parseOrderByOptions() ast.OrderByOptions {
	var o ast.OrderByOptions
	switch p.ParseOneOfKeywords(keyword.ASC, keyword.DESC) {
	case keyword.ASC:
		o.Asc = boolPtr(true)
	case keyword.DESC:
		o.Asc = boolPtr(false)
	}
	switch {
	case p.ParseKeywords(keyword.NULLS, keyword.FIRST):
		o.NullsFirst = boolPtr(true)
	case p.ParseKeywords(keyword.NULLS, keyword.LAST):
		o.NullsFirst = boolPtr(false)
	}
	return o
}

// ---------- Query Tail ----------

func (p *Parser) parseQueryTail(q *ast.Query) error {
	d := p.dialect
	var err error
	if p.ParseKeywords(keyword.ORDER, keyword.BY) {
		if q.OrderBy, err = p.parseOrderBy(); err != nil {
			return err
		}
	}
	if q.Limit, err = p.parseLimitClause(); err != nil {
		return err
	}
	if p.ParseKeyword(keyword.FETCH) {
		if q.Fetch, err = p.parseFetch(); err != nil {
			return err
		}
	}
	for d.LockClauses && p.isLockClauseStart() {
		p.index++
		lock, err := p.parseLockClause()
		if err != nil {
			return err
		}
		q.Locks = append(q.Locks, lock)
	}
	if d.ForXMLJSON && p.PeekKeyword(keyword.FOR) {
		next := p.PeekNthToken(1)
		if next.IsKeyword(keyword.XML) || next.IsKeyword(keyword.JSON) || next.IsKeyword(keyword.BROWSE) {
			p.index++
			if q.ForClause, err = p.parseForClause(); err != nil {
				return err
			}
		}
	}
	if d.Settings && p.ParseKeyword(keyword.SETTINGS) {
		if q.Settings, err = parseCommaSeparated(p, p.parseSetting); err != nil {
			return err
		}
	}
	if d.FormatClause && p.ParseKeyword(keyword.FORMAT) {
		q.FormatClause = &ast.FormatClause{}
		if !p.ParseKeyword(keyword.NULL) {
			name, err := p.ParseIdentifier()
			if err != nil {
				return err
			}
			q.FormatClause.Name = &name
		}
	}
	return nil
}

// parseLimitClause parses LIMIT and OFFSET in either order. It returns nil
// when neither is present.
func (p *Parser) parseLimitClause() (*ast.LimitClause, error) {
	var l *ast.LimitClause
	ensure := func() {
		if l == nil {
			l = &ast.LimitClause{}
		}
	}
	for range 2 {
		switch {
		case (l == nil || l.Limit == nil && !l.LimitAll) && p.ParseKeyword(keyword.LIMIT):
			ensure()
			if p.ParseKeyword(keyword.ALL) {
				l.LimitAll = true
				break
			}
			e, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			if p.dialect.LimitComma && p.ConsumeToken(token.COMMA) {
				if l.Offset != nil {
					return nil, p.Expected("a single LIMIT value after OFFSET", p.PeekToken())
				}
				l.Offset = &ast.Offset{Value: e}
				l.OffsetComma = true
				if l.Limit, err = p.ParseExpr(); err != nil {
					return nil, err
				}
				return l, nil
			}
			l.Limit = e
			if p.dialect.LimitBy && p.ParseKeyword(keyword.BY) {
				if l.LimitBy, err = p.ParseCommaSeparatedExprs(); err != nil {
					return nil, err
				}
			}
		case (l == nil || l.Offset == nil) && p.ParseKeyword(keyword.OFFSET):
			ensure()
			v, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			off := &ast.Offset{Value: v}
			switch p.ParseOneOfKeywords(keyword.ROW, keyword.ROWS) {
			case keyword.ROW:
				off.Rows = "ROW"
			case keyword.ROWS:
				off.Rows = "ROWS"
			}
			l.Offset = off
		}
	}
	return l, nil
}

func (p *Parser) parseFetch() (*ast.Fetch, error) {
	if _, err := p.expectOneOfKeywords(keyword.FIRST, keyword.NEXT); err != nil {
		return nil, err
	}
	f := &ast.Fetch{}
	if !p.PeekKeyword(keyword.ROW) && !p.PeekKeyword(keyword.ROWS) {
		q, err := p.parsePrefix()
		if err != nil {
			return nil, err
		}
		f.Quantity = q
		f.Percent = p.ParseKeyword(keyword.PERCENT)
	}
	if _, err := p.expectOneOfKeywords(keyword.ROW, keyword.ROWS); err != nil {
		return nil, err
	}
	switch {
	case p.ParseKeyword(keyword.ONLY):
	case p.ParseKeywords(keyword.WITH, keyword.TIES):
		f.WithTies = true
	default:
		return nil, p.Expected("ONLY or WITH TIES", p.PeekToken())
	}
	return f, nil
}

func (p *Parser) isLockClauseStart() bool {
	if !p.PeekKeyword(keyword.FOR) {
		return false
	}
	next := p.PeekNthToken(1)
	return next.IsKeyword(keyword.UPDATE) || next.IsKeyword(keyword.SHARE) ||
		next.IsKeyword(keyword.NO) || next.IsKeyword(keyword.KEY)
}

func (p *Parser) parseLockClause() (ast.LockClause, error) {
	var l ast.LockClause
	switch {
	case p.ParseKeyword(keyword.UPDATE):
		l.Strength = "UPDATE"
	case p.ParseKeyword(keyword.SHARE):
		l.Strength = "SHARE"
	case p.ParseKeywords(keyword.NO, keyword.KEY, keyword.UPDATE):
		l.Strength = "NO KEY UPDATE"
	case p.ParseKeywords(keyword.KEY, keyword.SHARE):
		l.Strength = "KEY SHARE"
	default:
		return l, p.Expected("UPDATE, SHARE, NO KEY UPDATE or KEY SHARE", p.PeekToken())
	}
	if p.ParseKeyword(keyword.OF) {
		names, err := p.parseObjectNames()
		if err != nil {
			return l, err
		}
		l.Of = names
	}
	switch {
	case p.ParseKeyword(keyword.NOWAIT):
		l.Wait = "NOWAIT"
	case p.ParseKeywords(keyword.SKIP, keyword.LOCKED):
		l.Wait = "SKIP LOCKED"
	}
	return l, nil
}

// parseForClause parses SQL Server's FOR BROWSE | XML | JSON.
func (p *Parser) parseForClause() (*ast.ForClause, error) {
	kw, err := p.expectOneOfKeywords(keyword.BROWSE, keyword.XML, keyword.JSON)
	if err != nil {
		return nil, err
	}
	f := &ast.ForClause{Kind: kw.String()}
	if kw == keyword.BROWSE {
		return f, nil
	}
	mode, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	f.Mode = mode.Value
	if p.ConsumeToken(token.LPAREN) {
		arg, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		f.ModeArg = &arg
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	for p.ConsumeToken(token.COMMA) {
		if p.PeekKeyword(keyword.ROOT) && p.peekNthIs(1, token.LPAREN) {
			p.index += 2
			root, err := p.ParseLiteralString()
			if err != nil {
				return nil, err
			}
			f.Root = &root
			if _, err := p.ExpectToken(token.RPAREN); err != nil {
				return nil, err
			}
			continue
		}
		words := p.parseSpacedWords(func(token.TokenWithSpan) bool { return false })
		if len(words) == 0 {
			return nil, p.Expected("a FOR "+f.Kind+" option", p.PeekToken())
		}
		f.Options = append(f.Options, strings.Join(words, " "))
	}
	return f, nil
}

func (p *Parser) parseSetting() (ast.Setting, error) {
	key, err := p.ParseIdentifier()
	if err != nil {
		return ast.Setting{}, err
	}
	if _, err := p.ExpectToken(token.EQ); err != nil {
		return ast.Setting{}, err
	}
	val, err := p.ParseExpr()
	if err != nil {
		return ast.Setting{}, err
	}
	return ast.Setting{Key: key, Value: val}, nil
}
