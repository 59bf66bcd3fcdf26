package parser

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// FROM clause parsing: table factors, derived tables, lateral items, JOINs.
//
// Grammar:
//
//	from_clause   → table_with_joins {"," table_with_joins}
//	table_with_joins → table_factor {join}
//	table_factor  → table_name ["(" args ")"] [PARTITION (...)] [version] [sample] [alias] [FINAL] [hints] [sample]
//	              | [LATERAL] "(" query ")" [alias]
//	              | "(" table_with_joins ")" [alias]
//	              | LATERAL name "(" args ")" [alias] | TABLE "(" expr ")" [alias]
//	              | UNNEST "(" exprs ")" ... | JSON_TABLE | OPENJSON | XMLTABLE | GRAPH_TABLE
//	              followed by any number of PIVOT / UNPIVOT / MATCH_RECOGNIZE
//	join          → [GLOBAL] [NATURAL] join_kind table_factor [MATCH_CONDITION (expr)] [ON expr | USING (cols)]

func (p *Parser) parseFromList() ([]ast.TableWithJoins, error) {
	return parseCommaSeparated(p, p.parseTableWithJoins)
}

func (p *Parser) parseTableWithJoins() (ast.TableWithJoins, error) {
	rel, err := p.parseTableFactor()
	if err != nil {
		return ast.TableWithJoins{}, err
	}
	twj := ast.TableWithJoins{Relation: rel}
	for {
		join, ok, err := p.parseJoin()
		if err != nil {
			return twj, err
		}
		if !ok {
			return twj, nil
		}
		twj.Joins = append(twj.Joins, join)
	}
}

// ---------- Joins ----------

// parseJoinKind consumes the join keywords and reports the kind. ok is false
// when no join starts here; nothing is consumed in that case.
func (p *Parser) parseJoinKind() (ast.JoinKind, bool) {
	d := p.dialect
	start := p.index
	kind := ast.JoinPlain
	switch {
	case p.ParseKeyword(keyword.JOIN):
		return ast.JoinPlain, true
	case p.ParseKeywords(keyword.INNER, keyword.JOIN):
		return ast.JoinInner, true
	case p.ParseKeywords(keyword.CROSS, keyword.JOIN):
		return ast.JoinCross, true
	case d.ApplyJoins && p.ParseKeywords(keyword.CROSS, keyword.APPLY):
		return ast.JoinCrossApply, true
	case d.ApplyJoins && p.ParseKeywords(keyword.OUTER, keyword.APPLY):
		return ast.JoinOuterApply, true
	case d.StraightJoin && p.ParseKeyword(keyword.STRAIGHT_JOIN):
		return ast.JoinStraight, true
	case d.AsOfJoins && p.ParseKeywords(keyword.ASOF, keyword.JOIN):
		return ast.JoinAsOf, true
	case d.ArrayJoin && p.ParseKeywords(keyword.ARRAY, keyword.JOIN):
		return ast.JoinArray, true
	case d.ArrayJoin && p.ParseKeywords(keyword.LEFT, keyword.ARRAY, keyword.JOIN):
		return ast.JoinLeftArray, true
	case d.SemiAntiJoins && p.ParseKeywords(keyword.SEMI, keyword.JOIN):
		return ast.JoinSemi, true
	case d.SemiAntiJoins && p.ParseKeywords(keyword.ANTI, keyword.JOIN):
		return ast.JoinAnti, true
	case p.ParseKeyword(keyword.LEFT):
		kind = ast.JoinLeftOuter
		if d.SemiAntiJoins {
			switch p.ParseOneOfKeywords(keyword.SEMI, keyword.ANTI) {
			case keyword.SEMI:
				kind = ast.JoinLeftSemi
			case keyword.ANTI:
				kind = ast.JoinLeftAnti
			}
		}
	case p.ParseKeyword(keyword.RIGHT):
		kind = ast.JoinRightOuter
		if d.SemiAntiJoins {
			switch p.ParseOneOfKeywords(keyword.SEMI, keyword.ANTI) {
			case keyword.SEMI:
				kind = ast.JoinRightSemi
			case keyword.ANTI:
				kind = ast.JoinRightAnti
			}
		}
	case p.ParseKeyword(keyword.FULL):
		kind = ast.JoinFullOuter
	default:
		return kind, false
	}
	if kind == ast.JoinLeftOuter || kind == ast.JoinRightOuter || kind == ast.JoinFullOuter {
		p.ParseKeyword(keyword.OUTER)
	}
	if !p.ParseKeyword(keyword.JOIN) {
		p.index = start
		return kind, false
	}
	return kind, true
}

func (p *Parser) parseJoin() (ast.Join, bool, error) {
	start := p.index
	var j ast.Join
	if p.PeekKeyword(keyword.GLOBAL) {
		p.index++
		j.Global = true
	}
	natural := p.ParseKeyword(keyword.NATURAL)
	kind, ok := p.parseJoinKind()
	if !ok {
		if natural || j.Global {
			return j, false, p.Expected("a join type", p.PeekToken())
		}
		p.index = start
		return j, false, nil
	}
	j.Operator.Kind = kind

	rel, err := p.parseTableFactor()
	if err != nil {
		return j, false, err
	}
	j.Relation = rel

	if kind == ast.JoinAsOf && p.ParseKeyword(keyword.MATCH_CONDITION) {
		if _, err := p.ExpectToken(token.LPAREN); err != nil {
			return j, false, err
		}
		if j.Operator.MatchCondition, err = p.ParseExpr(); err != nil {
			return j, false, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return j, false, err
		}
	}

	switch {
	case natural:
		j.Operator.Constraint.Kind = ast.ConstraintNatural
	case kind == ast.JoinCross, kind == ast.JoinCrossApply, kind == ast.JoinOuterApply, kind == ast.JoinArray, kind == ast.JoinLeftArray:
	case p.ParseKeyword(keyword.ON):
		on, err := p.ParseExpr()
		if err != nil {
			return j, false, err
		}
		j.Operator.Constraint = ast.JoinConstraint{Kind: ast.ConstraintOn, On: on}
	case p.ParseKeyword(keyword.USING):
		if _, err := p.ExpectToken(token.LPAREN); err != nil {
			return j, false, err
		}
		cols, err := p.parseObjectNames()
		if err != nil {
			return j, false, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return j, false, err
		}
		j.Operator.Constraint = ast.JoinConstraint{Kind: ast.ConstraintUsing, Using: cols}
	}
	return j, true, nil
}

// ---------- Table Factors ----------

func (p *Parser) parseTableFactor() (ast.TableFactor, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	factor, err := p.parseBaseTableFactor()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.PeekKeyword(keyword.PIVOT) && p.peekNthIs(1, token.LPAREN):
			p.index += 2
			factor, err = p.parsePivot(factor)
		case p.PeekKeyword(keyword.UNPIVOT):
			p.index++
			factor, err = p.parseUnpivot(factor)
		case p.dialect.MatchRecognize && p.PeekKeyword(keyword.MATCH_RECOGNIZE) && p.peekNthIs(1, token.LPAREN):
			p.index += 2
			factor, err = p.parseMatchRecognize(factor)
		default:
			return factor, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseBaseTableFactor() (ast.TableFactor, error) {
	tok := p.PeekToken()
	if tok.Type == token.LPAREN {
		p.index++
		return p.parseParenTableFactor(false)
	}
	if tok.Type != token.WORD {
		return nil, p.Expected("a table name or subquery", tok)
	}
	if tok.Quote == 0 && p.peekNthIs(1, token.LPAREN) {
		switch tok.Keyword {
		case keyword.UNNEST:
			p.index += 2
			return p.parseUnnestTable()
		case keyword.JSON_TABLE:
			p.index += 2
			return p.parseJSONTable()
		case keyword.OPENJSON:
			p.index += 2
			return p.parseOpenJSONTable()
		case keyword.XMLTABLE:
			p.index += 2
			return p.parseXMLTable()
		case keyword.GRAPH_TABLE:
			p.index += 2
			return p.parseGraphTable()
		case keyword.TABLE:
			p.index += 2
			expr, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.ExpectToken(token.RPAREN); err != nil {
				return nil, err
			}
			ft := &ast.FunctionTable{TableExpr: true, Expr: expr}
			if ft.Alias, err = p.parseTableAlias(); err != nil {
				return nil, err
			}
			return ft, nil
		}
	}
	if tok.IsKeyword(keyword.LATERAL) {
		p.index++
		if p.ConsumeToken(token.LPAREN) {
			return p.parseParenTableFactor(true)
		}
		return p.parseLateralFunction()
	}
	if tok.Quote == 0 && tok.Keyword != keyword.NoKeyword && p.dialect.IsReservedForTableFactor(tok.Keyword) {
		return nil, p.Expected("a table name", tok)
	}
	return p.parseTableRef()
}

// parseParenTableFactor parses what follows a '(' in table position: a
// derived table or a parenthesized join.
func (p *Parser) parseParenTableFactor(lateral bool) (ast.TableFactor, error) {
	if lateral || !p.peekIs(token.LPAREN) && p.isQueryStart() {
		return p.parseDerivedTable(lateral)
	}
	if p.peekIs(token.LPAREN) && p.isQueryStart() {
		// ((SELECT ...) AS a JOIN b ON ...) is a nested join
		start := p.index
		if dt, err := p.parseDerivedTable(false); err == nil {
			return dt, nil
		}
		p.index = start
	}
	twj, err := p.parseTableWithJoins()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	nj := &ast.NestedJoin{TableWithJoins: twj}
	if nj.Alias, err = p.parseTableAlias(); err != nil {
		return nil, err
	}
	return nj, nil
}

func (p *Parser) parseDerivedTable(lateral bool) (ast.TableFactor, error) {
	q, err := p.ParseQuery()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	dt := &ast.DerivedTable{Lateral: lateral, Subquery: q}
	if dt.Alias, err = p.parseTableAlias(); err != nil {
		return nil, err
	}
	return dt, nil
}

func (p *Parser) parseLateralFunction() (ast.TableFactor, error) {
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	args, err := p.parseFunctionArgs()
	if err != nil {
		return nil, err
	}
	ft := &ast.FunctionTable{Lateral: true, Name: name, Args: args.Args}
	if ft.Alias, err = p.parseTableAlias(); err != nil {
		return nil, err
	}
	return ft, nil
}

func (p *Parser) parseTableRef() (ast.TableFactor, error) {
	d := p.dialect
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	t := &ast.TableRef{Name: name}
	if p.ConsumeToken(token.LPAREN) {
		args, err := p.parseFunctionArgs()
		if err != nil {
			return nil, err
		}
		t.Args = &args
	}
	if d.PartitionSelection && p.PeekKeyword(keyword.PARTITION) && p.peekNthIs(1, token.LPAREN) {
		p.index++
		if t.Partitions, err = p.parseParenIdents(); err != nil {
			return nil, err
		}
	}
	t.WithOrdinality = p.ParseKeywords(keyword.WITH, keyword.ORDINALITY)
	if d.TableVersioning {
		if t.Version, err = p.parseTableVersion(); err != nil {
			return nil, err
		}
	}
	if d.TableSampleBeforeAlias && p.isSampleStart() {
		if t.Sample, err = p.parseTableSample(); err != nil {
			return nil, err
		}
		t.SampleFirst = true
	}
	if !(d.IndexHints && p.isIndexHintStart()) {
		if t.Alias, err = p.parseTableAlias(); err != nil {
			return nil, err
		}
	}
	if d.FinalModifier {
		t.Final = p.ParseKeyword(keyword.FINAL)
	}
	for d.IndexHints && p.isIndexHintStart() {
		hint, err := p.parseIndexHint()
		if err != nil {
			return nil, err
		}
		t.IndexHints = append(t.IndexHints, hint)
	}
	if d.TableHints && p.PeekKeyword(keyword.WITH) && p.peekNthIs(1, token.LPAREN) {
		p.index += 2
		if t.WithHints, err = p.parseOptionalExprList(token.RPAREN); err != nil {
			return nil, err
		}
	}
	if t.Sample == nil && p.isSampleStart() {
		if t.Sample, err = p.parseTableSample(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// parseTableVersion parses FOR SYSTEM_TIME AS OF expr, or Snowflake's
// AT(...) / BEFORE(...).
func (p *Parser) parseTableVersion() (*ast.TableVersion, error) {
	if p.ParseKeywords(keyword.FOR, keyword.SYSTEM_TIME, keyword.AS, keyword.OF) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.TableVersion{ForSystemTimeAsOf: e}, nil
	}
	tok := p.PeekToken()
	if (tok.IsKeyword(keyword.AT) || tok.IsKeyword(keyword.BEFORE)) && p.peekNthIs(1, token.LPAREN) {
		p.index += 2
		f, err := p.parseFunction(ast.ObjectName{{Ident: identFrom(tok)}})
		if err != nil {
			return nil, err
		}
		return &ast.TableVersion{Function: f.(*ast.Function)}, nil
	}
	return nil, nil
}

// ---------- Aliases ----------

// parseTableAlias parses an optional [AS] name [(cols)]. Without AS, only
// words the dialect accepts as implicit table aliases qualify.
func (p *Parser) parseTableAlias() (*ast.TableAlias, error) {
	var name ast.Ident
	if p.ParseKeyword(keyword.AS) {
		id, err := p.parseIdentOrString()
		if err != nil {
			return nil, err
		}
		name = id
	} else {
		tok := p.PeekToken()
		if tok.Type != token.WORD {
			return nil, nil
		}
		if tok.Quote == 0 && tok.Keyword != keyword.NoKeyword && !p.dialect.IsTableAlias(tok.Keyword, p) {
			return nil, nil
		}
		p.index++
		name = identFrom(tok)
	}
	alias := &ast.TableAlias{Name: name}
	if p.ConsumeToken(token.LPAREN) {
		cols, err := parseCommaSeparated(p, p.parseTableAliasColumn)
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
		alias.Columns = cols
	}
	return alias, nil
}

func (p *Parser) parseTableAliasColumn() (ast.TableAliasColumn, error) {
	name, err := p.ParseIdentifier()
	if err != nil {
		return ast.TableAliasColumn{}, err
	}
	col := ast.TableAliasColumn{Name: name}
	if !p.peekIs(token.COMMA) && !p.peekIs(token.RPAREN) {
		if col.DataType, err = p.ParseDataType(); err != nil {
			return col, err
		}
	}
	return col, nil
}

// ---------- Sampling ----------

func (p *Parser) isSampleStart() bool {
	tok := p.PeekToken()
	if tok.IsKeyword(keyword.TABLESAMPLE) {
		return true
	}
	if !tok.IsKeyword(keyword.SAMPLE) {
		return false
	}
	next := p.PeekNthToken(1)
	return next.Type == token.NUMBER || next.Type == token.LPAREN || next.Type == token.WORD && next.Quote == 0
}

func (p *Parser) parseTableSample() (*ast.TableSample, error) {
	kw := p.NextToken().Keyword
	s := &ast.TableSample{Keyword: kw.String()}
	if tok := p.PeekToken(); tok.Type == token.WORD && p.peekNthIs(1, token.LPAREN) {
		switch tok.Keyword {
		case keyword.BERNOULLI, keyword.SYSTEM, keyword.BLOCK, keyword.ROW:
			p.index++
			s.Method = tok.Keyword.String()
		}
	}
	var err error
	if p.ConsumeToken(token.LPAREN) {
		s.Parens = true
		if p.ParseKeyword(keyword.BUCKET) {
			if s.Bucket, err = p.parseSampleBucket(); err != nil {
				return nil, err
			}
		} else {
			if s.Quantity, err = p.ParseExpr(); err != nil {
				return nil, err
			}
			s.Unit = p.parseSampleUnit()
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	} else {
		if s.Quantity, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		s.Unit = p.parseSampleUnit()
	}
	if seed := p.ParseOneOfKeywords(keyword.REPEATABLE, keyword.SEED); seed != keyword.NoKeyword {
		s.SeedKind = seed.String()
		if _, err := p.ExpectToken(token.LPAREN); err != nil {
			return nil, err
		}
		if s.Seed, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	// ClickHouse SAMPLE k OFFSET m
	if kw == keyword.SAMPLE && !s.Parens && p.ParseKeyword(keyword.OFFSET) {
		if s.Offset, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (p *Parser) parseSampleUnit() string {
	switch p.ParseOneOfKeywords(keyword.ROWS, keyword.PERCENT) {
	case keyword.ROWS:
		return "ROWS"
	case keyword.PERCENT:
		return "PERCENT"
	}
	return ""
}

// parseSampleBucket parses Hive's BUCKET x OUT OF y [ON expr].
func (p *Parser) parseSampleBucket() (*ast.SampleBucket, error) {
	b := &ast.SampleBucket{}
	var err error
	if b.Bucket, err = p.parseNumberValue(); err != nil {
		return nil, err
	}
	if err := p.ExpectKeywords(keyword.OUT, keyword.OF); err != nil {
		return nil, err
	}
	if b.Total, err = p.parseNumberValue(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.ON) {
		if b.On, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// ---------- Index Hints ----------

func (p *Parser) isIndexHintStart() bool {
	if !p.peekOneOf(keyword.USE, keyword.IGNORE, keyword.FORCE) {
		return false
	}
	next := p.PeekNthToken(1)
	return next.IsKeyword(keyword.INDEX) || next.IsKeyword(keyword.KEY)
}

func (p *Parser) parseIndexHint() (ast.IndexHint, error) {
	h := ast.IndexHint{
		Type:    p.NextToken().Keyword.String(),
		Keyword: p.NextToken().Keyword.String(),
	}
	if p.ParseKeyword(keyword.FOR) {
		switch {
		case p.ParseKeyword(keyword.JOIN):
			h.For = "JOIN"
		case p.ParseKeywords(keyword.ORDER, keyword.BY):
			h.For = "ORDER BY"
		case p.ParseKeywords(keyword.GROUP, keyword.BY):
			h.For = "GROUP BY"
		default:
			return h, p.Expected("JOIN, ORDER BY or GROUP BY", p.PeekToken())
		}
	}
	names, err := p.parseParenIdents()
	if err != nil {
		return h, err
	}
	h.Names = names
	return h, nil
}

// ---------- UNNEST ----------

func (p *Parser) parseUnnestTable() (ast.TableFactor, error) {
	exprs, err := p.parseOptionalExprList(token.RPAREN)
	if err != nil {
		return nil, err
	}
	u := &ast.UnnestTable{ArrayExprs: exprs}
	u.WithOrdinality = p.ParseKeywords(keyword.WITH, keyword.ORDINALITY)
	if u.Alias, err = p.parseTableAlias(); err != nil {
		return nil, err
	}
	if p.ParseKeywords(keyword.WITH, keyword.OFFSET) {
		u.WithOffset = true
		if p.ParseKeyword(keyword.AS) {
			id, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			u.WithOffsetAlias = &id
		}
	}
	return u, nil
}
