package parser

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// Table operators that wrap a table factor: PIVOT, UNPIVOT, MATCH_RECOGNIZE.
//
// Grammar:
//
//	pivot    → factor PIVOT "(" agg [AS a] {, ...} FOR col | "(" cols ")"
//	           IN "(" values | ANY [ORDER BY ...] | query ")" [DEFAULT ON NULL "(" expr ")"] ")" [alias]
//	unpivot  → factor UNPIVOT [INCLUDE|EXCLUDE NULLS] "(" value FOR name IN "(" col [AS a] {, ...} ")" ")" [alias]
//	match    → factor MATCH_RECOGNIZE "(" [PARTITION BY ...] [ORDER BY ...] [MEASURES ...]
//	           [rows_per_match] [AFTER MATCH SKIP ...] PATTERN "(" pattern ")" DEFINE ... ")" [alias]
//	pattern  → concat {"|" concat}
//	concat   → repeat {repeat}
//	repeat   → primary {quantifier}
//	primary  → symbol | "^" | "$" | "{-" symbol "-}" | PERMUTE "(" symbols ")" | "(" pattern ")"

// parsePivot parses the body of PIVOT( after the opening paren.
func (p *Parser) parsePivot(table ast.TableFactor) (ast.TableFactor, error) {
	aggs, err := parseCommaSeparated(p, p.parseExprWithAlias)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.FOR); err != nil {
		return nil, err
	}
	pv := &ast.Pivot{Table: table, AggregateFunctions: aggs}
	if p.peekIs(token.LPAREN) {
		if pv.ValueColumn, err = p.parseParenExprs(); err != nil {
			return nil, err
		}
	} else {
		// stop before IN
		col, err := p.ParseSubexpr(spi.PrecedenceIs)
		if err != nil {
			return nil, err
		}
		pv.ValueColumn = []ast.Expr{col}
	}
	if _, err := p.ExpectKeyword(keyword.IN); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	switch {
	case p.ParseKeyword(keyword.ANY):
		pv.ValueSource.Any = true
		if p.ParseKeywords(keyword.ORDER, keyword.BY) {
			if pv.ValueSource.AnyOrder, err = parseCommaSeparated(p, p.parseOrderByExpr); err != nil {
				return nil, err
			}
		}
	case p.isQueryStart():
		if pv.ValueSource.Subquery, err = p.ParseQuery(); err != nil {
			return nil, err
		}
	default:
		if pv.ValueSource.List, err = parseCommaSeparated(p, p.parseExprWithAlias); err != nil {
			return nil, err
		}
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if p.ParseKeywords(keyword.DEFAULT, keyword.ON, keyword.NULL) {
		if _, err := p.ExpectToken(token.LPAREN); err != nil {
			return nil, err
		}
		if pv.DefaultOnNull, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if pv.Alias, err = p.parseTableAlias(); err != nil {
		return nil, err
	}
	return pv, nil
}

// parseUnpivot parses what follows the UNPIVOT keyword.
func (p *Parser) parseUnpivot(table ast.TableFactor) (ast.TableFactor, error) {
	u := &ast.Unpivot{Table: table}
	switch {
	case p.ParseKeywords(keyword.INCLUDE, keyword.NULLS):
		u.NullInclusion = "INCLUDE NULLS"
	case p.ParseKeywords(keyword.EXCLUDE, keyword.NULLS):
		u.NullInclusion = "EXCLUDE NULLS"
	}
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	var err error
	if u.Value, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.FOR); err != nil {
		return nil, err
	}
	if u.Name, err = p.ParseIdentifier(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.IN); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	if u.Columns, err = parseCommaSeparated(p, p.parseExprWithAlias); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if u.Alias, err = p.parseTableAlias(); err != nil {
		return nil, err
	}
	return u, nil
}

func (p *Parser) parseExprWithAlias() (ast.ExprWithAlias, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return ast.ExprWithAlias{}, err
	}
	alias, err := p.parseColumnAlias()
	if err != nil {
		return ast.ExprWithAlias{}, err
	}
	return ast.ExprWithAlias{Expr: expr, Alias: alias}, nil
}

// ---------- MATCH_RECOGNIZE ----------

// parseMatchRecognize parses the body of MATCH_RECOGNIZE( after the paren.
func (p *Parser) parseMatchRecognize(table ast.TableFactor) (ast.TableFactor, error) {
	m := &ast.MatchRecognize{Table: table}
	var err error
	if p.ParseKeywords(keyword.PARTITION, keyword.BY) {
		if m.PartitionBy, err = p.ParseCommaSeparatedExprs(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeywords(keyword.ORDER, keyword.BY) {
		if m.OrderBy, err = parseCommaSeparated(p, p.parseOrderByExpr); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.MEASURES) {
		if m.Measures, err = parseCommaSeparated(p, p.parseMeasure); err != nil {
			return nil, err
		}
	}
	if m.RowsPerMatch, err = p.parseRowsPerMatch(); err != nil {
		return nil, err
	}
	if p.ParseKeywords(keyword.AFTER, keyword.MATCH, keyword.SKIP) {
		if m.AfterMatchSkip, err = p.parseAfterMatchSkip(); err != nil {
			return nil, err
		}
	}
	if _, err := p.ExpectKeyword(keyword.PATTERN); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	if m.Pattern, err = p.parsePatternAlternation(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.DEFINE); err != nil {
		return nil, err
	}
	if m.Symbols, err = parseCommaSeparated(p, p.parseSymbolDefinition); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if m.Alias, err = p.parseTableAlias(); err != nil {
		return nil, err
	}
	return m, nil
}

func (p *Parser) parseMeasure() (ast.Measure, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return ast.Measure{}, err
	}
	if _, err := p.ExpectKeyword(keyword.AS); err != nil {
		return ast.Measure{}, err
	}
	alias, err := p.ParseIdentifier()
	if err != nil {
		return ast.Measure{}, err
	}
	return ast.Measure{Expr: expr, Alias: alias}, nil
}

func (p *Parser) parseSymbolDefinition() (ast.SymbolDefinition, error) {
	sym, err := p.ParseIdentifier()
	if err != nil {
		return ast.SymbolDefinition{}, err
	}
	if _, err := p.ExpectKeyword(keyword.AS); err != nil {
		return ast.SymbolDefinition{}, err
	}
	def, err := p.ParseExpr()
	if err != nil {
		return ast.SymbolDefinition{}, err
	}
	return ast.SymbolDefinition{Symbol: sym, Definition: def}, nil
}

func (p *Parser) parseRowsPerMatch() (string, error) {
	switch {
	case p.ParseKeywords(keyword.ONE, keyword.ROW, keyword.PER, keyword.MATCH):
		return "ONE ROW PER MATCH", nil
	case p.ParseKeywords(keyword.ALL, keyword.ROWS, keyword.PER, keyword.MATCH):
		switch {
		case p.ParseKeywords(keyword.SHOW, keyword.EMPTY, keyword.MATCHES):
			return "ALL ROWS PER MATCH SHOW EMPTY MATCHES", nil
		case p.ParseKeywords(keyword.OMIT, keyword.EMPTY, keyword.MATCHES):
			return "ALL ROWS PER MATCH OMIT EMPTY MATCHES", nil
		case p.ParseKeywords(keyword.WITH, keyword.UNMATCHED, keyword.ROWS):
			return "ALL ROWS PER MATCH WITH UNMATCHED ROWS", nil
		}
		return "ALL ROWS PER MATCH", nil
	}
	return "", nil
}

func (p *Parser) parseAfterMatchSkip() (string, error) {
	switch {
	case p.ParseKeywords(keyword.PAST, keyword.LAST, keyword.ROW):
		return "PAST LAST ROW", nil
	case p.ParseKeywords(keyword.TO, keyword.NEXT, keyword.ROW):
		return "TO NEXT ROW", nil
	case p.ParseKeywords(keyword.TO, keyword.FIRST):
		sym, err := p.ParseIdentifier()
		return "TO FIRST " + sym.String(), err
	case p.ParseKeywords(keyword.TO, keyword.LAST):
		sym, err := p.ParseIdentifier()
		return "TO LAST " + sym.String(), err
	case p.ParseKeyword(keyword.TO):
		sym, err := p.ParseIdentifier()
		return "TO " + sym.String(), err
	}
	return "", p.Expected("PAST LAST ROW, TO NEXT ROW or TO symbol", p.PeekToken())
}

func (p *Parser) parsePatternAlternation() (ast.MatchRecognizePattern, error) {
	first, err := p.parsePatternConcat()
	if err != nil {
		return first, err
	}
	if !p.peekIs(token.PIPE) {
		return first, nil
	}
	alt := ast.MatchRecognizePattern{Kind: ast.PatternAlternation, Patterns: []ast.MatchRecognizePattern{first}}
	for p.ConsumeToken(token.PIPE) {
		next, err := p.parsePatternConcat()
		if err != nil {
			return alt, err
		}
		alt.Patterns = append(alt.Patterns, next)
	}
	return alt, nil
}

func (p *Parser) parsePatternConcat() (ast.MatchRecognizePattern, error) {
	var parts []ast.MatchRecognizePattern
	for {
		switch p.PeekToken().Type {
		case token.RPAREN, token.PIPE, token.EOF:
			switch len(parts) {
			case 0:
				return ast.MatchRecognizePattern{}, p.Expected("a pattern", p.PeekToken())
			case 1:
				return parts[0], nil
			}
			return ast.MatchRecognizePattern{Kind: ast.PatternConcat, Patterns: parts}, nil
		}
		part, err := p.parsePatternRepetition()
		if err != nil {
			return part, err
		}
		parts = append(parts, part)
	}
}

func (p *Parser) parsePatternRepetition() (ast.MatchRecognizePattern, error) {
	pat, err := p.parsePatternPrimary()
	if err != nil {
		return pat, err
	}
	for {
		q, ok, err := p.parsePatternQuantifier()
		if err != nil {
			return pat, err
		}
		if !ok {
			return pat, nil
		}
		pat = ast.MatchRecognizePattern{Kind: ast.PatternRepetition, Patterns: []ast.MatchRecognizePattern{pat}, Quantifier: q}
	}
}

func (p *Parser) parsePatternPrimary() (ast.MatchRecognizePattern, error) {
	tok := p.PeekToken()
	switch {
	case tok.Type == token.CARET:
		p.index++
		return ast.MatchRecognizePattern{Kind: ast.PatternStart}, nil
	case tok.Value == "$" && (tok.Type == token.PLACEHOLDER || tok.Type == token.WORD):
		p.index++
		return ast.MatchRecognizePattern{Kind: ast.PatternEnd}, nil
	case tok.Type == token.LBRACE && p.peekNthIs(1, token.MINUS):
		p.index += 2
		sym, err := p.ParseIdentifier()
		if err != nil {
			return ast.MatchRecognizePattern{}, err
		}
		if _, err := p.ExpectToken(token.MINUS); err != nil {
			return ast.MatchRecognizePattern{}, err
		}
		if _, err := p.ExpectToken(token.RBRACE); err != nil {
			return ast.MatchRecognizePattern{}, err
		}
		return ast.MatchRecognizePattern{Kind: ast.PatternExclude, Symbol: sym}, nil
	case tok.IsKeyword(keyword.PERMUTE) && p.peekNthIs(1, token.LPAREN):
		p.index++
		syms, err := p.parseParenIdents()
		if err != nil {
			return ast.MatchRecognizePattern{}, err
		}
		return ast.MatchRecognizePattern{Kind: ast.PatternPermute, Symbols: syms}, nil
	case tok.Type == token.LPAREN:
		p.index++
		inner, err := p.parsePatternAlternation()
		if err != nil {
			return inner, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return inner, err
		}
		return ast.MatchRecognizePattern{Kind: ast.PatternGroup, Patterns: []ast.MatchRecognizePattern{inner}}, nil
	case tok.Type == token.WORD:
		p.index++
		return ast.MatchRecognizePattern{Kind: ast.PatternSymbol, Symbol: identFrom(tok)}, nil
	}
	return ast.MatchRecognizePattern{}, p.Expected("a pattern symbol", tok)
}

// parsePatternQuantifier parses *, +, ?, {n}, {n,}, {,m} or {n,m}, each
// optionally followed by a reluctant '?'.
func (p *Parser) parsePatternQuantifier() (string, bool, error) {
	tok := p.PeekToken()
	var q string
	switch {
	case tok.Type == token.STAR:
		p.index++
		q = "*"
	case tok.Type == token.PLUS:
		p.index++
		q = "+"
	case tok.Type == token.PLACEHOLDER && tok.Value == "?":
		p.index++
		q = "?"
	case tok.Type == token.LBRACE && (p.peekNthIs(1, token.NUMBER) || p.peekNthIs(1, token.COMMA)):
		p.index++
		q = "{"
		if n := p.PeekToken(); n.Type == token.NUMBER {
			p.index++
			q += n.Value
		}
		if p.ConsumeToken(token.COMMA) {
			q += ","
			if m := p.PeekToken(); m.Type == token.NUMBER {
				p.index++
				q += m.Value
			}
		}
		if _, err := p.ExpectToken(token.RBRACE); err != nil {
			return "", false, err
		}
		q += "}"
	default:
		return "", false, nil
	}
	if next := p.PeekToken(); next.Type == token.PLACEHOLDER && next.Value == "?" {
		p.index++
		q += "?"
	}
	return q, true, nil
}
