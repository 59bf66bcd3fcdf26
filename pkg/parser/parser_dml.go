package parser

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// Data modification statements.
//
// Grammar:
//
//	insert → (INSERT | REPLACE) [OR action] [priority] [IGNORE] [OVERWRITE] [INTO] [TABLE]
//	         (name | FUNCTION f(...)) [AS alias] [(cols)] [PARTITION (...)]
//	         (query | SET assignments | DEFAULT VALUES | FORMAT name)
//	         [AS row [(cols)]] [ON DUPLICATE KEY UPDATE ...] [ON CONFLICT ...] [RETURNING ...]
//	update → UPDATE [OR action] table [FROM ...] SET assignments [FROM ...] [WHERE expr]
//	         [RETURNING ...] [ORDER BY ...] [LIMIT expr]
//	delete → DELETE [tables] [FROM] tables [USING tables] [WHERE expr] [RETURNING ...]
//	         [ORDER BY ...] [LIMIT expr]
//	merge  → MERGE [INTO] table USING source ON expr {WHEN ...} [OUTPUT ...]

var insertOrActions = []keyword.Keyword{
	keyword.ROLLBACK, keyword.ABORT, keyword.REPLACE, keyword.FAIL, keyword.IGNORE,
}

func (p *Parser) parseInsert() (*ast.Insert, error) {
	d := p.dialect
	tok := p.NextToken()
	ins := &ast.Insert{InsertToken: ast.Attach(tok), Replace: tok.IsKeyword(keyword.REPLACE)}
	var err error

	if d.InsertOr && p.PeekKeyword(keyword.OR) {
		p.index++
		kw, err := p.expectOneOfKeywords(insertOrActions...)
		if err != nil {
			return nil, err
		}
		ins.Or = kw.String()
	}
	if kw := p.ParseOneOfKeywords(keyword.LOW_PRIORITY, keyword.DELAYED, keyword.HIGH_PRIORITY); kw != keyword.NoKeyword {
		ins.Priority = kw.String()
	}
	ins.Ignore = p.ParseKeyword(keyword.IGNORE)
	ins.Overwrite = p.ParseKeyword(keyword.OVERWRITE)
	ins.Into = p.ParseKeyword(keyword.INTO)
	ins.TableKeyword = p.ParseKeyword(keyword.TABLE)

	if p.PeekKeyword(keyword.FUNCTION) {
		p.index++
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.LPAREN); err != nil {
			return nil, err
		}
		fn, err := p.parseFunction(name)
		if err != nil {
			return nil, err
		}
		ins.TableFunction = fn.(*ast.Function)
	} else if ins.Table, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.AS) {
		alias, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		ins.TableAlias = &alias
	}
	if p.peekIs(token.LPAREN) && !p.isParenQuery() {
		if ins.Columns, err = p.parseParenIdents(); err != nil {
			return nil, err
		}
	}
	if p.PeekKeyword(keyword.PARTITION) && p.peekNthIs(1, token.LPAREN) {
		p.index++
		if ins.Partitioned, err = p.parseParenExprs(); err != nil {
			return nil, err
		}
		if p.peekIs(token.LPAREN) && !p.isParenQuery() {
			if ins.AfterColumns, err = p.parseParenIdents(); err != nil {
				return nil, err
			}
		}
	}
	if d.Settings && p.ParseKeyword(keyword.SETTINGS) {
		if ins.Settings, err = parseCommaSeparated(p, p.parseSetting); err != nil {
			return nil, err
		}
	}

	switch {
	case d.InsertSet && p.ParseKeyword(keyword.SET):
		if ins.Assignments, err = parseCommaSeparated(p, p.parseAssignment); err != nil {
			return nil, err
		}
	case p.ParseKeywords(keyword.DEFAULT, keyword.VALUES):
		ins.DefaultValues = true
	case p.PeekKeyword(keyword.FORMAT):
		p.index++
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		ins.Format = &ast.InputFormat{Name: name}
	case p.PeekKeyword(keyword.VALUE):
		values, err := p.parseValues()
		if err != nil {
			return nil, err
		}
		ins.Source = &ast.Query{Body: values}
	default:
		if ins.Source, err = p.ParseQuery(); err != nil {
			return nil, err
		}
	}

	if d.OnDuplicateKey && p.PeekKeyword(keyword.AS) {
		p.index++
		row, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		ins.Alias = &ast.InsertAlias{Row: row}
		if p.peekIs(token.LPAREN) {
			if ins.Alias.Columns, err = p.parseParenIdents(); err != nil {
				return nil, err
			}
		}
	}
	if d.OnDuplicateKey && p.ParseKeywords(keyword.ON, keyword.DUPLICATE, keyword.KEY, keyword.UPDATE) {
		if ins.OnDuplicateKey, err = parseCommaSeparated(p, p.parseAssignment); err != nil {
			return nil, err
		}
	}
	if d.OnConflict && p.ParseKeywords(keyword.ON, keyword.CONFLICT) {
		if ins.OnConflict, err = p.parseOnConflict(); err != nil {
			return nil, err
		}
	}
	if ins.Returning, err = p.parseReturning(); err != nil {
		return nil, err
	}
	return ins, nil
}

// isParenQuery reports whether a '(' at the cursor opens a subquery rather
// than a column list.
func (p *Parser) isParenQuery() bool {
	next := p.PeekNthToken(1)
	return next.IsKeyword(keyword.SELECT) || next.IsKeyword(keyword.WITH) ||
		next.IsKeyword(keyword.VALUES) || next.Type == token.LPAREN
}

func (p *Parser) parseOnConflict() (*ast.OnConflict, error) {
	oc := &ast.OnConflict{}
	switch {
	case p.ParseKeywords(keyword.ON, keyword.CONSTRAINT):
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		oc.Target = &ast.ConflictTarget{OnConstraint: name}
	case p.peekIs(token.LPAREN):
		cols, err := p.parseParenIdents()
		if err != nil {
			return nil, err
		}
		oc.Target = &ast.ConflictTarget{Columns: cols}
	}
	if _, err := p.ExpectKeyword(keyword.DO); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.NOTHING) {
		oc.DoNothing = true
		return oc, nil
	}
	if err := p.ExpectKeywords(keyword.UPDATE, keyword.SET); err != nil {
		return nil, err
	}
	var err error
	if oc.Assignments, err = parseCommaSeparated(p, p.parseAssignment); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.WHERE) {
		if oc.Selection, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	return oc, nil
}

func (p *Parser) parseAssignment() (ast.Assignment, error) {
	var a ast.Assignment
	if p.ConsumeToken(token.LPAREN) {
		names, err := p.parseObjectNames()
		if err != nil {
			return a, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return a, err
		}
		a.Target.Tuple = names
	} else {
		name, err := p.ParseObjectName()
		if err != nil {
			return a, err
		}
		a.Target.Column = name
	}
	if _, err := p.ExpectToken(token.EQ); err != nil {
		return a, err
	}
	v, err := p.ParseExpr()
	if err != nil {
		return a, err
	}
	a.Value = v
	return a, nil
}

func (p *Parser) parseReturning() ([]ast.SelectItem, error) {
	if !p.dialect.Returning || !p.ParseKeyword(keyword.RETURNING) {
		return nil, nil
	}
	return parseCommaSeparated(p, p.parseSelectItem)
}

// ---------- UPDATE ----------

func (p *Parser) parseUpdate() (*ast.Update, error) {
	d := p.dialect
	u := &ast.Update{UpdateToken: ast.Attach(p.NextToken())}
	var err error
	if d.InsertOr && p.PeekKeyword(keyword.OR) {
		p.index++
		kw, err := p.expectOneOfKeywords(insertOrActions...)
		if err != nil {
			return nil, err
		}
		u.Or = kw.String()
	}
	if u.Table, err = p.parseTableWithJoins(); err != nil {
		return nil, err
	}
	if d.UpdateFrom && p.ParseKeyword(keyword.FROM) {
		u.FromBeforeSet = true
		if u.From, err = p.parseFromList(); err != nil {
			return nil, err
		}
	}
	if _, err := p.ExpectKeyword(keyword.SET); err != nil {
		return nil, err
	}
	if u.Assignments, err = parseCommaSeparated(p, p.parseAssignment); err != nil {
		return nil, err
	}
	if d.UpdateFrom && !u.FromBeforeSet && p.ParseKeyword(keyword.FROM) {
		if u.From, err = p.parseFromList(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.WHERE) {
		if u.Selection, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	if u.Returning, err = p.parseReturning(); err != nil {
		return nil, err
	}
	if p.ParseKeywords(keyword.ORDER, keyword.BY) {
		if u.OrderBy, err = parseCommaSeparated(p, p.parseOrderByExpr); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.LIMIT) {
		if u.Limit, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// ---------- DELETE ----------

func (p *Parser) parseDelete() (*ast.Delete, error) {
	d := &ast.Delete{DeleteToken: ast.Attach(p.NextToken())}
	var err error
	if !p.PeekKeyword(keyword.FROM) {
		// MySQL multi-table form: DELETE t1, t2 FROM ...
		start := p.index
		if names, nerr := p.parseObjectNames(); nerr == nil && p.PeekKeyword(keyword.FROM) {
			d.Tables = names
		} else {
			p.index = start
		}
	}
	d.FromKeyword = p.ParseKeyword(keyword.FROM)
	if d.From, err = p.parseFromList(); err != nil {
		return nil, err
	}
	if p.dialect.DeleteUsing && p.ParseKeyword(keyword.USING) {
		if d.Using, err = p.parseFromList(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.WHERE) {
		if d.Selection, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	if d.Returning, err = p.parseReturning(); err != nil {
		return nil, err
	}
	if p.ParseKeywords(keyword.ORDER, keyword.BY) {
		if d.OrderBy, err = parseCommaSeparated(p, p.parseOrderByExpr); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.LIMIT) {
		if d.Limit, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ---------- MERGE ----------

func (p *Parser) parseMerge() (*ast.Merge, error) {
	m := &ast.Merge{MergeToken: ast.Attach(p.NextToken())}
	m.Into = p.ParseKeyword(keyword.INTO)
	var err error
	if m.Table, err = p.parseTableFactor(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.USING); err != nil {
		return nil, err
	}
	if m.Source, err = p.parseTableFactor(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.ON); err != nil {
		return nil, err
	}
	if m.On, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	for p.ParseKeyword(keyword.WHEN) {
		clause, err := p.parseMergeClause()
		if err != nil {
			return nil, err
		}
		m.Clauses = append(m.Clauses, clause)
	}
	if len(m.Clauses) == 0 {
		return nil, p.Expected("WHEN", p.PeekToken())
	}
	if p.ParseKeyword(keyword.OUTPUT) {
		if m.Output, err = parseCommaSeparated(p, p.parseSelectItem); err != nil {
			return nil, err
		}
		if p.ParseKeyword(keyword.INTO) {
			name, err := p.ParseObjectName()
			if err != nil {
				return nil, err
			}
			m.OutputInto = &name
		}
	}
	return m, nil
}

func (p *Parser) parseMergeClause() (ast.MergeClause, error) {
	var c ast.MergeClause
	switch {
	case p.ParseKeyword(keyword.MATCHED):
		c.Kind = ast.Matched
	case p.ParseKeywords(keyword.NOT, keyword.MATCHED):
		c.Kind = ast.NotMatched
		switch {
		case p.ParseKeywords(keyword.BY, keyword.TARGET):
			c.Kind = ast.NotMatchedByTarget
		case p.ParseKeywords(keyword.BY, keyword.SOURCE):
			c.Kind = ast.NotMatchedBySource
		}
	default:
		return c, p.Expected("MATCHED or NOT MATCHED", p.PeekToken())
	}
	var err error
	if p.ParseKeyword(keyword.AND) {
		if c.Predicate, err = p.ParseExpr(); err != nil {
			return c, err
		}
	}
	if _, err := p.ExpectKeyword(keyword.THEN); err != nil {
		return c, err
	}
	switch {
	case p.ParseKeywords(keyword.UPDATE, keyword.SET):
		assigns, err := parseCommaSeparated(p, p.parseAssignment)
		if err != nil {
			return c, err
		}
		c.Action = &ast.MergeUpdate{Assignments: assigns}
	case p.ParseKeyword(keyword.DELETE):
		c.Action = &ast.MergeDelete{}
	case p.ParseKeyword(keyword.INSERT):
		ins := &ast.MergeInsert{}
		if p.peekIs(token.LPAREN) {
			if ins.Columns, err = p.parseParenIdents(); err != nil {
				return c, err
			}
		}
		if p.ParseKeyword(keyword.ROW) {
			ins.Row = true
		} else if ins.Values, err = p.parseValues(); err != nil {
			return c, err
		}
		c.Action = ins
	default:
		return c, p.Expected("UPDATE, DELETE or INSERT", p.PeekToken())
	}
	return c, nil
}
