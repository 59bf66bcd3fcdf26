package parser

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// Table-valued constructs with their own column grammar: JSON_TABLE,
// OPENJSON, XMLTABLE and GRAPH_TABLE. Each parser is entered after the
// opening paren.

// ---------- JSON_TABLE ----------

func (p *Parser) parseJSONTable() (ast.TableFactor, error) {
	jt := &ast.JSONTable{}
	var err error
	if jt.JSONExpr, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.COMMA); err != nil {
		return nil, err
	}
	if jt.JSONPath, err = p.ParseLiteralString(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.COLUMNS); err != nil {
		return nil, err
	}
	if jt.Columns, err = p.parseJSONTableColumns(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if jt.Alias, err = p.parseTableAlias(); err != nil {
		return nil, err
	}
	return jt, nil
}

func (p *Parser) parseJSONTableColumns() ([]ast.JSONTableColumn, error) {
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	cols, err := parseCommaSeparated(p, p.parseJSONTableColumn)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return cols, nil
}

func (p *Parser) parseJSONTableColumn() (ast.JSONTableColumn, error) {
	var col ast.JSONTableColumn
	if p.PeekKeyword(keyword.NESTED) && (p.PeekNthToken(1).IsKeyword(keyword.PATH) || p.peekNthIs(1, token.STRING)) {
		p.index++
		p.ParseKeyword(keyword.PATH)
		path, err := p.ParseLiteralString()
		if err != nil {
			return col, err
		}
		if _, err := p.ExpectKeyword(keyword.COLUMNS); err != nil {
			return col, err
		}
		cols, err := p.parseJSONTableColumns()
		if err != nil {
			return col, err
		}
		col.Nested = &ast.JSONTableNested{Path: path, Columns: cols}
		return col, nil
	}
	var err error
	if col.Name, err = p.ParseIdentifier(); err != nil {
		return col, err
	}
	if p.ParseKeywords(keyword.FOR, keyword.ORDINALITY) {
		col.ForOrdinality = true
		return col, nil
	}
	if col.DataType, err = p.ParseDataType(); err != nil {
		return col, err
	}
	col.Exists = p.ParseKeyword(keyword.EXISTS)
	if p.ParseKeyword(keyword.PATH) {
		path, err := p.ParseLiteralString()
		if err != nil {
			return col, err
		}
		col.Path = &path
	}
	for range 2 {
		behavior, err := p.parseJSONBehavior()
		if err != nil {
			return col, err
		}
		if behavior == "" {
			break
		}
		if _, err := p.ExpectKeyword(keyword.ON); err != nil {
			return col, err
		}
		kw, err := p.expectOneOfKeywords(keyword.EMPTY, keyword.ERROR)
		if err != nil {
			return col, err
		}
		if kw == keyword.EMPTY {
			col.OnEmpty = behavior
		} else {
			col.OnError = behavior
		}
	}
	return col, nil
}

// parseJSONBehavior parses NULL | ERROR | DEFAULT value ahead of ON EMPTY /
// ON ERROR. It returns "" when none is present.
func (p *Parser) parseJSONBehavior() (string, error) {
	switch {
	case p.peekKeywords(keyword.NULL, keyword.ON):
		p.index++
		return "NULL", nil
	case p.peekKeywords(keyword.ERROR, keyword.ON):
		p.index++
		return "ERROR", nil
	case p.ParseKeyword(keyword.DEFAULT):
		v, err := p.parseValue()
		if err != nil {
			return "", err
		}
		return "DEFAULT " + v.String(), nil
	}
	return "", nil
}

// ---------- OPENJSON ----------

func (p *Parser) parseOpenJSONTable() (ast.TableFactor, error) {
	o := &ast.OpenJSONTable{}
	var err error
	if o.JSONExpr, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	if p.ConsumeToken(token.COMMA) {
		path, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		o.JSONPath = &path
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if p.PeekKeyword(keyword.WITH) && p.peekNthIs(1, token.LPAREN) {
		p.index += 2
		if o.Columns, err = parseCommaSeparated(p, p.parseOpenJSONColumn); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	if o.Alias, err = p.parseTableAlias(); err != nil {
		return nil, err
	}
	return o, nil
}

func (p *Parser) parseOpenJSONColumn() (ast.OpenJSONColumn, error) {
	var col ast.OpenJSONColumn
	var err error
	if col.Name, err = p.ParseIdentifier(); err != nil {
		return col, err
	}
	if col.DataType, err = p.ParseDataType(); err != nil {
		return col, err
	}
	if p.peekIs(token.STRING) {
		path, _ := p.ParseLiteralString()
		col.Path = &path
	}
	col.AsJSON = p.ParseKeywords(keyword.AS, keyword.JSON)
	return col, nil
}

// ---------- XMLTABLE ----------

func (p *Parser) parseXMLTable() (ast.TableFactor, error) {
	x := &ast.XMLTable{}
	var err error
	if p.PeekKeyword(keyword.XMLNAMESPACES) && p.peekNthIs(1, token.LPAREN) {
		p.index += 2
		if x.Namespaces, err = parseCommaSeparated(p, p.parseXMLNamespace); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.COMMA); err != nil {
			return nil, err
		}
	}
	if x.RowExpr, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.PASSING) {
		if x.Passing, err = parseCommaSeparated(p, p.parseXMLPassingArg); err != nil {
			return nil, err
		}
	}
	if _, err := p.ExpectKeyword(keyword.COLUMNS); err != nil {
		return nil, err
	}
	if x.Columns, err = parseCommaSeparated(p, p.parseXMLTableColumn); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if x.Alias, err = p.parseTableAlias(); err != nil {
		return nil, err
	}
	return x, nil
}

func (p *Parser) parseXMLNamespace() (ast.XMLNamespace, error) {
	uri, err := p.ParseExpr()
	if err != nil {
		return ast.XMLNamespace{}, err
	}
	if _, err := p.ExpectKeyword(keyword.AS); err != nil {
		return ast.XMLNamespace{}, err
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return ast.XMLNamespace{}, err
	}
	return ast.XMLNamespace{URI: uri, Name: name}, nil
}

func (p *Parser) parseXMLPassingArg() (ast.XMLPassingArg, error) {
	arg := ast.XMLPassingArg{ByValue: p.ParseKeywords(keyword.BY, keyword.VALUE)}
	if !arg.ByValue {
		p.ParseKeywords(keyword.BY, keyword.REF)
	}
	var err error
	if arg.Expr, err = p.ParseExpr(); err != nil {
		return arg, err
	}
	if p.ParseKeyword(keyword.AS) {
		alias, err := p.ParseIdentifier()
		if err != nil {
			return arg, err
		}
		arg.Alias = &alias
	}
	return arg, nil
}

func (p *Parser) parseXMLTableColumn() (ast.XMLTableColumn, error) {
	var col ast.XMLTableColumn
	var err error
	if col.Name, err = p.ParseIdentifier(); err != nil {
		return col, err
	}
	if p.ParseKeywords(keyword.FOR, keyword.ORDINALITY) {
		col.ForOrdinality = true
		return col, nil
	}
	if col.DataType, err = p.ParseDataType(); err != nil {
		return col, err
	}
	if p.ParseKeyword(keyword.PATH) {
		if col.Path, err = p.ParseExpr(); err != nil {
			return col, err
		}
	}
	if p.ParseKeyword(keyword.DEFAULT) {
		if col.Default, err = p.ParseExpr(); err != nil {
			return col, err
		}
	}
	switch {
	case p.ParseKeywords(keyword.NOT, keyword.NULL):
		col.Nullable = boolPtr(false)
	case p.ParseKeyword(keyword.NULL):
		col.Nullable = boolPtr(true)
	}
	return col, nil
}

// ---------- GRAPH_TABLE ----------

// parseGraphTable parses SQL/PGQ GRAPH_TABLE(graph MATCH ... COLUMNS (...)).
func (p *Parser) parseGraphTable() (ast.TableFactor, error) {
	g := &ast.GraphTable{}
	var err error
	if g.Graph, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.MATCH); err != nil {
		return nil, err
	}
	if g.Match, err = parseCommaSeparated(p, p.parseGraphPathPattern); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.WHERE) {
		if g.Where, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.ExpectKeyword(keyword.COLUMNS); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	if g.Columns, err = parseCommaSeparated(p, p.parseSelectItem); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if g.Alias, err = p.parseTableAlias(); err != nil {
		return nil, err
	}
	return g, nil
}

func (p *Parser) parseGraphPathPattern() (ast.GraphPathPattern, error) {
	var path ast.GraphPathPattern
	if tok := p.PeekToken(); tok.Type == token.WORD && p.peekNthIs(1, token.EQ) {
		p.index += 2
		name := identFrom(tok)
		path.Name = &name
	}
	for {
		elem, ok, err := p.parseGraphElement()
		if err != nil {
			return path, err
		}
		if !ok {
			break
		}
		path.Elements = append(path.Elements, elem)
	}
	if len(path.Elements) == 0 {
		return path, p.Expected("a graph pattern", p.PeekToken())
	}
	return path, nil
}

// peekLeftArrow reports the length of a `<-` at the cursor: one CUSTOMOP
// token, or LT followed by MINUS.
func (p *Parser) peekLeftArrow() int {
	tok := p.PeekToken()
	switch {
	case tok.Type == token.CUSTOMOP && tok.Value == "<-":
		return 1
	case tok.Type == token.LT && p.peekNthIs(1, token.MINUS):
		return 2
	}
	return 0
}

func (p *Parser) parseGraphElement() (ast.GraphElement, bool, error) {
	var e ast.GraphElement
	tok := p.PeekToken()
	switch {
	case tok.Type == token.LPAREN:
		p.index++
		e.Kind = ast.GraphVertex
		if err := p.parseGraphFiller(&e, token.RPAREN); err != nil {
			return e, false, err
		}
		return e, true, nil
	case tok.Type == token.ARROW:
		p.index++
		e.Kind = ast.GraphEdgeRight
		e.Abbrev = true
	case p.peekLeftArrow() > 0:
		p.index += p.peekLeftArrow()
		e.Kind = ast.GraphEdgeLeft
		if p.ConsumeToken(token.LBRACKET) {
			if err := p.parseGraphFiller(&e, token.RBRACKET); err != nil {
				return e, false, err
			}
			if _, err := p.ExpectToken(token.MINUS); err != nil {
				return e, false, err
			}
		} else {
			e.Abbrev = true
		}
	case tok.Type == token.MINUS:
		p.index++
		e.Kind = ast.GraphEdgeAny
		if p.ConsumeToken(token.LBRACKET) {
			if err := p.parseGraphFiller(&e, token.RBRACKET); err != nil {
				return e, false, err
			}
			switch {
			case p.ConsumeToken(token.ARROW):
				e.Kind = ast.GraphEdgeRight
			case p.ConsumeToken(token.MINUS):
			default:
				return e, false, p.Expected("-> or -", p.PeekToken())
			}
		} else {
			e.Abbrev = true
		}
	default:
		return e, false, nil
	}
	q, _, err := p.parsePatternQuantifier()
	if err != nil {
		return e, false, err
	}
	e.Quantifier = q
	return e, true, nil
}

// parseGraphFiller parses [var] [IS label] [WHERE cond] and the closing
// token.
func (p *Parser) parseGraphFiller(e *ast.GraphElement, closing token.TokenType) error {
	if tok := p.PeekToken(); tok.Type == token.WORD && !tok.IsKeyword(keyword.IS) && !tok.IsKeyword(keyword.WHERE) {
		p.index++
		v := identFrom(tok)
		e.Variable = &v
	}
	if p.ParseKeyword(keyword.IS) || p.ConsumeToken(token.COLON) {
		label, err := p.parseGraphLabel()
		if err != nil {
			return err
		}
		e.Label = label
	}
	if p.ParseKeyword(keyword.WHERE) {
		where, err := p.ParseExpr()
		if err != nil {
			return err
		}
		e.Where = where
	}
	_, err := p.ExpectToken(closing)
	return err
}

func (p *Parser) parseGraphLabel() (ast.Expr, error) {
	left, err := p.parseGraphLabelTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op string
		switch {
		case p.ConsumeToken(token.PIPE):
			op = "|"
		case p.ConsumeToken(token.AMPERSAND):
			op = "&"
		default:
			return left, nil
		}
		right, err := p.parseGraphLabelTerm()
		if err != nil {
			return nil, err
		}
		if l, ok := left.(*ast.GraphLabel); ok && l.Op == op {
			l.Args = append(l.Args, right)
			continue
		}
		left = &ast.GraphLabel{Op: op, Args: []ast.Expr{left, right}}
	}
}

func (p *Parser) parseGraphLabelTerm() (ast.Expr, error) {
	tok := p.PeekToken()
	switch tok.Type {
	case token.EXCL:
		p.index++
		inner, err := p.parseGraphLabelTerm()
		if err != nil {
			return nil, err
		}
		return &ast.GraphLabel{Op: "!", Args: []ast.Expr{inner}}, nil
	case token.PERCENT:
		p.index++
		return &ast.GraphLabel{}, nil
	case token.LPAREN:
		p.index++
		inner, err := p.parseGraphLabel()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Nested{Expr: inner}, nil
	case token.WORD:
		p.index++
		name := identFrom(tok)
		return &ast.GraphLabel{Name: &name}, nil
	}
	return nil, p.Expected("a label", tok)
}
