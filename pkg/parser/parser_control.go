package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// Procedural statements: blocks, conditionals, loops and signalling.
//
// Grammar:
//
//	block   → [label:] BEGIN [TRY|CATCH] stmts [EXCEPTION {WHEN c {OR c} THEN stmts}] END [TRY|CATCH] [label]
//	if      → IF cond THEN stmts {ELSEIF|ELSIF cond THEN stmts} [ELSE stmts] END IF
//	case    → CASE [operand] {WHEN expr THEN stmts} [ELSE stmts] END [CASE]
//	while   → [label:] WHILE cond (DO stmts END WHILE | LOOP stmts END LOOP) [label]
//	loop    → [label:] LOOP stmts END LOOP [label]
//	repeat  → [label:] REPEAT stmts UNTIL cond END REPEAT [label]
//	for     → [label:] FOR v IN ([REVERSE] lo..hi [BY step] | query) LOOP stmts END LOOP [label]
//	        | [label:] FOR v IN (query) DO stmts END FOR [label]
//	foreach → [label:] FOREACH v [SLICE n] IN ARRAY expr LOOP stmts END LOOP [label]
//
// A block that reaches EOF before its END fails with UnmatchedBlock.

var labeledStatementStarts = []keyword.Keyword{
	keyword.BEGIN, keyword.LOOP, keyword.WHILE, keyword.REPEAT, keyword.FOR, keyword.FOREACH,
}

func (p *Parser) isLabeledBlockStart() bool {
	next := p.PeekNthToken(2)
	for _, kw := range labeledStatementStarts {
		if next.IsKeyword(kw) {
			return true
		}
	}
	return false
}

func (p *Parser) parseLabeled() (ast.Statement, error) {
	label := identFrom(p.NextToken())
	p.index++ // ':'
	switch p.PeekToken().Keyword {
	case keyword.BEGIN:
		return p.parseBeginEnd(&label)
	case keyword.LOOP:
		return p.parseLoop(&label)
	case keyword.WHILE:
		return p.parseWhile(&label)
	case keyword.REPEAT:
		return p.parseRepeat(&label)
	case keyword.FOR:
		return p.parseFor(&label)
	default:
		return p.parseForeach(&label)
	}
}

// parseBlockBody parses statements up to one of terminals. Running into EOF
// reports the block opened by open as unmatched.
func (p *Parser) parseBlockBody(open token.TokenWithSpan, terminals ...keyword.Keyword) ([]ast.Statement, error) {
	stmts, err := p.ParseStatementList(terminals...)
	if err != nil {
		return nil, err
	}
	if p.peekIs(token.EOF) {
		return nil, p.unmatchedBlock(open)
	}
	return stmts, nil
}

func (p *Parser) unmatchedBlock(open token.TokenWithSpan) error {
	tok := p.PeekToken()
	return &ParseError{
		Kind:          UnmatchedBlock,
		Location:      tok.Span.Start,
		Found:         describe(tok),
		StartLocation: open.Span.Start,
	}
}

// expectEnd consumes END followed by the given keywords.
func (p *Parser) expectEnd(open token.TokenWithSpan, kws ...keyword.Keyword) (token.TokenWithSpan, error) {
	if p.peekIs(token.EOF) {
		return token.TokenWithSpan{}, p.unmatchedBlock(open)
	}
	end, err := p.ExpectKeyword(keyword.END)
	if err != nil {
		return end, err
	}
	return end, p.ExpectKeywords(kws...)
}

// parseEndLabel consumes a trailing label matching label.
func (p *Parser) parseEndLabel(label *ast.Ident) bool {
	if label == nil {
		return false
	}
	tok := p.PeekToken()
	if tok.Type == token.WORD && strings.EqualFold(tok.Value, label.Value) {
		p.index++
		return true
	}
	return false
}

// ---------- BEGIN ... END ----------

func (p *Parser) parseBeginEnd(label *ast.Ident) (*ast.BeginEnd, error) {
	begin := p.NextToken()
	b := &ast.BeginEnd{Label: label, BeginToken: ast.Attach(begin)}
	var kind keyword.Keyword
	if kind = p.ParseOneOfKeywords(keyword.TRY, keyword.CATCH); kind != keyword.NoKeyword {
		b.Kind = kind.String()
	}

	terminals := []keyword.Keyword{keyword.END}
	if p.dialect.ExceptionBlocks {
		terminals = append(terminals, keyword.EXCEPTION)
	}
	var err error
	if b.Statements, err = p.parseBlockBody(begin, terminals...); err != nil {
		return nil, err
	}
	if p.dialect.ExceptionBlocks && p.ParseKeyword(keyword.EXCEPTION) {
		b.HasExcept = true
		for p.ParseKeyword(keyword.WHEN) {
			var w ast.ExceptionWhen
			for {
				cond, err := p.ParseIdentifier()
				if err != nil {
					return nil, err
				}
				w.Conditions = append(w.Conditions, cond)
				if !p.ParseKeyword(keyword.OR) {
					break
				}
			}
			if _, err := p.ExpectKeyword(keyword.THEN); err != nil {
				return nil, err
			}
			if w.Statements, err = p.parseBlockBody(begin, keyword.WHEN, keyword.END); err != nil {
				return nil, err
			}
			b.Exceptions = append(b.Exceptions, w)
		}
	}

	var tail []keyword.Keyword
	if kind != keyword.NoKeyword {
		tail = append(tail, kind)
	}
	end, err := p.expectEnd(begin, tail...)
	if err != nil {
		return nil, err
	}
	b.EndToken = ast.Attach(end)
	b.EndLabel = p.parseEndLabel(label)
	return b, nil
}

// ---------- IF / CASE ----------

var ifTerminals = []keyword.Keyword{keyword.ELSEIF, keyword.ELSIF, keyword.ELSE, keyword.END}

func (p *Parser) parseIf() (*ast.If, error) {
	open := p.NextToken()
	stmt := &ast.If{}
	blk, err := p.parseConditionalBlock(open, open, ifTerminals)
	if err != nil {
		return nil, err
	}
	stmt.Blocks = append(stmt.Blocks, blk)

	for p.peekOneOf(keyword.ELSEIF, keyword.ELSIF) {
		blk, err := p.parseConditionalBlock(open, p.NextToken(), ifTerminals)
		if err != nil {
			return nil, err
		}
		stmt.Blocks = append(stmt.Blocks, blk)
	}
	if p.PeekKeyword(keyword.ELSE) {
		if stmt.Else, err = p.parseElseBlock(open); err != nil {
			return nil, err
		}
	}
	end, err := p.expectEnd(open, keyword.IF)
	if err != nil {
		return nil, err
	}
	stmt.EndIf = true
	stmt.EndToken = ast.Attach(end)
	return stmt, nil
}

// parseConditionalBlock parses `cond THEN stmts` after the keyword tok.
func (p *Parser) parseConditionalBlock(open, tok token.TokenWithSpan, terminals []keyword.Keyword) (ast.ConditionalBlock, error) {
	blk := ast.ConditionalBlock{Keyword: tok.Keyword.String(), Token: ast.Attach(tok), Then: true}
	var err error
	if blk.Condition, err = p.ParseExpr(); err != nil {
		return blk, err
	}
	if _, err := p.ExpectKeyword(keyword.THEN); err != nil {
		return blk, err
	}
	if blk.Statements, err = p.parseBlockBody(open, terminals...); err != nil {
		return blk, err
	}
	return blk, nil
}

func (p *Parser) parseElseBlock(open token.TokenWithSpan) (*ast.ConditionalBlock, error) {
	tok := p.NextToken()
	stmts, err := p.parseBlockBody(open, keyword.END)
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalBlock{Keyword: "ELSE", Token: ast.Attach(tok), Statements: stmts}, nil
}

func (p *Parser) parseCaseStatement() (*ast.CaseStatement, error) {
	open := p.NextToken()
	c := &ast.CaseStatement{CaseToken: ast.Attach(open)}
	var err error
	if !p.PeekKeyword(keyword.WHEN) {
		if c.Operand, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	terminals := []keyword.Keyword{keyword.WHEN, keyword.ELSE, keyword.END}
	for p.PeekKeyword(keyword.WHEN) {
		blk, err := p.parseConditionalBlock(open, p.NextToken(), terminals)
		if err != nil {
			return nil, err
		}
		c.Whens = append(c.Whens, blk)
	}
	if len(c.Whens) == 0 {
		return nil, p.Expected("WHEN", p.PeekToken())
	}
	if p.PeekKeyword(keyword.ELSE) {
		if c.Else, err = p.parseElseBlock(open); err != nil {
			return nil, err
		}
	}
	end, err := p.expectEnd(open)
	if err != nil {
		return nil, err
	}
	c.EndToken = ast.Attach(end)
	c.EndCase = p.ParseKeyword(keyword.CASE)
	return c, nil
}

// ---------- Loops ----------

// parseLoopBody parses DO ... END kw or LOOP ... END LOOP.
func (p *Parser) parseLoopBody(open token.TokenWithSpan, doEnd keyword.Keyword) (ast.LoopStyle, []ast.Statement, token.TokenWithSpan, error) {
	style := ast.LoopDo
	closing := doEnd
	switch {
	case p.ParseKeyword(keyword.DO):
	case p.ParseKeyword(keyword.LOOP):
		style, closing = ast.LoopLoop, keyword.LOOP
	default:
		return style, nil, token.TokenWithSpan{}, p.Expected("DO or LOOP", p.PeekToken())
	}
	body, err := p.parseBlockBody(open, keyword.END)
	if err != nil {
		return style, nil, token.TokenWithSpan{}, err
	}
	end, err := p.expectEnd(open, closing)
	return style, body, end, err
}

func (p *Parser) parseWhile(label *ast.Ident) (*ast.While, error) {
	open := p.NextToken()
	w := &ast.While{Label: label}
	var err error
	if w.Condition, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	var end token.TokenWithSpan
	if w.Style, w.Body, end, err = p.parseLoopBody(open, keyword.WHILE); err != nil {
		return nil, err
	}
	w.EndToken = ast.Attach(end)
	p.parseEndLabel(label)
	return w, nil
}

func (p *Parser) parseLoop(label *ast.Ident) (*ast.Loop, error) {
	open := p.NextToken()
	body, err := p.parseBlockBody(open, keyword.END)
	if err != nil {
		return nil, err
	}
	end, err := p.expectEnd(open, keyword.LOOP)
	if err != nil {
		return nil, err
	}
	p.parseEndLabel(label)
	return &ast.Loop{Label: label, Body: body, EndToken: ast.Attach(end)}, nil
}

func (p *Parser) parseRepeat(label *ast.Ident) (*ast.Repeat, error) {
	open := p.NextToken()
	r := &ast.Repeat{Label: label}
	var err error
	if r.Body, err = p.parseBlockBody(open, keyword.UNTIL); err != nil {
		return nil, err
	}
	p.index++ // UNTIL
	if r.Until, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	end, err := p.expectEnd(open, keyword.REPEAT)
	if err != nil {
		return nil, err
	}
	r.EndToken = ast.Attach(end)
	p.parseEndLabel(label)
	return r, nil
}

func (p *Parser) parseFor(label *ast.Ident) (*ast.For, error) {
	open := p.NextToken()
	f := &ast.For{Label: label}
	var err error
	if f.Var, err = p.ParseIdentifier(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.IN); err != nil {
		return nil, err
	}
	f.Reverse = p.ParseKeyword(keyword.REVERSE)

	switch {
	case p.peekIs(token.LPAREN) && p.isParenQuery():
		p.index++
		if f.Query, err = p.ParseQuery(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	case p.isQueryStart():
		if f.Query, err = p.ParseQuery(); err != nil {
			return nil, err
		}
	default:
		if f.Low, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.DOT); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.DOT); err != nil {
			return nil, err
		}
		if f.High, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if p.ParseKeyword(keyword.BY) {
			if f.Step, err = p.ParseExpr(); err != nil {
				return nil, err
			}
		}
	}

	var end token.TokenWithSpan
	if f.Style, f.Body, end, err = p.parseLoopBody(open, keyword.FOR); err != nil {
		return nil, err
	}
	f.EndToken = ast.Attach(end)
	p.parseEndLabel(label)
	return f, nil
}

func (p *Parser) parseForeach(label *ast.Ident) (*ast.Foreach, error) {
	open := p.NextToken()
	f := &ast.Foreach{Label: label}
	var err error
	if f.Var, err = p.ParseIdentifier(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.SLICE) {
		if f.Slice, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	if err := p.ExpectKeywords(keyword.IN, keyword.ARRAY); err != nil {
		return nil, err
	}
	if f.Array, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.LOOP); err != nil {
		return nil, err
	}
	if f.Body, err = p.parseBlockBody(open, keyword.END); err != nil {
		return nil, err
	}
	end, err := p.expectEnd(open, keyword.LOOP)
	if err != nil {
		return nil, err
	}
	f.EndToken = ast.Attach(end)
	p.parseEndLabel(label)
	return f, nil
}

func (p *Parser) parseLoopControl() (*ast.LoopControl, error) {
	lc := &ast.LoopControl{Keyword: p.NextToken().Keyword.String()}
	if tok := p.PeekToken(); tok.Type == token.WORD && !tok.IsKeyword(keyword.WHEN) && !p.isStatementEnd() {
		label := identFrom(tok)
		p.index++
		lc.Label = &label
	}
	if p.ParseKeyword(keyword.WHEN) {
		var err error
		if lc.When, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	return lc, nil
}

// ---------- Signalling ----------

var raiseLevels = []keyword.Keyword{
	keyword.DEBUG, keyword.LOG, keyword.INFO, keyword.NOTICE, keyword.WARNING, keyword.EXCEPTION,
}

func (p *Parser) parseRaise() (*ast.Raise, error) {
	p.index++
	r := &ast.Raise{}
	if kw := p.ParseOneOfKeywords(raiseLevels...); kw != keyword.NoKeyword {
		r.Level = kw.String()
	}
	var err error
	if !p.isStatementEnd() && !p.PeekKeyword(keyword.USING) {
		if r.Message, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		for p.ConsumeToken(token.COMMA) {
			arg, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			r.Args = append(r.Args, arg)
		}
	}
	if p.ParseKeyword(keyword.USING) {
		if r.Using, err = parseCommaSeparated(p, p.parseSQLOption); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (p *Parser) parseSignal() (*ast.Signal, error) {
	s := &ast.Signal{Resignal: p.NextToken().IsKeyword(keyword.RESIGNAL)}
	switch {
	case p.ParseKeyword(keyword.SQLSTATE):
		s.ValueKw = p.ParseKeyword(keyword.VALUE)
		v, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		s.SQLState = &v
	case p.peekIs(token.WORD) && !p.PeekKeyword(keyword.SET):
		cond, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		s.Condition = &cond
	case !s.Resignal:
		return nil, p.Expected("SQLSTATE or condition name", p.PeekToken())
	}
	if p.ParseKeyword(keyword.SET) {
		var err error
		if s.Set, err = parseCommaSeparated(p, p.parseSQLOption); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (p *Parser) parseGetDiagnostics() (*ast.GetDiagnostics, error) {
	p.index++
	g := &ast.GetDiagnostics{}
	if kw := p.ParseOneOfKeywords(keyword.CURRENT, keyword.STACKED); kw != keyword.NoKeyword {
		g.Scope = kw.String()
	}
	if _, err := p.ExpectKeyword(keyword.DIAGNOSTICS); err != nil {
		return nil, err
	}
	var err error
	if p.ParseKeyword(keyword.CONDITION) {
		if g.Condition, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	g.Items, err = parseCommaSeparated(p, func() (ast.SQLOption, error) {
		target, err := p.parseVariableName()
		if err != nil {
			return ast.SQLOption{}, err
		}
		if _, err := p.ExpectToken(token.EQ); err != nil {
			return ast.SQLOption{}, err
		}
		item, err := p.ParseExpr()
		if err != nil {
			return ast.SQLOption{}, err
		}
		return ast.SQLOption{Key: target[len(target)-1].Ident, Value: item}, nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// parsePerform parses PERFORM, which reads as a SELECT without the keyword.
func (p *Parser) parsePerform() (*ast.Perform, error) {
	tok := p.NextToken()
	sel, err := p.parseSelectBody(&ast.Select{SelectToken: ast.Attach(tok)})
	if err != nil {
		return nil, err
	}
	q := &ast.Query{Body: sel}
	if err := p.parseQueryTail(q); err != nil {
		return nil, err
	}
	return &ast.Perform{Query: q}, nil
}
