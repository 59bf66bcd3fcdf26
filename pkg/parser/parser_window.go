package parser

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// Window specification parsing: OVER clauses, PARTITION BY, ORDER BY, frame specs.
//
// Grammar:
//
//	window_type   → identifier | "(" window_spec ")"
//	window_spec   → [window_name] [PARTITION BY expr_list] [ORDER BY order_list] [frame_spec]
//	frame_spec    → (ROWS|RANGE|GROUPS) frame_extent [EXCLUDE exclusion]
//	frame_extent  → BETWEEN frame_bound AND frame_bound | frame_bound
//	frame_bound   → UNBOUNDED PRECEDING | UNBOUNDED FOLLOWING | CURRENT ROW | expr PRECEDING | expr FOLLOWING
//	named_window  → name AS "(" window_spec ")" | name AS name

// parseWindowType parses what follows OVER.
func (p *Parser) parseWindowType() (*ast.WindowType, error) {
	if !p.ConsumeToken(token.LPAREN) {
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.WindowType{Name: &name}, nil
	}
	spec, err := p.parseWindowSpec()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.WindowType{Spec: spec}, nil
}

// parseWindowSpec parses the inside of a window's parentheses.
func (p *Parser) parseWindowSpec() (*ast.WindowSpec, error) {
	spec := &ast.WindowSpec{}
	var err error

	// Base window reference: OVER (w ORDER BY x)
	if tok := p.PeekToken(); tok.Type == token.WORD && !p.peekOneOf(keyword.PARTITION, keyword.ORDER, keyword.ROWS, keyword.RANGE, keyword.GROUPS) {
		name, _ := p.ParseIdentifier()
		spec.WindowName = &name
	}
	if p.ParseKeywords(keyword.PARTITION, keyword.BY) {
		if spec.PartitionBy, err = p.ParseCommaSeparatedExprs(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeywords(keyword.ORDER, keyword.BY) {
		if spec.OrderBy, err = parseCommaSeparated(p, p.parseOrderByExpr); err != nil {
			return nil, err
		}
	}
	if units := p.ParseOneOfKeywords(keyword.ROWS, keyword.RANGE, keyword.GROUPS); units != keyword.NoKeyword {
		if spec.Frame, err = p.parseWindowFrame(units); err != nil {
			return nil, err
		}
	}
	return spec, nil
}

func (p *Parser) parseWindowFrame(units keyword.Keyword) (*ast.WindowFrame, error) {
	frame := &ast.WindowFrame{Units: units.String()}
	var err error
	if p.ParseKeyword(keyword.BETWEEN) {
		if frame.Start, err = p.parseFrameBound(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectKeyword(keyword.AND); err != nil {
			return nil, err
		}
		end, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		frame.End = &end
	} else if frame.Start, err = p.parseFrameBound(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.EXCLUDE) {
		switch {
		case p.ParseKeywords(keyword.CURRENT, keyword.ROW):
			frame.Exclude = "CURRENT ROW"
		case p.ParseKeyword(keyword.GROUP):
			frame.Exclude = "GROUP"
		case p.ParseKeyword(keyword.TIES):
			frame.Exclude = "TIES"
		case p.ParseKeywords(keyword.NO, keyword.OTHERS):
			frame.Exclude = "NO OTHERS"
		default:
			return nil, p.Expected("CURRENT ROW, GROUP, TIES or NO OTHERS", p.PeekToken())
		}
	}
	return frame, nil
}

func (p *Parser) parseFrameBound() (ast.WindowFrameBound, error) {
	if p.ParseKeywords(keyword.CURRENT, keyword.ROW) {
		return ast.WindowFrameBound{Kind: ast.CurrentRow}, nil
	}
	var bound ast.WindowFrameBound
	if !p.ParseKeyword(keyword.UNBOUNDED) {
		v, err := p.ParseExpr()
		if err != nil {
			return bound, err
		}
		bound.Value = v
	}
	kw, err := p.expectOneOfKeywords(keyword.PRECEDING, keyword.FOLLOWING)
	if err != nil {
		return bound, err
	}
	bound.Kind = ast.Preceding
	if kw == keyword.FOLLOWING {
		bound.Kind = ast.Following
	}
	return bound, nil
}

// parseNamedWindow parses one WINDOW clause entry.
func (p *Parser) parseNamedWindow() (ast.NamedWindowDefinition, error) {
	name, err := p.ParseIdentifier()
	if err != nil {
		return ast.NamedWindowDefinition{}, err
	}
	if _, err := p.ExpectKeyword(keyword.AS); err != nil {
		return ast.NamedWindowDefinition{}, err
	}
	def := ast.NamedWindowDefinition{Name: name}
	if !p.ConsumeToken(token.LPAREN) {
		if !p.dialect.WindowClauseNamedWindowReference {
			return def, p.Expected("(", p.PeekToken())
		}
		ref, err := p.ParseIdentifier()
		if err != nil {
			return def, err
		}
		def.Ref = &ref
		return def, nil
	}
	if def.Spec, err = p.parseWindowSpec(); err != nil {
		return def, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return def, err
	}
	return def, nil
}
