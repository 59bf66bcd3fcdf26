package dialect

// This file contains stateless parsing helpers that form the "toolbox" of
// reusable hook logic. They accept spi.ParserOps and are composed into
// dialect hooks by the packages under pkg/dialects.

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// IsColonPathStart reports whether the next tokens begin a semi-structured
// path such as v:a.b. The colon must be followed by a name.
func IsColonPathStart(p spi.ParserOps) bool {
	if p.PeekToken().Type != token.COLON {
		return false
	}
	next := p.PeekNthToken(1)
	return next.Type == token.WORD
}

// ParseColonPath parses :key{.key | [expr]} after left. The colon has not
// been consumed.
func ParseColonPath(p spi.ParserOps, left ast.Expr) (ast.Expr, error) {
	if _, err := p.ExpectToken(token.COLON); err != nil {
		return nil, err
	}
	var path []ast.JSONPathElem
	first, err := parsePathKey(p)
	if err != nil {
		return nil, err
	}
	path = append(path, first)
	for {
		switch p.PeekToken().Type {
		case token.DOT:
			p.NextToken()
			elem, err := parsePathKey(p)
			if err != nil {
				return nil, err
			}
			path = append(path, elem)
		case token.LBRACKET:
			p.NextToken()
			idx, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.ExpectToken(token.RBRACKET); err != nil {
				return nil, err
			}
			path = append(path, ast.JSONPathElem{Bracket: idx})
		default:
			if j, ok := left.(*ast.JSONAccess); ok {
				j.Path = append(j.Path, path...)
				return j, nil
			}
			return &ast.JSONAccess{Value: left, Path: path}, nil
		}
	}
}

func parsePathKey(p spi.ParserOps) (ast.JSONPathElem, error) {
	tok := p.NextToken()
	if tok.Type != token.WORD {
		return ast.JSONPathElem{}, p.Expected("path key", tok)
	}
	return ast.JSONPathElem{Key: tok.Value, Quoted: tok.Quote != 0}, nil
}

// ParseLikeVariant parses the pattern of a LIKE-style operator whose
// keyword (and NOT) has already been consumed.
func ParseLikeVariant(p spi.ParserOps, left ast.Expr, kind ast.LikeKind, negated bool) (ast.Expr, error) {
	pattern, err := p.ParseSubexpr(spi.PrecedenceIs)
	if err != nil {
		return nil, err
	}
	like := &ast.Like{Kind: kind, Negated: negated, Expr: left, Pattern: pattern}
	if p.ParseKeyword(keyword.ESCAPE) {
		if like.Escape, err = p.ParseSubexpr(spi.PrecedenceIs); err != nil {
			return nil, err
		}
	}
	return like, nil
}

// ParseKeyValueOptions parses whitespace or comma separated KEY = value
// pairs, as used by Snowflake stage and COPY options. It stops at the first
// word that is not followed by '='.
func ParseKeyValueOptions(p spi.ParserOps) ([]ast.SQLOption, error) {
	var opts []ast.SQLOption
	for {
		tok := p.PeekToken()
		if tok.Type != token.WORD || p.PeekNthToken(1).Type != token.EQ {
			return opts, nil
		}
		p.NextToken()
		p.NextToken()
		val, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		opts = append(opts, ast.SQLOption{Key: ast.Ident{Value: tok.Value, QuoteStyle: tok.Quote, Span: tok.Span}, Value: val})
		p.ConsumeToken(token.COMMA)
	}
}

// ParseStageName reads a Snowflake stage reference such as @db.stage/path
// or @~/dir verbatim. The '@' has not been consumed.
func ParseStageName(p spi.ParserOps) (string, error) {
	at := p.NextToken()
	if at.Type != token.AT && !(at.Type == token.PLACEHOLDER && len(at.Value) > 0 && at.Value[0] == '@') {
		return "", p.Expected("stage name", at)
	}
	name := at.Token.String()
	end := at.Span.End
	for {
		tok := p.PeekToken()
		if tok.Span.Start != end {
			return name, nil
		}
		switch tok.Type {
		case token.WORD, token.NUMBER, token.DOT, token.SLASH, token.TILDE, token.PERCENT, token.MINUS:
		default:
			return name, nil
		}
		p.NextToken()
		name += tok.Token.String()
		end = tok.Span.End
	}
}

// ParseBinaryRest parses the right operand of a keyword operator that has
// already been consumed and builds the binary expression.
func ParseBinaryRest(p spi.ParserOps, left ast.Expr, op ast.BinaryOperator, prec int) (ast.Expr, error) {
	right, err := p.ParseSubexpr(prec)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: left, Op: op, Right: right}, nil
}

// IsDictionaryStart reports whether the next tokens open a {key: value}
// literal. An ODBC escape such as {d '2024-01-01'} does not qualify.
func IsDictionaryStart(p spi.ParserOps) bool {
	if p.PeekToken().Type != token.LBRACE {
		return false
	}
	key := p.PeekNthToken(1)
	if key.Type == token.RBRACE {
		return true
	}
	return (key.Type == token.WORD || key.Type == token.STRING) && p.PeekNthToken(2).Type == token.COLON
}

// ParseDictionary parses {key: value, ...}. The brace has not been
// consumed.
func ParseDictionary(p spi.ParserOps) (*ast.Dictionary, error) {
	if _, err := p.ExpectToken(token.LBRACE); err != nil {
		return nil, err
	}
	dict := &ast.Dictionary{}
	if p.ConsumeToken(token.RBRACE) {
		return dict, nil
	}
	for {
		keyTok := p.NextToken()
		var key ast.Ident
		switch keyTok.Type {
		case token.WORD:
			key = ast.Ident{Value: keyTok.Value, QuoteStyle: keyTok.Quote, Span: keyTok.Span}
		case token.STRING:
			key = ast.Ident{Value: keyTok.Value, QuoteStyle: '\'', Span: keyTok.Span}
		default:
			return nil, p.Expected("dictionary key", keyTok)
		}
		if _, err := p.ExpectToken(token.COLON); err != nil {
			return nil, err
		}
		val, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		dict.Fields = append(dict.Fields, ast.DictionaryField{Key: key, Value: val})
		if !p.ConsumeToken(token.COMMA) || p.PeekToken().Type == token.RBRACE {
			break
		}
	}
	if _, err := p.ExpectToken(token.RBRACE); err != nil {
		return nil, err
	}
	return dict, nil
}

// ParseMapLiteral parses MAP {key: value, ...}. Keys are arbitrary
// expressions.
func ParseMapLiteral(p spi.ParserOps) (*ast.Map, error) {
	if _, err := p.ExpectKeyword(keyword.MAP); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.LBRACE); err != nil {
		return nil, err
	}
	m := &ast.Map{}
	for p.PeekToken().Type != token.RBRACE {
		k, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.COLON); err != nil {
			return nil, err
		}
		v, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		m.Entries = append(m.Entries, ast.MapEntry{Key: k, Value: v})
		if !p.ConsumeToken(token.COMMA) {
			break
		}
	}
	if _, err := p.ExpectToken(token.RBRACE); err != nil {
		return nil, err
	}
	return m, nil
}
