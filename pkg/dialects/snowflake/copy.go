package snowflake

import (
	"strings"

	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// parseStatement owns COPY INTO. Plain COPY is left to the core parser.
func parseStatement(p spi.ParserOps) (ast.Statement, bool, error) {
	if !p.ParseKeywords(keyword.COPY, keyword.INTO) {
		return nil, false, nil
	}
	stmt, err := parseCopyInto(p)
	return stmt, true, err
}

func isStage(tok token.TokenWithSpan) bool {
	return tok.Type == token.AT || tok.Type == token.PLACEHOLDER && strings.HasPrefix(tok.Value, "@")
}

// parseLocation reads a stage, a quoted URI or a table name.
func parseLocation(p spi.ParserOps) (string, error) {
	tok := p.PeekToken()
	switch {
	case isStage(tok):
		return dialect.ParseStageName(p)
	case tok.Type == token.STRING:
		p.NextToken()
		return tok.Token.String(), nil
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return "", err
	}
	return name.String(), nil
}

func parseCopyInto(p spi.ParserOps) (*ast.CopyInto, error) {
	stmt := &ast.CopyInto{}
	into, err := parseLocation(p)
	if err != nil {
		return nil, err
	}
	stmt.Into = into

	if p.ConsumeToken(token.LPAREN) {
		if stmt.Columns, err = p.ParseIdentifiers(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}

	if _, err := p.ExpectKeyword(keyword.FROM); err != nil {
		return nil, err
	}
	if p.ConsumeToken(token.LPAREN) {
		if stmt.FromQuery, err = p.ParseQuery(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	} else if stmt.FromStage, err = parseLocation(p); err != nil {
		return nil, err
	}

	for {
		key := p.PeekToken()
		if key.Type != token.WORD || p.PeekNthToken(1).Type != token.EQ {
			return stmt, nil
		}
		switch strings.ToUpper(key.Value) {
		case "FILES":
			p.NextToken()
			p.NextToken()
			if stmt.Files, err = parseStringList(p); err != nil {
				return nil, err
			}
		case "PATTERN":
			p.NextToken()
			p.NextToken()
			pattern, err := p.ParseLiteralString()
			if err != nil {
				return nil, err
			}
			stmt.Pattern = &pattern
		case "FILE_FORMAT":
			p.NextToken()
			p.NextToken()
			if stmt.FileFormat, err = parseParenOptions(p); err != nil {
				return nil, err
			}
		case "VALIDATION_MODE":
			p.NextToken()
			p.NextToken()
			mode, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			stmt.Validation = &mode
		default:
			opts, err := parseOneOption(p)
			if err != nil {
				return nil, err
			}
			stmt.Options = append(stmt.Options, opts)
		}
		p.ConsumeToken(token.COMMA)
	}
}

func parseStringList(p spi.ParserOps) ([]ast.Value, error) {
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	var out []ast.Value
	for {
		v, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		if !p.ConsumeToken(token.COMMA) {
			break
		}
	}
	_, err := p.ExpectToken(token.RPAREN)
	return out, err
}

// parseParenOptions reads ( KEY = value [,] ... ).
func parseParenOptions(p spi.ParserOps) ([]ast.SQLOption, error) {
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	opts, err := dialect.ParseKeyValueOptions(p)
	if err != nil {
		return nil, err
	}
	_, err = p.ExpectToken(token.RPAREN)
	return opts, err
}

// parseOneOption reads KEY = value where value may be a parenthesised
// option list (e.g. CREDENTIALS = (AWS_KEY_ID = '...')).
func parseOneOption(p spi.ParserOps) (ast.SQLOption, error) {
	key := p.NextToken()
	p.NextToken()
	opt := ast.SQLOption{Key: ast.Ident{Value: key.Value, QuoteStyle: key.Quote, Span: key.Span}}
	if p.PeekToken().Type == token.LPAREN && p.PeekNthToken(1).Type == token.WORD && p.PeekNthToken(2).Type == token.EQ {
		nested, err := parseParenOptions(p)
		if err != nil {
			return opt, err
		}
		opt.Value = &ast.OptionList{Options: nested}
		return opt, nil
	}
	val, err := p.ParseExpr()
	if err != nil {
		return opt, err
	}
	opt.Value = val
	return opt, nil
}
