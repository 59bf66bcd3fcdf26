package postgres

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

func init() {
	dialect.Register(Postgres, "postgresql", "pg")
}

// Postgres is the PostgreSQL dialect.
// On top of Config it wires:
// - user-defined operators built from +-*/<>=~!@#%^&|`?
// - '$' inside identifiers
// - the OPERATOR(schema.op) infix form
var Postgres = dialect.New(Config).
	Identifiers(dialect.StandardIdentifierStart, dialect.DollarIdentifierPart).
	CustomOperatorChars(dialect.PostgresOperatorPart).
	QuoteStyle(dialect.DoubleQuote).
	PrecedenceHook(operatorPrecedence).
	InfixHook(parseOperatorCall).
	Build()

// operatorPrecedence reports OPERATOR(...) at the precedence of other
// PostgreSQL operators.
func operatorPrecedence(p spi.ParserOps) (int, bool) {
	if p.PeekKeyword(keyword.OPERATOR) && p.PeekNthToken(1).Type == token.LPAREN {
		return spi.PrecedencePGOther, true
	}
	return 0, false
}

// parseOperatorCall parses `left OPERATOR(schema.op) right`.
func parseOperatorCall(p spi.ParserOps, left ast.Expr, prec int) (ast.Expr, bool, error) {
	if !p.ParseKeyword(keyword.OPERATOR) {
		return nil, false, nil
	}
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, true, err
	}
	var parts []string
	for {
		tok := p.NextToken()
		if tok.Type == token.WORD {
			parts = append(parts, tok.Value)
			if _, err := p.ExpectToken(token.DOT); err != nil {
				return nil, true, err
			}
			continue
		}
		if !token.IsOperator(tok.Type) {
			return nil, true, p.Expected("an operator name", tok)
		}
		parts = append(parts, tok.Token.String())
		break
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, true, err
	}
	right, err := p.ParseSubexpr(prec)
	if err != nil {
		return nil, true, err
	}
	return &ast.BinaryOp{Left: left, Op: ast.PGOperator(parts), Right: right}, true, nil
}
