package snowflake

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
)

func init() {
	dialect.Register(Snowflake)
}

// Snowflake is the Snowflake SQL dialect.
// On top of Config it wires:
// - '$' inside identifiers
// - semi-structured access (v:a.b[0])
// - COPY INTO with stage locations
var Snowflake = dialect.New(Config).
	Identifiers(dialect.StandardIdentifierStart, dialect.DollarIdentifierPart).
	StatementHook(parseStatement).
	PrecedenceHook(precedence).
	InfixHook(parseInfix).
	Build()

func precedence(p spi.ParserOps) (int, bool) {
	if dialect.IsColonPathStart(p) {
		return spi.PrecedencePostfix, true
	}
	return 0, false
}

func parseInfix(p spi.ParserOps, left ast.Expr, _ int) (ast.Expr, bool, error) {
	if !dialect.IsColonPathStart(p) {
		return nil, false, nil
	}
	expr, err := dialect.ParseColonPath(p, left)
	return expr, true, err
}
