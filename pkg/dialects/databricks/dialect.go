package databricks

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

func init() {
	dialect.Register(Databricks)
}

// Databricks-specific operators (edge features not covered by Config).
const tryCastOp = "?::"

// Databricks is the Databricks SQL dialect.
// On top of Config it wires:
// - semi-structured access (raw:a.b[0])
// - the ?:: try-cast operator
// - DIV integer division
var Databricks = dialect.New(Config).
	QuoteStyle(dialect.Backtick).
	AddOperator(tryCastOp).
	PrecedenceHook(precedence).
	InfixHook(parseInfix).
	Build()

func precedence(p spi.ParserOps) (int, bool) {
	tok := p.PeekToken()
	switch {
	case dialect.IsColonPathStart(p), isTryCast(tok):
		return spi.PrecedencePostfix, true
	case tok.IsKeyword(keyword.DIV):
		return spi.PrecedenceMultiply, true
	}
	return 0, false
}

func isTryCast(tok token.TokenWithSpan) bool {
	t, ok := token.LookupSymbol(tryCastOp)
	return ok && tok.Type == t
}

func parseInfix(p spi.ParserOps, left ast.Expr, prec int) (ast.Expr, bool, error) {
	tok := p.PeekToken()
	switch {
	case dialect.IsColonPathStart(p):
		expr, err := dialect.ParseColonPath(p, left)
		return expr, true, err
	case isTryCast(tok):
		p.NextToken()
		dt, err := p.ParseDataType()
		if err != nil {
			return nil, true, err
		}
		return &ast.Cast{Kind: ast.TryCast, Expr: left, DataType: dt}, true, nil
	case tok.IsKeyword(keyword.DIV):
		p.NextToken()
		expr, err := dialect.ParseBinaryRest(p, left, ast.OpIntDiv, prec)
		return expr, true, err
	}
	return nil, false, nil
}
