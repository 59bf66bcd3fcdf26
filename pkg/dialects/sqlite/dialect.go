package sqlite

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
)

func init() {
	dialect.Register(SQLite, "sqlite3")
}

// SQLite is the SQLite dialect. [name] and `name` quote identifiers
// alongside "name", and GLOB and MATCH join the LIKE family.
var SQLite = dialect.New(Config).
	Identifiers(dialect.StandardIdentifierStart, dialect.DollarIdentifierPart).
	QuoteStyle(dialect.DoubleQuote).
	PrecedenceHook(precedence).
	InfixHook(parseInfix).
	Build()

func isPatternKeyword(p spi.ParserOps, n int) bool {
	tok := p.PeekNthToken(n)
	return tok.IsKeyword(keyword.GLOB) || tok.IsKeyword(keyword.MATCH)
}

func precedence(p spi.ParserOps) (int, bool) {
	if isPatternKeyword(p, 0) || p.PeekKeyword(keyword.NOT) && isPatternKeyword(p, 1) {
		return spi.PrecedenceIs, true
	}
	return 0, false
}

// parseInfix parses `x [NOT] GLOB pattern` and `x [NOT] MATCH pattern`.
func parseInfix(p spi.ParserOps, left ast.Expr, _ int) (ast.Expr, bool, error) {
	start := p.Index()
	negated := p.ParseKeyword(keyword.NOT)
	var kind ast.LikeKind
	switch {
	case p.ParseKeyword(keyword.GLOB):
		kind = ast.LikeGlob
	case p.ParseKeyword(keyword.MATCH):
		kind = ast.LikeMatch
	default:
		p.Restore(start)
		return nil, false, nil
	}
	expr, err := dialect.ParseLikeVariant(p, left, kind, negated)
	return expr, true, err
}
