package mysql

import (
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
)

func init() {
	dialect.Register(MySQL, "mariadb")
}

// MySQL is the MySQL dialect.
// Session and user variables (@v, @@global.v) lex as identifiers. The
// statement hook owns LOCK TABLES / UNLOCK TABLES; the expression hooks
// add DIV, MOD, XOR and MEMBER OF.
var MySQL = dialect.New(Config).
	Identifiers(isIdentifierStart, isIdentifierPart).
	QuoteStyle(dialect.Backtick).
	TableAlias(isTableAlias).
	StatementHook(parseStatement).
	PrecedenceHook(precedence).
	InfixHook(parseInfix).
	Build()

func isIdentifierStart(r rune) bool {
	return r == '@' || dialect.StandardIdentifierStart(r)
}

func isIdentifierPart(r rune) bool {
	return r == '@' || r == '$' || dialect.StandardIdentifierPart(r)
}

// isTableAlias keeps index hints (t USE INDEX (i)) from being read as an
// alias.
func isTableAlias(kw keyword.Keyword, p spi.ParserOps) bool {
	switch kw {
	case keyword.USE, keyword.IGNORE, keyword.FORCE:
		next := p.PeekNthToken(1)
		if next.IsKeyword(keyword.INDEX) || next.IsKeyword(keyword.KEY) {
			return false
		}
	}
	return !keyword.ReservedForTableAlias.Contains(kw)
}
