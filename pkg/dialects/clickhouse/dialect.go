package clickhouse

import (
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/spi"
)

func init() {
	dialect.Register(ClickHouse, "ch")
}

// ClickHouse is the ClickHouse dialect. OPTIMIZE TABLE is parsed by the
// statement hook.
var ClickHouse = dialect.New(Config).
	QuoteStyle(dialect.Backtick).
	StatementHook(parseStatement).
	Build()

func parseStatement(p spi.ParserOps) (ast.Statement, bool, error) {
	if !p.ParseKeywords(keyword.OPTIMIZE, keyword.TABLE) {
		return nil, false, nil
	}
	stmt, err := parseOptimize(p)
	return stmt, true, err
}

// parseOptimize parses the rest of
// OPTIMIZE TABLE t [ON CLUSTER c] [PARTITION p] [FINAL] [DEDUPLICATE [BY expr]].
func parseOptimize(p spi.ParserOps) (*ast.Optimize, error) {
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.Optimize{Name: name}

	if p.ParseKeywords(keyword.ON, keyword.CLUSTER) {
		cluster, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		stmt.OnCluster = &cluster
	}
	if p.ParseKeyword(keyword.PARTITION) {
		if stmt.Partition, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	stmt.Final = p.ParseKeyword(keyword.FINAL)
	if p.ParseKeyword(keyword.DEDUPLICATE) {
		stmt.Deduplicate = true
		if p.ParseKeyword(keyword.BY) {
			if stmt.DeduplicateBy, err = p.ParseExpr(); err != nil {
				return nil, err
			}
		}
	}
	return stmt, nil
}
