package parser_test

import (
	"testing"

	aftership "github.com/AfterShip/clickhouse-sql-parser/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlkit/pkg/dialects/clickhouse"
	"github.com/leapstack-labs/sqlkit/pkg/parser"
)

// parseWithAfterShip runs the reference ClickHouse parser, turning a panic
// into an error.
func parseWithAfterShip(query string) (n int, err error, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
		}
	}()
	stmts, err := aftership.NewParser(query).ParseStmts()
	return len(stmts), err, false
}

// ---------- ClickHouse Oracle Tests ----------

func TestClickHouseOracle(t *testing.T) {
	tests := []struct {
		sql   string
		valid bool
	}{
		{"SELECT a, b FROM t WHERE a = 1", true},
		{"SELECT a FROM t PREWHERE b = 1 WHERE c > 2", true},
		{"SELECT a, count() FROM t GROUP BY a ORDER BY a LIMIT 10", true},
		{"SELECT a FROM t FINAL WHERE b = 1", true},
		{"SELECT a FROM t SETTINGS max_threads = 8", true},
		{"INSERT INTO t (a, b) VALUES (1, 'x')", true},
		{"CREATE TABLE t (id UInt64, name String) ENGINE = MergeTree() ORDER BY id", true},

		{"SELECT a FROM", false},
		{"SELECT (1", false},
		{"SELECT 1 +", false},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			n, oracleErr, panicked := parseWithAfterShip(tt.sql)
			if panicked {
				t.Skip("reference parser panicked")
			}
			_, parseErr := parser.Parse(clickhouse.ClickHouse, tt.sql)

			if tt.valid {
				require.NoError(t, oracleErr, "reference parser rejected a valid case")
				require.Equal(t, 1, n)
				assert.NoError(t, parseErr)
				return
			}
			require.Error(t, oracleErr, "reference parser accepted an invalid case")
			assert.Error(t, parseErr)
		})
	}
}
