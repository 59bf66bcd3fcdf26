package parser_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/leapstack-labs/sqlkit/pkg/dialects/sqlite"
	"github.com/leapstack-labs/sqlkit/pkg/parser"
)

const oracleSchema = `
CREATE TABLE t (a INTEGER PRIMARY KEY, b TEXT);
CREATE TABLE u (a INTEGER, c TEXT);
`

// openOracle returns an in-memory SQLite database holding oracleSchema.
// The pool is pinned to one connection so every statement sees the same
// in-memory database.
func openOracle(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(oracleSchema)
	require.NoError(t, err)
	return db
}

// sqliteAccepts reports whether SQLite compiles query. Preparing runs the
// full SQLite front end without executing anything.
func sqliteAccepts(ctx context.Context, db *sql.DB, query string) error {
	stmt, err := db.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	return stmt.Close()
}

// ---------- SQLite Oracle Tests ----------

func TestSQLiteOracle(t *testing.T) {
	db := openOracle(t)
	ctx := context.Background()

	tests := []struct {
		sql   string
		valid bool
	}{
		{"SELECT a, b FROM t WHERE a = 1", true},
		{"SELECT a FROM t ORDER BY b DESC LIMIT 10 OFFSET 5", true},
		{"SELECT t.a, u.c FROM t LEFT JOIN u ON t.a = u.a", true},
		{"WITH c AS (SELECT a FROM t) SELECT * FROM c", true},
		{"SELECT a FROM t WHERE b IN (SELECT c FROM u)", true},
		{"SELECT b, COUNT(*) FROM t GROUP BY b HAVING COUNT(*) > 1", true},
		{"SELECT CAST(a AS TEXT) FROM t", true},
		{"SELECT CASE WHEN a > 1 THEN 'big' ELSE 'small' END FROM t", true},
		{"SELECT a FROM t UNION ALL SELECT a FROM u", true},
		{"SELECT a || b FROM t", true},
		{"INSERT INTO t (a, b) VALUES (1, 'x') ON CONFLICT (a) DO NOTHING", true},
		{"UPDATE t SET b = 'y' WHERE a = 1", true},
		{"DELETE FROM t WHERE b IS NULL", true},
		{"CREATE TABLE v (x INTEGER PRIMARY KEY, y TEXT NOT NULL)", true},
		{"CREATE INDEX idx_b ON t (b)", true},

		{"SELECT a FROM t WHERE", false},
		{"SELECT (1", false},
		{"SELECT 1 +", false},
		{"SELECT a FROM t t2 t3", false},
		{"INSERT INTO t VALUES", false},
		{"SELECT 'abc", false},
		{"CREATE TABLE (a INT)", false},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			oracleErr := sqliteAccepts(ctx, db, tt.sql)
			_, parseErr := parser.Parse(sqlite.SQLite, tt.sql)

			if tt.valid {
				require.NoError(t, oracleErr, "sqlite rejected a valid case")
				assert.NoError(t, parseErr)
				return
			}
			require.Error(t, oracleErr, "sqlite accepted an invalid case")
			assert.Error(t, parseErr)
		})
	}
}

// TestSQLiteOracleRendering checks that the canonical rendering of each
// statement is still accepted by SQLite.
func TestSQLiteOracleRendering(t *testing.T) {
	db := openOracle(t)
	ctx := context.Background()

	queries := []string{
		"select a , b from t where a=1 and b<>'x'",
		"SELECT t.a FROM t AS t JOIN u ON t.a=u.a WHERE u.c LIKE 'a%'",
		"insert into t(a,b) values(1,'it''s')",
		"update t set b=b||'!' where a between 1 and 3",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			stmts, err := parser.Parse(sqlite.SQLite, q)
			require.NoError(t, err)
			require.Len(t, stmts, 1)
			assert.NoError(t, sqliteAccepts(ctx, db, stmts[0].String()), stmts[0].String())
		})
	}
}
