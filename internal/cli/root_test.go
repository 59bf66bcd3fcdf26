package cli_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlkit/internal/cli"
	"github.com/leapstack-labs/sqlkit/internal/cli/commands"
	"github.com/leapstack-labs/sqlkit/internal/cli/testutil"
)

func run(t *testing.T, stdin string, args ...string) testutil.CommandResult {
	t.Helper()
	return testutil.ExecuteCommand(t, cli.NewRootCmd(), stdin, args...)
}

// ---------- Parse Command Tests ----------

func TestParseCommand_Stdin(t *testing.T) {
	res := run(t, "select a , b from t where x=1; drop table t", "parse")
	require.NoError(t, res.Err)
	assert.Equal(t, "SELECT a, b FROM t WHERE x = 1;\nDROP TABLE t;\n", res.Stdout)
	assert.Empty(t, res.Stderr)
}

func TestParseCommand_OutputModes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "tree", args: []string{"parse", "-o", "tree"}, want: []string{"Query", "Select"}},
		{name: "spans", args: []string{"parse", "--output", "spans"}, want: []string{"KIND", "Query", "SELECT 1"}},
		{name: "tokens", args: []string{"parse", "-o", "tokens"}, want: []string{"NUMBER", "EOF", "(3 tokens)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "SELECT 1", tt.args...)
			require.NoError(t, res.Err)
			for _, want := range tt.want {
				assert.Contains(t, res.Stdout, want)
			}
		})
	}
}

func TestParseCommand_Dialect(t *testing.T) {
	res := run(t, "SELECT `a` FROM t", "parse", "--dialect", "mysql")
	require.NoError(t, res.Err)
	assert.Equal(t, "SELECT `a` FROM t;\n", res.Stdout)

	res = run(t, "FROM t SELECT a", "parse", "-d", "duckdb")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "FROM t SELECT a")
}

func TestParseCommand_Error(t *testing.T) {
	res := run(t, "SELECT a\nFROM t\nWHERE b = = 1", "parse")
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, commands.ErrParseFailed)
	assert.Contains(t, res.Stderr, "error: expected an expression")
	assert.Contains(t, res.Stderr, "--> <stdin>:3:11")
	assert.Contains(t, res.Stderr, "WHERE b = = 1")
	testutil.AssertNoANSI(t, res.Stderr)
}

func TestParseCommand_Files(t *testing.T) {
	dir := testutil.WriteSQLFiles(t, map[string]string{
		"good.sql": "SELECT 1",
		"bad.sql":  "SELECT (1",
	})
	good, bad := filepath.Join(dir, "good.sql"), filepath.Join(dir, "bad.sql")

	res := run(t, "", "parse", good, bad)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "1 of 2 inputs")
	assert.Contains(t, res.Stdout, "-- "+good)
	assert.Contains(t, res.Stdout, "SELECT 1;")
	assert.Contains(t, res.Stdout, "-- "+bad)
	assert.Contains(t, res.Stderr, bad+":1:")
}

func TestParseCommand_TrailingCommas(t *testing.T) {
	res := run(t, "SELECT a, b, FROM t", "parse", "-d", "ansi")
	require.Error(t, res.Err)

	res = run(t, "SELECT a, b, FROM t", "parse", "-d", "ansi", "--trailing-commas")
	require.NoError(t, res.Err)
	assert.Equal(t, "SELECT a, b FROM t;\n", res.Stdout)
}

func TestParseCommand_WatchNeedsFiles(t *testing.T) {
	res := run(t, "SELECT 1", "parse", "--watch")
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "--watch needs file arguments")
}

func TestParseCommand_ConfigFile(t *testing.T) {
	dir := testutil.WriteSQLFiles(t, map[string]string{
		"sqlkit.yaml": "dialect: mysql\noutput: spans\n",
	})
	res := run(t, "SELECT `a`", "parse", "--config", filepath.Join(dir, "sqlkit.yaml"))
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "SELECT `a`")
	assert.Contains(t, res.Stdout, "SPAN")
}

func TestParseCommand_Verbose(t *testing.T) {
	res := run(t, "SELECT 1", "parse", "--verbose")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stderr, "configuration loaded")
	assert.Contains(t, res.Stderr, "parsed input")
}

// ---------- Tokenize Command Tests ----------

func TestTokenizeCommand(t *testing.T) {
	res := run(t, "SELECT 'it''s' -- done", "tokenize")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "STRING")
	assert.Contains(t, res.Stdout, "'it''s'")
	assert.NotContains(t, res.Stdout, "COMMENT")

	res = run(t, "SELECT 'it''s' -- done", "tokenize", "--trivia")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "COMMENT")
	assert.Contains(t, res.Stdout, "WHITESPACE")
}

func TestTokenizeCommand_Unterminated(t *testing.T) {
	res := run(t, "SELECT 'abc", "tokenize")
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, commands.ErrParseFailed)
	assert.Contains(t, res.Stderr, "<stdin>:1:8")
}

// ---------- Dialects and Keywords Command Tests ----------

func TestDialectsCommand(t *testing.T) {
	res := run(t, "", "dialects")
	require.NoError(t, res.Err)
	for _, name := range []string{"generic", "postgres", "mysql", "duckdb", "snowflake", "clickhouse", "mssql"} {
		assert.Contains(t, res.Stdout, name)
	}
	assert.Contains(t, res.Stdout, "[]")

	res = run(t, "", "dialects", "pg")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "postgres")
	assert.Contains(t, res.Stdout, "DoubleColonCast")
	assert.NotContains(t, res.Stdout, "false")

	res = run(t, "", "dialects", "postgres", "--all")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "false")

	res = run(t, "", "dialects", "nosuch")
	require.Error(t, res.Err)
}

func TestKeywordsCommand(t *testing.T) {
	res := run(t, "", "keywords", "--reserved", "-d", "ansi")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "SELECT")
	assert.Contains(t, res.Stdout, "dialect ansi)")

	res = run(t, "", "keywords", "sel")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "SELECT")
	assert.NotContains(t, res.Stdout, "FROM")
}

// ---------- Root Command Tests ----------

func TestVersionCommand(t *testing.T) {
	res := run(t, "", "version")
	require.NoError(t, res.Err)
	assert.True(t, strings.HasPrefix(res.Stdout, "sqlkit v"+cli.Version+"\n"))
	assert.Contains(t, res.Stdout, "commit ")
	assert.Contains(t, res.Stdout, "dialects registered")
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			res := run(t, "", "completion", shell)
			require.NoError(t, res.Err)
			assert.Contains(t, res.Stdout, "sqlkit")
		})
	}

	res := run(t, "", "completion", "tcsh")
	require.Error(t, res.Err)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown dialect", args: []string{"parse", "-d", "oracle"}, want: "invalid dialect"},
		{name: "unknown output", args: []string{"parse", "-o", "json"}, want: "unknown output mode"},
		{name: "unknown color", args: []string{"parse", "--color", "sometimes"}, want: "unknown color mode"},
		{name: "bad recursion limit", args: []string{"parse", "--recursion-limit", "-1"}, want: "recursion_limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "SELECT 1", tt.args...)
			require.Error(t, res.Err)
			assert.Contains(t, res.Err.Error(), tt.want)
		})
	}
}

func TestRootCommand_EnvDialect(t *testing.T) {
	t.Setenv("SQLKIT_DIALECT", "mssql")
	res := run(t, "SELECT [a] FROM t", "parse")
	require.NoError(t, res.Err)
	assert.Equal(t, "SELECT [a] FROM t;\n", res.Stdout)
}
