package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlkit/pkg/dialect"

	// Register every dialect via init()
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/all"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.StringP("dialect", "d", "", "")
	flags.Int("recursion-limit", 0, "")
	flags.Bool("trailing-commas", false, "")
	flags.Bool("unescape", true, "")
	flags.StringP("output", "o", "", "")
	flags.String("color", "", "")
	flags.BoolP("verbose", "v", false, "")
	return flags
}

// ---------- Validate Tests ----------

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		errSubstr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "known dialect", mutate: func(c *Config) { c.Dialect = "snowflake" }},
		{name: "dialect alias", mutate: func(c *Config) { c.Dialect = "postgresql" }},
		{name: "unknown dialect", mutate: func(c *Config) { c.Dialect = "oracle" }, errSubstr: "unknown dialect"},
		{name: "empty dialect", mutate: func(c *Config) { c.Dialect = "" }, errSubstr: "dialect is required"},
		{name: "zero recursion limit", mutate: func(c *Config) { c.RecursionLimit = 0 }, errSubstr: "recursion_limit"},
		{name: "unknown output", mutate: func(c *Config) { c.Output = "json" }, errSubstr: "unknown output mode"},
		{name: "unknown color", mutate: func(c *Config) { c.Color = "sometimes" }, errSubstr: "unknown color mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_ValidateUnknownDialectIsSentinel(t *testing.T) {
	cfg := Default()
	cfg.Dialect = "nope"
	assert.ErrorIs(t, cfg.Validate(), dialect.ErrUnknownDialect)
}

// ---------- LoadConfig Tests ----------

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DialectName(DefaultDialect), cfg.Dialect)
	assert.Equal(t, DefaultRecursionLimit, cfg.RecursionLimit)
	assert.True(t, cfg.Unescape)
	assert.False(t, cfg.TrailingCommas)
	assert.Equal(t, OutputSQL, cfg.Output)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "sqlkit.yaml", `
dialect: DuckDB
recursion_limit: 120
trailing_commas: true
unescape: false
output: tree
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, DialectName("duckdb"), cfg.Dialect, "dialect names are lower-cased")
	assert.Equal(t, 120, cfg.RecursionLimit)
	assert.True(t, cfg.TrailingCommas)
	assert.False(t, cfg.Unescape)
	assert.Equal(t, OutputTree, cfg.Output)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoadConfig_SearchesUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "sqlkit.yml", "dialect: mysql\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, DialectName("mysql"), cfg.Dialect)
	assert.Equal(t, "sqlkit.yml", filepath.Base(cfg.ConfigFile))
}

func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "sqlkit.yaml", "dialect: mysql\nrecursion_limit: 10\n")
	t.Setenv("SQLKIT_DIALECT", "BigQuery")
	t.Setenv("SQLKIT_RECURSION_LIMIT", "75")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, DialectName("bigquery"), cfg.Dialect)
	assert.Equal(t, 75, cfg.RecursionLimit)
}

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "sqlkit.yaml", "dialect: mysql\noutput: tree\n")
	t.Setenv("SQLKIT_DIALECT", "bigquery")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--dialect", "Postgres", "--recursion-limit", "7", "--trailing-commas"}))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, DialectName("postgres"), cfg.Dialect)
	assert.Equal(t, 7, cfg.RecursionLimit)
	assert.True(t, cfg.TrailingCommas)
	assert.Equal(t, OutputTree, cfg.Output, "unset flags keep the file value")
}

func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SQLKIT_OUTPUT", "spans")

	flags := testFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, OutputSpans, cfg.Output)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()

	t.Run("unknown dialect", func(t *testing.T) {
		path := writeConfig(t, dir, "bad_dialect.yaml", "dialect: oracle\n")
		_, err := LoadConfig(path, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "oracle")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "missing.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, dir, "malformed.yaml", "dialect: [unclosed\n")
		_, err := LoadConfig(path, nil)
		require.Error(t, err)
	})
}

// ---------- Context Tests ----------

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, Default(), FromContext(ctx))
	assert.NotNil(t, GetLogger(ctx), "missing logger falls back to discard")

	cfg := Default()
	cfg.Dialect = "hive"
	ctx = WithConfig(ctx, cfg)
	assert.Same(t, cfg, FromContext(ctx))

	var buf bytes.Buffer
	logger := NewLogger(&buf, false)
	ctx = context.WithValue(ctx, LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))

	logger.Debug("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewParserOptions(t *testing.T) {
	cfg := Default()
	cfg.TrailingCommas = true
	cfg.Dialect = "ansi"
	d, err := cfg.ResolveDialect()
	require.NoError(t, err)

	p := cfg.NewParser(d)
	stmts, err := p.ParseSQL("SELECT a, b, FROM t")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a, b FROM t", stmts[0].String())
}
