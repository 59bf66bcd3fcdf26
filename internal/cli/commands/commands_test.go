package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlkit/internal/cli/config"
	"github.com/leapstack-labs/sqlkit/internal/cli/testutil"
	logtest "github.com/leapstack-labs/sqlkit/internal/testutil"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/parser"

	// Register every dialect via init()
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/all"
)

// newTestContext builds a CommandContext for dialectName writing to a
// captured renderer.
func newTestContext(t *testing.T, dialectName string, mutate ...func(*config.Config)) (*CommandContext, *testutil.TestRenderer) {
	t.Helper()
	cfg := config.Default()
	cfg.Dialect = config.DialectName(dialectName)
	for _, m := range mutate {
		m(cfg)
	}
	d, err := cfg.ResolveDialect()
	require.NoError(t, err)
	tr := testutil.NewTestRenderer()
	return &CommandContext{
		Cfg:      cfg,
		Logger:   logtest.NewTestLogger(t),
		Dialect:  d,
		Renderer: tr.Renderer,
	}, tr
}

// ---------- Command Metadata Tests ----------

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		name  string
		use   string
		flags []string
	}{
		{name: "parse", use: "parse [files...]", flags: []string{"watch"}},
		{name: "tokenize", use: "tokenize [file]", flags: []string{"trivia"}},
		{name: "dialects", use: "dialects [name]", flags: []string{"all"}},
		{name: "keywords", use: "keywords [prefix]", flags: []string{"reserved"}},
		{name: "repl", use: "repl"},
		{name: "version", use: "version"},
	}

	commands := map[string]func() *cobra.Command{
		"parse":    NewParseCommand,
		"tokenize": NewTokenizeCommand,
		"dialects": NewDialectsCommand,
		"keywords": NewKeywordsCommand,
		"repl":     NewReplCommand,
		"version":  func() *cobra.Command { return NewVersionCommand("1.0.0", "abc", "today") },
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := commands[tt.name]()
			assert.Equal(t, tt.use, cmd.Use)
			assert.NotEmpty(t, cmd.Short, "Short should not be empty")
			assert.NotEmpty(t, cmd.Long, "Long should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

// ---------- Source Tests ----------

func TestReadSources(t *testing.T) {
	dir := testutil.WriteSQLFiles(t, map[string]string{
		"a.sql": "SELECT 1",
		"b.sql": "SELECT 2",
	})

	t.Run("stdin when no args", func(t *testing.T) {
		got, err := readSources(strings.NewReader("SELECT 3"), nil)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "SELECT 3", got[0].Text)
		assert.Equal(t, "<stdin>", got[0].displayName())
	})

	t.Run("stdin with dash", func(t *testing.T) {
		got, err := readSources(strings.NewReader("SELECT 4"), []string{"-"})
		require.NoError(t, err)
		assert.Equal(t, "SELECT 4", got[0].Text)
	})

	t.Run("files in order", func(t *testing.T) {
		a, b := filepath.Join(dir, "a.sql"), filepath.Join(dir, "b.sql")
		got, err := readSources(nil, []string{b, a})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "SELECT 2", got[0].Text)
		assert.Equal(t, a, got[1].displayName())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readSources(nil, []string{filepath.Join(dir, "missing.sql")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read")
	})
}

// ---------- Parse Tests ----------

func TestParseSourcesKeepsOrder(t *testing.T) {
	cc, _ := newTestContext(t, "generic")
	logger, rec := logtest.NewRecordingLogger(t)
	cc.Logger = logger

	var sources []source
	for _, q := range []string{"SELECT 1", "SELECT FROM", "SELECT 3", "select   4"} {
		sources = append(sources, source{Name: q, Text: q})
	}

	results, err := parseSources(context.Background(), cc, sources)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.Equal(t, "SELECT 3", results[2].Stmts[0].String())
	assert.Equal(t, "SELECT 4", results[3].Stmts[0].String())

	// workers finish in any order; one debug record per input
	assert.Contains(t, rec.Messages(), "parsed input")
	logged := rec.Values("parsed input", "source")
	require.Len(t, logged, 4)
	var names []string
	for _, v := range logged {
		names = append(names, v.String())
	}
	assert.ElementsMatch(t, []string{"SELECT 1", "SELECT FROM", "SELECT 3", "select   4"}, names)
}

func TestParseSourcesCancelled(t *testing.T) {
	cc, _ := newTestContext(t, "generic")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := parseSources(ctx, cc, []source{{Text: "SELECT 1"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrintResults(t *testing.T) {
	cc, tr := newTestContext(t, "postgres")
	results := []parseResult{
		parseOne(context.Background(), cc, source{Name: "ok.sql", Text: "select a::int from t"}),
		parseOne(context.Background(), cc, source{Name: "bad.sql", Text: "SELECT a FROM"}),
	}

	failed := printResults(cc, results, true)
	assert.Equal(t, 1, failed)
	assert.Contains(t, tr.Output(), "-- ok.sql")
	assert.Contains(t, tr.Output(), "SELECT a::INT FROM t;")
	assert.Contains(t, tr.Output(), "-- bad.sql")
	assert.Contains(t, tr.ErrorOutput(), "bad.sql:1:14")
	testutil.AssertNoANSI(t, tr.ErrorOutput())
}

func TestParseOneTokensMode(t *testing.T) {
	cc, _ := newTestContext(t, "mysql", func(c *config.Config) { c.Output = config.OutputTokens })
	res := parseOne(context.Background(), cc, source{Text: "SELECT `a`"})
	require.NoError(t, res.Err)
	assert.Nil(t, res.Stmts)
	require.Len(t, res.Tokens, 3, "SELECT, `a` and EOF")
}

// ---------- Render Tests ----------

func parseFor(t *testing.T, d *dialect.Dialect, sql string) parseResult {
	t.Helper()
	stmts, err := parser.Parse(d, sql)
	require.NoError(t, err)
	return parseResult{Stmts: stmts}
}

func TestRenderModes(t *testing.T) {
	d, ok := dialect.Get("generic")
	require.True(t, ok)
	res := parseFor(t, d, "SELECT a FROM t; DROP TABLE t")

	tests := []struct {
		mode string
		want []string
	}{
		{mode: config.OutputSQL, want: []string{"SELECT a FROM t;\n", "DROP TABLE t;\n"}},
		{mode: config.OutputTree, want: []string{"Query", "Select", "Ident", "Drop"}},
		{mode: config.OutputSpans, want: []string{"Query", "Drop", "SELECT a FROM t", "DROP TABLE t"}},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			var buf bytes.Buffer
			renderResult(&buf, tt.mode, res)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRenderTokens(t *testing.T) {
	d, _ := dialect.Get("generic")
	toks, err := parser.NewTokenizer(d, "SELECT x -- hi\n").WithTrivia(true).Tokenize()
	require.NoError(t, err)

	var buf bytes.Buffer
	renderTokens(&buf, toks)
	out := buf.String()
	assert.Contains(t, out, "SELECT")
	assert.Contains(t, out, "WHITESPACE")
	assert.Contains(t, out, `" "`)
	assert.Contains(t, out, "COMMENT")
	assert.Contains(t, out, "EOF")
	assert.Contains(t, out, "tokens)")
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "a b", excerpt("a\n\t b"))
	long := strings.Repeat("x", 100)
	got := excerpt(long)
	assert.Len(t, []rune(got), maxExcerpt)
	assert.True(t, strings.HasSuffix(got, "..."))
}

// ---------- Dialects and Keywords Tests ----------

func TestDialectFeatures(t *testing.T) {
	d, ok := dialect.Get("duckdb")
	require.True(t, ok)

	fs := dialectFeatures(d)
	require.NotEmpty(t, fs)
	byName := make(map[string]bool, len(fs))
	for _, f := range fs {
		byName[f.Name] = f.Enabled
	}
	assert.Equal(t, d.FromFirstSelect, byName["FromFirstSelect"])
	assert.Equal(t, d.DoubleColonCast, byName["DoubleColonCast"])
	assert.NotContains(t, byName, "Name", "only boolean flags are listed")
	assert.Positive(t, enabledCount(fs))
}

func TestQuoteList(t *testing.T) {
	assert.Equal(t, `""`, quoteList(`"`))
	assert.Equal(t, "[] \"\"", quoteList(`["`))
	assert.Empty(t, quoteList(""))
}

func TestKeywordRows(t *testing.T) {
	d, ok := dialect.Get("generic")
	require.True(t, ok)

	all := keywordRows(d, "", false)
	reserved := keywordRows(d, "", true)
	assert.Greater(t, len(all), len(reserved))
	for _, r := range reserved {
		assert.True(t, r.reserved(), r.Keyword.String())
	}

	sel := keywordRows(d, "sele", false)
	require.NotEmpty(t, sel)
	assert.Equal(t, "SELECT", sel[0].Keyword.String())
	assert.True(t, sel[0].ColumnAlias, "SELECT cannot be a bare column alias")
}

// ---------- REPL Tests ----------

func TestReplSession(t *testing.T) {
	cc, tr := newTestContext(t, "generic")
	s := newReplSession(cc)

	assert.False(t, s.handleLine("SELECT a"))
	assert.Equal(t, replContPrompt, s.prompt())
	assert.False(t, s.handleLine("  FROM t;"))
	assert.Equal(t, replPrompt, s.prompt())
	assert.Contains(t, tr.Output(), "SELECT a FROM t;")

	tr.Reset()
	assert.False(t, s.handleLine(".dialect mysql"))
	assert.Equal(t, "mysql", s.dialect.Name())
	assert.Contains(t, tr.Output(), "dialect: mysql")

	tr.Reset()
	assert.False(t, s.handleLine(".dialect nope"))
	assert.Contains(t, tr.ErrorOutput(), "unknown dialect")
	assert.Equal(t, "mysql", s.dialect.Name())

	tr.Reset()
	assert.False(t, s.handleLine(".tokens"))
	assert.True(t, s.showTokens)
	assert.False(t, s.handleLine("SELECT 1;"))
	assert.Contains(t, tr.Output(), "NUMBER")
	assert.Contains(t, tr.Output(), "SELECT 1;")

	tr.Reset()
	assert.False(t, s.handleLine("SELECT FROM;"))
	assert.Contains(t, tr.ErrorOutput(), "error:")

	tr.Reset()
	assert.False(t, s.handleLine(".bogus"))
	assert.Contains(t, tr.ErrorOutput(), "Unknown command")

	assert.False(t, s.handleLine(".help"))
	assert.True(t, s.handleLine(".quit"))
}

func TestReplSessionReset(t *testing.T) {
	cc, _ := newTestContext(t, "generic")
	s := newReplSession(cc)
	s.handleLine("SELECT")
	s.reset()
	assert.Equal(t, replPrompt, s.prompt())
}

func TestKeywordCompleter(t *testing.T) {
	c := newKeywordCompleter()

	tests := []struct {
		name    string
		line    string
		want    string
		wantLen int
	}{
		{name: "upper keyword", line: "SELECT * FRO", want: "M", wantLen: 3},
		{name: "lower keyword", line: "select * fro", want: "m", wantLen: 3},
		{name: "dot command", line: ".dia", want: "lect", wantLen: 4},
		{name: "empty word", line: "SELECT ", wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := []rune(tt.line)
			got, n := c.Do(line, len(line))
			assert.Equal(t, tt.wantLen, n)
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			var suffixes []string
			for _, g := range got {
				suffixes = append(suffixes, string(g))
			}
			assert.Contains(t, suffixes, tt.want)
		})
	}
}
