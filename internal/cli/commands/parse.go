package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/sqlkit/internal/cli/config"
	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/parser"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// ErrParseFailed is returned after the diagnostics of failed inputs have
// been printed.
var ErrParseFailed = errors.New("parse failed")

// watchDebounce coalesces the bursts of events editors produce on save.
const watchDebounce = 100 * time.Millisecond

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Watch bool
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse SQL and print the result",
		Long: `Parse SQL files (or standard input) with the configured dialect.

The --output setting selects what is printed:
  sql     canonical SQL, one statement per line
  tree    an outline of the syntax tree with source spans
  spans   a table of statements and their source ranges
  tokens  the token stream

Several files are parsed concurrently. Errors are reported with the
offending source line.`,
		Example: `  # Parse a file with the DuckDB dialect
  sqlkit parse --dialect duckdb models/orders.sql

  # Show the syntax tree of a query from stdin
  echo "SELECT 1 + 2" | sqlkit parse -o tree

  # Re-parse whenever the files change
  sqlkit parse --watch queries/*.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-parse files when they change")
	return cmd
}

// parseResult is the outcome for one source.
type parseResult struct {
	Source source
	Stmts  []ast.Statement
	Tokens []token.TokenWithSpan
	Err    error
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	sources, err := readSources(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if opts.Watch && sources[0].Name == "" {
		return fmt.Errorf("--watch needs file arguments")
	}

	results, err := parseSources(cmd.Context(), cc, sources)
	if err != nil {
		return err
	}
	failed := printResults(cc, results, len(results) > 1)

	if opts.Watch {
		return watchSources(cmd.Context(), cc, args)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d inputs", ErrParseFailed, failed, len(results))
	}
	return nil
}

// parseSources parses every source concurrently. Per-source failures are
// recorded in the results; the returned error is only set when ctx ends.
func parseSources(ctx context.Context, cc *CommandContext, sources []source) ([]parseResult, error) {
	results := make([]parseResult, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		g.Go(func() error {
			results[i] = parseOne(gctx, cc, src)
			if errors.Is(results[i].Err, context.Canceled) || errors.Is(results[i].Err, context.DeadlineExceeded) {
				return results[i].Err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseOne(ctx context.Context, cc *CommandContext, src source) parseResult {
	cfg := cc.Cfg
	res := parseResult{Source: src}
	start := time.Now()
	if cfg.Output == config.OutputTokens {
		res.Tokens, res.Err = parser.NewTokenizer(cc.Dialect, src.Text).WithUnescape(cfg.Unescape).Tokenize()
	} else {
		res.Stmts, res.Err = cfg.NewParser(cc.Dialect).ParseSQLContext(ctx, src.Text)
	}
	cc.Logger.Debug("parsed input",
		"source", src.displayName(),
		"dialect", cc.Dialect.Name(),
		"statements", len(res.Stmts),
		"duration", time.Since(start),
		"error", res.Err,
	)
	return res
}

// printResults writes the results in input order and returns how many
// failed.
func printResults(cc *CommandContext, results []parseResult, headers bool) int {
	r := cc.Renderer
	failed := 0
	for _, res := range results {
		if headers {
			r.Println(r.Styles().Header.Render("-- " + res.Source.displayName()))
		}
		if res.Err != nil {
			failed++
			r.Diagnostic(res.Source.displayName(), res.Source.Text, res.Err)
			continue
		}
		renderResult(r.Out(), cc.Cfg.Output, res)
	}
	return failed
}

func renderResult(w io.Writer, mode string, res parseResult) {
	switch mode {
	case config.OutputTree:
		renderTree(w, res.Stmts)
	case config.OutputSpans:
		renderSpans(w, res.Stmts)
	case config.OutputTokens:
		renderTokens(w, res.Tokens)
	default:
		renderSQL(w, res.Stmts)
	}
}

// watchSources re-parses a file each time it is written until ctx ends.
// Directories are watched rather than files so editors that save by
// renaming keep being followed.
func watchSources(ctx context.Context, cc *CommandContext, names []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]string, len(names))
	dirs := make(map[string]bool)
	for _, name := range names {
		abs, err := filepath.Abs(name)
		if err != nil {
			return err
		}
		watched[abs] = name
		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			dirs[dir] = true
		}
	}
	cc.Renderer.Warnf("watching %d file(s), press Ctrl+C to stop", len(watched))

	pending := make(map[string]bool)
	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, _ := filepath.Abs(event.Name)
			if name, ok := watched[abs]; ok {
				pending[name] = true
				debounce = time.After(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cc.Logger.Warn("watcher error", "error", err)
		case <-debounce:
			debounce = nil
			var sources []source
			for name := range pending {
				src, err := readFile(name)
				if err != nil {
					cc.Logger.Warn("skipping unreadable file", "file", name, "error", err)
					continue
				}
				sources = append(sources, src)
			}
			clear(pending)
			results, err := parseSources(ctx, cc, sources)
			if err != nil {
				return nil
			}
			printResults(cc, results, true)
		}
	}
}
