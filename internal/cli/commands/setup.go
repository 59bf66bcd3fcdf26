package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlkit/internal/cli/config"
	"github.com/leapstack-labs/sqlkit/internal/cli/output"
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Dialect  *dialect.Dialect
	Renderer *output.Renderer
}

// NewCommandContext resolves the configured dialect and builds a renderer
// for the command's streams.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	d, err := cfg.ResolveDialect()
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Dialect:  d,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Color),
	}, nil
}

// source is one SQL input. Name is empty for standard input.
type source struct {
	Name string
	Text string
}

// displayName returns the name used in diagnostics.
func (s source) displayName() string {
	if s.Name == "" {
		return "<stdin>"
	}
	return s.Name
}

// readSources reads the named files, or stdin when names is empty or "-".
func readSources(stdin io.Reader, names []string) ([]source, error) {
	if len(names) == 0 || (len(names) == 1 && names[0] == "-") {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []source{{Text: string(b)}}, nil
	}
	out := make([]source, 0, len(names))
	for _, name := range names {
		src, err := readFile(name)
		if err != nil {
			return nil, err
		}
		out = append(out, src)
	}
	return out, nil
}

func readFile(name string) (source, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return source{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return source{Name: name, Text: string(b)}, nil
}
