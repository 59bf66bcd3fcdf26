package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlkit/pkg/parser"
)

// TokenizeOptions holds options for the tokenize command.
type TokenizeOptions struct {
	Trivia bool
}

// NewTokenizeCommand creates the tokenize command.
func NewTokenizeCommand() *cobra.Command {
	opts := &TokenizeOptions{}
	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Print the token stream of SQL input",
		Long: `Split SQL into tokens with the configured dialect and print one row
per token with its kind, text, keyword and source span.`,
		Example: `  # Tokenize a file, keeping whitespace and comments
  sqlkit tokenize --trivia query.sql

  # Tokenize MySQL input from stdin
  echo "SELECT `+"`a`"+` FROM t # note" | sqlkit tokenize -d mysql`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Trivia, "trivia", false, "Include whitespace and comment tokens")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string, opts *TokenizeOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	sources, err := readSources(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	src := sources[0]

	toks, err := parser.NewTokenizer(cc.Dialect, src.Text).
		WithUnescape(cc.Cfg.Unescape).
		WithTrivia(opts.Trivia).
		Tokenize()
	if err != nil {
		cc.Renderer.Diagnostic(src.displayName(), src.Text, err)
		return fmt.Errorf("%w: %s", ErrParseFailed, src.displayName())
	}
	renderTokens(cc.Renderer.Out(), toks)
	return nil
}
