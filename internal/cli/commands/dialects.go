package commands

import (
	"reflect"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlkit/pkg/dialect"
)

// Feature is one boolean flag of a dialect configuration.
type Feature struct {
	Name    string
	Enabled bool
}

// dialectFeatures lists the boolean flags of d.Config in declaration order.
func dialectFeatures(d *dialect.Dialect) []Feature {
	v := reflect.ValueOf(d.Config)
	t := v.Type()
	var out []Feature
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Type.Kind() != reflect.Bool {
			continue
		}
		out = append(out, Feature{Name: f.Name, Enabled: v.Field(i).Bool()})
	}
	return out
}

func enabledCount(fs []Feature) int {
	n := 0
	for _, f := range fs {
		if f.Enabled {
			n++
		}
	}
	return n
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "dialects [name]",
		Short: "List registered dialects and their features",
		Long: `Without arguments, list every registered dialect with its identifier
quotes, name normalization and the number of enabled features.

With a dialect name, list that dialect's features. Only enabled features
are shown unless --all is given.`,
		Example: `  sqlkit dialects
  sqlkit dialects snowflake
  sqlkit dialects postgres --all`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return dialect.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)

			if len(args) == 0 {
				t.AppendHeader(table.Row{"Dialect", "Quotes", "Normalization", "Features"})
				for _, d := range dialect.All() {
					fs := dialectFeatures(d)
					t.AppendRow(table.Row{d.Name(), quoteList(d.IdentifierQuotes), d.Normalization.String(), enabledCount(fs)})
				}
				t.Render()
				return nil
			}

			d, err := dialect.Lookup(args[0])
			if err != nil {
				return err
			}
			t.SetTitle(d.Name())
			t.AppendHeader(table.Row{"Feature", "Enabled"})
			for _, f := range dialectFeatures(d) {
				if f.Enabled || all {
					t.AppendRow(table.Row{f.Name, f.Enabled})
				}
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Show disabled features too")
	return cmd
}

// quoteList renders identifier quote characters, pairing '[' with ']'.
func quoteList(quotes string) string {
	parts := make([]string, 0, len(quotes))
	for _, q := range quotes {
		if q == '[' {
			parts = append(parts, "[]")
			continue
		}
		parts = append(parts, string(q)+string(q))
	}
	return strings.Join(parts, " ")
}
