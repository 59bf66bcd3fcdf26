package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
)

// KeywordsOptions holds options for the keywords command.
type KeywordsOptions struct {
	Reserved bool
}

// keywordRow is a keyword with the contexts in which a dialect reserves it.
type keywordRow struct {
	Keyword     keyword.Keyword
	TableAlias  bool
	ColumnAlias bool
	Identifier  bool
	TableFactor bool
}

func (r keywordRow) reserved() bool {
	return r.TableAlias || r.ColumnAlias || r.Identifier || r.TableFactor
}

// keywordRows lists the keyword table for d, filtered by prefix.
func keywordRows(d *dialect.Dialect, prefix string, reservedOnly bool) []keywordRow {
	prefix = strings.ToUpper(prefix)
	tableAlias := d.ReservedForTableAlias()
	columnAlias := d.ReservedForColumnAlias()
	var out []keywordRow
	for _, kw := range keyword.All() {
		if !strings.HasPrefix(kw.String(), prefix) {
			continue
		}
		row := keywordRow{
			Keyword:     kw,
			TableAlias:  tableAlias.Contains(kw),
			ColumnAlias: columnAlias.Contains(kw),
			Identifier:  d.IsReservedForIdentifier(kw),
			TableFactor: d.IsReservedForTableFactor(kw),
		}
		if reservedOnly && !row.reserved() {
			continue
		}
		out = append(out, row)
	}
	return out
}

func mark(b bool) string {
	if b {
		return "x"
	}
	return ""
}

// NewKeywordsCommand creates the keywords command.
func NewKeywordsCommand() *cobra.Command {
	opts := &KeywordsOptions{}
	cmd := &cobra.Command{
		Use:   "keywords [prefix]",
		Short: "List SQL keywords and where the dialect reserves them",
		Long: `List the keyword table with one column per reservation context of the
configured dialect: table alias, column alias, bare identifier and table
factor. An optional prefix filters the list.`,
		Example: `  sqlkit keywords --reserved
  sqlkit keywords -d mysql PART`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			rows := keywordRows(cc.Dialect, prefix, opts.Reserved)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Keyword", "Table alias", "Column alias", "Identifier", "Table factor"})
			for _, r := range rows {
				t.AppendRow(table.Row{r.Keyword.String(), mark(r.TableAlias), mark(r.ColumnAlias), mark(r.Identifier), mark(r.TableFactor)})
			}
			t.Render()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "(%d keywords, dialect %s)\n", len(rows), cc.Dialect.Name())
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Reserved, "reserved", false, "Only list keywords reserved in some context")
	return cmd
}
