package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlkit/pkg/dialect"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display sqlkit version, build information and the number of compiled-in dialects.`,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "sqlkit v%s\n", version)
			_, _ = fmt.Fprintf(w, "commit %s, built %s with %s\n", commit, date, runtime.Version())
			_, _ = fmt.Fprintf(w, "%d dialects registered\n", len(dialect.List()))
		},
	}
}
