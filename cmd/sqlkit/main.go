// Package main provides the sqlkit command line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
