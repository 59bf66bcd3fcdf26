package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/parser"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := dialect.Lookup(string(c.Dialect)); err != nil {
		return fmt.Errorf("invalid dialect: %w", err)
	}
	if c.RecursionLimit <= 0 {
		return fmt.Errorf("recursion_limit must be positive, got %d", c.RecursionLimit)
	}
	if !slices.Contains(OutputModes, c.Output) {
		return fmt.Errorf("unknown output mode %q (expected one of %s)", c.Output, strings.Join(OutputModes, ", "))
	}
	if !slices.Contains(ColorModes, c.Color) {
		return fmt.Errorf("unknown color mode %q (expected one of %s)", c.Color, strings.Join(ColorModes, ", "))
	}
	return nil
}

// ResolveDialect returns the configured dialect from the registry.
func (c *Config) ResolveDialect() (*dialect.Dialect, error) {
	return dialect.Lookup(string(c.Dialect))
}

// NewParser builds a parser for d with the configured limits and options.
// A dialect that accepts trailing commas keeps doing so.
func (c *Config) NewParser(d *dialect.Dialect) *parser.Parser {
	opts := parser.DefaultOptions(d)
	opts.TrailingCommas = opts.TrailingCommas || c.TrailingCommas
	opts.Unescape = c.Unescape
	return parser.New(d).WithRecursionLimit(c.RecursionLimit).WithOptions(opts)
}
