// Package config provides configuration management for the sqlkit CLI.
//
// Settings come from defaults, a sqlkit.yaml file found in the working
// directory or one of its parents, SQLKIT_* environment variables and
// command line flags, in increasing order of precedence.
package config

// DialectName is a registered dialect name. Values are lower-cased while
// decoding so "DuckDB" and "duckdb" select the same dialect.
type DialectName string

// Config holds all CLI configuration options.
type Config struct {
	Dialect        DialectName `koanf:"dialect"`
	RecursionLimit int         `koanf:"recursion_limit"`
	TrailingCommas bool        `koanf:"trailing_commas"`
	Unescape       bool        `koanf:"unescape"`
	Output         string      `koanf:"output"`
	Color          string      `koanf:"color"`
	Verbose        bool        `koanf:"verbose"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `koanf:"-"`
}

// Output modes.
const (
	OutputSQL    = "sql"
	OutputTree   = "tree"
	OutputSpans  = "spans"
	OutputTokens = "tokens"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default configuration values.
const (
	DefaultDialect        = "generic"
	DefaultRecursionLimit = 50
	DefaultOutput         = OutputSQL
	DefaultColor          = ColorAuto
)

// OutputModes lists the accepted values of the output setting.
var OutputModes = []string{OutputSQL, OutputTree, OutputSpans, OutputTokens}

// ColorModes lists the accepted values of the color setting.
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Dialect:        DefaultDialect,
		RecursionLimit: DefaultRecursionLimit,
		Unescape:       true,
		Output:         DefaultOutput,
		Color:          DefaultColor,
	}
}
