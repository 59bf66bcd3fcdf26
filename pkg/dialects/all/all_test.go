package all_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/all"
)

func TestEveryDialectRegistered(t *testing.T) {
	want := []string{
		"ansi", "bigquery", "clickhouse", "databricks", "duckdb", "generic", "hive",
		"mssql", "mysql", "postgres", "redshift", "snowflake", "spark", "sqlite",
	}
	assert.Equal(t, want, dialect.List())
	assert.Len(t, dialect.All(), len(want))
}

func TestAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"postgresql", "postgres"},
		{"PG", "postgres"},
		{"mariadb", "mysql"},
		{"sqlite3", "sqlite"},
		{"standard", "ansi"},
		{"tsql", "mssql"},
		{"SqlServer", "mssql"},
		{"default", "generic"},
		{"sparksql", "spark"},
		{"googlesql", "bigquery"},
		{"ch", "clickhouse"},
		{"DuckDB", "duckdb"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			d, err := dialect.Lookup(tt.alias)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name())
		})
	}

	_, err := dialect.Lookup("oracle")
	require.ErrorIs(t, err, dialect.ErrUnknownDialect)
	assert.Contains(t, err.Error(), "postgres")
}

func TestIdentifierConventions(t *testing.T) {
	tests := []struct {
		name   string
		quotes string
		norm   dialect.NormalizationStrategy
		folded string
	}{
		{"ansi", `"`, dialect.NormUppercase, "ORDERS"},
		{"postgres", `"`, dialect.NormLowercase, "orders"},
		{"redshift", `"[`, dialect.NormLowercase, "orders"},
		{"snowflake", `"`, dialect.NormUppercase, "ORDERS"},
		{"mysql", "`", dialect.NormCaseInsensitive, "orders"},
		{"mssql", `"[`, dialect.NormCaseInsensitive, "orders"},
		{"sqlite", "\"`[", dialect.NormCaseInsensitive, "orders"},
		{"clickhouse", "`\"", dialect.NormCaseSensitive, "Orders"},
		{"bigquery", "`", dialect.NormCaseInsensitive, "orders"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := dialect.Get(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.quotes, d.IdentifierQuotes)
			assert.Equal(t, tt.norm, d.Normalization)
			assert.Equal(t, tt.folded, d.NormalizeName("Orders"))
		})
	}
}

func TestDialectFeatureSpotChecks(t *testing.T) {
	get := func(name string) *dialect.Dialect {
		d, ok := dialect.Get(name)
		require.True(t, ok, name)
		return d
	}

	assert.True(t, get("postgres").DollarQuotedStrings)
	assert.True(t, get("postgres").DoubleColonCast)
	assert.True(t, get("duckdb").FromFirstSelect)
	assert.True(t, get("snowflake").Qualify)
	assert.True(t, get("mssql").Top)
	assert.True(t, get("clickhouse").Prewhere)
	assert.True(t, get("mysql").HashComments)
	assert.False(t, get("ansi").DoubleColonCast)
	assert.False(t, get("ansi").BackslashEscape)
}
