// Package all registers every built-in dialect. Import it for its side
// effects:
//
//	import _ "github.com/leapstack-labs/sqlkit/pkg/dialects/all"
package all

import (
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/ansi"       // ANSI SQL
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/bigquery"   // BigQuery
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/clickhouse" // ClickHouse
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/databricks" // Databricks
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/duckdb"     // DuckDB
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/generic"    // permissive default
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/hive"       // Apache Hive
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/mssql"      // SQL Server
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/mysql"      // MySQL
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/postgres"   // PostgreSQL
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/redshift"   // Amazon Redshift
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/snowflake"  // Snowflake
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/spark"      // Apache Spark
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/sqlite"     // SQLite
)
