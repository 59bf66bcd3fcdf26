package bigquery

import (
	"github.com/leapstack-labs/sqlkit/pkg/dialect"
)

func init() {
	dialect.Register(BigQuery, "googlesql")
}

// BigQuery is the BigQuery dialect. Only backticks quote identifiers;
// double quotes delimit strings.
var BigQuery = dialect.New(Config).
	QuoteStyle(dialect.Backtick).
	Build()
