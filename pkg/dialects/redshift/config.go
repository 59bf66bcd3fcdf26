// Package redshift provides the Amazon Redshift dialect definition.
package redshift

import "github.com/leapstack-labs/sqlkit/pkg/dialect"

// Config is the Redshift dialect configuration. Redshift follows
// PostgreSQL 8 with its own extensions.
var Config = dialect.Config{
	Name:             "redshift",
	IdentifierQuotes: `"[`,
	Normalization:    dialect.NormLowercase,

	DoubleColonCast: true,
	ILike:           true,
	WithinGroup:     true, // LISTAGG ... WITHIN GROUP

	Top:        true,
	SelectInto: true,

	Qualify:     true,
	GroupByExpr: true,

	UpdateFrom:  true,
	DeleteUsing: true,
}
