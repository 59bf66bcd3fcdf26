package dialect

import "strings"

// postgresOperatorChars are the characters PostgreSQL builds user-defined
// operators from.
const postgresOperatorChars = "+-*/<>=~!@#%^&|`?"

// PostgresOperatorPart reports whether r may appear in a PostgreSQL
// operator name.
func PostgresOperatorPart(r rune) bool {
	return strings.ContainsRune(postgresOperatorChars, r)
}
