package dialect

// NormalizationStrategy defines how unquoted identifiers are normalized.
type NormalizationStrategy int

const (
	// NormLowercase folds unquoted identifiers to lowercase (PostgreSQL, Redshift).
	NormLowercase NormalizationStrategy = iota
	// NormUppercase folds unquoted identifiers to uppercase (ANSI, Snowflake).
	NormUppercase
	// NormCaseSensitive preserves identifier case exactly (ClickHouse).
	NormCaseSensitive
	// NormCaseInsensitive compares case-insensitively but keeps the spelling
	// (BigQuery, DuckDB, Hive, MySQL, SQL Server, SQLite).
	NormCaseInsensitive
)

// String returns the strategy name.
func (n NormalizationStrategy) String() string {
	switch n {
	case NormLowercase:
		return "lowercase"
	case NormUppercase:
		return "uppercase"
	case NormCaseSensitive:
		return "case-sensitive"
	case NormCaseInsensitive:
		return "case-insensitive"
	default:
		return "unknown"
	}
}

// Config holds the static feature flags of a SQL dialect.
// This is pure data; behaviour hooks live on Dialect.
type Config struct {
	// Name is the registry key ("postgres", "duckdb", ...).
	Name string

	// IdentifierQuotes lists the characters that open a delimited
	// identifier. '[' pairs with ']'.
	IdentifierQuotes string

	// Normalization controls EqualIdents and NormalizeName.
	Normalization NormalizationStrategy

	// Lexical features
	DoubleQuotedStrings    bool // "abc" is a string, not an identifier
	BackslashEscape        bool // 'a\'b' escapes inside ordinary strings
	UnicodeEscape          bool // U&'...' strings
	EscapeStrings          bool // E'a\nb' C-style escape strings
	TripleQuotedStrings    bool // '''abc''' and """abc"""
	DollarQuotedStrings    bool // $tag$...$tag$
	NestedComments         bool // /* /* */ */
	HashComments           bool // # line comment
	RawStrings             bool // R'...'
	ByteStrings            bool // B'...' is a byte string rather than a bit string
	NumericLiteralSuffixes bool // 10L, 1.5D, 2BD
	NumberUnderscores      bool // 1_000_000
	AtPlaceholders         bool // @name is a bind parameter

	// Expressions
	DoubleColonCast         bool // expr::type
	Lambdas                 bool // x -> x + 1
	LambdaKeyword           bool // LAMBDA x : x + 1
	StructLiteral           bool // STRUCT(1 AS a)
	BracketArrays           bool // [1, 2, 3] without ARRAY
	ILike                   bool
	RLike                   bool // RLIKE and REGEXP
	FilterDuringAggregation bool // agg(x) FILTER (WHERE ...)
	WithinGroup             bool
	NamedArgsExprName       bool // f(expr => v)
	NamedArgsRArrow         bool // f(a => v)
	NamedArgsEq             bool // f(a = v)
	NamedArgsAssignment     bool // f(a := v)
	NamedArgsColon          bool // f(a : v)
	NamedArgsValue          bool // JSON_OBJECT(k VALUE v)
	OuterJoinPlus           bool // a = b(+)
	MatchAgainst            bool
	ParametricAggregates    bool // f(params)(args)
	ConvertTypeFirst        bool // CONVERT(type, expr [, style])

	// Projection and wildcard
	WildcardExcept           bool
	WildcardExclude          bool
	WildcardReplace          bool
	WildcardRename           bool
	WildcardIlike            bool
	DistinctOn               bool
	Top                      bool
	SelectInto               bool
	ProjectionTrailingCommas bool
	TrailingCommas           bool

	// Query clauses
	FromFirstSelect                  bool
	Qualify                          bool
	ConnectBy                        bool
	MatchRecognize                   bool
	WindowClauseNamedWindowReference bool
	GroupByExpr                      bool // GROUPING SETS, CUBE, ROLLUP
	GroupByWithModifier              bool // WITH ROLLUP / CUBE / TOTALS
	GroupByAll                       bool
	OrderByAll                       bool
	LimitComma                       bool // LIMIT offset, count
	LimitBy                          bool
	LateralView                      bool
	ClusterDistributeSortBy          bool
	Prewhere                         bool
	FinalModifier                    bool
	Settings                         bool
	FormatClause                     bool
	SetOperatorByName                bool // UNION BY NAME
	MinusSetOperator                 bool
	ForXMLJSON                       bool // FOR XML / FOR JSON
	LockClauses                      bool // FOR UPDATE / FOR SHARE
	WithFill                         bool // ORDER BY ... WITH FILL, INTERPOLATE

	// Table factors
	TableSampleBeforeAlias bool
	TableHints             bool // WITH (NOLOCK)
	IndexHints             bool // USE INDEX (...)
	TableVersioning        bool // FOR SYSTEM_TIME AS OF, AT(...), BEFORE(...)
	PartitionSelection     bool // t PARTITION (p0)
	SemiAntiJoins          bool
	ApplyJoins             bool // CROSS APPLY / OUTER APPLY
	AsOfJoins              bool
	ArrayJoin              bool
	StraightJoin           bool

	// DML
	InsertSet      bool // INSERT INTO t SET a = 1
	ReplaceInto    bool
	InsertOr       bool // INSERT OR REPLACE
	OnConflict     bool
	OnDuplicateKey bool
	Returning      bool
	UpdateFrom     bool
	DeleteUsing    bool

	// Procedural
	BeginEndBlock   bool // BEGIN ... END as a block rather than a transaction
	ExceptionBlocks bool // BEGIN ... EXCEPTION WHEN ... END
}
