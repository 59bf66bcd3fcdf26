package ast

import (
	"strings"
)

// BinaryOperator is an infix operator, rendered as written.
type BinaryOperator string

// Builtin binary operators. Dialect-specific symbols such as DuckDB's ** or
// PostgreSQL custom operators are carried as their own spelling.
const (
	OpPlus          BinaryOperator = "+"
	OpMinus         BinaryOperator = "-"
	OpMultiply      BinaryOperator = "*"
	OpDivide        BinaryOperator = "/"
	OpModulo        BinaryOperator = "%"
	OpStringConcat  BinaryOperator = "||"
	OpGt            BinaryOperator = ">"
	OpLt            BinaryOperator = "<"
	OpGtEq          BinaryOperator = ">="
	OpLtEq          BinaryOperator = "<="
	OpSpaceship     BinaryOperator = "<=>"
	OpEq            BinaryOperator = "="
	OpDoubleEq      BinaryOperator = "=="
	OpNotEq         BinaryOperator = "<>"
	OpBangNotEq     BinaryOperator = "!="
	OpNotLt         BinaryOperator = "!<"
	OpNotGt         BinaryOperator = "!>"
	OpAnd           BinaryOperator = "AND"
	OpOr            BinaryOperator = "OR"
	OpXor           BinaryOperator = "XOR"
	OpBitwiseOr     BinaryOperator = "|"
	OpBitwiseAnd    BinaryOperator = "&"
	OpBitwiseXor    BinaryOperator = "^"
	OpShiftLeft     BinaryOperator = "<<"
	OpShiftRight    BinaryOperator = ">>"
	OpIntDiv        BinaryOperator = "DIV"
	OpMod           BinaryOperator = "MOD"
	OpDuckIntDiv    BinaryOperator = "//"
	OpPGBitwiseXor  BinaryOperator = "#"
	OpArrow         BinaryOperator = "->"
	OpLongArrow     BinaryOperator = "->>"
	OpHashArrow     BinaryOperator = "#>"
	OpHashLongArrow BinaryOperator = "#>>"
	OpAtArrow       BinaryOperator = "@>"
	OpArrowAt       BinaryOperator = "<@"
	OpHashMinus     BinaryOperator = "#-"
	OpAtQuestion    BinaryOperator = "@?"
	OpAtAt          BinaryOperator = "@@"
	OpQuestion      BinaryOperator = "?"
	OpQuestionAnd   BinaryOperator = "?&"
	OpQuestionPipe  BinaryOperator = "?|"
	OpOverlap       BinaryOperator = "&&"
	OpCaretAt       BinaryOperator = "^@"
	OpRegexMatch    BinaryOperator = "~"
	OpRegexIMatch   BinaryOperator = "~*"
	OpRegexNotMatch BinaryOperator = "!~"
	OpRegexNotIM    BinaryOperator = "!~*"
	OpLikeMatch     BinaryOperator = "~~"
	OpILikeMatch    BinaryOperator = "~~*"
	OpNotLikeMatch  BinaryOperator = "!~~"
	OpNotILikeMatch BinaryOperator = "!~~*"
	OpAssign        BinaryOperator = ":="
)

// PGOperator renders PostgreSQL's OPERATOR(schema.op) form.
func PGOperator(parts []string) BinaryOperator {
	return BinaryOperator("OPERATOR(" + strings.Join(parts, ".") + ")")
}

// UnaryOperator is a prefix or postfix operator.
type UnaryOperator string

// Unary operators.
const (
	UnaryPlus       UnaryOperator = "+"
	UnaryMinus      UnaryOperator = "-"
	UnaryNot        UnaryOperator = "NOT"
	UnaryBitwiseNot UnaryOperator = "~"
	UnarySqrt       UnaryOperator = "|/"
	UnaryCbrt       UnaryOperator = "||/"
	UnaryFactorial  UnaryOperator = "!!"
	UnaryAbs        UnaryOperator = "@"
	UnaryHash       UnaryOperator = "#"
	UnaryAtDashAt   UnaryOperator = "@-@"
	UnaryBang       UnaryOperator = "!"
)

// CompoundIdentifier is a dotted reference such as t.col.
type CompoundIdentifier struct {
	Parts []Ident
}

func (*CompoundIdentifier) exprNode() {}

func (c *CompoundIdentifier) String() string {
	return join(c.Parts, ".")
}

// AccessExpr is one step of a CompoundFieldAccess chain: either .field or a
// subscript.
type AccessExpr struct {
	Dot       Expr       // .field
	Subscript *Subscript // [index] or [lo:hi:stride]
}

func (a AccessExpr) String() string {
	if a.Subscript != nil {
		return "[" + a.Subscript.String() + "]"
	}
	return "." + a.Dot.String()
}

// Subscript is an index or a slice inside brackets.
type Subscript struct {
	Index  Expr
	Slice  bool
	Lower  Expr
	Upper  Expr
	Stride Expr
}

func (s *Subscript) String() string {
	if !s.Slice {
		return s.Index.String()
	}
	var b strings.Builder
	if !isNil(s.Lower) {
		b.WriteString(s.Lower.String())
	}
	b.WriteByte(':')
	if !isNil(s.Upper) {
		b.WriteString(s.Upper.String())
	}
	if !isNil(s.Stride) {
		b.WriteByte(':')
		b.WriteString(s.Stride.String())
	}
	return b.String()
}

// CompoundFieldAccess is a chain of field accesses and subscripts applied to
// an expression, e.g. arr[1].f or (x).y.
type CompoundFieldAccess struct {
	Root  Expr
	Chain []AccessExpr
}

func (*CompoundFieldAccess) exprNode() {}

func (c *CompoundFieldAccess) String() string {
	return c.Root.String() + join(c.Chain, "")
}

// JSONPathElem is one step of a semi-structured path.
type JSONPathElem struct {
	Key     string
	Quoted  bool
	Bracket Expr
}

func (e JSONPathElem) String() string {
	if !isNil(e.Bracket) {
		return "[" + e.Bracket.String() + "]"
	}
	if e.Quoted {
		return `"` + strings.ReplaceAll(e.Key, `"`, `""`) + `"`
	}
	return e.Key
}

// JSONAccess is Snowflake/Databricks semi-structured access: v:a.b[0].
type JSONAccess struct {
	Value Expr
	Path  []JSONPathElem
}

func (*JSONAccess) exprNode() {}

func (j *JSONAccess) String() string {
	var b strings.Builder
	b.WriteString(j.Value.String())
	for i, e := range j.Path {
		switch {
		case !isNil(e.Bracket):
		case i == 0:
			b.WriteByte(':')
		default:
			b.WriteByte('.')
		}
		b.WriteString(e.String())
	}
	return b.String()
}

// IsKind selects the predicate of an IS expression.
type IsKind int

// IS predicates.
const (
	IsTrue IsKind = iota
	IsFalse
	IsNull
	IsUnknown
	IsDistinctFrom
	IsDocument
	IsContent
	IsJSON
	IsNormalized
	IsLabeled
	IsSourceOf
	IsDestinationOf
	IsSameAs
	IsNotNullPostfix // NOTNULL
	IsNullPostfix    // ISNULL
)

// Is is `expr IS [NOT] <predicate>`.
type Is struct {
	Expr    Expr
	Negated bool
	Kind    IsKind
	Right   Expr   // DISTINCT FROM, LABELED, SOURCE OF, DESTINATION OF, SAME AS
	Form    string // NORMALIZED form (NFC...) or JSON type (VALUE, ARRAY, OBJECT, SCALAR)
	Unique  string // JSON: WITH UNIQUE KEYS / WITHOUT UNIQUE KEYS
}

func (*Is) exprNode() {}

func (e *Is) String() string {
	switch e.Kind {
	case IsNotNullPostfix:
		return e.Expr.String() + " NOTNULL"
	case IsNullPostfix:
		return e.Expr.String() + " ISNULL"
	}
	var b sqlBuilder
	b.kw(e.Expr.String(), "IS")
	b.kwIf(e.Negated, "NOT")
	switch e.Kind {
	case IsTrue:
		b.kw("TRUE")
	case IsFalse:
		b.kw("FALSE")
	case IsNull:
		b.kw("NULL")
	case IsUnknown:
		b.kw("UNKNOWN")
	case IsDistinctFrom:
		b.kw("DISTINCT FROM", e.Right.String())
	case IsDocument:
		b.kw("DOCUMENT")
	case IsContent:
		b.kw("CONTENT")
	case IsJSON:
		b.kw("JSON", e.Form, e.Unique)
	case IsNormalized:
		b.kw(e.Form, "NORMALIZED")
	case IsLabeled:
		b.kw("LABELED", e.Right.String())
	case IsSourceOf:
		b.kw("SOURCE OF", e.Right.String())
	case IsDestinationOf:
		b.kw("DESTINATION OF", e.Right.String())
	case IsSameAs:
		b.kw("SAME AS", e.Right.String())
	}
	return b.String()
}

// InList is `expr [NOT] IN (list)`.
type InList struct {
	Expr    Expr
	List    []Expr
	Negated bool
}

func (*InList) exprNode() {}

func (e *InList) String() string {
	return e.Expr.String() + boolStr(e.Negated, " NOT") + " IN (" + commaSep(e.List) + ")"
}

// InSubquery is `expr [NOT] IN (query)`.
type InSubquery struct {
	Expr     Expr
	Subquery *Query
	Negated  bool
}

func (*InSubquery) exprNode() {}

func (e *InSubquery) String() string {
	return e.Expr.String() + boolStr(e.Negated, " NOT") + " IN (" + e.Subquery.String() + ")"
}

// InUnnest is BigQuery's `expr [NOT] IN UNNEST(array)`.
type InUnnest struct {
	Expr    Expr
	Array   Expr
	Negated bool
}

func (*InUnnest) exprNode() {}

func (e *InUnnest) String() string {
	return e.Expr.String() + boolStr(e.Negated, " NOT") + " IN UNNEST(" + e.Array.String() + ")"
}

// Between is `expr [NOT] BETWEEN [SYMMETRIC|ASYMMETRIC] low AND high`.
type Between struct {
	Expr     Expr
	Negated  bool
	Modifier string
	Low      Expr
	High     Expr
}

func (*Between) exprNode() {}

func (e *Between) String() string {
	var b sqlBuilder
	b.kw(e.Expr.String())
	b.kwIf(e.Negated, "NOT")
	b.kw("BETWEEN", e.Modifier, e.Low.String(), "AND", e.High.String())
	return b.String()
}

// BinaryOp is `left op right`.
type BinaryOp struct {
	Left  Expr
	Op    BinaryOperator
	Right Expr
}

func (*BinaryOp) exprNode() {}

func (e *BinaryOp) String() string {
	return e.Left.String() + " " + string(e.Op) + " " + e.Right.String()
}

// LikeKind selects the pattern-matching operator.
type LikeKind string

// Pattern-matching operators.
const (
	LikeLike      LikeKind = "LIKE"
	LikeILike     LikeKind = "ILIKE"
	LikeSimilarTo LikeKind = "SIMILAR TO"
	LikeRLike     LikeKind = "RLIKE"
	LikeRegexp    LikeKind = "REGEXP"
	LikeGlob      LikeKind = "GLOB"
	LikeMatch     LikeKind = "MATCH"
)

// Like is `expr [NOT] LIKE [ANY|ALL] pattern [ESCAPE ch]` and its relatives.
type Like struct {
	Kind       LikeKind
	Negated    bool
	Expr       Expr
	Quantifier string // ANY / ALL / SOME
	Pattern    Expr
	Escape     Expr
}

func (*Like) exprNode() {}

func (e *Like) String() string {
	var b sqlBuilder
	b.kw(e.Expr.String())
	b.kwIf(e.Negated, "NOT")
	b.kw(string(e.Kind))
	if _, ok := e.Pattern.(*Tuple); ok || e.Quantifier == "" {
		b.kw(e.Quantifier, e.Pattern.String())
	} else {
		b.kw(e.Quantifier, parens(e.Pattern.String()))
	}
	b.node("ESCAPE", e.Escape)
	return b.String()
}

// Quantified is `left op ANY|ALL|SOME (right)`.
type Quantified struct {
	Left       Expr
	Op         BinaryOperator
	Quantifier string
	Right      Expr
}

func (*Quantified) exprNode() {}

func (e *Quantified) String() string {
	right := e.Right.String()
	if q, ok := e.Right.(*Subquery); ok {
		right = q.Query.String()
	}
	return e.Left.String() + " " + string(e.Op) + " " + e.Quantifier + "(" + right + ")"
}

// UnaryOp is a prefix operator application, or a postfix one when Postfix
// is set (PostgreSQL factorial).
type UnaryOp struct {
	Op      UnaryOperator
	Expr    Expr
	Postfix bool
}

func (*UnaryOp) exprNode() {}

func (e *UnaryOp) String() string {
	if e.Postfix {
		return e.Expr.String() + string(e.Op)
	}
	if e.Op == UnaryNot {
		return "NOT " + e.Expr.String()
	}
	inner := e.Expr.String()
	// - -1 must not collapse into a line comment
	if inner != "" && strings.ContainsAny(inner[:1], "+-/*@!|#~") {
		return string(e.Op) + " " + inner
	}
	return string(e.Op) + inner
}

// CastKind selects the cast syntax.
type CastKind int

// Cast syntaxes.
const (
	CastFunction CastKind = iota // CAST(x AS t)
	TryCast                      // TRY_CAST(x AS t)
	SafeCast                     // SAFE_CAST(x AS t)
	DoubleColon                  // x::t
)

// Cast converts an expression to a type.
type Cast struct {
	Kind     CastKind
	Expr     Expr
	DataType DataType
	Format   Expr // BigQuery FORMAT 'fmt'
}

func (*Cast) exprNode() {}

func (e *Cast) String() string {
	format := ""
	if !isNil(e.Format) {
		format = " FORMAT " + e.Format.String()
	}
	switch e.Kind {
	case DoubleColon:
		return e.Expr.String() + "::" + e.DataType.String()
	case TryCast:
		return "TRY_CAST(" + e.Expr.String() + " AS " + e.DataType.String() + format + ")"
	case SafeCast:
		return "SAFE_CAST(" + e.Expr.String() + " AS " + e.DataType.String() + format + ")"
	default:
		return "CAST(" + e.Expr.String() + " AS " + e.DataType.String() + format + ")"
	}
}

// Convert is CONVERT(type, expr [, style]) in MSSQL order or
// CONVERT(expr, type) / CONVERT(expr USING charset) in MySQL order.
type Convert struct {
	IsTry             bool
	Expr              Expr
	DataType          DataType
	Charset           ObjectName
	TargetBeforeValue bool
	Styles            []Expr
}

func (*Convert) exprNode() {}

func (e *Convert) String() string {
	name := "CONVERT"
	if e.IsTry {
		name = "TRY_CONVERT"
	}
	switch {
	case e.DataType == nil:
		return name + "(" + e.Expr.String() + " USING " + e.Charset.String() + ")"
	case e.TargetBeforeValue:
		s := name + "(" + e.DataType.String() + ", " + e.Expr.String()
		if len(e.Styles) > 0 {
			s += ", " + commaSep(e.Styles)
		}
		return s + ")"
	default:
		s := name + "(" + e.Expr.String() + ", " + e.DataType.String()
		if len(e.Charset) > 0 {
			s += " CHARACTER SET " + e.Charset.String()
		}
		return s + ")"
	}
}

// AtTimeZone is `ts AT TIME ZONE tz`.
type AtTimeZone struct {
	Timestamp Expr
	TimeZone  Expr
}

func (*AtTimeZone) exprNode() {}

func (e *AtTimeZone) String() string {
	return e.Timestamp.String() + " AT TIME ZONE " + e.TimeZone.String()
}

// Extract is EXTRACT(field FROM expr), or EXTRACT(field, expr) when Comma
// is set.
type Extract struct {
	Field DateTimeField
	Comma bool
	Expr  Expr
}

func (*Extract) exprNode() {}

func (e *Extract) String() string {
	if e.Comma {
		return "EXTRACT(" + e.Field.String() + ", " + e.Expr.String() + ")"
	}
	return "EXTRACT(" + e.Field.String() + " FROM " + e.Expr.String() + ")"
}

// CeilFloor is CEIL/FLOOR(expr TO field) or CEIL/FLOOR(expr, scale).
type CeilFloor struct {
	Floor bool
	Expr  Expr
	Field *DateTimeField
	Scale Expr
}

func (*CeilFloor) exprNode() {}

func (e *CeilFloor) String() string {
	name := "CEIL"
	if e.Floor {
		name = "FLOOR"
	}
	switch {
	case e.Field != nil:
		return name + "(" + e.Expr.String() + " TO " + e.Field.String() + ")"
	case !isNil(e.Scale):
		return name + "(" + e.Expr.String() + ", " + e.Scale.String() + ")"
	default:
		return name + "(" + e.Expr.String() + ")"
	}
}

// Position is POSITION(needle IN haystack).
type Position struct {
	Expr Expr
	In   Expr
}

func (*Position) exprNode() {}

func (e *Position) String() string {
	return "POSITION(" + e.Expr.String() + " IN " + e.In.String() + ")"
}

// Substring is SUBSTRING(expr FROM a FOR b) or the comma form when Special is
// set. Shorthand records the SUBSTR spelling.
type Substring struct {
	Expr      Expr
	From      Expr
	For       Expr
	Special   bool
	Shorthand bool
}

func (*Substring) exprNode() {}

func (e *Substring) String() string {
	name := "SUBSTRING"
	if e.Shorthand {
		name = "SUBSTR"
	}
	var b strings.Builder
	b.WriteString(name + "(" + e.Expr.String())
	if e.Special {
		if !isNil(e.From) {
			b.WriteString(", " + e.From.String())
		}
		if !isNil(e.For) {
			b.WriteString(", " + e.For.String())
		}
	} else {
		if !isNil(e.From) {
			b.WriteString(" FROM " + e.From.String())
		}
		if !isNil(e.For) {
			b.WriteString(" FOR " + e.For.String())
		}
	}
	b.WriteByte(')')
	return b.String()
}

// Trim is TRIM([BOTH|LEADING|TRAILING] [what FROM] expr) or the comma form
// TRIM(expr, chars).
type Trim struct {
	Expr       Expr
	Where      string
	What       Expr
	Characters []Expr
}

func (*Trim) exprNode() {}

func (e *Trim) String() string {
	var b sqlBuilder
	b.kw(e.Where)
	if !isNil(e.What) {
		b.kw(e.What.String(), "FROM", e.Expr.String())
	} else if e.Where != "" {
		b.kw("FROM", e.Expr.String())
	} else {
		b.kw(e.Expr.String())
	}
	s := b.String()
	if len(e.Characters) > 0 {
		s += ", " + commaSep(e.Characters)
	}
	return "TRIM(" + s + ")"
}

// Overlay is OVERLAY(expr PLACING what FROM start [FOR len]).
type Overlay struct {
	Expr Expr
	What Expr
	From Expr
	For  Expr
}

func (*Overlay) exprNode() {}

func (e *Overlay) String() string {
	s := "OVERLAY(" + e.Expr.String() + " PLACING " + e.What.String() + " FROM " + e.From.String()
	if !isNil(e.For) {
		s += " FOR " + e.For.String()
	}
	return s + ")"
}

// Collate is `expr COLLATE collation`.
type Collate struct {
	Expr      Expr
	Collation ObjectName
}

func (*Collate) exprNode() {}

func (e *Collate) String() string {
	return e.Expr.String() + " COLLATE " + e.Collation.String()
}

// Nested is a parenthesized expression.
type Nested struct {
	Expr Expr
}

func (*Nested) exprNode() {}

func (e *Nested) String() string {
	return "(" + e.Expr.String() + ")"
}

// IntroducedString is MySQL's charset introducer: _utf8mb4'abc'.
type IntroducedString struct {
	Introducer string
	Value      Value
}

func (*IntroducedString) exprNode() {}

func (e *IntroducedString) String() string {
	return e.Introducer + " " + e.Value.String()
}

// TypedString is `TYPE 'value'`, or the ODBC escape {d '...'} when
// UsesOdbcSyntax is set.
type TypedString struct {
	DataType       DataType
	Value          ValueWithSpan
	UsesOdbcSyntax bool
}

func (*TypedString) exprNode() {}

func (e *TypedString) String() string {
	if e.UsesOdbcSyntax {
		return "{" + odbcPrefix(e.DataType) + " " + e.Value.String() + "}"
	}
	return e.DataType.String() + " " + e.Value.String()
}

func odbcPrefix(dt DataType) string {
	if t, ok := dt.(*TemporalType); ok {
		switch t.Kind {
		case TypeDate:
			return "d"
		case TypeTime:
			return "t"
		case TypeTimestamp:
			return "ts"
		}
	}
	return dt.String()
}

// CaseWhen is one WHEN ... THEN ... arm.
type CaseWhen struct {
	Condition Expr
	Result    Expr
}

func (w CaseWhen) String() string {
	return "WHEN " + w.Condition.String() + " THEN " + w.Result.String()
}

// Case is a CASE expression. CaseToken and EndToken make its span cover
// both keywords.
type Case struct {
	CaseToken  AttachedToken
	EndToken   AttachedToken
	Operand    Expr
	Conditions []CaseWhen
	ElseResult Expr
}

func (*Case) exprNode() {}

func (e *Case) String() string {
	var b sqlBuilder
	b.kw("CASE")
	b.node("", e.Operand)
	for _, c := range e.Conditions {
		b.kw(c.String())
	}
	b.node("ELSE", e.ElseResult)
	b.kw("END")
	return b.String()
}

// Exists is `[NOT] EXISTS (query)`.
type Exists struct {
	Subquery *Query
	Negated  bool
}

func (*Exists) exprNode() {}

func (e *Exists) String() string {
	return boolStr(e.Negated, "NOT ") + "EXISTS (" + e.Subquery.String() + ")"
}

// Subquery is a parenthesized query used as a scalar.
type Subquery struct {
	Query *Query
}

func (*Subquery) exprNode() {}

func (e *Subquery) String() string {
	return "(" + e.Query.String() + ")"
}

// GroupingSets is GROUPING SETS ((a, b), (c)).
type GroupingSets struct {
	Sets [][]Expr
}

func (*GroupingSets) exprNode() {}

func (e *GroupingSets) String() string {
	parts := make([]string, len(e.Sets))
	for i, s := range e.Sets {
		parts[i] = "(" + commaSep(s) + ")"
	}
	return "GROUPING SETS (" + strings.Join(parts, ", ") + ")"
}

// Cube is CUBE ((a), (b, c)).
type Cube struct {
	Sets [][]Expr
}

func (*Cube) exprNode() {}

func (e *Cube) String() string {
	return "CUBE (" + groupingLists(e.Sets) + ")"
}

// Rollup is ROLLUP ((a), (b, c)).
type Rollup struct {
	Sets [][]Expr
}

func (*Rollup) exprNode() {}

func (e *Rollup) String() string {
	return "ROLLUP (" + groupingLists(e.Sets) + ")"
}

func groupingLists(sets [][]Expr) string {
	parts := make([]string, len(sets))
	for i, s := range sets {
		if len(s) == 1 {
			parts[i] = s[0].String()
		} else {
			parts[i] = "(" + commaSep(s) + ")"
		}
	}
	return strings.Join(parts, ", ")
}

// Tuple is a parenthesized list of two or more expressions, or ROW(...)
// when Row is set.
type Tuple struct {
	Exprs []Expr
	Row   bool
}

func (*Tuple) exprNode() {}

func (e *Tuple) String() string {
	return boolStr(e.Row, "ROW") + "(" + commaSep(e.Exprs) + ")"
}

// StructField is a field of a struct type or a named struct value.
type StructField struct {
	Name     *Ident
	DataType DataType
	Options  []SQLOption
}

func (f StructField) String() string {
	var b sqlBuilder
	if f.Name != nil {
		b.kw(f.Name.String())
	}
	b.kw(f.DataType.String())
	if len(f.Options) > 0 {
		b.kw("OPTIONS(" + commaSep(f.Options) + ")")
	}
	return b.String()
}

// Struct is BigQuery STRUCT<...>(...) or STRUCT(a AS x, ...).
type Struct struct {
	Values []Expr
	Fields []StructField
}

func (*Struct) exprNode() {}

func (e *Struct) String() string {
	if len(e.Fields) > 0 {
		return "STRUCT<" + commaSep(e.Fields) + ">(" + commaSep(e.Values) + ")"
	}
	return "STRUCT(" + commaSep(e.Values) + ")"
}

// Named is `expr AS name` inside a struct constructor.
type Named struct {
	Expr Expr
	Name Ident
}

func (*Named) exprNode() {}

func (e *Named) String() string {
	return e.Expr.String() + " AS " + e.Name.String()
}

// DictionaryField is one key: value pair of a DuckDB struct literal.
type DictionaryField struct {
	Key   Ident
	Value Expr
}

func (f DictionaryField) String() string {
	return f.Key.String() + ": " + f.Value.String()
}

// Dictionary is DuckDB's {'k': v, ...}.
type Dictionary struct {
	Fields []DictionaryField
}

func (*Dictionary) exprNode() {}

func (e *Dictionary) String() string {
	return "{" + commaSep(e.Fields) + "}"
}

// MapEntry is one key: value pair of a MAP literal.
type MapEntry struct {
	Key   Expr
	Value Expr
}

func (m MapEntry) String() string {
	return m.Key.String() + ": " + m.Value.String()
}

// Map is DuckDB's MAP {k: v, ...}.
type Map struct {
	Entries []MapEntry
}

func (*Map) exprNode() {}

func (e *Map) String() string {
	return "MAP {" + commaSep(e.Entries) + "}"
}

// Array is ARRAY[...] (Named) or a bare [...] literal. Elements may be
// arrays themselves.
type Array struct {
	Elems []Expr
	Named bool
}

func (*Array) exprNode() {}

func (e *Array) String() string {
	return boolStr(e.Named, "ARRAY") + "[" + commaSep(e.Elems) + "]"
}

// ArraySubquery is ARRAY(SELECT ...).
type ArraySubquery struct {
	Query *Query
}

func (*ArraySubquery) exprNode() {}

func (e *ArraySubquery) String() string {
	return "ARRAY(" + e.Query.String() + ")"
}

// Interval is INTERVAL value [leading [(p)] [TO last [(fp)]]].
type Interval struct {
	Value            Expr
	LeadingField     *DateTimeField
	LeadingPrecision *uint64
	LastField        *DateTimeField
	FractionalPrec   *uint64
}

func (*Interval) exprNode() {}

func (e *Interval) String() string {
	var b sqlBuilder
	b.kw("INTERVAL", e.Value.String())
	if e.LeadingField != nil {
		f := e.LeadingField.String()
		if e.LeadingPrecision != nil {
			f += "(" + uintStr(*e.LeadingPrecision)
			if e.LastField == nil && e.FractionalPrec != nil {
				f += ", " + uintStr(*e.FractionalPrec)
			}
			f += ")"
		}
		b.kw(f)
	}
	if e.LastField != nil {
		f := e.LastField.String()
		if e.FractionalPrec != nil {
			f += "(" + uintStr(*e.FractionalPrec) + ")"
		}
		b.kw("TO", f)
	}
	return b.String()
}

// MatchAgainst is MySQL's MATCH (cols) AGAINST (expr [modifier]).
type MatchAgainst struct {
	Columns  []ObjectName
	Value    Value
	Modifier string
}

func (*MatchAgainst) exprNode() {}

func (e *MatchAgainst) String() string {
	var b sqlBuilder
	b.kw(e.Value.String(), e.Modifier)
	return "MATCH (" + commaSep(e.Columns) + ") AGAINST (" + b.String() + ")"
}

// Wildcard is an unqualified * used as an expression (e.g. COUNT(*)).
type Wildcard struct {
	Token AttachedToken
}

func (*Wildcard) exprNode() {}

func (*Wildcard) String() string { return "*" }

// QualifiedWildcard is t.* used as an expression.
type QualifiedWildcard struct {
	Name  ObjectName
	Token AttachedToken
}

func (*QualifiedWildcard) exprNode() {}

func (e *QualifiedWildcard) String() string {
	return e.Name.String() + ".*"
}

// OuterJoin is the Oracle-style (+) marker.
type OuterJoin struct {
	Expr Expr
}

func (*OuterJoin) exprNode() {}

func (e *OuterJoin) String() string {
	return e.Expr.String() + " (+)"
}

// Prior is CONNECT BY's PRIOR expr.
type Prior struct {
	Expr Expr
}

func (*Prior) exprNode() {}

func (e *Prior) String() string {
	return "PRIOR " + e.Expr.String()
}

// Lambda is `x -> body` or `(x, y) -> body`. Lambda keyword form (DuckDB
// 1.3) sets Keyword.
type Lambda struct {
	Params  OneOrManyWithParens[Ident]
	Body    Expr
	Keyword bool
}

func (*Lambda) exprNode() {}

func (e *Lambda) String() string {
	if e.Keyword {
		return "LAMBDA " + commaSep(e.Params.Items) + ": " + e.Body.String()
	}
	return e.Params.String() + " -> " + e.Body.String()
}

// MemberOf is MySQL's `value MEMBER OF(array)`.
type MemberOf struct {
	Value Expr
	Array Expr
}

func (*MemberOf) exprNode() {}

func (e *MemberOf) String() string {
	return e.Value.String() + " MEMBER OF(" + e.Array.String() + ")"
}

// XMLAttribute is one item of XMLATTRIBUTES or XMLFOREST.
type XMLAttribute struct {
	Expr  Expr
	Alias *Ident
}

func (a XMLAttribute) String() string {
	if a.Alias != nil {
		return a.Expr.String() + " AS " + a.Alias.String()
	}
	return a.Expr.String()
}

// XMLElement is XMLELEMENT(NAME n [, XMLATTRIBUTES(...)] [, content...]).
type XMLElement struct {
	Name       Ident
	Attributes []XMLAttribute
	Content    []Expr
}

func (*XMLElement) exprNode() {}

func (e *XMLElement) String() string {
	s := "XMLELEMENT(NAME " + e.Name.String()
	if len(e.Attributes) > 0 {
		s += ", XMLATTRIBUTES(" + commaSep(e.Attributes) + ")"
	}
	if len(e.Content) > 0 {
		s += ", " + commaSep(e.Content)
	}
	return s + ")"
}

// XMLForest is XMLFOREST(expr [AS name], ...).
type XMLForest struct {
	Items []XMLAttribute
}

func (*XMLForest) exprNode() {}

func (e *XMLForest) String() string {
	return "XMLFOREST(" + commaSep(e.Items) + ")"
}

// XMLParse is XMLPARSE({DOCUMENT|CONTENT} expr).
type XMLParse struct {
	Document bool
	Expr     Expr
}

func (*XMLParse) exprNode() {}

func (e *XMLParse) String() string {
	kind := "CONTENT"
	if e.Document {
		kind = "DOCUMENT"
	}
	return "XMLPARSE(" + kind + " " + e.Expr.String() + ")"
}

// XMLSerialize is XMLSERIALIZE({DOCUMENT|CONTENT} expr AS type).
type XMLSerialize struct {
	Document bool
	Expr     Expr
	DataType DataType
}

func (*XMLSerialize) exprNode() {}

func (e *XMLSerialize) String() string {
	kind := "CONTENT"
	if e.Document {
		kind = "DOCUMENT"
	}
	return "XMLSERIALIZE(" + kind + " " + e.Expr.String() + " AS " + e.DataType.String() + ")"
}

// ExprWithAlias is `expr [AS] alias` in contexts other than a projection.
type ExprWithAlias struct {
	Expr  Expr
	Alias *Ident
}

func (e ExprWithAlias) String() string {
	if e.Alias != nil {
		return e.Expr.String() + " AS " + e.Alias.String()
	}
	return e.Expr.String()
}
