package ast

import (
	"strings"
)

// TableWithJoins is one comma-separated FROM item: a relation followed by
// its joins.
type TableWithJoins struct {
	Relation TableFactor
	Joins    []Join
}

func (t TableWithJoins) String() string {
	var b sqlBuilder
	b.kw(t.Relation.String())
	for _, j := range t.Joins {
		b.kw(j.String())
	}
	return b.String()
}

// JoinKind encodes the exact keyword combination of a join.
type JoinKind int

// Join kinds. LEFT JOIN and LEFT OUTER JOIN are both LeftOuter; likewise
// for RIGHT and FULL.
const (
	JoinPlain JoinKind = iota // JOIN
	JoinInner                 // INNER JOIN
	JoinLeftOuter
	JoinRightOuter
	JoinFullOuter
	JoinCross
	JoinLeftSemi
	JoinRightSemi
	JoinLeftAnti
	JoinRightAnti
	JoinSemi
	JoinAnti
	JoinCrossApply
	JoinOuterApply
	JoinAsOf
	JoinStraight
	JoinArray     // ClickHouse ARRAY JOIN
	JoinLeftArray // ClickHouse LEFT ARRAY JOIN
)

var joinKeywords = map[JoinKind]string{
	JoinPlain:      "JOIN",
	JoinInner:      "INNER JOIN",
	JoinLeftOuter:  "LEFT JOIN",
	JoinRightOuter: "RIGHT JOIN",
	JoinFullOuter:  "FULL JOIN",
	JoinCross:      "CROSS JOIN",
	JoinLeftSemi:   "LEFT SEMI JOIN",
	JoinRightSemi:  "RIGHT SEMI JOIN",
	JoinLeftAnti:   "LEFT ANTI JOIN",
	JoinRightAnti:  "RIGHT ANTI JOIN",
	JoinSemi:       "SEMI JOIN",
	JoinAnti:       "ANTI JOIN",
	JoinCrossApply: "CROSS APPLY",
	JoinOuterApply: "OUTER APPLY",
	JoinAsOf:       "ASOF JOIN",
	JoinStraight:   "STRAIGHT_JOIN",
	JoinArray:      "ARRAY JOIN",
	JoinLeftArray:  "LEFT ARRAY JOIN",
}

func (k JoinKind) String() string {
	return joinKeywords[k]
}

// ConstraintKind selects the join condition form.
type ConstraintKind int

// Join constraints.
const (
	ConstraintNone ConstraintKind = iota
	ConstraintOn
	ConstraintUsing
	ConstraintNatural
)

// JoinConstraint is ON expr, USING (cols), NATURAL or nothing.
type JoinConstraint struct {
	Kind  ConstraintKind
	On    Expr
	Using []ObjectName
}

// JoinOperator is the join kind with its constraint. MatchCondition holds
// Snowflake's ASOF MATCH_CONDITION(expr).
type JoinOperator struct {
	Kind           JoinKind
	Constraint     JoinConstraint
	MatchCondition Expr
}

// Join is one join step.
type Join struct {
	Relation TableFactor
	Global   bool
	Operator JoinOperator
}

func (j Join) String() string {
	var b sqlBuilder
	b.kwIf(j.Global, "GLOBAL")
	b.kwIf(j.Operator.Constraint.Kind == ConstraintNatural, "NATURAL")
	b.kw(j.Operator.Kind.String(), j.Relation.String())
	b.node("MATCH_CONDITION", wrapParen(j.Operator.MatchCondition))
	switch j.Operator.Constraint.Kind {
	case ConstraintOn:
		b.kw("ON", j.Operator.Constraint.On.String())
	case ConstraintUsing:
		b.kw("USING", "("+commaSep(j.Operator.Constraint.Using)+")")
	}
	return b.String()
}

func wrapParen(e Expr) Node {
	if isNil(e) {
		return nil
	}
	return &Nested{Expr: e}
}

// TableAliasColumn is a column of a table alias, optionally typed.
type TableAliasColumn struct {
	Name     Ident
	DataType DataType
}

func (c TableAliasColumn) String() string {
	if isNil(c.DataType) {
		return c.Name.String()
	}
	return c.Name.String() + " " + c.DataType.String()
}

// TableAlias is `[AS] name [(cols)]`.
type TableAlias struct {
	Name    Ident
	Columns []TableAliasColumn
}

func (a TableAlias) String() string {
	if len(a.Columns) > 0 {
		return a.Name.String() + " (" + commaSep(a.Columns) + ")"
	}
	return a.Name.String()
}

func aliasString(a *TableAlias) string {
	if a == nil {
		return ""
	}
	return "AS " + a.String()
}

// TableVersion is FOR SYSTEM_TIME AS OF expr, or a function form such as
// Snowflake's AT(...) / BEFORE(...).
type TableVersion struct {
	ForSystemTimeAsOf Expr
	Function          *Function
}

func (v *TableVersion) String() string {
	if v.Function != nil {
		return v.Function.String()
	}
	return "FOR SYSTEM_TIME AS OF " + v.ForSystemTimeAsOf.String()
}

// TableSample is TABLESAMPLE|SAMPLE [method] (quantity [unit]) [REPEATABLE|SEED (n)]
// and ClickHouse's SAMPLE n [OFFSET m].
type TableSample struct {
	Keyword  string // TABLESAMPLE / SAMPLE
	Method   string
	Quantity Expr
	Parens   bool
	Unit     string // ROWS / PERCENT
	Bucket   *SampleBucket
	SeedKind string // REPEATABLE / SEED
	Seed     Expr
	Offset   Expr
}

// SampleBucket is Hive's BUCKET x OUT OF y [ON expr].
type SampleBucket struct {
	Bucket Value
	Total  Value
	On     Expr
}

func (s *TableSample) String() string {
	var b sqlBuilder
	b.kw(s.Keyword, s.Method)
	var inner sqlBuilder
	if s.Bucket != nil {
		inner.kw("BUCKET", s.Bucket.Bucket.String(), "OUT OF", s.Bucket.Total.String())
		inner.node("ON", s.Bucket.On)
	} else if !isNil(s.Quantity) {
		inner.kw(s.Quantity.String(), s.Unit)
	}
	if s.Parens || s.Bucket != nil {
		b.kw("(" + inner.String() + ")")
	} else {
		b.kw(inner.String())
	}
	if !isNil(s.Seed) {
		b.kw(s.SeedKind, "("+s.Seed.String()+")")
	}
	b.node("OFFSET", s.Offset)
	return b.String()
}

// IndexHint is MySQL's {USE|IGNORE|FORCE} {INDEX|KEY} [FOR ...] (names).
type IndexHint struct {
	Type    string
	Keyword string
	For     string
	Names   []Ident
}

func (h IndexHint) String() string {
	var b sqlBuilder
	b.kw(h.Type, h.Keyword)
	if h.For != "" {
		b.kw("FOR", h.For)
	}
	b.kw("(" + commaSep(h.Names) + ")")
	return b.String()
}

// TableRef is a named table, or a table-valued function call when Args is
// set.
type TableRef struct {
	Name           ObjectName
	Alias          *TableAlias
	Args           *FunctionArguments
	WithHints      []Expr
	Version        *TableVersion
	WithOrdinality bool
	Partitions     []Ident
	IndexHints     []IndexHint
	Sample         *TableSample
	SampleFirst    bool // sample written before the alias
	Final          bool // ClickHouse FINAL
}

func (*TableRef) tableFactorNode() {}

func (t *TableRef) String() string {
	var b sqlBuilder
	name := t.Name.String()
	if t.Args != nil {
		name += t.Args.String()
	}
	b.kw(name)
	if len(t.Partitions) > 0 {
		b.kw("PARTITION", "("+commaSep(t.Partitions)+")")
	}
	b.kwIf(t.WithOrdinality, "WITH ORDINALITY")
	if t.Version != nil {
		b.kw(t.Version.String())
	}
	if t.Sample != nil && t.SampleFirst {
		b.kw(t.Sample.String())
	}
	b.kw(aliasString(t.Alias))
	b.kwIf(t.Final, "FINAL")
	for _, h := range t.IndexHints {
		b.kw(h.String())
	}
	if len(t.WithHints) > 0 {
		b.kw("WITH", "("+commaSep(t.WithHints)+")")
	}
	if t.Sample != nil && !t.SampleFirst {
		b.kw(t.Sample.String())
	}
	return b.String()
}

// DerivedTable is `[LATERAL] (query) [AS alias]`.
type DerivedTable struct {
	Lateral  bool
	Subquery *Query
	Alias    *TableAlias
}

func (*DerivedTable) tableFactorNode() {}

func (d *DerivedTable) String() string {
	var b sqlBuilder
	b.kwIf(d.Lateral, "LATERAL")
	b.kw("("+d.Subquery.String()+")", aliasString(d.Alias))
	return b.String()
}

// FunctionTable is `LATERAL name(args) [AS alias]` or TABLE(expr).
type FunctionTable struct {
	Lateral   bool
	TableExpr bool // TABLE(expr)
	Name      ObjectName
	Args      []FunctionArg
	Expr      Expr
	Alias     *TableAlias
}

func (*FunctionTable) tableFactorNode() {}

func (f *FunctionTable) String() string {
	var b sqlBuilder
	if f.TableExpr {
		b.kw("TABLE(" + f.Expr.String() + ")")
	} else {
		b.kwIf(f.Lateral, "LATERAL")
		b.kw(f.Name.String() + "(" + commaSep(f.Args) + ")")
	}
	b.kw(aliasString(f.Alias))
	return b.String()
}

// UnnestTable is UNNEST(exprs) [WITH ORDINALITY] [AS alias] [WITH OFFSET [AS a]].
type UnnestTable struct {
	ArrayExprs      []Expr
	WithOrdinality  bool
	Alias           *TableAlias
	WithOffset      bool
	WithOffsetAlias *Ident
}

func (*UnnestTable) tableFactorNode() {}

func (u *UnnestTable) String() string {
	var b sqlBuilder
	b.kw("UNNEST(" + commaSep(u.ArrayExprs) + ")")
	b.kwIf(u.WithOrdinality, "WITH ORDINALITY")
	b.kw(aliasString(u.Alias))
	b.kwIf(u.WithOffset, "WITH OFFSET")
	if u.WithOffsetAlias != nil {
		b.kw("AS", u.WithOffsetAlias.String())
	}
	return b.String()
}

// NestedJoin is `(table_with_joins) [AS alias]`.
type NestedJoin struct {
	TableWithJoins TableWithJoins
	Alias          *TableAlias
}

func (*NestedJoin) tableFactorNode() {}

func (n *NestedJoin) String() string {
	var b sqlBuilder
	b.kw("("+n.TableWithJoins.String()+")", aliasString(n.Alias))
	return b.String()
}

// ---------- JSON_TABLE / OPENJSON / XMLTABLE ----------

// JSONTableColumn is one column of a JSON_TABLE COLUMNS clause.
type JSONTableColumn struct {
	Name          Ident
	ForOrdinality bool
	DataType      DataType
	Exists        bool
	Path          *Value
	OnEmpty       string
	OnError       string
	Nested        *JSONTableNested
}

// JSONTableNested is NESTED [PATH] 'path' COLUMNS (...).
type JSONTableNested struct {
	Path    Value
	Columns []JSONTableColumn
}

func (c JSONTableColumn) String() string {
	if c.Nested != nil {
		return "NESTED PATH " + c.Nested.Path.String() + " COLUMNS (" + commaSep(c.Nested.Columns) + ")"
	}
	if c.ForOrdinality {
		return c.Name.String() + " FOR ORDINALITY"
	}
	var b sqlBuilder
	b.kw(c.Name.String(), c.DataType.String())
	b.kwIf(c.Exists, "EXISTS")
	if c.Path != nil {
		b.kw("PATH", c.Path.String())
	}
	b.kw(c.OnEmpty)
	if c.OnEmpty != "" {
		b.kw("ON EMPTY")
	}
	b.kw(c.OnError)
	if c.OnError != "" {
		b.kw("ON ERROR")
	}
	return b.String()
}

// JSONTable is JSON_TABLE(expr, 'path' COLUMNS (...)) [AS alias].
type JSONTable struct {
	JSONExpr Expr
	JSONPath Value
	Columns  []JSONTableColumn
	Alias    *TableAlias
}

func (*JSONTable) tableFactorNode() {}

func (j *JSONTable) String() string {
	var b sqlBuilder
	b.kw("JSON_TABLE(" + j.JSONExpr.String() + ", " + j.JSONPath.String() + " COLUMNS (" + commaSep(j.Columns) + "))")
	b.kw(aliasString(j.Alias))
	return b.String()
}

// OpenJSONColumn is one column of OPENJSON ... WITH (...).
type OpenJSONColumn struct {
	Name     Ident
	DataType DataType
	Path     *Value
	AsJSON   bool
}

func (c OpenJSONColumn) String() string {
	var b sqlBuilder
	b.kw(c.Name.String(), c.DataType.String())
	if c.Path != nil {
		b.kw(c.Path.String())
	}
	b.kwIf(c.AsJSON, "AS JSON")
	return b.String()
}

// OpenJSONTable is MSSQL's OPENJSON(expr [, 'path']) [WITH (cols)] [AS alias].
type OpenJSONTable struct {
	JSONExpr Expr
	JSONPath *Value
	Columns  []OpenJSONColumn
	Alias    *TableAlias
}

func (*OpenJSONTable) tableFactorNode() {}

func (o *OpenJSONTable) String() string {
	var b sqlBuilder
	call := "OPENJSON(" + o.JSONExpr.String()
	if o.JSONPath != nil {
		call += ", " + o.JSONPath.String()
	}
	b.kw(call + ")")
	if len(o.Columns) > 0 {
		b.kw("WITH (" + commaSep(o.Columns) + ")")
	}
	b.kw(aliasString(o.Alias))
	return b.String()
}

// XMLNamespace is `uri AS prefix` in XMLNAMESPACES.
type XMLNamespace struct {
	URI  Expr
	Name Ident
}

func (n XMLNamespace) String() string {
	return n.URI.String() + " AS " + n.Name.String()
}

// XMLTableColumn is one column of XMLTABLE.
type XMLTableColumn struct {
	Name          Ident
	ForOrdinality bool
	DataType      DataType
	Path          Expr
	Default       Expr
	Nullable      *bool
}

func (c XMLTableColumn) String() string {
	if c.ForOrdinality {
		return c.Name.String() + " FOR ORDINALITY"
	}
	var b sqlBuilder
	b.kw(c.Name.String(), c.DataType.String())
	b.node("PATH", c.Path)
	b.node("DEFAULT", c.Default)
	if c.Nullable != nil {
		if *c.Nullable {
			b.kw("NULL")
		} else {
			b.kw("NOT NULL")
		}
	}
	return b.String()
}

// XMLPassingArg is one argument of the PASSING clause.
type XMLPassingArg struct {
	Expr    Expr
	Alias   *Ident
	ByValue bool
}

func (a XMLPassingArg) String() string {
	var b sqlBuilder
	b.kwIf(a.ByValue, "BY VALUE")
	b.kw(a.Expr.String())
	if a.Alias != nil {
		b.kw("AS", a.Alias.String())
	}
	return b.String()
}

// XMLTable is XMLTABLE([XMLNAMESPACES(...),] row PASSING args COLUMNS ...).
type XMLTable struct {
	Namespaces []XMLNamespace
	RowExpr    Expr
	Passing    []XMLPassingArg
	Columns    []XMLTableColumn
	Alias      *TableAlias
}

func (*XMLTable) tableFactorNode() {}

func (x *XMLTable) String() string {
	var b sqlBuilder
	if len(x.Namespaces) > 0 {
		b.kw("XMLNAMESPACES(" + commaSep(x.Namespaces) + "),")
	}
	b.kw(x.RowExpr.String())
	if len(x.Passing) > 0 {
		b.kw("PASSING", commaSep(x.Passing))
	}
	b.kw("COLUMNS", commaSep(x.Columns))
	out := "XMLTABLE(" + b.String() + ")"
	if x.Alias != nil {
		out += " " + aliasString(x.Alias)
	}
	return out
}

// ---------- PIVOT / UNPIVOT ----------

// PivotValueSource lists the pivoted values: a literal list, ANY [ORDER BY],
// or a subquery.
type PivotValueSource struct {
	List     []ExprWithAlias
	Any      bool
	AnyOrder []OrderByExpr
	Subquery *Query
}

func (s PivotValueSource) String() string {
	switch {
	case s.Any:
		if len(s.AnyOrder) > 0 {
			return "ANY ORDER BY " + commaSep(s.AnyOrder)
		}
		return "ANY"
	case s.Subquery != nil:
		return s.Subquery.String()
	default:
		return commaSep(s.List)
	}
}

// Pivot is `table PIVOT (aggs FOR cols IN (values) [DEFAULT ON NULL (e)]) [AS alias]`.
type Pivot struct {
	Table              TableFactor
	AggregateFunctions []ExprWithAlias
	ValueColumn        []Expr
	ValueSource        PivotValueSource
	DefaultOnNull      Expr
	Alias              *TableAlias
}

func (*Pivot) tableFactorNode() {}

func (p *Pivot) String() string {
	var b sqlBuilder
	b.kw(p.Table.String(), "PIVOT(")
	inner := commaSep(p.AggregateFunctions) + " FOR "
	if len(p.ValueColumn) == 1 {
		inner += p.ValueColumn[0].String()
	} else {
		inner += "(" + commaSep(p.ValueColumn) + ")"
	}
	inner += " IN (" + p.ValueSource.String() + ")"
	if !isNil(p.DefaultOnNull) {
		inner += " DEFAULT ON NULL (" + p.DefaultOnNull.String() + ")"
	}
	out := b.String() + inner + ")"
	if p.Alias != nil {
		out += " " + aliasString(p.Alias)
	}
	return out
}

// Unpivot is `table UNPIVOT [INCLUDE|EXCLUDE NULLS] (value FOR name IN (cols)) [AS alias]`.
type Unpivot struct {
	Table         TableFactor
	NullInclusion string
	Value         Expr
	Name          Ident
	Columns       []ExprWithAlias
	Alias         *TableAlias
}

func (*Unpivot) tableFactorNode() {}

func (u *Unpivot) String() string {
	var b sqlBuilder
	b.kw(u.Table.String(), "UNPIVOT", u.NullInclusion)
	out := b.String() + "(" + u.Value.String() + " FOR " + u.Name.String() + " IN (" + commaSep(u.Columns) + "))"
	if u.Alias != nil {
		out += " " + aliasString(u.Alias)
	}
	return out
}

// ---------- MATCH_RECOGNIZE ----------

// Measure is `expr AS alias` in MEASURES.
type Measure struct {
	Expr  Expr
	Alias Ident
}

func (m Measure) String() string {
	return m.Expr.String() + " AS " + m.Alias.String()
}

// SymbolDefinition is `symbol AS condition` in DEFINE.
type SymbolDefinition struct {
	Symbol     Ident
	Definition Expr
}

func (d SymbolDefinition) String() string {
	return d.Symbol.String() + " AS " + d.Definition.String()
}

// PatternKind selects a row pattern form.
type PatternKind int

// Row pattern forms.
const (
	PatternSymbol      PatternKind = iota
	PatternStart                   // ^
	PatternEnd                     // $
	PatternExclude                 // {- symbol -}
	PatternPermute                 // PERMUTE(a, b)
	PatternConcat                  // a b c
	PatternGroup                   // ( p )
	PatternAlternation             // a | b
	PatternRepetition              // p*, p+, p?, p{n,m}
)

// MatchRecognizePattern is a row pattern tree.
type MatchRecognizePattern struct {
	Kind       PatternKind
	Symbol     Ident
	Symbols    []Ident
	Patterns   []MatchRecognizePattern
	Quantifier string
}

func (p MatchRecognizePattern) String() string {
	switch p.Kind {
	case PatternStart:
		return "^"
	case PatternEnd:
		return "$"
	case PatternExclude:
		return "{- " + p.Symbol.String() + " -}"
	case PatternPermute:
		return "PERMUTE(" + commaSep(p.Symbols) + ")"
	case PatternConcat:
		return join(p.Patterns, " ")
	case PatternGroup:
		return "(" + p.Patterns[0].String() + ")"
	case PatternAlternation:
		return join(p.Patterns, " | ")
	case PatternRepetition:
		return p.Patterns[0].String() + p.Quantifier
	default:
		return p.Symbol.String()
	}
}

// MatchRecognize is the SQL/RPR row pattern recognition table operator.
type MatchRecognize struct {
	Table          TableFactor
	PartitionBy    []Expr
	OrderBy        []OrderByExpr
	Measures       []Measure
	RowsPerMatch   string
	AfterMatchSkip string
	Pattern        MatchRecognizePattern
	Symbols        []SymbolDefinition
	Alias          *TableAlias
}

func (*MatchRecognize) tableFactorNode() {}

func (m *MatchRecognize) String() string {
	var b sqlBuilder
	if len(m.PartitionBy) > 0 {
		b.kw("PARTITION BY", commaSep(m.PartitionBy))
	}
	if len(m.OrderBy) > 0 {
		b.kw("ORDER BY", commaSep(m.OrderBy))
	}
	if len(m.Measures) > 0 {
		b.kw("MEASURES", commaSep(m.Measures))
	}
	b.kw(m.RowsPerMatch)
	if m.AfterMatchSkip != "" {
		b.kw("AFTER MATCH SKIP", m.AfterMatchSkip)
	}
	b.kw("PATTERN (" + m.Pattern.String() + ")")
	b.kw("DEFINE", commaSep(m.Symbols))
	out := m.Table.String() + " MATCH_RECOGNIZE(" + b.String() + ")"
	if m.Alias != nil {
		out += " " + aliasString(m.Alias)
	}
	return out
}

// ---------- GRAPH_TABLE (SQL/PGQ) ----------

// GraphElementKind distinguishes vertex and edge patterns.
type GraphElementKind int

// Graph pattern element kinds.
const (
	GraphVertex    GraphElementKind = iota
	GraphEdgeRight                  // -[ ]->
	GraphEdgeLeft                   // <-[ ]-
	GraphEdgeAny                    // -[ ]-
)

// GraphElement is one vertex `(v:Label WHERE cond)` or edge `-[e:Label]->`.
// Abbreviated edges (->, <-, -) have Abbrev set and no filler.
type GraphElement struct {
	Kind       GraphElementKind
	Variable   *Ident
	Label      Expr
	Where      Expr
	Abbrev     bool
	Quantifier string
}

func (e GraphElement) String() string {
	var filler sqlBuilder
	v := ""
	if e.Variable != nil {
		v = e.Variable.String()
	}
	if !isNil(e.Label) {
		v += " IS " + e.Label.String()
	}
	filler.kw(strings.TrimSpace(v))
	filler.node("WHERE", e.Where)
	switch e.Kind {
	case GraphVertex:
		return "(" + filler.String() + ")"
	case GraphEdgeRight:
		if e.Abbrev {
			return "->" + e.Quantifier
		}
		return "-[" + filler.String() + "]->" + e.Quantifier
	case GraphEdgeLeft:
		if e.Abbrev {
			return "<-" + e.Quantifier
		}
		return "<-[" + filler.String() + "]-" + e.Quantifier
	default:
		if e.Abbrev {
			return "-" + e.Quantifier
		}
		return "-[" + filler.String() + "]-" + e.Quantifier
	}
}

// GraphLabel is a label expression: a name, %, or a combination with
// |, & and !.
type GraphLabel struct {
	Name *Ident
	Op   string // "|", "&", "!" or "" for a plain name
	Args []Expr
}

func (*GraphLabel) exprNode() {}

func (l *GraphLabel) String() string {
	switch l.Op {
	case "":
		if l.Name == nil {
			return "%"
		}
		return l.Name.String()
	case "!":
		return "!" + l.Args[0].String()
	default:
		return join(l.Args, l.Op)
	}
}

// GraphPathPattern is a sequence of elements, optionally named `p = ...`.
type GraphPathPattern struct {
	Name     *Ident
	Elements []GraphElement
}

func (p GraphPathPattern) String() string {
	body := join(p.Elements, "")
	if p.Name != nil {
		return p.Name.String() + " = " + body
	}
	return body
}

// GraphTable is GRAPH_TABLE(graph MATCH patterns [WHERE cond] COLUMNS (...)).
type GraphTable struct {
	Graph   ObjectName
	Match   []GraphPathPattern
	Where   Expr
	Columns []SelectItem
	Alias   *TableAlias
}

func (*GraphTable) tableFactorNode() {}

func (g *GraphTable) String() string {
	var b sqlBuilder
	b.kw(g.Graph.String(), "MATCH", commaSep(g.Match))
	b.node("WHERE", g.Where)
	b.kw("COLUMNS (" + commaSep(g.Columns) + ")")
	out := "GRAPH_TABLE(" + b.String() + ")"
	if g.Alias != nil {
		out += " " + aliasString(g.Alias)
	}
	return out
}
