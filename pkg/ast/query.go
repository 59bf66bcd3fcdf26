package ast

import (
	"strings"
)

// Query is a complete query expression: optional WITH, a body, and the
// trailing ORDER BY / LIMIT / FETCH / locking / vendor clauses.
type Query struct {
	With         *With
	Body         SetExpr
	OrderBy      *OrderBy
	Limit        *LimitClause
	Fetch        *Fetch
	Locks        []LockClause
	ForClause    *ForClause
	Settings     []Setting
	FormatClause *FormatClause
}

func (*Query) statementNode() {}
func (*Query) setExprNode()   {}

func (q *Query) String() string {
	var b sqlBuilder
	if q.With != nil {
		b.kw(q.With.String())
	}
	b.kw(setExprString(q.Body))
	if q.OrderBy != nil {
		b.kw(q.OrderBy.String())
	}
	if q.Limit != nil {
		b.kw(q.Limit.String())
	}
	if q.Fetch != nil {
		b.kw(q.Fetch.String())
	}
	for _, l := range q.Locks {
		b.kw(l.String())
	}
	if q.ForClause != nil {
		b.kw(q.ForClause.String())
	}
	if len(q.Settings) > 0 {
		b.kw("SETTINGS", commaSep(q.Settings))
	}
	if q.FormatClause != nil {
		b.kw(q.FormatClause.String())
	}
	return b.String()
}

// setExprString renders a set expression operand, parenthesizing nested
// queries.
func setExprString(s SetExpr) string {
	if q, ok := s.(*Query); ok {
		return "(" + q.String() + ")"
	}
	return s.String()
}

// With is the WITH clause.
type With struct {
	WithToken AttachedToken
	Recursive bool
	CTEs      []*CTE
}

func (w *With) String() string {
	return "WITH " + boolStr(w.Recursive, "RECURSIVE ") + commaSep(w.CTEs)
}

// CTE is one common table expression.
type CTE struct {
	Alias        TableAlias
	Query        *Query
	From         *Ident
	Materialized string // MATERIALIZED / NOT MATERIALIZED
	Search       *CTESearch
	Cycle        *CTECycle
	ClosingParen AttachedToken
}

func (c *CTE) String() string {
	var b sqlBuilder
	b.kw(c.Alias.String(), "AS", c.Materialized, "("+c.Query.String()+")")
	if c.Search != nil {
		b.kw(c.Search.String())
	}
	if c.Cycle != nil {
		b.kw(c.Cycle.String())
	}
	if c.From != nil {
		b.kw("FROM", c.From.String())
	}
	return b.String()
}

// CTESearch is SEARCH {DEPTH|BREADTH} FIRST BY cols SET col.
type CTESearch struct {
	Depth   bool
	Columns []Ident
	Set     Ident
}

func (s *CTESearch) String() string {
	order := "BREADTH"
	if s.Depth {
		order = "DEPTH"
	}
	return "SEARCH " + order + " FIRST BY " + commaSep(s.Columns) + " SET " + s.Set.String()
}

// CTECycle is CYCLE cols SET col [TO v DEFAULT d] [USING path].
type CTECycle struct {
	Columns []Ident
	Set     Ident
	To      Expr
	Default Expr
	Using   *Ident
}

func (c *CTECycle) String() string {
	var b sqlBuilder
	b.kw("CYCLE", commaSep(c.Columns), "SET", c.Set.String())
	if !isNil(c.To) {
		b.kw("TO", c.To.String(), "DEFAULT", c.Default.String())
	}
	if c.Using != nil {
		b.kw("USING", c.Using.String())
	}
	return b.String()
}

// SetOperator is UNION, INTERSECT, EXCEPT or MINUS.
type SetOperator string

// Set operators.
const (
	Union     SetOperator = "UNION"
	Intersect SetOperator = "INTERSECT"
	Except    SetOperator = "EXCEPT"
	Minus     SetOperator = "MINUS"
)

// SetQuantifier qualifies a set operation.
type SetQuantifier string

// Set quantifiers. The empty quantifier means none was written.
const (
	QuantifierNone           SetQuantifier = ""
	QuantifierAll            SetQuantifier = "ALL"
	QuantifierDistinct       SetQuantifier = "DISTINCT"
	QuantifierByName         SetQuantifier = "BY NAME"
	QuantifierAllByName      SetQuantifier = "ALL BY NAME"
	QuantifierDistinctByName SetQuantifier = "DISTINCT BY NAME"
)

// SetOperation combines two query bodies.
type SetOperation struct {
	Op         SetOperator
	Quantifier SetQuantifier
	Left       SetExpr
	Right      SetExpr
}

func (*SetOperation) setExprNode() {}

func (s *SetOperation) String() string {
	var b sqlBuilder
	b.kw(setExprString(s.Left), string(s.Op), string(s.Quantifier), setExprString(s.Right))
	return b.String()
}

// Values is a VALUES list. ExplicitRow records MySQL's ROW(...) rows and
// ValueKeyword the VALUE spelling.
type Values struct {
	ExplicitRow  bool
	ValueKeyword bool
	Rows         [][]Expr
}

func (*Values) setExprNode() {}

func (v *Values) String() string {
	kw := "VALUES"
	if v.ValueKeyword {
		kw = "VALUE"
	}
	rows := make([]string, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = boolStr(v.ExplicitRow, "ROW") + "(" + commaSep(r) + ")"
	}
	return kw + " " + strings.Join(rows, ", ")
}

// TableBody is `TABLE name` used as a query body.
type TableBody struct {
	Name ObjectName
}

func (*TableBody) setExprNode() {}

func (t *TableBody) String() string {
	return "TABLE " + t.Name.String()
}

// DistinctKind selects the projection duplicate treatment.
type DistinctKind int

// Duplicate treatments.
const (
	DistinctAll DistinctKind = iota
	DistinctPlain
	DistinctOn
)

// Distinct is ALL, DISTINCT or DISTINCT ON (exprs).
type Distinct struct {
	Kind DistinctKind
	On   []Expr
}

func (d *Distinct) String() string {
	switch d.Kind {
	case DistinctAll:
		return "ALL"
	case DistinctOn:
		return "DISTINCT ON (" + commaSep(d.On) + ")"
	default:
		return "DISTINCT"
	}
}

// Top is MSSQL/Snowflake TOP n [PERCENT] [WITH TIES].
type Top struct {
	Quantity Expr
	Parens   bool
	Percent  bool
	WithTies bool
}

func (t *Top) String() string {
	var b sqlBuilder
	b.kw("TOP")
	if !isNil(t.Quantity) {
		if t.Parens {
			b.kw("(" + t.Quantity.String() + ")")
		} else {
			b.kw(t.Quantity.String())
		}
	}
	b.kwIf(t.Percent, "PERCENT")
	b.kwIf(t.WithTies, "WITH TIES")
	return b.String()
}

// SelectInto is SELECT ... INTO [TEMPORARY|UNLOGGED] [TABLE] name.
type SelectInto struct {
	Temporary bool
	Unlogged  bool
	Table     bool
	Name      ObjectName
}

func (s *SelectInto) String() string {
	var b sqlBuilder
	b.kw("INTO")
	b.kwIf(s.Temporary, "TEMPORARY")
	b.kwIf(s.Unlogged, "UNLOGGED")
	b.kwIf(s.Table, "TABLE")
	b.kw(s.Name.String())
	return b.String()
}

// GroupByExpr is GROUP BY ALL or GROUP BY exprs, each with trailing
// WITH ROLLUP / WITH CUBE / WITH TOTALS modifiers.
type GroupByExpr struct {
	All       bool
	Exprs     []Expr
	Modifiers []string
}

func (g *GroupByExpr) String() string {
	var b sqlBuilder
	b.kw("GROUP BY")
	if g.All {
		b.kw("ALL")
	} else {
		b.kw(commaSep(g.Exprs))
	}
	for _, m := range g.Modifiers {
		b.kw("WITH", m)
	}
	return b.String()
}

// ConnectBy is START WITH ... CONNECT BY [NOCYCLE] ....
type ConnectBy struct {
	StartWith     Expr
	NoCycle       bool
	Relationships []Expr
}

func (c *ConnectBy) String() string {
	var b sqlBuilder
	b.node("START WITH", c.StartWith)
	b.kw("CONNECT BY")
	b.kwIf(c.NoCycle, "NOCYCLE")
	b.kw(commaSep(c.Relationships))
	return b.String()
}

// LateralView is Hive's LATERAL VIEW [OUTER] expr name [AS cols].
type LateralView struct {
	Expr    Expr
	Name    ObjectName
	Columns []Ident
	Outer   bool
}

func (l LateralView) String() string {
	var b sqlBuilder
	b.kw("LATERAL VIEW")
	b.kwIf(l.Outer, "OUTER")
	b.kw(l.Expr.String(), l.Name.String())
	if len(l.Columns) > 0 {
		b.kw("AS", commaSep(l.Columns))
	}
	return b.String()
}

// ValueTableMode is BigQuery's SELECT AS STRUCT / AS VALUE.
type ValueTableMode string

// Select is one SELECT block.
type Select struct {
	SelectToken   AttachedToken
	Distinct      *Distinct
	Top           *Top
	TopBeforeDist bool
	ValueTable    ValueTableMode
	Projection    []SelectItem
	Into          *SelectInto
	From          []TableWithJoins
	FromFirst     bool // DuckDB FROM t SELECT ...
	LateralViews  []LateralView
	Prewhere      Expr
	Selection     Expr
	ConnectBy     *ConnectBy
	GroupBy       *GroupByExpr
	ClusterBy     []Expr
	DistributeBy  []Expr
	SortBy        []OrderByExpr
	Having        Expr
	NamedWindow   []NamedWindowDefinition
	WindowFirst   bool // WINDOW written before QUALIFY
	Qualify       Expr
}

func (*Select) setExprNode() {}

func (s *Select) String() string {
	var b sqlBuilder
	if s.FromFirst && len(s.From) > 0 {
		b.kw("FROM", commaSep(s.From))
		if len(s.Projection) == 0 {
			s.tail(&b)
			return b.String()
		}
	}
	b.kw("SELECT")
	if s.ValueTable != "" {
		b.kw(string(s.ValueTable))
	}
	if s.TopBeforeDist && s.Top != nil {
		b.kw(s.Top.String())
	}
	if s.Distinct != nil {
		b.kw(s.Distinct.String())
	}
	if !s.TopBeforeDist && s.Top != nil {
		b.kw(s.Top.String())
	}
	if len(s.Projection) > 0 {
		b.kw(commaSep(s.Projection))
	}
	if s.Into != nil {
		b.kw(s.Into.String())
	}
	if !s.FromFirst && len(s.From) > 0 {
		b.kw("FROM", commaSep(s.From))
	}
	s.tail(&b)
	return b.String()
}

func (s *Select) tail(b *sqlBuilder) {
	for _, lv := range s.LateralViews {
		b.kw(lv.String())
	}
	b.node("PREWHERE", s.Prewhere)
	b.node("WHERE", s.Selection)
	if s.ConnectBy != nil {
		b.kw(s.ConnectBy.String())
	}
	if s.GroupBy != nil {
		b.kw(s.GroupBy.String())
	}
	if len(s.ClusterBy) > 0 {
		b.kw("CLUSTER BY", commaSep(s.ClusterBy))
	}
	if len(s.DistributeBy) > 0 {
		b.kw("DISTRIBUTE BY", commaSep(s.DistributeBy))
	}
	if len(s.SortBy) > 0 {
		b.kw("SORT BY", commaSep(s.SortBy))
	}
	b.node("HAVING", s.Having)
	if s.WindowFirst && len(s.NamedWindow) > 0 {
		b.kw("WINDOW", commaSep(s.NamedWindow))
	}
	b.node("QUALIFY", s.Qualify)
	if !s.WindowFirst && len(s.NamedWindow) > 0 {
		b.kw("WINDOW", commaSep(s.NamedWindow))
	}
}

// ---------- projection ----------

// UnnamedExpr is a projection item without alias.
type UnnamedExpr struct {
	Expr Expr
}

func (*UnnamedExpr) selectItemNode() {}

func (u *UnnamedExpr) String() string { return u.Expr.String() }

// AliasedExpr is `expr [AS] alias` in a projection.
type AliasedExpr struct {
	Expr  Expr
	Alias Ident
}

func (*AliasedExpr) selectItemNode() {}

func (a *AliasedExpr) String() string {
	return a.Expr.String() + " AS " + a.Alias.String()
}

// SelectWildcard is * or qualifier.* in a projection, with modifiers.
// Qualifier is nil for a bare *; QualifierExpr holds an expression
// qualifier such as (x).*.
type SelectWildcard struct {
	Token         AttachedToken
	Qualifier     ObjectName
	QualifierExpr Expr
	Options       WildcardOptions
}

func (*SelectWildcard) selectItemNode() {}

func (w *SelectWildcard) String() string {
	var b sqlBuilder
	switch {
	case !isNil(w.QualifierExpr):
		b.kw(w.QualifierExpr.String() + ".*")
	case len(w.Qualifier) > 0:
		b.kw(w.Qualifier.String() + ".*")
	default:
		b.kw("*")
	}
	b.kw(w.Options.String())
	return b.String()
}

// ReplaceElement is one `expr AS col` of a REPLACE wildcard option.
type ReplaceElement struct {
	Expr   Expr
	Column Ident
	AsKw   bool
}

func (r ReplaceElement) String() string {
	if r.AsKw {
		return r.Expr.String() + " AS " + r.Column.String()
	}
	return r.Expr.String() + " " + r.Column.String()
}

// IdentWithAlias is `ident AS alias`.
type IdentWithAlias struct {
	Ident Ident
	Alias Ident
}

func (i IdentWithAlias) String() string {
	return i.Ident.String() + " AS " + i.Alias.String()
}

// WildcardOptions holds the ILIKE, EXCLUDE, EXCEPT, REPLACE and RENAME
// modifiers of a wildcard.
type WildcardOptions struct {
	ILike   *Value
	Exclude *OneOrManyWithParens[Ident]
	Except  []Ident
	Replace []ReplaceElement
	Rename  *OneOrManyWithParens[IdentWithAlias]
}

func (o WildcardOptions) String() string {
	var b sqlBuilder
	if o.ILike != nil {
		b.kw("ILIKE", o.ILike.String())
	}
	if o.Exclude != nil {
		b.kw("EXCLUDE", o.Exclude.String())
	}
	if len(o.Except) > 0 {
		b.kw("EXCEPT", "("+commaSep(o.Except)+")")
	}
	if len(o.Replace) > 0 {
		b.kw("REPLACE", "("+commaSep(o.Replace)+")")
	}
	if o.Rename != nil {
		b.kw("RENAME", o.Rename.String())
	}
	return b.String()
}

// ---------- ORDER BY, LIMIT, FETCH ----------

// OrderBy is ORDER BY exprs, or ORDER BY ALL, with an optional ClickHouse
// INTERPOLATE clause.
type OrderBy struct {
	All         bool
	AllOptions  OrderByOptions
	Exprs       []OrderByExpr
	Interpolate *Interpolate
}

func (o *OrderBy) String() string {
	var b sqlBuilder
	b.kw("ORDER BY")
	if o.All {
		b.kw("ALL", o.AllOptions.String())
	} else {
		b.kw(commaSep(o.Exprs))
	}
	if o.Interpolate != nil {
		b.kw(o.Interpolate.String())
	}
	return b.String()
}

// OrderByOptions holds ASC/DESC and NULLS FIRST/LAST.
type OrderByOptions struct {
	Asc        *bool
	NullsFirst *bool
}

func (o OrderByOptions) String() string {
	var b sqlBuilder
	if o.Asc != nil {
		if *o.Asc {
			b.kw("ASC")
		} else {
			b.kw("DESC")
		}
	}
	if o.NullsFirst != nil {
		if *o.NullsFirst {
			b.kw("NULLS FIRST")
		} else {
			b.kw("NULLS LAST")
		}
	}
	return b.String()
}

// OrderByExpr is one ORDER BY item.
type OrderByExpr struct {
	Expr     Expr
	Options  OrderByOptions
	WithFill *WithFill
}

func (o OrderByExpr) String() string {
	var b sqlBuilder
	b.kw(o.Expr.String(), o.Options.String())
	if o.WithFill != nil {
		b.kw(o.WithFill.String())
	}
	return b.String()
}

// WithFill is ClickHouse's WITH FILL [FROM a] [TO b] [STEP c].
type WithFill struct {
	From Expr
	To   Expr
	Step Expr
}

func (w *WithFill) String() string {
	var b sqlBuilder
	b.kw("WITH FILL")
	b.node("FROM", w.From)
	b.node("TO", w.To)
	b.node("STEP", w.Step)
	return b.String()
}

// InterpolateExpr is one column of an INTERPOLATE clause.
type InterpolateExpr struct {
	Column Ident
	Expr   Expr
}

func (i InterpolateExpr) String() string {
	if isNil(i.Expr) {
		return i.Column.String()
	}
	return i.Column.String() + " AS " + i.Expr.String()
}

// Interpolate is ClickHouse's INTERPOLATE [(col [AS expr], ...)].
type Interpolate struct {
	Exprs []InterpolateExpr
	Bare  bool
}

func (i *Interpolate) String() string {
	if i.Bare {
		return "INTERPOLATE"
	}
	return "INTERPOLATE (" + commaSep(i.Exprs) + ")"
}

// LimitClause unifies LIMIT n [OFFSET m], LIMIT m, n, OFFSET m alone and
// ClickHouse LIMIT n BY exprs.
type LimitClause struct {
	Limit       Expr
	Offset      *Offset
	OffsetComma bool // LIMIT offset, limit
	LimitBy     []Expr
	LimitAll    bool
}

func (l *LimitClause) String() string {
	var b sqlBuilder
	if l.OffsetComma {
		b.kw("LIMIT", l.Offset.Value.String()+", "+l.Limit.String())
	} else {
		switch {
		case l.LimitAll:
			b.kw("LIMIT ALL")
		case !isNil(l.Limit):
			b.kw("LIMIT", l.Limit.String())
		}
		if len(l.LimitBy) > 0 {
			b.kw("BY", commaSep(l.LimitBy))
		}
		if l.Offset != nil {
			b.kw(l.Offset.String())
		}
	}
	return b.String()
}

// Offset is OFFSET n [ROW|ROWS].
type Offset struct {
	Value Expr
	Rows  string
}

func (o *Offset) String() string {
	var b sqlBuilder
	b.kw("OFFSET", o.Value.String(), o.Rows)
	return b.String()
}

// Fetch is FETCH {FIRST|NEXT} [n [PERCENT]] {ROW|ROWS} {ONLY|WITH TIES}.
type Fetch struct {
	Quantity Expr
	Percent  bool
	WithTies bool
}

func (f *Fetch) String() string {
	var b sqlBuilder
	b.kw("FETCH FIRST")
	if !isNil(f.Quantity) {
		b.kw(f.Quantity.String())
		b.kwIf(f.Percent, "PERCENT")
	}
	b.kw("ROWS")
	if f.WithTies {
		b.kw("WITH TIES")
	} else {
		b.kw("ONLY")
	}
	return b.String()
}

// LockClause is FOR UPDATE|SHARE|NO KEY UPDATE|KEY SHARE [OF t] [NOWAIT|SKIP LOCKED].
type LockClause struct {
	Strength string
	Of       []ObjectName
	Wait     string
}

func (l LockClause) String() string {
	var b sqlBuilder
	b.kw("FOR", l.Strength)
	if len(l.Of) > 0 {
		b.kw("OF", commaSep(l.Of))
	}
	b.kw(l.Wait)
	return b.String()
}

// ForClause is MSSQL's FOR BROWSE / FOR JSON / FOR XML.
type ForClause struct {
	Kind    string // BROWSE, JSON, XML
	Mode    string // AUTO, PATH, RAW, EXPLICIT
	ModeArg *Value // PATH('x') / RAW('x')
	Options []string
	Root    *Value
}

func (f *ForClause) String() string {
	var b sqlBuilder
	b.kw("FOR", f.Kind)
	if f.Mode != "" {
		m := f.Mode
		if f.ModeArg != nil {
			m += "(" + f.ModeArg.String() + ")"
		}
		b.kw(m)
	}
	for _, o := range f.Options {
		b.WriteString(",")
		b.kw(o)
	}
	if f.Root != nil {
		b.WriteString(",")
		b.kw("ROOT(" + f.Root.String() + ")")
	}
	return b.String()
}

// Setting is a ClickHouse `name = value` setting.
type Setting struct {
	Key   Ident
	Value Expr
}

func (s Setting) String() string {
	return s.Key.String() + " = " + s.Value.String()
}

// FormatClause is ClickHouse FORMAT name / FORMAT NULL.
type FormatClause struct {
	Name *Ident
}

func (f *FormatClause) String() string {
	if f.Name == nil {
		return "FORMAT NULL"
	}
	return "FORMAT " + f.Name.String()
}
