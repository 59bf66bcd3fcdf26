package ast

import "strings"

// FunctionArgumentsKind distinguishes f, f() / f(args) and f(SELECT ...).
type FunctionArgumentsKind int

// Argument list shapes.
const (
	ArgsNone     FunctionArgumentsKind = iota // no parentheses: CURRENT_TIMESTAMP
	ArgsList                                  // f(...), possibly empty
	ArgsSubquery                              // f(SELECT ...)
)

// FunctionArguments is the parenthesized part of a call.
type FunctionArguments struct {
	Kind      FunctionArgumentsKind
	Duplicate string // DISTINCT / ALL
	Args      []FunctionArg
	Clauses   []FunctionArgumentClause
	Subquery  *Query
}

func (a FunctionArguments) String() string {
	switch a.Kind {
	case ArgsNone:
		return ""
	case ArgsSubquery:
		return "(" + a.Subquery.String() + ")"
	}
	var b sqlBuilder
	b.kw(a.Duplicate)
	if len(a.Args) > 0 {
		b.kw(commaSep(a.Args))
	}
	for _, c := range a.Clauses {
		b.kw(c.String())
	}
	return "(" + b.String() + ")"
}

// ArgOperator is the token separating a named argument from its value.
type ArgOperator string

// Named argument operators.
const (
	ArgRightArrow ArgOperator = "=>"
	ArgEquals     ArgOperator = "="
	ArgAssignment ArgOperator = ":="
	ArgColon      ArgOperator = ":"
	ArgValue      ArgOperator = "VALUE"
)

// FunctionArg is one argument. Name is nil for positional arguments; for
// named ones it is an Ident, or any expression when the dialect allows it.
type FunctionArg struct {
	Name     Expr
	Operator ArgOperator
	Value    Expr
}

func (a FunctionArg) String() string {
	if isNil(a.Name) {
		return a.Value.String()
	}
	if a.Operator == ArgColon {
		return a.Name.String() + ": " + a.Value.String()
	}
	return a.Name.String() + " " + string(a.Operator) + " " + a.Value.String()
}

// FunctionArgumentClause is a trailing clause inside the argument list.
type FunctionArgumentClause struct {
	OrderBy       []OrderByExpr
	Limit         Expr
	NullTreatment string // IGNORE NULLS / RESPECT NULLS
	Separator     *Value // MySQL GROUP_CONCAT SEPARATOR
	OnOverflow    string // ON OVERFLOW ERROR / TRUNCATE ...
	Having        *HavingBound
	JSONNull      string // ABSENT ON NULL / NULL ON NULL
}

func (c FunctionArgumentClause) String() string {
	switch {
	case len(c.OrderBy) > 0:
		return "ORDER BY " + commaSep(c.OrderBy)
	case !isNil(c.Limit):
		return "LIMIT " + c.Limit.String()
	case c.NullTreatment != "":
		return c.NullTreatment
	case c.Separator != nil:
		return "SEPARATOR " + c.Separator.String()
	case c.OnOverflow != "":
		return "ON OVERFLOW " + c.OnOverflow
	case c.Having != nil:
		return c.Having.String()
	default:
		return c.JSONNull
	}
}

// HavingBound is BigQuery's HAVING MAX|MIN expr inside an aggregate.
type HavingBound struct {
	Max  bool
	Expr Expr
}

func (h HavingBound) String() string {
	if h.Max {
		return "HAVING MAX " + h.Expr.String()
	}
	return "HAVING MIN " + h.Expr.String()
}

// Function is a function call with its optional aggregate and window
// decorations.
type Function struct {
	Name           ObjectName
	UsesOdbcSyntax bool              // {fn name(...)}
	Parameters     FunctionArguments // ClickHouse parametric aggregates: f(params)(args)
	Args           FunctionArguments
	Filter         Expr
	NullTreatment  string // IGNORE NULLS / RESPECT NULLS after the call
	Over           *WindowType
	WithinGroup    []OrderByExpr
}

func (*Function) exprNode() {}

func (f *Function) String() string {
	var b strings.Builder
	if f.UsesOdbcSyntax {
		b.WriteString("{fn ")
	}
	b.WriteString(f.Name.String())
	b.WriteString(f.Parameters.String())
	b.WriteString(f.Args.String())
	if len(f.WithinGroup) > 0 {
		b.WriteString(" WITHIN GROUP (ORDER BY " + commaSep(f.WithinGroup) + ")")
	}
	if !isNil(f.Filter) {
		b.WriteString(" FILTER (WHERE " + f.Filter.String() + ")")
	}
	if f.NullTreatment != "" {
		b.WriteString(" " + f.NullTreatment)
	}
	if f.Over != nil {
		b.WriteString(" OVER " + f.Over.String())
	}
	if f.UsesOdbcSyntax {
		b.WriteString("}")
	}
	return b.String()
}

// WindowType is the target of OVER: a named window or an inline spec.
type WindowType struct {
	Name *Ident
	Spec *WindowSpec
}

func (w WindowType) String() string {
	if w.Name != nil {
		return w.Name.String()
	}
	return "(" + w.Spec.String() + ")"
}

// WindowSpec is the body of a window definition.
type WindowSpec struct {
	WindowName  *Ident
	PartitionBy []Expr
	OrderBy     []OrderByExpr
	Frame       *WindowFrame
}

func (w *WindowSpec) String() string {
	var b sqlBuilder
	if w.WindowName != nil {
		b.kw(w.WindowName.String())
	}
	if len(w.PartitionBy) > 0 {
		b.kw("PARTITION BY", commaSep(w.PartitionBy))
	}
	if len(w.OrderBy) > 0 {
		b.kw("ORDER BY", commaSep(w.OrderBy))
	}
	if w.Frame != nil {
		b.kw(w.Frame.String())
	}
	return b.String()
}

// WindowFrame is ROWS|RANGE|GROUPS frame bounds with an optional EXCLUDE.
type WindowFrame struct {
	Units   string // ROWS, RANGE, GROUPS
	Start   WindowFrameBound
	End     *WindowFrameBound
	Exclude string // CURRENT ROW, GROUP, TIES, NO OTHERS
}

func (f *WindowFrame) String() string {
	var b sqlBuilder
	b.kw(f.Units)
	if f.End != nil {
		b.kw("BETWEEN", f.Start.String(), "AND", f.End.String())
	} else {
		b.kw(f.Start.String())
	}
	if f.Exclude != "" {
		b.kw("EXCLUDE", f.Exclude)
	}
	return b.String()
}

// FrameBoundKind selects a frame bound.
type FrameBoundKind int

// Frame bounds.
const (
	CurrentRow FrameBoundKind = iota
	Preceding
	Following
)

// WindowFrameBound is CURRENT ROW, or n / UNBOUNDED PRECEDING|FOLLOWING.
// A nil Value means UNBOUNDED.
type WindowFrameBound struct {
	Kind  FrameBoundKind
	Value Expr
}

func (b WindowFrameBound) String() string {
	if b.Kind == CurrentRow {
		return "CURRENT ROW"
	}
	v := "UNBOUNDED"
	if !isNil(b.Value) {
		v = b.Value.String()
	}
	if b.Kind == Preceding {
		return v + " PRECEDING"
	}
	return v + " FOLLOWING"
}

// NamedWindowDefinition is one entry of a WINDOW clause.
type NamedWindowDefinition struct {
	Name Ident
	// Exactly one of Ref and Spec is set.
	Ref  *Ident
	Spec *WindowSpec
}

func (d NamedWindowDefinition) String() string {
	if d.Ref != nil {
		return d.Name.String() + " AS " + d.Ref.String()
	}
	return d.Name.String() + " AS (" + d.Spec.String() + ")"
}
