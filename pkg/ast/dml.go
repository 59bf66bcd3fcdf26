package ast

// AssignmentTarget is the left side of SET col = value: a column name, or
// a parenthesized tuple of columns.
type AssignmentTarget struct {
	Column ObjectName
	Tuple  []ObjectName
}

func (t AssignmentTarget) String() string {
	if len(t.Tuple) > 0 {
		return "(" + commaSep(t.Tuple) + ")"
	}
	return t.Column.String()
}

// Assignment is target = value.
type Assignment struct {
	Target AssignmentTarget
	Value  Expr
}

func (a Assignment) String() string {
	return a.Target.String() + " = " + a.Value.String()
}

// ConflictTarget is ON CONFLICT (cols) or ON CONFLICT ON CONSTRAINT name.
type ConflictTarget struct {
	Columns      []Ident
	OnConstraint ObjectName
}

func (t *ConflictTarget) String() string {
	if t == nil {
		return ""
	}
	if len(t.OnConstraint) > 0 {
		return "ON CONSTRAINT " + t.OnConstraint.String()
	}
	return "(" + commaSep(t.Columns) + ")"
}

// OnConflict is PostgreSQL / SQLite ON CONFLICT [target] DO NOTHING | DO
// UPDATE SET ... [WHERE ...].
type OnConflict struct {
	Target      *ConflictTarget
	DoNothing   bool
	Assignments []Assignment
	Selection   Expr
}

func (o *OnConflict) String() string {
	var b sqlBuilder
	b.kw("ON CONFLICT", o.Target.String())
	if o.DoNothing {
		b.kw("DO NOTHING")
		return b.String()
	}
	b.kw("DO UPDATE SET", commaSep(o.Assignments))
	b.node("WHERE", o.Selection)
	return b.String()
}

// InsertAlias is MySQL's INSERT ... AS row_alias [(col_aliases)].
type InsertAlias struct {
	Row     ObjectName
	Columns []Ident
}

func (a *InsertAlias) String() string {
	s := "AS " + a.Row.String()
	if len(a.Columns) > 0 {
		s += " (" + commaSep(a.Columns) + ")"
	}
	return s
}

// Insert is INSERT / REPLACE in all dialect variants. Exactly one source is
// set: Source, Assignments (MySQL SET) or DefaultValues.
type Insert struct {
	InsertToken    AttachedToken
	Replace        bool   // MySQL REPLACE INTO
	Or             string // SQLite OR REPLACE / OR IGNORE / ...
	Priority       string // LOW_PRIORITY / DELAYED / HIGH_PRIORITY
	Ignore         bool
	Overwrite      bool // Hive INSERT OVERWRITE
	Into           bool
	TableKeyword   bool
	TableFunction  *Function // ClickHouse INSERT INTO FUNCTION f(...)
	Table          ObjectName
	TableAlias     *Ident
	Columns        []Ident
	Partitioned    []Expr
	AfterColumns   []Ident
	Source         *Query
	Assignments    []Assignment
	DefaultValues  bool
	Alias          *InsertAlias
	OnDuplicateKey []Assignment
	OnConflict     *OnConflict
	Returning      []SelectItem
	Settings       []Setting
	Format         *InputFormat
}

func (*Insert) statementNode() {}
func (*Insert) setExprNode()   {}

// InputFormat is ClickHouse's trailing FORMAT name on INSERT; the data
// after it is not part of the statement.
type InputFormat struct {
	Name Ident
}

func (i *Insert) String() string {
	var b sqlBuilder
	if i.Replace {
		b.kw("REPLACE")
	} else {
		b.kw("INSERT")
	}
	b.kwIf(i.Or != "", "OR", i.Or)
	b.kw(i.Priority)
	b.kwIf(i.Ignore, "IGNORE")
	b.kwIf(i.Overwrite, "OVERWRITE")
	b.kwIf(i.Into, "INTO")
	b.kwIf(i.TableKeyword, "TABLE")
	if i.TableFunction != nil {
		b.kw("FUNCTION", i.TableFunction.String())
	} else {
		b.kw(i.Table.String())
	}
	if i.TableAlias != nil {
		b.kw("AS", i.TableAlias.String())
	}
	if len(i.Columns) > 0 {
		b.kw("(" + commaSep(i.Columns) + ")")
	}
	if len(i.Partitioned) > 0 {
		b.kw("PARTITION (" + commaSep(i.Partitioned) + ")")
	}
	if len(i.AfterColumns) > 0 {
		b.kw("(" + commaSep(i.AfterColumns) + ")")
	}
	if len(i.Settings) > 0 {
		b.kw("SETTINGS", commaSep(i.Settings))
	}
	switch {
	case i.Source != nil:
		b.kw(i.Source.String())
	case len(i.Assignments) > 0:
		b.kw("SET", commaSep(i.Assignments))
	case i.DefaultValues:
		b.kw("DEFAULT VALUES")
	}
	if i.Format != nil {
		b.kw("FORMAT", i.Format.Name.String())
	}
	if i.Alias != nil {
		b.kw(i.Alias.String())
	}
	if len(i.OnDuplicateKey) > 0 {
		b.kw("ON DUPLICATE KEY UPDATE", commaSep(i.OnDuplicateKey))
	}
	if i.OnConflict != nil {
		b.kw(i.OnConflict.String())
	}
	if len(i.Returning) > 0 {
		b.kw("RETURNING", commaSep(i.Returning))
	}
	return b.String()
}

// Update is UPDATE table SET ... [FROM ...] [WHERE ...] [RETURNING ...].
// FromBeforeSet records Snowflake's UPDATE t FROM s SET ...
type Update struct {
	UpdateToken   AttachedToken
	Or            string
	Table         TableWithJoins
	Assignments   []Assignment
	From          []TableWithJoins
	FromBeforeSet bool
	Selection     Expr
	Returning     []SelectItem
	OrderBy       []OrderByExpr
	Limit         Expr
}

func (*Update) statementNode() {}
func (*Update) setExprNode()   {}

func (u *Update) String() string {
	var b sqlBuilder
	b.kw("UPDATE")
	b.kwIf(u.Or != "", "OR", u.Or)
	b.kw(u.Table.String())
	if u.FromBeforeSet && len(u.From) > 0 {
		b.kw("FROM", commaSep(u.From))
	}
	b.kw("SET", commaSep(u.Assignments))
	if !u.FromBeforeSet && len(u.From) > 0 {
		b.kw("FROM", commaSep(u.From))
	}
	b.node("WHERE", u.Selection)
	if len(u.Returning) > 0 {
		b.kw("RETURNING", commaSep(u.Returning))
	}
	if len(u.OrderBy) > 0 {
		b.kw("ORDER BY", commaSep(u.OrderBy))
	}
	b.node("LIMIT", u.Limit)
	return b.String()
}

// Delete is DELETE [tables] [FROM] from [USING ...] [WHERE ...].
type Delete struct {
	DeleteToken AttachedToken
	Tables      []ObjectName // MySQL multi-table DELETE t1, t2 FROM ...
	FromKeyword bool
	From        []TableWithJoins
	Using       []TableWithJoins
	Selection   Expr
	Returning   []SelectItem
	OrderBy     []OrderByExpr
	Limit       Expr
}

func (*Delete) statementNode() {}
func (*Delete) setExprNode()   {}

func (d *Delete) String() string {
	var b sqlBuilder
	b.kw("DELETE")
	if len(d.Tables) > 0 {
		b.kw(commaSep(d.Tables))
	}
	b.kwIf(d.FromKeyword, "FROM")
	b.kw(commaSep(d.From))
	if len(d.Using) > 0 {
		b.kw("USING", commaSep(d.Using))
	}
	b.node("WHERE", d.Selection)
	if len(d.Returning) > 0 {
		b.kw("RETURNING", commaSep(d.Returning))
	}
	if len(d.OrderBy) > 0 {
		b.kw("ORDER BY", commaSep(d.OrderBy))
	}
	b.node("LIMIT", d.Limit)
	return b.String()
}

// MergeClauseKind is the WHEN condition of a MERGE clause.
type MergeClauseKind string

// MERGE clause kinds.
const (
	Matched              MergeClauseKind = "MATCHED"
	NotMatched           MergeClauseKind = "NOT MATCHED"
	NotMatchedByTarget   MergeClauseKind = "NOT MATCHED BY TARGET"
	NotMatchedBySource   MergeClauseKind = "NOT MATCHED BY SOURCE"
)

// MergeAction is the THEN part of a MERGE clause.
type MergeAction interface {
	Node
	mergeActionNode()
}

// MergeUpdate is UPDATE SET ...
type MergeUpdate struct {
	Assignments []Assignment
}

func (*MergeUpdate) mergeActionNode() {}

func (m *MergeUpdate) String() string { return "UPDATE SET " + commaSep(m.Assignments) }

// MergeDelete is DELETE.
type MergeDelete struct{}

func (*MergeDelete) mergeActionNode() {}

func (*MergeDelete) String() string { return "DELETE" }

// MergeInsert is INSERT [(cols)] {VALUES (...) | ROW}.
type MergeInsert struct {
	Columns []Ident
	Row     bool
	Values  *Values
}

func (*MergeInsert) mergeActionNode() {}

func (m *MergeInsert) String() string {
	var b sqlBuilder
	b.kw("INSERT")
	if len(m.Columns) > 0 {
		b.kw("(" + commaSep(m.Columns) + ")")
	}
	if m.Row {
		b.kw("ROW")
	} else {
		b.kw(m.Values.String())
	}
	return b.String()
}

// MergeClause is WHEN [NOT] MATCHED [BY ...] [AND pred] THEN action.
type MergeClause struct {
	Kind      MergeClauseKind
	Predicate Expr
	Action    MergeAction
}

func (c MergeClause) String() string {
	var b sqlBuilder
	b.kw("WHEN", string(c.Kind))
	b.node("AND", c.Predicate)
	b.kw("THEN", c.Action.String())
	return b.String()
}

// Merge is MERGE [INTO] target USING source ON cond clauses.
type Merge struct {
	MergeToken AttachedToken
	Into       bool
	Table      TableFactor
	Source     TableFactor
	On         Expr
	Clauses    []MergeClause
	Output     []SelectItem
	OutputInto *ObjectName
}

func (*Merge) statementNode() {}
func (*Merge) setExprNode()   {}

func (m *Merge) String() string {
	var b sqlBuilder
	b.kw("MERGE")
	b.kwIf(m.Into, "INTO")
	b.kw(m.Table.String(), "USING", m.Source.String(), "ON", m.On.String())
	for _, c := range m.Clauses {
		b.kw(c.String())
	}
	if len(m.Output) > 0 {
		b.kw("OUTPUT", commaSep(m.Output))
		if m.OutputInto != nil {
			b.kw("INTO", m.OutputInto.String())
		}
	}
	return b.String()
}
