package ast

import "strings"

// AlterTableOperation is one comma-separated action of ALTER TABLE.
type AlterTableOperation interface {
	Node
	alterTableOperationNode()
}

// AddColumn is ADD [COLUMN] [IF NOT EXISTS] def [FIRST | AFTER col].
type AddColumn struct {
	ColumnKeyword bool
	IfNotExists   bool
	Column        ColumnDef
	Position      string
}

func (*AddColumn) alterTableOperationNode() {}

func (o *AddColumn) String() string {
	var b sqlBuilder
	b.kw("ADD")
	b.kwIf(o.ColumnKeyword, "COLUMN")
	b.kwIf(o.IfNotExists, "IF NOT EXISTS")
	b.kw(o.Column.String(), o.Position)
	return b.String()
}

// DropColumn is DROP [COLUMN] [IF EXISTS] names [CASCADE|RESTRICT].
type DropColumn struct {
	ColumnKeyword bool
	IfExists      bool
	Names         []Ident
	Behavior      DropBehavior
}

func (*DropColumn) alterTableOperationNode() {}

func (o *DropColumn) String() string {
	var b sqlBuilder
	b.kw("DROP")
	b.kwIf(o.ColumnKeyword, "COLUMN")
	b.kwIf(o.IfExists, "IF EXISTS")
	b.kw(commaSep(o.Names), string(o.Behavior))
	return b.String()
}

// RenameColumn is RENAME [COLUMN] old TO new.
type RenameColumn struct {
	Old Ident
	New Ident
}

func (*RenameColumn) alterTableOperationNode() {}

func (o *RenameColumn) String() string {
	return "RENAME COLUMN " + o.Old.String() + " TO " + o.New.String()
}

// RenameTable is RENAME [TO|AS] name.
type RenameTable struct {
	Keyword string // TO / AS
	Name    ObjectName
}

func (*RenameTable) alterTableOperationNode() {}

func (o *RenameTable) String() string {
	var b sqlBuilder
	b.kw("RENAME", o.Keyword, o.Name.String())
	return b.String()
}

// ChangeColumn is MySQL's CHANGE [COLUMN] old new type [opts] [position].
type ChangeColumn struct {
	Old      Ident
	Column   ColumnDef
	Position string
}

func (*ChangeColumn) alterTableOperationNode() {}

func (o *ChangeColumn) String() string {
	var b sqlBuilder
	b.kw("CHANGE COLUMN", o.Old.String(), o.Column.String(), o.Position)
	return b.String()
}

// ModifyColumn is MySQL's MODIFY [COLUMN] def [position].
type ModifyColumn struct {
	Column   ColumnDef
	Position string
}

func (*ModifyColumn) alterTableOperationNode() {}

func (o *ModifyColumn) String() string {
	var b sqlBuilder
	b.kw("MODIFY COLUMN", o.Column.String(), o.Position)
	return b.String()
}

// AddConstraint is ADD constraint [NOT VALID].
type AddConstraint struct {
	Constraint TableConstraint
	NotValid   bool
}

func (*AddConstraint) alterTableOperationNode() {}

func (o *AddConstraint) String() string {
	var b sqlBuilder
	b.kw("ADD", o.Constraint.String())
	b.kwIf(o.NotValid, "NOT VALID")
	return b.String()
}

// DropConstraint is DROP CONSTRAINT [IF EXISTS] name [behavior], or MySQL's
// DROP PRIMARY KEY / DROP {INDEX|KEY|FOREIGN KEY} name selected by Kind.
type DropConstraint struct {
	Kind     string // CONSTRAINT, PRIMARY KEY, INDEX, KEY, FOREIGN KEY
	IfExists bool
	Name     *Ident
	Behavior DropBehavior
}

func (*DropConstraint) alterTableOperationNode() {}

func (o *DropConstraint) String() string {
	var b sqlBuilder
	b.kw("DROP", o.Kind)
	b.kwIf(o.IfExists, "IF EXISTS")
	if o.Name != nil {
		b.kw(o.Name.String())
	}
	b.kw(string(o.Behavior))
	return b.String()
}

// ValidateConstraint is VALIDATE CONSTRAINT name.
type ValidateConstraint struct {
	Name Ident
}

func (*ValidateConstraint) alterTableOperationNode() {}

func (o *ValidateConstraint) String() string { return "VALIDATE CONSTRAINT " + o.Name.String() }

// RenameConstraint is RENAME CONSTRAINT old TO new.
type RenameConstraint struct {
	Old Ident
	New Ident
}

func (*RenameConstraint) alterTableOperationNode() {}

func (o *RenameConstraint) String() string {
	return "RENAME CONSTRAINT " + o.Old.String() + " TO " + o.New.String()
}

// AlterColumnKind selects the ALTER COLUMN action.
type AlterColumnKind int

// ALTER COLUMN actions.
const (
	SetNotNull AlterColumnKind = iota
	DropNotNull
	SetDefault
	DropDefault
	SetDataType
	AddGenerated
)

// AlterColumn is ALTER [COLUMN] name action.
type AlterColumn struct {
	Name      Ident
	Kind      AlterColumnKind
	Default   Expr
	DataType  DataType
	SetData   bool // SET DATA TYPE rather than TYPE
	Using     Expr
	Generated *GeneratedOption
}

func (*AlterColumn) alterTableOperationNode() {}

func (o *AlterColumn) String() string {
	var b sqlBuilder
	b.kw("ALTER COLUMN", o.Name.String())
	switch o.Kind {
	case SetNotNull:
		b.kw("SET NOT NULL")
	case DropNotNull:
		b.kw("DROP NOT NULL")
	case SetDefault:
		b.kw("SET DEFAULT", o.Default.String())
	case DropDefault:
		b.kw("DROP DEFAULT")
	case SetDataType:
		if o.SetData {
			b.kw("SET DATA TYPE")
		} else {
			b.kw("TYPE")
		}
		b.kw(o.DataType.String())
		b.node("USING", o.Using)
	case AddGenerated:
		b.kw("ADD", o.Generated.String())
	}
	return b.String()
}

// SetTableOptions is SET (opts), SET TBLPROPERTIES (opts) or SET OPTIONS
// (opts); Reset renders RESET (keys).
type SetTableOptions struct {
	Reset   bool
	Options TableOptions
}

func (*SetTableOptions) alterTableOperationNode() {}

func (o *SetTableOptions) String() string {
	if o.Reset {
		return "RESET (" + commaSep(o.Options.Options) + ")"
	}
	if o.Options.Kind == OptionsPlain {
		return "SET (" + commaSep(o.Options.Options) + ")"
	}
	return "SET " + o.Options.String()
}

// PartitionOperation covers partition actions: ADD / DROP PARTITION for
// Hive and ClickHouse's ATTACH / DETACH / FREEZE / UNFREEZE.
type PartitionOperation struct {
	Action      string
	IfExists    bool
	IfNotExists bool
	Partitions  []Expr // PARTITION (k = v, ...)
	Partition   Expr   // ClickHouse PARTITION expr
	Part        bool   // ClickHouse PART rather than PARTITION
	WithName    *Ident
}

func (*PartitionOperation) alterTableOperationNode() {}

func (o *PartitionOperation) String() string {
	var b sqlBuilder
	b.kw(o.Action)
	b.kwIf(o.IfExists, "IF EXISTS")
	b.kwIf(o.IfNotExists, "IF NOT EXISTS")
	if len(o.Partitions) > 0 {
		b.kw("PARTITION (" + commaSep(o.Partitions) + ")")
	}
	if !isNil(o.Partition) {
		if o.Part {
			b.kw("PART", o.Partition.String())
		} else {
			b.kw("PARTITION", o.Partition.String())
		}
	}
	if o.WithName != nil {
		b.kw("WITH NAME", o.WithName.String())
	}
	return b.String()
}

// EnableDisable is PostgreSQL's {ENABLE [ALWAYS|REPLICA]|DISABLE}
// {TRIGGER|RULE|ROW LEVEL SECURITY} [name].
type EnableDisable struct {
	Action string
	Object string
	Name   *Ident
}

func (*EnableDisable) alterTableOperationNode() {}

func (o *EnableDisable) String() string {
	var b sqlBuilder
	b.kw(o.Action, o.Object)
	if o.Name != nil {
		b.kw(o.Name.String())
	}
	return b.String()
}

// ProjectionOperation is ClickHouse's ADD / DROP / MATERIALIZE / CLEAR
// PROJECTION.
type ProjectionOperation struct {
	Action      string
	IfExists    bool
	IfNotExists bool
	Name        Ident
	Select      *Select
	OrderBy     []OrderByExpr
	Partition   *Ident
}

func (*ProjectionOperation) alterTableOperationNode() {}

func (o *ProjectionOperation) String() string {
	var b sqlBuilder
	b.kw(o.Action, "PROJECTION")
	b.kwIf(o.IfNotExists, "IF NOT EXISTS")
	b.kwIf(o.IfExists, "IF EXISTS")
	b.kw(o.Name.String())
	if o.Select != nil {
		inner := o.Select.String()
		if len(o.OrderBy) > 0 {
			inner += " ORDER BY " + commaSep(o.OrderBy)
		}
		b.kw("(" + inner + ")")
	}
	if o.Partition != nil {
		b.kw("IN PARTITION", o.Partition.String())
	}
	return b.String()
}

// AlterTableSetting is a keyword-valued action: OWNER TO x, ALGORITHM = x,
// LOCK = x, AUTO_INCREMENT = n, REPLICA IDENTITY x.
type AlterTableSetting struct {
	Name   string
	Equals bool
	Value  string
}

func (*AlterTableSetting) alterTableOperationNode() {}

func (o *AlterTableSetting) String() string {
	if o.Equals {
		return o.Name + " = " + o.Value
	}
	return o.Name + " " + o.Value
}

// AlterTable is ALTER TABLE [IF EXISTS] [ONLY] name ops.
type AlterTable struct {
	IfExists   bool
	Only       bool
	Name       ObjectName
	OnCluster  *Ident
	Operations []AlterTableOperation
}

func (*AlterTable) statementNode() {}

func (a *AlterTable) String() string {
	var b sqlBuilder
	b.kw("ALTER TABLE")
	b.kwIf(a.IfExists, "IF EXISTS")
	b.kwIf(a.Only, "ONLY")
	b.kw(a.Name.String())
	if a.OnCluster != nil {
		b.kw("ON CLUSTER", a.OnCluster.String())
	}
	b.kw(commaSep(a.Operations))
	return b.String()
}

// AlterIndex is ALTER INDEX name RENAME TO new.
type AlterIndex struct {
	Name    ObjectName
	NewName ObjectName
}

func (*AlterIndex) statementNode() {}

func (a *AlterIndex) String() string {
	return "ALTER INDEX " + a.Name.String() + " RENAME TO " + a.NewName.String()
}

// AlterView is ALTER VIEW name [(cols)] [WITH (opts)] AS query.
type AlterView struct {
	Name    ObjectName
	Columns []Ident
	Options []SQLOption
	Query   *Query
}

func (*AlterView) statementNode() {}

func (a *AlterView) String() string {
	var b sqlBuilder
	b.kw("ALTER VIEW", a.Name.String())
	if len(a.Columns) > 0 {
		b.kw("(" + commaSep(a.Columns) + ")")
	}
	if len(a.Options) > 0 {
		b.kw("WITH (" + commaSep(a.Options) + ")")
	}
	b.kw("AS", a.Query.String())
	return b.String()
}

// AlterSchema is ALTER SCHEMA name {RENAME TO new | OWNER TO owner}.
type AlterSchema struct {
	Name    ObjectName
	Rename  *ObjectName
	OwnerTo *Ident
}

func (*AlterSchema) statementNode() {}

func (a *AlterSchema) String() string {
	if a.Rename != nil {
		return "ALTER SCHEMA " + a.Name.String() + " RENAME TO " + a.Rename.String()
	}
	return "ALTER SCHEMA " + a.Name.String() + " OWNER TO " + a.OwnerTo.String()
}

// ConfigValue is the value of SET param {TO|=} value: DEFAULT when Value
// is nil.
type ConfigValue struct {
	Param  ObjectName
	Equals bool
	Values []Expr
}

func (c ConfigValue) String() string {
	op := " TO "
	if c.Equals {
		op = " = "
	}
	if len(c.Values) == 0 {
		return c.Param.String() + op + "DEFAULT"
	}
	return c.Param.String() + op + commaSep(c.Values)
}

// AlterConfig is the SET / RESET part of ALTER SYSTEM, ALTER DATABASE and
// ALTER ROLE. Reset with no Param means RESET ALL.
type AlterConfig struct {
	Set   *ConfigValue
	Reset *ObjectName
}

func (c *AlterConfig) String() string {
	if c.Set != nil {
		return "SET " + c.Set.String()
	}
	if c.Reset == nil || len(*c.Reset) == 0 {
		return "RESET ALL"
	}
	return "RESET " + c.Reset.String()
}

// AlterSystem is PostgreSQL's ALTER SYSTEM {SET|RESET}.
type AlterSystem struct {
	Config AlterConfig
}

func (*AlterSystem) statementNode() {}

func (a *AlterSystem) String() string { return "ALTER SYSTEM " + a.Config.String() }

// AlterDatabase is ALTER DATABASE name {SET|RESET|RENAME TO|OWNER TO}.
type AlterDatabase struct {
	Name    ObjectName
	Config  *AlterConfig
	Rename  *Ident
	OwnerTo *Ident
}

func (*AlterDatabase) statementNode() {}

func (a *AlterDatabase) String() string {
	s := "ALTER DATABASE " + a.Name.String()
	switch {
	case a.Rename != nil:
		return s + " RENAME TO " + a.Rename.String()
	case a.OwnerTo != nil:
		return s + " OWNER TO " + a.OwnerTo.String()
	}
	return s + " " + a.Config.String()
}

// AlterRole is ALTER ROLE in its PostgreSQL and MSSQL forms.
type AlterRole struct {
	Name       Ident
	Rename     *Ident
	With       bool
	Options    []RoleOption
	InDatabase *ObjectName
	Config     *AlterConfig
	AddMember  *Ident
	DropMember *Ident
	WithName   *Ident // MSSQL WITH NAME = new
}

func (*AlterRole) statementNode() {}

func (a *AlterRole) String() string {
	var b sqlBuilder
	b.kw("ALTER ROLE", a.Name.String())
	switch {
	case a.Rename != nil:
		b.kw("RENAME TO", a.Rename.String())
	case a.AddMember != nil:
		b.kw("ADD MEMBER", a.AddMember.String())
	case a.DropMember != nil:
		b.kw("DROP MEMBER", a.DropMember.String())
	case a.WithName != nil:
		b.kw("WITH NAME =", a.WithName.String())
	case a.Config != nil:
		if a.InDatabase != nil {
			b.kw("IN DATABASE", a.InDatabase.String())
		}
		b.kw(a.Config.String())
	default:
		b.kwIf(a.With, "WITH")
		b.kw(spaceSep(a.Options))
	}
	return b.String()
}

// AlterUser is ALTER USER [IF EXISTS] name [RENAME TO new] [SET k = v ...]
// [UNSET k, ...].
type AlterUser struct {
	IfExists bool
	Name     Ident
	Rename   *Ident
	Set      []SQLOption
	Unset    []Ident
}

func (*AlterUser) statementNode() {}

func (a *AlterUser) String() string {
	var b sqlBuilder
	b.kw("ALTER USER")
	b.kwIf(a.IfExists, "IF EXISTS")
	b.kw(a.Name.String())
	if a.Rename != nil {
		b.kw("RENAME TO", a.Rename.String())
	}
	if len(a.Set) > 0 {
		b.kw("SET", spaceSep(a.Set))
	}
	if len(a.Unset) > 0 {
		b.kw("UNSET", commaSep(a.Unset))
	}
	return b.String()
}

// AlterPolicy is ALTER POLICY name ON table {RENAME TO new | [TO roles]
// [USING (expr)] [WITH CHECK (expr)]}.
type AlterPolicy struct {
	Name      Ident
	Table     ObjectName
	Rename    *Ident
	To        []Ident
	Using     Expr
	WithCheck Expr
}

func (*AlterPolicy) statementNode() {}

func (a *AlterPolicy) String() string {
	var b sqlBuilder
	b.kw("ALTER POLICY", a.Name.String(), "ON", a.Table.String())
	if a.Rename != nil {
		b.kw("RENAME TO", a.Rename.String())
		return b.String()
	}
	if len(a.To) > 0 {
		b.kw("TO", commaSep(a.To))
	}
	if !isNil(a.Using) {
		b.kw("USING (" + a.Using.String() + ")")
	}
	if !isNil(a.WithCheck) {
		b.kw("WITH CHECK (" + a.WithCheck.String() + ")")
	}
	return b.String()
}

// AlterType is ALTER TYPE name {RENAME TO new | ADD VALUE [IF NOT EXISTS]
// 'v' [{BEFORE|AFTER} 'w'] | RENAME VALUE 'a' TO 'b'}.
type AlterType struct {
	Name        ObjectName
	Rename      *Ident
	AddValue    *Value
	IfNotExists bool
	Position    string
	Neighbor    *Value
	FromValue   *Value
	ToValue     *Value
}

func (*AlterType) statementNode() {}

func (a *AlterType) String() string {
	var b sqlBuilder
	b.kw("ALTER TYPE", a.Name.String())
	switch {
	case a.Rename != nil:
		b.kw("RENAME TO", a.Rename.String())
	case a.AddValue != nil:
		b.kw("ADD VALUE")
		b.kwIf(a.IfNotExists, "IF NOT EXISTS")
		b.kw(a.AddValue.String())
		if a.Neighbor != nil {
			b.kw(a.Position, a.Neighbor.String())
		}
	default:
		b.kw("RENAME VALUE", a.FromValue.String(), "TO", a.ToValue.String())
	}
	return b.String()
}

// RenameTables is MySQL / ClickHouse RENAME TABLE a TO b, c TO d.
type RenameTables struct {
	Pairs [][2]ObjectName
}

func (*RenameTables) statementNode() {}

func (r *RenameTables) String() string {
	parts := make([]string, len(r.Pairs))
	for i, p := range r.Pairs {
		parts[i] = p[0].String() + " TO " + p[1].String()
	}
	return "RENAME TABLE " + strings.Join(parts, ", ")
}
