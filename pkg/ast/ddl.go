package ast

import "strings"

// SQLOption is `key = value`, or a bare key when Value is nil. Key is an
// Ident or a string literal (Hive TBLPROPERTIES).
type SQLOption struct {
	Key   Expr
	Value Expr
}

func (o SQLOption) String() string {
	if isNil(o.Value) {
		return o.Key.String()
	}
	return o.Key.String() + " = " + o.Value.String()
}

// OptionList is a parenthesised option list used as an option value, as
// in Snowflake's CREDENTIALS = (AWS_KEY_ID = 'k' AWS_SECRET_KEY = 's').
type OptionList struct {
	Options []SQLOption
}

func (*OptionList) exprNode() {}

func (o *OptionList) String() string { return "(" + spaceSep(o.Options) + ")" }

// ReferentialAction is the ON DELETE / ON UPDATE action of a foreign key.
type ReferentialAction string

// Referential actions.
const (
	ActionRestrict   ReferentialAction = "RESTRICT"
	ActionCascade    ReferentialAction = "CASCADE"
	ActionSetNull    ReferentialAction = "SET NULL"
	ActionNoAction   ReferentialAction = "NO ACTION"
	ActionSetDefault ReferentialAction = "SET DEFAULT"
)

// ConstraintCharacteristics are the trailing [NOT] DEFERRABLE, INITIALLY
// and [NOT] ENFORCED modifiers.
type ConstraintCharacteristics struct {
	Deferrable *bool
	Initially  string // DEFERRED / IMMEDIATE
	Enforced   *bool
}

func (c *ConstraintCharacteristics) String() string {
	if c == nil {
		return ""
	}
	var b sqlBuilder
	if c.Deferrable != nil {
		b.kw(boolStr(!*c.Deferrable, "NOT"), "DEFERRABLE")
	}
	if c.Initially != "" {
		b.kw("INITIALLY", c.Initially)
	}
	if c.Enforced != nil {
		b.kw(boolStr(!*c.Enforced, "NOT"), "ENFORCED")
	}
	return b.String()
}

// ColumnOption is one option of a column definition.
type ColumnOption interface {
	Node
	columnOptionNode()
}

// ColumnOptionDef is a column option with an optional CONSTRAINT name.
type ColumnOptionDef struct {
	Name   *Ident
	Option ColumnOption
}

func (d ColumnOptionDef) String() string {
	if d.Name != nil {
		return "CONSTRAINT " + d.Name.String() + " " + d.Option.String()
	}
	return d.Option.String()
}

// NullOption is NULL or NOT NULL.
type NullOption struct {
	NotNull bool
}

func (*NullOption) columnOptionNode() {}

func (o *NullOption) String() string {
	if o.NotNull {
		return "NOT NULL"
	}
	return "NULL"
}

// DefaultOption is DEFAULT expr, or ClickHouse's MATERIALIZED / ALIAS /
// EPHEMERAL [expr], selected by Keyword.
type DefaultOption struct {
	Keyword string
	Expr    Expr
}

func (*DefaultOption) columnOptionNode() {}

func (o *DefaultOption) String() string {
	var b sqlBuilder
	b.kw(o.Keyword)
	b.node("", o.Expr)
	return b.String()
}

// UniqueOption is PRIMARY KEY or UNIQUE [NULLS [NOT] DISTINCT] on a column.
type UniqueOption struct {
	Primary         bool
	NullsDistinct   string // DISTINCT / NOT DISTINCT
	Characteristics *ConstraintCharacteristics
}

func (*UniqueOption) columnOptionNode() {}

func (o *UniqueOption) String() string {
	var b sqlBuilder
	if o.Primary {
		b.kw("PRIMARY KEY")
	} else {
		b.kw("UNIQUE")
		b.kwIf(o.NullsDistinct != "", "NULLS", o.NullsDistinct)
	}
	b.kw(o.Characteristics.String())
	return b.String()
}

// CheckOption is CHECK (expr).
type CheckOption struct {
	Expr Expr
}

func (*CheckOption) columnOptionNode() {}

func (o *CheckOption) String() string { return "CHECK (" + o.Expr.String() + ")" }

// ReferencesOption is an inline foreign key.
type ReferencesOption struct {
	Table           ObjectName
	Columns         []Ident
	Match           string
	OnDelete        ReferentialAction
	OnUpdate        ReferentialAction
	Characteristics *ConstraintCharacteristics
}

func (*ReferencesOption) columnOptionNode() {}

func (o *ReferencesOption) String() string {
	var b sqlBuilder
	b.kw("REFERENCES", o.Table.String())
	if len(o.Columns) > 0 {
		b.WriteString("(" + commaSep(o.Columns) + ")")
	}
	b.kwIf(o.Match != "", "MATCH", o.Match)
	b.kwIf(o.OnDelete != "", "ON DELETE", string(o.OnDelete))
	b.kwIf(o.OnUpdate != "", "ON UPDATE", string(o.OnUpdate))
	b.kw(o.Characteristics.String())
	return b.String()
}

// OnUpdateOption is MySQL's ON UPDATE expr.
type OnUpdateOption struct {
	Expr Expr
}

func (*OnUpdateOption) columnOptionNode() {}

func (o *OnUpdateOption) String() string { return "ON UPDATE " + o.Expr.String() }

// CollateOption is COLLATE name.
type CollateOption struct {
	Collation ObjectName
}

func (*CollateOption) columnOptionNode() {}

func (o *CollateOption) String() string { return "COLLATE " + o.Collation.String() }

// CharsetOption is CHARACTER SET name.
type CharsetOption struct {
	Name ObjectName
}

func (*CharsetOption) columnOptionNode() {}

func (o *CharsetOption) String() string { return "CHARACTER SET " + o.Name.String() }

// CommentOption is COMMENT 'text'.
type CommentOption struct {
	Text Value
}

func (*CommentOption) columnOptionNode() {}

func (o *CommentOption) String() string { return "COMMENT " + o.Text.String() }

// GeneratedOption is GENERATED {ALWAYS|BY DEFAULT} AS IDENTITY [(seq)] or
// [GENERATED ALWAYS] AS (expr) [STORED|VIRTUAL]. Short marks the MySQL
// form without GENERATED ALWAYS.
type GeneratedOption struct {
	Always      bool
	Identity    bool
	SeqOptions  []SequenceOption
	Expr        Expr
	Storage     string // STORED / VIRTUAL
	Short       bool
}

func (*GeneratedOption) columnOptionNode() {}

func (o *GeneratedOption) String() string {
	var b sqlBuilder
	if !o.Short {
		b.kw("GENERATED")
		if o.Always {
			b.kw("ALWAYS")
		} else {
			b.kw("BY DEFAULT")
		}
	}
	if o.Identity {
		b.kw("AS IDENTITY")
		if len(o.SeqOptions) > 0 {
			b.kw("(" + spaceSep(o.SeqOptions) + ")")
		}
		return b.String()
	}
	b.kw("AS (" + o.Expr.String() + ")")
	b.kw(o.Storage)
	return b.String()
}

// IdentityOption is MSSQL IDENTITY(seed, increment) or Snowflake
// AUTOINCREMENT / IDENTITY [(start, step)] [ORDER|NOORDER].
type IdentityOption struct {
	Keyword   string
	Seed      Expr
	Increment Expr
	Order     string
}

func (*IdentityOption) columnOptionNode() {}

func (o *IdentityOption) String() string {
	s := o.Keyword
	if !isNil(o.Seed) {
		s += "(" + o.Seed.String() + ", " + o.Increment.String() + ")"
	}
	if o.Order != "" {
		s += " " + o.Order
	}
	return s
}

// KeywordOption is a bare option like AUTO_INCREMENT, AUTOINCREMENT or
// INVISIBLE.
type KeywordOption struct {
	Words []string
}

func (*KeywordOption) columnOptionNode() {}

func (o *KeywordOption) String() string { return strings.Join(o.Words, " ") }

// SridOption is MySQL's SRID n.
type SridOption struct {
	Expr Expr
}

func (*SridOption) columnOptionNode() {}

func (o *SridOption) String() string { return "SRID " + o.Expr.String() }

// OptionsOption is BigQuery's OPTIONS(k = v, ...) on a column.
type OptionsOption struct {
	Options []SQLOption
}

func (*OptionsOption) columnOptionNode() {}

func (o *OptionsOption) String() string { return "OPTIONS(" + commaSep(o.Options) + ")" }

// PolicyOption is Snowflake's [WITH] MASKING POLICY / PROJECTION POLICY /
// TAG column option.
type PolicyOption struct {
	With    bool
	Kind    string // MASKING POLICY / PROJECTION POLICY / TAG
	Name    ObjectName
	Using   []Ident
	Tags    []SQLOption
}

func (*PolicyOption) columnOptionNode() {}

func (o *PolicyOption) String() string {
	var b sqlBuilder
	b.kwIf(o.With, "WITH")
	b.kw(o.Kind)
	if o.Kind == "TAG" {
		b.kw("(" + commaSep(o.Tags) + ")")
		return b.String()
	}
	b.kw(o.Name.String())
	if len(o.Using) > 0 {
		b.kw("USING (" + commaSep(o.Using) + ")")
	}
	return b.String()
}

// OnConflictOption is SQLite's ON CONFLICT resolution on a column
// constraint.
type OnConflictOption struct {
	Resolution string
}

func (*OnConflictOption) columnOptionNode() {}

func (o *OnConflictOption) String() string { return "ON CONFLICT " + o.Resolution }

// ColumnDef is a column definition. DataType is nil for SQLite columns
// declared without a type.
type ColumnDef struct {
	Name     Ident
	DataType DataType
	Options  []ColumnOptionDef
}

func (c ColumnDef) String() string {
	var b sqlBuilder
	b.kw(c.Name.String())
	b.node("", c.DataType)
	for _, o := range c.Options {
		b.kw(o.String())
	}
	return b.String()
}

// TableConstraint is a table-level constraint.
type TableConstraint interface {
	Node
	tableConstraintNode()
}

func constraintName(name *Ident) string {
	if name == nil {
		return ""
	}
	return "CONSTRAINT " + name.String()
}

// IndexColumn is a column of an index or key, with an optional operator
// class.
type IndexColumn struct {
	Column  OrderByExpr
	OpClass ObjectName
}

func (c IndexColumn) String() string {
	if len(c.OpClass) > 0 {
		// operator class goes between the expression and the sort options
		inner := OrderByExpr{Expr: c.Column.Expr}
		s := inner.String() + " " + c.OpClass.String()
		o := c.Column.Options.String()
		if o != "" {
			s += " " + o
		}
		return s
	}
	return c.Column.String()
}

// UniqueConstraint is PRIMARY KEY (...) or UNIQUE [KEY|INDEX] [name] (...).
type UniqueConstraint struct {
	Name            *Ident
	Primary         bool
	IndexKeyword    string // MySQL KEY / INDEX
	IndexName       *Ident
	IndexType       string // USING BTREE / HASH
	NullsDistinct   string
	Columns         []IndexColumn
	Characteristics *ConstraintCharacteristics
}

func (*UniqueConstraint) tableConstraintNode() {}

func (c *UniqueConstraint) String() string {
	var b sqlBuilder
	b.kw(constraintName(c.Name))
	if c.Primary {
		b.kw("PRIMARY KEY")
	} else {
		b.kw("UNIQUE")
		b.kwIf(c.NullsDistinct != "", "NULLS", c.NullsDistinct)
	}
	b.kw(c.IndexKeyword)
	if c.IndexName != nil {
		b.kw(c.IndexName.String())
	}
	b.kwIf(c.IndexType != "", "USING", c.IndexType)
	b.kw("(" + commaSep(c.Columns) + ")")
	b.kw(c.Characteristics.String())
	return b.String()
}

// ForeignKeyConstraint is FOREIGN KEY (cols) REFERENCES t (cols) ...
type ForeignKeyConstraint struct {
	Name            *Ident
	IndexName       *Ident
	Columns         []Ident
	Table           ObjectName
	RefColumns      []Ident
	Match           string
	OnDelete        ReferentialAction
	OnUpdate        ReferentialAction
	Characteristics *ConstraintCharacteristics
}

func (*ForeignKeyConstraint) tableConstraintNode() {}

func (c *ForeignKeyConstraint) String() string {
	var b sqlBuilder
	b.kw(constraintName(c.Name), "FOREIGN KEY")
	if c.IndexName != nil {
		b.kw(c.IndexName.String())
	}
	b.kw("(" + commaSep(c.Columns) + ")")
	b.kw("REFERENCES", c.Table.String())
	if len(c.RefColumns) > 0 {
		b.WriteString("(" + commaSep(c.RefColumns) + ")")
	}
	b.kwIf(c.Match != "", "MATCH", c.Match)
	b.kwIf(c.OnDelete != "", "ON DELETE", string(c.OnDelete))
	b.kwIf(c.OnUpdate != "", "ON UPDATE", string(c.OnUpdate))
	b.kw(c.Characteristics.String())
	return b.String()
}

// CheckConstraint is [CONSTRAINT name] CHECK (expr) [[NOT] ENFORCED].
type CheckConstraint struct {
	Name     *Ident
	Expr     Expr
	Enforced *bool
}

func (*CheckConstraint) tableConstraintNode() {}

func (c *CheckConstraint) String() string {
	var b sqlBuilder
	b.kw(constraintName(c.Name), "CHECK ("+c.Expr.String()+")")
	if c.Enforced != nil {
		b.kw(boolStr(!*c.Enforced, "NOT"), "ENFORCED")
	}
	return b.String()
}

// IndexConstraint is MySQL's [FULLTEXT|SPATIAL] {INDEX|KEY} [name] (cols).
type IndexConstraint struct {
	Kind      string // FULLTEXT / SPATIAL / ""
	Keyword   string // INDEX / KEY
	Name      *Ident
	IndexType string
	Columns   []IndexColumn
}

func (*IndexConstraint) tableConstraintNode() {}

func (c *IndexConstraint) String() string {
	var b sqlBuilder
	b.kw(c.Kind, c.Keyword)
	if c.Name != nil {
		b.kw(c.Name.String())
	}
	b.kwIf(c.IndexType != "", "USING", c.IndexType)
	b.kw("(" + commaSep(c.Columns) + ")")
	return b.String()
}

// PeriodConstraint is PERIOD FOR name (start, end).
type PeriodConstraint struct {
	Name  Ident
	Start Ident
	End   Ident
}

func (*PeriodConstraint) tableConstraintNode() {}

func (c *PeriodConstraint) String() string {
	return "PERIOD FOR " + c.Name.String() + " (" + c.Start.String() + ", " + c.End.String() + ")"
}

// OptionsKind says how a list of table options was introduced.
type OptionsKind string

// Table option lists.
const (
	OptionsPlain         OptionsKind = ""
	OptionsWith          OptionsKind = "WITH"
	OptionsOptions       OptionsKind = "OPTIONS"
	OptionsTblProperties OptionsKind = "TBLPROPERTIES"
)

// TableOptions is a list of key = value options. Plain options are
// space separated and unparenthesized (MySQL ENGINE = InnoDB).
type TableOptions struct {
	Kind    OptionsKind
	Options []SQLOption
}

func (o TableOptions) String() string {
	if o.Kind == OptionsPlain {
		return spaceSep(o.Options)
	}
	return string(o.Kind) + " (" + commaSep(o.Options) + ")"
}

// HiveFormat collects Hive storage clauses.
type HiveFormat struct {
	RowFormat  string // DELIMITED ... / SERDE 'class'
	StoredAs   string
	InputFmt   *Value
	OutputFmt  *Value
	Location   *Value
}

func (h *HiveFormat) String() string {
	if h == nil {
		return ""
	}
	var b sqlBuilder
	b.kwIf(h.RowFormat != "", "ROW FORMAT", h.RowFormat)
	if h.InputFmt != nil {
		b.kw("STORED AS INPUTFORMAT", h.InputFmt.String(), "OUTPUTFORMAT", h.OutputFmt.String())
	} else {
		b.kwIf(h.StoredAs != "", "STORED AS", h.StoredAs)
	}
	if h.Location != nil {
		b.kw("LOCATION", h.Location.String())
	}
	return b.String()
}

// CreateTable is CREATE TABLE in all its dialect variants.
type CreateTable struct {
	OrReplace     bool
	Temporary     string // TEMP / TEMPORARY
	Global        *bool  // GLOBAL / LOCAL
	Unlogged      bool
	External      bool
	Transient     bool
	Volatile      bool
	Iceberg       bool
	Dynamic       bool
	Foreign       bool
	IfNotExists   bool
	Name          ObjectName
	OnCluster     *Ident
	Columns       []ColumnDef
	Constraints   []TableConstraint
	Like          *ObjectName
	LikeInParens  bool
	Clone         *ObjectName
	Inherits      []ObjectName
	PartitionedBy []ColumnDef // Hive PARTITIONED BY (col type)
	Hive          *HiveFormat
	Options       []TableOptions
	Engine        Expr // ClickHouse ENGINE = f(...)
	PrimaryKey    Expr // ClickHouse PRIMARY KEY
	OrderBy       *OneOrManyWithParens[Expr]
	PartitionBy   Expr
	ClusterBy     *OneOrManyWithParens[Expr]
	Settings      []Setting
	Comment       *Value
	OnCommit      string // DELETE ROWS / PRESERVE ROWS / DROP
	WithoutRowID  bool
	Strict        bool
	Server        *Ident // FOREIGN TABLE ... SERVER s
	Query         *Query
}

func (*CreateTable) statementNode() {}

func (c *CreateTable) String() string {
	var b sqlBuilder
	b.kw("CREATE")
	b.kwIf(c.OrReplace, "OR REPLACE")
	if c.Global != nil {
		if *c.Global {
			b.kw("GLOBAL")
		} else {
			b.kw("LOCAL")
		}
	}
	b.kw(c.Temporary)
	b.kwIf(c.Unlogged, "UNLOGGED")
	b.kwIf(c.External, "EXTERNAL")
	b.kwIf(c.Transient, "TRANSIENT")
	b.kwIf(c.Volatile, "VOLATILE")
	b.kwIf(c.Iceberg, "ICEBERG")
	b.kwIf(c.Dynamic, "DYNAMIC")
	b.kwIf(c.Foreign, "FOREIGN")
	b.kw("TABLE")
	b.kwIf(c.IfNotExists, "IF NOT EXISTS")
	b.kw(c.Name.String())
	if c.OnCluster != nil {
		b.kw("ON CLUSTER", c.OnCluster.String())
	}
	if len(c.Columns) > 0 || len(c.Constraints) > 0 {
		var elems []string
		for _, col := range c.Columns {
			elems = append(elems, col.String())
		}
		for _, tc := range c.Constraints {
			elems = append(elems, tc.String())
		}
		b.kw("(" + strings.Join(elems, ", ") + ")")
	} else if c.Query == nil && c.Like == nil && c.Clone == nil {
		b.kw("()")
	}
	if c.Like != nil {
		if c.LikeInParens {
			b.kw("(LIKE " + c.Like.String() + ")")
		} else {
			b.kw("LIKE", c.Like.String())
		}
	}
	if c.Clone != nil {
		b.kw("CLONE", c.Clone.String())
	}
	if len(c.Inherits) > 0 {
		b.kw("INHERITS (" + commaSep(c.Inherits) + ")")
	}
	if c.Server != nil {
		b.kw("SERVER", c.Server.String())
	}
	b.kwIf(c.WithoutRowID, "WITHOUT ROWID")
	b.kwIf(c.Strict, "STRICT")
	b.node("ENGINE =", c.Engine)
	if c.Comment != nil {
		b.kw("COMMENT", c.Comment.String())
	}
	if len(c.PartitionedBy) > 0 {
		b.kw("PARTITIONED BY (" + commaSep(c.PartitionedBy) + ")")
	}
	b.node("PARTITION BY", c.PartitionBy)
	if c.ClusterBy != nil {
		b.kw("CLUSTER BY", c.ClusterBy.String())
	}
	if c.OrderBy != nil {
		b.kw("ORDER BY", c.OrderBy.String())
	}
	b.node("PRIMARY KEY", c.PrimaryKey)
	b.kw(c.Hive.String())
	for _, o := range c.Options {
		b.kw(o.String())
	}
	if len(c.Settings) > 0 {
		b.kw("SETTINGS", commaSep(c.Settings))
	}
	b.kwIf(c.OnCommit != "", "ON COMMIT", c.OnCommit)
	if c.Query != nil {
		b.kw("AS", c.Query.String())
	}
	return b.String()
}

// ViewColumnDef is a column of a view's column list.
type ViewColumnDef struct {
	Name     Ident
	DataType DataType
	Options  []SQLOption
}

func (c ViewColumnDef) String() string {
	var b sqlBuilder
	b.kw(c.Name.String())
	b.node("", c.DataType)
	if len(c.Options) > 0 {
		b.kw("OPTIONS(" + commaSep(c.Options) + ")")
	}
	return b.String()
}

// CreateView is CREATE [MATERIALIZED] VIEW.
type CreateView struct {
	OrAlter      bool
	OrReplace    bool
	Algorithm    string // MySQL ALGORITHM = ...
	Definer      *ObjectName
	Security     string // MySQL SQL SECURITY ...
	Secure       bool
	Temporary    bool
	Materialized bool
	IfNotExists  bool
	Name         ObjectName
	OnCluster    *Ident
	Columns      []ViewColumnDef
	To           *ObjectName // ClickHouse materialized view target
	Options      []TableOptions
	ClusterBy    []Ident
	Comment      *Value
	Query        *Query
	NoSchemaBind bool // Redshift WITH NO SCHEMA BINDING
	WithData     *bool
}

func (*CreateView) statementNode() {}

func (c *CreateView) String() string {
	var b sqlBuilder
	b.kw("CREATE")
	b.kwIf(c.OrAlter, "OR ALTER")
	b.kwIf(c.OrReplace, "OR REPLACE")
	b.kwIf(c.Algorithm != "", "ALGORITHM =", c.Algorithm)
	if c.Definer != nil {
		b.kw("DEFINER =", c.Definer.String())
	}
	b.kwIf(c.Security != "", "SQL SECURITY", c.Security)
	b.kwIf(c.Secure, "SECURE")
	b.kwIf(c.Temporary, "TEMPORARY")
	b.kwIf(c.Materialized, "MATERIALIZED")
	b.kw("VIEW")
	b.kwIf(c.IfNotExists, "IF NOT EXISTS")
	b.kw(c.Name.String())
	if c.OnCluster != nil {
		b.kw("ON CLUSTER", c.OnCluster.String())
	}
	if c.To != nil {
		b.kw("TO", c.To.String())
	}
	if len(c.Columns) > 0 {
		b.kw("(" + commaSep(c.Columns) + ")")
	}
	for _, o := range c.Options {
		b.kw(o.String())
	}
	if len(c.ClusterBy) > 0 {
		b.kw("CLUSTER BY (" + commaSep(c.ClusterBy) + ")")
	}
	if c.Comment != nil {
		b.kw("COMMENT =", c.Comment.String())
	}
	b.kw("AS", c.Query.String())
	b.kwIf(c.NoSchemaBind, "WITH NO SCHEMA BINDING")
	if c.WithData != nil {
		b.kw("WITH", boolStr(!*c.WithData, "NO"), "DATA")
	}
	return b.String()
}

// CreateIndex is CREATE [UNIQUE] INDEX.
type CreateIndex struct {
	Unique        bool
	Concurrently  bool
	IfNotExists   bool
	Name          *ObjectName
	Table         ObjectName
	Using         string
	Columns       []IndexColumn
	Include       []Ident
	NullsDistinct string
	With          []Expr
	Predicate     Expr
}

func (*CreateIndex) statementNode() {}

func (c *CreateIndex) String() string {
	var b sqlBuilder
	b.kw("CREATE")
	b.kwIf(c.Unique, "UNIQUE")
	b.kw("INDEX")
	b.kwIf(c.Concurrently, "CONCURRENTLY")
	b.kwIf(c.IfNotExists, "IF NOT EXISTS")
	if c.Name != nil {
		b.kw(c.Name.String())
	}
	b.kw("ON", c.Table.String())
	b.kwIf(c.Using != "", "USING", c.Using)
	b.kw("(" + commaSep(c.Columns) + ")")
	if len(c.Include) > 0 {
		b.kw("INCLUDE (" + commaSep(c.Include) + ")")
	}
	b.kwIf(c.NullsDistinct != "", "NULLS", c.NullsDistinct)
	if len(c.With) > 0 {
		b.kw("WITH (" + commaSep(c.With) + ")")
	}
	b.node("WHERE", c.Predicate)
	return b.String()
}

// FunctionParam is a parameter of CREATE FUNCTION / PROCEDURE.
type FunctionParam struct {
	Mode     string // IN / OUT / INOUT / VARIADIC
	Name     *Ident
	DataType DataType
	Default  Expr
	DefaultEq bool
}

func (a FunctionParam) String() string {
	var b sqlBuilder
	b.kw(a.Mode)
	if a.Name != nil {
		b.kw(a.Name.String())
	}
	b.kw(a.DataType.String())
	if !isNil(a.Default) {
		if a.DefaultEq {
			b.kw("=", a.Default.String())
		} else {
			b.kw("DEFAULT", a.Default.String())
		}
	}
	return b.String()
}

// FunctionBodyKind selects how a function body was written.
type FunctionBodyKind int

// Function body forms.
const (
	BodyAs     FunctionBodyKind = iota // AS 'text' / AS $$text$$
	BodyReturn                         // RETURN expr
	BodyBlock                          // AS BEGIN ... END / BEGIN ... END
)

// FunctionBody is the body of a CREATE FUNCTION.
type FunctionBody struct {
	Kind   FunctionBodyKind
	Expr   Expr
	Block  *BeginEnd
	AsKw   bool
}

func (f *FunctionBody) String() string {
	switch f.Kind {
	case BodyReturn:
		return "RETURN " + f.Expr.String()
	case BodyBlock:
		if f.AsKw {
			return "AS " + f.Block.String()
		}
		return f.Block.String()
	default:
		return "AS " + f.Expr.String()
	}
}

// CreateFunction is CREATE [OR REPLACE] [TEMPORARY] FUNCTION.
type CreateFunction struct {
	OrAlter     bool
	OrReplace   bool
	Temporary   bool
	IfNotExists bool
	Name        ObjectName
	Params      []FunctionParam
	HasParens   bool
	ReturnType  DataType
	Language    *Ident
	Behavior    string // IMMUTABLE / STABLE / VOLATILE
	NullInput   string // CALLED ON NULL INPUT / RETURNS NULL ON NULL INPUT / STRICT
	Options     []SQLOption
	Body        *FunctionBody
	BodyFirst   bool // body before LANGUAGE, as PostgreSQL prints it
}

func (*CreateFunction) statementNode() {}

func (c *CreateFunction) String() string {
	var b sqlBuilder
	b.kw("CREATE")
	b.kwIf(c.OrAlter, "OR ALTER")
	b.kwIf(c.OrReplace, "OR REPLACE")
	b.kwIf(c.Temporary, "TEMPORARY")
	b.kw("FUNCTION")
	b.kwIf(c.IfNotExists, "IF NOT EXISTS")
	s := c.Name.String()
	if c.HasParens || len(c.Params) > 0 {
		s += "(" + commaSep(c.Params) + ")"
	}
	b.kw(s)
	b.node("RETURNS", c.ReturnType)
	if c.BodyFirst && c.Body != nil {
		b.kw(c.Body.String())
	}
	if c.Language != nil {
		b.kw("LANGUAGE", c.Language.String())
	}
	b.kw(c.Behavior, c.NullInput)
	if len(c.Options) > 0 {
		b.kw("OPTIONS(" + commaSep(c.Options) + ")")
	}
	if !c.BodyFirst && c.Body != nil {
		b.kw(c.Body.String())
	}
	return b.String()
}

// CreateProcedure is CREATE [OR ALTER] PROCEDURE name [(params)] AS body.
type CreateProcedure struct {
	OrAlter   bool
	OrReplace bool
	Name      ObjectName
	Params    []FunctionParam
	HasParens bool
	Language  *Ident
	Body      Statement
	Text      *Value // AS 'text' / AS $$text$$
	AsKw      bool
}

func (*CreateProcedure) statementNode() {}

func (c *CreateProcedure) String() string {
	var b sqlBuilder
	b.kw("CREATE")
	b.kwIf(c.OrAlter, "OR ALTER")
	b.kwIf(c.OrReplace, "OR REPLACE")
	b.kw("PROCEDURE")
	s := c.Name.String()
	if c.HasParens || len(c.Params) > 0 {
		s += "(" + commaSep(c.Params) + ")"
	}
	b.kw(s)
	if c.Language != nil {
		b.kw("LANGUAGE", c.Language.String())
	}
	b.kwIf(c.AsKw, "AS")
	if c.Text != nil {
		b.kw(c.Text.String())
	} else {
		b.kw(c.Body.String())
	}
	return b.String()
}

// TriggerEvent is INSERT, UPDATE [OF cols], DELETE or TRUNCATE.
type TriggerEvent struct {
	Kind    string
	Columns []Ident
}

func (e TriggerEvent) String() string {
	if len(e.Columns) > 0 {
		return e.Kind + " OF " + commaSep(e.Columns)
	}
	return e.Kind
}

// CreateTrigger is CREATE TRIGGER ... {BEFORE|AFTER|INSTEAD OF} events ON t.
// Exec is set for EXECUTE FUNCTION|PROCEDURE f(args); Body otherwise.
type CreateTrigger struct {
	OrReplace   bool
	OrAlter     bool
	Constraint  bool
	Name        ObjectName
	Period      string
	Events      []TriggerEvent
	Table       ObjectName
	Referencing []string
	ForEach     string // ROW / STATEMENT
	Condition   Expr
	ExecKind    string // FUNCTION / PROCEDURE
	Exec        *Function
	Body        Statement
}

func (*CreateTrigger) statementNode() {}

func (c *CreateTrigger) String() string {
	var b sqlBuilder
	b.kw("CREATE")
	b.kwIf(c.OrAlter, "OR ALTER")
	b.kwIf(c.OrReplace, "OR REPLACE")
	b.kwIf(c.Constraint, "CONSTRAINT")
	b.kw("TRIGGER", c.Name.String(), c.Period, join(c.Events, " OR "), "ON", c.Table.String())
	b.kw(strings.Join(c.Referencing, " "))
	b.kwIf(c.ForEach != "", "FOR EACH", c.ForEach)
	if !isNil(c.Condition) {
		b.kw("WHEN (" + c.Condition.String() + ")")
	}
	if c.Exec != nil {
		b.kw("EXECUTE", c.ExecKind, c.Exec.String())
	} else if !isNil(c.Body) {
		b.kw(c.Body.String())
	}
	return b.String()
}

// CreateSchema is CREATE SCHEMA [IF NOT EXISTS] name [AUTHORIZATION owner].
type CreateSchema struct {
	IfNotExists   bool
	Name          ObjectName
	Authorization *Ident
	Options       []SQLOption
}

func (*CreateSchema) statementNode() {}

func (c *CreateSchema) String() string {
	var b sqlBuilder
	b.kw("CREATE SCHEMA")
	b.kwIf(c.IfNotExists, "IF NOT EXISTS")
	if len(c.Name) > 0 {
		b.kw(c.Name.String())
	}
	if c.Authorization != nil {
		b.kw("AUTHORIZATION", c.Authorization.String())
	}
	if len(c.Options) > 0 {
		b.kw("OPTIONS(" + commaSep(c.Options) + ")")
	}
	return b.String()
}

// CreateDatabase is CREATE DATABASE [IF NOT EXISTS] name with Databricks /
// Hive location, clone and comment clauses.
type CreateDatabase struct {
	IfNotExists     bool
	Name            ObjectName
	Location        *Value
	ManagedLocation *Value
	Clone           *ObjectName
	Comment         *Value
}

func (*CreateDatabase) statementNode() {}

func (c *CreateDatabase) String() string {
	var b sqlBuilder
	b.kw("CREATE DATABASE")
	b.kwIf(c.IfNotExists, "IF NOT EXISTS")
	b.kw(c.Name.String())
	if c.Clone != nil {
		b.kw("CLONE", c.Clone.String())
	}
	if c.Location != nil {
		b.kw("LOCATION", c.Location.String())
	}
	if c.ManagedLocation != nil {
		b.kw("MANAGED LOCATION", c.ManagedLocation.String())
	}
	if c.Comment != nil {
		b.kw("COMMENT", c.Comment.String())
	}
	return b.String()
}

// RoleOption is one PostgreSQL role option: LOGIN, NOSUPERUSER,
// PASSWORD 'x', CONNECTION LIMIT n, VALID UNTIL 'ts', IN ROLE r, ...
type RoleOption struct {
	Name  string
	Value Expr
	Names []Ident
}

func (o RoleOption) String() string {
	var b sqlBuilder
	b.kw(o.Name)
	b.node("", o.Value)
	if len(o.Names) > 0 {
		b.kw(commaSep(o.Names))
	}
	return b.String()
}

// CreateRole is CREATE ROLE name [, ...] [[WITH] option ...].
type CreateRole struct {
	IfNotExists bool
	Names       []ObjectName
	With        bool
	Options     []RoleOption
}

func (*CreateRole) statementNode() {}

func (c *CreateRole) String() string {
	var b sqlBuilder
	b.kw("CREATE ROLE")
	b.kwIf(c.IfNotExists, "IF NOT EXISTS")
	b.kw(commaSep(c.Names))
	b.kwIf(c.With, "WITH")
	b.kw(spaceSep(c.Options))
	return b.String()
}

// CreateUser is CREATE [OR REPLACE] USER [IF NOT EXISTS] name [opts].
type CreateUser struct {
	OrReplace   bool
	IfNotExists bool
	Name        Ident
	Password    *Value // PostgreSQL/MySQL IDENTIFIED BY / PASSWORD
	Options     []SQLOption
}

func (*CreateUser) statementNode() {}

func (c *CreateUser) String() string {
	var b sqlBuilder
	b.kw("CREATE")
	b.kwIf(c.OrReplace, "OR REPLACE")
	b.kw("USER")
	b.kwIf(c.IfNotExists, "IF NOT EXISTS")
	b.kw(c.Name.String())
	if c.Password != nil {
		b.kw("IDENTIFIED BY", c.Password.String())
	}
	b.kw(spaceSep(c.Options))
	return b.String()
}

// SequenceOption is one sequence option: INCREMENT [BY] n, START [WITH] n,
// MINVALUE n / NO MINVALUE, CACHE n, [NO] CYCLE, OWNED BY ...
type SequenceOption struct {
	Name  string
	Value Expr
}

func (o SequenceOption) String() string {
	if isNil(o.Value) {
		return o.Name
	}
	return o.Name + " " + o.Value.String()
}

// CreateSequence is CREATE [TEMPORARY] SEQUENCE.
type CreateSequence struct {
	Temporary   bool
	IfNotExists bool
	Name        ObjectName
	DataType    DataType
	Options     []SequenceOption
	OwnedBy     *ObjectName
}

func (*CreateSequence) statementNode() {}

func (c *CreateSequence) String() string {
	var b sqlBuilder
	b.kw("CREATE")
	b.kwIf(c.Temporary, "TEMPORARY")
	b.kw("SEQUENCE")
	b.kwIf(c.IfNotExists, "IF NOT EXISTS")
	b.kw(c.Name.String())
	b.node("AS", c.DataType)
	b.kw(spaceSep(c.Options))
	if c.OwnedBy != nil {
		b.kw("OWNED BY", c.OwnedBy.String())
	}
	return b.String()
}

// CreateType is CREATE TYPE name [AS (attrs) | AS ENUM (labels) | AS
// RANGE (opts)].
type CreateType struct {
	Name       ObjectName
	Kind       string // "", COMPOSITE, ENUM, RANGE
	Attributes []StructField
	Labels     []Value
	Options    []SQLOption
}

func (*CreateType) statementNode() {}

func (c *CreateType) String() string {
	s := "CREATE TYPE " + c.Name.String()
	switch c.Kind {
	case "COMPOSITE":
		return s + " AS (" + commaSep(c.Attributes) + ")"
	case "ENUM":
		return s + " AS ENUM (" + commaSep(c.Labels) + ")"
	case "RANGE":
		return s + " AS RANGE (" + commaSep(c.Options) + ")"
	}
	return s
}

// CreateDomain is CREATE DOMAIN name [AS] type [COLLATE c] [DEFAULT e]
// [constraints].
type CreateDomain struct {
	Name        ObjectName
	DataType    DataType
	Collation   ObjectName
	Default     Expr
	Constraints []TableConstraint
}

func (*CreateDomain) statementNode() {}

func (c *CreateDomain) String() string {
	var b sqlBuilder
	b.kw("CREATE DOMAIN", c.Name.String(), "AS", c.DataType.String())
	if len(c.Collation) > 0 {
		b.kw("COLLATE", c.Collation.String())
	}
	b.node("DEFAULT", c.Default)
	for _, tc := range c.Constraints {
		b.kw(tc.String())
	}
	return b.String()
}

// CreateExtension is CREATE EXTENSION [IF NOT EXISTS] name [WITH] [SCHEMA s]
// [VERSION v] [CASCADE].
type CreateExtension struct {
	IfNotExists bool
	Name        Ident
	With        bool
	Schema      *Ident
	Version     *Ident
	Cascade     bool
}

func (*CreateExtension) statementNode() {}

func (c *CreateExtension) String() string {
	var b sqlBuilder
	b.kw("CREATE EXTENSION")
	b.kwIf(c.IfNotExists, "IF NOT EXISTS")
	b.kw(c.Name.String())
	b.kwIf(c.With, "WITH")
	if c.Schema != nil {
		b.kw("SCHEMA", c.Schema.String())
	}
	if c.Version != nil {
		b.kw("VERSION", c.Version.String())
	}
	b.kwIf(c.Cascade, "CASCADE")
	return b.String()
}

// CreatePolicy is PostgreSQL's row level security CREATE POLICY.
type CreatePolicy struct {
	Name      Ident
	Table     ObjectName
	Kind      string // PERMISSIVE / RESTRICTIVE
	Command   string // ALL / SELECT / INSERT / UPDATE / DELETE
	To        []Ident
	Using     Expr
	WithCheck Expr
}

func (*CreatePolicy) statementNode() {}

func (c *CreatePolicy) String() string {
	var b sqlBuilder
	b.kw("CREATE POLICY", c.Name.String(), "ON", c.Table.String())
	b.kwIf(c.Kind != "", "AS", c.Kind)
	b.kwIf(c.Command != "", "FOR", c.Command)
	if len(c.To) > 0 {
		b.kw("TO", commaSep(c.To))
	}
	if !isNil(c.Using) {
		b.kw("USING (" + c.Using.String() + ")")
	}
	if !isNil(c.WithCheck) {
		b.kw("WITH CHECK (" + c.WithCheck.String() + ")")
	}
	return b.String()
}

// CreateServer is PostgreSQL's CREATE SERVER for foreign data wrappers.
type CreateServer struct {
	IfNotExists bool
	Name        ObjectName
	Type        *Value
	Version     *Value
	Wrapper     ObjectName
	Options     []SQLOption
}

func (*CreateServer) statementNode() {}

func (c *CreateServer) String() string {
	var b sqlBuilder
	b.kw("CREATE SERVER")
	b.kwIf(c.IfNotExists, "IF NOT EXISTS")
	b.kw(c.Name.String())
	if c.Type != nil {
		b.kw("TYPE", c.Type.String())
	}
	if c.Version != nil {
		b.kw("VERSION", c.Version.String())
	}
	b.kw("FOREIGN DATA WRAPPER", c.Wrapper.String())
	if len(c.Options) > 0 {
		var opts []string
		for _, o := range c.Options {
			opts = append(opts, o.Key.String()+" "+o.Value.String())
		}
		b.kw("OPTIONS (" + strings.Join(opts, ", ") + ")")
	}
	return b.String()
}

// CreateAssertion is CREATE ASSERTION name CHECK (expr).
type CreateAssertion struct {
	Name ObjectName
	Expr Expr
}

func (*CreateAssertion) statementNode() {}

func (c *CreateAssertion) String() string {
	return "CREATE ASSERTION " + c.Name.String() + " CHECK (" + c.Expr.String() + ")"
}

// CreateVirtualTable is SQLite's CREATE VIRTUAL TABLE name USING module(args).
type CreateVirtualTable struct {
	IfNotExists bool
	Name        ObjectName
	Module      Ident
	Args        []Ident
}

func (*CreateVirtualTable) statementNode() {}

func (c *CreateVirtualTable) String() string {
	var b sqlBuilder
	b.kw("CREATE VIRTUAL TABLE")
	b.kwIf(c.IfNotExists, "IF NOT EXISTS")
	b.kw(c.Name.String(), "USING", c.Module.String())
	if len(c.Args) > 0 {
		b.WriteString("(" + commaSep(c.Args) + ")")
	}
	return b.String()
}

// CreateMacro is DuckDB's CREATE [OR REPLACE] [TEMP] MACRO name(params) AS
// expr | AS TABLE query.
type CreateMacro struct {
	OrReplace bool
	Temporary bool
	Name      ObjectName
	Params    []MacroParam
	Expr      Expr
	Table     *Query
}

func (*CreateMacro) statementNode() {}

func (c *CreateMacro) String() string {
	var b sqlBuilder
	b.kw("CREATE")
	b.kwIf(c.OrReplace, "OR REPLACE")
	b.kwIf(c.Temporary, "TEMPORARY")
	b.kw("MACRO", c.Name.String()+"("+commaSep(c.Params)+")", "AS")
	if c.Table != nil {
		b.kw("TABLE", c.Table.String())
	} else {
		b.kw(c.Expr.String())
	}
	return b.String()
}

// MacroParam is a DuckDB macro parameter with an optional default.
type MacroParam struct {
	Name    Ident
	Default Expr
}

func (p MacroParam) String() string {
	if isNil(p.Default) {
		return p.Name.String()
	}
	return p.Name.String() + " := " + p.Default.String()
}

// DropBehavior is CASCADE or RESTRICT.
type DropBehavior string

// Drop behaviors.
const (
	DropCascade  DropBehavior = "CASCADE"
	DropRestrict DropBehavior = "RESTRICT"
)

// Drop is DROP <object type> [IF EXISTS] names [CASCADE|RESTRICT].
type Drop struct {
	ObjectType string // TABLE, VIEW, MATERIALIZED VIEW, INDEX, SCHEMA, ...
	Temporary  bool
	IfExists   bool
	Names      []ObjectName
	Behavior   DropBehavior
	Purge      bool
	Table      *ObjectName // DROP INDEX i ON t
}

func (*Drop) statementNode() {}

func (d *Drop) String() string {
	var b sqlBuilder
	b.kw("DROP")
	b.kwIf(d.Temporary, "TEMPORARY")
	b.kw(d.ObjectType)
	b.kwIf(d.IfExists, "IF EXISTS")
	b.kw(commaSep(d.Names))
	if d.Table != nil {
		b.kw("ON", d.Table.String())
	}
	b.kw(string(d.Behavior))
	b.kwIf(d.Purge, "PURGE")
	return b.String()
}

// FunctionDesc names a function with an optional signature.
type FunctionDesc struct {
	Name   ObjectName
	Params []FunctionParam
	Parens bool
}

func (f FunctionDesc) String() string {
	if f.Parens {
		return f.Name.String() + "(" + commaSep(f.Params) + ")"
	}
	return f.Name.String()
}

// DropFunction is DROP {FUNCTION|PROCEDURE} [IF EXISTS] f(args), ...
type DropFunction struct {
	Procedure bool
	IfExists  bool
	Funcs     []FunctionDesc
	Behavior  DropBehavior
}

func (*DropFunction) statementNode() {}

func (d *DropFunction) String() string {
	var b sqlBuilder
	b.kw("DROP")
	if d.Procedure {
		b.kw("PROCEDURE")
	} else {
		b.kw("FUNCTION")
	}
	b.kwIf(d.IfExists, "IF EXISTS")
	b.kw(commaSep(d.Funcs), string(d.Behavior))
	return b.String()
}

// DropOn is DROP {TRIGGER|POLICY} [IF EXISTS] name [ON table] [behavior].
type DropOn struct {
	ObjectType string
	IfExists   bool
	Name       ObjectName
	Table      *ObjectName
	Behavior   DropBehavior
}

func (*DropOn) statementNode() {}

func (d *DropOn) String() string {
	var b sqlBuilder
	b.kw("DROP", d.ObjectType)
	b.kwIf(d.IfExists, "IF EXISTS")
	b.kw(d.Name.String())
	if d.Table != nil {
		b.kw("ON", d.Table.String())
	}
	b.kw(string(d.Behavior))
	return b.String()
}

// TruncateTarget is one table of a TRUNCATE, with PostgreSQL's ONLY.
type TruncateTarget struct {
	Name ObjectName
	Only bool
}

func (t TruncateTarget) String() string {
	if t.Only {
		return "ONLY " + t.Name.String()
	}
	return t.Name.String()
}

// Truncate is TRUNCATE [TABLE] targets [RESTART|CONTINUE IDENTITY]
// [CASCADE|RESTRICT].
type Truncate struct {
	TableKeyword bool
	IfExists     bool
	Tables       []TruncateTarget
	Partitions   []Expr
	Identity     string
	Behavior     DropBehavior
	OnCluster    *Ident
}

func (*Truncate) statementNode() {}

func (t *Truncate) String() string {
	var b sqlBuilder
	b.kw("TRUNCATE")
	b.kwIf(t.TableKeyword, "TABLE")
	b.kwIf(t.IfExists, "IF EXISTS")
	b.kw(commaSep(t.Tables))
	if len(t.Partitions) > 0 {
		b.kw("PARTITION (" + commaSep(t.Partitions) + ")")
	}
	b.kwIf(t.Identity != "", t.Identity, "IDENTITY")
	if t.OnCluster != nil {
		b.kw("ON CLUSTER", t.OnCluster.String())
	}
	b.kw(string(t.Behavior))
	return b.String()
}
