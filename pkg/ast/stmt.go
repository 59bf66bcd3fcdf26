package ast

import "strings"

// SetAssignment is one `name {=|TO} value[, ...]` of a SET statement.
type SetAssignment struct {
	Name   ObjectName
	Equals bool
	Values []Expr
}

func (a SetAssignment) String() string {
	op := " TO "
	if a.Equals {
		op = " = "
	}
	return a.Name.String() + op + commaSep(a.Values)
}

// Set is SET [SESSION|LOCAL|GLOBAL] name = value [, name = value]. Tuple
// is Snowflake's SET (a, b) = (1, 2).
type Set struct {
	Scope       string
	HiveVar     bool
	Assignments []SetAssignment
	Tuple       bool
}

func (*Set) statementNode() {}

func (s *Set) String() string {
	var b sqlBuilder
	b.kw("SET", s.Scope)
	if s.Tuple {
		names := make([]string, len(s.Assignments))
		vals := make([]string, len(s.Assignments))
		for i, a := range s.Assignments {
			names[i] = a.Name.String()
			vals[i] = commaSep(a.Values)
		}
		b.kw("(" + strings.Join(names, ", ") + ") = (" + strings.Join(vals, ", ") + ")")
		return b.String()
	}
	if s.HiveVar {
		b.kw("HIVEVAR:" + commaSep(s.Assignments))
		return b.String()
	}
	b.kw(commaSep(s.Assignments))
	return b.String()
}

// SetTimeZone is SET [LOCAL] TIME ZONE value.
type SetTimeZone struct {
	Local bool
	Value Expr
}

func (*SetTimeZone) statementNode() {}

func (s *SetTimeZone) String() string {
	var b sqlBuilder
	b.kw("SET")
	b.kwIf(s.Local, "LOCAL")
	b.kw("TIME ZONE", s.Value.String())
	return b.String()
}

// SetNames is MySQL's SET NAMES charset [COLLATE c] or SET NAMES DEFAULT.
type SetNames struct {
	Charset   *Ident
	Collation *Ident
}

func (*SetNames) statementNode() {}

func (s *SetNames) String() string {
	if s.Charset == nil {
		return "SET NAMES DEFAULT"
	}
	out := "SET NAMES " + s.Charset.String()
	if s.Collation != nil {
		out += " COLLATE " + s.Collation.String()
	}
	return out
}

// SetRole is SET [SESSION|LOCAL] ROLE {name | NONE}.
type SetRole struct {
	Scope string
	Role  *Ident
}

func (*SetRole) statementNode() {}

func (s *SetRole) String() string {
	var b sqlBuilder
	b.kw("SET", s.Scope, "ROLE")
	if s.Role == nil {
		b.kw("NONE")
	} else {
		b.kw(s.Role.String())
	}
	return b.String()
}

// TransactionMode is an access mode or isolation level.
type TransactionMode string

// Transaction modes.
const (
	ReadOnly              TransactionMode = "READ ONLY"
	ReadWrite             TransactionMode = "READ WRITE"
	IsolationReadUncommit TransactionMode = "ISOLATION LEVEL READ UNCOMMITTED"
	IsolationReadCommit   TransactionMode = "ISOLATION LEVEL READ COMMITTED"
	IsolationRepeatable   TransactionMode = "ISOLATION LEVEL REPEATABLE READ"
	IsolationSerializable TransactionMode = "ISOLATION LEVEL SERIALIZABLE"
	IsolationSnapshot     TransactionMode = "ISOLATION LEVEL SNAPSHOT"
)

func modeList(modes []TransactionMode) string {
	s := make([]string, len(modes))
	for i, m := range modes {
		s[i] = string(m)
	}
	return strings.Join(s, ", ")
}

// SetTransaction is SET [SESSION CHARACTERISTICS AS] TRANSACTION modes.
type SetTransaction struct {
	Session  bool
	Modes    []TransactionMode
	Snapshot *Value
}

func (*SetTransaction) statementNode() {}

func (s *SetTransaction) String() string {
	var b sqlBuilder
	b.kw("SET")
	b.kwIf(s.Session, "SESSION CHARACTERISTICS AS")
	b.kw("TRANSACTION", modeList(s.Modes))
	if s.Snapshot != nil {
		b.kw("SNAPSHOT", s.Snapshot.String())
	}
	return b.String()
}

// StartTransaction is START TRANSACTION or BEGIN [modifier] [modes].
type StartTransaction struct {
	Begin    bool
	Modifier string // TRANSACTION / WORK / TRAN / DEFERRED / IMMEDIATE / EXCLUSIVE
	Modes    []TransactionMode
}

func (*StartTransaction) statementNode() {}

func (s *StartTransaction) String() string {
	var b sqlBuilder
	if s.Begin {
		b.kw("BEGIN", s.Modifier)
	} else {
		b.kw("START TRANSACTION")
	}
	b.kw(modeList(s.Modes))
	return b.String()
}

// Commit is COMMIT [WORK|TRANSACTION] [AND [NO] CHAIN], or END.
type Commit struct {
	End      bool
	Modifier string
	Chain    bool
}

func (*Commit) statementNode() {}

func (c *Commit) String() string {
	var b sqlBuilder
	if c.End {
		b.kw("END")
	} else {
		b.kw("COMMIT")
	}
	b.kw(c.Modifier)
	b.kwIf(c.Chain, "AND CHAIN")
	return b.String()
}

// Rollback is ROLLBACK [WORK|TRANSACTION] [AND [NO] CHAIN] [TO [SAVEPOINT] name].
type Rollback struct {
	Modifier  string
	Chain     bool
	Savepoint *Ident
}

func (*Rollback) statementNode() {}

func (r *Rollback) String() string {
	var b sqlBuilder
	b.kw("ROLLBACK", r.Modifier)
	b.kwIf(r.Chain, "AND CHAIN")
	if r.Savepoint != nil {
		b.kw("TO SAVEPOINT", r.Savepoint.String())
	}
	return b.String()
}

// Savepoint is SAVEPOINT name.
type Savepoint struct {
	Name Ident
}

func (*Savepoint) statementNode() {}

func (s *Savepoint) String() string { return "SAVEPOINT " + s.Name.String() }

// ReleaseSavepoint is RELEASE [SAVEPOINT] name.
type ReleaseSavepoint struct {
	Name Ident
}

func (*ReleaseSavepoint) statementNode() {}

func (s *ReleaseSavepoint) String() string { return "RELEASE SAVEPOINT " + s.Name.String() }

// Use is USE [DATABASE|SCHEMA|CATALOG|WAREHOUSE|ROLE|...] name, or USE DEFAULT.
type Use struct {
	Kind string
	Name ObjectName
}

func (*Use) statementNode() {}

func (u *Use) String() string {
	var b sqlBuilder
	b.kw("USE", u.Kind)
	if len(u.Name) == 0 {
		b.kw("DEFAULT")
	} else {
		b.kw(u.Name.String())
	}
	return b.String()
}

// UtilityOption is a `NAME [value]` option as used by EXPLAIN (...) and
// COPY ... WITH (...).
type UtilityOption struct {
	Name  string
	Value Expr
}

func (o UtilityOption) String() string {
	if isNil(o.Value) {
		return o.Name
	}
	return o.Name + " " + o.Value.String()
}

// Explain is EXPLAIN / DESCRIBE / DESC applied to a statement.
type Explain struct {
	Keyword   string // EXPLAIN, DESCRIBE, DESC
	Analyze   bool
	Verbose   bool
	QueryPlan bool // SQLite EXPLAIN QUERY PLAN
	Estimate  bool
	Format    string
	Options   []UtilityOption
	Statement Statement
}

func (*Explain) statementNode() {}

func (e *Explain) String() string {
	var b sqlBuilder
	b.kw(e.Keyword)
	b.kwIf(e.QueryPlan, "QUERY PLAN")
	if len(e.Options) > 0 {
		b.kw("(" + commaSep(e.Options) + ")")
	}
	b.kwIf(e.Analyze, "ANALYZE")
	b.kwIf(e.Verbose, "VERBOSE")
	b.kwIf(e.Estimate, "ESTIMATE")
	b.kwIf(e.Format != "", "FORMAT", e.Format)
	b.kw(e.Statement.String())
	return b.String()
}

// ExplainTable is DESCRIBE [TABLE] name.
type ExplainTable struct {
	Keyword      string
	Extended     string // EXTENDED / FORMATTED
	TableKeyword bool
	Name         ObjectName
}

func (*ExplainTable) statementNode() {}

func (e *ExplainTable) String() string {
	var b sqlBuilder
	b.kw(e.Keyword, e.Extended)
	b.kwIf(e.TableKeyword, "TABLE")
	b.kw(e.Name.String())
	return b.String()
}

// Analyze is ANALYZE [TABLE] t [PARTITION (...)] [COMPUTE STATISTICS
// [NOSCAN] [FOR COLUMNS ...]] or PostgreSQL's ANALYZE [VERBOSE] [t [(cols)]].
type Analyze struct {
	TableKeyword bool
	Verbose      bool
	Name         *ObjectName
	Columns      []Ident
	Partitions   []Expr
	Compute      bool
	NoScan       bool
	ForColumns   bool
}

func (*Analyze) statementNode() {}

func (a *Analyze) String() string {
	var b sqlBuilder
	b.kw("ANALYZE")
	b.kwIf(a.Verbose, "VERBOSE")
	b.kwIf(a.TableKeyword, "TABLE")
	if a.Name != nil {
		b.kw(a.Name.String())
	}
	if len(a.Partitions) > 0 {
		b.kw("PARTITION (" + commaSep(a.Partitions) + ")")
	}
	b.kwIf(a.Compute, "COMPUTE STATISTICS")
	b.kwIf(a.NoScan, "NOSCAN")
	switch {
	case a.ForColumns:
		b.kw("FOR COLUMNS")
		if len(a.Columns) > 0 {
			b.kw(commaSep(a.Columns))
		}
	case len(a.Columns) > 0:
		b.kw("(" + commaSep(a.Columns) + ")")
	}
	return b.String()
}

// Privilege is one privilege of a GRANT/REVOKE, with an optional column
// list.
type Privilege struct {
	Name    string
	Columns []Ident
}

func (p Privilege) String() string {
	if len(p.Columns) > 0 {
		return p.Name + " (" + commaSep(p.Columns) + ")"
	}
	return p.Name
}

// Privileges is ALL [PRIVILEGES] or a privilege list.
type Privileges struct {
	All           bool
	WithKeyword   bool
	Actions       []Privilege
}

func (p Privileges) String() string {
	if p.All {
		return "ALL" + boolStr(p.WithKeyword, " PRIVILEGES")
	}
	return commaSep(p.Actions)
}

// GrantObjects is the ON part of GRANT/REVOKE.
type GrantObjects struct {
	Kind  string // "", TABLE, SCHEMA, SEQUENCE, DATABASE, ALL TABLES IN SCHEMA, ...
	Names []ObjectName
}

func (g *GrantObjects) String() string {
	if g == nil {
		return ""
	}
	var b sqlBuilder
	b.kw("ON", g.Kind, commaSep(g.Names))
	return b.String()
}

// Grantee is a role, user, group or PUBLIC.
type Grantee struct {
	Kind string // ROLE / USER / GROUP / ""
	Name ObjectName
}

func (g Grantee) String() string {
	if g.Kind != "" {
		return g.Kind + " " + g.Name.String()
	}
	return g.Name.String()
}

// Grant is GRANT privileges ON objects TO grantees [WITH GRANT OPTION].
type Grant struct {
	Privileges      Privileges
	Objects         *GrantObjects
	Grantees        []Grantee
	WithGrantOption bool
	GrantedBy       *Ident
}

func (*Grant) statementNode() {}

func (g *Grant) String() string {
	var b sqlBuilder
	b.kw("GRANT", g.Privileges.String(), g.Objects.String(), "TO", commaSep(g.Grantees))
	b.kwIf(g.WithGrantOption, "WITH GRANT OPTION")
	if g.GrantedBy != nil {
		b.kw("GRANTED BY", g.GrantedBy.String())
	}
	return b.String()
}

// Revoke is REVOKE [GRANT OPTION FOR] privileges ON objects FROM grantees.
type Revoke struct {
	GrantOptionFor bool
	Privileges     Privileges
	Objects        *GrantObjects
	Grantees       []Grantee
	GrantedBy      *Ident
	Behavior       DropBehavior
}

func (*Revoke) statementNode() {}

func (r *Revoke) String() string {
	var b sqlBuilder
	b.kw("REVOKE")
	b.kwIf(r.GrantOptionFor, "GRANT OPTION FOR")
	b.kw(r.Privileges.String(), r.Objects.String(), "FROM", commaSep(r.Grantees))
	if r.GrantedBy != nil {
		b.kw("GRANTED BY", r.GrantedBy.String())
	}
	b.kw(string(r.Behavior))
	return b.String()
}

// Deny is MSSQL's DENY privileges ON objects TO grantees [CASCADE].
type Deny struct {
	Privileges Privileges
	Objects    *GrantObjects
	Grantees   []Grantee
	Cascade    bool
}

func (*Deny) statementNode() {}

func (d *Deny) String() string {
	var b sqlBuilder
	b.kw("DENY", d.Privileges.String(), d.Objects.String(), "TO", commaSep(d.Grantees))
	b.kwIf(d.Cascade, "CASCADE")
	return b.String()
}

// CopyTarget is STDIN, STDOUT, 'file' or PROGRAM 'cmd'.
type CopyTarget struct {
	Kind string // STDIN / STDOUT / FILE / PROGRAM
	Path *Value
}

func (t CopyTarget) String() string {
	switch t.Kind {
	case "FILE":
		return t.Path.String()
	case "PROGRAM":
		return "PROGRAM " + t.Path.String()
	}
	return t.Kind
}

// Copy is PostgreSQL COPY {table [(cols)] | (query)} {FROM|TO} target
// [[WITH] (options)] plus legacy unparenthesized options.
type Copy struct {
	Table         *ObjectName
	Columns       []Ident
	Query         *Query
	To            bool
	Target        CopyTarget
	With          bool
	Options       []UtilityOption
	LegacyOptions []UtilityOption
}

func (*Copy) statementNode() {}

func (c *Copy) String() string {
	var b sqlBuilder
	b.kw("COPY")
	if c.Query != nil {
		b.kw("(" + c.Query.String() + ")")
	} else {
		b.kw(c.Table.String())
		if len(c.Columns) > 0 {
			b.kw("(" + commaSep(c.Columns) + ")")
		}
	}
	if c.To {
		b.kw("TO")
	} else {
		b.kw("FROM")
	}
	b.kw(c.Target.String())
	if len(c.Options) > 0 {
		b.kwIf(c.With, "WITH")
		b.kw("(" + commaSep(c.Options) + ")")
	}
	if len(c.LegacyOptions) > 0 {
		b.kw(spaceSep(c.LegacyOptions))
	}
	return b.String()
}

// CopyInto is Snowflake's COPY INTO target FROM source [options]. Stage
// locations are kept verbatim (@stage/path).
type CopyInto struct {
	Into        string
	Columns     []Ident
	FromStage   string
	FromQuery   *Query
	Files       []Value
	Pattern     *Value
	FileFormat  []SQLOption
	Options     []SQLOption
	Validation  *Ident
}

func (*CopyInto) statementNode() {}

func (c *CopyInto) String() string {
	var b sqlBuilder
	b.kw("COPY INTO", c.Into)
	if len(c.Columns) > 0 {
		b.kw("(" + commaSep(c.Columns) + ")")
	}
	if c.FromQuery != nil {
		b.kw("FROM (" + c.FromQuery.String() + ")")
	} else {
		b.kw("FROM", c.FromStage)
	}
	if len(c.Files) > 0 {
		b.kw("FILES = (" + commaSep(c.Files) + ")")
	}
	if c.Pattern != nil {
		b.kw("PATTERN =", c.Pattern.String())
	}
	if len(c.FileFormat) > 0 {
		b.kw("FILE_FORMAT = (" + spaceSep(c.FileFormat) + ")")
	}
	b.kw(spaceSep(c.Options))
	if c.Validation != nil {
		b.kw("VALIDATION_MODE =", c.Validation.String())
	}
	return b.String()
}

// Declaration is one declared name of DECLARE: a variable, cursor or
// condition.
type Declaration struct {
	Names     []Ident
	Kind      string // "", CURSOR, EXCEPTION, CONDITION, RESULTSET
	Modifiers []string
	DataType  DataType
	AssignOp  string // DEFAULT / := / =
	Default   Expr
	For       *Query
	ForValue  *Value // DECLARE c CONDITION FOR SQLSTATE 'x'
}

func (d Declaration) String() string {
	var b sqlBuilder
	b.kw(commaSep(d.Names))
	b.kw(strings.Join(d.Modifiers, " "))
	b.kw(d.Kind)
	b.node("", d.DataType)
	if !isNil(d.Default) {
		b.kw(d.AssignOp, d.Default.String())
	}
	if d.For != nil {
		b.kw("FOR", d.For.String())
	}
	if d.ForValue != nil {
		b.kw("FOR SQLSTATE", d.ForValue.String())
	}
	return b.String()
}

// Declare is DECLARE declaration [, ...].
type Declare struct {
	Items []Declaration
}

func (*Declare) statementNode() {}

func (d *Declare) String() string {
	if len(d.Items) == 1 {
		return "DECLARE " + d.Items[0].String()
	}
	return "DECLARE " + commaSep(d.Items)
}

// FetchCursor is FETCH [direction] [FROM|IN] cursor [INTO target], or
// MOVE when Move is set.
type FetchCursor struct {
	Move      bool
	Direction string
	Count     Expr
	FromIn    string
	Name      Ident
	Into      *ObjectName
}

func (*FetchCursor) statementNode() {}

func (f *FetchCursor) String() string {
	var b sqlBuilder
	if f.Move {
		b.kw("MOVE")
	} else {
		b.kw("FETCH")
	}
	b.kw(f.Direction)
	b.node("", f.Count)
	b.kw(f.FromIn, f.Name.String())
	if f.Into != nil {
		b.kw("INTO", f.Into.String())
	}
	return b.String()
}

// Open is OPEN cursor.
type Open struct {
	Name Ident
}

func (*Open) statementNode() {}

func (o *Open) String() string { return "OPEN " + o.Name.String() }

// Close is CLOSE cursor | CLOSE ALL.
type Close struct {
	Name *Ident
}

func (*Close) statementNode() {}

func (c *Close) String() string {
	if c.Name == nil {
		return "CLOSE ALL"
	}
	return "CLOSE " + c.Name.String()
}

// Prepare is PREPARE name [(types)] AS statement.
type Prepare struct {
	Name      Ident
	DataTypes []DataType
	Statement Statement
}

func (*Prepare) statementNode() {}

func (p *Prepare) String() string {
	s := "PREPARE " + p.Name.String()
	if len(p.DataTypes) > 0 {
		s += " (" + commaSep(p.DataTypes) + ")"
	}
	return s + " AS " + p.Statement.String()
}

// Execute is EXECUTE name [(params)] [USING ...], EXECUTE IMMEDIATE expr
// or MSSQL EXEC proc params.
type Execute struct {
	Keyword   string // EXECUTE / EXEC
	Immediate bool
	Name      *ObjectName
	Query     Expr
	Params    []Expr
	Parens    bool
	Into      []Ident
	Using     []ExprWithAlias
}

func (*Execute) statementNode() {}

func (e *Execute) String() string {
	var b sqlBuilder
	b.kw(e.Keyword)
	b.kwIf(e.Immediate, "IMMEDIATE")
	if e.Name != nil {
		b.kw(e.Name.String())
	}
	b.node("", e.Query)
	if e.Parens {
		b.WriteString("(" + commaSep(e.Params) + ")")
	} else if len(e.Params) > 0 {
		b.kw(commaSep(e.Params))
	}
	if len(e.Into) > 0 {
		b.kw("INTO", commaSep(e.Into))
	}
	if len(e.Using) > 0 {
		b.kw("USING", commaSep(e.Using))
	}
	return b.String()
}

// Deallocate is DEALLOCATE [PREPARE] name.
type Deallocate struct {
	Prepare bool
	Name    Ident
}

func (*Deallocate) statementNode() {}

func (d *Deallocate) String() string {
	return "DEALLOCATE " + boolStr(d.Prepare, "PREPARE ") + d.Name.String()
}

// Comment is COMMENT [IF EXISTS] ON object_type name IS {'text' | NULL}.
type Comment struct {
	IfExists   bool
	ObjectType string
	Name       ObjectName
	Text       *Value
}

func (*Comment) statementNode() {}

func (c *Comment) String() string {
	var b sqlBuilder
	b.kw("COMMENT")
	b.kwIf(c.IfExists, "IF EXISTS")
	b.kw("ON", c.ObjectType, c.Name.String(), "IS")
	if c.Text == nil {
		b.kw("NULL")
	} else {
		b.kw(c.Text.String())
	}
	return b.String()
}

// ShowFilter is the LIKE / ILIKE / WHERE filter of SHOW.
type ShowFilter struct {
	Like      *Value
	ILike     *Value
	Where     Expr
	NoKeyword *Value // Hive SHOW TABLES 'pattern'
}

func (f *ShowFilter) String() string {
	if f == nil {
		return ""
	}
	switch {
	case f.Like != nil:
		return "LIKE " + f.Like.String()
	case f.ILike != nil:
		return "ILIKE " + f.ILike.String()
	case f.NoKeyword != nil:
		return f.NoKeyword.String()
	}
	return "WHERE " + f.Where.String()
}

// Show is the SHOW family: SHOW [modifiers] object-kind [name] [FROM|IN
// scope] [filter]. Words holds the modifiers and kind as written, e.g.
// ["FULL", "COLUMNS"] or ["CREATE", "TABLE"].
type Show struct {
	Words  []string
	Name   *ObjectName
	FromIn string
	From   *ObjectName
	Filter *ShowFilter
	Limit  Expr
}

func (*Show) statementNode() {}

func (s *Show) String() string {
	var b sqlBuilder
	b.kw("SHOW", strings.Join(s.Words, " "))
	if s.Name != nil {
		b.kw(s.Name.String())
	}
	if s.From != nil {
		b.kw(s.FromIn, s.From.String())
	}
	b.kw(s.Filter.String())
	b.node("LIMIT", s.Limit)
	return b.String()
}

// ShowVariable is PostgreSQL's SHOW name / SHOW ALL.
type ShowVariable struct {
	Names []Ident
}

func (*ShowVariable) statementNode() {}

func (s *ShowVariable) String() string { return "SHOW " + spaceSep(s.Names) }

// Call is CALL procedure(args).
type Call struct {
	Function *Function
}

func (*Call) statementNode() {}

func (c *Call) String() string { return "CALL " + c.Function.String() }

// Kill is KILL [CONNECTION|QUERY|MUTATION] id.
type Kill struct {
	Modifier string
	ID       Expr
}

func (*Kill) statementNode() {}

func (k *Kill) String() string {
	var b sqlBuilder
	b.kw("KILL", k.Modifier, k.ID.String())
	return b.String()
}

// Flush is MySQL's FLUSH [NO_WRITE_TO_BINLOG|LOCAL] what [tables] [WITH
// READ LOCK | FOR EXPORT].
type Flush struct {
	Location string
	Object   string
	Tables   []ObjectName
	ReadLock bool
	Export   bool
}

func (*Flush) statementNode() {}

func (f *Flush) String() string {
	var b sqlBuilder
	b.kw("FLUSH", f.Location, f.Object)
	if len(f.Tables) > 0 {
		b.kw(commaSep(f.Tables))
	}
	b.kwIf(f.ReadLock, "WITH READ LOCK")
	b.kwIf(f.Export, "FOR EXPORT")
	return b.String()
}

// Discard is DISCARD {ALL|PLANS|SEQUENCES|TEMP}.
type Discard struct {
	Object string
}

func (*Discard) statementNode() {}

func (d *Discard) String() string { return "DISCARD " + d.Object }

// Listen is LISTEN channel.
type Listen struct {
	Channel Ident
}

func (*Listen) statementNode() {}

func (l *Listen) String() string { return "LISTEN " + l.Channel.String() }

// Unlisten is UNLISTEN {channel | *}.
type Unlisten struct {
	Channel *Ident
}

func (*Unlisten) statementNode() {}

func (u *Unlisten) String() string {
	if u.Channel == nil {
		return "UNLISTEN *"
	}
	return "UNLISTEN " + u.Channel.String()
}

// Notify is NOTIFY channel [, 'payload'].
type Notify struct {
	Channel Ident
	Payload *Value
}

func (*Notify) statementNode() {}

func (n *Notify) String() string {
	if n.Payload != nil {
		return "NOTIFY " + n.Channel.String() + ", " + n.Payload.String()
	}
	return "NOTIFY " + n.Channel.String()
}

// LoadData is MySQL LOAD DATA [LOCAL] INFILE or Hive LOAD DATA [LOCAL]
// INPATH ... [OVERWRITE] INTO TABLE t [PARTITION (...)].
type LoadData struct {
	Local       bool
	PathKeyword string // INFILE / INPATH
	Path        Value
	Conflict    string // MySQL REPLACE / IGNORE
	Overwrite   bool
	Table       ObjectName
	Partitioned []Expr
	InputFormat *Value
	SerDe       *Value
}

func (*LoadData) statementNode() {}

func (l *LoadData) String() string {
	var b sqlBuilder
	b.kw("LOAD DATA")
	b.kwIf(l.Local, "LOCAL")
	b.kw(l.PathKeyword, l.Path.String(), l.Conflict)
	b.kwIf(l.Overwrite, "OVERWRITE")
	b.kw("INTO TABLE", l.Table.String())
	if len(l.Partitioned) > 0 {
		b.kw("PARTITION (" + commaSep(l.Partitioned) + ")")
	}
	if l.InputFormat != nil {
		b.kw("INPUTFORMAT", l.InputFormat.String(), "SERDE", l.SerDe.String())
	}
	return b.String()
}

// Do is PostgreSQL's DO [LANGUAGE l] 'body'.
type Do struct {
	Language *Ident
	Body     Value
}

func (*Do) statementNode() {}

func (d *Do) String() string {
	if d.Language != nil {
		return "DO LANGUAGE " + d.Language.String() + " " + d.Body.String()
	}
	return "DO " + d.Body.String()
}

// Assert is ASSERT condition [AS message].
type Assert struct {
	Condition Expr
	Message   Expr
}

func (*Assert) statementNode() {}

func (a *Assert) String() string {
	var b sqlBuilder
	b.kw("ASSERT", a.Condition.String())
	b.node("AS", a.Message)
	return b.String()
}

// Vacuum is VACUUM [(opts) | FULL FREEZE VERBOSE ANALYZE] [tables], or
// Redshift's VACUUM [FULL|SORT ONLY|DELETE ONLY|REINDEX] [t] [TO n PERCENT].
type Vacuum struct {
	Options   []string
	Parens    bool
	Tables    []ObjectName
	Columns   []Ident
	Threshold Expr
}

func (*Vacuum) statementNode() {}

func (v *Vacuum) String() string {
	var b sqlBuilder
	b.kw("VACUUM")
	if v.Parens {
		b.kw("(" + strings.Join(v.Options, ", ") + ")")
	} else {
		b.kw(strings.Join(v.Options, " "))
	}
	if len(v.Tables) > 0 {
		b.kw(commaSep(v.Tables))
	}
	if len(v.Columns) > 0 {
		b.WriteString("(" + commaSep(v.Columns) + ")")
	}
	if !isNil(v.Threshold) {
		b.kw("TO", v.Threshold.String(), "PERCENT")
	}
	return b.String()
}

// RaisError is MSSQL's RAISERROR(msg, severity, state [, args]) [WITH opts].
type RaisError struct {
	Message  Expr
	Severity Expr
	State    Expr
	Args     []Expr
	Options  []string
}

func (*RaisError) statementNode() {}

func (r *RaisError) String() string {
	args := []Expr{r.Message, r.Severity, r.State}
	args = append(args, r.Args...)
	s := "RAISERROR(" + commaSep(args) + ")"
	if len(r.Options) > 0 {
		s += " WITH " + strings.Join(r.Options, ", ")
	}
	return s
}

// Print is MSSQL's PRINT expr.
type Print struct {
	Message Expr
}

func (*Print) statementNode() {}

func (p *Print) String() string { return "PRINT " + p.Message.String() }

// Return is RETURN [expr].
type Return struct {
	Value Expr
}

func (*Return) statementNode() {}

func (r *Return) String() string {
	if isNil(r.Value) {
		return "RETURN"
	}
	return "RETURN " + r.Value.String()
}

// Pragma is SQLite's PRAGMA name [= value | (value)].
type Pragma struct {
	Name   ObjectName
	Value  Expr
	Equals bool
}

func (*Pragma) statementNode() {}

func (p *Pragma) String() string {
	s := "PRAGMA " + p.Name.String()
	if isNil(p.Value) {
		return s
	}
	if p.Equals {
		return s + " = " + p.Value.String()
	}
	return s + "(" + p.Value.String() + ")"
}

// AttachDatabase is ATTACH [DATABASE] [IF NOT EXISTS] expr [AS alias] [(options)].
type AttachDatabase struct {
	DatabaseKeyword bool
	IfNotExists     bool
	Path            Expr
	Alias           *Ident
	Options         []UtilityOption
}

func (*AttachDatabase) statementNode() {}

func (a *AttachDatabase) String() string {
	var b sqlBuilder
	b.kw("ATTACH")
	b.kwIf(a.DatabaseKeyword, "DATABASE")
	b.kwIf(a.IfNotExists, "IF NOT EXISTS")
	b.kw(a.Path.String())
	if a.Alias != nil {
		b.kw("AS", a.Alias.String())
	}
	if len(a.Options) > 0 {
		b.kw("(" + commaSep(a.Options) + ")")
	}
	return b.String()
}

// Detach is DETACH [DATABASE] [IF EXISTS] name.
type Detach struct {
	DatabaseKeyword bool
	IfExists        bool
	Name            Ident
}

func (*Detach) statementNode() {}

func (d *Detach) String() string {
	var b sqlBuilder
	b.kw("DETACH")
	b.kwIf(d.DatabaseKeyword, "DATABASE")
	b.kwIf(d.IfExists, "IF EXISTS")
	b.kw(d.Name.String())
	return b.String()
}

// Cache is Spark's CACHE [LAZY] TABLE t [OPTIONS (...)] [[AS] query].
type Cache struct {
	Lazy    bool
	Name    ObjectName
	Options []SQLOption
	AsKw    bool
	Query   *Query
}

func (*Cache) statementNode() {}

func (c *Cache) String() string {
	var b sqlBuilder
	b.kw("CACHE")
	b.kwIf(c.Lazy, "LAZY")
	b.kw("TABLE", c.Name.String())
	if len(c.Options) > 0 {
		b.kw("OPTIONS(" + commaSep(c.Options) + ")")
	}
	if c.Query != nil {
		b.kwIf(c.AsKw, "AS")
		b.kw(c.Query.String())
	}
	return b.String()
}

// Uncache is UNCACHE TABLE [IF EXISTS] t.
type Uncache struct {
	IfExists bool
	Name     ObjectName
}

func (*Uncache) statementNode() {}

func (u *Uncache) String() string {
	return "UNCACHE TABLE " + boolStr(u.IfExists, "IF EXISTS ") + u.Name.String()
}

// Lock is PostgreSQL's LOCK [TABLE] [ONLY] t [, ...] [IN mode MODE] [NOWAIT].
type Lock struct {
	TableKeyword bool
	Only         bool
	Tables       []ObjectName
	Mode         string
	NoWait       bool
}

func (*Lock) statementNode() {}

func (l *Lock) String() string {
	var b sqlBuilder
	b.kw("LOCK")
	b.kwIf(l.TableKeyword, "TABLE")
	b.kwIf(l.Only, "ONLY")
	b.kw(commaSep(l.Tables))
	b.kwIf(l.Mode != "", "IN", l.Mode, "MODE")
	b.kwIf(l.NoWait, "NOWAIT")
	return b.String()
}

// LockTable is one table of MySQL's LOCK TABLES.
type LockTable struct {
	Name  ObjectName
	Alias *Ident
	Mode  string // READ, READ LOCAL, WRITE, LOW_PRIORITY WRITE
}

func (t LockTable) String() string {
	var b sqlBuilder
	b.kw(t.Name.String())
	if t.Alias != nil {
		b.kw("AS", t.Alias.String())
	}
	b.kw(t.Mode)
	return b.String()
}

// LockTables is MySQL's LOCK TABLES t [AS a] mode, ...
type LockTables struct {
	Tables []LockTable
}

func (*LockTables) statementNode() {}

func (l *LockTables) String() string { return "LOCK TABLES " + commaSep(l.Tables) }

// UnlockTables is MySQL's UNLOCK TABLES.
type UnlockTables struct{}

func (*UnlockTables) statementNode() {}

func (*UnlockTables) String() string { return "UNLOCK TABLES" }

// Optimize is ClickHouse's OPTIMIZE TABLE t [ON CLUSTER c] [PARTITION p]
// [FINAL] [DEDUPLICATE [BY expr]].
type Optimize struct {
	Name          ObjectName
	OnCluster     *Ident
	Partition     Expr
	Final         bool
	Deduplicate   bool
	DeduplicateBy Expr
}

func (*Optimize) statementNode() {}

func (o *Optimize) String() string {
	var b sqlBuilder
	b.kw("OPTIMIZE TABLE", o.Name.String())
	if o.OnCluster != nil {
		b.kw("ON CLUSTER", o.OnCluster.String())
	}
	b.node("PARTITION", o.Partition)
	b.kwIf(o.Final, "FINAL")
	b.kwIf(o.Deduplicate, "DEDUPLICATE")
	b.node("BY", o.DeduplicateBy)
	return b.String()
}

// Install is DuckDB's INSTALL extension.
type Install struct {
	Name Ident
}

func (*Install) statementNode() {}

func (i *Install) String() string { return "INSTALL " + i.Name.String() }

// Load is DuckDB's LOAD extension.
type Load struct {
	Name Ident
}

func (*Load) statementNode() {}

func (l *Load) String() string { return "LOAD " + l.Name.String() }

// Msck is Hive's MSCK [REPAIR] TABLE t [{ADD|DROP|SYNC} PARTITIONS].
type Msck struct {
	Repair          bool
	Name            ObjectName
	PartitionAction string
}

func (*Msck) statementNode() {}

func (m *Msck) String() string {
	var b sqlBuilder
	b.kw("MSCK")
	b.kwIf(m.Repair, "REPAIR")
	b.kw("TABLE", m.Name.String())
	b.kwIf(m.PartitionAction != "", m.PartitionAction, "PARTITIONS")
	return b.String()
}

// Unload is Redshift's UNLOAD ('query' | (query)) TO 'location' options.
type Unload struct {
	Query     *Query
	QueryText *Value
	To        Value
	Options   []UtilityOption
}

func (*Unload) statementNode() {}

func (u *Unload) String() string {
	var b sqlBuilder
	if u.Query != nil {
		b.kw("UNLOAD(" + u.Query.String() + ")")
	} else {
		b.kw("UNLOAD(" + u.QueryText.String() + ")")
	}
	b.kw("TO", u.To.String())
	b.kw(spaceSep(u.Options))
	return b.String()
}

// Reset is PostgreSQL's RESET {name | ALL}.
type Reset struct {
	Name *ObjectName
}

func (*Reset) statementNode() {}

func (r *Reset) String() string {
	if r.Name == nil {
		return "RESET ALL"
	}
	return "RESET " + r.Name.String()
}
