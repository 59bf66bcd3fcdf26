package ast

import "strings"

// statementList renders statements each terminated by a semicolon.
func statementList(stmts []Statement) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String() + ";"
	}
	return strings.Join(parts, " ")
}

func labelPrefix(l *Ident) string {
	if l == nil {
		return ""
	}
	return l.String() + ":"
}

func labelSuffix(l *Ident) string {
	if l == nil {
		return ""
	}
	return l.String()
}

// ExceptionWhen is WHEN cond [OR cond] THEN statements inside an
// EXCEPTION section.
type ExceptionWhen struct {
	Conditions []Ident
	Statements []Statement
}

func (e ExceptionWhen) String() string {
	var b sqlBuilder
	b.kw("WHEN", join(e.Conditions, " OR "), "THEN", statementList(e.Statements))
	return b.String()
}

// BeginEnd is a [label:] BEGIN ... [EXCEPTION ...] END [label] block, or
// MSSQL's BEGIN TRY / BEGIN CATCH when Kind is set.
type BeginEnd struct {
	Label      *Ident
	Kind       string // "", TRY, CATCH
	BeginToken AttachedToken
	Statements []Statement
	Exceptions []ExceptionWhen
	HasExcept  bool
	EndToken   AttachedToken
	EndLabel   bool
}

func (*BeginEnd) statementNode() {}

func (b *BeginEnd) String() string {
	var s sqlBuilder
	s.kw(labelPrefix(b.Label), "BEGIN", b.Kind, statementList(b.Statements))
	if b.HasExcept {
		s.kw("EXCEPTION")
		for _, e := range b.Exceptions {
			s.kw(e.String())
		}
	}
	s.kw("END", b.Kind)
	if b.EndLabel {
		s.kw(labelSuffix(b.Label))
	}
	return s.String()
}

// ConditionalBlock is one arm of IF or CASE: the keyword (IF, ELSEIF,
// ELSIF, WHEN, ELSE), its condition, and its statements.
type ConditionalBlock struct {
	Keyword    string
	Token      AttachedToken
	Condition  Expr
	Then       bool
	Statements []Statement
	// Single holds the MSSQL unterminated single-statement form.
	Single bool
}

func (c ConditionalBlock) String() string {
	var b sqlBuilder
	b.kw(c.Keyword)
	b.node("", c.Condition)
	b.kwIf(c.Then, "THEN")
	if c.Single && len(c.Statements) == 1 {
		b.kw(c.Statements[0].String())
	} else {
		b.kw(statementList(c.Statements))
	}
	return b.String()
}

// If is IF cond THEN ... [ELSEIF ...] [ELSE ...] END IF, or MSSQL's
// IF cond stmt [ELSE stmt] when EndIf is false.
type If struct {
	Blocks   []ConditionalBlock
	Else     *ConditionalBlock
	EndIf    bool
	EndToken AttachedToken
}

func (*If) statementNode() {}

func (i *If) String() string {
	var b sqlBuilder
	for _, blk := range i.Blocks {
		b.kw(blk.String())
	}
	if i.Else != nil {
		b.kw(i.Else.String())
	}
	b.kwIf(i.EndIf, "END IF")
	return b.String()
}

// CaseStatement is the procedural CASE [operand] WHEN ... THEN ... [ELSE
// ...] END CASE.
type CaseStatement struct {
	CaseToken AttachedToken
	Operand   Expr
	Whens     []ConditionalBlock
	Else      *ConditionalBlock
	EndCase   bool
	EndToken  AttachedToken
}

func (*CaseStatement) statementNode() {}

func (c *CaseStatement) String() string {
	var b sqlBuilder
	b.kw("CASE")
	b.node("", c.Operand)
	for _, w := range c.Whens {
		b.kw(w.String())
	}
	if c.Else != nil {
		b.kw(c.Else.String())
	}
	b.kw("END")
	b.kwIf(c.EndCase, "CASE")
	return b.String()
}

// LoopStyle selects how a loop body is delimited.
type LoopStyle int

// Loop body delimiters.
const (
	LoopDo     LoopStyle = iota // DO ... END WHILE|FOR (MySQL, BigQuery)
	LoopLoop                    // LOOP ... END LOOP (PL/pgSQL)
	LoopSingle                  // MSSQL WHILE cond statement
)

// While is [label:] WHILE cond {DO ... END WHILE | LOOP ... END LOOP} [label].
type While struct {
	Label     *Ident
	Condition Expr
	Style     LoopStyle
	Body      []Statement
	EndToken  AttachedToken
}

func (*While) statementNode() {}

func (w *While) String() string {
	var b sqlBuilder
	b.kw(labelPrefix(w.Label), "WHILE", w.Condition.String())
	switch w.Style {
	case LoopSingle:
		b.kw(w.Body[0].String())
	case LoopLoop:
		b.kw("LOOP", statementList(w.Body), "END LOOP", labelSuffix(w.Label))
	default:
		b.kw("DO", statementList(w.Body), "END WHILE", labelSuffix(w.Label))
	}
	return b.String()
}

// Loop is [label:] LOOP ... END LOOP [label].
type Loop struct {
	Label    *Ident
	Body     []Statement
	EndToken AttachedToken
}

func (*Loop) statementNode() {}

func (l *Loop) String() string {
	var b sqlBuilder
	b.kw(labelPrefix(l.Label), "LOOP", statementList(l.Body), "END LOOP", labelSuffix(l.Label))
	return b.String()
}

// Repeat is [label:] REPEAT ... UNTIL cond END REPEAT [label].
type Repeat struct {
	Label    *Ident
	Body     []Statement
	Until    Expr
	EndToken AttachedToken
}

func (*Repeat) statementNode() {}

func (r *Repeat) String() string {
	var b sqlBuilder
	b.kw(labelPrefix(r.Label), "REPEAT", statementList(r.Body), "UNTIL", r.Until.String(), "END REPEAT", labelSuffix(r.Label))
	return b.String()
}

// For is PL/pgSQL FOR v IN [REVERSE] lo..hi [BY step] LOOP ... END LOOP,
// FOR v IN query LOOP ..., or BigQuery's FOR v IN (query) DO ... END FOR.
type For struct {
	Label    *Ident
	Var      Ident
	Reverse  bool
	Low      Expr
	High     Expr
	Step     Expr
	Query    *Query
	Style    LoopStyle
	Body     []Statement
	EndToken AttachedToken
}

func (*For) statementNode() {}

func (f *For) String() string {
	var b sqlBuilder
	b.kw(labelPrefix(f.Label), "FOR", f.Var.String(), "IN")
	b.kwIf(f.Reverse, "REVERSE")
	if f.Query != nil {
		if f.Style == LoopDo {
			b.kw("(" + f.Query.String() + ")")
		} else {
			b.kw(f.Query.String())
		}
	} else {
		b.kw(f.Low.String() + ".." + f.High.String())
		b.node("BY", f.Step)
	}
	if f.Style == LoopDo {
		b.kw("DO", statementList(f.Body), "END FOR", labelSuffix(f.Label))
	} else {
		b.kw("LOOP", statementList(f.Body), "END LOOP", labelSuffix(f.Label))
	}
	return b.String()
}

// Foreach is PL/pgSQL FOREACH v [SLICE n] IN ARRAY expr LOOP ... END LOOP.
type Foreach struct {
	Label    *Ident
	Var      Ident
	Slice    Expr
	Array    Expr
	Body     []Statement
	EndToken AttachedToken
}

func (*Foreach) statementNode() {}

func (f *Foreach) String() string {
	var b sqlBuilder
	b.kw(labelPrefix(f.Label), "FOREACH", f.Var.String())
	b.node("SLICE", f.Slice)
	b.kw("IN ARRAY", f.Array.String(), "LOOP", statementList(f.Body), "END LOOP", labelSuffix(f.Label))
	return b.String()
}

// LoopControl is LEAVE / ITERATE / EXIT / CONTINUE [label] [WHEN cond].
type LoopControl struct {
	Keyword string
	Label   *Ident
	When    Expr
}

func (*LoopControl) statementNode() {}

func (l *LoopControl) String() string {
	var b sqlBuilder
	b.kw(l.Keyword, labelSuffix(l.Label))
	b.node("WHEN", l.When)
	return b.String()
}

// NullStatement is the PL/SQL no-op NULL.
type NullStatement struct{}

func (*NullStatement) statementNode() {}

func (*NullStatement) String() string { return "NULL" }

// Perform is PL/pgSQL's PERFORM query, stored without its leading SELECT.
type Perform struct {
	Query *Query
}

func (*Perform) statementNode() {}

func (p *Perform) String() string {
	s := p.Query.String()
	return "PERFORM " + strings.TrimPrefix(s, "SELECT ")
}

// Raise is PL/pgSQL RAISE [level] ['format' [, args]] [USING opt = e, ...]
// or BigQuery RAISE [USING MESSAGE = e].
type Raise struct {
	Level   string
	Message Expr
	Args    []Expr
	Using   []SQLOption
}

func (*Raise) statementNode() {}

func (r *Raise) String() string {
	var b sqlBuilder
	b.kw("RAISE", r.Level)
	if !isNil(r.Message) {
		m := r.Message.String()
		if len(r.Args) > 0 {
			m += ", " + commaSep(r.Args)
		}
		b.kw(m)
	}
	if len(r.Using) > 0 {
		b.kw("USING", commaSep(r.Using))
	}
	return b.String()
}

// Signal is MySQL's SIGNAL / RESIGNAL {SQLSTATE [VALUE] 'x' | name}
// [SET item = value, ...].
type Signal struct {
	Resignal   bool
	SQLState   *Value
	ValueKw    bool
	Condition  *Ident
	Set        []SQLOption
}

func (*Signal) statementNode() {}

func (s *Signal) String() string {
	var b sqlBuilder
	if s.Resignal {
		b.kw("RESIGNAL")
	} else {
		b.kw("SIGNAL")
	}
	switch {
	case s.SQLState != nil:
		b.kw("SQLSTATE")
		b.kwIf(s.ValueKw, "VALUE")
		b.kw(s.SQLState.String())
	case s.Condition != nil:
		b.kw(s.Condition.String())
	}
	if len(s.Set) > 0 {
		b.kw("SET", commaSep(s.Set))
	}
	return b.String()
}

// GetDiagnostics is GET [CURRENT|STACKED] DIAGNOSTICS [CONDITION n] target
// = item, ...
type GetDiagnostics struct {
	Scope     string
	Condition Expr
	Items     []SQLOption
}

func (*GetDiagnostics) statementNode() {}

func (g *GetDiagnostics) String() string {
	var b sqlBuilder
	b.kw("GET", g.Scope, "DIAGNOSTICS")
	b.node("CONDITION", g.Condition)
	b.kw(commaSep(g.Items))
	return b.String()
}
