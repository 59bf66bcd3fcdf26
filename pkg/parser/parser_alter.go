package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// ALTER statements and RENAME TABLE.
//
// Grammar:
//
//	alter_table → ALTER TABLE [IF EXISTS] [ONLY] name [ON CLUSTER c] op {, op}
//	op          → ADD ... | DROP ... | RENAME ... | ALTER [COLUMN] ... | CHANGE ... | MODIFY ...
//	              | SET (...) | RESET (...) | {ATTACH|DETACH|FREEZE|UNFREEZE} PARTITION ...
//	              | {ENABLE|DISABLE} {TRIGGER|RULE|ROW LEVEL SECURITY} ... | OWNER TO x
//	rename      → RENAME TABLE a TO b {, c TO d}

// alterOpStarts are the words that begin an ALTER TABLE operation. A list of
// column names stops at a comma followed by one of them.
var alterOpStarts = keyword.NewSet(
	keyword.ADD, keyword.DROP, keyword.ALTER, keyword.RENAME, keyword.CHANGE,
	keyword.MODIFY, keyword.SET, keyword.RESET, keyword.VALIDATE, keyword.ENABLE,
	keyword.DISABLE, keyword.ATTACH, keyword.DETACH, keyword.FREEZE, keyword.UNFREEZE,
	keyword.MATERIALIZE, keyword.CLEAR, keyword.OWNER, keyword.ALGORITHM, keyword.LOCK,
)

func (p *Parser) parseAlter() (ast.Statement, error) {
	p.NextToken()
	tok := p.NextToken()
	switch {
	case tok.IsKeyword(keyword.TABLE):
		return p.parseAlterTable()
	case tok.IsKeyword(keyword.INDEX):
		return p.parseAlterIndex()
	case tok.IsKeyword(keyword.VIEW):
		return p.parseAlterView()
	case tok.IsKeyword(keyword.SCHEMA):
		return p.parseAlterSchema()
	case tok.IsKeyword(keyword.SYSTEM):
		cfg, err := p.parseAlterConfig()
		if err != nil {
			return nil, err
		}
		return &ast.AlterSystem{Config: *cfg}, nil
	case tok.IsKeyword(keyword.DATABASE):
		return p.parseAlterDatabase()
	case tok.IsKeyword(keyword.ROLE):
		return p.parseAlterRole()
	case tok.IsKeyword(keyword.USER):
		return p.parseAlterUser()
	case tok.IsKeyword(keyword.POLICY):
		return p.parseAlterPolicy()
	case tok.IsKeyword(keyword.TYPE):
		return p.parseAlterType()
	}
	return nil, p.Expected("an object type after ALTER", tok)
}

// ---------- ALTER TABLE ----------

func (p *Parser) parseAlterTable() (*ast.AlterTable, error) {
	a := &ast.AlterTable{IfExists: p.parseIfExists()}
	a.Only = p.ParseKeyword(keyword.ONLY)
	var err error
	if a.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.ParseKeywords(keyword.ON, keyword.CLUSTER) {
		id, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		a.OnCluster = &id
	}
	if a.Operations, err = parseCommaSeparated(p, p.parseAlterTableOperation); err != nil {
		return nil, err
	}
	return a, nil
}

func (p *Parser) parseAlterTableOperation() (ast.AlterTableOperation, error) {
	tok := p.PeekToken()
	if tok.Type != token.WORD || tok.Quote != 0 {
		return nil, p.Expected("an ALTER TABLE operation", tok)
	}
	p.index++
	switch tok.Keyword {
	case keyword.ADD:
		return p.parseAlterAdd()
	case keyword.DROP:
		return p.parseAlterDrop()
	case keyword.RENAME:
		return p.parseAlterRename()
	case keyword.CHANGE:
		p.ParseKeyword(keyword.COLUMN)
		old, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		pos, err := p.parseColumnPosition()
		if err != nil {
			return nil, err
		}
		return &ast.ChangeColumn{Old: old, Column: col, Position: pos}, nil
	case keyword.MODIFY:
		p.ParseKeyword(keyword.COLUMN)
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		pos, err := p.parseColumnPosition()
		if err != nil {
			return nil, err
		}
		return &ast.ModifyColumn{Column: col, Position: pos}, nil
	case keyword.ALTER:
		p.ParseKeyword(keyword.COLUMN)
		return p.parseAlterColumn()
	case keyword.VALIDATE:
		if _, err := p.ExpectKeyword(keyword.CONSTRAINT); err != nil {
			return nil, err
		}
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.ValidateConstraint{Name: name}, nil
	case keyword.SET:
		kind := ast.OptionsPlain
		if kw := p.ParseOneOfKeywords(keyword.TBLPROPERTIES, keyword.OPTIONS); kw != keyword.NoKeyword {
			kind = ast.OptionsKind(kw.String())
		}
		opts, err := p.ParseOptions()
		if err != nil {
			return nil, err
		}
		return &ast.SetTableOptions{Options: ast.TableOptions{Kind: kind, Options: opts}}, nil
	case keyword.RESET:
		opts, err := p.ParseOptions()
		if err != nil {
			return nil, err
		}
		return &ast.SetTableOptions{Reset: true, Options: ast.TableOptions{Options: opts}}, nil
	case keyword.ATTACH, keyword.DETACH, keyword.FREEZE, keyword.UNFREEZE:
		return p.parsePartitionAction(tok.Keyword.String())
	case keyword.ENABLE, keyword.DISABLE:
		return p.parseEnableDisable(tok.Keyword.String())
	case keyword.FORCE:
		if err := p.ExpectKeywords(keyword.ROW, keyword.LEVEL, keyword.SECURITY); err != nil {
			return nil, err
		}
		return &ast.EnableDisable{Action: "FORCE", Object: "ROW LEVEL SECURITY"}, nil
	case keyword.NO:
		if err := p.ExpectKeywords(keyword.FORCE, keyword.ROW, keyword.LEVEL, keyword.SECURITY); err != nil {
			return nil, err
		}
		return &ast.EnableDisable{Action: "NO FORCE", Object: "ROW LEVEL SECURITY"}, nil
	case keyword.MATERIALIZE, keyword.CLEAR:
		if _, err := p.ExpectKeyword(keyword.PROJECTION); err != nil {
			return nil, err
		}
		return p.parseProjectionOperation(tok.Keyword.String())
	case keyword.OWNER:
		if _, err := p.ExpectKeyword(keyword.TO); err != nil {
			return nil, err
		}
		owner, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.AlterTableSetting{Name: "OWNER TO", Value: owner.String()}, nil
	case keyword.ALGORITHM, keyword.LOCK, keyword.AUTO_INCREMENT:
		s := &ast.AlterTableSetting{Name: tok.Keyword.String(), Equals: p.ConsumeToken(token.EQ)}
		v := p.NextToken()
		if v.Type != token.WORD && v.Type != token.NUMBER {
			return nil, p.Expected("a value", v)
		}
		s.Value = strings.ToUpper(v.Value)
		return s, nil
	case keyword.REPLICA:
		if _, err := p.ExpectKeyword(keyword.IDENTITY); err != nil {
			return nil, err
		}
		kw, err := p.expectOneOfKeywords(keyword.DEFAULT, keyword.FULL, keyword.NOTHING, keyword.INDEX)
		if err != nil {
			return nil, err
		}
		value := kw.String()
		if kw == keyword.INDEX {
			name, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			value += " " + name.String()
		}
		return &ast.AlterTableSetting{Name: "REPLICA IDENTITY", Value: value}, nil
	}
	p.index--
	return nil, p.Expected("an ALTER TABLE operation", tok)
}

func (p *Parser) parseAlterAdd() (ast.AlterTableOperation, error) {
	if p.ParseKeyword(keyword.PROJECTION) {
		return p.parseProjectionOperation("ADD")
	}
	if p.isTableConstraintStart() {
		tc, err := p.parseTableConstraint()
		if err != nil {
			return nil, err
		}
		return &ast.AddConstraint{Constraint: tc, NotValid: p.ParseKeywords(keyword.NOT, keyword.VALID)}, nil
	}
	colKw := p.ParseKeyword(keyword.COLUMN)
	ifNotExists := p.parseIfNotExists()
	if !colKw && p.ParseKeyword(keyword.PARTITION) {
		parts, err := p.parseParenExprs()
		if err != nil {
			return nil, err
		}
		return &ast.PartitionOperation{Action: "ADD", IfNotExists: ifNotExists, Partitions: parts}, nil
	}
	col, err := p.parseColumnDef()
	if err != nil {
		return nil, err
	}
	pos, err := p.parseColumnPosition()
	if err != nil {
		return nil, err
	}
	return &ast.AddColumn{ColumnKeyword: colKw, IfNotExists: ifNotExists, Column: col, Position: pos}, nil
}

func (p *Parser) parseAlterDrop() (ast.AlterTableOperation, error) {
	switch {
	case p.ParseKeyword(keyword.PROJECTION):
		return p.parseProjectionOperation("DROP")
	case p.ParseKeyword(keyword.CONSTRAINT):
		d := &ast.DropConstraint{Kind: "CONSTRAINT", IfExists: p.parseIfExists()}
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		d.Name = &name
		d.Behavior = p.parseDropBehavior()
		return d, nil
	case p.ParseKeywords(keyword.PRIMARY, keyword.KEY):
		return &ast.DropConstraint{Kind: "PRIMARY KEY"}, nil
	case p.ParseKeywords(keyword.FOREIGN, keyword.KEY):
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.DropConstraint{Kind: "FOREIGN KEY", Name: &name}, nil
	case p.PeekKeyword(keyword.INDEX), p.PeekKeyword(keyword.KEY):
		kind := p.NextToken().Keyword.String()
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.DropConstraint{Kind: kind, Name: &name}, nil
	}

	colKw := p.ParseKeyword(keyword.COLUMN)
	ifExists := p.parseIfExists()
	if !colKw && (p.PeekKeyword(keyword.PARTITION) || p.PeekKeyword(keyword.PART)) {
		op, err := p.parsePartitionAction("DROP")
		if err != nil {
			return nil, err
		}
		op.IfExists = ifExists
		return op, nil
	}
	d := &ast.DropColumn{ColumnKeyword: colKw, IfExists: ifExists}
	for {
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		d.Names = append(d.Names, name)
		// DROP COLUMN a, b
		if !p.peekIs(token.COMMA) || p.peekNthIs(1, token.EOF) {
			break
		}
		if next := p.PeekNthToken(1); next.Type != token.WORD || (next.Quote == 0 && alterOpStarts.Contains(next.Keyword)) {
			break
		}
		p.index++
	}
	d.Behavior = p.parseDropBehavior()
	return d, nil
}

func (p *Parser) parseAlterRename() (ast.AlterTableOperation, error) {
	switch {
	case p.ParseKeyword(keyword.COLUMN):
		old, to, err := p.parseRenamePair()
		if err != nil {
			return nil, err
		}
		return &ast.RenameColumn{Old: old, New: to}, nil
	case p.ParseKeyword(keyword.CONSTRAINT):
		old, to, err := p.parseRenamePair()
		if err != nil {
			return nil, err
		}
		return &ast.RenameConstraint{Old: old, New: to}, nil
	case p.PeekKeyword(keyword.TO), p.PeekKeyword(keyword.AS):
		kw := p.NextToken().Keyword.String()
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		return &ast.RenameTable{Keyword: kw, Name: name}, nil
	}
	old, to, err := p.parseRenamePair()
	if err != nil {
		return nil, err
	}
	return &ast.RenameColumn{Old: old, New: to}, nil
}

// parseRenamePair parses old TO new.
func (p *Parser) parseRenamePair() (ast.Ident, ast.Ident, error) {
	old, err := p.ParseIdentifier()
	if err != nil {
		return ast.Ident{}, ast.Ident{}, err
	}
	if _, err := p.ExpectKeyword(keyword.TO); err != nil {
		return ast.Ident{}, ast.Ident{}, err
	}
	to, err := p.ParseIdentifier()
	if err != nil {
		return ast.Ident{}, ast.Ident{}, err
	}
	return old, to, nil
}

// parseColumnPosition parses MySQL's FIRST | AFTER col.
func (p *Parser) parseColumnPosition() (string, error) {
	if p.ParseKeyword(keyword.FIRST) {
		return "FIRST", nil
	}
	if p.ParseKeyword(keyword.AFTER) {
		col, err := p.ParseIdentifier()
		if err != nil {
			return "", err
		}
		return "AFTER " + col.String(), nil
	}
	return "", nil
}

func (p *Parser) parseAlterColumn() (*ast.AlterColumn, error) {
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	a := &ast.AlterColumn{Name: name}
	switch {
	case p.ParseKeywords(keyword.SET, keyword.NOT, keyword.NULL):
		a.Kind = ast.SetNotNull
	case p.ParseKeywords(keyword.DROP, keyword.NOT, keyword.NULL):
		a.Kind = ast.DropNotNull
	case p.ParseKeywords(keyword.SET, keyword.DEFAULT):
		a.Kind = ast.SetDefault
		if a.Default, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	case p.ParseKeywords(keyword.DROP, keyword.DEFAULT):
		a.Kind = ast.DropDefault
	case p.ParseKeywords(keyword.SET, keyword.DATA, keyword.TYPE), p.ParseKeyword(keyword.TYPE):
		a.Kind = ast.SetDataType
		a.SetData = p.index >= 3 && p.tokens[p.index-2].IsKeyword(keyword.DATA)
		if a.DataType, err = p.ParseDataType(); err != nil {
			return nil, err
		}
		if p.ParseKeyword(keyword.USING) {
			if a.Using, err = p.ParseExpr(); err != nil {
				return nil, err
			}
		}
	case p.ParseKeyword(keyword.ADD):
		if _, err := p.ExpectKeyword(keyword.GENERATED); err != nil {
			return nil, err
		}
		gen, err := p.parseGenerated()
		if err != nil {
			return nil, err
		}
		a.Kind = ast.AddGenerated
		a.Generated = gen.(*ast.GeneratedOption)
	default:
		return nil, p.Expected("SET/DROP NOT NULL, SET DEFAULT, SET DATA TYPE after ALTER COLUMN", p.PeekToken())
	}
	return a, nil
}

// parsePartitionAction parses {PARTITION | PART} target [WITH NAME n] after
// ATTACH, DETACH, FREEZE, UNFREEZE or DROP. FREEZE may omit the target.
func (p *Parser) parsePartitionAction(action string) (*ast.PartitionOperation, error) {
	op := &ast.PartitionOperation{Action: action}
	var err error
	switch {
	case p.ParseKeyword(keyword.PART):
		op.Part = true
		if op.Partition, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	case p.ParseKeyword(keyword.PARTITION):
		if p.peekIs(token.LPAREN) && p.peekNthIs(2, token.EQ) {
			// Hive PARTITION (k = v, ...)
			if op.Partitions, err = p.parseParenExprs(); err != nil {
				return nil, err
			}
		} else if op.Partition, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	default:
		if action != "FREEZE" && action != "UNFREEZE" {
			return nil, p.Expected("PARTITION or PART", p.PeekToken())
		}
	}
	if p.ParseKeywords(keyword.WITH, keyword.NAME) {
		id, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		op.WithName = &id
	}
	return op, nil
}

func (p *Parser) parseEnableDisable(action string) (*ast.EnableDisable, error) {
	if action == "ENABLE" {
		if kw := p.ParseOneOfKeywords(keyword.ALWAYS, keyword.REPLICA); kw != keyword.NoKeyword {
			action += " " + kw.String()
		}
	}
	op := &ast.EnableDisable{Action: action}
	switch {
	case p.ParseKeywords(keyword.ROW, keyword.LEVEL, keyword.SECURITY):
		op.Object = "ROW LEVEL SECURITY"
		return op, nil
	case p.PeekKeyword(keyword.TRIGGER), p.PeekKeyword(keyword.RULE):
		op.Object = p.NextToken().Keyword.String()
	default:
		return nil, p.Expected("TRIGGER, RULE or ROW LEVEL SECURITY", p.PeekToken())
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	op.Name = &name
	return op, nil
}

// parseProjectionOperation parses the rest of ClickHouse's
// {ADD|DROP|MATERIALIZE|CLEAR} PROJECTION.
func (p *Parser) parseProjectionOperation(action string) (*ast.ProjectionOperation, error) {
	op := &ast.ProjectionOperation{Action: action}
	if action == "ADD" {
		op.IfNotExists = p.parseIfNotExists()
	} else {
		op.IfExists = p.parseIfExists()
	}
	var err error
	if op.Name, err = p.ParseIdentifier(); err != nil {
		return nil, err
	}
	if action == "ADD" {
		if _, err := p.ExpectToken(token.LPAREN); err != nil {
			return nil, err
		}
		if op.Select, err = p.ParseSelect(); err != nil {
			return nil, err
		}
		if p.ParseKeywords(keyword.ORDER, keyword.BY) {
			if op.OrderBy, err = parseCommaSeparated(p, p.parseOrderByExpr); err != nil {
				return nil, err
			}
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	if p.ParseKeywords(keyword.IN, keyword.PARTITION) {
		id, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		op.Partition = &id
	}
	return op, nil
}

// ---------- Other ALTER Forms ----------

func (p *Parser) parseAlterIndex() (*ast.AlterIndex, error) {
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	if err := p.ExpectKeywords(keyword.RENAME, keyword.TO); err != nil {
		return nil, err
	}
	to, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	return &ast.AlterIndex{Name: name, NewName: to}, nil
}

func (p *Parser) parseAlterView() (*ast.AlterView, error) {
	v := &ast.AlterView{}
	var err error
	if v.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.peekIs(token.LPAREN) {
		if v.Columns, err = p.parseParenIdents(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.WITH) {
		if v.Options, err = p.ParseOptions(); err != nil {
			return nil, err
		}
	}
	if _, err := p.ExpectKeyword(keyword.AS); err != nil {
		return nil, err
	}
	if v.Query, err = p.ParseQuery(); err != nil {
		return nil, err
	}
	return v, nil
}

func (p *Parser) parseAlterSchema() (*ast.AlterSchema, error) {
	s := &ast.AlterSchema{}
	var err error
	if s.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	switch {
	case p.ParseKeywords(keyword.RENAME, keyword.TO):
		to, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		s.Rename = &to
	case p.ParseKeywords(keyword.OWNER, keyword.TO):
		owner, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		s.OwnerTo = &owner
	default:
		return nil, p.Expected("RENAME TO or OWNER TO", p.PeekToken())
	}
	return s, nil
}

// parseAlterConfig parses SET param {TO | =} {DEFAULT | value, ...} or
// RESET {ALL | param}.
func (p *Parser) parseAlterConfig() (*ast.AlterConfig, error) {
	switch {
	case p.ParseKeyword(keyword.SET):
		param, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		cv := &ast.ConfigValue{Param: param}
		switch {
		case p.ConsumeToken(token.EQ):
			cv.Equals = true
		case p.ParseKeyword(keyword.TO):
		default:
			return nil, p.Expected("TO or =", p.PeekToken())
		}
		if !p.ParseKeyword(keyword.DEFAULT) {
			if cv.Values, err = p.ParseCommaSeparatedExprs(); err != nil {
				return nil, err
			}
		}
		return &ast.AlterConfig{Set: cv}, nil
	case p.ParseKeyword(keyword.RESET):
		if p.ParseKeyword(keyword.ALL) {
			return &ast.AlterConfig{}, nil
		}
		param, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		return &ast.AlterConfig{Reset: &param}, nil
	}
	return nil, p.Expected("SET or RESET", p.PeekToken())
}

func (p *Parser) parseAlterDatabase() (*ast.AlterDatabase, error) {
	d := &ast.AlterDatabase{}
	var err error
	if d.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	switch {
	case p.ParseKeywords(keyword.RENAME, keyword.TO):
		to, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		d.Rename = &to
	case p.ParseKeywords(keyword.OWNER, keyword.TO):
		owner, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		d.OwnerTo = &owner
	default:
		if d.Config, err = p.parseAlterConfig(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (p *Parser) parseAlterRole() (*ast.AlterRole, error) {
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	r := &ast.AlterRole{Name: name}
	member := func() (*ast.Ident, error) {
		id, err := p.ParseIdentifier()
		return &id, err
	}
	switch {
	case p.ParseKeywords(keyword.RENAME, keyword.TO):
		r.Rename, err = member()
	case p.ParseKeywords(keyword.ADD, keyword.MEMBER):
		r.AddMember, err = member()
	case p.ParseKeywords(keyword.DROP, keyword.MEMBER):
		r.DropMember, err = member()
	case p.ParseKeywords(keyword.WITH, keyword.NAME):
		if _, err := p.ExpectToken(token.EQ); err != nil {
			return nil, err
		}
		r.WithName, err = member()
	case p.ParseKeywords(keyword.IN, keyword.DATABASE):
		db, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		r.InDatabase = &db
		r.Config, err = p.parseAlterConfig()
		if err != nil {
			return nil, err
		}
	case p.PeekKeyword(keyword.SET), p.PeekKeyword(keyword.RESET):
		r.Config, err = p.parseAlterConfig()
	default:
		r.With = p.ParseKeyword(keyword.WITH)
		if r.Options, err = p.parseRoleOptions(); err != nil {
			return nil, err
		}
		if len(r.Options) == 0 {
			return nil, p.Expected("a role option", p.PeekToken())
		}
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (p *Parser) parseAlterUser() (*ast.AlterUser, error) {
	u := &ast.AlterUser{IfExists: p.parseIfExists()}
	var err error
	if u.Name, err = p.parseIdentOrString(); err != nil {
		return nil, err
	}
	if p.ParseKeywords(keyword.RENAME, keyword.TO) {
		to, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		u.Rename = &to
	}
	if p.ParseKeyword(keyword.SET) {
		for p.isPlainOptionStart() {
			opt, err := p.parsePlainOption()
			if err != nil {
				return nil, err
			}
			u.Set = append(u.Set, opt)
		}
		if len(u.Set) == 0 {
			return nil, p.Expected("key = value after SET", p.PeekToken())
		}
	}
	if p.ParseKeyword(keyword.UNSET) {
		if u.Unset, err = p.ParseIdentifiers(); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func (p *Parser) parseAlterPolicy() (*ast.AlterPolicy, error) {
	a := &ast.AlterPolicy{}
	var err error
	if a.Name, err = p.ParseIdentifier(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.ON); err != nil {
		return nil, err
	}
	if a.Table, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.ParseKeywords(keyword.RENAME, keyword.TO) {
		to, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		a.Rename = &to
		return a, nil
	}
	if p.ParseKeyword(keyword.TO) {
		if a.To, err = p.ParseIdentifiers(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.USING) {
		if a.Using, err = p.parseParenthesizedExpr(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeywords(keyword.WITH, keyword.CHECK) {
		if a.WithCheck, err = p.parseParenthesizedExpr(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (p *Parser) parseAlterType() (*ast.AlterType, error) {
	t := &ast.AlterType{}
	var err error
	if t.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	switch {
	case p.ParseKeywords(keyword.RENAME, keyword.TO):
		to, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		t.Rename = &to
	case p.ParseKeywords(keyword.ADD, keyword.VALUE):
		t.IfNotExists = p.parseIfNotExists()
		v, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		t.AddValue = &v
		if kw := p.ParseOneOfKeywords(keyword.BEFORE, keyword.AFTER); kw != keyword.NoKeyword {
			t.Position = kw.String()
			n, err := p.ParseLiteralString()
			if err != nil {
				return nil, err
			}
			t.Neighbor = &n
		}
	case p.ParseKeywords(keyword.RENAME, keyword.VALUE):
		from, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectKeyword(keyword.TO); err != nil {
			return nil, err
		}
		to, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		t.FromValue, t.ToValue = &from, &to
	default:
		return nil, p.Expected("RENAME TO, ADD VALUE or RENAME VALUE", p.PeekToken())
	}
	return t, nil
}

// ---------- RENAME TABLE ----------

func (p *Parser) parseRenameTables() (*ast.RenameTables, error) {
	p.NextToken()
	if _, err := p.ExpectKeyword(keyword.TABLE); err != nil {
		return nil, err
	}
	r := &ast.RenameTables{}
	var err error
	r.Pairs, err = parseCommaSeparated(p, func() ([2]ast.ObjectName, error) {
		from, err := p.ParseObjectName()
		if err != nil {
			return [2]ast.ObjectName{}, err
		}
		if _, err := p.ExpectKeyword(keyword.TO); err != nil {
			return [2]ast.ObjectName{}, err
		}
		to, err := p.ParseObjectName()
		return [2]ast.ObjectName{from, to}, err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}
