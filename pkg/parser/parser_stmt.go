package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// Statement dispatch and utility statements.
//
// The dialect statement hook runs first; when it declines, the leading
// keyword selects the routine. Queries, DML, DDL and procedural statements
// live in their own files; everything else is here.

// ParseStatement parses one statement.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	start := p.index
	stmt, handled, err := p.dialect.ParseStatement(p)
	if err != nil {
		return nil, err
	}
	if handled {
		return stmt, nil
	}
	p.index = start
	return p.parseStatement()
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.PeekToken()
	if tok.Type == token.LPAREN {
		return p.ParseQuery()
	}
	if tok.Type != token.WORD || tok.Quote != 0 {
		return nil, p.Expected("a SQL statement", tok)
	}
	if p.peekNthIs(1, token.COLON) && p.isLabeledBlockStart() {
		return p.parseLabeled()
	}

	switch tok.Keyword {
	case keyword.SELECT, keyword.WITH, keyword.VALUES, keyword.TABLE:
		return p.ParseQuery()
	case keyword.FROM:
		if p.dialect.FromFirstSelect {
			return p.ParseQuery()
		}
	case keyword.INSERT:
		return p.parseInsert()
	case keyword.REPLACE:
		if p.dialect.ReplaceInto {
			return p.parseInsert()
		}
	case keyword.UPDATE:
		return p.parseUpdate()
	case keyword.DELETE:
		return p.parseDelete()
	case keyword.MERGE:
		return p.parseMerge()

	case keyword.CREATE:
		return p.parseCreate()
	case keyword.ALTER:
		return p.parseAlter()
	case keyword.DROP:
		return p.parseDrop()
	case keyword.TRUNCATE:
		return p.parseTruncate()
	case keyword.RENAME:
		return p.parseRenameTables()

	case keyword.GRANT:
		return p.parseGrant()
	case keyword.REVOKE:
		return p.parseRevoke()
	case keyword.DENY:
		return p.parseDeny()
	case keyword.COMMENT:
		return p.parseComment()

	case keyword.SET:
		return p.parseSet()
	case keyword.SHOW:
		return p.parseShow()
	case keyword.USE:
		return p.parseUse()
	case keyword.RESET:
		return p.parseReset()

	case keyword.BEGIN:
		return p.parseBegin()
	case keyword.START:
		return p.parseStartTransaction()
	case keyword.COMMIT, keyword.END:
		return p.parseCommit()
	case keyword.ROLLBACK:
		return p.parseRollback()
	case keyword.SAVEPOINT:
		p.index++
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.Savepoint{Name: name}, nil
	case keyword.RELEASE:
		p.index++
		p.ParseKeyword(keyword.SAVEPOINT)
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.ReleaseSavepoint{Name: name}, nil

	case keyword.EXPLAIN, keyword.DESCRIBE, keyword.DESC:
		return p.parseExplain()
	case keyword.ANALYZE:
		return p.parseAnalyze()
	case keyword.COPY:
		return p.parseCopy()
	case keyword.PRAGMA:
		return p.parsePragma()
	case keyword.ATTACH:
		return p.parseAttach()
	case keyword.DETACH:
		return p.parseDetach()
	case keyword.PREPARE:
		return p.parsePrepare()
	case keyword.EXECUTE, keyword.EXEC:
		return p.parseExecute()
	case keyword.DEALLOCATE:
		p.index++
		prepare := p.ParseKeyword(keyword.PREPARE)
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.Deallocate{Prepare: prepare, Name: name}, nil
	case keyword.CACHE:
		return p.parseCache()
	case keyword.UNCACHE:
		p.index++
		if _, err := p.ExpectKeyword(keyword.TABLE); err != nil {
			return nil, err
		}
		stmt := &ast.Uncache{IfExists: p.parseIfExists()}
		var err error
		if stmt.Name, err = p.ParseObjectName(); err != nil {
			return nil, err
		}
		return stmt, nil
	case keyword.LOCK:
		return p.parseLock()
	case keyword.CALL:
		return p.parseCall()
	case keyword.KILL:
		p.index++
		stmt := &ast.Kill{}
		if kw := p.ParseOneOfKeywords(keyword.CONNECTION, keyword.QUERY, keyword.MUTATION); kw != keyword.NoKeyword {
			stmt.Modifier = kw.String()
		}
		var err error
		if stmt.ID, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		return stmt, nil

	case keyword.DECLARE:
		return p.parseDeclare()
	case keyword.OPEN:
		p.index++
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.Open{Name: name}, nil
	case keyword.FETCH, keyword.MOVE:
		return p.parseFetchCursor()
	case keyword.CLOSE:
		p.index++
		if p.ParseKeyword(keyword.ALL) {
			return &ast.Close{}, nil
		}
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.Close{Name: &name}, nil

	case keyword.FLUSH:
		return p.parseFlush()
	case keyword.DISCARD:
		p.index++
		kw, err := p.expectOneOfKeywords(keyword.ALL, keyword.PLANS, keyword.SEQUENCES, keyword.TEMP, keyword.TEMPORARY)
		if err != nil {
			return nil, err
		}
		return &ast.Discard{Object: kw.String()}, nil
	case keyword.LISTEN:
		p.index++
		ch, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.Listen{Channel: ch}, nil
	case keyword.UNLISTEN:
		p.index++
		if p.ConsumeToken(token.STAR) {
			return &ast.Unlisten{}, nil
		}
		ch, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.Unlisten{Channel: &ch}, nil
	case keyword.NOTIFY:
		return p.parseNotify()
	case keyword.LOAD:
		if p.PeekNthToken(1).IsKeyword(keyword.DATA) {
			return p.parseLoadData()
		}
		return nil, p.Unsupported("LOAD extension")
	case keyword.DO:
		return p.parseDo()
	case keyword.ASSERT:
		p.index++
		stmt := &ast.Assert{}
		var err error
		if stmt.Condition, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if p.ParseKeyword(keyword.AS) {
			if stmt.Message, err = p.ParseExpr(); err != nil {
				return nil, err
			}
		}
		return stmt, nil
	case keyword.VACUUM:
		return p.parseVacuum()
	case keyword.RAISERROR:
		return p.parseRaisError()
	case keyword.PRINT:
		p.index++
		msg, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Print{Message: msg}, nil
	case keyword.RETURN:
		p.index++
		if p.isStatementEnd() {
			return &ast.Return{}, nil
		}
		v, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Return{Value: v}, nil
	case keyword.MSCK:
		return p.parseMsck()
	case keyword.UNLOAD:
		return p.parseUnload()

	case keyword.IF:
		return p.parseIf()
	case keyword.CASE:
		return p.parseCaseStatement()
	case keyword.WHILE:
		return p.parseWhile(nil)
	case keyword.LOOP:
		return p.parseLoop(nil)
	case keyword.REPEAT:
		return p.parseRepeat(nil)
	case keyword.FOR:
		return p.parseFor(nil)
	case keyword.FOREACH:
		return p.parseForeach(nil)
	case keyword.LEAVE, keyword.ITERATE, keyword.EXIT, keyword.CONTINUE, keyword.BREAK:
		return p.parseLoopControl()
	case keyword.RAISE:
		return p.parseRaise()
	case keyword.SIGNAL, keyword.RESIGNAL:
		return p.parseSignal()
	case keyword.GET:
		if p.PeekNthToken(1).IsKeyword(keyword.DIAGNOSTICS) || p.PeekNthToken(2).IsKeyword(keyword.DIAGNOSTICS) {
			return p.parseGetDiagnostics()
		}
	case keyword.PERFORM:
		return p.parsePerform()
	case keyword.NULL:
		p.index++
		return &ast.NullStatement{}, nil

	case keyword.INSTALL, keyword.OPTIMIZE, keyword.UNLOCK:
		return nil, p.Unsupported(tok.Keyword.String() + " statement")
	}
	return nil, p.Expected("a SQL statement", tok)
}

// isStatementEnd reports whether the statement has no further tokens.
func (p *Parser) isStatementEnd() bool {
	tok := p.PeekToken()
	return tok.Type == token.SEMICOLON || tok.Type == token.EOF ||
		tok.IsKeyword(keyword.END) || tok.IsKeyword(keyword.ELSE)
}

// parseVariableName accepts a name or an @variable.
func (p *Parser) parseVariableName() (ast.ObjectName, error) {
	tok := p.PeekToken()
	if tok.Type == token.PLACEHOLDER {
		p.index++
		return ast.ObjectName{{Ident: ast.Ident{Value: tok.Value, Span: tok.Span}}}, nil
	}
	return p.ParseObjectName()
}

// ---------- SET ----------

func (p *Parser) parseSet() (ast.Statement, error) {
	p.index++
	var scope string
	if kw := p.ParseOneOfKeywords(keyword.GLOBAL, keyword.SESSION, keyword.LOCAL, keyword.PERSIST); kw != keyword.NoKeyword {
		scope = kw.String()
	}

	switch {
	case p.ParseKeywords(keyword.TIME, keyword.ZONE):
		v, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.SetTimeZone{Local: scope == "LOCAL", Value: v}, nil
	case scope == "SESSION" && p.ParseKeywords(keyword.CHARACTERISTICS, keyword.AS, keyword.TRANSACTION):
		modes, err := p.parseTransactionModes()
		if err != nil {
			return nil, err
		}
		return &ast.SetTransaction{Session: true, Modes: modes}, nil
	case scope == "" && p.ParseKeyword(keyword.TRANSACTION):
		st := &ast.SetTransaction{}
		if p.ParseKeyword(keyword.SNAPSHOT) {
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			st.Snapshot = &v
			return st, nil
		}
		var err error
		if st.Modes, err = p.parseTransactionModes(); err != nil {
			return nil, err
		}
		return st, nil
	case scope == "" && p.ParseKeyword(keyword.NAMES):
		return p.parseSetNames()
	case p.ParseKeyword(keyword.ROLE):
		sr := &ast.SetRole{Scope: scope}
		if p.ParseKeyword(keyword.NONE) {
			return sr, nil
		}
		role, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		sr.Role = &role
		return sr, nil
	case p.peekIs(token.LPAREN):
		return p.parseSetTuple(scope)
	}

	set := &ast.Set{Scope: scope}
	if tok := p.PeekToken(); tok.Type == token.WORD && tok.Quote == 0 &&
		strings.EqualFold(tok.Value, "hivevar") && p.peekNthIs(1, token.COLON) {
		p.index += 2
		set.HiveVar = true
	}
	var err error
	if set.Assignments, err = parseCommaSeparated(p, p.parseSetAssignment); err != nil {
		return nil, err
	}
	return set, nil
}

func (p *Parser) parseSetNames() (*ast.SetNames, error) {
	if p.ParseKeyword(keyword.DEFAULT) {
		return &ast.SetNames{}, nil
	}
	cs, err := p.parseIdentOrString()
	if err != nil {
		return nil, err
	}
	sn := &ast.SetNames{Charset: &cs}
	if p.ParseKeyword(keyword.COLLATE) {
		coll, err := p.parseIdentOrString()
		if err != nil {
			return nil, err
		}
		sn.Collation = &coll
	}
	return sn, nil
}

// parseSetTuple parses SET (a, b) = (1, 2).
func (p *Parser) parseSetTuple(scope string) (*ast.Set, error) {
	names, err := p.parseParenIdents()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.EQ); err != nil {
		return nil, err
	}
	start := p.PeekToken()
	vals, err := p.parseParenExprs()
	if err != nil {
		return nil, err
	}
	if len(vals) != len(names) {
		return nil, p.Expected("one value per variable", start)
	}
	set := &ast.Set{Scope: scope, Tuple: true}
	for i, n := range names {
		set.Assignments = append(set.Assignments, ast.SetAssignment{
			Name:   ast.ObjectName{{Ident: n}},
			Equals: true,
			Values: []ast.Expr{vals[i]},
		})
	}
	return set, nil
}

func (p *Parser) parseSetAssignment() (ast.SetAssignment, error) {
	var a ast.SetAssignment
	name, err := p.parseVariableName()
	if err != nil {
		return a, err
	}
	a.Name = name
	switch {
	case p.ConsumeToken(token.EQ), p.ConsumeToken(token.ASSIGN):
		a.Equals = true
	case p.ParseKeyword(keyword.TO):
	default:
		return a, p.Expected("= or TO", p.PeekToken())
	}
	for {
		v, err := p.parseSetValue()
		if err != nil {
			return a, err
		}
		a.Values = append(a.Values, v)
		// a comma either continues this value list or starts the next
		// assignment
		if !p.peekIs(token.COMMA) || p.isSetAssignmentAt(1) {
			return a, nil
		}
		p.index++
	}
}

// parseSetValue accepts bare words such as ON, DEFAULT or WAL as values.
func (p *Parser) parseSetValue() (ast.Expr, error) {
	tok := p.PeekToken()
	if tok.Type == token.WORD && tok.Quote == 0 {
		next := p.PeekNthToken(1)
		if next.Type == token.COMMA || next.Type == token.SEMICOLON || next.Type == token.EOF {
			p.index++
			return identFrom(tok), nil
		}
	}
	return p.ParseExpr()
}

// isSetAssignmentAt reports whether name = or name TO starts at offset n.
func (p *Parser) isSetAssignmentAt(n int) bool {
	tok := p.PeekNthToken(n)
	if tok.Type == token.PLACEHOLDER {
		n++
	} else {
		if tok.Type != token.WORD {
			return false
		}
		n++
		for p.peekNthIs(n, token.DOT) && p.peekNthIs(n+1, token.WORD) {
			n += 2
		}
	}
	next := p.PeekNthToken(n)
	return next.Type == token.EQ || next.Type == token.ASSIGN || next.IsKeyword(keyword.TO)
}

// ---------- Transactions ----------

var transactionModifiers = []keyword.Keyword{
	keyword.TRANSACTION, keyword.WORK, keyword.TRAN,
}

func (p *Parser) parseTransactionModes() ([]ast.TransactionMode, error) {
	var modes []ast.TransactionMode
	for {
		switch {
		case p.ParseKeywords(keyword.ISOLATION, keyword.LEVEL):
			switch {
			case p.ParseKeywords(keyword.READ, keyword.UNCOMMITTED):
				modes = append(modes, ast.IsolationReadUncommit)
			case p.ParseKeywords(keyword.READ, keyword.COMMITTED):
				modes = append(modes, ast.IsolationReadCommit)
			case p.ParseKeywords(keyword.REPEATABLE, keyword.READ):
				modes = append(modes, ast.IsolationRepeatable)
			case p.ParseKeyword(keyword.SERIALIZABLE):
				modes = append(modes, ast.IsolationSerializable)
			case p.ParseKeyword(keyword.SNAPSHOT):
				modes = append(modes, ast.IsolationSnapshot)
			default:
				return nil, p.Expected("isolation level", p.PeekToken())
			}
		case p.ParseKeywords(keyword.READ, keyword.ONLY):
			modes = append(modes, ast.ReadOnly)
		case p.ParseKeywords(keyword.READ, keyword.WRITE):
			modes = append(modes, ast.ReadWrite)
		default:
			if len(modes) > 0 && p.lastToken().Type == token.COMMA {
				return nil, p.Expected("transaction mode", p.PeekToken())
			}
			return modes, nil
		}
		p.ConsumeToken(token.COMMA)
	}
}

// parseBegin parses BEGIN as a transaction start or, in procedural
// dialects, as a block.
func (p *Parser) parseBegin() (ast.Statement, error) {
	next := p.PeekNthToken(1)
	if next.IsKeyword(keyword.TRY) || next.IsKeyword(keyword.CATCH) {
		return p.parseBeginEnd(nil)
	}
	if p.dialect.BeginEndBlock && !p.isTransactionBegin() {
		return p.parseBeginEnd(nil)
	}
	p.index++
	st := &ast.StartTransaction{Begin: true}
	if kw := p.ParseOneOfKeywords(keyword.DEFERRED, keyword.IMMEDIATE, keyword.EXCLUSIVE); kw != keyword.NoKeyword {
		st.Modifier = kw.String()
		if p.ParseKeyword(keyword.TRANSACTION) {
			st.Modifier += " TRANSACTION"
		}
	} else if kw := p.ParseOneOfKeywords(transactionModifiers...); kw != keyword.NoKeyword {
		st.Modifier = kw.String()
	}
	var err error
	if st.Modes, err = p.parseTransactionModes(); err != nil {
		return nil, err
	}
	return st, nil
}

func (p *Parser) isTransactionBegin() bool {
	next := p.PeekNthToken(1)
	switch next.Type {
	case token.SEMICOLON, token.EOF:
		return true
	}
	for _, kw := range []keyword.Keyword{
		keyword.TRANSACTION, keyword.WORK, keyword.TRAN,
		keyword.DEFERRED, keyword.IMMEDIATE, keyword.EXCLUSIVE,
		keyword.ISOLATION, keyword.READ,
	} {
		if next.IsKeyword(kw) {
			return true
		}
	}
	return false
}

func (p *Parser) parseStartTransaction() (*ast.StartTransaction, error) {
	p.index++
	if _, err := p.ExpectKeyword(keyword.TRANSACTION); err != nil {
		return nil, err
	}
	modes, err := p.parseTransactionModes()
	if err != nil {
		return nil, err
	}
	return &ast.StartTransaction{Modes: modes}, nil
}

func (p *Parser) parseCommit() (*ast.Commit, error) {
	c := &ast.Commit{End: p.NextToken().IsKeyword(keyword.END)}
	if kw := p.ParseOneOfKeywords(transactionModifiers...); kw != keyword.NoKeyword {
		c.Modifier = kw.String()
	}
	c.Chain = p.parseChain()
	return c, nil
}

func (p *Parser) parseChain() bool {
	if p.ParseKeywords(keyword.AND, keyword.NO, keyword.CHAIN) {
		return false
	}
	return p.ParseKeywords(keyword.AND, keyword.CHAIN)
}

func (p *Parser) parseRollback() (*ast.Rollback, error) {
	p.index++
	r := &ast.Rollback{}
	if kw := p.ParseOneOfKeywords(transactionModifiers...); kw != keyword.NoKeyword {
		r.Modifier = kw.String()
	}
	r.Chain = p.parseChain()
	if p.ParseKeyword(keyword.TO) {
		p.ParseKeyword(keyword.SAVEPOINT)
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		r.Savepoint = &name
	}
	return r, nil
}

// ---------- USE / SHOW / RESET ----------

func (p *Parser) parseUse() (*ast.Use, error) {
	p.index++
	u := &ast.Use{}
	if kw := p.ParseOneOfKeywords(keyword.DATABASE, keyword.SCHEMA, keyword.CATALOG, keyword.WAREHOUSE, keyword.ROLE); kw != keyword.NoKeyword {
		u.Kind = kw.String()
	}
	if u.Kind == "" && p.PeekKeyword(keyword.DEFAULT) && p.isStatementEndAt(1) {
		p.index++
		return u, nil
	}
	var err error
	if u.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	return u, nil
}

func (p *Parser) isStatementEndAt(n int) bool {
	tok := p.PeekNthToken(n)
	return tok.Type == token.SEMICOLON || tok.Type == token.EOF
}

// showObjects are the words that may open a SHOW statement. Any other
// word is a variable name.
var showObjects = keyword.NewSet(
	keyword.TABLES, keyword.COLUMNS, keyword.FIELDS, keyword.DATABASES, keyword.SCHEMAS,
	keyword.CREATE, keyword.FUNCTIONS, keyword.VIEWS, keyword.VARIABLES, keyword.STATUS,
	keyword.PROCESSLIST, keyword.INDEX, keyword.INDEXES, keyword.KEYS, keyword.GRANTS,
	keyword.COLLATION, keyword.ENGINES, keyword.WARNINGS, keyword.ERRORS, keyword.TRIGGERS,
	keyword.USERS, keyword.ROLES, keyword.OBJECTS, keyword.PARTITIONS, keyword.TBLPROPERTIES,
	keyword.FULL, keyword.EXTENDED, keyword.TERSE, keyword.GLOBAL, keyword.SESSION,
	keyword.CATALOGS, keyword.TABLE, keyword.VIEW, keyword.DATABASE, keyword.SCHEMA,
	keyword.FUNCTION, keyword.PROCEDURE, keyword.USER, keyword.OPEN, keyword.CHARSET,
	keyword.PLUGINS, keyword.PRIVILEGES, keyword.EVENTS, keyword.SEQUENCES, keyword.TYPES,
	keyword.MATERIALIZED, keyword.EXTERNAL, keyword.TRANSIENT, keyword.PRIMARY, keyword.WAREHOUSES,
	keyword.STAGES, keyword.SECRETS,
)

func (p *Parser) parseShow() (ast.Statement, error) {
	p.index++
	first := p.PeekToken()
	if !(first.Quote == 0 && showObjects.Contains(first.Keyword)) {
		var names []ast.Ident
		for !p.isStatementEnd() {
			id, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			names = append(names, id)
		}
		if len(names) == 0 {
			return nil, p.Expected("SHOW target", first)
		}
		return &ast.ShowVariable{Names: names}, nil
	}

	s := &ast.Show{}
	for {
		tok := p.PeekToken()
		if tok.Type != token.WORD || tok.Quote != 0 || !showObjects.Contains(tok.Keyword) {
			break
		}
		p.index++
		s.Words = append(s.Words, tok.Keyword.String())
	}
	if tok := p.PeekToken(); tok.Type == token.WORD && !p.peekOneOf(keyword.FROM, keyword.IN, keyword.LIKE, keyword.ILIKE, keyword.WHERE, keyword.LIMIT) {
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		s.Name = &name
	}
	if kw := p.ParseOneOfKeywords(keyword.FROM, keyword.IN); kw != keyword.NoKeyword {
		s.FromIn = kw.String()
		from, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		s.From = &from
	}
	switch {
	case p.ParseKeyword(keyword.LIKE):
		v, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		s.Filter = &ast.ShowFilter{Like: &v}
	case p.ParseKeyword(keyword.ILIKE):
		v, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		s.Filter = &ast.ShowFilter{ILike: &v}
	case p.ParseKeyword(keyword.WHERE):
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		s.Filter = &ast.ShowFilter{Where: e}
	case p.peekIs(token.STRING):
		v, _ := p.ParseLiteralString()
		s.Filter = &ast.ShowFilter{NoKeyword: &v}
	}
	if p.ParseKeyword(keyword.LIMIT) {
		var err error
		if s.Limit, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (p *Parser) parseReset() (*ast.Reset, error) {
	p.index++
	if p.ParseKeyword(keyword.ALL) {
		return &ast.Reset{}, nil
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	return &ast.Reset{Name: &name}, nil
}

// ---------- EXPLAIN / ANALYZE ----------

func (p *Parser) parseExplain() (ast.Statement, error) {
	kw := p.NextToken().Keyword
	if kw != keyword.EXPLAIN || p.PeekKeyword(keyword.TABLE) {
		if !p.isQueryStart() && !p.isDMLStart() {
			return p.parseExplainTable(kw)
		}
	}

	e := &ast.Explain{Keyword: kw.String()}
	if p.ParseKeywords(keyword.QUERY, keyword.PLAN) {
		e.QueryPlan = true
	}
	if p.peekIs(token.LPAREN) && !p.isParenQuery() {
		p.index++
		opts, err := parseCommaSeparated(p, p.parseUtilityOption)
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
		e.Options = opts
	}
	e.Analyze = p.ParseKeyword(keyword.ANALYZE)
	e.Verbose = p.ParseKeyword(keyword.VERBOSE)
	e.Estimate = p.ParseKeyword(keyword.ESTIMATE)
	if p.ParseKeyword(keyword.FORMAT) {
		f, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		e.Format = f.Value
	}
	stmt, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}
	e.Statement = stmt
	return e, nil
}

func (p *Parser) isDMLStart() bool {
	return p.peekOneOf(keyword.INSERT, keyword.UPDATE, keyword.DELETE, keyword.MERGE, keyword.REPLACE)
}

func (p *Parser) parseExplainTable(kw keyword.Keyword) (*ast.ExplainTable, error) {
	t := &ast.ExplainTable{Keyword: kw.String()}
	if ext := p.ParseOneOfKeywords(keyword.EXTENDED, keyword.FORMATTED); ext != keyword.NoKeyword {
		t.Extended = ext.String()
	}
	t.TableKeyword = p.ParseKeyword(keyword.TABLE)
	var err error
	if t.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	return t, nil
}

// parseUtilityOption parses NAME [value] inside an option list.
func (p *Parser) parseUtilityOption() (ast.UtilityOption, error) {
	name, err := p.ParseIdentifier()
	if err != nil {
		return ast.UtilityOption{}, err
	}
	opt := ast.UtilityOption{Name: name.Value}
	if name.QuoteStyle == 0 {
		opt.Name = strings.ToUpper(name.Value)
	}
	if p.peekIs(token.COMMA) || p.peekIs(token.RPAREN) {
		return opt, nil
	}
	if opt.Value, err = p.ParseExpr(); err != nil {
		return ast.UtilityOption{}, err
	}
	return opt, nil
}

func (p *Parser) parseAnalyze() (*ast.Analyze, error) {
	p.index++
	a := &ast.Analyze{}
	a.Verbose = p.ParseKeyword(keyword.VERBOSE)
	a.TableKeyword = p.ParseKeyword(keyword.TABLE)
	if p.peekIs(token.WORD) && !p.peekOneOf(keyword.PARTITION, keyword.COMPUTE, keyword.FOR, keyword.NOSCAN) {
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		a.Name = &name
	}
	var err error
	if p.PeekKeyword(keyword.PARTITION) {
		p.index++
		if a.Partitions, err = p.parseParenExprs(); err != nil {
			return nil, err
		}
	}
	if p.peekIs(token.LPAREN) {
		if a.Columns, err = p.parseParenIdents(); err != nil {
			return nil, err
		}
	}
	a.Compute = p.ParseKeywords(keyword.COMPUTE, keyword.STATISTICS)
	a.NoScan = p.ParseKeyword(keyword.NOSCAN)
	if p.ParseKeywords(keyword.FOR, keyword.COLUMNS) {
		a.ForColumns = true
		if p.peekIs(token.WORD) {
			if a.Columns, err = p.ParseIdentifiers(); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

// ---------- GRANT / REVOKE / DENY ----------

func (p *Parser) parseGrant() (*ast.Grant, error) {
	p.index++
	g := &ast.Grant{}
	var err error
	if g.Privileges, err = p.parsePrivileges(); err != nil {
		return nil, err
	}
	if g.Objects, err = p.parseGrantObjects(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.TO); err != nil {
		return nil, err
	}
	if g.Grantees, err = parseCommaSeparated(p, p.parseGrantee); err != nil {
		return nil, err
	}
	g.WithGrantOption = p.ParseKeywords(keyword.WITH, keyword.GRANT, keyword.OPTION)
	if p.ParseKeywords(keyword.GRANTED, keyword.BY) {
		by, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		g.GrantedBy = &by
	}
	return g, nil
}

func (p *Parser) parseRevoke() (*ast.Revoke, error) {
	p.index++
	r := &ast.Revoke{GrantOptionFor: p.ParseKeywords(keyword.GRANT, keyword.OPTION, keyword.FOR)}
	var err error
	if r.Privileges, err = p.parsePrivileges(); err != nil {
		return nil, err
	}
	if r.Objects, err = p.parseGrantObjects(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.FROM); err != nil {
		return nil, err
	}
	if r.Grantees, err = parseCommaSeparated(p, p.parseGrantee); err != nil {
		return nil, err
	}
	if p.ParseKeywords(keyword.GRANTED, keyword.BY) {
		by, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		r.GrantedBy = &by
	}
	r.Behavior = p.parseDropBehavior()
	return r, nil
}

func (p *Parser) parseDeny() (*ast.Deny, error) {
	p.index++
	d := &ast.Deny{}
	var err error
	if d.Privileges, err = p.parsePrivileges(); err != nil {
		return nil, err
	}
	if d.Objects, err = p.parseGrantObjects(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.TO); err != nil {
		return nil, err
	}
	if d.Grantees, err = parseCommaSeparated(p, p.parseGrantee); err != nil {
		return nil, err
	}
	d.Cascade = p.ParseKeyword(keyword.CASCADE)
	return d, nil
}

func (p *Parser) parsePrivileges() (ast.Privileges, error) {
	if p.ParseKeyword(keyword.ALL) {
		return ast.Privileges{All: true, WithKeyword: p.ParseKeyword(keyword.PRIVILEGES)}, nil
	}
	actions, err := parseCommaSeparated(p, p.parsePrivilege)
	if err != nil {
		return ast.Privileges{}, err
	}
	return ast.Privileges{Actions: actions}, nil
}

func (p *Parser) parsePrivilege() (ast.Privilege, error) {
	words := p.parseSpacedWords(func(t token.TokenWithSpan) bool {
		return t.IsKeyword(keyword.ON) || t.IsKeyword(keyword.TO) || t.IsKeyword(keyword.FROM)
	})
	if len(words) == 0 {
		return ast.Privilege{}, p.Expected("privilege", p.PeekToken())
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w)
	}
	priv := ast.Privilege{Name: strings.Join(words, " ")}
	if p.peekIs(token.LPAREN) {
		cols, err := p.parseParenIdents()
		if err != nil {
			return priv, err
		}
		priv.Columns = cols
	}
	return priv, nil
}

var grantObjectKinds = []keyword.Keyword{
	keyword.TABLE, keyword.SCHEMA, keyword.SEQUENCE, keyword.DATABASE, keyword.FUNCTION,
	keyword.PROCEDURE, keyword.VIEW, keyword.WAREHOUSE, keyword.DOMAIN, keyword.TYPE,
	keyword.INTEGRATION,
}

func (p *Parser) parseGrantObjects() (*ast.GrantObjects, error) {
	if !p.ParseKeyword(keyword.ON) {
		return nil, nil
	}
	g := &ast.GrantObjects{}
	if p.PeekKeyword(keyword.ALL) || p.PeekKeyword(keyword.FUTURE) {
		scope := p.NextToken().Keyword
		kind, err := p.expectOneOfKeywords(keyword.TABLES, keyword.SEQUENCES, keyword.FUNCTIONS, keyword.VIEWS, keyword.PROCEDURES, keyword.SCHEMAS)
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectKeyword(keyword.IN); err != nil {
			return nil, err
		}
		container, err := p.expectOneOfKeywords(keyword.SCHEMA, keyword.DATABASE)
		if err != nil {
			return nil, err
		}
		g.Kind = scope.String() + " " + kind.String() + " IN " + container.String()
	} else if kw := p.ParseOneOfKeywords(grantObjectKinds...); kw != keyword.NoKeyword {
		g.Kind = kw.String()
	}
	var err error
	if g.Names, err = p.parseObjectNames(); err != nil {
		return nil, err
	}
	return g, nil
}

func (p *Parser) parseGrantee() (ast.Grantee, error) {
	var g ast.Grantee
	if kw := p.ParseOneOfKeywords(keyword.ROLE, keyword.USER, keyword.GROUP, keyword.SHARE); kw != keyword.NoKeyword {
		g.Kind = kw.String()
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return g, err
	}
	g.Name = name
	return g, nil
}

// ---------- COMMENT ----------

var commentObjectKinds = []keyword.Keyword{
	keyword.TABLE, keyword.COLUMN, keyword.VIEW, keyword.SCHEMA, keyword.DATABASE,
	keyword.FUNCTION, keyword.PROCEDURE, keyword.INDEX, keyword.SEQUENCE, keyword.TYPE,
	keyword.ROLE, keyword.USER, keyword.EXTENSION, keyword.DOMAIN, keyword.TRIGGER,
	keyword.COLLATION, keyword.POLICY,
}

func (p *Parser) parseComment() (*ast.Comment, error) {
	p.index++
	c := &ast.Comment{IfExists: p.parseIfExists()}
	if _, err := p.ExpectKeyword(keyword.ON); err != nil {
		return nil, err
	}
	if p.ParseKeywords(keyword.MATERIALIZED, keyword.VIEW) {
		c.ObjectType = "MATERIALIZED VIEW"
	} else {
		kw, err := p.expectOneOfKeywords(commentObjectKinds...)
		if err != nil {
			return nil, err
		}
		c.ObjectType = kw.String()
	}
	var err error
	if c.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.IS); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.NULL) {
		return c, nil
	}
	text, err := p.ParseLiteralString()
	if err != nil {
		return nil, err
	}
	c.Text = &text
	return c, nil
}

// ---------- COPY / UNLOAD / LOAD DATA ----------

func (p *Parser) parseCopy() (*ast.Copy, error) {
	p.index++
	if p.PeekKeyword(keyword.INTO) {
		return nil, p.Unsupported("COPY INTO statement")
	}
	c := &ast.Copy{}
	if p.ConsumeToken(token.LPAREN) {
		q, err := p.ParseQuery()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
		c.Query = q
	} else {
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		c.Table = &name
		if p.peekIs(token.LPAREN) {
			if c.Columns, err = p.parseParenIdents(); err != nil {
				return nil, err
			}
		}
	}
	dir, err := p.expectOneOfKeywords(keyword.FROM, keyword.TO)
	if err != nil {
		return nil, err
	}
	c.To = dir == keyword.TO
	switch {
	case p.ParseKeyword(keyword.STDIN):
		c.Target.Kind = "STDIN"
	case p.ParseKeyword(keyword.STDOUT):
		c.Target.Kind = "STDOUT"
	case p.ParseKeyword(keyword.PROGRAM):
		v, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		c.Target = ast.CopyTarget{Kind: "PROGRAM", Path: &v}
	default:
		v, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		c.Target = ast.CopyTarget{Kind: "FILE", Path: &v}
	}
	c.With = p.ParseKeyword(keyword.WITH)
	if p.ConsumeToken(token.LPAREN) {
		if c.Options, err = parseCommaSeparated(p, p.parseUtilityOption); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	if c.LegacyOptions, err = p.parseLegacyOptions(); err != nil {
		return nil, err
	}
	return c, nil
}

// parseLegacyOptions parses unparenthesised options such as
// CSV HEADER DELIMITER ',' up to the end of the statement.
func (p *Parser) parseLegacyOptions() ([]ast.UtilityOption, error) {
	var opts []ast.UtilityOption
	for {
		words := p.parseSpacedWords(func(t token.TokenWithSpan) bool { return false })
		if len(words) == 0 {
			return opts, nil
		}
		for i, w := range words {
			words[i] = strings.ToUpper(w)
		}
		opt := ast.UtilityOption{Name: strings.Join(words, " ")}
		if tok := p.PeekToken(); tok.Type == token.STRING || tok.Type == token.NUMBER {
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			opt.Value = &ast.ValueWithSpan{Value: v, Span: tok.Span}
		}
		opts = append(opts, opt)
	}
}

func (p *Parser) parseUnload() (*ast.Unload, error) {
	p.index++
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	u := &ast.Unload{}
	if p.peekIs(token.STRING) {
		v, _ := p.ParseLiteralString()
		u.QueryText = &v
	} else {
		q, err := p.ParseQuery()
		if err != nil {
			return nil, err
		}
		u.Query = q
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.TO); err != nil {
		return nil, err
	}
	var err error
	if u.To, err = p.ParseLiteralString(); err != nil {
		return nil, err
	}
	if u.Options, err = p.parseLegacyOptions(); err != nil {
		return nil, err
	}
	return u, nil
}

func (p *Parser) parseLoadData() (*ast.LoadData, error) {
	p.index += 2
	l := &ast.LoadData{Local: p.ParseKeyword(keyword.LOCAL)}
	kw, err := p.expectOneOfKeywords(keyword.INFILE, keyword.INPATH)
	if err != nil {
		return nil, err
	}
	l.PathKeyword = kw.String()
	if l.Path, err = p.ParseLiteralString(); err != nil {
		return nil, err
	}
	if kw := p.ParseOneOfKeywords(keyword.REPLACE, keyword.IGNORE); kw != keyword.NoKeyword {
		l.Conflict = kw.String()
	}
	l.Overwrite = p.ParseKeyword(keyword.OVERWRITE)
	if err := p.ExpectKeywords(keyword.INTO, keyword.TABLE); err != nil {
		return nil, err
	}
	if l.Table, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.PeekKeyword(keyword.PARTITION) {
		p.index++
		if l.Partitioned, err = p.parseParenExprs(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.INPUTFORMAT) {
		in, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectKeyword(keyword.SERDE); err != nil {
			return nil, err
		}
		serde, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		l.InputFormat, l.SerDe = &in, &serde
	}
	return l, nil
}

// ---------- Session and catalog utilities ----------

func (p *Parser) parsePragma() (*ast.Pragma, error) {
	p.index++
	pr := &ast.Pragma{}
	var err error
	if pr.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	switch {
	case p.ConsumeToken(token.EQ):
		pr.Equals = true
		if pr.Value, err = p.parseSetValue(); err != nil {
			return nil, err
		}
	case p.ConsumeToken(token.LPAREN):
		if pr.Value, err = p.parseSetValue(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	return pr, nil
}

func (p *Parser) parseAttach() (*ast.AttachDatabase, error) {
	p.index++
	a := &ast.AttachDatabase{DatabaseKeyword: p.ParseKeyword(keyword.DATABASE)}
	a.IfNotExists = p.parseIfNotExists()
	var err error
	if a.Path, err = p.ParseExpr(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.AS) {
		alias, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		a.Alias = &alias
	}
	if p.ConsumeToken(token.LPAREN) {
		if a.Options, err = parseCommaSeparated(p, p.parseUtilityOption); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (p *Parser) parseDetach() (*ast.Detach, error) {
	p.index++
	d := &ast.Detach{DatabaseKeyword: p.ParseKeyword(keyword.DATABASE)}
	d.IfExists = p.parseIfExists()
	var err error
	if d.Name, err = p.ParseIdentifier(); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *Parser) parseCache() (*ast.Cache, error) {
	p.index++
	c := &ast.Cache{Lazy: p.ParseKeyword(keyword.LAZY)}
	if _, err := p.ExpectKeyword(keyword.TABLE); err != nil {
		return nil, err
	}
	var err error
	if c.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.OPTIONS) {
		if c.Options, err = p.ParseOptions(); err != nil {
			return nil, err
		}
	}
	c.AsKw = p.ParseKeyword(keyword.AS)
	if c.AsKw || p.isQueryStart() {
		if c.Query, err = p.ParseQuery(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (p *Parser) parseLock() (*ast.Lock, error) {
	p.index++
	l := &ast.Lock{TableKeyword: p.ParseKeyword(keyword.TABLE)}
	l.Only = p.ParseKeyword(keyword.ONLY)
	var err error
	if l.Tables, err = p.parseObjectNames(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.IN) {
		words := p.parseSpacedWords(func(t token.TokenWithSpan) bool { return t.IsKeyword(keyword.MODE) })
		if len(words) == 0 {
			return nil, p.Expected("lock mode", p.PeekToken())
		}
		for i, w := range words {
			words[i] = strings.ToUpper(w)
		}
		if _, err := p.ExpectKeyword(keyword.MODE); err != nil {
			return nil, err
		}
		l.Mode = strings.Join(words, " ")
	}
	l.NoWait = p.ParseKeyword(keyword.NOWAIT)
	return l, nil
}

func (p *Parser) parseCall() (*ast.Call, error) {
	p.index++
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	if !p.ConsumeToken(token.LPAREN) {
		return &ast.Call{Function: &ast.Function{Name: name}}, nil
	}
	fn, err := p.parseFunction(name)
	if err != nil {
		return nil, err
	}
	return &ast.Call{Function: fn.(*ast.Function)}, nil
}

var flushLogKinds = []keyword.Keyword{
	keyword.BINARY, keyword.ENGINE, keyword.ERROR, keyword.GENERAL, keyword.RELAY, keyword.SLOW,
}

func (p *Parser) parseFlush() (*ast.Flush, error) {
	p.index++
	f := &ast.Flush{}
	if kw := p.ParseOneOfKeywords(keyword.NO_WRITE_TO_BINLOG, keyword.LOCAL); kw != keyword.NoKeyword {
		f.Location = kw.String()
	}
	if kw := p.ParseOneOfKeywords(flushLogKinds...); kw != keyword.NoKeyword {
		if _, err := p.ExpectKeyword(keyword.LOGS); err != nil {
			return nil, err
		}
		f.Object = kw.String() + " LOGS"
		return f, nil
	}
	obj, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	f.Object = strings.ToUpper(obj.Value)
	if strings.EqualFold(obj.Value, "TABLES") {
		if p.peekIs(token.WORD) && !p.peekOneOf(keyword.WITH, keyword.FOR) {
			if f.Tables, err = p.parseObjectNames(); err != nil {
				return nil, err
			}
		}
		f.ReadLock = p.ParseKeywords(keyword.WITH, keyword.READ, keyword.LOCK)
		f.Export = p.ParseKeywords(keyword.FOR, keyword.EXPORT)
	}
	return f, nil
}

func (p *Parser) parseNotify() (*ast.Notify, error) {
	p.index++
	ch, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	n := &ast.Notify{Channel: ch}
	if p.ConsumeToken(token.COMMA) {
		payload, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		n.Payload = &payload
	}
	return n, nil
}

func (p *Parser) parseDo() (*ast.Do, error) {
	p.index++
	d := &ast.Do{}
	parseLanguage := func() error {
		if !p.ParseKeyword(keyword.LANGUAGE) {
			return nil
		}
		lang, err := p.ParseIdentifier()
		if err != nil {
			return err
		}
		d.Language = &lang
		return nil
	}
	if err := parseLanguage(); err != nil {
		return nil, err
	}
	var err error
	if d.Body, err = p.ParseLiteralString(); err != nil {
		return nil, err
	}
	if d.Language == nil {
		if err := parseLanguage(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (p *Parser) parseVacuum() (*ast.Vacuum, error) {
	p.index++
	v := &ast.Vacuum{}
	if p.ConsumeToken(token.LPAREN) {
		v.Parens = true
		opts, err := parseCommaSeparated(p, func() (string, error) {
			words := p.parseSpacedWords(func(token.TokenWithSpan) bool { return false })
			if len(words) == 0 {
				return "", p.Expected("VACUUM option", p.PeekToken())
			}
			for i, w := range words {
				words[i] = strings.ToUpper(w)
			}
			s := strings.Join(words, " ")
			if tok := p.PeekToken(); tok.Type == token.NUMBER {
				p.index++
				s += " " + tok.Value
			}
			return s, nil
		})
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
		v.Options = opts
	} else {
		for {
			kw := p.ParseOneOfKeywords(keyword.FULL, keyword.FREEZE, keyword.VERBOSE, keyword.ANALYZE,
				keyword.SORT, keyword.DELETE, keyword.ONLY, keyword.REINDEX, keyword.RECLUSTER, keyword.BOOST)
			if kw == keyword.NoKeyword {
				break
			}
			v.Options = append(v.Options, kw.String())
		}
	}
	var err error
	if p.peekIs(token.WORD) && !p.PeekKeyword(keyword.TO) {
		if v.Tables, err = p.parseObjectNames(); err != nil {
			return nil, err
		}
		if len(v.Tables) == 1 && p.peekIs(token.LPAREN) {
			if v.Columns, err = p.parseParenIdents(); err != nil {
				return nil, err
			}
		}
	}
	if p.ParseKeyword(keyword.TO) {
		if v.Threshold, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectKeyword(keyword.PERCENT); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (p *Parser) parseRaisError() (*ast.RaisError, error) {
	p.index++
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	args, err := p.ParseCommaSeparatedExprs()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if len(args) < 3 {
		return nil, p.Expected("message, severity and state", p.lastToken())
	}
	r := &ast.RaisError{Message: args[0], Severity: args[1], State: args[2], Args: args[3:]}
	if p.ParseKeyword(keyword.WITH) {
		opts, err := parseCommaSeparated(p, func() (string, error) {
			kw, err := p.expectOneOfKeywords(keyword.LOG, keyword.NOWAIT, keyword.SETERROR)
			return kw.String(), err
		})
		if err != nil {
			return nil, err
		}
		r.Options = opts
	}
	return r, nil
}

func (p *Parser) parseMsck() (*ast.Msck, error) {
	p.index++
	m := &ast.Msck{Repair: p.ParseKeyword(keyword.REPAIR)}
	if _, err := p.ExpectKeyword(keyword.TABLE); err != nil {
		return nil, err
	}
	var err error
	if m.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if kw := p.ParseOneOfKeywords(keyword.ADD, keyword.DROP, keyword.SYNC); kw != keyword.NoKeyword {
		if _, err := p.ExpectKeyword(keyword.PARTITIONS); err != nil {
			return nil, err
		}
		m.PartitionAction = kw.String()
	}
	return m, nil
}

// ---------- Prepared statements ----------

func (p *Parser) parsePrepare() (*ast.Prepare, error) {
	p.index++
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	pr := &ast.Prepare{Name: name}
	if p.ConsumeToken(token.LPAREN) {
		if pr.DataTypes, err = parseCommaSeparated(p, p.ParseDataType); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	if _, err := p.ExpectKeyword(keyword.AS); err != nil {
		return nil, err
	}
	if pr.Statement, err = p.ParseStatement(); err != nil {
		return nil, err
	}
	return pr, nil
}

func (p *Parser) parseExecute() (*ast.Execute, error) {
	e := &ast.Execute{Keyword: p.NextToken().Keyword.String()}
	var err error
	if p.ParseKeyword(keyword.IMMEDIATE) {
		e.Immediate = true
		if e.Query, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	} else {
		name, err := p.parseVariableName()
		if err != nil {
			return nil, err
		}
		e.Name = &name
	}
	switch {
	case !e.Immediate && p.ConsumeToken(token.LPAREN):
		e.Parens = true
		if e.Params, err = p.parseOptionalExprList(token.RPAREN); err != nil {
			return nil, err
		}
	case !e.Immediate && !p.isStatementEnd() && !p.peekOneOf(keyword.INTO, keyword.USING):
		if e.Params, err = p.ParseCommaSeparatedExprs(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.INTO) {
		if e.Into, err = p.ParseIdentifiers(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.USING) {
		if e.Using, err = parseCommaSeparated(p, p.parseExprWithAlias); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// ---------- Cursors and variables ----------

func (p *Parser) parseDeclare() (*ast.Declare, error) {
	p.index++
	items, err := parseCommaSeparated(p, p.parseDeclaration)
	if err != nil {
		return nil, err
	}
	return &ast.Declare{Items: items}, nil
}

var cursorModifiers = []keyword.Keyword{
	keyword.BINARY, keyword.INSENSITIVE, keyword.ASENSITIVE, keyword.SCROLL,
}

func (p *Parser) parseDeclaration() (ast.Declaration, error) {
	var d ast.Declaration
	first, err := p.parseVariableName()
	if err != nil {
		return d, err
	}
	d.Names = first.Idents()
	// @variables are declared one per item; plain names may share a type
	if tok := d.Names[0]; len(tok.Value) == 0 || tok.Value[0] != '@' {
		for p.peekIs(token.COMMA) && p.peekNthIs(1, token.WORD) {
			p.index++
			id, err := p.ParseIdentifier()
			if err != nil {
				return d, err
			}
			d.Names = append(d.Names, id)
		}
	}

	for {
		if p.ParseKeywords(keyword.NO, keyword.SCROLL) {
			d.Modifiers = append(d.Modifiers, "NO SCROLL")
			continue
		}
		kw := p.ParseOneOfKeywords(cursorModifiers...)
		if kw == keyword.NoKeyword {
			break
		}
		d.Modifiers = append(d.Modifiers, kw.String())
	}

	switch {
	case p.ParseKeyword(keyword.CURSOR):
		d.Kind = "CURSOR"
		if _, err := p.ExpectKeyword(keyword.FOR); err != nil {
			return d, err
		}
		if d.For, err = p.ParseQuery(); err != nil {
			return d, err
		}
		return d, nil
	case p.ParseKeyword(keyword.EXCEPTION):
		d.Kind = "EXCEPTION"
		return d, nil
	case p.ParseKeyword(keyword.CONDITION):
		d.Kind = "CONDITION"
		if p.ParseKeywords(keyword.FOR, keyword.SQLSTATE) {
			p.ParseKeyword(keyword.VALUE)
			v, err := p.ParseLiteralString()
			if err != nil {
				return d, err
			}
			d.ForValue = &v
		}
		return d, nil
	case p.ParseKeyword(keyword.RESULTSET):
		d.Kind = "RESULTSET"
	default:
		p.ParseKeyword(keyword.AS)
		if !p.isDeclarationValueStart() {
			if d.DataType, err = p.ParseDataType(); err != nil {
				return d, err
			}
		}
	}

	switch {
	case p.ParseKeyword(keyword.DEFAULT):
		d.AssignOp = "DEFAULT"
	case p.ConsumeToken(token.ASSIGN):
		d.AssignOp = ":="
	case p.ConsumeToken(token.EQ):
		d.AssignOp = "="
	default:
		return d, nil
	}
	if d.Default, err = p.ParseExpr(); err != nil {
		return d, err
	}
	return d, nil
}

func (p *Parser) isDeclarationValueStart() bool {
	tok := p.PeekToken()
	return tok.IsKeyword(keyword.DEFAULT) || tok.Type == token.ASSIGN || tok.Type == token.EQ ||
		tok.Type == token.COMMA || tok.Type == token.SEMICOLON || tok.Type == token.EOF
}

var fetchDirections = []keyword.Keyword{
	keyword.NEXT, keyword.PRIOR, keyword.FIRST, keyword.LAST,
	keyword.ABSOLUTE, keyword.RELATIVE, keyword.ALL, keyword.FORWARD, keyword.BACKWARD,
}

func (p *Parser) parseFetchCursor() (*ast.FetchCursor, error) {
	f := &ast.FetchCursor{Move: p.NextToken().IsKeyword(keyword.MOVE)}
	var err error
	dir := p.ParseOneOfKeywords(fetchDirections...)
	if dir != keyword.NoKeyword {
		f.Direction = dir.String()
	}
	switch dir {
	case keyword.ABSOLUTE, keyword.RELATIVE:
		if f.Count, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	case keyword.FORWARD, keyword.BACKWARD:
		if p.ParseKeyword(keyword.ALL) {
			f.Direction += " ALL"
		} else if p.peekIs(token.NUMBER) || p.peekIs(token.MINUS) {
			if f.Count, err = p.ParseExpr(); err != nil {
				return nil, err
			}
		}
	case keyword.NoKeyword:
		if p.peekIs(token.NUMBER) || p.peekIs(token.MINUS) {
			if f.Count, err = p.ParseExpr(); err != nil {
				return nil, err
			}
		}
	}
	if kw := p.ParseOneOfKeywords(keyword.FROM, keyword.IN); kw != keyword.NoKeyword {
		f.FromIn = kw.String()
	}
	if f.Name, err = p.ParseIdentifier(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.INTO) {
		into, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		f.Into = &into
	}
	return f, nil
}
