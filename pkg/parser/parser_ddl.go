package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// Schema definition statements: CREATE, DROP and TRUNCATE.
//
// CREATE reads its modifiers first (OR REPLACE, TEMPORARY, EXTERNAL, ...)
// and then dispatches on the object kind. The grammar accepted for each
// kind is the union of what the supported engines write; dialect checks
// are left to the engines themselves.

// createPrefix holds the modifiers written between CREATE and the object
// kind.
type createPrefix struct {
	orReplace    bool
	orAlter      bool
	temporary    string
	global       *bool
	unlogged     bool
	external     bool
	transient    bool
	volatile     bool
	iceberg      bool
	dynamic      bool
	secure       bool
	materialized bool
	unique       bool
	constraint   bool
	foreign      bool
	virtual      bool
	algorithm    string
	security     string
	definer      *ast.ObjectName
}

func (p *Parser) parseCreatePrefix() (createPrefix, error) {
	var pre createPrefix
	for {
		tok := p.PeekToken()
		if tok.Type != token.WORD || tok.Quote != 0 {
			return pre, nil
		}
		next := p.PeekNthToken(1)
		switch tok.Keyword {
		case keyword.OR:
			p.index++
			kw, err := p.expectOneOfKeywords(keyword.REPLACE, keyword.ALTER)
			if err != nil {
				return pre, err
			}
			pre.orReplace = pre.orReplace || kw == keyword.REPLACE
			pre.orAlter = pre.orAlter || kw == keyword.ALTER
			continue
		case keyword.ALGORITHM:
			p.index++
			if _, err := p.ExpectToken(token.EQ); err != nil {
				return pre, err
			}
			id, err := p.ParseIdentifier()
			if err != nil {
				return pre, err
			}
			pre.algorithm = strings.ToUpper(id.Value)
			continue
		case keyword.DEFINER:
			p.index++
			if _, err := p.ExpectToken(token.EQ); err != nil {
				return pre, err
			}
			id, err := p.parseIdentOrString()
			if err != nil {
				return pre, err
			}
			name := ast.NewObjectName(id)
			pre.definer = &name
			continue
		case keyword.SQL:
			if !next.IsKeyword(keyword.SECURITY) {
				return pre, nil
			}
			p.index += 2
			id, err := p.ParseIdentifier()
			if err != nil {
				return pre, err
			}
			pre.security = strings.ToUpper(id.Value)
			continue
		case keyword.GLOBAL:
			pre.global = boolPtr(true)
		case keyword.LOCAL:
			pre.global = boolPtr(false)
		case keyword.TEMP, keyword.TEMPORARY:
			pre.temporary = tok.Keyword.String()
		case keyword.UNLOGGED:
			pre.unlogged = true
		case keyword.EXTERNAL:
			pre.external = true
		case keyword.TRANSIENT:
			pre.transient = true
		case keyword.VOLATILE:
			pre.volatile = true
		case keyword.ICEBERG:
			pre.iceberg = true
		case keyword.DYNAMIC:
			pre.dynamic = true
		case keyword.SECURE:
			pre.secure = true
		case keyword.MATERIALIZED:
			pre.materialized = true
		case keyword.UNIQUE:
			pre.unique = true
		case keyword.VIRTUAL:
			pre.virtual = true
		case keyword.CONSTRAINT:
			if !next.IsKeyword(keyword.TRIGGER) {
				return pre, nil
			}
			pre.constraint = true
		case keyword.FOREIGN:
			if !next.IsKeyword(keyword.TABLE) {
				return pre, nil
			}
			pre.foreign = true
		default:
			return pre, nil
		}
		p.index++
	}
}

func (p *Parser) parseCreate() (ast.Statement, error) {
	p.NextToken()
	pre, err := p.parseCreatePrefix()
	if err != nil {
		return nil, err
	}
	tok := p.PeekToken()
	if tok.Type != token.WORD || tok.Quote != 0 {
		return nil, p.Expected("an object type after CREATE", tok)
	}
	p.index++
	switch tok.Keyword {
	case keyword.TABLE:
		if pre.virtual {
			return p.parseCreateVirtualTable()
		}
		return p.parseCreateTable(pre)
	case keyword.VIEW:
		return p.parseCreateView(pre)
	case keyword.INDEX:
		return p.parseCreateIndex(pre)
	case keyword.FUNCTION:
		return p.parseCreateFunction(pre)
	case keyword.PROCEDURE, keyword.PROC:
		return p.parseCreateProcedure(pre)
	case keyword.TRIGGER:
		return p.parseCreateTrigger(pre)
	case keyword.SCHEMA:
		return p.parseCreateSchema()
	case keyword.DATABASE:
		return p.parseCreateDatabase()
	case keyword.ROLE:
		return p.parseCreateRole()
	case keyword.USER:
		return p.parseCreateUser(pre)
	case keyword.SEQUENCE:
		return p.parseCreateSequence(pre)
	case keyword.TYPE:
		return p.parseCreateType()
	case keyword.DOMAIN:
		return p.parseCreateDomain()
	case keyword.EXTENSION:
		return p.parseCreateExtension()
	case keyword.POLICY:
		return p.parseCreatePolicy()
	case keyword.SERVER:
		return p.parseCreateServer()
	case keyword.ASSERTION:
		return p.parseCreateAssertion()
	case keyword.MACRO:
		return p.parseCreateMacro(pre)
	case keyword.OPERATOR, keyword.PROPERTY, keyword.FOREIGN:
		p.index--
		return nil, p.Unsupported("CREATE " + tok.Keyword.String())
	}
	p.index--
	return nil, p.Expected("an object type after CREATE", tok)
}

// ---------- CREATE TABLE ----------

func (p *Parser) parseCreateTable(pre createPrefix) (*ast.CreateTable, error) {
	ct := &ast.CreateTable{
		OrReplace: pre.orReplace,
		Temporary: pre.temporary,
		Global:    pre.global,
		Unlogged:  pre.unlogged,
		External:  pre.external,
		Transient: pre.transient,
		Volatile:  pre.volatile,
		Iceberg:   pre.iceberg,
		Dynamic:   pre.dynamic,
		Foreign:   pre.foreign,
	}
	ct.IfNotExists = p.parseIfNotExists()
	var err error
	if ct.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.ParseKeywords(keyword.ON, keyword.CLUSTER) {
		id, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		ct.OnCluster = &id
	}
	if p.ParseKeyword(keyword.LIKE) {
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		ct.Like = &name
	}
	if p.peekIs(token.LPAREN) && !p.isParenQuery() {
		if err := p.parseTableElements(ct); err != nil {
			return nil, err
		}
	}
	if err := p.parseCreateTableOptions(ct); err != nil {
		return nil, err
	}
	return ct, nil
}

// parseTableElements parses the parenthesized column and constraint list,
// or PostgreSQL's (LIKE source).
func (p *Parser) parseTableElements(ct *ast.CreateTable) error {
	p.NextToken()
	if p.ConsumeToken(token.RPAREN) {
		return nil
	}
	if p.ParseKeyword(keyword.LIKE) {
		name, err := p.ParseObjectName()
		if err != nil {
			return err
		}
		ct.Like = &name
		ct.LikeInParens = true
		_, err = p.ExpectToken(token.RPAREN)
		return err
	}
	for {
		if p.isTableConstraintStart() {
			tc, err := p.parseTableConstraint()
			if err != nil {
				return err
			}
			ct.Constraints = append(ct.Constraints, tc)
		} else {
			col, err := p.parseColumnDef()
			if err != nil {
				return err
			}
			ct.Columns = append(ct.Columns, col)
		}
		if !p.ConsumeToken(token.COMMA) {
			break
		}
		if p.options.TrailingCommas && p.peekIs(token.RPAREN) {
			break
		}
	}
	_, err := p.ExpectToken(token.RPAREN)
	return err
}

var rowFormatStops = keyword.NewSet(
	keyword.STORED, keyword.LOCATION, keyword.TBLPROPERTIES, keyword.AS,
	keyword.COMMENT, keyword.PARTITIONED, keyword.WITH, keyword.OPTIONS,
)

// parseCreateTableOptions parses the clauses after the column list. They
// are accepted in any order.
func (p *Parser) parseCreateTableOptions(ct *ast.CreateTable) error {
	var err error
	for {
		tok := p.PeekToken()
		if tok.Type != token.WORD || tok.Quote != 0 {
			return nil
		}
		switch tok.Keyword {
		case keyword.AS:
			p.index++
			ct.Query, err = p.ParseQuery()
			return err
		case keyword.ENGINE:
			p.index++
			p.ConsumeToken(token.EQ)
			if ct.Engine, err = p.parseOptionValue(); err != nil {
				return err
			}
		case keyword.COMMENT:
			p.index++
			p.ConsumeToken(token.EQ)
			v, err := p.ParseLiteralString()
			if err != nil {
				return err
			}
			ct.Comment = &v
		case keyword.PARTITIONED:
			p.index++
			if _, err := p.ExpectKeyword(keyword.BY); err != nil {
				return err
			}
			if ct.PartitionedBy, err = p.parseColumnDefList(); err != nil {
				return err
			}
		case keyword.PARTITION:
			p.index++
			if _, err := p.ExpectKeyword(keyword.BY); err != nil {
				return err
			}
			if ct.PartitionBy, err = p.ParseExpr(); err != nil {
				return err
			}
		case keyword.CLUSTER:
			p.index++
			if _, err := p.ExpectKeyword(keyword.BY); err != nil {
				return err
			}
			if ct.ClusterBy, err = p.parseOneOrManyExprs(); err != nil {
				return err
			}
		case keyword.ORDER:
			p.index++
			if _, err := p.ExpectKeyword(keyword.BY); err != nil {
				return err
			}
			if ct.OrderBy, err = p.parseOneOrManyExprs(); err != nil {
				return err
			}
		case keyword.PRIMARY:
			p.index++
			if _, err := p.ExpectKeyword(keyword.KEY); err != nil {
				return err
			}
			if ct.PrimaryKey, err = p.ParseExpr(); err != nil {
				return err
			}
		case keyword.ROW:
			p.index++
			if _, err := p.ExpectKeyword(keyword.FORMAT); err != nil {
				return err
			}
			rf, err := p.parseRowFormat()
			if err != nil {
				return err
			}
			hiveFormat(ct).RowFormat = rf
		case keyword.STORED:
			p.index++
			if _, err := p.ExpectKeyword(keyword.AS); err != nil {
				return err
			}
			if err := p.parseStoredAs(hiveFormat(ct)); err != nil {
				return err
			}
		case keyword.LOCATION:
			p.index++
			v, err := p.ParseLiteralString()
			if err != nil {
				return err
			}
			hiveFormat(ct).Location = &v
		case keyword.WITH, keyword.OPTIONS, keyword.TBLPROPERTIES:
			if !p.peekNthIs(1, token.LPAREN) {
				return nil
			}
			p.index++
			opts, err := p.ParseOptions()
			if err != nil {
				return err
			}
			ct.Options = append(ct.Options, ast.TableOptions{Kind: ast.OptionsKind(tok.Keyword.String()), Options: opts})
		case keyword.SETTINGS:
			p.index++
			if ct.Settings, err = parseCommaSeparated(p, p.parseSetting); err != nil {
				return err
			}
		case keyword.ON:
			if !p.PeekNthToken(1).IsKeyword(keyword.COMMIT) {
				return nil
			}
			p.index += 2
			switch {
			case p.ParseKeywords(keyword.DELETE, keyword.ROWS):
				ct.OnCommit = "DELETE ROWS"
			case p.ParseKeywords(keyword.PRESERVE, keyword.ROWS):
				ct.OnCommit = "PRESERVE ROWS"
			case p.ParseKeyword(keyword.DROP):
				ct.OnCommit = "DROP"
			default:
				return p.Expected("DELETE ROWS, PRESERVE ROWS or DROP", p.PeekToken())
			}
		case keyword.SERVER:
			p.index++
			id, err := p.ParseIdentifier()
			if err != nil {
				return err
			}
			ct.Server = &id
		case keyword.INHERITS:
			p.index++
			if _, err := p.ExpectToken(token.LPAREN); err != nil {
				return err
			}
			if ct.Inherits, err = p.parseObjectNames(); err != nil {
				return err
			}
			if _, err := p.ExpectToken(token.RPAREN); err != nil {
				return err
			}
		case keyword.CLONE:
			p.index++
			name, err := p.ParseObjectName()
			if err != nil {
				return err
			}
			ct.Clone = &name
		case keyword.WITHOUT:
			p.index++
			if _, err := p.ExpectKeyword(keyword.ROWID); err != nil {
				return err
			}
			ct.WithoutRowID = true
			p.ConsumeToken(token.COMMA)
		case keyword.STRICT:
			p.index++
			ct.Strict = true
			p.ConsumeToken(token.COMMA)
		default:
			if !p.isPlainOptionStart() {
				return nil
			}
			opt, err := p.parsePlainOption()
			if err != nil {
				return err
			}
			// consecutive plain options share one list
			if n := len(ct.Options); n > 0 && ct.Options[n-1].Kind == ast.OptionsPlain {
				ct.Options[n-1].Options = append(ct.Options[n-1].Options, opt)
			} else {
				ct.Options = append(ct.Options, ast.TableOptions{Options: []ast.SQLOption{opt}})
			}
			p.ConsumeToken(token.COMMA)
		}
	}
}

func hiveFormat(ct *ast.CreateTable) *ast.HiveFormat {
	if ct.Hive == nil {
		ct.Hive = &ast.HiveFormat{}
	}
	return ct.Hive
}

// parseRowFormat parses what follows ROW FORMAT: SERDE 'class' or
// DELIMITED with its terminator clauses, kept as written.
func (p *Parser) parseRowFormat() (string, error) {
	if p.ParseKeyword(keyword.SERDE) {
		v, err := p.ParseLiteralString()
		if err != nil {
			return "", err
		}
		return "SERDE " + v.String(), nil
	}
	if _, err := p.ExpectKeyword(keyword.DELIMITED); err != nil {
		return "", err
	}
	parts := []string{"DELIMITED"}
	for {
		tok := p.PeekToken()
		switch {
		case tok.Type == token.STRING:
			parts = append(parts, stringValue(tok).String())
		case tok.Type == token.WORD && tok.Quote == 0 && !rowFormatStops.Contains(tok.Keyword):
			parts = append(parts, strings.ToUpper(tok.Value))
		default:
			return strings.Join(parts, " "), nil
		}
		p.index++
	}
}

func (p *Parser) parseStoredAs(h *ast.HiveFormat) error {
	if p.ParseKeyword(keyword.INPUTFORMAT) {
		in, err := p.ParseLiteralString()
		if err != nil {
			return err
		}
		if _, err := p.ExpectKeyword(keyword.OUTPUTFORMAT); err != nil {
			return err
		}
		out, err := p.ParseLiteralString()
		if err != nil {
			return err
		}
		h.InputFmt, h.OutputFmt = &in, &out
		return nil
	}
	id, err := p.ParseIdentifier()
	if err != nil {
		return err
	}
	h.StoredAs = strings.ToUpper(id.Value)
	return nil
}

// parseOneOrManyExprs parses a single expression or a parenthesized list.
func (p *Parser) parseOneOrManyExprs() (*ast.OneOrManyWithParens[ast.Expr], error) {
	if p.peekIs(token.LPAREN) && !p.isParenQuery() {
		exprs, err := p.parseParenExprs()
		if err != nil {
			return nil, err
		}
		many := ast.Many(exprs)
		return &many, nil
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	one := ast.One(e)
	return &one, nil
}

// isPlainOptionStart reports whether a bare `key = value` option follows.
// Keys may be two words, as in DEFAULT CHARSET = utf8.
func (p *Parser) isPlainOptionStart() bool {
	for n := 0; n < 3; n++ {
		tok := p.PeekNthToken(n)
		if n > 0 && tok.Type == token.EQ {
			return true
		}
		if tok.Type != token.WORD || tok.Quote != 0 {
			return false
		}
	}
	return false
}

func (p *Parser) parsePlainOption() (ast.SQLOption, error) {
	first := p.NextToken()
	key := identFrom(first)
	for !p.peekIs(token.EQ) {
		tok := p.NextToken()
		key.Value += " " + tok.Value
		key.Span = key.Span.Union(tok.Span)
	}
	p.NextToken()
	val, err := p.parseOptionValue()
	if err != nil {
		return ast.SQLOption{}, err
	}
	return ast.SQLOption{Key: key, Value: val}, nil
}

// parseOptionValue parses the value of a `key = value` option. Bare words
// are names; calls and other forms go through the expression parser.
func (p *Parser) parseOptionValue() (ast.Expr, error) {
	tok := p.PeekToken()
	switch tok.Type {
	case token.STRING, token.NUMBER:
		return p.parseLiteralExpr()
	case token.WORD:
		if tok.Quote == 0 && (tok.Keyword == keyword.TRUE || tok.Keyword == keyword.FALSE || tok.Keyword == keyword.NULL) {
			return p.parseLiteralExpr()
		}
		if !p.peekNthIs(1, token.LPAREN) && !p.peekNthIs(1, token.DOT) {
			p.index++
			return identFrom(tok), nil
		}
	}
	return p.ParseExpr()
}

func (p *Parser) parseLiteralExpr() (ast.Expr, error) {
	tok := p.PeekToken()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &ast.ValueWithSpan{Value: v, Span: tok.Span}, nil
}

func (p *Parser) parseParenthesizedExpr() (ast.Expr, error) {
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return e, nil
}

// ---------- Column Definitions ----------

// parseColumnDefList parses ( column_def, ... ).
func (p *Parser) parseColumnDefList() ([]ast.ColumnDef, error) {
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	if p.ConsumeToken(token.RPAREN) {
		return nil, nil
	}
	cols, err := parseCommaSeparated(p, p.parseColumnDef)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return cols, nil
}

// typelessColumnStarts are the options that may directly follow a column
// name when the type is omitted, as SQLite allows.
var typelessColumnStarts = keyword.NewSet(
	keyword.NOT, keyword.NULL, keyword.PRIMARY, keyword.UNIQUE, keyword.CHECK,
	keyword.REFERENCES, keyword.CONSTRAINT, keyword.DEFAULT, keyword.COLLATE,
	keyword.GENERATED, keyword.AS, keyword.COMMENT,
)

func (p *Parser) parseColumnDef() (ast.ColumnDef, error) {
	name, err := p.ParseIdentifier()
	if err != nil {
		return ast.ColumnDef{}, err
	}
	col := ast.ColumnDef{Name: name}
	tok := p.PeekToken()
	typeless := tok.Type == token.COMMA || tok.Type == token.RPAREN ||
		tok.Type == token.EOF || tok.Type == token.SEMICOLON ||
		(tok.Type == token.WORD && tok.Quote == 0 && typelessColumnStarts.Contains(tok.Keyword))
	if !typeless {
		if col.DataType, err = p.ParseDataType(); err != nil {
			return ast.ColumnDef{}, err
		}
	}
	for {
		opt, ok, err := p.parseColumnOptionDef()
		if err != nil {
			return ast.ColumnDef{}, err
		}
		if !ok {
			return col, nil
		}
		col.Options = append(col.Options, opt)
	}
}

func (p *Parser) parseColumnOptionDef() (ast.ColumnOptionDef, bool, error) {
	var name *ast.Ident
	if p.ParseKeyword(keyword.CONSTRAINT) {
		id, err := p.ParseIdentifier()
		if err != nil {
			return ast.ColumnOptionDef{}, false, err
		}
		name = &id
	}
	opt, err := p.parseColumnOption()
	if err != nil {
		return ast.ColumnOptionDef{}, false, err
	}
	if opt == nil {
		if name != nil {
			return ast.ColumnOptionDef{}, false, p.Expected("a column constraint", p.PeekToken())
		}
		return ast.ColumnOptionDef{}, false, nil
	}
	return ast.ColumnOptionDef{Name: name, Option: opt}, true, nil
}

// parseColumnOption parses one column option, or returns nil when none
// follows.
func (p *Parser) parseColumnOption() (ast.ColumnOption, error) {
	tok := p.PeekToken()
	if tok.Type != token.WORD || tok.Quote != 0 {
		return nil, nil
	}
	next := p.PeekNthToken(1)
	switch tok.Keyword {
	case keyword.NOT:
		if next.IsKeyword(keyword.NULL) {
			p.index += 2
			return &ast.NullOption{NotNull: true}, nil
		}
	case keyword.NULL:
		p.index++
		return &ast.NullOption{}, nil
	case keyword.DEFAULT, keyword.MATERIALIZED, keyword.ALIAS:
		p.index++
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.DefaultOption{Keyword: tok.Keyword.String(), Expr: e}, nil
	case keyword.EPHEMERAL:
		p.index++
		o := &ast.DefaultOption{Keyword: tok.Keyword.String()}
		if t := p.PeekToken(); t.Type != token.COMMA && t.Type != token.RPAREN && !t.IsKeyword(keyword.COMMENT) {
			e, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			o.Expr = e
		}
		return o, nil
	case keyword.PRIMARY:
		p.index++
		if _, err := p.ExpectKeyword(keyword.KEY); err != nil {
			return nil, err
		}
		chars, err := p.parseConstraintCharacteristics()
		if err != nil {
			return nil, err
		}
		return &ast.UniqueOption{Primary: true, Characteristics: chars}, nil
	case keyword.UNIQUE:
		p.index++
		p.ParseKeyword(keyword.KEY)
		o := &ast.UniqueOption{NullsDistinct: p.parseNullsDistinct()}
		var err error
		if o.Characteristics, err = p.parseConstraintCharacteristics(); err != nil {
			return nil, err
		}
		return o, nil
	case keyword.CHECK:
		p.index++
		e, err := p.parseParenthesizedExpr()
		if err != nil {
			return nil, err
		}
		return &ast.CheckOption{Expr: e}, nil
	case keyword.REFERENCES:
		p.index++
		return p.parseReferences()
	case keyword.ON:
		switch {
		case next.IsKeyword(keyword.UPDATE):
			p.index += 2
			e, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			return &ast.OnUpdateOption{Expr: e}, nil
		case next.IsKeyword(keyword.CONFLICT):
			p.index += 2
			kw, err := p.expectOneOfKeywords(insertOrActions...)
			if err != nil {
				return nil, err
			}
			return &ast.OnConflictOption{Resolution: kw.String()}, nil
		}
	case keyword.COLLATE:
		p.index++
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		return &ast.CollateOption{Collation: name}, nil
	case keyword.CHARACTER, keyword.CHARSET:
		p.index++
		if tok.Keyword == keyword.CHARACTER {
			if _, err := p.ExpectKeyword(keyword.SET); err != nil {
				return nil, err
			}
		}
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		return &ast.CharsetOption{Name: name}, nil
	case keyword.COMMENT:
		p.index++
		v, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		return &ast.CommentOption{Text: v}, nil
	case keyword.GENERATED:
		p.index++
		return p.parseGenerated()
	case keyword.AS:
		if next.Type == token.LPAREN {
			p.index++
			return p.parseGeneratedExpr(&ast.GeneratedOption{Always: true, Short: true})
		}
	case keyword.IDENTITY, keyword.AUTOINCREMENT:
		p.index++
		return p.parseIdentity(tok.Keyword.String())
	case keyword.AUTO_INCREMENT, keyword.INVISIBLE, keyword.VISIBLE:
		p.index++
		return &ast.KeywordOption{Words: []string{tok.Keyword.String()}}, nil
	case keyword.SRID:
		p.index++
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.SridOption{Expr: e}, nil
	case keyword.OPTIONS:
		if next.Type == token.LPAREN {
			p.index++
			opts, err := p.ParseOptions()
			if err != nil {
				return nil, err
			}
			return &ast.OptionsOption{Options: opts}, nil
		}
	case keyword.WITH:
		if p.isPolicyOptionAt(1) {
			p.index++
			return p.parsePolicyOption(true)
		}
	case keyword.MASKING, keyword.PROJECTION, keyword.TAG:
		if p.isPolicyOptionAt(0) {
			return p.parsePolicyOption(false)
		}
	}
	return nil, nil
}

func (p *Parser) isPolicyOptionAt(n int) bool {
	tok := p.PeekNthToken(n)
	switch {
	case tok.IsKeyword(keyword.MASKING), tok.IsKeyword(keyword.PROJECTION):
		return p.PeekNthToken(n + 1).IsKeyword(keyword.POLICY)
	case tok.IsKeyword(keyword.TAG):
		return p.peekNthIs(n+1, token.LPAREN)
	}
	return false
}

func (p *Parser) parsePolicyOption(with bool) (ast.ColumnOption, error) {
	o := &ast.PolicyOption{With: with}
	kw := p.NextToken().Keyword
	var err error
	if kw == keyword.TAG {
		o.Kind = "TAG"
		if o.Tags, err = p.ParseOptions(); err != nil {
			return nil, err
		}
		return o, nil
	}
	p.NextToken() // POLICY
	o.Kind = kw.String() + " POLICY"
	if o.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.USING) {
		if o.Using, err = p.parseParenIdents(); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (p *Parser) parseIdentity(name string) (ast.ColumnOption, error) {
	o := &ast.IdentityOption{Keyword: name}
	if p.ConsumeToken(token.LPAREN) {
		var err error
		if o.Seed, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.COMMA); err != nil {
			return nil, err
		}
		if o.Increment, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	if kw := p.ParseOneOfKeywords(keyword.ORDER, keyword.NOORDER); kw != keyword.NoKeyword {
		o.Order = kw.String()
	}
	return o, nil
}

// parseGenerated parses what follows GENERATED.
func (p *Parser) parseGenerated() (ast.ColumnOption, error) {
	o := &ast.GeneratedOption{}
	switch {
	case p.ParseKeyword(keyword.ALWAYS):
		o.Always = true
	case p.ParseKeywords(keyword.BY, keyword.DEFAULT):
	default:
		return nil, p.Expected("ALWAYS or BY DEFAULT", p.PeekToken())
	}
	if _, err := p.ExpectKeyword(keyword.AS); err != nil {
		return nil, err
	}
	if !p.ParseKeyword(keyword.IDENTITY) {
		return p.parseGeneratedExpr(o)
	}
	o.Identity = true
	if p.ConsumeToken(token.LPAREN) {
		var err error
		if o.SeqOptions, err = p.parseSequenceOptions(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (p *Parser) parseGeneratedExpr(o *ast.GeneratedOption) (ast.ColumnOption, error) {
	var err error
	if o.Expr, err = p.parseParenthesizedExpr(); err != nil {
		return nil, err
	}
	if kw := p.ParseOneOfKeywords(keyword.STORED, keyword.VIRTUAL); kw != keyword.NoKeyword {
		o.Storage = kw.String()
	}
	return o, nil
}

func (p *Parser) parseNullsDistinct() string {
	switch {
	case p.ParseKeywords(keyword.NULLS, keyword.DISTINCT):
		return "DISTINCT"
	case p.ParseKeywords(keyword.NULLS, keyword.NOT, keyword.DISTINCT):
		return "NOT DISTINCT"
	}
	return ""
}

// parseReferences parses the part of a foreign key after REFERENCES.
func (p *Parser) parseReferences() (*ast.ReferencesOption, error) {
	ref := &ast.ReferencesOption{}
	var err error
	if ref.Table, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.peekIs(token.LPAREN) {
		if ref.Columns, err = p.parseParenIdents(); err != nil {
			return nil, err
		}
	}
loop:
	for {
		switch {
		case p.ParseKeyword(keyword.MATCH):
			kw, err := p.expectOneOfKeywords(keyword.FULL, keyword.PARTIAL, keyword.SIMPLE)
			if err != nil {
				return nil, err
			}
			ref.Match = kw.String()
		case p.ParseKeywords(keyword.ON, keyword.DELETE):
			if ref.OnDelete, err = p.parseReferentialAction(); err != nil {
				return nil, err
			}
		case p.ParseKeywords(keyword.ON, keyword.UPDATE):
			if ref.OnUpdate, err = p.parseReferentialAction(); err != nil {
				return nil, err
			}
		default:
			break loop
		}
	}
	if ref.Characteristics, err = p.parseConstraintCharacteristics(); err != nil {
		return nil, err
	}
	return ref, nil
}

func (p *Parser) parseReferentialAction() (ast.ReferentialAction, error) {
	switch {
	case p.ParseKeyword(keyword.RESTRICT):
		return ast.ActionRestrict, nil
	case p.ParseKeyword(keyword.CASCADE):
		return ast.ActionCascade, nil
	case p.ParseKeywords(keyword.SET, keyword.NULL):
		return ast.ActionSetNull, nil
	case p.ParseKeywords(keyword.SET, keyword.DEFAULT):
		return ast.ActionSetDefault, nil
	case p.ParseKeywords(keyword.NO, keyword.ACTION):
		return ast.ActionNoAction, nil
	}
	return "", p.Expected("one of RESTRICT, CASCADE, SET NULL, NO ACTION or SET DEFAULT", p.PeekToken())
}

// parseConstraintCharacteristics parses [NOT] DEFERRABLE, INITIALLY
// {DEFERRED|IMMEDIATE} and [NOT] ENFORCED in any order. It returns nil
// when none is present.
func (p *Parser) parseConstraintCharacteristics() (*ast.ConstraintCharacteristics, error) {
	var c ast.ConstraintCharacteristics
	found := false
	for {
		switch {
		case p.ParseKeyword(keyword.DEFERRABLE):
			c.Deferrable = boolPtr(true)
		case p.ParseKeywords(keyword.NOT, keyword.DEFERRABLE):
			c.Deferrable = boolPtr(false)
		case p.ParseKeyword(keyword.INITIALLY):
			kw, err := p.expectOneOfKeywords(keyword.DEFERRED, keyword.IMMEDIATE)
			if err != nil {
				return nil, err
			}
			c.Initially = kw.String()
		case p.ParseKeyword(keyword.ENFORCED):
			c.Enforced = boolPtr(true)
		case p.ParseKeywords(keyword.NOT, keyword.ENFORCED):
			c.Enforced = boolPtr(false)
		default:
			if !found {
				return nil, nil
			}
			return &c, nil
		}
		found = true
	}
}

// ---------- Table Constraints ----------

func (p *Parser) isTableConstraintStart() bool {
	tok := p.PeekToken()
	if tok.Type != token.WORD || tok.Quote != 0 {
		return false
	}
	next := p.PeekNthToken(1)
	switch tok.Keyword {
	case keyword.CONSTRAINT, keyword.CHECK, keyword.UNIQUE, keyword.FULLTEXT, keyword.SPATIAL:
		return true
	case keyword.PRIMARY, keyword.FOREIGN:
		return next.IsKeyword(keyword.KEY)
	case keyword.PERIOD:
		return next.IsKeyword(keyword.FOR)
	case keyword.INDEX, keyword.KEY:
		// KEY idx (a) is an index; key VARCHAR(10) is a column
		if next.Type == token.LPAREN {
			return true
		}
		return next.Type == token.WORD &&
			(p.PeekNthToken(2).IsKeyword(keyword.USING) ||
				(p.peekNthIs(2, token.LPAREN) && p.peekNthIs(3, token.WORD)))
	}
	return false
}

func (p *Parser) parseTableConstraint() (ast.TableConstraint, error) {
	var name *ast.Ident
	if p.ParseKeyword(keyword.CONSTRAINT) {
		id, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		name = &id
	}
	tok := p.NextToken()
	var err error
	switch tok.Keyword {
	case keyword.PRIMARY, keyword.UNIQUE:
		c := &ast.UniqueConstraint{Name: name, Primary: tok.Keyword == keyword.PRIMARY}
		if c.Primary {
			if _, err := p.ExpectKeyword(keyword.KEY); err != nil {
				return nil, err
			}
		} else {
			c.NullsDistinct = p.parseNullsDistinct()
			if kw := p.ParseOneOfKeywords(keyword.KEY, keyword.INDEX); kw != keyword.NoKeyword {
				c.IndexKeyword = kw.String()
			}
		}
		if p.peekIs(token.WORD) && !p.PeekKeyword(keyword.USING) {
			id, _ := p.ParseIdentifier()
			c.IndexName = &id
		}
		c.IndexType = p.parseIndexType()
		if c.Columns, err = p.parseIndexColumns(); err != nil {
			return nil, err
		}
		if c.Characteristics, err = p.parseConstraintCharacteristics(); err != nil {
			return nil, err
		}
		return c, nil
	case keyword.FOREIGN:
		if _, err := p.ExpectKeyword(keyword.KEY); err != nil {
			return nil, err
		}
		c := &ast.ForeignKeyConstraint{Name: name}
		if p.peekIs(token.WORD) {
			id, _ := p.ParseIdentifier()
			c.IndexName = &id
		}
		if c.Columns, err = p.parseParenIdents(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectKeyword(keyword.REFERENCES); err != nil {
			return nil, err
		}
		ref, err := p.parseReferences()
		if err != nil {
			return nil, err
		}
		c.Table, c.RefColumns, c.Match = ref.Table, ref.Columns, ref.Match
		c.OnDelete, c.OnUpdate, c.Characteristics = ref.OnDelete, ref.OnUpdate, ref.Characteristics
		return c, nil
	case keyword.CHECK:
		c := &ast.CheckConstraint{Name: name}
		if c.Expr, err = p.parseParenthesizedExpr(); err != nil {
			return nil, err
		}
		switch {
		case p.ParseKeyword(keyword.ENFORCED):
			c.Enforced = boolPtr(true)
		case p.ParseKeywords(keyword.NOT, keyword.ENFORCED):
			c.Enforced = boolPtr(false)
		}
		return c, nil
	case keyword.INDEX, keyword.KEY, keyword.FULLTEXT, keyword.SPATIAL:
		c := &ast.IndexConstraint{Name: name}
		if tok.Keyword == keyword.FULLTEXT || tok.Keyword == keyword.SPATIAL {
			c.Kind = tok.Keyword.String()
			if kw := p.ParseOneOfKeywords(keyword.INDEX, keyword.KEY); kw != keyword.NoKeyword {
				c.Keyword = kw.String()
			}
		} else {
			c.Keyword = tok.Keyword.String()
		}
		if p.peekIs(token.WORD) && !p.PeekKeyword(keyword.USING) {
			id, _ := p.ParseIdentifier()
			c.Name = &id
		}
		c.IndexType = p.parseIndexType()
		if c.Columns, err = p.parseIndexColumns(); err != nil {
			return nil, err
		}
		return c, nil
	case keyword.PERIOD:
		if _, err := p.ExpectKeyword(keyword.FOR); err != nil {
			return nil, err
		}
		c := &ast.PeriodConstraint{}
		if c.Name, err = p.ParseIdentifier(); err != nil {
			return nil, err
		}
		cols, err := p.parseParenIdents()
		if err != nil {
			return nil, err
		}
		if len(cols) != 2 {
			return nil, p.Expected("start and end columns", p.lastToken())
		}
		c.Start, c.End = cols[0], cols[1]
		return c, nil
	}
	return nil, p.Expected("a table constraint", tok)
}

func (p *Parser) parseIndexType() string {
	if !p.PeekKeyword(keyword.USING) || !p.peekNthIs(1, token.WORD) {
		return ""
	}
	p.index++
	return strings.ToUpper(p.NextToken().Value)
}

func (p *Parser) parseIndexColumns() ([]ast.IndexColumn, error) {
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	cols, err := parseCommaSeparated(p, p.parseIndexColumn)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return cols, nil
}

// parseIndexColumn parses expr [opclass] [ASC|DESC] [NULLS {FIRST|LAST}].
func (p *Parser) parseIndexColumn() (ast.IndexColumn, error) {
	e, err := p.ParseExpr()
	if err != nil {
		return ast.IndexColumn{}, err
	}
	col := ast.IndexColumn{Column: ast.OrderByExpr{Expr: e}}
	if tok := p.PeekToken(); tok.Type == token.WORD && tok.Quote == 0 &&
		tok.Keyword != keyword.ASC && tok.Keyword != keyword.DESC && tok.Keyword != keyword.NULLS {
		if col.OpClass, err = p.ParseObjectName(); err != nil {
			return ast.IndexColumn{}, err
		}
	}
	col.Column.Options = p.parseOrderByOptions()
	return col, nil
}

// ---------- CREATE VIEW / INDEX ----------

func (p *Parser) parseCreateView(pre createPrefix) (*ast.CreateView, error) {
	v := &ast.CreateView{
		OrAlter:      pre.orAlter,
		OrReplace:    pre.orReplace,
		Algorithm:    pre.algorithm,
		Definer:      pre.definer,
		Security:     pre.security,
		Secure:       pre.secure,
		Temporary:    pre.temporary != "",
		Materialized: pre.materialized,
	}
	v.IfNotExists = p.parseIfNotExists()
	var err error
	if v.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.ParseKeywords(keyword.ON, keyword.CLUSTER) {
		id, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		v.OnCluster = &id
	}
	if p.ParseKeyword(keyword.TO) {
		to, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		v.To = &to
	}
	if p.ConsumeToken(token.LPAREN) {
		if v.Columns, err = parseCommaSeparated(p, p.parseViewColumn); err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	for {
		switch {
		case (p.PeekKeyword(keyword.WITH) || p.PeekKeyword(keyword.OPTIONS)) && p.peekNthIs(1, token.LPAREN):
			kind := ast.OptionsKind(p.NextToken().Keyword.String())
			opts, err := p.ParseOptions()
			if err != nil {
				return nil, err
			}
			v.Options = append(v.Options, ast.TableOptions{Kind: kind, Options: opts})
			continue
		case p.ParseKeywords(keyword.CLUSTER, keyword.BY):
			if v.ClusterBy, err = p.parseParenIdents(); err != nil {
				return nil, err
			}
			continue
		case p.ParseKeyword(keyword.COMMENT):
			p.ConsumeToken(token.EQ)
			c, err := p.ParseLiteralString()
			if err != nil {
				return nil, err
			}
			v.Comment = &c
			continue
		}
		break
	}
	if _, err := p.ExpectKeyword(keyword.AS); err != nil {
		return nil, err
	}
	if v.Query, err = p.ParseQuery(); err != nil {
		return nil, err
	}
	switch {
	case p.ParseKeywords(keyword.WITH, keyword.NO, keyword.SCHEMA, keyword.BINDING):
		v.NoSchemaBind = true
	case p.ParseKeywords(keyword.WITH, keyword.DATA):
		v.WithData = boolPtr(true)
	case p.ParseKeywords(keyword.WITH, keyword.NO, keyword.DATA):
		v.WithData = boolPtr(false)
	}
	return v, nil
}

func (p *Parser) parseViewColumn() (ast.ViewColumnDef, error) {
	name, err := p.ParseIdentifier()
	if err != nil {
		return ast.ViewColumnDef{}, err
	}
	col := ast.ViewColumnDef{Name: name}
	if tok := p.PeekToken(); tok.Type == token.WORD && !tok.IsKeyword(keyword.OPTIONS) {
		if col.DataType, err = p.ParseDataType(); err != nil {
			return ast.ViewColumnDef{}, err
		}
	}
	if p.ParseKeyword(keyword.OPTIONS) {
		if col.Options, err = p.ParseOptions(); err != nil {
			return ast.ViewColumnDef{}, err
		}
	}
	return col, nil
}

func (p *Parser) parseCreateIndex(pre createPrefix) (*ast.CreateIndex, error) {
	ix := &ast.CreateIndex{Unique: pre.unique}
	ix.Concurrently = p.ParseKeyword(keyword.CONCURRENTLY)
	ix.IfNotExists = p.parseIfNotExists()
	var err error
	if !p.PeekKeyword(keyword.ON) {
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		ix.Name = &name
	}
	if _, err := p.ExpectKeyword(keyword.ON); err != nil {
		return nil, err
	}
	if ix.Table, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.USING) {
		id, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		ix.Using = id.Value
	}
	if ix.Columns, err = p.parseIndexColumns(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.INCLUDE) {
		if ix.Include, err = p.parseParenIdents(); err != nil {
			return nil, err
		}
	}
	ix.NullsDistinct = p.parseNullsDistinct()
	if p.ParseKeyword(keyword.WITH) {
		if ix.With, err = p.parseParenExprs(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.WHERE) {
		if ix.Predicate, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	return ix, nil
}

// ---------- CREATE FUNCTION / PROCEDURE / TRIGGER ----------

var paramModes = []keyword.Keyword{keyword.IN, keyword.OUT, keyword.INOUT, keyword.VARIADIC}

func (p *Parser) parseFunctionParams() ([]ast.FunctionParam, error) {
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	if p.ConsumeToken(token.RPAREN) {
		return nil, nil
	}
	params, err := parseCommaSeparated(p, p.parseFunctionParam)
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// parseFunctionParam parses [mode] [name] type [{DEFAULT | =} expr].
func (p *Parser) parseFunctionParam() (ast.FunctionParam, error) {
	var a ast.FunctionParam
	if kw := p.ParseOneOfKeywords(paramModes...); kw != keyword.NoKeyword {
		a.Mode = kw.String()
	}
	if tok := p.PeekToken(); tok.Type == token.PLACEHOLDER {
		p.index++
		id := identFrom(tok)
		a.Name = &id
		p.ParseKeyword(keyword.AS)
	} else if p.hasParamName() {
		id, err := p.ParseIdentifier()
		if err != nil {
			return a, err
		}
		a.Name = &id
	}
	var err error
	if a.DataType, err = p.ParseDataType(); err != nil {
		return a, err
	}
	switch {
	case p.ParseKeyword(keyword.DEFAULT):
		a.Default, err = p.ParseExpr()
	case p.ConsumeToken(token.EQ):
		a.DefaultEq = true
		a.Default, err = p.ParseExpr()
	}
	return a, err
}

// hasParamName reports whether the parameter starts with a name, by
// checking that a type read from here would not end the parameter.
func (p *Parser) hasParamName() bool {
	start := p.index
	defer p.Restore(start)
	if _, err := p.ParseDataType(); err != nil {
		return true
	}
	switch p.PeekToken().Type {
	case token.COMMA, token.RPAREN, token.EQ:
		return false
	}
	return !p.PeekKeyword(keyword.DEFAULT)
}

func (p *Parser) parseCreateFunction(pre createPrefix) (*ast.CreateFunction, error) {
	f := &ast.CreateFunction{
		OrAlter:   pre.orAlter,
		OrReplace: pre.orReplace,
		Temporary: pre.temporary != "",
	}
	f.IfNotExists = p.parseIfNotExists()
	var err error
	if f.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.peekIs(token.LPAREN) {
		f.HasParens = true
		if f.Params, err = p.parseFunctionParams(); err != nil {
			return nil, err
		}
	}
	for {
		switch {
		case p.PeekKeyword(keyword.RETURNS) && !p.PeekNthToken(1).IsKeyword(keyword.NULL):
			p.index++
			if f.ReturnType, err = p.ParseDataType(); err != nil {
				return nil, err
			}
		case p.ParseKeyword(keyword.LANGUAGE):
			id, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			f.Language = &id
		case p.PeekKeyword(keyword.IMMUTABLE), p.PeekKeyword(keyword.STABLE), p.PeekKeyword(keyword.VOLATILE):
			f.Behavior = p.NextToken().Keyword.String()
		case p.ParseKeywords(keyword.CALLED, keyword.ON, keyword.NULL, keyword.INPUT):
			f.NullInput = "CALLED ON NULL INPUT"
		case p.ParseKeywords(keyword.RETURNS, keyword.NULL, keyword.ON, keyword.NULL, keyword.INPUT):
			f.NullInput = "RETURNS NULL ON NULL INPUT"
		case p.ParseKeyword(keyword.STRICT):
			f.NullInput = "STRICT"
		case p.PeekKeyword(keyword.OPTIONS) && p.peekNthIs(1, token.LPAREN):
			p.index++
			if f.Options, err = p.ParseOptions(); err != nil {
				return nil, err
			}
		case f.Body == nil && p.PeekKeyword(keyword.AS), f.Body == nil && p.PeekKeyword(keyword.RETURN),
			f.Body == nil && p.PeekKeyword(keyword.BEGIN):
			f.BodyFirst = f.Language == nil && f.Behavior == "" && f.NullInput == "" && f.Options == nil
			if f.Body, err = p.parseFunctionBody(); err != nil {
				return nil, err
			}
		default:
			return f, nil
		}
	}
}

func (p *Parser) parseFunctionBody() (*ast.FunctionBody, error) {
	asKw := p.ParseKeyword(keyword.AS)
	switch {
	case p.PeekKeyword(keyword.BEGIN):
		blk, err := p.parseBeginEnd(nil)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionBody{Kind: ast.BodyBlock, Block: blk, AsKw: asKw}, nil
	case p.ParseKeyword(keyword.RETURN):
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionBody{Kind: ast.BodyReturn, Expr: e}, nil
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionBody{Kind: ast.BodyAs, Expr: e, AsKw: true}, nil
}

func (p *Parser) parseCreateProcedure(pre createPrefix) (*ast.CreateProcedure, error) {
	c := &ast.CreateProcedure{OrAlter: pre.orAlter, OrReplace: pre.orReplace}
	var err error
	if c.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	switch {
	case p.peekIs(token.LPAREN):
		c.HasParens = true
		c.Params, err = p.parseFunctionParams()
	case p.peekIs(token.PLACEHOLDER):
		c.Params, err = parseCommaSeparated(p, p.parseFunctionParam)
	}
	if err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.LANGUAGE) {
		id, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		c.Language = &id
	}
	c.AsKw = p.ParseKeyword(keyword.AS)
	if tok := p.PeekToken(); tok.Type == token.STRING {
		p.index++
		v := stringValue(tok)
		c.Text = &v
		if c.Language == nil && p.ParseKeyword(keyword.LANGUAGE) {
			id, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			c.Language = &id
		}
		return c, nil
	}
	if p.PeekKeyword(keyword.BEGIN) {
		c.Body, err = p.parseBeginEnd(nil)
	} else {
		c.Body, err = p.ParseStatement()
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Parser) parseCreateTrigger(pre createPrefix) (*ast.CreateTrigger, error) {
	t := &ast.CreateTrigger{OrReplace: pre.orReplace, OrAlter: pre.orAlter, Constraint: pre.constraint}
	var err error
	if t.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.ON) {
		// SQL Server: ON table {FOR|AFTER|INSTEAD OF} events AS body
		if t.Table, err = p.ParseObjectName(); err != nil {
			return nil, err
		}
		if t.Period, err = p.parseTriggerPeriod(); err != nil {
			return nil, err
		}
		if t.Events, err = p.parseTriggerEvents(); err != nil {
			return nil, err
		}
	} else {
		if t.Period, err = p.parseTriggerPeriod(); err != nil {
			return nil, err
		}
		if t.Events, err = p.parseTriggerEvents(); err != nil {
			return nil, err
		}
		if _, err := p.ExpectKeyword(keyword.ON); err != nil {
			return nil, err
		}
		if t.Table, err = p.ParseObjectName(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.REFERENCING) {
		t.Referencing = []string{"REFERENCING"}
		for p.PeekKeyword(keyword.OLD) || p.PeekKeyword(keyword.NEW) {
			which := p.NextToken().Keyword.String()
			kind, err := p.expectOneOfKeywords(keyword.TABLE, keyword.ROW)
			if err != nil {
				return nil, err
			}
			t.Referencing = append(t.Referencing, which, kind.String())
			if p.ParseKeyword(keyword.AS) {
				t.Referencing = append(t.Referencing, "AS")
			}
			id, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			t.Referencing = append(t.Referencing, id.String())
		}
	}
	if p.ParseKeyword(keyword.FOR) {
		p.ParseKeyword(keyword.EACH)
		kw, err := p.expectOneOfKeywords(keyword.ROW, keyword.STATEMENT)
		if err != nil {
			return nil, err
		}
		t.ForEach = kw.String()
	}
	if p.ParseKeyword(keyword.WHEN) {
		if t.Condition, err = p.parseParenthesizedExpr(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.EXECUTE) {
		kw, err := p.expectOneOfKeywords(keyword.FUNCTION, keyword.PROCEDURE)
		if err != nil {
			return nil, err
		}
		t.ExecKind = kw.String()
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.LPAREN); err != nil {
			return nil, err
		}
		fn, err := p.parseFunction(name)
		if err != nil {
			return nil, err
		}
		call, ok := fn.(*ast.Function)
		if !ok {
			return nil, p.Expected("a function call", p.lastToken())
		}
		t.Exec = call
		return t, nil
	}
	p.ParseKeyword(keyword.AS)
	if t.Body, err = p.ParseStatement(); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Parser) parseTriggerPeriod() (string, error) {
	switch {
	case p.ParseKeywords(keyword.INSTEAD, keyword.OF):
		return "INSTEAD OF", nil
	case p.PeekKeyword(keyword.BEFORE), p.PeekKeyword(keyword.AFTER), p.PeekKeyword(keyword.FOR):
		return p.NextToken().Keyword.String(), nil
	}
	return "", p.Expected("BEFORE, AFTER or INSTEAD OF", p.PeekToken())
}

func (p *Parser) parseTriggerEvents() ([]ast.TriggerEvent, error) {
	var events []ast.TriggerEvent
	for {
		kw, err := p.expectOneOfKeywords(keyword.INSERT, keyword.UPDATE, keyword.DELETE, keyword.TRUNCATE)
		if err != nil {
			return nil, err
		}
		e := ast.TriggerEvent{Kind: kw.String()}
		if kw == keyword.UPDATE && p.ParseKeyword(keyword.OF) {
			if e.Columns, err = p.ParseIdentifiers(); err != nil {
				return nil, err
			}
		}
		events = append(events, e)
		if !p.ParseKeyword(keyword.OR) && !p.ConsumeToken(token.COMMA) {
			return events, nil
		}
	}
}

// ---------- CREATE SCHEMA / DATABASE / ROLE / USER ----------

func (p *Parser) parseCreateSchema() (*ast.CreateSchema, error) {
	s := &ast.CreateSchema{IfNotExists: p.parseIfNotExists()}
	var err error
	if !p.PeekKeyword(keyword.AUTHORIZATION) {
		if s.Name, err = p.ParseObjectName(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.AUTHORIZATION) {
		id, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		s.Authorization = &id
	}
	if p.ParseKeyword(keyword.OPTIONS) {
		if s.Options, err = p.ParseOptions(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (p *Parser) parseCreateDatabase() (*ast.CreateDatabase, error) {
	db := &ast.CreateDatabase{IfNotExists: p.parseIfNotExists()}
	var err error
	if db.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	for {
		switch {
		case p.ParseKeyword(keyword.CLONE):
			name, err := p.ParseObjectName()
			if err != nil {
				return nil, err
			}
			db.Clone = &name
		case p.ParseKeyword(keyword.LOCATION):
			v, err := p.ParseLiteralString()
			if err != nil {
				return nil, err
			}
			db.Location = &v
		case p.ParseKeywords(keyword.MANAGED, keyword.LOCATION):
			v, err := p.ParseLiteralString()
			if err != nil {
				return nil, err
			}
			db.ManagedLocation = &v
		case p.ParseKeyword(keyword.COMMENT):
			p.ConsumeToken(token.EQ)
			v, err := p.ParseLiteralString()
			if err != nil {
				return nil, err
			}
			db.Comment = &v
		default:
			return db, nil
		}
	}
}

var roleFlags = keyword.NewSet(
	keyword.SUPERUSER, keyword.NOSUPERUSER, keyword.CREATEDB, keyword.NOCREATEDB,
	keyword.CREATEROLE, keyword.NOCREATEROLE, keyword.INHERIT, keyword.NOINHERIT,
	keyword.LOGIN, keyword.NOLOGIN, keyword.REPLICATION, keyword.NOREPLICATION,
	keyword.BYPASSRLS, keyword.NOBYPASSRLS,
)

func (p *Parser) parseCreateRole() (*ast.CreateRole, error) {
	r := &ast.CreateRole{IfNotExists: p.parseIfNotExists()}
	var err error
	if r.Names, err = p.parseObjectNames(); err != nil {
		return nil, err
	}
	r.With = p.ParseKeyword(keyword.WITH)
	if r.Options, err = p.parseRoleOptions(); err != nil {
		return nil, err
	}
	return r, nil
}

// parseRoleOptions parses the PostgreSQL role options shared by CREATE
// ROLE and ALTER ROLE.
func (p *Parser) parseRoleOptions() ([]ast.RoleOption, error) {
	var opts []ast.RoleOption
	for {
		tok := p.PeekToken()
		if tok.Type != token.WORD || tok.Quote != 0 {
			return opts, nil
		}
		var o ast.RoleOption
		value, names := false, false
		switch {
		case roleFlags.Contains(tok.Keyword):
			p.index++
			o.Name = tok.Keyword.String()
		case p.ParseKeywords(keyword.CONNECTION, keyword.LIMIT):
			o.Name, value = "CONNECTION LIMIT", true
		case p.ParseKeywords(keyword.ENCRYPTED, keyword.PASSWORD):
			o.Name, value = "ENCRYPTED PASSWORD", true
		case p.ParseKeywords(keyword.VALID, keyword.UNTIL):
			o.Name, value = "VALID UNTIL", true
		case p.ParseKeywords(keyword.IN, keyword.ROLE):
			o.Name, names = "IN ROLE", true
		case p.ParseKeywords(keyword.IN, keyword.GROUP):
			o.Name, names = "IN GROUP", true
		case p.PeekKeyword(keyword.PASSWORD), p.PeekKeyword(keyword.SYSID):
			p.index++
			o.Name, value = tok.Keyword.String(), true
		case p.PeekKeyword(keyword.ROLE), p.PeekKeyword(keyword.ADMIN), p.PeekKeyword(keyword.USER),
			p.PeekKeyword(keyword.AUTHORIZATION):
			p.index++
			o.Name, names = tok.Keyword.String(), true
		default:
			return opts, nil
		}
		var err error
		switch {
		case value:
			o.Value, err = p.parseLiteralExpr()
		case names:
			o.Names, err = p.ParseIdentifiers()
		}
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
}

func (p *Parser) parseCreateUser(pre createPrefix) (*ast.CreateUser, error) {
	u := &ast.CreateUser{OrReplace: pre.orReplace, IfNotExists: p.parseIfNotExists()}
	var err error
	if u.Name, err = p.parseIdentOrString(); err != nil {
		return nil, err
	}
	if p.ParseKeywords(keyword.IDENTIFIED, keyword.BY) {
		v, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		u.Password = &v
	}
	for p.isPlainOptionStart() {
		opt, err := p.parsePlainOption()
		if err != nil {
			return nil, err
		}
		u.Options = append(u.Options, opt)
	}
	return u, nil
}

// ---------- CREATE SEQUENCE / TYPE / DOMAIN ----------

func (p *Parser) parseCreateSequence(pre createPrefix) (*ast.CreateSequence, error) {
	s := &ast.CreateSequence{Temporary: pre.temporary != "", IfNotExists: p.parseIfNotExists()}
	var err error
	if s.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.AS) {
		if s.DataType, err = p.ParseDataType(); err != nil {
			return nil, err
		}
	}
	if s.Options, err = p.parseSequenceOptions(); err != nil {
		return nil, err
	}
	if p.ParseKeywords(keyword.OWNED, keyword.BY) {
		owner, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		s.OwnedBy = &owner
	}
	return s, nil
}

// parseSequenceOptions parses sequence options for CREATE SEQUENCE and
// identity columns.
func (p *Parser) parseSequenceOptions() ([]ast.SequenceOption, error) {
	var opts []ast.SequenceOption
	for {
		var o ast.SequenceOption
		bare := false
		switch {
		case p.ParseKeyword(keyword.INCREMENT):
			o.Name = "INCREMENT"
			if p.ParseKeyword(keyword.BY) {
				o.Name = "INCREMENT BY"
			}
		case p.PeekKeyword(keyword.START), p.PeekKeyword(keyword.RESTART):
			o.Name = p.NextToken().Keyword.String()
			if p.ParseKeyword(keyword.WITH) {
				o.Name += " WITH"
			}
		case p.PeekKeyword(keyword.MINVALUE), p.PeekKeyword(keyword.MAXVALUE), p.PeekKeyword(keyword.CACHE):
			o.Name = p.NextToken().Keyword.String()
		case p.ParseKeywords(keyword.NO, keyword.MINVALUE):
			o.Name, bare = "NO MINVALUE", true
		case p.ParseKeywords(keyword.NO, keyword.MAXVALUE):
			o.Name, bare = "NO MAXVALUE", true
		case p.ParseKeywords(keyword.NO, keyword.CYCLE):
			o.Name, bare = "NO CYCLE", true
		case p.ParseKeyword(keyword.CYCLE):
			o.Name, bare = "CYCLE", true
		default:
			return opts, nil
		}
		if !bare {
			e, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			o.Value = e
		}
		opts = append(opts, o)
	}
}

func (p *Parser) parseCreateType() (*ast.CreateType, error) {
	t := &ast.CreateType{}
	var err error
	if t.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if !p.ParseKeyword(keyword.AS) {
		return t, nil
	}
	switch {
	case p.ParseKeyword(keyword.ENUM):
		t.Kind = "ENUM"
		if _, err := p.ExpectToken(token.LPAREN); err != nil {
			return nil, err
		}
		if !p.peekIs(token.RPAREN) {
			if t.Labels, err = parseCommaSeparated(p, p.ParseLiteralString); err != nil {
				return nil, err
			}
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	case p.ParseKeyword(keyword.RANGE):
		t.Kind = "RANGE"
		if t.Options, err = p.ParseOptions(); err != nil {
			return nil, err
		}
	default:
		t.Kind = "COMPOSITE"
		if _, err := p.ExpectToken(token.LPAREN); err != nil {
			return nil, err
		}
		if t.Attributes, err = p.parseStructFields(token.RPAREN); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (p *Parser) parseCreateDomain() (*ast.CreateDomain, error) {
	d := &ast.CreateDomain{}
	var err error
	if d.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	p.ParseKeyword(keyword.AS)
	if d.DataType, err = p.ParseDataType(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.COLLATE) {
		if d.Collation, err = p.ParseObjectName(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.DEFAULT) {
		if d.Default, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	for p.PeekKeyword(keyword.CONSTRAINT) || p.PeekKeyword(keyword.CHECK) {
		tc, err := p.parseTableConstraint()
		if err != nil {
			return nil, err
		}
		d.Constraints = append(d.Constraints, tc)
	}
	return d, nil
}

// ---------- Other CREATE Forms ----------

func (p *Parser) parseCreateExtension() (*ast.CreateExtension, error) {
	e := &ast.CreateExtension{IfNotExists: p.parseIfNotExists()}
	var err error
	if e.Name, err = p.ParseIdentifier(); err != nil {
		return nil, err
	}
	e.With = p.ParseKeyword(keyword.WITH)
	if p.ParseKeyword(keyword.SCHEMA) {
		id, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		e.Schema = &id
	}
	if p.ParseKeyword(keyword.VERSION) {
		id, err := p.parseIdentOrString()
		if err != nil {
			return nil, err
		}
		e.Version = &id
	}
	e.Cascade = p.ParseKeyword(keyword.CASCADE)
	return e, nil
}

func (p *Parser) parseCreatePolicy() (*ast.CreatePolicy, error) {
	pol := &ast.CreatePolicy{}
	var err error
	if pol.Name, err = p.ParseIdentifier(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.ON); err != nil {
		return nil, err
	}
	if pol.Table, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.AS) {
		kw, err := p.expectOneOfKeywords(keyword.PERMISSIVE, keyword.RESTRICTIVE)
		if err != nil {
			return nil, err
		}
		pol.Kind = kw.String()
	}
	if p.ParseKeyword(keyword.FOR) {
		kw, err := p.expectOneOfKeywords(keyword.ALL, keyword.SELECT, keyword.INSERT, keyword.UPDATE, keyword.DELETE)
		if err != nil {
			return nil, err
		}
		pol.Command = kw.String()
	}
	if p.ParseKeyword(keyword.TO) {
		if pol.To, err = p.ParseIdentifiers(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(keyword.USING) {
		if pol.Using, err = p.parseParenthesizedExpr(); err != nil {
			return nil, err
		}
	}
	if p.ParseKeywords(keyword.WITH, keyword.CHECK) {
		if pol.WithCheck, err = p.parseParenthesizedExpr(); err != nil {
			return nil, err
		}
	}
	return pol, nil
}

func (p *Parser) parseCreateServer() (*ast.CreateServer, error) {
	s := &ast.CreateServer{IfNotExists: p.parseIfNotExists()}
	var err error
	if s.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.TYPE) {
		v, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		s.Type = &v
	}
	if p.ParseKeyword(keyword.VERSION) {
		v, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		s.Version = &v
	}
	if err := p.ExpectKeywords(keyword.FOREIGN, keyword.DATA, keyword.WRAPPER); err != nil {
		return nil, err
	}
	if s.Wrapper, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.OPTIONS) {
		if _, err := p.ExpectToken(token.LPAREN); err != nil {
			return nil, err
		}
		// OPTIONS (host 'h', port '5432'): no equals sign
		s.Options, err = parseCommaSeparated(p, func() (ast.SQLOption, error) {
			key, err := p.ParseIdentifier()
			if err != nil {
				return ast.SQLOption{}, err
			}
			val, err := p.parseLiteralExpr()
			if err != nil {
				return ast.SQLOption{}, err
			}
			return ast.SQLOption{Key: key, Value: val}, nil
		})
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (p *Parser) parseCreateAssertion() (*ast.CreateAssertion, error) {
	a := &ast.CreateAssertion{}
	var err error
	if a.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.CHECK); err != nil {
		return nil, err
	}
	if a.Expr, err = p.parseParenthesizedExpr(); err != nil {
		return nil, err
	}
	return a, nil
}

func (p *Parser) parseCreateVirtualTable() (*ast.CreateVirtualTable, error) {
	vt := &ast.CreateVirtualTable{IfNotExists: p.parseIfNotExists()}
	var err error
	if vt.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.USING); err != nil {
		return nil, err
	}
	if vt.Module, err = p.ParseIdentifier(); err != nil {
		return nil, err
	}
	if p.peekIs(token.LPAREN) {
		if vt.Args, err = p.parseParenIdents(); err != nil {
			return nil, err
		}
	}
	return vt, nil
}

func (p *Parser) parseCreateMacro(pre createPrefix) (*ast.CreateMacro, error) {
	m := &ast.CreateMacro{OrReplace: pre.orReplace, Temporary: pre.temporary != ""}
	var err error
	if m.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.LPAREN); err != nil {
		return nil, err
	}
	if !p.peekIs(token.RPAREN) {
		m.Params, err = parseCommaSeparated(p, func() (ast.MacroParam, error) {
			name, err := p.ParseIdentifier()
			if err != nil {
				return ast.MacroParam{}, err
			}
			mp := ast.MacroParam{Name: name}
			if p.ConsumeToken(token.ASSIGN) {
				mp.Default, err = p.ParseExpr()
			}
			return mp, err
		})
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.ExpectKeyword(keyword.AS); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.TABLE) {
		m.Table, err = p.ParseQuery()
	} else {
		m.Expr, err = p.ParseExpr()
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ---------- DROP / TRUNCATE ----------

var dropObjectKinds = []keyword.Keyword{
	keyword.TABLE, keyword.VIEW, keyword.INDEX, keyword.SCHEMA, keyword.DATABASE,
	keyword.SEQUENCE, keyword.TYPE, keyword.DOMAIN, keyword.EXTENSION, keyword.ROLE,
	keyword.USER, keyword.MACRO, keyword.SERVER, keyword.STAGE, keyword.SECRET,
	keyword.DICTIONARY,
}

func (p *Parser) parseDrop() (ast.Statement, error) {
	p.NextToken()
	temporary := p.ParseKeyword(keyword.TEMPORARY)
	tok := p.PeekToken()
	switch {
	case p.ParseKeyword(keyword.FUNCTION):
		return p.parseDropFunction(false)
	case p.ParseKeyword(keyword.PROCEDURE), p.ParseKeyword(keyword.PROC):
		return p.parseDropFunction(true)
	case p.ParseKeyword(keyword.TRIGGER), p.ParseKeyword(keyword.POLICY):
		return p.parseDropOn(tok.Keyword.String())
	}

	d := &ast.Drop{Temporary: temporary}
	switch {
	case p.ParseKeywords(keyword.MATERIALIZED, keyword.VIEW):
		d.ObjectType = "MATERIALIZED VIEW"
	case p.ParseKeywords(keyword.FOREIGN, keyword.TABLE):
		d.ObjectType = "FOREIGN TABLE"
	default:
		kw := p.ParseOneOfKeywords(dropObjectKinds...)
		if kw == keyword.NoKeyword {
			return nil, p.Expected("an object type after DROP", tok)
		}
		d.ObjectType = kw.String()
	}
	d.IfExists = p.parseIfExists()
	var err error
	if d.Names, err = p.parseObjectNames(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.ON) {
		table, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		d.Table = &table
	}
	d.Behavior = p.parseDropBehavior()
	d.Purge = p.ParseKeyword(keyword.PURGE)
	return d, nil
}

func (p *Parser) parseDropFunction(procedure bool) (*ast.DropFunction, error) {
	d := &ast.DropFunction{Procedure: procedure, IfExists: p.parseIfExists()}
	var err error
	d.Funcs, err = parseCommaSeparated(p, func() (ast.FunctionDesc, error) {
		name, err := p.ParseObjectName()
		if err != nil {
			return ast.FunctionDesc{}, err
		}
		desc := ast.FunctionDesc{Name: name}
		if p.peekIs(token.LPAREN) {
			desc.Parens = true
			desc.Params, err = p.parseFunctionParams()
		}
		return desc, err
	})
	if err != nil {
		return nil, err
	}
	d.Behavior = p.parseDropBehavior()
	return d, nil
}

func (p *Parser) parseDropOn(objectType string) (*ast.DropOn, error) {
	d := &ast.DropOn{ObjectType: objectType, IfExists: p.parseIfExists()}
	var err error
	if d.Name, err = p.ParseObjectName(); err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.ON) {
		table, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		d.Table = &table
	}
	d.Behavior = p.parseDropBehavior()
	return d, nil
}

func (p *Parser) parseDropBehavior() ast.DropBehavior {
	switch p.ParseOneOfKeywords(keyword.CASCADE, keyword.RESTRICT) {
	case keyword.CASCADE:
		return ast.DropCascade
	case keyword.RESTRICT:
		return ast.DropRestrict
	}
	return ""
}

func (p *Parser) parseTruncate() (*ast.Truncate, error) {
	p.NextToken()
	t := &ast.Truncate{TableKeyword: p.ParseKeyword(keyword.TABLE)}
	t.IfExists = p.parseIfExists()
	var err error
	t.Tables, err = parseCommaSeparated(p, func() (ast.TruncateTarget, error) {
		only := p.ParseKeyword(keyword.ONLY)
		name, err := p.ParseObjectName()
		return ast.TruncateTarget{Name: name, Only: only}, err
	})
	if err != nil {
		return nil, err
	}
	if p.ParseKeyword(keyword.PARTITION) {
		if t.Partitions, err = p.parseParenExprs(); err != nil {
			return nil, err
		}
	}
	if kw := p.ParseOneOfKeywords(keyword.RESTART, keyword.CONTINUE); kw != keyword.NoKeyword {
		if _, err := p.ExpectKeyword(keyword.IDENTITY); err != nil {
			return nil, err
		}
		t.Identity = kw.String()
	}
	if p.ParseKeywords(keyword.ON, keyword.CLUSTER) {
		id, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		t.OnCluster = &id
	}
	t.Behavior = p.parseDropBehavior()
	return t, nil
}
