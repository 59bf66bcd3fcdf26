package parser

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlkit/pkg/ast"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// Data type parsing.
//
// Grammar:
//
//	data_type   → base_type { '[' [n] ']' }
//	base_type   → char_type ['(' length ')']
//	            | numeric_type ['(' p [',' s] ')'] [UNSIGNED]
//	            | temporal_type ['(' p ')'] [WITH[OUT] [LOCAL] TIME ZONE]
//	            | ARRAY '<' data_type '>' | ARRAY '(' data_type ')' | ARRAY
//	            | STRUCT '<' fields '>' | STRUCT '(' fields ')'
//	            | MAP '<' k ',' v '>' | MAP '(' k ',' v ')'
//	            | name ['(' modifier {',' modifier} ')']
//
// Type names are matched on their upper-cased spelling, so they need not be
// keywords.

var characterTypes = map[string]ast.TypeKind{
	"VARCHAR":    ast.TypeVarchar,
	"NVARCHAR":   ast.TypeNVarchar,
	"NCHAR":      ast.TypeNChar,
	"VARCHAR2":   ast.TypeVarchar2,
	"NVARCHAR2":  ast.TypeNVarchar2,
	"TEXT":       ast.TypeText,
	"TINYTEXT":   ast.TypeTinyText,
	"MEDIUMTEXT": ast.TypeMediumText,
	"LONGTEXT":   ast.TypeLongText,
	"STRING":     ast.TypeString,
	"CLOB":       ast.TypeClob,
}

var numericTypes = map[string]ast.TypeKind{
	"NUMERIC":    ast.TypeNumeric,
	"DECIMAL":    ast.TypeDecimal,
	"DEC":        ast.TypeDec,
	"BIGNUMERIC": ast.TypeBigNumeric,
	"BIGDECIMAL": ast.TypeBigDecimal,
	"NUMBER":     ast.TypeNumber,
}

var integerTypes = map[string]ast.TypeKind{
	"TINYINT":   ast.TypeTinyInt,
	"SMALLINT":  ast.TypeSmallInt,
	"MEDIUMINT": ast.TypeMediumInt,
	"INT":       ast.TypeInt,
	"INTEGER":   ast.TypeInteger,
	"BIGINT":    ast.TypeBigInt,
	"HUGEINT":   ast.TypeHugeInt,
	"UHUGEINT":  ast.TypeUHugeInt,
	"UTINYINT":  ast.TypeUTinyInt,
	"USMALLINT": ast.TypeUSmallInt,
	"UINTEGER":  ast.TypeUInteger,
	"UBIGINT":   ast.TypeUBigInt,
	"INT2":      ast.TypeInt2,
	"INT4":      ast.TypeInt4,
	"INT8":      ast.TypeInt8,
	"INT16":     ast.TypeInt16,
	"INT32":     ast.TypeInt32,
	"INT64":     ast.TypeInt64,
	"INT128":    ast.TypeInt128,
	"INT256":    ast.TypeInt256,
	"UINT8":     ast.TypeUInt8,
	"UINT16":    ast.TypeUInt16,
	"UINT32":    ast.TypeUInt32,
	"UINT64":    ast.TypeUInt64,
	"UINT128":   ast.TypeUInt128,
	"UINT256":   ast.TypeUInt256,
	"SERIAL":    ast.TypeSerial,
	"BIGSERIAL": ast.TypeBigSerial,
}

var floatTypes = map[string]ast.TypeKind{
	"FLOAT":   ast.TypeFloat,
	"REAL":    ast.TypeReal,
	"DOUBLE":  ast.TypeDouble,
	"FLOAT4":  ast.TypeFloat4,
	"FLOAT8":  ast.TypeFloat8,
	"FLOAT32": ast.TypeFloat32,
	"FLOAT64": ast.TypeFloat64,
}

var temporalTypes = map[string]ast.TypeKind{
	"DATE":          ast.TypeDate,
	"DATE32":        ast.TypeDate32,
	"TIME":          ast.TypeTime,
	"TIMETZ":        ast.TypeTimeTZ,
	"TIMESTAMP":     ast.TypeTimestamp,
	"TIMESTAMPTZ":   ast.TypeTimestampTZ,
	"TIMESTAMP_NTZ": ast.TypeTimestampNTZ,
	"DATETIME":      ast.TypeDatetime,
	"DATETIME64":    ast.TypeDatetime64,
	"DATETIME2":     ast.TypeDatetime2,
}

var binaryTypes = map[string]ast.TypeKind{
	"BINARY":     ast.TypeBinary,
	"VARBINARY":  ast.TypeVarbinary,
	"BLOB":       ast.TypeBlob,
	"TINYBLOB":   ast.TypeTinyBlob,
	"MEDIUMBLOB": ast.TypeMediumBlob,
	"LONGBLOB":   ast.TypeLongBlob,
	"BYTEA":      ast.TypeBytea,
	"BYTES":      ast.TypeBytes,
	"BIT":        ast.TypeBit,
	"VARBIT":     ast.TypeVarBit,
}

var simpleTypes = map[string]ast.TypeKind{
	"BOOL":        ast.TypeBool,
	"BOOLEAN":     ast.TypeBoolean,
	"JSON":        ast.TypeJSON,
	"JSONB":       ast.TypeJSONB,
	"UUID":        ast.TypeUUID,
	"XML":         ast.TypeXML,
	"VARIANT":     ast.TypeVariant,
	"GEOMETRY":    ast.TypeGeometry,
	"GEOGRAPHY":   ast.TypeGeography,
	"REGCLASS":    ast.TypeRegclass,
	"TRIGGER":     ast.TypeTrigger,
	"UNSPECIFIED": ast.TypeUnspecified,
}

// canonical spellings of case-sensitive ClickHouse and DuckDB type names
var spelledTypes = map[string]string{
	"NULLABLE":       "Nullable",
	"LOWCARDINALITY": "LowCardinality",
	"TUPLE":          "Tuple",
	"UNION":          "UNION",
	"ENUM":           "ENUM",
	"ENUM8":          "Enum8",
	"ENUM16":         "Enum16",
	"SET":            "SET",
}

// ParseDataType parses a type name with its parameters and any trailing
// array brackets.
func (p *Parser) ParseDataType() (ast.DataType, error) {
	dt, err := p.parseBaseDataType()
	if err != nil {
		return nil, err
	}
	for p.peekIs(token.LBRACKET) {
		next := p.PeekNthToken(1)
		switch {
		case next.Type == token.RBRACKET:
			p.index += 2
			dt = &ast.ArrayType{Elem: dt, Style: ast.BracketSquare}
		case next.Type == token.NUMBER && p.peekNthIs(2, token.RBRACKET):
			size, ok := parseUintLiteral(next)
			if !ok {
				return dt, nil
			}
			p.index += 3
			dt = &ast.ArrayType{Elem: dt, Style: ast.BracketSquare, Size: &size}
		default:
			return dt, nil
		}
	}
	return dt, nil
}

func (p *Parser) parseBaseDataType() (ast.DataType, error) {
	tok := p.PeekToken()
	if tok.Type != token.WORD {
		return nil, p.Expected("a data type name", tok)
	}
	p.index++
	if tok.Quote != 0 {
		return p.parseCustomType(tok)
	}
	name := strings.ToUpper(tok.Value)

	switch name {
	case "CHAR", "CHARACTER":
		kind := ast.TypeChar
		if name == "CHARACTER" {
			kind = ast.TypeCharacter
		}
		if p.ParseKeyword(keyword.VARYING) {
			kind = ast.TypeCharVarying
			if name == "CHARACTER" {
				kind = ast.TypeCharacterVarying
			}
		}
		return p.parseCharacterType(kind)
	case "FIXEDSTRING":
		return p.parseCharacterType(ast.TypeFixedString)
	case "DOUBLE":
		if p.ParseKeyword(keyword.PRECISION) {
			return p.parseFloatType(ast.TypeDoublePrecision)
		}
		return p.parseFloatType(ast.TypeDouble)
	case "SIGNED", "UNSIGNED":
		// MySQL CAST(x AS UNSIGNED [INTEGER])
		kind := ast.TypeKind(name)
		if kw := p.ParseOneOfKeywords(keyword.INT, keyword.INTEGER); kw != keyword.NoKeyword {
			kind = ast.TypeKind(kw.String())
		}
		if name == "SIGNED" {
			return &ast.IntegerType{Kind: kind}, nil
		}
		if kind == "UNSIGNED" {
			return &ast.CustomType{Name: ast.NewObjectName(identFrom(tok))}, nil
		}
		return &ast.IntegerType{Kind: kind, Unsigned: true}, nil
	case "BIT":
		if p.ParseKeyword(keyword.VARYING) {
			return p.parseBinaryType(ast.TypeBitVarying)
		}
		return p.parseBinaryType(ast.TypeBit)
	case "INTERVAL":
		return p.parseIntervalType()
	case "ARRAY":
		return p.parseArrayType()
	case "STRUCT", "ROW":
		if name == "ROW" && !p.peekIs(token.LPAREN) {
			return p.parseCustomType(tok)
		}
		return p.parseStructType()
	case "MAP":
		return p.parseMapType()
	case "SETOF":
		inner, err := p.ParseDataType()
		if err != nil {
			return nil, err
		}
		return &ast.SetOfType{Inner: inner}, nil
	case "TABLE":
		if !p.peekIs(token.LPAREN) {
			return p.parseCustomType(tok)
		}
		cols, err := p.parseColumnDefList()
		if err != nil {
			return nil, err
		}
		return &ast.TableType{Columns: cols}, nil
	}

	if spelled, ok := spelledTypes[name]; ok && p.peekIs(token.LPAREN) {
		switch name {
		case "NULLABLE", "LOWCARDINALITY":
			return p.parseWrapperType(spelled)
		case "TUPLE", "UNION":
			p.NextToken()
			fields, err := p.parseStructFields(token.RPAREN)
			if err != nil {
				return nil, err
			}
			return &ast.TupleType{Name: spelled, Fields: fields}, nil
		default:
			return p.parseEnumType(spelled)
		}
	}

	if kind, ok := characterTypes[name]; ok {
		return p.parseCharacterType(kind)
	}
	if kind, ok := numericTypes[name]; ok {
		return p.parseNumericType(kind)
	}
	if kind, ok := integerTypes[name]; ok {
		return p.parseIntegerType(kind)
	}
	if kind, ok := floatTypes[name]; ok {
		return p.parseFloatType(kind)
	}
	if kind, ok := temporalTypes[name]; ok {
		return p.parseTemporalType(kind, tok)
	}
	if kind, ok := binaryTypes[name]; ok {
		return p.parseBinaryType(kind)
	}
	if kind, ok := simpleTypes[name]; ok && !p.peekIs(token.LPAREN) {
		return &ast.SimpleType{Kind: kind}, nil
	}
	return p.parseCustomType(tok)
}

func (p *Parser) parseCharacterType(kind ast.TypeKind) (ast.DataType, error) {
	length, err := p.parseOptionalCharLength()
	if err != nil {
		return nil, err
	}
	return &ast.CharacterType{Kind: kind, Length: length}, nil
}

func (p *Parser) parseBinaryType(kind ast.TypeKind) (ast.DataType, error) {
	length, err := p.parseOptionalCharLength()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryType{Kind: kind, Length: length}, nil
}

// parseOptionalCharLength parses ( n [CHARACTERS|OCTETS] | MAX ).
func (p *Parser) parseOptionalCharLength() (*ast.CharLength, error) {
	if !p.ConsumeToken(token.LPAREN) {
		return nil, nil
	}
	var length ast.CharLength
	if p.ParseKeyword(keyword.MAX) {
		length.Max = true
	} else {
		n, err := p.parseUint()
		if err != nil {
			return nil, err
		}
		length.Length = n
		if kw := p.ParseOneOfKeywords(keyword.CHARACTERS, keyword.OCTETS); kw != keyword.NoKeyword {
			length.Unit = kw.String()
		}
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &length, nil
}

// parsePrecisionScale parses ( p [, s] ). The scale may be negative.
func (p *Parser) parsePrecisionScale() (*uint64, *int64, error) {
	if !p.ConsumeToken(token.LPAREN) {
		return nil, nil, nil
	}
	prec, err := p.parseUint()
	if err != nil {
		return nil, nil, err
	}
	var scale *int64
	if p.ConsumeToken(token.COMMA) {
		neg := p.ConsumeToken(token.MINUS)
		tok := p.PeekToken()
		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if tok.Type != token.NUMBER || err != nil {
			return nil, nil, p.Expected("literal int", tok)
		}
		p.index++
		if neg {
			n = -n
		}
		scale = &n
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, nil, err
	}
	return &prec, scale, nil
}

func (p *Parser) parseNumericType(kind ast.TypeKind) (ast.DataType, error) {
	prec, scale, err := p.parsePrecisionScale()
	if err != nil {
		return nil, err
	}
	return &ast.NumericType{Kind: kind, Precision: prec, Scale: scale, Unsigned: p.parseUnsigned()}, nil
}

func (p *Parser) parseIntegerType(kind ast.TypeKind) (ast.DataType, error) {
	t := &ast.IntegerType{Kind: kind}
	if p.ConsumeToken(token.LPAREN) {
		n, err := p.parseUint()
		if err != nil {
			return nil, err
		}
		t.DisplayWidth = &n
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	t.Unsigned = p.parseUnsigned()
	return t, nil
}

func (p *Parser) parseFloatType(kind ast.TypeKind) (ast.DataType, error) {
	t := &ast.FloatType{Kind: kind}
	if p.ConsumeToken(token.LPAREN) {
		prec, err := p.parseUint()
		if err != nil {
			return nil, err
		}
		t.Precision = &prec
		if p.ConsumeToken(token.COMMA) {
			scale, err := p.parseUint()
			if err != nil {
				return nil, err
			}
			t.Scale = &scale
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	t.Unsigned = p.parseUnsigned()
	return t, nil
}

// parseUnsigned consumes MySQL's UNSIGNED (and a following ZEROFILL).
func (p *Parser) parseUnsigned() bool {
	if !p.ParseKeyword(keyword.UNSIGNED) {
		p.ParseKeyword(keyword.SIGNED)
		return false
	}
	p.ParseKeyword(keyword.ZEROFILL)
	return true
}

func (p *Parser) parseTemporalType(kind ast.TypeKind, nameTok token.TokenWithSpan) (ast.DataType, error) {
	t := &ast.TemporalType{Kind: kind}
	if p.peekIs(token.LPAREN) {
		// DateTime('UTC') carries a zone without a precision
		if p.peekNthIs(1, token.STRING) {
			return p.parseCustomType(nameTok)
		}
		p.NextToken()
		prec, err := p.parseUint()
		if err != nil {
			return nil, err
		}
		t.Precision = &prec
		if p.ConsumeToken(token.COMMA) {
			zone, err := p.ParseLiteralString()
			if err != nil {
				return nil, err
			}
			t.Zone = &zone
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	switch {
	case p.ParseKeywords(keyword.WITH, keyword.TIME, keyword.ZONE):
		t.TimeZone = ast.TZWithTimeZone
	case p.ParseKeywords(keyword.WITHOUT, keyword.TIME, keyword.ZONE):
		t.TimeZone = ast.TZWithoutTimeZone
	case p.ParseKeywords(keyword.WITH, keyword.LOCAL, keyword.TIME, keyword.ZONE):
		t.TimeZone = ast.TZWithLocal
	}
	return t, nil
}

var intervalFields = []keyword.Keyword{
	keyword.YEAR, keyword.MONTH, keyword.DAY, keyword.HOUR, keyword.MINUTE, keyword.SECOND,
}

func (p *Parser) parseIntervalType() (ast.DataType, error) {
	t := &ast.IntervalType{}
	if kw := p.ParseOneOfKeywords(intervalFields...); kw != keyword.NoKeyword {
		t.Fields = kw.String()
		if p.PeekKeyword(keyword.TO) && isOneOf(p.PeekNthToken(1), intervalFields) {
			p.NextToken()
			t.Fields += " TO " + p.NextToken().Keyword.String()
		}
	}
	if p.peekIs(token.LPAREN) && p.peekNthIs(1, token.NUMBER) {
		p.NextToken()
		n, err := p.parseUint()
		if err != nil {
			return nil, err
		}
		t.Precision = &n
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func isOneOf(tok token.TokenWithSpan, kws []keyword.Keyword) bool {
	for _, kw := range kws {
		if tok.IsKeyword(kw) {
			return true
		}
	}
	return false
}

func (p *Parser) parseArrayType() (ast.DataType, error) {
	switch {
	case p.ConsumeToken(token.LT):
		elem, err := p.ParseDataType()
		if err != nil {
			return nil, err
		}
		if err := p.expectCloseAngle(); err != nil {
			return nil, err
		}
		return &ast.ArrayType{Elem: elem, Style: ast.BracketAngle}, nil
	case p.ConsumeToken(token.LPAREN):
		elem, err := p.ParseDataType()
		if err != nil {
			return nil, err
		}
		if _, err := p.ExpectToken(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.ArrayType{Elem: elem, Style: ast.BracketParens}, nil
	}
	return &ast.ArrayType{Style: ast.BracketNone}, nil
}

// expectCloseAngle consumes '>' closing a generic type. A '>>' token closing
// two levels is split in place.
func (p *Parser) expectCloseAngle() error {
	tok := p.PeekToken()
	switch tok.Type {
	case token.GT:
		p.index++
		return nil
	case token.SHR:
		split := tok
		split.Type = token.GT
		split.Value = ">"
		split.Span.Start.Column++
		split.Span.Start.Offset++
		p.tokens[p.index] = split
		return nil
	}
	return p.Expected(">", tok)
}

func (p *Parser) parseStructType() (ast.DataType, error) {
	if p.ConsumeToken(token.LT) {
		fields, err := p.parseStructFields(token.GT)
		if err != nil {
			return nil, err
		}
		return &ast.StructType{Fields: fields, Style: ast.BracketAngle}, nil
	}
	if !p.peekIs(token.LPAREN) {
		return nil, p.Expected("< or (", p.PeekToken())
	}
	p.NextToken()
	fields, err := p.parseStructFields(token.RPAREN)
	if err != nil {
		return nil, err
	}
	return &ast.StructType{Fields: fields, Style: ast.BracketParens}, nil
}

// parseStructFields parses [name [:]] type [OPTIONS(...)] entries up to and
// including the closing token. The opening token has been consumed.
func (p *Parser) parseStructFields(closing token.TokenType) ([]ast.StructField, error) {
	var fields []ast.StructField
	closed := func() bool {
		if closing == token.GT {
			t := p.PeekToken().Type
			return t == token.GT || t == token.SHR
		}
		return p.peekIs(closing)
	}
	for !closed() {
		var f ast.StructField
		tok := p.PeekToken()
		next := p.PeekNthToken(1)
		if tok.Type == token.WORD && (next.Type == token.WORD || next.Type == token.COLON) {
			id, _ := p.ParseIdentifier()
			f.Name = &id
			p.ConsumeToken(token.COLON)
		}
		dt, err := p.ParseDataType()
		if err != nil {
			return nil, err
		}
		f.DataType = dt
		if p.PeekKeyword(keyword.OPTIONS) {
			p.NextToken()
			if f.Options, err = p.ParseOptions(); err != nil {
				return nil, err
			}
		}
		fields = append(fields, f)
		if !p.ConsumeToken(token.COMMA) {
			break
		}
	}
	if closing == token.GT {
		return fields, p.expectCloseAngle()
	}
	if _, err := p.ExpectToken(closing); err != nil {
		return nil, err
	}
	return fields, nil
}

func (p *Parser) parseMapType() (ast.DataType, error) {
	style := ast.BracketAngle
	if p.ConsumeToken(token.LPAREN) {
		style = ast.BracketParens
	} else if _, err := p.ExpectToken(token.LT); err != nil {
		return nil, err
	}
	key, err := p.ParseDataType()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.COMMA); err != nil {
		return nil, err
	}
	val, err := p.ParseDataType()
	if err != nil {
		return nil, err
	}
	if style == ast.BracketParens {
		_, err = p.ExpectToken(token.RPAREN)
	} else {
		err = p.expectCloseAngle()
	}
	if err != nil {
		return nil, err
	}
	return &ast.MapType{Key: key, Value: val, Style: style}, nil
}

func (p *Parser) parseWrapperType(name string) (ast.DataType, error) {
	p.NextToken()
	inner, err := p.ParseDataType()
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.WrapperType{Name: name, Inner: inner}, nil
}

// parseEnumType parses ('a' [= n], ...).
func (p *Parser) parseEnumType(kind string) (ast.DataType, error) {
	p.NextToken()
	t := &ast.EnumType{Kind: kind}
	for {
		name, err := p.ParseLiteralString()
		if err != nil {
			return nil, err
		}
		m := ast.EnumMember{Name: name.Text}
		if p.ConsumeToken(token.EQ) {
			if m.Value, err = p.ParseExpr(); err != nil {
				return nil, err
			}
		}
		t.Members = append(t.Members, m)
		if !p.ConsumeToken(token.COMMA) {
			break
		}
	}
	if _, err := p.ExpectToken(token.RPAREN); err != nil {
		return nil, err
	}
	return t, nil
}

// parseCustomType parses a user-defined type name, whose first word has
// been consumed, and its raw modifiers.
func (p *Parser) parseCustomType(first token.TokenWithSpan) (ast.DataType, error) {
	name := ast.NewObjectName(identFrom(first))
	for p.peekIs(token.DOT) && p.peekNthIs(1, token.WORD) {
		p.NextToken()
		id, _ := p.ParseIdentifier()
		name = append(name, ast.ObjectNamePart{Ident: id})
	}
	t := &ast.CustomType{Name: name}
	if !p.ConsumeToken(token.LPAREN) {
		return t, nil
	}
	var cur []string
	depth := 0
	for {
		tok := p.NextToken()
		switch tok.Type {
		case token.EOF:
			return nil, p.Expected(")", tok)
		case token.LPAREN:
			depth++
		case token.RPAREN:
			if depth == 0 {
				t.Modifiers = append(t.Modifiers, strings.Join(cur, " "))
				return t, nil
			}
			depth--
		case token.COMMA:
			if depth == 0 {
				t.Modifiers = append(t.Modifiers, strings.Join(cur, " "))
				cur = nil
				continue
			}
		}
		cur = append(cur, tok.Token.String())
	}
}
