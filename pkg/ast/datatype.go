package ast

import (
	"strconv"
	"strings"
)

func uintStr(n uint64) string {
	return strconv.FormatUint(n, 10)
}

// TypeKind is the spelled name of a builtin type. Synonyms stay distinct so
// that rendering reproduces the spelling.
type TypeKind string

// Type names.
const (
	// character
	TypeChar             TypeKind = "CHAR"
	TypeCharacter        TypeKind = "CHARACTER"
	TypeVarchar          TypeKind = "VARCHAR"
	TypeCharVarying      TypeKind = "CHAR VARYING"
	TypeCharacterVarying TypeKind = "CHARACTER VARYING"
	TypeNVarchar         TypeKind = "NVARCHAR"
	TypeNChar            TypeKind = "NCHAR"
	TypeVarchar2         TypeKind = "VARCHAR2"
	TypeNVarchar2        TypeKind = "NVARCHAR2"
	TypeText             TypeKind = "TEXT"
	TypeTinyText         TypeKind = "TINYTEXT"
	TypeMediumText       TypeKind = "MEDIUMTEXT"
	TypeLongText         TypeKind = "LONGTEXT"
	TypeString           TypeKind = "STRING"
	TypeClob             TypeKind = "CLOB"
	TypeFixedString      TypeKind = "FixedString"

	// exact numeric
	TypeNumeric    TypeKind = "NUMERIC"
	TypeDecimal    TypeKind = "DECIMAL"
	TypeDec        TypeKind = "DEC"
	TypeBigNumeric TypeKind = "BIGNUMERIC"
	TypeBigDecimal TypeKind = "BIGDECIMAL"
	TypeNumber     TypeKind = "NUMBER"

	// integer
	TypeTinyInt   TypeKind = "TINYINT"
	TypeSmallInt  TypeKind = "SMALLINT"
	TypeMediumInt TypeKind = "MEDIUMINT"
	TypeInt       TypeKind = "INT"
	TypeInteger   TypeKind = "INTEGER"
	TypeBigInt    TypeKind = "BIGINT"
	TypeHugeInt   TypeKind = "HUGEINT"
	TypeUHugeInt  TypeKind = "UHUGEINT"
	TypeUTinyInt  TypeKind = "UTINYINT"
	TypeUSmallInt TypeKind = "USMALLINT"
	TypeUInteger  TypeKind = "UINTEGER"
	TypeUBigInt   TypeKind = "UBIGINT"
	TypeInt2      TypeKind = "INT2"
	TypeInt4      TypeKind = "INT4"
	TypeInt8      TypeKind = "INT8"
	TypeInt16     TypeKind = "INT16"
	TypeInt32     TypeKind = "INT32"
	TypeInt64     TypeKind = "INT64"
	TypeInt128    TypeKind = "INT128"
	TypeInt256    TypeKind = "INT256"
	TypeUInt8     TypeKind = "UINT8"
	TypeUInt16    TypeKind = "UINT16"
	TypeUInt32    TypeKind = "UINT32"
	TypeUInt64    TypeKind = "UINT64"
	TypeUInt128   TypeKind = "UINT128"
	TypeUInt256   TypeKind = "UINT256"
	TypeSerial    TypeKind = "SERIAL"
	TypeBigSerial TypeKind = "BIGSERIAL"

	// approximate numeric
	TypeFloat           TypeKind = "FLOAT"
	TypeReal            TypeKind = "REAL"
	TypeDouble          TypeKind = "DOUBLE"
	TypeDoublePrecision TypeKind = "DOUBLE PRECISION"
	TypeFloat4          TypeKind = "FLOAT4"
	TypeFloat8          TypeKind = "FLOAT8"
	TypeFloat32         TypeKind = "FLOAT32"
	TypeFloat64         TypeKind = "FLOAT64"

	TypeBool    TypeKind = "BOOL"
	TypeBoolean TypeKind = "BOOLEAN"

	// temporal
	TypeDate         TypeKind = "DATE"
	TypeDate32       TypeKind = "DATE32"
	TypeTime         TypeKind = "TIME"
	TypeTimeTZ       TypeKind = "TIMETZ"
	TypeTimestamp    TypeKind = "TIMESTAMP"
	TypeTimestampTZ  TypeKind = "TIMESTAMPTZ"
	TypeTimestampNTZ TypeKind = "TIMESTAMP_NTZ"
	TypeDatetime     TypeKind = "DATETIME"
	TypeDatetime64   TypeKind = "DATETIME64"
	TypeDatetime2    TypeKind = "DATETIME2"

	// binary
	TypeBinary     TypeKind = "BINARY"
	TypeVarbinary  TypeKind = "VARBINARY"
	TypeBlob       TypeKind = "BLOB"
	TypeTinyBlob   TypeKind = "TINYBLOB"
	TypeMediumBlob TypeKind = "MEDIUMBLOB"
	TypeLongBlob   TypeKind = "LONGBLOB"
	TypeBytea      TypeKind = "BYTEA"
	TypeBytes      TypeKind = "BYTES"

	// bit strings
	TypeBit        TypeKind = "BIT"
	TypeBitVarying TypeKind = "BIT VARYING"
	TypeVarBit     TypeKind = "VARBIT"

	// other scalar types with no parameters
	TypeJSON        TypeKind = "JSON"
	TypeJSONB       TypeKind = "JSONB"
	TypeUUID        TypeKind = "UUID"
	TypeXML         TypeKind = "XML"
	TypeVariant     TypeKind = "VARIANT"
	TypeGeometry    TypeKind = "GEOMETRY"
	TypeGeography   TypeKind = "GEOGRAPHY"
	TypeRegclass    TypeKind = "REGCLASS"
	TypeTrigger     TypeKind = "TRIGGER"
	TypeUnspecified TypeKind = "UNSPECIFIED"
)

// CharLength is a character length: n [CHARACTERS|OCTETS] or MAX.
type CharLength struct {
	Length uint64
	Max    bool
	Unit   string
}

func (l CharLength) String() string {
	if l.Max {
		return "MAX"
	}
	var b sqlBuilder
	b.kw(uintStr(l.Length), l.Unit)
	return b.String()
}

// CharacterType covers CHAR/VARCHAR/TEXT and their synonyms.
type CharacterType struct {
	Kind   TypeKind
	Length *CharLength
}

func (*CharacterType) dataTypeNode() {}

func (t *CharacterType) String() string {
	if t.Length != nil {
		return string(t.Kind) + "(" + t.Length.String() + ")"
	}
	return string(t.Kind)
}

// NumericType covers NUMERIC/DECIMAL/NUMBER with optional precision and
// scale. Unsigned records MySQL's UNSIGNED.
type NumericType struct {
	Kind      TypeKind
	Precision *uint64
	Scale     *int64
	Unsigned  bool
}

func (*NumericType) dataTypeNode() {}

func (t *NumericType) String() string {
	s := string(t.Kind)
	if t.Precision != nil {
		s += "(" + uintStr(*t.Precision)
		if t.Scale != nil {
			s += "," + strconv.FormatInt(*t.Scale, 10)
		}
		s += ")"
	}
	if t.Unsigned {
		s += " UNSIGNED"
	}
	return s
}

// IntegerType covers every integer spelling, with MySQL display width and
// UNSIGNED.
type IntegerType struct {
	Kind         TypeKind
	DisplayWidth *uint64
	Unsigned     bool
}

func (*IntegerType) dataTypeNode() {}

func (t *IntegerType) String() string {
	s := string(t.Kind)
	if t.DisplayWidth != nil {
		s += "(" + uintStr(*t.DisplayWidth) + ")"
	}
	if t.Unsigned {
		s += " UNSIGNED"
	}
	return s
}

// FloatType covers FLOAT/REAL/DOUBLE and friends.
type FloatType struct {
	Kind      TypeKind
	Precision *uint64
	Scale     *uint64
	Unsigned  bool
}

func (*FloatType) dataTypeNode() {}

func (t *FloatType) String() string {
	s := string(t.Kind)
	if t.Precision != nil {
		s += "(" + uintStr(*t.Precision)
		if t.Scale != nil {
			s += "," + uintStr(*t.Scale)
		}
		s += ")"
	}
	if t.Unsigned {
		s += " UNSIGNED"
	}
	return s
}

// SimpleType is a parameterless builtin type: BOOLEAN, JSON, UUID, ...
type SimpleType struct {
	Kind TypeKind
}

func (*SimpleType) dataTypeNode() {}

func (t *SimpleType) String() string { return string(t.Kind) }

// TimezoneInfo records how a temporal type spelled its time zone.
type TimezoneInfo string

// Time zone spellings.
const (
	TZNone            TimezoneInfo = ""
	TZWithTimeZone    TimezoneInfo = "WITH TIME ZONE"
	TZWithoutTimeZone TimezoneInfo = "WITHOUT TIME ZONE"
	TZWithLocal       TimezoneInfo = "WITH LOCAL TIME ZONE"
)

// TemporalType covers DATE, TIME, TIMESTAMP, DATETIME and friends.
// ClickHouse's DateTime64(p, 'tz') sets Zone.
type TemporalType struct {
	Kind      TypeKind
	Precision *uint64
	TimeZone  TimezoneInfo
	Zone      *Value
}

func (*TemporalType) dataTypeNode() {}

func (t *TemporalType) String() string {
	s := string(t.Kind)
	if t.Precision != nil {
		s += "(" + uintStr(*t.Precision)
		if t.Zone != nil {
			s += ", " + t.Zone.String()
		}
		s += ")"
	}
	if t.TimeZone != TZNone {
		s += " " + string(t.TimeZone)
	}
	return s
}

// IntervalType is INTERVAL [fields] [(p)].
type IntervalType struct {
	Fields    string
	Precision *uint64
}

func (*IntervalType) dataTypeNode() {}

func (t *IntervalType) String() string {
	var b sqlBuilder
	b.kw("INTERVAL", t.Fields)
	s := b.String()
	if t.Precision != nil {
		s += "(" + uintStr(*t.Precision) + ")"
	}
	return s
}

// BinaryType covers BINARY/VARBINARY/BLOB/BYTEA/BYTES, and BIT types.
type BinaryType struct {
	Kind   TypeKind
	Length *CharLength
}

func (*BinaryType) dataTypeNode() {}

func (t *BinaryType) String() string {
	if t.Length != nil {
		return string(t.Kind) + "(" + t.Length.String() + ")"
	}
	return string(t.Kind)
}

// BracketStyle records how a container type was written.
type BracketStyle int

// Container spellings.
const (
	BracketAngle  BracketStyle = iota // ARRAY<T>, STRUCT<..>, MAP<K, V>
	BracketSquare                     // T[] / T[n]
	BracketParens                     // Array(T), STRUCT(..), MAP(K, V)
	BracketNone                       // bare ARRAY
)

// ArrayType is an array of Elem.
type ArrayType struct {
	Elem  DataType
	Style BracketStyle
	Size  *uint64
}

func (*ArrayType) dataTypeNode() {}

func (t *ArrayType) String() string {
	switch t.Style {
	case BracketSquare:
		if t.Size != nil {
			return t.Elem.String() + "[" + uintStr(*t.Size) + "]"
		}
		return t.Elem.String() + "[]"
	case BracketParens:
		return "Array(" + t.Elem.String() + ")"
	case BracketNone:
		return "ARRAY"
	default:
		return "ARRAY<" + t.Elem.String() + ">"
	}
}

// StructType is STRUCT<a T, ...> or DuckDB's STRUCT(a T, ...).
type StructType struct {
	Fields []StructField
	Style  BracketStyle
}

func (*StructType) dataTypeNode() {}

func (t *StructType) String() string {
	if t.Style == BracketParens {
		return "STRUCT(" + commaSep(t.Fields) + ")"
	}
	return "STRUCT<" + commaSep(t.Fields) + ">"
}

// MapType is MAP<K, V> or MAP(K, V).
type MapType struct {
	Key   DataType
	Value DataType
	Style BracketStyle
}

func (*MapType) dataTypeNode() {}

func (t *MapType) String() string {
	if t.Style == BracketParens {
		return "Map(" + t.Key.String() + ", " + t.Value.String() + ")"
	}
	return "MAP<" + t.Key.String() + ", " + t.Value.String() + ">"
}

// TupleType is ClickHouse's Tuple(...) or DuckDB's UNION(...).
type TupleType struct {
	Name   string // Tuple / UNION
	Fields []StructField
}

func (*TupleType) dataTypeNode() {}

func (t *TupleType) String() string {
	return t.Name + "(" + commaSep(t.Fields) + ")"
}

// WrapperType is a ClickHouse modifier type: Nullable(T), LowCardinality(T).
type WrapperType struct {
	Name  string
	Inner DataType
}

func (*WrapperType) dataTypeNode() {}

func (t *WrapperType) String() string {
	return t.Name + "(" + t.Inner.String() + ")"
}

// EnumMember is one member of ENUM('a' [= 1], ...).
type EnumMember struct {
	Name  string
	Value Expr
}

func (m EnumMember) String() string {
	if isNil(m.Value) {
		return quoted(m.Name)
	}
	return quoted(m.Name) + " = " + m.Value.String()
}

// EnumType is ENUM, Enum8 or Enum16; SET(...) uses Kind "SET".
type EnumType struct {
	Kind    string
	Members []EnumMember
}

func (*EnumType) dataTypeNode() {}

func (t *EnumType) String() string {
	return t.Kind + "(" + commaSep(t.Members) + ")"
}

// CustomType is a user-defined or otherwise unknown type name, with raw
// modifiers such as GEOMETRY(POINT, 4326).
type CustomType struct {
	Name      ObjectName
	Modifiers []string
}

func (*CustomType) dataTypeNode() {}

func (t *CustomType) String() string {
	if len(t.Modifiers) > 0 {
		return t.Name.String() + "(" + strings.Join(t.Modifiers, ", ") + ")"
	}
	return t.Name.String()
}

// TableType is RETURNS TABLE (cols) in function signatures.
type TableType struct {
	Columns []ColumnDef
}

func (*TableType) dataTypeNode() {}

func (t *TableType) String() string {
	return "TABLE(" + commaSep(t.Columns) + ")"
}

// SetOfType is PostgreSQL's SETOF T return type.
type SetOfType struct {
	Inner DataType
}

func (*SetOfType) dataTypeNode() {}

func (t *SetOfType) String() string {
	return "SETOF " + t.Inner.String()
}
