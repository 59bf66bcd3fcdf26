package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		name string
		tok  token.Token
		want string
	}{
		{"bare word", token.Word("users", 0), "users"},
		{"double quoted", token.Word(`a"b`, '"'), `"a""b"`},
		{"backtick", token.Word("col", '`'), "`col`"},
		{"bracket", token.Word("my col", '['), "[my col]"},
		{"number", token.Token{Type: token.NUMBER, Value: "1.5e3"}, "1.5e3"},
		{"single quoted", token.Token{Type: token.STRING, Value: "it's"}, "'it''s'"},
		{"national", token.Token{Type: token.STRING, Value: "x", Style: token.National}, "N'x'"},
		{"escaped", token.Token{Type: token.STRING, Value: "a\nb", Style: token.Escaped}, `E'a\nb'`},
		{"hex", token.Token{Type: token.STRING, Value: "1F", Style: token.Hex}, "X'1F'"},
		{"dollar", token.Token{Type: token.STRING, Value: "hello", Style: token.DollarQuoted}, "$$hello$$"},
		{"tagged dollar", token.Token{Type: token.STRING, Value: "x", Style: token.DollarQuoted, Tag: "fn"}, "$fn$x$fn$"},
		{"operator", token.Token{Type: token.LONGARROW}, "->>"},
		{"eof", token.Token{Type: token.EOF}, "EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.String())
		})
	}
}

func TestWordKeyword(t *testing.T) {
	assert.True(t, token.Word("select", 0).IsKeyword(keyword.SELECT))
	assert.False(t, token.Word("select", '"').IsKeyword(keyword.SELECT))
	assert.Equal(t, keyword.NoKeyword, token.Word("users_tbl", 0).Keyword)
}

func TestOperatorsLongestMatchTable(t *testing.T) {
	ops := token.Operators()
	assert.Equal(t, token.NE, ops["!="])
	assert.Equal(t, token.NE, ops["<>"])
	assert.Equal(t, token.HASHLONGARROW, ops["#>>"])
	assert.Equal(t, token.SPACESHIP, ops["<=>"])
	_, ok := ops["OPERATOR"]
	assert.False(t, ok)
}

func TestSpanUnion(t *testing.T) {
	a := token.NewSpan(token.Location{Line: 1, Column: 1}, token.Location{Line: 1, Column: 5})
	b := token.NewSpan(token.Location{Line: 2, Column: 3}, token.Location{Line: 2, Column: 9})

	u := a.Union(b)
	assert.Equal(t, token.Location{Line: 1, Column: 1}, u.Start)
	assert.Equal(t, token.Location{Line: 2, Column: 9}, u.End)

	assert.Equal(t, a, a.Union(token.EmptySpan()))
	assert.Equal(t, a, token.EmptySpan().Union(a))
	assert.True(t, token.UnionSpans().IsEmpty())
	assert.True(t, u.Encloses(a))
	assert.True(t, u.Encloses(b))
	assert.False(t, a.Encloses(b))
	assert.Equal(t, "(1,1)-(2,9)", u.String())
}

func TestCommentBody(t *testing.T) {
	line := token.Comment{Kind: token.LineComment, Text: "-- hi\n"}
	block := token.Comment{Kind: token.BlockComment, Text: "/* a /* b */ */"}
	hash := token.Comment{Kind: token.LineComment, Text: "# mysql"}

	assert.Equal(t, " hi", line.Body())
	assert.Equal(t, " a /* b */ ", block.Body())
	assert.Equal(t, " mysql", hash.Body())
	assert.True(t, line.IsLineComment())
	assert.False(t, block.IsLineComment())
}
