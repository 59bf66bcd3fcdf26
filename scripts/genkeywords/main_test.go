package main

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Extraction Tests ----------

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []EngineKeyword
		expectErr bool
	}{
		{
			name: "duckdb rows",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"keyword_name", "keyword_category"}).
					AddRow("select", "reserved").
					AddRow("qualify", "reserved").
					AddRow("pivot_wider", "unreserved")
				mock.ExpectQuery("duckdb_keywords").WillReturnRows(rows)
			},
			want: []EngineKeyword{
				{Word: "SELECT", Category: "reserved"},
				{Word: "QUALIFY", Category: "reserved"},
				{Word: "PIVOT_WIDER", Category: "unreserved"},
			},
		},
		{
			name: "invalid words skipped",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"keyword_name", "keyword_category"}).
					AddRow("1abc", "unreserved").
					AddRow("with space", "unreserved").
					AddRow(" from ", "reserved")
				mock.ExpectQuery("duckdb_keywords").WillReturnRows(rows)
			},
			want: []EngineKeyword{{Word: "FROM", Category: "reserved"}},
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("duckdb_keywords").WillReturnError(assert.AnError)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			tt.setupMock(mock)

			got, err := extractKeywords(context.Background(), db, duckdbKeywordsQuery)
			if tt.expectErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "query keywords")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMissingWords(t *testing.T) {
	engine := []EngineKeyword{
		{Word: "SELECT", Category: "R"},
		{Word: "LATERAL", Category: "R"},
		{Word: "LATERAL", Category: "reserved"},
	}
	got := missingWords([]string{"SELECT", "FROM"}, engine)
	assert.Equal(t, []EngineKeyword{{Word: "LATERAL", Category: "R"}}, got)
}

// ---------- Rendering Tests ----------

func TestParseList(t *testing.T) {
	got := parseList("select\n\n# comment\nFROM\nSELECT\n  where  \nALL_DIFFERENT\nALL\n")
	assert.Equal(t, []string{"ALL", "ALL_DIFFERENT", "FROM", "SELECT", "WHERE"}, got)
}

func TestRender(t *testing.T) {
	code, err := render([]string{"ABORT", "SELECT"})
	require.NoError(t, err)

	src := string(code)
	assert.True(t, strings.HasPrefix(src, "// Code generated by scripts/genkeywords; DO NOT EDIT."))
	assert.Contains(t, src, "NoKeyword Keyword = iota\n\tABORT\n\tSELECT\n)")
	assert.Contains(t, src, "\"\",\n\t\"ABORT\",\n\t\"SELECT\",\n}")
}

func TestRenderRejectsInvalidWord(t *testing.T) {
	_, err := render([]string{"SELECT", "NOT-A-WORD"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT-A-WORD")
}
