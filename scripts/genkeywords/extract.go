package main

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
)

const (
	duckdbKeywordsQuery   = `SELECT keyword_name, keyword_category FROM duckdb_keywords() ORDER BY keyword_name`
	postgresKeywordsQuery = `SELECT word, catdesc FROM pg_get_keywords() ORDER BY word`
)

// EngineKeyword is a keyword as a database engine reports it.
type EngineKeyword struct {
	Word     string
	Category string
}

var validWord = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// extractKeywords runs query, which must return (word, category) rows, and
// upper-cases the words. Words that cannot be Go identifiers are skipped.
func extractKeywords(ctx context.Context, db *sql.DB, query string) ([]EngineKeyword, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query keywords: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []EngineKeyword
	for rows.Next() {
		var kw EngineKeyword
		if err := rows.Scan(&kw.Word, &kw.Category); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		kw.Word = strings.ToUpper(strings.TrimSpace(kw.Word))
		if !validWord.MatchString(kw.Word) {
			continue
		}
		out = append(out, kw)
	}
	return out, rows.Err()
}

// missingWords returns the engine keywords absent from words, first
// occurrence only.
func missingWords(words []string, engine []EngineKeyword) []EngineKeyword {
	known := make(map[string]bool, len(words))
	for _, w := range words {
		known[w] = true
	}
	var out []EngineKeyword
	for _, kw := range engine {
		if known[kw.Word] {
			continue
		}
		known[kw.Word] = true
		out = append(out, kw)
	}
	return out
}
