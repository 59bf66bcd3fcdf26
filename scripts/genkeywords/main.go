// Package main generates the keyword enum and name table of pkg/keyword.
//
// The table is read from a plain list with one keyword per line. It can be
// refreshed from live engines before generating: -duckdb reads
// duckdb_keywords() from an in-memory DuckDB and -postgres-dsn reads
// pg_get_keywords() from a PostgreSQL server. New words are merged into the
// list file when -merge is set, otherwise they are only reported.
//
// Usage:
//
//	go run ./scripts/genkeywords -in pkg/keyword/keywords.txt -out pkg/keyword/keywords_gen.go
//	go run ./scripts/genkeywords -in pkg/keyword/keywords.txt -out pkg/keyword/keywords_gen.go -duckdb -merge
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/marcboeker/go-duckdb"
)

var (
	inFlag       = flag.String("in", "keywords.txt", "keyword list (one per line)")
	outFlag      = flag.String("out", "keywords_gen.go", "output file path")
	duckdbFlag   = flag.Bool("duckdb", false, "merge keywords reported by an in-memory DuckDB")
	postgresFlag = flag.String("postgres-dsn", "", "merge keywords reported by the PostgreSQL server at this DSN")
	mergeFlag    = flag.Bool("merge", false, "write engine keywords missing from -in back to the list")
)

func main() {
	flag.Parse()

	src, err := os.ReadFile(*inFlag)
	if err != nil {
		log.Fatalf("failed to read keyword list: %v", err)
	}
	words := parseList(string(src))
	log.Printf("Read %d keywords from %s", len(words), *inFlag)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var engine []EngineKeyword
	if *duckdbFlag {
		kws, err := fromDriver(ctx, "duckdb", "", duckdbKeywordsQuery)
		if err != nil {
			log.Fatalf("failed to read duckdb keywords: %v", err)
		}
		log.Printf("DuckDB reports %d keywords", len(kws))
		engine = append(engine, kws...)
	}
	if *postgresFlag != "" {
		kws, err := fromDriver(ctx, "pgx", *postgresFlag, postgresKeywordsQuery)
		if err != nil {
			log.Fatalf("failed to read postgres keywords: %v", err)
		}
		log.Printf("PostgreSQL reports %d keywords", len(kws))
		engine = append(engine, kws...)
	}

	if missing := missingWords(words, engine); len(missing) > 0 {
		for _, kw := range missing {
			log.Printf("missing: %s (%s)", kw.Word, kw.Category)
		}
		if *mergeFlag {
			for _, kw := range missing {
				words = append(words, kw.Word)
			}
			words = parseList(formatList(words))
			if err := os.WriteFile(*inFlag, []byte(formatList(words)), 0o600); err != nil {
				log.Fatalf("failed to update keyword list: %v", err)
			}
			log.Printf("Merged %d keywords into %s", len(missing), *inFlag)
		}
	}

	code, err := render(words)
	if err != nil {
		log.Fatalf("failed to render: %v", err)
	}
	if err := os.WriteFile(*outFlag, code, 0o600); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}
	log.Printf("Generated %s (%d keywords)", *outFlag, len(words))
}

func fromDriver(ctx context.Context, driver, dsn, query string) ([]EngineKeyword, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()
	return extractKeywords(ctx, db, query)
}
