package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/funnelgen/internal/dataset"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteSink struct {
	sqlSink
}

func NewSQLiteSink() *SQLiteSink {
	return &SQLiteSink{sqlSink{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		dialect: dialect{
			quote: doubleQuote,
			types: map[dataset.ColumnKind]string{
				dataset.KindText:    "TEXT",
				dataset.KindInteger: "INTEGER",
				dataset.KindBoolean: "INTEGER",
				dataset.KindDate:    "TEXT",
			},
			date:      dateString,
			maxParams: 32766,
		},
		truncateSQL: "DELETE FROM %s",
	}}
}

// Connect accepts a plain path, a sqlite:// URL or a file: URI.
func (s *SQLiteSink) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dbPath, "?") {
		dbPath += "?_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}
	// one connection keeps the transaction and pragmas on the same handle
	db.SetMaxOpenConns(1)

	s.db = db
	return nil
}
