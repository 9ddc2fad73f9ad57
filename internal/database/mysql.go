package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/funnelgen/internal/dataset"
	"github.com/go-sql-driver/mysql"
)

type MySQLSink struct {
	sqlSink
}

func NewMySQLSink() *MySQLSink {
	return &MySQLSink{sqlSink{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		dialect: dialect{
			quote: backtickQuote,
			types: map[dataset.ColumnKind]string{
				dataset.KindText:    "VARCHAR(255)",
				dataset.KindInteger: "INT",
				dataset.KindBoolean: "BOOLEAN",
				dataset.KindDate:    "DATE",
			},
			keyType:   "VARCHAR(32)",
			date:      dateString,
			maxParams: 65535,
		},
		truncateSQL: "DELETE FROM %s",
	}}
}

// Connect takes a go-sql-driver DSN, optionally prefixed with mysql://.
func (m *MySQLSink) Connect(ctx context.Context, url string) error {
	cfg, err := mysql.ParseDSN(strings.TrimPrefix(url, "mysql://"))
	if err != nil {
		return fmt.Errorf("invalid MySQL DSN: %w", err)
	}
	cfg.ParseTime = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	m.db = db
	return nil
}
