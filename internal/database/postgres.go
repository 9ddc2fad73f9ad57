package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rana718/funnelgen/internal/dataset"
	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

// PostgresSink bulk-loads with COPY, so the batch size is ignored.
type PostgresSink struct {
	conn    *pgx.Conn
	dialect dialect
}

func NewPostgresSink() *PostgresSink {
	return &PostgresSink{
		dialect: dialect{
			quote: pq.QuoteIdentifier,
			types: map[dataset.ColumnKind]string{
				dataset.KindText:    "TEXT",
				dataset.KindInteger: "INTEGER",
				dataset.KindBoolean: "BOOLEAN",
				dataset.KindDate:    "DATE",
			},
			date: func(d dataset.Date) any { return d.Time() },
		},
	}
}

func (p *PostgresSink) Connect(ctx context.Context, url string) error {
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	p.conn = conn
	return nil
}

func (p *PostgresSink) Close() error {
	if p.conn != nil {
		return p.conn.Close(context.Background())
	}
	return nil
}

func (p *PostgresSink) Ping(ctx context.Context) error {
	return p.conn.Ping(ctx)
}

func (p *PostgresSink) CreateTables(ctx context.Context, tables []dataset.Table) error {
	pks := primaryKeys(tables)
	for _, t := range tables {
		if _, err := p.conn.Exec(ctx, p.dialect.createTableSQL(t, pks)); err != nil {
			return fmt.Errorf("create %s: %w", t.Name, err)
		}
	}
	return nil
}

func (p *PostgresSink) Truncate(ctx context.Context, tables []dataset.Table) error {
	names := make([]string, len(tables))
	for i, t := range reversed(tables) {
		names[i] = p.dialect.quote(t.Name)
	}
	_, err := p.conn.Exec(ctx, "TRUNCATE TABLE "+strings.Join(names, ", ")+" CASCADE")
	return err
}

func (p *PostgresSink) Insert(ctx context.Context, table dataset.Table, _ int) (int64, error) {
	if len(table.Rows) == 0 {
		return 0, nil
	}
	rows := make([][]any, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = p.dialect.rowValues(table, row)
	}
	n, err := p.conn.CopyFrom(ctx, pgx.Identifier{table.Name}, table.ColumnNames(), pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy into %s: %w", table.Name, err)
	}
	return n, nil
}
