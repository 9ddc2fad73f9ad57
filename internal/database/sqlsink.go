package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/funnelgen/internal/dataset"
)

// sqlSink loads through database/sql with batched multi-row INSERTs.
type sqlSink struct {
	db      *sql.DB
	qb      squirrel.StatementBuilderType
	dialect dialect
	// truncateSQL formats the statement that empties one quoted table.
	truncateSQL string
}

func (s *sqlSink) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *sqlSink) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlSink) CreateTables(ctx context.Context, tables []dataset.Table) error {
	pks := primaryKeys(tables)
	for _, t := range tables {
		if _, err := s.db.ExecContext(ctx, s.dialect.createTableSQL(t, pks)); err != nil {
			return fmt.Errorf("create %s: %w", t.Name, err)
		}
	}
	return nil
}

func (s *sqlSink) Truncate(ctx context.Context, tables []dataset.Table) error {
	for _, t := range reversed(tables) {
		query := fmt.Sprintf(s.truncateSQL, s.dialect.quote(t.Name))
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("truncate %s: %w", t.Name, err)
		}
	}
	return nil
}

func (s *sqlSink) Insert(ctx context.Context, table dataset.Table, batch int) (int64, error) {
	if len(table.Rows) == 0 {
		return 0, nil
	}
	batch = s.dialect.batchSize(table, batch)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	cols := s.dialect.quotedColumns(table)
	var total int64
	for start := 0; start < len(table.Rows); start += batch {
		end := min(start+batch, len(table.Rows))

		q := s.qb.Insert(s.dialect.quote(table.Name)).Columns(cols...)
		for _, row := range table.Rows[start:end] {
			q = q.Values(s.dialect.rowValues(table, row)...)
		}

		res, err := q.RunWith(tx).ExecContext(ctx)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to insert batch at row %d: %w", start, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			total += n
		} else {
			total += int64(end - start)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return total, nil
}
