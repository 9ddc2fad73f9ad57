package database

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Rana718/funnelgen/internal/dataset"
	"github.com/fatih/color"
)

var ErrUnsupportedProvider = errors.New("unsupported database provider")

// Sink loads generated tables into a database.
type Sink interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// CreateTables creates any missing tables, in the given order.
	CreateTables(ctx context.Context, tables []dataset.Table) error
	// Truncate empties the tables, children first.
	Truncate(ctx context.Context, tables []dataset.Table) error
	// Insert appends all rows of one table and returns how many were written.
	Insert(ctx context.Context, table dataset.Table, batch int) (int64, error)
}

type LoadOptions struct {
	Truncate bool
	Batch    int
	Log      io.Writer
}

// Load creates, optionally truncates, and fills tables in dependency order.
func Load(ctx context.Context, sink Sink, tables []dataset.Table, opts LoadOptions) error {
	if opts.Log == nil {
		opts.Log = io.Discard
	}
	cyan := color.New(color.FgCyan)

	if err := sink.CreateTables(ctx, tables); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if opts.Truncate {
		if err := sink.Truncate(ctx, tables); err != nil {
			return fmt.Errorf("failed to truncate tables: %w", err)
		}
		cyan.Fprintln(opts.Log, "🧹 Tables truncated")
	}

	for _, table := range tables {
		n, err := sink.Insert(ctx, table, opts.Batch)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", table.Name, err)
		}
		cyan.Fprintf(opts.Log, "  📝 Loaded %s (%d rows)\n", table.Name, n)
	}
	return nil
}

func reversed(tables []dataset.Table) []dataset.Table {
	out := make([]dataset.Table, len(tables))
	for i, t := range tables {
		out[len(tables)-1-i] = t
	}
	return out
}
