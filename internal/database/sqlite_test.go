package database

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Rana718/funnelgen/internal/dataset"
	"github.com/Rana718/funnelgen/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	d, err := generator.New(generator.Options{
		Seed:   42,
		Counts: generator.Counts{Accounts: 20, Campaigns: 5, Leads: 400, Opportunities: 30, Shipments: 50},
	}).Generate()
	require.NoError(t, err)
	return d
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "`+table+`"`).Scan(&n))
	return n
}

func TestSQLiteLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fixtures.db")
	d := smallDataset(t)

	sink := NewSQLiteSink()
	require.NoError(t, sink.Connect(ctx, "sqlite://"+path))
	defer sink.Close()
	require.NoError(t, sink.Ping(ctx))

	var log bytes.Buffer
	require.NoError(t, Load(ctx, sink, d.Tables(), LoadOptions{Batch: 7, Log: &log}))
	assert.Contains(t, log.String(), "Loaded crm_leads (400 rows)")

	db := sink.db
	for name, want := range d.RowCounts() {
		assert.Equal(t, want, countRows(t, db, name), name)
	}

	var nullMQL, leadStatus int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM crm_leads WHERE mql_date IS NULL`).Scan(&nullMQL))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM crm_leads WHERE lead_status = 'Lead'`).Scan(&leadStatus))
	assert.Equal(t, leadStatus, nullMQL)

	var created string
	require.NoError(t, db.QueryRow(`SELECT created_date FROM crm_accounts WHERE account_id = 'ACC-0001'`).Scan(&created))
	assert.Equal(t, d.Accounts[0].CreatedDate.String(), created)

	// loading again into the same tables without truncate violates the primary keys
	assert.Error(t, Load(ctx, sink, d.Tables(), LoadOptions{Batch: 50}))

	require.NoError(t, Load(ctx, sink, d.Tables(), LoadOptions{Batch: 50, Truncate: true}))
	assert.Equal(t, len(d.Shipments), countRows(t, db, dataset.ShipmentsTable))
}

func TestSQLiteLoadEmptyTables(t *testing.T) {
	ctx := context.Background()
	sink := NewSQLiteSink()
	require.NoError(t, sink.Connect(ctx, filepath.Join(t.TempDir(), "empty.db")))
	defer sink.Close()

	require.NoError(t, Load(ctx, sink, dataset.Schema(), LoadOptions{}))
	assert.Equal(t, 0, countRows(t, sink.db, dataset.OpportunitiesTable))
}

func TestNewSink(t *testing.T) {
	for _, provider := range []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"} {
		sink, err := NewSink(provider)
		require.NoError(t, err, provider)
		assert.NotNil(t, sink)
	}

	_, err := NewSink("oracle")
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}

func TestMySQLConnectRejectsBadDSN(t *testing.T) {
	err := NewMySQLSink().Connect(context.Background(), "mysql://not a dsn")
	assert.ErrorContains(t, err, "invalid MySQL DSN")
}

func TestSQLiteLoadLargeBatch(t *testing.T) {
	ctx := context.Background()
	d, err := generator.New(generator.Options{
		Seed:   42,
		Counts: generator.Counts{Accounts: 50, Campaigns: 10, Leads: 4000, Opportunities: 100, Shipments: 100},
	}).Generate()
	require.NoError(t, err)

	sink := NewSQLiteSink()
	require.NoError(t, sink.Connect(ctx, filepath.Join(t.TempDir(), "large.db")))
	defer sink.Close()

	// 4000 leads x 9 columns is past SQLite's bind variable limit in one statement
	require.NoError(t, Load(ctx, sink, d.Tables(), LoadOptions{Batch: 5000}))
	assert.Equal(t, 4000, countRows(t, sink.db, dataset.LeadsTable))
}
