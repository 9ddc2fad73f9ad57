package database

import (
	"testing"
	"time"

	"github.com/Rana718/funnelgen/internal/dataset"
	"github.com/stretchr/testify/assert"
)

func TestCreateTableSQLPostgres(t *testing.T) {
	schema := dataset.Schema()
	sink := NewPostgresSink()

	ddl := sink.dialect.createTableSQL(schema[3], primaryKeys(schema))
	assert.Contains(t, ddl, `CREATE TABLE IF NOT EXISTS "crm_opportunities"`)
	assert.Contains(t, ddl, `"opp_id" TEXT NOT NULL PRIMARY KEY`)
	assert.Contains(t, ddl, `"close_date" DATE,`)
	assert.Contains(t, ddl, `"amount_usd" INTEGER NOT NULL`)
	assert.Contains(t, ddl, `FOREIGN KEY ("lead_id") REFERENCES "crm_leads" ("lead_id")`)
	assert.Contains(t, ddl, `FOREIGN KEY ("account_id") REFERENCES "crm_accounts" ("account_id")`)
}

func TestCreateTableSQLMySQLUsesKeyType(t *testing.T) {
	schema := dataset.Schema()
	sink := NewMySQLSink()

	ddl := sink.dialect.createTableSQL(schema[2], primaryKeys(schema))
	assert.Contains(t, ddl, "`lead_id` VARCHAR(32) NOT NULL PRIMARY KEY")
	assert.Contains(t, ddl, "`converted_account_id` VARCHAR(32),")
	assert.Contains(t, ddl, "`region` VARCHAR(255) NOT NULL")
	assert.Contains(t, ddl, "`mql_date` DATE")
}

func TestCreateTableSQLSkipsMissingReferences(t *testing.T) {
	leads := dataset.Schema()[2]
	ddl := NewSQLiteSink().dialect.createTableSQL(leads, primaryKeys([]dataset.Table{leads}))
	assert.NotContains(t, ddl, "FOREIGN KEY")
}

func TestRowValues(t *testing.T) {
	lead := dataset.Lead{
		ID:          "LEAD-100001",
		CreatedDate: dataset.NewDate(2024, time.June, 3),
		Region:      dataset.RegionAPAC,
		Channel:     dataset.ChannelDisplay,
		CampaignID:  "CMP-1001",
		Status:      dataset.StatusLead,
	}
	table := dataset.Table{Name: dataset.LeadsTable, Columns: dataset.LeadColumns}

	got := NewSQLiteSink().dialect.rowValues(table, lead.Values())
	assert.Equal(t, []any{"LEAD-100001", "2024-06-03", "APAC", "Display", "CMP-1001", "Lead", nil, nil, nil}, got)

	pg := NewPostgresSink().dialect.rowValues(table, lead.Values())
	assert.Equal(t, lead.CreatedDate.Time(), pg[1])
}

func TestQuoting(t *testing.T) {
	assert.Equal(t, `"a""b"`, doubleQuote(`a"b`))
	assert.Equal(t, "`a``b`", backtickQuote("a`b"))
}

func TestBatchSizeStaysUnderParamLimit(t *testing.T) {
	leads := dataset.Table{Name: dataset.LeadsTable, Columns: dataset.LeadColumns}

	assert.Equal(t, 3640, NewSQLiteSink().dialect.batchSize(leads, 5000))
	assert.Equal(t, 7281, NewMySQLSink().dialect.batchSize(leads, 20000))
	assert.Equal(t, 500, NewSQLiteSink().dialect.batchSize(leads, 500))
	assert.Equal(t, 100, NewMySQLSink().dialect.batchSize(leads, 0))
	assert.Equal(t, 5000, NewPostgresSink().dialect.batchSize(leads, 5000))
}
