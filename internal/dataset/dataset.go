// Package dataset holds the typed records of the synthetic CRM, marketing and
// ERP fixture set, and the table view every writer and loader consumes.
package dataset

// Dataset is one fully generated run, held in memory before any output.
type Dataset struct {
	Accounts      []Account
	Campaigns     []Campaign
	Leads         []Lead
	Opportunities []Opportunity
	Shipments     []Shipment
}

type valuer interface {
	Values() []any
}

func tableOf[T valuer](name string, cols []Column, records []T) Table {
	rows := make([][]any, len(records))
	for i, r := range records {
		rows[i] = r.Values()
	}
	return Table{Name: name, Columns: cols, Rows: rows}
}

// Tables returns the five entity tables in dependency order.
func (d *Dataset) Tables() []Table {
	return []Table{
		tableOf(AccountsTable, AccountColumns, d.Accounts),
		tableOf(CampaignsTable, CampaignColumns, d.Campaigns),
		tableOf(LeadsTable, LeadColumns, d.Leads),
		tableOf(OpportunitiesTable, OpportunityColumns, d.Opportunities),
		tableOf(ShipmentsTable, ShipmentColumns, d.Shipments),
	}
}

// Schema returns the empty tables, for layout listings and DDL.
func Schema() []Table {
	var empty Dataset
	return empty.Tables()
}

// RowCounts maps table name to number of rows.
func (d *Dataset) RowCounts() map[string]int {
	return map[string]int{
		AccountsTable:      len(d.Accounts),
		CampaignsTable:     len(d.Campaigns),
		LeadsTable:         len(d.Leads),
		OpportunitiesTable: len(d.Opportunities),
		ShipmentsTable:     len(d.Shipments),
	}
}
