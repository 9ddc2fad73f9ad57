package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDataset() *Dataset {
	base := NewDate(2024, time.March, 1)
	return &Dataset{
		Accounts: []Account{
			{ID: "ACC-0001", Name: "Account 0001", Region: RegionEMEA, Country: "UK", Segment: SegmentDSO, CreatedDate: NewDate(2023, time.May, 2), IsActive: true},
		},
		Campaigns: []Campaign{
			{ID: "CMP-1001", Name: "Webinar-Campaign-01", Channel: ChannelWebinar, Region: RegionNA, StartDate: base, EndDate: base.AddDays(20), Objective: "Pipeline", SpendUSD: 9000},
		},
		Leads: []Lead{
			{ID: "LEAD-100001", CreatedDate: base, Region: RegionNA, Channel: ChannelWebinar, CampaignID: "CMP-1001", Status: StatusLead},
			{ID: "LEAD-100002", CreatedDate: base, Region: RegionNA, Channel: ChannelWebinar, CampaignID: "CMP-1001", Status: StatusSQL,
				MQLDate: base.AddDays(20), SQLDate: base.AddDays(12), ConvertedAccountID: "ACC-0001"},
		},
		Opportunities: []Opportunity{
			{ID: "OPP-200001", AccountID: "ACC-0001", LeadID: "LEAD-100002", CreatedDate: base, CloseDate: base.AddDays(30),
				Stage: StageClosedWon, AmountUSD: 5000, ProductLine: ProductScanner, Region: RegionNA},
		},
		Shipments: []Shipment{
			{ID: "SHP-300001", ShipDate: base, Region: RegionEMEA, AccountID: "ACC-0001", DoctorID: "DR-9001", ProductLine: ProductImaging, CasesShipped: 2},
		},
	}
}

func TestVerifyAcceptsConsistentDataset(t *testing.T) {
	// sql_date before mql_date is a tolerated funnel quirk, not a violation
	assert.NoError(t, Verify(validDataset()))
}

func TestVerifyReportsEveryViolation(t *testing.T) {
	d := validDataset()
	d.Accounts[0].Country = "Japan"
	d.Leads[0].MQLDate = d.Leads[0].CreatedDate.AddDays(3)
	d.Opportunities[0].AmountUSD = 4999
	d.Opportunities[0].Stage = StageProposal
	d.Shipments[0].AccountID = "ACC-9999"

	err := Verify(d)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `country "Japan" not in region EMEA`)
	assert.Contains(t, msg, "status Lead with funnel dates")
	assert.Contains(t, msg, "amount 4999 below 5000")
	assert.Contains(t, msg, "stage Proposal with close_date")
	assert.Contains(t, msg, "unknown account ACC-9999")
}

func TestVerifyRejectsOpportunityFromNonSQLLead(t *testing.T) {
	d := validDataset()
	d.Opportunities[0].LeadID = "LEAD-100001"
	assert.ErrorContains(t, Verify(d), "has status Lead")
}

func TestVerifyRejectsDatesBeforeCreation(t *testing.T) {
	d := validDataset()
	d.Leads[1].SQLDate = d.Leads[1].CreatedDate.AddDays(-1)
	assert.ErrorContains(t, Verify(d), "sql_date before created_date")
}

func TestTablesKeepDependencyOrderAndColumns(t *testing.T) {
	d := validDataset()
	tables := d.Tables()
	require.Len(t, tables, 5)

	names := make([]string, len(tables))
	for i, tbl := range tables {
		names[i] = tbl.Name
		for _, row := range tbl.Rows {
			assert.Len(t, row, len(tbl.Columns), tbl.Name)
		}
	}
	assert.Equal(t, []string{AccountsTable, CampaignsTable, LeadsTable, OpportunitiesTable, ShipmentsTable}, names)
	assert.Equal(t, []string{"opp_id", "account_id", "lead_id", "created_date", "close_date", "stage", "amount_usd", "product_line", "region"},
		tables[3].ColumnNames())
}

func TestSchemaHasNoRows(t *testing.T) {
	for _, tbl := range Schema() {
		assert.Empty(t, tbl.Rows)
		assert.NotEmpty(t, tbl.Columns)
	}
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2024-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, 2, d.AddDays(2).DaysSince(d))

	zero, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())
	assert.True(t, zero.AddDays(5).IsZero())

	_, err = ParseDate("28/02/2024")
	assert.Error(t, err)

	var round Date
	text, _ := d.MarshalText()
	require.NoError(t, round.UnmarshalText(text))
	assert.Equal(t, d, round)
}

func TestCountryInRegion(t *testing.T) {
	assert.True(t, countryInRegion(RegionEMEA, "UK"))
	assert.False(t, countryInRegion(RegionNA, "UK"))
	assert.False(t, countryInRegion(Region("LATAM"), "Brazil"))
}
