package dataset

// Table names double as file stems and database table names.
const (
	AccountsTable      = "crm_accounts"
	CampaignsTable     = "marketing_campaigns"
	LeadsTable         = "crm_leads"
	OpportunitiesTable = "crm_opportunities"
	ShipmentsTable     = "erp_shipments"
)

type ColumnKind int

const (
	KindText ColumnKind = iota
	KindInteger
	KindBoolean
	KindDate
)

func (k ColumnKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	default:
		return "text"
	}
}

type Column struct {
	Name       string
	Kind       ColumnKind
	Nullable   bool
	PrimaryKey bool
	References string // referenced table, empty when not a foreign key
}

// Table is the serializer-facing view of one entity collection.
// Row values are string, int, bool or Date, in column order.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

type Account struct {
	ID          string
	Name        string
	Region      Region
	Country     string
	Segment     Segment
	CreatedDate Date
	IsActive    bool
}

var AccountColumns = []Column{
	{Name: "account_id", Kind: KindText, PrimaryKey: true},
	{Name: "account_name", Kind: KindText},
	{Name: "region", Kind: KindText},
	{Name: "country", Kind: KindText},
	{Name: "segment", Kind: KindText},
	{Name: "created_date", Kind: KindDate},
	{Name: "is_active", Kind: KindBoolean},
}

func (a Account) Values() []any {
	return []any{a.ID, a.Name, string(a.Region), a.Country, string(a.Segment), a.CreatedDate, a.IsActive}
}

type Campaign struct {
	ID        string
	Name      string
	Channel   Channel
	Region    Region
	StartDate Date
	EndDate   Date
	Objective string
	SpendUSD  int
}

var CampaignColumns = []Column{
	{Name: "campaign_id", Kind: KindText, PrimaryKey: true},
	{Name: "campaign_name", Kind: KindText},
	{Name: "channel", Kind: KindText},
	{Name: "region", Kind: KindText},
	{Name: "start_date", Kind: KindDate},
	{Name: "end_date", Kind: KindDate},
	{Name: "objective", Kind: KindText},
	{Name: "spend_usd", Kind: KindInteger},
}

func (c Campaign) Values() []any {
	return []any{c.ID, c.Name, string(c.Channel), string(c.Region), c.StartDate, c.EndDate, c.Objective, c.SpendUSD}
}

// Lead is one marketing lead. MQLDate, SQLDate and ConvertedAccountID are
// empty unless the corresponding funnel step happened.
type Lead struct {
	ID                 string
	CreatedDate        Date
	Region             Region
	Channel            Channel
	CampaignID         string
	Status             LeadStatus
	MQLDate            Date
	SQLDate            Date
	ConvertedAccountID string
}

var LeadColumns = []Column{
	{Name: "lead_id", Kind: KindText, PrimaryKey: true},
	{Name: "created_date", Kind: KindDate},
	{Name: "region", Kind: KindText},
	{Name: "channel", Kind: KindText},
	{Name: "campaign_id", Kind: KindText, References: CampaignsTable},
	{Name: "lead_status", Kind: KindText},
	{Name: "mql_date", Kind: KindDate, Nullable: true},
	{Name: "sql_date", Kind: KindDate, Nullable: true},
	{Name: "converted_account_id", Kind: KindText, Nullable: true, References: AccountsTable},
}

func (l Lead) Values() []any {
	return []any{l.ID, l.CreatedDate, string(l.Region), string(l.Channel), l.CampaignID,
		string(l.Status), l.MQLDate, l.SQLDate, l.ConvertedAccountID}
}

type Opportunity struct {
	ID          string
	AccountID   string
	LeadID      string
	CreatedDate Date
	CloseDate   Date
	Stage       Stage
	AmountUSD   int
	ProductLine ProductLine
	Region      Region
}

var OpportunityColumns = []Column{
	{Name: "opp_id", Kind: KindText, PrimaryKey: true},
	{Name: "account_id", Kind: KindText, References: AccountsTable},
	{Name: "lead_id", Kind: KindText, References: LeadsTable},
	{Name: "created_date", Kind: KindDate},
	{Name: "close_date", Kind: KindDate, Nullable: true},
	{Name: "stage", Kind: KindText},
	{Name: "amount_usd", Kind: KindInteger},
	{Name: "product_line", Kind: KindText},
	{Name: "region", Kind: KindText},
}

func (o Opportunity) Values() []any {
	return []any{o.ID, o.AccountID, o.LeadID, o.CreatedDate, o.CloseDate,
		string(o.Stage), o.AmountUSD, string(o.ProductLine), string(o.Region)}
}

type Shipment struct {
	ID           string
	ShipDate     Date
	Region       Region
	AccountID    string
	DoctorID     string
	ProductLine  ProductLine
	CasesShipped int
}

var ShipmentColumns = []Column{
	{Name: "shipment_id", Kind: KindText, PrimaryKey: true},
	{Name: "ship_date", Kind: KindDate},
	{Name: "region", Kind: KindText},
	{Name: "account_id", Kind: KindText, References: AccountsTable},
	{Name: "doctor_id", Kind: KindText},
	{Name: "product_line", Kind: KindText},
	{Name: "cases_shipped", Kind: KindInteger},
}

func (s Shipment) Values() []any {
	return []any{s.ID, s.ShipDate, string(s.Region), s.AccountID, s.DoctorID, string(s.ProductLine), s.CasesShipped}
}
