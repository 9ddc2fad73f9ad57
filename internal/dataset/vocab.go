package dataset

import "slices"

type Region string

const (
	RegionNA   Region = "NA"
	RegionEMEA Region = "EMEA"
	RegionAPAC Region = "APAC"
)

var Regions = []Region{RegionNA, RegionEMEA, RegionAPAC}

// CountriesByRegion lists the countries an account in a region may have.
var CountriesByRegion = map[Region][]string{
	RegionNA:   {"USA", "Canada"},
	RegionEMEA: {"Germany", "France", "UK"},
	RegionAPAC: {"Japan", "Korea", "Singapore"},
}

type Segment string

const (
	SegmentOrthoClinic Segment = "Orthodontic Clinic"
	SegmentDSO         Segment = "DSO"
)

var Segments = []Segment{SegmentOrthoClinic, SegmentDSO}

type Channel string

const (
	ChannelPaidSearch Channel = "Paid Search"
	ChannelLinkedIn   Channel = "LinkedIn"
	ChannelWebinar    Channel = "Webinar"
	ChannelDisplay    Channel = "Display"
	ChannelPartners   Channel = "Partners"
)

var Channels = []Channel{ChannelPaidSearch, ChannelLinkedIn, ChannelWebinar, ChannelDisplay, ChannelPartners}

var Objectives = []string{"Lead Gen", "Demand Gen", "Conversion", "Pipeline"}

type ProductLine string

const (
	ProductClearAligners ProductLine = "Clear Aligners"
	ProductScanner       ProductLine = "Scanner"
	ProductImaging       ProductLine = "Imaging"
)

var ProductLines = []ProductLine{ProductClearAligners, ProductScanner, ProductImaging}

type LeadStatus string

const (
	StatusLead LeadStatus = "Lead"
	StatusMQL  LeadStatus = "MQL"
	StatusSQL  LeadStatus = "SQL"
)

type Stage string

const (
	StageClosedWon   Stage = "Closed Won"
	StageClosedLost  Stage = "Closed Lost"
	StageNegotiation Stage = "Negotiation"
	StageProposal    Stage = "Proposal"
)

var Stages = []Stage{StageClosedWon, StageClosedLost, StageNegotiation, StageProposal}

// Terminal reports whether the stage ends the opportunity and so carries a close date.
func (s Stage) Terminal() bool {
	return s == StageClosedWon || s == StageClosedLost
}

// MinOpportunityAmount is the floor applied to every opportunity amount.
const MinOpportunityAmount = 5000

func countryInRegion(region Region, country string) bool {
	return slices.Contains(CountriesByRegion[region], country)
}
