package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Rana718/funnelgen/internal/dataset"
)

var (
	ErrEmptyDependency = errors.New("empty dependency")
	ErrInvalidCount    = errors.New("invalid row count")
)

var (
	accountEpoch  = dataset.NewDate(2023, time.January, 1)
	activityEpoch = dataset.NewDate(2024, time.January, 1)
)

const (
	accountWindowDays  = 700
	campaignWindowDays = 500
	activityWindowDays = 730

	pMQLHighIntent = 0.35
	pMQLDefault    = 0.25
	pSQL           = 0.45
	pConversion    = 0.60

	amountStdRatio = 0.35
)

var (
	opportunityProductWeights = []float64{0.65, 0.20, 0.15}
	shipmentProductWeights    = []float64{0.75, 0.15, 0.10}
	stageWeights              = []float64{0.42, 0.18, 0.20, 0.20}

	meanAmountByProduct = map[dataset.ProductLine]float64{
		dataset.ProductClearAligners: 55000,
		dataset.ProductScanner:       35000,
		dataset.ProductImaging:       25000,
	}
)

func checkCount(entity string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s count %d", ErrInvalidCount, entity, n)
	}
	return nil
}

func Accounts(r *rand.Rand, n int) ([]dataset.Account, error) {
	if err := checkCount("accounts", n); err != nil {
		return nil, err
	}
	rows := make([]dataset.Account, 0, n)
	for i := 1; i <= n; i++ {
		region := choice(r, dataset.Regions)
		country := choice(r, dataset.CountriesByRegion[region])
		segment := choice(r, dataset.Segments)
		created := accountEpoch.AddDays(intBetween(r, 0, accountWindowDays))
		rows = append(rows, dataset.Account{
			ID:          fmt.Sprintf("ACC-%04d", i),
			Name:        fmt.Sprintf("Account %04d", i),
			Region:      region,
			Country:     country,
			Segment:     segment,
			CreatedDate: created,
			IsActive:    true,
		})
	}
	return rows, nil
}

func Campaigns(r *rand.Rand, n int) ([]dataset.Campaign, error) {
	if err := checkCount("campaigns", n); err != nil {
		return nil, err
	}
	rows := make([]dataset.Campaign, 0, n)
	for i := 1; i <= n; i++ {
		region := choice(r, dataset.Regions)
		channel := choice(r, dataset.Channels)
		start := activityEpoch.AddDays(intBetween(r, 0, campaignWindowDays))
		end := start.AddDays(intBetween(r, 14, 90))
		spend := intBetween(r, 8000, 120000)
		rows = append(rows, dataset.Campaign{
			ID:        fmt.Sprintf("CMP-%d", 1000+i),
			Name:      fmt.Sprintf("%s-Campaign-%02d", channel, i),
			Channel:   channel,
			Region:    region,
			StartDate: start,
			EndDate:   end,
			Objective: choice(r, dataset.Objectives),
			SpendUSD:  spend,
		})
	}
	return rows, nil
}

func mqlProbability(ch dataset.Channel) float64 {
	if ch == dataset.ChannelPaidSearch || ch == dataset.ChannelLinkedIn {
		return pMQLHighIntent
	}
	return pMQLDefault
}

// Leads runs each lead through the MQL and SQL trials. The SQL offset is
// drawn from created_date independently of the MQL offset, so sql_date can
// precede mql_date. The converted account ignores the lead's region.
func Leads(r *rand.Rand, accounts []dataset.Account, campaigns []dataset.Campaign, n int) ([]dataset.Lead, error) {
	if err := checkCount("leads", n); err != nil {
		return nil, err
	}
	if n > 0 && len(campaigns) == 0 {
		return nil, fmt.Errorf("%w: leads need at least one campaign", ErrEmptyDependency)
	}
	rows := make([]dataset.Lead, 0, n)
	for i := 1; i <= n; i++ {
		created := activityEpoch.AddDays(intBetween(r, 0, activityWindowDays))
		camp := choice(r, campaigns)

		isMQL := bernoulli(r, mqlProbability(camp.Channel))
		isSQL := isMQL && bernoulli(r, pSQL)

		lead := dataset.Lead{
			ID:          fmt.Sprintf("LEAD-%d", 100000+i),
			CreatedDate: created,
			Region:      camp.Region,
			Channel:     camp.Channel,
			CampaignID:  camp.ID,
			Status:      dataset.StatusLead,
		}
		if isMQL {
			lead.Status = dataset.StatusMQL
			lead.MQLDate = created.AddDays(intBetween(r, 2, 21))
		}
		if isSQL {
			lead.Status = dataset.StatusSQL
			lead.SQLDate = created.AddDays(intBetween(r, 10, 45))
		}
		if isMQL && bernoulli(r, pConversion) {
			if len(accounts) == 0 {
				return nil, fmt.Errorf("%w: lead %s converted but there are no accounts", ErrEmptyDependency, lead.ID)
			}
			lead.ConvertedAccountID = choice(r, accounts).ID
		}
		rows = append(rows, lead)
	}
	return rows, nil
}

// Opportunities samples up to n SQL leads without replacement. IDs count
// emitted rows only, so they have no gaps.
func Opportunities(r *rand.Rand, leads []dataset.Lead, accounts []dataset.Account, n int) ([]dataset.Opportunity, error) {
	if err := checkCount("opportunities", n); err != nil {
		return nil, err
	}
	var sqlLeads []dataset.Lead
	for _, l := range leads {
		if l.Status == dataset.StatusSQL {
			sqlLeads = append(sqlLeads, l)
		}
	}
	if len(sqlLeads) == 0 {
		return []dataset.Opportunity{}, nil
	}

	picked := sampleIndexes(r, len(sqlLeads), n)
	rows := make([]dataset.Opportunity, 0, len(picked))
	for _, idx := range picked {
		lead := sqlLeads[idx]

		accountID := lead.ConvertedAccountID
		if accountID == "" {
			if len(accounts) == 0 {
				return nil, fmt.Errorf("%w: opportunity for lead %s needs an account", ErrEmptyDependency, lead.ID)
			}
			accountID = choice(r, accounts).ID
		}

		product := weightedChoice(r, dataset.ProductLines, opportunityProductWeights)
		mean := meanAmountByProduct[product]
		amount := int(r.NormFloat64()*mean*amountStdRatio + mean)
		amount = max(dataset.MinOpportunityAmount, amount)

		stage := weightedChoice(r, dataset.Stages, stageWeights)
		var closeDate dataset.Date
		if stage.Terminal() {
			closeDate = lead.CreatedDate.AddDays(intBetween(r, 15, 120))
		}

		rows = append(rows, dataset.Opportunity{
			ID:          fmt.Sprintf("OPP-%d", 200000+len(rows)+1),
			AccountID:   accountID,
			LeadID:      lead.ID,
			CreatedDate: lead.CreatedDate,
			CloseDate:   closeDate,
			Stage:       stage,
			AmountUSD:   amount,
			ProductLine: product,
			Region:      lead.Region,
		})
	}
	return rows, nil
}

func Shipments(r *rand.Rand, accounts []dataset.Account, n int) ([]dataset.Shipment, error) {
	if err := checkCount("shipments", n); err != nil {
		return nil, err
	}
	if n > 0 && len(accounts) == 0 {
		return nil, fmt.Errorf("%w: shipments need at least one account", ErrEmptyDependency)
	}
	rows := make([]dataset.Shipment, 0, n)
	for i := 1; i <= n; i++ {
		shipped := activityEpoch.AddDays(intBetween(r, 0, activityWindowDays))
		acc := choice(r, accounts)
		product := weightedChoice(r, dataset.ProductLines, shipmentProductWeights)
		doctor := fmt.Sprintf("DR-%d", intBetween(r, 9000, 9999))
		var cases int
		if product == dataset.ProductClearAligners {
			cases = intBetween(r, 1, 8)
		} else {
			cases = intBetween(r, 1, 2)
		}
		rows = append(rows, dataset.Shipment{
			ID:           fmt.Sprintf("SHP-%d", 300000+i),
			ShipDate:     shipped,
			Region:       acc.Region,
			AccountID:    acc.ID,
			DoctorID:     doctor,
			ProductLine:  product,
			CasesShipped: cases,
		})
	}
	return rows, nil
}
