package dataset

import (
	"errors"
	"fmt"
)

// Verify checks referential integrity and the per-row funnel rules of a
// generated dataset. All violations are returned joined; nil means clean.
//
// sql_date is not required to follow mql_date: both are drawn from
// created_date independently.
func Verify(d *Dataset) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	accounts := make(map[string]bool, len(d.Accounts))
	for _, a := range d.Accounts {
		if accounts[a.ID] {
			add("account %s: duplicate id", a.ID)
		}
		accounts[a.ID] = true
		if !countryInRegion(a.Region, a.Country) {
			add("account %s: country %q not in region %s", a.ID, a.Country, a.Region)
		}
	}

	campaigns := make(map[string]bool, len(d.Campaigns))
	for _, c := range d.Campaigns {
		if campaigns[c.ID] {
			add("campaign %s: duplicate id", c.ID)
		}
		campaigns[c.ID] = true
		if !c.EndDate.After(c.StartDate) {
			add("campaign %s: end_date %s not after start_date %s", c.ID, c.EndDate, c.StartDate)
		}
	}

	leads := make(map[string]Lead, len(d.Leads))
	for _, l := range d.Leads {
		if _, dup := leads[l.ID]; dup {
			add("lead %s: duplicate id", l.ID)
		}
		leads[l.ID] = l
		if !campaigns[l.CampaignID] {
			add("lead %s: unknown campaign %s", l.ID, l.CampaignID)
		}
		if l.ConvertedAccountID != "" && !accounts[l.ConvertedAccountID] {
			add("lead %s: unknown converted account %s", l.ID, l.ConvertedAccountID)
		}
		switch l.Status {
		case StatusLead:
			if !l.MQLDate.IsZero() || !l.SQLDate.IsZero() {
				add("lead %s: status Lead with funnel dates", l.ID)
			}
			if l.ConvertedAccountID != "" {
				add("lead %s: status Lead with converted account", l.ID)
			}
		case StatusMQL:
			if l.MQLDate.IsZero() || !l.SQLDate.IsZero() {
				add("lead %s: status MQL needs mql_date only", l.ID)
			}
		case StatusSQL:
			if l.MQLDate.IsZero() || l.SQLDate.IsZero() {
				add("lead %s: status SQL needs mql_date and sql_date", l.ID)
			}
		default:
			add("lead %s: unknown status %q", l.ID, l.Status)
		}
		if !l.MQLDate.IsZero() && l.MQLDate.Before(l.CreatedDate) {
			add("lead %s: mql_date before created_date", l.ID)
		}
		if !l.SQLDate.IsZero() && l.SQLDate.Before(l.CreatedDate) {
			add("lead %s: sql_date before created_date", l.ID)
		}
	}

	opps := make(map[string]bool, len(d.Opportunities))
	for _, o := range d.Opportunities {
		if opps[o.ID] {
			add("opportunity %s: duplicate id", o.ID)
		}
		opps[o.ID] = true
		if !accounts[o.AccountID] {
			add("opportunity %s: unknown account %s", o.ID, o.AccountID)
		}
		lead, ok := leads[o.LeadID]
		if !ok {
			add("opportunity %s: unknown lead %s", o.ID, o.LeadID)
		} else if lead.Status != StatusSQL {
			add("opportunity %s: lead %s has status %s", o.ID, o.LeadID, lead.Status)
		}
		if o.AmountUSD < MinOpportunityAmount {
			add("opportunity %s: amount %d below %d", o.ID, o.AmountUSD, MinOpportunityAmount)
		}
		if o.Stage.Terminal() == o.CloseDate.IsZero() {
			add("opportunity %s: stage %s with close_date %q", o.ID, o.Stage, o.CloseDate)
		}
	}

	for _, s := range d.Shipments {
		if !accounts[s.AccountID] {
			add("shipment %s: unknown account %s", s.ID, s.AccountID)
		}
	}

	return errors.Join(errs...)
}
