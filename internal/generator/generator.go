// Package generator builds the synthetic fixture dataset. Every draw comes
// from one seeded stream, consumed in a fixed order, so a seed and a set of
// row counts always produce the same rows.
package generator

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/Rana718/funnelgen/internal/dataset"
	"github.com/fatih/color"
)

type Counts struct {
	Accounts      int
	Campaigns     int
	Leads         int
	Opportunities int
	Shipments     int
}

func DefaultCounts() Counts {
	return Counts{Accounts: 250, Campaigns: 30, Leads: 8000, Opportunities: 2500, Shipments: 6000}
}

const (
	NamesSequential = "sequential"
	NamesFaker      = "faker"
)

type Options struct {
	Seed         uint64
	Counts       Counts
	AccountNames string    // NamesSequential (default) or NamesFaker
	Log          io.Writer // progress lines; nil discards them
}

type Generator struct {
	opts  Options
	graph *DependencyGraph
}

type runState struct {
	rand   *rand.Rand
	counts Counts
	data   *dataset.Dataset
}

func New(opts Options) *Generator {
	if opts.Log == nil {
		opts.Log = io.Discard
	}
	g := &Generator{opts: opts, graph: NewDependencyGraph()}
	for _, step := range defaultSteps() {
		g.graph.Add(step)
	}
	return g
}

func defaultSteps() []*Step {
	return []*Step{
		{
			Table: dataset.AccountsTable,
			Run: func(s *runState) (n int, err error) {
				s.data.Accounts, err = Accounts(s.rand, s.counts.Accounts)
				return len(s.data.Accounts), err
			},
		},
		{
			Table: dataset.CampaignsTable,
			Run: func(s *runState) (n int, err error) {
				s.data.Campaigns, err = Campaigns(s.rand, s.counts.Campaigns)
				return len(s.data.Campaigns), err
			},
		},
		{
			Table:        dataset.LeadsTable,
			Dependencies: []string{dataset.AccountsTable, dataset.CampaignsTable},
			Run: func(s *runState) (n int, err error) {
				s.data.Leads, err = Leads(s.rand, s.data.Accounts, s.data.Campaigns, s.counts.Leads)
				return len(s.data.Leads), err
			},
		},
		{
			Table:        dataset.OpportunitiesTable,
			Dependencies: []string{dataset.LeadsTable, dataset.AccountsTable},
			Run: func(s *runState) (n int, err error) {
				s.data.Opportunities, err = Opportunities(s.rand, s.data.Leads, s.data.Accounts, s.counts.Opportunities)
				return len(s.data.Opportunities), err
			},
		},
		{
			Table:        dataset.ShipmentsTable,
			Dependencies: []string{dataset.AccountsTable},
			Run: func(s *runState) (n int, err error) {
				s.data.Shipments, err = Shipments(s.rand, s.data.Accounts, s.counts.Shipments)
				return len(s.data.Shipments), err
			},
		},
	}
}

// Generate runs every step in dependency order against a fresh stream.
func (g *Generator) Generate() (*dataset.Dataset, error) {
	order, err := g.graph.BuildOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to build generation order: %w", err)
	}

	color.New(color.FgCyan).Fprintf(g.opts.Log, "📋 Generation order: %s\n", strings.Join(order, " → "))

	state := &runState{
		rand:   NewRand(g.opts.Seed),
		counts: g.opts.Counts,
		data:   &dataset.Dataset{},
	}
	for _, table := range order {
		n, err := g.graph.Step(table).Run(state)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", table, err)
		}
		color.New(color.FgCyan).Fprintf(g.opts.Log, "  📝 %s: %d rows\n", table, n)
	}

	if g.opts.AccountNames == NamesFaker {
		applyFakerNames(state.data.Accounts, g.opts.Seed)
	}

	return state.data, nil
}
