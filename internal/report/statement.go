// Package report assembles the data consumed by statement and dashboard
// rendering: a member's contribution history with totals, and the
// per-fund balance snapshot.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"sadaka/charity-ledger/internal/config"
	"sadaka/charity-ledger/internal/ledger"
	"sadaka/charity-ledger/internal/members"
	"sadaka/charity-ledger/internal/models"
)

// Statement is a single member's contribution report for one year,
// together with the donations distributed to the member's group.
type Statement struct {
	Organization   string               `json:"organization"`
	Member         string               `json:"member"`
	Profile        models.Member        `json:"profile"`
	Year           int                  `json:"year"`
	HeaderMessage  string               `json:"header_message,omitempty"`
	FooterMessage  string               `json:"footer_message,omitempty"`
	Contributions  []models.Transaction `json:"contributions"`
	YearTotal      decimal.Decimal      `json:"year_total"`
	LifetimeTotal  decimal.Decimal      `json:"lifetime_total"`
	Donations      []models.Transaction `json:"donations"`
	DonationsTotal decimal.Decimal      `json:"donations_total"`
}

// FundBalance is one fund's net balance for the dashboard.
type FundBalance struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// Dashboard is the headline snapshot: overall and current-year totals
// plus every fund's balance.
type Dashboard struct {
	Year          int             `json:"year"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	YearIncome    decimal.Decimal `json:"year_income"`
	TotalOutgoing decimal.Decimal `json:"total_outgoing"`
	YearOutgoing  decimal.Decimal `json:"year_outgoing"`
	Funds         []FundBalance   `json:"funds"`
}

// Generator builds statements and dashboards from engine state.
type Generator struct {
	ledger    *ledger.Ledger
	directory *members.Directory
	logger    *logrus.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(l *ledger.Ledger, d *members.Directory) *Generator {
	return &Generator{
		ledger:    l,
		directory: d,
		logger:    config.Logger,
	}
}

// Statement assembles a member's report for the given year: their
// incoming contributions and year/lifetime totals, plus the outgoing
// donations distributed to their group that year.
func (g *Generator) Statement(memberName string, year int, organization string) (*Statement, error) {
	profile, err := g.directory.Get(memberName)
	if err != nil {
		return nil, err
	}

	contributions := g.ledger.Query(ledger.Filter{
		Year:       year,
		Type:       models.TypeIncoming,
		MemberName: memberName,
	}, ledger.OrderDateDesc)

	lifetime := g.ledger.Query(ledger.Filter{
		Type:       models.TypeIncoming,
		MemberName: memberName,
	}, ledger.OrderInsertion)

	donations := g.ledger.Query(ledger.Filter{
		Year:  year,
		Type:  models.TypeOutgoing,
		Group: profile.Group,
	}, ledger.OrderDateDesc)

	st := &Statement{
		Organization:  organization,
		Member:        memberName,
		Profile:       profile,
		Year:          year,
		Contributions: contributions,
		Donations:     donations,
	}
	for _, t := range contributions {
		st.YearTotal = st.YearTotal.Add(t.Amount)
	}
	for _, t := range lifetime {
		st.LifetimeTotal = st.LifetimeTotal.Add(t.Amount)
	}
	for _, t := range donations {
		st.DonationsTotal = st.DonationsTotal.Add(t.Amount)
	}

	g.logger.WithFields(logrus.Fields{
		"member":        memberName,
		"year":          year,
		"contributions": len(contributions),
	}).Debug("Assembled member statement")
	return st, nil
}

// Dashboard assembles the headline totals and fund balances. funds fixes
// the display order; funds seen in the data but missing from the list
// are not repeated here (the balance map already carries them).
func (g *Generator) Dashboard(year int, funds []string) *Dashboard {
	d := &Dashboard{Year: year}
	for _, t := range g.ledger.Transactions() {
		if t.IsIncoming() {
			d.TotalIncome = d.TotalIncome.Add(t.Amount)
			if t.Year == year {
				d.YearIncome = d.YearIncome.Add(t.Amount)
			}
		} else {
			d.TotalOutgoing = d.TotalOutgoing.Add(t.Amount)
			if t.Year == year {
				d.YearOutgoing = d.YearOutgoing.Add(t.Amount)
			}
		}
	}
	for _, fund := range funds {
		d.Funds = append(d.Funds, FundBalance{
			Name:    fund,
			Balance: g.ledger.Balance(fund),
		})
	}
	return d
}

// RenderJSON renders any report value as indented JSON.
func RenderJSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}
