// Package aggregate builds the derived tables of the charity ledger:
// monthly category breakdowns, incoming/outgoing flow overviews, and
// member contribution matrices. Every view is recomputed on demand from
// ledger state; nothing is cached across mutations.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"sadaka/charity-ledger/internal/ledger"
	"sadaka/charity-ledger/internal/models"
)

// twelve is the fixed AVERAGE divisor. Averages always divide the annual
// sum by 12, even for partial-year or all-time data.
var twelve = decimal.NewFromInt(12)

// Options restricts a view to one year and/or one group. Zero values
// mean "all".
type Options struct {
	Year  int
	Group models.Group
}

// Engine computes aggregation views over a ledger.
type Engine struct {
	ledger *ledger.Ledger
}

// NewEngine creates an aggregation engine over the given ledger.
func NewEngine(l *ledger.Ledger) *Engine {
	return &Engine{ledger: l}
}

// MonthRow is one calendar month of a category breakdown: one value per
// category column plus the month's row total.
type MonthRow struct {
	Month  int
	Name   string
	Values []decimal.Decimal
	Total  decimal.Decimal
}

// Breakdown is the 12-month by income-category pivot of incoming
// amounts, with per-column totals and fixed-divisor averages.
type Breakdown struct {
	Categories     []string
	Rows           []MonthRow
	ColumnTotals   []decimal.Decimal
	ColumnAverages []decimal.Decimal
	GrandTotal     decimal.Decimal
	GrandAverage   decimal.Decimal
}

// MonthlyBreakdown sums incoming amounts per month and income category.
// categories fixes the column order; categories present in the data but
// absent from the registry are appended as orphan columns so historical
// data stays reportable after a registry removal.
func (e *Engine) MonthlyBreakdown(categories []string, opts Options) Breakdown {
	txns := e.incoming(opts)
	columns := withOrphans(categories, txns, func(t models.Transaction) string {
		return t.Category
	})

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}

	b := Breakdown{Categories: columns}
	cells := make([][]decimal.Decimal, 12)
	for m := range cells {
		cells[m] = zeroRow(len(columns))
	}
	for _, t := range txns {
		if t.Month < 1 || t.Month > 12 {
			continue
		}
		col := index[t.Category]
		cells[t.Month-1][col] = cells[t.Month-1][col].Add(t.Amount)
	}

	b.ColumnTotals = zeroRow(len(columns))
	for m := 0; m < 12; m++ {
		row := MonthRow{
			Month:  m + 1,
			Name:   models.MonthNames[m],
			Values: cells[m],
		}
		for col, v := range cells[m] {
			row.Total = row.Total.Add(v)
			b.ColumnTotals[col] = b.ColumnTotals[col].Add(v)
		}
		b.GrandTotal = b.GrandTotal.Add(row.Total)
		b.Rows = append(b.Rows, row)
	}

	b.ColumnAverages = make([]decimal.Decimal, len(columns))
	for col, total := range b.ColumnTotals {
		b.ColumnAverages[col] = total.Div(twelve)
	}
	b.GrandAverage = b.GrandTotal.Div(twelve)
	return b
}

// FlowRow is one month of the flow overview.
type FlowRow struct {
	Month    int
	Name     string
	Incoming decimal.Decimal
	Outgoing decimal.Decimal
	Balance  decimal.Decimal
}

// Flow is the month by {Incoming, Outgoing, Balance} overview with
// TOTAL and AVERAGE footer rows.
type Flow struct {
	Rows            []FlowRow
	TotalIncoming   decimal.Decimal
	TotalOutgoing   decimal.Decimal
	TotalBalance    decimal.Decimal
	AverageIncoming decimal.Decimal
	AverageOutgoing decimal.Decimal
	AverageBalance  decimal.Decimal
}

// FlowOverview totals incoming and outgoing amounts per month and their
// difference.
func (e *Engine) FlowOverview(opts Options) Flow {
	var f Flow
	var in, out [12]decimal.Decimal
	for _, t := range e.filtered(opts) {
		if t.Month < 1 || t.Month > 12 {
			continue
		}
		if t.IsIncoming() {
			in[t.Month-1] = in[t.Month-1].Add(t.Amount)
		} else {
			out[t.Month-1] = out[t.Month-1].Add(t.Amount)
		}
	}
	for m := 0; m < 12; m++ {
		row := FlowRow{
			Month:    m + 1,
			Name:     models.MonthNames[m],
			Incoming: in[m],
			Outgoing: out[m],
			Balance:  in[m].Sub(out[m]),
		}
		f.TotalIncoming = f.TotalIncoming.Add(row.Incoming)
		f.TotalOutgoing = f.TotalOutgoing.Add(row.Outgoing)
		f.TotalBalance = f.TotalBalance.Add(row.Balance)
		f.Rows = append(f.Rows, row)
	}
	f.AverageIncoming = f.TotalIncoming.Div(twelve)
	f.AverageOutgoing = f.TotalOutgoing.Div(twelve)
	f.AverageBalance = f.TotalBalance.Div(twelve)
	return f
}

// MatrixRow is one contributor's monthly incoming amounts with their row
// total. The GRAND TOTAL footer uses the same shape.
type MatrixRow struct {
	Name   string
	Months [12]decimal.Decimal
	Total  decimal.Decimal
}

// Matrix is the member-by-month pivot of incoming contributions.
type Matrix struct {
	Rows       []MatrixRow
	GrandTotal MatrixRow
}

// MemberMatrix groups incoming transactions by contributor name, one row
// per distinct name with one value per month, zero when absent. category
// optionally restricts the pivot to a single income category.
func (e *Engine) MemberMatrix(category string, opts Options) Matrix {
	rowsByName := make(map[string]*MatrixRow)
	var names []string
	for _, t := range e.incoming(opts) {
		if category != "" && t.Category != category {
			continue
		}
		if t.Month < 1 || t.Month > 12 {
			continue
		}
		row, ok := rowsByName[t.NameDetails]
		if !ok {
			row = &MatrixRow{Name: t.NameDetails}
			rowsByName[t.NameDetails] = row
			names = append(names, t.NameDetails)
		}
		row.Months[t.Month-1] = row.Months[t.Month-1].Add(t.Amount)
		row.Total = row.Total.Add(t.Amount)
	}
	sort.Strings(names)

	m := Matrix{GrandTotal: MatrixRow{Name: "GRAND TOTAL"}}
	for _, name := range names {
		row := rowsByName[name]
		for i := 0; i < 12; i++ {
			m.GrandTotal.Months[i] = m.GrandTotal.Months[i].Add(row.Months[i])
		}
		m.GrandTotal.Total = m.GrandTotal.Total.Add(row.Total)
		m.Rows = append(m.Rows, *row)
	}
	return m
}

// CategoryTotal is one slice of a proportional chart.
type CategoryTotal struct {
	Name   string
	Amount decimal.Decimal
}

// CategoryTotals sums amounts per category for one transaction type,
// suitable for proportional charts. Categories unknown to the registry
// form their own buckets.
func (e *Engine) CategoryTotals(txnType models.TransactionType, opts Options) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, t := range e.filtered(opts) {
		if t.Type != txnType {
			continue
		}
		if _, ok := sums[t.Category]; !ok {
			order = append(order, t.Category)
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}
	sort.Strings(order)

	out := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		out = append(out, CategoryTotal{Name: name, Amount: sums[name]})
	}
	return out
}

func (e *Engine) filtered(opts Options) []models.Transaction {
	return e.ledger.Query(ledger.Filter{
		Year:  opts.Year,
		Group: opts.Group,
	}, ledger.OrderInsertion)
}

func (e *Engine) incoming(opts Options) []models.Transaction {
	return e.ledger.Query(ledger.Filter{
		Year:  opts.Year,
		Type:  models.TypeIncoming,
		Group: opts.Group,
	}, ledger.OrderInsertion)
}

// withOrphans appends, in sorted order, any key present in the data but
// missing from the registry columns.
func withOrphans(columns []string, txns []models.Transaction, key func(models.Transaction) string) []string {
	known := make(map[string]bool, len(columns))
	out := make([]string, len(columns))
	copy(out, columns)
	for _, c := range columns {
		known[c] = true
	}
	var orphans []string
	for _, t := range txns {
		k := key(t)
		if k != "" && !known[k] {
			known[k] = true
			orphans = append(orphans, k)
		}
	}
	sort.Strings(orphans)
	return append(out, orphans...)
}

func zeroRow(n int) []decimal.Decimal {
	row := make([]decimal.Decimal, n)
	for i := range row {
		row[i] = decimal.Zero
	}
	return row
}
