package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sadaka/charity-ledger/internal/ledger"
	"sadaka/charity-ledger/internal/models"
)

var funds = []string{"Sadaka", "Zakat"}

func buildLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New()
	add := func(id string, txnType models.TransactionType, group models.Group,
		name, category, amount string, year, month int) {
		require.NoError(t, l.Append(models.Transaction{
			ID:          id,
			Date:        "2024-01-05",
			Year:        year,
			Month:       month,
			Type:        txnType,
			Group:       group,
			NameDetails: name,
			Category:    category,
			Amount:      decimal.RequireFromString(amount),
		}))
	}

	add("t1", models.TypeIncoming, models.GroupBrother, "Ali", "Sadaka", "100", 2024, 1)
	add("t2", models.TypeIncoming, models.GroupBrother, "Ali", "Sadaka", "50", 2024, 3)
	add("t3", models.TypeIncoming, models.GroupSister, "Fatima", "Zakat", "200", 2024, 3)
	add("t4", models.TypeIncoming, models.GroupBrother, "Omar", "Sadaka", "25", 2023, 1)
	add("t5", models.TypeOutgoing, models.GroupBrother, "Hospital", "Sadaka", "60", 2024, 4)
	return l
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func TestMonthlyBreakdownTotalsAreConsistent(t *testing.T) {
	e := NewEngine(buildLedger(t))

	b := e.MonthlyBreakdown(funds, Options{Year: 2024})
	require.Equal(t, funds, b.Categories)
	require.Len(t, b.Rows, 12)

	// Each column's 12 monthly values sum to its printed total.
	for col := range b.Categories {
		colSum := decimal.Zero
		for _, row := range b.Rows {
			colSum = colSum.Add(row.Values[col])
		}
		assert.True(t, colSum.Equal(b.ColumnTotals[col]),
			"column %s: %s != %s", b.Categories[col], colSum, b.ColumnTotals[col])
		assert.True(t, b.ColumnAverages[col].Equal(b.ColumnTotals[col].Div(decimal.NewFromInt(12))))
	}

	// Row totals sum to the grand total.
	rowSum := decimal.Zero
	for _, row := range b.Rows {
		rowSum = rowSum.Add(row.Total)
	}
	assert.True(t, rowSum.Equal(b.GrandTotal))
	assert.True(t, sum(b.ColumnTotals).Equal(b.GrandTotal))

	assert.Equal(t, "150.00", b.ColumnTotals[0].StringFixed(2))
	assert.Equal(t, "200.00", b.ColumnTotals[1].StringFixed(2))
	assert.Equal(t, "350.00", b.GrandTotal.StringFixed(2))

	// March carries both the Sadaka 50 and the Zakat 200.
	march := b.Rows[2]
	assert.Equal(t, "50.00", march.Values[0].StringFixed(2))
	assert.Equal(t, "200.00", march.Values[1].StringFixed(2))
	assert.Equal(t, "250.00", march.Total.StringFixed(2))
}

func TestMonthlyBreakdownAverageUsesFixedDivisor(t *testing.T) {
	e := NewEngine(buildLedger(t))

	// Even a single-month dataset divides by 12, not by months present.
	b := e.MonthlyBreakdown(funds, Options{Year: 2023})
	assert.Equal(t, "25.00", b.GrandTotal.StringFixed(2))
	assert.True(t, b.GrandAverage.Equal(decimal.RequireFromString("25").Div(decimal.NewFromInt(12))))
}

func TestMonthlyBreakdownKeepsOrphanCategories(t *testing.T) {
	l := buildLedger(t)
	e := NewEngine(l)

	// "Zakat" removed from the registry: its data must survive as an
	// orphan column rather than disappear or error.
	b := e.MonthlyBreakdown([]string{"Sadaka"}, Options{Year: 2024})
	require.Equal(t, []string{"Sadaka", "Zakat"}, b.Categories)
	assert.Equal(t, "200.00", b.ColumnTotals[1].StringFixed(2))
}

func TestMonthlyBreakdownGroupFilter(t *testing.T) {
	e := NewEngine(buildLedger(t))

	b := e.MonthlyBreakdown(funds, Options{Year: 2024, Group: models.GroupSister})
	assert.Equal(t, "0.00", b.ColumnTotals[0].StringFixed(2))
	assert.Equal(t, "200.00", b.ColumnTotals[1].StringFixed(2))
}

func TestFlowOverview(t *testing.T) {
	e := NewEngine(buildLedger(t))

	f := e.FlowOverview(Options{Year: 2024})
	require.Len(t, f.Rows, 12)

	assert.Equal(t, "350.00", f.TotalIncoming.StringFixed(2))
	assert.Equal(t, "60.00", f.TotalOutgoing.StringFixed(2))
	assert.Equal(t, "290.00", f.TotalBalance.StringFixed(2))

	april := f.Rows[3]
	assert.Equal(t, "0.00", april.Incoming.StringFixed(2))
	assert.Equal(t, "60.00", april.Outgoing.StringFixed(2))
	assert.Equal(t, "-60.00", april.Balance.StringFixed(2))

	// Monthly values sum to the footer totals.
	in, out := decimal.Zero, decimal.Zero
	for _, row := range f.Rows {
		in = in.Add(row.Incoming)
		out = out.Add(row.Outgoing)
	}
	assert.True(t, in.Equal(f.TotalIncoming))
	assert.True(t, out.Equal(f.TotalOutgoing))
	assert.True(t, f.AverageIncoming.Equal(f.TotalIncoming.Div(decimal.NewFromInt(12))))
}

func TestMemberMatrix(t *testing.T) {
	e := NewEngine(buildLedger(t))

	m := e.MemberMatrix("", Options{Year: 2024})
	require.Len(t, m.Rows, 2)
	assert.Equal(t, "Ali", m.Rows[0].Name)
	assert.Equal(t, "Fatima", m.Rows[1].Name)

	assert.Equal(t, "100.00", m.Rows[0].Months[0].StringFixed(2))
	assert.Equal(t, "50.00", m.Rows[0].Months[2].StringFixed(2))
	assert.Equal(t, "0.00", m.Rows[0].Months[5].StringFixed(2))
	assert.Equal(t, "150.00", m.Rows[0].Total.StringFixed(2))

	// GRAND TOTAL per-month values equal the column sums, and its total
	// equals the sum of all row totals.
	for month := 0; month < 12; month++ {
		colSum := decimal.Zero
		for _, row := range m.Rows {
			colSum = colSum.Add(row.Months[month])
		}
		assert.True(t, colSum.Equal(m.GrandTotal.Months[month]))
	}
	rowSum := decimal.Zero
	for _, row := range m.Rows {
		rowSum = rowSum.Add(row.Total)
	}
	assert.True(t, rowSum.Equal(m.GrandTotal.Total))
	assert.Equal(t, "350.00", m.GrandTotal.Total.StringFixed(2))
}

func TestMemberMatrixCategoryFilter(t *testing.T) {
	e := NewEngine(buildLedger(t))

	m := e.MemberMatrix("Sadaka", Options{Year: 2024})
	require.Len(t, m.Rows, 1)
	assert.Equal(t, "Ali", m.Rows[0].Name)
	assert.Equal(t, "150.00", m.GrandTotal.Total.StringFixed(2))
}

func TestCategoryTotals(t *testing.T) {
	e := NewEngine(buildLedger(t))

	totals := e.CategoryTotals(models.TypeIncoming, Options{Year: 2024})
	require.Len(t, totals, 2)
	assert.Equal(t, "Sadaka", totals[0].Name)
	assert.Equal(t, "150.00", totals[0].Amount.StringFixed(2))
	assert.Equal(t, "Zakat", totals[1].Name)
	assert.Equal(t, "200.00", totals[1].Amount.StringFixed(2))

	totals = e.CategoryTotals(models.TypeOutgoing, Options{})
	require.Len(t, totals, 1)
	assert.Equal(t, "60.00", totals[0].Amount.StringFixed(2))
}

func TestViewsAreRecomputedAfterMutations(t *testing.T) {
	l := buildLedger(t)
	e := NewEngine(l)

	before := e.FlowOverview(Options{Year: 2024})
	require.NoError(t, l.Remove("t5"))
	after := e.FlowOverview(Options{Year: 2024})

	assert.Equal(t, "60.00", before.TotalOutgoing.StringFixed(2))
	assert.Equal(t, "0.00", after.TotalOutgoing.StringFixed(2))
}
