package report

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sadaka/charity-ledger/internal/ledger"
	"sadaka/charity-ledger/internal/ledgererror"
	"sadaka/charity-ledger/internal/members"
	"sadaka/charity-ledger/internal/models"
)

func fixtures(t *testing.T) (*ledger.Ledger, *members.Directory) {
	t.Helper()
	l := ledger.New()
	add := func(id string, txnType models.TransactionType, group models.Group,
		name, category, date, amount string, year, month int) {
		require.NoError(t, l.Append(models.Transaction{
			ID:          id,
			Date:        date,
			Year:        year,
			Month:       month,
			Type:        txnType,
			Group:       group,
			NameDetails: name,
			Category:    category,
			Amount:      decimal.RequireFromString(amount),
		}))
	}

	add("t1", models.TypeIncoming, models.GroupBrother, "Ali Hassan", "Sadaka", "2023-06-01", "80", 2023, 6)
	add("t2", models.TypeIncoming, models.GroupBrother, "Ali Hassan", "Sadaka", "2024-01-05", "100", 2024, 1)
	add("t3", models.TypeIncoming, models.GroupBrother, "Ali Hassan", "Zakat", "2024-03-10", "50", 2024, 3)
	add("t4", models.TypeIncoming, models.GroupSister, "Fatima", "Sadaka", "2024-02-01", "40", 2024, 2)
	add("t5", models.TypeOutgoing, models.GroupBrother, "Clinic", "Sadaka", "2024-04-20", "70", 2024, 4)
	add("t6", models.TypeOutgoing, models.GroupSister, "Shelter", "Sadaka", "2024-05-01", "20", 2024, 5)

	d := members.New(map[string]models.Member{
		"Ali Hassan": {ID: "a1b2c3d4", Group: models.GroupBrother, Joined: "2022-01-01"},
		"Fatima":     {ID: "e5f6a7b8", Group: models.GroupSister},
	})
	return l, d
}

func TestStatementTotals(t *testing.T) {
	l, d := fixtures(t)
	g := NewGenerator(l, d)

	st, err := g.Statement("Ali Hassan", 2024, "Sadaka Group Berlin")
	require.NoError(t, err)

	assert.Equal(t, "Sadaka Group Berlin", st.Organization)
	assert.Equal(t, "a1b2c3d4", st.Profile.ID)
	assert.Equal(t, 2024, st.Year)

	// 2024 contributions only, newest first.
	require.Len(t, st.Contributions, 2)
	assert.Equal(t, "t3", st.Contributions[0].ID)
	assert.Equal(t, "t2", st.Contributions[1].ID)
	assert.Equal(t, "150.00", st.YearTotal.StringFixed(2))

	// Lifetime picks up the 2023 record too.
	assert.Equal(t, "230.00", st.LifetimeTotal.StringFixed(2))

	// Donations are the year's outgoing records for the member's group.
	require.Len(t, st.Donations, 1)
	assert.Equal(t, "t5", st.Donations[0].ID)
	assert.Equal(t, "70.00", st.DonationsTotal.StringFixed(2))
}

func TestStatementUnknownMember(t *testing.T) {
	l, d := fixtures(t)
	g := NewGenerator(l, d)

	_, err := g.Statement("Nobody", 2024, "")
	var notFound *ledgererror.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDashboard(t *testing.T) {
	l, d := fixtures(t)
	g := NewGenerator(l, d)

	dash := g.Dashboard(2024, []string{"Sadaka", "Zakat", "Fitra"})

	assert.Equal(t, "270.00", dash.TotalIncome.StringFixed(2))
	assert.Equal(t, "190.00", dash.YearIncome.StringFixed(2))
	assert.Equal(t, "90.00", dash.TotalOutgoing.StringFixed(2))
	assert.Equal(t, "90.00", dash.YearOutgoing.StringFixed(2))

	require.Len(t, dash.Funds, 3)
	assert.Equal(t, "Sadaka", dash.Funds[0].Name)
	assert.Equal(t, "130.00", dash.Funds[0].Balance.StringFixed(2))
	assert.Equal(t, "50.00", dash.Funds[1].Balance.StringFixed(2))
	assert.Equal(t, "0.00", dash.Funds[2].Balance.StringFixed(2))
}

func TestRenderJSON(t *testing.T) {
	l, d := fixtures(t)
	g := NewGenerator(l, d)

	st, err := g.Statement("Fatima", 2024, "Sadaka Group Berlin")
	require.NoError(t, err)

	data, err := RenderJSON(st)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Fatima", decoded["member"])
	assert.Equal(t, "40", decoded["year_total"])
}
