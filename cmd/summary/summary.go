// Package summary prints the aggregation views: the monthly category
// breakdown, the flow overview, and the member contribution matrix.
package summary

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"sadaka/charity-ledger/cmd/root"
	"sadaka/charity-ledger/internal/aggregate"
	"sadaka/charity-ledger/internal/models"
	"sadaka/charity-ledger/internal/registry"
)

var (
	view     string
	year     int
	group    string
	category string
)

// Cmd represents the summary command.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show aggregated monthly tables",
	Long: `Show one of the aggregation views:
  monthly - incoming amounts per month and income category
  flow    - incoming, outgoing and balance per month
  matrix  - incoming contributions per member and month

Every view carries TOTAL and AVERAGE footers; averages always divide
the annual sum by 12.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&view, "view", "v", "monthly", "View: monthly, flow or matrix")
	Cmd.Flags().IntVar(&year, "year", 0, "Restrict to one year (0 = all)")
	Cmd.Flags().StringVarP(&group, "group", "g", "", "Restrict to Brother or Sister")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Restrict the matrix to one income category")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	opts := aggregate.Options{Year: year, Group: models.Group(group)}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	switch view {
	case "monthly":
		printBreakdown(w, app.Engine.MonthlyBreakdown(app.Registry.Names(registry.KindIncome), opts))
	case "flow":
		printFlow(w, app.Engine.FlowOverview(opts))
	case "matrix":
		printMatrix(w, app.Engine.MemberMatrix(category, opts))
	default:
		root.Log.Fatalf("Unknown view '%s', expected monthly, flow or matrix", view)
	}

	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}
}

func printBreakdown(w *tabwriter.Writer, b aggregate.Breakdown) {
	fmt.Fprintf(w, "MONTH\t%s\tTOTAL\n", strings.Join(b.Categories, "\t"))
	for _, row := range b.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			row.Name, joinAmounts(row.Values), models.FormatAmount(row.Total))
	}
	fmt.Fprintf(w, "TOTAL\t%s\t%s\n",
		joinAmounts(b.ColumnTotals), models.FormatAmount(b.GrandTotal))
	fmt.Fprintf(w, "AVERAGE\t%s\t%s\n",
		joinAmounts(b.ColumnAverages), models.FormatAmount(b.GrandAverage))
}

func printFlow(w *tabwriter.Writer, f aggregate.Flow) {
	fmt.Fprintln(w, "MONTH\tINCOMING\tOUTGOING\tBALANCE")
	for _, row := range f.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			row.Name,
			models.FormatAmount(row.Incoming),
			models.FormatAmount(row.Outgoing),
			models.FormatAmount(row.Balance))
	}
	fmt.Fprintf(w, "TOTAL\t%s\t%s\t%s\n",
		models.FormatAmount(f.TotalIncoming),
		models.FormatAmount(f.TotalOutgoing),
		models.FormatAmount(f.TotalBalance))
	fmt.Fprintf(w, "AVERAGE\t%s\t%s\t%s\n",
		models.FormatAmount(f.AverageIncoming),
		models.FormatAmount(f.AverageOutgoing),
		models.FormatAmount(f.AverageBalance))
}

func printMatrix(w *tabwriter.Writer, m aggregate.Matrix) {
	short := make([]string, 12)
	for i, name := range models.MonthNames {
		short[i] = name[:3]
	}
	fmt.Fprintf(w, "MEMBER\t%s\tTOTAL\n", strings.Join(short, "\t"))
	for _, row := range m.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			row.Name, joinAmounts(row.Months[:]), models.FormatAmount(row.Total))
	}
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		m.GrandTotal.Name,
		joinAmounts(m.GrandTotal.Months[:]),
		models.FormatAmount(m.GrandTotal.Total))
}

func joinAmounts(values []decimal.Decimal) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = models.FormatAmount(v)
	}
	return strings.Join(parts, "\t")
}
