// Package balance prints the dashboard snapshot: overall totals and
// per-fund balances.
package balance

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"sadaka/charity-ledger/cmd/root"
	"sadaka/charity-ledger/internal/models"
	"sadaka/charity-ledger/internal/registry"
	"sadaka/charity-ledger/internal/report"
)

var (
	year   int
	asJSON bool
)

// Cmd represents the balance command.
var Cmd = &cobra.Command{
	Use:   "balance",
	Short: "Show fund balances and headline totals",
	Run:   balanceFunc,
}

func init() {
	Cmd.Flags().IntVar(&year, "year", time.Now().Year(), "Year for the year-to-date totals")
	Cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the snapshot as JSON")
}

func balanceFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	dashboard := app.Reports.Dashboard(year, app.Registry.Names(registry.KindIncome))

	if asJSON {
		data, err := report.RenderJSON(dashboard)
		if err != nil {
			root.Log.Fatalf("Failed to render snapshot: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	currency := root.Cfg.Report.Currency
	fmt.Printf("TOTAL INCOME: %s %s | INCOME (%d): %s %s\n",
		models.FormatAmount(dashboard.TotalIncome), currency,
		year, models.FormatAmount(dashboard.YearIncome), currency)
	fmt.Printf("TOTAL DONATION: %s %s | DONATION (%d): %s %s\n",
		models.FormatAmount(dashboard.TotalOutgoing), currency,
		year, models.FormatAmount(dashboard.YearOutgoing), currency)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FUND\tBALANCE")
	for _, fund := range dashboard.Funds {
		fmt.Fprintf(w, "%s\t%s\n", fund.Name, models.FormatAmount(fund.Balance))
	}
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}
}
