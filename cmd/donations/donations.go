// Package donations prints the outgoing disbursement list.
package donations

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sadaka/charity-ledger/cmd/root"
	"sadaka/charity-ledger/internal/ledger"
	"sadaka/charity-ledger/internal/models"
)

var (
	year  int
	group string
)

// Cmd represents the donations command.
var Cmd = &cobra.Command{
	Use:   "donations",
	Short: "Show distributed donations",
	Run:   donationsFunc,
}

func init() {
	Cmd.Flags().IntVar(&year, "year", 0, "Restrict to one year (0 = all)")
	Cmd.Flags().StringVarP(&group, "group", "g", "", "Restrict to Brother or Sister")
}

func donationsFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	records := app.Ledger.Query(ledger.Filter{
		Year:  year,
		Type:  models.TypeOutgoing,
		Group: models.Group(group),
	}, ledger.OrderDateDesc)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tBENEFICIARY\tFUND\tUSAGE\tRESPONSIBLE\tAMOUNT")
	for _, t := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.Date, t.NameDetails, t.Category, t.UsageLabel(), t.Responsible,
			models.FormatAmount(t.Amount))
	}
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}
}
