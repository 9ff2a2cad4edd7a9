// Package log prints the filtered activity log.
package log

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
	year    int
	txnType string
	group   string
	member  string
)

// Cmd represents the log command.
var Cmd = &cobra.Command{
	Use:   "log",
	Short: "Show the activity log, newest first",
	Run:   logFunc,
}

func init() {
	Cmd.Flags().IntVar(&year, "year", 0, "Restrict to one year (0 = all)")
	Cmd.Flags().StringVarP(&txnType, "type", "t", "", "Restrict to Incoming or Outgoing")
	Cmd.Flags().StringVarP(&group, "group", "g", "", "Restrict to Brother or Sister")
	Cmd.Flags().StringVarP(&member, "member", "m", "", "Restrict to one member or beneficiary name")
}

func logFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	records := app.Ledger.Query(ledger.Filter{
		Year:       year,
		Type:       models.TransactionType(txnType),
		Group:      models.Group(group),
		MemberName: member,
	}, ledger.OrderDateDesc)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tNAME\tCATEGORY\tSUB/MED\tAMOUNT\tID")
	for _, t := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.Date, t.Type, t.NameDetails, t.Category, t.UsageLabel(),
			models.FormatAmount(t.Amount), t.ID)
	}
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}
	fmt.Printf("%d record(s)\n", len(records))
}
