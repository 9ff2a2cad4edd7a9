// Package edit handles in-place updates of existing transactions.
package edit

import (
	"fmt"

	"github.com/spf13/cobra"

	"sadaka/charity-ledger/cmd/root"
	"sadaka/charity-ledger/internal/dateutils"
	"sadaka/charity-ledger/internal/models"
)

var (
	id          string
	year        int
	month       int
	day         int
	amount      string
	group       string
	name        string
	category    string
	usage       string
	medical     string
	address     string
	reason      string
	responsible string
)

// Cmd represents the edit command.
var Cmd = &cobra.Command{
	Use:   "edit",
	Short: "Update an existing transaction by id",
	Long: `Update fields of an existing transaction. Only the flags you set
are changed. The patched record is held to the same rules as a new
submission: an edit that would zero the amount or overdraw a fund is
rejected and the ledger is left unchanged.`,
	Run: editFunc,
}

func init() {
	Cmd.Flags().StringVar(&id, "id", "", "Transaction id")
	Cmd.Flags().IntVar(&year, "year", 0, "New year")
	Cmd.Flags().IntVar(&month, "month", 0, "New month (1-12)")
	Cmd.Flags().IntVar(&day, "day", 0, "New day")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "New amount")
	Cmd.Flags().StringVarP(&group, "group", "g", "", "New group")
	Cmd.Flags().StringVarP(&name, "name", "n", "", "New member or beneficiary name")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "New fund category")
	Cmd.Flags().StringVarP(&usage, "usage", "u", "", "New usage type")
	Cmd.Flags().StringVar(&medical, "medical", "", "New medical detail")
	Cmd.Flags().StringVar(&address, "address", "", "New address")
	Cmd.Flags().StringVar(&reason, "reason", "", "New reason")
	Cmd.Flags().StringVar(&responsible, "responsible", "", "New responsible person")
	_ = Cmd.MarkFlagRequired("id")
}

func editFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	txn, err := app.Ledger.Get(id)
	if err != nil {
		root.Log.Fatalf("Cannot edit: %v", err)
	}

	if cmd.Flags().Changed("amount") {
		parsed, err := models.ParseAmount(amount)
		if err != nil {
			root.Log.Fatalf("Cannot edit: %v", err)
		}
		txn.Amount = parsed
	}
	if cmd.Flags().Changed("group") {
		txn.Group = models.Group(group)
	}
	if cmd.Flags().Changed("name") {
		txn.NameDetails = name
	}
	if cmd.Flags().Changed("category") {
		txn.Category = category
	}
	if cmd.Flags().Changed("usage") {
		txn.SubCategory = usage
	}
	if cmd.Flags().Changed("medical") {
		txn.MedicalDetail = medical
	}
	if cmd.Flags().Changed("address") {
		txn.Address = address
	}
	if cmd.Flags().Changed("reason") {
		txn.Reason = reason
	}
	if cmd.Flags().Changed("responsible") {
		txn.Responsible = responsible
	}

	// Date edits must keep the decomposed year/month consistent with the
	// ISO date string.
	if cmd.Flags().Changed("year") || cmd.Flags().Changed("month") || cmd.Flags().Changed("day") {
		y, m, d, err := dateutils.Decompose(txn.Date)
		if err != nil {
			root.Log.Fatalf("Cannot edit: %v", err)
		}
		if cmd.Flags().Changed("year") {
			y = year
		}
		if cmd.Flags().Changed("month") {
			m = month
		}
		if cmd.Flags().Changed("day") {
			d = day
		}
		date, err := dateutils.ComposeISODate(y, m, d)
		if err != nil {
			root.Log.Fatalf("Cannot edit: %v", err)
		}
		txn.Date = date
		txn.Year = y
		txn.Month = m
	}

	if err := app.Ledger.Update(id, txn); err != nil {
		root.Log.Fatalf("Edit rejected: %v", err)
	}
	if err := app.SaveLedger(); err != nil {
		root.Log.Fatalf("Failed to save ledger: %v", err)
	}

	fmt.Printf("Updated transaction %s\n", id)
}
