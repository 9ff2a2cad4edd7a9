// Package add handles submission of new transactions.
package add

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sadaka/charity-ledger/cmd/root"
	"sadaka/charity-ledger/internal/models"
	"sadaka/charity-ledger/internal/validation"
)

var (
	txnType     string
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

// Cmd represents the add command.
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Submit a transaction through the validation gate",
	Long: `Submit an incoming collection or an outgoing disbursement.
The record passes the validation gate first: the amount must be a
positive number, the member or beneficiary name is required, and an
outgoing amount may not exceed the current balance of its fund.`,
	Run: addFunc,
}

func init() {
	now := time.Now()
	Cmd.Flags().StringVarP(&txnType, "type", "t", "Incoming", "Transaction type: Incoming or Outgoing")
	Cmd.Flags().IntVar(&year, "year", now.Year(), "Transaction year")
	Cmd.Flags().IntVar(&month, "month", int(now.Month()), "Transaction month (1-12)")
	Cmd.Flags().IntVar(&day, "day", now.Day(), "Transaction day")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount")
	Cmd.Flags().StringVarP(&group, "group", "g", "Brother", "Group: Brother or Sister")
	Cmd.Flags().StringVarP(&name, "name", "n", "", "Member name (Incoming) or beneficiary name (Outgoing)")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Fund category")
	Cmd.Flags().StringVarP(&usage, "usage", "u", "", "Usage type (Outgoing only)")
	Cmd.Flags().StringVar(&medical, "medical", "", "Medical condition detail (Outgoing only)")
	Cmd.Flags().StringVar(&address, "address", "", "Beneficiary address (Outgoing only)")
	Cmd.Flags().StringVar(&reason, "reason", "", "Reason or note (Outgoing only)")
	Cmd.Flags().StringVar(&responsible, "responsible", "", "Responsible person (Outgoing only)")
	_ = Cmd.MarkFlagRequired("amount")
	_ = Cmd.MarkFlagRequired("name")
	_ = Cmd.MarkFlagRequired("category")
}

func addFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	candidate := validation.Candidate{
		Type:          models.TransactionType(txnType),
		Year:          year,
		Month:         month,
		Day:           day,
		Amount:        amount,
		Group:         models.Group(group),
		Name:          name,
		Category:      category,
		SubCategory:   usage,
		MedicalDetail: medical,
		Address:       address,
		Reason:        reason,
		Responsible:   responsible,
	}

	txn, err := app.Gate.Validate(candidate)
	if err != nil {
		root.Log.Fatalf("Transaction rejected: %v", err)
	}
	if err := app.Ledger.Append(txn); err != nil {
		root.Log.Fatalf("Failed to commit transaction: %v", err)
	}
	if err := app.SaveLedger(); err != nil {
		root.Log.Fatalf("Failed to save ledger: %v", err)
	}

	fmt.Printf("Saved %s transaction %s\n", txn.Type, txn.ID)
	fmt.Printf("Balance of %s: %s\n", txn.Category, models.FormatAmount(app.Ledger.Balance(txn.Category)))
}
