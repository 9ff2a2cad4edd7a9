// Package remove handles deletion of transactions by id.
package remove

import (
	"fmt"

	"github.com/spf13/cobra"

	"sadaka/charity-ledger/cmd/root"
)

var id string

// Cmd represents the remove command.
var Cmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete a transaction by id",
	Run:   removeFunc,
}

func init() {
	Cmd.Flags().StringVar(&id, "id", "", "Transaction id")
	_ = Cmd.MarkFlagRequired("id")
}

func removeFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	if err := app.Ledger.Remove(id); err != nil {
		root.Log.Fatalf("Cannot remove: %v", err)
	}
	if err := app.SaveLedger(); err != nil {
		root.Log.Fatalf("Failed to save ledger: %v", err)
	}

	fmt.Printf("Removed transaction %s\n", id)
}
