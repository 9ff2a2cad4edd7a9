// Package category manages the category registry.
package category

import (
	"fmt"

	"github.com/spf13/cobra"

	"sadaka/charity-ledger/cmd/root"
	"sadaka/charity-ledger/internal/registry"
)

var (
	kind    string
	newName string
)

// Cmd represents the category command group.
var Cmd = &cobra.Command{
	Use:   "category",
	Short: "Manage income funds and outgoing usage types",
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category name",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

var renameCmd = &cobra.Command{
	Use:   "rename <name>",
	Short: "Rename a category and rewrite its historical transactions",
	Long: `Rename a category. Every transaction carrying the old name is
rewritten to the new one; the registry and the ledger change together
or not at all.`,
	Args: cobra.ExactArgs(1),
	Run:  renameFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a category from the registry only",
	Long: `Remove a category from the registry. Existing transactions keep
the stale name; aggregation shows it as its own orphan bucket so
historical data stays reportable.`,
	Args: cobra.ExactArgs(1),
	Run:  removeFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered category names",
	Run:   listFunc,
}

func init() {
	Cmd.PersistentFlags().StringVarP(&kind, "kind", "k", "income", "Category kind: income or outgoing")
	renameCmd.Flags().StringVar(&newName, "to", "", "New category name")
	_ = renameCmd.MarkFlagRequired("to")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(renameCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(listCmd)
}

func parseKind() registry.Kind {
	switch kind {
	case "income":
		return registry.KindIncome
	case "outgoing":
		return registry.KindOutgoing
	default:
		root.Log.Fatalf("Unknown kind '%s', expected income or outgoing", kind)
		return registry.KindIncome
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	if err := app.Registry.Add(parseKind(), args[0]); err != nil {
		root.Log.Fatalf("Cannot add category: %v", err)
	}
	if err := app.SaveCategories(); err != nil {
		root.Log.Fatalf("Failed to save categories: %v", err)
	}
	fmt.Printf("Added %s category %s\n", kind, args[0])
}

func renameFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	if err := app.Registry.Rename(parseKind(), args[0], newName); err != nil {
		root.Log.Fatalf("Cannot rename category: %v", err)
	}
	// The cascade rewrote ledger records, so both files must be saved.
	if err := app.SaveCategories(); err != nil {
		root.Log.Fatalf("Failed to save categories: %v", err)
	}
	if err := app.SaveLedger(); err != nil {
		root.Log.Fatalf("Failed to save ledger after rename cascade: %v", err)
	}
	fmt.Printf("Renamed %s category %s to %s\n", kind, args[0], newName)
}

func removeFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	if err := app.Registry.Remove(parseKind(), args[0]); err != nil {
		root.Log.Fatalf("Cannot remove category: %v", err)
	}
	if err := app.SaveCategories(); err != nil {
		root.Log.Fatalf("Failed to save categories: %v", err)
	}
	fmt.Printf("Removed %s category %s\n", kind, args[0])
}

func listFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	for _, name := range app.Registry.Names(parseKind()) {
		fmt.Println(name)
	}
}
