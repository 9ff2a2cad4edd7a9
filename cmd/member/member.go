// Package member manages the member directory.
package member

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"sadaka/charity-ledger/cmd/root"
	"sadaka/charity-ledger/internal/dateutils"
	"sadaka/charity-ledger/internal/models"
)

var (
	memberID string
	group    string
	phone    string
	email    string
	address  string
	newName  string
)

// Cmd represents the member command group.
var Cmd = &cobra.Command{
	Use:   "member",
	Short: "Manage the member directory",
}

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Register a member or replace an existing profile",
	Args:  cobra.ExactArgs(1),
	Run:   saveFunc,
}

var renameCmd = &cobra.Command{
	Use:   "rename <name>",
	Short: "Move a member profile to a new name",
	Long: `Move a member profile to a new name, preserving all attributes.
Historical transactions keep the old name text; member identity is a
by-name convenience, not a durable key.`,
	Args: cobra.ExactArgs(1),
	Run:  renameFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a member profile (historical transactions are kept)",
	Args:  cobra.ExactArgs(1),
	Run:   removeFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered members",
	Run:   listFunc,
}

func init() {
	saveCmd.Flags().StringVar(&memberID, "id", "", "Member id (generated when empty)")
	saveCmd.Flags().StringVarP(&group, "group", "g", "Brother", "Group: Brother or Sister")
	saveCmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	saveCmd.Flags().StringVar(&email, "email", "", "Email address")
	saveCmd.Flags().StringVar(&address, "address", "", "Postal address")

	renameCmd.Flags().StringVar(&newName, "to", "", "New member name")
	_ = renameCmd.MarkFlagRequired("to")

	listCmd.Flags().StringVarP(&group, "group", "g", "", "Restrict to Brother or Sister")

	Cmd.AddCommand(saveCmd)
	Cmd.AddCommand(renameCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(listCmd)
}

func saveFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	name := args[0]
	joined := dateutils.ToISODate(time.Now())
	if existing, err := app.Directory.Get(name); err == nil {
		joined = existing.Joined
		if memberID == "" {
			memberID = existing.ID
		}
	}

	profile := models.Member{
		ID:      memberID,
		Group:   models.Group(group),
		Phone:   phone,
		Email:   email,
		Address: address,
		Joined:  joined,
	}
	if err := app.Directory.Upsert(name, profile); err != nil {
		root.Log.Fatalf("Cannot save member: %v", err)
	}
	if err := app.SaveMembers(); err != nil {
		root.Log.Fatalf("Failed to save members: %v", err)
	}
	fmt.Printf("Saved member %s\n", name)
}

func renameFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	if err := app.Directory.Rename(args[0], newName); err != nil {
		root.Log.Fatalf("Cannot rename member: %v", err)
	}
	if err := app.SaveMembers(); err != nil {
		root.Log.Fatalf("Failed to save members: %v", err)
	}
	fmt.Printf("Renamed member %s to %s\n", args[0], newName)
}

func removeFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	if err := app.Directory.Remove(args[0]); err != nil {
		root.Log.Fatalf("Cannot remove member: %v", err)
	}
	if err := app.SaveMembers(); err != nil {
		root.Log.Fatalf("Failed to save members: %v", err)
	}
	fmt.Printf("Removed member %s\n", args[0])
}

func listFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tID\tGROUP\tPHONE\tEMAIL\tJOINED")
	for _, name := range app.Directory.Names(models.Group(group)) {
		p, err := app.Directory.Get(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			name, p.ID, p.Group, p.Phone, p.Email, p.Joined)
	}
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}
}
