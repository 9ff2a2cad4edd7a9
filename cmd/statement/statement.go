// Package statement generates a member's contribution report.
package statement

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sadaka/charity-ledger/cmd/root"
	"sadaka/charity-ledger/internal/fileutils"
	"sadaka/charity-ledger/internal/report"
)

var (
	year   int
	output string
	header string
	footer string
)

// Cmd represents the statement command.
var Cmd = &cobra.Command{
	Use:   "statement <member>",
	Short: "Generate a member contribution statement",
	Long: `Assemble a member's statement for one year: their incoming
contributions with year and lifetime totals, plus the donations
distributed to their group. The statement is rendered as JSON for the
report layer.`,
	Args: cobra.ExactArgs(1),
	Run:  statementFunc,
}

func init() {
	Cmd.Flags().IntVar(&year, "year", time.Now().Year(), "Statement year")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout when empty)")
	Cmd.Flags().StringVar(&header, "header", "We appreciate your generous contributions.", "Header message")
	Cmd.Flags().StringVar(&footer, "footer", "Contact admin for queries.", "Footer message")
}

func statementFunc(cmd *cobra.Command, args []string) {
	app, err := root.Open()
	if err != nil {
		root.Log.Fatalf("Failed to load data: %v", err)
	}

	st, err := app.Reports.Statement(args[0], year, root.Cfg.Report.Organization)
	if err != nil {
		root.Log.Fatalf("Cannot generate statement: %v", err)
	}
	st.HeaderMessage = header
	st.FooterMessage = footer

	data, err := report.RenderJSON(st)
	if err != nil {
		root.Log.Fatalf("Failed to render statement: %v", err)
	}

	if output == "" {
		fmt.Println(string(data))
		return
	}
	if err := fileutils.WriteFile(output, data, 0644); err != nil {
		root.Log.Fatalf("Failed to write statement: %v", err)
	}
	fmt.Printf("Statement saved to %s\n", output)
}
