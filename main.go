package main

import (
	"os"

	"sadaka/charity-ledger/cmd/add"
	"sadaka/charity-ledger/cmd/balance"
	"sadaka/charity-ledger/cmd/category"
	"sadaka/charity-ledger/cmd/donations"
	"sadaka/charity-ledger/cmd/edit"
	logcmd "sadaka/charity-ledger/cmd/log"
	"sadaka/charity-ledger/cmd/member"
	"sadaka/charity-ledger/cmd/remove"
	"sadaka/charity-ledger/cmd/root"
	"sadaka/charity-ledger/cmd/statement"
	"sadaka/charity-ledger/cmd/summary"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(logcmd.Cmd)
	root.Cmd.AddCommand(donations.Cmd)
	root.Cmd.AddCommand(balance.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(member.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(statement.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
