// Package main is the entry point for the xrpick CLI.
package main

import (
	"os"

	"github.com/thoreinstein/xrpick/cmd/xrpick/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.ReportError(os.Stderr, err)
		os.Exit(commands.ExitCode(err))
	}
}
