package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/crvicio/crvc/crv/codebase"
)

func newLSPCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			server := codebase.NewLSPServer(version)
			return server.RunStdio()
		},
	}

	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	return cmd
}
