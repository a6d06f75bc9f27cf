package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gibberlink/internal/transport"
)

func newProtocolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "protocols",
		Short: "List the protocol tokens the codec accepts",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderProtocolTable(transport.Protocols()))
			return nil
		},
	}
}
