package cmd

import (
	"fmt"
	"os"

	"github.com/SimonPrato11/client-server-project/cmd/receive"
	"github.com/SimonPrato11/client-server-project/cmd/send"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "courier",
		Short: "point-to-point record and text exchange",
		Long: fmt.Sprintf(`courier (v%s)

A point-to-point exchange tool: the sender serializes a record in a
configurable format (binary, json, xml) and transmits it together with
a text payload (optionally encrypted) to a single receiver.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of courier",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("courier v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(send.SendCmd)
	RootCmd.AddCommand(receive.ReceiveCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
