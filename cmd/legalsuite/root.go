package main

import (
	"github.com/spf13/cobra"

	"github.com/legalsuite/go-legalsuite/internal/config"
)

var verboseFlag bool

func newRootCommand() (*cobra.Command, error) {
	root := &cobra.Command{
		Use:   "legalsuite",
		Short: "Command-line client for the Legal Suite practice management API",
		Run: func(cmd *cobra.Command, args []string) {
			displayAppname(config.New().GetAppName())
			_ = cmd.Help()
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newLoginCommand(),
		newRegisterCommand(),
		newOTPCommand(),
		newLogoutCommand(),
		newWhoamiCommand(),
		newDashboardCommand(),
		newAdvocatesCommand(),
		newBookCommand(),
		newUploadCommand(),
	)
	return root, nil
}
