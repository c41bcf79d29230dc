package main

import (
	"github.com/spf13/cobra"

	"github.com/Jyhwenchai/Tools-sub004/timeconvd"
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the time conversion HTTP service",
		Long:  "Starts the REST API configured via TIMECONV_* environment variables and blocks until SIGINT or SIGTERM.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return timeconvd.Run()
		},
	}
	rootCmd.AddCommand(serveCmd)
}
