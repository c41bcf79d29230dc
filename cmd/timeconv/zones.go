package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jyhwenchai/Tools-sub004/timeconv"
)

func init() {
	zonesCmd := &cobra.Command{
		Use:   "zones IDENTIFIER...",
		Short: "Show offset data for IANA timezone identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := timeconv.New()
			defer func() { _ = engine.Close() }()

			for _, id := range args {
				info, err := engine.ZoneInfo(id)
				if err != nil {
					return err
				}
				dst := ""
				if info.DST {
					dst = " (DST)"
				}
				_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\t%s%s\n",
					info.Identifier, info.Abbreviation, info.Offset, dst)
			}
			return nil
		},
	}
	rootCmd.AddCommand(zonesCmd)
}
