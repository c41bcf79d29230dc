package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Jyhwenchai/Tools-sub004/timeconv"
)

func init() {
	liveCmd := &cobra.Command{
		Use:   "live [INPUT]",
		Short: "Re-evaluate a conversion every second until interrupted",
		Long:  "Prints the converted value once per second. With no argument the current time is tracked.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions()
			if err != nil {
				return err
			}
			opts.LiveMode = true

			input := "now"
			if len(args) == 1 {
				input = args[0]
			}

			engine := timeconv.New()
			defer func() { _ = engine.Close() }()

			session, err := engine.StartLive(cmd.Context(), input, opts, func(out timeconv.Outcome) {
				if out.OK {
					_, _ = fmt.Fprintln(os.Stdout, out.Formatted)
				} else {
					_, _ = fmt.Fprintf(os.Stderr, "error: %s: %s\n", out.CodeName, out.Message)
				}
			})
			if err != nil {
				return err
			}
			defer session.Stop()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-quit:
			case <-cmd.Context().Done():
			}
			return nil
		},
	}
	rootCmd.AddCommand(liveCmd)
}
