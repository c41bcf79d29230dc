package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jyhwenchai/Tools-sub004/timeconv"
)

func init() {
	convertCmd := &cobra.Command{
		Use:   "convert INPUT",
		Short: "Convert a single time value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions()
			if err != nil {
				return err
			}
			engine := timeconv.New()
			defer func() { _ = engine.Close() }()
			return printOutcome(engine.Convert(cmd.Context(), args[0], opts))
		},
	}
	rootCmd.AddCommand(convertCmd)

	batchCmd := &cobra.Command{
		Use:   "batch [INPUT...]",
		Short: "Convert many values, one result line per input",
		Long:  "Converts each argument in order. With no arguments, inputs are read from stdin, one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions()
			if err != nil {
				return err
			}
			inputs := args
			if len(inputs) == 0 {
				sc := bufio.NewScanner(os.Stdin)
				for sc.Scan() {
					if line := strings.TrimSpace(sc.Text()); line != "" {
						inputs = append(inputs, line)
					}
				}
				if err := sc.Err(); err != nil {
					return err
				}
			}
			engine := timeconv.New()
			defer func() { _ = engine.Close() }()

			failures := 0
			for _, out := range engine.BatchConvert(cmd.Context(), inputs, opts) {
				if out.OK {
					_, _ = fmt.Fprintln(os.Stdout, out.Formatted)
				} else {
					failures++
					_, _ = fmt.Fprintf(os.Stdout, "error: %s: %s\n", out.CodeName, out.Message)
				}
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d inputs failed", failures, len(inputs))
			}
			return nil
		},
	}
	rootCmd.AddCommand(batchCmd)
}
