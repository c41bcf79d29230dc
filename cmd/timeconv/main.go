package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jyhwenchai/Tools-sub004/timeconv"
)

var (
	sourceKindFlag string
	targetKindFlag string
	sourceZoneFlag string
	targetZoneFlag string
	patternFlag    string
	fractionalFlag bool
	validateFlag   bool
	detectFlag     bool

	rootCmd = &cobra.Command{
		Use:   "timeconv",
		Short: "Convert timestamps between representations and timezones",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&sourceKindFlag, "from", "f", "", "Source representation (timestamp, iso8601, rfc2822, custom); empty means auto-detect")
	rootCmd.PersistentFlags().StringVarP(&targetKindFlag, "to", "t", "iso8601", "Target representation (timestamp, iso8601, rfc2822, custom)")
	rootCmd.PersistentFlags().StringVar(&sourceZoneFlag, "source-zone", "", "Source IANA timezone (defaults UTC)")
	rootCmd.PersistentFlags().StringVar(&targetZoneFlag, "target-zone", "", "Target IANA timezone (defaults UTC)")
	rootCmd.PersistentFlags().StringVarP(&patternFlag, "pattern", "p", "", "Custom pattern, e.g. \"yyyy-MM-dd HH:mm:ss\"")
	rootCmd.PersistentFlags().BoolVar(&fractionalFlag, "fractional", false, "Include fractional seconds in timestamp output")
	rootCmd.PersistentFlags().BoolVar(&validateFlag, "validate", false, "Validate the input against the declared representation first")
	rootCmd.PersistentFlags().BoolVarP(&detectFlag, "detect", "d", false, "Auto-detect the source representation even when --from is set")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildOptions translates the shared flags into engine options.
func buildOptions() (timeconv.Options, error) {
	opts := timeconv.Options{
		SourceZone:               sourceZoneFlag,
		TargetZone:               targetZoneFlag,
		Pattern:                  patternFlag,
		IncludeFractionalSeconds: fractionalFlag,
		ValidateInput:            validateFlag,
	}
	if sourceKindFlag == "" || detectFlag {
		opts.AutoDetectFormat = true
	} else {
		k, err := timeconv.ParseKind(sourceKindFlag)
		if err != nil {
			return opts, err
		}
		opts.SourceKind = k
	}
	k, err := timeconv.ParseKind(targetKindFlag)
	if err != nil {
		return opts, err
	}
	opts.TargetKind = k
	return opts, nil
}

// printOutcome renders an outcome for terminal use. Failures exit
// non-zero so shell pipelines can branch on them.
func printOutcome(out timeconv.Outcome) error {
	if !out.OK {
		return fmt.Errorf("%s: %s", out.CodeName, out.Message)
	}
	_, _ = fmt.Fprintln(os.Stdout, out.Formatted)
	return nil
}
