package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jyhwenchai/Tools-sub004/internal/config"
	"github.com/Jyhwenchai/Tools-sub004/internal/histstore"
)

func init() {
	var limit int
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversions from the history store",
		Long:  "Reads the SQLite history database configured via TIMECONV_HISTORY_PATH.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if cfg.HistoryPath == "" {
				return fmt.Errorf("history is not configured; set TIMECONV_HISTORY_PATH")
			}

			store, err := histstore.Open(cfg.HistoryPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			recs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, rec := range recs {
				status := "ok"
				result := rec.Formatted
				if !rec.OK {
					status = "failed"
					result = fmt.Sprintf("%s: %s", rec.Code, rec.Message)
				}
				_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\t%q -> %s\n",
					rec.CreatedAt.Format("2006-01-02 15:04:05"), status, rec.Input, result)
			}
			return nil
		},
	}
	historyCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum records to show (0 = all)")
	rootCmd.AddCommand(historyCmd)
}
