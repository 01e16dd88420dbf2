package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ckirschner/ProjectSync/model"
	"github.com/ckirschner/ProjectSync/repository"
)

var (
	historyN      int
	historyFailed bool
	historyStats  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View past sync operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repository.NewHistoryRepository()

		if historyStats {
			stats, err := repo.GetStats()
			if err != nil {
				return err
			}

			fmt.Printf("total: %d, succeeded: %d, failed: %d, cancelled: %d\n",
				stats.Total, stats.Succeeded, stats.Failed, stats.Cancelled)
			return nil
		}

		var histories []model.History
		var err error

		if historyFailed {
			histories, err = repo.GetFailed()
		} else {
			n := historyN
			if n <= 0 {
				n = cfg.HistoryLimit
			}
			histories, err = repo.GetRecent(n)
		}

		if err != nil {
			return err
		}

		if len(histories) == 0 {
			fmt.Println("no history yet")
			return nil
		}

		for _, h := range histories {
			status := "✓"
			switch h.Outcome {
			case model.OutcomeFailed:
				status = "✗"
			case model.OutcomeCancelled:
				status = "-"
			}

			fmt.Printf("%s [%s] %-16s %-16s %s\n",
				status,
				h.RanAt.Format("2006-01-02 15:04:05"),
				h.Project,
				h.Operation,
				h.Outcome,
			)
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyN, "n", 0, "number of history entries to show")
	historyCmd.Flags().BoolVar(&historyFailed, "failed", false, "show only failed operations")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "show summary statistics")
	rootCmd.AddCommand(historyCmd)
}
