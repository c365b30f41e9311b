package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"wordpipe/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show past word counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				runs, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet")
					return nil
				}

				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						strconv.FormatInt(run.ID, 10),
						run.CreatedAt.Local().Format(time.DateTime),
						run.SourcePath,
						strconv.FormatInt(run.Words, 10),
						strconv.FormatInt(run.Bytes, 10),
						run.Duration.String(),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "When", "File", "Words", "Bytes", "Duration"},
					rows, 0, 3, 4, 5,
				))
				return nil
			})
		},
	}

	historyCmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show (0 for all)")

	historyCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d run(s)\n", removed)
				return nil
			})
		},
	})

	return historyCmd
}
