package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/gnemet/SlidePress/internal/database"
)

func historyCmd(a *app) *cobra.Command {
	var (
		limit int
		clear bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversions from the conversion log",
		Long:  "List recent conversions from the conversion log, or empty the log with --clear.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.Database.Enabled() {
				return errors.New("no conversion log configured: set DB_URL or database.url")
			}
			db, err := database.NewConnection(cmd.Context(), a.cfg.Database.GetConnectStr(), a.logger)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := database.EnsureSchema(cmd.Context(), db); err != nil {
				return err
			}

			if clear {
				if err := database.ClearConversions(cmd.Context(), db); err != nil {
					return err
				}
				a.logger.Info("conversion log cleared")
				fmt.Fprintln(cmd.OutOrStdout(), "Conversion log cleared")
				return nil
			}

			list, err := database.ListConversions(cmd.Context(), db, limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STARTED\tSTATUS\tSLIDES\tINPUT\tOUTPUT\tTITLE")
			for _, c := range list {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
					c.StartedAt.Local().Format(time.DateTime), c.Status, c.SlideCount, c.InputPath, c.OutputPath, c.Title)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of conversions to show")
	cmd.Flags().BoolVar(&clear, "clear", false, "delete every logged conversion")
	return cmd
}
