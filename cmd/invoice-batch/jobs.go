package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/invoice-extractor/internal/repository"
)

func newJobsCmd() *cobra.Command {
	var (
		dbPath string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List recent extraction jobs from the history store",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			db, err := repository.Open(ctx, dbPath, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			jobs, err := repository.NewJobRepository(db, logger).List(ctx, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tCONFIDENCE\tFIELDS\tISSUES\tSOURCE")
			for _, j := range jobs {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\t%d\t%s\n",
					j.ID, j.Status, j.OverallConfidence, j.FieldCount, j.IssueCount, j.Source)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "./extract-jobs.db", "job-history sqlite path")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows to list")
	return cmd
}
