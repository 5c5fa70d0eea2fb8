package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/joseph-ayodele/invoice-extractor/internal/export"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
	"github.com/joseph-ayodele/invoice-extractor/internal/repository"
)

func newBatchCmd() *cobra.Command {
	var (
		dir         string
		out         string
		dbPath      string
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Extract every .txt file in a directory and export an XLSX summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				return fmt.Errorf("--dir is required")
			}
			if out == "" {
				out = filepath.Join(filepath.Dir(dir), "extractions.xlsx")
			}

			logger := newLogger()
			pipeline, err := buildPipeline(logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := repository.Open(ctx, dbPath, logger)
			if err != nil {
				return err
			}
			defer db.Close()
			jobs := repository.NewJobRepository(db, logger)

			files, err := listTextFiles(dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no .txt files under %s", dir)
			}
			logger.Info("batch.start", "dir", dir, "files", len(files), "concurrency", concurrency)

			rows := make([]export.Row, len(files))
			var (
				mu       sync.Mutex
				failures int
			)
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(concurrency)
			for i, path := range files {
				g.Go(func() error {
					res, err := runOne(gctx, pipeline, jobs, path)
					mu.Lock()
					defer mu.Unlock()
					if err != nil && res == nil {
						failures++
						logger.Error("batch.file.failed", "file", path, "err", err)
						return nil // one bad file must not abort the batch
					}
					rows[i] = export.Row{Source: path, Result: res}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			exported := rows[:0]
			for _, r := range rows {
				if r.Result != nil {
					exported = append(exported, r)
				}
			}

			svc := export.NewService(logger)
			xlsxBytes, err := svc.ExportXLSX(exported)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if err := os.WriteFile(out, xlsxBytes, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			logger.Info("batch.done",
				"files", len(files),
				"exported", len(exported),
				"failures", failures,
				"output", out,
			)
			fmt.Printf("Processed %d file(s), %d failure(s). Output: %s\n", len(files), failures, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory of .txt documents to process (required)")
	cmd.Flags().StringVar(&out, "out", "", "output XLSX path (default: <parent>/extractions.xlsx)")
	cmd.Flags().StringVar(&dbPath, "db", ":memory:", "job-history sqlite path")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "parallel documents")
	return cmd
}

// runOne records a job around a single pipeline invocation. A failed-status
// result (undecodable input) is still a result: it lands in the export with
// its encoding issue, and the job row is marked FAILED.
func runOne(ctx context.Context, pipeline *extract.Pipeline, jobs *repository.JobRepository, path string) (*extract.ExtractionResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	jobID, err := jobs.Start(ctx, path)
	if err != nil {
		return nil, err
	}

	res, extractErr := pipeline.Extract(ctx, extract.Request{
		Text:   string(raw),
		Locale: flagLocale,
	})
	if extractErr != nil {
		_ = jobs.FinishFailure(ctx, jobID, extractErr.Error())
		return res, extractErr
	}
	if err := jobs.FinishSuccess(ctx, jobID, res); err != nil {
		return res, err
	}
	return res, nil
}

func listTextFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".txt") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
