package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/invoice-extractor/internal/config"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

var (
	flagLocale   string
	flagSpecs    string
	flagLogLevel string
)

func main() {
	root := &cobra.Command{
		Use:           "invoice-batch",
		Short:         "Extract structured invoice data from text files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagLocale, "locale", "en-US", "locale hint for date and number parsing")
	root.PersistentFlags().StringVar(&flagSpecs, "specs", "", "YAML field-spec override file")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug|info|warn|error)")

	root.AddCommand(newExtractCmd(), newBatchCmd(), newJobsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch flagLogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// buildPipeline assembles a pipeline from env config plus CLI flags.
func buildPipeline(logger *slog.Logger) (*extract.Pipeline, error) {
	cfg := config.LoadConfig()
	tuning, err := cfg.PipelineTuning()
	if err != nil {
		return nil, err
	}
	specs := extract.DefaultFieldSpecs()
	if flagSpecs != "" {
		specs, err = config.LoadFieldSpecs(flagSpecs)
		if err != nil {
			return nil, err
		}
	}
	return extract.NewPipeline(logger, tuning, specs), nil
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract a single text file and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			pipeline, err := buildPipeline(logger)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			res, err := pipeline.Extract(cmd.Context(), extract.Request{
				Text:   string(raw),
				Locale: flagLocale,
			})
			if err != nil {
				// fatal decode errors still produce a failed-status result
				logger.Warn("batch.extract.failed", "file", args[0], "err", err)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
}
