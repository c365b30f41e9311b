package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"wordpipe/internal/config"
	"wordpipe/internal/history"
	"wordpipe/internal/logging"
	"wordpipe/internal/pipeline"
)

func newCountCommand(ctx *commandContext) *cobra.Command {
	var chunkSize int

	cmd := &cobra.Command{
		Use:   "count <file>",
		Short: "Stream a file through the producer/consumer tasks and print its word count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if chunkSize > 0 {
				cfgCopy := *cfg
				cfgCopy.Pipeline.ChunkSize = chunkSize
				if err := cfgCopy.Validate(); err != nil {
					return err
				}
				cfg = &cfgCopy
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			result, err := pipeline.New(cfg, logger).Run(absPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "The total number of words is %d.\n", result.Words)

			if cfg.History.Enabled {
				if err := recordRun(cmd.Context(), cfg, absPath, result); err != nil {
					// History is bookkeeping; the count already succeeded.
					logger.Warn("record history", logging.Error(err))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "Override the configured chunk size in bytes")
	return cmd
}

func recordRun(ctx context.Context, cfg *config.Config, absPath string, result *pipeline.Result) error {
	store, err := history.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(ctx, history.Run{
		SourcePath: absPath,
		Bytes:      result.Bytes,
		Chunks:     result.Chunks,
		Words:      result.Words,
		Duration:   result.Duration,
	})
	return err
}
