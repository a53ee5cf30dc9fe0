package main

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/i3icons/internal/config"
	"github.com/Zuo-Peng/i3icons/internal/stream"
)

// filterRunE wires the pipe-stage flags onto cmd and returns its RunE.
func filterRunE(g *globalFlags, cmd *cobra.Command) func(*cobra.Command, []string) error {
	var watch, bracketed bool

	cmd.Flags().BoolVar(&watch, "watch", false, "Reload the config file when it changes")
	cmd.Flags().BoolVar(&bracketed, "bracketed", false, `Also rewrite i3bar update lines ("[{...}]" and ",[{...}]")`)

	return func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(g, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		tr := stream.New(cfg.Rewriter(), stream.Options{
			Bracketed: bracketed,
			Logger:    logger,
		})

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		if watch {
			if !cfg.Loaded {
				logger.Warn("config: file does not exist, not watching", "path", cfg.Path)
			} else {
				go func() {
					err := config.Watch(ctx, cfg.Path, func(c *config.Config) {
						tr.SetRewriter(c.Rewriter())
					})
					if err != nil {
						logger.Error("config: watch stopped", "path", cfg.Path, "err", err)
					}
				}()
			}
		}

		err = tr.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())

		st := tr.Stats()
		logger.Debug("stream closed",
			"lines", humanize.Comma(int64(st.Lines)),
			"updates", humanize.Comma(int64(st.Structured)),
			"rewritten", humanize.Comma(int64(st.Rewritten)))
		return err
	}
}
