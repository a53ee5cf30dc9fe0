package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/i3icons/internal/render"
	"github.com/Zuo-Peng/i3icons/internal/stream"
	"github.com/Zuo-Peng/i3icons/internal/tui"
)

func previewCmd(g *globalFlags) *cobra.Command {
	var bracketed, plain bool
	var width int

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Show the rewritten bar as it updates",
		Long: `Reads a status stream from FILE (or stdin when FILE is omitted or "-")
and shows the bar the way it would look after rewriting, with a scrollable
history of the emitted lines.

  i3status | i3icons preview

When stdout is not a terminal, or with --plain, every update is printed as a
single line of text instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var src io.Reader = cmd.InOrStdin()
			fromStdin := true
			title := "i3icons preview: stdin"
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open stream: %w", err)
				}
				defer f.Close()
				src = f
				fromStdin = false
				title = "i3icons preview: " + args[0]
			}

			tr := stream.New(cfg.Rewriter(), stream.Options{
				Bracketed: bracketed,
				Logger:    logger,
			})

			// Interactive view when stdout is a terminal; one line per update for pipes
			if !plain && term.IsTerminal(int(os.Stdout.Fd())) {
				return tui.Run(src, tr, tui.Options{InputTTY: fromStdin, Title: title})
			}

			out := cmd.OutOrStdout()
			return tr.Each(cmd.Context(), src, func(res stream.Result) error {
				if res.Blocks == nil {
					return nil
				}
				_, err := fmt.Fprintln(out, render.Bar(res.Blocks, render.Options{Width: width}))
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&bracketed, "bracketed", false, `Also rewrite i3bar update lines ("[{...}]" and ",[{...}]")`)
	cmd.Flags().BoolVar(&plain, "plain", false, "Print one line per update instead of the interactive view")
	cmd.Flags().IntVar(&width, "width", 0, "Truncate plain output to this many columns (0 = no limit)")

	return cmd
}
