package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/i3icons/internal/rules"
)

// doctorSamples are typical i3status texts for each rule.
var doctorSamples = []struct {
	kind string
	text string
}{
	{"wireless", "MyNet 2 (75%) ▂▄▆_"},
	{"wireless", "cafe (55%)"},
	{"wireless", "garbled %%% text"},
	{"wireless", "down"},
	{"battery", "Charging 97%"},
	{"battery", "Charging 50%"},
	{"battery", "55%"},
	{"battery", "Discharging 12%"},
	{"volume", "off"},
	{"volume", "0%"},
	{"volume", "20%"},
	{"volume", "45%"},
	{"volume", "90%"},
}

func doctorCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: show the effective config and run sample texts through the rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(g, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			w := cmd.OutOrStdout()

			fmt.Fprintln(w, "=== Config ===")
			if cfg.Loaded {
				fmt.Fprintf(w, "  Path: %s (OK)\n", cfg.Path)
			} else {
				fmt.Fprintf(w, "  Path: %s (NOT FOUND, using defaults)\n", cfg.Path)
			}
			fmt.Fprintf(w, "  Log level: %s\n", cfg.Log.Level)

			names := cfg.Blocks
			fmt.Fprintln(w, "\n=== Blocks ===")
			fmt.Fprintf(w, "  wireless: %q\n", names.Wireless)
			fmt.Fprintf(w, "  battery:  %q\n", names.Battery)
			fmt.Fprintf(w, "  volume:   %q\n", names.Volume)

			fmt.Fprintln(w, "\n=== Icons ===")
			printIcons(w, cfg.Icons)

			fmt.Fprintln(w, "\n=== Samples ===")
			rw := cfg.Rewriter()
			byKind := map[string]string{
				"wireless": names.Wireless,
				"battery":  names.Battery,
				"volume":   names.Volume,
			}
			for _, s := range doctorSamples {
				out, ok := rw.Rewrite(byKind[s.kind], s.text)
				if !ok {
					out = s.text + " (unchanged)"
				}
				fmt.Fprintf(w, "  %-8s %-22q -> %s\n", s.kind, s.text, out)
			}

			fmt.Fprintln(w, "\n=== Pipe ===")
			if term.IsTerminal(int(os.Stdin.Fd())) {
				fmt.Fprintln(w, "  stdin: terminal (run as 'i3status | i3icons')")
			} else {
				fmt.Fprintln(w, "  stdin: pipe (OK)")
			}
			return nil
		},
	}
}

func printIcons(w io.Writer, icons rules.Icons) {
	rows := []struct {
		key, glyph string
	}{
		{"wireless.strong", icons.Wireless.Strong},
		{"wireless.medium", icons.Wireless.Medium},
		{"wireless.weak", icons.Wireless.Weak},
		{"battery.charging_full", icons.Battery.ChargingFull},
		{"battery.charging", icons.Battery.Charging},
		{"battery.full", icons.Battery.Full},
		{"battery.high", icons.Battery.High},
		{"battery.half", icons.Battery.Half},
		{"battery.low", icons.Battery.Low},
		{"battery.critical", icons.Battery.Critical},
		{"volume.mute", icons.Volume.Mute},
		{"volume.low", icons.Volume.Low},
		{"volume.medium", icons.Volume.Medium},
		{"volume.high", icons.Volume.High},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %-22s %s  %s\n", r.key, r.glyph, codePoints(r.glyph))
	}
}

// codePoints spells a glyph as U+XXXX so it can be read without the font.
func codePoints(s string) string {
	out := ""
	for i, r := range s {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("U+%04X", r)
	}
	return out
}
