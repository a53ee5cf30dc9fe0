package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/i3icons/internal/block"
)

// DefaultSeparator is what i3bar draws between blocks without a custom one.
const DefaultSeparator = " | "

type Options struct {
	Width     int    // truncate to this many columns (0 = no limit)
	Separator string // defaults to DefaultSeparator
	Color     bool   // honour the blocks' color, background and urgent fields
}

type segment struct {
	text      string
	color     string
	bg        string
	urgent    bool
	separated bool
}

// Bar renders a block sequence the way a bar would show it: full_text of
// each block left to right, separators between them.
func Bar(seq block.Sequence, opts Options) string {
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}

	segs := segments(seq)
	if opts.Width > 0 {
		segs = fit(segs, opts.Width, runewidth.StringWidth(opts.Separator))
	}

	var b strings.Builder
	for i, s := range segs {
		if opts.Color {
			b.WriteString(styleFor(s).Render(s.text))
		} else {
			b.WriteString(s.text)
		}
		if i < len(segs)-1 && s.separated {
			b.WriteString(opts.Separator)
		}
	}
	return b.String()
}

func segments(seq block.Sequence) []segment {
	segs := make([]segment, 0, len(seq))
	for _, blk := range seq {
		text, ok := blk.FullText()
		if !ok || text == "" {
			continue
		}
		s := segment{text: text, separated: true}
		s.color, _ = blk.String("color")
		s.bg, _ = blk.String("background")
		s.urgent, _ = blk.Bool("urgent")
		if sep, ok := blk.Bool("separator"); ok {
			s.separated = sep
		}
		segs = append(segs, s)
	}
	return segs
}

// fit drops whatever does not fit in width columns; the segment that
// crosses the limit is cut and ends with an ellipsis.
func fit(segs []segment, width, sepWidth int) []segment {
	used := 0
	for i, s := range segs {
		w := runewidth.StringWidth(s.text)
		if used+w > width {
			s.text = runewidth.Truncate(s.text, width-used, "…")
			segs[i] = s
			if s.text == "" {
				return segs[:i]
			}
			return segs[:i+1]
		}
		used += w
		if i < len(segs)-1 && s.separated {
			used += sepWidth
			if used >= width {
				segs[i].separated = false
				return segs[:i+1]
			}
		}
	}
	return segs
}

func styleFor(s segment) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c := hexColor(s.color); c != "" {
		st = st.Foreground(lipgloss.Color(c))
	}
	if c := hexColor(s.bg); c != "" {
		st = st.Background(lipgloss.Color(c))
	}
	if s.urgent {
		st = st.Bold(true).Reverse(true)
	}
	return st
}

// hexColor trims i3bar's #RRGGBBAA down to #RRGGBB.
func hexColor(c string) string {
	if len(c) == 9 && c[0] == '#' {
		return c[:7]
	}
	if len(c) == 7 && c[0] == '#' {
		return c
	}
	return ""
}
