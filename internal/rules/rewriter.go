package rules

import (
	"github.com/Zuo-Peng/i3icons/internal/block"
)

// Rewriter applies the wireless, battery and volume rules to the blocks
// whose name matches exactly. It holds no state between calls and is safe
// for concurrent use.
type Rewriter struct {
	names Names
	icons Icons
}

func NewRewriter(names Names, icons Icons) *Rewriter {
	return &Rewriter{names: names, icons: icons}
}

// Default returns a rewriter with the stock names and glyphs.
func Default() *Rewriter {
	return NewRewriter(DefaultNames(), DefaultIcons())
}

func (r *Rewriter) Names() Names { return r.names }
func (r *Rewriter) Icons() Icons { return r.icons }

// Rewrite runs the rule registered for name against text.
func (r *Rewriter) Rewrite(name, text string) (string, bool) {
	switch name {
	case r.names.Wireless:
		return Wireless(text, r.icons.Wireless)
	case r.names.Battery:
		return Battery(text, r.icons.Battery)
	case r.names.Volume:
		return Volume(text, r.icons.Volume)
	}
	return "", false
}

// Apply rewrites full_text in place and returns how many blocks changed.
// Blocks without a string full_text are skipped.
func (r *Rewriter) Apply(seq block.Sequence) int {
	n := 0
	for _, b := range seq {
		text, ok := b.FullText()
		if !ok {
			continue
		}
		out, ok := r.Rewrite(b.Name(), text)
		if !ok {
			continue
		}
		b.SetFullText(out)
		n++
	}
	return n
}
