package stream

import "bytes"

// Kind says how a line of the status stream is handled.
type Kind int

const (
	// KindPassthrough lines are copied to the output unchanged.
	KindPassthrough Kind = iota
	// KindStructured lines start with '{' and carry a list of blocks.
	KindStructured
	// KindBracketed lines are i3bar update elements, "[{...}]" or
	// ",[{...}]". They are only rewritten when enabled.
	KindBracketed
)

func (k Kind) String() string {
	switch k {
	case KindStructured:
		return "structured"
	case KindBracketed:
		return "bracketed"
	default:
		return "passthrough"
	}
}

// Classify looks only at the first non-blank characters of line; it does
// not check that the rest is valid JSON.
func Classify(line []byte) Kind {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return KindPassthrough
	}
	if trimmed[0] == '{' {
		return KindStructured
	}

	rest := trimmed
	if rest[0] == ',' {
		rest = bytes.TrimLeft(rest[1:], " \t")
	}
	if len(rest) > 0 && rest[0] == '[' {
		rest = bytes.TrimLeft(rest[1:], " \t")
		if len(rest) > 0 && rest[0] == '{' {
			return KindBracketed
		}
	}
	return KindPassthrough
}
