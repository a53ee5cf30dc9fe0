package stream

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/Zuo-Peng/i3icons/internal/block"
	"github.com/Zuo-Peng/i3icons/internal/rules"
)

type Options struct {
	// Bracketed also rewrites "[{...}]" and ",[{...}]" update lines.
	Bracketed bool
	Logger    *slog.Logger
}

// Result is the outcome of transforming one line.
type Result struct {
	Kind   Kind
	Output []byte
	// Blocks is the rewritten sequence; nil for lines copied verbatim.
	Blocks    block.Sequence
	Rewritten int
}

type Stats struct {
	Lines       int
	Structured  int
	Passthrough int
	Rewritten   int
}

// Transformer rewrites a status stream line by line. The rule set can be
// swapped while Run is going; each line sees exactly one rule set.
type Transformer struct {
	rewriter  atomic.Pointer[rules.Rewriter]
	bracketed bool
	log       *slog.Logger
	stats     Stats
}

func New(rw *rules.Rewriter, opts Options) *Transformer {
	if rw == nil {
		rw = rules.Default()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	t := &Transformer{bracketed: opts.Bracketed, log: log}
	t.rewriter.Store(rw)
	return t
}

// SetRewriter replaces the rule set used for the following lines.
func (t *Transformer) SetRewriter(rw *rules.Rewriter) {
	if rw != nil {
		t.rewriter.Store(rw)
	}
}

// Stats returns the counters collected by Run and Each. Call it after they
// return.
func (t *Transformer) Stats() Stats {
	return t.stats
}

// Transform handles a single line, including its trailing newline if any.
// An error means the line looked like a block list but could not be decoded.
func (t *Transformer) Transform(line []byte) (Result, error) {
	kind := Classify(line)
	switch {
	case kind == KindStructured:
		seq, err := block.Decode(line)
		if err != nil {
			return Result{Kind: kind}, err
		}
		if block.IsHeader(seq) {
			return Result{Kind: kind, Output: line}, nil
		}
		n := t.rewriter.Load().Apply(seq)
		out := append(block.Encode(seq), ',', '\n')
		return Result{Kind: kind, Output: out, Blocks: seq, Rewritten: n}, nil

	case kind == KindBracketed && t.bracketed:
		trimmed := bytes.TrimSpace(line)
		var prefix []byte
		if trimmed[0] == ',' {
			prefix = []byte{','}
			trimmed = trimmed[1:]
		}
		seq, err := block.Decode(trimmed)
		if err != nil {
			return Result{Kind: kind}, err
		}
		n := t.rewriter.Load().Apply(seq)
		out := append(prefix, block.Encode(seq)...)
		out = append(out, '\n')
		return Result{Kind: kind, Output: out, Blocks: seq, Rewritten: n}, nil
	}
	return Result{Kind: KindPassthrough, Output: line}, nil
}

// Run copies r to w, rewriting block lines and flushing after every line.
// It stops at end of input, on the first line that fails to decode, or
// when ctx is done between two lines.
func (t *Transformer) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	return t.Each(ctx, r, func(res Result) error {
		if _, err := bw.Write(res.Output); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
		return nil
	})
}

// Each reads r line by line and hands every transformed line to fn. It
// stops on the first error from decoding, reading or fn.
func (t *Transformer) Each(ctx context.Context, r io.Reader, fn func(Result) error) error {
	br := bufio.NewReader(r)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, readErr := br.ReadBytes('\n')
		if len(line) > 0 {
			t.stats.Lines++
			res, err := t.Transform(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", t.stats.Lines, err)
			}
			if res.Blocks != nil {
				t.stats.Structured++
				t.stats.Rewritten += res.Rewritten
				t.log.Debug("rewrote line", "line", t.stats.Lines, "blocks", len(res.Blocks), "rewritten", res.Rewritten)
			} else {
				t.stats.Passthrough++
			}

			if err := fn(res); err != nil {
				return err
			}
		}

		if errors.Is(readErr, io.EOF) {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read: %w", readErr)
		}
	}
}
