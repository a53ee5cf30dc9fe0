package block

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// ErrMalformed is returned for update lines that are not a list of JSON objects.
var ErrMalformed = errors.New("malformed status line")

// Glyphs are written as UTF-8 and '<', '>' and '&' are left alone; i3bar
// reads the text, not a browser.
var codec = jsoniter.Config{EscapeHTML: false}.Froze()

// Decode parses one update line into its blocks. The line is either a JSON
// array of objects or a comma separated run of objects (the body of an
// i3bar update, a single trailing comma allowed).
func Decode(data []byte) (Sequence, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty line", ErrMalformed)
	}

	switch data[0] {
	case '[':
	case '{':
		body := bytes.TrimSuffix(data, []byte(","))
		wrapped := make([]byte, 0, len(body)+2)
		wrapped = append(wrapped, '[')
		wrapped = append(wrapped, body...)
		data = append(wrapped, ']')
	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrMalformed, data[0])
	}

	iter := codec.BorrowIterator(data)
	defer codec.ReturnIterator(iter)

	seq := Sequence{}
	iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		b := readBlock(it)
		if b == nil {
			return false
		}
		seq = append(seq, b)
		return true
	})
	if iter.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, iter.Error)
	}

	// Anything but end of input after the closing bracket is trailing data.
	iter.WhatIsNext()
	if !errors.Is(iter.Error, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after block list", ErrMalformed)
	}
	return seq, nil
}

func readBlock(it *jsoniter.Iterator) *Block {
	if it.WhatIsNext() != jsoniter.ObjectValue {
		it.ReportError("read block", "expect object")
		return nil
	}
	b := &Block{}
	it.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		// The capture starts right after the colon, so it may carry the
		// whitespace in front of the value.
		raw := bytes.TrimSpace(it.SkipAndReturnBytes())
		if it.Error != nil {
			return false
		}
		b.fields = append(b.fields, Field{Key: key, Value: raw})
		return true
	})
	if it.Error != nil {
		return nil
	}
	return b
}

// Encode writes seq as a compact JSON array.
func Encode(seq Sequence) []byte {
	stream := codec.BorrowStream(nil)
	defer codec.ReturnStream(stream)

	stream.WriteArrayStart()
	for i, b := range seq {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectStart()
		for j, f := range b.fields {
			if j > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(f.Key)
			stream.Write(f.Value)
		}
		stream.WriteObjectEnd()
	}
	stream.WriteArrayEnd()

	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out
}
