package block

import (
	"bytes"
)

// Field is one key of a status block with its value exactly as it was read.
type Field struct {
	Key   string
	Value []byte
}

// Block is one status block of an i3bar update. Fields keep their input
// order so a block re-encodes with the same shape it arrived in.
type Block struct {
	fields []Field
}

// Sequence is the ordered list of blocks carried by one update line.
type Sequence []*Block

// New builds a block from already-encoded fields.
func New(fields ...Field) *Block {
	return &Block{fields: fields}
}

// Fields returns the block's fields in order. The slice must not be modified.
func (b *Block) Fields() []Field {
	return b.fields
}

func (b *Block) Keys() []string {
	keys := make([]string, len(b.fields))
	for i, f := range b.fields {
		keys[i] = f.Key
	}
	return keys
}

// Get returns the raw value of key. With duplicate keys the last one wins,
// the same as a regular JSON decoder.
func (b *Block) Get(key string) ([]byte, bool) {
	if i := b.index(key); i >= 0 {
		return b.fields[i].Value, true
	}
	return nil, false
}

// String returns the value of key when it is a JSON string.
func (b *Block) String(key string) (string, bool) {
	raw, ok := b.Get(key)
	if !ok || len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := codec.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Bool returns the value of key when it is a JSON boolean.
func (b *Block) Bool(key string) (bool, bool) {
	raw, ok := b.Get(key)
	if !ok {
		return false, false
	}
	switch {
	case bytes.Equal(raw, []byte("true")):
		return true, true
	case bytes.Equal(raw, []byte("false")):
		return false, true
	}
	return false, false
}

func (b *Block) Name() string {
	name, _ := b.String("name")
	return name
}

func (b *Block) FullText() (string, bool) {
	return b.String("full_text")
}

// SetString replaces the value of key with s. A missing key is appended.
func (b *Block) SetString(key, s string) {
	raw, err := codec.Marshal(s)
	if err != nil {
		// strings always encode
		panic(err)
	}
	if i := b.index(key); i >= 0 {
		b.fields[i].Value = raw
		return
	}
	b.fields = append(b.fields, Field{Key: key, Value: raw})
}

func (b *Block) SetFullText(s string) {
	b.SetString("full_text", s)
}

func (b *Block) index(key string) int {
	for i := len(b.fields) - 1; i >= 0; i-- {
		if b.fields[i].Key == key {
			return i
		}
	}
	return -1
}

// IsHeader reports whether seq is the i3bar protocol header
// ({"version":1,...}) rather than a list of status blocks.
func IsHeader(seq Sequence) bool {
	if len(seq) != 1 {
		return false
	}
	b := seq[0]
	if _, ok := b.Get("version"); !ok {
		return false
	}
	_, hasName := b.Get("name")
	_, hasText := b.Get("full_text")
	return !hasName && !hasText
}
