package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_AcceptedShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "single object", input: `{"name":"a","full_text":"x"}`, want: 1},
		{name: "object run", input: `{"name":"a"},{"name":"b"} , {"name":"c"}`, want: 3},
		{name: "object run with trailing comma", input: `{"name":"a"},{"name":"b"},`, want: 2},
		{name: "array", input: `[{"name":"a"},{"name":"b"}]`, want: 2},
		{name: "empty array", input: `[]`, want: 0},
		{name: "surrounding whitespace and newline", input: "  {\"name\":\"a\"}\n", want: 1},
		{name: "empty object", input: `{}`, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			seq, err := Decode([]byte(tt.input))
			require.NoError(t, err)
			assert.Len(t, seq, tt.want)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: "   \n"},
		{name: "not json", input: `{name: a}`},
		{name: "truncated", input: `{"name":"a"`},
		{name: "trailing garbage", input: `{"name":"a"} x`},
		{name: "two trailing commas", input: `{"name":"a"},,`},
		{name: "non-object element", input: `[{"name":"a"}, 3]`},
		{name: "string line", input: `"hello"`},
		{name: "trailing array", input: `[{"name":"a"}][]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestDecode_PreservesOrderAndRawValues(t *testing.T) {
	t.Parallel()

	input := `{"name":"cpu","markup":"none","full_text":"12%","separator":false,"min_width":1.50,"instance":null}`
	seq, err := Decode([]byte(input))
	require.NoError(t, err)
	require.Len(t, seq, 1)

	b := seq[0]
	assert.Equal(t, []string{"name", "markup", "full_text", "separator", "min_width", "instance"}, b.Keys())

	raw, ok := b.Get("min_width")
	require.True(t, ok)
	assert.Equal(t, "1.50", string(raw), "numbers keep their original spelling")

	assert.Equal(t, "["+input+"]", string(Encode(seq)))
}

func TestDecode_SpacedInputEncodesCompact(t *testing.T) {
	t.Parallel()

	seq, err := Decode([]byte(`{ "name" : "a",  "urgent" :  true }`))
	require.NoError(t, err)

	urgent, ok := seq[0].Bool("urgent")
	assert.True(t, ok)
	assert.True(t, urgent)
	assert.Equal(t, `[{"name":"a","urgent":true}]`, string(Encode(seq)))
}

func TestEncode_RoundTripKeepsBlockOrder(t *testing.T) {
	t.Parallel()

	input := `[{"name":"z"},{"name":"a"},{"name":"m","full_text":"x"}]`
	seq, err := Decode([]byte(input))
	require.NoError(t, err)

	names := make([]string, 0, len(seq))
	for _, b := range seq {
		names = append(names, b.Name())
	}
	assert.Equal(t, []string{"z", "a", "m"}, names)
	assert.Equal(t, input, string(Encode(seq)))
}

func TestBlock_SetFullText(t *testing.T) {
	t.Parallel()

	seq, err := Decode([]byte(`{"name":"volume master","full_text":"45%","color":"#FFFFFF"}`))
	require.NoError(t, err)

	b := seq[0]
	b.SetFullText("\uf027 <45%> & \"q\"")

	text, ok := b.FullText()
	require.True(t, ok)
	assert.Equal(t, "\uf027 <45%> & \"q\"", text)
	assert.Equal(t, []string{"name", "full_text", "color"}, b.Keys(), "field set and order unchanged")
	assert.Equal(t,
		`[{"name":"volume master","full_text":"`+"\uf027"+` <45%> & \"q\"","color":"#FFFFFF"}]`,
		string(Encode(seq)))
}

func TestBlock_DuplicateKeysLastWins(t *testing.T) {
	t.Parallel()

	seq, err := Decode([]byte(`{"full_text":"a","name":"x","full_text":"b"}`))
	require.NoError(t, err)

	b := seq[0]
	text, _ := b.FullText()
	assert.Equal(t, "b", text)

	b.SetFullText("c")
	assert.Equal(t, `[{"full_text":"a","name":"x","full_text":"c"}]`, string(Encode(seq)))
}

func TestBlock_TypedAccessors(t *testing.T) {
	t.Parallel()

	seq, err := Decode([]byte(`{"name":7,"full_text":null,"urgent":true,"separator":false}`))
	require.NoError(t, err)
	b := seq[0]

	assert.Empty(t, b.Name(), "non-string name reads as empty")
	_, ok := b.FullText()
	assert.False(t, ok, "null full_text is not a string")

	urgent, ok := b.Bool("urgent")
	assert.True(t, ok)
	assert.True(t, urgent)

	sep, ok := b.Bool("separator")
	assert.True(t, ok)
	assert.False(t, sep)

	_, ok = b.Bool("name")
	assert.False(t, ok)
}

func TestIsHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: `{"version":1}`, want: true},
		{input: `{ "version": 1, "click_events": true }`, want: true},
		{input: `{"version":1,"full_text":"x"}`, want: false},
		{input: `{"version":1},{"version":1}`, want: false},
		{input: `{"name":"battery all","full_text":"50%"}`, want: false},
	}

	for _, tt := range tests {
		seq, err := Decode([]byte(tt.input))
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, IsHeader(seq), tt.input)
	}
}
