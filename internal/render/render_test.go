package render

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/i3icons/internal/block"
)

func decode(t *testing.T, line string) block.Sequence {
	t.Helper()
	seq, err := block.Decode([]byte(line))
	require.NoError(t, err)
	return seq
}

func TestBar_Plain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		opts  Options
		want  string
	}{
		{
			name:  "joins with default separator",
			input: `{"full_text":"a"},{"full_text":"b"},{"full_text":"c"}`,
			want:  "a | b | c",
		},
		{
			name:  "custom separator",
			input: `{"full_text":"a"},{"full_text":"b"}`,
			opts:  Options{Separator: " :: "},
			want:  "a :: b",
		},
		{
			name:  "separator false glues blocks",
			input: `{"full_text":"a","separator":false},{"full_text":"b"}`,
			want:  "ab",
		},
		{
			name:  "blocks without text are skipped",
			input: `{"name":"x"},{"full_text":""},{"full_text":"b"},{"full_text":7}`,
			want:  "b",
		},
		{
			name:  "width cuts the last visible block",
			input: `{"full_text":"alpha"},{"full_text":"beta"}`,
			opts:  Options{Width: 9},
			want:  "alpha | …",
		},
		{
			name:  "width ending on a separator drops it",
			input: `{"full_text":"alpha"},{"full_text":"beta"}`,
			opts:  Options{Width: 8},
			want:  "alpha",
		},
		{
			name:  "wide enough",
			input: `{"full_text":"alpha"},{"full_text":"beta"}`,
			opts:  Options{Width: 80},
			want:  "alpha | beta",
		},
		{
			name:  "empty",
			input: `[]`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Bar(decode(t, tt.input), tt.opts)
			assert.Equal(t, tt.want, got)
			if tt.opts.Width > 0 {
				assert.LessOrEqual(t, runewidth.StringWidth(got), tt.opts.Width)
			}
		})
	}
}

func TestBar_ColorKeepsText(t *testing.T) {
	t.Parallel()

	seq := decode(t, `{"full_text":"ok","color":"#00FF00"},{"full_text":"low","color":"#FF0000AA","urgent":true}`)
	got := Bar(seq, Options{Color: true})
	assert.Contains(t, got, "ok")
	assert.Contains(t, got, "low")
	assert.Contains(t, got, DefaultSeparator)
}

func TestHexColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#112233", hexColor("#112233"))
	assert.Equal(t, "#112233", hexColor("#112233FF"))
	assert.Empty(t, hexColor("red"))
	assert.Empty(t, hexColor(""))
}
