package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/i3icons/internal/block"
	"github.com/Zuo-Peng/i3icons/internal/rules"
)

// execute runs the CLI with args against stdin and returns stdout, stderr
// and the command error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "none.toml")
}

func TestRoot_FiltersStdin(t *testing.T) {
	icons := rules.DefaultIcons()
	input := "{\"version\":1}\n[\n" +
		`{"name":"wireless _first_","full_text":"MyNet 2 (75%) x"},{"name":"volume master","full_text":"off"}` + "\n"

	out, _, err := execute(t, input, "--config", missingConfig(t))
	require.NoError(t, err)

	want := "{\"version\":1}\n[\n" +
		`[{"name":"wireless _first_","full_text":"` + icons.Wireless.Strong + ` MyNet"},` +
		`{"name":"volume master","full_text":"` + icons.Volume.Mute + ` mute"}],` + "\n"
	assert.Equal(t, want, out)
}

func TestRoot_MalformedLineFails(t *testing.T) {
	out, _, err := execute(t, "[\n{oops\n", "--config", missingConfig(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, block.ErrMalformed)
	assert.Equal(t, "[\n", out, "no diagnostic on stdout")
	assert.NotContains(t, out, "oops")
}

func TestRoot_UsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[blocks]\nvolume = \"vol\"\n[icons.volume]\nhigh = \"HI\"\n"), 0o644))

	out, _, err := execute(t, `{"name":"vol","full_text":"88%"}`+"\n", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"vol","full_text":"HI 88%"}],`+"\n", out)
}

func TestRoot_BadConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[blocks]\nbogus = 1\n"), 0o644))

	_, _, err := execute(t, "[\n", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestRoot_DebugLogGoesToStderr(t *testing.T) {
	out, stderr, err := execute(t, "[\n", "--config", missingConfig(t), "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "[\n", out)
	assert.Contains(t, stderr, "stream closed")
}

func TestRoot_BracketedFlag(t *testing.T) {
	icons := rules.DefaultIcons()
	input := `,[{"name":"battery all","full_text":"55%"}]` + "\n"

	out, _, err := execute(t, input, "--config", missingConfig(t), "--bracketed")
	require.NoError(t, err)
	assert.Equal(t, `,[{"name":"battery all","full_text":"`+icons.Battery.Half+` 55%"}]`+"\n", out)
}

func TestPreview_PlainFromFile(t *testing.T) {
	icons := rules.DefaultIcons()
	path := filepath.Join(t.TempDir(), "stream.txt")
	input := "{\"version\":1}\n[\n" +
		`{"name":"battery all","full_text":"55%"},{"name":"cpu","full_text":"3%"}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(input), 0o644))

	out, _, err := execute(t, "", "preview", "--plain", "--config", missingConfig(t), path)
	require.NoError(t, err)
	assert.Equal(t, icons.Battery.Half+" 55% | 3%\n", out)
}

func TestPreview_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "preview", "--plain", "--config", missingConfig(t), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open stream")
}

func TestDoctor_Output(t *testing.T) {
	icons := rules.DefaultIcons()
	out, _, err := execute(t, "", "doctor", "--config", missingConfig(t))
	require.NoError(t, err)

	assert.Contains(t, out, "=== Config ===")
	assert.Contains(t, out, "NOT FOUND, using defaults")
	assert.Contains(t, out, `"wireless _first_"`)
	assert.Contains(t, out, "U+F1EB")
	assert.Contains(t, out, icons.Wireless.Strong+" MyNet")
	assert.Contains(t, out, icons.Wireless.Weak+" no wifi")
	assert.Contains(t, out, "down (unchanged)")
	assert.Contains(t, out, icons.Volume.Medium+" 45%")
}

func TestCodePoints(t *testing.T) {
	assert.Equal(t, "U+F1EB", codePoints("\uf1eb"))
	assert.Equal(t, "U+0041 U+0042", codePoints("AB"))
}
