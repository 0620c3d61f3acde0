// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/lazytex/internal/latex"
	"github.com/pdiddy/lazytex/pkg/types"
)

func newConverter(t *testing.T, cfg types.Config) *Converter {
	t.Helper()
	c, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	return c
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "trailing newline", content: "hello\nworld\n", want: []string{"hello", "world"}},
		{name: "no trailing newline", content: "hello\nworld", want: []string{"hello", "world"}},
		{name: "crlf", content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines kept", content: "a\n\n  \nb\n", want: []string{"a", "", "  ", "b"}},
		{name: "empty file", content: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(writeInput(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadLines_Missing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "does_not_exist.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputNotFound)
	assert.Contains(t, err.Error(), "does_not_exist.txt")
}

func TestReadLines_Directory(t *testing.T) {
	_, err := ReadLines(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputUnreadable)
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := New(types.Config{}, nil)
		require.NoError(t, err)
		assert.Equal(t, types.FormatMarkdown, c.format)
		assert.Same(t, latex.Default(), c.Translator())
	})

	t.Run("unknown format", func(t *testing.T) {
		cfg := types.DefaultConfig()
		cfg.Output.Format = "pdf"
		_, err := New(cfg, nil)
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("missing vocabulary", func(t *testing.T) {
		cfg := types.DefaultConfig()
		cfg.VocabularyPath = filepath.Join(t.TempDir(), "ops.yaml")
		_, err := New(cfg, nil)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestConverter_File(t *testing.T) {
	c := newConverter(t, types.DefaultConfig())

	got, err := c.File(filepath.Join("testdata", "syllogism.txt"))
	require.NoError(t, err)

	lines := strings.SplitAfter(got, "\n")
	lines = lines[:len(lines)-1] // SplitAfter leaves an empty tail
	require.Len(t, lines, 6)

	assert.Equal(t, "| Equivalence | Law |\n", lines[0])
	assert.Equal(t, "| :--- | :--- |\n", lines[1])
	assert.Equal(t, `| $\ \ \ \ \ [(p \to q) \ \land \ (q \to r)] \to (p \to r)$ | --- |`+"\n", lines[2])
	assert.Equal(t, `| $\ \equiv \ \sim [(\sim p \ \lor \ q) \ \land \ (\sim q \ \lor \ r)] \ \lor \ (\sim p \ \lor \ r)$ | implication |`+"\n", lines[3])
	assert.Equal(t, `| $\ \equiv \ [\sim (\sim p \ \lor \ q) \ \lor \ \sim (\sim q \ \lor \ r)] \ \lor \ (\sim p \ \lor \ r)$ | De Morgan |`+"\n", lines[4])
	assert.Equal(t, `| $\ \equiv \ \mathbf{t}$ | tautology |`+"\n", lines[5])
	assert.NotContains(t, got, "ignored")
}

func TestConverter_FileMissing(t *testing.T) {
	c := newConverter(t, types.DefaultConfig())
	_, err := c.File(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestConverter_TableCustomLayout(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Table.StartMarker = "---8<---"
	cfg.Table.LawDelimiter = "// "
	c := newConverter(t, cfg)

	got, err := c.Table([]string{"p # not a law", "---8<---", "p > q // premise"})
	require.NoError(t, err)
	assert.Equal(t, "| Equivalence | Law |\n| :--- | :--- |\n"+`| $\ \equiv \ p \to q$ | premise |`+"\n", got)
}

func TestConverter_Statement(t *testing.T) {
	c := newConverter(t, types.DefaultConfig())

	tests := []struct {
		name string
		text string
		opts StatementOptions
		want string
	}{
		{
			name: "bare latex",
			text: "p and -q or c > t",
			want: `p \ \land \ \sim q \ \lor \ \mathbf{c} \to \mathbf{t}`,
		},
		{
			name: "trailing space trimmed",
			text: "p -",
			want: `p \sim`,
		},
		{
			name: "row without law",
			text: "p > q",
			opts: StatementOptions{Row: true},
			want: `| $\ \ \ \ \ p \to q$ | --- |` + "\n",
		},
		{
			name: "law implies row",
			text: "-p or q",
			opts: StatementOptions{Law: "implication"},
			want: `| $\ \equiv \ \sim p \ \lor \ q$ | implication |` + "\n",
		},
		{
			name: "empty",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Statement(tt.text, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConverter_HTML(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Output.Format = types.FormatHTML
	c := newConverter(t, cfg)

	got, err := c.Table([]string{"p or q # by implication"})
	require.NoError(t, err)
	assert.Contains(t, got, "<table>")
	assert.Contains(t, got, "by implication")

	got, err = c.Statement("p > q", StatementOptions{})
	require.NoError(t, err)
	assert.Contains(t, got, `<p>$p \to q$</p>`)
}
