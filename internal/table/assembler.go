// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"github.com/pdiddy/lazytex/internal/latex"
	"github.com/pdiddy/lazytex/pkg/types"
)

// Assembler turns input lines into table rows. It keeps no state between
// calls, so the same lines always produce the same table.
type Assembler struct {
	translator Translator
	marker     string
	delimiter  string
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithStartMarker sets the line after which tabulation begins. An empty
// marker keeps the default.
func WithStartMarker(marker string) Option {
	return func(a *Assembler) {
		if marker != "" {
			a.marker = marker
		}
	}
}

// WithLawDelimiter sets the text that separates a statement from its law.
// An empty delimiter keeps the default.
func WithLawDelimiter(delimiter string) Option {
	return func(a *Assembler) {
		if delimiter != "" {
			a.delimiter = delimiter
		}
	}
}

// NewAssembler returns an Assembler that translates statements with t, or
// with the built-in vocabulary when t is nil.
func NewAssembler(t Translator, opts ...Option) *Assembler {
	if t == nil {
		t = latex.Default()
	}
	a := &Assembler{
		translator: t,
		marker:     types.DefaultStartMarker,
		delimiter:  types.DefaultLawDelimiter,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Rows splits every line after the start marker into a statement and law.
func (a *Assembler) Rows(lines []string) []types.Row {
	lines = lines[StartIndex(lines, a.marker):]
	rows := make([]types.Row, len(lines))
	for i, line := range lines {
		rows[i] = SplitLine(line, a.delimiter)
	}
	return rows
}

// FormatRow renders one statement and law as a Markdown table row.
func (a *Assembler) FormatRow(statement, law string) string {
	return formatRow(a.translator, statement, law)
}

// Build returns the two header rows followed by one formatted row per line
// after the start marker.
func (a *Assembler) Build(lines []string) []string {
	rows := a.Rows(lines)
	table := make([]string, 0, len(rows)+2)
	table = append(table, Header()...)
	for _, r := range rows {
		table = append(table, a.FormatRow(r.Statement, r.Law))
	}
	return table
}
