// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table assembles translated statements and their laws into a
// two-column Markdown table.
//
// Each input line holds one statement, optionally followed by the law
// delimiter and a law:
//
//	# START
//	(p > q) and (q > r)  # hypothetical syllogism premise
//	[(p > q) and (q > r)] > (p > r) == t
//
// Lines before an optional start marker are ignored. Every remaining line
// yields exactly one row, in input order.
package table

import (
	"strings"
	"unicode"

	"github.com/pdiddy/lazytex/internal/latex"
	"github.com/pdiddy/lazytex/pkg/types"
)

const (
	titleRow     = "| Equivalence | Law |\n"
	alignmentRow = "| :--- | :--- |\n"

	// noLawPrefix indents a statement that has no justification.
	noLawPrefix = `\ \ \ \ \ `
	// lawPrefix marks a statement that follows from the stated law.
	lawPrefix = `\ \equiv \ `
)

// Translator converts a plaintext statement into LaTeX.
type Translator interface {
	Translate(statement string) string
}

// Header returns the column-title and column-alignment rows.
func Header() []string {
	return []string{titleRow, alignmentRow}
}

// FormatRow translates statement with the built-in vocabulary and returns
// one Markdown table row terminated by a newline.
func FormatRow(statement, law string) string {
	return formatRow(latex.Default(), statement, law)
}

// Build assembles lines into a table with the built-in vocabulary, start
// marker and law delimiter.
func Build(lines []string) []string {
	return NewAssembler(nil).Build(lines)
}

func formatRow(t Translator, statement, law string) string {
	prefix := lawPrefix
	if law == types.NoLaw {
		prefix = noLawPrefix
	}
	return "| $" + prefix + trimRight(t.Translate(statement)) + "$ | " + trimRight(law) + " |\n"
}

// SplitLine strips trailing whitespace from line and splits it at the first
// delimiter into statement and law. A line without the delimiter gets
// types.NoLaw.
func SplitLine(line, delimiter string) types.Row {
	line = trimRight(line)
	statement, law, found := strings.Cut(line, delimiter)
	if !found {
		return types.Row{Statement: line, Law: types.NoLaw}
	}
	return types.Row{Statement: statement, Law: law}
}

// StartIndex returns the index of the line that follows the first line equal
// to marker, ignoring a trailing line break. It returns 0 when no line is the
// marker.
func StartIndex(lines []string, marker string) int {
	for i, line := range lines {
		if strings.TrimRight(line, "\r\n") == marker {
			return i + 1
		}
	}
	return 0
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
