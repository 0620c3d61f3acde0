// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs one lazytex conversion: it reads the input, translates
// a statement or assembles a table, and renders the result in the requested
// format. Delivering the result is left to package output.
package convert

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/pdiddy/lazytex/internal/latex"
	"github.com/pdiddy/lazytex/internal/render"
	"github.com/pdiddy/lazytex/internal/table"
	"github.com/pdiddy/lazytex/pkg/types"
)

var (
	ErrInputNotFound   = errors.New("input file not found")
	ErrInputUnreadable = errors.New("could not read input file")
	ErrUnknownFormat   = errors.New("unknown output format")
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// ReadLines reads the file at path and returns its lines without line
// terminators. The whole file is read before anything is returned.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: '%s': %w", ErrInputUnreadable, path, err)
	}
	defer f.Close()

	lines, err := scanLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", ErrInputUnreadable, path, err)
	}
	return lines, nil
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// StatementOptions controls how a single statement is rendered.
type StatementOptions struct {
	// Row renders the statement as a table row instead of bare LaTeX.
	Row bool

	// Law is the justification for the row. Setting it implies Row.
	Law string
}

// Converter converts statements and statement files with one vocabulary
// and one table layout.
type Converter struct {
	translator *latex.Translator
	assembler  *table.Assembler
	format     types.OutputFormat
	log        *zap.Logger
}

// New builds a Converter from cfg. It loads the vocabulary file when
// cfg.VocabularyPath is set.
func New(cfg types.Config, log *zap.Logger) (*Converter, error) {
	if log == nil {
		log = zap.NewNop()
	}

	format := cfg.Output.Format
	switch format {
	case "":
		format = types.FormatMarkdown
	case types.FormatMarkdown, types.FormatHTML:
	default:
		return nil, fmt.Errorf("%w %q: use markdown or html", ErrUnknownFormat, format)
	}

	tr, err := latex.LoadTranslator(cfg.VocabularyPath)
	if err != nil {
		return nil, err
	}
	if cfg.VocabularyPath != "" {
		log.Debug("loaded vocabulary",
			zap.String("path", cfg.VocabularyPath),
			zap.Int("operators", len(tr.Vocabulary())))
	}

	return &Converter{
		translator: tr,
		assembler: table.NewAssembler(tr,
			table.WithStartMarker(cfg.Table.StartMarker),
			table.WithLawDelimiter(cfg.Table.LawDelimiter)),
		format: format,
		log:    log,
	}, nil
}

// Translator returns the translator the Converter uses.
func (c *Converter) Translator() *latex.Translator {
	return c.translator
}

// Statement converts a single statement.
func (c *Converter) Statement(text string, opts StatementOptions) (string, error) {
	var out string
	switch {
	case opts.Law != "":
		out = c.assembler.FormatRow(text, opts.Law)
	case opts.Row:
		out = c.assembler.FormatRow(text, types.NoLaw)
	default:
		out = strings.TrimRightFunc(c.translator.Translate(text), unicode.IsSpace)
		if c.format == types.FormatHTML {
			out = "$" + out + "$\n"
		}
	}
	return c.finish(out)
}

// Table assembles lines into a Markdown table.
func (c *Converter) Table(lines []string) (string, error) {
	rows := c.assembler.Build(lines)
	c.log.Debug("assembled table",
		zap.Int("lines", len(lines)),
		zap.Int("rows", len(rows)-len(table.Header())))
	return c.finish(strings.Join(rows, ""))
}

// File reads the statement file at path and assembles it into a table.
func (c *Converter) File(path string) (string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return "", err
	}
	c.log.Debug("read input", zap.String("path", path), zap.Int("lines", len(lines)))
	return c.Table(lines)
}

func (c *Converter) finish(markdown string) (string, error) {
	if c.format != types.FormatHTML {
		return markdown, nil
	}
	return render.HTML(markdown)
}
