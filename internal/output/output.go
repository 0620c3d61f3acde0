// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output delivers conversion results: to a file (overwrite or
// append), to the system clipboard, or to a writer.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/pdiddy/lazytex/pkg/types"
)

var (
	ErrAborted              = errors.New("overwrite declined")
	ErrDestinationMissing   = errors.New("destination file not found")
	ErrWriteFailed          = errors.New("could not write destination file")
	ErrClipboardUnavailable = errors.New("clipboard is not available")
	ErrNoPath               = errors.New("destination path is required")
	ErrUnknownMode          = errors.New("unknown output mode")
)

// Destination receives the text produced by one conversion.
type Destination interface {
	Deliver(content string) error
}

// Confirmer decides whether an existing file may be overwritten.
type Confirmer interface {
	Confirm(path string) (bool, error)
}

// FileWriter writes content to Path, replacing any existing file after
// confirmation.
type FileWriter struct {
	Path    string
	Confirm Confirmer
	Log     *zap.Logger
}

// Deliver writes content through a temporary file in the destination
// directory so that a failed write never leaves a partial file behind.
func (w *FileWriter) Deliver(content string) error {
	if _, err := os.Stat(w.Path); err == nil {
		ok, err := w.Confirm.Confirm(w.Path)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(w.Path), "."+filepath.Base(w.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: '%s': %w", ErrWriteFailed, w.Path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.WriteString(tmp, content); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: '%s': %w", ErrWriteFailed, w.Path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: '%s': %w", ErrWriteFailed, w.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: '%s': %w", ErrWriteFailed, w.Path, err)
	}
	if err := os.Rename(tmp.Name(), w.Path); err != nil {
		return fmt.Errorf("%w: '%s': %w", ErrWriteFailed, w.Path, err)
	}

	logger(w.Log).Debug("wrote file", zap.String("path", w.Path), zap.Int("bytes", len(content)))
	return nil
}

// FileAppender appends content to an existing file at Path.
type FileAppender struct {
	Path string
	Log  *zap.Logger
}

// Deliver appends a newline and content. The file must already exist.
func (a *FileAppender) Deliver(content string) error {
	f, err := os.OpenFile(a.Path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: '%s'", ErrDestinationMissing, a.Path)
		}
		return fmt.Errorf("%w: '%s': %w", ErrWriteFailed, a.Path, err)
	}

	if _, err := io.WriteString(f, "\n"+content); err != nil {
		f.Close()
		return fmt.Errorf("%w: '%s': %w", ErrWriteFailed, a.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: '%s': %w", ErrWriteFailed, a.Path, err)
	}

	logger(a.Log).Debug("appended to file", zap.String("path", a.Path), zap.Int("bytes", len(content)))
	return nil
}

// Clipboard copies content to the system clipboard.
type Clipboard struct {
	// Write replaces the clipboard contents. Nil uses the system clipboard.
	Write func(text string) error
	Log   *zap.Logger
}

// Deliver copies content to the clipboard.
func (c *Clipboard) Deliver(content string) error {
	write := c.Write
	if write == nil {
		if clipboard.Unsupported {
			return ErrClipboardUnavailable
		}
		write = clipboard.WriteAll
	}
	if err := write(content); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}
	logger(c.Log).Debug("copied to clipboard", zap.Int("bytes", len(content)))
	return nil
}

// Printer writes content to W.
type Printer struct {
	W io.Writer
}

// Deliver writes content unchanged.
func (p *Printer) Deliver(content string) error {
	_, err := io.WriteString(p.W, content)
	return err
}

// New returns the Destination for cfg. confirm is used only by the write
// mode and stdout only by the print mode.
func New(cfg types.OutputConfig, confirm Confirmer, stdout io.Writer, log *zap.Logger) (Destination, error) {
	switch cfg.Mode {
	case types.OutputClipboard, "":
		return &Clipboard{Log: log}, nil
	case types.OutputPrint:
		return &Printer{W: stdout}, nil
	case types.OutputWrite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("%w for mode %q", ErrNoPath, cfg.Mode)
		}
		return &FileWriter{Path: cfg.Path, Confirm: confirm, Log: log}, nil
	case types.OutputAppend:
		if cfg.Path == "" {
			return nil, fmt.Errorf("%w for mode %q", ErrNoPath, cfg.Mode)
		}
		return &FileAppender{Path: cfg.Path, Log: log}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, cfg.Mode)
	}
}

func logger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
