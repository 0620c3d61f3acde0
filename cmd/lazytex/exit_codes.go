// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"os"

	"github.com/pdiddy/lazytex/internal/convert"
	"github.com/pdiddy/lazytex/internal/latex"
	"github.com/pdiddy/lazytex/internal/output"
)

// Exit codes follow Unix conventions: 0 success, 1 general, 2 usage.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2 // Invalid arguments, flags, config or vocabulary
	ExitIO      = 3 // Input or destination file problems, clipboard unavailable
)

// exitCodeFor maps an error returned by a command to the process exit code.
// Declining to overwrite is a normal exit.
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, output.ErrAborted) {
		return ExitSuccess
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrConfig) ||
		errors.Is(err, convert.ErrUnknownFormat) ||
		errors.Is(err, latex.ErrEmptyVocabulary) ||
		errors.Is(err, latex.ErrEmptyToken) ||
		errors.Is(err, latex.ErrDuplicateToken) ||
		errors.Is(err, latex.ErrUnsupportedVocabularyFormat) ||
		errors.Is(err, output.ErrNoPath) ||
		errors.Is(err, output.ErrUnknownMode) {
		return ExitUsage
	}

	if errors.Is(err, convert.ErrInputNotFound) ||
		errors.Is(err, convert.ErrInputUnreadable) ||
		errors.Is(err, output.ErrDestinationMissing) ||
		errors.Is(err, output.ErrWriteFailed) ||
		errors.Is(err, output.ErrClipboardUnavailable) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
