// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lazytex/internal/output"
	"github.com/pdiddy/lazytex/pkg/types"
)

// deliver sends result to the configured destination and reports where it
// went on stderr.
func deliver(cmd *cobra.Command, cfg types.OutputConfig, result, what string) error {
	prompter := output.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
	dest, err := output.New(cfg, prompter, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}
	if err := dest.Deliver(result); err != nil {
		return err
	}

	switch cfg.Mode {
	case types.OutputWrite:
		fmt.Fprintf(cmd.ErrOrStderr(), "%s written to %s\n", what, cfg.Path)
	case types.OutputAppend:
		fmt.Fprintf(cmd.ErrOrStderr(), "%s appended to %s\n", what, cfg.Path)
	case types.OutputClipboard:
		fmt.Fprintf(cmd.ErrOrStderr(), "%s copied to clipboard\n", what)
	}
	return nil
}
