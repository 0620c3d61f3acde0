// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lazytex/internal/convert"
)

var tableCmd = &cobra.Command{
	Use:   "table <file>",
	Short: "Convert a file of statements into a Markdown table",
	Long: `Table reads one statement per line, optionally followed by "# " and the
law that justifies it, and produces a Markdown table of the statements in
LaTeX next to their laws. Lines up to and including a "# START" line are
ignored.

	# START
	(p > q) and (q > r)  # hypothetical syllogism premise
	[(p > q) and (q > r)] > (p > r) == t

Without --write, --append or --print the table is copied to the clipboard.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: table takes exactly one input file, got %d", ErrUsage, len(args))
		}
		return nil
	},
	RunE: runTable,
}

func init() {
	tableCmd.Flags().String("start-marker", "", `line after which the table starts (default "# START")`)
	tableCmd.Flags().String("law-delimiter", "", `text separating a statement from its law (default "# ")`)
	addOutputFlags(tableCmd)

	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	conv, err := convert.New(cfg, logger)
	if err != nil {
		return err
	}

	// The input is read in full before any destination is touched.
	result, err := conv.File(args[0])
	if err != nil {
		return err
	}

	return deliver(cmd, cfg.Output, result, "Table")
}
