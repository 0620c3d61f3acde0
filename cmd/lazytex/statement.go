// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lazytex/internal/convert"
)

var statementCmd = &cobra.Command{
	Use:   "statement <text...>",
	Short: "Convert a single statement to LaTeX",
	Long: `Statement converts one statement to LaTeX. Multiple arguments are joined
with spaces, so quoting is only needed for characters the shell interprets
(such as > and <->). Put "--" before a statement that starts with a negation.

With --row or --law the statement is rendered as a Markdown table row, ready
to append to an existing table with --append.`,
	Example: `  lazytex statement -p "p and -q or c > t"
  lazytex statement --law "De Morgan" -a proof.md -- "-p or -q"`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("%w: statement needs the text to convert", ErrUsage)
		}
		return nil
	},
	RunE: runStatement,
}

func init() {
	statementCmd.Flags().Bool("row", false, "render the statement as a table row")
	statementCmd.Flags().String("law", "", "law that justifies the statement (implies --row)")
	addOutputFlags(statementCmd)

	rootCmd.AddCommand(statementCmd)
}

func runStatement(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	conv, err := convert.New(cfg, logger)
	if err != nil {
		return err
	}

	row, _ := cmd.Flags().GetBool("row")
	law, _ := cmd.Flags().GetString("law")
	result, err := conv.Statement(strings.Join(args, " "), convert.StatementOptions{Row: row, Law: law})
	if err != nil {
		return err
	}

	return deliver(cmd, cfg.Output, result, "Statement")
}
