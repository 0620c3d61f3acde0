// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lazytex/internal/convert"
)

var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "List the operator vocabulary in substitution order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		conv, err := convert.New(cfg, logger)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "| Token | LaTeX |")
		fmt.Fprintln(w, "| :--- | :--- |")
		for _, op := range conv.Translator().Vocabulary() {
			fmt.Fprintf(w, "| `%s` | `%s` |\n", escapeCell(op.Token), escapeCell(op.LaTeX))
		}
		return nil
	},
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func init() {
	rootCmd.AddCommand(operatorsCmd)
}
