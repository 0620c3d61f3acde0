// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lazytex CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/lazytex/internal/output"
	"github.com/pdiddy/lazytex/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is replaced in PersistentPreRunE once --verbose is known.
var logger = zap.NewNop()

// configErr holds a failure to read an explicitly requested config file.
var configErr error

// rootCmd is the base command for the lazytex CLI.
var rootCmd = &cobra.Command{
	Use:   "lazytex",
	Short: "Convert plaintext logic statements to LaTeX",
	Long: `lazytex converts propositional-logic statements written in a small
plaintext notation into LaTeX, and turns files of statements into Markdown
tables that pair each statement with the law that justifies it.

Operators: t and c (truth and contradiction), > (implication), and, or,
- (negation), == (equivalence) and <-> (biconditional).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		l, err := newLogger(viper.GetBool("verbose"))
		if err != nil {
			return err
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", zap.String("path", f))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./lazytex.yaml or ~/.config/lazytex/config.yaml)")
	rootCmd.PersistentFlags().String("vocabulary", "", "YAML or TOML file with a variant operator vocabulary")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log conversion details to stderr")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})
}

func initConfig() {
	configErr = nil
	viper.Reset()

	_ = viper.BindPFlag("vocabulary", rootCmd.PersistentFlags().Lookup("vocabulary"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetDefault("table.start_marker", types.DefaultStartMarker)
	viper.SetDefault("table.law_delimiter", types.DefaultLawDelimiter)
	viper.SetDefault("output.format", string(types.FormatMarkdown))

	// A .env file is optional; variables may come from the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: could not load .env:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lazytex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lazytex"))
		}
	}

	viper.SetEnvPrefix("LAZYTEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}
}

func main() {
	err := rootCmd.Execute()
	switch {
	case errors.Is(err, output.ErrAborted):
		fmt.Fprintln(os.Stdout, "Exiting...")
	case err != nil:
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	_ = logger.Sync()
	os.Exit(exitCodeFor(err))
}
