// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/lazytex/pkg/types"
)

var (
	ErrUsage  = errors.New("invalid usage")
	ErrConfig = errors.New("invalid configuration")
)

// addOutputFlags registers the destination and format flags shared by the
// conversion commands.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("write", "w", "", "write the result to this file, asking before overwriting")
	cmd.Flags().StringP("append", "a", "", "append the result to this existing file")
	cmd.Flags().BoolP("print", "p", false, "print the result to stdout")
	cmd.Flags().String("format", "", "output format: markdown or html (default markdown)")
	cmd.MarkFlagsMutuallyExclusive("write", "append", "print")
}

// loadConfig resolves the invocation settings from flags, the environment,
// the config file and the built-in defaults, in that order.
func loadConfig(fs *pflag.FlagSet) (types.Config, error) {
	cfg := types.DefaultConfig()
	cfg.VocabularyPath = viper.GetString("vocabulary")
	cfg.Table.StartMarker = setting(fs, "start-marker", "table.start_marker")
	cfg.Table.LawDelimiter = setting(fs, "law-delimiter", "table.law_delimiter")
	cfg.Output.Format = types.OutputFormat(setting(fs, "format", "output.format"))

	out, err := outputFromFlags(fs)
	if err != nil {
		return cfg, err
	}
	cfg.Output.Mode = out.Mode
	cfg.Output.Path = out.Path
	return cfg, nil
}

// setting returns the value of flag when it was set on the command line and
// the viper value for key otherwise.
func setting(fs *pflag.FlagSet, flag, key string) string {
	if f := fs.Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	return viper.GetString(key)
}

func outputFromFlags(fs *pflag.FlagSet) (types.OutputConfig, error) {
	write, _ := fs.GetString("write")
	appendTo, _ := fs.GetString("append")
	printOut, _ := fs.GetBool("print")

	switch {
	case fs.Changed("write"):
		if write == "" {
			return types.OutputConfig{}, fmt.Errorf("%w: --write needs a file name", ErrUsage)
		}
		return types.OutputConfig{Mode: types.OutputWrite, Path: write}, nil
	case fs.Changed("append"):
		if appendTo == "" {
			return types.OutputConfig{}, fmt.Errorf("%w: --append needs a file name", ErrUsage)
		}
		return types.OutputConfig{Mode: types.OutputAppend, Path: appendTo}, nil
	case printOut:
		return types.OutputConfig{Mode: types.OutputPrint}, nil
	default:
		return types.OutputConfig{Mode: types.OutputClipboard}, nil
	}
}
