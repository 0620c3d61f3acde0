// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

const (
	// DefaultStartMarker is the line that separates an ignorable preamble
	// from the statements to tabulate.
	DefaultStartMarker = "# START"

	// DefaultLawDelimiter separates a statement from its law on one line.
	DefaultLawDelimiter = "# "
)

// OutputMode selects where a conversion result is delivered.
type OutputMode string

const (
	OutputClipboard OutputMode = "clipboard"
	OutputWrite     OutputMode = "write"
	OutputAppend    OutputMode = "append"
	OutputPrint     OutputMode = "print"
)

// OutputFormat selects the rendering of the conversion result.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
)

// TableConfig holds the line-splitting settings of the table assembler.
type TableConfig struct {
	// StartMarker is the exact line after which tabulation begins (default "# START").
	StartMarker string `json:"start_marker" yaml:"start_marker"`

	// LawDelimiter separates the statement from its law (default "# ").
	LawDelimiter string `json:"law_delimiter" yaml:"law_delimiter"`
}

// OutputConfig holds settings for delivering a conversion result.
type OutputConfig struct {
	// Mode selects the destination: clipboard, write, append, or print.
	Mode OutputMode `json:"mode" yaml:"mode"`

	// Path is the destination file for the write and append modes.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Format selects markdown or html output.
	Format OutputFormat `json:"format" yaml:"format"`
}

// Config groups all settings for one lazytex invocation.
type Config struct {
	// VocabularyPath is an optional YAML or TOML file with a variant operator
	// vocabulary. Empty means the built-in vocabulary.
	VocabularyPath string `json:"vocabulary,omitempty" yaml:"vocabulary,omitempty"`

	Table  TableConfig  `json:"table" yaml:"table"`
	Output OutputConfig `json:"output" yaml:"output"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Table: TableConfig{
			StartMarker:  DefaultStartMarker,
			LawDelimiter: DefaultLawDelimiter,
		},
		Output: OutputConfig{
			Mode:   OutputClipboard,
			Format: FormatMarkdown,
		},
	}
}
