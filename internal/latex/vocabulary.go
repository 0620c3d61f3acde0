// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

var ErrUnsupportedVocabularyFormat = errors.New("unsupported vocabulary file format")

// VocabularyFile is the on-disk form of a variant vocabulary.
//
//	operators:
//	  - token: "=>"
//	    latex: '\Rightarrow'
type VocabularyFile struct {
	Operators Vocabulary `yaml:"operators" toml:"operators"`
}

// LoadVocabulary reads a vocabulary from a YAML (.yaml, .yml) or TOML
// (.toml) file and validates it. Operator order in the file is preserved.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary: %w", err)
	}

	var vf VocabularyFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &vf)
	case ".toml":
		err = toml.Unmarshal(data, &vf)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVocabularyFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing vocabulary %s: %w", filepath.Base(path), err)
	}

	if err := vf.Operators.Validate(); err != nil {
		return nil, fmt.Errorf("vocabulary %s: %w", filepath.Base(path), err)
	}
	return vf.Operators, nil
}

// LoadTranslator returns the default Translator when path is empty and a
// Translator for the vocabulary in path otherwise.
func LoadTranslator(path string) (*Translator, error) {
	if path == "" {
		return Default(), nil
	}
	v, err := LoadVocabulary(path)
	if err != nil {
		return nil, err
	}
	return NewTranslator(v)
}
