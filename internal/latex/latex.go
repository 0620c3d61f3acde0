// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex translates plaintext propositional-logic statements into
// LaTeX by literal token substitution.
//
// The translation performs no parsing. Tokens are replaced wherever their
// characters appear, including inside variable names: with the default
// vocabulary a variable named "cat" becomes "\mathbf{c}a\mathbf{t}".
package latex

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyVocabulary = errors.New("vocabulary has no operators")
	ErrEmptyToken      = errors.New("operator token is empty")
	ErrDuplicateToken  = errors.New("operator token is defined twice")
)

// Operator maps one plaintext token to its LaTeX rendering.
type Operator struct {
	Token string `json:"token" yaml:"token" toml:"token"`
	LaTeX string `json:"latex" yaml:"latex" toml:"latex"`
}

// Vocabulary is an ordered list of operators. When two tokens match at the
// same position, the one listed first wins.
type Vocabulary []Operator

// DefaultVocabulary returns the built-in operator table. The truth constant
// comes before implication because \to contains a t.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		{Token: "t", LaTeX: `\mathbf{t}`},
		{Token: "c", LaTeX: `\mathbf{c}`},
		{Token: ">", LaTeX: `\to`},
		{Token: "and", LaTeX: `\ \land \`},
		{Token: "or", LaTeX: `\ \lor \`},
		{Token: "-", LaTeX: `\sim `},
		{Token: "==", LaTeX: `\ \equiv \`},
		{Token: "<->", LaTeX: `\leftrightarrow`},
	}
}

// Validate reports whether v can drive a Translator.
func (v Vocabulary) Validate() error {
	if len(v) == 0 {
		return ErrEmptyVocabulary
	}
	seen := make(map[string]bool, len(v))
	for i, op := range v {
		if op.Token == "" {
			return fmt.Errorf("operator %d: %w", i+1, ErrEmptyToken)
		}
		if seen[op.Token] {
			return fmt.Errorf("operator %d (%q): %w", i+1, op.Token, ErrDuplicateToken)
		}
		seen[op.Token] = true
	}
	return nil
}

// Translator rewrites statements with a fixed vocabulary. It is safe for
// concurrent use and holds no state beyond the vocabulary.
type Translator struct {
	vocab    Vocabulary
	replacer *strings.Replacer
}

// NewTranslator builds a Translator for v.
func NewTranslator(v Vocabulary) (*Translator, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	vocab := make(Vocabulary, len(v))
	copy(vocab, v)

	pairs := make([]string, 0, 2*len(vocab))
	for _, op := range vocab {
		pairs = append(pairs, op.Token, op.LaTeX)
	}
	return &Translator{vocab: vocab, replacer: strings.NewReplacer(pairs...)}, nil
}

// Translate returns statement with every operator token replaced by its
// LaTeX rendering. The input is scanned once from left to right and
// replacement text is never rescanned, so the output of one operator cannot
// be matched by a later one. Text without tokens is returned unchanged.
func (t *Translator) Translate(statement string) string {
	return t.replacer.Replace(statement)
}

// Vocabulary returns a copy of the operators t translates.
func (t *Translator) Vocabulary() Vocabulary {
	out := make(Vocabulary, len(t.vocab))
	copy(out, t.vocab)
	return out
}

var defaultTranslator = mustTranslator(DefaultVocabulary())

func mustTranslator(v Vocabulary) *Translator {
	t, err := NewTranslator(v)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the Translator for the built-in vocabulary.
func Default() *Translator {
	return defaultTranslator
}

// Translate translates statement with the built-in vocabulary.
func Translate(statement string) string {
	return defaultTranslator.Translate(statement)
}
