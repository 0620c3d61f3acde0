// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the lazytex packages:
// table rows and invocation settings.
package types

// NoLaw is the law value of a row whose input line carried no justification.
// It is also what the row shows in its law cell.
const NoLaw = "---"

// Row pairs one statement with the law that justifies it.
type Row struct {
	// Statement is the plaintext logical statement, before translation.
	Statement string `json:"statement" yaml:"statement"`

	// Law is the free-text justification, or NoLaw when the line had none.
	Law string `json:"law" yaml:"law"`
}

// HasLaw reports whether the row carries an explicit justification.
func (r Row) HasLaw() bool {
	return r.Law != NoLaw
}
