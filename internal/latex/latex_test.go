// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"t", `\mathbf{t}`},
		{"c", `\mathbf{c}`},
		{">", `\to`},
		{"and", `\ \land \`},
		{"or", `\ \lor \`},
		{"-", `\sim `},
		{"==", `\ \equiv \`},
		{"<->", `\leftrightarrow`},
		{"p > q", `p \to q`},
		{"p and q", `p \ \land \ q`},
		{"p or q", `p \ \lor \ q`},
		{"-p", `\sim p`},
		{"p == q", `p \ \equiv \ q`},
		{"p <-> q", `p \leftrightarrow q`},
		{"p and -q or c > t", `p \ \land \ \sim q \ \lor \ \mathbf{c} \to \mathbf{t}`},
		{"[(p > q) and (q > r)] > (p > r) == t",
			`[(p \to q) \ \land \ (q \to r)] \to (p \to r) \ \equiv \ \mathbf{t}`},
		{"", ""},
		{"   ", "   "},
		{"hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.in))
		})
	}
}

func TestTranslate_ReplacementTextIsNotRescanned(t *testing.T) {
	// \to, \mathbf and \leftrightarrow all contain a t.
	assert.Equal(t, `\to\to`, Translate(">>"))
	assert.Equal(t, `\mathbf{t}\mathbf{c}`, Translate("tc"))
	assert.NotContains(t, Translate("<->"), `\sim`)
}

func TestTranslate_TokensInsideNames(t *testing.T) {
	// Substitution is textual; identifiers that contain tokens are rewritten too.
	assert.Equal(t, `\mathbf{c}a\mathbf{t}`, Translate("cat"))
	assert.Equal(t, `w\ \lor \d`, Translate("word"))
	assert.Equal(t, `b\ \land \`, Translate("band"))
}

func TestTranslate_Deterministic(t *testing.T) {
	in := "-(p and q) == -p or -q"
	first := Translate(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Translate(in))
	}
}

func TestNewTranslator_OrderBreaksTies(t *testing.T) {
	short := Vocabulary{{Token: "-", LaTeX: "NEG"}, {Token: "->", LaTeX: "IMP"}}
	long := Vocabulary{{Token: "->", LaTeX: "IMP"}, {Token: "-", LaTeX: "NEG"}}

	ts, err := NewTranslator(short)
	require.NoError(t, err)
	tl, err := NewTranslator(long)
	require.NoError(t, err)

	assert.Equal(t, "pNEG>q", ts.Translate("p->q"))
	assert.Equal(t, "pIMPq", tl.Translate("p->q"))
}

func TestNewTranslator_CopiesVocabulary(t *testing.T) {
	v := Vocabulary{{Token: "&", LaTeX: `\land`}}
	tr, err := NewTranslator(v)
	require.NoError(t, err)

	v[0].LaTeX = "changed"
	assert.Equal(t, `p \land q`, tr.Translate("p & q"))

	got := tr.Vocabulary()
	got[0].Token = "|"
	assert.Equal(t, "&", tr.Vocabulary()[0].Token)
}

func TestVocabularyValidate(t *testing.T) {
	tests := []struct {
		name    string
		vocab   Vocabulary
		wantErr error
	}{
		{name: "default", vocab: DefaultVocabulary()},
		{name: "empty", vocab: Vocabulary{}, wantErr: ErrEmptyVocabulary},
		{name: "empty token", vocab: Vocabulary{{Token: "", LaTeX: "x"}}, wantErr: ErrEmptyToken},
		{
			name:    "duplicate token",
			vocab:   Vocabulary{{Token: "and", LaTeX: "a"}, {Token: "and", LaTeX: "b"}},
			wantErr: ErrDuplicateToken,
		},
		{name: "empty replacement is allowed", vocab: Vocabulary{{Token: "!", LaTeX: ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.vocab.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewTranslator_RejectsInvalid(t *testing.T) {
	_, err := NewTranslator(nil)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, DefaultVocabulary(), Default().Vocabulary())
}
