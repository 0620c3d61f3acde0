// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNoResponse = errors.New("no answer to overwrite prompt")

// Prompter asks the user to confirm overwriting an existing file.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter that reads answers from in and writes
// prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm warns that path exists and asks until the answer is y or n, in
// either case. Any other answer repeats the question.
func (p *Prompter) Confirm(path string) (bool, error) {
	fmt.Fprintf(p.out, "Warning: file '%s' already exists.\n", path)
	for {
		fmt.Fprint(p.out, "Continue and overwrite? [y/n] ")
		line, err := p.in.ReadString('\n')
		switch strings.TrimSpace(line) {
		case "y", "Y":
			return true, nil
		case "n", "N":
			return false, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, ErrNoResponse
			}
			return false, fmt.Errorf("reading answer: %w", err)
		}
	}
}
