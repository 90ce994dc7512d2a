// Package interp holds the tree-walking interpreter. Until the parser and
// evaluator land, it is a stub pass that echoes the scanned token stream.
package interp

import (
	"fmt"
	"io"

	"github.com/skink-lang/skink/token"
)

type Interpreter struct {
	out io.Writer
}

func New(out io.Writer) *Interpreter {
	return &Interpreter{out: out}
}

// Run prints each token on its own line.
func (i *Interpreter) Run(tokens []token.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(i.out, tok); err != nil {
			return fmt.Errorf("interp: %w", err)
		}
	}

	return nil
}
