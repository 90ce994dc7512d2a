package driver

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/skink-lang/skink/lexer"
	"github.com/skink-lang/skink/token"
)

// Pass is one stage of the pipeline run over the token stream after
// scanning succeeds.
type Pass interface {
	Run([]token.Token) error
}

// Runner scans source text and feeds the resulting token stream through its
// passes. Scan diagnostics go to errOut, one "[line N] message" per error.
type Runner struct {
	passes []Pass
	errOut io.Writer
}

func NewRunner() *Runner {
	return &Runner{errOut: os.Stderr}
}

// SetErrOutput redirects scan diagnostics, which default to stderr.
func (r *Runner) SetErrOutput(w io.Writer) {
	r.errOut = w
}

// AddPass adds a pass to the end of the pass list.
func (r *Runner) AddPass(pass Pass) {
	r.passes = append(r.passes, pass)
}

// GetTokens runs one scanner to completion over source. When the scanner
// recorded any errors, each is reported to the diagnostics sink, the token
// stream is withheld, and the errors are returned joined; otherwise the
// full stream, terminated by its EOF token, is returned.
func (r *Runner) GetTokens(source string) ([]token.Token, error) {
	tokens, scanErrs := lexer.Lex(source)
	if len(scanErrs) > 0 {
		errs := make([]error, len(scanErrs))
		for i, scanErr := range scanErrs {
			fmt.Fprintln(r.errOut, scanErr)
			errs[i] = scanErr
		}

		return nil, errors.Join(errs...)
	}

	return tokens, nil
}

// RunSource scans the source code and executes passes in order.
// If a pass fails, execution stops and the error is returned.
func (r *Runner) RunSource(source string) error {
	tokens, err := r.GetTokens(source)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	for _, pass := range r.passes {
		if err := pass.Run(tokens); err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}

	return nil
}
