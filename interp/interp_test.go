package interp_test

import (
	"bytes"
	"testing"

	"github.com/skink-lang/skink/interp"
	"github.com/skink-lang/skink/token"
)

func TestRunEchoesTokens(t *testing.T) {
	t.Parallel()

	tokens := []token.Token{
		{Kind: token.IDENT, Lexeme: "x", Line: 1, Literal: token.Ident("x")},
		token.EndOfInput(1),
	}

	var out bytes.Buffer
	if err := interp.New(&out).Run(tokens); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	expected := "{IDENT, \"x\", 1, x}\n{EOF, \"\", 1, <nil>}\n"
	if out.String() != expected {
		t.Errorf("Run wrote %q, expected %q", out.String(), expected)
	}
}
