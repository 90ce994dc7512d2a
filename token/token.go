package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	EOF Kind = iota

	// Single-character tokens.
	LEFTPAREN
	RIGHTPAREN
	LEFTBRACE
	RIGHTBRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two character tokens.
	BANG
	BANGEQUAL
	EQUAL
	EQUALEQUAL
	GREATER
	GREATEREQUAL
	LESS
	LESSEQUAL

	// Literals and identifiers.
	IDENT
	STRING
	NUMBER

	// Keywords.
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	LAMBDA
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE
)

// Token is one classified lexical unit. Lexeme is the exact source
// substring consumed to recognize it; for EOF it is empty. Literal is nil
// for every kind that carries no value.
type Token struct {
	Kind    Kind
	Lexeme  string
	Line    int
	Literal Literal
}

// EndOfInput returns the synthetic terminal token for the given line.
func EndOfInput(line int) Token {
	return Token{Kind: EOF, Lexeme: "", Line: line, Literal: nil}
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d, %v}", t.Kind, t.Lexeme, t.Line, t.Literal)
}

func (t Token) Pretty() string {
	if t.Literal != nil {
		return fmt.Sprintf("%s.%v", t.Lexeme, t.Literal)
	}
	return t.Lexeme
}
