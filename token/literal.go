package token

import (
	"fmt"
	"strconv"
)

// Literal is the payload attached to a literal-bearing token: the name of
// an identifier, the contents of a string, or a numeric value. Exactly one
// of the implementations below applies per token.
type Literal interface {
	fmt.Stringer
	literal()
}

type Ident string

func (i Ident) String() string {
	return string(i)
}

func (Ident) literal() {}

var _ Literal = Ident("")

type Str string

func (s Str) String() string {
	return string(s)
}

func (Str) literal() {}

var _ Literal = Str("")

type Num float64

func (n Num) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (Num) literal() {}

var _ Literal = Num(0)
