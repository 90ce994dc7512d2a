// Package lexer turns skink source text into a flat token stream.
//
// The scan is a single left-to-right pass with one character of lookahead.
// Unrecognized input never aborts the pass: each offending character is
// recorded as an Error and scanning resumes at the next one, so a caller
// always receives both the full token stream and the full error list.
package lexer

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/skink-lang/skink/token"
)

// Error is one recoverable scan failure. It is plain data, independent of
// the source buffer.
type Error struct {
	Message string
	Line    int
}

func (e Error) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

// Lex scans source and returns every token and every error recorded along
// the way. The token stream is never empty: it always ends with exactly one
// EOF token stamped with the line that was current when input ran out.
func Lex(source string) ([]token.Token, []Error) {
	lexer := lexer{
		source:  source,
		tokens:  []token.Token{},
		start:   0,
		current: 0,
		line:    1,
	}

	for !lexer.isAtEnd() {
		lexer.start = lexer.current
		lexer.startLine = lexer.line
		lexer.scanToken()
	}

	lexer.tokens = append(lexer.tokens, token.EndOfInput(lexer.line))

	return lexer.tokens, lexer.errors
}

type lexer struct {
	source string
	tokens []token.Token
	errors []Error

	start     int // start of current lexeme
	current   int // current position in source
	line      int // current line number
	startLine int // line of the current lexeme's first character
}

func (l *lexer) scanToken() {
	char := l.advance()
	switch char {
	case '(':
		l.addToken(token.LEFTPAREN, nil)
	case ')':
		l.addToken(token.RIGHTPAREN, nil)
	case '{':
		l.addToken(token.LEFTBRACE, nil)
	case '}':
		l.addToken(token.RIGHTBRACE, nil)
	case ',':
		l.addToken(token.COMMA, nil)
	case '.':
		l.addToken(token.DOT, nil)
	case '-':
		l.addToken(token.MINUS, nil)
	case '+':
		l.addToken(token.PLUS, nil)
	case ';':
		l.addToken(token.SEMICOLON, nil)
	case '*':
		l.addToken(token.STAR, nil)
	case '!':
		if l.match('=') {
			l.addToken(token.BANGEQUAL, nil)
		} else {
			l.addToken(token.BANG, nil)
		}
	case '=':
		if l.match('=') {
			l.addToken(token.EQUALEQUAL, nil)
		} else {
			l.addToken(token.EQUAL, nil)
		}
	case '<':
		if l.match('=') {
			l.addToken(token.LESSEQUAL, nil)
		} else {
			l.addToken(token.LESS, nil)
		}
	case '>':
		if l.match('=') {
			l.addToken(token.GREATEREQUAL, nil)
		} else {
			l.addToken(token.GREATER, nil)
		}
	case '/':
		if l.match('/') {
			// A comment runs to the end of the line.
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.addToken(token.SLASH, nil)
		}
	case ' ', '\r', '\t':
		// ignore whitespace
	case '\n':
		l.line++
	case '"':
		l.string()
	default:
		if isDigit(char) {
			l.number()
		} else if isAlpha(char) {
			l.identifier()
		} else {
			l.errors = append(l.errors, Error{Message: "Unexpected character", Line: l.line})
		}
	}
}

func (l *lexer) string() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.errors = append(l.errors, Error{Message: "Unterminated string", Line: l.line})

		return
	}

	// The closing quote.
	l.advance()

	value := l.source[l.start+1 : l.current-1]
	l.addToken(token.STRING, token.Str(value))
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	// A fractional part needs a digit after the dot, otherwise the dot is
	// left for the next lexeme.
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	value, err := strconv.ParseFloat(l.source[l.start:l.current], 64)
	if err != nil {
		l.errors = append(l.errors, Error{Message: "Invalid number", Line: l.line})

		return
	}
	l.addToken(token.NUMBER, token.Num(value))
}

func (l *lexer) identifier() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}

	text := l.source[l.start:l.current]
	if kind, ok := keywords[text]; ok {
		l.addToken(kind, nil)
	} else {
		l.addToken(token.IDENT, token.Ident(text))
	}
}

var keywords = map[string]token.Kind{
	"and":    token.AND,
	"class":  token.CLASS,
	"else":   token.ELSE,
	"false":  token.FALSE,
	"fun":    token.FUN,
	"for":    token.FOR,
	"if":     token.IF,
	"lambda": token.LAMBDA,
	"nil":    token.NIL,
	"or":     token.OR,
	"print":  token.PRINT,
	"return": token.RETURN,
	"super":  token.SUPER,
	"this":   token.THIS,
	"true":   token.TRUE,
	"var":    token.VAR,
	"while":  token.WHILE,
}

// addToken emits the lexeme between start and current, stamped with the
// line of its first character (a string literal may have advanced the line
// counter past it).
func (l *lexer) addToken(kind token.Kind, literal token.Literal) {
	text := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: text, Line: l.startLine, Literal: literal})
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current:])

	return runeValue
}

func (l lexer) peekNext() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	_, width := utf8.DecodeRuneInString(l.source[l.current:])
	if l.current+width >= len(l.source) {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current+width:])

	return runeValue
}

func (l *lexer) advance() rune {
	runeValue, width := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += width

	return runeValue
}

// match consumes the next character only if it equals expected. At end of
// input it reports false instead of reading past the buffer.
func (l *lexer) match(expected rune) bool {
	if l.isAtEnd() {
		return false
	}
	runeValue, width := utf8.DecodeRuneInString(l.source[l.current:])
	if runeValue != expected {
		return false
	}
	l.current += width

	return true
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
