package lexer

import (
	"unicode"

	"cod/internal/token"
)

// Lexer produces tokens from source one at a time
type Lexer struct {
	source  []rune
	start   int
	current int
}

// New creates a lexer positioned at the beginning of source
func New(source string) *Lexer {
	return &Lexer{
		source: []rune(source),
	}
}

// NextToken scans and returns the next token. Once the input is
// exhausted every call returns an EOF token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	l.start = l.current

	if l.isAtEnd() {
		return token.Token{Type: token.EOF}
	}

	c := l.advance()
	switch c {
	case '(':
		return l.emit(token.LPAREN)
	case ')':
		return l.emit(token.RPAREN)
	case '{':
		return l.emit(token.LBRACE)
	case '}':
		return l.emit(token.RBRACE)
	case ',':
		return l.emit(token.COMMA)
	case ';':
		return l.emit(token.SEMICOLON)
	case '+':
		return l.emit(token.PLUS)
	case '-':
		return l.emit(token.MINUS)
	case '*':
		return l.emit(token.ASTERISK)
	case '/':
		return l.emit(token.SLASH)
	case '!':
		if l.match('=') {
			return l.emit(token.NOT_EQ)
		}
		return l.emit(token.BANG)
	case '=':
		if l.match('=') {
			return l.emit(token.EQ)
		}
		return l.emit(token.ASSIGN)
	case '<':
		if l.match('=') {
			return l.emit(token.LTE)
		}
		return l.emit(token.LT)
	case '>':
		if l.match('=') {
			return l.emit(token.GTE)
		}
		return l.emit(token.GT)
	case '&':
		if l.match('&') {
			return l.emit(token.AND)
		}
		return l.emit(token.ILLEGAL)
	case '|':
		if l.match('|') {
			return l.emit(token.OR)
		}
		return l.emit(token.ILLEGAL)
	case '"':
		return l.string()
	}

	if isDigit(c) {
		return l.number()
	}
	if isAlpha(c) {
		return l.identifier()
	}
	return l.emit(token.ILLEGAL)
}

func (l *Lexer) string() token.Token {
	for !l.isAtEnd() && l.peek() != '"' {
		l.advance()
	}

	if l.isAtEnd() {
		return l.emit(token.ILLEGAL)
	}

	literal := string(l.source[l.start+1 : l.current])

	// Consume ending "
	l.advance()

	return token.Token{Type: token.STRING, Literal: literal}
}

func (l *Lexer) number() token.Token {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}
	return l.emit(token.INT)
}

func (l *Lexer) identifier() token.Token {
	for !l.isAtEnd() && (isAlpha(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}
	identifier := string(l.source[l.start:l.current])
	return token.Token{Type: token.LookupIdent(identifier), Literal: identifier}
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) advance() rune {
	current := l.source[l.current]
	l.current++
	return current
}

// match consumes the next rune only when it equals c
func (l *Lexer) match(c rune) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) peek() rune {
	return l.source[l.current]
}

func (l *Lexer) emit(tk token.Type) token.Token {
	return token.Token{
		Type:    tk,
		Literal: string(l.source[l.start:l.current]),
	}
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
