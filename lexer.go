package glox

import (
	"fmt"
	"strconv"
)

// Lexer scans a glox source string into tokens in a single left-to-right
// pass. Scanning never fails: invalid input is reported through the
// Reporter and the lexer keeps going, so the returned stream always ends in
// exactly one EOF token.
type Lexer struct {
	src    string
	rep    *Reporter
	tokens []Token
	start  int // start index of current lexeme
	cur    int // current index
	line   int // 1-based

	startLine int // line the current lexeme began on
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string, rep *Reporter) *Lexer {
	return &Lexer{src: src, rep: rep, line: 1}
}

// Scan tokenizes the entire source and returns the tokens, EOF included.
func (l *Lexer) Scan() []Token {
	for !l.isAtEnd() {
		l.start = l.cur
		l.startLine = l.line
		l.scanToken()
	}
	l.tokens = append(l.tokens, Token{Type: EOF, Line: l.line})
	return l.tokens
}

func (l *Lexer) scanToken() {
	ch := l.advance()
	switch ch {
	case '(':
		l.addToken(LROUND)
	case ')':
		l.addToken(RROUND)
	case '{':
		l.addToken(LCURLY)
	case '}':
		l.addToken(RCURLY)
	case ',':
		l.addToken(COMMA)
	case '.':
		l.addToken(PERIOD)
	case '-':
		l.addToken(MINUS)
	case '+':
		l.addToken(PLUS)
	case ';':
		l.addToken(SEMICOLON)
	case '*':
		l.addToken(MULT)
	case '!':
		if l.match('=') {
			l.addToken(NEQ)
		} else {
			l.addToken(BANG)
		}
	case '=':
		if l.match('=') {
			l.addToken(EQ)
		} else {
			l.addToken(ASSIGN)
		}
	case '<':
		if l.match('=') {
			l.addToken(LESS_EQ)
		} else {
			l.addToken(LESS)
		}
	case '>':
		if l.match('=') {
			l.addToken(GREATER_EQ)
		} else {
			l.addToken(GREATER)
		}
	case '/':
		if l.match('/') {
			// Comment runs to the end of the line.
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		} else {
			l.addToken(DIV)
		}
	case ' ', '\r', '\t':
		// Whitespace produces no token.
	case '\n':
		l.line++
	case '"':
		l.scanString()
	default:
		switch {
		case isDigit(ch):
			l.scanNumber()
		case isAlpha(ch):
			l.scanIdentifier()
		default:
			l.rep.Error(l.line, fmt.Sprintf("Unexpected character '%c'.", ch))
		}
	}
}

// scanString consumes through the closing quote, counting embedded
// newlines. An unterminated string is reported but still emits a STRING
// token with the captured text so downstream stages are not starved.
func (l *Lexer) scanString() {
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.rep.Error(l.line, "Unterminated string.")
		l.addTokenLit(STRING, l.src[l.start+1:l.cur])
		return
	}

	// Closing quote.
	l.advance()
	l.addTokenLit(STRING, l.src[l.start+1:l.cur-1])
}

// scanNumber consumes digit+ ('.' digit+)?. A trailing '.' with no digit
// after it is left for the next token.
func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // consume '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	lex := l.src[l.start:l.cur]
	v, err := strconv.ParseFloat(lex, 64)
	if err != nil {
		// The lexeme is digits with at most one interior dot; if it does
		// not parse the scanner itself is broken.
		panic(fmt.Sprintf("lexer: %q scanned as a number but does not parse: %v", lex, err))
	}
	l.addTokenLit(NUMBER, v)
}

func (l *Lexer) scanIdentifier() {
	for isAlphaNum(l.peek()) {
		l.advance()
	}

	lex := l.src[l.start:l.cur]
	tt, ok := keywords[lex]
	if !ok {
		l.addToken(ID)
		return
	}
	switch tt {
	case TRUE:
		l.addTokenLit(TRUE, true)
	case FALSE:
		l.addTokenLit(FALSE, false)
	default:
		l.addToken(tt)
	}
}

// ----- cursor helpers -----

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) advance() byte {
	ch := l.src[l.cur]
	l.cur++
	return ch
}

// match consumes the next byte only if it equals expected.
func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.src[l.cur] != expected {
		return false
	}
	l.cur++
	return true
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *Lexer) peekNext() byte {
	if l.cur+1 >= len(l.src) {
		return 0
	}
	return l.src[l.cur+1]
}

func (l *Lexer) addToken(tt TokenType) {
	l.addTokenLit(tt, nil)
}

func (l *Lexer) addTokenLit(tt TokenType, lit interface{}) {
	l.tokens = append(l.tokens, Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.startLine,
	})
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}
