package glox

import "fmt"

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Single-character punctuation
	LROUND    // "("
	RROUND    // ")"
	LCURLY    // "{"
	RCURLY    // "}"
	COMMA     // ","
	PERIOD    // "."
	MINUS     // "-"
	PLUS      // "+"
	SEMICOLON // ";"
	DIV       // "/"
	MULT      // "*"

	// One or two character operators
	BANG       // "!"
	NEQ        // "!="
	ASSIGN     // "="
	EQ         // "=="
	LESS       // "<"
	LESS_EQ    // "<="
	GREATER    // ">"
	GREATER_EQ // ">="

	// Literals & identifiers
	ID
	STRING
	NUMBER

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
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

var tokenTypeNames = [...]string{
	EOF:        "EOF",
	LROUND:     "LROUND",
	RROUND:     "RROUND",
	LCURLY:     "LCURLY",
	RCURLY:     "RCURLY",
	COMMA:      "COMMA",
	PERIOD:     "PERIOD",
	MINUS:      "MINUS",
	PLUS:       "PLUS",
	SEMICOLON:  "SEMICOLON",
	DIV:        "DIV",
	MULT:       "MULT",
	BANG:       "BANG",
	NEQ:        "NEQ",
	ASSIGN:     "ASSIGN",
	EQ:         "EQ",
	LESS:       "LESS",
	LESS_EQ:    "LESS_EQ",
	GREATER:    "GREATER",
	GREATER_EQ: "GREATER_EQ",
	ID:         "ID",
	STRING:     "STRING",
	NUMBER:     "NUMBER",
	AND:        "AND",
	CLASS:      "CLASS",
	ELSE:       "ELSE",
	FALSE:      "FALSE",
	FUN:        "FUN",
	FOR:        "FOR",
	IF:         "IF",
	NIL:        "NIL",
	OR:         "OR",
	PRINT:      "PRINT",
	RETURN:     "RETURN",
	SUPER:      "SUPER",
	THIS:       "THIS",
	TRUE:       "TRUE",
	VAR:        "VAR",
	WHILE:      "WHILE",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a lexical token with optional literal value. Tokens are immutable
// once produced by the lexer.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw source slice the token was scanned from
	Literal interface{} // string, float64 or bool for literal tokens; nil otherwise
	Line    int         // 1-based line the token starts on
}

func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%v %q %v", t.Type, t.Lexeme, t.Literal)
	}
	return fmt.Sprintf("%v %q", t.Type, t.Lexeme)
}

// keywords map
var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"fun":    FUN,
	"for":    FOR,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}
