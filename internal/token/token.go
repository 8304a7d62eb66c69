package token

// Type Holds a token kind
type Type int

const (
	EOF Type = iota - 1
	ILLEGAL

	// Literals.
	// *identifier*, 123, "text"
	IDENT
	INT
	STRING

	// Operators.
	// =, +, -, !, *, /, <, >, <=, >=, ==, !=, &&, ||
	ASSIGN
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH
	LT
	GT
	LTE
	GTE
	EQ
	NOT_EQ
	AND
	OR

	// Delimiters.
	// ',', ;, (, ), {, }
	COMMA
	SEMICOLON
	LPAREN
	RPAREN
	LBRACE
	RBRACE

	// Keywords.
	// incognita, devuelve, si, tonces, verdadero, falso,
	// operacion, mientras, termina
	LET
	RETURN
	IF
	ELSE
	TRUE
	FALSE
	FUNCTION
	WHILE
	BREAK
)

var names = map[Type]string{
	EOF:       "EOF",
	ILLEGAL:   "ILLEGAL",
	IDENT:     "IDENT",
	INT:       "INT",
	STRING:    "STRING",
	ASSIGN:    "ASSIGN",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	BANG:      "BANG",
	ASTERISK:  "ASTERISK",
	SLASH:     "SLASH",
	LT:        "LT",
	GT:        "GT",
	LTE:       "LTE",
	GTE:       "GTE",
	EQ:        "EQ",
	NOT_EQ:    "NOT_EQ",
	AND:       "AND",
	OR:        "OR",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	LET:       "LET",
	RETURN:    "RETURN",
	IF:        "IF",
	ELSE:      "ELSE",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	FUNCTION:  "FUNCTION",
	WHILE:     "WHILE",
	BREAK:     "BREAK",
}

func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a single lexical unit: its kind and the text it was read from
type Token struct {
	Type    Type
	Literal string
}

// verdad and mentira are the spellings of the first keyword table,
// kept so older scripts still run.
var keywords = map[string]Type{
	"incognita": LET,
	"devuelve":  RETURN,
	"si":        IF,
	"tonces":    ELSE,
	"verdadero": TRUE,
	"verdad":    TRUE,
	"falso":     FALSE,
	"mentira":   FALSE,
	"operacion": FUNCTION,
	"mientras":  WHILE,
	"termina":   BREAK,
}

// LookupIdent returns the keyword kind for ident, or IDENT when it is not reserved
func LookupIdent(ident string) Type {
	if tk, ok := keywords[ident]; ok {
		return tk
	}
	return IDENT
}
