package token

import "testing"

func TestLookupIdent(t *testing.T) {
	cases := map[string]Type{
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
		"x":         IDENT,
		"Si":        IDENT,
		"operación": IDENT,
	}
	for ident, expected := range cases {
		if got := LookupIdent(ident); got != expected {
			t.Errorf("LookupIdent(%q) should be %s instead of %s", ident, expected, got)
		}
	}
}

func TestTypeString(t *testing.T) {
	if EOF.String() != "EOF" {
		t.Errorf("Unexpected name %s", EOF)
	}
	if NOT_EQ.String() != "NOT_EQ" {
		t.Errorf("Unexpected name %s", NOT_EQ)
	}
	if Type(1000).String() != "UNKNOWN" {
		t.Errorf("Unexpected name %s", Type(1000))
	}
}
