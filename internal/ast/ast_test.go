package ast

import (
	"testing"

	"cod/internal/token"
)

func ident(name string) *Identifier {
	return &Identifier{Token: token.Token{Type: token.IDENT, Literal: name}, Value: name}
}

func integer(n int64, literal string) *IntegerLiteral {
	return &IntegerLiteral{Token: token.Token{Type: token.INT, Literal: literal}, Value: &n}
}

func TestString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.Token{Type: token.LET, Literal: "incognita"},
				Name:  ident("a"),
				Value: &InfixExpression{
					Token:    token.Token{Type: token.PLUS, Literal: "+"},
					Left:     integer(1, "1"),
					Operator: "+",
					Right: &PrefixExpression{
						Token:    token.Token{Type: token.MINUS, Literal: "-"},
						Operator: "-",
						Right:    ident("b"),
					},
				},
			},
		},
	}

	if s := program.String(); s != "incognita a = (1 + (-b));" {
		t.Errorf("Unexpected program text %q", s)
	}
	if tl := program.TokenLiteral(); tl != "incognita" {
		t.Errorf("Unexpected token literal %q", tl)
	}
	if s := Sexpr(program); s != "(let a (+ 1 (- b)))" {
		t.Errorf("Unexpected tree %q", s)
	}
}

func TestFunctionAndCall(t *testing.T) {
	fn := &FunctionLiteral{
		Token:      token.Token{Type: token.FUNCTION, Literal: "operacion"},
		Parameters: []*Identifier{ident("x"), ident("y")},
		Body: &BlockStatement{
			Token: token.Token{Type: token.LBRACE, Literal: "{"},
			Statements: []Statement{
				&ReturnStatement{
					Token:       token.Token{Type: token.RETURN, Literal: "devuelve"},
					ReturnValue: ident("x"),
				},
			},
		},
	}
	call := &CallExpression{
		Token:     token.Token{Type: token.LPAREN, Literal: "("},
		Function:  fn,
		Arguments: []Expression{integer(1, "1"), &StringLiteral{Value: "a"}},
	}

	if s := fn.Signature(); s != "operacion(x, y)" {
		t.Errorf("Unexpected signature %q", s)
	}
	if s := call.String(); s != `operacion(x, y) { devuelve x; }(1, "a")` {
		t.Errorf("Unexpected call text %q", s)
	}
	if s := Sexpr(call); s != `(call (fn (x, y) (scope (return x))) 1 "a")` {
		t.Errorf("Unexpected tree %q", s)
	}
}

func TestIfAndWhile(t *testing.T) {
	ifExpr := &IfExpression{
		Token:     token.Token{Type: token.IF, Literal: "si"},
		Condition: &BooleanLiteral{Token: token.Token{Type: token.TRUE, Literal: "verdadero"}, Value: true},
		Consequence: &BlockStatement{
			Statements: []Statement{&ExpressionStatement{Expression: integer(10, "10")}},
		},
		Alternative: &BlockStatement{},
	}
	if s := ifExpr.String(); s != "si verdadero { 10 } tonces { }" {
		t.Errorf("Unexpected if text %q", s)
	}
	if s := Sexpr(ifExpr); s != "(if true (then (scope 10)) (else (scope)))" {
		t.Errorf("Unexpected tree %q", s)
	}

	while := &WhileExpression{
		Token:     token.Token{Type: token.WHILE, Literal: "mientras"},
		Condition: ident("x"),
		Body: &BlockStatement{
			Statements: []Statement{&BreakStatement{Token: token.Token{Type: token.BREAK, Literal: "termina"}}},
		},
	}
	if s := while.String(); s != "mientras x { termina; }" {
		t.Errorf("Unexpected while text %q", s)
	}
	if s := Sexpr(while); s != "(while x (scope (break)))" {
		t.Errorf("Unexpected tree %q", s)
	}
}

func TestMissingChildren(t *testing.T) {
	let := &LetStatement{Token: token.Token{Type: token.LET, Literal: "incognita"}}
	if s := let.String(); s != "incognita  = ;" {
		t.Errorf("Unexpected let text %q", s)
	}
	if s := Sexpr(let); s != "(let <nil> <nil>)" {
		t.Errorf("Unexpected tree %q", s)
	}
	if s := Sexpr(&IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "99999999999999999999"}}); s != "<nil>" {
		t.Errorf("Unexpected tree %q", s)
	}
}
