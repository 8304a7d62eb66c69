package object

import (
	"testing"

	"cod/internal/ast"
	"cod/internal/lexer"
	"cod/internal/parser"
)

func TestInspect(t *testing.T) {
	cases := []struct {
		obj      Object
		expected string
	}{
		{Integer(-12), "-12"},
		{True, "verdadero"},
		{False, "falso"},
		{NULL, "nulo"},
		{String("hola"), "hola"},
		{&Error{Message: "identificador no encontrado: b"}, "Error: identificador no encontrado: b"},
		{&ReturnValue{Value: Integer(3)}, "3"},
		{Break{}, "termina"},
	}
	for _, c := range cases {
		if got := c.obj.Inspect(); got != c.expected {
			t.Errorf("%s should inspect as %q instead of %q", c.obj.Type(), c.expected, got)
		}
	}
}

func TestFunctionInspect(t *testing.T) {
	program := parser.New(lexer.New("operacion(x, y) { x + y }")).ParseProgram()
	lit := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.FunctionLiteral)
	fn := &Function{Literal: lit, Env: NewEnvironment(nil)}

	if fn.Inspect() != "operacion(x, y)" {
		t.Errorf("Unexpected function text %q", fn.Inspect())
	}
	if len(fn.Parameters()) != 2 || fn.Body() != lit.Body {
		t.Errorf("Function should expose the literal parameters and body")
	}
}

func TestVariantEquality(t *testing.T) {
	if NativeBool(true) != True || NativeBool(false) != False {
		t.Errorf("NativeBool should return the shared booleans")
	}
	if Boolean(true) != True {
		t.Errorf("Booleans should compare by variant")
	}
	if Object(Null{}) != NULL {
		t.Errorf("Null should compare by variant")
	}
	if True == False || NULL == False {
		t.Errorf("Distinct variants should not be equal")
	}
	e1, e2 := &Error{Message: "x"}, &Error{Message: "x"}
	if Object(e1) == Object(e2) {
		t.Errorf("Errors should compare by reference")
	}
	if !IsError(e1) || IsError(Integer(1)) || IsError(nil) {
		t.Errorf("Unexpected IsError result")
	}
}

func TestEnvironment(t *testing.T) {
	root := NewEnvironment(nil)
	root.Set("a", Integer(1))
	root.Set("b", Integer(2))

	child := NewEnvironment(root)
	child.Set("b", Integer(20))
	child.Set("c", Integer(30))

	if v, ok := child.Get("a"); !ok || v != Integer(1) {
		t.Errorf("a should resolve through the outer scope, got %v", v)
	}
	if v, ok := child.Get("b"); !ok || v != Integer(20) {
		t.Errorf("b should be shadowed, got %v", v)
	}
	if v, ok := root.Get("b"); !ok || v != Integer(2) {
		t.Errorf("Set on the child must not write the outer scope, got %v", v)
	}
	if _, ok := root.Get("c"); ok {
		t.Errorf("c should not be visible from the root")
	}
	if _, ok := child.Get("d"); ok {
		t.Errorf("d should not be found")
	}
	if child.Outer() != root || root.Outer() != nil {
		t.Errorf("Unexpected outer scopes")
	}
}
