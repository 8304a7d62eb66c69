package object

import (
	"strconv"

	"cod/internal/ast"
)

// Type names the variant of a runtime value
type Type string

const (
	INTEGER_OBJ  Type = "INTEGER"
	BOOLEAN_OBJ  Type = "BOOLEAN"
	STRING_OBJ   Type = "STRING"
	NULL_OBJ     Type = "NULL"
	RETURN_OBJ   Type = "RETURN"
	ERROR_OBJ    Type = "ERROR"
	FUNCTION_OBJ Type = "FUNCTION"
	BREAK_OBJ    Type = "BREAK"
)

// Object is a runtime value. Every variant is comparable with ==:
// Integer, Boolean, String and Null by value, the rest by reference.
type Object interface {
	Type() Type
	Inspect() string
}

// Shared values
var (
	True  Object = Boolean(true)
	False Object = Boolean(false)
	NULL  Object = Null{}
)

type Integer int64

func (i Integer) Type() Type      { return INTEGER_OBJ }
func (i Integer) Inspect() string { return strconv.FormatInt(int64(i), 10) }

type Boolean bool

func (b Boolean) Type() Type { return BOOLEAN_OBJ }

func (b Boolean) Inspect() string {
	if b {
		return "verdadero"
	}
	return "falso"
}

// NativeBool maps a Go bool onto True or False
func NativeBool(value bool) Object {
	if value {
		return True
	}
	return False
}

type String string

func (s String) Type() Type      { return STRING_OBJ }
func (s String) Inspect() string { return string(s) }

type Null struct{}

func (n Null) Type() Type      { return NULL_OBJ }
func (n Null) Inspect() string { return "nulo" }

// ReturnValue carries the result of devuelve up to the enclosing call
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() Type      { return RETURN_OBJ }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

type Error struct {
	Message string
}

func (e *Error) Type() Type      { return ERROR_OBJ }
func (e *Error) Inspect() string { return "Error: " + e.Message }

// Function is a closure over the environment it was defined in
type Function struct {
	Literal *ast.FunctionLiteral
	Env     *Environment
}

func (f *Function) Type() Type { return FUNCTION_OBJ }

func (f *Function) Parameters() []*ast.Identifier {
	return f.Literal.Parameters
}

func (f *Function) Body() *ast.BlockStatement {
	return f.Literal.Body
}

// Inspect renders the signature only, the body is left out
func (f *Function) Inspect() string {
	return f.Literal.Signature()
}

// Break signals termina to the innermost mientras
type Break struct{}

func (b Break) Type() Type      { return BREAK_OBJ }
func (b Break) Inspect() string { return "termina" }

// IsError reports whether obj is an Error value
func IsError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}
