package evaluator

import (
	"errors"
	"fmt"

	"cod/internal/object"
)

// Runtime errors
var errUnknownOperator = errors.New("operador desconocido")
var errTypeMismatch = errors.New("discrepancia de tipos")
var errIdentifierNotFound = errors.New("identificador no encontrado")
var errNotAFunction = errors.New("no es una función")
var errDivisionByZero = errors.New("división entre cero")
var errWrongArgumentCount = errors.New("número de argumentos incorrecto")
var errMaxDepthExceeded = errors.New("profundidad máxima de llamadas excedida")
var errBreakOutsideLoop = errors.New("'termina' fuera de un ciclo")
var errInvalidNode = errors.New("expresión inválida")
var errInvalidInteger = errors.New("entero inválido")

func newError(format string, a ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Errorf(format, a...).Error()}
}
