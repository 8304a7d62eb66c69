package parser

import "errors"

// Parser errors
var errUnexpectedToken = errors.New("token inesperado")
var errNoPrefixParseFn = errors.New("no se encontró ninguna función para analizar")
var errInvalidInteger = errors.New("no se pudo analizar como entero")
var errUnclosedBlock = errors.New("se esperaba '}' al final del bloque")
var errBreakOutsideLoop = errors.New("'termina' solo puede usarse dentro de un ciclo")
