package evaluator

import (
	"io/ioutil"

	"github.com/sirupsen/logrus"

	"cod/internal/ast"
	"cod/internal/object"
)

// DefaultMaxDepth bounds nested function calls
const DefaultMaxDepth = 4096

// Evaluator walks a tree and produces runtime values. It is not safe
// for concurrent use.
type Evaluator struct {
	env *object.Environment

	depth    int
	maxDepth int

	log logrus.FieldLogger
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithLogger sends call tracing to l at debug level
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Evaluator) {
		e.log = l
	}
}

// WithMaxDepth sets how deep function calls may nest before an error is returned
func WithMaxDepth(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// New creates an evaluator
func New(opts ...Option) *Evaluator {
	silent := logrus.New()
	silent.Out = ioutil.Discard

	e := &Evaluator{
		maxDepth: DefaultMaxDepth,
		log:      silent,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate evaluates node with a default evaluator
func Evaluate(node ast.Node, env *object.Environment) object.Object {
	return New().Evaluate(node, env)
}

// Evaluate evaluates node in env. The result is nil for nodes that
// produce no value, such as a lone incognita statement.
func (e *Evaluator) Evaluate(node ast.Node, env *object.Environment) object.Object {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	return e.eval(node)
}

func (e *Evaluator) eval(node ast.Node) object.Object {
	if node == nil {
		return newError("%w", errInvalidNode)
	}
	if result := node.Accept(e); result != nil {
		return result.(object.Object)
	}
	return nil
}

// value evaluates a node whose result is used as an operand
func (e *Evaluator) value(node ast.Node) object.Object {
	if result := e.eval(node); result != nil {
		return result
	}
	return object.NULL
}

func (e *Evaluator) VisitProgram(node *ast.Program) ast.R {
	var result object.Object
	for _, st := range node.Statements {
		result = e.eval(st)
		switch r := result.(type) {
		case *object.ReturnValue:
			return r.Value
		case *object.Error:
			return r
		case object.Break:
			return newError("%w", errBreakOutsideLoop)
		}
	}
	return result
}

func (e *Evaluator) VisitBlockStatement(node *ast.BlockStatement) ast.R {
	var result object.Object
	for _, st := range node.Statements {
		result = e.eval(st)
		if result != nil {
			switch result.Type() {
			case object.RETURN_OBJ, object.ERROR_OBJ, object.BREAK_OBJ:
				return result
			}
		}
	}
	return result
}

func (e *Evaluator) VisitExpressionStatement(node *ast.ExpressionStatement) ast.R {
	return e.eval(node.Expression)
}

func (e *Evaluator) VisitLetStatement(node *ast.LetStatement) ast.R {
	val := e.value(node.Value)
	if isSignal(val) {
		return val
	}
	e.env.Set(node.Name.Value, val)
	return nil
}

func (e *Evaluator) VisitReturnStatement(node *ast.ReturnStatement) ast.R {
	if node.ReturnValue == nil {
		return &object.ReturnValue{Value: object.NULL}
	}
	val := e.value(node.ReturnValue)
	if isSignal(val) {
		return val
	}
	return &object.ReturnValue{Value: val}
}

func (e *Evaluator) VisitBreakStatement(node *ast.BreakStatement) ast.R {
	return object.Break{}
}

func (e *Evaluator) VisitIdentifier(node *ast.Identifier) ast.R {
	if val, ok := e.env.Get(node.Value); ok {
		return val
	}
	return newError("%w: %s", errIdentifierNotFound, node.Value)
}

func (e *Evaluator) VisitIntegerLiteral(node *ast.IntegerLiteral) ast.R {
	if node.Value == nil {
		return newError("%w: %s", errInvalidInteger, node.Token.Literal)
	}
	return object.Integer(*node.Value)
}

func (e *Evaluator) VisitBooleanLiteral(node *ast.BooleanLiteral) ast.R {
	return object.NativeBool(node.Value)
}

func (e *Evaluator) VisitStringLiteral(node *ast.StringLiteral) ast.R {
	return object.String(node.Value)
}

func (e *Evaluator) VisitPrefixExpression(node *ast.PrefixExpression) ast.R {
	right := e.value(node.Right)
	if isSignal(right) {
		return right
	}
	return evalPrefixExpression(node.Operator, right)
}

func (e *Evaluator) VisitInfixExpression(node *ast.InfixExpression) ast.R {
	left := e.value(node.Left)
	if isSignal(left) {
		return left
	}

	// && and || do not evaluate the right side when the left decides
	switch node.Operator {
	case "&&":
		if !isTruthy(left) {
			return object.False
		}
		return e.logicalOperand(node.Right)
	case "||":
		if isTruthy(left) {
			return object.True
		}
		return e.logicalOperand(node.Right)
	}

	right := e.value(node.Right)
	if isSignal(right) {
		return right
	}
	return evalInfixExpression(node.Operator, left, right)
}

func (e *Evaluator) logicalOperand(node ast.Expression) object.Object {
	right := e.value(node)
	if isSignal(right) {
		return right
	}
	return object.NativeBool(isTruthy(right))
}

func (e *Evaluator) VisitIfExpression(node *ast.IfExpression) ast.R {
	condition := e.value(node.Condition)
	if isSignal(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.eval(node.Consequence)
	} else if node.Alternative != nil {
		return e.eval(node.Alternative)
	}
	return object.NULL
}

func (e *Evaluator) VisitWhileExpression(node *ast.WhileExpression) ast.R {
	for {
		condition := e.value(node.Condition)
		if isSignal(condition) {
			return condition
		}
		if !isTruthy(condition) {
			break
		}

		result := e.eval(node.Body)
		if result != nil {
			switch result.Type() {
			case object.BREAK_OBJ:
				return object.NULL
			case object.RETURN_OBJ, object.ERROR_OBJ:
				return result
			}
		}
	}
	return object.NULL
}

func (e *Evaluator) VisitFunctionLiteral(node *ast.FunctionLiteral) ast.R {
	return &object.Function{Literal: node, Env: e.env}
}

func (e *Evaluator) VisitCallExpression(node *ast.CallExpression) ast.R {
	function := e.value(node.Function)
	if isSignal(function) {
		return function
	}

	args := make([]object.Object, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		evaluated := e.value(arg)
		if isSignal(evaluated) {
			return evaluated
		}
		args = append(args, evaluated)
	}

	return e.applyFunction(function, args)
}

func (e *Evaluator) applyFunction(fn object.Object, args []object.Object) object.Object {
	function, ok := fn.(*object.Function)
	if !ok {
		return newError("%w: %s", errNotAFunction, fn.Type())
	}

	params := function.Parameters()
	if len(params) != len(args) {
		return newError(
			"%w: se esperaban %d, se recibieron %d",
			errWrongArgumentCount,
			len(params),
			len(args),
		)
	}

	if e.depth >= e.maxDepth {
		return newError("%w: %d", errMaxDepthExceeded, e.maxDepth)
	}
	e.depth++
	defer func() {
		e.depth--
	}()

	// The call scope encloses the defining scope, not the caller's
	callEnv := object.NewEnvironment(function.Env)
	for i, param := range params {
		callEnv.Set(param.Value, args[i])
	}

	e.log.WithField("depth", e.depth).Debugf("call %s", function.Literal.Signature())

	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = callEnv

	return unwrapReturnValue(e.eval(function.Body()))
}

func unwrapReturnValue(obj object.Object) object.Object {
	switch obj := obj.(type) {
	case nil:
		return object.NULL
	case *object.ReturnValue:
		return obj.Value
	case object.Break:
		return newError("%w", errBreakOutsideLoop)
	}
	return obj
}

// isSignal reports whether obj must leave the expression that produced it:
// a runtime error, a devuelve or a termina.
func isSignal(obj object.Object) bool {
	switch obj.(type) {
	case *object.Error, *object.ReturnValue, object.Break:
		return true
	}
	return false
}

func isTruthy(obj object.Object) bool {
	switch obj {
	case object.NULL:
		return false
	case object.True:
		return true
	case object.False:
		return false
	default:
		return true
	}
}
