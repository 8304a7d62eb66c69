package evaluator

import "cod/internal/object"

func evalPrefixExpression(operator string, right object.Object) object.Object {
	switch operator {
	case "!":
		return evalBangOperatorExpression(right)
	case "-":
		return evalMinusPrefixOperatorExpression(right)
	default:
		return newError("%w: %s%s", errUnknownOperator, operator, right.Type())
	}
}

// evalBangOperatorExpression is not a truthiness negation: any value
// other than falso and nulo gives falso
func evalBangOperatorExpression(right object.Object) object.Object {
	switch right {
	case object.True:
		return object.False
	case object.False, object.NULL:
		return object.True
	default:
		return object.False
	}
}

func evalMinusPrefixOperatorExpression(right object.Object) object.Object {
	value, ok := right.(object.Integer)
	if !ok {
		return newError("%w: -%s", errUnknownOperator, right.Type())
	}
	return -value
}

func evalInfixExpression(operator string, left, right object.Object) object.Object {
	switch {
	case left.Type() == object.INTEGER_OBJ && right.Type() == object.INTEGER_OBJ:
		return evalIntegerInfixExpression(operator, left.(object.Integer), right.(object.Integer))
	case left.Type() == object.STRING_OBJ && right.Type() == object.STRING_OBJ:
		return evalStringInfixExpression(operator, left.(object.String), right.(object.String))
	case operator == "==":
		return object.NativeBool(left == right)
	case operator == "!=":
		return object.NativeBool(left != right)
	case left.Type() != right.Type():
		return newError("%w: %s %s %s", errTypeMismatch, left.Type(), operator, right.Type())
	default:
		return newError("%w: %s %s %s", errUnknownOperator, left.Type(), operator, right.Type())
	}
}

func evalIntegerInfixExpression(operator string, left, right object.Integer) object.Object {
	switch operator {
	case "+":
		return left + right
	case "-":
		return left - right
	case "*":
		return left * right
	case "/":
		if right == 0 {
			return newError("%w: %d / %d", errDivisionByZero, left, right)
		}
		return left / right
	case "<":
		return object.NativeBool(left < right)
	case "<=":
		return object.NativeBool(left <= right)
	case ">":
		return object.NativeBool(left > right)
	case ">=":
		return object.NativeBool(left >= right)
	case "==":
		return object.NativeBool(left == right)
	case "!=":
		return object.NativeBool(left != right)
	default:
		return newError("%w: %s %s %s", errUnknownOperator, left.Type(), operator, right.Type())
	}
}

func evalStringInfixExpression(operator string, left, right object.String) object.Object {
	switch operator {
	case "+":
		return left + right
	case "==":
		return object.NativeBool(left == right)
	case "!=":
		return object.NativeBool(left != right)
	default:
		return newError("%w: %s %s %s", errUnknownOperator, left.Type(), operator, right.Type())
	}
}
