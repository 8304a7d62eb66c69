package ast

import (
	"fmt"
	"strings"
)

// Sexpr renders a node as an s-expression, one top level statement per line
func Sexpr(node Node) string {
	if node == nil {
		return "<nil>"
	}
	return node.Accept(sexprVisitor{}).(string)
}

type sexprVisitor struct{}

func (v sexprVisitor) visit(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Accept(v).(string)
}

func (v sexprVisitor) block(b *BlockStatement) string {
	if b == nil {
		return "<nil>"
	}
	return v.VisitBlockStatement(b).(string)
}

func (v sexprVisitor) VisitProgram(node *Program) R {
	lines := make([]string, 0, len(node.Statements))
	for _, st := range node.Statements {
		lines = append(lines, v.visit(st))
	}
	return strings.Join(lines, "\n")
}

func (v sexprVisitor) VisitLetStatement(node *LetStatement) R {
	name := "<nil>"
	if node.Name != nil {
		name = node.Name.Value
	}
	return fmt.Sprintf("(let %s %s)", name, v.visit(node.Value))
}

func (v sexprVisitor) VisitReturnStatement(node *ReturnStatement) R {
	return fmt.Sprintf("(return %s)", v.visit(node.ReturnValue))
}

func (v sexprVisitor) VisitExpressionStatement(node *ExpressionStatement) R {
	return v.visit(node.Expression)
}

func (v sexprVisitor) VisitBlockStatement(node *BlockStatement) R {
	out := "(scope"
	for _, st := range node.Statements {
		out += " " + v.visit(st)
	}
	return out + ")"
}

func (v sexprVisitor) VisitBreakStatement(node *BreakStatement) R {
	return "(break)"
}

func (v sexprVisitor) VisitIdentifier(node *Identifier) R {
	return node.Value
}

func (v sexprVisitor) VisitIntegerLiteral(node *IntegerLiteral) R {
	if node.Value == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d", *node.Value)
}

func (v sexprVisitor) VisitBooleanLiteral(node *BooleanLiteral) R {
	return fmt.Sprintf("%v", node.Value)
}

func (v sexprVisitor) VisitStringLiteral(node *StringLiteral) R {
	return "\"" + node.Value + "\""
}

func (v sexprVisitor) VisitPrefixExpression(node *PrefixExpression) R {
	return fmt.Sprintf("(%s %s)", node.Operator, v.visit(node.Right))
}

func (v sexprVisitor) VisitInfixExpression(node *InfixExpression) R {
	return fmt.Sprintf("(%s %s %s)", node.Operator, v.visit(node.Left), v.visit(node.Right))
}

func (v sexprVisitor) VisitIfExpression(node *IfExpression) R {
	out := fmt.Sprintf("(if %s (then %s)", v.visit(node.Condition), v.block(node.Consequence))
	if node.Alternative != nil {
		out += fmt.Sprintf(" (else %s)", v.block(node.Alternative))
	}
	return out + ")"
}

func (v sexprVisitor) VisitWhileExpression(node *WhileExpression) R {
	return fmt.Sprintf("(while %s %s)", v.visit(node.Condition), v.block(node.Body))
}

func (v sexprVisitor) VisitFunctionLiteral(node *FunctionLiteral) R {
	params := make([]string, 0, len(node.Parameters))
	for _, p := range node.Parameters {
		params = append(params, p.Value)
	}
	return fmt.Sprintf("(fn (%s) %s)", strings.Join(params, ", "), v.block(node.Body))
}

func (v sexprVisitor) VisitCallExpression(node *CallExpression) R {
	out := "(call " + v.visit(node.Function)
	for _, arg := range node.Arguments {
		out += " " + v.visit(arg)
	}
	return out + ")"
}
