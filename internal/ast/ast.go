package ast

import (
	"strings"

	"cod/internal/token"
)

// R generic visitor result
type R interface{}

// Node is implemented by every element of the tree
type Node interface {
	TokenLiteral() string
	String() string
	Accept(Visitor) R
}

// Statement is a node that does not need to produce a value
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value
type Expression interface {
	Node
	expressionNode()
}

// Visitor has one method per node kind
type Visitor interface {
	VisitProgram(node *Program) R
	VisitLetStatement(node *LetStatement) R
	VisitReturnStatement(node *ReturnStatement) R
	VisitExpressionStatement(node *ExpressionStatement) R
	VisitBlockStatement(node *BlockStatement) R
	VisitBreakStatement(node *BreakStatement) R
	VisitIdentifier(node *Identifier) R
	VisitIntegerLiteral(node *IntegerLiteral) R
	VisitBooleanLiteral(node *BooleanLiteral) R
	VisitStringLiteral(node *StringLiteral) R
	VisitPrefixExpression(node *PrefixExpression) R
	VisitInfixExpression(node *InfixExpression) R
	VisitIfExpression(node *IfExpression) R
	VisitWhileExpression(node *WhileExpression) R
	VisitFunctionLiteral(node *FunctionLiteral) R
	VisitCallExpression(node *CallExpression) R
}

// str renders a child that may be missing after a parse error
func str(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}

// Program is the root of every parse
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Statements {
		out.WriteString(str(s))
	}
	return out.String()
}

func (p *Program) Accept(visitor Visitor) R {
	return visitor.VisitProgram(p)
}

// LetStatement binds Name to Value in the current environment
type LetStatement struct {
	Token token.Token
	Name  *Identifier
	Value Expression
}

func (s *LetStatement) statementNode()       {}
func (s *LetStatement) TokenLiteral() string { return s.Token.Literal }

func (s *LetStatement) String() string {
	name := ""
	if s.Name != nil {
		name = s.Name.String()
	}
	return s.TokenLiteral() + " " + name + " = " + str(s.Value) + ";"
}

func (s *LetStatement) Accept(visitor Visitor) R {
	return visitor.VisitLetStatement(s)
}

type ReturnStatement struct {
	Token       token.Token
	ReturnValue Expression
}

func (s *ReturnStatement) statementNode()       {}
func (s *ReturnStatement) TokenLiteral() string { return s.Token.Literal }

func (s *ReturnStatement) String() string {
	return s.TokenLiteral() + " " + str(s.ReturnValue) + ";"
}

func (s *ReturnStatement) Accept(visitor Visitor) R {
	return visitor.VisitReturnStatement(s)
}

type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (s *ExpressionStatement) statementNode()       {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStatement) String() string       { return str(s.Expression) }

func (s *ExpressionStatement) Accept(visitor Visitor) R {
	return visitor.VisitExpressionStatement(s)
}

// BlockStatement is a braced statement list. It does not open a new scope.
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (s *BlockStatement) statementNode()       {}
func (s *BlockStatement) TokenLiteral() string { return s.Token.Literal }

func (s *BlockStatement) String() string {
	parts := make([]string, 0, len(s.Statements))
	for _, st := range s.Statements {
		parts = append(parts, str(st))
	}
	if len(parts) == 0 {
		return "{ }"
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func (s *BlockStatement) Accept(visitor Visitor) R {
	return visitor.VisitBlockStatement(s)
}

// BreakStatement leaves the innermost loop
type BreakStatement struct {
	Token token.Token
}

func (s *BreakStatement) statementNode()       {}
func (s *BreakStatement) TokenLiteral() string { return s.Token.Literal }
func (s *BreakStatement) String() string       { return s.TokenLiteral() + ";" }

func (s *BreakStatement) Accept(visitor Visitor) R {
	return visitor.VisitBreakStatement(s)
}

type Identifier struct {
	Token token.Token
	Value string
}

func (e *Identifier) expressionNode()      {}
func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) String() string       { return e.Value }

func (e *Identifier) Accept(visitor Visitor) R {
	return visitor.VisitIdentifier(e)
}

// IntegerLiteral holds a nil Value only if the literal did not fit an int64
type IntegerLiteral struct {
	Token token.Token
	Value *int64
}

func (e *IntegerLiteral) expressionNode()      {}
func (e *IntegerLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *IntegerLiteral) String() string       { return e.Token.Literal }

func (e *IntegerLiteral) Accept(visitor Visitor) R {
	return visitor.VisitIntegerLiteral(e)
}

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (e *BooleanLiteral) expressionNode()      {}
func (e *BooleanLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *BooleanLiteral) String() string       { return e.Token.Literal }

func (e *BooleanLiteral) Accept(visitor Visitor) R {
	return visitor.VisitBooleanLiteral(e)
}

type StringLiteral struct {
	Token token.Token
	Value string
}

func (e *StringLiteral) expressionNode()      {}
func (e *StringLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *StringLiteral) String() string       { return "\"" + e.Value + "\"" }

func (e *StringLiteral) Accept(visitor Visitor) R {
	return visitor.VisitStringLiteral(e)
}

type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (e *PrefixExpression) expressionNode()      {}
func (e *PrefixExpression) TokenLiteral() string { return e.Token.Literal }

func (e *PrefixExpression) String() string {
	return "(" + e.Operator + str(e.Right) + ")"
}

func (e *PrefixExpression) Accept(visitor Visitor) R {
	return visitor.VisitPrefixExpression(e)
}

type InfixExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *InfixExpression) expressionNode()      {}
func (e *InfixExpression) TokenLiteral() string { return e.Token.Literal }

func (e *InfixExpression) String() string {
	return "(" + str(e.Left) + " " + e.Operator + " " + str(e.Right) + ")"
}

func (e *InfixExpression) Accept(visitor Visitor) R {
	return visitor.VisitInfixExpression(e)
}

// IfExpression has a nil Alternative when there is no tonces branch
type IfExpression struct {
	Token       token.Token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (e *IfExpression) expressionNode()      {}
func (e *IfExpression) TokenLiteral() string { return e.Token.Literal }

func (e *IfExpression) String() string {
	out := e.TokenLiteral() + " " + str(e.Condition)
	if e.Consequence != nil {
		out += " " + e.Consequence.String()
	}
	if e.Alternative != nil {
		out += " tonces " + e.Alternative.String()
	}
	return out
}

func (e *IfExpression) Accept(visitor Visitor) R {
	return visitor.VisitIfExpression(e)
}

type WhileExpression struct {
	Token     token.Token
	Condition Expression
	Body      *BlockStatement
}

func (e *WhileExpression) expressionNode()      {}
func (e *WhileExpression) TokenLiteral() string { return e.Token.Literal }

func (e *WhileExpression) String() string {
	out := e.TokenLiteral() + " " + str(e.Condition)
	if e.Body != nil {
		out += " " + e.Body.String()
	}
	return out
}

func (e *WhileExpression) Accept(visitor Visitor) R {
	return visitor.VisitWhileExpression(e)
}

type FunctionLiteral struct {
	Token      token.Token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (e *FunctionLiteral) expressionNode()      {}
func (e *FunctionLiteral) TokenLiteral() string { return e.Token.Literal }

// Signature renders the literal without its body
func (e *FunctionLiteral) Signature() string {
	params := make([]string, 0, len(e.Parameters))
	for _, p := range e.Parameters {
		params = append(params, p.String())
	}
	return e.TokenLiteral() + "(" + strings.Join(params, ", ") + ")"
}

func (e *FunctionLiteral) String() string {
	out := e.Signature()
	if e.Body != nil {
		out += " " + e.Body.String()
	}
	return out
}

func (e *FunctionLiteral) Accept(visitor Visitor) R {
	return visitor.VisitFunctionLiteral(e)
}

// CallExpression applies Function, an identifier or a function literal
type CallExpression struct {
	Token     token.Token
	Function  Expression
	Arguments []Expression
}

func (e *CallExpression) expressionNode()      {}
func (e *CallExpression) TokenLiteral() string { return e.Token.Literal }

func (e *CallExpression) String() string {
	args := make([]string, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		args = append(args, str(a))
	}
	return str(e.Function) + "(" + strings.Join(args, ", ") + ")"
}

func (e *CallExpression) Accept(visitor Visitor) R {
	return visitor.VisitCallExpression(e)
}
