package parser

import (
	"fmt"
	"strconv"

	"devt.de/krotik/common/errorutil"

	"cod/internal/ast"
	"cod/internal/lexer"
	"cod/internal/token"
)

// Binding power of operators, lowest first
const (
	_ int = iota
	LOWEST
	LOGICAL_OR  // ||
	LOGICAL_AND // &&
	EQUALS      // ==
	LESSGREATER // > or <
	SUM         // +
	PRODUCT     // *
	PREFIX      // -X or !X
	CALL        // fn(X)
)

var precedences = map[token.Type]int{
	token.OR:       LOGICAL_OR,
	token.AND:      LOGICAL_AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LTE:      LESSGREATER,
	token.GTE:      LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// callStack tracks the loops open inside the function being parsed
type callStack struct {
	function  string
	loopCount int
}

// Parser builds a program from the tokens of a lexer
type Parser struct {
	l      *lexer.Lexer
	errors *errorutil.CompositeError

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn

	cls []*callStack
}

// New creates a parser reading from l
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: errorutil.NewCompositeError(),
	}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:    p.parseIdentifier,
		token.INT:      p.parseIntegerLiteral,
		token.STRING:   p.parseStringLiteral,
		token.TRUE:     p.parseBoolean,
		token.FALSE:    p.parseBoolean,
		token.BANG:     p.parsePrefixExpression,
		token.MINUS:    p.parsePrefixExpression,
		token.LPAREN:   p.parseGroupedExpression,
		token.IF:       p.parseIfExpression,
		token.WHILE:    p.parseWhileExpression,
		token.FUNCTION: p.parseFunctionLiteral,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.EQ:       p.parseInfixExpression,
		token.NOT_EQ:   p.parseInfixExpression,
		token.LT:       p.parseInfixExpression,
		token.GT:       p.parseInfixExpression,
		token.LTE:      p.parseInfixExpression,
		token.GTE:      p.parseInfixExpression,
		token.AND:      p.parseInfixExpression,
		token.OR:       p.parseInfixExpression,
		token.LPAREN:   p.parseCallExpression,
	}

	// Read two tokens, so curToken and peekToken are both set
	p.advance()
	p.advance()

	return p
}

// Diagnostics returns the messages collected while parsing, in order
func (p *Parser) Diagnostics() []string {
	out := make([]string, 0, len(p.errors.Errors))
	for _, e := range p.errors.Errors {
		out = append(out, e.Error())
	}
	return out
}

// Err returns all diagnostics as a single error, or nil when there are none
func (p *Parser) Err() error {
	if !p.errors.HasErrors() {
		return nil
	}
	return p.errors
}

// ParseProgram parses until the end of input. It always returns a program;
// check Diagnostics before trusting it.
func (p *Parser) ParseProgram() *ast.Program {
	p.cls = make([]*callStack, 0)
	p.enterFunction("")
	defer p.leaveFunction()

	program := &ast.Program{
		Statements: []ast.Statement{},
	}
	for !p.curTokenIs(token.EOF) {
		// Statements that failed to parse come back nil and are dropped
		if st := p.parseStatement(); st != nil {
			program.Statements = append(program.Statements, st)
		}
		p.advance()
	}
	return program
}

func (p *Parser) enterFunction(name string) {
	p.cls = append(p.cls, &callStack{
		function:  name,
		loopCount: 0,
	})
}

func (p *Parser) leaveFunction() {
	p.cls = p.cls[:len(p.cls)-1]
}

func (p *Parser) getParsingContext() *callStack {
	return p.cls[len(p.cls)-1]
}

func (p *Parser) enterLoop() {
	p.getParsingContext().loopCount++
}

func (p *Parser) leaveLoop() {
	p.getParsingContext().loopCount--
}

func (p *Parser) insideLoop() bool {
	return p.getParsingContext().loopCount != 0
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.consume(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.consume(token.ASSIGN) {
		return nil
	}
	p.advance()

	stmt.Value = p.parseExpression(LOWEST)

	p.skipSemicolon()
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	// Bare devuelve returns nulo
	if p.peekTokenIs(token.SEMICOLON) || p.peekTokenIs(token.RBRACE) || p.peekTokenIs(token.EOF) {
		p.skipSemicolon()
		return stmt
	}
	p.advance()

	stmt.ReturnValue = p.parseExpression(LOWEST)

	p.skipSemicolon()
	return stmt
}

func (p *Parser) parseBreakStatement() ast.Statement {
	stmt := &ast.BreakStatement{Token: p.curToken}
	if !p.insideLoop() {
		p.errors.Add(errBreakOutsideLoop)
	}
	p.skipSemicolon()
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)

	p.skipSemicolon()

	if stmt.Expression == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errors.Add(fmt.Errorf("%w: %s", errNoPrefixParseFn, p.curToken.Literal))
		return nil
	}
	leftExp := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}

		p.advance()

		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errors.Add(fmt.Errorf("%w: %s", errInvalidInteger, p.curToken.Literal))
		return lit
	}

	lit.Value = &value
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.advance()

	expression.Right = p.parseExpression(PREFIX)

	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.advance()
	expression.Right = p.parseExpression(precedence)

	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance()

	exp := p.parseExpression(LOWEST)

	if !p.consume(token.RPAREN) {
		return nil
	}

	return exp
}

func (p *Parser) parseIfExpression() ast.Expression {
	expression := &ast.IfExpression{Token: p.curToken}

	condition, ok := p.parseCondition()
	if !ok {
		return nil
	}
	expression.Condition = condition

	if !p.consume(token.LBRACE) {
		return nil
	}
	expression.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.ELSE) {
		p.advance()

		if !p.consume(token.LBRACE) {
			return nil
		}

		expression.Alternative = p.parseBlockStatement()
	}

	return expression
}

func (p *Parser) parseWhileExpression() ast.Expression {
	expression := &ast.WhileExpression{Token: p.curToken}

	condition, ok := p.parseCondition()
	if !ok {
		return nil
	}
	expression.Condition = condition

	if !p.consume(token.LBRACE) {
		return nil
	}

	p.enterLoop()
	defer p.leaveLoop()
	expression.Body = p.parseBlockStatement()

	return expression
}

// parseCondition parses the parenthesised condition of si and mientras
func (p *Parser) parseCondition() (ast.Expression, bool) {
	if !p.consume(token.LPAREN) {
		return nil, false
	}
	p.advance()

	condition := p.parseExpression(LOWEST)

	if !p.consume(token.RPAREN) {
		return nil, false
	}
	return condition, true
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{
		Token:      p.curToken,
		Statements: []ast.Statement{},
	}

	p.advance()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if st := p.parseStatement(); st != nil {
			block.Statements = append(block.Statements, st)
		}
		p.advance()
	}

	if p.curTokenIs(token.EOF) {
		p.errors.Add(errUnclosedBlock)
	}

	return block
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	if !p.consume(token.LPAREN) {
		return nil
	}

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}
	lit.Parameters = params

	if !p.consume(token.LBRACE) {
		return nil
	}

	// Loops of the enclosing code cannot be left from inside the body
	p.enterFunction(lit.Token.Literal)
	defer p.leaveFunction()
	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, bool) {
	identifiers := []*ast.Identifier{}

	if p.peekTokenIs(token.RPAREN) {
		p.advance()
		return identifiers, true
	}

	if !p.consume(token.IDENT) {
		return nil, false
	}
	identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(token.COMMA) {
		p.advance()
		if !p.consume(token.IDENT) {
			return nil, false
		}
		identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.consume(token.RPAREN) {
		return nil, false
	}

	return identifiers, true
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Function: function}

	args, ok := p.parseExpressionList(token.RPAREN)
	if !ok {
		return nil
	}
	exp.Arguments = args

	return exp
}

func (p *Parser) parseExpressionList(end token.Type) ([]ast.Expression, bool) {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.advance()
		return list, true
	}

	p.advance()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(token.COMMA) {
		p.advance()
		p.advance()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.consume(end) {
		return nil, false
	}

	return list, true
}

func (p *Parser) advance() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// consume advances when the next token is of kind tk, otherwise it
// records a diagnostic and leaves the position untouched
func (p *Parser) consume(tk token.Type) bool {
	if p.peekTokenIs(tk) {
		p.advance()
		return true
	}
	p.errors.Add(fmt.Errorf(
		"%w: se esperaba %s pero se obtuvo %s",
		errUnexpectedToken,
		tk,
		p.peekToken.Type,
	))
	return false
}

func (p *Parser) skipSemicolon() {
	if p.peekTokenIs(token.SEMICOLON) {
		p.advance()
	}
}

func (p *Parser) curTokenIs(tk token.Type) bool {
	return p.curToken.Type == tk
}

func (p *Parser) peekTokenIs(tk token.Type) bool {
	return p.peekToken.Type == tk
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}
