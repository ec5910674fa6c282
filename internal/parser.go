package internal

import "fmt"

// parser stores parser data
type parser struct {
	tokens  []*token
	current int

	ids   *nodeIDs
	state *interpreterState
}

// parseError unwinds the parser up to the enclosing declaration
type parseError struct {
	err error
}

const maxFunctionParams = 255

func newParser(tokens []*token, ids *nodeIDs, state *interpreterState) *parser {
	return &parser{
		tokens: tokens,
		ids:    ids,
		state:  state,
	}
}

func (p *parser) parse() []stmt {
	stmts := make([]stmt, 0)
	for !p.isAtEnd() {
		// A declaration that failed to parse yields nil, the program
		// will not run anyway
		if st := p.declaration(); st != nil {
			stmts = append(stmts, st)
		}
	}
	return stmts
}

func (p *parser) declaration() (s stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	if p.match(tkClass) {
		return p.class()
	}
	if p.match(tkFun) {
		return p.fn("function")
	}
	if p.match(tkVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) class() stmt {
	name := p.consume(tkIdentifier, errExpectedClassName)
	p.consume(tkLeftBrace, errExpectedBraceBeforeClass)

	var methods []*functionStmt
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		methods = append(methods, p.fn("method"))
	}

	p.consume(tkRightBrace, errExpectedBraceAfterClass)

	return &classStmt{
		name:    name,
		methods: methods,
	}
}

// fn parses a function or a method, kind only changes the messages
func (p *parser) fn(kind string) *functionStmt {
	name := p.consume(tkIdentifier, fmt.Errorf("Expect %s name.", kind))
	p.consume(tkLeftParen, fmt.Errorf("Expect '(' after %s name.", kind))

	var params []*token
	if !p.check(tkRightParen) {
		for {
			if len(params) >= maxFunctionParams {
				p.state.tokenError(SyntaxDiagnostic, errMaxParameters, p.peek())
			}
			params = append(params, p.consume(tkIdentifier, errExpectedParamName))
			if !p.match(tkComma) {
				break
			}
		}
	}
	p.consume(tkRightParen, errExpectedParenAfterParams)

	p.consume(tkLeftBrace, fmt.Errorf("Expect '{' before %s body.", kind))
	body := p.block()

	return &functionStmt{
		name:   name,
		params: params,
		body:   body,
	}
}

func (p *parser) varDeclaration() stmt {
	name := p.consume(tkIdentifier, errExpectedVarName)

	var init expr
	if p.match(tkEqual) {
		init = p.expression()
	}

	p.consume(tkSemicolon, errExpectedSemicolonVar)
	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() stmt {
	if p.match(tkFor) {
		return p.forLoop()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkPrint) {
		return p.printStmt()
	}
	if p.match(tkReturn) {
		return p.ret()
	}
	if p.match(tkWhile) {
		return p.while()
	}
	if p.match(tkLeftBrace) {
		return &blockStmt{stmts: p.block()}
	}
	return p.expressionStmt()
}

// forLoop desugars into while, there is no for node at runtime:
//
//	{ init; while (cond) { body; inc; } }
func (p *parser) forLoop() stmt {
	p.consume(tkLeftParen, errExpectedParenAfterForKw)

	var init stmt
	if p.match(tkSemicolon) {
		init = nil
	} else if p.match(tkVar) {
		init = p.varDeclaration()
	} else {
		init = p.expressionStmt()
	}

	var cond expr
	if !p.check(tkSemicolon) {
		cond = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolonCond)

	var inc expr
	if !p.check(tkRightParen) {
		inc = p.expression()
	}
	p.consume(tkRightParen, errExpectedParenAfterFor)

	body := p.statement()

	if inc != nil {
		body = &blockStmt{
			stmts: []stmt{body, &expressionStmt{expression: inc}},
		}
	}

	if cond == nil {
		cond = &literalExpr{node: p.ids.node(), value: true}
	}
	body = &whileStmt{
		condition: cond,
		body:      body,
	}

	if init != nil {
		body = &blockStmt{
			stmts: []stmt{init, body},
		}
	}

	return body
}

func (p *parser) ifStmt() stmt {
	p.consume(tkLeftParen, errExpectedParenAfterIf)
	cond := p.expression()
	p.consume(tkRightParen, errExpectedParenAfterCond)

	st := &ifStmt{
		condition:  cond,
		thenBranch: p.statement(),
	}
	if p.match(tkElse) {
		st.elseBranch = p.statement()
	}
	return st
}

func (p *parser) printStmt() stmt {
	value := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolonValue)
	return &printStmt{expression: value}
}

func (p *parser) ret() stmt {
	keyword := p.previous()
	var value expr
	if !p.check(tkSemicolon) {
		value = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolonReturn)
	return &returnStmt{
		keyword: keyword,
		value:   value,
	}
}

func (p *parser) while() stmt {
	p.consume(tkLeftParen, errExpectedParenAfterWhile)
	cond := p.expression()
	p.consume(tkRightParen, errExpectedParenAfterCond)
	return &whileStmt{
		condition: cond,
		body:      p.statement(),
	}
}

func (p *parser) block() []stmt {
	stmts := make([]stmt, 0)
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		if st := p.declaration(); st != nil {
			stmts = append(stmts, st)
		}
	}
	p.consume(tkRightBrace, errExpectedBraceAfterBlock)
	return stmts
}

func (p *parser) expressionStmt() stmt {
	expr := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolonExpr)
	return &expressionStmt{expression: expr}
}

func (p *parser) expression() expr {
	return p.assignment()
}

// assignment parses the target as an ordinary expression first and
// only then checks that it can be assigned to
func (p *parser) assignment() expr {
	expr := p.or()
	if p.match(tkEqual) {
		equal := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *variableExpr:
			return &assignExpr{
				node:  p.ids.node(),
				name:  target.name,
				value: value,
			}
		case *getExpr:
			return &setExpr{
				node:   p.ids.node(),
				object: target.object,
				name:   target.name,
				value:  value,
			}
		}

		// No need to synchronize, the parser is not confused
		p.state.tokenError(SyntaxDiagnostic, errInvalidAssignment, equal)
	}
	return expr
}

func (p *parser) or() expr {
	expr := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		expr = &logicalExpr{
			node:     p.ids.node(),
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() expr {
	expr := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		expr = &logicalExpr{
			node:     p.ids.node(),
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() expr {
	return p.binary(p.comparison, tkEqualEqual, tkBangEqual)
}

func (p *parser) comparison() expr {
	return p.binary(p.addition, tkGreater, tkGreaterEqual, tkLess, tkLessEqual)
}

func (p *parser) addition() expr {
	return p.binary(p.multiplication, tkPlus, tkMinus)
}

func (p *parser) multiplication() expr {
	return p.binary(p.unary, tkSlash, tkStar)
}

// binary parses a left associative level of the grammar
func (p *parser) binary(operand func() expr, operators ...tokenType) expr {
	expr := operand()
	for p.match(operators...) {
		operator := p.previous()
		right := operand()
		expr = &binaryExpr{
			node:     p.ids.node(),
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			node:     p.ids.node(),
			operator: operator,
			right:    right,
		}
	}
	return p.call()
}

func (p *parser) call() expr {
	expr := p.primary()
	for {
		if p.match(tkLeftParen) {
			expr = p.finishCall(expr)
		} else if p.match(tkDot) {
			name := p.consume(tkIdentifier, errExpectedPropName)
			expr = &getExpr{
				node:   p.ids.node(),
				object: expr,
				name:   name,
			}
		} else {
			break
		}
	}
	return expr
}

func (p *parser) finishCall(callee expr) expr {
	arguments := make([]expr, 0)
	if !p.check(tkRightParen) {
		for {
			if len(arguments) >= maxFunctionParams {
				p.state.tokenError(SyntaxDiagnostic, errMaxArguments, p.peek())
			}
			arguments = append(arguments, p.expression())
			if !p.match(tkComma) {
				break
			}
		}
	}
	paren := p.consume(tkRightParen, errExpectedParenAfterArgs)
	return &callExpr{
		node:      p.ids.node(),
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

func (p *parser) primary() expr {
	if p.match(tkFalse) {
		return &literalExpr{node: p.ids.node(), value: false}
	}
	if p.match(tkTrue) {
		return &literalExpr{node: p.ids.node(), value: true}
	}
	if p.match(tkNil) {
		return &literalExpr{node: p.ids.node(), value: nil}
	}
	if p.match(tkNumber, tkString) {
		return &literalExpr{node: p.ids.node(), value: p.previous().literal}
	}
	if p.match(tkThis) {
		return &thisExpr{node: p.ids.node(), keyword: p.previous()}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{node: p.ids.node(), name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errExpectedParenAfterExpr)
		return &groupingExpr{node: p.ids.node(), expression: expr}
	}

	panic(p.error(p.peek(), errExpectedExpr))
}

func (p *parser) consume(tk tokenType, err error) *token {
	if p.check(tk) {
		return p.advance()
	}
	panic(p.error(p.peek(), err))
}

func (p *parser) error(tk *token, err error) parseError {
	p.state.tokenError(SyntaxDiagnostic, err, tk)
	return parseError{err: err}
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(token tokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().token == token
}

func (p *parser) peek() *token {
	return p.tokens[p.current]
}

func (p *parser) previous() *token {
	return p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

// synchronize discards tokens until a statement boundary
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().token == tkSemicolon {
			return
		}
		switch p.peek().token {
		case tkClass, tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		}
		p.advance()
	}
}
