package internal

import (
	"errors"
	"fmt"
)

// maxCallDepth bounds recursion so a runaway program reports an error
// instead of exhausting the goroutine stack
const maxCallDepth = 4096

type exec struct {
	state *interpreterState

	globals *env
	env     *env

	// scope distances computed by the resolver, keyed by node id
	locals map[int]int

	printer   Printer
	callDepth int
}

// completion is the outcome of executing a statement. A return
// statement sets returning and unwinds to the enclosing call.
type completion struct {
	returning bool
	value     interface{}
}

var normal = completion{}

func newExec(printer Printer) *exec {
	globals := newEnv(nil)
	return &exec{
		globals: globals,
		env:     globals,
		locals:  make(map[int]int),
		printer: printer,
	}
}

// interpret runs the statements until one fails and returns how many
// of them completed
func (e *exec) interpret(stmts []stmt) int {
	// A previous run may have been aborted inside a block
	e.env = e.globals
	e.callDepth = 0

	for i, s := range stmts {
		c, err := e.execute(s)
		if err != nil {
			var runErr *RuntimeError
			if !errors.As(err, &runErr) {
				panic(err)
			}
			e.state.runtimeErr(runErr)
			return i
		}
		if c.returning {
			panic("return outside of a function")
		}
	}
	return len(stmts)
}

func (e *exec) execute(s stmt) (completion, error) {
	switch s := s.(type) {
	case *blockStmt:
		return e.executeBlock(s.stmts, newEnv(e.env))
	case *classStmt:
		return normal, e.executeClass(s)
	case *expressionStmt:
		_, err := e.evaluate(s.expression)
		return normal, err
	case *functionStmt:
		e.env.define(s.name.lexeme, &loxFunction{
			declaration: s,
			closure:     e.env,
		})
		return normal, nil
	case *ifStmt:
		cond, err := e.evaluate(s.condition)
		if err != nil {
			return normal, err
		}
		if truthy(cond) {
			return e.execute(s.thenBranch)
		}
		if s.elseBranch != nil {
			return e.execute(s.elseBranch)
		}
		return normal, nil
	case *printStmt:
		value, err := e.evaluate(s.expression)
		if err != nil {
			return normal, err
		}
		if _, err := e.printer.Println(stringify(value)); err != nil {
			e.state.logger.WithError(err).Warn("print failed")
		}
		return normal, nil
	case *returnStmt:
		var value interface{}
		if s.value != nil {
			v, err := e.evaluate(s.value)
			if err != nil {
				return normal, err
			}
			value = v
		}
		return completion{returning: true, value: value}, nil
	case *varStmt:
		var value interface{}
		if s.initializer != nil {
			v, err := e.evaluate(s.initializer)
			if err != nil {
				return normal, err
			}
			value = v
		}
		e.env.define(s.name.lexeme, value)
		return normal, nil
	case *whileStmt:
		for {
			cond, err := e.evaluate(s.condition)
			if err != nil {
				return normal, err
			}
			if !truthy(cond) {
				return normal, nil
			}
			c, err := e.execute(s.body)
			if err != nil || c.returning {
				return c, err
			}
		}
	}
	panic(fmt.Sprintf("exec: unexpected statement %T", s))
}

// executeBlock runs stmts inside env and always restores the previous
// environment, whether the block completes, returns or fails
func (e *exec) executeBlock(stmts []stmt, env *env) (completion, error) {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		c, err := e.execute(s)
		if err != nil || c.returning {
			return c, err
		}
	}
	return normal, nil
}

func (e *exec) executeClass(s *classStmt) error {
	// Defined before the methods exist so they can refer to the class
	e.env.define(s.name.lexeme, nil)

	methods := make(map[string]*loxFunction, len(s.methods))
	for _, method := range s.methods {
		methods[method.name.lexeme] = &loxFunction{
			declaration:   method,
			closure:       e.env,
			isInitializer: method.name.lexeme == "init",
		}
	}

	return e.env.assign(s.name, &loxClass{
		name:    s.name.lexeme,
		methods: methods,
	})
}

func (e *exec) evaluate(ex expr) (interface{}, error) {
	switch ex := ex.(type) {
	case *assignExpr:
		return e.evaluateAssign(ex)
	case *binaryExpr:
		return e.evaluateBinary(ex)
	case *callExpr:
		return e.evaluateCall(ex)
	case *getExpr:
		object, err := e.evaluate(ex.object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*loxInstance)
		if !ok {
			return nil, newRuntimeError(ex.name, errOnlyInstancesProps)
		}
		return instance.get(ex.name)
	case *groupingExpr:
		return e.evaluate(ex.expression)
	case *literalExpr:
		return ex.value, nil
	case *logicalExpr:
		return e.evaluateLogical(ex)
	case *setExpr:
		object, err := e.evaluate(ex.object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*loxInstance)
		if !ok {
			return nil, newRuntimeError(ex.name, errOnlyInstancesFields)
		}
		value, err := e.evaluate(ex.value)
		if err != nil {
			return nil, err
		}
		instance.set(ex.name, value)
		return value, nil
	case *thisExpr:
		return e.lookUpVariable(ex.keyword, ex)
	case *unaryExpr:
		return e.evaluateUnary(ex)
	case *variableExpr:
		return e.lookUpVariable(ex.name, ex)
	}
	panic(fmt.Sprintf("exec: unexpected expression %T", ex))
}

func (e *exec) evaluateAssign(ex *assignExpr) (interface{}, error) {
	value, err := e.evaluate(ex.value)
	if err != nil {
		return nil, err
	}
	if distance, ok := e.locals[ex.nodeID()]; ok {
		e.env.assignAt(distance, ex.name, value)
		return value, nil
	}
	if err := e.globals.assign(ex.name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (e *exec) lookUpVariable(name *token, ex expr) (interface{}, error) {
	if distance, ok := e.locals[ex.nodeID()]; ok {
		return e.env.getAt(distance, name.lexeme), nil
	}
	return e.globals.get(name)
}

func (e *exec) evaluateBinary(ex *binaryExpr) (interface{}, error) {
	left, err := e.evaluate(ex.left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(ex.right)
	if err != nil {
		return nil, err
	}
	switch ex.operator.token {
	case tkEqualEqual:
		return isEqual(left, right), nil
	case tkBangEqual:
		return !isEqual(left, right), nil
	case tkPlus:
		return add(ex.operator, left, right)
	}
	return applyNumbers(ex.operator, left, right)
}

// evaluateLogical returns one of the operands, not a boolean
func (e *exec) evaluateLogical(ex *logicalExpr) (interface{}, error) {
	left, err := e.evaluate(ex.left)
	if err != nil {
		return nil, err
	}
	if ex.operator.token == tkOr {
		if truthy(left) {
			return left, nil
		}
	} else if !truthy(left) {
		return left, nil
	}
	return e.evaluate(ex.right)
}

func (e *exec) evaluateUnary(ex *unaryExpr) (interface{}, error) {
	value, err := e.evaluate(ex.right)
	if err != nil {
		return nil, err
	}
	switch ex.operator.token {
	case tkBang:
		return !truthy(value), nil
	case tkMinus:
		valueNum, ok := value.(float64)
		if !ok {
			return nil, newRuntimeError(ex.operator, errOnlyNumber)
		}
		return -valueNum, nil
	}
	return nil, newRuntimeErrorf(ex.operator, errUndefinedOp, "%s '%s'.", errUndefinedOp.Error(), ex.operator.lexeme)
}

func (e *exec) evaluateCall(ex *callExpr) (interface{}, error) {
	callee, err := e.evaluate(ex.callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]interface{}, len(ex.arguments))
	for i := range ex.arguments {
		if arguments[i], err = e.evaluate(ex.arguments[i]); err != nil {
			return nil, err
		}
	}

	fn, isFn := callee.(loxCallable)
	if !isFn {
		return nil, newRuntimeError(ex.paren, errOnlyFunction)
	}

	if len(arguments) != fn.arity() {
		return nil, newRuntimeErrorf(
			ex.paren,
			errInvalidNumberArguments,
			"Expected %d arguments but got %d.",
			fn.arity(),
			len(arguments),
		)
	}

	if e.callDepth >= maxCallDepth {
		return nil, newRuntimeError(ex.paren, errStackOverflow)
	}
	e.callDepth++
	defer func() {
		e.callDepth--
	}()

	return fn.call(e, arguments)
}
