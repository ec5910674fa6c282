package internal

import "fmt"

// loxCallable is implemented by every value that can be called
type loxCallable interface {
	arity() int
	call(exec *exec, arguments []interface{}) (interface{}, error)
}

type loxFunction struct {
	declaration   *functionStmt
	closure       *env
	isInitializer bool
}

type nativeFn struct {
	name       string
	arityValue int
	callFn     func(exec *exec, arguments []interface{}) (interface{}, error)
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *exec, arguments []interface{}) (interface{}, error) {
	exec.state.logger.WithField("native", n.name).Debug("native call")
	return n.callFn(exec, arguments)
}

func (n *nativeFn) String() string {
	return "<native fn>"
}

func (f *loxFunction) arity() int {
	return len(f.declaration.params)
}

func (f *loxFunction) call(exec *exec, arguments []interface{}) (interface{}, error) {
	// The parent is the closure, not the caller's environment
	environment := newEnv(f.closure)
	for i, param := range f.declaration.params {
		environment.define(param.lexeme, arguments[i])
	}

	result, err := exec.executeBlock(f.declaration.body, environment)
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.getAt(0, "this"), nil
	}
	if result.returning {
		return result.value, nil
	}
	return nil, nil
}

// bind returns a copy of the method whose closure defines this
func (f *loxFunction) bind(instance *loxInstance) *loxFunction {
	environment := newEnv(f.closure)
	environment.define("this", instance)
	return &loxFunction{
		declaration:   f.declaration,
		closure:       environment,
		isInitializer: f.isInitializer,
	}
}

func (f *loxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}
