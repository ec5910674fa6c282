package internal

import "fmt"

// env is one scope frame. Frames are shared: every closure created in
// a frame keeps it alive and sees later assignments to it.
type env struct {
	enclosing *env
	values    map[string]interface{}
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

func (e *env) get(name *token) (interface{}, error) {
	if value, ok := e.values[name.lexeme]; ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	return nil, undefinedVar(name)
}

// define may shadow a binding of the same frame
func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

func (e *env) assign(name *token, value interface{}) error {
	if _, ok := e.values[name.lexeme]; ok {
		e.values[name.lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.assign(name, value)
	}
	return undefinedVar(name)
}

func (e *env) ancestor(distance int) *env {
	environment := e
	for i := 0; i < distance; i++ {
		environment = environment.enclosing
	}
	return environment
}

// getAt reads a variable the resolver placed exactly distance frames
// away. A miss means the resolver and the interpreter disagree.
func (e *env) getAt(distance int, name string) interface{} {
	value, ok := e.ancestor(distance).values[name]
	if !ok {
		panic(fmt.Sprintf("env: %q not found at distance %d", name, distance))
	}
	return value
}

func (e *env) assignAt(distance int, name *token, value interface{}) {
	frame := e.ancestor(distance)
	if _, ok := frame.values[name.lexeme]; !ok {
		panic(fmt.Sprintf("env: %q not found at distance %d", name.lexeme, distance))
	}
	frame.values[name.lexeme] = value
}

func undefinedVar(name *token) *RuntimeError {
	return newRuntimeErrorf(name, errUndefinedVar, "%s '%s'.", errUndefinedVar.Error(), name.lexeme)
}
