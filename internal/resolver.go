package internal

import "fmt"

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnInitializer
	fnMethod
)

type classType int

const (
	classNone classType = iota
	classClass
)

// resolver computes, for every local variable reference, how many
// scopes away its binding lives. Globals are left unresolved.
type resolver struct {
	// false while the initializer of the variable is being resolved
	scopes []map[string]bool

	currentFunction functionType
	currentClass    classType

	locals map[int]int
	state  *interpreterState
}

func newResolver(locals map[int]int, state *interpreterState) *resolver {
	return &resolver{
		locals: locals,
		state:  state,
	}
}

func (r *resolver) resolve(stmts []stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s stmt) {
	switch s := s.(type) {
	case *blockStmt:
		r.beginScope()
		r.resolve(s.stmts)
		r.endScope()
	case *classStmt:
		r.resolveClass(s)
	case *expressionStmt:
		r.resolveExpr(s.expression)
	case *functionStmt:
		// Defined before the body so the function can call itself
		r.declare(s.name)
		r.define(s.name)
		r.resolveFunction(s, fnFunction)
	case *ifStmt:
		r.resolveExpr(s.condition)
		r.resolveStmt(s.thenBranch)
		if s.elseBranch != nil {
			r.resolveStmt(s.elseBranch)
		}
	case *printStmt:
		r.resolveExpr(s.expression)
	case *returnStmt:
		if r.currentFunction == fnNone {
			r.state.tokenError(ResolveDiagnostic, errTopLevelReturn, s.keyword)
		}
		if s.value != nil {
			if r.currentFunction == fnInitializer {
				r.state.tokenError(ResolveDiagnostic, errInitializerReturn, s.keyword)
			}
			r.resolveExpr(s.value)
		}
	case *varStmt:
		r.declare(s.name)
		if s.initializer != nil {
			r.resolveExpr(s.initializer)
		}
		r.define(s.name)
	case *whileStmt:
		r.resolveExpr(s.condition)
		r.resolveStmt(s.body)
	default:
		panic(fmt.Sprintf("resolver: unexpected statement %T", s))
	}
}

func (r *resolver) resolveExpr(e expr) {
	switch e := e.(type) {
	case *assignExpr:
		r.resolveExpr(e.value)
		r.resolveLocal(e, e.name)
	case *binaryExpr:
		r.resolveExpr(e.left)
		r.resolveExpr(e.right)
	case *callExpr:
		r.resolveExpr(e.callee)
		for _, argument := range e.arguments {
			r.resolveExpr(argument)
		}
	case *getExpr:
		// Properties are looked up dynamically
		r.resolveExpr(e.object)
	case *groupingExpr:
		r.resolveExpr(e.expression)
	case *literalExpr:
	case *logicalExpr:
		r.resolveExpr(e.left)
		r.resolveExpr(e.right)
	case *setExpr:
		r.resolveExpr(e.value)
		r.resolveExpr(e.object)
	case *thisExpr:
		if r.currentClass == classNone {
			r.state.tokenError(ResolveDiagnostic, errThisOutsideClass, e.keyword)
			return
		}
		r.resolveLocal(e, e.keyword)
	case *unaryExpr:
		r.resolveExpr(e.right)
	case *variableExpr:
		if len(r.scopes) > 0 {
			if ready, declared := r.scopes[len(r.scopes)-1][e.name.lexeme]; declared && !ready {
				r.state.tokenError(ResolveDiagnostic, errOwnInitializer, e.name)
			}
		}
		r.resolveLocal(e, e.name)
	default:
		panic(fmt.Sprintf("resolver: unexpected expression %T", e))
	}
}

func (r *resolver) resolveClass(s *classStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass
	defer func() {
		r.currentClass = enclosingClass
	}()

	r.declare(s.name)
	r.define(s.name)

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.methods {
		kind := fnMethod
		if method.name.lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()
}

func (r *resolver) resolveFunction(fn *functionStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	defer func() {
		r.currentFunction = enclosingFunction
	}()

	r.beginScope()
	for _, param := range fn.params {
		r.declare(param)
		r.define(param)
	}
	r.resolve(fn.body)
	r.endScope()
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) declare(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.lexeme]; ok {
		r.state.tokenError(ResolveDiagnostic, errAlreadyDeclared, name)
		return
	}
	scope[name.lexeme] = false
}

func (r *resolver) define(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.lexeme] = true
}

// resolveLocal records the distance to the innermost scope that binds
// name. Nothing is recorded for globals.
func (r *resolver) resolveLocal(e expr, name *token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.lexeme]; ok {
			r.locals[e.nodeID()] = len(r.scopes) - 1 - i
			return
		}
	}
}
