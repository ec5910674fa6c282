package internal

import (
	"strconv"
	"strings"
)

// ParseTree parses source and renders every statement on its own line
// in a parenthesized prefix form. Nothing is resolved or executed.
func ParseTree(source string) (string, []Diagnostic) {
	state := newInterpreterState(nopReporter{}, discardLogger())
	tokens := newLexer(source, state).scan()
	stmts := newParser(tokens, &nodeIDs{}, state).parse()
	if !state.Valid() {
		return "", state.diagnostics
	}

	var out strings.Builder
	for _, s := range stmts {
		out.WriteString(renderStmt(s))
		out.WriteString("\n")
	}
	return out.String(), nil
}

func renderStmt(s stmt) string {
	switch s := s.(type) {
	case *blockStmt:
		return parenthesizeStmts("block", s.stmts)
	case *classStmt:
		out := "(class " + s.name.lexeme
		for _, method := range s.methods {
			out += " " + renderStmt(method)
		}
		return out + ")"
	case *expressionStmt:
		return parenthesize(";", s.expression)
	case *functionStmt:
		params := make([]string, len(s.params))
		for i, param := range s.params {
			params[i] = param.lexeme
		}
		return parenthesizeStmts("fun "+s.name.lexeme+"("+strings.Join(params, " ")+")", s.body)
	case *ifStmt:
		out := "(if " + renderExpr(s.condition) + " " + renderStmt(s.thenBranch)
		if s.elseBranch != nil {
			out += " " + renderStmt(s.elseBranch)
		}
		return out + ")"
	case *printStmt:
		return parenthesize("print", s.expression)
	case *returnStmt:
		if s.value == nil {
			return "(return)"
		}
		return parenthesize("return", s.value)
	case *varStmt:
		if s.initializer == nil {
			return "(var " + s.name.lexeme + ")"
		}
		return parenthesize("var "+s.name.lexeme+" =", s.initializer)
	case *whileStmt:
		return "(while " + renderExpr(s.condition) + " " + renderStmt(s.body) + ")"
	}
	return "<unknown stmt>"
}

func renderExpr(e expr) string {
	switch e := e.(type) {
	case *assignExpr:
		return parenthesize("= "+e.name.lexeme, e.value)
	case *binaryExpr:
		return parenthesize(e.operator.lexeme, e.left, e.right)
	case *callExpr:
		return parenthesize("call", append([]expr{e.callee}, e.arguments...)...)
	case *getExpr:
		return parenthesize(". "+e.name.lexeme, e.object)
	case *groupingExpr:
		return parenthesize("group", e.expression)
	case *literalExpr:
		if s, ok := e.value.(string); ok {
			return strconv.Quote(s)
		}
		return stringify(e.value)
	case *logicalExpr:
		return parenthesize(e.operator.lexeme, e.left, e.right)
	case *setExpr:
		return parenthesize("= . "+e.name.lexeme, e.object, e.value)
	case *thisExpr:
		return "this"
	case *unaryExpr:
		return parenthesize(e.operator.lexeme, e.right)
	case *variableExpr:
		return e.name.lexeme
	}
	return "<unknown expr>"
}

func parenthesize(name string, exprs ...expr) string {
	var out strings.Builder
	out.WriteString("(")
	out.WriteString(name)
	for _, e := range exprs {
		out.WriteString(" ")
		out.WriteString(renderExpr(e))
	}
	out.WriteString(")")
	return out.String()
}

func parenthesizeStmts(name string, stmts []stmt) string {
	out := "(" + name
	for _, s := range stmts {
		out += " " + renderStmt(s)
	}
	return out + ")"
}
