package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
)

//go:generate go run . -o ../../internal/expr.go Expr
//go:generate go run . -o ../../internal/stmt.go Stmt

var exprTypes = []string{
	"Assign: name *token, value expr",
	"Binary: left expr, operator *token, right expr",
	"Call: callee expr, paren *token, arguments []expr",
	"Get: object expr, name *token",
	"Grouping: expression expr",
	"Literal: value interface{}",
	"Logical: left expr, operator *token, right expr",
	"Set: object expr, name *token, value expr",
	"This: keyword *token",
	"Unary: operator *token, right expr",
	"Variable: name *token",
}

var stmtTypes = []string{
	"Block: stmts []stmt",
	"Class: name *token, methods []*functionStmt",
	"Expression: expression expr",
	"Function: name *token, params []*token, body []stmt",
	"If: condition expr, thenBranch stmt, elseBranch stmt",
	"Print: expression expr",
	"Return: keyword *token, value expr",
	"Var: name *token, initializer expr",
	"While: condition expr, body stmt",
}

func main() {
	output := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: ast [-o file] Expr|Stmt")
		os.Exit(2)
	}

	if err := writeAst(flag.Arg(0), *output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// writeAst generates baseName into output, or to stdout when output is empty
func writeAst(baseName, output string) error {
	var types []string
	switch baseName {
	case "Expr":
		types = exprTypes
	case "Stmt":
		types = stmtTypes
	default:
		return fmt.Errorf("unknown base type %q", baseName)
	}

	out, err := generateAst(baseName, types)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(output, out, 0644)
}

// generateAst emits one sealed interface and a struct per variant.
// Expression variants embed node so the resolver can key on their identity.
func generateAst(baseName string, types []string) ([]byte, error) {
	lowerBase := strings.ToLower(baseName)

	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + lowerBase + " interface {\n"
	if baseName == "Expr" {
		out += "\tnodeID() int\n"
	}
	out += "\tis" + baseName + "()\n"
	out += "}\n\n"
	// End base interface

	// Start structs
	for _, t := range types {
		typeDef := strings.SplitN(t, ":", 2)
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return format.Source([]byte(out))
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	if baseName == "Expr" {
		out += "\tnode\n"
	}
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (*" + structName + ") is" + baseName + "() {}\n\n"
	// End Method Definition

	return out
}
