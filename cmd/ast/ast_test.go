package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateExpr(t *testing.T) {
	out, err := generateAst("Expr", exprTypes)
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)
	for _, want := range []string{
		"type expr interface {\n\tnodeID() int\n\tisExpr()\n}",
		"type binaryExpr struct {\n\tnode\n\tleft     expr\n\toperator *token\n\tright    expr\n}",
		"func (*thisExpr) isExpr() {}",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated Expr source is missing:\n%s\n\ngot:\n%s", want, src)
		}
	}
}

func TestGenerateStmt(t *testing.T) {
	out, err := generateAst("Stmt", stmtTypes)
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)
	if strings.Contains(src, "\tnode\n") {
		t.Errorf("statements must not embed node:\n%s", src)
	}
	for _, want := range []string{
		"type stmt interface {\n\tisStmt()\n}",
		"type classStmt struct {\n\tname    *token\n\tmethods []*functionStmt\n}",
		"func (*whileStmt) isStmt() {}",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated Stmt source is missing:\n%s\n\ngot:\n%s", want, src)
		}
	}
}

func TestWriteAst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stmt.go")
	if err := writeAst("Stmt", path); err != nil {
		t.Fatal(err)
	}
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, err := generateAst("Stmt", stmtTypes)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(written, want) {
		t.Errorf("written file differs from generated source:\n%s", written)
	}

	if err := writeAst("Decl", path); err == nil {
		t.Errorf("unknown base type should fail")
	}
}
