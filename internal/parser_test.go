package internal

import (
	"strconv"
	"strings"
	"testing"
)

func checkTree(t *testing.T, source string, lines ...string) {
	t.Helper()
	tree, diagnostics := ParseTree(source)
	if len(diagnostics) > 0 {
		t.Fatalf("parsing %q reported %v", source, diagnostics)
	}
	if want := strings.Join(lines, "\n") + "\n"; tree != want {
		t.Errorf("parsing %q\ngot:\n%s\nwant:\n%s", source, tree, want)
	}
}

func parseSource(source string) ([]stmt, *testPrinter) {
	tp := &testPrinter{}
	state := newInterpreterState(tp, discardLogger())
	tokens := newLexer(source, state).scan()
	return newParser(tokens, &nodeIDs{}, state).parse(), tp
}

func TestParseExpressions(t *testing.T) {
	checkTree(t, "1 + 2 * 3;", "(; (+ 1 (* 2 3)))")
	checkTree(t, "(1 + 2) * 3;", "(; (* (group (+ 1 2)) 3))")
	checkTree(t, "1 - 2 - 3;", "(; (- (- 1 2) 3))")
	checkTree(t, "-123 * (45.67);", "(; (* (- 123) (group 45.67)))")
	checkTree(t, "!!true;", "(; (! (! true)))")
	checkTree(t, "a == b != c;", "(; (!= (== a b) c))")
	checkTree(t, "1 < 2 == 3 >= 4;", "(; (== (< 1 2) (>= 3 4)))")
	checkTree(t, "a or b and c;", "(; (or a (and b c)))")
	checkTree(t, "a = b = c;", "(; (= a (= b c)))")
	checkTree(t, `"s" + nil;`, `(; (+ "s" nil))`)
}

func TestParseCallsAndProperties(t *testing.T) {
	checkTree(t, "f();", "(; (call f))")
	checkTree(t, "f(1, 2)(3);", "(; (call (call f 1 2) 3))")
	checkTree(t, "a.b.c;", "(; (. c (. b a)))")
	checkTree(t, "a.b(1).c;", "(; (. c (call (. b a) 1)))")
	checkTree(t, "a.b = 1;", "(; (= . b a 1))")
	checkTree(t, "a.b.c = d;", "(; (= . c (. b a) d))")
	checkTree(t, "this.x;", "(; (. x this))")
}

func TestParseStatements(t *testing.T) {
	checkTree(t, "var a;", "(var a)")
	checkTree(t, "var a = 1;", "(var a = 1)")
	checkTree(t, "print a;", "(print a)")
	checkTree(t, "{ var a; print a; }", "(block (var a) (print a))")
	checkTree(t, "if (a) print 1; else print 2;", "(if a (print 1) (print 2))")
	checkTree(t, "while (a) a = a - 1;", "(while a (; (= a (- a 1))))")
	checkTree(t, "fun f(a, b) { return a; }", "(fun f(a b) (return a))")
	checkTree(t, "fun f() { return; }", "(fun f() (return))")
	checkTree(t,
		"class A { init(x) { this.x = x; } get() { return this.x; } }",
		"(class A (fun init(x) (; (= . x this x))) (fun get() (return (. x this))))",
	)
	checkTree(t, "print 1; print 2;", "(print 1)", "(print 2)")
}

func TestParseForDesugaring(t *testing.T) {
	checkTree(t,
		"for (var i = 0; i < 3; i = i + 1) print i;",
		"(block (var i = 0) (while (< i 3) (block (print i) (; (= i (+ i 1))))))",
	)
	checkTree(t, "for (;;) print 1;", "(while true (print 1))")
	checkTree(t, "for (i = 0; i < 1;) print i;", "(block (; (= i 0)) (while (< i 1) (print i)))")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		source string
		errors string
	}{
		{"1 +;", "[line 1] Error at ';': Expect expression."},
		{"var 1 = 2;", "[line 1] Error at '1': Expect variable name."},
		{"print 1", "[line 1] Error at end: Expect ';' after value."},
		{"a + b = c;", "[line 1] Error at '=': Invalid assignment target."},
		{"(a) = 1;", "[line 1] Error at '=': Invalid assignment target."},
		{"{ print 1;", "[line 1] Error at end: Expect '}' after block."},
		{"fun (a) {}", "[line 1] Error at '(': Expect function name."},
		{"class A { 1 }", "[line 1] Error at '1': Expect method name."},
		{"a.1;", "[line 1] Error at '1': Expect property name after '.'."},
		{"f(1;", "[line 1] Error at ';': Expect ')' after arguments."},
		{"super.x;", "[line 1] Error at 'super': Expect expression."},
		{"if a print 1;", "[line 1] Error at 'a': Expect '(' after 'if'."},
	}
	for _, tt := range tests {
		_, tp := parseSource(tt.source)
		if !tp.Equals(tt.errors) {
			t.Errorf("parsing %q\ngot:\n%s\nwant:\n%s", tt.source, tp.printed, tt.errors)
		}
	}
}

// One bad statement does not hide a later, independent one
func TestParseSynchronize(t *testing.T) {
	stmts, tp := parseSource(`
{
	var a = ;
	print a;
	var b = 1 +;
}
print "ok";
var = 3;
`)
	want := strings.Join([]string{
		"[line 3] Error at ';': Expect expression.",
		"[line 5] Error at ';': Expect expression.",
		"[line 8] Error at '=': Expect variable name.",
	}, "\n")
	if !tp.Equals(want) {
		t.Errorf("got:\n%s\nwant:\n%s", tp.printed, want)
	}
	// the block and the print survive
	if len(stmts) != 2 {
		t.Errorf("got %d statements, want 2", len(stmts))
	}
}

func TestParseArgumentLimit(t *testing.T) {
	args := make([]string, 256)
	params := make([]string, 256)
	for i := range args {
		args[i] = "1"
		params[i] = "p" + strconv.Itoa(i)
	}

	_, tp := parseSource("f(" + strings.Join(args, ", ") + ");")
	if !tp.Equals("[line 1] Error at '1': Can't have more than 255 arguments.") {
		t.Errorf("got:\n%s", tp.printed)
	}

	stmts, tp := parseSource("fun f(" + strings.Join(params, ", ") + ") {}")
	if !strings.HasSuffix(tp.printed, "Can't have more than 255 parameters.\n") {
		t.Errorf("got:\n%s", tp.printed)
	}
	// Reported but the declaration is still parsed
	if len(stmts) != 1 {
		t.Errorf("got %d statements, want 1", len(stmts))
	}

	_, tp = parseSource("f(" + strings.Join(args[:255], ", ") + ");")
	if tp.printed != "" {
		t.Errorf("255 arguments should be accepted, got:\n%s", tp.printed)
	}
}

func TestParseNodeIdentity(t *testing.T) {
	stmts, _ := parseSource("a; a;")
	first := stmts[0].(*expressionStmt).expression
	second := stmts[1].(*expressionStmt).expression
	if first.nodeID() == second.nodeID() {
		t.Errorf("equal expressions share id %d", first.nodeID())
	}
}
