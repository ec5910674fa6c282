package internal

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// DiagnosticKind tells which stage of the pipeline reported a diagnostic
type DiagnosticKind int

const (
	// SyntaxDiagnostic is reported by the lexer or the parser
	SyntaxDiagnostic DiagnosticKind = iota
	// ResolveDiagnostic is reported by the resolver
	ResolveDiagnostic
	// RuntimeDiagnostic is reported when a runtime error aborts a run
	RuntimeDiagnostic
)

func (k DiagnosticKind) String() string {
	switch k {
	case SyntaxDiagnostic:
		return "syntax"
	case ResolveDiagnostic:
		return "resolve"
	case RuntimeDiagnostic:
		return "runtime"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Diagnostic is one reported problem
type Diagnostic struct {
	Kind    DiagnosticKind
	Line    int
	Where   string
	Message string
}

func (d Diagnostic) String() string {
	if d.Kind == RuntimeDiagnostic {
		return fmt.Sprintf("%s\n[line %d]", d.Message, d.Line)
	}
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// HadStaticError reports whether scanning, parsing or resolving failed
func HadStaticError(diagnostics []Diagnostic) bool {
	for _, d := range diagnostics {
		if d.Kind != RuntimeDiagnostic {
			return true
		}
	}
	return false
}

// HadRuntimeError reports whether a run was aborted by a runtime error
func HadRuntimeError(diagnostics []Diagnostic) bool {
	for _, d := range diagnostics {
		if d.Kind == RuntimeDiagnostic {
			return true
		}
	}
	return false
}

// Reporter receives diagnostics as soon as they are found
type Reporter interface {
	Error(line int, where, message string)
	RuntimeError(line int, message string)
}

type nopReporter struct{}

func (nopReporter) Error(line int, where, message string) {}
func (nopReporter) RuntimeError(line int, message string) {}

// interpreterState stores the diagnostics of a single run
type interpreterState struct {
	diagnostics []Diagnostic
	reporter    Reporter
	logger      logrus.FieldLogger
}

func newInterpreterState(reporter Reporter, logger logrus.FieldLogger) *interpreterState {
	return &interpreterState{
		diagnostics: make([]Diagnostic, 0),
		reporter:    reporter,
		logger:      logger,
	}
}

func (s *interpreterState) setError(kind DiagnosticKind, err error, line int, where string) {
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Kind:    kind,
		Line:    line,
		Where:   where,
		Message: err.Error(),
	})
	s.reporter.Error(line, where, err.Error())
}

func (s *interpreterState) tokenError(kind DiagnosticKind, err error, tk *token) {
	if tk.token == tkEOF {
		s.setError(kind, err, tk.line, " at end")
		return
	}
	s.setError(kind, err, tk.line, fmt.Sprintf(" at '%s'", tk.lexeme))
}

func (s *interpreterState) runtimeErr(err *RuntimeError) {
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Kind:    RuntimeDiagnostic,
		Line:    err.Line(),
		Message: err.Error(),
	})
	s.logger.WithField("line", err.Line()).Debug(err.Error())
	s.reporter.RuntimeError(err.Line(), err.Error())
}

// Valid returns true if nothing was reported so far
func (s *interpreterState) Valid() bool {
	return len(s.diagnostics) == 0
}

// RuntimeError aborts the current run. It carries the token that caused it.
type RuntimeError struct {
	token *token
	err   error
	msg   string
}

func newRuntimeError(tk *token, err error) *RuntimeError {
	return &RuntimeError{token: tk, err: err, msg: err.Error()}
}

func newRuntimeErrorf(tk *token, err error, format string, a ...interface{}) *RuntimeError {
	return &RuntimeError{token: tk, err: err, msg: fmt.Sprintf(format, a...)}
}

func (e *RuntimeError) Error() string {
	return e.msg
}

func (e *RuntimeError) Unwrap() error {
	return e.err
}

// Line is the source line of the offending token
func (e *RuntimeError) Line() int {
	return e.token.line
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character.")
var errUnterminatedString = errors.New("Unterminated string.")

// Parser errors
var errExpectedExpr = errors.New("Expect expression.")
var errInvalidAssignment = errors.New("Invalid assignment target.")
var errMaxParameters = errors.New("Can't have more than 255 parameters.")
var errMaxArguments = errors.New("Can't have more than 255 arguments.")
var errExpectedSemicolonValue = errors.New("Expect ';' after value.")
var errExpectedSemicolonExpr = errors.New("Expect ';' after expression.")
var errExpectedSemicolonVar = errors.New("Expect ';' after variable declaration.")
var errExpectedSemicolonReturn = errors.New("Expect ';' after return value.")
var errExpectedSemicolonCond = errors.New("Expect ';' after loop condition.")
var errExpectedVarName = errors.New("Expect variable name.")
var errExpectedClassName = errors.New("Expect class name.")
var errExpectedParamName = errors.New("Expect parameter name.")
var errExpectedPropName = errors.New("Expect property name after '.'.")
var errExpectedParenAfterExpr = errors.New("Expect ')' after expression.")
var errExpectedParenAfterArgs = errors.New("Expect ')' after arguments.")
var errExpectedParenAfterParams = errors.New("Expect ')' after parameters.")
var errExpectedParenAfterCond = errors.New("Expect ')' after condition.")
var errExpectedParenAfterFor = errors.New("Expect ')' after for clauses.")
var errExpectedParenAfterIf = errors.New("Expect '(' after 'if'.")
var errExpectedParenAfterWhile = errors.New("Expect '(' after 'while'.")
var errExpectedParenAfterForKw = errors.New("Expect '(' after 'for'.")
var errExpectedBraceBeforeClass = errors.New("Expect '{' before class body.")
var errExpectedBraceAfterClass = errors.New("Expect '}' after class body.")
var errExpectedBraceAfterBlock = errors.New("Expect '}' after block.")

// Resolver errors
var errAlreadyDeclared = errors.New("Already a variable with this name in this scope.")
var errOwnInitializer = errors.New("Can't read local variable in its own initializer.")
var errTopLevelReturn = errors.New("Can't return from top-level code.")
var errThisOutsideClass = errors.New("Can't use 'this' outside of a class.")
var errInitializerReturn = errors.New("Can't return a value from an initializer.")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errUndefinedProp = errors.New("Undefined property")
var errOnlyNumber = errors.New("Operand must be a number.")
var errOnlyNumbers = errors.New("Operands must be numbers.")
var errNumbersOrStrings = errors.New("Operands must be two numbers or two strings.")
var errOnlyFunction = errors.New("Can only call functions and classes.")
var errInvalidNumberArguments = errors.New("Wrong number of arguments")
var errOnlyInstancesProps = errors.New("Only instances have properties.")
var errOnlyInstancesFields = errors.New("Only instances have fields.")
var errUndefinedOp = errors.New("Undefined operator")
var errStackOverflow = errors.New("Stack overflow.")
