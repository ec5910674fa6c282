package internal

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Printer receives the output of print statements, one line per call
type Printer interface {
	Println(a ...interface{}) (n int, err error)
}

// Interpreter runs Lox programs. Globals and resolved locals persist
// between calls to Run, only the diagnostics of a call are per call.
type Interpreter struct {
	exec *exec
	ids  nodeIDs

	printer  Printer
	reporter Reporter
	logger   logrus.FieldLogger
	now      func() time.Time
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithPrinter sets where print statements write
func WithPrinter(p Printer) Option {
	return func(i *Interpreter) {
		i.printer = p
	}
}

// WithReporter sets who is told about diagnostics as they happen
func WithReporter(r Reporter) Option {
	return func(i *Interpreter) {
		i.reporter = r
	}
}

// WithLogger sets the logger used to trace the pipeline
func WithLogger(l logrus.FieldLogger) Option {
	return func(i *Interpreter) {
		i.logger = l
	}
}

// WithClock replaces the time source of the clock native
func WithClock(now func() time.Time) Option {
	return func(i *Interpreter) {
		i.now = now
	}
}

type discardPrinter struct{}

func (discardPrinter) Println(a ...interface{}) (int, error) {
	return 0, nil
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

// NewInterpreter creates an interpreter with a fresh global environment
func NewInterpreter(opts ...Option) *Interpreter {
	i := &Interpreter{
		printer:  discardPrinter{},
		reporter: nopReporter{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.logger == nil {
		i.logger = discardLogger()
	}

	i.exec = newExec(i.printer)
	defineGlobals(i.exec.globals, i.now)

	return i
}

// Run scans, parses, resolves and executes source. It returns the
// number of top level statements that completed and everything that
// was reported during this call.
func (i *Interpreter) Run(source string) (int, []Diagnostic) {
	state := newInterpreterState(i.reporter, i.logger)

	start := time.Now()
	tokens := newLexer(source, state).scan()
	stmts := newParser(tokens, &i.ids, state).parse()
	i.logger.WithFields(logrus.Fields{
		"phase":      "parse",
		"tokens":     len(tokens),
		"statements": len(stmts),
		"elapsed":    time.Since(start),
	}).Debug("source parsed")

	if !state.Valid() {
		return 0, state.diagnostics
	}

	start = time.Now()
	before := len(i.exec.locals)
	newResolver(i.exec.locals, state).resolve(stmts)
	i.logger.WithFields(logrus.Fields{
		"phase":   "resolve",
		"locals":  len(i.exec.locals) - before,
		"elapsed": time.Since(start),
	}).Debug("statements resolved")

	if !state.Valid() {
		return 0, state.diagnostics
	}

	start = time.Now()
	i.exec.state = state
	executed := i.exec.interpret(stmts)
	i.logger.WithFields(logrus.Fields{
		"phase":    "interpret",
		"executed": executed,
		"elapsed":  time.Since(start),
	}).Debug("statements executed")

	return executed, state.diagnostics
}
