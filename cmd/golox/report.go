package main

import (
	"fmt"
	"io"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

type stdPrinter struct {
	w io.Writer
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.w, a...)
}

// consoleReporter prints diagnostics the moment they are reported
type consoleReporter struct {
	w     io.Writer
	color *color.Color
}

func newConsoleReporter(w io.Writer, colored bool) *consoleReporter {
	c := color.New()
	c.SetOutput(w)
	if !colored {
		c.Disable()
	}
	return &consoleReporter{w: w, color: c}
}

func (r *consoleReporter) Error(line int, where, message string) {
	fmt.Fprintln(r.w, r.color.Red(fmt.Sprintf("[line %d] Error%s: %s", line, where, message)))
}

func (r *consoleReporter) RuntimeError(line int, message string) {
	fmt.Fprintln(r.w, r.color.Yellow(fmt.Sprintf("%s\n[line %d]", message, line)))
}

func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.Out = w
	logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	logger.SetLevel(lvl)
	return logger, nil
}
