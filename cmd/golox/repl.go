package main

import (
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"golox/internal"
)

// session evaluates REPL lines against one interpreter, so bindings
// survive a line that fails
type session struct {
	interp *internal.Interpreter
}

func (s *session) eval(line string) []internal.Diagnostic {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	_, diagnostics := s.interp.Run(line)
	return diagnostics
}

func runPrompt(interp *internal.Interpreter, cfg REPLConfig, logger logrus.FieldLogger) int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			if _, err := line.ReadHistory(f); err != nil {
				logger.WithError(err).Warn("cannot read history")
			}
			f.Close()
		}
		defer func() {
			f, err := os.Create(cfg.History)
			if err != nil {
				logger.WithError(err).Warn("cannot write history")
				return
			}
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				logger.WithError(err).Warn("cannot write history")
			}
		}()
	}

	s := &session{interp: interp}
	for {
		input, err := line.Prompt(cfg.Prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			return exitOK
		}
		if err != nil {
			logger.WithError(err).Error("cannot read input")
			return exitIOErr
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		s.eval(input)
	}
}
