package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golox/internal"
)

// Exit codes follow sysexits.h
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
	exitIOErr    = 74
	exitConfig   = 78
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("golox", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a golox.toml file")
	logLevel := flags.String("log-level", "", "trace|debug|info|warn|error")
	noColor := flags.Bool("no-color", false, "disable colored diagnostics")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: golox [flags] [script]")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return exitUsage
	}

	path, explicit := defaultConfigFile, false
	if *configPath != "" {
		path, explicit = *configPath, true
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *noColor {
		cfg.Output.Color = false
	}

	logger, err := newLogger(stderr, cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	interp := internal.NewInterpreter(
		internal.WithPrinter(stdPrinter{w: stdout}),
		internal.WithReporter(newConsoleReporter(stderr, cfg.Output.Color)),
		internal.WithLogger(logger),
	)

	if flags.NArg() == 1 {
		return runFile(interp, flags.Arg(0), stderr)
	}
	return runPrompt(interp, cfg.REPL, logger)
}

func runFile(interp *internal.Interpreter, path string, stderr io.Writer) int {
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIOErr
	}

	_, diagnostics := interp.Run(string(b))

	if internal.HadStaticError(diagnostics) {
		return exitDataErr
	}
	if internal.HadRuntimeError(diagnostics) {
		return exitSoftware
	}
	return exitOK
}
