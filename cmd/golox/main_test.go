package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golox/internal"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runScript(t *testing.T, source string) (int, string, string) {
	t.Helper()
	script := writeFile(t, "script.lox", source)
	config := writeFile(t, "golox.toml", "[output]\ncolor = false\n")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", config, script}, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   int
		stdout string
		stderr string
	}{
		{"ok", "print 1 + 2;", exitOK, "3\n", ""},
		{"syntax", "print ;", exitDataErr, "", "[line 1] Error at ';': Expect expression.\n"},
		{"resolve", "return 1;", exitDataErr, "", "[line 1] Error at 'return': Can't return from top-level code.\n"},
		{"runtime", "print \"before\";\nprint -\"x\";", exitSoftware, "before\n", "Operand must be a number.\n[line 2]\n"},
	}
	for _, tt := range tests {
		code, stdout, stderr := runScript(t, tt.source)
		if code != tt.code {
			t.Errorf("%s: exit code %d, want %d", tt.name, code, tt.code)
		}
		if stdout != tt.stdout {
			t.Errorf("%s: stdout %q, want %q", tt.name, stdout, tt.stdout)
		}
		if stderr != tt.stderr {
			t.Errorf("%s: stderr %q, want %q", tt.name, stderr, tt.stderr)
		}
	}
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"a.lox", "b.lox"}, &stdout, &stderr); code != exitUsage {
		t.Errorf("exit code %d, want %d", code, exitUsage)
	}
	if !strings.Contains(stderr.String(), "Usage: golox [flags] [script]") {
		t.Errorf("missing usage, got %q", stderr.String())
	}

	stderr.Reset()
	if code := run([]string{"-bogus"}, &stdout, &stderr); code != exitUsage {
		t.Errorf("unknown flag: exit code %d, want %d", code, exitUsage)
	}
}

func TestRunMissingScript(t *testing.T) {
	config := writeFile(t, "golox.toml", "")
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.lox")
	if code := run([]string{"-config", config, missing}, &stdout, &stderr); code != exitIOErr {
		t.Errorf("exit code %d, want %d", code, exitIOErr)
	}
}

func TestRunBadConfig(t *testing.T) {
	script := writeFile(t, "script.lox", "print 1;")
	var stdout, stderr bytes.Buffer

	missing := filepath.Join(t.TempDir(), "nope.toml")
	if code := run([]string{"-config", missing, script}, &stdout, &stderr); code != exitConfig {
		t.Errorf("missing config: exit code %d, want %d", code, exitConfig)
	}

	config := writeFile(t, "golox.toml", "[log]\nlevel = \"loud\"\n")
	if code := run([]string{"-config", config, script}, &stdout, &stderr); code != exitConfig {
		t.Errorf("bad level: exit code %d, want %d", code, exitConfig)
	}

	config = writeFile(t, "golox.toml", "[output]\ncolor = false\n")
	if code := run([]string{"-config", config, "-log-level", "loud", script}, &stdout, &stderr); code != exitConfig {
		t.Errorf("bad flag level: exit code %d, want %d", code, exitConfig)
	}
	if stdout.Len() != 0 {
		t.Errorf("script ran with a bad configuration: %q", stdout.String())
	}
}

func TestRunDebugLogging(t *testing.T) {
	script := writeFile(t, "script.lox", "print 1;")
	config := writeFile(t, "golox.toml", "[log]\nlevel = \"debug\"\n[output]\ncolor = false\n")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", config, script}, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	for _, phase := range []string{"phase=parse", "phase=resolve", "phase=interpret"} {
		if !strings.Contains(stderr.String(), phase) {
			t.Errorf("missing %s in log:\n%s", phase, stderr.String())
		}
	}
}

func TestConsoleReporterColor(t *testing.T) {
	var plain, buffered, forced bytes.Buffer
	newConsoleReporter(&plain, false).Error(3, " at 'x'", "Boom.")
	// colors are only used on a terminal
	newConsoleReporter(&buffered, true).Error(3, " at 'x'", "Boom.")

	r := newConsoleReporter(&forced, true)
	r.color.Enable()
	r.RuntimeError(3, "Boom.")

	want := "[line 3] Error at 'x': Boom.\n"
	if plain.String() != want {
		t.Errorf("plain output %q", plain.String())
	}
	if buffered.String() != want {
		t.Errorf("buffered output %q", buffered.String())
	}
	if !strings.Contains(forced.String(), "\x1b[") || !strings.Contains(forced.String(), "Boom.\n[line 3]") {
		t.Errorf("colored output %q", forced.String())
	}
}

func TestSessionKeepsBindings(t *testing.T) {
	var stdout, stderr bytes.Buffer
	s := &session{interp: internal.NewInterpreter(
		internal.WithPrinter(stdPrinter{w: &stdout}),
		internal.WithReporter(newConsoleReporter(&stderr, false)),
	)}

	lines := []string{
		"var a = 1;",
		"fun add(n) { return a + n; }",
		"print undefined;",
		"print add(2;",
		"",
		"a = 10;",
		"print add(2);",
	}
	for _, line := range lines {
		s.eval(line)
	}

	if stdout.String() != "12\n" {
		t.Errorf("stdout %q, want %q", stdout.String(), "12\n")
	}
	want := "Undefined variable 'undefined'.\n[line 1]\n" +
		"[line 1] Error at ';': Expect ')' after arguments.\n"
	if stderr.String() != want {
		t.Errorf("stderr %q, want %q", stderr.String(), want)
	}
	if diagnostics := s.eval("   "); diagnostics != nil {
		t.Errorf("blank line reported %v", diagnostics)
	}
}
