package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/splicedd/pkg/ports"
)

func newBufferedConsole(level ports.LogLevel) (*ConsoleLogger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &ConsoleLogger{level: level, out: &out, errOut: &errOut}, &out, &errOut
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	l, out, errOut := newBufferedConsole(ports.LevelInfo)

	// Keys without a registered translation pass through unchanged.
	l.Debug("stat %s", "/tmp/a.wav")
	l.Info("serving %d commands", 3)
	l.Warn("write %s: %s", "/tmp/a.wav", "denied")

	if strings.Contains(out.String(), "/tmp/a.wav") {
		t.Errorf("debug message should be filtered, got %q", out.String())
	}
	if !strings.Contains(out.String(), "serving 3 commands") {
		t.Errorf("expected info message on out, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "denied") {
		t.Errorf("expected warning on errOut, got %q", errOut.String())
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	l, out, errOut := newBufferedConsole(ports.LevelQuiet)

	l.Error("Failed to write response: %s", "broken pipe")

	if out.Len() != 0 || errOut.Len() != 0 {
		t.Errorf("expected no output, got out=%q err=%q", out.String(), errOut.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	l, out, _ := newBufferedConsole(ports.LevelDebug)

	l.WithComponent("gateway").Debug("mkdir %s", "/tmp/proj/samples")

	if got := out.String(); !strings.HasPrefix(got, "[gateway] ") {
		t.Errorf("expected component prefix, got %q", got)
	}
}

func TestNoopLogger(t *testing.T) {
	var l ports.Logger = NewNoop()
	if l.WithComponent("bridge") != l {
		t.Error("expected WithComponent to return the same logger")
	}
	l.Error("Failed to write response: %s", "ignored")
}
