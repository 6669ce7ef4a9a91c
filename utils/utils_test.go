package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

// ============================================================================
// LOGGER TESTS
// ============================================================================

func TestLoggerBasicFunctions(t *testing.T) {
	User("test user message")
	Info("test info message")
	Warn("test warn message")
	Error("test error message")
	Debug("test debug message")
	Debugw("test debugw", "key", "value")
	Warnw("test warnw", "key", "value")

	if err := Errorf("test error with format: %s", "formatted"); err == nil {
		t.Error("expected Errorf to return an error")
	}
}

func TestLoggerModes(t *testing.T) {
	if getMode() == "" {
		t.Error("Expected non-empty mode")
	}
	SetMode("debug")
	if getMode() != "debug" {
		t.Errorf("expected debug mode, got %s", getMode())
	}
	SetMode("production")
}

func TestLoggerOutputs(t *testing.T) {
	var userBuf bytes.Buffer
	SetUserOutput(&userBuf)
	User("test user output")
	if !strings.Contains(userBuf.String(), "test user output") {
		t.Error("User output not captured correctly")
	}
	if UserOutput() != &userBuf {
		t.Error("UserOutput should return the configured writer")
	}

	var internalBuf bytes.Buffer
	SetInternalOutput(&internalBuf)
	Info("test internal output")
	Debugw("structured", "symbol", "IconGetFiles")
	if !strings.Contains(internalBuf.String(), "test internal output") {
		t.Error("Internal output not captured correctly")
	}
	if !strings.Contains(internalBuf.String(), "IconGetFiles") {
		t.Error("structured fields not captured")
	}

	SetUserOutput(os.Stdout)
	SetInternalOutput(os.Stderr)
}

func TestLoggerWriter(t *testing.T) {
	var buf bytes.Buffer
	writer := &LoggerWriter{
		Fn: func(format string, v ...any) {
			buf.WriteString(fmt.Sprintf(format, v...))
			buf.WriteString("|")
		},
		Prefix: "[TEST] ",
	}
	n, err := writer.Write([]byte("line1\n\nline2\n"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != len("line1\n\nline2\n") {
		t.Errorf("unexpected byte count %d", n)
	}
	if buf.String() != "[TEST] line1|[TEST] line2|" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

// ============================================================================
// HELPER TESTS
// ============================================================================

func TestErrorWrapper(t *testing.T) {
	w := NewErrorWrapper("emit")
	if w.Wrapf(nil, "ignored") != nil {
		t.Error("Wrapf(nil) should return nil")
	}
	base := errors.New("disk full")
	err := w.Wrapf(base, "write %s", "index.ts")
	if !errors.Is(err, base) {
		t.Error("wrapped error should unwrap to base")
	}
	if err.Error() != "emit: write index.ts: disk full" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if got := w.Failf("bad %d", 1).Error(); got != "emit: bad 1" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestValidateHelpers(t *testing.T) {
	if err := ValidateRequired("source", " "); err == nil {
		t.Error("expected error for blank value")
	}
	if err := ValidateRequired("source", "icons"); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if err := ValidateOneOf("target", "tsx", []string{"tsx", "go"}); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if err := ValidateOneOf("target", "vue", []string{"tsx", "go"}); err == nil {
		t.Error("expected error for unknown target")
	}
}
