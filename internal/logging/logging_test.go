package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestEmptyPathDiscards(t *testing.T) {
	log, closeFn, err := New("", DEBUG)
	if err != nil {
		t.Fatal(err)
	}
	if log.GetSink() != nil && log.Enabled() {
		t.Fatalf("expected a discarding logger")
	}
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}
}

func TestVerbosityFiltersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pullrefresh.log")
	log, closeFn, err := New(path, VERBOSE)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	log.Info("default line")
	log.V(VERBOSE).Info("verbose line", "edge", "top")
	log.V(DEBUG).Info("debug line")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "default line") || !strings.Contains(out, "verbose line") {
		t.Fatalf("expected default and verbose lines, got:\n%s", out)
	}
	if strings.Contains(out, "debug line") {
		t.Fatalf("debug line should be filtered at VERBOSE:\n%s", out)
	}
}

func TestLevelClamps(t *testing.T) {
	if got := Level(5).Level(); got != zapcore.Level(-DEBUG) {
		t.Fatalf("expected clamp to DEBUG, got %v", got)
	}
	if got := Level(-3).Level(); got != zapcore.InfoLevel {
		t.Fatalf("expected clamp to info, got %v", got)
	}
}
