// Package logging builds the structured logger shared by the core and the
// hosts. The terminal belongs to the UI, so logs go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels passed to logr's V().
const (
	DEFAULT = 0
	VERBOSE = 1
	DEBUG   = 2
)

// New returns a logger appending JSON lines to path at the given verbosity
// (0, 1 or 2, as selected by -v/-vv). An empty path yields a discarding
// logger. The returned func flushes and closes the file.
func New(path string, verbosity int) (logr.Logger, func() error, error) {
	if path == "" {
		return logr.Discard(), func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return logr.Discard(), nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), Level(verbosity))
	zl := zap.New(core)

	closeFn := func() error {
		_ = zl.Sync()
		return f.Close()
	}
	return zapr.NewLogger(zl), closeFn, nil
}

// Level maps a logr verbosity to the zap level that lets it through. zapr
// logs V(n) at zap level -n.
func Level(verbosity int) zap.AtomicLevel {
	if verbosity < DEFAULT {
		verbosity = DEFAULT
	}
	if verbosity > DEBUG {
		verbosity = DEBUG
	}
	return zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
}
