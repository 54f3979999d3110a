package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/redjax/droidutil/internal/config"
	"github.com/redjax/droidutil/internal/utils/path"
	"gopkg.in/natefinch/lumberjack.v2"
)

const prefix = "droidutil: "

// New builds the process logger. Debug mode writes to stderr, a log file gets
// a rotating lumberjack writer, and with neither the logger discards output.
// The returned closer releases the log file and is never nil.
func New(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	return newWithStderr(cfg, os.Stderr)
}

func newWithStderr(cfg config.LogConfig, stderr io.Writer) (*log.Logger, io.Closer, error) {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	if cfg.Debug {
		writers = append(writers, stderr)
	}

	if cfg.File != "" {
		file, err := path.ExpandPath(cfg.File)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		rotating := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}
		writers = append(writers, rotating)
		closer = rotating
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	return log.New(out, prefix, log.LstdFlags), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
