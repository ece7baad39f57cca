// Package logger builds the process zap logger
// The terminal owns stdout and stderr, so output only ever goes to a file
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FileName is the active log file inside the log directory
	FileName = "ballpit.log"

	// MaxSize triggers rotation of an existing log file at startup
	MaxSize = 10 * 1024 * 1024
)

// Options selects log destination and verbosity
type Options struct {
	Enabled bool
	Dir     string
	Level   string
}

type fileCloser struct {
	log  *zap.Logger
	file *os.File
}

func (c *fileCloser) Close() error {
	_ = c.log.Sync()
	return c.file.Close()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup returns a no-op logger when disabled
// When enabled, an oversized previous log is renamed with a timestamp before a fresh file is opened
func Setup(opts Options) (*zap.Logger, io.Closer, error) {
	if !opts.Enabled {
		return zap.NewNop(), nopCloser{}, nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path, time.Now()); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(f),
		zap.NewAtomicLevelAt(level),
	)
	log := zap.New(core, zap.AddCaller())

	return log, &fileCloser{log: log, file: f}, nil
}

// ParseLevel maps a level name to zap; empty selects info
func ParseLevel(name string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zap.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return zap.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// rotate renames path to ballpit-<timestamp>.log when it exceeds MaxSize
func rotate(path string, now time.Time) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= MaxSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := strings.TrimSuffix(path, ext) + "-" + now.Format("20060102-150405") + ext
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
