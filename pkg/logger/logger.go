// Package logger builds zap loggers that write to stderr, stdout, or a file
// that may be rotated.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type FileMode string

const (
	FileModeAppend   FileMode = "append"
	FileModeTruncate FileMode = "truncate"
	FileModeRotate   FileMode = "rotate"
)

func (m *FileMode) Set(s string) error {
	switch mode := FileMode(s); mode {
	case FileModeAppend, FileModeTruncate, FileModeRotate:
		*m = mode
		return nil
	}
	return fmt.Errorf("unknown file mode %q", s)
}

func (m FileMode) String() string {
	if m == "" {
		return string(FileModeAppend)
	}
	return string(m)
}

type Config struct {
	Path  string        `yaml:"path"`
	Mode  FileMode      `yaml:"mode"`
	Level zapcore.Level `yaml:"level"`
	// MaxSizeMB and MaxBackups apply to FileModeRotate.
	MaxSizeMB  int `yaml:"max_size_mb"`
	MaxBackups int `yaml:"max_backups"`
}

func New(conf Config) (*zap.Logger, error) {
	core, err := NewCore(conf)
	if err != nil {
		return nil, err
	}
	return zap.New(core), nil
}

func NewCore(conf Config) (zapcore.Core, error) {
	w, err := OpenFile(conf)
	if err != nil {
		return nil, err
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewCore(zapcore.NewJSONEncoder(enc), w, conf.Level), nil
}

// OpenFile returns the sink named by conf.Path, which is "stderr", "stdout",
// or a file system path.
func OpenFile(conf Config) (zapcore.WriteSyncer, error) {
	switch conf.Path {
	case "", "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	}
	switch conf.Mode {
	case FileModeRotate:
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.Path,
			MaxSize:    conf.MaxSizeMB,
			MaxBackups: conf.MaxBackups,
		}), nil
	case FileModeTruncate:
		f, err := os.Create(conf.Path)
		if err != nil {
			return nil, err
		}
		return zapcore.Lock(f), nil
	}
	f, err := os.OpenFile(conf.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return zapcore.Lock(f), nil
}
