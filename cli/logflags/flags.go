package logflags

import (
	"flag"

	"github.com/brimdata/docflat/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Flags struct {
	Conf    logger.Config
	devMode bool
}

func (l *Flags) SetFlags(fs *flag.FlagSet) {
	l.Conf.Level = zapcore.InfoLevel
	fs.Var(&l.Conf.Level, "log.level", "logging level")
	fs.StringVar(&l.Conf.Path, "log.path", "stderr", "path to send logs (values: stderr, stdout, path in file system)")
	fs.Var(&l.Conf.Mode, "log.filemode", "logger file write mode (values: append, truncate, rotate)")
	fs.BoolVar(&l.devMode, "log.devmode", false, "development mode (if enabled dpanic level logs will cause a panic)")
}

func (l *Flags) Open() (*zap.Logger, error) {
	core, err := logger.NewCore(l.Conf)
	if err != nil {
		return nil, err
	}
	opts := []zap.Option{zap.AddStacktrace(zapcore.WarnLevel)}
	if l.devMode {
		opts = append(opts, zap.Development())
	}
	return zap.New(core, opts...), nil
}
