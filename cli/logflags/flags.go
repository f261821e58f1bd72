// Package logflags configures a zap logger from command line flags.
package logflags

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type FileMode string

const (
	FileModeAppend   FileMode = "append"
	FileModeRotate   FileMode = "rotate"
	FileModeTruncate FileMode = "truncate"
)

func (m *FileMode) Set(s string) error {
	switch mode := FileMode(s); mode {
	case FileModeAppend, FileModeRotate, FileModeTruncate:
		*m = mode
		return nil
	}
	return fmt.Errorf("unknown log file mode %q", s)
}

func (m FileMode) String() string {
	return string(m)
}

type Flags struct {
	Level zapcore.Level
	Mode  FileMode
	Path  string
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	f.Level = zapcore.WarnLevel
	f.Mode = FileModeAppend
	fs.Var(&f.Level, "log.level", "logging level")
	fs.StringVar(&f.Path, "log.path", "stderr", "path to send logs (values: stderr, stdout, path in file system)")
	fs.Var(&f.Mode, "log.filemode", "logger file write mode (values: append, truncate, rotate)")
}

// Open returns a logger writing to the configured path.  Files get JSON
// lines and the standard streams get console formatted lines.
func (f *Flags) Open() (*zap.Logger, error) {
	ws, isFile, err := f.sink()
	if err != nil {
		return nil, err
	}
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if isFile {
		enc = zapcore.NewJSONEncoder(config)
	} else {
		config.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(config)
	}
	return zap.New(zapcore.NewCore(enc, ws, f.Level)), nil
}

func (f *Flags) sink() (zapcore.WriteSyncer, bool, error) {
	switch f.Path {
	case "", "stderr":
		return zapcore.Lock(os.Stderr), false, nil
	case "stdout":
		return zapcore.Lock(os.Stdout), false, nil
	}
	switch f.Mode {
	case FileModeRotate:
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   f.Path,
			MaxSize:    100,
			MaxBackups: 3,
		}), true, nil
	case FileModeAppend, FileModeTruncate:
		flags := os.O_WRONLY | os.O_CREATE | os.O_APPEND
		if f.Mode == FileModeTruncate {
			flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		}
		file, err := os.OpenFile(f.Path, flags, 0644)
		if err != nil {
			return nil, false, err
		}
		return zapcore.Lock(file), true, nil
	}
	return nil, false, errors.New("log.filemode not set")
}
