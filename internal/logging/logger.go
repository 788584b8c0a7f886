// Package logging owns the process-wide zap logger. The numerical core
// never logs; only the CLI and TUI layers report through here.
package logging

import (
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	global atomic.Pointer[zap.Logger]
	once   sync.Once
)

// Options configures the process logger.
type Options struct {
	Level string // debug, info, warn, error; defaults to info
	File  string // optional rotating log file, JSON-encoded
}

// Init builds the global logger: a colorized console core on stderr, plus
// a rotating JSON file core when Options.File is set. Only the first call
// takes effect.
func Init(opts Options) {
	once.Do(func() {
		level := zap.NewAtomicLevel()
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			level.SetLevel(zap.InfoLevel)
		}

		consoleCfg := zap.NewDevelopmentEncoderConfig()
		consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		consoleCore := zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleCfg),
			zapcore.Lock(os.Stderr),
			level,
		)
		cores := []zapcore.Core{consoleCore}

		if opts.File != "" {
			fileCfg := zap.NewProductionEncoderConfig()
			fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
			// lumberjack handles rotation and thread-safe writes.
			fileWriter := zapcore.AddSync(&lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    10, // MB
				MaxBackups: 3,
				MaxAge:     14, // days
			})
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), fileWriter, level))
		}

		logger := zap.New(zapcore.NewTee(cores...))
		global.Store(logger)
	})
}

// L returns the process logger, or a no-op logger before Init.
func L() *zap.Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Sync flushes buffered entries. Stderr sync errors are harmless and
// ignored.
func Sync() {
	if l := global.Load(); l != nil {
		_ = l.Sync()
	}
}
