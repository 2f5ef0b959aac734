package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/simp-lee/epubtoc/misc"
)

type LoggerConfig struct {
	Level       string `yaml:"level" validate:"required,oneof=none debug normal"`
	Destination string `yaml:"destination,omitempty" validate:"omitempty,filepath"`
	Mode        string `yaml:"mode,omitempty" validate:"omitempty,oneof=append overwrite"`
}

type LoggingConfig struct {
	FileLogger    LoggerConfig `yaml:"file"`
	ConsoleLogger LoggerConfig `yaml:"console"`
}

// Prepare returns the program logger. Console output is split: INFO and WARN
// go to stdout, ERROR and above to stderr. When debug is set the console
// shows DEBUG messages regardless of the configured level.
func (conf *LoggingConfig) Prepare(debug bool) (*zap.Logger, error) {
	return conf.build(zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr),
		EnableColorOutput(os.Stdout), EnableColorOutput(os.Stderr), debug)
}

func (conf *LoggingConfig) build(stdout, stderr zapcore.WriteSyncer, colorOut, colorErr, debug bool) (*zap.Logger, error) {

	// Console

	consoleEncoderLP := zapcore.NewConsoleEncoder(consoleEncoderConfig(colorOut))
	consoleEncoderHP := newEncoder(consoleEncoderConfig(colorErr)) // filter errorVerbose

	level := conf.ConsoleLogger.Level
	if debug {
		level = "debug"
	}

	var consoleCoreLP, consoleCoreHP zapcore.Core
	switch level {
	case "normal", "debug":
		lowest := zapcore.InfoLevel
		if level == "debug" {
			lowest = zapcore.DebugLevel
		}
		consoleCoreLP = zapcore.NewCore(consoleEncoderLP, stdout,
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return lowest <= lvl && lvl < zapcore.ErrorLevel
			}))
		consoleCoreHP = zapcore.NewCore(consoleEncoderHP, stderr,
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return lvl >= zapcore.ErrorLevel
			}))
	default:
		consoleCoreLP = zapcore.NewNopCore()
		consoleCoreHP = zapcore.NewNopCore()
	}

	// File

	fileCore := zapcore.NewNopCore()
	var redirected string

	var fileLevel zapcore.Level
	switch conf.FileLogger.Level {
	case "debug":
		fileLevel = zapcore.DebugLevel
	case "normal":
		fileLevel = zapcore.InfoLevel
	default:
		fileLevel = zapcore.InvalidLevel
	}
	if fileLevel != zapcore.InvalidLevel {
		dest := conf.FileLogger.Destination
		if dest == "" {
			dest = filepath.Join(os.TempDir(), misc.GetAppName()+".log")
		}
		f, err := openLogFile(filepath.Clean(dest), conf.FileLogger.Mode)
		if err != nil {
			if f, err = os.CreateTemp("", misc.GetAppName()+".*.log"); err != nil {
				return nil, fmt.Errorf("unable to access file log destination (%s): %w", dest, err)
			}
			redirected = f.Name()
		}
		fileCore = zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(f), fileLevel)
	}

	logger := zap.New(zapcore.NewTee(consoleCoreHP, consoleCoreLP, fileCore), zap.AddCaller()).Named(misc.GetAppName())
	if redirected != "" {
		logger.Warn("Log file was redirected to new location", zap.String("location", redirected))
	}
	return logger, nil
}

func consoleEncoderConfig(color bool) zapcore.EncoderConfig {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return ec
}

func openLogFile(name, mode string) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if mode == "append" {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(name, flags, 0644)
}

// When logging error to console - do not output verbose message.

type consoleEnc struct {
	zapcore.Encoder
}

func newEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return consoleEnc{zapcore.NewConsoleEncoder(cfg)}
}

func (c consoleEnc) Clone() zapcore.Encoder {
	return consoleEnc{c.Encoder.Clone()}
}

func (c consoleEnc) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	newFields := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		if f.Type == zapcore.ErrorType {
			// errorVerbose would dump wrapped error chains, the message is enough here
			f.Interface = errors.New(f.Interface.(error).Error())
		}
		newFields = append(newFields, f)
	}
	return c.Encoder.EncodeEntry(ent, newFields)
}
