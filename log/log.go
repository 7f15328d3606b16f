// Package log provides the process-wide structured logger used by the
// cmd/kzgverify CLI and available to library callers that want the same
// output shape. Grounded on vocdoni-davinci-node/log/log.go, trimmed of the
// Monitor metrics helper and the JSON dual-output branch: this module emits
// no monitoring events and no JSON log stream.
package log

import (
	"bytes"
	"cmp"
	"fmt"
	"os"
	"path"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	RFC3339Milli = "2006-01-02T15:04:05.000Z07:00"
)

var (
	log                 zerolog.Logger
	logMu               sync.RWMutex
	panicOnInvalidChars = os.Getenv("LOG_PANIC_ON_INVALIDCHARS") == "true"
)

func init() {
	// $LOG_LEVEL lets callers (including tests) raise verbosity without
	// a code change; always initializing avoids a nil logger panic.
	Init(cmp.Or(os.Getenv("LOG_LEVEL"), "error"), "stderr")
}

// Logger returns the global zerolog.Logger, for callers that want to attach
// fields the convenience functions below don't expose.
func Logger() *zerolog.Logger {
	logger := getLogger()
	return &logger
}

func getLogger() zerolog.Logger {
	logMu.RLock()
	logger := log
	logMu.RUnlock()
	return logger
}

func setLogger(logger zerolog.Logger) {
	logMu.Lock()
	log = logger
	logMu.Unlock()
}

// invalidCharChecker panics on a Unicode replacement char in a log line,
// which usually means a %!s(... ) formatting mismatch upstream. Gated
// behind $LOG_PANIC_ON_INVALIDCHARS so it costs nothing in production.
type invalidCharChecker struct{}

func (*invalidCharChecker) Write(p []byte) (int, error) {
	if bytes.ContainsRune(p, '�') {
		panic(fmt.Sprintf("log line with invalid chars: %q", string(p)))
	}
	return len(p), nil
}

// Init (re)configures the global logger at the given level, writing to
// "stdout", "stderr", or a file path.
func Init(level, output string) {
	var out zerolog.ConsoleWriter
	switch output {
	case "stdout":
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: RFC3339Milli}
	case "stderr":
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: RFC3339Milli}
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			panic(fmt.Sprintf("cannot create log output: %v", err))
		}
		out = zerolog.ConsoleWriter{Out: f, TimeFormat: RFC3339Milli, NoColor: true}
	}

	var writer zerolog.LevelWriter
	if panicOnInvalidChars {
		writer = zerolog.MultiLevelWriter(out, zerolog.ConsoleWriter{Out: &invalidCharChecker{}})
	}

	var logger zerolog.Logger
	if writer != nil {
		logger = zerolog.New(writer).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(out).With().Timestamp().Logger()
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	logger = logger.With().Caller().Logger()
	zerolog.CallerSkipFrameCount = 3
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return fmt.Sprintf("%s/%s:%d", path.Base(path.Dir(file)), path.Base(file), line)
	}

	switch level {
	case LevelDebug:
		logger = logger.Level(zerolog.DebugLevel)
	case LevelInfo:
		logger = logger.Level(zerolog.InfoLevel)
	case LevelWarn:
		logger = logger.Level(zerolog.WarnLevel)
	case LevelError:
		logger = logger.Level(zerolog.ErrorLevel)
	default:
		panic(fmt.Sprintf("invalid log level: %q", level))
	}

	setLogger(logger)
	logger.Debug().Msgf("logger construction succeeded at level %s with output %s", level, output)
}

// Level returns the current log level.
func Level() string {
	switch level := getLogger().GetLevel(); level {
	case zerolog.DebugLevel:
		return LevelDebug
	case zerolog.InfoLevel:
		return LevelInfo
	case zerolog.WarnLevel:
		return LevelWarn
	case zerolog.ErrorLevel:
		return LevelError
	default:
		panic(fmt.Sprintf("invalid log level: %q", level))
	}
}

// Debug sends a debug level log message.
func Debug(args ...any) {
	logger := getLogger()
	if logger.GetLevel() > zerolog.DebugLevel {
		return
	}
	logger.Debug().Msg(fmt.Sprint(args...))
}

// Info sends an info level log message.
func Info(args ...any) { getLogger().Info().Msg(fmt.Sprint(args...)) }

// Warn sends a warn level log message.
func Warn(args ...any) { getLogger().Warn().Msg(fmt.Sprint(args...)) }

// Error sends an error level log message.
func Error(args ...any) { getLogger().Error().Msg(fmt.Sprint(args...)) }

// Fatal sends a fatal level log message and exits the process.
func Fatal(args ...any) {
	getLogger().Fatal().Msg(fmt.Sprint(args...) + "\n" + string(debug.Stack()))
	panic("unreachable")
}

// Debugf sends a formatted debug level log message.
func Debugf(template string, args ...any) { Logger().Debug().Msgf(template, args...) }

// Infof sends a formatted info level log message.
func Infof(template string, args ...any) { Logger().Info().Msgf(template, args...) }

// Warnf sends a formatted warn level log message.
func Warnf(template string, args ...any) { Logger().Warn().Msgf(template, args...) }

// Errorf sends a formatted error level log message.
func Errorf(template string, args ...any) { Logger().Error().Msgf(template, args...) }

// Fatalf sends a formatted fatal level log message and exits the process.
func Fatalf(template string, args ...any) {
	Logger().Fatal().Msgf(template+"\n"+string(debug.Stack()), args...)
}

// Errorw sends an error level log message carrying the triggering error.
func Errorw(err error, msg string) { Logger().Error().Err(err).Msg(msg) }
