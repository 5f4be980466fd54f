// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LoggingKey is the configuration key under which logging is configured
	LoggingKey = "log"

	DefaultLevel    = "info"
	DefaultEncoding = "json"
	DefaultOutput   = "stderr"

	// StacktraceKey is the field holding stacktraces, which are attached to error level entries
	StacktraceKey = "stacktrace"
)

// Configuration is the externally configurable set of logging options
type Configuration struct {
	// Level is the minimum enabled level, e.g. debug, info, warn, error.  Defaults to DefaultLevel.
	Level string

	// Encoding is either json or console.  Defaults to DefaultEncoding.
	Encoding string

	// Development puts the logger in development mode, which changes the behavior of DPanic
	// and takes stacktraces more liberally.
	Development bool

	// OutputPaths are the URLs or file paths log entries are written to.  Defaults to stderr.
	OutputPaths []string

	// ErrorOutputPaths are the URLs or file paths internal logger errors are written to.  Defaults to stderr.
	ErrorOutputPaths []string
}

// Defaults returns the configuration keys and default values for this package, relative to
// LoggingKey, suitable for xviper.ApplyDefaults.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		LoggingKey + ".level":            DefaultLevel,
		LoggingKey + ".encoding":         DefaultEncoding,
		LoggingKey + ".development":      false,
		LoggingKey + ".outputPaths":      []string{DefaultOutput},
		LoggingKey + ".errorOutputPaths": []string{DefaultOutput},
	}
}

func (c Configuration) sallust() sallust.Config {
	sc := sallust.Config{
		Level:            c.Level,
		Encoding:         c.Encoding,
		Development:      c.Development,
		OutputPaths:      c.OutputPaths,
		ErrorOutputPaths: c.ErrorOutputPaths,
		EncoderConfig: sallust.EncoderConfig{
			StacktraceKey: StacktraceKey,
		},
	}

	if len(sc.Level) == 0 {
		sc.Level = DefaultLevel
	}

	if len(sc.Encoding) == 0 {
		sc.Encoding = DefaultEncoding
	}

	if len(sc.OutputPaths) == 0 {
		sc.OutputPaths = []string{DefaultOutput}
	}

	if len(sc.ErrorOutputPaths) == 0 {
		sc.ErrorOutputPaths = []string{DefaultOutput}
	}

	return sc
}

// New builds a zap logger from the given configuration.  Stacktraces are only attached
// to entries at error level and above.
func New(c Configuration) (*zap.Logger, error) {
	return c.sallust().Build(zap.AddStacktrace(zapcore.ErrorLevel))
}

// Default returns the logger used when no configured logger is available
func Default() *zap.Logger {
	return sallust.Default()
}
