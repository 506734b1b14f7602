// Package logging builds the zap-backed logr.Logger used by the command-line tools.
package logging

import (
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger logs to stderr. If development is true, a human readable console encoder at debug level
// is used, otherwise JSON at info level.
func ZapLogger(development bool) logr.Logger {
	return ZapLoggerTo(os.Stderr, development)
}

// ZapLoggerTo behaves like ZapLogger but writes to destWriter.
func ZapLoggerTo(destWriter io.Writer, development bool) logr.Logger {
	sink := zapcore.AddSync(destWriter)

	var enc zapcore.Encoder
	var lvl zap.AtomicLevel
	if development {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		lvl = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	log := zap.New(zapcore.NewCore(enc, sink, lvl), zap.ErrorOutput(sink))
	return zapr.NewLogger(log)
}
