// Package monitoring provides the observability implementations used by the
// SDK: a zap-backed logger, prometheus client metrics, and OpenTelemetry
// spans around outbound operations.
package monitoring

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/raihq/rai-go/pkg/constants"
	"github.com/raihq/rai-go/pkg/logger"
)

type zapLogger struct {
	*zap.Logger
}

// NewZapLogger creates a JSON-encoded zap logger writing to stdout at the
// given level. Unknown levels fall back to info.
func NewZapLogger(level constants.LogLevel) logger.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	parsed, err := zapcore.ParseLevel(string(level))
	if err != nil {
		parsed = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		parsed,
	)

	return &zapLogger{zap.New(core, zap.AddCaller())}
}

func (l *zapLogger) Debug(ctx context.Context, msg string, fields ...logger.Fields) {
	l.Logger.Debug(msg, convertFields(fields...)...)
}

func (l *zapLogger) Info(ctx context.Context, msg string, fields ...logger.Fields) {
	l.Logger.Info(msg, convertFields(fields...)...)
}

func (l *zapLogger) Warn(ctx context.Context, msg string, fields ...logger.Fields) {
	l.Logger.Warn(msg, convertFields(fields...)...)
}

func (l *zapLogger) Error(ctx context.Context, msg string, err error, fields ...logger.Fields) {
	zapFields := convertFields(fields...)
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}
	l.Logger.Error(msg, zapFields...)
}

func (l *zapLogger) WithFields(fields logger.Fields) logger.Logger {
	return &zapLogger{l.Logger.With(convertFields(fields)...)}
}

func convertFields(fields ...logger.Fields) []zap.Field {
	var zapFields []zap.Field
	for _, set := range fields {
		for k, v := range set {
			zapFields = append(zapFields, zap.Any(k, v))
		}
	}
	return zapFields
}
