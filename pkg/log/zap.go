package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// Init builds a Logger from cfg. An invalid configuration falls back to a no-op logger.
func Init(cfg ZapConfig) Logger {
	var zc zap.Config
	if cfg.Mode == ModeProduction {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	switch cfg.Encoding {
	case EncodingJSON:
		zc.Encoding = EncodingJSON
	default:
		zc.Encoding = EncodingConsole
	}

	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && zc.Encoding == EncodingConsole {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	logger, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		return NewNop()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "dpanic":
		return zapcore.DPanicLevel
	case "panic":
		return zapcore.PanicLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestIDFromContext(ctx); id != "" {
		return l.sugar.With(FieldRequestID, id)
	}
	return l.sugar
}

func (l *zapLogger) Debug(ctx context.Context, args ...interface{}) {
	l.with(ctx).Debug(args...)
}

func (l *zapLogger) Debugf(ctx context.Context, format string, args ...interface{}) {
	l.with(ctx).Debugf(format, args...)
}

func (l *zapLogger) Info(ctx context.Context, args ...interface{}) {
	l.with(ctx).Info(args...)
}

func (l *zapLogger) Infof(ctx context.Context, format string, args ...interface{}) {
	l.with(ctx).Infof(format, args...)
}

func (l *zapLogger) Warn(ctx context.Context, args ...interface{}) {
	l.with(ctx).Warn(args...)
}

func (l *zapLogger) Warnf(ctx context.Context, format string, args ...interface{}) {
	l.with(ctx).Warnf(format, args...)
}

func (l *zapLogger) Error(ctx context.Context, args ...interface{}) {
	l.with(ctx).Error(args...)
}

func (l *zapLogger) Errorf(ctx context.Context, format string, args ...interface{}) {
	l.with(ctx).Errorf(format, args...)
}

func (l *zapLogger) DPanic(ctx context.Context, args ...interface{}) {
	l.with(ctx).DPanic(args...)
}

func (l *zapLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {
	l.with(ctx).DPanicf(format, args...)
}

func (l *zapLogger) Panic(ctx context.Context, args ...interface{}) {
	l.with(ctx).Panic(args...)
}

func (l *zapLogger) Panicf(ctx context.Context, format string, args ...interface{}) {
	l.with(ctx).Panicf(format, args...)
}

func (l *zapLogger) Fatal(ctx context.Context, args ...interface{}) {
	l.with(ctx).Fatal(args...)
}

func (l *zapLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {
	l.with(ctx).Fatalf(format, args...)
}
