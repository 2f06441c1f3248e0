package main

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var levelMap = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

func getLoggerLevel(lvl string) zapcore.Level {
	if level, ok := levelMap[lvl]; ok {
		return level
	}
	return zapcore.InfoLevel
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

// NewZapLogger creates a console-encoded logger writing to a rotating file
// and/or stderr. It returns a no-op logger when neither is configured.
func NewZapLogger(conf LogConfig) *zap.Logger {
	var writers []zapcore.WriteSyncer

	if conf.File != "" {
		writers = append(writers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    conf.MaxSize,
			MaxAge:     conf.MaxAge,
			MaxBackups: conf.MaxBackups,
			LocalTime:  true,
		}))
	}

	if conf.Console {
		writers = append(writers, zapcore.Lock(os.Stderr))
	}

	if len(writers) == 0 {
		return zap.NewNop()
	}

	encoder := zap.NewProductionEncoderConfig()
	encoder.EncodeTime = timeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoder),
		zap.CombineWriteSyncers(writers...),
		zap.NewAtomicLevelAt(getLoggerLevel(conf.Level)),
	)

	return zap.New(core, zap.AddCaller())
}
