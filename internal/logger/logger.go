// internal/logger/logger.go
//
// Process logger: Zap JSON events into a size-rotated file, with a
// colorized console tee for interactive runs.
//
// The file sink is `<root>/logs/web.log`; Lumberjack rotates it by size
// and prunes old archives, so no external log-rotate job is needed.  The
// level comes from ZAP_LEVEL ("debug", "info", "warn", "error"), default
// info; the request-info middleware's per-request span only appears at
// debug.  The constructed logger is installed globally, so zap.S() and
// zap.L() work from any package after startup.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
package logger

import (
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// level reads ZAP_LEVEL, falling back to info on empty or garbage input.
func level() zapcore.Level {
	l, err := zapcore.ParseLevel(os.Getenv("ZAP_LEVEL"))
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// New builds the process logger and installs it as the zap global.
// When tee == true a console core mirrors every event to stdout.
func New(rootDir string, tee bool) (*zap.SugaredLogger, error) {
	logDir := filepath.Join(rootDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, "web.log"),
		MaxSize:    25, // MB per file
		MaxBackups: 10,
		MaxAge:     30, // days
		Compress:   true,
	})

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.LowercaseLevelEncoder

	lvl := level()
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(enc), sink, lvl),
	}
	if tee {
		console := enc
		console.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores,
			zapcore.NewCore(zapcore.NewConsoleEncoder(console), zapcore.AddSync(os.Stdout), lvl))
	}

	z := zap.New(zapcore.NewTee(cores...), zap.ErrorOutput(sink))
	zap.ReplaceGlobals(z)

	s := z.Sugar()
	s.Infow("logger online", "level", lvl.String(), "tee", tee)
	return s, nil
}
