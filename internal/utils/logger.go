package utils

import (
	"errors"
	"log"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger   *zap.Logger
	loggerMu sync.Mutex
)

// InitLogger builds the process logger. Production uses JSON output; anything
// else gets the colored development encoder.
func InitLogger(production bool, level string) *zap.Logger {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl := zap.NewAtomicLevelAt(zap.InfoLevel)
	if strings.TrimSpace(level) != "" {
		if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
			log.Printf("warning: unknown LOG_LEVEL %q, using info", level)
		}
	}
	cfg.Level = lvl

	l, err := cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	SetLogger(l)
	return l
}

// SetLogger swaps the process logger; tests use it with zap.NewNop.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
	zap.ReplaceGlobals(l)
}

// GetLogger returns the process logger, building a development one on first use.
func GetLogger() *zap.Logger {
	loggerMu.Lock()
	l := logger
	loggerMu.Unlock()
	if l == nil {
		return InitLogger(false, "info")
	}
	return l
}

// LogEvent writes one line per business action with module/action/request_id.
// Avoid logging customer payloads; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	GetLogger().Info(message,
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	)
}

// LogFailure is LogEvent for errors that are swallowed rather than shown.
func LogFailure(requestID, module, action string, err error) {
	LogFailureTo(GetLogger(), requestID, module, action, err)
}

// LogFailureTo writes the failure line to a specific logger.
func LogFailureTo(l *zap.Logger, requestID, module, action string, err error) {
	fields := []zap.Field{
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	}
	l.Warn("action failed", append(fields, ErrorFields(err)...)...)
}

// detailer is implemented by errors that carry a log-only description,
// such as failed calls to the booking service.
type detailer interface {
	Detail() string
}

// ErrorFields renders err for a log line, adding the upstream call detail
// when the chain has one.
func ErrorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}
	var d detailer
	if errors.As(err, &d) {
		fields = append(fields, zap.String("upstream", d.Detail()))
	}
	return fields
}
