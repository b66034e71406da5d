package security

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of authentication event
type EventType string

const (
	EventLoginSuccess   EventType = "login_success"
	EventLoginFailed    EventType = "login_failed"
	EventUserRegistered EventType = "user_registered"
	EventAdminSeeded    EventType = "admin_seeded"
)

// AuditLogger writes authentication events as structured zap records,
// separate from the request log. Emails are masked; passwords never reach it.
type AuditLogger struct {
	zapLogger   *zap.Logger
	serviceName string
}

// NewAuditLogger builds a production zap logger writing JSON to stdout.
func NewAuditLogger(serviceName string) *AuditLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return NewAuditLoggerWith(logger, serviceName)
}

// NewAuditLoggerWith wraps an existing zap logger (zap.NewNop() or an observer in tests).
func NewAuditLoggerWith(logger *zap.Logger, serviceName string) *AuditLogger {
	return &AuditLogger{zapLogger: logger, serviceName: serviceName}
}

func (a *AuditLogger) log(level zapcore.Level, event EventType, requestID string, fields ...zap.Field) {
	if a == nil || a.zapLogger == nil {
		return
	}
	base := []zap.Field{
		zap.String("service", a.serviceName),
		zap.String("event", string(event)),
	}
	if requestID != "" {
		base = append(base, zap.String("request_id", requestID))
	}
	a.zapLogger.Log(level, string(event), append(base, fields...)...)
}

func (a *AuditLogger) LoginSucceeded(_ context.Context, requestID, email, role string) {
	a.log(zapcore.InfoLevel, EventLoginSuccess, requestID,
		zap.String("subject", MaskEmail(email)), zap.String("role", role))
}

func (a *AuditLogger) LoginFailed(_ context.Context, requestID, email, role, reason string) {
	a.log(zapcore.WarnLevel, EventLoginFailed, requestID,
		zap.String("subject", MaskEmail(email)), zap.String("role", role), zap.String("reason", reason))
}

func (a *AuditLogger) Registered(_ context.Context, requestID, email, role string) {
	a.log(zapcore.InfoLevel, EventUserRegistered, requestID,
		zap.String("subject", MaskEmail(email)), zap.String("role", role))
}

func (a *AuditLogger) AdminSeeded(_ context.Context, requestID, email string) {
	a.log(zapcore.InfoLevel, EventAdminSeeded, requestID, zap.String("subject", MaskEmail(email)))
}

// Sync flushes buffered entries; call on shutdown.
func (a *AuditLogger) Sync() {
	if a != nil && a.zapLogger != nil {
		_ = a.zapLogger.Sync()
	}
}

// MaskEmail keeps the first character and the domain: "j***@example.com".
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return "***" + email[1:]
	}
	return email[:1] + "***" + email[at:]
}
