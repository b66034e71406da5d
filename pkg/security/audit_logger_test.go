package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "***@x.io", MaskEmail("a@x.io"))
	assert.Equal(t, "***", MaskEmail("ab"))
	assert.Equal(t, "***omething", MaskEmail("something"))
}

func TestAuditLogger_Events(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	audit := NewAuditLoggerWith(zap.New(core), "job-portal-test")
	ctx := context.Background()

	audit.LoginSucceeded(ctx, "req-1", "jane@example.com", "applicant")
	audit.LoginFailed(ctx, "", "jane@example.com", "admin", "password_mismatch")
	audit.Registered(ctx, "req-2", "acme@example.com", "employer")

	entries := logs.All()
	require.Len(t, entries, 3)

	first := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "login_success", first["event"])
	assert.Equal(t, "req-1", first["request_id"])
	assert.Equal(t, "j***@example.com", first["subject"])

	second := entries[1].ContextMap()
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "password_mismatch", second["reason"])
	assert.NotContains(t, second, "request_id")

	assert.Equal(t, "user_registered", entries[2].Message)
}

func TestAuditLogger_NilSafe(t *testing.T) {
	var audit *AuditLogger
	assert.NotPanics(t, func() {
		audit.LoginSucceeded(context.Background(), "", "a@b.c", "applicant")
		audit.Sync()
	})
}
