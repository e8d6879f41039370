package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gormLogger "gorm.io/gorm/logger"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "ADMIN_SESSION_SECRET", "NEXTAUTH_SECRET", "ADMIN_SESSION_TTL",
		"COOKIE_SECURE", "SESSION_CLEANUP_CRON", "CONSULTATION_NOTIFY_TO", "APP_ENV", "RAILWAY_ENVIRONMENT"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.AdminSessionSecret)
	assert.Equal(t, 12*time.Hour, cfg.AdminSessionTTL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "@every 1h", cfg.SessionCleanupCron)
	assert.Nil(t, cfg.ConsultationNotifyTo)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ADMIN_SESSION_SECRET", "")
	t.Setenv("NEXTAUTH_SECRET", "legacy-secret")
	t.Setenv("ADMIN_SESSION_TTL", "30m")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("CONSULTATION_NOTIFY_TO", " a@example.com, ,b@example.com ")

	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "legacy-secret", cfg.AdminSessionSecret)
	assert.Equal(t, 30*time.Minute, cfg.AdminSessionTTL)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.ConsultationNotifyTo)

	t.Setenv("ADMIN_SESSION_SECRET", "primary")
	assert.Equal(t, "primary", FromEnv().AdminSessionSecret)
}

func TestGetHelpers_BadValues(t *testing.T) {
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_DUR", "-5m")
	t.Setenv("X_STR", "")

	assert.True(t, GetBool("X_BOOL", true))
	assert.Equal(t, time.Hour, GetDuration("X_DUR", time.Hour))
	assert.Equal(t, "fallback", GetEnv("X_STR", "fallback"))
	assert.Equal(t, "", GetEnv("X_STR"))
}

func TestGormLogger_LogModeCopies(t *testing.T) {
	base := NewGormLogger(gormLogger.Warn).(*GormLogger)
	quiet := base.LogMode(gormLogger.Silent).(*GormLogger)

	assert.Equal(t, gormLogger.Warn, base.LogLevel)
	assert.Equal(t, gormLogger.Silent, quiet.LogLevel)
	assert.Equal(t, base.SlowThreshold, quiet.SlowThreshold)
}
