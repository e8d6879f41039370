package configs

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Config holds everything the handlers need at runtime. It is filled once by
// LoadEnv and passed down explicitly; handlers never read os.Getenv themselves.
type Config struct {
	Port        string
	Environment string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	AdminSessionSecret string
	AdminSessionTTL    time.Duration
	CookieSecure       bool
	CorsAllowOrigins   string
	SessionCleanupCron string

	ResendAPIKey         string
	MailFrom             string
	ConsultationNotifyTo []string

	AdminSeedFile string
}

var AppConfig Config

// =======================
// ENV LOADER
// =======================
func LoadEnv() Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env not found, using system environment")
		} else {
			log.Println("✅ .env loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system environment")
	}

	AppConfig = FromEnv()

	if AppConfig.AdminSessionSecret == "" {
		log.Println("❌ ADMIN_SESSION_SECRET is not set, admin login is disabled")
	} else {
		log.Println("✅ ADMIN_SESSION_SECRET loaded.")
	}
	if AppConfig.ResendAPIKey == "" {
		log.Println("⚠️ RESEND_API_KEY is not set, consultation mails are skipped")
	}
	return AppConfig
}

// FromEnv reads the process environment without touching .env files.
func FromEnv() Config {
	secret := GetEnv("ADMIN_SESSION_SECRET")
	if secret == "" {
		// name used by the previous deployment
		secret = GetEnv("NEXTAUTH_SECRET")
	}

	return Config{
		Port:        GetEnv("PORT", "3000"),
		Environment: GetEnv("APP_ENV", GetEnv("RAILWAY_ENVIRONMENT", "development")),

		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBName:     GetEnv("DB_NAME"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "disable"),

		AdminSessionSecret: secret,
		AdminSessionTTL:    GetDuration("ADMIN_SESSION_TTL", 12*time.Hour),
		CookieSecure:       GetBool("COOKIE_SECURE", true),
		CorsAllowOrigins:   GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
		SessionCleanupCron: GetEnv("SESSION_CLEANUP_CRON", "@every 1h"),

		ResendAPIKey:         GetEnv("RESEND_API_KEY"),
		MailFrom:             GetEnv("MAIL_FROM", "academy <no-reply@academy.local>"),
		ConsultationNotifyTo: splitList(GetEnv("CONSULTATION_NOTIFY_TO")),

		AdminSeedFile: GetEnv("ADMIN_SEED_FILE", "internals/seeds/admins/data_admins.json"),
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetBool(key string, def bool) bool {
	v := strings.TrimSpace(GetEnv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("⚠️ %s=%q is not a bool, using %v", key, v, def)
		return def
	}
	return b
}

func GetDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(GetEnv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("⚠️ %s=%q is not a duration, using %s", key, v, def)
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(level gormLogger.LogLevel) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
