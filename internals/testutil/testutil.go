// Package testutil builds an in-memory SQLite database and a fully routed
// Fiber app for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"academy_backend/internals/configs"
	database "academy_backend/internals/databases"
	adminService "academy_backend/internals/features/admins/service"
	consultService "academy_backend/internals/features/entrance/consultations/service"
	helper "academy_backend/internals/helpers"
	helperAuth "academy_backend/internals/helpers/auth"
	routes "academy_backend/internals/route"
	seedAdmins "academy_backend/internals/seeds/admins"
)

const (
	AdminUser     = "admin"
	AdminPassword = "admin-password"
)

// NewDB opens a private in-memory database with the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	helperAuth.PasswordCost = bcrypt.MinCost

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  configs.NewGormLogger(gormLogger.Silent),
		NowFunc: database.NowUTC,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func Config() configs.Config {
	return configs.Config{
		Environment:        "test",
		AdminSessionSecret: "test-session-secret",
		AdminSessionTTL:    time.Hour,
		CookieSecure:       false,
	}
}

type App struct {
	*fiber.App
	DB   *gorm.DB
	Gate *adminService.SessionGate
}

// NewApp wires every route against db. notifier may be nil.
func NewApp(t *testing.T, db *gorm.DB, notifier consultService.Notifier) *App {
	t.Helper()
	cfg := Config()
	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler,
	})
	gate := adminService.NewSessionGate(db, cfg)
	if notifier == nil {
		notifier = consultService.NoopNotifier{}
	}
	routes.SetupRoutes(app, db, routes.Options{Config: cfg, Gate: gate, Notifier: notifier})
	return &App{App: app, DB: db, Gate: gate}
}

// CreateAdmin inserts the default admin account.
func CreateAdmin(t *testing.T, db *gorm.DB) {
	t.Helper()
	_, err := seedAdmins.CreateAdmin(db, AdminUser, AdminPassword)
	require.NoError(t, err)
}

// Login returns the admin_session cookie for the default admin.
func (a *App) Login(t *testing.T) *http.Cookie {
	t.Helper()
	CreateAdmin(t, a.DB)
	res := a.Do(t, http.MethodPost, "/api/admin/login", map[string]string{
		"username": AdminUser,
		"password": AdminPassword,
	}, nil)
	require.Equal(t, fiber.StatusOK, res.Status, res.Raw)
	for _, ck := range res.Cookies {
		if ck.Name == adminService.CookieName {
			return ck
		}
	}
	t.Fatal("login did not set the admin_session cookie")
	return nil
}

type Response struct {
	Status  int
	Body    map[string]any
	Raw     string
	Cookies []*http.Cookie
}

// Do sends body as JSON (nil → no body) with an optional cookie.
func (a *App) Do(t *testing.T, method, path string, body any, cookie *http.Cookie) Response {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}

	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := Response{Status: resp.StatusCode, Raw: string(raw), Cookies: resp.Cookies()}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out.Body), string(raw))
	}
	return out
}

// Items returns the "items" array of a list envelope.
func (r Response) Items() []map[string]any {
	arr, _ := r.Body["items"].([]any)
	out := make([]map[string]any, 0, len(arr))
	for _, v := range arr {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// ID reads the numeric "id" of a create response.
func (r Response) ID() uint {
	f, _ := r.Body["id"].(float64)
	return uint(f)
}
