package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academy_backend/internals/configs"
	"academy_backend/internals/features/admins/model"
	helperAuth "academy_backend/internals/helpers/auth"
)

const CookieName = "admin_session"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginDisabled      = errors.New("admin session secret is not configured")
	ErrSessionInvalid     = errors.New("admin session invalid")
)

/* ==========================
   Session gate
========================== */

// SessionGate issues and checks admin sessions. The cookie holds an HS256 token
// whose jti names a row in admin_sessions; deleting the row revokes only that
// login.
type SessionGate struct {
	DB     *gorm.DB
	Secret []byte
	TTL    time.Duration
	Secure bool

	now func() time.Time
}

func NewSessionGate(db *gorm.DB, cfg configs.Config) *SessionGate {
	ttl := cfg.AdminSessionTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionGate{
		DB:     db,
		Secret: []byte(strings.TrimSpace(cfg.AdminSessionSecret)),
		TTL:    ttl,
		Secure: cfg.CookieSecure,
		now:    time.Now,
	}
}

func (g *SessionGate) Enabled() bool { return len(g.Secret) > 0 }

func (g *SessionGate) nowUTC() time.Time {
	if g.now == nil {
		return time.Now().UTC()
	}
	return g.now().UTC()
}

// Authenticate checks username/password against the admins table (bcrypt).
func (g *SessionGate) Authenticate(ctx context.Context, username, password string) (*model.AdminModel, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var admin model.AdminModel
	err := g.DB.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !helperAuth.CheckPasswordHash(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &admin, nil
}

// Issue stores a new session row and returns its signed token.
func (g *SessionGate) Issue(ctx context.Context, admin *model.AdminModel, userAgent, ip string) (string, time.Time, error) {
	if !g.Enabled() {
		return "", time.Time{}, ErrLoginDisabled
	}

	now := g.nowUTC()
	sess := model.AdminSessionModel{
		ID:        uuid.New(),
		AdminID:   admin.ID,
		ExpiresAt: now.Add(g.TTL),
		UserAgent: truncate(userAgent, 255),
		IP:        truncate(ip, 64),
	}
	if err := g.DB.WithContext(ctx).Create(&sess).Error; err != nil {
		return "", time.Time{}, err
	}

	claims := jwt.RegisteredClaims{
		ID:        sess.ID.String(),
		Subject:   admin.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, sess.ExpiresAt, nil
}

func (g *SessionGate) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return g.Secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrSessionInvalid
	}
	return claims, nil
}

// Resolve returns the live session behind token.
func (g *SessionGate) Resolve(ctx context.Context, token string) (*model.AdminSessionModel, error) {
	if !g.Enabled() || strings.TrimSpace(token) == "" {
		return nil, ErrSessionInvalid
	}
	claims, err := g.parse(token)
	if err != nil {
		return nil, err
	}
	sid, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, ErrSessionInvalid
	}

	var sess model.AdminSessionModel
	err = g.DB.WithContext(ctx).
		Where("id = ? AND expires_at > ?", sid, g.nowUTC()).
		First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionInvalid
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// IsAdmin never fails: a missing cookie, a bad token, a revoked session or a
// DB error all read as "not admin".
func (g *SessionGate) IsAdmin(c *fiber.Ctx) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[SessionGate.IsAdmin] recovered: %v", r)
			ok = false
		}
	}()
	token := c.Cookies(CookieName)
	if token == "" {
		return false
	}
	_, err := g.Resolve(c.UserContext(), token)
	if err != nil && !errors.Is(err, ErrSessionInvalid) {
		log.Printf("[SessionGate.IsAdmin] resolve: %v", err)
	}
	return err == nil
}

// Revoke deletes the session named by token. Unknown or invalid tokens are a no-op.
func (g *SessionGate) Revoke(ctx context.Context, token string) error {
	if !g.Enabled() || strings.TrimSpace(token) == "" {
		return nil
	}
	claims, err := g.parse(token)
	if err != nil {
		return nil
	}
	sid, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil
	}
	return g.DB.WithContext(ctx).Where("id = ?", sid).Delete(&model.AdminSessionModel{}).Error
}

// PurgeExpired removes sessions past their expiry.
func (g *SessionGate) PurgeExpired(ctx context.Context) (int64, error) {
	res := g.DB.WithContext(ctx).Where("expires_at <= ?", g.nowUTC()).Delete(&model.AdminSessionModel{})
	return res.RowsAffected, res.Error
}

/* ==========================
   Cookies
========================== */

func (g *SessionGate) SetCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   g.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  expires,
	})
}

func (g *SessionGate) ClearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   g.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
