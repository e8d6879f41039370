package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"academy_backend/internals/constants"
)

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": message,
			})
		},
	})
}

// Global limiter: semua endpoint /api
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, 1*time.Minute, constants.MsgTooManyRequests)
}

// Login admin (lebih ketat)
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, 1*time.Minute, constants.MsgTooManyLogins)
}

// Verifikasi password per-post: memperlambat tebakan online
func VerifyPasswordRateLimiter() fiber.Handler {
	return newLimiter(10, 1*time.Minute, constants.MsgTooManyRequests)
}
