package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	verifyCtl "academy_backend/internals/features/verify/controller"
)

// VerifyRoutes: limiter slows password guessing per IP.
func VerifyRoutes(api fiber.Router, db *gorm.DB, limiter fiber.Handler) {
	ctl := verifyCtl.NewVerifyController(db)

	// POST /api/verify-password
	api.Post("/verify-password", limiter, ctl.Verify)
}
