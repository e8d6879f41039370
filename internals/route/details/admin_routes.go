package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoutes "academy_backend/internals/features/admins/route"
	adminService "academy_backend/internals/features/admins/service"
	verifyRoutes "academy_backend/internals/features/verify/route"
	"academy_backend/internals/middlewares"
)

// /api/admin/*, /api/verify-password
func AuthRoutes(api fiber.Router, db *gorm.DB, gate *adminService.SessionGate) {
	adminRoutes.AdminRoutes(api, db, gate, middlewares.LoginRateLimiter())
	verifyRoutes.VerifyRoutes(api, db, middlewares.VerifyPasswordRateLimiter())
}
