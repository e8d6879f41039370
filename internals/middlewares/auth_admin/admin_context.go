package authAdmin

import (
	"github.com/gofiber/fiber/v2"

	helper "academy_backend/internals/helpers"
	helperAuth "academy_backend/internals/helpers/auth"
)

// AdminChecker is satisfied by the admins session gate.
type AdminChecker interface {
	IsAdmin(c *fiber.Ctx) bool
}

// AdminContext resolves the admin_session cookie once and stores the result in
// Locals so handlers can branch on helperAuth.IsAdmin(c). It never rejects.
func AdminContext(gate AdminChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		helperAuth.SetAdmin(c, gate != nil && gate.IsAdmin(c))
		return c.Next()
	}
}

// RequireAdmin answers 401 unless AdminContext marked the request as admin.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsAdmin(c) {
			return helper.AdminRequired()
		}
		return c.Next()
	}
}
