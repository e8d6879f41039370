package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminCtl "academy_backend/internals/features/admins/controller"
	"academy_backend/internals/features/admins/service"
	authAdmin "academy_backend/internals/middlewares/auth_admin"
)

// AdminRoutes mounts /admin under api. loginLimiter wraps only the login POST.
func AdminRoutes(api fiber.Router, db *gorm.DB, gate *service.SessionGate, loginLimiter fiber.Handler) {
	sess := adminCtl.NewSessionController(gate)
	dash := adminCtl.NewDashboardController(db)

	g := api.Group("/admin")

	// POST /api/admin/login
	g.Post("/login", loginLimiter, sess.Login)
	// POST /api/admin/logout
	g.Post("/logout", sess.Logout)
	// GET /api/admin/check
	g.Get("/check", sess.Check)

	// GET /api/admin/dashboard
	g.Get("/dashboard", authAdmin.RequireAdmin(), dash.Summary)
}
