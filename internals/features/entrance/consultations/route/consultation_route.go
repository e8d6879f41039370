package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	consultCtl "academy_backend/internals/features/entrance/consultations/controller"
	"academy_backend/internals/features/entrance/consultations/service"
	authAdmin "academy_backend/internals/middlewares/auth_admin"
)

func ConsultationRoutes(api fiber.Router, db *gorm.DB, notifier service.Notifier) {
	ctl := consultCtl.NewConsultationController(db, notifier)
	g := api.Group("/consultations")

	// public
	g.Post("/", ctl.Create)

	// admin
	g.Get("/", authAdmin.RequireAdmin(), ctl.List)
	g.Get("/:id", authAdmin.RequireAdmin(), ctl.Detail)
	g.Put("/:id", authAdmin.RequireAdmin(), ctl.UpdateStatus)
	g.Delete("/:id", authAdmin.RequireAdmin(), ctl.Delete)
}
