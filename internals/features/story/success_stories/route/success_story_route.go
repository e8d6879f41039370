package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	storyCtl "academy_backend/internals/features/story/success_stories/controller"
	authAdmin "academy_backend/internals/middlewares/auth_admin"
)

func SuccessStoryRoutes(api fiber.Router, db *gorm.DB) {
	ctl := storyCtl.NewSuccessStoryController(db)
	g := api.Group("/success-stories")

	// public (admin sees hidden rows)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Detail)

	// admin
	g.Post("/", authAdmin.RequireAdmin(), ctl.Create)
	g.Put("/:id", authAdmin.RequireAdmin(), ctl.Update)
	g.Delete("/:id", authAdmin.RequireAdmin(), ctl.Delete)
}
