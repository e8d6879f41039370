package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noticeCtl "academy_backend/internals/features/community/notices/controller"
	authAdmin "academy_backend/internals/middlewares/auth_admin"
)

func NoticeRoutes(api fiber.Router, db *gorm.DB) {
	ctl := noticeCtl.NewNoticeController(db)
	g := api.Group("/notices")

	// public
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Detail)

	// admin
	g.Post("/", authAdmin.RequireAdmin(), ctl.Create)
	g.Put("/:id", authAdmin.RequireAdmin(), ctl.Update)
	g.Delete("/:id", authAdmin.RequireAdmin(), ctl.Delete)
}
