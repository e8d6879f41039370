package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qnaCtl "academy_backend/internals/features/entrance/qna/controller"
)

func QnaRoutes(api fiber.Router, db *gorm.DB) {
	ctl := qnaCtl.NewQnaController(db)
	g := api.Group("/qna")

	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Detail)
	g.Put("/:id", ctl.Update)    // admin answer or visitor edit
	g.Delete("/:id", ctl.Delete) // password or admin
}
