package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	parentCtl "academy_backend/internals/features/community/parent_posts/controller"
)

// ParentPostRoutes are public; writes are gated per row (password or admin)
// inside the controllers.
func ParentPostRoutes(api fiber.Router, db *gorm.DB) {
	posts := parentCtl.NewParentPostController(db)
	comments := parentCtl.NewCommentController(db)

	g := api.Group("/parent-posts")

	// ===== posts =====
	g.Get("/", posts.List)
	g.Post("/", posts.Create)
	g.Get("/:id", posts.Detail)
	g.Put("/:id", posts.Update)
	g.Delete("/:id", posts.Delete)

	// ===== comments =====
	g.Get("/:id/comments", comments.List)
	g.Post("/:id/comments", comments.Create)
	g.Delete("/:id/comments", comments.DeleteByBody)
	g.Put("/:id/comments/:commentId", comments.Update)
	g.Delete("/:id/comments/:commentId", comments.Delete)
}
