package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noticeRoutes "academy_backend/internals/features/community/notices/route"
	parentRoutes "academy_backend/internals/features/community/parent_posts/route"
)

// /api/notices, /api/parent-posts
func CommunityRoutes(api fiber.Router, db *gorm.DB) {
	noticeRoutes.NoticeRoutes(api, db)
	parentRoutes.ParentPostRoutes(api, db)
}
