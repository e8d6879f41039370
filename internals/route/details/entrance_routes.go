package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	consultRoutes "academy_backend/internals/features/entrance/consultations/route"
	consultService "academy_backend/internals/features/entrance/consultations/service"
	qnaRoutes "academy_backend/internals/features/entrance/qna/route"
)

// /api/qna, /api/consultations
func EntranceRoutes(api fiber.Router, db *gorm.DB, notifier consultService.Notifier) {
	qnaRoutes.QnaRoutes(api, db)
	consultRoutes.ConsultationRoutes(api, db, notifier)
}
