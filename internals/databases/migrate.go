package database

import (
	"log"

	"gorm.io/gorm"

	adminModel "academy_backend/internals/features/admins/model"
	noticeModel "academy_backend/internals/features/community/notices/model"
	parentModel "academy_backend/internals/features/community/parent_posts/model"
	consultationModel "academy_backend/internals/features/entrance/consultations/model"
	qnaModel "academy_backend/internals/features/entrance/qna/model"
	mealModel "academy_backend/internals/features/learn/meal_plans/model"
	storyModel "academy_backend/internals/features/story/success_stories/model"
)

// Models lists every table owned by this service, parents before children.
func Models() []any {
	return []any{
		&adminModel.AdminModel{},
		&adminModel.AdminSessionModel{},
		&noticeModel.NoticeModel{},
		&parentModel.ParentPostModel{},
		&parentModel.CommentModel{},
		&qnaModel.QnaPostModel{},
		&consultationModel.ConsultationModel{},
		&mealModel.MealPlanModel{},
		&storyModel.SuccessStoryModel{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		log.Printf("❌ migrate: %v", err)
		return err
	}
	log.Println("✅ schema up to date")
	return nil
}
