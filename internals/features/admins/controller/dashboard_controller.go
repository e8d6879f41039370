package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/features/admins/dto"
	noticeModel "academy_backend/internals/features/community/notices/model"
	consultationModel "academy_backend/internals/features/entrance/consultations/model"
	qnaModel "academy_backend/internals/features/entrance/qna/model"
	storyModel "academy_backend/internals/features/story/success_stories/model"
	helper "academy_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/admin/dashboard
func (ctl *DashboardController) Summary(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())
	var out dto.DashboardResponse

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&out.NoticeCount, db.Model(&noticeModel.NoticeModel{})},
		{&out.PendingConsultation, db.Model(&consultationModel.ConsultationModel{}).
			Where("status = ?", consultationModel.StatusPending)},
		{&out.UnansweredQna, db.Model(&qnaModel.QnaPostModel{}).Where("is_answered = ?", false)},
		{&out.SuccessStoryCount, db.Model(&storyModel.SuccessStoryModel{})},
	}
	for _, q := range counts {
		if err := q.query.Count(q.dst).Error; err != nil {
			return helper.UnexpectedError(c, "Admin.Dashboard", err)
		}
	}

	var recent []consultationModel.ConsultationModel
	if err := db.Order("created_at DESC").Order("id DESC").Limit(5).Find(&recent).Error; err != nil {
		return helper.UnexpectedError(c, "Admin.Dashboard", err)
	}
	out.RecentConsultations = make([]dto.RecentConsultation, 0, len(recent))
	for _, r := range recent {
		out.RecentConsultations = append(out.RecentConsultations, dto.RecentConsultation{
			ID:          r.ID,
			StudentName: r.StudentName,
			Grade:       r.Grade,
			Status:      r.Status,
			CreatedAt:   r.CreatedAt,
		})
	}

	return helper.JsonOK(c, out)
}
