package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/constants"
	"academy_backend/internals/features/community/notices/dto"
	"academy_backend/internals/features/community/notices/model"
	helper "academy_backend/internals/helpers"
)

const defaultNoticeLimit = 15

type NoticeController struct {
	DB *gorm.DB
}

func NewNoticeController(db *gorm.DB) *NoticeController {
	return &NoticeController{DB: db}
}

// =========================
// List (public)
// =========================

// GET /api/notices?page=&limit=&search=
func (ctl *NoticeController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, defaultNoticeLimit, helper.MaxLimit)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.NoticeModel{})
	tx = helper.ApplySearch(tx, c.Query("search"), "title", "content")

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.UnexpectedError(c, "Notice.List", err)
	}

	var rows []model.NoticeModel
	if err := tx.
		Order("is_pinned DESC").
		Order("created_at DESC").
		Order("id DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.UnexpectedError(c, "Notice.List", err)
	}

	return helper.JsonList(c, dto.NewNoticeResponses(rows), helper.BuildPagination(total, p), nil)
}

// =========================
// Detail (public, views++)
// =========================

// GET /api/notices/:id
func (ctl *NoticeController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m model.NoticeModel
	if err := db.First(&m, id).Error; err != nil {
		return helper.DBError(c, "Notice.Detail", err, constants.NotFound(constants.NounNotice))
	}
	if err := helper.IncrementViews(db, &model.NoticeModel{}, id); err != nil {
		return helper.UnexpectedError(c, "Notice.Detail", err)
	}
	m.Views++

	resp := dto.NewNoticeResponse(m)
	if html, err := helper.RenderMarkdown(m.Content); err != nil {
		log.Printf("[Notice.Detail] markdown id=%d: %v", id, err)
	} else {
		resp.ContentHTML = html
	}
	return helper.JsonOK(c, resp)
}

// =========================
// Create / Update / Delete (admin)
// =========================

// POST /api/notices
func (ctl *NoticeController) Create(c *fiber.Ctx) error {
	var req dto.CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(constants.MsgTitleContent)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.UnexpectedError(c, "Notice.Create", err)
	}
	return helper.JsonCreated(c, constants.Created(constants.NounNotice), m.ID)
}

// PUT /api/notices/:id
func (ctl *NoticeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(constants.MsgTitleContent)
	}

	db := ctl.DB.WithContext(c.UserContext())
	var m model.NoticeModel
	if err := db.First(&m, id).Error; err != nil {
		return helper.DBError(c, "Notice.Update", err, constants.NotFound(constants.NounNotice))
	}
	req.ApplyToModel(&m)
	if m.Title == "" || m.Content == "" {
		return helper.ValidationError(constants.MsgTitleContent)
	}
	if err := db.Save(&m).Error; err != nil {
		return helper.UnexpectedError(c, "Notice.Update", err)
	}
	return helper.JsonMessage(c, constants.Updated(constants.NounNotice))
}

// DELETE /api/notices/:id
func (ctl *NoticeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.NoticeModel{}, id)
	if res.Error != nil {
		return helper.UnexpectedError(c, "Notice.Delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.NotFoundError(constants.NotFound(constants.NounNotice))
	}
	return helper.JsonMessage(c, constants.Deleted(constants.NounNotice))
}
