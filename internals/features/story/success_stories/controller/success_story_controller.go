package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/constants"
	"academy_backend/internals/features/story/success_stories/dto"
	"academy_backend/internals/features/story/success_stories/model"
	helper "academy_backend/internals/helpers"
	helperAuth "academy_backend/internals/helpers/auth"
)

const defaultStoryLimit = 9

type SuccessStoryController struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewSuccessStoryController(db *gorm.DB) *SuccessStoryController {
	return &SuccessStoryController{DB: db, Now: time.Now}
}

// GET /api/success-stories?page=&limit=&year=&search=&all=true
func (ctl *SuccessStoryController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, defaultStoryLimit, helper.MaxLimit)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.SuccessStoryModel{})
	// hidden rows only for an admin that asks for them
	if !(helperAuth.IsAdmin(c) && c.QueryBool("all")) {
		tx = tx.Where("is_visible = ?", true)
	}
	if y, err := strconv.Atoi(c.Query("year")); err == nil && y > 0 {
		tx = tx.Where("year = ?", y)
	}
	tx = helper.ApplySearch(tx, c.Query("search"), "student_name", "university", "department", "content")

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.UnexpectedError(c, "SuccessStory.List", err)
	}

	var rows []model.SuccessStoryModel
	if err := tx.
		Order("year DESC").
		Order("created_at DESC").
		Order("id DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.UnexpectedError(c, "SuccessStory.List", err)
	}

	return helper.JsonList(c, rows, helper.BuildPagination(total, p), nil)
}

// GET /api/success-stories/:id
func (ctl *SuccessStoryController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	notFound := constants.NotFound(constants.NounSuccessStory)

	var m model.SuccessStoryModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, id).Error; err != nil {
		return helper.DBError(c, "SuccessStory.Detail", err, notFound)
	}
	if !m.IsVisible && !helperAuth.IsAdmin(c) {
		return helper.NotFoundError(notFound)
	}
	return helper.JsonOK(c, m)
}

// POST /api/success-stories (admin)
func (ctl *SuccessStoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateSuccessStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(constants.MsgRequiredFields)
	}

	m := req.ToModel(ctl.Now().Year())
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.UnexpectedError(c, "SuccessStory.Create", err)
	}
	return helper.JsonCreated(c, constants.Created(constants.NounSuccessStory), m.ID)
}

// PUT /api/success-stories/:id (admin)
func (ctl *SuccessStoryController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateSuccessStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(constants.MsgRequiredFields)
	}

	db := ctl.DB.WithContext(c.UserContext())
	var m model.SuccessStoryModel
	if err := db.First(&m, id).Error; err != nil {
		return helper.DBError(c, "SuccessStory.Update", err, constants.NotFound(constants.NounSuccessStory))
	}
	req.ApplyToModel(&m)
	if m.StudentName == "" || m.University == "" || m.Department == "" || m.Content == "" {
		return helper.ValidationError(constants.MsgRequiredFields)
	}
	// Save writes is_visible=false too; Updates(struct) would skip it
	if err := db.Save(&m).Error; err != nil {
		return helper.UnexpectedError(c, "SuccessStory.Update", err)
	}
	return helper.JsonMessage(c, constants.Updated(constants.NounSuccessStory))
}

// DELETE /api/success-stories/:id (admin)
func (ctl *SuccessStoryController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.SuccessStoryModel{}, id)
	if res.Error != nil {
		return helper.UnexpectedError(c, "SuccessStory.Delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.NotFoundError(constants.NotFound(constants.NounSuccessStory))
	}
	return helper.JsonMessage(c, constants.Deleted(constants.NounSuccessStory))
}
