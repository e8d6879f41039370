package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/constants"
	"academy_backend/internals/features/entrance/qna/dto"
	"academy_backend/internals/features/entrance/qna/model"
	helper "academy_backend/internals/helpers"
	helperAuth "academy_backend/internals/helpers/auth"
)

const defaultQnaLimit = 15

type QnaController struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewQnaController(db *gorm.DB) *QnaController {
	return &QnaController{DB: db, Now: time.Now}
}

// GET /api/qna?page=&limit=&search=
func (ctl *QnaController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, defaultQnaLimit, helper.MaxLimit)
	db := ctl.DB.WithContext(c.UserContext())

	tx := helper.ApplySearch(db.Model(&model.QnaPostModel{}), c.Query("search"), "title", "content")

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.UnexpectedError(c, "Qna.List", err)
	}

	var rows []model.QnaPostModel
	if err := tx.
		Order("created_at DESC").
		Order("id DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.UnexpectedError(c, "Qna.List", err)
	}

	var unanswered int64
	if err := db.Model(&model.QnaPostModel{}).Where("is_answered = ?", false).Count(&unanswered).Error; err != nil {
		return helper.UnexpectedError(c, "Qna.List", err)
	}

	return helper.JsonList(c, dto.NewQnaResponses(rows, helperAuth.IsAdmin(c)), helper.BuildPagination(total, p),
		fiber.Map{"unansweredCount": unanswered})
}

// POST /api/qna
func (ctl *QnaController) Create(c *fiber.Ctx) error {
	var req dto.CreateQnaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		if field, _ := helper.FirstInvalidField(err); field == "Password" {
			return helper.ValidationError(constants.MsgPasswordRequired)
		}
		return helper.ValidationError(constants.MsgTitleContent)
	}

	hash, err := helperAuth.HashPassword(req.Password)
	if err != nil {
		return helper.UnexpectedError(c, "Qna.Create", err)
	}
	m := req.ToModel(hash)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.UnexpectedError(c, "Qna.Create", err)
	}
	return helper.JsonCreated(c, constants.Created(constants.NounQna), m.ID)
}

// GET /api/qna/:id
func (ctl *QnaController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m model.QnaPostModel
	if err := db.First(&m, id).Error; err != nil {
		return helper.DBError(c, "Qna.Detail", err, constants.NotFound(constants.NounQna))
	}
	if err := helper.IncrementViews(db, &model.QnaPostModel{}, id); err != nil {
		return helper.UnexpectedError(c, "Qna.Detail", err)
	}
	m.Views++
	return helper.JsonOK(c, dto.NewQnaResponse(m, helperAuth.IsAdmin(c)))
}

// PUT /api/qna/:id
//
// admin + answer_content → answer; otherwise an edit guarded by the row password.
func (ctl *QnaController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateQnaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(constants.MsgTitleContent)
	}

	db := ctl.DB.WithContext(c.UserContext())
	notFound := constants.NotFound(constants.NounQna)
	isAdmin := helperAuth.IsAdmin(c)

	if !isAdmin {
		if err := helperAuth.AuthorizeRowWrite(c, db, helperAuth.TableQnaPosts, id, req.Password, notFound); err != nil {
			return err
		}
	}

	var m model.QnaPostModel
	if err := db.First(&m, id).Error; err != nil {
		return helper.DBError(c, "Qna.Update", err, notFound)
	}

	msg := constants.Updated(constants.NounQna)
	if isAdmin && req.AnswerContent != nil {
		if *req.AnswerContent == "" {
			return helper.ValidationError(constants.MsgAnswerRequired)
		}
		dto.Answer(&m, *req.AnswerContent, ctl.Now().UTC())
		msg = constants.Created(constants.NounAnswer)
	}
	req.ApplyToModel(&m)
	if m.Title == "" || m.Content == "" {
		return helper.ValidationError(constants.MsgTitleContent)
	}

	if err := db.Save(&m).Error; err != nil {
		return helper.UnexpectedError(c, "Qna.Update", err)
	}
	return helper.JsonMessage(c, msg)
}

// DELETE /api/qna/:id  body {password} or ?password=
func (ctl *QnaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.DeleteQnaRequest
	_ = c.BodyParser(&req)

	db := ctl.DB.WithContext(c.UserContext())
	notFound := constants.NotFound(constants.NounQna)
	if err := helperAuth.AuthorizeRowWrite(c, db, helperAuth.TableQnaPosts, id, helperAuth.PasswordFrom(c, req.Password), notFound); err != nil {
		return err
	}

	res := db.Delete(&model.QnaPostModel{}, id)
	if res.Error != nil {
		return helper.UnexpectedError(c, "Qna.Delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.NotFoundError(notFound)
	}
	return helper.JsonMessage(c, constants.Deleted(constants.NounQna))
}
