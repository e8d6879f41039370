package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/constants"
	"academy_backend/internals/features/community/parent_posts/dto"
	"academy_backend/internals/features/community/parent_posts/model"
	helper "academy_backend/internals/helpers"
	helperAuth "academy_backend/internals/helpers/auth"
)

const defaultParentPostLimit = 15

type ParentPostController struct {
	DB *gorm.DB
}

func NewParentPostController(db *gorm.DB) *ParentPostController {
	return &ParentPostController{DB: db}
}

// GET /api/parent-posts?page=&limit=&search=
func (ctl *ParentPostController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, defaultParentPostLimit, helper.MaxLimit)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.ParentPostModel{})
	tx = helper.ApplySearch(tx, c.Query("search"), "title", "content")

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.UnexpectedError(c, "ParentPost.List", err)
	}

	var rows []model.ParentPostModel
	if err := tx.
		Order("created_at DESC").
		Order("id DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.UnexpectedError(c, "ParentPost.List", err)
	}

	items := dto.NewParentPostListItems(rows, helperAuth.IsAdmin(c))
	return helper.JsonList(c, items, helper.BuildPagination(total, p), nil)
}

// POST /api/parent-posts
func (ctl *ParentPostController) Create(c *fiber.Ctx) error {
	var req dto.CreateParentPostRequest
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
		return helper.UnexpectedError(c, "ParentPost.Create", err)
	}
	m := req.ToModel(hash)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.UnexpectedError(c, "ParentPost.Create", err)
	}
	return helper.JsonCreated(c, constants.Created(constants.NounParentPost), m.ID)
}

// loadReadable fetches the post and enforces the secret-post rule:
// admins and holders of ?password= only.
func (ctl *ParentPostController) loadReadable(c *fiber.Ctx, db *gorm.DB, id uint) (*model.ParentPostModel, error) {
	var m model.ParentPostModel
	if err := db.First(&m, id).Error; err != nil {
		return nil, helper.DBError(c, "ParentPost.Load", err, constants.NotFound(constants.NounParentPost))
	}
	if !m.IsSecret || helperAuth.IsAdmin(c) {
		return &m, nil
	}
	pw := c.Query("password")
	if pw == "" {
		return nil, fiber.NewError(fiber.StatusForbidden, constants.MsgPasswordRequired)
	}
	if !helperAuth.CheckPasswordHash(m.PasswordHash, pw) {
		return nil, helper.WrongPassword()
	}
	return &m, nil
}

// GET /api/parent-posts/:id[?password=]
func (ctl *ParentPostController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())

	m, err := ctl.loadReadable(c, db, id)
	if err != nil {
		return err
	}
	if err := helper.IncrementViews(db, &model.ParentPostModel{}, id); err != nil {
		return helper.UnexpectedError(c, "ParentPost.Detail", err)
	}
	m.Views++

	var comments []model.CommentModel
	if err := db.Where("post_id = ?", id).
		Order("created_at ASC").Order("id ASC").
		Find(&comments).Error; err != nil {
		return helper.UnexpectedError(c, "ParentPost.Detail", err)
	}

	resp := dto.NewParentPostResponse(*m)
	resp.Comments = dto.NewCommentResponses(comments)
	return helper.JsonOK(c, resp)
}

// PUT /api/parent-posts/:id  (row password or admin)
func (ctl *ParentPostController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateParentPostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(constants.MsgTitleContent)
	}

	db := ctl.DB.WithContext(c.UserContext())
	notFound := constants.NotFound(constants.NounParentPost)
	if err := helperAuth.AuthorizeRowWrite(c, db, helperAuth.TableParentPosts, id, req.Password, notFound); err != nil {
		return err
	}

	var m model.ParentPostModel
	if err := db.First(&m, id).Error; err != nil {
		return helper.DBError(c, "ParentPost.Update", err, notFound)
	}
	req.ApplyToModel(&m)
	if m.Title == "" || m.Content == "" {
		return helper.ValidationError(constants.MsgTitleContent)
	}
	if err := db.Save(&m).Error; err != nil {
		return helper.UnexpectedError(c, "ParentPost.Update", err)
	}
	return helper.JsonMessage(c, constants.Updated(constants.NounParentPost))
}

// DELETE /api/parent-posts/:id  body {password} or ?password=
func (ctl *ParentPostController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.PasswordRequest
	_ = c.BodyParser(&req)

	db := ctl.DB.WithContext(c.UserContext())
	notFound := constants.NotFound(constants.NounParentPost)
	pw := helperAuth.PasswordFrom(c, req.Password)
	if err := helperAuth.AuthorizeRowWrite(c, db, helperAuth.TableParentPosts, id, pw, notFound); err != nil {
		return err
	}

	var affected int64
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.ParentPostModel{}, id)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return helper.UnexpectedError(c, "ParentPost.Delete", err)
	}
	if affected == 0 {
		return helper.NotFoundError(notFound)
	}
	return helper.JsonMessage(c, constants.Deleted(constants.NounParentPost))
}
