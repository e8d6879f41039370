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

type CommentController struct {
	DB    *gorm.DB
	posts *ParentPostController
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db, posts: NewParentPostController(db)}
}

// GET /api/parent-posts/:id/comments
func (ctl *CommentController) List(c *fiber.Ctx) error {
	postID, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())
	if _, err := ctl.posts.loadReadable(c, db, postID); err != nil {
		return err
	}

	var rows []model.CommentModel
	if err := db.Where("post_id = ?", postID).
		Order("created_at ASC").Order("id ASC").
		Find(&rows).Error; err != nil {
		return helper.UnexpectedError(c, "Comment.List", err)
	}
	return helper.JsonOK(c, dto.NewCommentResponses(rows))
}

// POST /api/parent-posts/:id/comments
func (ctl *CommentController) Create(c *fiber.Ctx) error {
	postID, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(constants.MsgRequiredFields)
	}

	db := ctl.DB.WithContext(c.UserContext())
	var exists int64
	if err := db.Model(&model.ParentPostModel{}).Where("id = ?", postID).Count(&exists).Error; err != nil {
		return helper.UnexpectedError(c, "Comment.Create", err)
	}
	if exists == 0 {
		return helper.NotFoundError(constants.NotFound(constants.NounParentPost))
	}

	hash, err := helperAuth.HashPassword(req.Password)
	if err != nil {
		return helper.UnexpectedError(c, "Comment.Create", err)
	}
	m := req.ToModel(postID, hash)
	if err := db.Create(&m).Error; err != nil {
		return helper.UnexpectedError(c, "Comment.Create", err)
	}
	return helper.JsonCreated(c, constants.Created(constants.NounComment), m.ID)
}

// findComment scopes the comment to its post so /1/comments/9 cannot touch post 2's comment.
func (ctl *CommentController) findComment(c *fiber.Ctx, db *gorm.DB, postID, commentID uint) (*model.CommentModel, error) {
	var m model.CommentModel
	if err := db.Where("id = ? AND post_id = ?", commentID, postID).First(&m).Error; err != nil {
		return nil, helper.DBError(c, "Comment.Find", err, constants.NotFound(constants.NounComment))
	}
	return &m, nil
}

// PUT /api/parent-posts/:id/comments/:commentId
func (ctl *CommentController) Update(c *fiber.Ctx) error {
	postID, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	commentID, err := helper.ParseID(c, "commentId")
	if err != nil {
		return err
	}
	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(constants.MsgRequiredFields)
	}

	db := ctl.DB.WithContext(c.UserContext())
	m, err := ctl.findComment(c, db, postID, commentID)
	if err != nil {
		return err
	}
	notFound := constants.NotFound(constants.NounComment)
	if err := helperAuth.AuthorizeRowWrite(c, db, helperAuth.TableComments, m.ID, req.Password, notFound); err != nil {
		return err
	}

	if req.Author != nil {
		m.Author = *req.Author
	}
	if req.Content != nil {
		m.Content = *req.Content
	}
	if m.Content == "" {
		return helper.ValidationError(constants.MsgRequiredFields)
	}
	if err := db.Save(m).Error; err != nil {
		return helper.UnexpectedError(c, "Comment.Update", err)
	}
	return helper.JsonMessage(c, constants.Updated(constants.NounComment))
}

// DELETE /api/parent-posts/:id/comments/:commentId  body {password} or ?password=
func (ctl *CommentController) Delete(c *fiber.Ctx) error {
	postID, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	commentID, err := helper.ParseID(c, "commentId")
	if err != nil {
		return err
	}
	var req dto.PasswordRequest
	_ = c.BodyParser(&req)
	return ctl.delete(c, postID, commentID, helperAuth.PasswordFrom(c, req.Password))
}

// DELETE /api/parent-posts/:id/comments  body {commentId, password}
func (ctl *CommentController) DeleteByBody(c *fiber.Ctx) error {
	postID, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.DeleteCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	if req.CommentID == 0 {
		return helper.ValidationError(constants.MsgInvalidID)
	}
	return ctl.delete(c, postID, req.CommentID, helperAuth.PasswordFrom(c, req.Password))
}

func (ctl *CommentController) delete(c *fiber.Ctx, postID, commentID uint, password string) error {
	db := ctl.DB.WithContext(c.UserContext())
	m, err := ctl.findComment(c, db, postID, commentID)
	if err != nil {
		return err
	}
	notFound := constants.NotFound(constants.NounComment)
	if err := helperAuth.AuthorizeRowWrite(c, db, helperAuth.TableComments, m.ID, password, notFound); err != nil {
		return err
	}
	res := db.Delete(&model.CommentModel{}, m.ID)
	if res.Error != nil {
		return helper.UnexpectedError(c, "Comment.Delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.NotFoundError(notFound)
	}
	return helper.JsonMessage(c, constants.Deleted(constants.NounComment))
}
