package dto

import (
	"time"

	"academy_backend/internals/features/community/parent_posts/model"
	helper "academy_backend/internals/helpers"
)

/* =========================================================
   Posts
========================================================= */

type CreateParentPostRequest struct {
	Title    string  `json:"title" validate:"required,max=255"`
	Content  string  `json:"content" validate:"required"`
	Author   *string `json:"author" validate:"omitempty,max=100"`
	Password string  `json:"password" validate:"required,max=72"`
	IsSecret bool    `json:"is_secret"`
}

func (r *CreateParentPostRequest) Normalize() {
	r.Title = helper.Clean(r.Title)
	r.Content = helper.Clean(r.Content)
	r.Author = helper.CleanPtr(r.Author)
}

func (r CreateParentPostRequest) ToModel(passwordHash string) model.ParentPostModel {
	author := "익명"
	if r.Author != nil {
		author = *r.Author
	}
	return model.ParentPostModel{
		Title:        r.Title,
		Content:      r.Content,
		Author:       author,
		PasswordHash: passwordHash,
		IsSecret:     r.IsSecret,
	}
}

// UpdateParentPostRequest: password is the row password (ignored for admins).
type UpdateParentPostRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=255"`
	Content  *string `json:"content"`
	Author   *string `json:"author" validate:"omitempty,max=100"`
	IsSecret *bool   `json:"is_secret"`
	Password string  `json:"password"`
}

func (r *UpdateParentPostRequest) Normalize() {
	r.Title = helper.CleanSet(r.Title)
	r.Content = helper.CleanSet(r.Content)
	r.Author = helper.CleanPtr(r.Author)
}

func (r UpdateParentPostRequest) ApplyToModel(m *model.ParentPostModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Content != nil {
		m.Content = *r.Content
	}
	if r.Author != nil {
		m.Author = *r.Author
	}
	if r.IsSecret != nil {
		m.IsSecret = *r.IsSecret
	}
}

type PasswordRequest struct {
	Password string `json:"password"`
}

type ParentPostResponse struct {
	ID        uint              `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Author    string            `json:"author"`
	IsSecret  bool              `json:"is_secret"`
	Views     int64             `json:"views"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Comments  []CommentResponse `json:"comments,omitempty"`
}

func NewParentPostResponse(m model.ParentPostModel) ParentPostResponse {
	return ParentPostResponse{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Author:    m.Author,
		IsSecret:  m.IsSecret,
		Views:     m.Views,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// NewParentPostListItems blanks the body of secret posts unless revealAll.
func NewParentPostListItems(rows []model.ParentPostModel, revealAll bool) []ParentPostResponse {
	out := make([]ParentPostResponse, 0, len(rows))
	for _, r := range rows {
		item := NewParentPostResponse(r)
		if r.IsSecret && !revealAll {
			item.Content = ""
		}
		out = append(out, item)
	}
	return out
}

/* =========================================================
   Comments
========================================================= */

type CreateCommentRequest struct {
	Author   *string `json:"author" validate:"omitempty,max=100"`
	Content  string  `json:"content" validate:"required"`
	Password string  `json:"password" validate:"required,max=72"`
}

func (r *CreateCommentRequest) Normalize() {
	r.Author = helper.CleanPtr(r.Author)
	r.Content = helper.Clean(r.Content)
}

func (r CreateCommentRequest) ToModel(postID uint, passwordHash string) model.CommentModel {
	author := "익명"
	if r.Author != nil {
		author = *r.Author
	}
	return model.CommentModel{
		PostID:       postID,
		Author:       author,
		Content:      r.Content,
		PasswordHash: passwordHash,
	}
}

type UpdateCommentRequest struct {
	Author   *string `json:"author" validate:"omitempty,max=100"`
	Content  *string `json:"content"`
	Password string  `json:"password"`
}

func (r *UpdateCommentRequest) Normalize() {
	r.Author = helper.CleanPtr(r.Author)
	r.Content = helper.CleanSet(r.Content)
}

// DeleteCommentRequest is the older body shape: DELETE /:id/comments {commentId, password}.
type DeleteCommentRequest struct {
	CommentID uint   `json:"commentId"`
	Password  string `json:"password"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"post_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCommentResponses(rows []model.CommentModel) []CommentResponse {
	out := make([]CommentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, CommentResponse{
			ID:        r.ID,
			PostID:    r.PostID,
			Author:    r.Author,
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}
