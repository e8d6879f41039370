package dto

import (
	"time"

	"academy_backend/internals/features/community/notices/model"
	helper "academy_backend/internals/helpers"
)

/* =========================================================
   Request
========================================================= */

type CreateNoticeRequest struct {
	Title    string  `json:"title" validate:"required,max=255"`
	Content  string  `json:"content" validate:"required"`
	Author   *string `json:"author" validate:"omitempty,max=100"`
	IsPinned bool    `json:"is_pinned"`
}

func (r *CreateNoticeRequest) Normalize() {
	r.Title = helper.Clean(r.Title)
	r.Content = helper.Clean(r.Content)
	r.Author = helper.CleanPtr(r.Author)
}

func (r CreateNoticeRequest) ToModel() model.NoticeModel {
	author := "관리자"
	if r.Author != nil {
		author = *r.Author
	}
	return model.NoticeModel{
		Title:    r.Title,
		Content:  r.Content,
		Author:   author,
		IsPinned: r.IsPinned,
	}
}

// UpdateNoticeRequest: nil fields are left untouched.
type UpdateNoticeRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=255"`
	Content  *string `json:"content"`
	Author   *string `json:"author" validate:"omitempty,max=100"`
	IsPinned *bool   `json:"is_pinned"`
}

func (r *UpdateNoticeRequest) Normalize() {
	r.Title = helper.CleanSet(r.Title)
	r.Content = helper.CleanSet(r.Content)
	r.Author = helper.CleanPtr(r.Author)
}

func (r UpdateNoticeRequest) ApplyToModel(m *model.NoticeModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Content != nil {
		m.Content = *r.Content
	}
	if r.Author != nil {
		m.Author = *r.Author
	}
	if r.IsPinned != nil {
		m.IsPinned = *r.IsPinned
	}
}

/* =========================================================
   Response
========================================================= */

type NoticeResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	Author      string    `json:"author"`
	IsPinned    bool      `json:"is_pinned"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewNoticeResponse(m model.NoticeModel) NoticeResponse {
	return NoticeResponse{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Author:    m.Author,
		IsPinned:  m.IsPinned,
		Views:     m.Views,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewNoticeResponses(rows []model.NoticeModel) []NoticeResponse {
	out := make([]NoticeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, NewNoticeResponse(r))
	}
	return out
}
