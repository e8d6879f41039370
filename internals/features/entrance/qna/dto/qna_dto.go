package dto

import (
	"time"

	"academy_backend/internals/features/entrance/qna/model"
	helper "academy_backend/internals/helpers"
)

type CreateQnaRequest struct {
	Title    string  `json:"title" validate:"required,max=255"`
	Content  string  `json:"content" validate:"required"`
	Author   *string `json:"author" validate:"omitempty,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Password string  `json:"password" validate:"required,max=72"`
}

func (r *CreateQnaRequest) Normalize() {
	r.Title = helper.Clean(r.Title)
	r.Content = helper.Clean(r.Content)
	r.Author = helper.CleanPtr(r.Author)
	r.Phone = helper.CleanPtr(r.Phone)
}

func (r CreateQnaRequest) ToModel(passwordHash string) model.QnaPostModel {
	m := model.QnaPostModel{
		Title:        r.Title,
		Content:      r.Content,
		Author:       "익명",
		PasswordHash: passwordHash,
	}
	if r.Author != nil {
		m.Author = *r.Author
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
	return m
}

// UpdateQnaRequest serves both callers: admins may send answer_content, visitors
// edit title/content/author with their password.
type UpdateQnaRequest struct {
	Title         *string `json:"title" validate:"omitempty,max=255"`
	Content       *string `json:"content"`
	Author        *string `json:"author" validate:"omitempty,max=100"`
	AnswerContent *string `json:"answer_content"`
	Password      string  `json:"password"`
}

func (r *UpdateQnaRequest) Normalize() {
	r.Title = helper.CleanSet(r.Title)
	r.Content = helper.CleanSet(r.Content)
	r.Author = helper.CleanPtr(r.Author)
	r.AnswerContent = helper.CleanSet(r.AnswerContent)
}

// ApplyToModel copies the visitor-editable fields; is_answered is never touched here.
func (r UpdateQnaRequest) ApplyToModel(m *model.QnaPostModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Content != nil {
		m.Content = *r.Content
	}
	if r.Author != nil {
		m.Author = *r.Author
	}
}

// Answer moves the post to Answered. There is no way back.
func Answer(m *model.QnaPostModel, content string, at time.Time) {
	m.AnswerContent = &content
	m.IsAnswered = true
	m.AnsweredAt = &at
}

type DeleteQnaRequest struct {
	Password string `json:"password"`
}

type QnaResponse struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Author        string     `json:"author"`
	Phone         string     `json:"phone,omitempty"`
	IsAnswered    bool       `json:"is_answered"`
	AnswerContent *string    `json:"answer_content"`
	AnsweredAt    *time.Time `json:"answered_at"`
	Views         int64      `json:"views"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewQnaResponse drops the phone number unless the caller is an admin.
func NewQnaResponse(m model.QnaPostModel, isAdmin bool) QnaResponse {
	resp := QnaResponse{
		ID:            m.ID,
		Title:         m.Title,
		Content:       m.Content,
		Author:        m.Author,
		IsAnswered:    m.IsAnswered,
		AnswerContent: m.AnswerContent,
		AnsweredAt:    m.AnsweredAt,
		Views:         m.Views,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if isAdmin {
		resp.Phone = m.Phone
	}
	return resp
}

func NewQnaResponses(rows []model.QnaPostModel, isAdmin bool) []QnaResponse {
	out := make([]QnaResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, NewQnaResponse(r, isAdmin))
	}
	return out
}
