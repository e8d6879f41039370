package dto

import (
	"academy_backend/internals/features/story/success_stories/model"
	helper "academy_backend/internals/helpers"
)

type CreateSuccessStoryRequest struct {
	StudentName string `json:"student_name" validate:"required,max=100"`
	University  string `json:"university" validate:"required,max=100"`
	Department  string `json:"department" validate:"required,max=100"`
	Year        *int   `json:"year" validate:"omitempty,min=1900,max=2999"`
	Content     string `json:"content" validate:"required"`
	IsVisible   *bool  `json:"is_visible"`
}

func (r *CreateSuccessStoryRequest) Normalize() {
	r.StudentName = helper.Clean(r.StudentName)
	r.University = helper.Clean(r.University)
	r.Department = helper.Clean(r.Department)
	r.Content = helper.Clean(r.Content)
}

// ToModel: year defaults to currentYear, visibility to true.
func (r CreateSuccessStoryRequest) ToModel(currentYear int) model.SuccessStoryModel {
	m := model.SuccessStoryModel{
		StudentName: r.StudentName,
		University:  r.University,
		Department:  r.Department,
		Year:        currentYear,
		Content:     r.Content,
		IsVisible:   true,
	}
	if r.Year != nil {
		m.Year = *r.Year
	}
	if r.IsVisible != nil {
		m.IsVisible = *r.IsVisible
	}
	return m
}

type UpdateSuccessStoryRequest struct {
	StudentName *string `json:"student_name" validate:"omitempty,max=100"`
	University  *string `json:"university" validate:"omitempty,max=100"`
	Department  *string `json:"department" validate:"omitempty,max=100"`
	Year        *int    `json:"year" validate:"omitempty,min=1900,max=2999"`
	Content     *string `json:"content"`
	IsVisible   *bool   `json:"is_visible"`
}

func (r *UpdateSuccessStoryRequest) Normalize() {
	r.StudentName = helper.CleanSet(r.StudentName)
	r.University = helper.CleanSet(r.University)
	r.Department = helper.CleanSet(r.Department)
	r.Content = helper.CleanSet(r.Content)
}

func (r UpdateSuccessStoryRequest) ApplyToModel(m *model.SuccessStoryModel) {
	if r.StudentName != nil {
		m.StudentName = *r.StudentName
	}
	if r.University != nil {
		m.University = *r.University
	}
	if r.Department != nil {
		m.Department = *r.Department
	}
	if r.Year != nil {
		m.Year = *r.Year
	}
	if r.Content != nil {
		m.Content = *r.Content
	}
	if r.IsVisible != nil {
		m.IsVisible = *r.IsVisible
	}
}
