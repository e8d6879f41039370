package model

import "time"

type SuccessStoryModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StudentName string    `gorm:"type:varchar(100);not null" json:"student_name"`
	University  string    `gorm:"type:varchar(100);not null" json:"university"`
	Department  string    `gorm:"type:varchar(100);not null" json:"department"`
	Year        int       `gorm:"not null;index" json:"year"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	IsVisible   bool      `gorm:"not null;index" json:"is_visible"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SuccessStoryModel) TableName() string { return "success_stories" }
