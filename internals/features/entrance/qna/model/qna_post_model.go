package model

import "time"

// QnaPostModel moves Unanswered → Answered only through an admin answer.
type QnaPostModel struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Author        string     `gorm:"type:varchar(100);not null;default:'익명'" json:"author"`
	Phone         string     `gorm:"type:varchar(30)" json:"phone"`
	PasswordHash  string     `gorm:"column:password_hash;type:text;not null" json:"-"`
	IsAnswered    bool       `gorm:"not null;default:false;index" json:"is_answered"`
	AnswerContent *string    `gorm:"type:text" json:"answer_content"`
	AnsweredAt    *time.Time `json:"answered_at"`
	Views         int64      `gorm:"not null;default:0" json:"views"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (QnaPostModel) TableName() string { return "qna_posts" }
