package model

import "time"

// ParentPostModel: papan 학부모 게시판. Visitors own their rows through a password.
type ParentPostModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Author       string    `gorm:"type:varchar(100);not null;default:'익명'" json:"author"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	IsSecret     bool      `gorm:"not null;default:false" json:"is_secret"`
	Views        int64     `gorm:"not null;default:0" json:"views"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Comments []CommentModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ParentPostModel) TableName() string { return "parent_posts" }

type CommentModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PostID       uint      `gorm:"not null;index" json:"post_id"`
	Author       string    `gorm:"type:varchar(100);not null;default:'익명'" json:"author"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CommentModel) TableName() string { return "comments" }
