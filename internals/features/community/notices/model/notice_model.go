package model

import "time"

type NoticeModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"type:varchar(100);not null;default:'관리자'" json:"author"`
	IsPinned  bool      `gorm:"not null;default:false;index" json:"is_pinned"`
	Views     int64     `gorm:"not null;default:0" json:"views"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (NoticeModel) TableName() string { return "notices" }
