package model

import "time"

const (
	StatusPending   = "대기"
	StatusConfirmed = "확인"
	StatusDone      = "완료"
)

type ConsultationModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ParentName  string    `gorm:"type:varchar(100)" json:"parent_name"`
	StudentName string    `gorm:"type:varchar(100);not null" json:"student_name"`
	Phone       string    `gorm:"type:varchar(30);not null" json:"phone"`
	ParentPhone string    `gorm:"type:varchar(30)" json:"parent_phone"`
	Grade       string    `gorm:"type:varchar(50);not null" json:"grade"`
	Dormitory   string    `gorm:"type:varchar(50);not null" json:"dormitory"`
	DesiredDate string    `gorm:"type:varchar(20)" json:"desired_date"`
	DesiredTime string    `gorm:"type:varchar(20)" json:"desired_time"`
	Message     string    `gorm:"type:text" json:"message"`
	Status      string    `gorm:"type:varchar(10);not null;default:'대기';index" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ConsultationModel) TableName() string { return "consultations" }
