package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel is provisioned by the seeder / create-admin command and only read at runtime.
type AdminModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AdminModel) TableName() string { return "admins" }

// AdminSessionModel is one login. The id is the `jti` of the cookie token, so a
// session can be revoked on its own.
type AdminSessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AdminID   uint      `gorm:"not null;index" json:"admin_id"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	UserAgent string    `gorm:"type:varchar(255)" json:"user_agent"`
	IP        string    `gorm:"column:ip;type:varchar(64)" json:"ip"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AdminSessionModel) TableName() string { return "admin_sessions" }
