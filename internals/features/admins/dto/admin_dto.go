package dto

import (
	"time"

	"academy_backend/internals/features/admins/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message   string    `json:"message"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// RecentConsultation is the slim row shown on the dashboard.
type RecentConsultation struct {
	ID          uint      `json:"id"`
	StudentName string    `json:"student_name"`
	Grade       string    `json:"grade"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type DashboardResponse struct {
	NoticeCount         int64                `json:"noticeCount"`
	PendingConsultation int64                `json:"pendingConsultations"`
	UnansweredQna       int64                `json:"unansweredQna"`
	SuccessStoryCount   int64                `json:"successStoryCount"`
	RecentConsultations []RecentConsultation `json:"recentConsultations"`
}

// AdminSeed is one entry of the seed JSON / create-admin input.
type AdminSeed struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

func NewLoginResponse(msg string, a *model.AdminModel, exp time.Time) LoginResponse {
	return LoginResponse{Message: msg, Username: a.Username, ExpiresAt: exp}
}
