package dto

import (
	"academy_backend/internals/features/entrance/consultations/model"
	helper "academy_backend/internals/helpers"
)

type CreateConsultationRequest struct {
	ParentName  string `json:"parent_name" validate:"max=100"`
	StudentName string `json:"student_name" validate:"required,max=100"`
	Phone       string `json:"phone" validate:"required,kr_phone"`
	ParentPhone string `json:"parent_phone" validate:"omitempty,kr_phone"`
	Grade       string `json:"grade" validate:"required,max=50"`
	Dormitory   string `json:"dormitory" validate:"required,max=50"`
	DesiredDate string `json:"desired_date" validate:"max=20"`
	DesiredTime string `json:"desired_time" validate:"max=20"`
	Message     string `json:"message"`
}

func (r *CreateConsultationRequest) Normalize() {
	r.ParentName = helper.Clean(r.ParentName)
	r.StudentName = helper.Clean(r.StudentName)
	r.Phone = helper.Clean(r.Phone)
	r.ParentPhone = helper.Clean(r.ParentPhone)
	r.Grade = helper.Clean(r.Grade)
	r.Dormitory = helper.Clean(r.Dormitory)
	r.DesiredDate = helper.Clean(r.DesiredDate)
	r.DesiredTime = helper.Clean(r.DesiredTime)
	r.Message = helper.Clean(r.Message)
}

func (r CreateConsultationRequest) ToModel() model.ConsultationModel {
	return model.ConsultationModel{
		ParentName:  r.ParentName,
		StudentName: r.StudentName,
		Phone:       r.Phone,
		ParentPhone: r.ParentPhone,
		Grade:       r.Grade,
		Dormitory:   r.Dormitory,
		DesiredDate: r.DesiredDate,
		DesiredTime: r.DesiredTime,
		Message:     r.Message,
		Status:      model.StatusPending,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=대기 확인 완료"`
}
