package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/constants"
	"academy_backend/internals/features/entrance/consultations/dto"
	"academy_backend/internals/features/entrance/consultations/model"
	"academy_backend/internals/features/entrance/consultations/service"
	helper "academy_backend/internals/helpers"
)

const defaultConsultationLimit = 15

type ConsultationController struct {
	DB       *gorm.DB
	Notifier service.Notifier
}

func NewConsultationController(db *gorm.DB, notifier service.Notifier) *ConsultationController {
	if notifier == nil {
		notifier = service.NoopNotifier{}
	}
	return &ConsultationController{DB: db, Notifier: notifier}
}

// POST /api/consultations (public)
func (ctl *ConsultationController) Create(c *fiber.Ctx) error {
	var req dto.CreateConsultationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		if _, tag := helper.FirstInvalidField(err); tag == "kr_phone" {
			return helper.ValidationError(constants.MsgInvalidPhone)
		}
		return helper.ValidationError(constants.MsgRequiredFields)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.UnexpectedError(c, "Consultation.Create", err)
	}

	// mail is best effort
	if err := ctl.Notifier.NotifyConsultation(c.UserContext(), m); err != nil {
		log.Printf("[Consultation.Notify] ❌ id=%d: %v", m.ID, err)
	}

	return helper.JsonCreated(c, constants.Created(constants.NounConsultation), m.ID)
}

// GET /api/consultations?page=&limit=&status=&search= (admin)
func (ctl *ConsultationController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, defaultConsultationLimit, helper.MaxLimit)
	db := ctl.DB.WithContext(c.UserContext())

	tx := db.Model(&model.ConsultationModel{})
	if st := helper.Clean(c.Query("status")); st != "" {
		tx = tx.Where("status = ?", st)
	}
	tx = helper.ApplySearch(tx, c.Query("search"), "student_name", "parent_name", "phone")

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.UnexpectedError(c, "Consultation.List", err)
	}

	var rows []model.ConsultationModel
	if err := tx.
		Order("created_at DESC").
		Order("id DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.UnexpectedError(c, "Consultation.List", err)
	}

	var pending int64
	if err := db.Model(&model.ConsultationModel{}).
		Where("status = ?", model.StatusPending).
		Count(&pending).Error; err != nil {
		return helper.UnexpectedError(c, "Consultation.List", err)
	}

	return helper.JsonList(c, rows, helper.BuildPagination(total, p), fiber.Map{"pendingCount": pending})
}

// GET /api/consultations/:id (admin)
func (ctl *ConsultationController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var m model.ConsultationModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, id).Error; err != nil {
		return helper.DBError(c, "Consultation.Detail", err, constants.NotFound(constants.NounConsultation))
	}
	return helper.JsonOK(c, m)
}

// PUT /api/consultations/:id  {status} (admin)
func (ctl *ConsultationController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	req.Status = helper.Clean(req.Status)
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidStatus)
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.ConsultationModel{}).
		Where("id = ?", id).
		Update("status", req.Status)
	if res.Error != nil {
		return helper.UnexpectedError(c, "Consultation.UpdateStatus", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.NotFoundError(constants.NotFound(constants.NounConsultation))
	}
	return helper.JsonMessage(c, constants.Updated(constants.NounConsultation))
}

// DELETE /api/consultations/:id (admin)
func (ctl *ConsultationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.ConsultationModel{}, id)
	if res.Error != nil {
		return helper.UnexpectedError(c, "Consultation.Delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.NotFoundError(constants.NotFound(constants.NounConsultation))
	}
	return helper.JsonMessage(c, constants.Deleted(constants.NounConsultation))
}
