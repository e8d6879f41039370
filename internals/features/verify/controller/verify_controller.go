package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/constants"
	"academy_backend/internals/features/verify/dto"
	helper "academy_backend/internals/helpers"
	helperAuth "academy_backend/internals/helpers/auth"
)

type VerifyController struct {
	DB *gorm.DB
}

func NewVerifyController(db *gorm.DB) *VerifyController {
	return &VerifyController{DB: db}
}

var notFoundByTable = map[string]string{
	helperAuth.TableParentPosts: constants.NotFound(constants.NounParentPost),
	helperAuth.TableQnaPosts:    constants.NotFound(constants.NounQna),
	helperAuth.TableComments:    constants.NotFound(constants.NounComment),
}

// POST /api/verify-password {resourceType, id, password} → {verified}
func (ctl *VerifyController) Verify(c *fiber.Ctx) error {
	var req dto.VerifyPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	if req.RowID() == 0 || req.Type() == "" || req.Password == "" {
		return helper.ValidationError(constants.MsgRequiredFields)
	}
	table, ok := dto.Table(req.Type())
	if !ok {
		return helper.ValidationError(constants.MsgInvalidResource)
	}

	verified, err := helperAuth.VerifyRowPassword(c.UserContext(), ctl.DB, table, req.RowID(), req.Password)
	if errors.Is(err, helperAuth.ErrRowNotFound) {
		return helper.NotFoundError(notFoundByTable[table])
	}
	if err != nil {
		return helper.UnexpectedError(c, "Verify.Password", err)
	}
	return helper.JsonOK(c, dto.VerifyPasswordResponse{Verified: verified})
}
