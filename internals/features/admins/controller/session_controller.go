package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"academy_backend/internals/constants"
	"academy_backend/internals/features/admins/dto"
	"academy_backend/internals/features/admins/service"
	helper "academy_backend/internals/helpers"
	helperAuth "academy_backend/internals/helpers/auth"
)

type SessionController struct {
	Gate *service.SessionGate
}

func NewSessionController(gate *service.SessionGate) *SessionController {
	return &SessionController{Gate: gate}
}

// POST /api/admin/login
func (ctl *SessionController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	req.Username = helper.Clean(req.Username)
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(constants.MsgLoginRequired)
	}
	if !ctl.Gate.Enabled() {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, constants.MsgLoginDisabled)
	}

	admin, err := ctl.Gate.Authenticate(c.UserContext(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		log.Printf("[Admin.Login] ❌ failed login username=%q ip=%s", req.Username, c.IP())
		return fiber.NewError(fiber.StatusUnauthorized, constants.MsgLoginFailed)
	}
	if err != nil {
		return helper.UnexpectedError(c, "Admin.Login", err)
	}

	token, exp, err := ctl.Gate.Issue(c.UserContext(), admin, c.Get(fiber.HeaderUserAgent), c.IP())
	if err != nil {
		return helper.UnexpectedError(c, "Admin.Login", err)
	}
	ctl.Gate.SetCookie(c, token, exp)

	log.Printf("[Admin.Login] ✅ username=%s", admin.Username)
	return helper.JsonOK(c, dto.NewLoginResponse(constants.MsgLoginOK, admin, exp))
}

// POST /api/admin/logout
func (ctl *SessionController) Logout(c *fiber.Ctx) error {
	if err := ctl.Gate.Revoke(c.UserContext(), c.Cookies(service.CookieName)); err != nil {
		return helper.UnexpectedError(c, "Admin.Logout", err)
	}
	ctl.Gate.ClearCookie(c)
	return helper.JsonMessage(c, constants.MsgLogoutOK)
}

// GET /api/admin/check
func (ctl *SessionController) Check(c *fiber.Ctx) error {
	return helper.JsonOK(c, dto.CheckResponse{IsAdmin: helperAuth.IsAdmin(c)})
}
