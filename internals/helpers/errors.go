package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/constants"
)

// Error taxonomy. Every kind is a *fiber.Error so handlers can simply return it
// and the app-level ErrorHandler renders {message} with the right status.

func ValidationError(message string) error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

// AdminRequired is the AuthError for a missing/invalid admin session (401).
func AdminRequired() error {
	return fiber.NewError(fiber.StatusUnauthorized, constants.MsgAdminRequired)
}

// WrongPassword is the AuthError for a row password mismatch (403).
func WrongPassword() error {
	return fiber.NewError(fiber.StatusForbidden, constants.MsgPasswordMismatch)
}

func NotFoundError(message string) error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

// UnexpectedError logs the cause with the request id and hides it from the client.
func UnexpectedError(c *fiber.Ctx, where string, err error) error {
	reqID, _ := c.Locals("reqid").(string)
	log.Printf("[%s] id=%s error: %v", where, reqID, err)
	return fiber.NewError(fiber.StatusInternalServerError, constants.MsgServerError)
}

// DBError maps gorm.ErrRecordNotFound to NotFoundError and anything else to
// UnexpectedError.
func DBError(c *fiber.Ctx, where string, err error, notFound string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError(notFound)
	}
	return UnexpectedError(c, where, err)
}

// ErrorHandler is installed as fiber.Config.ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		msg := fe.Message
		if fe.Code >= fiber.StatusInternalServerError {
			msg = constants.MsgServerError
		}
		return JsonError(c, fe.Code, msg)
	}
	reqID, _ := c.Locals("reqid").(string)
	log.Printf("[ERR] id=%s %s %s: %v", reqID, c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, constants.MsgServerError)
}
