package helperAuth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/constants"
	helper "academy_backend/internals/helpers"
)

// AuthorizeRowWrite lets admins through and otherwise requires the row password.
// Unknown row → 404 (checked first), missing password → 400, mismatch → 403.
func AuthorizeRowWrite(c *fiber.Ctx, db *gorm.DB, table string, id uint, password, notFound string) error {
	if IsAdmin(c) {
		return nil
	}

	ok, err := VerifyRowPassword(c.UserContext(), db, table, id, password)
	if errors.Is(err, ErrRowNotFound) {
		return helper.NotFoundError(notFound)
	}
	if err != nil {
		return helper.UnexpectedError(c, "RowGuard."+table, err)
	}
	if strings.TrimSpace(password) == "" {
		return helper.ValidationError(constants.MsgPasswordRequired)
	}
	if !ok {
		return helper.WrongPassword()
	}
	return nil
}

// PasswordFrom picks the password from the JSON body first, then ?password=.
func PasswordFrom(c *fiber.Ctx, body string) string {
	if body != "" {
		return body
	}
	return c.Query("password")
}
