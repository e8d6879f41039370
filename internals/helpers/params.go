package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/constants"
)

// ParseID reads a positive integer path param; anything else is a 400.
func ParseID(c *fiber.Ctx, name string) (uint, error) {
	return ParseUint(c.Params(name))
}

func ParseUint(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, ValidationError(constants.MsgInvalidID)
	}
	return uint(n), nil
}

// IncrementViews bumps views in one statement; updated_at is left alone.
func IncrementViews(tx *gorm.DB, model any, id uint) error {
	return tx.Model(model).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
