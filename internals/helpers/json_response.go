package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error responses
=================================*/

// JsonError writes the failure envelope {message}.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

/* ===============================
   Success responses
=================================*/

// JsonOK sends the resource itself (GET detail).
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonMessage: PUT/DELETE → {message}
func JsonMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": message,
	})
}

// JsonCreated: POST → 201 {message, id}
func JsonCreated(c *fiber.Ctx, message string, id any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"id":      id,
	})
}

// JsonList: list envelope {items, total, totalPages, page, limit, pages} plus extras
// such as pendingCount. Extras never overwrite the envelope keys.
func JsonList(c *fiber.Ctx, items any, p Pagination, extras fiber.Map) error {
	body := fiber.Map{}
	for k, v := range extras {
		body[k] = v
	}
	body["items"] = items
	body["total"] = p.Total
	body["totalPages"] = p.TotalPages
	body["page"] = p.Page
	body["limit"] = p.Limit
	body["pages"] = p.Pages
	return c.Status(fiber.StatusOK).JSON(body)
}
