package helperAuth

import "github.com/gofiber/fiber/v2"

// LocIsAdmin is set once per request by the admin context middleware.
const LocIsAdmin = "is_admin"

// IsAdmin reads the flag left by the middleware; false when it never ran.
func IsAdmin(c *fiber.Ctx) bool {
	v, _ := c.Locals(LocIsAdmin).(bool)
	return v
}

func SetAdmin(c *fiber.Ctx, ok bool) {
	c.Locals(LocIsAdmin, ok)
}
