package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows a comma separated origin list. Credentials stay on so
// the admin cookie travels with fetch(..., {credentials: "include"}).
func CorsMiddleware(origins string) fiber.Handler {
	if strings.TrimSpace(origins) == "" {
		origins = strings.Join([]string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		}, ", ")
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Request-ID",
		AllowCredentials: true,
	})
}
