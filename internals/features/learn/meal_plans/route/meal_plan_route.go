package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mealCtl "academy_backend/internals/features/learn/meal_plans/controller"
	authAdmin "academy_backend/internals/middlewares/auth_admin"
)

func MealPlanRoutes(api fiber.Router, db *gorm.DB) {
	ctl := mealCtl.NewMealPlanController(db)
	g := api.Group("/meal-plans")

	g.Get("/", ctl.Week)
	g.Post("/", authAdmin.RequireAdmin(), ctl.Save)
	g.Delete("/:id", authAdmin.RequireAdmin(), ctl.Delete)
}
