package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mealRoutes "academy_backend/internals/features/learn/meal_plans/route"
	storyRoutes "academy_backend/internals/features/story/success_stories/route"
)

// /api/meal-plans, /api/success-stories
func LearnRoutes(api fiber.Router, db *gorm.DB) {
	mealRoutes.MealPlanRoutes(api, db)
	storyRoutes.SuccessStoryRoutes(api, db)
}
