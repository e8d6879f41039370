package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy_backend/internals/constants"
	"academy_backend/internals/features/learn/meal_plans/dto"
	"academy_backend/internals/features/learn/meal_plans/model"
	"academy_backend/internals/features/learn/meal_plans/service"
	helper "academy_backend/internals/helpers"
	"academy_backend/internals/helpers/weekgrid"
)

type MealPlanController struct {
	DB *gorm.DB
}

func NewMealPlanController(db *gorm.DB) *MealPlanController {
	return &MealPlanController{DB: db}
}

// GET /api/meal-plans?date=YYYY-MM-DD | ?week_start=YYYY-MM-DD (default: this week)
func (ctl *MealPlanController) Week(c *fiber.Ctx) error {
	raw := c.Query("week_start")
	if raw == "" {
		raw = c.Query("date")
	}

	day := weekgrid.Today()
	if raw != "" {
		d, err := weekgrid.ParseDate(raw, weekgrid.Location())
		if err != nil {
			return helper.ValidationError(constants.MsgInvalidDate)
		}
		day = d
	}

	week, err := service.LoadWeek(c.UserContext(), ctl.DB, day)
	if err != nil {
		return helper.UnexpectedError(c, "MealPlan.Week", err)
	}
	return helper.JsonOK(c, dto.NewWeekResponse(week.Monday, week.Sunday, week.Rows))
}

// POST /api/meal-plans (admin) single row or weekly batch
func (ctl *MealPlanController) Save(c *fiber.Ctx) error {
	var req dto.SaveMealPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ValidationError(constants.MsgInvalidBody)
	}
	if req.IsBatch() {
		return ctl.saveWeek(c, req)
	}

	req.MealDate = helper.Clean(req.MealDate)
	req.MenuItems = helper.Clean(req.MenuItems)
	req.Allergens = helper.CleanPtr(req.Allergens)
	if req.MealDate == "" || req.MealType == "" || req.MenuItems == "" {
		return helper.ValidationError(constants.MsgMealRequired)
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(constants.MsgRequiredFields)
	}
	date, err := weekgrid.ParseDate(req.MealDate, weekgrid.Location())
	if err != nil {
		return helper.ValidationError(constants.MsgInvalidDate)
	}
	mealType, ok := service.NormalizeMealType(helper.Clean(req.MealType))
	if !ok {
		return helper.ValidationError(constants.MsgInvalidMealType)
	}

	m := model.MealPlanModel{
		MealDate:  service.DBDate(date),
		MealType:  mealType,
		MenuItems: req.MenuItems,
		Calories:  req.Calories,
		Allergens: req.Allergens,
	}
	if err := service.Upsert(c.UserContext(), ctl.DB, &m); err != nil {
		return helper.UnexpectedError(c, "MealPlan.Save", err)
	}
	return helper.JsonCreated(c, constants.Created(constants.NounMealPlan), m.ID)
}

func (ctl *MealPlanController) saveWeek(c *fiber.Ctx, req dto.SaveMealPlanRequest) error {
	start, err := weekgrid.ParseDate(req.WeekStart, weekgrid.Location())
	if err != nil {
		return helper.ValidationError(constants.MsgInvalidDate)
	}
	monday := weekgrid.MondayOf(start)

	// validate everything before the first write
	meals := make([]service.WeekMeal, 0, len(req.Meals))
	for _, in := range req.Meals {
		menu := helper.Clean(in.Menu)
		if menu == "" {
			continue
		}
		if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
			return helper.ValidationError(constants.MsgInvalidDate)
		}
		mealType, ok := service.NormalizeMealType(helper.Clean(in.MealType))
		if !ok {
			return helper.ValidationError(constants.MsgInvalidMealType)
		}
		meals = append(meals, service.WeekMeal{DayOfWeek: in.DayOfWeek, MealType: mealType, Menu: menu})
	}

	saved, err := service.SaveWeek(c.UserContext(), ctl.DB, monday, meals)
	if err != nil {
		return helper.UnexpectedError(c, "MealPlan.SaveWeek", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   constants.Created(constants.NounMealPlan),
		"weekStart": weekgrid.FormatDate(monday),
		"count":     saved,
	})
}

// DELETE /api/meal-plans/:id (admin)
func (ctl *MealPlanController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.MealPlanModel{}, id)
	if res.Error != nil {
		return helper.UnexpectedError(c, "MealPlan.Delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.NotFoundError(constants.NotFound(constants.NounMealPlan))
	}
	return helper.JsonMessage(c, constants.Deleted(constants.NounMealPlan))
}
