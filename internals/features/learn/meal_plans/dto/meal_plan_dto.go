package dto

import (
	"time"

	"academy_backend/internals/features/learn/meal_plans/model"
	"academy_backend/internals/helpers/weekgrid"
)

/* =========================================================
   Request
========================================================= */

// SaveMealPlanRequest carries either one row (meal_date...) or a whole week
// (week_start + meals) from the weekly editor.
type SaveMealPlanRequest struct {
	MealDate  string  `json:"meal_date"`
	MealType  string  `json:"meal_type"`
	MenuItems string  `json:"menu_items"`
	Calories  *int    `json:"calories" validate:"omitempty,min=0"`
	Allergens *string `json:"allergens"`

	WeekStart string      `json:"week_start"`
	Meals     []BatchMeal `json:"meals"`
}

type BatchMeal struct {
	DayOfWeek int    `json:"day_of_week"`
	MealType  string `json:"meal_type"`
	Menu      string `json:"menu"`
}

func (r SaveMealPlanRequest) IsBatch() bool {
	return r.WeekStart != "" || r.Meals != nil
}

/* =========================================================
   Response
========================================================= */

type MealPlanResponse struct {
	ID        uint      `json:"id"`
	MealDate  string    `json:"meal_date"`
	MealType  string    `json:"meal_type"`
	MenuItems string    `json:"menu_items"`
	Calories  *int      `json:"calories"`
	Allergens *string   `json:"allergens"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewMealPlanResponse(m model.MealPlanModel) MealPlanResponse {
	return MealPlanResponse{
		ID:        m.ID,
		MealDate:  weekgrid.FormatDate(time.Time(m.MealDate)),
		MealType:  m.MealType,
		MenuItems: m.MenuItems,
		Calories:  m.Calories,
		Allergens: m.Allergens,
		UpdatedAt: m.UpdatedAt,
	}
}

type WeekMealResponse struct {
	ID        uint   `json:"id"`
	DayOfWeek int    `json:"day_of_week"`
	MealType  string `json:"meal_type"`
	Menu      string `json:"menu"`
}

type WeekResponse struct {
	WeekStart string                        `json:"weekStart"`
	WeekEnd   string                        `json:"weekEnd"`
	MealPlans map[string][]MealPlanResponse `json:"mealPlans"`
	Grid      weekgrid.Grid                 `json:"grid"`
	Meals     []WeekMealResponse            `json:"meals"`
}

// NewWeekResponse: mealPlans has a (possibly empty) slot for each of the 7
// days, grid only has the pairs that exist.
func NewWeekResponse(monday, sunday time.Time, rows []model.MealPlanModel) WeekResponse {
	resp := WeekResponse{
		WeekStart: weekgrid.FormatDate(monday),
		WeekEnd:   weekgrid.FormatDate(sunday),
		MealPlans: make(map[string][]MealPlanResponse, 7),
		Meals:     make([]WeekMealResponse, 0, len(rows)),
	}
	for i := 0; i < 7; i++ {
		resp.MealPlans[weekgrid.FormatDate(monday.AddDate(0, 0, i))] = []MealPlanResponse{}
	}

	mondayUTC := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
	flat := make([]weekgrid.MealRow, 0, len(rows))
	for _, r := range rows {
		d := time.Time(r.MealDate)
		key := weekgrid.FormatDate(d)
		resp.MealPlans[key] = append(resp.MealPlans[key], NewMealPlanResponse(r))
		flat = append(flat, weekgrid.MealRow{Date: d, MealType: r.MealType, Menu: r.MenuItems})
		resp.Meals = append(resp.Meals, WeekMealResponse{
			ID:        r.ID,
			DayOfWeek: weekgrid.DayOfWeek(mondayUTC, d.UTC()),
			MealType:  r.MealType,
			Menu:      r.MenuItems,
		})
	}
	resp.Grid = weekgrid.BucketMeals(flat)
	return resp
}
