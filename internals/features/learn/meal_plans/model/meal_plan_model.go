package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealTypes in display order.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

// (meal_date, meal_type) is unique; writes upsert on it.
type MealPlanModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	MealDate  datatypes.Date `gorm:"type:date;not null;uniqueIndex:uq_meal_plans_date_type,priority:1" json:"meal_date"`
	MealType  string         `gorm:"type:varchar(20);not null;uniqueIndex:uq_meal_plans_date_type,priority:2" json:"meal_type"`
	MenuItems string         `gorm:"type:text;not null" json:"menu_items"`
	Calories  *int           `json:"calories"`
	Allergens *string        `gorm:"type:text" json:"allergens"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MealPlanModel) TableName() string { return "meal_plans" }
