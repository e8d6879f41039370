package service

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"academy_backend/internals/features/learn/meal_plans/model"
	"academy_backend/internals/helpers/weekgrid"
)

// mealTypeOrder sorts breakfast → lunch → dinner → snack on any SQL dialect.
const mealTypeOrder = "CASE meal_type WHEN 'breakfast' THEN 1 WHEN 'lunch' THEN 2 WHEN 'dinner' THEN 3 WHEN 'snack' THEN 4 ELSE 5 END"

var mealTypeAliases = map[string]string{
	"조식": model.MealBreakfast,
	"아침": model.MealBreakfast,
	"중식": model.MealLunch,
	"점심": model.MealLunch,
	"석식": model.MealDinner,
	"저녁": model.MealDinner,
	"간식": model.MealSnack,
}

// NormalizeMealType maps Korean labels to the stored enum. ok is false for
// anything outside breakfast/lunch/dinner/snack.
func NormalizeMealType(s string) (string, bool) {
	if v, ok := mealTypeAliases[s]; ok {
		return v, true
	}
	for _, t := range model.MealTypes {
		if s == t {
			return s, true
		}
	}
	return "", false
}

// DBDate keeps the calendar day of t and drops its zone, so the stored date
// does not shift with the server TZ.
func DBDate(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// Upsert inserts or overwrites the (meal_date, meal_type) row; m.ID is the
// surviving row either way.
func Upsert(ctx context.Context, db *gorm.DB, m *model.MealPlanModel) error {
	return upsert(db.WithContext(ctx), m, []string{"menu_items", "calories", "allergens", "updated_at"})
}

func upsert(tx *gorm.DB, m *model.MealPlanModel, cols []string) error {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "meal_date"}, {Name: "meal_type"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(m).Error
	if err != nil {
		return err
	}
	if m.ID == 0 {
		var got model.MealPlanModel
		if err := tx.Where("meal_date = ? AND meal_type = ?", m.MealDate, m.MealType).
			First(&got).Error; err != nil {
			return err
		}
		m.ID = got.ID
	}
	return nil
}

// WeekMeal is one cell of the weekly editor (0 = Monday).
type WeekMeal struct {
	DayOfWeek int
	MealType  string
	Menu      string
}

// SaveWeek upserts every cell in one transaction; any failure rolls back the
// whole week. Only the menu is overwritten.
func SaveWeek(ctx context.Context, db *gorm.DB, monday time.Time, meals []WeekMeal) (int, error) {
	saved := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, meal := range meals {
			m := model.MealPlanModel{
				MealDate:  DBDate(monday.AddDate(0, 0, meal.DayOfWeek)),
				MealType:  meal.MealType,
				MenuItems: meal.Menu,
			}
			if err := upsert(tx, &m, []string{"menu_items", "updated_at"}); err != nil {
				return err
			}
			saved++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return saved, nil
}

// Week is every stored meal between monday and monday+6.
type Week struct {
	Monday time.Time
	Sunday time.Time
	Rows   []model.MealPlanModel
}

func LoadWeek(ctx context.Context, db *gorm.DB, anyDay time.Time) (Week, error) {
	monday, sunday := weekgrid.WeekRange(weekgrid.MondayOf(anyDay))

	var rows []model.MealPlanModel
	err := db.WithContext(ctx).
		Where("meal_date >= ? AND meal_date <= ?", DBDate(monday), DBDate(sunday)).
		Order("meal_date ASC").
		Order(mealTypeOrder).
		Find(&rows).Error
	if err != nil {
		return Week{}, err
	}
	return Week{Monday: monday, Sunday: sunday, Rows: rows}, nil
}
