// Package weekgrid holds the Monday-start week arithmetic behind the meal-plan
// grid. All functions are pure; callers choose the location.
package weekgrid

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Location is the academy's wall clock (Asia/Seoul). Falls back to a fixed
// +09:00 zone when tzdata is missing from the image.
func Location() *time.Location {
	if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*60*60)
}

// Today is midnight of the current day in Location().
func Today() time.Time {
	return StartOfDay(time.Now().In(Location()))
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MondayOf returns midnight of the Monday that starts t's week. Sunday counts
// as day 7, so it maps to the Monday six days earlier.
func MondayOf(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return StartOfDay(t).AddDate(0, 0, -(wd - 1))
}

// WeekRange returns (monday, monday+6 days).
func WeekRange(monday time.Time) (time.Time, time.Time) {
	start := StartOfDay(monday)
	return start, start.AddDate(0, 0, 6)
}

// DayOfWeek is the 0-based column of date in the week starting at monday
// (0 = Monday ... 6 = Sunday), or -1 when date is outside that week.
func DayOfWeek(monday, date time.Time) int {
	start := StartOfDay(monday)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, start.Location())
	for i := 0; i < 7; i++ {
		if start.AddDate(0, 0, i).Equal(d) {
			return i
		}
	}
	return -1
}

// ParseDate parses "2006-01-02" in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MealRow is the flattened view of one stored meal.
type MealRow struct {
	Date     time.Time
	MealType string
	Menu     string
}

// Grid maps "2006-01-02" → meal type → menu.
type Grid map[string]map[string]string

// BucketMeals groups rows by exact (date, meal type). Pairs without a row are
// absent; later rows for the same pair win.
func BucketMeals(rows []MealRow) Grid {
	out := Grid{}
	for _, r := range rows {
		key := FormatDate(r.Date)
		day, ok := out[key]
		if !ok {
			day = map[string]string{}
			out[key] = day
		}
		day[r.MealType] = r.Menu
	}
	return out
}
