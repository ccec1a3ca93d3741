// Package schedule places recipes into day and meal-type slots.
package schedule

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/mealplanner/backend/internal/models"
)

// DateLayout is the wire format for plan dates
const DateLayout = "2006-01-02"

var (
	// ErrSlotTaken is returned when a day already has a meal of that type
	ErrSlotTaken = errors.New("meal slot already taken")
	// ErrInvalidMeal is returned for unknown meal types or non-positive servings
	ErrInvalidMeal = errors.New("invalid meal")
)

// Date truncates t to midnight UTC of its calendar day
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate reads a YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// DayOfWeek returns 0 for Sunday through 6 for Saturday
func DayOfWeek(date time.Time) int {
	return int(date.Weekday())
}

// WeekStart returns the Sunday on or before date
func WeekStart(date time.Time) time.Time {
	d := Date(date)
	return d.AddDate(0, 0, -DayOfWeek(d))
}

// Schedule is one user's planned meals
type Schedule struct {
	userID uuid.UUID
	items  []models.MealPlanItem
}

// New wraps the items already planned for userID
func New(userID uuid.UUID, items []models.MealPlanItem) *Schedule {
	cp := make([]models.MealPlanItem, len(items))
	copy(cp, items)
	return &Schedule{userID: userID, items: cp}
}

// Items returns every planned meal
func (s *Schedule) Items() []models.MealPlanItem {
	return s.items
}

func (s *Schedule) occupied(date time.Time, mealType models.MealType, except uuid.UUID) bool {
	for _, it := range s.items {
		if it.ID != except && it.MealType == mealType && Date(it.Date).Equal(date) {
			return true
		}
	}
	return false
}

func (s *Schedule) index(id uuid.UUID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// AddMeal plans recipe for the given day and slot
func (s *Schedule) AddMeal(recipe *models.Recipe, date time.Time, mealType models.MealType, servings int, notes string) (*models.MealPlanItem, error) {
	if !mealType.Valid() || servings <= 0 {
		return nil, ErrInvalidMeal
	}
	day := Date(date)
	if s.occupied(day, mealType, uuid.Nil) {
		return nil, ErrSlotTaken
	}

	item := models.MealPlanItem{
		ID:        uuid.New(),
		UserID:    s.userID,
		RecipeID:  recipe.ID,
		Recipe:    *recipe,
		Date:      day,
		DayOfWeek: DayOfWeek(day),
		MealType:  mealType,
		Servings:  servings,
		Notes:     notes,
	}
	s.items = append(s.items, item)
	return &s.items[len(s.items)-1], nil
}

// MoveMeal re-dates the meal with id from fromDate to toDate, keeping its
// slot. It returns nil without error when there is nothing to move: the days
// are the same or the meal is not on fromDate.
func (s *Schedule) MoveMeal(fromDate, toDate time.Time, id uuid.UUID) (*models.MealPlanItem, error) {
	from, to := Date(fromDate), Date(toDate)
	if from.Equal(to) {
		return nil, nil
	}
	i := s.index(id)
	if i < 0 || !Date(s.items[i].Date).Equal(from) {
		return nil, nil
	}
	if s.occupied(to, s.items[i].MealType, id) {
		return nil, ErrSlotTaken
	}

	s.items[i].Date = to
	s.items[i].DayOfWeek = DayOfWeek(to)
	return &s.items[i], nil
}

// DeleteMeal removes the meal with id and reports whether it was present
func (s *Schedule) DeleteMeal(id uuid.UUID) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// Day returns the meals on date ordered breakfast, lunch, dinner
func (s *Schedule) Day(date time.Time) []models.MealPlanItem {
	day := Date(date)
	out := []models.MealPlanItem{}
	for _, it := range s.items {
		if Date(it.Date).Equal(day) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MealType.Order() < out[j].MealType.Order()
	})
	return out
}

// DayPlan is one day of a week view
type DayPlan struct {
	Date      string                `json:"date"`
	DayOfWeek int                   `json:"dayOfWeek"`
	Meals     []models.MealPlanItem `json:"meals"`
}

// Week returns seven consecutive days starting at start
func (s *Schedule) Week(start time.Time) []DayPlan {
	first := Date(start)
	week := make([]DayPlan, 7)
	for i := range week {
		d := first.AddDate(0, 0, i)
		week[i] = DayPlan{
			Date:      d.Format(DateLayout),
			DayOfWeek: DayOfWeek(d),
			Meals:     s.Day(d),
		}
	}
	return week
}

// Between returns the meals dated in [start, end)
func (s *Schedule) Between(start, end time.Time) []models.MealPlanItem {
	lo, hi := Date(start), Date(end)
	var out []models.MealPlanItem
	for _, it := range s.items {
		d := Date(it.Date)
		if !d.Before(lo) && d.Before(hi) {
			out = append(out, it)
		}
	}
	return out
}
