package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/mealplanner/backend/internal/models"
	"github.com/pageza/mealplanner/backend/internal/schedule"
	"github.com/pageza/mealplanner/backend/internal/types"
)

// ErrInvalidDate is returned for dates not in YYYY-MM-DD form
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// MealPlanService persists each user's schedule
type MealPlanService struct {
	db  *gorm.DB
	log *logrus.Logger
}

var _ IMealPlanService = (*MealPlanService)(nil)

// NewMealPlanService creates a new MealPlanService instance
func NewMealPlanService(db *gorm.DB, log *logrus.Logger) *MealPlanService {
	return &MealPlanService{db: db, log: log}
}

// ParseDate reads a YYYY-MM-DD date or returns ErrInvalidDate
func ParseDate(s string) (time.Time, error) {
	d, err := schedule.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

func (s *MealPlanService) itemsBetween(tx *gorm.DB, userID uuid.UUID, start, end time.Time) ([]models.MealPlanItem, error) {
	var items []models.MealPlanItem
	if err := tx.Preload("Recipe").
		Where("user_id = ? AND date >= ? AND date < ?", userID, schedule.Date(start), schedule.Date(end)).
		Order("date ASC").Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load meal plan: %w", err)
	}
	// drivers may hand back the stored UTC midnight in the local zone
	for i := range items {
		items[i].Date = items[i].Date.UTC()
	}
	return items, nil
}

// scheduleFor loads the user's meals on the given days
func (s *MealPlanService) scheduleFor(tx *gorm.DB, userID uuid.UUID, days ...time.Time) (*schedule.Schedule, error) {
	var all []models.MealPlanItem
	for _, d := range days {
		items, err := s.itemsBetween(tx, userID, d, schedule.Date(d).AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	return schedule.New(userID, all), nil
}

// ItemsBetween returns planned meals dated in [start, end) with their recipes
func (s *MealPlanService) ItemsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.MealPlanItem, error) {
	return s.itemsBetween(s.db.WithContext(ctx), userID, start, end)
}

// GetWeek returns seven days of meals beginning at start
func (s *MealPlanService) GetWeek(ctx context.Context, userID uuid.UUID, start time.Time) ([]schedule.DayPlan, error) {
	items, err := s.ItemsBetween(ctx, userID, start, schedule.Date(start).AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}
	return schedule.New(userID, items).Week(start), nil
}

// AddMeal plans a catalog recipe into a free slot
func (s *MealPlanService) AddMeal(ctx context.Context, userID uuid.UUID, req *types.AddMealRequest) (*models.MealPlanItem, error) {
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("invalid recipe id: %w", gorm.ErrRecordNotFound)
	}

	var added *models.MealPlanItem
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", recipeID).Error; err != nil {
			return fmt.Errorf("failed to get recipe %s: %w", recipeID, err)
		}

		sched, err := s.scheduleFor(tx, userID, date)
		if err != nil {
			return err
		}
		item, err := sched.AddMeal(&recipe, date, req.MealType, req.Servings, req.Notes)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(item).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return schedule.ErrSlotTaken
			}
			return fmt.Errorf("failed to save meal: %w", err)
		}
		added = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id":   userID,
		"meal_id":   added.ID,
		"date":      req.Date,
		"meal_type": added.MealType,
	}).Info("meal added")
	return added, nil
}

// MoveMeal re-dates a meal. It returns nil, nil when there was nothing to
// move.
func (s *MealPlanService) MoveMeal(ctx context.Context, userID, mealID uuid.UUID, req *types.MoveMealRequest) (*models.MealPlanItem, error) {
	from, err := ParseDate(req.FromDate)
	if err != nil {
		return nil, err
	}
	to, err := ParseDate(req.ToDate)
	if err != nil {
		return nil, err
	}

	var moved *models.MealPlanItem
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sched, err := s.scheduleFor(tx, userID, from, to)
		if err != nil {
			return err
		}
		item, err := sched.MoveMeal(from, to, mealID)
		if err != nil || item == nil {
			return err
		}
		if err := tx.Model(&models.MealPlanItem{}).
			Where("id = ? AND user_id = ?", mealID, userID).
			Updates(map[string]interface{}{
				"date":        item.Date,
				"day_of_week": item.DayOfWeek,
			}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return schedule.ErrSlotTaken
			}
			return fmt.Errorf("failed to move meal: %w", err)
		}
		moved = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	if moved != nil {
		s.log.WithFields(logrus.Fields{"user_id": userID, "meal_id": mealID, "to": req.ToDate}).Info("meal moved")
	}
	return moved, nil
}

// DeleteMeal removes a meal and reports whether it existed
func (s *MealPlanService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.MealPlanItem{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete meal: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
