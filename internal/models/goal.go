package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoalCategory groups goals for display
type GoalCategory string

const (
	GoalNutrition GoalCategory = "nutrition"
	GoalHydration GoalCategory = "hydration"
)

// GoalDuration is the period a goal runs for
type GoalDuration string

const (
	DurationDaily     GoalDuration = "daily"
	DurationWeekly    GoalDuration = "weekly"
	DurationMonthly   GoalDuration = "monthly"
	DurationQuarterly GoalDuration = "quarterly"
)

// GoalStatus only ever moves from in_progress to completed
type GoalStatus string

const (
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
)

// Goal is a user-defined nutrition or hydration target
type Goal struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	Category        GoalCategory `gorm:"size:20;not null" json:"category"`
	Title           string       `gorm:"size:200;not null" json:"title"`
	Description     string       `gorm:"type:text" json:"description"`
	Target          float64      `gorm:"not null" json:"target"`
	Unit            string       `gorm:"size:30" json:"unit"`
	Duration        GoalDuration `gorm:"size:20;not null" json:"duration"`
	StartDate       time.Time    `gorm:"not null" json:"startDate"`
	EndDate         time.Time    `gorm:"not null" json:"endDate"`
	CurrentProgress float64      `gorm:"not null;default:0" json:"currentProgress"`
	Status          GoalStatus   `gorm:"size:20;not null;default:'in_progress'" json:"status"`
	Points          int          `gorm:"not null;default:0" json:"points"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// BeforeCreate assigns an id when the caller did not
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
