// Package goals tracks nutrition and hydration goals and the points earned
// by completing them.
package goals

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/mealplanner/backend/internal/models"
)

var (
	// ErrGoalNotFound is returned when progress is reported for an unknown goal
	ErrGoalNotFound = errors.New("goal not found")
	// ErrInvalidGoal is returned when a draft is missing required values
	ErrInvalidGoal = errors.New("invalid goal")
)

// DefaultPoints is what completing a goal is worth when no points are given
var DefaultPoints = map[models.GoalDuration]int{
	models.DurationDaily:     10,
	models.DurationWeekly:    50,
	models.DurationMonthly:   200,
	models.DurationQuarterly: 500,
}

// Draft holds the user supplied fields of a new goal
type Draft struct {
	Category    models.GoalCategory
	Title       string
	Description string
	Target      float64
	Unit        string
	Duration    models.GoalDuration
	StartDate   time.Time
	Points      int
}

// EndDate returns the end of a goal starting at start for duration d
func EndDate(start time.Time, d models.GoalDuration) time.Time {
	switch d {
	case models.DurationDaily:
		return start.AddDate(0, 0, 1)
	case models.DurationWeekly:
		return start.AddDate(0, 0, 7)
	case models.DurationMonthly:
		return start.AddDate(0, 1, 0)
	case models.DurationQuarterly:
		return start.AddDate(0, 3, 0)
	}
	return start
}

// Ledger is one user's goals
type Ledger struct {
	userID uuid.UUID
	goals  []models.Goal
}

// NewLedger wraps goals already stored for userID
func NewLedger(userID uuid.UUID, goals []models.Goal) *Ledger {
	cp := make([]models.Goal, len(goals))
	copy(cp, goals)
	return &Ledger{userID: userID, goals: cp}
}

// Goals returns every goal in creation order
func (l *Ledger) Goals() []models.Goal {
	return l.goals
}

// Create adds an in-progress goal built from d
func (l *Ledger) Create(d Draft) (*models.Goal, error) {
	title := strings.TrimSpace(d.Title)
	points, known := DefaultPoints[d.Duration]
	if title == "" || d.Target <= 0 || !known {
		return nil, ErrInvalidGoal
	}
	if d.Category != models.GoalNutrition && d.Category != models.GoalHydration {
		return nil, ErrInvalidGoal
	}
	if d.Points > 0 {
		points = d.Points
	}

	y, m, day := d.StartDate.Date()
	start := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)

	g := models.Goal{
		ID:          uuid.New(),
		UserID:      l.userID,
		Category:    d.Category,
		Title:       title,
		Description: d.Description,
		Target:      d.Target,
		Unit:        d.Unit,
		Duration:    d.Duration,
		StartDate:   start,
		EndDate:     EndDate(start, d.Duration),
		Status:      models.GoalInProgress,
		Points:      points,
	}
	l.goals = append(l.goals, g)
	return &l.goals[len(l.goals)-1], nil
}

// ReportProgress records value as the goal's current progress. The goal
// completes once value reaches the target and stays completed afterwards.
// completed is true only for the report that completed it.
func (l *Ledger) ReportProgress(id uuid.UUID, value float64) (goal *models.Goal, completed bool, err error) {
	for i := range l.goals {
		g := &l.goals[i]
		if g.ID != id {
			continue
		}
		g.CurrentProgress = value
		if g.Status != models.GoalCompleted && value >= g.Target {
			g.Status = models.GoalCompleted
			completed = true
		}
		return g, completed, nil
	}
	return nil, false, ErrGoalNotFound
}

// Delete removes the goal with id and reports whether it existed
func (l *Ledger) Delete(id uuid.UUID) bool {
	for i := range l.goals {
		if l.goals[i].ID == id {
			l.goals = append(l.goals[:i], l.goals[i+1:]...)
			return true
		}
	}
	return false
}

// TotalPoints sums the points of completed goals
func (l *Ledger) TotalPoints() int {
	total := 0
	for _, g := range l.goals {
		if g.Status == models.GoalCompleted {
			total += g.Points
		}
	}
	return total
}
