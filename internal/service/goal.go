package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplanner/backend/internal/goals"
	"github.com/pageza/mealplanner/backend/internal/metrics"
	"github.com/pageza/mealplanner/backend/internal/models"
	"github.com/pageza/mealplanner/backend/internal/types"
)

// GoalSummary is a user's goals with the points earned so far
type GoalSummary struct {
	Goals       []models.Goal `json:"goals"`
	TotalPoints int           `json:"totalPoints"`
}

// GoalService loads a ledger per request and writes it back after changes
type GoalService struct {
	store   goals.Store
	log     *logrus.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ IGoalService = (*GoalService)(nil)

// NewGoalService creates a GoalService over store
func NewGoalService(store goals.Store, log *logrus.Logger, m *metrics.Metrics) *GoalService {
	return &GoalService{store: store, log: log, metrics: m, now: time.Now}
}

func (s *GoalService) ledger(ctx context.Context, userID uuid.UUID) (*goals.Ledger, error) {
	stored, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return goals.NewLedger(userID, stored), nil
}

func summarize(l *goals.Ledger) *GoalSummary {
	list := l.Goals()
	if list == nil {
		list = []models.Goal{}
	}
	return &GoalSummary{Goals: list, TotalPoints: l.TotalPoints()}
}

// ListGoals returns every goal and the total points
func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID) (*GoalSummary, error) {
	l, err := s.ledger(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(l), nil
}

// CreateGoal adds a goal starting today unless a start date is given
func (s *GoalService) CreateGoal(ctx context.Context, userID uuid.UUID, req *types.CreateGoalRequest) (*models.Goal, error) {
	start := s.now()
	if req.StartDate != "" {
		d, err := ParseDate(req.StartDate)
		if err != nil {
			return nil, err
		}
		start = d
	}

	l, err := s.ledger(ctx, userID)
	if err != nil {
		return nil, err
	}
	g, err := l.Create(goals.Draft{
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Target:      req.Target,
		Unit:        req.Unit,
		Duration:    req.Duration,
		StartDate:   start,
		Points:      req.Points,
	})
	if err != nil {
		return nil, err
	}
	created := *g
	if err := s.store.Save(ctx, userID, l.Goals()); err != nil {
		return nil, err
	}
	return &created, nil
}

// ReportProgress records progress and completes the goal at its target
func (s *GoalService) ReportProgress(ctx context.Context, userID, goalID uuid.UUID, value float64) (*models.Goal, error) {
	l, err := s.ledger(ctx, userID)
	if err != nil {
		return nil, err
	}
	g, completed, err := l.ReportProgress(goalID, value)
	if err != nil {
		return nil, err
	}
	updated := *g
	if err := s.store.Save(ctx, userID, l.Goals()); err != nil {
		return nil, err
	}

	if completed {
		s.metrics.GoalCompletions.WithLabelValues(string(updated.Category)).Inc()
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"goal_id": goalID,
			"points":  updated.Points,
		}).Info("goal completed")
	}
	return &updated, nil
}

// DeleteGoal removes a goal and reports whether it existed
func (s *GoalService) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) (bool, error) {
	l, err := s.ledger(ctx, userID)
	if err != nil {
		return false, err
	}
	if !l.Delete(goalID) {
		return false, nil
	}
	if err := s.store.Save(ctx, userID, l.Goals()); err != nil {
		return false, err
	}
	return true, nil
}
