package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealplanner/backend/internal/metrics"
	"github.com/pageza/mealplanner/backend/internal/schedule"
	"github.com/pageza/mealplanner/backend/internal/shopping"
	"github.com/pageza/mealplanner/backend/internal/types"
)

var (
	// ErrItemNotFound is returned when toggling a line that is not on the list
	ErrItemNotFound = errors.New("shopping list item not found")
	// ErrExportUnavailable is returned when no export bucket is configured
	ErrExportUnavailable = errors.New("shopping list export is not configured")
)

// SessionStore keeps the per-week shopping state: manual lines and toggles
type SessionStore interface {
	Load(ctx context.Context, userID uuid.UUID, week time.Time) (*shopping.Session, error)
	Save(ctx context.Context, userID uuid.UUID, week time.Time, session *shopping.Session) error
}

// ExportStore receives exported shopping lists
type ExportStore interface {
	Upload(ctx context.Context, key string, body []byte) error
	GeneratePresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
}

// RedisSessionStore keeps sessions as JSON with a sliding 24h expiry
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore creates a Redis backed session store
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: 24 * time.Hour}
}

func (r *RedisSessionStore) key(userID uuid.UUID, week time.Time) string {
	return fmt.Sprintf("shopping_session:%s:%s", userID, schedule.Date(week).Format(schedule.DateLayout))
}

// Load returns the stored session or a fresh one
func (r *RedisSessionStore) Load(ctx context.Context, userID uuid.UUID, week time.Time) (*shopping.Session, error) {
	data, err := r.client.Get(ctx, r.key(userID, week)).Bytes()
	if errors.Is(err, redis.Nil) {
		return shopping.NewSession(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load shopping session: %w", err)
	}
	session := shopping.NewSession()
	if err := json.Unmarshal(data, session); err != nil {
		return nil, fmt.Errorf("failed to decode shopping session: %w", err)
	}
	return session, nil
}

// Save stores the session and refreshes its expiry
func (r *RedisSessionStore) Save(ctx context.Context, userID uuid.UUID, week time.Time, session *shopping.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode shopping session: %w", err)
	}
	if err := r.client.Set(ctx, r.key(userID, week), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save shopping session: %w", err)
	}
	return nil
}

// ShoppingList is the aggregated list for one week
type ShoppingList struct {
	WeekStart string           `json:"weekStart"`
	Groups    []shopping.Group `json:"groups"`
	ItemCount int              `json:"itemCount"`
	Total     float64          `json:"total"`
}

// ExportResult points at an uploaded export
type ExportResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ShoppingService builds shopping lists from the meal plan
type ShoppingService struct {
	plans    IMealPlanService
	sessions SessionStore
	exports  ExportStore
	log      *logrus.Logger
	metrics  *metrics.Metrics
	urlTTL   time.Duration
}

var _ IShoppingService = (*ShoppingService)(nil)

// NewShoppingService creates a ShoppingService. exports may be nil, which
// disables uploads.
func NewShoppingService(plans IMealPlanService, sessions SessionStore, exports ExportStore, log *logrus.Logger, m *metrics.Metrics) *ShoppingService {
	return &ShoppingService{
		plans:    plans,
		sessions: sessions,
		exports:  exports,
		log:      log,
		metrics:  m,
		urlTTL:   time.Hour,
	}
}

func (s *ShoppingService) aggregate(ctx context.Context, userID uuid.UUID, week time.Time, session *shopping.Session) ([]shopping.GroupedIngredient, error) {
	start := schedule.Date(week)
	items, err := s.plans.ItemsBetween(ctx, userID, start, start.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}
	s.metrics.ShoppingAggregation.Inc()
	return session.Apply(shopping.Aggregate(items, session.ManualItems)), nil
}

func (s *ShoppingService) build(ctx context.Context, userID uuid.UUID, week time.Time) ([]shopping.GroupedIngredient, *shopping.Session, error) {
	session, err := s.sessions.Load(ctx, userID, week)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.aggregate(ctx, userID, week, session)
	if err != nil {
		return nil, nil, err
	}
	return items, session, nil
}

func newShoppingList(week time.Time, items []shopping.GroupedIngredient) *ShoppingList {
	return &ShoppingList{
		WeekStart: schedule.Date(week).Format(schedule.DateLayout),
		Groups:    shopping.GroupByCategory(items),
		ItemCount: len(items),
		Total:     shopping.PriceTotal(items),
	}
}

// GetList aggregates the week's planned meals and manual lines
func (s *ShoppingService) GetList(ctx context.Context, userID uuid.UUID, week time.Time) (*ShoppingList, error) {
	items, _, err := s.build(ctx, userID, week)
	if err != nil {
		return nil, err
	}
	return newShoppingList(week, items), nil
}

// AddItem appends a manual line to the week's list
func (s *ShoppingService) AddItem(ctx context.Context, userID uuid.UUID, week time.Time, req *types.ManualItemRequest) (*ShoppingList, error) {
	session, err := s.sessions.Load(ctx, userID, week)
	if err != nil {
		return nil, err
	}
	session.AddManual(shopping.ManualItem{
		Name:        req.Name,
		Amount:      req.Amount,
		Unit:        req.Unit,
		ProductName: req.ProductName,
		Price:       req.Price,
		Promoted:    req.Promoted,
	})
	if err := s.sessions.Save(ctx, userID, week, session); err != nil {
		return nil, err
	}

	items, err := s.aggregate(ctx, userID, week, session)
	if err != nil {
		return nil, err
	}
	return newShoppingList(week, items), nil
}

// SetFlags updates the checked and selected state of one line
func (s *ShoppingService) SetFlags(ctx context.Context, userID uuid.UUID, week time.Time, key shopping.Key, req *types.ItemFlagsRequest) (*ShoppingList, error) {
	items, session, err := s.build(ctx, userID, week)
	if err != nil {
		return nil, err
	}

	var current *shopping.GroupedIngredient
	for i := range items {
		if items[i].Key == key {
			current = &items[i]
			break
		}
	}
	if current == nil {
		return nil, ErrItemNotFound
	}

	flags := shopping.Flags{Checked: current.Checked, Selected: current.Selected}
	if req.Checked != nil {
		flags.Checked = *req.Checked
	}
	if req.Selected != nil {
		flags.Selected = *req.Selected
	}
	session.SetFlags(key, flags)
	if err := s.sessions.Save(ctx, userID, week, session); err != nil {
		return nil, err
	}

	return newShoppingList(week, session.Apply(items)), nil
}

// ExportText renders the list as plain text, optionally only selected lines
func (s *ShoppingService) ExportText(ctx context.Context, userID uuid.UUID, week time.Time, selectedOnly bool) (string, error) {
	items, _, err := s.build(ctx, userID, week)
	if err != nil {
		return "", err
	}
	if selectedOnly {
		items = shopping.Selected(items)
	}
	s.metrics.ShoppingExports.WithLabelValues("text").Inc()
	return shopping.ExportText(items), nil
}

// UploadExport stores the export in the bucket and returns a temporary
// link. Only selected lines are exported when any are selected.
func (s *ShoppingService) UploadExport(ctx context.Context, userID uuid.UUID, week time.Time) (*ExportResult, error) {
	if s.exports == nil {
		return nil, ErrExportUnavailable
	}
	items, _, err := s.build(ctx, userID, week)
	if err != nil {
		return nil, err
	}
	if selected := shopping.Selected(items); len(selected) > 0 {
		items = selected
	}

	now := time.Now().UTC()
	key := fmt.Sprintf("shopping-lists/%s/%s-%d.txt", userID, schedule.Date(week).Format(schedule.DateLayout), now.UnixNano())
	if err := s.exports.Upload(ctx, key, []byte(shopping.ExportText(items))); err != nil {
		return nil, err
	}
	url, err := s.exports.GeneratePresignedURL(ctx, key, s.urlTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign export: %w", err)
	}

	s.metrics.ShoppingExports.WithLabelValues("s3").Inc()
	s.log.WithFields(logrus.Fields{"user_id": userID, "key": key, "items": len(items)}).Info("shopping list exported")
	return &ExportResult{Key: key, URL: url, ExpiresAt: now.Add(s.urlTTL)}, nil
}
