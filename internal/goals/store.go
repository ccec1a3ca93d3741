package goals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/mealplanner/backend/internal/models"
)

// Store persists a user's whole goal list
type Store interface {
	Load(ctx context.Context, userID uuid.UUID) ([]models.Goal, error)
	Save(ctx context.Context, userID uuid.UUID, goals []models.Goal) error
}

// GormStore keeps goals in the goals table
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a SQL backed goal store
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load returns the user's goals oldest first
func (s *GormStore) Load(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	return goals, nil
}

// Save replaces the user's stored goals with goals
func (s *GormStore) Save(ctx context.Context, userID uuid.UUID, goals []models.Goal) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		keep := make([]uuid.UUID, 0, len(goals))
		for i := range goals {
			goals[i].UserID = userID
			keep = append(keep, goals[i].ID)
		}

		del := tx.Where("user_id = ?", userID)
		if len(keep) > 0 {
			del = del.Where("id NOT IN ?", keep)
		}
		if err := del.Delete(&models.Goal{}).Error; err != nil {
			return fmt.Errorf("failed to prune goals: %w", err)
		}

		for i := range goals {
			if err := tx.Save(&goals[i]).Error; err != nil {
				return fmt.Errorf("failed to save goal %s: %w", goals[i].ID, err)
			}
		}
		return nil
	})
}

// RedisStore keeps each user's goals as one JSON document
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis backed goal store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "goals:"}
}

func (s *RedisStore) key(userID uuid.UUID) string {
	return s.prefix + userID.String()
}

// Load returns the stored goals, or none if the user has no document yet
func (s *RedisStore) Load(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	data, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []models.Goal{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	var goals []models.Goal
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, fmt.Errorf("failed to decode goals: %w", err)
	}
	return goals, nil
}

// Save overwrites the user's goal document
func (s *RedisStore) Save(ctx context.Context, userID uuid.UUID, goals []models.Goal) error {
	if goals == nil {
		goals = []models.Goal{}
	}
	data, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}
	if err := s.client.Set(ctx, s.key(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	return nil
}
