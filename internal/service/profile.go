package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/mealplanner/backend/internal/models"
	"github.com/pageza/mealplanner/backend/internal/types"
)

// ProfileService handles health profile operations
type ProfileService struct {
	db  *gorm.DB
	log *logrus.Logger
}

var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB, log *logrus.Logger) *ProfileService {
	return &ProfileService{db: db, log: log}
}

// GetProfile returns the stored profile, or the default one if the user
// has never saved a profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error) {
	return s.load(s.db.WithContext(ctx), userID)
}

func (s *ProfileService) load(tx *gorm.DB, userID uuid.UUID) (*models.HealthProfile, error) {
	var profile models.HealthProfile
	err := tx.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultHealthProfile(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile merges the set fields of req into the profile and records
// one history row per changed field
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.HealthProfile, error) {
	var updated *models.HealthProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := s.load(tx, userID)
		if err != nil {
			return err
		}

		changes := applyProfileUpdate(profile, req)

		if profile.ID == uuid.Nil {
			err = tx.Create(profile).Error
		} else {
			err = tx.Save(profile).Error
		}
		if err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		now := time.Now()
		for _, ch := range changes {
			history := &models.ProfileHistory{
				UserID:    userID,
				Field:     ch.field,
				OldValue:  ch.old,
				NewValue:  ch.new,
				ChangedAt: now,
			}
			if err := tx.Create(history).Error; err != nil {
				return fmt.Errorf("failed to record profile change: %w", err)
			}
		}

		updated = profile
		if len(changes) > 0 {
			s.log.WithFields(logrus.Fields{"user_id": userID, "changes": len(changes)}).Info("health profile updated")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetProfileHistory lists profile changes, newest first
func (s *ProfileService) GetProfileHistory(ctx context.Context, userID uuid.UUID) ([]models.ProfileHistory, error) {
	var history []models.ProfileHistory
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("changed_at DESC").Order("id DESC").
		Find(&history).Error; err != nil {
		return nil, fmt.Errorf("failed to get profile history: %w", err)
	}
	return history, nil
}

type profileChange struct {
	field, old, new string
}

func applyProfileUpdate(p *models.HealthProfile, req *types.UpdateProfileRequest) []profileChange {
	var changes []profileChange
	record := func(field string, old, new interface{}) {
		o, n := encode(old), encode(new)
		if o != n {
			changes = append(changes, profileChange{field: field, old: o, new: n})
		}
	}

	if req.DietType != nil {
		record("dietType", p.DietType, *req.DietType)
		p.DietType = *req.DietType
	}
	if req.Restrictions != nil {
		next := cleanList(*req.Restrictions)
		record("restrictions", p.Restrictions, next)
		p.Restrictions = next
	}
	if req.Allergies != nil {
		next := cleanList(*req.Allergies)
		record("allergies", p.Allergies, next)
		p.Allergies = next
	}
	if req.CustomRestrictions != nil {
		next := cleanList(*req.CustomRestrictions)
		record("customRestrictions", p.CustomRestrictions, next)
		p.CustomRestrictions = next
	}
	if req.NutritionalPreferences != nil {
		next := models.PreferenceList(*req.NutritionalPreferences)
		if next == nil {
			next = models.PreferenceList{}
		}
		record("nutritionalPreferences", p.NutritionalPreferences, next)
		p.NutritionalPreferences = next
	}
	if req.IsOnGLP1 != nil {
		record("isOnGLP1", p.IsOnGLP1, *req.IsOnGLP1)
		p.IsOnGLP1 = *req.IsOnGLP1
	}
	if req.SkillLevel != nil {
		record("skillLevel", p.SkillLevel, *req.SkillLevel)
		p.SkillLevel = *req.SkillLevel
	}
	if req.CookingTimeMax != nil {
		record("cookingTimeMax", p.CookingTimeMax, *req.CookingTimeMax)
		p.CookingTimeMax = *req.CookingTimeMax
	}
	return changes
}

func cleanList(in []string) models.StringList {
	out := models.StringList{}
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func encode(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
