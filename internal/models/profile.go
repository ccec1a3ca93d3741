package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DietType is the base diet a profile follows
type DietType string

const (
	DietOmnivore    DietType = "omnivore"
	DietVegetarian  DietType = "vegetarian"
	DietVegan       DietType = "vegan"
	DietPescatarian DietType = "pescatarian"
)

// SkillLevel is how confident a cook the user is
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Nutritional preference ids understood by the ranking
const (
	PreferenceHighProtein = "high-protein"
	PreferenceHighFiber   = "high-fiber"
	PreferenceHighFibre   = "high-fibre"
)

// NutritionalPreference is a soft preference toggle
type NutritionalPreference struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

// HealthProfile holds a user's dietary constraints and soft preferences
type HealthProfile struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                 uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	DietType               DietType       `gorm:"size:20;not null;default:'omnivore'" json:"dietType"`
	Restrictions           StringList     `gorm:"type:jsonb;not null" json:"restrictions"`
	Allergies              StringList     `gorm:"type:jsonb;not null" json:"allergies"`
	CustomRestrictions     StringList     `gorm:"type:jsonb;not null" json:"customRestrictions"`
	NutritionalPreferences PreferenceList `gorm:"type:jsonb;not null" json:"nutritionalPreferences"`
	IsOnGLP1               bool           `gorm:"column:is_on_glp1;not null;default:false" json:"isOnGLP1"`
	SkillLevel             SkillLevel     `gorm:"size:20;not null;default:'beginner'" json:"skillLevel"`
	CookingTimeMax         int            `gorm:"not null;default:0" json:"cookingTimeMax"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
}

// DefaultHealthProfile is the profile a user has before saving one
func DefaultHealthProfile(userID uuid.UUID) *HealthProfile {
	return &HealthProfile{
		UserID:                 userID,
		DietType:               DietOmnivore,
		Restrictions:           StringList{},
		Allergies:              StringList{},
		CustomRestrictions:     StringList{},
		NutritionalPreferences: PreferenceList{},
		SkillLevel:             SkillBeginner,
	}
}

// PreferenceEnabled reports whether any of the given preference ids is on
func (p *HealthProfile) PreferenceEnabled(ids ...string) bool {
	for _, pref := range p.NutritionalPreferences {
		if !pref.Enabled {
			continue
		}
		for _, id := range ids {
			if pref.ID == id {
				return true
			}
		}
	}
	return false
}

// BeforeCreate assigns an id when the caller did not
func (p *HealthProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
