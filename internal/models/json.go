package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a string slice stored as a JSON(B) column
type StringList []string

// Value implements the driver.Valuer interface
func (a StringList) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringList) Scan(value interface{}) error {
	*a = StringList{}
	return scanJSON(value, a)
}

// IngredientList holds a recipe's ordered ingredients as a JSON(B) column
type IngredientList []RecipeIngredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	*l = IngredientList{}
	return scanJSON(value, l)
}

// PreferenceList holds a profile's nutritional preferences as a JSON(B) column
type PreferenceList []NutritionalPreference

// Value implements the driver.Valuer interface
func (l PreferenceList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *PreferenceList) Scan(value interface{}) error {
	*l = PreferenceList{}
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON column type %T", value)
	}
	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, dest)
}
