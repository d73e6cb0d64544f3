package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealType is the closed set of meal categories.
type MealType string

const (
	MealTypeBreakfast      MealType = "BREAKFAST"
	MealTypeLunch          MealType = "LUNCH"
	MealTypeAfternoonSnack MealType = "AFTERNOON_SNACK"
	MealTypeDinner         MealType = "DINNER"
)

// MealTypes lists every valid meal type, in day order.
var MealTypes = []MealType{
	MealTypeBreakfast,
	MealTypeLunch,
	MealTypeAfternoonSnack,
	MealTypeDinner,
}

func (t MealType) Valid() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeAfternoonSnack, MealTypeDinner:
		return true
	}
	return false
}

// One recorded food intake event. Datetime is when the meal was eaten,
// not when the record was written.
type Meal struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Calories    float64   `json:"calories" gorm:"not null"`
	Datetime    time.Time `json:"datetime" gorm:"not null;index"`
	Type        MealType  `json:"type" gorm:"type:varchar(32);not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
