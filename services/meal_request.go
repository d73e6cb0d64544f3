package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/RamonPessoaDev/meal-tracker/models"
)

// ValidationError marks a client-caused rejection of a meal payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalidf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// CalorieValue coerces the transport representation of a calorie count
// (JSON number or numeric string) into a float64, rejecting anything
// that is not a finite number.
type CalorieValue float64

func (v *CalorieValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return invalidf("Calories must be a number")
		}
		s = strings.TrimSpace(str)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return invalidf("Calories must be a number")
	}
	*v = CalorieValue(f)
	return nil
}

// Datetime layouts accepted from clients. HTML datetime-local inputs
// send the offset-less forms, which are taken as UTC.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// MealRequest is the raw, untyped payload of a create or update call.
// Calories is a pointer so that an absent field is distinguishable
// from an explicit zero.
type MealRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Calories    *CalorieValue `json:"calories"`
	Datetime    string        `json:"datetime"`
	Type        string        `json:"type"`
}

// ValidatedMeal is the well-typed candidate produced by Validate.
type ValidatedMeal struct {
	Name        string
	Description string
	Calories    float64
	Datetime    time.Time
	Type        models.MealType
}

// Validate checks required fields and coercions. Pure: no side
// effects, storage is never touched on rejection.
func (r MealRequest) Validate() (*ValidatedMeal, error) {
	if strings.TrimSpace(r.Name) == "" || r.Calories == nil || r.Datetime == "" || r.Type == "" {
		return nil, invalidf("Missing required fields")
	}
	if *r.Calories < 0 {
		return nil, invalidf("Calories must be a positive number")
	}
	dt, err := parseDatetime(r.Datetime)
	if err != nil {
		return nil, invalidf("Invalid datetime")
	}
	mealType := models.MealType(r.Type)
	if !mealType.Valid() {
		return nil, invalidf("Invalid meal type")
	}
	return &ValidatedMeal{
		Name:        r.Name,
		Description: r.Description,
		Calories:    float64(*r.Calories),
		Datetime:    dt,
		Type:        mealType,
	}, nil
}

func parseDatetime(s string) (time.Time, error) {
	var err error
	for _, layout := range datetimeLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
