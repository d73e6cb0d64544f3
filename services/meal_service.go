package services

import (
	"context"
	"time"

	"github.com/RamonPessoaDev/meal-tracker/models"
	"github.com/RamonPessoaDev/meal-tracker/repositories"
)

type MealService struct {
	repo repositories.MealRepository
}

func NewMealService(repo repositories.MealRepository) *MealService {
	return &MealService{repo: repo}
}

// MealFilters are the optional list/summary constraints as they arrive
// from the query string.
type MealFilters struct {
	Type *models.MealType
	Day  *time.Time
}

func (f MealFilters) repoFilter() repositories.MealFilter {
	return repositories.MealFilter{Type: f.Type, Day: f.Day}
}

// ListMeals returns matching meals ordered by datetime descending.
// An empty result is a valid outcome, not an error.
func (s *MealService) ListMeals(ctx context.Context, filters MealFilters) ([]models.Meal, error) {
	return s.repo.Find(ctx, filters.repoFilter())
}

// AddMeal validates the payload and persists a new record. The server
// assigns id and audit timestamps.
func (s *MealService) AddMeal(ctx context.Context, req MealRequest) (*models.Meal, error) {
	v, err := req.Validate()
	if err != nil {
		return nil, err
	}
	meal := &models.Meal{
		Name:        v.Name,
		Description: v.Description,
		Calories:    v.Calories,
		Datetime:    v.Datetime,
		Type:        v.Type,
	}
	if err := s.repo.Create(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) GetMeal(ctx context.Context, id string) (*models.Meal, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateMeal replaces every editable field wholesale; callers must
// resend all fields, not just changed ones. UpdatedAt is refreshed by
// the persistence layer.
func (s *MealService) UpdateMeal(ctx context.Context, id string, req MealRequest) (*models.Meal, error) {
	v, err := req.Validate()
	if err != nil {
		return nil, err
	}
	meal := &models.Meal{
		ID:          id,
		Name:        v.Name,
		Description: v.Description,
		Calories:    v.Calories,
		Datetime:    v.Datetime,
		Type:        v.Type,
	}
	if err := s.repo.Update(ctx, meal); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *MealService) DeleteMeal(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// CaloriesSummary totals the calories of every meal matching the
// filters. With no day filter it covers all records.
type CaloriesSummary struct {
	Date          string  `json:"date,omitempty"`
	TotalCalories float64 `json:"totalCalories"`
	MealCount     int     `json:"mealCount"`
}

func (s *MealService) SummarizeCalories(ctx context.Context, filters MealFilters) (*CaloriesSummary, error) {
	meals, err := s.repo.Find(ctx, filters.repoFilter())
	if err != nil {
		return nil, err
	}
	out := &CaloriesSummary{MealCount: len(meals)}
	if filters.Day != nil {
		out.Date = filters.Day.UTC().Format("2006-01-02")
	}
	for _, m := range meals {
		out.TotalCalories += m.Calories
	}
	return out, nil
}
