package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/RamonPessoaDev/meal-tracker/models"
	"github.com/RamonPessoaDev/meal-tracker/utils"

	"gorm.io/gorm"
)

// ErrMealNotFound is returned when the referenced id has no row.
var ErrMealNotFound = errors.New("meal not found")

// MealFilter narrows a Find. Nil fields impose no constraint; set
// fields compose with AND.
type MealFilter struct {
	Type *models.MealType // exact match
	Day  *time.Time       // any instant within the target UTC day
}

// MealRepository defines the persistence operations the API layer
// needs. Each call is a single-row (or single-query) unit of work.
type MealRepository interface {
	Create(ctx context.Context, meal *models.Meal) error
	GetByID(ctx context.Context, id string) (*models.Meal, error)
	Update(ctx context.Context, meal *models.Meal) error
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, filter MealFilter) ([]models.Meal, error)
}

type gormMealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &gormMealRepository{db: db}
}

func (r *gormMealRepository) Create(ctx context.Context, meal *models.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *gormMealRepository) GetByID(ctx context.Context, id string) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.WithContext(ctx).First(&meal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (r *gormMealRepository) Update(ctx context.Context, meal *models.Meal) error {
	res := r.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("id = ?", meal.ID).
		Updates(map[string]interface{}{
			"name":        meal.Name,
			"description": meal.Description,
			"calories":    meal.Calories,
			"datetime":    meal.Datetime,
			"type":        meal.Type,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

func (r *gormMealRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Meal{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

func (r *gormMealRepository) Find(ctx context.Context, filter MealFilter) ([]models.Meal, error) {
	q := r.db.WithContext(ctx).Order("datetime DESC")
	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	if filter.Day != nil {
		start, end := utils.DayWindow(*filter.Day)
		q = q.Where("datetime >= ? AND datetime <= ?", start, end)
	}
	meals := []models.Meal{}
	err := q.Find(&meals).Error
	return meals, err
}
