package services

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/RamonPessoaDev/meal-tracker/models"
	"github.com/RamonPessoaDev/meal-tracker/repositories"
)

// Compile-time check that MockMealRepository implements MealRepository.
var _ repositories.MealRepository = (*MockMealRepository)(nil)

// MockMealRepository is a function-field mock of the repository
// contract. Unset funcs fall back to an error so a test that hits an
// unexpected call fails loudly.
type MockMealRepository struct {
	CreateFunc  func(ctx context.Context, meal *models.Meal) error
	GetByIDFunc func(ctx context.Context, id string) (*models.Meal, error)
	UpdateFunc  func(ctx context.Context, meal *models.Meal) error
	DeleteFunc  func(ctx context.Context, id string) error
	FindFunc    func(ctx context.Context, filter repositories.MealFilter) ([]models.Meal, error)

	CreateCallCount int32
	UpdateCallCount int32
	DeleteCallCount int32
}

func (m *MockMealRepository) Create(ctx context.Context, meal *models.Meal) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, meal)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockMealRepository) GetByID(ctx context.Context, id string) (*models.Meal, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockMealRepository) Update(ctx context.Context, meal *models.Meal) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, meal)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockMealRepository) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not implemented in mock")
}

func (m *MockMealRepository) Find(ctx context.Context, filter repositories.MealFilter) ([]models.Meal, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, filter)
	}
	return nil, errors.New("FindFunc not implemented in mock")
}
