package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/RamonPessoaDev/meal-tracker/models"
	"github.com/RamonPessoaDev/meal-tracker/repositories"
	"github.com/RamonPessoaDev/meal-tracker/services"
	"github.com/RamonPessoaDev/meal-tracker/utils"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

// GET /meals?type=LUNCH&date=2024-03-10
func (h *MealController) ListMeals(c *gin.Context) {
	filters, ok := parseFilters(c)
	if !ok {
		return
	}
	meals, err := h.Svc.ListMeals(c.Request.Context(), filters)
	if err != nil {
		log.Printf("Error fetching meals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meals"})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// POST /meals
func (h *MealController) CreateMeal(c *gin.Context) {
	var req services.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}
	meal, err := h.Svc.AddMeal(c.Request.Context(), req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		log.Printf("Error creating meal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// GET /meals/:id
func (h *MealController) GetMeal(c *gin.Context) {
	meal, err := h.Svc.GetMeal(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		log.Printf("Error fetching meal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

// PUT /meals/:id — full replacement, all fields required.
func (h *MealController) UpdateMeal(c *gin.Context) {
	var req services.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}
	meal, err := h.Svc.UpdateMeal(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		case errors.Is(err, repositories.ErrMealNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		default:
			log.Printf("Error updating meal: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal"})
		}
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DELETE /meals/:id
func (h *MealController) DeleteMeal(c *gin.Context) {
	if err := h.Svc.DeleteMeal(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		log.Printf("Error deleting meal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /meals/summary?date=2024-03-10&type=BREAKFAST
func (h *MealController) GetCaloriesSummary(c *gin.Context) {
	filters, ok := parseFilters(c)
	if !ok {
		return
	}
	summary, err := h.Svc.SummarizeCalories(c.Request.Context(), filters)
	if err != nil {
		log.Printf("Error summarizing calories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize calories"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// --- helpers ---

func parseFilters(c *gin.Context) (services.MealFilters, bool) {
	var filters services.MealFilters
	if v := c.Query("type"); v != "" {
		mealType := models.MealType(v)
		if !mealType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal type"})
			return filters, false
		}
		filters.Type = &mealType
	}
	if v := c.Query("date"); v != "" {
		day, err := utils.ParseDay(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return filters, false
		}
		filters.Day = &day
	}
	return filters, true
}

// bindErrorMessage keeps validation wording for coercion failures that
// surface during JSON decoding and hides decoder internals otherwise.
func bindErrorMessage(err error) string {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return "Invalid request body"
}
