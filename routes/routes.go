package routes

import (
	"github.com/RamonPessoaDev/meal-tracker/config"
	"github.com/RamonPessoaDev/meal-tracker/controllers"
	"github.com/RamonPessoaDev/meal-tracker/middlewares"
	"github.com/RamonPessoaDev/meal-tracker/repositories"
	"github.com/RamonPessoaDev/meal-tracker/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORS(config.AllowedOrigins()))

	repo := repositories.NewMealRepository(config.DB)
	svc := services.NewMealService(repo)
	ctrl := controllers.NewMealController(svc)

	RegisterMealRoutes(r, ctrl)
	return r
}

// RegisterMealRoutes mounts the meal endpoints on r. The static
// /summary route is declared before /:id so both can coexist.
func RegisterMealRoutes(r *gin.Engine, ctrl *controllers.MealController) {
	meals := r.Group("/meals")
	{
		meals.GET("", ctrl.ListMeals)
		meals.POST("", ctrl.CreateMeal)
		meals.GET("/summary", ctrl.GetCaloriesSummary)
		meals.GET("/:id", ctrl.GetMeal)
		meals.PUT("/:id", ctrl.UpdateMeal)
		meals.DELETE("/:id", ctrl.DeleteMeal)
	}
}
