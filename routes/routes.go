package routes

import (
	"flexfit-backend/controllers"
	"flexfit-backend/middlewares"

	"github.com/gin-gonic/gin"
)

// Deps are the wired controllers; cmd/main.go owns construction.
type Deps struct {
	Auth     *controllers.AuthController
	User     *controllers.UserController
	Food     *controllers.FoodController
	Meal     *controllers.MealController
	Progress *controllers.ProgressController
	Plan     *controllers.PlanController
	Feedback *controllers.FeedbackController
	Realtime *controllers.RealtimeController
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", d.Auth.Login)
		auth.POST("/forgot-password", d.Auth.ForgotPassword)
		auth.POST("/reset-password", d.Auth.ResetPassword)
	}

	// Public plan templates
	plans := r.Group("/plans")
	{
		plans.GET("", d.Plan.ListGoals)
		plans.GET("/:goal", d.Plan.GetPlan)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", d.User.GetProfile)
		api.PUT("/user/profile", d.User.UpdateProfile)

		api.GET("/food/search", d.Food.Search)
		api.POST("/food/lookup", d.Food.Lookup)
		api.POST("/food/custom", d.Food.CreateCustom)

		api.POST("/meals", d.Meal.LogMeal)
		api.GET("/meals", d.Meal.ListMeals)
		api.GET("/meals/:id", d.Meal.GetMeal)
		api.PUT("/meals/:id", d.Meal.UpdateMeal)
		api.DELETE("/meals/:id", d.Meal.DeleteMeal)

		api.GET("/progress/:period", d.Progress.GetSummary)

		api.POST("/feedback", d.Feedback.Create)
		api.GET("/feedback", d.Feedback.List)

		api.GET("/ws", d.Realtime.DashboardWS)
	}

	return r
}
