package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NzJoaco/food-tracker/controllers"
	"github.com/NzJoaco/food-tracker/middlewares"
	"github.com/NzJoaco/food-tracker/services"
)

func SetupRouter(db *gorm.DB, jwtSecret []byte) *gin.Engine {
	r := gin.Default()

	authCtl := controllers.NewAuthController(services.NewAuthService(db, jwtSecret))
	userCtl := controllers.NewUserController(services.NewUserService(db))
	goalCtl := controllers.NewGoalController(services.NewGoalService(db))
	mealCtl := controllers.NewMealController(services.NewMealService(db))
	entryCtl := controllers.NewEntryController(services.NewEntryService(db))
	summaryCtl := controllers.NewSummaryController(services.NewSummaryService(db))

	// Public auth routes
	r.POST("/register", authCtl.Register)
	r.POST("/login", authCtl.Login)

	// Everything below requires a valid token
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		authed.GET("/users/me", userCtl.GetMe)
		authed.PUT("/users/me", userCtl.UpdateMe)
		authed.DELETE("/users/me", userCtl.DeleteMe)

		authed.GET("/goals", goalCtl.Get)
		authed.POST("/goals", goalCtl.Upsert)
		authed.PUT("/goals", goalCtl.Update)
		authed.DELETE("/goals", goalCtl.Delete)

		authed.POST("/meals", mealCtl.Create)
		authed.GET("/meals", mealCtl.List)
		authed.GET("/meals/daily-summary", summaryCtl.DailySummaries)
		authed.GET("/meals/:id", mealCtl.Get)
		authed.PUT("/meals/:id", mealCtl.Update)
		authed.DELETE("/meals/:id", mealCtl.Delete)
		authed.GET("/meals/:id/summary", summaryCtl.MealSummary)

		authed.GET("/meals/:id/entries", entryCtl.List)
		authed.POST("/meals/:id/entries", entryCtl.Create)
		authed.PUT("/meals/:id/entries/:entryId", entryCtl.Update)
		authed.DELETE("/meals/:id/entries/:entryId", entryCtl.Delete)

		authed.GET("/summaries", summaryCtl.List)
		authed.GET("/summaries/:date", summaryCtl.ListByDate)
	}

	return r
}
