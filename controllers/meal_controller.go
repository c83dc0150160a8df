package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NzJoaco/food-tracker/middlewares"
	"github.com/NzJoaco/food-tracker/services"
	"github.com/NzJoaco/food-tracker/utils"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

type MealInput struct {
	Date string `json:"date" binding:"required"`
}

// parseMealDate accepts an ISO-8601 date-time. Parse failures join the
// same per-field details list as binding failures.
func parseMealDate(c *gin.Context, raw string) (time.Time, bool) {
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request payload",
			"details": []utils.FieldError{
				{Field: "date", Message: "must be an ISO-8601 date-time"},
			},
		})
		return time.Time{}, false
	}
	return date, true
}

func (ctl *MealController) Create(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}
	date, ok := parseMealDate(c, input.Date)
	if !ok {
		return
	}

	meal, err := ctl.meals.Create(userID, date)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (ctl *MealController) List(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	meals, err := ctl.meals.List(userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (ctl *MealController) Get(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)
	mealID, ok := idParam(c, "id")
	if !ok {
		return
	}

	meal, err := ctl.meals.Get(userID, mealID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (ctl *MealController) Update(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)
	mealID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}
	date, ok := parseMealDate(c, input.Date)
	if !ok {
		return
	}

	meal, err := ctl.meals.Update(userID, mealID, date)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (ctl *MealController) Delete(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)
	mealID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.meals.Delete(userID, mealID); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
