package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NzJoaco/food-tracker/middlewares"
	"github.com/NzJoaco/food-tracker/services"
)

type SummaryController struct {
	summaries *services.SummaryService
}

func NewSummaryController(summaries *services.SummaryService) *SummaryController {
	return &SummaryController{summaries: summaries}
}

// MealSummary aggregates the macros of one meal.
func (ctl *SummaryController) MealSummary(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)
	mealID, ok := idParam(c, "id")
	if !ok {
		return
	}

	summary, err := ctl.summaries.MealSummary(userID, mealID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DailySummaries emits one aggregated row per calendar day that has
// meals, newest day first.
func (ctl *SummaryController) DailySummaries(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	summaries, err := ctl.summaries.DailySummaries(userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// List emits one aggregated row per meal, newest first.
func (ctl *SummaryController) List(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	rows, err := ctl.summaries.MealSummaries(userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListByDate filters the per-meal rows to one YYYY-MM-DD day.
func (ctl *SummaryController) ListByDate(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	day, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	rows, err := ctl.summaries.MealSummariesOn(userID, day)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
