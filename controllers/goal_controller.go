// controllers/goal_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NzJoaco/food-tracker/middlewares"
	"github.com/NzJoaco/food-tracker/services"
)

type GoalController struct {
	goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{goals: goals}
}

func (ctl *GoalController) Get(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	goal, err := ctl.goals.Get(userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

type GoalInput struct {
	Calories *int `json:"calories" binding:"required,gt=0"`
	Protein  *int `json:"protein" binding:"required,gt=0"`
	Carbs    *int `json:"carbs" binding:"required,gt=0"`
	Fat      *int `json:"fat" binding:"required,gt=0"`
}

// Upsert creates the goal or replaces the targets of the existing one;
// either way exactly one row per user remains.
func (ctl *GoalController) Upsert(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	goal, err := ctl.goals.Upsert(userID, *input.Calories, *input.Protein, *input.Carbs, *input.Fat)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

type GoalUpdateInput struct {
	Calories *int `json:"calories" binding:"omitempty,gt=0"`
	Protein  *int `json:"protein" binding:"omitempty,gt=0"`
	Carbs    *int `json:"carbs" binding:"omitempty,gt=0"`
	Fat      *int `json:"fat" binding:"omitempty,gt=0"`
}

func (ctl *GoalController) Update(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var input GoalUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	goal, err := ctl.goals.Update(userID, services.GoalUpdate{
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (ctl *GoalController) Delete(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	if err := ctl.goals.Delete(userID); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
