package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NzJoaco/food-tracker/middlewares"
	"github.com/NzJoaco/food-tracker/services"
)

type EntryController struct {
	entries *services.EntryService
}

func NewEntryController(entries *services.EntryService) *EntryController {
	return &EntryController{entries: entries}
}

// Macro fields are pointers so a literal 0 still satisfies "required".
type EntryCreateInput struct {
	FoodName string   `json:"foodName" binding:"required,min=1"`
	Calories *float64 `json:"calories" binding:"required,gte=0"`
	Protein  *float64 `json:"protein" binding:"required,gte=0"`
	Carbs    *float64 `json:"carbs" binding:"required,gte=0"`
	Fat      *float64 `json:"fat" binding:"required,gte=0"`
	Quantity *int     `json:"quantity" binding:"omitempty,gt=0"`
}

type EntryUpdateInput struct {
	FoodName *string  `json:"foodName" binding:"omitempty,min=1"`
	Calories *float64 `json:"calories" binding:"omitempty,gte=0"`
	Protein  *float64 `json:"protein" binding:"omitempty,gte=0"`
	Carbs    *float64 `json:"carbs" binding:"omitempty,gte=0"`
	Fat      *float64 `json:"fat" binding:"omitempty,gte=0"`
	Quantity *int     `json:"quantity" binding:"omitempty,gt=0"`
}

func (ctl *EntryController) List(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)
	mealID, ok := idParam(c, "id")
	if !ok {
		return
	}

	entries, err := ctl.entries.List(userID, mealID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (ctl *EntryController) Create(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)
	mealID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input EntryCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	entry, err := ctl.entries.Create(userID, mealID, services.EntryInput{
		FoodName: input.FoodName,
		Calories: *input.Calories,
		Protein:  *input.Protein,
		Carbs:    *input.Carbs,
		Fat:      *input.Fat,
		Quantity: quantity,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (ctl *EntryController) Update(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)
	mealID, ok := idParam(c, "id")
	if !ok {
		return
	}
	entryID, ok := idParam(c, "entryId")
	if !ok {
		return
	}

	var input EntryUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	entry, err := ctl.entries.Update(userID, mealID, entryID, services.EntryUpdate{
		FoodName: input.FoodName,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
		Quantity: input.Quantity,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (ctl *EntryController) Delete(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)
	mealID, ok := idParam(c, "id")
	if !ok {
		return
	}
	entryID, ok := idParam(c, "entryId")
	if !ok {
		return
	}

	if err := ctl.entries.Delete(userID, mealID, entryID); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
