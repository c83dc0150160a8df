package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NzJoaco/food-tracker/middlewares"
	"github.com/NzJoaco/food-tracker/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ctl *UserController) GetMe(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	user, err := ctl.users.Get(userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type UpdateProfileInput struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
}

func (ctl *UserController) UpdateMe(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	user, err := ctl.users.Update(userID, services.ProfileUpdate{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) DeleteMe(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	if err := ctl.users.Delete(userID); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
