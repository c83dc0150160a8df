package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/NzJoaco/food-tracker/services"
	"github.com/NzJoaco/food-tracker/utils"
)

// abortValidation reports every field violation in one response.
func abortValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid request payload",
		"details": utils.FormatValidationErrors(err),
	})
}

// abortServiceError maps service errors onto the HTTP taxonomy.
// Unexpected failures keep their detail in the server log only.
func abortServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrNoGoal):
		c.JSON(http.StatusNotFound, gin.H{"error": "no goal configured"})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
	default:
		logrus.WithError(err).
			WithFields(logrus.Fields{"method": c.Request.Method, "path": c.FullPath()}).
			Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// idParam parses a numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
