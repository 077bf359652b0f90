package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/campaign-generator-backend/internal/database/repository"
	"github.com/sirupsen/logrus"
)

// respondRepoError answers a repository failure in the {error} shape of the CRUD routes
func respondRepoError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, repository.ErrUnknownTable):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrForeignKey), errors.Is(err, repository.ErrUnknownColumn), errors.Is(err, repository.ErrInvalidValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("Database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func bindUpdates(c *gin.Context) (map[string]interface{}, bool) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return nil, false
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return nil, false
	}
	return updates, true
}
