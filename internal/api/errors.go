package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/mealplanner/backend/internal/goals"
	"github.com/pageza/mealplanner/backend/internal/middleware"
	"github.com/pageza/mealplanner/backend/internal/schedule"
	"github.com/pageza/mealplanner/backend/internal/service"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, schedule.ErrSlotTaken):
		return http.StatusConflict
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, goals.ErrGoalNotFound),
		errors.Is(err, service.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, schedule.ErrInvalidMeal),
		errors.Is(err, goals.ErrInvalidGoal),
		errors.Is(err, service.ErrRecipeServings):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrExportUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, log *logrus.Logger, err error) {
	status := statusFor(err)
	_ = c.Error(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		c.JSON(status, middleware.ErrorResponse{Error: "Internal Server Error"})
		return
	}
	c.JSON(status, middleware.ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: msg})
}

// currentUser returns the authenticated caller or answers 401
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, middleware.ErrorResponse{Error: "unauthorized"})
	}
	return userID, ok
}

func pathID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid "+what+" id")
		return uuid.Nil, false
	}
	return id, true
}

// weekParam reads ?week=YYYY-MM-DD, defaulting to the current week's Sunday
func weekParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("week")
	if raw == "" {
		return schedule.WeekStart(time.Now()), true
	}
	week, err := service.ParseDate(raw)
	if err != nil {
		badRequest(c, err.Error())
		return time.Time{}, false
	}
	return week, true
}
