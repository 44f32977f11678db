package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/eidergdc/treinano-sub001/internal/analytics"
	"github.com/eidergdc/treinano-sub001/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AnalyticsHandler serves the calendar, weekly and progress views.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// ProgressResponse wraps a progress series; Series is absent when HasData is false.
type ProgressResponse struct {
	Exercise string                    `json:"exercise"`
	HasData  bool                      `json:"hasData"`
	Series   *analytics.ProgressSeries `json:"series,omitempty"`
}

// GetWeek godoc
// @Summary Weekly summary
// @Description Summary of the week offset weeks from the current one; negative offsets go back in time.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Week offset, default 0"
// @Success 200 {object} analytics.WeekSummary
// @Failure 400 {object} gin.H "Invalid offset"
// @Router /analytics/week [get]
func (h *AnalyticsHandler) GetWeek(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		return
	}

	week, err := h.analyticsService.Week(c.Request.Context(), userID, offset)
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// GetRecentWeeks godoc
// @Summary Summaries of the most recent weeks, current week first
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param count query int false "Number of weeks, default 4"
// @Success 200 {array} analytics.WeekSummary
// @Router /analytics/weeks [get]
func (h *AnalyticsHandler) GetRecentWeeks(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	count, ok := queryInt(c, "count", 4)
	if !ok {
		return
	}

	weeks, err := h.analyticsService.RecentWeeks(c.Request.Context(), userID, count)
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}
	c.JSON(http.StatusOK, weeks)
}

// GetCalendarMonth godoc
// @Summary Month statistics and trained days
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int true "Month, 1-12"
// @Success 200 {object} service.CalendarMonth
// @Router /analytics/calendar [get]
func (h *AnalyticsHandler) GetCalendarMonth(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'year' must be an integer.")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'month' must be an integer.")
		return
	}

	view, err := h.analyticsService.CalendarMonth(c.Request.Context(), userID, year, time.Month(month))
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetSessionsOnDay godoc
// @Summary Sessions started on a local calendar day
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param date query string true "Day as YYYY-MM-DD"
// @Success 200 {array} domain.WorkoutSession
// @Router /analytics/calendar/day [get]
func (h *AnalyticsHandler) GetSessionsOnDay(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	day, err := time.Parse(time.DateOnly, c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'date' must be YYYY-MM-DD.")
		return
	}

	sessions, err := h.analyticsService.SessionsOnDay(c.Request.Context(), userID, day.Year(), day.Month(), day.Day())
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetProgress godoc
// @Summary Progress chart series of one exercise
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param exercise query string true "Exercise name"
// @Success 200 {object} ProgressResponse
// @Router /analytics/progress [get]
func (h *AnalyticsHandler) GetProgress(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	name := strings.TrimSpace(c.Query("exercise"))

	series, hasData, err := h.analyticsService.Progress(c.Request.Context(), userID, name)
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}

	resp := ProgressResponse{Exercise: name, HasData: hasData}
	if hasData {
		resp.Series = &series
	}
	c.JSON(http.StatusOK, resp)
}

func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Query parameter '"+key+"' must be an integer.")
		return 0, false
	}
	return v, true
}

func writeAnalyticsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		log.WithError(err).Error("analytics request failed")
		abortWithError(c, http.StatusInternalServerError, "Failed to compute analytics.")
	}
}
