package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/eidergdc/treinano-sub001/internal/domain"
	"github.com/eidergdc/treinano-sub001/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// SessionHandler serves workout session logging.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// --- DTOs ---

type SetRequest struct {
	Weight float64 `json:"weight" binding:"gte=0"`
	Reps   int     `json:"reps" binding:"gte=0"`
}

type ExercisePerformanceRequest struct {
	ExerciseName string       `json:"exerciseName" binding:"required"`
	Sets         []SetRequest `json:"sets" binding:"omitempty,dive"`
}

// LogSessionRequest is the body of POST /sessions.
type LogSessionRequest struct {
	Name            string                       `json:"name"`
	StartTime       time.Time                    `json:"startTime" binding:"required"`
	DurationSeconds int                          `json:"durationSeconds" binding:"gte=0"`
	Category        string                       `json:"category"` // comma separated muscle groups
	Exercises       []ExercisePerformanceRequest `json:"exercises" binding:"omitempty,dive"`
	Notes           string                       `json:"notes"`
}

func (r LogSessionRequest) toInput() service.LogSessionInput {
	exercises := make([]domain.ExercisePerformance, len(r.Exercises))
	for i, ex := range r.Exercises {
		sets := make([]domain.SetRecord, len(ex.Sets))
		for j, s := range ex.Sets {
			sets[j] = domain.SetRecord{Weight: s.Weight, Reps: s.Reps}
		}
		exercises[i] = domain.ExercisePerformance{ExerciseName: ex.ExerciseName, Sets: sets}
	}
	return service.LogSessionInput{
		Name:            r.Name,
		StartTime:       r.StartTime,
		DurationSeconds: r.DurationSeconds,
		Category:        r.Category,
		Exercises:       exercises,
		Notes:           r.Notes,
	}
}

// --- Handler Methods ---

// LogSession godoc
// @Summary Log a completed workout session
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body LogSessionRequest true "Session"
// @Success 201 {object} domain.WorkoutSession
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /sessions [post]
func (h *SessionHandler) LogSession(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req LogSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	session, err := h.sessionService.LogSession(c.Request.Context(), userID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			log.WithError(err).Error("failed to log session")
			abortWithError(c, http.StatusInternalServerError, "Failed to log session.")
		}
		return
	}
	c.JSON(http.StatusCreated, session)
}

// ListSessions godoc
// @Summary List the user's sessions, oldest first
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.WorkoutSession
// @Router /sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	sessions, err := h.sessionService.ListSessions(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("failed to list sessions")
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve sessions.")
		return
	}
	if sessions == nil {
		sessions = []domain.WorkoutSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSession godoc
// @Summary Get one session
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} domain.WorkoutSession
// @Failure 403 {object} gin.H "Forbidden"
// @Failure 404 {object} gin.H "Not found"
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	session, err := h.sessionService.GetSession(c.Request.Context(), userID, sessionID)
	if err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// DeleteSession godoc
// @Summary Delete a session and its exercise history
// @Tags Sessions
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204
// @Failure 403 {object} gin.H "Session belongs to another user"
// @Failure 404 {object} gin.H "Not found"
// @Router /sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.sessionService.DeleteSession(c.Request.Context(), userID, sessionID); err != nil {
		writeSessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSessionAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	default:
		log.WithError(err).Error("session request failed")
		abortWithError(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
