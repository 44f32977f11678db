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

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateExerciseRequest defines the expected JSON for creating an exercise.
type CreateExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	MuscleGroup string `json:"muscleGroup"` // e.g., "Chest", "Legs"
	Description string `json:"description"`
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscleGroup,omitempty"`
	Description string    `json:"description,omitempty"`
	HasImage    bool      `json:"hasImage"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ImageUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type ImageUploadResponse struct {
	UploadURL   string `json:"uploadUrl"`
	ObjectKey   string `json:"objectKey"`
	ContentType string `json:"contentType"` // must be sent as the Content-Type of the PUT
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:          ex.ID.Hex(),
		Name:        ex.Name,
		MuscleGroup: ex.MuscleGroup,
		Description: ex.Description,
		HasImage:    ex.HasImage(),
		CreatedAt:   ex.CreatedAt,
		UpdatedAt:   ex.UpdatedAt,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateExercise godoc
// @Summary Create a new exercise
// @Description Adds an exercise to the authenticated user's list.
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body CreateExerciseRequest true "Exercise details"
// @Success 201 {object} ExerciseResponse "Exercise created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 409 {object} gin.H "Name already used"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), userID, req.Name, req.MuscleGroup, req.Description)
	if err != nil {
		h.writeError(c, err, "Failed to create exercise.")
		return
	}

	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// ListExercises godoc
// @Summary List the user's exercises
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ExerciseResponse "List of exercises"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// DeleteExercise godoc
// @Summary Delete an exercise
// @Tags Exercises
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 204
// @Failure 403 {object} gin.H "Forbidden"
// @Failure 404 {object} gin.H "Not found"
// @Router /exercises/{id} [delete]
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	exerciseID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	if err := h.exerciseService.DeleteExercise(c.Request.Context(), userID, exerciseID); err != nil {
		h.writeError(c, err, "Failed to delete exercise.")
		return
	}
	c.Status(http.StatusNoContent)
}

// RequestImageUpload godoc
// @Summary Get a presigned URL to upload the exercise image
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Param body body ImageUploadRequest true "Image content type"
// @Success 200 {object} ImageUploadResponse
// @Failure 400 {object} gin.H "Unsupported content type"
// @Failure 503 {object} gin.H "Storage not configured"
// @Router /exercises/{id}/image [post]
func (h *ExerciseHandler) RequestImageUpload(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	exerciseID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var req ImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	upload, err := h.exerciseService.RequestImageUploadURL(c.Request.Context(), userID, exerciseID, req.ContentType)
	if err != nil {
		h.writeError(c, err, "Failed to prepare image upload.")
		return
	}
	c.JSON(http.StatusOK, ImageUploadResponse{
		UploadURL:   upload.UploadURL,
		ObjectKey:   upload.ObjectKey,
		ContentType: upload.ContentType,
	})
}

// GetImageURL godoc
// @Summary Get a presigned URL to download the exercise image
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} gin.H "{\"url\": \"...\"}"
// @Failure 404 {object} gin.H "No image"
// @Router /exercises/{id}/image [get]
func (h *ExerciseHandler) GetImageURL(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	exerciseID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	url, err := h.exerciseService.GetImageDownloadURL(c.Request.Context(), userID, exerciseID)
	if err != nil {
		h.writeError(c, err, "Failed to generate image URL.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *ExerciseHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidationFailed), errors.Is(err, service.ErrUnsupportedContentType):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrExerciseNotFound), errors.Is(err, service.ErrNoImage):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrExerciseAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrExerciseAlreadyExists):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrStorageUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	default:
		log.WithError(err).Error(fallback)
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
