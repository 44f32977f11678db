package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eidergdc/treinano-sub001/internal/domain"
	"github.com/eidergdc/treinano-sub001/internal/repository"
	"github.com/eidergdc/treinano-sub001/internal/storage"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound       = errors.New("exercise not found")
	ErrExerciseAccessDenied   = errors.New("access denied to modify or delete this exercise")
	ErrExerciseAlreadyExists  = errors.New("exercise with this name already exists")
	ErrValidationFailed       = errors.New("validation failed")
	ErrNoImage                = errors.New("exercise has no image")
	ErrUnsupportedContentType = errors.New("unsupported image content type")
	ErrStorageUnavailable     = errors.New("file storage is not configured")
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ImageUpload describes where a client should PUT an exercise image.
type ImageUpload struct {
	UploadURL   string
	ObjectKey   string
	ContentType string
}

// --- Service Interface ---
type ExerciseService interface {
	CreateExercise(ctx context.Context, userID primitive.ObjectID, name, muscleGroup, description string) (*domain.Exercise, error)
	ListExercises(ctx context.Context, userID primitive.ObjectID) ([]domain.Exercise, error)
	DeleteExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) error
	RequestImageUploadURL(ctx context.Context, userID, exerciseID primitive.ObjectID, contentType string) (*ImageUpload, error)
	GetImageDownloadURL(ctx context.Context, userID, exerciseID primitive.ObjectID) (string, error)
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	fileStorage  storage.FileStorage // nil when no bucket is configured
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, fileStorage storage.FileStorage) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		fileStorage:  fileStorage,
	}
}

// CreateExercise adds an exercise to the user's list.
func (s *exerciseService) CreateExercise(ctx context.Context, userID primitive.ObjectID, name, muscleGroup, description string) (*domain.Exercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: exercise name is required", ErrValidationFailed)
	}
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required to create an exercise")
	}

	exercise := &domain.Exercise{
		UserID:      userID,
		Name:        name,
		MuscleGroup: strings.TrimSpace(muscleGroup),
		Description: description,
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrExerciseAlreadyExists
		}
		return nil, err
	}
	exercise.ID = exerciseID
	return exercise, nil
}

// ListExercises returns the user's exercises sorted by name.
func (s *exerciseService) ListExercises(ctx context.Context, userID primitive.ObjectID) ([]domain.Exercise, error) {
	return s.exerciseRepo.ListByUser(ctx, userID)
}

// DeleteExercise removes an exercise and, best effort, its image.
func (s *exerciseService) DeleteExercise(ctx context.Context, userID, exerciseID primitive.ObjectID) error {
	exercise, err := s.getOwned(ctx, userID, exerciseID)
	if err != nil {
		return err
	}

	if err := s.exerciseRepo.Delete(ctx, exerciseID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}

	if exercise.HasImage() && s.fileStorage != nil {
		if err := s.fileStorage.DeleteObject(ctx, exercise.ImageKey); err != nil {
			log.WithError(err).WithField("key", exercise.ImageKey).Warn("orphaned exercise image")
		}
	}
	return nil
}

// RequestImageUploadURL reserves a fresh object key for the exercise image and
// returns a presigned PUT URL for it. A previous image is removed.
func (s *exerciseService) RequestImageUploadURL(ctx context.Context, userID, exerciseID primitive.ObjectID, contentType string) (*ImageUpload, error) {
	if s.fileStorage == nil {
		return nil, ErrStorageUnavailable
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}

	exercise, err := s.getOwned(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}

	objectKey := imageObjectKey(userID, exerciseID)
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, 0)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	if err := s.exerciseRepo.SetImageKey(ctx, exerciseID, userID, objectKey); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	if exercise.HasImage() {
		if err := s.fileStorage.DeleteObject(ctx, exercise.ImageKey); err != nil {
			log.WithError(err).WithField("key", exercise.ImageKey).Warn("failed to delete replaced exercise image")
		}
	}

	return &ImageUpload{
		UploadURL:   uploadURL,
		ObjectKey:   objectKey,
		ContentType: contentType,
	}, nil
}

// GetImageDownloadURL returns a presigned GET URL for the exercise image.
func (s *exerciseService) GetImageDownloadURL(ctx context.Context, userID, exerciseID primitive.ObjectID) (string, error) {
	if s.fileStorage == nil {
		return "", ErrStorageUnavailable
	}
	exercise, err := s.getOwned(ctx, userID, exerciseID)
	if err != nil {
		return "", err
	}
	if !exercise.HasImage() {
		return "", ErrNoImage
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, exercise.ImageKey, 0)
}

func (s *exerciseService) getOwned(ctx context.Context, userID, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if exercise.UserID != userID {
		return nil, ErrExerciseAccessDenied
	}
	return exercise, nil
}

func imageObjectKey(userID, exerciseID primitive.ObjectID) string {
	return fmt.Sprintf("exercises/%s/%s/%s", userID.Hex(), exerciseID.Hex(), uuid.NewString())
}
