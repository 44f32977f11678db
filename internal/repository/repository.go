package repository

import (
	"context"

	"github.com/eidergdc/treinano-sub001/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=$GOFILE -destination=../service/repository_mocks_test.go -package=service_test

// Error constants for repository layer
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// SessionRepository stores logged workout sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error)
	// ListByUser returns every session of the user ordered by start time, oldest first.
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSession, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error // Ensure the user owns the session
}

// ExerciseHistoryRepository stores per-exercise history entries.
type ExerciseHistoryRepository interface {
	CreateMany(ctx context.Context, entries []domain.ExerciseHistoryEntry) error
	// ListByExercise returns the user's entries for one exercise in chronological order.
	ListByExercise(ctx context.Context, userID primitive.ObjectID, exerciseName string) ([]domain.ExerciseHistoryEntry, error)
	DeleteBySession(ctx context.Context, sessionID primitive.ObjectID) error
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Exercise, error)
	SetImageKey(ctx context.Context, id, userID primitive.ObjectID, imageKey string) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error // Ensure the user owns the exercise
}
