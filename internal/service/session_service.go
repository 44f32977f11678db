package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eidergdc/treinano-sub001/internal/domain"
	"github.com/eidergdc/treinano-sub001/internal/metrics"
	"github.com/eidergdc/treinano-sub001/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrSessionNotFound     = errors.New("workout session not found")
	ErrSessionAccessDenied = errors.New("access denied to this workout session")
)

// LogSessionInput carries a completed workout as submitted by the client.
type LogSessionInput struct {
	Name            string
	StartTime       time.Time
	DurationSeconds int
	Category        string
	Exercises       []domain.ExercisePerformance
	Notes           string
}

// --- Service Interface ---
type SessionService interface {
	LogSession(ctx context.Context, userID primitive.ObjectID, input LogSessionInput) (*domain.WorkoutSession, error)
	GetSession(ctx context.Context, userID, sessionID primitive.ObjectID) (*domain.WorkoutSession, error)
	ListSessions(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSession, error)
	DeleteSession(ctx context.Context, userID, sessionID primitive.ObjectID) error
}

// --- Service Implementation ---

type sessionService struct {
	sessionRepo repository.SessionRepository
	historyRepo repository.ExerciseHistoryRepository
	metrics     *metrics.Manager
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	historyRepo repository.ExerciseHistoryRepository,
	metricsManager *metrics.Manager,
) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		historyRepo: historyRepo,
		metrics:     metricsManager,
	}
}

// LogSession stores a completed session and records one history entry per
// exercise that has sets, using its top set.
func (s *sessionService) LogSession(ctx context.Context, userID primitive.ObjectID, input LogSessionInput) (*domain.WorkoutSession, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required to log a session")
	}
	if err := validateSessionInput(&input); err != nil {
		return nil, err
	}

	session := &domain.WorkoutSession{
		UserID:          userID,
		Name:            strings.TrimSpace(input.Name),
		StartTime:       input.StartTime.UTC(),
		DurationSeconds: input.DurationSeconds,
		Category:        strings.TrimSpace(input.Category),
		Exercises:       input.Exercises,
		Notes:           input.Notes,
	}

	sessionID, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	session.ID = sessionID

	entries := historyEntries(session)
	if err := s.historyRepo.CreateMany(ctx, entries); err != nil {
		// Without history the progress charts would disagree with the session list.
		if delErr := s.sessionRepo.Delete(ctx, sessionID, userID); delErr != nil {
			log.WithError(delErr).WithField("sessionId", sessionID.Hex()).Error("failed to roll back session")
		}
		return nil, fmt.Errorf("store exercise history: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CounterSessionsLogged.Inc()
	}
	log.WithFields(log.Fields{
		"userId":    userID.Hex(),
		"sessionId": sessionID.Hex(),
		"exercises": len(session.Exercises),
	}).Debug("session logged")

	return session, nil
}

func validateSessionInput(input *LogSessionInput) error {
	if input.StartTime.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrValidationFailed)
	}
	if input.DurationSeconds < 0 {
		return fmt.Errorf("%w: duration cannot be negative", ErrValidationFailed)
	}
	// normalise a copy; the caller's slice stays untouched
	exercises := make([]domain.ExercisePerformance, len(input.Exercises))
	copy(exercises, input.Exercises)
	input.Exercises = exercises

	for i := range input.Exercises {
		ex := &input.Exercises[i]
		ex.ExerciseName = strings.TrimSpace(ex.ExerciseName)
		if ex.ExerciseName == "" {
			return fmt.Errorf("%w: exercise #%d has no name", ErrValidationFailed, i+1)
		}
		for _, set := range ex.Sets {
			if set.Weight < 0 || set.Reps < 0 {
				return fmt.Errorf("%w: %s has a set with negative weight or reps", ErrValidationFailed, ex.ExerciseName)
			}
		}
	}
	return nil
}

func historyEntries(session *domain.WorkoutSession) []domain.ExerciseHistoryEntry {
	entries := make([]domain.ExerciseHistoryEntry, 0, len(session.Exercises))
	for _, ex := range session.Exercises {
		top, ok := ex.TopSet()
		if !ok {
			continue
		}
		entries = append(entries, domain.ExerciseHistoryEntry{
			UserID:       session.UserID,
			SessionID:    session.ID,
			ExerciseName: ex.ExerciseName,
			Date:         session.StartTime,
			Weight:       top.Weight,
			Reps:         top.Reps,
		})
	}
	return entries
}

// GetSession returns a session owned by the user.
func (s *sessionService) GetSession(ctx context.Context, userID, sessionID primitive.ObjectID) (*domain.WorkoutSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionAccessDenied
	}
	return session, nil
}

// ListSessions returns the user's sessions, oldest first.
func (s *sessionService) ListSessions(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	return s.sessionRepo.ListByUser(ctx, userID)
}

// DeleteSession removes a session together with its history entries.
// History goes first so a failure leaves the session in place to retry.
func (s *sessionService) DeleteSession(ctx context.Context, userID, sessionID primitive.ObjectID) error {
	if _, err := s.GetSession(ctx, userID, sessionID); err != nil {
		return err
	}
	if err := s.historyRepo.DeleteBySession(ctx, sessionID); err != nil {
		return fmt.Errorf("delete history of session: %w", err)
	}
	if err := s.sessionRepo.Delete(ctx, sessionID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}
