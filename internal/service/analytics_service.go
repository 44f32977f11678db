package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eidergdc/treinano-sub001/internal/analytics"
	"github.com/eidergdc/treinano-sub001/internal/domain"
	"github.com/eidergdc/treinano-sub001/internal/metrics"
	"github.com/eidergdc/treinano-sub001/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -destination=../api/service_mocks_test.go -package=api_test . AuthService,SessionService,ExerciseService,AnalyticsService

// DefaultMaxRecentWeeks caps RecentWeeks when no limit is configured.
const DefaultMaxRecentWeeks = 12

// MaxWeekOffset bounds the week offset accepted by Week, in either direction
// (about a century).
const MaxWeekOffset = 5200

// Analytics views, used as the metrics label.
const (
	ViewWeek        = "week"
	ViewRecentWeeks = "recent_weeks"
	ViewCalendar    = "calendar"
	ViewDay         = "day"
	ViewProgress    = "progress"
)

// CalendarMonth is the calendar view of one month.
type CalendarMonth struct {
	Year        int                  `json:"year"`
	Month       time.Month           `json:"month"`
	Timezone    string               `json:"timezone"`
	Stats       analytics.MonthStats `json:"stats"`
	TrainedDays []int                `json:"trainedDays"`
}

// --- Service Interface ---
type AnalyticsService interface {
	// Week summarizes the week weekOffset weeks from the current one (negative is past).
	Week(ctx context.Context, userID primitive.ObjectID, weekOffset int) (*analytics.WeekSummary, error)
	// RecentWeeks returns count summaries, the current week first.
	RecentWeeks(ctx context.Context, userID primitive.ObjectID, count int) ([]analytics.WeekSummary, error)
	CalendarMonth(ctx context.Context, userID primitive.ObjectID, year int, month time.Month) (*CalendarMonth, error)
	SessionsOnDay(ctx context.Context, userID primitive.ObjectID, year int, month time.Month, day int) ([]domain.WorkoutSession, error)
	// Progress returns the chart series of an exercise; false means no history.
	Progress(ctx context.Context, userID primitive.ObjectID, exerciseName string) (analytics.ProgressSeries, bool, error)
}

// AnalyticsOption customizes the analytics service.
type AnalyticsOption func(*analyticsService)

// WithClock replaces time.Now as the source of "now".
func WithClock(now func() time.Time) AnalyticsOption {
	return func(s *analyticsService) {
		s.now = now
	}
}

// WithMaxRecentWeeks bounds the count accepted by RecentWeeks.
func WithMaxRecentWeeks(n int) AnalyticsOption {
	return func(s *analyticsService) {
		if n > 0 {
			s.maxRecentWeeks = n
		}
	}
}

// --- Service Implementation ---

type analyticsService struct {
	userRepo       repository.UserRepository
	sessionRepo    repository.SessionRepository
	historyRepo    repository.ExerciseHistoryRepository
	defaultLoc     *time.Location
	metrics        *metrics.Manager
	now            func() time.Time
	maxRecentWeeks int
}

// NewAnalyticsService creates the analytics service. defaultLoc applies to
// users without a usable timezone; nil means UTC.
func NewAnalyticsService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	historyRepo repository.ExerciseHistoryRepository,
	defaultLoc *time.Location,
	metricsManager *metrics.Manager,
	opts ...AnalyticsOption,
) AnalyticsService {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	s := &analyticsService{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		historyRepo:    historyRepo,
		defaultLoc:     defaultLoc,
		metrics:        metricsManager,
		now:            time.Now,
		maxRecentWeeks: DefaultMaxRecentWeeks,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *analyticsService) Week(ctx context.Context, userID primitive.ObjectID, weekOffset int) (*analytics.WeekSummary, error) {
	if weekOffset < -MaxWeekOffset || weekOffset > MaxWeekOffset {
		return nil, fmt.Errorf("%w: week offset must be between %d and %d", ErrValidationFailed, -MaxWeekOffset, MaxWeekOffset)
	}
	loc, sessions, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := analytics.ComputeWeek(sessions, weekOffset, s.now().In(loc))
	s.observe(ViewWeek)
	return &summary, nil
}

func (s *analyticsService) RecentWeeks(ctx context.Context, userID primitive.ObjectID, count int) ([]analytics.WeekSummary, error) {
	if count < 1 || count > s.maxRecentWeeks {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrValidationFailed, s.maxRecentWeeks)
	}
	loc, sessions, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now().In(loc)

	// The engine is pure, so the weeks can share the snapshot.
	weeks := make([]analytics.WeekSummary, count)
	g, gctx := errgroup.WithContext(ctx)
	for i := range count {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			weeks[i] = analytics.ComputeWeek(sessions, -i, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.observe(ViewRecentWeeks)
	return weeks, nil
}

func (s *analyticsService) CalendarMonth(ctx context.Context, userID primitive.ObjectID, year int, month time.Month) (*CalendarMonth, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrValidationFailed)
	}
	loc, sessions, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	idx := analytics.BuildIndex(sessions, loc)
	s.observe(ViewCalendar)
	return &CalendarMonth{
		Year:        year,
		Month:       month,
		Timezone:    loc.String(),
		Stats:       idx.MonthStats(year, month),
		TrainedDays: idx.TrainedDays(year, month),
	}, nil
}

func (s *analyticsService) SessionsOnDay(ctx context.Context, userID primitive.ObjectID, year int, month time.Month, day int) ([]domain.WorkoutSession, error) {
	loc, sessions, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	idx := analytics.BuildIndex(sessions, loc)
	s.observe(ViewDay)
	return idx.SessionsOnDay(year, month, day), nil
}

func (s *analyticsService) Progress(ctx context.Context, userID primitive.ObjectID, exerciseName string) (analytics.ProgressSeries, bool, error) {
	exerciseName = strings.TrimSpace(exerciseName)
	if exerciseName == "" {
		return analytics.ProgressSeries{}, false, fmt.Errorf("%w: exercise name is required", ErrValidationFailed)
	}
	history, err := s.historyRepo.ListByExercise(ctx, userID, exerciseName)
	if err != nil {
		return analytics.ProgressSeries{}, false, fmt.Errorf("load history: %w", err)
	}
	series, ok := analytics.BuildSeries(history)
	s.observe(ViewProgress)
	return series, ok, nil
}

// snapshot reads the user's location and full session history once.
func (s *analyticsService) snapshot(ctx context.Context, userID primitive.ObjectID) (*time.Location, []domain.WorkoutSession, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	sessions, err := s.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load sessions: %w", err)
	}
	return user.Location(s.defaultLoc), sessions, nil
}

func (s *analyticsService) observe(view string) {
	if s.metrics != nil {
		s.metrics.CounterAnalytics.WithLabelValues(view).Inc()
	}
}
