package analytics

import (
	"strings"
	"time"

	"github.com/eidergdc/treinano-sub001/internal/domain"
)

// DaysPerWeek is the number of entries in WeekSummary.WorkoutDays.
const DaysPerWeek = 7

// WorkoutDay holds the sessions that started on one day of the week.
type WorkoutDay struct {
	Date     time.Time               `json:"date"`
	Sessions []domain.WorkoutSession `json:"sessions"`
}

// WeekSummary is the aggregate of one Sunday-to-Saturday week.
type WeekSummary struct {
	StartOfWeek         time.Time               `json:"startOfWeek"`
	EndOfWeek           time.Time               `json:"endOfWeek"`
	TotalWorkouts       int                     `json:"totalWorkouts"`
	TotalTimeSeconds    int                     `json:"totalTimeSeconds"`
	TotalExercises      int                     `json:"totalExercises"`
	MuscleGroups        []string                `json:"muscleGroups"`
	WorkoutDays         [DaysPerWeek]WorkoutDay `json:"workoutDays"`
	MostTrainedExercise *string                 `json:"mostTrainedExercise"` // nil when no exercises were logged
}

// WeekBounds returns the first and last instant of the week that is
// weekOffset weeks away from the week containing now. Weeks start on Sunday
// at local midnight in now's location (the first instant of Sunday when DST
// skips midnight); negative offsets go back in time. The end is Saturday
// 23:59:59.999.
func WeekBounds(now time.Time, weekOffset int) (start, end time.Time) {
	loc := now.Location()
	y, m, d := now.Date()
	sd := d - int(now.Weekday()) + weekOffset*DaysPerWeek

	start = startOfDay(y, m, sd, loc)
	// last millisecond before the next week's start
	end = startOfDay(y, m, sd+DaysPerWeek, loc).Add(-time.Millisecond)
	return start, end
}

// startOfDay returns the first instant of the local day y-m-d, normalised the
// way time.Date normalises it. Where DST begins at midnight that instant is
// 01:00 rather than 00:00.
func startOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	wy, wm, wd := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Date()
	if ty, tm, td := t.Date(); ty != wy || tm != wm || td != wd {
		// midnight is missing and time.Date resolved it into the previous day
		if _, zoneEnd := t.ZoneBounds(); !zoneEnd.IsZero() {
			t = zoneEnd
		}
	}
	return t
}

// SplitMuscleGroups splits a comma separated category into trimmed, non-empty
// muscle group names.
func SplitMuscleGroups(category string) []string {
	var groups []string
	for _, part := range strings.Split(category, ",") {
		if g := strings.TrimSpace(part); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}

// ComputeWeek aggregates the sessions that fall inside the week selected by
// weekOffset relative to now. It never fails: sessions without a start time
// are simply not part of any week.
func ComputeWeek(sessions []domain.WorkoutSession, weekOffset int, now time.Time) WeekSummary {
	start, end := WeekBounds(now, weekOffset)
	loc := now.Location()

	summary := WeekSummary{
		StartOfWeek: start,
		EndOfWeek:   end,
	}

	dayIndex := make(map[dayKey]int, DaysPerWeek)
	sy, sm, sd := start.Date()
	for i := range DaysPerWeek {
		date := startOfDay(sy, sm, sd+i, loc)
		y, m, d := date.Date()
		dayIndex[dayKey{year: y, month: m, day: d}] = i
		summary.WorkoutDays[i] = WorkoutDay{
			Date:     date,
			Sessions: []domain.WorkoutSession{},
		}
	}

	groups := newOrderedSet()
	exercises := newOrderedCounter()

	for _, s := range sessions {
		if !s.HasStartTime() || s.StartTime.Before(start) || s.StartTime.After(end) {
			continue
		}

		summary.TotalWorkouts++
		summary.TotalTimeSeconds += s.Duration()
		summary.TotalExercises += len(s.Exercises)

		for _, g := range SplitMuscleGroups(s.Category) {
			groups.add(g)
		}
		for _, ex := range s.Exercises {
			if strings.TrimSpace(ex.ExerciseName) == "" {
				continue
			}
			exercises.add(ex.ExerciseName)
		}

		y, m, d := s.StartTime.In(loc).Date()
		if i, ok := dayIndex[dayKey{year: y, month: m, day: d}]; ok {
			summary.WorkoutDays[i].Sessions = append(summary.WorkoutDays[i].Sessions, s)
		}
	}

	summary.MuscleGroups = groups.items
	if name, ok := exercises.top(); ok {
		summary.MostTrainedExercise = &name
	}

	return summary
}
