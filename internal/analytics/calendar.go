// Package analytics turns a snapshot of workout records into the derived views
// shown by the app: the calendar, weekly summaries and per-exercise progress.
//
// Every function here is pure. Callers fetch the records first and pass them
// in; nothing is cached between calls, so concurrent use is safe.
package analytics

import (
	"sort"
	"time"

	"github.com/eidergdc/treinano-sub001/internal/domain"
)

type dayKey struct {
	year  int
	month time.Month
	day   int
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthStats summarises a calendar month.
type MonthStats struct {
	TotalSessions       int `json:"totalSessions"`
	DistinctDaysTrained int `json:"distinctDaysTrained"`
}

// CalendarIndex buckets sessions by local calendar day and month.
// Build it once with BuildIndex; lookups are then constant time.
type CalendarIndex struct {
	loc    *time.Location
	days   map[dayKey][]domain.WorkoutSession
	months map[monthKey]*monthBucket
	total  int
}

type monthBucket struct {
	sessions int
	days     map[int]struct{}
}

// BuildIndex indexes sessions by the local date of their StartTime in loc.
// Sessions without a start time are dropped. A nil loc means time.Local.
func BuildIndex(sessions []domain.WorkoutSession, loc *time.Location) *CalendarIndex {
	if loc == nil {
		loc = time.Local
	}
	idx := &CalendarIndex{
		loc:    loc,
		days:   make(map[dayKey][]domain.WorkoutSession),
		months: make(map[monthKey]*monthBucket),
	}

	for _, s := range sessions {
		if !s.HasStartTime() {
			continue
		}
		y, m, d := s.StartTime.In(loc).Date()

		dk := dayKey{year: y, month: m, day: d}
		idx.days[dk] = append(idx.days[dk], s)

		mk := monthKey{year: y, month: m}
		bucket, ok := idx.months[mk]
		if !ok {
			bucket = &monthBucket{days: make(map[int]struct{})}
			idx.months[mk] = bucket
		}
		bucket.sessions++
		bucket.days[d] = struct{}{}
		idx.total++
	}

	return idx
}

// Location returns the timezone the index was built in.
func (idx *CalendarIndex) Location() *time.Location {
	return idx.loc
}

// Len returns the number of indexed sessions.
func (idx *CalendarIndex) Len() int {
	return idx.total
}

// SessionsOnDay returns the sessions that started on the given local day,
// in input order. The result is never nil.
func (idx *CalendarIndex) SessionsOnDay(year int, month time.Month, day int) []domain.WorkoutSession {
	sessions := idx.days[dayKey{year: year, month: month, day: day}]
	out := make([]domain.WorkoutSession, len(sessions))
	copy(out, sessions)
	return out
}

// MonthStats returns the session count and number of distinct trained days
// for the given month.
func (idx *CalendarIndex) MonthStats(year int, month time.Month) MonthStats {
	bucket, ok := idx.months[monthKey{year: year, month: month}]
	if !ok {
		return MonthStats{}
	}
	return MonthStats{
		TotalSessions:       bucket.sessions,
		DistinctDaysTrained: len(bucket.days),
	}
}

// TrainedDays lists, in ascending order, the days of the month that have at
// least one session.
func (idx *CalendarIndex) TrainedDays(year int, month time.Month) []int {
	bucket, ok := idx.months[monthKey{year: year, month: month}]
	if !ok {
		return []int{}
	}
	days := make([]int, 0, len(bucket.days))
	for d := range bucket.days {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
