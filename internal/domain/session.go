package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutSession is one completed workout logged by a user.
// StartTime is the only timestamp used for date bucketing; a zero StartTime
// means the session has no valid start and is left out of date-scoped views.
type WorkoutSession struct {
	ID              primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID    `bson:"userId" json:"userId"`
	Name            string                `bson:"name,omitempty" json:"name,omitempty"`
	StartTime       time.Time             `bson:"startTime" json:"startTime"`
	DurationSeconds int                   `bson:"durationSeconds,omitempty" json:"durationSeconds"`
	Category        string                `bson:"category,omitempty" json:"category,omitempty"` // e.g. "Chest, Triceps"
	Exercises       []ExercisePerformance `bson:"exercises,omitempty" json:"exercises"`
	Notes           string                `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time             `bson:"createdAt" json:"createdAt"`
}

// HasStartTime reports whether the session can be placed on a calendar.
func (s WorkoutSession) HasStartTime() bool {
	return !s.StartTime.IsZero()
}

// Duration returns the session length, treating negative values as zero.
func (s WorkoutSession) Duration() int {
	if s.DurationSeconds < 0 {
		return 0
	}
	return s.DurationSeconds
}

// ExercisePerformance is one exercise performed within a session.
// ExerciseName is the grouping key for "most trained exercise", not an ID.
type ExercisePerformance struct {
	ExerciseName string      `bson:"exerciseName" json:"exerciseName"`
	Sets         []SetRecord `bson:"sets,omitempty" json:"sets,omitempty"`
}

// SetRecord is a single set of an exercise.
type SetRecord struct {
	Weight float64 `bson:"weight" json:"weight"`
	Reps   int     `bson:"reps" json:"reps"`
}

// TopSet returns the heaviest set, preferring more reps on equal weight.
func (e ExercisePerformance) TopSet() (SetRecord, bool) {
	if len(e.Sets) == 0 {
		return SetRecord{}, false
	}
	top := e.Sets[0]
	for _, set := range e.Sets[1:] {
		if set.Weight > top.Weight || (set.Weight == top.Weight && set.Reps > top.Reps) {
			top = set
		}
	}
	return top, true
}
