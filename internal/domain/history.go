package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHistoryEntry is one historical data point for a single exercise.
// Entries are written when a session is logged (one per exercise, its top set)
// and read back in chronological order for progress charts.
type ExerciseHistoryEntry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	SessionID    primitive.ObjectID `bson:"sessionId" json:"sessionId"`
	ExerciseName string             `bson:"exerciseName" json:"exerciseName"`
	Date         time.Time          `bson:"date" json:"date"`
	Weight       float64            `bson:"weight" json:"weight"` // unit-agnostic, the client picks the display unit
	Reps         int                `bson:"reps" json:"reps"`
}
