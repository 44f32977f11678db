// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is an entry in a user's exercise list.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"` // Owner of this exercise
	Name        string             `bson:"name" json:"name"`
	MuscleGroup string             `bson:"muscleGroup,omitempty" json:"muscleGroup,omitempty"` // e.g., "Chest", "Legs", "Back"
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	// ImageKey is the object key of the demo image in file storage; never exposed directly,
	// clients get a presigned download URL instead.
	ImageKey string `bson:"imageKey,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasImage reports whether an image was uploaded for the exercise.
func (e *Exercise) HasImage() bool {
	return e.ImageKey != ""
}
