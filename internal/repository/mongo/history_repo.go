package mongo

import (
	"context"
	"fmt"

	"github.com/eidergdc/treinano-sub001/internal/domain"
	"github.com/eidergdc/treinano-sub001/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const historyCollectionName = "exercise_history"

// mongoHistoryRepository implements repository.ExerciseHistoryRepository
type mongoHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoHistoryRepository creates a new exercise history repository.
func NewMongoHistoryRepository(db *mongo.Database) repository.ExerciseHistoryRepository {
	return &mongoHistoryRepository{
		collection: db.Collection(historyCollectionName),
	}
}

// CreateMany inserts the entries in one round trip. IDs are assigned here.
func (r *mongoHistoryRepository) CreateMany(ctx context.Context, entries []domain.ExerciseHistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]interface{}, len(entries))
	for i := range entries {
		entries[i].ID = primitive.NewObjectID()
		docs[i] = entries[i]
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert history entries: %w", err)
	}
	return nil
}

// ListByExercise returns the user's history of one exercise, oldest first.
func (r *mongoHistoryRepository) ListByExercise(ctx context.Context, userID primitive.ObjectID, exerciseName string) ([]domain.ExerciseHistoryEntry, error) {
	entries := []domain.ExerciseHistoryEntry{}
	filter := bson.M{"userId": userID, "exerciseName": exerciseName}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find history: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return entries, nil
}

// DeleteBySession removes the entries written for a session.
func (r *mongoHistoryRepository) DeleteBySession(ctx context.Context, sessionID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return fmt.Errorf("delete history of session %s: %w", sessionID.Hex(), err)
	}
	return nil
}

// EnsureHistoryIndexes creates necessary indexes for the history collection.
func EnsureHistoryIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "exerciseName", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "sessionId", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	return nil
}
