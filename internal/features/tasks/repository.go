package tasks

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "github.com/mubashirjatoi/todo-api/pkg/errors"
)

// Repository persists tasks in the "tasks" collection. Every query filters
// by userId as well as _id, so a task owned by someone else is
// indistinguishable from one that does not exist.
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("tasks")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "completed", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})

	return &Repository{collection: collection}
}

// ListByUser returns every task owned by the user. Filtering and sorting
// happen in memory, in the query pipeline.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Task, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []Task
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	if items == nil {
		items = []Task{}
	}

	return items, nil
}

func (r *Repository) Create(ctx context.Context, task *Task) error {
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	task.Completed = false

	result, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return err
	}

	task.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id, userID string) (*Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}

	var task Task
	err = r.collection.FindOne(ctx, bson.M{
		"_id":    objectID,
		"userId": userID,
	}).Decode(&task)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &task, nil
}

// Update merges the given fields into the task and refreshes updatedAt.
// An empty update document still refreshes updatedAt.
func (r *Repository) Update(ctx context.Context, id, userID string, update bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidID
	}

	update["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID, "userId": userID},
		bson.M{"$set": update},
	)

	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{
		"_id":    objectID,
		"userId": userID,
	})

	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
