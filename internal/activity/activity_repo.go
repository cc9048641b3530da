package activity

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when an activity ID does not resolve.
var ErrNotFound = errors.New("activity not found")

// ActivityRepository interface defines all storage operations for activities.
type ActivityRepository interface {
	GetAll(ctx context.Context) ([]Activity, error)
	GetByID(ctx context.Context, id string) (*Activity, error)
	GetByUserID(ctx context.Context, userID string) ([]Activity, error)
	GetByType(ctx context.Context, activityType string) ([]Activity, error)
	Create(ctx context.Context, activity *Activity) error
	Update(ctx context.Context, activity *Activity) error
	Delete(ctx context.Context, id string) error
}

// activityRepository implements ActivityRepository on MongoDB.
type activityRepository struct {
	db *mongo.Database
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *mongo.Database) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) collection() *mongo.Collection {
	return r.db.Collection("activities")
}

func (r *activityRepository) find(ctx context.Context, filter bson.M) ([]Activity, error) {
	// Newest first, matching the original collection ordering.
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	activities := []Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// GetAll retrieves every activity, newest first.
func (r *activityRepository) GetAll(ctx context.Context) ([]Activity, error) {
	return r.find(ctx, bson.M{})
}

// GetByID retrieves a single activity by its document ID.
func (r *activityRepository) GetByID(ctx context.Context, id string) (*Activity, error) {
	var activity Activity
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&activity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &activity, nil
}

// GetByUserID retrieves all activities logged by one user.
func (r *activityRepository) GetByUserID(ctx context.Context, userID string) ([]Activity, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// GetByType retrieves all activities of an exact type.
func (r *activityRepository) GetByType(ctx context.Context, activityType string) ([]Activity, error) {
	return r.find(ctx, bson.M{"type": activityType})
}

// Create inserts a new activity.
func (r *activityRepository) Create(ctx context.Context, activity *Activity) error {
	_, err := r.collection().InsertOne(ctx, activity)
	return err
}

// Update replaces an existing activity document.
func (r *activityRepository) Update(ctx context.Context, activity *Activity) error {
	result, err := r.collection().ReplaceOne(ctx, bson.M{"_id": activity.ID}, activity)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an activity by its document ID.
func (r *activityRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
