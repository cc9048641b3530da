package workout

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a workout ID does not resolve.
var ErrNotFound = errors.New("workout not found")

// WorkoutRepository interface defines all storage operations for workouts.
type WorkoutRepository interface {
	GetAll(ctx context.Context) ([]Workout, error)
	GetByID(ctx context.Context, id string) (*Workout, error)
	GetByDifficulty(ctx context.Context, difficulty string) ([]Workout, error)
	Create(ctx context.Context, workout *Workout) error
	Update(ctx context.Context, workout *Workout) error
	Delete(ctx context.Context, id string) error
}

// workoutRepository implements WorkoutRepository on MongoDB.
type workoutRepository struct {
	db *mongo.Database
}

// NewWorkoutRepository creates a new workout repository.
func NewWorkoutRepository(db *mongo.Database) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) collection() *mongo.Collection {
	return r.db.Collection("workouts")
}

func (r *workoutRepository) find(ctx context.Context, filter bson.M) ([]Workout, error) {
	opts := options.Find().SetSort(bson.D{{Key: "difficulty", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	workouts := []Workout{}
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// GetAll retrieves every workout ordered by difficulty, then name.
func (r *workoutRepository) GetAll(ctx context.Context) ([]Workout, error) {
	return r.find(ctx, bson.M{})
}

// GetByID retrieves a single workout by its document ID.
func (r *workoutRepository) GetByID(ctx context.Context, id string) (*Workout, error) {
	var workout Workout
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// GetByDifficulty retrieves all workouts at an exact difficulty level.
func (r *workoutRepository) GetByDifficulty(ctx context.Context, difficulty string) ([]Workout, error) {
	return r.find(ctx, bson.M{"difficulty": difficulty})
}

// Create inserts a new workout.
func (r *workoutRepository) Create(ctx context.Context, workout *Workout) error {
	_, err := r.collection().InsertOne(ctx, workout)
	return err
}

// Update replaces an existing workout document.
func (r *workoutRepository) Update(ctx context.Context, workout *Workout) error {
	result, err := r.collection().ReplaceOne(ctx, bson.M{"_id": workout.ID}, workout)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a workout by its document ID.
func (r *workoutRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
