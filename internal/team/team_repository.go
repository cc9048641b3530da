package team

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a team ID does not resolve.
var ErrNotFound = errors.New("team not found")

// TeamRepository interface defines all storage operations for teams.
type TeamRepository interface {
	GetAll(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, id string) (*Team, error)
	Create(ctx context.Context, team *Team) error
	Update(ctx context.Context, team *Team) error
	Delete(ctx context.Context, id string) error
}

// teamRepository implements TeamRepository on MongoDB.
type teamRepository struct {
	db *mongo.Database
}

// NewTeamRepository creates a new team repository.
func NewTeamRepository(db *mongo.Database) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) collection() *mongo.Collection {
	return r.db.Collection("teams")
}

// GetAll retrieves every team ordered by name.
func (r *teamRepository) GetAll(ctx context.Context) ([]Team, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	teams := []Team{}
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// GetByID retrieves a single team by its document ID.
func (r *teamRepository) GetByID(ctx context.Context, id string) (*Team, error) {
	var team Team
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &team, nil
}

// Create inserts a new team.
func (r *teamRepository) Create(ctx context.Context, team *Team) error {
	_, err := r.collection().InsertOne(ctx, team)
	return err
}

// Update replaces an existing team document.
func (r *teamRepository) Update(ctx context.Context, team *Team) error {
	result, err := r.collection().ReplaceOne(ctx, bson.M{"_id": team.ID}, team)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a team by its document ID. No cascade: users keep their
// team_id back-reference.
func (r *teamRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
