package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a user ID does not resolve.
var ErrNotFound = errors.New("user not found")

// UserRepository interface defines all storage operations for users.
type UserRepository interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByTeamID(ctx context.Context, teamID string) ([]User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}

// userRepository implements UserRepository on MongoDB.
type userRepository struct {
	db *mongo.Database
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) collection() *mongo.Collection {
	return r.db.Collection("users")
}

func (r *userRepository) find(ctx context.Context, filter bson.M) ([]User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	users := []User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetAll retrieves every user ordered by name.
func (r *userRepository) GetAll(ctx context.Context) ([]User, error) {
	return r.find(ctx, bson.M{})
}

// GetByID retrieves a single user by their document ID.
func (r *userRepository) GetByID(ctx context.Context, id string) (*User, error) {
	var user User
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a single user by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByTeamID retrieves all users whose team back-reference matches. This is
// the authoritative team membership view.
func (r *userRepository) GetByTeamID(ctx context.Context, teamID string) ([]User, error) {
	return r.find(ctx, bson.M{"team_id": teamID})
}

// Create inserts a new user. The unique email index rejects duplicates.
func (r *userRepository) Create(ctx context.Context, user *User) error {
	_, err := r.collection().InsertOne(ctx, user)
	return err
}

// Update replaces an existing user document.
func (r *userRepository) Update(ctx context.Context, user *User) error {
	result, err := r.collection().ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a user by their document ID. Deliberately no cascade: the
// user's activities and any cached team membership survive.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
