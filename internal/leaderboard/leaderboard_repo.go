package leaderboard

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a leaderboard entry ID does not resolve.
var ErrNotFound = errors.New("leaderboard entry not found")

// LeaderboardRepository interface defines all storage operations for the
// leaderboard collection, plus the user/activity projections the rebuild needs.
type LeaderboardRepository interface {
	GetAll(ctx context.Context) ([]Entry, error)
	GetByID(ctx context.Context, id string) (*Entry, error)
	GetByUserID(ctx context.Context, userID string) (*Entry, error)
	Create(ctx context.Context, entry *Entry) error
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, id string) error

	// ReplaceAll swaps the stored set for the given one (clear-then-insert).
	// The two steps are not transactional: a crash in between leaves the
	// collection empty until the next rebuild.
	ReplaceAll(ctx context.Context, entries []Entry) error

	FetchUserRefs(ctx context.Context) ([]UserRef, error)
	FetchActivityStats(ctx context.Context) ([]ActivityStat, error)
}

// leaderboardRepository implements LeaderboardRepository on MongoDB.
type leaderboardRepository struct {
	db *mongo.Database
}

// NewLeaderboardRepository creates a new leaderboard repository.
func NewLeaderboardRepository(db *mongo.Database) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) collection() *mongo.Collection {
	return r.db.Collection("leaderboard")
}

// GetAll retrieves every leaderboard entry ordered by rank.
func (r *leaderboardRepository) GetAll(ctx context.Context) ([]Entry, error) {
	cursor, err := r.collection().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "rank", Value: 1}}))
	if err != nil {
		return nil, err
	}
	entries := []Entry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByID retrieves a single entry by its document ID.
func (r *leaderboardRepository) GetByID(ctx context.Context, id string) (*Entry, error) {
	var entry Entry
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// GetByUserID retrieves the entry belonging to a user, used by the user stats
// endpoint.
func (r *leaderboardRepository) GetByUserID(ctx context.Context, userID string) (*Entry, error) {
	var entry Entry
	err := r.collection().FindOne(ctx, bson.M{"user_id": userID}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Create inserts a single entry.
func (r *leaderboardRepository) Create(ctx context.Context, entry *Entry) error {
	_, err := r.collection().InsertOne(ctx, entry)
	return err
}

// Update replaces an existing entry document.
func (r *leaderboardRepository) Update(ctx context.Context, entry *Entry) error {
	result, err := r.collection().ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an entry by its document ID.
func (r *leaderboardRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceAll clears the collection and bulk-inserts the new set.
func (r *leaderboardRepository) ReplaceAll(ctx context.Context, entries []Entry) error {
	if _, err := r.collection().DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	docs := make([]interface{}, len(entries))
	for i := range entries {
		docs[i] = entries[i]
	}
	_, err := r.collection().InsertMany(ctx, docs)
	return err
}

// FetchUserRefs projects id, name and team_id out of the users collection.
func (r *leaderboardRepository) FetchUserRefs(ctx context.Context) ([]UserRef, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "name": 1, "team_id": 1})
	cursor, err := r.db.Collection("users").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	refs := []UserRef{}
	if err := cursor.All(ctx, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// FetchActivityStats projects user_id, duration and calories out of the
// activities collection.
func (r *leaderboardRepository) FetchActivityStats(ctx context.Context) ([]ActivityStat, error) {
	opts := options.Find().SetProjection(bson.M{"user_id": 1, "duration_minutes": 1, "calories_burned": 1})
	cursor, err := r.db.Collection("activities").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	stats := []ActivityStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Rebuild runs one full aggregation pass: fetch users and activities, recompute
// the ranked set, then swap it into storage. Storage failures are returned as-is
// and not retried; a failed swap can leave the collection empty until the next
// pass.
func Rebuild(ctx context.Context, repo LeaderboardRepository, now time.Time) ([]Entry, error) {
	users, err := repo.FetchUserRefs(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := repo.FetchActivityStats(ctx)
	if err != nil {
		return nil, err
	}
	entries := Recompute(users, activities, now)
	if err := repo.ReplaceAll(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}
