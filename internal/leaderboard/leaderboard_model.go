package leaderboard

import "time"

// EntryIDPrefix is prepended to the owning user's ID to form the deterministic
// entry ID, so repeated rebuilds with the same inputs produce the same documents.
const EntryIDPrefix = "leaderboard_"

// Entry is one row of the leaderboard collection. Totals are denormalized
// aggregates over the activities collection and are only as fresh as the last
// rebuild; user_name and team_id are snapshots of the user at rebuild time.
type Entry struct {
	ID                   string    `json:"_id" bson:"_id"`
	UserID               string    `json:"user_id" bson:"user_id"`
	UserName             string    `json:"user_name" bson:"user_name"`
	TeamID               string    `json:"team_id" bson:"team_id"`
	TotalActivities      int       `json:"total_activities" bson:"total_activities"`
	TotalCalories        int       `json:"total_calories" bson:"total_calories"`
	TotalDurationMinutes int       `json:"total_duration_minutes" bson:"total_duration_minutes"`
	Rank                 int       `json:"rank" bson:"rank"`
	UpdatedAt            time.Time `json:"updated_at" bson:"updated_at"`
}

// UserRef is the projection of a user the aggregator needs. Keeping it local
// to this package means the aggregator has no dependency on the user package.
type UserRef struct {
	ID     string `bson:"_id"`
	Name   string `bson:"name"`
	TeamID string `bson:"team_id"`
}

// ActivityStat is the projection of an activity the aggregator needs.
type ActivityStat struct {
	UserID          string `bson:"user_id"`
	DurationMinutes int    `bson:"duration_minutes"`
	CaloriesBurned  int    `bson:"calories_burned"`
}

// EntryID returns the deterministic leaderboard document ID for a user.
func EntryID(userID string) string {
	return EntryIDPrefix + userID
}
