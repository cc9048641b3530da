package activity

import "time"

// Common activity types. The type field is an open string, these are just the
// values the reference dataset uses.
const (
	TypeRunning        = "Running"
	TypeCycling        = "Cycling"
	TypeSwimming       = "Swimming"
	TypeWeightTraining = "Weight Training"
	TypeYoga           = "Yoga"
	TypeBoxing         = "Boxing"
)

// Activity is a single logged fitness activity belonging to a user.
type Activity struct {
	ID              string    `json:"_id" bson:"_id"`
	UserID          string    `json:"user_id" bson:"user_id"`
	Type            string    `json:"type" bson:"type"`
	DurationMinutes int       `json:"duration_minutes" bson:"duration_minutes"`
	CaloriesBurned  int       `json:"calories_burned" bson:"calories_burned"`
	DistanceKm      *float64  `json:"distance_km" bson:"distance_km,omitempty"`
	Date            time.Time `json:"date" bson:"date"`
	Notes           string    `json:"notes" bson:"notes"`
}
