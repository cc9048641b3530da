package workout

import "time"

// Difficulty levels used by the reference dataset. The field itself is an open
// string, so other values are accepted.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Exercise is one step of a workout. An exercise is measured either in reps or
// in seconds, so exactly one of Reps and DurationSeconds is normally set.
type Exercise struct {
	Name            string `json:"name" bson:"name"`
	Sets            int    `json:"sets" bson:"sets"`
	Reps            *int   `json:"reps,omitempty" bson:"reps,omitempty"`
	DurationSeconds *int   `json:"duration_seconds,omitempty" bson:"duration_seconds,omitempty"`
}

// Workout is a reusable workout plan.
type Workout struct {
	ID              string     `json:"_id" bson:"_id"`
	Name            string     `json:"name" bson:"name"`
	Description     string     `json:"description" bson:"description"`
	Difficulty      string     `json:"difficulty" bson:"difficulty"`
	DurationMinutes int        `json:"duration_minutes" bson:"duration_minutes"`
	Exercises       []Exercise `json:"exercises" bson:"exercises"`
	TargetMuscles   []string   `json:"target_muscles" bson:"target_muscles"`
	EquipmentNeeded []string   `json:"equipment_needed" bson:"equipment_needed"`
	CreatedAt       time.Time  `json:"created_at" bson:"created_at"`
}
