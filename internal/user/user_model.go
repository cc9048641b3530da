package user

import "time"

// Profile carries free-form fitness attributes of a user.
type Profile struct {
	Age          int    `json:"age,omitempty" bson:"age,omitempty"`
	Height       int    `json:"height,omitempty" bson:"height,omitempty"`
	Weight       int    `json:"weight,omitempty" bson:"weight,omitempty"`
	FitnessLevel string `json:"fitness_level,omitempty" bson:"fitness_level,omitempty"`
}

// User is a registered member. The password is write-only: it is accepted on
// input, stored as a bcrypt hash and never serialized back out. TeamID is a
// plain back-reference; team membership views are always derived from it, not
// from the teams collection's cached members list.
type User struct {
	ID        string    `json:"_id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"-" bson:"password"`
	TeamID    string    `json:"team_id" bson:"team_id"`
	Profile   Profile   `json:"profile" bson:"profile"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
