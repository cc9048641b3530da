package team

import "time"

// Team groups users. Members is a denormalized cache of the user IDs whose
// team_id points here; it is written by the seed job for wire compatibility
// but is NOT kept in sync by user handlers. The members endpoint derives the
// authoritative list from the users collection instead.
type Team struct {
	ID          string    `json:"_id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	Members     []string  `json:"members" bson:"members"`
}
