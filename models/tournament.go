package models

import "time"

// Tournament is a single chess event.
type Tournament struct {
	ID          string    `json:"id" bson:"_id" db:"id"`
	Name        string    `json:"name" bson:"name" db:"name"`
	Location    string    `json:"location" bson:"location" db:"location"`
	StartDate   time.Time `json:"start_date" bson:"start_date" db:"start_date"`
	EndDate     time.Time `json:"end_date" bson:"end_date" db:"end_date"`
	Rounds      int       `json:"rounds" bson:"rounds" db:"rounds"`
	TimeControl string    `json:"time_control" bson:"time_control" db:"time_control"` // e.g. "90+30"
	Arbiter     string    `json:"arbiter" bson:"arbiter" db:"arbiter"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
