package models

import "time"

// Federation is a national chess organization identified by a short code.
type Federation struct {
	ID        string    `json:"id" bson:"_id" db:"id"`
	Code      string    `json:"code" bson:"code" db:"code"`
	Name      string    `json:"name" bson:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
