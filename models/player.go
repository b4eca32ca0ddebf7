package models

import "time"

// Title is a chess title abbreviation. TitleNone means the player holds no title.
type Title string

const (
	TitleGM   Title = "GM"
	TitleIM   Title = "IM"
	TitleFM   Title = "FM"
	TitleCM   Title = "CM"
	TitleWGM  Title = "WGM"
	TitleWIM  Title = "WIM"
	TitleWFM  Title = "WFM"
	TitleWCM  Title = "WCM"
	TitleNone Title = ""
)

var knownTitles = map[Title]struct{}{
	TitleGM: {}, TitleIM: {}, TitleFM: {}, TitleCM: {},
	TitleWGM: {}, TitleWIM: {}, TitleWFM: {}, TitleWCM: {},
	TitleNone: {},
}

// Valid reports whether t is one of the known titles (or none).
func (t Title) Valid() bool {
	_, ok := knownTitles[t]
	return ok
}

// Player is a rated chess player. Federation holds a federation code and is
// not checked against stored federations.
type Player struct {
	ID         string    `json:"id" bson:"_id" db:"id"`
	Name       string    `json:"name" bson:"name" db:"name"`
	Federation string    `json:"federation" bson:"federation" db:"federation"`
	Rating     int       `json:"rating" bson:"rating" db:"rating"`
	Title      Title     `json:"title" bson:"title" db:"title"`
	BirthYear  *int      `json:"birth_year" bson:"birth_year" db:"birth_year"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
