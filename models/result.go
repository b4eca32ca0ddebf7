package models

import "time"

// TournamentResult is one player's final standing in a tournament.
// Tiebreaks are computed elsewhere and stored as supplied.
type TournamentResult struct {
	ID                string    `json:"id" bson:"_id" db:"id"`
	TournamentID      string    `json:"tournament_id" bson:"tournament_id" db:"tournament_id"`
	PlayerID          string    `json:"player_id" bson:"player_id" db:"player_id"`
	Points            float64   `json:"points" bson:"points" db:"points"`
	Rank              int       `json:"rank" bson:"rank" db:"rank"`
	Tiebreak1         float64   `json:"tiebreak1" bson:"tiebreak1" db:"tiebreak1"` // Buchholz
	Tiebreak2         float64   `json:"tiebreak2" bson:"tiebreak2" db:"tiebreak2"` // Sonneborn-Berger
	Tiebreak3         float64   `json:"tiebreak3" bson:"tiebreak3" db:"tiebreak3"` // direct encounter
	PerformanceRating *int      `json:"performance_rating" bson:"performance_rating" db:"performance_rating"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// ResultWithPlayer is a tournament result joined with its player.
type ResultWithPlayer struct {
	TournamentResult `bson:",inline"`
	Player           Player `json:"player" bson:"player"`
}

// ResultWithTournament is a tournament result joined with its tournament.
type ResultWithTournament struct {
	TournamentResult `bson:",inline"`
	Tournament       Tournament `json:"tournament" bson:"tournament"`
}
