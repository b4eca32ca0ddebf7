package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/chess-registry/models"
)

var ErrResultConflict = errors.New("result for this player already recorded in tournament")

const resultsPairConstraint = "tournament_results_pair_key"

// ResultRepository stores tournament results. Tournament and player ids are soft references:
// the join views skip results whose counterpart does not exist.
type ResultRepository interface {
	Create(ctx context.Context, result *models.TournamentResult) error
	// ListByTournament returns the tournament's results joined with their players, ascending by rank.
	ListByTournament(ctx context.Context, tournamentID string, limit int) ([]models.ResultWithPlayer, error)
	// ListByPlayer returns the player's results joined with their tournaments, most recent tournament first.
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]models.ResultWithTournament, error)
}

type postgresResultRepository struct {
	db *sql.DB
}

func NewPostgresResultRepository(db *sql.DB) ResultRepository {
	return &postgresResultRepository{db: db}
}

func (r *postgresResultRepository) Create(ctx context.Context, res *models.TournamentResult) error {
	query := `
		INSERT INTO tournament_results (
			id, tournament_id, player_id, points, rank,
			tiebreak1, tiebreak2, tiebreak3, performance_rating, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		res.ID, res.TournamentID, res.PlayerID, res.Points, res.Rank,
		res.Tiebreak1, res.Tiebreak2, res.Tiebreak3, intPtrArg(res.PerformanceRating), res.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, resultsPairConstraint) {
			return ErrResultConflict
		}
		return err
	}
	return nil
}

func scanResultColumns(res *models.TournamentResult, performance *sql.NullInt64) []any {
	return []any{
		&res.ID, &res.TournamentID, &res.PlayerID, &res.Points, &res.Rank,
		&res.Tiebreak1, &res.Tiebreak2, &res.Tiebreak3, performance, &res.CreatedAt,
	}
}

func (r *postgresResultRepository) ListByTournament(ctx context.Context, tournamentID string, limit int) ([]models.ResultWithPlayer, error) {
	query := `
		SELECT
			r.id, r.tournament_id, r.player_id, r.points, r.rank,
			r.tiebreak1, r.tiebreak2, r.tiebreak3, r.performance_rating, r.created_at,
			p.id, p.name, p.federation, p.rating, p.title, p.birth_year, p.created_at
		FROM tournament_results r
		JOIN players p ON p.id = r.player_id
		WHERE r.tournament_id = $1
		ORDER BY r.rank ASC, r.created_at ASC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, tournamentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.ResultWithPlayer, 0)
	for rows.Next() {
		var (
			item        models.ResultWithPlayer
			performance sql.NullInt64
			birthYear   sql.NullInt64
		)
		dest := scanResultColumns(&item.TournamentResult, &performance)
		dest = append(dest,
			&item.Player.ID, &item.Player.Name, &item.Player.Federation, &item.Player.Rating,
			&item.Player.Title, &birthYear, &item.Player.CreatedAt,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		item.PerformanceRating = nullIntPtr(performance)
		item.CreatedAt = models.NormalizeTime(item.CreatedAt)
		item.Player.BirthYear = nullIntPtr(birthYear)
		item.Player.CreatedAt = models.NormalizeTime(item.Player.CreatedAt)
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *postgresResultRepository) ListByPlayer(ctx context.Context, playerID string, limit int) ([]models.ResultWithTournament, error) {
	query := `
		SELECT
			r.id, r.tournament_id, r.player_id, r.points, r.rank,
			r.tiebreak1, r.tiebreak2, r.tiebreak3, r.performance_rating, r.created_at,
			t.id, t.name, t.location, t.start_date, t.end_date, t.rounds, t.time_control, t.arbiter, t.created_at
		FROM tournament_results r
		JOIN tournaments t ON t.id = r.tournament_id
		WHERE r.player_id = $1
		ORDER BY t.start_date DESC, r.created_at ASC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, playerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.ResultWithTournament, 0)
	for rows.Next() {
		var (
			item        models.ResultWithTournament
			performance sql.NullInt64
		)
		t := &item.Tournament
		dest := scanResultColumns(&item.TournamentResult, &performance)
		dest = append(dest,
			&t.ID, &t.Name, &t.Location, &t.StartDate, &t.EndDate,
			&t.Rounds, &t.TimeControl, &t.Arbiter, &t.CreatedAt,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		item.PerformanceRating = nullIntPtr(performance)
		item.CreatedAt = models.NormalizeTime(item.CreatedAt)
		t.StartDate = models.NormalizeTime(t.StartDate)
		t.EndDate = models.NormalizeTime(t.EndDate)
		t.CreatedAt = models.NormalizeTime(t.CreatedAt)
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
