package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/chess-registry/models"
)

var ErrTournamentNotFound = errors.New("tournament not found")

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id string) (*models.Tournament, error)
	// List returns tournaments whose name contains search (case-insensitive), most recent start first.
	List(ctx context.Context, search string, limit int) ([]models.Tournament, error)
	Update(ctx context.Context, tournament *models.Tournament) error
	Delete(ctx context.Context, id string) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

const tournamentColumns = `id, name, location, start_date, end_date, rounds, time_control, arbiter, created_at`

func scanTournament(row rowScanner, t *models.Tournament) error {
	err := row.Scan(
		&t.ID, &t.Name, &t.Location, &t.StartDate, &t.EndDate,
		&t.Rounds, &t.TimeControl, &t.Arbiter, &t.CreatedAt,
	)
	if err != nil {
		return err
	}
	t.StartDate = models.NormalizeTime(t.StartDate)
	t.EndDate = models.NormalizeTime(t.EndDate)
	t.CreatedAt = models.NormalizeTime(t.CreatedAt)
	return nil
}

func (r *postgresTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	query := `
		INSERT INTO tournaments (
			id, name, location, start_date, end_date, rounds, time_control, arbiter, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Name, t.Location, t.StartDate, t.EndDate, t.Rounds, t.TimeControl, t.Arbiter, t.CreatedAt,
	)
	return err
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`

	var t models.Tournament
	if err := scanTournament(r.db.QueryRowContext(ctx, query, id), &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context, search string, limit int) ([]models.Tournament, error) {
	query := `
		SELECT ` + tournamentColumns + `
		FROM tournaments
		WHERE $1 = '' OR name ILIKE $2 ESCAPE '\'
		ORDER BY start_date DESC, id ASC
		LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, search, containsPattern(search), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if err := scanTournament(rows, &t); err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tournaments, nil
}

func (r *postgresTournamentRepository) Update(ctx context.Context, t *models.Tournament) error {
	query := `
		UPDATE tournaments
		SET name = $1, location = $2, start_date = $3, end_date = $4,
			rounds = $5, time_control = $6, arbiter = $7
		WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		t.Name, t.Location, t.StartDate, t.EndDate, t.Rounds, t.TimeControl, t.Arbiter, t.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}
