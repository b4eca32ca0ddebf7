package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/chess-registry/models"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id string) (*models.Player, error)
	// List returns players whose name contains search (case-insensitive), in insertion order.
	List(ctx context.Context, search string, limit int) ([]models.Player, error)
	// Update replaces every mutable field of the stored player with the given values.
	// ID and CreatedAt are left untouched.
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id string) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

const playerColumns = `id, name, federation, rating, title, birth_year, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner, p *models.Player) error {
	var birthYear sql.NullInt64
	if err := row.Scan(&p.ID, &p.Name, &p.Federation, &p.Rating, &p.Title, &birthYear, &p.CreatedAt); err != nil {
		return err
	}
	p.BirthYear = nullIntPtr(birthYear)
	p.CreatedAt = models.NormalizeTime(p.CreatedAt)
	return nil
}

func (r *postgresPlayerRepository) Create(ctx context.Context, p *models.Player) error {
	query := `
		INSERT INTO players (id, name, federation, rating, title, birth_year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Federation, p.Rating, p.Title, intPtrArg(p.BirthYear), p.CreatedAt,
	)
	return err
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id string) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	var p models.Player
	if err := scanPlayer(r.db.QueryRowContext(ctx, query, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresPlayerRepository) List(ctx context.Context, search string, limit int) ([]models.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE $1 = '' OR name ILIKE $2 ESCAPE '\'
		ORDER BY created_at ASC, id ASC
		LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, search, containsPattern(search), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if err := scanPlayer(rows, &p); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return players, nil
}

func (r *postgresPlayerRepository) Update(ctx context.Context, p *models.Player) error {
	query := `
		UPDATE players
		SET name = $1, federation = $2, rating = $3, title = $4, birth_year = $5
		WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Federation, p.Rating, p.Title, intPtrArg(p.BirthYear), p.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func intPtrArg(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
