package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/chess-registry/models"
)

var (
	ErrFederationNotFound     = errors.New("federation not found")
	ErrFederationCodeConflict = errors.New("federation code conflict")
)

const federationsCodeConstraint = "federations_code_key"

type FederationRepository interface {
	Create(ctx context.Context, federation *models.Federation) error
	GetByCode(ctx context.Context, code string) (*models.Federation, error)
	// List returns federations whose name or code contains search (case-insensitive).
	// An empty search matches every federation.
	List(ctx context.Context, search string, limit int) ([]models.Federation, error)
}

type postgresFederationRepository struct {
	db *sql.DB
}

func NewPostgresFederationRepository(db *sql.DB) FederationRepository {
	return &postgresFederationRepository{db: db}
}

func (r *postgresFederationRepository) Create(ctx context.Context, f *models.Federation) error {
	query := `INSERT INTO federations (id, code, name, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, f.ID, f.Code, f.Name, f.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, federationsCodeConstraint) {
			return ErrFederationCodeConflict
		}
		return err
	}
	return nil
}

func (r *postgresFederationRepository) GetByCode(ctx context.Context, code string) (*models.Federation, error) {
	query := `SELECT id, code, name, created_at FROM federations WHERE code = $1`

	var f models.Federation
	err := r.db.QueryRowContext(ctx, query, code).Scan(&f.ID, &f.Code, &f.Name, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFederationNotFound
		}
		return nil, err
	}
	f.CreatedAt = models.NormalizeTime(f.CreatedAt)
	return &f, nil
}

func (r *postgresFederationRepository) List(ctx context.Context, search string, limit int) ([]models.Federation, error) {
	query := `
		SELECT id, code, name, created_at
		FROM federations
		WHERE $1 = '' OR name ILIKE $2 ESCAPE '\' OR code ILIKE $2 ESCAPE '\'
		ORDER BY created_at ASC, id ASC
		LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, search, containsPattern(search), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	federations := make([]models.Federation, 0)
	for rows.Next() {
		var f models.Federation
		if err := rows.Scan(&f.ID, &f.Code, &f.Name, &f.CreatedAt); err != nil {
			return nil, err
		}
		f.CreatedAt = models.NormalizeTime(f.CreatedAt)
		federations = append(federations, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return federations, nil
}
