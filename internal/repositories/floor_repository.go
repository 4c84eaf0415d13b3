package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/models"
)

type FloorRepository interface {
	List(ctx context.Context) ([]*models.Floor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Floor, error)
	Create(ctx context.Context, f *models.Floor) error
	Update(ctx context.Context, f *models.Floor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type floorRepo struct {
	db DB
}

func NewFloorRepository(db DB) FloorRepository {
	return &floorRepo{db: db}
}

func (r *floorRepo) List(ctx context.Context) ([]*models.Floor, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.immeuble_id, e.numero, COALESCE(i.nom, '')
		FROM etages e
		LEFT JOIN immeubles i ON e.immeuble_id = i.id
		ORDER BY i.nom, e.numero
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.Floor
	for rows.Next() {
		var f models.Floor
		if err := rows.Scan(&f.ID, &f.ImmeubleID, &f.Numero, &f.ImmeubleNom); err != nil {
			return nil, err
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

func (r *floorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Floor, error) {
	var f models.Floor
	err := r.db.QueryRow(ctx,
		`SELECT id, immeuble_id, numero FROM etages WHERE id=$1`, id,
	).Scan(&f.ID, &f.ImmeubleID, &f.Numero)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *floorRepo) Create(ctx context.Context, f *models.Floor) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO etages (id, immeuble_id, numero) VALUES ($1,$2,$3)`,
		f.ID, f.ImmeubleID, f.Numero)
	return err
}

func (r *floorRepo) Update(ctx context.Context, f *models.Floor) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE etages SET immeuble_id=$1, numero=$2 WHERE id=$3`,
		f.ImmeubleID, f.Numero, f.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *floorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM etages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
