package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/models"
)

type CityRepository interface {
	List(ctx context.Context) ([]*models.City, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.City, error)
}

type cityRepo struct {
	db DB
}

func NewCityRepository(db DB) CityRepository {
	return &cityRepo{db: db}
}

func (r *cityRepo) List(ctx context.Context) ([]*models.City, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nom, pays, monnaie FROM villes ORDER BY nom`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.City
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Nom, &c.Pays, &c.Monnaie); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *cityRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.City, error) {
	var c models.City
	err := r.db.QueryRow(ctx,
		`SELECT id, nom, pays, monnaie FROM villes WHERE id=$1`, id,
	).Scan(&c.ID, &c.Nom, &c.Pays, &c.Monnaie)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
