package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/models"
)

type SupplierRepository interface {
	List(ctx context.Context) ([]*models.Supplier, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	Create(ctx context.Context, s *models.Supplier) error
	Update(ctx context.Context, s *models.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierRepo struct {
	db DB
}

func NewSupplierRepository(db DB) SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) List(ctx context.Context) ([]*models.Supplier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nom, contact, type_service FROM fournisseurs ORDER BY nom`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.Supplier
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(&s.ID, &s.Nom, &s.Contact, &s.TypeService); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *supplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var s models.Supplier
	err := r.db.QueryRow(ctx,
		`SELECT id, nom, contact, type_service FROM fournisseurs WHERE id=$1`, id,
	).Scan(&s.ID, &s.Nom, &s.Contact, &s.TypeService)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *supplierRepo) Create(ctx context.Context, s *models.Supplier) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO fournisseurs (id, nom, contact, type_service) VALUES ($1,$2,$3,$4)`,
		s.ID, s.Nom, s.Contact, s.TypeService)
	return err
}

func (r *supplierRepo) Update(ctx context.Context, s *models.Supplier) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE fournisseurs SET nom=$1, contact=$2, type_service=$3 WHERE id=$4`,
		s.Nom, s.Contact, s.TypeService, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *supplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM fournisseurs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
