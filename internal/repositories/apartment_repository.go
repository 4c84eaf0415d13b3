package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/models"
)

type ApartmentRepository interface {
	List(ctx context.Context) ([]*models.Apartment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Apartment, error)
	Create(ctx context.Context, a *models.Apartment) error
	Update(ctx context.Context, a *models.Apartment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type apartmentRepo struct {
	db DB
}

func NewApartmentRepository(db DB) ApartmentRepository {
	return &apartmentRepo{db: db}
}

func (r *apartmentRepo) List(ctx context.Context) ([]*models.Apartment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.etage_id, a.numero, a.chambres, a.salles_de_bain, a.surface,
		       a.balcon, a.cuisine_equipee, a.loyer, e.immeuble_id
		FROM appartements a
		LEFT JOIN etages e ON a.etage_id = e.id
		ORDER BY a.numero
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.Apartment
	for rows.Next() {
		a, err := scanApartment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *apartmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Apartment, error) {
	row := r.db.QueryRow(ctx, `
		SELECT a.id, a.etage_id, a.numero, a.chambres, a.salles_de_bain, a.surface,
		       a.balcon, a.cuisine_equipee, a.loyer, e.immeuble_id
		FROM appartements a
		LEFT JOIN etages e ON a.etage_id = e.id
		WHERE a.id=$1
	`, id)
	a, err := scanApartment(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *apartmentRepo) Create(ctx context.Context, a *models.Apartment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO appartements (id, etage_id, numero, chambres, salles_de_bain, surface, balcon, cuisine_equipee, loyer)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, a.ID, a.EtageID, a.Numero, a.Chambres, a.SallesDeBain, a.Surface,
		boolToInt(a.Balcon), boolToInt(a.CuisineEquipee), a.Loyer)
	return err
}

func (r *apartmentRepo) Update(ctx context.Context, a *models.Apartment) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE appartements
		SET etage_id=$1, numero=$2, chambres=$3, salles_de_bain=$4, surface=$5,
		    balcon=$6, cuisine_equipee=$7, loyer=$8
		WHERE id=$9
	`, a.EtageID, a.Numero, a.Chambres, a.SallesDeBain, a.Surface,
		boolToInt(a.Balcon), boolToInt(a.CuisineEquipee), a.Loyer, a.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *apartmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appartements WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Boolean-like columns are stored as 0/1 smallints and surfaced as
// booleans on the wire.
func boolToInt(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

func scanApartment(row pgx.Row) (*models.Apartment, error) {
	var a models.Apartment
	var balcon, cuisine int16
	var immeubleID *uuid.UUID
	if err := row.Scan(&a.ID, &a.EtageID, &a.Numero, &a.Chambres, &a.SallesDeBain,
		&a.Surface, &balcon, &cuisine, &a.Loyer, &immeubleID); err != nil {
		return nil, err
	}
	a.Balcon = balcon != 0
	a.CuisineEquipee = cuisine != 0
	if immeubleID != nil {
		a.ImmeubleID = *immeubleID
	}
	return &a, nil
}
