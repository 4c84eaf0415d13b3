package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/models"
)

type BuildingRepository interface {
	List(ctx context.Context) ([]*models.Building, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Building, error)
	Create(ctx context.Context, b *models.Building) error
	Update(ctx context.Context, b *models.Building) error
	// DeleteCascade removes the building together with its floors,
	// apartments and leases, deepest first, in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type buildingRepo struct {
	db DB
}

func NewBuildingRepository(db DB) BuildingRepository {
	return &buildingRepo{db: db}
}

func (r *buildingRepo) List(ctx context.Context) ([]*models.Building, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.nom, i.adresse, i.ville_id, i.etages, i.monnaie, COALESCE(v.nom, '')
		FROM immeubles i
		LEFT JOIN villes v ON i.ville_id = v.id
		ORDER BY i.nom
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.Building
	for rows.Next() {
		var b models.Building
		if err := rows.Scan(&b.ID, &b.Nom, &b.Adresse, &b.VilleID, &b.Etages, &b.Monnaie, &b.VilleNom); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

func (r *buildingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Building, error) {
	var b models.Building
	err := r.db.QueryRow(ctx, `
		SELECT id, nom, adresse, ville_id, etages, monnaie FROM immeubles WHERE id=$1
	`, id).Scan(&b.ID, &b.Nom, &b.Adresse, &b.VilleID, &b.Etages, &b.Monnaie)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *buildingRepo) Create(ctx context.Context, b *models.Building) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO immeubles (id, nom, adresse, ville_id, etages, monnaie)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, b.ID, b.Nom, b.Adresse, b.VilleID, b.Etages, b.Monnaie)
	return err
}

func (r *buildingRepo) Update(ctx context.Context, b *models.Building) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE immeubles SET nom=$1, adresse=$2, ville_id=$3, etages=$4, monnaie=$5 WHERE id=$6
	`, b.Nom, b.Adresse, b.VilleID, b.Etages, b.Monnaie, b.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *buildingRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM contrats c
		USING appartements a, etages e
		WHERE c.appartement_id = a.id AND a.etage_id = e.id AND e.immeuble_id = $1
	`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		DELETE FROM appartements a
		USING etages e
		WHERE a.etage_id = e.id AND e.immeuble_id = $1
	`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM etages WHERE immeuble_id=$1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM immeubles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return tx.Commit(ctx)
}
