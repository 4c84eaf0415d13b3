package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/models"
)

type TenantRepository interface {
	List(ctx context.Context) ([]*models.Tenant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	Create(ctx context.Context, t *models.Tenant) error
	Update(ctx context.Context, t *models.Tenant) error
	// DeleteCascade removes payments, then leases, then the tenant row,
	// in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
}

type tenantRepo struct {
	db DB
}

func NewTenantRepository(db DB) TenantRepository {
	return &tenantRepo{db: db}
}

func (r *tenantRepo) List(ctx context.Context) ([]*models.Tenant, error) {
	rows, err := r.db.Query(ctx, baseSelectTenant()+` ORDER BY nom`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *tenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	row := r.db.QueryRow(ctx, baseSelectTenant()+` WHERE id=$1`, id)
	t, err := scanTenant(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO locataires (id, nom, email, telephone, date_naissance, lieu_naissance)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, t.ID, t.Nom, t.Email, t.Telephone, t.DateNaissance, t.LieuNaissance)
	return err
}

func (r *tenantRepo) Update(ctx context.Context, t *models.Tenant) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE locataires
		SET nom=$1, email=$2, telephone=$3, date_naissance=$4, lieu_naissance=$5
		WHERE id=$6
	`, t.Nom, t.Email, t.Telephone, t.DateNaissance, t.LieuNaissance, t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *tenantRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM paiements p
		USING contrats c
		WHERE p.contrat_id = c.id AND c.locataire_id = $1
	`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM contrats WHERE locataire_id=$1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM locataires WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return tx.Commit(ctx)
}

func (r *tenantRepo) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`SELECT id FROM locataires WHERE email=$1 AND id<>$2`, email, excludeID,
	).Scan(&id)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func baseSelectTenant() string {
	return `SELECT id, nom, email, telephone, date_naissance, lieu_naissance FROM locataires`
}

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	var t models.Tenant
	var naissance pgtype.Date
	if err := row.Scan(&t.ID, &t.Nom, &t.Email, &t.Telephone, &naissance, &t.LieuNaissance); err != nil {
		return nil, err
	}
	t.DateNaissance = datePtr(naissance)
	return &t, nil
}
