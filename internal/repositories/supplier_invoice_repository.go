package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/models"
)

type SupplierInvoiceRepository interface {
	List(ctx context.Context) ([]*models.SupplierInvoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.SupplierInvoice, error)
	Create(ctx context.Context, inv *models.SupplierInvoice) error
	MarkPaid(ctx context.Context, id uuid.UUID, datePaiement string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierInvoiceRepo struct {
	db DB
}

func NewSupplierInvoiceRepository(db DB) SupplierInvoiceRepository {
	return &supplierInvoiceRepo{db: db}
}

func (r *supplierInvoiceRepo) List(ctx context.Context) ([]*models.SupplierInvoice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ff.id, ff.fournisseur_id, ff.immeuble_id, ff.montant, ff.date_emission,
		       ff.description, ff.statut, ff.date_paiement,
		       f.nom, i.nom
		FROM factures_fournisseurs ff
		JOIN fournisseurs f ON ff.fournisseur_id = f.id
		JOIN immeubles i ON ff.immeuble_id = i.id
		ORDER BY ff.date_emission DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.SupplierInvoice
	for rows.Next() {
		inv, err := scanSupplierInvoice(rows, true)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *supplierInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SupplierInvoice, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, fournisseur_id, immeuble_id, montant, date_emission, description, statut, date_paiement
		FROM factures_fournisseurs WHERE id=$1
	`, id)
	inv, err := scanSupplierInvoice(row, false)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *supplierInvoiceRepo) Create(ctx context.Context, inv *models.SupplierInvoice) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO factures_fournisseurs (id, fournisseur_id, immeuble_id, montant, date_emission, description, statut)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, inv.ID, inv.FournisseurID, inv.ImmeubleID, inv.Montant, inv.DateEmission, inv.Description, inv.Statut)
	return err
}

func (r *supplierInvoiceRepo) MarkPaid(ctx context.Context, id uuid.UUID, datePaiement string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE factures_fournisseurs SET statut=$1, date_paiement=$2 WHERE id=$3`,
		models.InvoiceStatusPaid, datePaiement, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *supplierInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM factures_fournisseurs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanSupplierInvoice(row pgx.Row, joined bool) (*models.SupplierInvoice, error) {
	var inv models.SupplierInvoice
	var emission, paiement pgtype.Date
	dest := []any{&inv.ID, &inv.FournisseurID, &inv.ImmeubleID, &inv.Montant,
		&emission, &inv.Description, &inv.Statut, &paiement}
	if joined {
		dest = append(dest, &inv.FournisseurNom, &inv.ImmeubleNom)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	inv.DateEmission = dateString(emission)
	inv.DatePaiement = datePtr(paiement)
	return &inv, nil
}
