package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/models"
)

type ExpenseRepository interface {
	List(ctx context.Context) ([]*models.Expense, error)
	Create(ctx context.Context, e *models.Expense) error
	MarkPaid(ctx context.Context, id uuid.UUID, datePaiement string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type expenseRepo struct {
	db DB
}

func NewExpenseRepository(db DB) ExpenseRepository {
	return &expenseRepo{db: db}
}

func (r *expenseRepo) List(ctx context.Context) ([]*models.Expense, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.id, d.type, d.montant, d.date_emission, d.description,
		       d.facture_fournisseur_id, d.statut, d.date_paiement,
		       COALESCE(f.nom, ''), COALESCE(i.nom, '')
		FROM depenses d
		LEFT JOIN factures_fournisseurs ff ON d.facture_fournisseur_id = ff.id
		LEFT JOIN fournisseurs f ON ff.fournisseur_id = f.id
		LEFT JOIN immeubles i ON ff.immeuble_id = i.id
		ORDER BY d.date_emission DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.Expense
	for rows.Next() {
		var e models.Expense
		var emission, paiement pgtype.Date
		if err := rows.Scan(&e.ID, &e.Type, &e.Montant, &emission, &e.Description,
			&e.FactureFournisseurID, &e.Statut, &paiement,
			&e.FournisseurNom, &e.ImmeubleNom); err != nil {
			return nil, err
		}
		e.DateEmission = dateString(emission)
		e.DatePaiement = datePtr(paiement)
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (r *expenseRepo) Create(ctx context.Context, e *models.Expense) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO depenses (id, type, montant, date_emission, description, facture_fournisseur_id, statut)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, e.ID, e.Type, e.Montant, e.DateEmission, e.Description, e.FactureFournisseurID, e.Statut)
	return err
}

func (r *expenseRepo) MarkPaid(ctx context.Context, id uuid.UUID, datePaiement string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE depenses SET statut=$1, date_paiement=$2 WHERE id=$3`,
		models.InvoiceStatusPaid, datePaiement, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *expenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM depenses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
