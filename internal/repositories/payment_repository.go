package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/models"
)

type PaymentRepository interface {
	List(ctx context.Context) ([]*models.Payment, error)
	ListUnpaid(ctx context.Context) ([]*models.Payment, error)
	MonthlyStats(ctx context.Context) ([]*models.MonthlyPaymentStats, error)
	SumUnpaidByLease(ctx context.Context, leaseID uuid.UUID) (float64, error)
	Create(ctx context.Context, p *models.Payment) error
	Update(ctx context.Context, p *models.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentRepo struct {
	db DB
}

func NewPaymentRepository(db DB) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) List(ctx context.Context) ([]*models.Payment, error) {
	return r.list(ctx, basePaymentSelect()+` ORDER BY p.date_paiement DESC`)
}

func (r *paymentRepo) ListUnpaid(ctx context.Context) ([]*models.Payment, error) {
	return r.list(ctx, basePaymentSelect()+` WHERE p.est_paye = FALSE ORDER BY p.date_paiement DESC`)
}

func (r *paymentRepo) list(ctx context.Context, sql string) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// MonthlyStats aggregates per calendar month, ascending by "YYYY-MM".
func (r *paymentRepo) MonthlyStats(ctx context.Context) ([]*models.MonthlyPaymentStats, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(date_paiement, 'YYYY-MM') AS mois,
		       COALESCE(SUM(montant), 0),
		       COUNT(*),
		       COALESCE(SUM(CASE WHEN est_paye THEN montant ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN NOT est_paye THEN montant ELSE 0 END), 0)
		FROM paiements
		GROUP BY mois
		ORDER BY mois ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.MonthlyPaymentStats
	for rows.Next() {
		var s models.MonthlyPaymentStats
		if err := rows.Scan(&s.Mois, &s.Total, &s.NombrePaiements, &s.TotalPaye, &s.TotalImpaye); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *paymentRepo) SumUnpaidByLease(ctx context.Context, leaseID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(montant), 0) FROM paiements WHERE contrat_id=$1 AND est_paye = FALSE`,
		leaseID,
	).Scan(&total)
	return total, err
}

func (r *paymentRepo) Create(ctx context.Context, p *models.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO paiements (id, contrat_id, montant, date_paiement, est_paye)
		VALUES ($1,$2,$3,$4,$5)
	`, p.ID, p.ContratID, p.Montant, p.DatePaiement, p.EstPaye)
	return err
}

func (r *paymentRepo) Update(ctx context.Context, p *models.Payment) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE paiements SET contrat_id=$1, montant=$2, date_paiement=$3, est_paye=$4 WHERE id=$5
	`, p.ContratID, p.Montant, p.DatePaiement, p.EstPaye, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM paiements WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func basePaymentSelect() string {
	return `
		SELECT p.id, p.contrat_id, p.montant, p.date_paiement, p.est_paye,
		       c.appartement_id, c.locataire_id, COALESCE(l.nom, '')
		FROM paiements p
		LEFT JOIN contrats c ON p.contrat_id = c.id
		LEFT JOIN locataires l ON c.locataire_id = l.id`
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var p models.Payment
	var datePaiement pgtype.Date
	var appartementID, locataireID *uuid.UUID
	if err := row.Scan(&p.ID, &p.ContratID, &p.Montant, &datePaiement, &p.EstPaye,
		&appartementID, &locataireID, &p.LocataireNom); err != nil {
		return nil, err
	}
	p.DatePaiement = dateString(datePaiement)
	if appartementID != nil {
		p.AppartementID = *appartementID
	}
	if locataireID != nil {
		p.LocataireID = *locataireID
	}
	return &p, nil
}
