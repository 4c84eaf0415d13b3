package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/models"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

// Termination bundles the writes of a lease exit so they commit or
// roll back together: an optional deposit return, an optional exit
// walkthrough, and the lease row update itself.
type Termination struct {
	LeaseID     uuid.UUID
	DateSortie  string
	Statut      string
	Restitution *models.DepositReturn
	EtatLieux   *models.Walkthrough
}

type LeaseRepository interface {
	List(ctx context.Context) ([]*models.Lease, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Lease, error)
	// CreateActive inserts the lease inside a serializable transaction
	// that first re-checks the single-active-lease invariant. Returns
	// utils.ErrActiveLeaseExists when another open lease holds the
	// apartment.
	CreateActive(ctx context.Context, l *models.Lease) error
	// UpdateActive applies the same invariant check, excluding the
	// target lease itself.
	UpdateActive(ctx context.Context, l *models.Lease) error
	Terminate(ctx context.Context, t Termination) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type leaseRepo struct {
	db DB
}

func NewLeaseRepository(db DB) LeaseRepository {
	return &leaseRepo{db: db}
}

func (r *leaseRepo) List(ctx context.Context) ([]*models.Lease, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.appartement_id, c.locataire_id, c.date_debut, c.date_fin,
		       c.loyer_mensuel, c.caution, c.statut,
		       COALESCE(a.numero, ''), COALESCE(l.nom, '')
		FROM contrats c
		LEFT JOIN appartements a ON c.appartement_id = a.id
		LEFT JOIN locataires l ON c.locataire_id = l.id
		ORDER BY c.date_debut DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.Lease
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *leaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Lease, error) {
	row := r.db.QueryRow(ctx, `
		SELECT c.id, c.appartement_id, c.locataire_id, c.date_debut, c.date_fin,
		       c.loyer_mensuel, c.caution, c.statut,
		       COALESCE(a.numero, ''), COALESCE(l.nom, '')
		FROM contrats c
		LEFT JOIN appartements a ON c.appartement_id = a.id
		LEFT JOIN locataires l ON c.locataire_id = l.id
		WHERE c.id=$1
	`, id)
	l, err := scanLease(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *leaseRepo) CreateActive(ctx context.Context, l *models.Lease) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	taken, err := activeLeaseExists(ctx, tx, l.AppartementID, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		return utils.ErrActiveLeaseExists
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO contrats (id, appartement_id, locataire_id, date_debut, date_fin, loyer_mensuel, caution, statut)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, l.ID, l.AppartementID, l.LocataireID, l.DateDebut, l.DateFin, l.LoyerMensuel, l.Caution, l.Statut); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *leaseRepo) UpdateActive(ctx context.Context, l *models.Lease) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	taken, err := activeLeaseExists(ctx, tx, l.AppartementID, l.ID)
	if err != nil {
		return err
	}
	if taken {
		return utils.ErrActiveLeaseExists
	}

	tag, err := tx.Exec(ctx, `
		UPDATE contrats
		SET appartement_id=$1, locataire_id=$2, date_debut=$3, date_fin=$4,
		    loyer_mensuel=$5, caution=$6, statut=$7
		WHERE id=$8
	`, l.AppartementID, l.LocataireID, l.DateDebut, l.DateFin, l.LoyerMensuel, l.Caution, l.Statut, l.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return tx.Commit(ctx)
}

func (r *leaseRepo) Terminate(ctx context.Context, t Termination) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if rst := t.Restitution; rst != nil {
		if _, err := tx.Exec(ctx, `
			INSERT INTO restitutions (id, contrat_id, montant_restitue, date_restitution, commentaire)
			VALUES ($1,$2,$3,$4,$5)
		`, rst.ID, rst.ContratID, rst.MontantRestitue, rst.DateRestitution, rst.Commentaire); err != nil {
			return err
		}
	}
	if edl := t.EtatLieux; edl != nil {
		if _, err := tx.Exec(ctx, `
			INSERT INTO etats_lieux (id, contrat_id, type, date, commentaire)
			VALUES ($1,$2,$3,$4,$5)
		`, edl.ID, edl.ContratID, edl.Type, edl.Date, edl.Commentaire); err != nil {
			return err
		}
	}

	tag, err := tx.Exec(ctx,
		`UPDATE contrats SET date_fin=$1, statut=$2 WHERE id=$3`,
		t.DateSortie, t.Statut, t.LeaseID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return tx.Commit(ctx)
}

func (r *leaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contrats WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// A lease holds the apartment while its end date is open or its status
// is still "actif".
func activeLeaseExists(ctx context.Context, tx pgx.Tx, apartmentID, excludeID uuid.UUID) (bool, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		SELECT id FROM contrats
		WHERE appartement_id=$1 AND (date_fin IS NULL OR statut=$2) AND id<>$3
		LIMIT 1
	`, apartmentID, models.LeaseStatusActive, excludeID).Scan(&id)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func scanLease(row pgx.Row) (*models.Lease, error) {
	var l models.Lease
	var debut, fin pgtype.Date
	if err := row.Scan(&l.ID, &l.AppartementID, &l.LocataireID, &debut, &fin,
		&l.LoyerMensuel, &l.Caution, &l.Statut, &l.AppartementNumero, &l.LocataireNom); err != nil {
		return nil, err
	}
	l.DateDebut = dateString(debut)
	l.DateFin = datePtr(fin)
	return &l, nil
}
