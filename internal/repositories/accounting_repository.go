package repositories

import "context"

// BalanceSheet is recomputed on every request; nothing is persisted.
type BalanceSheet struct {
	Revenus  float64 `json:"revenus"`
	Depenses float64 `json:"depenses"`
	Bilan    float64 `json:"bilan"`
}

type AccountingRepository interface {
	BalanceSheet(ctx context.Context) (*BalanceSheet, error)
}

type accountingRepo struct {
	db DB
}

func NewAccountingRepository(db DB) AccountingRepository {
	return &accountingRepo{db: db}
}

func (r *accountingRepo) BalanceSheet(ctx context.Context) (*BalanceSheet, error) {
	var bs BalanceSheet
	err := r.db.QueryRow(ctx, `
		SELECT
			COALESCE((SELECT SUM(montant) FROM paiements WHERE est_paye = TRUE), 0),
			COALESCE((SELECT SUM(montant) FROM depenses WHERE statut = 'payee'), 0)
	`).Scan(&bs.Revenus, &bs.Depenses)
	if err != nil {
		return nil, err
	}
	bs.Bilan = bs.Revenus - bs.Depenses
	return &bs, nil
}
