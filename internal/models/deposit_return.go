package models

import "github.com/google/uuid"

// DepositReturn (restitution de caution) is recorded at lease
// termination only. MontantRestitue never exceeds the lease caution.
type DepositReturn struct {
	ID              uuid.UUID `json:"id"`
	ContratID       uuid.UUID `json:"contrat_id"`
	MontantRestitue float64   `json:"montant_restitue"`
	DateRestitution string    `json:"date_restitution"`
	Commentaire     *string   `json:"commentaire"`
}
