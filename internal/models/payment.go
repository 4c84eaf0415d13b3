package models

import "github.com/google/uuid"

// Payment (paiement). EstPaye=false marks an arrear (impayé).
type Payment struct {
	ID           uuid.UUID `json:"id"`
	ContratID    uuid.UUID `json:"contrat_id"`
	Montant      float64   `json:"montant"`
	DatePaiement string    `json:"date_paiement"`
	EstPaye      bool      `json:"est_paye"`

	// Joined via contrats for list display.
	AppartementID uuid.UUID `json:"appartement_id,omitempty"`
	LocataireID   uuid.UUID `json:"locataire_id,omitempty"`
	LocataireNom  string    `json:"locataire_nom,omitempty"`
}

// MonthlyPaymentStats is one aggregation row of GET /paiements/stats,
// keyed by "YYYY-MM".
type MonthlyPaymentStats struct {
	Mois            string  `json:"mois"`
	Total           float64 `json:"total"`
	NombrePaiements int     `json:"nombre_paiements"`
	TotalPaye       float64 `json:"total_paye"`
	TotalImpaye     float64 `json:"total_impaye"`
}
