package dtos

import "github.com/google/uuid"

type PaymentRequest struct {
	ContratID    uuid.UUID `json:"contrat_id" validate:"required"`
	Montant      *float64  `json:"montant" validate:"required"`
	DatePaiement string    `json:"date_paiement" validate:"required,datetime=2006-01-02"`
	EstPaye      bool      `json:"est_paye"`
}
