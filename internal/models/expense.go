package models

import "github.com/google/uuid"

// Expense (dépense), optionally backed by a supplier invoice. Paid
// expenses count against revenue in the balance sheet.
type Expense struct {
	ID                   uuid.UUID  `json:"id"`
	Type                 string     `json:"type"`
	Montant              float64    `json:"montant"`
	DateEmission         string     `json:"date_emission"`
	Description          *string    `json:"description"`
	FactureFournisseurID *uuid.UUID `json:"facture_fournisseur_id"`
	Statut               string     `json:"statut"`
	DatePaiement         *string    `json:"date_paiement"`

	// Joined through the invoice link for list display.
	FournisseurNom string `json:"fournisseur_nom,omitempty"`
	ImmeubleNom    string `json:"immeuble_nom,omitempty"`
}
