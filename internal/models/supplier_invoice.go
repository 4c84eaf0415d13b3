package models

import "github.com/google/uuid"

// Invoice and expense payment statuses on the wire.
const (
	InvoiceStatusUnpaid = "non_payee"
	InvoiceStatusPaid   = "payee"
)

// SupplierInvoice (facture fournisseur) bills a building for a
// supplier's work.
type SupplierInvoice struct {
	ID            uuid.UUID `json:"id"`
	FournisseurID uuid.UUID `json:"fournisseur_id"`
	ImmeubleID    uuid.UUID `json:"immeuble_id"`
	Montant       float64   `json:"montant"`
	DateEmission  string    `json:"date_emission"`
	Description   *string   `json:"description"`
	Statut        string    `json:"statut"`
	DatePaiement  *string   `json:"date_paiement"`

	// Joined for list display.
	FournisseurNom string `json:"fournisseur_nom,omitempty"`
	ImmeubleNom    string `json:"immeuble_nom,omitempty"`
}
