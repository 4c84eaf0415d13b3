package dtos

import "github.com/google/uuid"

type SupplierRequest struct {
	Nom         string  `json:"nom" validate:"required"`
	Contact     *string `json:"contact"`
	TypeService string  `json:"type_service" validate:"required"`
}

type SupplierInvoiceRequest struct {
	FournisseurID uuid.UUID `json:"fournisseur_id" validate:"required"`
	ImmeubleID    uuid.UUID `json:"immeuble_id" validate:"required"`
	Montant       *float64  `json:"montant" validate:"required"`
	DateEmission  string    `json:"date_emission" validate:"required,datetime=2006-01-02"`
	Description   *string   `json:"description"`
}

type ExpenseRequest struct {
	Type                 string     `json:"type" validate:"required"`
	Montant              *float64   `json:"montant" validate:"required"`
	DateEmission         string     `json:"date_emission" validate:"required,datetime=2006-01-02"`
	Description          *string    `json:"description"`
	FactureFournisseurID *uuid.UUID `json:"facture_fournisseur_id"`
}

type PayRequest struct {
	DatePaiement string `json:"date_paiement" validate:"required,datetime=2006-01-02"`
}
