package models

import "github.com/google/uuid"

// Supplier (fournisseur) provides a service to one or more buildings.
type Supplier struct {
	ID          uuid.UUID `json:"id"`
	Nom         string    `json:"nom"`
	Contact     *string   `json:"contact"`
	TypeService string    `json:"type_service"`
}
