package models

import "github.com/google/uuid"

// Floor (etage) is a level within a building.
type Floor struct {
	ID         uuid.UUID `json:"id"`
	ImmeubleID uuid.UUID `json:"immeuble_id"`
	Numero     int       `json:"numero"`

	ImmeubleNom string `json:"immeuble_nom,omitempty"`
}
