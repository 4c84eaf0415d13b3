package models

import "github.com/google/uuid"

// Building (immeuble) groups floors under one address. Etages is the
// declared floor count; floor numbers must stay below it.
type Building struct {
	ID      uuid.UUID `json:"id"`
	Nom     string    `json:"nom"`
	Adresse string    `json:"adresse"`
	VilleID uuid.UUID `json:"ville_id"`
	Etages  int       `json:"etages"`
	Monnaie string    `json:"monnaie"`

	// Joined for list display.
	VilleNom string `json:"ville_nom,omitempty"`
}
