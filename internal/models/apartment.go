package models

import "github.com/google/uuid"

// Apartment (appartement) is a rentable unit on a floor. Balcon and
// CuisineEquipee are stored as 0/1 columns and round-trip as booleans.
type Apartment struct {
	ID             uuid.UUID `json:"id"`
	EtageID        uuid.UUID `json:"etage_id"`
	Numero         string    `json:"numero"`
	Chambres       int       `json:"chambres"`
	SallesDeBain   int       `json:"sallesDeBain"`
	Surface        float64   `json:"surface"`
	Balcon         bool      `json:"balcon"`
	CuisineEquipee bool      `json:"cuisineEquipee"`
	Loyer          float64   `json:"loyer"`

	// Joined via etages for list display.
	ImmeubleID uuid.UUID `json:"immeuble_id,omitempty"`
}
