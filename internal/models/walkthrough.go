package models

import "github.com/google/uuid"

const (
	WalkthroughEntry = "entree"
	WalkthroughExit  = "sortie"
)

// Walkthrough (état des lieux) records the condition of the apartment
// at entry or exit.
type Walkthrough struct {
	ID          uuid.UUID `json:"id"`
	ContratID   uuid.UUID `json:"contrat_id"`
	Type        string    `json:"type"`
	Date        string    `json:"date"`
	Commentaire string    `json:"commentaire"`
}
