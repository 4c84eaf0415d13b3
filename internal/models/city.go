package models

import "github.com/google/uuid"

// City (ville) is reference data: buildings point at a city for
// display and currency defaults.
type City struct {
	ID      uuid.UUID `json:"id"`
	Nom     string    `json:"nom"`
	Pays    string    `json:"pays"`
	Monnaie string    `json:"monnaie"`
}
