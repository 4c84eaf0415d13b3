package dtos

import "github.com/google/uuid"

type BuildingRequest struct {
	Nom     string    `json:"nom" validate:"required"`
	Adresse string    `json:"adresse" validate:"required"`
	VilleID uuid.UUID `json:"ville_id" validate:"required"`
	Etages  int       `json:"etages" validate:"required,gt=0"`
	Monnaie string    `json:"monnaie" validate:"required"`
}

type FloorRequest struct {
	ImmeubleID uuid.UUID `json:"immeuble_id" validate:"required"`
	Numero     *int      `json:"numero" validate:"required,gte=0"`
}

type ApartmentRequest struct {
	EtageID        uuid.UUID `json:"etage_id" validate:"required"`
	Numero         string    `json:"numero" validate:"required"`
	Chambres       *int      `json:"chambres" validate:"required,gte=0"`
	SallesDeBain   *int      `json:"sallesDeBain" validate:"required,gte=0"`
	Surface        float64   `json:"surface" validate:"required,gt=0"`
	Balcon         bool      `json:"balcon"`
	CuisineEquipee bool      `json:"cuisineEquipee"`
	Loyer          *float64  `json:"loyer" validate:"required,gte=0"`
}
