package models

import "github.com/google/uuid"

// Tenant (locataire). Email is unique across tenants.
type Tenant struct {
	ID             uuid.UUID `json:"id"`
	Nom            string    `json:"nom"`
	Email          string    `json:"email"`
	Telephone      string    `json:"telephone"`
	DateNaissance  *string   `json:"date_naissance"`
	LieuNaissance  *string   `json:"lieu_naissance"`
}
