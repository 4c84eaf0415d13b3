package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Registration always assigns RoleOwner; RoleAdmin is
// granted out of band.
const (
	RoleAdmin = "admin"
	RoleOwner = "proprietaire"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Nom          string    `json:"nom"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Avatar       *string   `json:"avatar"`
	CreatedAt    time.Time `json:"created_at"`
}
