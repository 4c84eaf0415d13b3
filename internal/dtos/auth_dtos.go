package dtos

import "github.com/bahm1979/gestion-locative-backend/internal/models"

type RegisterRequest struct {
	Nom      string `json:"nom" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type UpdateProfileRequest struct {
	Nom   string `json:"nom" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}
