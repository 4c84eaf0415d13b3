package dtos

type TenantRequest struct {
	Nom           string  `json:"nom" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Telephone     string  `json:"telephone" validate:"required,min=10"`
	DateNaissance *string `json:"date_naissance" validate:"omitempty,datetime=2006-01-02"`
	LieuNaissance *string `json:"lieu_naissance"`
}
