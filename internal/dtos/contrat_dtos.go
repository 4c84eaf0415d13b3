package dtos

import (
	"github.com/google/uuid"

	"github.com/bahm1979/gestion-locative-backend/internal/models"
)

type LeaseRequest struct {
	AppartementID uuid.UUID `json:"appartement_id" validate:"required"`
	LocataireID   uuid.UUID `json:"locataire_id" validate:"required"`
	DateDebut     string    `json:"date_debut" validate:"required,datetime=2006-01-02"`
	DateFin       *string   `json:"date_fin" validate:"omitempty,datetime=2006-01-02"`
	LoyerMensuel  *float64  `json:"loyer_mensuel" validate:"required"`
	Caution       *float64  `json:"caution" validate:"required"`
	// Statut is accepted on update only; create always forces "actif".
	Statut string `json:"statut" validate:"omitempty,oneof=actif termine resilie"`
}

type TerminationRequest struct {
	DateSortie             *string  `json:"dateSortie" validate:"omitempty,datetime=2006-01-02"`
	Motif                  string   `json:"motif" validate:"required,oneof=fin_contrat resiliation"`
	CommentaireEtatLieux   *string  `json:"commentaireEtatLieux"`
	MontantRestitue        *float64 `json:"montantRestitue"`
	CommentaireRestitution *string  `json:"commentaireRestitution"`
}

// TerminationResponse echoes the updated lease plus what the workflow
// recorded on the side.
type TerminationResponse struct {
	Message              string        `json:"message"`
	Contrat              *models.Lease `json:"contrat"`
	AvertissementImpayes *string       `json:"avertissementImpayes"`
	RestitutionID        *uuid.UUID    `json:"restitutionId"`
	EtatLieuxID          *uuid.UUID    `json:"etatLieuxId"`
}
