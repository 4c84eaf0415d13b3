package models

import "github.com/google/uuid"

// Lease statuses and termination reasons, as they travel on the wire.
const (
	LeaseStatusActive     = "actif"
	LeaseStatusTerminated = "termine"
	LeaseStatusCancelled  = "resilie"

	TerminationContractEnd  = "fin_contrat"
	TerminationCancellation = "resiliation"
)

// Lease (contrat) binds one apartment to one tenant for a period.
// Dates travel as "2006-01-02" strings; DateFin is nil while the lease
// is open-ended.
type Lease struct {
	ID            uuid.UUID `json:"id"`
	AppartementID uuid.UUID `json:"appartement_id"`
	LocataireID   uuid.UUID `json:"locataire_id"`
	DateDebut     string    `json:"date_debut"`
	DateFin       *string   `json:"date_fin"`
	LoyerMensuel  float64   `json:"loyer_mensuel"`
	Caution       float64   `json:"caution"`
	Statut        string    `json:"statut"`

	// Joined for list display.
	AppartementNumero string `json:"appartement_numero,omitempty"`
	LocataireNom      string `json:"locataire_nom,omitempty"`
}

// Closed reports whether the lease reached a terminal state.
func (l *Lease) Closed() bool {
	return l.Statut == LeaseStatusTerminated || l.Statut == LeaseStatusCancelled
}
