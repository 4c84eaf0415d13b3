package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/models"
	"github.com/bahm1979/gestion-locative-backend/internal/notifier"
	"github.com/bahm1979/gestion-locative-backend/internal/repositories"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

const dateLayout = "2006-01-02"

type LeaseService interface {
	List(ctx context.Context) ([]*models.Lease, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Lease, error)
	Create(ctx context.Context, req dtos.LeaseRequest) (*models.Lease, error)
	Update(ctx context.Context, id uuid.UUID, req dtos.LeaseRequest) (*models.Lease, error)
	Terminate(ctx context.Context, id uuid.UUID, req dtos.TerminationRequest) (*dtos.TerminationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type leaseService struct {
	leases     repositories.LeaseRepository
	payments   repositories.PaymentRepository
	apartments repositories.ApartmentRepository
	tenants    repositories.TenantRepository
	dispatcher *notifier.Dispatcher

	// now is swapped out in tests; the termination date math depends
	// on the current day.
	now func() time.Time
}

func NewLeaseService(
	leases repositories.LeaseRepository,
	payments repositories.PaymentRepository,
	apartments repositories.ApartmentRepository,
	tenants repositories.TenantRepository,
	dispatcher *notifier.Dispatcher,
) LeaseService {
	return &leaseService{
		leases:     leases,
		payments:   payments,
		apartments: apartments,
		tenants:    tenants,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

func (s *leaseService) List(ctx context.Context) ([]*models.Lease, error) {
	leases, err := s.leases.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération des contrats", err)
	}
	return leases, nil
}

func (s *leaseService) Get(ctx context.Context, id uuid.UUID) (*models.Lease, error) {
	lease, err := s.leases.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération du contrat", err)
	}
	if lease == nil {
		return nil, utils.NewNotFoundError("Contrat non trouvé")
	}
	return lease, nil
}

func (s *leaseService) Create(ctx context.Context, req dtos.LeaseRequest) (*models.Lease, error) {
	apartment, tenant, err := s.checkReferences(ctx, req)
	if err != nil {
		return nil, err
	}

	lease := &models.Lease{
		ID:            uuid.New(),
		AppartementID: req.AppartementID,
		LocataireID:   req.LocataireID,
		DateDebut:     req.DateDebut,
		DateFin:       req.DateFin,
		LoyerMensuel:  *req.LoyerMensuel,
		Caution:       *req.Caution,
		Statut:        models.LeaseStatusActive,
	}
	if err := s.leases.CreateActive(ctx, lease); err != nil {
		if errors.Is(err, utils.ErrActiveLeaseExists) {
			return nil, utils.NewConflictError("Un contrat actif existe déjà pour cet appartement")
		}
		return nil, utils.NewInternalError("Erreur lors de la création du contrat", err)
	}

	s.dispatcher.Enqueue(notifier.LeaseCreatedEmail(
		tenant.Nom, tenant.Email, apartment.Numero,
		lease.DateDebut, lease.DateFin, lease.LoyerMensuel, lease.Caution,
	))
	return lease, nil
}

func (s *leaseService) Update(ctx context.Context, id uuid.UUID, req dtos.LeaseRequest) (*models.Lease, error) {
	apartment, tenant, err := s.checkReferences(ctx, req)
	if err != nil {
		return nil, err
	}

	statut := req.Statut
	if statut == "" {
		statut = models.LeaseStatusActive
	}
	lease := &models.Lease{
		ID:            id,
		AppartementID: req.AppartementID,
		LocataireID:   req.LocataireID,
		DateDebut:     req.DateDebut,
		DateFin:       req.DateFin,
		LoyerMensuel:  *req.LoyerMensuel,
		Caution:       *req.Caution,
		Statut:        statut,
	}
	if err := s.leases.UpdateActive(ctx, lease); err != nil {
		if errors.Is(err, utils.ErrActiveLeaseExists) {
			return nil, utils.NewConflictError("Un autre contrat actif existe déjà pour cet appartement")
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.NewNotFoundError("Contrat non trouvé")
		}
		return nil, utils.NewInternalError("Erreur lors de la mise à jour du contrat", err)
	}

	s.dispatcher.Enqueue(notifier.LeaseUpdatedEmail(
		tenant.Nom, tenant.Email, apartment.Numero,
		lease.DateDebut, lease.DateFin, lease.LoyerMensuel, lease.Caution, lease.Statut,
	))
	return lease, nil
}

func (s *leaseService) Terminate(ctx context.Context, id uuid.UUID, req dtos.TerminationRequest) (*dtos.TerminationResponse, error) {
	if req.MontantRestitue != nil && *req.MontantRestitue < 0 {
		return nil, utils.NewValidationError("Le montant restitué doit être un nombre positif ou zéro")
	}

	lease, err := s.leases.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération du contrat", err)
	}
	if lease == nil {
		return nil, utils.NewNotFoundError("Contrat non trouvé")
	}
	if lease.Closed() {
		return nil, utils.NewValidationError("Le contrat est déjà terminé ou résilié")
	}

	dateSortie, statut, err := s.resolveExit(lease, req)
	if err != nil {
		return nil, err
	}

	// Unpaid rent never blocks the exit; it only produces a warning.
	totalImpayes, err := s.payments.SumUnpaidByLease(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors du calcul des impayés", err)
	}
	var warning *string
	if totalImpayes > 0 {
		w := fmt.Sprintf("Attention : %s d'impayés détectés", notifier.FormatMontant(totalImpayes))
		warning = &w
	}

	termination := repositories.Termination{
		LeaseID:    id,
		DateSortie: dateSortie,
		Statut:     statut,
	}
	if lease.Caution > 0 && req.MontantRestitue != nil {
		if *req.MontantRestitue > lease.Caution {
			return nil, utils.NewValidationError("Le montant restitué ne peut pas dépasser la caution")
		}
		termination.Restitution = &models.DepositReturn{
			ID:              uuid.New(),
			ContratID:       id,
			MontantRestitue: *req.MontantRestitue,
			DateRestitution: dateSortie,
			Commentaire:     req.CommentaireRestitution,
		}
	}
	if req.CommentaireEtatLieux != nil && *req.CommentaireEtatLieux != "" {
		termination.EtatLieux = &models.Walkthrough{
			ID:          uuid.New(),
			ContratID:   id,
			Type:        models.WalkthroughExit,
			Date:        dateSortie,
			Commentaire: *req.CommentaireEtatLieux,
		}
	}

	if err := s.leases.Terminate(ctx, termination); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.NewNotFoundError("Échec de la mise à jour du contrat")
		}
		return nil, utils.NewInternalError("Erreur lors de la sortie du locataire", err)
	}

	if tenant, terr := s.tenants.GetByID(ctx, lease.LocataireID); terr == nil && tenant != nil {
		var montantRestitue *float64
		if termination.Restitution != nil {
			montantRestitue = &termination.Restitution.MontantRestitue
		}
		s.dispatcher.Enqueue(notifier.LeaseTerminatedEmail(
			tenant.Nom, tenant.Email, lease.AppartementNumero,
			dateSortie, montantRestitue, totalImpayes,
		))
	}

	updated := *lease
	updated.DateFin = &dateSortie
	updated.Statut = statut

	resp := &dtos.TerminationResponse{
		Message:              "Sortie du locataire enregistrée",
		Contrat:              &updated,
		AvertissementImpayes: warning,
	}
	if termination.Restitution != nil {
		resp.RestitutionID = &termination.Restitution.ID
	}
	if termination.EtatLieux != nil {
		resp.EtatLieuxID = &termination.EtatLieux.ID
	}
	return resp, nil
}

func (s *leaseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.leases.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.NewNotFoundError("Contrat non trouvé")
		}
		return utils.NewInternalError("Erreur lors de la suppression du contrat", err)
	}
	return nil
}

// resolveExit computes the effective exit date and the lease's new
// status from the termination reason. Dates compare day for day; the
// hour never matters.
func (s *leaseService) resolveExit(lease *models.Lease, req dtos.TerminationRequest) (string, string, error) {
	today := dateOnly(s.now())

	switch req.Motif {
	case models.TerminationCancellation:
		// One month of notice. A supplied date exactly on the boundary
		// is accepted.
		minExit := today.AddDate(0, 1, 0)
		if req.DateSortie != nil {
			supplied, err := time.Parse(dateLayout, *req.DateSortie)
			if err != nil {
				return "", "", utils.NewValidationError("Date de sortie invalide")
			}
			if supplied.Before(minExit) {
				return "", "", utils.NewValidationError("La date de résiliation doit respecter le préavis d'un mois")
			}
			return supplied.Format(dateLayout), models.LeaseStatusCancelled, nil
		}
		return minExit.Format(dateLayout), models.LeaseStatusCancelled, nil

	case models.TerminationContractEnd:
		if req.DateSortie != nil {
			supplied, err := time.Parse(dateLayout, *req.DateSortie)
			if err != nil {
				return "", "", utils.NewValidationError("Date de sortie invalide")
			}
			if supplied.Before(today) {
				return "", "", utils.NewValidationError("La date de fin de contrat ne peut pas être antérieure à aujourd'hui")
			}
			return supplied.Format(dateLayout), models.LeaseStatusTerminated, nil
		}
		if lease.DateFin != nil && *lease.DateFin != "" {
			return *lease.DateFin, models.LeaseStatusTerminated, nil
		}
		return today.Format(dateLayout), models.LeaseStatusTerminated, nil

	default:
		return "", "", utils.NewValidationError("Motif de sortie invalide")
	}
}

func (s *leaseService) checkReferences(ctx context.Context, req dtos.LeaseRequest) (*models.Apartment, *models.Tenant, error) {
	if *req.LoyerMensuel < 0 {
		return nil, nil, utils.NewValidationError("Le loyer_mensuel doit être un nombre positif")
	}
	if *req.Caution < 0 {
		return nil, nil, utils.NewValidationError("La caution doit être un nombre positif ou zéro")
	}

	apartment, err := s.apartments.GetByID(ctx, req.AppartementID)
	if err != nil {
		return nil, nil, utils.NewInternalError("Erreur lors de la vérification de l'appartement", err)
	}
	if apartment == nil {
		return nil, nil, utils.NewNotFoundError("Appartement non trouvé")
	}

	tenant, err := s.tenants.GetByID(ctx, req.LocataireID)
	if err != nil {
		return nil, nil, utils.NewInternalError("Erreur lors de la vérification du locataire", err)
	}
	if tenant == nil {
		return nil, nil, utils.NewNotFoundError("Locataire non trouvé")
	}
	return apartment, tenant, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
