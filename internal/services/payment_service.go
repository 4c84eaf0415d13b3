package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/models"
	"github.com/bahm1979/gestion-locative-backend/internal/notifier"
	"github.com/bahm1979/gestion-locative-backend/internal/repositories"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

type PaymentService interface {
	List(ctx context.Context) ([]*models.Payment, error)
	ListUnpaid(ctx context.Context) ([]*models.Payment, error)
	MonthlyStats(ctx context.Context) ([]*models.MonthlyPaymentStats, error)
	Create(ctx context.Context, req dtos.PaymentRequest) (*models.Payment, error)
	Update(ctx context.Context, id uuid.UUID, req dtos.PaymentRequest) (*models.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentService struct {
	payments   repositories.PaymentRepository
	leases     repositories.LeaseRepository
	tenants    repositories.TenantRepository
	dispatcher *notifier.Dispatcher
}

func NewPaymentService(
	payments repositories.PaymentRepository,
	leases repositories.LeaseRepository,
	tenants repositories.TenantRepository,
	dispatcher *notifier.Dispatcher,
) PaymentService {
	return &paymentService{
		payments:   payments,
		leases:     leases,
		tenants:    tenants,
		dispatcher: dispatcher,
	}
}

func (s *paymentService) List(ctx context.Context) ([]*models.Payment, error) {
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération des paiements", err)
	}
	return payments, nil
}

func (s *paymentService) ListUnpaid(ctx context.Context) ([]*models.Payment, error) {
	payments, err := s.payments.ListUnpaid(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération des impayés", err)
	}
	return payments, nil
}

func (s *paymentService) MonthlyStats(ctx context.Context) ([]*models.MonthlyPaymentStats, error) {
	stats, err := s.payments.MonthlyStats(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors du calcul des statistiques", err)
	}
	return stats, nil
}

func (s *paymentService) Create(ctx context.Context, req dtos.PaymentRequest) (*models.Payment, error) {
	lease, tenant, err := s.checkLease(ctx, req)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ID:           uuid.New(),
		ContratID:    req.ContratID,
		Montant:      *req.Montant,
		DatePaiement: req.DatePaiement,
		EstPaye:      req.EstPaye,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, utils.NewInternalError("Erreur lors de la création du paiement", err)
	}

	s.dispatcher.Enqueue(notifier.PaymentEmail(
		tenant.Nom, tenant.Email, lease.AppartementNumero,
		payment.Montant, payment.DatePaiement, payment.EstPaye,
	))
	return payment, nil
}

func (s *paymentService) Update(ctx context.Context, id uuid.UUID, req dtos.PaymentRequest) (*models.Payment, error) {
	lease, tenant, err := s.checkLease(ctx, req)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ID:           id,
		ContratID:    req.ContratID,
		Montant:      *req.Montant,
		DatePaiement: req.DatePaiement,
		EstPaye:      req.EstPaye,
	}
	if err := s.payments.Update(ctx, payment); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.NewNotFoundError("Paiement non trouvé")
		}
		return nil, utils.NewInternalError("Erreur lors de la mise à jour du paiement", err)
	}

	s.dispatcher.Enqueue(notifier.PaymentEmail(
		tenant.Nom, tenant.Email, lease.AppartementNumero,
		payment.Montant, payment.DatePaiement, payment.EstPaye,
	))
	return payment, nil
}

func (s *paymentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.payments.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.NewNotFoundError("Paiement non trouvé")
		}
		return utils.NewInternalError("Erreur lors de la suppression du paiement", err)
	}
	return nil
}

func (s *paymentService) checkLease(ctx context.Context, req dtos.PaymentRequest) (*models.Lease, *models.Tenant, error) {
	if *req.Montant < 0 {
		return nil, nil, utils.NewValidationError("Le montant doit être un nombre positif")
	}

	lease, err := s.leases.GetByID(ctx, req.ContratID)
	if err != nil {
		return nil, nil, utils.NewInternalError("Erreur lors de la vérification du contrat", err)
	}
	if lease == nil {
		return nil, nil, utils.NewNotFoundError("Contrat non trouvé")
	}

	tenant, err := s.tenants.GetByID(ctx, lease.LocataireID)
	if err != nil {
		return nil, nil, utils.NewInternalError("Erreur lors de la vérification du locataire", err)
	}
	if tenant == nil {
		return nil, nil, utils.NewNotFoundError("Locataire non trouvé")
	}
	return lease, tenant, nil
}
