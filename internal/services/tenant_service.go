package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/models"
	"github.com/bahm1979/gestion-locative-backend/internal/repositories"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

type TenantService interface {
	List(ctx context.Context) ([]*models.Tenant, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	Create(ctx context.Context, req dtos.TenantRequest) (*models.Tenant, error)
	Update(ctx context.Context, id uuid.UUID, req dtos.TenantRequest) (*models.Tenant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tenantService struct {
	tenants repositories.TenantRepository
}

func NewTenantService(tenants repositories.TenantRepository) TenantService {
	return &tenantService{tenants: tenants}
}

func (s *tenantService) List(ctx context.Context) ([]*models.Tenant, error) {
	tenants, err := s.tenants.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération des locataires", err)
	}
	return tenants, nil
}

func (s *tenantService) Get(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération du locataire", err)
	}
	if tenant == nil {
		return nil, utils.NewNotFoundError("Locataire non trouvé")
	}
	return tenant, nil
}

func (s *tenantService) Create(ctx context.Context, req dtos.TenantRequest) (*models.Tenant, error) {
	if err := s.checkEmail(ctx, req.Email, uuid.Nil); err != nil {
		return nil, err
	}
	tenant := tenantFromRequest(uuid.New(), req)
	if err := s.tenants.Create(ctx, tenant); err != nil {
		return nil, utils.NewInternalError("Erreur lors de la création du locataire", err)
	}
	return tenant, nil
}

func (s *tenantService) Update(ctx context.Context, id uuid.UUID, req dtos.TenantRequest) (*models.Tenant, error) {
	if err := s.checkEmail(ctx, req.Email, id); err != nil {
		return nil, err
	}
	tenant := tenantFromRequest(id, req)
	if err := s.tenants.Update(ctx, tenant); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.NewNotFoundError("Locataire non trouvé")
		}
		return nil, utils.NewInternalError("Erreur lors de la mise à jour du locataire", err)
	}
	return tenant, nil
}

func (s *tenantService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.tenants.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.NewNotFoundError("Locataire non trouvé")
		}
		return utils.NewInternalError("Erreur lors de la suppression du locataire", err)
	}
	return nil
}

func (s *tenantService) checkEmail(ctx context.Context, email string, excludeID uuid.UUID) error {
	taken, err := s.tenants.EmailTaken(ctx, email, excludeID)
	if err != nil {
		return utils.NewInternalError("Erreur lors de la vérification de l'email", err)
	}
	if taken {
		return utils.NewConflictError("Cet email est déjà utilisé")
	}
	return nil
}

func tenantFromRequest(id uuid.UUID, req dtos.TenantRequest) *models.Tenant {
	return &models.Tenant{
		ID:            id,
		Nom:           req.Nom,
		Email:         req.Email,
		Telephone:     req.Telephone,
		DateNaissance: req.DateNaissance,
		LieuNaissance: req.LieuNaissance,
	}
}
