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

// SupplierService covers suppliers, their invoices and standalone
// expenses.
type SupplierService interface {
	ListSuppliers(ctx context.Context) ([]*models.Supplier, error)
	CreateSupplier(ctx context.Context, req dtos.SupplierRequest) (*models.Supplier, error)
	UpdateSupplier(ctx context.Context, id uuid.UUID, req dtos.SupplierRequest) (*models.Supplier, error)
	DeleteSupplier(ctx context.Context, id uuid.UUID) error

	ListInvoices(ctx context.Context) ([]*models.SupplierInvoice, error)
	CreateInvoice(ctx context.Context, req dtos.SupplierInvoiceRequest) (*models.SupplierInvoice, error)
	PayInvoice(ctx context.Context, id uuid.UUID, req dtos.PayRequest) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error

	ListExpenses(ctx context.Context) ([]*models.Expense, error)
	CreateExpense(ctx context.Context, req dtos.ExpenseRequest) (*models.Expense, error)
	PayExpense(ctx context.Context, id uuid.UUID, req dtos.PayRequest) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	suppliers repositories.SupplierRepository
	invoices  repositories.SupplierInvoiceRepository
	expenses  repositories.ExpenseRepository
	buildings repositories.BuildingRepository
}

func NewSupplierService(
	suppliers repositories.SupplierRepository,
	invoices repositories.SupplierInvoiceRepository,
	expenses repositories.ExpenseRepository,
	buildings repositories.BuildingRepository,
) SupplierService {
	return &supplierService{
		suppliers: suppliers,
		invoices:  invoices,
		expenses:  expenses,
		buildings: buildings,
	}
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]*models.Supplier, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération des fournisseurs", err)
	}
	return suppliers, nil
}

func (s *supplierService) CreateSupplier(ctx context.Context, req dtos.SupplierRequest) (*models.Supplier, error) {
	supplier := &models.Supplier{
		ID:          uuid.New(),
		Nom:         req.Nom,
		Contact:     req.Contact,
		TypeService: req.TypeService,
	}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return nil, utils.NewInternalError("Erreur lors de la création du fournisseur", err)
	}
	return supplier, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, req dtos.SupplierRequest) (*models.Supplier, error) {
	supplier := &models.Supplier{
		ID:          id,
		Nom:         req.Nom,
		Contact:     req.Contact,
		TypeService: req.TypeService,
	}
	if err := s.suppliers.Update(ctx, supplier); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.NewNotFoundError("Fournisseur non trouvé")
		}
		return nil, utils.NewInternalError("Erreur lors de la mise à jour du fournisseur", err)
	}
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	if err := s.suppliers.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.NewNotFoundError("Fournisseur non trouvé")
		}
		return utils.NewInternalError("Erreur lors de la suppression du fournisseur", err)
	}
	return nil
}

func (s *supplierService) ListInvoices(ctx context.Context) ([]*models.SupplierInvoice, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération des factures", err)
	}
	return invoices, nil
}

func (s *supplierService) CreateInvoice(ctx context.Context, req dtos.SupplierInvoiceRequest) (*models.SupplierInvoice, error) {
	if *req.Montant < 0 {
		return nil, utils.NewValidationError("Le montant doit être un nombre positif")
	}
	supplier, err := s.suppliers.GetByID(ctx, req.FournisseurID)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la vérification du fournisseur", err)
	}
	if supplier == nil {
		return nil, utils.NewNotFoundError("Fournisseur non trouvé")
	}
	building, err := s.buildings.GetByID(ctx, req.ImmeubleID)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la vérification de l'immeuble", err)
	}
	if building == nil {
		return nil, utils.NewNotFoundError("Immeuble non trouvé")
	}

	invoice := &models.SupplierInvoice{
		ID:            uuid.New(),
		FournisseurID: req.FournisseurID,
		ImmeubleID:    req.ImmeubleID,
		Montant:       *req.Montant,
		DateEmission:  req.DateEmission,
		Description:   req.Description,
		Statut:        models.InvoiceStatusUnpaid,
	}
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, utils.NewInternalError("Erreur lors de la création de la facture", err)
	}
	return invoice, nil
}

func (s *supplierService) PayInvoice(ctx context.Context, id uuid.UUID, req dtos.PayRequest) error {
	if err := s.invoices.MarkPaid(ctx, id, req.DatePaiement); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.NewNotFoundError("Facture non trouvée")
		}
		return utils.NewInternalError("Erreur lors du paiement de la facture", err)
	}
	return nil
}

func (s *supplierService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if err := s.invoices.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.NewNotFoundError("Facture non trouvée")
		}
		return utils.NewInternalError("Erreur lors de la suppression de la facture", err)
	}
	return nil
}

func (s *supplierService) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération des dépenses", err)
	}
	return expenses, nil
}

func (s *supplierService) CreateExpense(ctx context.Context, req dtos.ExpenseRequest) (*models.Expense, error) {
	if *req.Montant < 0 {
		return nil, utils.NewValidationError("Le montant doit être un nombre positif")
	}
	if req.FactureFournisseurID != nil {
		invoice, err := s.invoices.GetByID(ctx, *req.FactureFournisseurID)
		if err != nil {
			return nil, utils.NewInternalError("Erreur lors de la vérification de la facture", err)
		}
		if invoice == nil {
			return nil, utils.NewNotFoundError("Facture non trouvée")
		}
	}

	expense := &models.Expense{
		ID:                   uuid.New(),
		Type:                 req.Type,
		Montant:              *req.Montant,
		DateEmission:         req.DateEmission,
		Description:          req.Description,
		FactureFournisseurID: req.FactureFournisseurID,
		Statut:               models.InvoiceStatusUnpaid,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, utils.NewInternalError("Erreur lors de la création de la dépense", err)
	}
	return expense, nil
}

func (s *supplierService) PayExpense(ctx context.Context, id uuid.UUID, req dtos.PayRequest) error {
	if err := s.expenses.MarkPaid(ctx, id, req.DatePaiement); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.NewNotFoundError("Dépense non trouvée")
		}
		return utils.NewInternalError("Erreur lors du paiement de la dépense", err)
	}
	return nil
}

func (s *supplierService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	if err := s.expenses.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.NewNotFoundError("Dépense non trouvée")
		}
		return utils.NewInternalError("Erreur lors de la suppression de la dépense", err)
	}
	return nil
}
