package services

import (
	"context"

	"github.com/bahm1979/gestion-locative-backend/internal/repositories"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

type AccountingService interface {
	BalanceSheet(ctx context.Context) (*repositories.BalanceSheet, error)
}

type accountingService struct {
	accounting repositories.AccountingRepository
}

func NewAccountingService(accounting repositories.AccountingRepository) AccountingService {
	return &accountingService{accounting: accounting}
}

func (s *accountingService) BalanceSheet(ctx context.Context) (*repositories.BalanceSheet, error) {
	sheet, err := s.accounting.BalanceSheet(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors du calcul du bilan", err)
	}
	return sheet, nil
}
