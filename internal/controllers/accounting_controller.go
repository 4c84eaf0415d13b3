package controllers

import (
	"net/http"

	"github.com/bahm1979/gestion-locative-backend/internal/services"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

type AccountingController struct {
	accounting services.AccountingService
}

func NewAccountingController(accounting services.AccountingService) *AccountingController {
	return &AccountingController{accounting: accounting}
}

// BalanceSheet serves GET /comptabilite: paid rent in, paid
// invoices and expenses out.
func (c *AccountingController) BalanceSheet(w http.ResponseWriter, r *http.Request) {
	sheet, err := c.accounting.BalanceSheet(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sheet)
}
