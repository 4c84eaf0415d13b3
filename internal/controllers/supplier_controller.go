package controllers

import (
	"net/http"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/services"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

// SupplierController covers fournisseurs, factures fournisseurs and
// dépenses.
type SupplierController struct {
	suppliers services.SupplierService
}

func NewSupplierController(suppliers services.SupplierService) *SupplierController {
	return &SupplierController{suppliers: suppliers}
}

func (c *SupplierController) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := c.suppliers.ListSuppliers(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, suppliers)
}

func (c *SupplierController) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req dtos.SupplierRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	supplier, err := c.suppliers.CreateSupplier(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, supplier)
}

func (c *SupplierController) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.SupplierRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	supplier, err := c.suppliers.UpdateSupplier(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, supplier)
}

func (c *SupplierController) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.suppliers.DeleteSupplier(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}

func (c *SupplierController) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := c.suppliers.ListInvoices(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, invoices)
}

func (c *SupplierController) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req dtos.SupplierInvoiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	invoice, err := c.suppliers.CreateInvoice(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, invoice)
}

// PayInvoice serves PUT /factures-fournisseurs/{id}/payer.
func (c *SupplierController) PayInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.PayRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := c.suppliers.PayInvoice(r.Context(), id, req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Facture marquée comme payée"})
}

func (c *SupplierController) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.suppliers.DeleteInvoice(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}

func (c *SupplierController) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := c.suppliers.ListExpenses(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, expenses)
}

func (c *SupplierController) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req dtos.ExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	expense, err := c.suppliers.CreateExpense(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, expense)
}

// PayExpense serves PUT /depenses/{id}/payer.
func (c *SupplierController) PayExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.PayRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := c.suppliers.PayExpense(r.Context(), id, req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Dépense marquée comme payée"})
}

func (c *SupplierController) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.suppliers.DeleteExpense(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}
