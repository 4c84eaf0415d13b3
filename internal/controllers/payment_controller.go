package controllers

import (
	"net/http"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/services"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

type PaymentController struct {
	payments services.PaymentService
}

func NewPaymentController(payments services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

func (c *PaymentController) List(w http.ResponseWriter, r *http.Request) {
	payments, err := c.payments.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// ListUnpaid serves GET /paiements/impayes.
func (c *PaymentController) ListUnpaid(w http.ResponseWriter, r *http.Request) {
	payments, err := c.payments.ListUnpaid(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// MonthlyStats serves GET /paiements/stats, one row per "YYYY-MM".
func (c *PaymentController) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.payments.MonthlyStats(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

func (c *PaymentController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.PaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	payment, err := c.payments.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, payment)
}

func (c *PaymentController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.PaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	payment, err := c.payments.Update(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payment)
}

func (c *PaymentController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.payments.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}
