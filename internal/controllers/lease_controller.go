package controllers

import (
	"net/http"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/services"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

type LeaseController struct {
	leases services.LeaseService
}

func NewLeaseController(leases services.LeaseService) *LeaseController {
	return &LeaseController{leases: leases}
}

func (c *LeaseController) List(w http.ResponseWriter, r *http.Request) {
	leases, err := c.leases.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, leases)
}

func (c *LeaseController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	lease, err := c.leases.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lease)
}

func (c *LeaseController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.LeaseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	lease, err := c.leases.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, lease)
}

func (c *LeaseController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.LeaseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	lease, err := c.leases.Update(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lease)
}

// Terminate runs the tenant exit workflow: POST /contrats/{id}/sortie.
func (c *LeaseController) Terminate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.TerminationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	resp, err := c.leases.Terminate(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *LeaseController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.leases.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}
