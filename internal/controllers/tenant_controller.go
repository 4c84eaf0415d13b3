package controllers

import (
	"net/http"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/services"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

type TenantController struct {
	tenants services.TenantService
}

func NewTenantController(tenants services.TenantService) *TenantController {
	return &TenantController{tenants: tenants}
}

func (c *TenantController) List(w http.ResponseWriter, r *http.Request) {
	tenants, err := c.tenants.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenants)
}

func (c *TenantController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	tenant, err := c.tenants.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

func (c *TenantController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.TenantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	tenant, err := c.tenants.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, tenant)
}

func (c *TenantController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.TenantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	tenant, err := c.tenants.Update(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

func (c *TenantController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.tenants.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}
