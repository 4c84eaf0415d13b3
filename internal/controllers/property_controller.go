package controllers

import (
	"net/http"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/services"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

// PropertyController exposes the building hierarchy: villes,
// immeubles, etages and appartements.
type PropertyController struct {
	properties services.PropertyService
}

func NewPropertyController(properties services.PropertyService) *PropertyController {
	return &PropertyController{properties: properties}
}

func (c *PropertyController) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := c.properties.ListCities(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cities)
}

func (c *PropertyController) ListBuildings(w http.ResponseWriter, r *http.Request) {
	buildings, err := c.properties.ListBuildings(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, buildings)
}

func (c *PropertyController) GetBuilding(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	building, err := c.properties.GetBuilding(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, building)
}

func (c *PropertyController) CreateBuilding(w http.ResponseWriter, r *http.Request) {
	var req dtos.BuildingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	building, err := c.properties.CreateBuilding(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, building)
}

func (c *PropertyController) UpdateBuilding(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.BuildingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	building, err := c.properties.UpdateBuilding(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, building)
}

func (c *PropertyController) DeleteBuilding(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.properties.DeleteBuilding(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}

func (c *PropertyController) ListFloors(w http.ResponseWriter, r *http.Request) {
	floors, err := c.properties.ListFloors(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, floors)
}

func (c *PropertyController) CreateFloor(w http.ResponseWriter, r *http.Request) {
	var req dtos.FloorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	floor, err := c.properties.CreateFloor(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, floor)
}

func (c *PropertyController) UpdateFloor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.FloorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	floor, err := c.properties.UpdateFloor(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, floor)
}

func (c *PropertyController) DeleteFloor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.properties.DeleteFloor(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}

func (c *PropertyController) ListApartments(w http.ResponseWriter, r *http.Request) {
	apartments, err := c.properties.ListApartments(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, apartments)
}

func (c *PropertyController) GetApartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	apartment, err := c.properties.GetApartment(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, apartment)
}

func (c *PropertyController) CreateApartment(w http.ResponseWriter, r *http.Request) {
	var req dtos.ApartmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	apartment, err := c.properties.CreateApartment(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, apartment)
}

func (c *PropertyController) UpdateApartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.ApartmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	apartment, err := c.properties.UpdateApartment(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, apartment)
}

func (c *PropertyController) DeleteApartment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.properties.DeleteApartment(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}
