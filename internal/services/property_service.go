package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/models"
	"github.com/bahm1979/gestion-locative-backend/internal/repositories"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

// PropertyService groups the building hierarchy: cities, buildings,
// floors and apartments.
type PropertyService interface {
	ListCities(ctx context.Context) ([]*models.City, error)

	ListBuildings(ctx context.Context) ([]*models.Building, error)
	GetBuilding(ctx context.Context, id uuid.UUID) (*models.Building, error)
	CreateBuilding(ctx context.Context, req dtos.BuildingRequest) (*models.Building, error)
	UpdateBuilding(ctx context.Context, id uuid.UUID, req dtos.BuildingRequest) (*models.Building, error)
	DeleteBuilding(ctx context.Context, id uuid.UUID) error

	ListFloors(ctx context.Context) ([]*models.Floor, error)
	CreateFloor(ctx context.Context, req dtos.FloorRequest) (*models.Floor, error)
	UpdateFloor(ctx context.Context, id uuid.UUID, req dtos.FloorRequest) (*models.Floor, error)
	DeleteFloor(ctx context.Context, id uuid.UUID) error

	ListApartments(ctx context.Context) ([]*models.Apartment, error)
	GetApartment(ctx context.Context, id uuid.UUID) (*models.Apartment, error)
	CreateApartment(ctx context.Context, req dtos.ApartmentRequest) (*models.Apartment, error)
	UpdateApartment(ctx context.Context, id uuid.UUID, req dtos.ApartmentRequest) (*models.Apartment, error)
	DeleteApartment(ctx context.Context, id uuid.UUID) error
}

type propertyService struct {
	cities     repositories.CityRepository
	buildings  repositories.BuildingRepository
	floors     repositories.FloorRepository
	apartments repositories.ApartmentRepository
}

func NewPropertyService(
	cities repositories.CityRepository,
	buildings repositories.BuildingRepository,
	floors repositories.FloorRepository,
	apartments repositories.ApartmentRepository,
) PropertyService {
	return &propertyService{
		cities:     cities,
		buildings:  buildings,
		floors:     floors,
		apartments: apartments,
	}
}

func (s *propertyService) ListCities(ctx context.Context) ([]*models.City, error) {
	cities, err := s.cities.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération des villes", err)
	}
	return cities, nil
}

func (s *propertyService) ListBuildings(ctx context.Context) ([]*models.Building, error) {
	buildings, err := s.buildings.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération des immeubles", err)
	}
	return buildings, nil
}

func (s *propertyService) GetBuilding(ctx context.Context, id uuid.UUID) (*models.Building, error) {
	building, err := s.buildings.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération de l'immeuble", err)
	}
	if building == nil {
		return nil, utils.NewNotFoundError("Immeuble non trouvé")
	}
	return building, nil
}

func (s *propertyService) CreateBuilding(ctx context.Context, req dtos.BuildingRequest) (*models.Building, error) {
	if err := s.checkCity(ctx, req.VilleID); err != nil {
		return nil, err
	}
	building := buildingFromRequest(uuid.New(), req)
	if err := s.buildings.Create(ctx, building); err != nil {
		return nil, utils.NewInternalError("Erreur lors de la création de l'immeuble", err)
	}
	return building, nil
}

func (s *propertyService) UpdateBuilding(ctx context.Context, id uuid.UUID, req dtos.BuildingRequest) (*models.Building, error) {
	if err := s.checkCity(ctx, req.VilleID); err != nil {
		return nil, err
	}
	building := buildingFromRequest(id, req)
	if err := s.buildings.Update(ctx, building); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.NewNotFoundError("Immeuble non trouvé")
		}
		return nil, utils.NewInternalError("Erreur lors de la mise à jour de l'immeuble", err)
	}
	return building, nil
}

func (s *propertyService) DeleteBuilding(ctx context.Context, id uuid.UUID) error {
	if err := s.buildings.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.NewNotFoundError("Immeuble non trouvé")
		}
		return utils.NewInternalError("Erreur lors de la suppression de l'immeuble", err)
	}
	return nil
}

func (s *propertyService) ListFloors(ctx context.Context) ([]*models.Floor, error) {
	floors, err := s.floors.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération des étages", err)
	}
	return floors, nil
}

func (s *propertyService) CreateFloor(ctx context.Context, req dtos.FloorRequest) (*models.Floor, error) {
	if err := s.checkFloorNumber(ctx, req.ImmeubleID, *req.Numero); err != nil {
		return nil, err
	}
	floor := &models.Floor{
		ID:         uuid.New(),
		ImmeubleID: req.ImmeubleID,
		Numero:     *req.Numero,
	}
	if err := s.floors.Create(ctx, floor); err != nil {
		return nil, utils.NewInternalError("Erreur lors de la création de l'étage", err)
	}
	return floor, nil
}

func (s *propertyService) UpdateFloor(ctx context.Context, id uuid.UUID, req dtos.FloorRequest) (*models.Floor, error) {
	if err := s.checkFloorNumber(ctx, req.ImmeubleID, *req.Numero); err != nil {
		return nil, err
	}
	floor := &models.Floor{
		ID:         id,
		ImmeubleID: req.ImmeubleID,
		Numero:     *req.Numero,
	}
	if err := s.floors.Update(ctx, floor); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.NewNotFoundError("Étage non trouvé")
		}
		return nil, utils.NewInternalError("Erreur lors de la mise à jour de l'étage", err)
	}
	return floor, nil
}

func (s *propertyService) DeleteFloor(ctx context.Context, id uuid.UUID) error {
	if err := s.floors.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.NewNotFoundError("Étage non trouvé")
		}
		return utils.NewInternalError("Erreur lors de la suppression de l'étage", err)
	}
	return nil
}

func (s *propertyService) ListApartments(ctx context.Context) ([]*models.Apartment, error) {
	apartments, err := s.apartments.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération des appartements", err)
	}
	return apartments, nil
}

func (s *propertyService) GetApartment(ctx context.Context, id uuid.UUID) (*models.Apartment, error) {
	apartment, err := s.apartments.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération de l'appartement", err)
	}
	if apartment == nil {
		return nil, utils.NewNotFoundError("Appartement non trouvé")
	}
	return apartment, nil
}

func (s *propertyService) CreateApartment(ctx context.Context, req dtos.ApartmentRequest) (*models.Apartment, error) {
	if err := s.checkFloor(ctx, req.EtageID); err != nil {
		return nil, err
	}
	apartment := apartmentFromRequest(uuid.New(), req)
	if err := s.apartments.Create(ctx, apartment); err != nil {
		return nil, utils.NewInternalError("Erreur lors de la création de l'appartement", err)
	}
	return apartment, nil
}

func (s *propertyService) UpdateApartment(ctx context.Context, id uuid.UUID, req dtos.ApartmentRequest) (*models.Apartment, error) {
	if err := s.checkFloor(ctx, req.EtageID); err != nil {
		return nil, err
	}
	apartment := apartmentFromRequest(id, req)
	if err := s.apartments.Update(ctx, apartment); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.NewNotFoundError("Appartement non trouvé")
		}
		return nil, utils.NewInternalError("Erreur lors de la mise à jour de l'appartement", err)
	}
	return apartment, nil
}

func (s *propertyService) DeleteApartment(ctx context.Context, id uuid.UUID) error {
	if err := s.apartments.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.NewNotFoundError("Appartement non trouvé")
		}
		return utils.NewInternalError("Erreur lors de la suppression de l'appartement", err)
	}
	return nil
}

func (s *propertyService) checkCity(ctx context.Context, id uuid.UUID) error {
	city, err := s.cities.GetByID(ctx, id)
	if err != nil {
		return utils.NewInternalError("Erreur lors de la vérification de la ville", err)
	}
	if city == nil {
		return utils.NewNotFoundError("Ville non trouvée")
	}
	return nil
}

func (s *propertyService) checkFloor(ctx context.Context, id uuid.UUID) error {
	floor, err := s.floors.GetByID(ctx, id)
	if err != nil {
		return utils.NewInternalError("Erreur lors de la vérification de l'étage", err)
	}
	if floor == nil {
		return utils.NewNotFoundError("Étage non trouvé")
	}
	return nil
}

// checkFloorNumber verifies the building exists and that the floor
// number stays below the building's declared floor count.
func (s *propertyService) checkFloorNumber(ctx context.Context, buildingID uuid.UUID, numero int) error {
	building, err := s.buildings.GetByID(ctx, buildingID)
	if err != nil {
		return utils.NewInternalError("Erreur lors de la vérification de l'immeuble", err)
	}
	if building == nil {
		return utils.NewNotFoundError("Immeuble non trouvé")
	}
	if numero >= building.Etages {
		return utils.NewValidationError(fmt.Sprintf("Le numéro d'étage doit être inférieur à %d", building.Etages))
	}
	return nil
}

func buildingFromRequest(id uuid.UUID, req dtos.BuildingRequest) *models.Building {
	return &models.Building{
		ID:      id,
		Nom:     req.Nom,
		Adresse: req.Adresse,
		VilleID: req.VilleID,
		Etages:  req.Etages,
		Monnaie: req.Monnaie,
	}
}

func apartmentFromRequest(id uuid.UUID, req dtos.ApartmentRequest) *models.Apartment {
	return &models.Apartment{
		ID:             id,
		EtageID:        req.EtageID,
		Numero:         req.Numero,
		Chambres:       *req.Chambres,
		SallesDeBain:   *req.SallesDeBain,
		Surface:        req.Surface,
		Balcon:         req.Balcon,
		CuisineEquipee: req.CuisineEquipee,
		Loyer:          *req.Loyer,
	}
}
