package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/require"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/models"
)

type fakeCityRepo struct {
	cities map[uuid.UUID]*models.City
}

func newFakeCityRepo() *fakeCityRepo {
	return &fakeCityRepo{cities: map[uuid.UUID]*models.City{}}
}

func (f *fakeCityRepo) List(ctx context.Context) ([]*models.City, error) {
	out := make([]*models.City, 0, len(f.cities))
	for _, c := range f.cities {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCityRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.City, error) {
	return f.cities[id], nil
}

type fakeBuildingRepo struct {
	buildings map[uuid.UUID]*models.Building
}

func newFakeBuildingRepo() *fakeBuildingRepo {
	return &fakeBuildingRepo{buildings: map[uuid.UUID]*models.Building{}}
}

func (f *fakeBuildingRepo) List(ctx context.Context) ([]*models.Building, error) { return nil, nil }
func (f *fakeBuildingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Building, error) {
	return f.buildings[id], nil
}
func (f *fakeBuildingRepo) Create(ctx context.Context, b *models.Building) error {
	f.buildings[b.ID] = b
	return nil
}
func (f *fakeBuildingRepo) Update(ctx context.Context, b *models.Building) error {
	if _, ok := f.buildings[b.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.buildings[b.ID] = b
	return nil
}
func (f *fakeBuildingRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.buildings[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.buildings, id)
	return nil
}

type fakeFloorRepo struct {
	floors map[uuid.UUID]*models.Floor
}

func newFakeFloorRepo() *fakeFloorRepo {
	return &fakeFloorRepo{floors: map[uuid.UUID]*models.Floor{}}
}

func (f *fakeFloorRepo) List(ctx context.Context) ([]*models.Floor, error) { return nil, nil }
func (f *fakeFloorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Floor, error) {
	return f.floors[id], nil
}
func (f *fakeFloorRepo) Create(ctx context.Context, fl *models.Floor) error {
	f.floors[fl.ID] = fl
	return nil
}
func (f *fakeFloorRepo) Update(ctx context.Context, fl *models.Floor) error {
	if _, ok := f.floors[fl.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.floors[fl.ID] = fl
	return nil
}
func (f *fakeFloorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.floors[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.floors, id)
	return nil
}

type propertyFixture struct {
	svc       PropertyService
	cities    *fakeCityRepo
	buildings *fakeBuildingRepo
	floors    *fakeFloorRepo
	aparts    *fakeApartmentRepo

	cityID uuid.UUID
}

func newPropertyFixture() *propertyFixture {
	f := &propertyFixture{
		cities:    newFakeCityRepo(),
		buildings: newFakeBuildingRepo(),
		floors:    newFakeFloorRepo(),
		aparts:    newFakeApartmentRepo(),
	}
	f.cityID = uuid.New()
	f.cities.cities[f.cityID] = &models.City{ID: f.cityID, Nom: "Conakry"}
	f.svc = NewPropertyService(f.cities, f.buildings, f.floors, f.aparts)
	return f
}

func (f *propertyFixture) buildingRequest() dtos.BuildingRequest {
	return dtos.BuildingRequest{
		Nom:     "Résidence Kaloum",
		Adresse: "Avenue de la République",
		VilleID: f.cityID,
		Etages:  5,
		Monnaie: "GNF",
	}
}

func TestBuildingCreateUnknownCity(t *testing.T) {
	f := newPropertyFixture()
	req := f.buildingRequest()
	req.VilleID = uuid.New()

	_, err := f.svc.CreateBuilding(context.Background(), req)
	requireAppError(t, err, http.StatusNotFound)
}

func TestBuildingCreateAndDelete(t *testing.T) {
	f := newPropertyFixture()

	building, err := f.svc.CreateBuilding(context.Background(), f.buildingRequest())
	require.NoError(t, err)
	require.Equal(t, 5, building.Etages)

	require.NoError(t, f.svc.DeleteBuilding(context.Background(), building.ID))
	requireAppError(t, f.svc.DeleteBuilding(context.Background(), building.ID), http.StatusNotFound)
}

func TestFloorNumberMustStayBelowBuildingCount(t *testing.T) {
	f := newPropertyFixture()
	building, err := f.svc.CreateBuilding(context.Background(), f.buildingRequest())
	require.NoError(t, err)

	four := 4
	_, err = f.svc.CreateFloor(context.Background(), dtos.FloorRequest{ImmeubleID: building.ID, Numero: &four})
	require.NoError(t, err)

	five := 5
	_, err = f.svc.CreateFloor(context.Background(), dtos.FloorRequest{ImmeubleID: building.ID, Numero: &five})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	require.Equal(t, "Le numéro d'étage doit être inférieur à 5", appErr.Message)
}

func TestFloorCreateUnknownBuilding(t *testing.T) {
	f := newPropertyFixture()
	zero := 0

	_, err := f.svc.CreateFloor(context.Background(), dtos.FloorRequest{ImmeubleID: uuid.New(), Numero: &zero})
	requireAppError(t, err, http.StatusNotFound)
}

func TestApartmentCreateUnknownFloor(t *testing.T) {
	f := newPropertyFixture()
	chambres, sdb := 2, 1
	loyer := 5000000.0

	_, err := f.svc.CreateApartment(context.Background(), dtos.ApartmentRequest{
		EtageID:      uuid.New(),
		Numero:       "A1",
		Chambres:     &chambres,
		SallesDeBain: &sdb,
		Surface:      45,
		Loyer:        &loyer,
	})
	requireAppError(t, err, http.StatusNotFound)
}
