package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/models"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

type fakeLeaseService struct {
	created    *models.Lease
	terminated *dtos.TerminationResponse
	err        error

	gotTermination *dtos.TerminationRequest
}

func (f *fakeLeaseService) List(ctx context.Context) ([]*models.Lease, error) { return nil, f.err }
func (f *fakeLeaseService) Get(ctx context.Context, id uuid.UUID) (*models.Lease, error) {
	return f.created, f.err
}
func (f *fakeLeaseService) Create(ctx context.Context, req dtos.LeaseRequest) (*models.Lease, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}
func (f *fakeLeaseService) Update(ctx context.Context, id uuid.UUID, req dtos.LeaseRequest) (*models.Lease, error) {
	return f.created, f.err
}
func (f *fakeLeaseService) Terminate(ctx context.Context, id uuid.UUID, req dtos.TerminationRequest) (*dtos.TerminationResponse, error) {
	f.gotTermination = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.terminated, nil
}
func (f *fakeLeaseService) Delete(ctx context.Context, id uuid.UUID) error { return f.err }

func leaseRouter(svc *fakeLeaseService) *mux.Router {
	c := NewLeaseController(svc)
	r := mux.NewRouter()
	r.HandleFunc("/contrats", c.Create).Methods("POST")
	r.HandleFunc("/contrats/{id}/sortie", c.Terminate).Methods("POST")
	return r
}

func postJSON(t *testing.T, router *mux.Router, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestLeaseCreateEndpoint(t *testing.T) {
	svc := &fakeLeaseService{created: &models.Lease{ID: uuid.New(), Statut: models.LeaseStatusActive}}
	loyer, caution := 5000000.0, 10000000.0

	rec := postJSON(t, leaseRouter(svc), "/contrats", dtos.LeaseRequest{
		AppartementID: uuid.New(),
		LocataireID:   uuid.New(),
		DateDebut:     "2025-01-01",
		LoyerMensuel:  &loyer,
		Caution:       &caution,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestLeaseCreateEndpointMissingFields(t *testing.T) {
	svc := &fakeLeaseService{}

	rec := postJSON(t, leaseRouter(svc), "/contrats", map[string]any{
		"appartement_id": uuid.New(),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaseCreateEndpointConflict(t *testing.T) {
	svc := &fakeLeaseService{err: utils.NewConflictError("Un contrat actif existe déjà pour cet appartement")}
	loyer, caution := 5000000.0, 10000000.0

	rec := postJSON(t, leaseRouter(svc), "/contrats", dtos.LeaseRequest{
		AppartementID: uuid.New(),
		LocataireID:   uuid.New(),
		DateDebut:     "2025-01-01",
		LoyerMensuel:  &loyer,
		Caution:       &caution,
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "Un contrat actif existe déjà pour cet appartement", body.Error)
}

func TestTerminateEndpoint(t *testing.T) {
	leaseID := uuid.New()
	svc := &fakeLeaseService{terminated: &dtos.TerminationResponse{
		Message: "Sortie du locataire enregistrée",
		Contrat: &models.Lease{ID: leaseID, Statut: models.LeaseStatusCancelled},
	}}

	rec := postJSON(t, leaseRouter(svc), "/contrats/"+leaseID.String()+"/sortie", dtos.TerminationRequest{
		Motif: models.TerminationCancellation,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotTermination)
	require.Equal(t, models.TerminationCancellation, svc.gotTermination.Motif)
}

func TestTerminateEndpointBadMotif(t *testing.T) {
	svc := &fakeLeaseService{}

	rec := postJSON(t, leaseRouter(svc), "/contrats/"+uuid.New().String()+"/sortie", map[string]any{
		"motif": "demenagement",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Nil(t, svc.gotTermination)
}

func TestTerminateEndpointBadID(t *testing.T) {
	svc := &fakeLeaseService{}

	rec := postJSON(t, leaseRouter(svc), "/contrats/pas-un-uuid/sortie", dtos.TerminationRequest{
		Motif: models.TerminationCancellation,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
