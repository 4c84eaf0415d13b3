package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
)

func tenantRequest(email string) dtos.TenantRequest {
	return dtos.TenantRequest{
		Nom:       "Mamadou Diallo",
		Email:     email,
		Telephone: "+224620000000",
	}
}

func TestTenantCreateAndGet(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewTenantService(repo)

	tenant, err := svc.Create(context.Background(), tenantRequest("mamadou@example.com"))
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), tenant.ID)
	require.NoError(t, err)
	require.Equal(t, "mamadou@example.com", got.Email)
}

func TestTenantCreateDuplicateEmail(t *testing.T) {
	repo := newFakeTenantRepo()
	repo.takenEmail = "mamadou@example.com"
	svc := NewTenantService(repo)

	_, err := svc.Create(context.Background(), tenantRequest("mamadou@example.com"))
	appErr := requireAppError(t, err, http.StatusConflict)
	require.Equal(t, "Cet email est déjà utilisé", appErr.Message)
}

func TestTenantUpdateNotFound(t *testing.T) {
	svc := NewTenantService(newFakeTenantRepo())

	_, err := svc.Update(context.Background(), uuid.New(), tenantRequest("new@example.com"))
	requireAppError(t, err, http.StatusNotFound)
}

func TestTenantDeleteNotFound(t *testing.T) {
	svc := NewTenantService(newFakeTenantRepo())

	requireAppError(t, svc.Delete(context.Background(), uuid.New()), http.StatusNotFound)
}
