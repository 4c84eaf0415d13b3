package services

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/models"
	"github.com/bahm1979/gestion-locative-backend/internal/notifier"
)

type paymentFixture struct {
	svc      PaymentService
	payments *fakePaymentRepo
	leases   *fakeLeaseRepo
	tenants  *fakeTenantRepo
	mailer   *recordingMailer
	flush    func()

	leaseID  uuid.UUID
	tenantID uuid.UUID
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	f := &paymentFixture{
		payments: newFakePaymentRepo(),
		leases:   newFakeLeaseRepo(),
		tenants:  newFakeTenantRepo(),
		mailer:   &recordingMailer{},
	}
	dispatcher := notifier.NewDispatcher(f.mailer, 16)
	var once sync.Once
	f.flush = func() { once.Do(dispatcher.Close) }
	t.Cleanup(f.flush)

	f.tenantID = uuid.New()
	f.tenants.tenants[f.tenantID] = &models.Tenant{ID: f.tenantID, Nom: "Mamadou Diallo", Email: "mamadou@example.com"}

	f.leaseID = uuid.New()
	f.leases.leases[f.leaseID] = &models.Lease{
		ID:                f.leaseID,
		LocataireID:       f.tenantID,
		AppartementNumero: "A1",
		Statut:            models.LeaseStatusActive,
	}

	f.svc = NewPaymentService(f.payments, f.leases, f.tenants, dispatcher)
	return f
}

func paymentRequest(f *paymentFixture, montant float64, paye bool) dtos.PaymentRequest {
	return dtos.PaymentRequest{
		ContratID:    f.leaseID,
		Montant:      &montant,
		DatePaiement: "2025-03-01",
		EstPaye:      paye,
	}
}

func TestPaymentCreateSendsConfirmation(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.svc.Create(context.Background(), paymentRequest(f, 5000000, true))
	require.NoError(t, err)
	require.True(t, payment.EstPaye)

	f.flush()
	msgs := f.mailer.messages()
	require.Len(t, msgs, 1)
	require.Contains(t, msgs[0].Subject, "Confirmation de paiement")
}

func TestPaymentCreateUnpaidSendsArrearNotice(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.Create(context.Background(), paymentRequest(f, 5000000, false))
	require.NoError(t, err)

	f.flush()
	msgs := f.mailer.messages()
	require.Len(t, msgs, 1)
	require.True(t, strings.Contains(msgs[0].Subject, "impayé"), "subject %q", msgs[0].Subject)
}

func TestPaymentCreateNegativeAmount(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.Create(context.Background(), paymentRequest(f, -100, true))
	appErr := requireAppError(t, err, http.StatusBadRequest)
	require.Equal(t, "Le montant doit être un nombre positif", appErr.Message)
}

func TestPaymentCreateUnknownLease(t *testing.T) {
	f := newPaymentFixture(t)
	req := paymentRequest(f, 5000000, true)
	req.ContratID = uuid.New()

	_, err := f.svc.Create(context.Background(), req)
	requireAppError(t, err, http.StatusNotFound)
}

func TestPaymentUpdateSendsNotification(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.svc.Create(context.Background(), paymentRequest(f, 5000000, false))
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), payment.ID, paymentRequest(f, 5000000, true))
	require.NoError(t, err)
	require.True(t, updated.EstPaye)

	f.flush()
	msgs := f.mailer.messages()
	require.Len(t, msgs, 2)
	require.Contains(t, msgs[1].Subject, "Confirmation de paiement")
}

func TestPaymentUpdateNotFound(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.Update(context.Background(), uuid.New(), paymentRequest(f, 5000000, true))
	requireAppError(t, err, http.StatusNotFound)
}

func TestPaymentDelete(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.svc.Create(context.Background(), paymentRequest(f, 5000000, true))
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), payment.ID))
	requireAppError(t, f.svc.Delete(context.Background(), payment.ID), http.StatusNotFound)
}
