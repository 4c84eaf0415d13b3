package services

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/require"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/models"
	"github.com/bahm1979/gestion-locative-backend/internal/notifier"
	"github.com/bahm1979/gestion-locative-backend/internal/repositories"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

//----------------------------------------------------------------------
// Fakes
//----------------------------------------------------------------------

type fakeLeaseRepo struct {
	leases      map[uuid.UUID]*models.Lease
	createErr   error
	updateErr   error
	terminated  *repositories.Termination
	terminteErr error
}

func newFakeLeaseRepo() *fakeLeaseRepo {
	return &fakeLeaseRepo{leases: map[uuid.UUID]*models.Lease{}}
}

func (f *fakeLeaseRepo) List(ctx context.Context) ([]*models.Lease, error) {
	out := make([]*models.Lease, 0, len(f.leases))
	for _, l := range f.leases {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLeaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Lease, error) {
	return f.leases[id], nil
}

func (f *fakeLeaseRepo) CreateActive(ctx context.Context, l *models.Lease) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.leases[l.ID] = l
	return nil
}

func (f *fakeLeaseRepo) UpdateActive(ctx context.Context, l *models.Lease) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.leases[l.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.leases[l.ID] = l
	return nil
}

func (f *fakeLeaseRepo) Terminate(ctx context.Context, t repositories.Termination) error {
	if f.terminteErr != nil {
		return f.terminteErr
	}
	f.terminated = &t
	return nil
}

func (f *fakeLeaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.leases[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.leases, id)
	return nil
}

type fakePaymentRepo struct {
	payments  map[uuid.UUID]*models.Payment
	unpaidSum float64
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[uuid.UUID]*models.Payment{}}
}

func (f *fakePaymentRepo) List(ctx context.Context) ([]*models.Payment, error) { return nil, nil }
func (f *fakePaymentRepo) ListUnpaid(ctx context.Context) ([]*models.Payment, error) {
	return nil, nil
}
func (f *fakePaymentRepo) MonthlyStats(ctx context.Context) ([]*models.MonthlyPaymentStats, error) {
	return nil, nil
}
func (f *fakePaymentRepo) SumUnpaidByLease(ctx context.Context, leaseID uuid.UUID) (float64, error) {
	return f.unpaidSum, nil
}
func (f *fakePaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	f.payments[p.ID] = p
	return nil
}
func (f *fakePaymentRepo) Update(ctx context.Context, p *models.Payment) error {
	if _, ok := f.payments[p.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.payments[p.ID] = p
	return nil
}
func (f *fakePaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.payments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.payments, id)
	return nil
}

type fakeApartmentRepo struct {
	apartments map[uuid.UUID]*models.Apartment
}

func newFakeApartmentRepo() *fakeApartmentRepo {
	return &fakeApartmentRepo{apartments: map[uuid.UUID]*models.Apartment{}}
}

func (f *fakeApartmentRepo) List(ctx context.Context) ([]*models.Apartment, error) { return nil, nil }
func (f *fakeApartmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Apartment, error) {
	return f.apartments[id], nil
}
func (f *fakeApartmentRepo) Create(ctx context.Context, a *models.Apartment) error {
	f.apartments[a.ID] = a
	return nil
}
func (f *fakeApartmentRepo) Update(ctx context.Context, a *models.Apartment) error {
	if _, ok := f.apartments[a.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.apartments[a.ID] = a
	return nil
}
func (f *fakeApartmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.apartments, id)
	return nil
}

type fakeTenantRepo struct {
	tenants    map[uuid.UUID]*models.Tenant
	takenEmail string
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{tenants: map[uuid.UUID]*models.Tenant{}}
}

func (f *fakeTenantRepo) List(ctx context.Context) ([]*models.Tenant, error) { return nil, nil }
func (f *fakeTenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	return f.tenants[id], nil
}
func (f *fakeTenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	f.tenants[t.ID] = t
	return nil
}
func (f *fakeTenantRepo) Update(ctx context.Context, t *models.Tenant) error {
	if _, ok := f.tenants[t.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.tenants[t.ID] = t
	return nil
}
func (f *fakeTenantRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.tenants[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.tenants, id)
	return nil
}
func (f *fakeTenantRepo) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	return email == f.takenEmail, nil
}

// recordingMailer captures every message the dispatcher delivers.
type recordingMailer struct {
	mu   sync.Mutex
	sent []notifier.Message
}

func (m *recordingMailer) Send(ctx context.Context, msg notifier.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) messages() []notifier.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notifier.Message(nil), m.sent...)
}

//----------------------------------------------------------------------
// Fixtures
//----------------------------------------------------------------------

type leaseFixture struct {
	svc        *leaseService
	leases     *fakeLeaseRepo
	payments   *fakePaymentRepo
	apartments *fakeApartmentRepo
	tenants    *fakeTenantRepo
	mailer     *recordingMailer
	dispatcher *notifier.Dispatcher
	// flush closes the dispatcher exactly once, draining the queue so
	// sent messages can be asserted.
	flush func()

	apartmentID uuid.UUID
	tenantID    uuid.UUID
}

func newLeaseFixture(t *testing.T) *leaseFixture {
	t.Helper()

	f := &leaseFixture{
		leases:     newFakeLeaseRepo(),
		payments:   newFakePaymentRepo(),
		apartments: newFakeApartmentRepo(),
		tenants:    newFakeTenantRepo(),
		mailer:     &recordingMailer{},
	}
	f.dispatcher = notifier.NewDispatcher(f.mailer, 16)
	var once sync.Once
	f.flush = func() { once.Do(f.dispatcher.Close) }
	t.Cleanup(f.flush)

	f.apartmentID = uuid.New()
	f.apartments.apartments[f.apartmentID] = &models.Apartment{ID: f.apartmentID, Numero: "A1"}
	f.tenantID = uuid.New()
	f.tenants.tenants[f.tenantID] = &models.Tenant{ID: f.tenantID, Nom: "Mamadou Diallo", Email: "mamadou@example.com"}

	svc := NewLeaseService(f.leases, f.payments, f.apartments, f.tenants, f.dispatcher)
	f.svc = svc.(*leaseService)
	// Fixed clock: 2025-03-15.
	f.svc.now = func() time.Time {
		return time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)
	}
	return f
}

func (f *leaseFixture) activeLease(caution float64) *models.Lease {
	lease := &models.Lease{
		ID:            uuid.New(),
		AppartementID: f.apartmentID,
		LocataireID:   f.tenantID,
		DateDebut:     "2024-01-01",
		LoyerMensuel:  5000000,
		Caution:       caution,
		Statut:        models.LeaseStatusActive,
	}
	f.leases.leases[lease.ID] = lease
	return lease
}

func validLeaseRequest(f *leaseFixture) dtos.LeaseRequest {
	loyer := 5000000.0
	caution := 10000000.0
	return dtos.LeaseRequest{
		AppartementID: f.apartmentID,
		LocataireID:   f.tenantID,
		DateDebut:     "2025-01-01",
		LoyerMensuel:  &loyer,
		Caution:       &caution,
	}
}

func requireAppError(t *testing.T, err error, status int) *utils.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok, "expected *utils.AppError, got %T", err)
	require.Equal(t, status, appErr.StatusCode)
	return appErr
}

//----------------------------------------------------------------------
// Create / Update
//----------------------------------------------------------------------

func TestLeaseCreate(t *testing.T) {
	f := newLeaseFixture(t)

	lease, err := f.svc.Create(context.Background(), validLeaseRequest(f))
	require.NoError(t, err)
	require.Equal(t, models.LeaseStatusActive, lease.Statut)
	require.NotEqual(t, uuid.Nil, lease.ID)

	f.flush()
	msgs := f.mailer.messages()
	require.Len(t, msgs, 1)
	require.Equal(t, "mamadou@example.com", msgs[0].ToEmail)
}

func TestLeaseCreateNegativeRent(t *testing.T) {
	f := newLeaseFixture(t)
	req := validLeaseRequest(f)
	loyer := -1.0
	req.LoyerMensuel = &loyer

	_, err := f.svc.Create(context.Background(), req)
	appErr := requireAppError(t, err, http.StatusBadRequest)
	require.Equal(t, "Le loyer_mensuel doit être un nombre positif", appErr.Message)
}

func TestLeaseCreateUnknownApartment(t *testing.T) {
	f := newLeaseFixture(t)
	req := validLeaseRequest(f)
	req.AppartementID = uuid.New()

	_, err := f.svc.Create(context.Background(), req)
	requireAppError(t, err, http.StatusNotFound)
}

func TestLeaseCreateConflict(t *testing.T) {
	f := newLeaseFixture(t)
	f.leases.createErr = utils.ErrActiveLeaseExists

	_, err := f.svc.Create(context.Background(), validLeaseRequest(f))
	appErr := requireAppError(t, err, http.StatusConflict)
	require.Equal(t, "Un contrat actif existe déjà pour cet appartement", appErr.Message)
}

func TestLeaseUpdateNotFound(t *testing.T) {
	f := newLeaseFixture(t)

	_, err := f.svc.Update(context.Background(), uuid.New(), validLeaseRequest(f))
	requireAppError(t, err, http.StatusNotFound)
}

//----------------------------------------------------------------------
// Termination
//----------------------------------------------------------------------

func TestTerminateCancellationDefaultsToOneMonthNotice(t *testing.T) {
	f := newLeaseFixture(t)
	lease := f.activeLease(0)

	resp, err := f.svc.Terminate(context.Background(), lease.ID, dtos.TerminationRequest{
		Motif: models.TerminationCancellation,
	})
	require.NoError(t, err)
	require.Equal(t, models.LeaseStatusCancelled, resp.Contrat.Statut)
	require.Equal(t, "2025-04-15", *resp.Contrat.DateFin)
	require.Equal(t, "2025-04-15", f.leases.terminated.DateSortie)
}

func TestTerminateCancellationBoundaryDateAccepted(t *testing.T) {
	f := newLeaseFixture(t)
	lease := f.activeLease(0)
	exit := "2025-04-15"

	resp, err := f.svc.Terminate(context.Background(), lease.ID, dtos.TerminationRequest{
		Motif:      models.TerminationCancellation,
		DateSortie: &exit,
	})
	require.NoError(t, err)
	require.Equal(t, exit, *resp.Contrat.DateFin)
}

func TestTerminateCancellationBeforeNoticeRejected(t *testing.T) {
	f := newLeaseFixture(t)
	lease := f.activeLease(0)
	exit := "2025-04-14"

	_, err := f.svc.Terminate(context.Background(), lease.ID, dtos.TerminationRequest{
		Motif:      models.TerminationCancellation,
		DateSortie: &exit,
	})
	requireAppError(t, err, http.StatusBadRequest)
}

func TestTerminateContractEndDefaultsToLeaseEnd(t *testing.T) {
	f := newLeaseFixture(t)
	lease := f.activeLease(0)
	end := "2025-06-30"
	lease.DateFin = &end

	resp, err := f.svc.Terminate(context.Background(), lease.ID, dtos.TerminationRequest{
		Motif: models.TerminationContractEnd,
	})
	require.NoError(t, err)
	require.Equal(t, models.LeaseStatusTerminated, resp.Contrat.Statut)
	require.Equal(t, end, *resp.Contrat.DateFin)
}

func TestTerminateContractEndDefaultsToToday(t *testing.T) {
	f := newLeaseFixture(t)
	lease := f.activeLease(0)

	resp, err := f.svc.Terminate(context.Background(), lease.ID, dtos.TerminationRequest{
		Motif: models.TerminationContractEnd,
	})
	require.NoError(t, err)
	require.Equal(t, "2025-03-15", *resp.Contrat.DateFin)
}

func TestTerminateContractEndPastDateRejected(t *testing.T) {
	f := newLeaseFixture(t)
	lease := f.activeLease(0)
	exit := "2025-03-14"

	_, err := f.svc.Terminate(context.Background(), lease.ID, dtos.TerminationRequest{
		Motif:      models.TerminationContractEnd,
		DateSortie: &exit,
	})
	requireAppError(t, err, http.StatusBadRequest)
}

func TestTerminateClosedLeaseRejected(t *testing.T) {
	f := newLeaseFixture(t)
	lease := f.activeLease(0)
	lease.Statut = models.LeaseStatusTerminated

	_, err := f.svc.Terminate(context.Background(), lease.ID, dtos.TerminationRequest{
		Motif: models.TerminationContractEnd,
	})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	require.Equal(t, "Le contrat est déjà terminé ou résilié", appErr.Message)
}

func TestTerminateDepositCap(t *testing.T) {
	f := newLeaseFixture(t)
	lease := f.activeLease(10000000)
	tooMuch := 10000001.0

	_, err := f.svc.Terminate(context.Background(), lease.ID, dtos.TerminationRequest{
		Motif:           models.TerminationContractEnd,
		MontantRestitue: &tooMuch,
	})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	require.Equal(t, "Le montant restitué ne peut pas dépasser la caution", appErr.Message)
}

func TestTerminateNegativeDepositRejected(t *testing.T) {
	f := newLeaseFixture(t)
	lease := f.activeLease(10000000)
	neg := -5.0

	_, err := f.svc.Terminate(context.Background(), lease.ID, dtos.TerminationRequest{
		Motif:           models.TerminationContractEnd,
		MontantRestitue: &neg,
	})
	requireAppError(t, err, http.StatusBadRequest)
}

func TestTerminateRecordsDepositAndWalkthrough(t *testing.T) {
	f := newLeaseFixture(t)
	lease := f.activeLease(10000000)
	montant := 8000000.0
	commentaire := "RAS, appartement rendu propre"

	resp, err := f.svc.Terminate(context.Background(), lease.ID, dtos.TerminationRequest{
		Motif:                models.TerminationContractEnd,
		MontantRestitue:      &montant,
		CommentaireEtatLieux: &commentaire,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.RestitutionID)
	require.NotNil(t, resp.EtatLieuxID)

	require.NotNil(t, f.leases.terminated.Restitution)
	require.Equal(t, montant, f.leases.terminated.Restitution.MontantRestitue)
	require.NotNil(t, f.leases.terminated.EtatLieux)
	require.Equal(t, models.WalkthroughExit, f.leases.terminated.EtatLieux.Type)
	require.Equal(t, commentaire, f.leases.terminated.EtatLieux.Commentaire)
}

func TestTerminateNoWalkthroughWithoutComment(t *testing.T) {
	f := newLeaseFixture(t)
	lease := f.activeLease(0)

	resp, err := f.svc.Terminate(context.Background(), lease.ID, dtos.TerminationRequest{
		Motif: models.TerminationContractEnd,
	})
	require.NoError(t, err)
	require.Nil(t, resp.RestitutionID)
	require.Nil(t, resp.EtatLieuxID)
	require.Nil(t, f.leases.terminated.Restitution)
	require.Nil(t, f.leases.terminated.EtatLieux)
}

func TestTerminateUnpaidWarning(t *testing.T) {
	f := newLeaseFixture(t)
	lease := f.activeLease(0)
	f.payments.unpaidSum = 5000000

	resp, err := f.svc.Terminate(context.Background(), lease.ID, dtos.TerminationRequest{
		Motif: models.TerminationContractEnd,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.AvertissementImpayes)
	require.Equal(t, "Attention : 5 000 000 GNF d'impayés détectés", *resp.AvertissementImpayes)
}

func TestTerminateNoWarningWhenPaidUp(t *testing.T) {
	f := newLeaseFixture(t)
	lease := f.activeLease(0)

	resp, err := f.svc.Terminate(context.Background(), lease.ID, dtos.TerminationRequest{
		Motif: models.TerminationContractEnd,
	})
	require.NoError(t, err)
	require.Nil(t, resp.AvertissementImpayes)
}

func TestTerminateUnknownLease(t *testing.T) {
	f := newLeaseFixture(t)

	_, err := f.svc.Terminate(context.Background(), uuid.New(), dtos.TerminationRequest{
		Motif: models.TerminationContractEnd,
	})
	requireAppError(t, err, http.StatusNotFound)
}
