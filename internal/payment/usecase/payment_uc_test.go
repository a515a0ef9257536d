package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/Sak2803shi/RentalHub/internal/payment/domain"
	"github.com/Sak2803shi/RentalHub/pkg/client"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePaymentRepo struct {
	payments map[int64]*domain.Payment
	nextID   int64
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[int64]*domain.Payment{}, nextID: 1}
}

func (f *fakePaymentRepo) Create(_ context.Context, p *domain.Payment) error {
	p.PaymentID = f.nextID
	f.nextID++
	cp := *p
	f.payments[p.PaymentID] = &cp
	return nil
}

func (f *fakePaymentRepo) GetByID(_ context.Context, id int64) (*domain.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, fmt.Errorf("%w: payment %d", xerrors.ErrNotFound, id)
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaymentRepo) List(_ context.Context) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range f.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePaymentRepo) ListByCustomer(_ context.Context, customerUserID int64) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range f.payments {
		if p.CustomerUserID == customerUserID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ListByOwner(_ context.Context, ownerUserID int64) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range f.payments {
		if p.OwnerUserID == ownerUserID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	p, ok := f.payments[id]
	if !ok {
		return fmt.Errorf("%w: payment %d", xerrors.ErrNotFound, id)
	}
	p.Status = status
	return nil
}

func (f *fakePaymentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.payments[id]; !ok {
		return fmt.Errorf("%w: payment %d", xerrors.ErrNotFound, id)
	}
	delete(f.payments, id)
	return nil
}

// fakeRentalClient resolves ids from fixed maps; anything else is a
// NOT_FOUND, matching the real client's 404 mapping.
type fakeRentalClient struct {
	customers map[int64]*client.Customer
	owners    map[int64]*client.Owner
	leases    map[int64]*client.Lease
	tokens    []string
}

func (f *fakeRentalClient) GetCustomer(_ context.Context, token string, id int64) (*client.Customer, error) {
	f.tokens = append(f.tokens, token)
	c, ok := f.customers[id]
	if !ok {
		return nil, fmt.Errorf("%w: customer", xerrors.ErrNotFound)
	}
	return c, nil
}

func (f *fakeRentalClient) GetOwner(_ context.Context, token string, id int64) (*client.Owner, error) {
	f.tokens = append(f.tokens, token)
	o, ok := f.owners[id]
	if !ok {
		return nil, fmt.Errorf("%w: owner", xerrors.ErrNotFound)
	}
	return o, nil
}

func (f *fakeRentalClient) GetLease(_ context.Context, token string, id int64) (*client.Lease, error) {
	f.tokens = append(f.tokens, token)
	l, ok := f.leases[id]
	if !ok {
		return nil, fmt.Errorf("%w: lease", xerrors.ErrNotFound)
	}
	return l, nil
}

func newPaymentFixture() (*PaymentUsecase, *fakePaymentRepo, *fakeRentalClient) {
	repo := newFakePaymentRepo()
	rental := &fakeRentalClient{
		customers: map[int64]*client.Customer{
			200: {UserID: 200, FirstName: "Cara", LastName: "Brook"},
		},
		owners: map[int64]*client.Owner{
			1: {UserID: 1, FirstName: "Olive", LastName: "Hart"},
		},
		leases: map[int64]*client.Lease{
			10: {LeaseID: 10, CustomerUserID: 200, MonthlyRent: 1200},
		},
	}
	return NewPaymentUsecase(repo, rental, zap.NewNop()), repo, rental
}

func validPaymentRequest() *domain.PaymentRequest {
	return &domain.PaymentRequest{
		LeaseID:        10,
		CustomerUserID: 200,
		OwnerUserID:    1,
		Amount:         1200,
		PaymentMethod:  "CARD",
	}
}

func TestPaymentCreate(t *testing.T) {
	uc, repo, rental := newPaymentFixture()

	resp, err := uc.Create(context.Background(), "tok-abc", validPaymentRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPaid, resp.Status)
	assert.Equal(t, "Cara Brook", resp.CustomerName)
	assert.Equal(t, "Olive Hart", resp.OwnerName)
	assert.Len(t, repo.payments, 1)

	// The caller's token travels on every upstream lookup.
	for _, tok := range rental.tokens {
		assert.Equal(t, "tok-abc", tok)
	}
}

func TestPaymentCreateAbortsWhenLeaseMissing(t *testing.T) {
	uc, repo, _ := newPaymentFixture()

	req := validPaymentRequest()
	req.LeaseID = 999

	_, err := uc.Create(context.Background(), "tok", req)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
	assert.Empty(t, repo.payments, "no row may be written when a lookup fails")
}

func TestPaymentCreateAbortsWhenCustomerMissing(t *testing.T) {
	uc, repo, _ := newPaymentFixture()

	req := validPaymentRequest()
	req.CustomerUserID = 999

	_, err := uc.Create(context.Background(), "tok", req)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
	assert.Empty(t, repo.payments)
}

func TestPaymentCreateValidation(t *testing.T) {
	uc, _, _ := newPaymentFixture()
	ctx := context.Background()

	req := validPaymentRequest()
	req.Amount = 0
	_, err := uc.Create(ctx, "tok", req)
	assert.ErrorIs(t, err, xerrors.ErrValidation)

	req = validPaymentRequest()
	req.PaymentMethod = ""
	_, err = uc.Create(ctx, "tok", req)
	assert.ErrorIs(t, err, xerrors.ErrValidation)
}

func TestPaymentReadEnrichesNames(t *testing.T) {
	uc, _, _ := newPaymentFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, "tok", validPaymentRequest())
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, "tok", created.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, "Cara Brook", got.CustomerName)
	assert.Equal(t, "Olive Hart", got.OwnerName)
}

func TestPaymentReadFailsWhenUpstreamUserGone(t *testing.T) {
	uc, _, rental := newPaymentFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, "tok", validPaymentRequest())
	require.NoError(t, err)

	delete(rental.customers, 200)

	_, err = uc.GetByID(ctx, "tok", created.PaymentID)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestPaymentUpdateStatusAcceptsAnyString(t *testing.T) {
	uc, _, _ := newPaymentFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, "tok", validPaymentRequest())
	require.NoError(t, err)

	got, err := uc.UpdateStatus(ctx, "tok", created.PaymentID, "REFUNDED")
	require.NoError(t, err)
	assert.Equal(t, "REFUNDED", got.Status)

	_, err = uc.UpdateStatus(ctx, "tok", created.PaymentID, "")
	assert.ErrorIs(t, err, xerrors.ErrValidation)
}

func TestPaymentListByCustomer(t *testing.T) {
	uc, _, _ := newPaymentFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, "tok", validPaymentRequest())
	require.NoError(t, err)

	got, err := uc.GetByCustomer(ctx, "tok", 200)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	none, err := uc.GetByOwner(ctx, "tok", 777)
	require.NoError(t, err)
	assert.Empty(t, none)
}
