package service

import (
	"context"
	"testing"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type leaseFixture struct {
	svc        *LeaseService
	repo       *fakeLeaseRepo
	propertyID int64
	customerID int64
	ownerID    int64
}

func newLeaseFixture(t *testing.T) *leaseFixture {
	t.Helper()
	ctx := context.Background()

	owners := newFakeOwnerRepo()
	customers := newFakeCustomerRepo()
	properties := newFakePropertyRepo()
	leases := newFakeLeaseRepo()

	owner := &domain.Owner{User: domain.User{FirstName: "Olive", Email: "olive@example.com"}}
	require.NoError(t, owners.Create(ctx, owner))

	customer := &domain.Customer{User: domain.User{FirstName: "Cara", Email: "cara@example.com"}}
	require.NoError(t, customers.Create(ctx, customer))

	property := &domain.Property{Title: "Sunny flat", OwnerID: owner.UserID, IsAvailable: true}
	require.NoError(t, properties.Create(ctx, property))

	return &leaseFixture{
		svc:        NewLeaseService(leases, properties, customers, owners, zap.NewNop()),
		repo:       leases,
		propertyID: property.PropertyID,
		customerID: customer.UserID,
		ownerID:    owner.UserID,
	}
}

func TestLeaseCreate(t *testing.T) {
	f := newLeaseFixture(t)

	resp, err := f.svc.Create(context.Background(), &domain.LeaseRequest{
		PropertyID:      f.propertyID,
		CustomerUserID:  f.customerID,
		OwnerUserID:     &f.ownerID,
		StartDate:       "2026-09-01",
		EndDate:         "2027-08-31",
		MonthlyRent:     1200,
		SecurityDeposit: 2400,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", resp.StartDate)
	assert.Equal(t, "2027-08-31", resp.EndDate)
	assert.False(t, resp.IsSigned)
	require.NotNil(t, resp.OwnerUserID)
	assert.Equal(t, f.ownerID, *resp.OwnerUserID)
}

func TestLeaseCreateRejectsReversedDates(t *testing.T) {
	f := newLeaseFixture(t)

	_, err := f.svc.Create(context.Background(), &domain.LeaseRequest{
		PropertyID:     f.propertyID,
		CustomerUserID: f.customerID,
		StartDate:      "2027-08-31",
		EndDate:        "2026-09-01",
		MonthlyRent:    1200,
	})
	assert.ErrorIs(t, err, xerrors.ErrValidation)
}

func TestLeaseCreateRejectsMissingProperty(t *testing.T) {
	f := newLeaseFixture(t)

	_, err := f.svc.Create(context.Background(), &domain.LeaseRequest{
		PropertyID:     9999,
		CustomerUserID: f.customerID,
		MonthlyRent:    1200,
	})
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestLeaseCreateRejectsMissingOwner(t *testing.T) {
	f := newLeaseFixture(t)
	missing := int64(9999)

	_, err := f.svc.Create(context.Background(), &domain.LeaseRequest{
		PropertyID:     f.propertyID,
		CustomerUserID: f.customerID,
		OwnerUserID:    &missing,
		MonthlyRent:    1200,
	})
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
	assert.Empty(t, f.repo.leases, "no lease may be written for a dangling owner")
}

func TestLeaseUpdateRejectsMissingOwner(t *testing.T) {
	f := newLeaseFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, &domain.LeaseRequest{
		PropertyID:     f.propertyID,
		CustomerUserID: f.customerID,
		MonthlyRent:    1200,
	})
	require.NoError(t, err)

	missing := int64(9999)
	_, err = f.svc.Update(ctx, created.LeaseID, &domain.LeaseRequest{
		PropertyID:     f.propertyID,
		CustomerUserID: f.customerID,
		OwnerUserID:    &missing,
		MonthlyRent:    1200,
	})
	assert.ErrorIs(t, err, xerrors.ErrNotFound)

	// The stored lease must be untouched by the rejected update.
	stored, err := f.repo.GetByID(ctx, created.LeaseID)
	require.NoError(t, err)
	assert.Nil(t, stored.OwnerUserID)
}

func TestLeaseUpdatePreservesIdentity(t *testing.T) {
	f := newLeaseFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, &domain.LeaseRequest{
		PropertyID:     f.propertyID,
		CustomerUserID: f.customerID,
		MonthlyRent:    1200,
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, created.LeaseID, &domain.LeaseRequest{
		PropertyID:     f.propertyID,
		CustomerUserID: f.customerID,
		MonthlyRent:    1300,
		IsSigned:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, created.LeaseID, updated.LeaseID)
	assert.Equal(t, 1300.0, updated.MonthlyRent)
	assert.True(t, updated.IsSigned)
}
