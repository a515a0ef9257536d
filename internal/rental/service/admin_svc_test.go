package service

import (
	"context"
	"testing"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAdminGetAllUsersEmptyIsNotNil(t *testing.T) {
	svc := NewAdminService(newFakeUserRepo(), nil, nil, nil, zap.NewNop())

	users, err := svc.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users, "an empty user table must encode as [], not null")
	assert.Empty(t, users)
}

func TestAdminRegistersOnBehalf(t *testing.T) {
	users := newFakeUserRepo()
	logger := zap.NewNop()
	owners := NewOwnerService(newFakeOwnerRepo(), logger)
	agents := NewAgentService(newFakeAgentRepo(), logger)
	customers := NewCustomerService(newFakeCustomerRepo(), nil, nil, nil, logger)
	svc := NewAdminService(users, owners, agents, customers, logger)
	ctx := context.Background()

	owner, err := svc.AddOwner(ctx, &domain.RegisterRequest{
		FirstName: "Olive", Email: "olive@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOwner, owner.Role)

	agent, err := svc.AddAgent(ctx, &domain.RegisterRequest{
		FirstName: "Archie", Email: "archie@example.com", Password: "secret123",
		AgencyName: "Archway Homes", CommissionRate: 2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAgent, agent.Role)

	customer, err := svc.AddCustomer(ctx, &domain.RegisterRequest{
		FirstName: "Cara", Email: "cara@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, customer.Role)
}
