package service

import (
	"context"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminService exposes the management surface: admins can register any
// role and operate on the shared identity table directly.
type AdminService struct {
	users     repository.UserRepository
	owners    *OwnerService
	agents    *AgentService
	customers *CustomerService
	logger    *zap.Logger
}

func NewAdminService(
	users repository.UserRepository,
	owners *OwnerService,
	agents *AgentService,
	customers *CustomerService,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		users:     users,
		owners:    owners,
		agents:    agents,
		customers: customers,
		logger:    logger,
	}
}

func (s *AdminService) AddOwner(ctx context.Context, req *domain.RegisterRequest) (*domain.OwnerResponse, error) {
	return s.owners.Register(ctx, req)
}

func (s *AdminService) AddAgent(ctx context.Context, req *domain.RegisterRequest) (*domain.AgentResponse, error) {
	return s.agents.Register(ctx, req)
}

func (s *AdminService) AddCustomer(ctx context.Context, req *domain.RegisterRequest) (*domain.CustomerResponse, error) {
	return s.customers.Register(ctx, req)
}

func (s *AdminService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	// An empty table encodes as [], matching the other list endpoints.
	out := make([]domain.User, 0, len(users))
	out = append(out, users...)
	return out, nil
}

func (s *AdminService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *AdminService) UpdateUser(ctx context.Context, id int64, req *domain.RegisterRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phno = req.Phno

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted by admin", zap.Int64("user_id", id))
	return nil
}
