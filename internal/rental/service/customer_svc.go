package service

import (
	"context"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type CustomerService struct {
	customers    repository.CustomerRepository
	appointments *AppointmentService
	leases       *LeaseService
	properties   *PropertyService
	logger       *zap.Logger
}

func NewCustomerService(
	customers repository.CustomerRepository,
	appointments *AppointmentService,
	leases *LeaseService,
	properties *PropertyService,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customers:    customers,
		appointments: appointments,
		leases:       leases,
		properties:   properties,
		logger:       logger,
	}
}

func (s *CustomerService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.CustomerResponse, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	dob, err := parseDate(req.Dob)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		User: domain.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			Phno:         req.Phno,
			PasswordHash: string(hash),
		},
		Dob: dob,
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer registered", zap.Int64("user_id", customer.UserID))
	return customerToResponse(customer), nil
}

func (s *CustomerService) GetAll(ctx context.Context) ([]domain.CustomerResponse, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, *customerToResponse(&customers[i]))
	}
	return out, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*domain.CustomerResponse, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

func (s *CustomerService) GetByEmail(ctx context.Context, email string) (*domain.CustomerResponse, error) {
	customer, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, req *domain.RegisterRequest) (*domain.CustomerResponse, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dob, err := parseDate(req.Dob)
	if err != nil {
		return nil, err
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Phno = req.Phno
	customer.Dob = dob

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		customer.PasswordHash = string(hash)
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.customers.Delete(ctx, id)
}

// Dashboard fans out over the customer's profile, appointments and
// leases plus the global list of available properties. The three
// collection fetches are independent reads; a write landing between
// them can make the combined view slightly stale.
func (s *CustomerService) Dashboard(ctx context.Context, id int64) (*domain.CustomerDashboard, error) {
	profile, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	appointments, err := s.appointments.GetByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	leases, err := s.leases.GetByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	properties, err := s.properties.GetAvailable(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.CustomerDashboard{
		Profile:      *profile,
		Appointments: appointments,
		Leases:       leases,
		Properties:   properties,
	}, nil
}

func customerToResponse(c *domain.Customer) *domain.CustomerResponse {
	return &domain.CustomerResponse{
		UserID:    c.UserID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phno:      c.Phno,
		Dob:       domain.FormatDate(c.Dob),
		Role:      c.Role,
		CreatedAt: c.CreatedAt,
	}
}
