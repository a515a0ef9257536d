package service

import (
	"context"
	"fmt"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/repository"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"go.uber.org/zap"
)

type LeaseService struct {
	leases     repository.LeaseRepository
	properties repository.PropertyRepository
	customers  repository.CustomerRepository
	owners     repository.OwnerRepository
	logger     *zap.Logger
}

func NewLeaseService(
	leases repository.LeaseRepository,
	properties repository.PropertyRepository,
	customers repository.CustomerRepository,
	owners repository.OwnerRepository,
	logger *zap.Logger,
) *LeaseService {
	return &LeaseService{
		leases:     leases,
		properties: properties,
		customers:  customers,
		owners:     owners,
		logger:     logger,
	}
}

func (s *LeaseService) Create(ctx context.Context, req *domain.LeaseRequest) (*domain.LeaseResponse, error) {
	lease, err := s.fromRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.leases.Create(ctx, lease); err != nil {
		return nil, err
	}

	s.logger.Info("lease created",
		zap.Int64("lease_id", lease.LeaseID),
		zap.Int64("property_id", lease.PropertyID),
		zap.Int64("customer_id", lease.CustomerUserID))

	resp := lease.ToResponse()
	return &resp, nil
}

func (s *LeaseService) GetAll(ctx context.Context) ([]domain.LeaseResponse, error) {
	return s.toResponses(s.leases.List(ctx))
}

func (s *LeaseService) GetByCustomer(ctx context.Context, customerID int64) ([]domain.LeaseResponse, error) {
	return s.toResponses(s.leases.ListByCustomer(ctx, customerID))
}

func (s *LeaseService) GetByID(ctx context.Context, id int64) (*domain.LeaseResponse, error) {
	lease, err := s.leases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := lease.ToResponse()
	return &resp, nil
}

func (s *LeaseService) Update(ctx context.Context, id int64, req *domain.LeaseRequest) (*domain.LeaseResponse, error) {
	existing, err := s.leases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lease, err := s.fromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	lease.LeaseID = existing.LeaseID
	lease.CreatedAt = existing.CreatedAt

	if err := s.leases.Update(ctx, lease); err != nil {
		return nil, err
	}
	resp := lease.ToResponse()
	return &resp, nil
}

func (s *LeaseService) Delete(ctx context.Context, id int64) error {
	return s.leases.Delete(ctx, id)
}

func (s *LeaseService) fromRequest(ctx context.Context, req *domain.LeaseRequest) (*domain.Lease, error) {
	if req.PropertyID == 0 || req.CustomerUserID == 0 {
		return nil, fmt.Errorf("%w: property and customer are required", xerrors.ErrValidation)
	}
	if req.MonthlyRent <= 0 {
		return nil, fmt.Errorf("%w: monthly rent must be greater than 0", xerrors.ErrValidation)
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, fmt.Errorf("%w: end date must be after start date", xerrors.ErrValidation)
	}

	if _, err := s.properties.GetByID(ctx, req.PropertyID); err != nil {
		return nil, err
	}
	if _, err := s.customers.GetByID(ctx, req.CustomerUserID); err != nil {
		return nil, err
	}
	if req.OwnerUserID != nil {
		if _, err := s.owners.GetByID(ctx, *req.OwnerUserID); err != nil {
			return nil, err
		}
	}

	return &domain.Lease{
		PropertyID:      req.PropertyID,
		CustomerUserID:  req.CustomerUserID,
		OwnerUserID:     req.OwnerUserID,
		StartDate:       start,
		EndDate:         end,
		MonthlyRent:     req.MonthlyRent,
		SecurityDeposit: req.SecurityDeposit,
		IsSigned:        req.IsSigned,
	}, nil
}

func (s *LeaseService) toResponses(leases []domain.Lease, err error) ([]domain.LeaseResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]domain.LeaseResponse, 0, len(leases))
	for i := range leases {
		out = append(out, leases[i].ToResponse())
	}
	return out, nil
}
