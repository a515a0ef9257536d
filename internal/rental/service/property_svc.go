package service

import (
	"context"
	"fmt"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/repository"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"go.uber.org/zap"
)

type PropertyService struct {
	properties repository.PropertyRepository
	owners     repository.OwnerRepository
	agents     repository.AgentRepository
	logger     *zap.Logger
}

func NewPropertyService(
	properties repository.PropertyRepository,
	owners repository.OwnerRepository,
	agents repository.AgentRepository,
	logger *zap.Logger,
) *PropertyService {
	return &PropertyService{
		properties: properties,
		owners:     owners,
		agents:     agents,
		logger:     logger,
	}
}

func (s *PropertyService) Create(ctx context.Context, caller Caller, req *domain.PropertyRequest) (*domain.PropertyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	owner, err := s.owners.GetByID(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && caller.Email != owner.Email {
		return nil, fmt.Errorf("%w: you can only list properties you own", xerrors.ErrAccessDenied)
	}

	if req.AgentID != nil {
		if _, err := s.agents.GetByID(ctx, *req.AgentID); err != nil {
			return nil, err
		}
	}

	property := &domain.Property{
		Title:        req.Title,
		Description:  req.Description,
		Address:      req.Address,
		RentAmount:   req.RentAmount,
		PropertyType: req.PropertyType,
		IsAvailable:  req.IsAvailable,
		OwnerID:      req.OwnerID,
		OwnerName:    owner.FirstName + " " + owner.LastName,
		OwnerEmail:   owner.Email,
		AgentID:      req.AgentID,
	}

	if err := s.properties.Create(ctx, property); err != nil {
		return nil, err
	}

	s.logger.Info("property created",
		zap.Int64("property_id", property.PropertyID),
		zap.Int64("owner_id", property.OwnerID))

	resp := property.ToResponse()
	return &resp, nil
}

func (s *PropertyService) GetAll(ctx context.Context) ([]domain.PropertyResponse, error) {
	return s.toResponses(s.properties.List(ctx))
}

func (s *PropertyService) GetAvailable(ctx context.Context) ([]domain.PropertyResponse, error) {
	return s.toResponses(s.properties.ListAvailable(ctx))
}

func (s *PropertyService) GetByOwner(ctx context.Context, ownerID int64) ([]domain.PropertyResponse, error) {
	return s.toResponses(s.properties.ListByOwner(ctx, ownerID))
}

func (s *PropertyService) GetByAgent(ctx context.Context, agentID int64) ([]domain.PropertyResponse, error) {
	return s.toResponses(s.properties.ListByAgent(ctx, agentID))
}

func (s *PropertyService) GetByID(ctx context.Context, id int64) (*domain.PropertyResponse, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := property.ToResponse()
	return &resp, nil
}

func (s *PropertyService) Update(ctx context.Context, caller Caller, id int64, req *domain.PropertyRequest) (*domain.PropertyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	property, err := s.authorize(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if req.AgentID != nil {
		if _, err := s.agents.GetByID(ctx, *req.AgentID); err != nil {
			return nil, err
		}
	}

	property.Title = req.Title
	property.Description = req.Description
	property.Address = req.Address
	property.RentAmount = req.RentAmount
	property.PropertyType = req.PropertyType
	property.IsAvailable = req.IsAvailable
	property.AgentID = req.AgentID

	if err := s.properties.Update(ctx, property); err != nil {
		return nil, err
	}

	updated, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := updated.ToResponse()
	return &resp, nil
}

func (s *PropertyService) SetAvailability(ctx context.Context, caller Caller, id int64, available bool) error {
	if _, err := s.authorize(ctx, caller, id); err != nil {
		return err
	}
	return s.properties.SetAvailability(ctx, id, available)
}

func (s *PropertyService) Delete(ctx context.Context, caller Caller, id int64) error {
	if _, err := s.authorize(ctx, caller, id); err != nil {
		return err
	}

	if err := s.properties.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("property deleted", zap.Int64("property_id", id))
	return nil
}

// authorize loads the property and rejects callers who are neither the
// admin nor the listed owner. Ownership is matched on the owner's email
// so a stale token cannot act on a reassigned listing.
func (s *PropertyService) authorize(ctx context.Context, caller Caller, id int64) (*domain.Property, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && caller.Email != property.OwnerEmail {
		return nil, fmt.Errorf("%w: property %d does not belong to you", xerrors.ErrAccessDenied, id)
	}
	return property, nil
}

func (s *PropertyService) toResponses(properties []domain.Property, err error) ([]domain.PropertyResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]domain.PropertyResponse, 0, len(properties))
	for i := range properties {
		out = append(out, properties[i].ToResponse())
	}
	return out, nil
}
