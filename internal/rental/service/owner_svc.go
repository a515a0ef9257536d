package service

import (
	"context"
	"fmt"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/repository"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type OwnerService struct {
	owners repository.OwnerRepository
	logger *zap.Logger
}

func NewOwnerService(owners repository.OwnerRepository, logger *zap.Logger) *OwnerService {
	return &OwnerService{owners: owners, logger: logger}
}

func (s *OwnerService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.OwnerResponse, error) {
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

	owner := &domain.Owner{
		User: domain.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			Phno:         req.Phno,
			PasswordHash: string(hash),
		},
		Dob:            dob,
		VerifiedStatus: false,
	}

	if err := s.owners.Create(ctx, owner); err != nil {
		return nil, err
	}

	s.logger.Info("owner registered", zap.Int64("user_id", owner.UserID))
	return ownerToResponse(owner), nil
}

func (s *OwnerService) GetAll(ctx context.Context) ([]domain.OwnerResponse, error) {
	owners, err := s.owners.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.OwnerResponse, 0, len(owners))
	for i := range owners {
		out = append(out, *ownerToResponse(&owners[i]))
	}
	return out, nil
}

func (s *OwnerService) GetByID(ctx context.Context, id int64) (*domain.OwnerResponse, error) {
	owner, err := s.owners.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ownerToResponse(owner), nil
}

func (s *OwnerService) GetByEmail(ctx context.Context, email string) (*domain.OwnerResponse, error) {
	owner, err := s.owners.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return ownerToResponse(owner), nil
}

// Update overwrites profile fields; email and role never change, and
// the password is only re-hashed when one is supplied.
func (s *OwnerService) Update(ctx context.Context, id int64, req *domain.RegisterRequest) (*domain.OwnerResponse, error) {
	owner, err := s.owners.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dob, err := parseDate(req.Dob)
	if err != nil {
		return nil, err
	}

	owner.FirstName = req.FirstName
	owner.LastName = req.LastName
	owner.Phno = req.Phno
	owner.Dob = dob

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		owner.PasswordHash = string(hash)
	}

	if err := s.owners.Update(ctx, owner); err != nil {
		return nil, err
	}
	return ownerToResponse(owner), nil
}

func (s *OwnerService) Delete(ctx context.Context, id int64) error {
	return s.owners.Delete(ctx, id)
}

func validateRegistration(req *domain.RegisterRequest) error {
	switch {
	case req.Email == "":
		return fmt.Errorf("%w: email is required", xerrors.ErrValidation)
	case req.Password == "":
		return fmt.Errorf("%w: password is required", xerrors.ErrValidation)
	case req.FirstName == "":
		return fmt.Errorf("%w: first name is required", xerrors.ErrValidation)
	}
	return nil
}

func ownerToResponse(o *domain.Owner) *domain.OwnerResponse {
	return &domain.OwnerResponse{
		UserID:         o.UserID,
		FirstName:      o.FirstName,
		LastName:       o.LastName,
		Email:          o.Email,
		Phno:           o.Phno,
		Dob:            domain.FormatDate(o.Dob),
		VerifiedStatus: o.VerifiedStatus,
		Role:           o.Role,
	}
}
