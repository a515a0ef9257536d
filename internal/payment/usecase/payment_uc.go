package usecase

import (
	"context"
	"fmt"

	"github.com/Sak2803shi/RentalHub/internal/payment/domain"
	"github.com/Sak2803shi/RentalHub/internal/payment/repository"
	"github.com/Sak2803shi/RentalHub/pkg/client"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"go.uber.org/zap"
)

type PaymentUsecase struct {
	payments repository.PaymentRepository
	rental   client.RentalClient
	logger   *zap.Logger
}

func NewPaymentUsecase(payments repository.PaymentRepository, rental client.RentalClient, logger *zap.Logger) *PaymentUsecase {
	return &PaymentUsecase{payments: payments, rental: rental, logger: logger}
}

// Create records a payment only after the customer, owner and lease all
// resolve on the rental service. Any failed lookup aborts before the
// insert, so a payment row never references an id nobody can resolve.
func (u *PaymentUsecase) Create(ctx context.Context, token string, req *domain.PaymentRequest) (*domain.PaymentResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", xerrors.ErrValidation)
	}
	if req.PaymentMethod == "" {
		return nil, fmt.Errorf("%w: payment method is required", xerrors.ErrValidation)
	}

	customer, err := u.rental.GetCustomer(ctx, token, req.CustomerUserID)
	if err != nil {
		return nil, err
	}
	owner, err := u.rental.GetOwner(ctx, token, req.OwnerUserID)
	if err != nil {
		return nil, err
	}
	if _, err := u.rental.GetLease(ctx, token, req.LeaseID); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		LeaseID:        req.LeaseID,
		CustomerUserID: req.CustomerUserID,
		OwnerUserID:    req.OwnerUserID,
		Amount:         req.Amount,
		PaymentMethod:  req.PaymentMethod,
		Status:         domain.StatusPaid,
	}

	if err := u.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	u.logger.Info("payment recorded",
		zap.Int64("payment_id", payment.PaymentID),
		zap.Int64("lease_id", payment.LeaseID),
		zap.Float64("amount", payment.Amount))

	return u.enrichWith(payment, customer, owner), nil
}

func (u *PaymentUsecase) GetByID(ctx context.Context, token string, id int64) (*domain.PaymentResponse, error) {
	payment, err := u.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.enrich(ctx, token, payment)
}

func (u *PaymentUsecase) GetAll(ctx context.Context, token string) ([]domain.PaymentResponse, error) {
	payments, err := u.payments.List(ctx)
	return u.enrichAll(ctx, token, payments, err)
}

func (u *PaymentUsecase) GetByCustomer(ctx context.Context, token string, customerUserID int64) ([]domain.PaymentResponse, error) {
	payments, err := u.payments.ListByCustomer(ctx, customerUserID)
	return u.enrichAll(ctx, token, payments, err)
}

func (u *PaymentUsecase) GetByOwner(ctx context.Context, token string, ownerUserID int64) ([]domain.PaymentResponse, error) {
	payments, err := u.payments.ListByOwner(ctx, ownerUserID)
	return u.enrichAll(ctx, token, payments, err)
}

// UpdateStatus accepts any status string; there is no transition table.
func (u *PaymentUsecase) UpdateStatus(ctx context.Context, token string, id int64, status string) (*domain.PaymentResponse, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", xerrors.ErrValidation)
	}

	if err := u.payments.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.GetByID(ctx, token, id)
}

func (u *PaymentUsecase) Delete(ctx context.Context, id int64) error {
	return u.payments.Delete(ctx, id)
}

// enrich re-fetches the customer and owner names on every read instead
// of storing them. A deleted upstream user fails the read with NOT_FOUND.
func (u *PaymentUsecase) enrich(ctx context.Context, token string, p *domain.Payment) (*domain.PaymentResponse, error) {
	customer, err := u.rental.GetCustomer(ctx, token, p.CustomerUserID)
	if err != nil {
		return nil, err
	}
	owner, err := u.rental.GetOwner(ctx, token, p.OwnerUserID)
	if err != nil {
		return nil, err
	}
	return u.enrichWith(p, customer, owner), nil
}

func (u *PaymentUsecase) enrichWith(p *domain.Payment, customer *client.Customer, owner *client.Owner) *domain.PaymentResponse {
	return &domain.PaymentResponse{
		PaymentID:      p.PaymentID,
		LeaseID:        p.LeaseID,
		CustomerUserID: p.CustomerUserID,
		CustomerName:   customer.FirstName + " " + customer.LastName,
		OwnerUserID:    p.OwnerUserID,
		OwnerName:      owner.FirstName + " " + owner.LastName,
		Amount:         p.Amount,
		PaymentMethod:  p.PaymentMethod,
		Status:         p.Status,
		PaymentDate:    p.PaymentDate,
	}
}

func (u *PaymentUsecase) enrichAll(ctx context.Context, token string, payments []domain.Payment, err error) ([]domain.PaymentResponse, error) {
	if err != nil {
		return nil, err
	}

	out := make([]domain.PaymentResponse, 0, len(payments))
	for i := range payments {
		resp, err := u.enrich(ctx, token, &payments[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}
