package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sak2803shi/RentalHub/internal/payment/domain"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ListByCustomer(ctx context.Context, customerUserID int64) ([]domain.Payment, error)
	ListByOwner(ctx context.Context, ownerUserID int64) ([]domain.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type paymentRepo struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	query := `
		INSERT INTO payments (lease_id, customer_user_id, owner_user_id,
			amount, payment_method, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING payment_id, payment_date
	`

	return r.db.QueryRow(ctx, query,
		p.LeaseID, p.CustomerUserID, p.OwnerUserID,
		p.Amount, p.PaymentMethod, p.Status,
	).Scan(&p.PaymentID, &p.PaymentDate)
}

const paymentSelect = `
	SELECT payment_id, lease_id, customer_user_id, owner_user_id,
	       amount, payment_method, status, payment_date
	FROM payments
`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.PaymentID, &p.LeaseID, &p.CustomerUserID, &p.OwnerUserID,
		&p.Amount, &p.PaymentMethod, &p.Status, &p.PaymentDate)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepo) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, paymentSelect+` WHERE payment_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: payment %d", xerrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	return r.list(ctx, paymentSelect+` ORDER BY payment_id`)
}

func (r *paymentRepo) ListByCustomer(ctx context.Context, customerUserID int64) ([]domain.Payment, error) {
	return r.list(ctx, paymentSelect+` WHERE customer_user_id = $1 ORDER BY payment_id`, customerUserID)
}

func (r *paymentRepo) ListByOwner(ctx context.Context, ownerUserID int64) ([]domain.Payment, error) {
	return r.list(ctx, paymentSelect+` WHERE owner_user_id = $1 ORDER BY payment_id`, ownerUserID)
}

func (r *paymentRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

func (r *paymentRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE payments SET status = $1 WHERE payment_id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: payment %d", xerrors.ErrNotFound, id)
	}
	return nil
}

func (r *paymentRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: payment %d", xerrors.ErrNotFound, id)
	}
	return nil
}
