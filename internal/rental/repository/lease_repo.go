package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LeaseRepository interface {
	Create(ctx context.Context, lease *domain.Lease) error
	GetByID(ctx context.Context, id int64) (*domain.Lease, error)
	List(ctx context.Context) ([]domain.Lease, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Lease, error)
	Update(ctx context.Context, lease *domain.Lease) error
	Delete(ctx context.Context, id int64) error
}

type leaseRepo struct {
	db *pgxpool.Pool
}

func NewLeaseRepository(db *pgxpool.Pool) LeaseRepository {
	return &leaseRepo{db: db}
}

func (r *leaseRepo) Create(ctx context.Context, l *domain.Lease) error {
	query := `
		INSERT INTO lease_agreements (property_id, customer_id, owner_id,
			start_date, end_date, monthly_rent, security_deposit, is_signed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING lease_id, created_at
	`

	return r.db.QueryRow(ctx, query,
		l.PropertyID, l.CustomerUserID, l.OwnerUserID,
		l.StartDate, l.EndDate, l.MonthlyRent, l.SecurityDeposit, l.IsSigned,
	).Scan(&l.LeaseID, &l.CreatedAt)
}

const leaseSelect = `
	SELECT lease_id, property_id, customer_id, owner_id,
	       start_date, end_date, monthly_rent, security_deposit, is_signed, created_at
	FROM lease_agreements
`

func scanLease(row pgx.Row) (*domain.Lease, error) {
	var l domain.Lease
	err := row.Scan(&l.LeaseID, &l.PropertyID, &l.CustomerUserID, &l.OwnerUserID,
		&l.StartDate, &l.EndDate, &l.MonthlyRent, &l.SecurityDeposit, &l.IsSigned, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *leaseRepo) GetByID(ctx context.Context, id int64) (*domain.Lease, error) {
	l, err := scanLease(r.db.QueryRow(ctx, leaseSelect+` WHERE lease_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: lease %d", xerrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *leaseRepo) List(ctx context.Context) ([]domain.Lease, error) {
	return r.list(ctx, leaseSelect+` ORDER BY lease_id`)
}

func (r *leaseRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Lease, error) {
	return r.list(ctx, leaseSelect+` WHERE customer_id = $1 ORDER BY lease_id`, customerID)
}

func (r *leaseRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Lease, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leases []domain.Lease
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		leases = append(leases, *l)
	}
	return leases, rows.Err()
}

func (r *leaseRepo) Update(ctx context.Context, l *domain.Lease) error {
	query := `
		UPDATE lease_agreements
		SET property_id = $1, customer_id = $2, owner_id = $3, start_date = $4,
		    end_date = $5, monthly_rent = $6, security_deposit = $7, is_signed = $8
		WHERE lease_id = $9
	`

	tag, err := r.db.Exec(ctx, query,
		l.PropertyID, l.CustomerUserID, l.OwnerUserID, l.StartDate,
		l.EndDate, l.MonthlyRent, l.SecurityDeposit, l.IsSigned, l.LeaseID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: lease %d", xerrors.ErrNotFound, l.LeaseID)
	}
	return nil
}

func (r *leaseRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM lease_agreements WHERE lease_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: lease %d", xerrors.ErrNotFound, id)
	}
	return nil
}
