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

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

type customerRepo struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, phno, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id, created_at
	`, customer.FirstName, customer.LastName, customer.Email, customer.Phno,
		customer.PasswordHash, domain.RoleCustomer,
	).Scan(&customer.UserID, &customer.CreatedAt)
	if err != nil {
		if xerrors.IsUniqueViolation(err) {
			return xerrors.ErrEmailAlreadyInUse
		}
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO customers (user_id, dob) VALUES ($1, $2)
	`, customer.UserID, customer.Dob)
	if err != nil {
		return err
	}

	customer.Role = domain.RoleCustomer
	return tx.Commit(ctx)
}

const customerSelect = `
	SELECT u.user_id, u.first_name, u.last_name, u.email, u.phno,
	       u.password_hash, u.role, u.created_at, c.dob
	FROM customers c
	JOIN users u ON u.user_id = c.user_id
`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.UserID, &c.FirstName, &c.LastName, &c.Email, &c.Phno,
		&c.PasswordHash, &c.Role, &c.CreatedAt, &c.Dob)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := scanCustomer(r.db.QueryRow(ctx, customerSelect+` WHERE c.user_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: customer %d", xerrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *customerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	customer, err := scanCustomer(r.db.QueryRow(ctx, customerSelect+` WHERE u.email = $1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: customer with email %s", xerrors.ErrNotFound, email)
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *customerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, customerSelect+` ORDER BY u.user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *customerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, phno = $3, password_hash = $4
		WHERE user_id = $5
	`, customer.FirstName, customer.LastName, customer.Phno, customer.PasswordHash, customer.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %d", xerrors.ErrNotFound, customer.UserID)
	}

	_, err = tx.Exec(ctx, `UPDATE customers SET dob = $1 WHERE user_id = $2`,
		customer.Dob, customer.UserID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *customerRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM customers WHERE user_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %d", xerrors.ErrNotFound, id)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
