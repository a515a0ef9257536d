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

type OwnerRepository interface {
	Create(ctx context.Context, owner *domain.Owner) error
	GetByID(ctx context.Context, id int64) (*domain.Owner, error)
	GetByEmail(ctx context.Context, email string) (*domain.Owner, error)
	List(ctx context.Context) ([]domain.Owner, error)
	Update(ctx context.Context, owner *domain.Owner) error
	Delete(ctx context.Context, id int64) error
}

type ownerRepo struct {
	db *pgxpool.Pool
}

func NewOwnerRepository(db *pgxpool.Pool) OwnerRepository {
	return &ownerRepo{db: db}
}

// Create inserts the identity row and the owner row inside one
// transaction so a half-registered owner can never exist.
func (r *ownerRepo) Create(ctx context.Context, owner *domain.Owner) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, phno, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id, created_at
	`, owner.FirstName, owner.LastName, owner.Email, owner.Phno,
		owner.PasswordHash, domain.RoleOwner,
	).Scan(&owner.UserID, &owner.CreatedAt)
	if err != nil {
		if xerrors.IsUniqueViolation(err) {
			return xerrors.ErrEmailAlreadyInUse
		}
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO owners (user_id, dob, verified_status)
		VALUES ($1, $2, $3)
	`, owner.UserID, owner.Dob, owner.VerifiedStatus)
	if err != nil {
		return err
	}

	owner.Role = domain.RoleOwner
	return tx.Commit(ctx)
}

const ownerSelect = `
	SELECT u.user_id, u.first_name, u.last_name, u.email, u.phno,
	       u.password_hash, u.role, u.created_at, o.dob, o.verified_status
	FROM owners o
	JOIN users u ON u.user_id = o.user_id
`

func scanOwner(row pgx.Row) (*domain.Owner, error) {
	var o domain.Owner
	err := row.Scan(&o.UserID, &o.FirstName, &o.LastName, &o.Email, &o.Phno,
		&o.PasswordHash, &o.Role, &o.CreatedAt, &o.Dob, &o.VerifiedStatus)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id int64) (*domain.Owner, error) {
	owner, err := scanOwner(r.db.QueryRow(ctx, ownerSelect+` WHERE o.user_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: owner %d", xerrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return owner, nil
}

func (r *ownerRepo) GetByEmail(ctx context.Context, email string) (*domain.Owner, error) {
	owner, err := scanOwner(r.db.QueryRow(ctx, ownerSelect+` WHERE u.email = $1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: owner with email %s", xerrors.ErrNotFound, email)
	}
	if err != nil {
		return nil, err
	}
	return owner, nil
}

func (r *ownerRepo) List(ctx context.Context) ([]domain.Owner, error) {
	rows, err := r.db.Query(ctx, ownerSelect+` ORDER BY u.user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owners []domain.Owner
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		owners = append(owners, *o)
	}
	return owners, rows.Err()
}

func (r *ownerRepo) Update(ctx context.Context, owner *domain.Owner) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, phno = $3, password_hash = $4
		WHERE user_id = $5
	`, owner.FirstName, owner.LastName, owner.Phno, owner.PasswordHash, owner.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: owner %d", xerrors.ErrNotFound, owner.UserID)
	}

	_, err = tx.Exec(ctx, `
		UPDATE owners SET dob = $1, verified_status = $2 WHERE user_id = $3
	`, owner.Dob, owner.VerifiedStatus, owner.UserID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *ownerRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM owners WHERE user_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: owner %d", xerrors.ErrNotFound, id)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
