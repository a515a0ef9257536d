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

type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context) ([]domain.Property, error)
	ListAvailable(ctx context.Context) ([]domain.Property, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Property, error)
	ListByAgent(ctx context.Context, agentID int64) ([]domain.Property, error)
	Update(ctx context.Context, property *domain.Property) error
	SetAvailability(ctx context.Context, id int64, available bool) error
	Delete(ctx context.Context, id int64) error
}

type propertyRepo struct {
	db *pgxpool.Pool
}

func NewPropertyRepository(db *pgxpool.Pool) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *domain.Property) error {
	query := `
		INSERT INTO properties (title, description, address, rent_amount,
			property_type, is_available, owner_id, agent_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING property_id, created_at
	`

	return r.db.QueryRow(ctx, query,
		p.Title, p.Description, p.Address, p.RentAmount,
		p.PropertyType, p.IsAvailable, p.OwnerID, p.AgentID,
	).Scan(&p.PropertyID, &p.CreatedAt)
}

// propertySelect joins the owner and the optional agent so responses
// carry display names without a second round trip.
const propertySelect = `
	SELECT p.property_id, p.title, p.description, p.address, p.rent_amount,
	       p.property_type, p.is_available, p.created_at,
	       p.owner_id, ou.first_name || ' ' || ou.last_name, ou.email,
	       p.agent_id, au.first_name || ' ' || au.last_name
	FROM properties p
	JOIN users ou ON ou.user_id = p.owner_id
	LEFT JOIN users au ON au.user_id = p.agent_id
`

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(&p.PropertyID, &p.Title, &p.Description, &p.Address, &p.RentAmount,
		&p.PropertyType, &p.IsAvailable, &p.CreatedAt,
		&p.OwnerID, &p.OwnerName, &p.OwnerEmail,
		&p.AgentID, &p.AgentName)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepo) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	p, err := scanProperty(r.db.QueryRow(ctx, propertySelect+` WHERE p.property_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: property %d", xerrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *propertyRepo) List(ctx context.Context) ([]domain.Property, error) {
	return r.list(ctx, propertySelect+` ORDER BY p.property_id`)
}

func (r *propertyRepo) ListAvailable(ctx context.Context) ([]domain.Property, error) {
	return r.list(ctx, propertySelect+` WHERE p.is_available ORDER BY p.property_id`)
}

func (r *propertyRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Property, error) {
	return r.list(ctx, propertySelect+` WHERE p.owner_id = $1 ORDER BY p.property_id`, ownerID)
}

func (r *propertyRepo) ListByAgent(ctx context.Context, agentID int64) ([]domain.Property, error) {
	return r.list(ctx, propertySelect+` WHERE p.agent_id = $1 ORDER BY p.property_id`, agentID)
}

func (r *propertyRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Property, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *p)
	}
	return properties, rows.Err()
}

func (r *propertyRepo) Update(ctx context.Context, p *domain.Property) error {
	query := `
		UPDATE properties
		SET title = $1, description = $2, address = $3, rent_amount = $4,
		    property_type = $5, is_available = $6, agent_id = $7
		WHERE property_id = $8
	`

	tag, err := r.db.Exec(ctx, query,
		p.Title, p.Description, p.Address, p.RentAmount,
		p.PropertyType, p.IsAvailable, p.AgentID, p.PropertyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: property %d", xerrors.ErrNotFound, p.PropertyID)
	}
	return nil
}

func (r *propertyRepo) SetAvailability(ctx context.Context, id int64, available bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE properties SET is_available = $1 WHERE property_id = $2`, available, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: property %d", xerrors.ErrNotFound, id)
	}
	return nil
}

func (r *propertyRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE property_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: property %d", xerrors.ErrNotFound, id)
	}
	return nil
}
