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

type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context) ([]domain.Appointment, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Appointment, error)
	ListByHandler(ctx context.Context, by domain.HandledBy, handlerID int64) ([]domain.Appointment, error)
	Update(ctx context.Context, appt *domain.Appointment) error
	Delete(ctx context.Context, id int64) error
}

type appointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) Create(ctx context.Context, a *domain.Appointment) error {
	query := `
		INSERT INTO appointments (customer_id, property_id, handled_by, handler_id)
		VALUES ($1, $2, $3, $4)
		RETURNING appointment_id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		a.CustomerID, a.PropertyID, a.Handler.By, a.Handler.UserID,
	).Scan(&a.AppointmentID, &a.CreatedAt)
	if err != nil {
		if xerrors.IsUniqueViolation(err) {
			return fmt.Errorf("%w: customer already has an appointment for this property",
				xerrors.ErrDuplicate)
		}
		return err
	}
	return nil
}

const appointmentSelect = `
	SELECT a.appointment_id,
	       a.customer_id, cu.first_name || ' ' || cu.last_name,
	       a.property_id, p.title,
	       a.handled_by, a.handler_id, hu.first_name || ' ' || hu.last_name,
	       a.created_at
	FROM appointments a
	JOIN users cu ON cu.user_id = a.customer_id
	JOIN properties p ON p.property_id = a.property_id
	JOIN users hu ON hu.user_id = a.handler_id
`

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var a domain.Appointment
	err := row.Scan(&a.AppointmentID,
		&a.CustomerID, &a.CustomerName,
		&a.PropertyID, &a.PropertyTitle,
		&a.Handler.By, &a.Handler.UserID, &a.HandlerName,
		&a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	a, err := scanAppointment(r.db.QueryRow(ctx, appointmentSelect+` WHERE a.appointment_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: appointment %d", xerrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *appointmentRepo) List(ctx context.Context) ([]domain.Appointment, error) {
	return r.list(ctx, appointmentSelect+` ORDER BY a.appointment_id`)
}

func (r *appointmentRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Appointment, error) {
	return r.list(ctx, appointmentSelect+` WHERE a.customer_id = $1 ORDER BY a.appointment_id`, customerID)
}

func (r *appointmentRepo) ListByHandler(ctx context.Context, by domain.HandledBy, handlerID int64) ([]domain.Appointment, error) {
	return r.list(ctx,
		appointmentSelect+` WHERE a.handled_by = $1 AND a.handler_id = $2 ORDER BY a.appointment_id`,
		by, handlerID)
}

func (r *appointmentRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Appointment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, *a)
	}
	return appts, rows.Err()
}

func (r *appointmentRepo) Update(ctx context.Context, a *domain.Appointment) error {
	query := `
		UPDATE appointments
		SET property_id = $1, handled_by = $2, handler_id = $3
		WHERE appointment_id = $4
	`

	tag, err := r.db.Exec(ctx, query,
		a.PropertyID, a.Handler.By, a.Handler.UserID, a.AppointmentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: appointment %d", xerrors.ErrNotFound, a.AppointmentID)
	}
	return nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE appointment_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: appointment %d", xerrors.ErrNotFound, id)
	}
	return nil
}
