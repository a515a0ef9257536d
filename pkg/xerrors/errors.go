package xerrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Generic
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicate      = errors.New("duplicate resource")
	ErrAccessDenied   = errors.New("access denied")
	ErrValidation     = errors.New("validation error")
	ErrInvalidInput   = errors.New("invalid input provided")
	ErrInternalServer = errors.New("internal server error")
	ErrUnauthorized   = errors.New("unauthorized")
)

// Users / registration
var (
	ErrEmailAlreadyInUse  = fmt.Errorf("%w: email already registered", ErrDuplicate)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
)

// Appointments
var (
	ErrHandlerRequired     = fmt.Errorf("%w: provide either ownerId or agentId, not both", ErrInvalidInput)
	ErrPropertyUnavailable = fmt.Errorf("%w: property is not available", ErrInvalidInput)
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (e.g. duplicate email).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
