package service

import (
	"fmt"
	"time"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"
)

// Caller is the authenticated identity threaded explicitly into
// authorization checks.
type Caller struct {
	UserID int64
	Email  string
	Role   domain.Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == domain.RoleAdmin
}

const dateLayout = "2006-01-02"

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", xerrors.ErrValidation, s)
	}
	return &t, nil
}
