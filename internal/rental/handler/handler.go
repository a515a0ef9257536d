package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/service"
	"github.com/Sak2803shi/RentalHub/pkg/middleware"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"github.com/go-chi/chi/v5"
)

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", xerrors.ErrInvalidInput, name, raw)
	}
	return id, nil
}

func decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", xerrors.ErrInvalidInput)
	}
	return nil
}

// caller lifts the authenticated identity out of the request context
// into the service-layer type.
func caller(r *http.Request) service.Caller {
	id, _ := middleware.IdentityFromContext(r.Context())
	return service.Caller{
		UserID: id.UserID,
		Email:  id.Email,
		Role:   domain.Role(id.Role),
	}
}
