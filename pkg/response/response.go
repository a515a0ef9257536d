package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"go.uber.org/zap"
)

// ErrorResponse is the error body every failure returns. ErrorCode is a
// stable machine-readable code clients can branch on.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	ErrorCode string    `json:"errorCode"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	JSON(w, status, ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		ErrorCode: code,
		Message:   msg,
		Path:      r.URL.Path,
	})
}

// WriteError maps a domain error to its HTTP status and error code.
// Unexpected errors are genericized so internals never leak to clients;
// the original error is logged server-side.
func WriteError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	status, code := classify(err)

	msg := err.Error()
	if code == "INTERNAL_SERVER_ERROR" {
		logger.Error("unhandled error",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		msg = "Something went wrong. Please try again later."
	}

	Error(w, r, status, code, msg)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, xerrors.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, xerrors.ErrDuplicate):
		return http.StatusConflict, "DUPLICATE_RESOURCE"
	case errors.Is(err, xerrors.ErrAccessDenied):
		return http.StatusForbidden, "ACCESS_DENIED"
	case errors.Is(err, xerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "ACCESS_DENIED"
	case errors.Is(err, xerrors.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, xerrors.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_INPUT"
	default:
		return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
	}
}
