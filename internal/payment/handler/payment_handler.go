package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Sak2803shi/RentalHub/internal/payment/domain"
	"github.com/Sak2803shi/RentalHub/internal/payment/usecase"
	"github.com/Sak2803shi/RentalHub/pkg/response"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	payments *usecase.PaymentUsecase
	logger   *zap.Logger
}

func NewPaymentHandler(payments *usecase.PaymentUsecase, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, logger: logger}
}

// bearerToken extracts the caller's token for forwarding. Tokens are not
// verified here; the rental service rejects bad ones on the upstream call.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

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

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.PaymentRequest
	if err := decode(r, &req); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.payments.Create(r.Context(), bearerToken(r), &req)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, resp)
}

func (h *PaymentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payments.GetAll(r.Context(), bearerToken(r))
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.payments.GetByID(r.Context(), bearerToken(r), id)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *PaymentHandler) GetByCustomer(w http.ResponseWriter, r *http.Request) {
	customerUserID, err := pathID(r, "customerUserId")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.payments.GetByCustomer(r.Context(), bearerToken(r), customerUserID)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *PaymentHandler) GetByOwner(w http.ResponseWriter, r *http.Request) {
	ownerUserID, err := pathID(r, "ownerUserId")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.payments.GetByOwner(r.Context(), bearerToken(r), ownerUserID)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *PaymentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	var req domain.StatusUpdateRequest
	if err := decode(r, &req); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.payments.UpdateStatus(r.Context(), bearerToken(r), id, req.Status)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	if err := h.payments.Delete(r.Context(), id); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
