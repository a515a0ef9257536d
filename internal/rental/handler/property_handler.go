package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/service"
	"github.com/Sak2803shi/RentalHub/pkg/response"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"go.uber.org/zap"
)

type PropertyHandler struct {
	properties *service.PropertyService
	logger     *zap.Logger
}

func NewPropertyHandler(properties *service.PropertyService, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{properties: properties, logger: logger}
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.PropertyRequest
	if err := decode(r, &req); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.properties.Create(r.Context(), caller(r), &req)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, resp)
}

func (h *PropertyHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.properties.GetAll(r.Context())
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *PropertyHandler) GetAvailable(w http.ResponseWriter, r *http.Request) {
	resp, err := h.properties.GetAvailable(r.Context())
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *PropertyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.properties.GetByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *PropertyHandler) GetByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathID(r, "ownerId")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.properties.GetByOwner(r.Context(), ownerID)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *PropertyHandler) GetByAgent(w http.ResponseWriter, r *http.Request) {
	agentID, err := pathID(r, "agentId")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.properties.GetByAgent(r.Context(), agentID)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	var req domain.PropertyRequest
	if err := decode(r, &req); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.properties.Update(r.Context(), caller(r), id, &req)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

// SetAvailability toggles listing visibility via ?status=true|false.
func (h *PropertyHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	status, err := strconv.ParseBool(r.URL.Query().Get("status"))
	if err != nil {
		response.WriteError(w, r, h.logger,
			fmt.Errorf("%w: status must be true or false", xerrors.ErrInvalidInput))
		return
	}

	if err := h.properties.SetAvailability(r.Context(), caller(r), id, status); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	if err := h.properties.Delete(r.Context(), caller(r), id); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
