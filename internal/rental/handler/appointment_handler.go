package handler

import (
	"net/http"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/service"
	"github.com/Sak2803shi/RentalHub/pkg/response"

	"go.uber.org/zap"
)

type AppointmentHandler struct {
	appointments *service.AppointmentService
	logger       *zap.Logger
}

func NewAppointmentHandler(appointments *service.AppointmentService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments, logger: logger}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.AppointmentRequest
	if err := decode(r, &req); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.appointments.Create(r.Context(), &req)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, resp)
}

func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.appointments.GetAll(r.Context())
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *AppointmentHandler) GetByCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.appointments.GetByCustomer(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *AppointmentHandler) GetByOwner(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.appointments.GetByOwner(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *AppointmentHandler) GetByAgent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.appointments.GetByAgent(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	var req domain.AppointmentUpdateRequest
	if err := decode(r, &req); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.appointments.Update(r.Context(), id, &req)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	if err := h.appointments.Delete(r.Context(), id); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
