package handler

import (
	"net/http"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/service"
	"github.com/Sak2803shi/RentalHub/pkg/response"

	"go.uber.org/zap"
)

type AdminHandler struct {
	admin  *service.AdminService
	logger *zap.Logger
}

func NewAdminHandler(admin *service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, logger: logger}
}

func (h *AdminHandler) AddOwner(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := decode(r, &req); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.admin.AddOwner(r.Context(), &req)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, resp)
}

func (h *AdminHandler) AddAgent(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := decode(r, &req); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.admin.AddAgent(r.Context(), &req)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, resp)
}

func (h *AdminHandler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := decode(r, &req); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.admin.AddCustomer(r.Context(), &req)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, resp)
}

func (h *AdminHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.admin.GetAllUsers(r.Context())
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	var req domain.RegisterRequest
	if err := decode(r, &req); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.admin.UpdateUser(r.Context(), id, &req)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	if err := h.admin.DeleteUser(r.Context(), id); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
