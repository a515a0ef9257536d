package handler

import (
	"net/http"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/service"
	"github.com/Sak2803shi/RentalHub/pkg/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AgentHandler struct {
	agents *service.AgentService
	logger *zap.Logger
}

func NewAgentHandler(agents *service.AgentService, logger *zap.Logger) *AgentHandler {
	return &AgentHandler{agents: agents, logger: logger}
}

func (h *AgentHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := decode(r, &req); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.agents.Register(r.Context(), &req)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, resp)
}

func (h *AgentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.agents.GetAll(r.Context())
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *AgentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.agents.GetByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *AgentHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	resp, err := h.agents.GetByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *AgentHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.agents.Update(r.Context(), id, &req)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

func (h *AgentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	if err := h.agents.Delete(r.Context(), id); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
