package handler

import (
	"net/http"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/service"
	"github.com/Sak2803shi/RentalHub/pkg/response"

	"go.uber.org/zap"
)

type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := decode(r, &req); err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		response.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}
