package login

import (
	"errors"
	"net/http"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	authService "github.com/thalibook/thalibook-api/internal/service/auth"
	"github.com/thalibook/thalibook-api/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный email или пароль"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("[login.Handle] Некорректное тело запроса: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("[login.Handle] Неверные учётные данные: %s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
		default:
			h.logger.Error("[login.Handle] Ошибка входа: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
