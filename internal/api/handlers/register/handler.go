package register

import (
	"errors"
	"net/http"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	authService "github.com/thalibook/thalibook-api/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailTaken         = "пользователь с таким email уже существует"
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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("[register.Handle] Некорректное тело запроса: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("[register.Handle] Некорректные данные регистрации: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, authService.ErrEmailTaken):
			h.logger.Warn("[register.Handle] Email уже занят: %v", err)
			handlers.RespondConflict(w, msgEmailTaken)
		default:
			h.logger.Error("[register.Handle] Ошибка регистрации: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, resp)
}
