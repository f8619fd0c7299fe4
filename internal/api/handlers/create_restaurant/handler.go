package create_restaurant

import (
	"errors"
	"net/http"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	"github.com/thalibook/thalibook-api/internal/api/middleware"
	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantsService "github.com/thalibook/thalibook-api/internal/service/restaurants"
	"github.com/thalibook/thalibook-api/internal/service/restaurants/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgManagerOnly        = "создавать ресторан может только менеджер"
	msgDuplicateName      = "ресторан с таким названием уже существует"
)

type Handler struct {
	service RestaurantService
	logger  Logger
}

func NewHandler(service RestaurantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	role := domain.Role(claims.Role)
	if role != domain.RoleManager && role != domain.RoleAdmin {
		h.logger.Warn("[create_restaurant.Handle] Попытка создания ресторана с ролью %s (пользователь %d)",
			claims.Role, claims.UserID)
		handlers.RespondForbidden(w, msgManagerOnly)
		return
	}

	var req models.CreateRestaurantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("[create_restaurant.Handle] Некорректное тело запроса: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), claims.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, restaurantsService.ErrInvalidInput):
			h.logger.Warn("[create_restaurant.Handle] Некорректные данные ресторана: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, restaurantsService.ErrDuplicateName):
			h.logger.Warn("[create_restaurant.Handle] Название занято: %q", req.Name)
			handlers.RespondConflict(w, msgDuplicateName)
		default:
			h.logger.Error("[create_restaurant.Handle] Ошибка создания ресторана: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, resp)
}
