package update_restaurant

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	"github.com/thalibook/thalibook-api/internal/api/middleware"
	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantsService "github.com/thalibook/thalibook-api/internal/service/restaurants"
	"github.com/thalibook/thalibook-api/internal/service/restaurants/models"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnauthorized        = "требуется авторизация"
	msgAccessDenied        = "редактировать ресторан может только его менеджер или администратор"
	msgRestaurantNotFound  = "ресторан не найден"
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

// Handle PATCH /api/v1/restaurants/{restaurantId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("[update_restaurant.Handle] Некорректный ID ресторана: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req models.UpdateRestaurantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("[update_restaurant.Handle] Некорректное тело запроса: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Update(r.Context(), restaurantID, claims.UserID, domain.Role(claims.Role), &req)
	if err != nil {
		switch {
		case errors.Is(err, restaurantsService.ErrInvalidInput):
			h.logger.Warn("[update_restaurant.Handle] Некорректные данные: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, restaurantsService.ErrRestaurantNotFound):
			h.logger.Warn("[update_restaurant.Handle] Ресторан %d не найден", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)
		case errors.Is(err, restaurantsService.ErrAccessDenied):
			h.logger.Warn("[update_restaurant.Handle] Доступ запрещён: ресторан %d, пользователь %d (%s)",
				restaurantID, claims.UserID, claims.Role)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("[update_restaurant.Handle] Ошибка обновления ресторана %d: %v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
