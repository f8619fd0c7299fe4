package delete_restaurant

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	"github.com/thalibook/thalibook-api/internal/api/middleware"
	"github.com/thalibook/thalibook-api/internal/domain"
	restaurantsService "github.com/thalibook/thalibook-api/internal/service/restaurants"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgUnauthorized        = "требуется авторизация"
	msgAccessDenied        = "удалять ресторан может только его менеджер или администратор"
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

// Handle DELETE /api/v1/restaurants/{restaurantId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("[delete_restaurant.Handle] Некорректный ID ресторана: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	err = h.service.Delete(r.Context(), restaurantID, claims.UserID, domain.Role(claims.Role))
	if err != nil {
		switch {
		case errors.Is(err, restaurantsService.ErrRestaurantNotFound):
			h.logger.Warn("[delete_restaurant.Handle] Ресторан %d не найден", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)
		case errors.Is(err, restaurantsService.ErrAccessDenied):
			h.logger.Warn("[delete_restaurant.Handle] Доступ запрещён: ресторан %d, пользователь %d (%s)",
				restaurantID, claims.UserID, claims.Role)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("[delete_restaurant.Handle] Ошибка удаления ресторана %d: %v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
