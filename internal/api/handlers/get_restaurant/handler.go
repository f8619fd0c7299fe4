package get_restaurant

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	restaurantsService "github.com/thalibook/thalibook-api/internal/service/restaurants"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
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

// Handle GET /api/v1/restaurants/{restaurantId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("[get_restaurant.Handle] Некорректный ID ресторана: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	resp, err := h.service.GetDetails(r.Context(), restaurantID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, restaurantsService.ErrRestaurantNotFound):
			h.logger.Warn("[get_restaurant.Handle] Ресторан %d не найден", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)
		default:
			h.logger.Error("[get_restaurant.Handle] Ошибка получения ресторана %d: %v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
