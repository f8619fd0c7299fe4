package restaurant_reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	reviewsService "github.com/thalibook/thalibook-api/internal/service/reviews"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgRestaurantNotFound  = "ресторан не найден"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reviews/restaurant/{restaurantId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("[restaurant_reviews.Handle] Некорректный ID ресторана: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	resp, err := h.service.ListByRestaurant(r.Context(), restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, reviewsService.ErrRestaurantNotFound):
			h.logger.Warn("[restaurant_reviews.Handle] Ресторан %d не найден", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)
		default:
			h.logger.Error("[restaurant_reviews.Handle] Ошибка получения отзывов ресторана %d: %v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
