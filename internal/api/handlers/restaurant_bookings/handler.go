package restaurant_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	"github.com/thalibook/thalibook-api/internal/api/middleware"
	"github.com/thalibook/thalibook-api/internal/domain"
	bookingsService "github.com/thalibook/thalibook-api/internal/service/bookings"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidQuery        = "некорректные параметры запроса"
	msgUnauthorized        = "требуется авторизация"
	msgAccessDenied        = "просматривать бронирования может только менеджер ресторана"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/bookings?date=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("[restaurant_bookings.Handle] Некорректный ID ресторана: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	req, err := ToServiceRequest(restaurantID, claims.UserID, domain.Role(claims.Role), r.URL.Query())
	if err != nil {
		h.logger.Warn("[restaurant_bookings.Handle] Некорректные параметры: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	resp, err := h.service.GetRestaurantBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("[restaurant_bookings.Handle] Некорректный запрос: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("[restaurant_bookings.Handle] Доступ запрещён: ресторан %d, пользователь %d (%s)",
				restaurantID, claims.UserID, claims.Role)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("[restaurant_bookings.Handle] Ошибка получения бронирований ресторана %d: %v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
