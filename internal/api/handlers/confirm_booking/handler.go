package confirm_booking

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
	msgInvalidBookingID = "некорректный ID бронирования"
	msgUnauthorized     = "требуется авторизация"
	msgAccessDenied     = "подтверждать бронирование может только менеджер ресторана"
	msgBookingNotFound  = "бронирование не найдено"
	msgCannotConfirm    = "бронирование нельзя подтвердить"
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

// Handle PATCH /api/v1/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("[confirm_booking.Handle] Некорректный ID бронирования: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	resp, err := h.service.Confirm(r.Context(), bookingID, claims.UserID, domain.Role(claims.Role))
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("[confirm_booking.Handle] Бронирование %d не найдено", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("[confirm_booking.Handle] Доступ запрещён: бронирование %d, пользователь %d (%s)",
				bookingID, claims.UserID, claims.Role)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookingsService.ErrCannotConfirm):
			h.logger.Warn("[confirm_booking.Handle] Бронирование %d нельзя подтвердить: %v", bookingID, err)
			handlers.RespondConflict(w, msgCannotConfirm)
		default:
			h.logger.Error("[confirm_booking.Handle] Ошибка подтверждения бронирования %d: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
