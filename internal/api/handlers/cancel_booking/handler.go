package cancel_booking

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
	msgAccessDenied     = "отменять бронирование может только его владелец или администратор"
	msgBookingNotFound  = "бронирование не найдено"
	msgCannotCancel     = "бронирование уже отменено"
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

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("[cancel_booking.Handle] Некорректный ID бронирования: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	err = h.service.Cancel(r.Context(), bookingID, claims.UserID, domain.Role(claims.Role))
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("[cancel_booking.Handle] Бронирование %d не найдено", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("[cancel_booking.Handle] Доступ запрещён: бронирование %d, пользователь %d (%s)",
				bookingID, claims.UserID, claims.Role)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookingsService.ErrCannotCancel):
			h.logger.Warn("[cancel_booking.Handle] Бронирование %d нельзя отменить: %v", bookingID, err)
			handlers.RespondConflict(w, msgCannotCancel)
		default:
			h.logger.Error("[cancel_booking.Handle] Ошибка отмены бронирования %d: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
