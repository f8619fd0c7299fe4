package create_booking

import (
	"errors"
	"net/http"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	"github.com/thalibook/thalibook-api/internal/api/middleware"
	createBooking "github.com/thalibook/thalibook-api/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgInvalidDate        = "дата бронирования не может быть в прошлом"
	msgRestaurantNotFound = "ресторан не найден"
	msgRestaurantClosed   = "ресторан закрыт в запрошенное время"
	msgPartyTooLarge      = "в ресторане нет стола такого размера"
	msgNoTableAvailable   = "нет свободных столов на это время"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("[create_booking.Handle] Некорректное тело запроса: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(claims.UserID)
	if err != nil {
		h.logger.Warn("[create_booking.Handle] Некорректные дата или время: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("[create_booking.Handle] Некорректные данные: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("[create_booking.Handle] Дата в прошлом: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, createBooking.ErrRestaurantNotFound):
			h.logger.Warn("[create_booking.Handle] Ресторан %d не найден", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)
		case errors.Is(err, createBooking.ErrRestaurantClosed):
			h.logger.Warn("[create_booking.Handle] Ресторан %d закрыт: %v", req.RestaurantID, err)
			handlers.RespondConflict(w, msgRestaurantClosed)
		case errors.Is(err, createBooking.ErrPartyTooLarge):
			h.logger.Warn("[create_booking.Handle] Слишком большая компания: %v", err)
			handlers.RespondConflict(w, msgPartyTooLarge)
		case errors.Is(err, createBooking.ErrNoTableAvailable):
			h.logger.Info("[create_booking.Handle] Нет свободных столов: ресторан %d, %s %s",
				req.RestaurantID, req.Date, req.Time)
			handlers.RespondConflict(w, msgNoTableAvailable)
		default:
			h.logger.Error("[create_booking.Handle] Ошибка создания бронирования: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
