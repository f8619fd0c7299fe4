package create_review

import (
	"errors"
	"net/http"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	"github.com/thalibook/thalibook-api/internal/api/middleware"
	reviewsService "github.com/thalibook/thalibook-api/internal/service/reviews"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgRestaurantNotFound = "ресторан не найден"
	msgAlreadyReviewed    = "вы уже оставили отзыв на этот ресторан"
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

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("[create_review.Handle] Некорректное тело запроса: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), req.RestaurantID, claims.UserID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, reviewsService.ErrInvalidInput):
			h.logger.Warn("[create_review.Handle] Некорректные данные отзыва: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, reviewsService.ErrRestaurantNotFound):
			h.logger.Warn("[create_review.Handle] Ресторан %d не найден", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)
		case errors.Is(err, reviewsService.ErrAlreadyReviewed):
			h.logger.Warn("[create_review.Handle] Повторный отзыв: пользователь %d, ресторан %d",
				claims.UserID, req.RestaurantID)
			handlers.RespondConflict(w, msgAlreadyReviewed)
		default:
			h.logger.Error("[create_review.Handle] Ошибка создания отзыва: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, resp)
}
