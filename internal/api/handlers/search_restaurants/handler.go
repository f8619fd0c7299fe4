package search_restaurants

import (
	"errors"
	"net/http"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	searchUseCase "github.com/thalibook/thalibook-api/internal/usecase/search_restaurants"
)

const (
	msgInvalidQuery = "некорректные параметры поиска"
	msgInvalidDate  = "дата поиска не может быть в прошлом"
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

// Handle GET /api/v1/restaurants/search?date=&time=&partySize=&location=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("[search_restaurants.Handle] Некорректные параметры: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, searchUseCase.ErrInvalidInput):
			h.logger.Warn("[search_restaurants.Handle] Некорректный запрос: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
		case errors.Is(err, searchUseCase.ErrInvalidDate):
			h.logger.Warn("[search_restaurants.Handle] Дата в прошлом: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("[search_restaurants.Handle] Ошибка поиска: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
