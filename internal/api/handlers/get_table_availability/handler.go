package get_table_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	availabilityUseCase "github.com/thalibook/thalibook-api/internal/usecase/get_table_availability"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgInvalidQuery        = "некорректные параметры запроса"
	msgInvalidDate         = "дата не может быть в прошлом"
	msgRestaurantNotFound  = "ресторан не найден"
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

// Handle GET /api/v1/restaurants/{restaurantId}/availability?date=&time=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("[get_table_availability.Handle] Некорректный ID ресторана: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	req, err := ToUseCaseRequest(restaurantID, r.URL.Query())
	if err != nil {
		h.logger.Warn("[get_table_availability.Handle] Некорректные параметры: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityUseCase.ErrInvalidInput):
			h.logger.Warn("[get_table_availability.Handle] Некорректный запрос: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
		case errors.Is(err, availabilityUseCase.ErrInvalidDate):
			h.logger.Warn("[get_table_availability.Handle] Дата в прошлом: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, availabilityUseCase.ErrRestaurantNotFound):
			h.logger.Warn("[get_table_availability.Handle] Ресторан %d не найден", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)
		default:
			h.logger.Error("[get_table_availability.Handle] Ошибка получения доступности: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
