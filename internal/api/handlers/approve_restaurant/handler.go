package approve_restaurant

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	"github.com/thalibook/thalibook-api/internal/api/middleware"
	"github.com/thalibook/thalibook-api/internal/domain"
	adminService "github.com/thalibook/thalibook-api/internal/service/admin"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgUnauthorized        = "требуется авторизация"
	msgAdminOnly           = "одобрять рестораны может только администратор"
	msgRestaurantNotFound  = "ресторан не найден"
	msgAlreadyApproved     = "ресторан уже одобрен"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/restaurants/{restaurantId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if domain.Role(claims.Role) != domain.RoleAdmin {
		h.logger.Warn("[approve_restaurant.Handle] Попытка одобрения с ролью %s (пользователь %d)",
			claims.Role, claims.UserID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	restaurantID, err := strconv.ParseInt(mux.Vars(r)["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("[approve_restaurant.Handle] Некорректный ID ресторана: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	err = h.service.ApproveRestaurant(r.Context(), restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, adminService.ErrRestaurantNotFound):
			h.logger.Warn("[approve_restaurant.Handle] Ресторан %d не найден", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)
		case errors.Is(err, adminService.ErrAlreadyApproved):
			h.logger.Warn("[approve_restaurant.Handle] Ресторан %d уже одобрен", restaurantID)
			handlers.RespondConflict(w, msgAlreadyApproved)
		default:
			h.logger.Error("[approve_restaurant.Handle] Ошибка одобрения ресторана %d: %v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
