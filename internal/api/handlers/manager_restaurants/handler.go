package manager_restaurants

import (
	"net/http"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	"github.com/thalibook/thalibook-api/internal/api/middleware"
	"github.com/thalibook/thalibook-api/internal/domain"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgManagerOnly  = "доступно только менеджерам"
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

// Handle GET /api/v1/restaurants/manager
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if domain.Role(claims.Role) != domain.RoleManager {
		h.logger.Warn("[manager_restaurants.Handle] Попытка доступа с ролью %s (пользователь %d)",
			claims.Role, claims.UserID)
		handlers.RespondForbidden(w, msgManagerOnly)
		return
	}

	resp, err := h.service.ListByManager(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("[manager_restaurants.Handle] Ошибка получения ресторанов менеджера %d: %v", claims.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
