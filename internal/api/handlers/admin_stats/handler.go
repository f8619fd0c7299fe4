package admin_stats

import (
	"net/http"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	"github.com/thalibook/thalibook-api/internal/api/middleware"
	"github.com/thalibook/thalibook-api/internal/domain"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgAdminOnly    = "доступно только администраторам"
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

// Handle GET /api/v1/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if domain.Role(claims.Role) != domain.RoleAdmin {
		h.logger.Warn("[admin_stats.Handle] Попытка доступа с ролью %s (пользователь %d)",
			claims.Role, claims.UserID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	resp, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("[admin_stats.Handle] Ошибка получения статистики: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
