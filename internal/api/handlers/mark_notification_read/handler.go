package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	"github.com/thalibook/thalibook-api/internal/api/middleware"
	notificationsService "github.com/thalibook/thalibook-api/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "некорректный ID уведомления"
	msgUnauthorized          = "требуется авторизация"
	msgNotificationNotFound  = "уведомление не найдено"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/notifications/{notificationId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	notificationID, err := strconv.ParseInt(mux.Vars(r)["notificationId"], 10, 64)
	if err != nil {
		h.logger.Warn("[mark_notification_read.Handle] Некорректный ID уведомления: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	resp, err := h.service.MarkRead(r.Context(), notificationID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrNotificationNotFound):
			h.logger.Warn("[mark_notification_read.Handle] Уведомление %d не найдено для пользователя %d",
				notificationID, claims.UserID)
			handlers.RespondNotFound(w, msgNotificationNotFound)
		default:
			h.logger.Error("[mark_notification_read.Handle] Ошибка отметки уведомления %d: %v", notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
