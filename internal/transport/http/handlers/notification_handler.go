package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	pgrepo "github.com/laksanil/vivaahready/internal/repo/postgres"
	authsvc "github.com/laksanil/vivaahready/internal/services/auth"
	notifysvc "github.com/laksanil/vivaahready/internal/services/notify"
	"github.com/laksanil/vivaahready/internal/transport/http/dto"
	httperrors "github.com/laksanil/vivaahready/internal/transport/http/errors"
)

type NotificationHandler struct {
	service   *notifysvc.Service
	listLimit int
}

func NewNotificationHandler(service *notifysvc.Service, listLimit int) *NotificationHandler {
	if listLimit <= 0 {
		listLimit = 50
	}
	return &NotificationHandler{service: service, listLimit: listLimit}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "NOTIFICATION_SERVICE_UNAVAILABLE", "notification service is unavailable")
		return
	}

	items, err := h.service.ListRecent(r.Context(), identity.UserID, h.listLimit)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to list notifications")
		return
	}

	resp := dto.NotificationsResponse{Items: make([]dto.NotificationItem, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.NotificationItem{
			ID:        item.ID,
			Kind:      string(item.Kind),
			Title:     item.Title,
			Body:      item.Body,
			Read:      item.Read,
			CreatedAt: item.CreatedAt,
		})
	}

	httperrors.Write(w, http.StatusOK, resp)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "NOTIFICATION_SERVICE_UNAVAILABLE", "notification service is unavailable")
		return
	}

	notificationID := strings.TrimSpace(chi.URLParam(r, "id"))
	if notificationID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid notification id")
		return
	}

	if err := h.service.MarkRead(r.Context(), identity.UserID, notificationID); err != nil {
		if errors.Is(err, pgrepo.ErrNotificationNotFound) {
			writeNotFound(w, "NOTIFICATION_NOT_FOUND", "notification does not exist")
			return
		}
		writeInternal(w, "INTERNAL_ERROR", "failed to mark notification read")
		return
	}

	httperrors.Write(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
}
