package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	profilesvc "github.com/laksanil/vivaahready/internal/services/profiles"
	"github.com/laksanil/vivaahready/internal/transport/http/dto"
	httperrors "github.com/laksanil/vivaahready/internal/transport/http/errors"
)

type AdminHandler struct {
	profiles *profilesvc.Service
}

func NewAdminHandler(profiles *profilesvc.Service) *AdminHandler {
	return &AdminHandler{profiles: profiles}
}

func (h *AdminHandler) SetModerationStatus(w http.ResponseWriter, r *http.Request) {
	if h.profiles == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || userID <= 0 {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid user id")
		return
	}

	var req dto.ModerationUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.profiles.SetModerationStatus(r.Context(), userID, req.Status); err != nil {
		switch {
		case errors.Is(err, profilesvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "status must be pending, approved or rejected")
		case errors.Is(err, profilesvc.ErrProfileNotFound):
			writeNotFound(w, "PROFILE_NOT_FOUND", "profile does not exist")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to update moderation status")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
}
