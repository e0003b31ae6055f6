package handlers

import (
	"net/http"
	"time"

	authsvc "github.com/laksanil/vivaahready/internal/services/auth"
	"github.com/laksanil/vivaahready/internal/transport/http/dto"
	httperrors "github.com/laksanil/vivaahready/internal/transport/http/errors"
)

// AuthHandler issues short-lived access tokens for local development.
// The route is only registered when dev tokens are enabled in config.
type AuthHandler struct {
	jwtManager *authsvc.JWTManager
	now        func() time.Time
}

func NewAuthHandler(jwtManager *authsvc.JWTManager) *AuthHandler {
	return &AuthHandler{jwtManager: jwtManager, now: time.Now}
}

func (h *AuthHandler) DevToken(w http.ResponseWriter, r *http.Request) {
	if h.jwtManager == nil {
		writeInternal(w, "AUTH_SERVICE_UNAVAILABLE", "auth service is unavailable")
		return
	}

	var req dto.DevTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}
	if req.UserID <= 0 {
		writeBadRequest(w, "VALIDATION_ERROR", "user_id is required")
		return
	}

	role := req.Role
	switch role {
	case "":
		role = authsvc.RoleUser
	case authsvc.RoleUser, authsvc.RoleAdmin:
	default:
		writeBadRequest(w, "VALIDATION_ERROR", "role must be user or admin")
		return
	}

	token, expiresAt, err := h.jwtManager.GenerateAccessToken(req.UserID, role)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to issue token")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DevTokenResponse{
		AccessToken:  token,
		ExpiresInSec: int64(expiresAt.Sub(h.now().UTC()).Seconds()),
	})
}
