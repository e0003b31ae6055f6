package handlers

import (
	"errors"
	"net/http"
	"strings"

	authsvc "github.com/laksanil/vivaahready/internal/services/auth"
	candsvc "github.com/laksanil/vivaahready/internal/services/candidates"
	"github.com/laksanil/vivaahready/internal/transport/http/dto"
	httperrors "github.com/laksanil/vivaahready/internal/transport/http/errors"
)

type CandidateHandler struct {
	service *candsvc.Service
}

func NewCandidateHandler(service *candsvc.Service) *CandidateHandler {
	return &CandidateHandler{service: service}
}

func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "CANDIDATE_SERVICE_UNAVAILABLE", "candidate service is unavailable")
		return
	}

	cursor := strings.TrimSpace(r.URL.Query().Get("cursor"))

	page, err := h.service.Browse(r.Context(), identity.UserID, cursor)
	if err != nil {
		switch {
		case errors.Is(err, candsvc.ErrProfileNotFound):
			writeNotFound(w, "PROFILE_NOT_FOUND", "create a profile before browsing")
		case errors.Is(err, candsvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid browse request")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to load candidates")
		}
		return
	}

	cards := make([]dto.CandidateCard, 0, len(page.Cards))
	for _, card := range page.Cards {
		cards = append(cards, dto.CandidateCard{
			UserID:        card.UserID,
			DisplayName:   card.DisplayName,
			Age:           card.Age,
			Height:        card.Height,
			Location:      card.Location,
			Community:     card.Community,
			Education:     card.Education,
			Occupation:    card.Occupation,
			MaritalStatus: card.MaritalStatus,
		})
	}

	httperrors.Write(w, http.StatusOK, dto.CandidatesResponse{
		Cards:      cards,
		NextCursor: page.NextCursor,
	})
}
